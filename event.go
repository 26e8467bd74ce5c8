/*
   Copyright 2026 Joseph Cumines

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package behaviortree

import "time"

// Event is the interface the engine requires of a caller-supplied update
// event: the ability to extract its delta-time (if it carries one), and to
// produce a copy of itself with a replaced delta-time, for propagating
// residual dt to the next node in a single tick's DFS. Host applications
// may implement Event on a richer event type (carrying input, resize, or
// other loop events) as long as these two operations are provided; the core
// only ever asks "what is dt" and "give me an event just like this one but
// with dt replaced".
type Event interface {
	// DT returns the event's delta-time in seconds, and whether the event
	// carries one at all (false for non-update events).
	DT() (dt float64, ok bool)
	// WithDT returns a copy of the receiver with its delta-time replaced by
	// dt. Called only on events for which DT reported ok == true.
	WithDT(dt float64) Event
}

// UpdateArgs is the default Event implementation: a single non-negative
// delta-time in seconds, the same shape as a game/application loop's update
// tick.
type UpdateArgs struct {
	DTSeconds float64
}

// DT implements Event.
func (a UpdateArgs) DT() (float64, bool) { return a.DTSeconds, true }

// WithDT implements Event.
func (a UpdateArgs) WithDT(dt float64) Event { return UpdateArgs{DTSeconds: dt} }

// ZeroDT returns an UpdateArgs with zero delta-time, useful for tests and
// for ticks that merely want to poll status without advancing time.
func ZeroDT() Event { return UpdateArgs{DTSeconds: 0} }

// FromDT returns an UpdateArgs carrying the given delta-time in seconds.
func FromDT(dt float64) Event { return UpdateArgs{DTSeconds: dt} }

// FromDuration returns an UpdateArgs carrying d converted to seconds.
func FromDuration(d time.Duration) Event { return UpdateArgs{DTSeconds: d.Seconds()} }
