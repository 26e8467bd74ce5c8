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

import "math"

// Tick drives WhenAll and WhenAny, which share one kernel: every child is
// ticked every call (there is no single active cursor, so there is no
// residual dt to cascade between siblings - each gets the full incoming
// event). WhenAll fails as soon as any child fails and succeeds once every
// child has; WhenAny succeeds as soon as any child succeeds and fails once
// every child has.
//
// A child that reaches the matching outcome is latched (its slot set to nil)
// and not ticked again. Once every child has latched, the composite
// terminates with the least residual dt left over among them - the point at
// which the slowest child actually finished. An empty child list is a
// vacuous match: it terminates immediately, consuming none of the tick and
// returning the whole incoming dt (0 for an event without one) as residual.
func (s *parState[A]) Tick(e Event, dispatch actionFunc[A]) (Status, float64) {
	matchStatus, invStatus := Success, Failure
	if s.anyMode {
		matchStatus, invStatus = Failure, Success
	}
	if len(s.children) == 0 {
		if dt, ok := e.DT(); ok {
			return matchStatus, dt
		}
		return matchStatus, 0
	}

	minDT := math.MaxFloat64
	terminated := 0
	for i, child := range s.children {
		if child == nil {
			terminated++
			continue
		}
		status, residual := child.Tick(e, dispatch)
		switch status {
		case Running:
			continue
		case invStatus:
			return invStatus, residual
		default: // matchStatus
			if residual < minDT {
				minDT = residual
			}
		}
		terminated++
		s.children[i] = nil
	}
	if terminated == len(s.children) {
		return matchStatus, minDT
	}
	return Running, 0
}
