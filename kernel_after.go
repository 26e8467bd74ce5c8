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

// Tick drives After: every child from the current cursor onward is ticked
// every call, so they all genuinely run concurrently, but only the child at
// the cursor is allowed to advance it, and only if its residual dt is
// smaller than the least one seen so far this call. Any other Success - a
// child ahead of the cursor succeeding out of order, or the cursor child
// finishing no earlier than one before it - turns the whole node to Failure
// rather than silently being accepted; any child Failure fails immediately
// regardless of position.
//
// Once the cursor passes the last child, After succeeds with the smallest
// residual dt observed among this call's completions.
func (s *afterState[A]) Tick(e Event, dispatch actionFunc[A]) (Status, float64) {
	if len(s.children) == 0 {
		if dt, ok := e.DT(); ok {
			return Success, dt
		}
		return Success, 0
	}
	minDT := math.MaxFloat64
	for j := s.next; j < len(s.children); j++ {
		status, residual := s.children[j].Tick(e, dispatch)
		switch status {
		case Running:
			minDT = 0
		case Success:
			if s.next == j && residual < minDT {
				s.next++
				minDT = residual
			} else {
				if residual < minDT {
					return Failure, residual
				}
				return Failure, minDT
			}
		case Failure:
			return Failure, residual
		}
	}
	if s.next == len(s.children) {
		return Success, minDT
	}
	return Running, 0
}
