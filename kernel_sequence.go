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

// Tick drives Select and Sequence, which share one kernel: Sequence fails as
// soon as any child fails and succeeds once every child has, in order;
// Select succeeds as soon as any child succeeds and fails once every child
// has. An empty list is Running forever - there is never a first child to
// decide the outcome.
//
// While the driving event carries a dt, a child's Success (for Sequence) or
// Failure (for Select) cascades its residual dt into the next child within
// the same call, so a fast-terminating child doesn't waste a tick's budget.
// For events without a dt, advancement still happens, but only one child is
// ticked per call - there is no meaningful "time left over" to replay.
func (s *seqState[A]) Tick(e Event, dispatch actionFunc[A]) (Status, float64) {
	if s.child == nil {
		return Running, 0
	}
	matchStatus, invStatus := Success, Failure
	if s.select_ {
		matchStatus, invStatus = Failure, Success
	}
	_, hasDT := e.DT()
	remaining := e
	for {
		status, residual := s.child.Tick(remaining, dispatch)
		switch status {
		case Running:
			return Running, 0
		case invStatus:
			return invStatus, residual
		}
		if !hasDT {
			if s.index == len(s.children)-1 {
				return matchStatus, residual
			}
			s.index++
			s.child = mustLower(s.children[s.index])
			return Running, 0
		}
		s.index++
		if s.index >= len(s.children) {
			return matchStatus, residual
		}
		s.child = mustLower(s.children[s.index])
		remaining = e.WithDT(residual)
	}
}
