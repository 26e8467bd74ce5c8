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

// Tick on ifState evaluates Cond while s.status is Running; once Cond
// terminates, it latches the corresponding branch (Then on Success, Else on
// Failure), lowers a fresh State for it, and immediately continues ticking
// that branch with whatever dt Cond left over (events without a dt are
// passed on unchanged) - all within the same call.
// On every subsequent call the branch is simply ticked directly.
func (s *ifState[A]) Tick(e Event, dispatch actionFunc[A]) (Status, float64) {
	if s.status == Running {
		status, residual := s.child.Tick(e, dispatch)
		if status == Running {
			return Running, 0
		}
		branch := s.els
		if status == Success {
			branch = s.then
		}
		s.status = status
		s.child = mustLower(branch)
		if _, ok := e.DT(); ok {
			e = e.WithDT(residual)
		}
	}
	return s.child.Tick(e, dispatch)
}
