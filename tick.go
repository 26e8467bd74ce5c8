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

// Tick on waitState accumulates dt until it reaches target, then reports the
// time overdue as residual and latches its own elapsed counter at target, so
// a reused (non-reset) Wait node re-ticked after success reports Success
// again immediately rather than restarting the wait. A non-dt event leaves
// Wait Running untouched.
func (s *waitState[A]) Tick(e Event, dispatch actionFunc[A]) (Status, float64) {
	dt, ok := e.DT()
	if !ok {
		return Running, 0
	}
	total := s.elapsed + dt
	if total >= s.target {
		overdue := total - s.target
		s.elapsed = s.target
		return Success, overdue
	}
	s.elapsed = total
	return Running, 0
}

// Tick on waitForeverState never terminates; it consumes the whole tick.
func (s waitForeverState[A]) Tick(e Event, dispatch actionFunc[A]) (Status, float64) {
	return Running, 0
}

// Tick on actionState defers entirely to the dispatcher.
func (s *actionState[A]) Tick(e Event, dispatch actionFunc[A]) (Status, float64) {
	dt, _ := e.DT()
	return dispatch(ActionArgs[A]{Event: e, DT: dt, Action: &s.action})
}

// Tick on invertState swaps Success and Failure, passing Running and the
// residual dt through unchanged.
func (s *invertState[A]) Tick(e Event, dispatch actionFunc[A]) (Status, float64) {
	status, residual := s.child.Tick(e, dispatch)
	switch status {
	case Success:
		return Failure, residual
	case Failure:
		return Success, residual
	default:
		return Running, residual
	}
}

// Tick on alwaysSucceedState maps Failure to Success, passing Running and
// Success (and the residual dt) through unchanged.
func (s *alwaysSucceedState[A]) Tick(e Event, dispatch actionFunc[A]) (Status, float64) {
	status, residual := s.child.Tick(e, dispatch)
	if status == Failure {
		return Success, residual
	}
	return status, residual
}
