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

// ActionArgs bundles the arguments passed to a Dispatcher each time the
// engine reaches an Action leaf: the event driving this tick, the residual
// dt at that point in the DFS, and a borrow of the action payload.
type ActionArgs[A any] struct {
	Event  Event
	DT     float64
	Action *A
}

// Dispatcher is the caller-supplied callable invoked on every Action leaf.
// BB is the caller's blackboard type; the dispatcher receives a mutable
// borrow of it and may read or write it freely - the engine never
// interprets its contents. It returns the action's outcome and the residual
// dt remaining after it (for instantaneous actions, typically the dt it was
// given unchanged; for actions that need more time, typically (Running,
// 0), since Running conventionally consumes the rest of the tick's budget).
type Dispatcher[A any, BB any] func(args ActionArgs[A], blackboard *BB) (Status, float64)

// actionFunc is the blackboard-erased form of Dispatcher used internally by
// State, so that the execution-state machine need not be parameterized by
// the blackboard type: BT closes over its own blackboard pointer and hands
// State a plain function of ActionArgs alone.
type actionFunc[A any] func(args ActionArgs[A]) (Status, float64)
