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

// BT is a handle binding an immutable Behavior declaration to a live State
// and a caller-owned blackboard; the Dispatcher that services its Action
// leaves is passed to each Tick call. BB is the blackboard type; it never appears in State, only
// here, where Tick closes over it on the dispatcher's behalf.
//
// A BT is not safe for concurrent use - exactly like the State it wraps,
// it's a single cursor through one tree, meant to be driven by one caller
// (see Ticker for running several concurrently).
type BT[A any, BB any] struct {
	root       Behavior[A]
	state      State[A]
	blackboard *BB
	done       bool
	last       Status
}

// NewBT lowers root into a fresh State and binds it to blackboard. The
// dispatcher is not bound here - it's a per-call argument to Tick, not
// state a BT carries between ticks. NewBT fails only if root (or a
// descendant) fails to lower - see New and ErrEmptyBody.
func NewBT[A any, BB any](root Behavior[A], blackboard *BB) (*BT[A, BB], error) {
	state, err := New(root)
	if err != nil {
		return nil, err
	}
	return &BT[A, BB]{root: root, state: state, blackboard: blackboard}, nil
}

// Tick advances the tree by one step, servicing Action leaves with
// dispatch. Once the tree has reached a terminal Status, further calls are
// no-ops: ok is false, status repeats the latched terminal Status and
// residual is 0 - callers wanting to run it again must Reset first.
// This mirrors the "comma-ok" idiom rather than returning a sentinel
// error: a tree that has already finished isn't a failure, it's just out
// of ticks to give.
func (t *BT[A, BB]) Tick(e Event, dispatch Dispatcher[A, BB]) (status Status, residual float64, ok bool) {
	if t.done {
		return t.last, 0, false
	}
	action := func(args ActionArgs[A]) (Status, float64) {
		return dispatch(args, t.blackboard)
	}
	status, residual = t.state.Tick(e, action)
	if status != Running {
		t.done = true
		t.last = status
	}
	return status, residual, true
}

// IsFinished reports whether the tree has reached a terminal Status since
// construction or the last Reset.
func (t *BT[A, BB]) IsFinished() bool { return t.done }

// Blackboard returns the bound blackboard pointer.
func (t *BT[A, BB]) Blackboard() *BB { return t.blackboard }

// Behavior returns the declaration this handle was constructed from.
func (t *BT[A, BB]) Behavior() Behavior[A] { return t.root }

// Reset discards all execution progress, lowering a fresh State from the
// same root declaration. It fails only under the same conditions NewBT
// would have.
func (t *BT[A, BB]) Reset() error {
	state, err := New(t.root)
	if err != nil {
		return err
	}
	t.state = state
	t.done = false
	return nil
}
