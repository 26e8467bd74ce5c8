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

import (
	"errors"
	"fmt"
)

// ErrEmptyBody is returned by New when a While or WhileAll behavior that New
// lowers eagerly (see New) has an empty Body; one reached only later, during
// Tick, panics with it instead. Construction errors are
// fatal: a tree that fails to lower must not be silently accepted.
var ErrEmptyBody = errors.New("behaviortree: While/WhileAll body must not be empty")

// State is the live, mutable execution counterpart of a Behavior: it owns
// whatever per-node progress (elapsed wait time, child cursors, latched
// sub-status) is required to resume correctly on the next Tick. Every State
// exclusively owns its children - there are no parent links and no cycles,
// so a straight recursive layout suffices.
//
// State is obtained from a Behavior via New, mutated in place by Tick, and
// either discarded or replaced by a fresh lowering on reset (see BT.Reset).
type State[A any] interface {
	// Tick advances the state by one step, given the driving event and a
	// blackboard-erased dispatcher for Action leaves, returning the
	// resulting Status and the residual dt.
	Tick(e Event, dispatch actionFunc[A]) (Status, float64)
	// Clone returns a deep copy of the receiver; cloning never aliases the
	// original's mutable state.
	Clone() State[A]
}

// New lowers a Behavior into a fresh State, recursively. Decorators and If
// lower only their immediately-active child eagerly; Select/Sequence lower
// only their first child; While/WhileAll lower only their condition and
// first body element. Remaining children are lowered lazily, on
// advancement (see the kernels in kernel_*.go) - so a malformed nested
// Behavior (an empty-bodied While buried inside a branch not yet taken) can
// surface ErrEmptyBody lazily, via a panic from mustLower, rather than at
// the initial New call. This mirrors bonsai's own State::new, which only
// ever recurses into the first element of a list.
func New[A any](b Behavior[A]) (State[A], error) {
	switch b.Kind {
	case KindWait:
		return &waitState[A]{target: b.Wait}, nil
	case KindWaitForever:
		return waitForeverState[A]{}, nil
	case KindAction:
		return &actionState[A]{action: b.Action}, nil
	case KindInvert:
		child, err := New(*b.Child)
		if err != nil {
			return nil, err
		}
		return &invertState[A]{child: child}, nil
	case KindAlwaysSucceed:
		child, err := New(*b.Child)
		if err != nil {
			return nil, err
		}
		return &alwaysSucceedState[A]{child: child}, nil
	case KindIf:
		cond, err := New(*b.Cond)
		if err != nil {
			return nil, err
		}
		return &ifState[A]{then: *b.Then, els: *b.Else, status: Running, child: cond}, nil
	case KindSelect, KindSequence:
		return newSeqState(b)
	case KindWhile, KindWhileAll:
		return newWhileState(b)
	case KindWhenAll, KindWhenAny:
		return newParState(b)
	case KindAfter:
		return newAfterState(b)
	default:
		return nil, fmt.Errorf("behaviortree: cannot lower Behavior with unknown Kind %d", b.Kind)
	}
}

// mustLower lowers b, panicking on error. Used internally wherever a
// composite advances a cursor mid-tick: the Tick method signature has no
// error return (matching the dispatcher contract in spec.md §4.2/§7), so a
// construction failure discovered lazily (an empty-bodied While nested in a
// branch not taken until now) is fatal, exactly as an eager one would be.
func mustLower[A any](b Behavior[A]) State[A] {
	s, err := New(b)
	if err != nil {
		panic(err)
	}
	return s
}

// -- leaf and decorator state -------------------------------------------------

type waitState[A any] struct {
	target  float64
	elapsed float64
}

func (s *waitState[A]) Clone() State[A] { c := *s; return &c }

type waitForeverState[A any] struct{}

func (s waitForeverState[A]) Clone() State[A] { return s }

type actionState[A any] struct {
	action A
}

func (s *actionState[A]) Clone() State[A] { c := *s; return &c }

type invertState[A any] struct {
	child State[A]
}

func (s *invertState[A]) Clone() State[A] { return &invertState[A]{child: s.child.Clone()} }

type alwaysSucceedState[A any] struct {
	child State[A]
}

func (s *alwaysSucceedState[A]) Clone() State[A] {
	return &alwaysSucceedState[A]{child: s.child.Clone()}
}

// -- If ------------------------------------------------------------------

type ifState[A any] struct {
	then, els Behavior[A]
	status    Status // Running: still evaluating cond; Success/Failure: latched branch
	child     State[A]
}

func (s *ifState[A]) Clone() State[A] {
	return &ifState[A]{then: s.then.Clone(), els: s.els.Clone(), status: s.status, child: s.child.Clone()}
}

// -- Select / Sequence -----------------------------------------------------

type seqState[A any] struct {
	children []Behavior[A]
	index    int
	child    State[A] // nil iff children is empty
	select_  bool     // true: Select (OR); false: Sequence (AND)
}

func newSeqState[A any](b Behavior[A]) (State[A], error) {
	s := &seqState[A]{children: b.Children, select_: b.Kind == KindSelect}
	if len(b.Children) > 0 {
		child, err := New(b.Children[0])
		if err != nil {
			return nil, err
		}
		s.child = child
	}
	return s, nil
}

func (s *seqState[A]) Clone() State[A] {
	c := &seqState[A]{children: s.children, index: s.index, select_: s.select_}
	if s.child != nil {
		c.child = s.child.Clone()
	}
	return c
}

// -- While / WhileAll -------------------------------------------------------

type whileState[A any] struct {
	cond  State[A]
	body  []Behavior[A]
	index int
	child State[A]
	all   bool // true: WhileAll, which only re-checks cond at the start of each pass through body
}

func newWhileState[A any](b Behavior[A]) (State[A], error) {
	if len(b.Body) == 0 {
		return nil, ErrEmptyBody
	}
	cond, err := New(*b.Cond)
	if err != nil {
		return nil, err
	}
	child, err := New(b.Body[0])
	if err != nil {
		return nil, err
	}
	return &whileState[A]{cond: cond, body: b.Body, child: child, all: b.Kind == KindWhileAll}, nil
}

func (s *whileState[A]) Clone() State[A] {
	return &whileState[A]{
		cond:  s.cond.Clone(),
		body:  s.body,
		index: s.index,
		child: s.child.Clone(),
		all:   s.all,
	}
}

// -- WhenAll / WhenAny -------------------------------------------------------

type parState[A any] struct {
	children []State[A] // nil entry = already terminated this run
	anyMode  bool        // true: WhenAny (succeed-on-any); false: WhenAll (succeed-on-all)
}

func newParState[A any](b Behavior[A]) (State[A], error) {
	children := make([]State[A], len(b.Children))
	for i, c := range b.Children {
		child, err := New(c)
		if err != nil {
			return nil, err
		}
		children[i] = child
	}
	return &parState[A]{children: children, anyMode: b.Kind == KindWhenAny}, nil
}

func (s *parState[A]) Clone() State[A] {
	children := make([]State[A], len(s.children))
	for i, c := range s.children {
		if c != nil {
			children[i] = c.Clone()
		}
	}
	return &parState[A]{children: children, anyMode: s.anyMode}
}

// -- After -------------------------------------------------------------------

type afterState[A any] struct {
	next     int
	children []State[A]
}

func newAfterState[A any](b Behavior[A]) (State[A], error) {
	children := make([]State[A], len(b.Children))
	for i, c := range b.Children {
		child, err := New(c)
		if err != nil {
			return nil, err
		}
		children[i] = child
	}
	return &afterState[A]{children: children}, nil
}

func (s *afterState[A]) Clone() State[A] {
	children := make([]State[A], len(s.children))
	for i, c := range s.children {
		children[i] = c.Clone()
	}
	return &afterState[A]{next: s.next, children: children}
}
