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

import "testing"

type counterBB struct{ acc int }

func counterBBDispatch(args ActionArgs[string], bb *counterBB) (Status, float64) {
	switch *args.Action {
	case "inc":
		bb.acc++
		return Success, args.DT
	case "dec":
		bb.acc--
		return Success, args.DT
	default:
		panic("counterBBDispatch: unknown action " + *args.Action)
	}
}

func TestNewBT_emptyWhileBody(t *testing.T) {
	_, err := NewBT(While[string](Action[string]("cond")), new(counterBB))
	if err != ErrEmptyBody {
		t.Fatalf("err = %v, want ErrEmptyBody", err)
	}
}

func TestBT_TickLatchesAfterTerminal(t *testing.T) {
	bb := new(counterBB)
	bt, err := NewBT(Sequence(Action[string]("inc"), Action[string]("inc")), bb)
	if err != nil {
		t.Fatal(err)
	}

	status, _, ok := bt.Tick(ZeroDT(), counterBBDispatch)
	if !ok || status != Success {
		t.Fatalf("first tick: got (%v, ok=%v), want (Success, true)", status, ok)
	}
	if bb.acc != 2 {
		t.Fatalf("acc = %d, want 2", bb.acc)
	}
	if !bt.IsFinished() {
		t.Fatal("expected IsFinished after terminal Status")
	}

	// further ticks are no-ops: ok is false, the latched Status repeats, and
	// the dispatcher is never invoked again (acc must not move).
	status, residual, ok := bt.Tick(ZeroDT(), counterBBDispatch)
	if ok {
		t.Fatal("expected ok=false once finished")
	}
	if status != Success || residual != 0 {
		t.Fatalf("got (%v, %v), want (Success, 0)", status, residual)
	}
	if bb.acc != 2 {
		t.Fatalf("acc changed after tree finished: %d", bb.acc)
	}

	if err := bt.Reset(); err != nil {
		t.Fatal(err)
	}
	if bt.IsFinished() {
		t.Fatal("expected IsFinished to be false after Reset")
	}

	status, _, ok = bt.Tick(ZeroDT(), counterBBDispatch)
	if !ok || status != Success {
		t.Fatalf("post-reset tick: got (%v, ok=%v), want (Success, true)", status, ok)
	}
	if bb.acc != 4 {
		t.Fatalf("acc = %d, want 4 after a second full run", bb.acc)
	}
}

func TestBT_TickRunningDoesNotLatch(t *testing.T) {
	bb := new(counterBB)
	bt, err := NewBT(WaitForever[string](), bb)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		status, _, ok := bt.Tick(FromDT(1), counterBBDispatch)
		if !ok {
			t.Fatalf("tick %d: expected ok=true while Running", i)
		}
		if status != Running {
			t.Fatalf("tick %d: status = %v, want Running", i, status)
		}
	}
	if bt.IsFinished() {
		t.Fatal("a tree stuck Running must never report IsFinished")
	}
}

func TestBT_BlackboardAndBehavior(t *testing.T) {
	bb := new(counterBB)
	root := Action[string]("inc")
	bt, err := NewBT(root, bb)
	if err != nil {
		t.Fatal(err)
	}
	if bt.Blackboard() != bb {
		t.Fatal("Blackboard() did not return the bound pointer")
	}
	if !Equal(bt.Behavior(), root) {
		t.Fatal("Behavior() did not return the constructing declaration")
	}
}

func TestNewBT_errEmptyWhileAll(t *testing.T) {
	_, err := NewBT(WhileAll[string](Action[string]("cond")), new(counterBB))
	if err != ErrEmptyBody {
		t.Fatalf("err = %v, want ErrEmptyBody", err)
	}
}

// TestBT_TickDispatcherPerCall confirms the dispatcher is a per-call
// argument, not state bound at construction: the same BT can be driven by
// different dispatchers across ticks.
func TestBT_TickDispatcherPerCall(t *testing.T) {
	bb := new(counterBB)
	bt, err := NewBT(Sequence(Action[string]("inc"), Action[string]("inc")), bb)
	if err != nil {
		t.Fatal(err)
	}
	doubling := func(args ActionArgs[string], bb *counterBB) (Status, float64) {
		bb.acc += 2
		return Success, args.DT
	}
	status, _, ok := bt.Tick(ZeroDT(), doubling)
	if !ok || status != Success {
		t.Fatalf("got (%v, ok=%v), want (Success, true)", status, ok)
	}
	if bb.acc != 4 {
		t.Fatalf("acc = %d, want 4", bb.acc)
	}
}
