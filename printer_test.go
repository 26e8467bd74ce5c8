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
	"bytes"
	"strings"
	"testing"
)

func TestBehavior_String(t *testing.T) {
	b := Sequence[string](
		Action("dec"),
		Select[string](
			Action("inc"),
			WaitForever[string](),
		),
	)
	got := b.String()
	for _, want := range []string{"Sequence", "Action(dec)", "Select", "Action(inc)", "WaitForever"} {
		if !strings.Contains(got, want) {
			t.Errorf("rendering missing %q:\n%s", want, got)
		}
	}
}

func TestBehavior_String_decoratorsAndIf(t *testing.T) {
	b := Invert(If(
		Action("cond"),
		AlwaysSucceed[string](Action("then")),
		Action("else"),
	))
	got := b.String()
	for _, want := range []string{"Invert", "If", "cond: Action(cond)", "then: AlwaysSucceed", "else: Action(else)"} {
		if !strings.Contains(got, want) {
			t.Errorf("rendering missing %q:\n%s", want, got)
		}
	}
}

func TestBehavior_String_whileAndParallel(t *testing.T) {
	b := Sequence[string](
		While(Action("keepGoing"), Action("step")),
		WhenAll(Action("a"), Action("b")),
		WhenAny(Action("c"), Action("d")),
		After(Action("e"), Action("f")),
	)
	got := b.String()
	for _, want := range []string{"While", "cond: Action(keepGoing)", "Action(step)", "WhenAll", "WhenAny", "After"} {
		if !strings.Contains(got, want) {
			t.Errorf("rendering missing %q:\n%s", want, got)
		}
	}
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	if err := Fprint(&buf, Action("only")); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); !strings.Contains(got, "Action(only)") {
		t.Errorf("unexpected output: %q", got)
	}
}
