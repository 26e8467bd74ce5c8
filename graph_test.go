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
	"strings"
	"testing"
)

func TestExportDOT(t *testing.T) {
	b := Sequence[string](
		Action("a"),
		Select[string](Action("b"), Action("c")),
	)
	dot := ExportDOT(b)
	if !strings.HasPrefix(dot, "digraph {\n") || !strings.HasSuffix(dot, "}\n") {
		t.Fatalf("not a well-formed digraph:\n%s", dot)
	}
	nodeCount := strings.Count(dot, "[label=")
	if nodeCount != 5 {
		t.Errorf("expected 5 nodes (Sequence, Action(a), Select, Action(b), Action(c)), got %d", nodeCount)
	}
	edgeCount := strings.Count(dot, " -> ")
	if edgeCount != 4 {
		t.Errorf("expected 4 edges, got %d", edgeCount)
	}
}

func TestExportDOT_allKinds(t *testing.T) {
	b := Invert(If(
		WhileAll(Action[string]("cond"), Action("body")),
		WhenAll(Action[string]("a"), Wait[string](1), WaitForever[string]()),
		After(
			Action[string]("c"),
			AlwaysSucceed(Action("d")),
			Select(Action[string]("e")),
			Sequence(Action[string]("f")),
			While(Action[string]("g"), Action("h")),
			WhenAny(Action[string]("i")),
		),
	))
	dot := ExportDOT(b)
	for _, want := range []string{
		`"Wait(1)"`, `"WaitForever"`, `"Action(c)"`, `"Invert"`, `"AlwaysSucceed"`, `"If"`, `"Select"`,
		`"Sequence"`, `"While"`, `"WhileAll"`, `"WhenAll"`, `"WhenAny"`, `"After"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("missing %q in:\n%s", want, dot)
		}
	}
}
