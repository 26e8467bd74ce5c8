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
	"fmt"
	"strings"
)

// ExportDOT renders b as a Graphviz DOT digraph: one node per Behavior value
// reachable by a plain depth-first walk, labeled the same way String labels
// them, with a directed edge from every composite/decorator to each of its
// children. It covers all thirteen Kinds, unlike the partial node-type
// coverage this was distilled from.
func ExportDOT[A any](b Behavior[A]) string {
	var sb strings.Builder
	sb.WriteString("digraph {\n")
	id := 0
	var walk func(parent int, b Behavior[A]) int
	walk = func(parent int, b Behavior[A]) int {
		id++
		self := id
		fmt.Fprintf(&sb, "  n%d [label=%q];\n", self, nodeLabel(b))
		if parent != 0 {
			fmt.Fprintf(&sb, "  n%d -> n%d;\n", parent, self)
		}
		switch b.Kind {
		case KindInvert, KindAlwaysSucceed:
			walk(self, *b.Child)
		case KindIf:
			walk(self, *b.Cond)
			walk(self, *b.Then)
			walk(self, *b.Else)
		case KindSelect, KindSequence, KindWhenAll, KindWhenAny, KindAfter:
			for _, c := range b.Children {
				walk(self, c)
			}
		case KindWhile, KindWhileAll:
			walk(self, *b.Cond)
			for _, c := range b.Body {
				walk(self, c)
			}
		}
		return self
	}
	walk(0, b)
	sb.WriteString("}\n")
	return sb.String()
}
