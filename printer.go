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
	"io"

	"github.com/xlab/treeprint"
)

// String renders the receiver as an indented tree, in the style of
// (github.com/xlab/treeprint).Tree.String.
func (b Behavior[A]) String() string {
	tree := treeprint.New()
	tree.SetValue(nodeLabel(b))
	addChildren(tree, b)
	return tree.String()
}

// Fprint writes the receiver's tree rendering to output.
func Fprint[A any](output io.Writer, b Behavior[A]) error {
	_, err := io.WriteString(output, b.String())
	return err
}

func addChildren[A any](tree treeprint.Tree, b Behavior[A]) {
	switch b.Kind {
	case KindInvert, KindAlwaysSucceed:
		addChild(tree, "", *b.Child)
	case KindIf:
		addChild(tree, "cond", *b.Cond)
		addChild(tree, "then", *b.Then)
		addChild(tree, "else", *b.Else)
	case KindSelect, KindSequence, KindWhenAll, KindWhenAny, KindAfter:
		for _, c := range b.Children {
			addChild(tree, "", c)
		}
	case KindWhile, KindWhileAll:
		addChild(tree, "cond", *b.Cond)
		for _, c := range b.Body {
			addChild(tree, "", c)
		}
	}
}

func addChild[A any](parent treeprint.Tree, label string, b Behavior[A]) {
	value := nodeLabel(b)
	if label != "" {
		value = fmt.Sprintf("%s: %s", label, value)
	}
	addChildren(parent.AddBranch(value), b)
}

func nodeLabel[A any](b Behavior[A]) string {
	switch b.Kind {
	case KindWait:
		return fmt.Sprintf("Wait(%g)", b.Wait)
	case KindAction:
		return fmt.Sprintf("Action(%v)", b.Action)
	default:
		return b.Kind.String()
	}
}
