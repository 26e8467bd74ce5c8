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
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes the receiver as a single-key object tagged with the
// variant name, matching bonsai's (the Rust engine this package's semantics
// were distilled from) externally-tagged serde encoding: unit variants
// encode as a bare JSON string, single-field variants as {"Kind": value},
// and multi-field variants as {"Kind": [field, ...]} in declaration order.
func (b Behavior[A]) MarshalJSON() ([]byte, error) {
	switch b.Kind {
	case KindWaitForever:
		return json.Marshal(b.Kind.String())
	case KindWait:
		return wrapJSON(b.Kind, b.Wait)
	case KindAction:
		return wrapJSON(b.Kind, b.Action)
	case KindInvert, KindAlwaysSucceed:
		return wrapJSON(b.Kind, b.Child)
	case KindIf:
		return wrapJSON(b.Kind, [3]*Behavior[A]{b.Cond, b.Then, b.Else})
	case KindSelect, KindSequence, KindWhenAll, KindWhenAny, KindAfter:
		return wrapJSON(b.Kind, orEmpty(b.Children))
	case KindWhile, KindWhileAll:
		return wrapJSON(b.Kind, [2]any{b.Cond, orEmpty(b.Body)})
	default:
		return nil, fmt.Errorf("behaviortree: cannot marshal Behavior with unknown Kind %d", b.Kind)
	}
}

// orEmpty normalises a nil slice to an empty one, so that "Children": []
// round-trips instead of "Children": null.
func orEmpty[A any](s []Behavior[A]) []Behavior[A] {
	if s == nil {
		return []Behavior[A]{}
	}
	return s
}

func wrapJSON(kind Kind, value any) ([]byte, error) {
	return json.Marshal(map[string]any{kind.String(): value})
}

// UnmarshalJSON decodes the single-key-tagged form produced by MarshalJSON.
func (b *Behavior[A]) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		if asString != KindWaitForever.String() {
			return fmt.Errorf("behaviortree: unexpected unit variant %q", asString)
		}
		*b = Behavior[A]{Kind: KindWaitForever}
		return nil
	}

	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(data, &tagged); err != nil {
		return fmt.Errorf("behaviortree: decoding Behavior: %w", err)
	}
	if len(tagged) != 1 {
		return fmt.Errorf("behaviortree: expected exactly one variant key, got %d", len(tagged))
	}

	for name, raw := range tagged {
		switch name {
		case KindWait.String():
			var t float64
			if err := json.Unmarshal(raw, &t); err != nil {
				return err
			}
			*b = Wait[A](t)
		case KindAction.String():
			var a A
			if err := json.Unmarshal(raw, &a); err != nil {
				return err
			}
			*b = Action(a)
		case KindInvert.String():
			child, err := unmarshalChild[A](raw)
			if err != nil {
				return err
			}
			*b = Behavior[A]{Kind: KindInvert, Child: child}
		case KindAlwaysSucceed.String():
			child, err := unmarshalChild[A](raw)
			if err != nil {
				return err
			}
			*b = Behavior[A]{Kind: KindAlwaysSucceed, Child: child}
		case KindIf.String():
			var triple [3]Behavior[A]
			if err := json.Unmarshal(raw, &triple); err != nil {
				return err
			}
			*b = If(triple[0], triple[1], triple[2])
		case KindSelect.String():
			children, err := unmarshalChildren[A](raw)
			if err != nil {
				return err
			}
			*b = Select(children...)
		case KindSequence.String():
			children, err := unmarshalChildren[A](raw)
			if err != nil {
				return err
			}
			*b = Sequence(children...)
		case KindWhenAll.String():
			children, err := unmarshalChildren[A](raw)
			if err != nil {
				return err
			}
			*b = WhenAll(children...)
		case KindWhenAny.String():
			children, err := unmarshalChildren[A](raw)
			if err != nil {
				return err
			}
			*b = WhenAny(children...)
		case KindAfter.String():
			children, err := unmarshalChildren[A](raw)
			if err != nil {
				return err
			}
			*b = After(children...)
		case KindWhile.String(), KindWhileAll.String():
			var parts [2]json.RawMessage
			if err := json.Unmarshal(raw, &parts); err != nil {
				return err
			}
			var cond Behavior[A]
			if err := json.Unmarshal(parts[0], &cond); err != nil {
				return err
			}
			var body []Behavior[A]
			if err := json.Unmarshal(parts[1], &body); err != nil {
				return err
			}
			if name == KindWhile.String() {
				*b = While(cond, body...)
			} else {
				*b = WhileAll(cond, body...)
			}
		default:
			return fmt.Errorf("behaviortree: unknown Behavior variant %q", name)
		}
	}
	return nil
}

func unmarshalChild[A any](raw json.RawMessage) (*Behavior[A], error) {
	var child Behavior[A]
	if err := json.Unmarshal(raw, &child); err != nil {
		return nil, err
	}
	return &child, nil
}

func unmarshalChildren[A any](raw json.RawMessage) ([]Behavior[A], error) {
	var children []Behavior[A]
	if err := json.Unmarshal(raw, &children); err != nil {
		return nil, err
	}
	return children, nil
}
