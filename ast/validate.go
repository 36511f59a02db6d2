/*
Rulecheck - a static rule-checking engine for C sources
Copyright (C) 2023  Naive Systems Ltd.

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package ast

import "fmt"

// MalformedInputError reports an input tree that violates the span
// containment invariant. It is fatal for the translation unit that
// produced it and must not abort other units.
type MalformedInputError struct {
	Node   *Node
	Detail string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input tree at %v (%v): %s", e.Node.Span, e.Node.Kind, e.Detail)
}

// Validate checks the input contract on a handed-over tree: the root is
// a translation unit, every child span is contained in its parent span,
// sibling spans do not overlap, and no node appears twice.
func Validate(root *Node) error {
	if root == nil {
		return &MalformedInputError{Node: &Node{}, Detail: "nil root"}
	}
	if root.Kind != KindTranslationUnit {
		return &MalformedInputError{Node: root, Detail: "root is not a translation unit"}
	}
	seen := make(map[*Node]bool)
	return validateNode(root, seen)
}

func validateNode(n *Node, seen map[*Node]bool) error {
	if seen[n] {
		return &MalformedInputError{Node: n, Detail: "node reachable through two parents"}
	}
	seen[n] = true
	for i, child := range n.Children {
		if child == nil {
			return &MalformedInputError{Node: n, Detail: fmt.Sprintf("child %d is nil", i)}
		}
		if !n.Span.Contains(child.Span) {
			return &MalformedInputError{
				Node:   child,
				Detail: fmt.Sprintf("child span %v escapes parent span %v", child.Span, n.Span),
			}
		}
		if i > 0 {
			prev := n.Children[i-1]
			if !prev.Span.EndsBefore(child.Span) {
				return &MalformedInputError{
					Node:   child,
					Detail: fmt.Sprintf("child span %v overlaps sibling span %v", child.Span, prev.Span),
				}
			}
		}
		if err := validateNode(child, seen); err != nil {
			return err
		}
	}
	return nil
}
