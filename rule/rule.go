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

// Package rule defines the detector abstraction and the registry the
// engine dispatches through.
package rule

import (
	pb "naive.systems/rulecheck/analyzer/proto"
	"naive.systems/rulecheck/ast"
	"naive.systems/rulecheck/symtab"
)

// Context is what a matcher may read besides the node itself: the file
// under analysis, the symbol table, and the ancestor chain from the
// translation unit down to the node's parent.
type Context struct {
	Path      string
	Symbols   *symtab.Table
	Ancestors []*ast.Node
}

// Parent returns the immediate parent, or nil at the root.
func (c *Context) Parent() *ast.Node {
	if len(c.Ancestors) == 0 {
		return nil
	}
	return c.Ancestors[len(c.Ancestors)-1]
}

// Enclosing returns the nearest ancestor of the given kind, or nil.
func (c *Context) Enclosing(kind ast.Kind) *ast.Node {
	for i := len(c.Ancestors) - 1; i >= 0; i-- {
		if c.Ancestors[i].Kind == kind {
			return c.Ancestors[i]
		}
	}
	return nil
}

// Finding is one raw match. The engine attaches the rule id and the
// effective severity when it converts findings to results.
type Finding struct {
	Span    ast.Span
	Message string
	FixIt   string
}

// CheckFunc inspects one node. It must not mutate the tree or the
// symbol table and must not traverse into other top-level constructs:
// the engine already visits every node exactly once.
type CheckFunc func(node *ast.Node, ctx *Context) []Finding

// Rule is one detector. Immutable after registration.
type Rule struct {
	// ID is the stable rule identifier, e.g. "struct.flexible-array-member".
	ID    string
	Title string
	// DefaultSeverity applies unless the registry carries an override.
	DefaultSeverity pb.Severity
	// Kinds is the coarse applicability filter: the engine invokes
	// Check only on nodes of these kinds.
	Kinds []ast.Kind
	Check CheckFunc
}
