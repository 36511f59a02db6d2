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

// Package opaque_deref flags reads through pointers to opaque types,
// including the cast-then-read form.
package opaque_deref

import (
	"fmt"

	pb "naive.systems/rulecheck/analyzer/proto"
	"naive.systems/rulecheck/ast"
	"naive.systems/rulecheck/rule"
)

const ID = "ptr.opaque-deref"

func New() *rule.Rule {
	return &rule.Rule{
		ID:              ID,
		Title:           "dereference of a pointer to an opaque type",
		DefaultSeverity: pb.Severity_ERROR,
		Kinds:           []ast.Kind{ast.KindUnaryExpr, ast.KindMemberExpr},
		Check:           check,
	}
}

func check(node *ast.Node, ctx *rule.Context) []rule.Finding {
	var operand *ast.Node
	switch node.Kind {
	case ast.KindUnaryExpr:
		if info := node.Unary(); info == nil || info.Op != "*" {
			return nil
		}
		if len(node.Children) != 1 {
			return nil
		}
		operand = node.Children[0]
	case ast.KindMemberExpr:
		if info := node.Member(); info == nil || !info.Arrow {
			return nil
		}
		if len(node.Children) != 1 {
			return nil
		}
		operand = node.Children[0]
	}

	typeName := opaquePointee(operand, ctx)
	if typeName == "" {
		return nil
	}
	return []rule.Finding{{
		Span: node.Span,
		Message: fmt.Sprintf("dereference of '%s', an opaque type whose internals are implementation defined",
			typeName),
	}}
}

// opaquePointee returns the opaque pointee type name when the
// expression is a pointer to an opaque type, or "" otherwise. Both the
// declared-pointer form and the cast-then-read form are resolved here.
func opaquePointee(node *ast.Node, ctx *rule.Context) string {
	switch node.Kind {
	case ast.KindIdentExpr:
		entry, ok := ctx.Symbols.Lookup(node.IdentName())
		if !ok {
			return ""
		}
		if entry.Type.IsPointer() && ctx.Symbols.IsOpaqueType(entry.Type.Name) {
			return entry.Type.Name
		}
	case ast.KindCastExpr:
		// Either direction is a violation: casting to an opaque pointer
		// before reading, or casting an opaque pointer to something
		// readable, as in *((int *)f) on a FILE *.
		cast := node.Cast()
		if cast == nil {
			return ""
		}
		if cast.To.IsPointer() && ctx.Symbols.IsOpaqueType(cast.To.Name) {
			return cast.To.Name
		}
		if cast.From.IsPointer() && ctx.Symbols.IsOpaqueType(cast.From.Name) {
			return cast.From.Name
		}
	}
	return ""
}
