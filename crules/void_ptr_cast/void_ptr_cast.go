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

// Package void_ptr_cast flags casts from a generic void pointer
// directly to a concrete object pointer type.
package void_ptr_cast

import (
	"fmt"

	pb "naive.systems/rulecheck/analyzer/proto"
	"naive.systems/rulecheck/ast"
	"naive.systems/rulecheck/rule"
)

const ID = "cast.void-ptr-direct"

func New() *rule.Rule {
	return &rule.Rule{
		ID:              ID,
		Title:           "direct cast from void pointer to concrete pointer type",
		DefaultSeverity: pb.Severity_WARNING,
		Kinds:           []ast.Kind{ast.KindCastExpr},
		Check:           check,
	}
}

func check(node *ast.Node, ctx *rule.Context) []rule.Finding {
	cast := node.Cast()
	if cast == nil {
		return nil
	}
	if !cast.From.IsVoidPointer() || !cast.To.IsPointer() || cast.To.Name == "void" {
		return nil
	}
	return []rule.Finding{{
		Span: node.Span,
		Message: fmt.Sprintf("cast from '%s' directly to '%s' without an intermediate typed value",
			cast.From, cast.To),
	}}
}
