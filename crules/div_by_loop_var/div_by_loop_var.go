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

// Package div_by_loop_var flags divisions by a loop control variable
// whose first iteration value is statically zero.
package div_by_loop_var

import (
	"fmt"

	pb "naive.systems/rulecheck/analyzer/proto"
	"naive.systems/rulecheck/ast"
	"naive.systems/rulecheck/rule"
)

const ID = "arith.div-by-loop-var"

func New() *rule.Rule {
	return &rule.Rule{
		ID:              ID,
		Title:           "division by a loop variable that starts at zero",
		DefaultSeverity: pb.Severity_ERROR,
		Kinds:           []ast.Kind{ast.KindBinaryExpr},
		Check:           check,
	}
}

func check(node *ast.Node, ctx *rule.Context) []rule.Finding {
	binary := node.Binary()
	if binary == nil || (binary.Op != "/" && binary.Op != "%") {
		return nil
	}
	if len(node.Children) != 2 {
		return nil
	}
	divisor := node.Children[1].IdentName()
	if divisor == "" {
		return nil
	}
	loop := ctx.Enclosing(ast.KindForStmt)
	if loop == nil {
		return nil
	}
	info := loop.For()
	if info == nil || info.ControlVar != divisor {
		return nil
	}
	if !info.HasStaticInit || info.StaticInit != 0 {
		return nil
	}
	return []rule.Finding{{
		Span: node.Span,
		Message: fmt.Sprintf("division by loop variable '%s', which is 0 on the first iteration",
			divisor),
	}}
}
