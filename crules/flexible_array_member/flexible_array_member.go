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

// Package flexible_array_member flags structs whose last member is a
// trailing array of unspecified size.
package flexible_array_member

import (
	"fmt"

	pb "naive.systems/rulecheck/analyzer/proto"
	"naive.systems/rulecheck/ast"
	"naive.systems/rulecheck/rule"
)

const ID = "struct.flexible-array-member"

func New() *rule.Rule {
	return &rule.Rule{
		ID:              ID,
		Title:           "struct declares a flexible array member",
		DefaultSeverity: pb.Severity_WARNING,
		Kinds:           []ast.Kind{ast.KindStructDecl},
		Check:           check,
	}
}

func check(node *ast.Node, ctx *rule.Context) []rule.Finding {
	var last *ast.Node
	for _, child := range node.Children {
		if child.Kind == ast.KindFieldDecl {
			last = child
		}
	}
	if last == nil {
		return nil
	}
	field := last.Field()
	if field == nil || !field.Type.Flexible {
		return nil
	}
	structName := "(anonymous)"
	if info := node.Struct(); info != nil && info.Name != "" {
		structName = info.Name
	}
	return []rule.Finding{{
		Span: node.Span,
		Message: fmt.Sprintf("struct '%s' declares flexible array member '%s'; its size is fixed only at allocation time",
			structName, field.Name),
	}}
}
