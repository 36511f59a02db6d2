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

// Package leading_underscore flags identifiers that intrude on the
// reserved namespace and macros that break the upper snake case
// convention.
package leading_underscore

import (
	"fmt"
	"unicode"

	pb "naive.systems/rulecheck/analyzer/proto"
	"naive.systems/rulecheck/ast"
	"naive.systems/rulecheck/rule"
)

const ID = "naming.leading-underscore"

func New() *rule.Rule {
	return &rule.Rule{
		ID:              ID,
		Title:           "identifier begins with an underscore or breaks the macro naming convention",
		DefaultSeverity: pb.Severity_WARNING,
		Kinds: []ast.Kind{
			ast.KindMacroDecl,
			ast.KindVarDecl,
			ast.KindFunctionDecl,
			ast.KindTypedefDecl,
			ast.KindParamDecl,
		},
		Check: check,
	}
}

func check(node *ast.Node, ctx *rule.Context) []rule.Finding {
	name := declName(node)
	if name == "" {
		return nil
	}
	if hasReservedPrefix(name) {
		return []rule.Finding{{
			Span:    node.Span,
			Message: fmt.Sprintf("identifier '%s' begins with an underscore, which is reserved for the implementation", name),
		}}
	}
	if node.Kind == ast.KindMacroDecl && !isUpperSnake(name) {
		return []rule.Finding{{
			Span:    node.Span,
			Message: fmt.Sprintf("macro '%s' is not in upper snake case", name),
		}}
	}
	return nil
}

func declName(node *ast.Node) string {
	switch node.Kind {
	case ast.KindMacroDecl:
		if info := node.Macro(); info != nil {
			return info.Name
		}
	case ast.KindVarDecl:
		if info := node.Var(); info != nil {
			return info.Name
		}
	case ast.KindFunctionDecl:
		if info := node.Func(); info != nil {
			return info.Name
		}
	case ast.KindTypedefDecl:
		if info := node.Typedef(); info != nil {
			return info.Name
		}
	case ast.KindParamDecl:
		if info := node.Param(); info != nil {
			return info.Name
		}
	}
	return ""
}

func hasReservedPrefix(name string) bool {
	if len(name) < 2 || name[0] != '_' {
		return false
	}
	second := rune(name[1])
	return unicode.IsLetter(second) || second == '_'
}

func isUpperSnake(name string) bool {
	for _, r := range name {
		if unicode.IsLower(r) {
			return false
		}
	}
	return true
}
