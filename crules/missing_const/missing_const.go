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

// Package missing_const flags pointer parameters that are never
// written through inside the function body and could be const.
package missing_const

import (
	"fmt"

	pb "naive.systems/rulecheck/analyzer/proto"
	"naive.systems/rulecheck/ast"
	"naive.systems/rulecheck/rule"
)

const ID = "param.missing-const"

func New() *rule.Rule {
	return &rule.Rule{
		ID:              ID,
		Title:           "pointer parameter is never written through",
		DefaultSeverity: pb.Severity_INFO,
		Kinds:           []ast.Kind{ast.KindFunctionDecl},
		Check:           check,
	}
}

// check fires on the function declaration and looks ahead into its own
// body only; it never leaves the declaration's subtree.
func check(node *ast.Node, ctx *rule.Context) []rule.Finding {
	var body *ast.Node
	var params []*ast.Node
	for _, child := range node.Children {
		switch child.Kind {
		case ast.KindParamDecl:
			params = append(params, child)
		case ast.KindCompoundStmt:
			body = child
		}
	}
	if body == nil {
		return nil
	}

	var findings []rule.Finding
	for _, param := range params {
		info := param.Param()
		if info == nil || info.Name == "" {
			continue
		}
		if !info.Type.IsPointer() || info.Type.Const {
			continue
		}
		if writtenThrough(body, info.Name) {
			continue
		}
		constType := info.Type
		constType.Const = true
		findings = append(findings, rule.Finding{
			Span: param.Span,
			Message: fmt.Sprintf("pointer parameter '%s' is never written through; it can be declared '%s%s'",
				info.Name, constType, info.Name),
			FixIt: fmt.Sprintf("%s%s", constType, info.Name),
		})
	}
	return findings
}

// writtenThrough reports whether the body contains a store through the
// named pointer. Passing the bare pointer to another call counts: the
// callee may write through it, so the parameter cannot soundly gain a
// const qualifier.
func writtenThrough(node *ast.Node, name string) bool {
	switch node.Kind {
	case ast.KindBinaryExpr:
		if info := node.Binary(); info != nil && isAssignOp(info.Op) && len(node.Children) == 2 {
			if derefTarget(node.Children[0]) == name {
				return true
			}
		}
	case ast.KindUnaryExpr:
		if info := node.Unary(); info != nil && (info.Op == "++" || info.Op == "--") && len(node.Children) == 1 {
			if derefTarget(node.Children[0]) == name {
				return true
			}
		}
	case ast.KindCallExpr:
		for _, arg := range node.Children {
			if arg.IdentName() == name {
				return true
			}
		}
	}
	for _, child := range node.Children {
		if writtenThrough(child, name) {
			return true
		}
	}
	return false
}

// derefTarget returns the base identifier when the expression stores
// through a pointer: *p, p[i], p->m. A bare identifier is not a store
// through the pointee, only a reassignment of the pointer itself.
func derefTarget(node *ast.Node) string {
	switch node.Kind {
	case ast.KindUnaryExpr:
		if info := node.Unary(); info != nil && info.Op == "*" && len(node.Children) == 1 {
			return node.Children[0].IdentName()
		}
	case ast.KindIndexExpr:
		if len(node.Children) >= 1 {
			return node.Children[0].IdentName()
		}
	case ast.KindMemberExpr:
		if info := node.Member(); info != nil && info.Arrow && len(node.Children) == 1 {
			return node.Children[0].IdentName()
		}
	}
	return ""
}

func isAssignOp(op string) bool {
	switch op {
	case "=", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<=", ">>=":
		return true
	}
	return false
}
