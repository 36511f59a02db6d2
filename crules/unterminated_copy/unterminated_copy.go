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

// Package unterminated_copy flags bounded string copies that can fill
// the whole destination buffer, leave no terminating NUL, and whose
// destination is later consumed as a string.
package unterminated_copy

import (
	"fmt"

	pb "naive.systems/rulecheck/analyzer/proto"
	"naive.systems/rulecheck/ast"
	"naive.systems/rulecheck/rule"
)

const ID = "string.unterminated-copy"

// boundedCopies are the copy routines that do not NUL-terminate when
// the source is at least as long as the bound.
var boundedCopies = map[string]bool{
	"strncpy": true,
	"stpncpy": true,
}

// stringConsumers are routines that read their argument up to a NUL.
var stringConsumers = map[string]bool{
	"printf":   true,
	"fprintf":  true,
	"sprintf":  true,
	"snprintf": true,
	"puts":     true,
	"fputs":    true,
	"strlen":   true,
	"strcpy":   true,
	"strcat":   true,
	"strcmp":   true,
	"strdup":   true,
	"strstr":   true,
	"strchr":   true,
}

func New() *rule.Rule {
	return &rule.Rule{
		ID:              ID,
		Title:           "bounded copy can leave the destination without a terminating NUL",
		DefaultSeverity: pb.Severity_ERROR,
		Kinds:           []ast.Kind{ast.KindCallExpr},
		Check:           check,
	}
}

// check fires on the copy call and looks ahead within the enclosing
// function only: a NUL store after the call clears the finding, a
// string-consuming use after the call confirms it.
func check(node *ast.Node, ctx *rule.Context) []rule.Finding {
	call := node.Call()
	if call == nil || !boundedCopies[call.Callee] {
		return nil
	}
	if len(node.Children) != 3 {
		return nil
	}
	dst := node.Children[0].IdentName()
	if dst == "" {
		return nil
	}
	if !boundEqualsBufferSize(node.Children[2], dst, ctx) {
		return nil
	}

	function := ctx.Enclosing(ast.KindFunctionDecl)
	if function == nil {
		return nil
	}
	if storesNulAfter(function, node.Span, dst) {
		return nil
	}
	if !consumedAsStringAfter(function, node.Span, dst) {
		return nil
	}
	return []rule.Finding{{
		Span: node.Span,
		Message: fmt.Sprintf("%s can fill all of '%s' without a terminating NUL, and '%s' is later used as a string",
			call.Callee, dst, dst),
		FixIt: fmt.Sprintf("%s[sizeof(%s) - 1] = '\\0';", dst, dst),
	}}
}

// boundEqualsBufferSize reports whether the copy bound spans the whole
// destination buffer: sizeof(dst), or an integer literal equal to the
// declared array length of dst.
func boundEqualsBufferSize(bound *ast.Node, dst string, ctx *rule.Context) bool {
	if bound.Kind == ast.KindUnaryExpr {
		info := bound.Unary()
		return info != nil && info.Op == "sizeof" &&
			len(bound.Children) == 1 && bound.Children[0].IdentName() == dst
	}
	if bound.Kind == ast.KindIntLiteral {
		entry, ok := ctx.Symbols.Lookup(dst)
		if !ok || !entry.Type.Array || entry.Type.Flexible {
			return false
		}
		if value := bound.Int(); value != nil {
			return value.Value == entry.Type.ArrayLen
		}
	}
	return false
}

// storesNulAfter reports whether the function stores into dst[...]
// after the copy. Any indexed store counts; tracking the stored value
// and the exact index would need constant propagation this engine does
// not do, and a false negative here only silences the finding.
func storesNulAfter(node *ast.Node, copySpan ast.Span, dst string) bool {
	if node.Kind == ast.KindBinaryExpr && copySpan.EndsBefore(node.Span) {
		if info := node.Binary(); info != nil && info.Op == "=" && len(node.Children) == 2 {
			lhs := node.Children[0]
			if lhs.Kind == ast.KindIndexExpr && len(lhs.Children) >= 1 && lhs.Children[0].IdentName() == dst {
				return true
			}
		}
	}
	for _, child := range node.Children {
		if storesNulAfter(child, copySpan, dst) {
			return true
		}
	}
	return false
}

func consumedAsStringAfter(node *ast.Node, copySpan ast.Span, dst string) bool {
	if node.Kind == ast.KindCallExpr && copySpan.EndsBefore(node.Span) {
		if call := node.Call(); call != nil && stringConsumers[call.Callee] {
			for _, arg := range node.Children {
				if arg.IdentName() == dst {
					return true
				}
			}
		}
	}
	for _, child := range node.Children {
		if consumedAsStringAfter(child, copySpan, dst) {
			return true
		}
	}
	return false
}
