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

package missing_const

import (
	"context"
	"strings"
	"testing"

	pb "naive.systems/rulecheck/analyzer/proto"
	"naive.systems/rulecheck/ast"
	"naive.systems/rulecheck/engine"
	"naive.systems/rulecheck/rule"
	"naive.systems/rulecheck/symtab"
)

const testFile = "input.c"

func run(t *testing.T, root *ast.Node) *pb.ResultsList {
	t.Helper()
	registry := rule.NewRegistry()
	registry.MustRegister(New())
	registry.Freeze()
	results, err := engine.Run(context.Background(), testFile, root, symtab.NewTable(), registry)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return results
}

// function builds `size_t f(char *s) { <body statements> }` with the
// parameter on line 2 and the body starting on line 3.
func function(paramType ast.TypeRef, bodyStmts ...*ast.Node) *ast.Node {
	body := ast.New(ast.KindCompoundStmt, ast.NewSpan(testFile, 3, 1, 9, 2), nil, bodyStmts...)
	fn := ast.New(ast.KindFunctionDecl, ast.NewSpan(testFile, 2, 1, 9, 2),
		&ast.FuncInfo{Name: "f", ReturnType: ast.TypeRef{Name: "size_t"}},
		ast.New(ast.KindParamDecl, ast.NewSpan(testFile, 2, 10, 2, 17), &ast.ParamInfo{Name: "s", Type: paramType}),
		body)
	return ast.New(ast.KindTranslationUnit, ast.NewSpan(testFile, 1, 1, 10, 1), &ast.UnitInfo{}, fn)
}

func ident(line, col int32, name string) *ast.Node {
	return ast.New(ast.KindIdentExpr, ast.NewSpan(testFile, line, col, line, col+int32(len(name))-1),
		&ast.IdentInfo{Name: name})
}

// readLoop is `while (*s) { n++; s++; }`: reads through s, advances the
// pointer itself, never stores through it.
func readLoop() *ast.Node {
	cond := ast.New(ast.KindUnaryExpr, ast.NewSpan(testFile, 4, 10, 4, 12), &ast.UnaryInfo{Op: "*"},
		ident(4, 11, "s"))
	inc := ast.New(ast.KindUnaryExpr, ast.NewSpan(testFile, 5, 5, 5, 8), &ast.UnaryInfo{Op: "++"},
		ident(5, 5, "s"))
	body := ast.New(ast.KindCompoundStmt, ast.NewSpan(testFile, 4, 14, 6, 3), nil,
		ast.New(ast.KindExprStmt, ast.NewSpan(testFile, 5, 5, 5, 9), nil, inc))
	return ast.New(ast.KindWhileStmt, ast.NewSpan(testFile, 4, 3, 6, 3), nil, cond, body)
}

func TestReadOnlyPointerParamReported(t *testing.T) {
	root := function(ast.TypeRef{Name: "char", PointerDepth: 1}, readLoop())

	results := run(t, root)
	if len(results.Results) != 1 {
		t.Fatalf("got %d findings, want exactly 1", len(results.Results))
	}
	r := results.Results[0]
	if r.RuleId != ID || r.Severity != pb.Severity_INFO {
		t.Errorf("got %s/%v, want %s/INFO", r.RuleId, r.Severity, ID)
	}
	if r.LineNumber != 2 {
		t.Errorf("finding at line %d, want the parameter declaration line 2", r.LineNumber)
	}
	if !strings.Contains(r.FixIt, "const char *s") {
		t.Errorf("fix-it %q does not propose the const declaration", r.FixIt)
	}
}

func TestStoreThroughParamNotReported(t *testing.T) {
	// *s = 0;
	store := ast.New(ast.KindBinaryExpr, ast.NewSpan(testFile, 4, 3, 4, 10), &ast.BinaryInfo{Op: "="},
		ast.New(ast.KindUnaryExpr, ast.NewSpan(testFile, 4, 3, 4, 5), &ast.UnaryInfo{Op: "*"},
			ident(4, 4, "s")),
		ast.New(ast.KindIntLiteral, ast.NewSpan(testFile, 4, 8, 4, 8), &ast.IntInfo{Value: 0}))
	root := function(ast.TypeRef{Name: "char", PointerDepth: 1},
		ast.New(ast.KindExprStmt, ast.NewSpan(testFile, 4, 3, 4, 11), nil, store))

	if results := run(t, root); len(results.Results) != 0 {
		t.Fatalf("got %d findings, want 0: %v", len(results.Results), results.Results)
	}
}

func TestIndexedStoreNotReported(t *testing.T) {
	// s[0] = 'x';
	store := ast.New(ast.KindBinaryExpr, ast.NewSpan(testFile, 4, 3, 4, 12), &ast.BinaryInfo{Op: "="},
		ast.New(ast.KindIndexExpr, ast.NewSpan(testFile, 4, 3, 4, 6), nil,
			ident(4, 3, "s"),
			ast.New(ast.KindIntLiteral, ast.NewSpan(testFile, 4, 5, 4, 5), &ast.IntInfo{Value: 0})),
		ast.New(ast.KindIntLiteral, ast.NewSpan(testFile, 4, 10, 4, 12), &ast.IntInfo{Value: 'x'}))
	root := function(ast.TypeRef{Name: "char", PointerDepth: 1},
		ast.New(ast.KindExprStmt, ast.NewSpan(testFile, 4, 3, 4, 13), nil, store))

	if results := run(t, root); len(results.Results) != 0 {
		t.Fatalf("got %d findings, want 0", len(results.Results))
	}
}

func TestPointerEscapingToCallNotReported(t *testing.T) {
	// memset(s, 0, 8); -- the callee may write through s.
	call := ast.New(ast.KindCallExpr, ast.NewSpan(testFile, 4, 3, 4, 18), &ast.CallInfo{Callee: "memset"},
		ident(4, 10, "s"),
		ast.New(ast.KindIntLiteral, ast.NewSpan(testFile, 4, 13, 4, 13), &ast.IntInfo{Value: 0}),
		ast.New(ast.KindIntLiteral, ast.NewSpan(testFile, 4, 16, 4, 16), &ast.IntInfo{Value: 8}))
	root := function(ast.TypeRef{Name: "char", PointerDepth: 1},
		ast.New(ast.KindExprStmt, ast.NewSpan(testFile, 4, 3, 4, 19), nil, call))

	if results := run(t, root); len(results.Results) != 0 {
		t.Fatalf("got %d findings, want 0", len(results.Results))
	}
}

func TestConstParamNotReported(t *testing.T) {
	root := function(ast.TypeRef{Name: "char", PointerDepth: 1, Const: true}, readLoop())
	if results := run(t, root); len(results.Results) != 0 {
		t.Fatalf("got %d findings, want 0", len(results.Results))
	}
}

func TestNonPointerParamNotReported(t *testing.T) {
	root := function(ast.TypeRef{Name: "int"}, readLoop())
	if results := run(t, root); len(results.Results) != 0 {
		t.Fatalf("got %d findings, want 0", len(results.Results))
	}
}

func TestDeclarationWithoutBodyNotReported(t *testing.T) {
	fn := ast.New(ast.KindFunctionDecl, ast.NewSpan(testFile, 2, 1, 2, 30),
		&ast.FuncInfo{Name: "f", ReturnType: ast.TypeRef{Name: "size_t"}},
		ast.New(ast.KindParamDecl, ast.NewSpan(testFile, 2, 10, 2, 17),
			&ast.ParamInfo{Name: "s", Type: ast.TypeRef{Name: "char", PointerDepth: 1}}))
	root := ast.New(ast.KindTranslationUnit, ast.NewSpan(testFile, 1, 1, 10, 1), &ast.UnitInfo{}, fn)

	if results := run(t, root); len(results.Results) != 0 {
		t.Fatalf("got %d findings, want 0", len(results.Results))
	}
}
