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

package void_ptr_cast

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

func runCast(t *testing.T, from, to ast.TypeRef) *pb.ResultsList {
	t.Helper()
	root := ast.New(ast.KindTranslationUnit, ast.NewSpan(testFile, 1, 1, 5, 1), &ast.UnitInfo{},
		ast.New(ast.KindCastExpr, ast.NewSpan(testFile, 2, 3, 2, 20), &ast.CastInfo{From: from, To: to}))
	registry := rule.NewRegistry()
	registry.MustRegister(New())
	registry.Freeze()
	results, err := engine.Run(context.Background(), testFile, root, symtab.NewTable(), registry)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return results
}

func TestVoidPointerToConcretePointer(t *testing.T) {
	results := runCast(t,
		ast.TypeRef{Name: "void", PointerDepth: 1},
		ast.TypeRef{Name: "int", PointerDepth: 1})
	if len(results.Results) != 1 {
		t.Fatalf("got %d findings, want 1", len(results.Results))
	}
	r := results.Results[0]
	if r.RuleId != ID {
		t.Errorf("rule id = %s, want %s", r.RuleId, ID)
	}
	if !strings.Contains(r.ErrorMessage, "void *") || !strings.Contains(r.ErrorMessage, "int *") {
		t.Errorf("message %q does not name both types", r.ErrorMessage)
	}
}

func TestVoidToVoidPointerAllowed(t *testing.T) {
	results := runCast(t,
		ast.TypeRef{Name: "void", PointerDepth: 1},
		ast.TypeRef{Name: "void", PointerDepth: 1})
	if len(results.Results) != 0 {
		t.Fatalf("got %d findings, want 0", len(results.Results))
	}
}

func TestTypedPointerCastAllowed(t *testing.T) {
	results := runCast(t,
		ast.TypeRef{Name: "int", PointerDepth: 1},
		ast.TypeRef{Name: "char", PointerDepth: 1})
	if len(results.Results) != 0 {
		t.Fatalf("got %d findings, want 0", len(results.Results))
	}
}

func TestVoidPointerToIntegerAllowed(t *testing.T) {
	// Casting the pointer value itself to an integer is a different
	// defect class, not this rule's.
	results := runCast(t,
		ast.TypeRef{Name: "void", PointerDepth: 1},
		ast.TypeRef{Name: "uintptr_t"})
	if len(results.Results) != 0 {
		t.Fatalf("got %d findings, want 0", len(results.Results))
	}
}
