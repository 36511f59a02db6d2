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

package runner

import (
	"testing"

	"naive.systems/rulecheck/ast"
	"naive.systems/rulecheck/crules/analyzer"
	"naive.systems/rulecheck/cruleslib/options"
	"naive.systems/rulecheck/rule"
	"naive.systems/rulecheck/symtab"
)

func unitWithFlexibleStruct(file string) *ast.Node {
	return ast.New(ast.KindTranslationUnit, ast.NewSpan(file, 1, 1, 5, 1), &ast.UnitInfo{},
		ast.New(ast.KindStructDecl, ast.NewSpan(file, 2, 1, 4, 2), &ast.StructInfo{Name: "S"},
			ast.New(ast.KindFieldDecl, ast.NewSpan(file, 3, 3, 3, 14), &ast.FieldInfo{
				Name: "tail",
				Type: ast.TypeRef{Name: "char", Array: true, Flexible: true},
			})))
}

// The child escapes the unit span, so the engine rejects the tree.
func malformedUnit(file string) *ast.Node {
	return ast.New(ast.KindTranslationUnit, ast.NewSpan(file, 1, 1, 3, 1), &ast.UnitInfo{},
		ast.New(ast.KindStructDecl, ast.NewSpan(file, 2, 1, 9, 2), &ast.StructInfo{Name: "S"}))
}

func testRegistry(t *testing.T) *rule.Registry {
	t.Helper()
	registry, err := analyzer.NewRegistry(nil)
	if err != nil {
		t.Fatalf("analyzer.NewRegistry: %v", err)
	}
	return registry
}

func testEnvOptions() *options.EnvOptions {
	return &options.EnvOptions{NumWorkers: 2, Lang: "en"}
}

func TestRunAnalyzesAllUnits(t *testing.T) {
	tasks := []UnitTask{
		{Id: 0, Path: "c.c", Root: unitWithFlexibleStruct("c.c"), Symbols: symtab.NewTable()},
		{Id: 1, Path: "a.c", Root: unitWithFlexibleStruct("a.c"), Symbols: symtab.NewTable()},
		{Id: 2, Path: "b.c", Root: unitWithFlexibleStruct("b.c"), Symbols: symtab.NewTable()},
	}

	results, errs := Run(tasks, testRegistry(t), testEnvOptions())
	for i, err := range errs {
		if err != nil {
			t.Fatalf("task %d: %v", i, err)
		}
	}
	if len(results.Results) != 3 {
		t.Fatalf("got %d results, want 3", len(results.Results))
	}
	for i, path := range []string{"a.c", "b.c", "c.c"} {
		if results.Results[i].Path != path {
			t.Errorf("results[%d].Path = %q, want %q", i, results.Results[i].Path, path)
		}
		if results.Results[i].RuleId != "struct.flexible-array-member" {
			t.Errorf("results[%d].RuleId = %q", i, results.Results[i].RuleId)
		}
	}
}

func TestRunDeduplicatesIdenticalFindings(t *testing.T) {
	root := unitWithFlexibleStruct("dup.c")
	tasks := []UnitTask{
		{Id: 0, Path: "dup.c", Root: root, Symbols: symtab.NewTable()},
		{Id: 1, Path: "dup.c", Root: root, Symbols: symtab.NewTable()},
	}

	results, _ := Run(tasks, testRegistry(t), testEnvOptions())
	if len(results.Results) != 1 {
		t.Fatalf("got %d results after dedup, want 1", len(results.Results))
	}
}

func TestRunRecordsPerTaskErrors(t *testing.T) {
	tasks := []UnitTask{
		{Id: 0, Path: "good.c", Root: unitWithFlexibleStruct("good.c"), Symbols: symtab.NewTable()},
		{Id: 1, Path: "bad.c", Root: malformedUnit("bad.c"), Symbols: symtab.NewTable()},
	}

	results, errs := Run(tasks, testRegistry(t), testEnvOptions())
	if errs[0] != nil {
		t.Fatalf("healthy task failed: %v", errs[0])
	}
	if errs[1] == nil {
		t.Fatal("malformed unit did not produce an error")
	}
	if len(results.Results) != 1 {
		t.Fatalf("got %d results, want 1 from the healthy unit", len(results.Results))
	}
	if results.Results[0].Path != "good.c" {
		t.Errorf("results[0].Path = %q, want good.c", results.Results[0].Path)
	}
}

func TestRunWithNoTasks(t *testing.T) {
	results, errs := Run(nil, testRegistry(t), testEnvOptions())
	if len(errs) != 0 {
		t.Fatalf("got %d errors, want 0", len(errs))
	}
	if len(results.Results) != 0 {
		t.Fatalf("got %d results, want 0", len(results.Results))
	}
}
