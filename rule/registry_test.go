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

package rule

import (
	"strings"
	"testing"

	pb "naive.systems/rulecheck/analyzer/proto"
	"naive.systems/rulecheck/ast"
)

func noopCheck(node *ast.Node, ctx *Context) []Finding {
	return nil
}

func testRule(id string, kinds ...ast.Kind) *Rule {
	if len(kinds) == 0 {
		kinds = []ast.Kind{ast.KindStructDecl}
	}
	return &Rule{
		ID:              id,
		Title:           id,
		DefaultSeverity: pb.Severity_WARNING,
		Kinds:           kinds,
		Check:           noopCheck,
	}
}

func TestRegisterRejectsDuplicateID(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(testRule("a.b")); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	err := registry.Register(testRule("a.b"))
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("second Register = %v, want duplicate id error", err)
	}
}

func TestRegisterValidatesRule(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(&Rule{ID: "", Kinds: []ast.Kind{ast.KindCastExpr}, Check: noopCheck}); err == nil {
		t.Error("empty id accepted")
	}
	if err := registry.Register(&Rule{ID: "x.y", Kinds: []ast.Kind{ast.KindCastExpr}}); err == nil {
		t.Error("nil check function accepted")
	}
	if err := registry.Register(&Rule{ID: "x.z", Check: noopCheck}); err == nil {
		t.Error("empty kind list accepted")
	}
}

func TestDisabledRuleLeftOutOfIndex(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(testRule("keep.me", ast.KindCastExpr))
	registry.MustRegister(testRule("drop.me", ast.KindCastExpr))
	if err := registry.Disable("drop.me"); err != nil {
		t.Fatalf("Disable: %v", err)
	}
	registry.Freeze()

	rules := registry.Lookup(ast.KindCastExpr)
	if len(rules) != 1 || rules[0].ID != "keep.me" {
		t.Fatalf("Lookup(CastExpr) = %v, want [keep.me]", ruleIDs(rules))
	}
}

func TestEnableRestoresRule(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(testRule("a.b", ast.KindForStmt))
	if err := registry.Disable("a.b"); err != nil {
		t.Fatalf("Disable: %v", err)
	}
	if err := registry.Enable("a.b"); err != nil {
		t.Fatalf("Enable: %v", err)
	}
	registry.Freeze()
	if len(registry.Lookup(ast.KindForStmt)) != 1 {
		t.Fatal("re-enabled rule missing from index")
	}
}

func TestEnableUnknownRule(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Enable("no.such"); err == nil {
		t.Error("Enable(no.such) succeeded")
	}
	if err := registry.Disable("no.such"); err == nil {
		t.Error("Disable(no.such) succeeded")
	}
}

func TestLookupKeepsRegistrationOrder(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(testRule("z.last-name-first", ast.KindStructDecl))
	registry.MustRegister(testRule("a.registered-second", ast.KindStructDecl))
	registry.Freeze()

	rules := registry.Lookup(ast.KindStructDecl)
	want := []string{"z.last-name-first", "a.registered-second"}
	got := ruleIDs(rules)
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("Lookup order = %v, want %v", got, want)
	}
}

func TestMutationAfterFreezePanics(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(testRule("a.b"))
	registry.Freeze()
	defer func() {
		if recover() == nil {
			t.Fatal("Register after Freeze did not panic")
		}
	}()
	_ = registry.Register(testRule("c.d"))
}

func TestSeverityOverride(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(testRule("a.b"))
	if registry.Severity("a.b") != pb.Severity_WARNING {
		t.Fatalf("default severity = %v, want WARNING", registry.Severity("a.b"))
	}
	if err := registry.OverrideSeverity("a.b", pb.Severity_ERROR); err != nil {
		t.Fatalf("OverrideSeverity: %v", err)
	}
	if registry.Severity("a.b") != pb.Severity_ERROR {
		t.Fatalf("overridden severity = %v, want ERROR", registry.Severity("a.b"))
	}
}

func TestConfigApply(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(testRule("a.b", ast.KindStructDecl))
	registry.MustRegister(testRule("c.d", ast.KindStructDecl))

	config, err := ParseConfig([]byte(`
rules:
  a.b:
    enabled: false
  c.d:
    severity: error
`))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if err := config.Apply(registry); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	registry.Freeze()

	if len(registry.Lookup(ast.KindStructDecl)) != 1 {
		t.Error("disabled rule still in index")
	}
	if registry.Severity("c.d") != pb.Severity_ERROR {
		t.Errorf("severity of c.d = %v, want ERROR", registry.Severity("c.d"))
	}
}

func TestConfigRejectsUnknownRule(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(testRule("a.b"))
	config, err := ParseConfig([]byte("rules:\n  no.such:\n    severity: error\n"))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if err := config.Apply(registry); err == nil {
		t.Fatal("Apply accepted an unknown rule id")
	}
}

func TestConfigRejectsBadSeverity(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(testRule("a.b"))
	config, err := ParseConfig([]byte("rules:\n  a.b:\n    severity: fatal\n"))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if err := config.Apply(registry); err == nil {
		t.Fatal("Apply accepted severity \"fatal\"")
	}
}

func ruleIDs(rules []*Rule) []string {
	ids := make([]string, 0, len(rules))
	for _, ru := range rules {
		ids = append(ids, ru.ID)
	}
	return ids
}
