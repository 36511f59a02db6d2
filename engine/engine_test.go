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

package engine

import (
	"context"
	"strings"
	"testing"

	"google.golang.org/protobuf/proto"
	pb "naive.systems/rulecheck/analyzer/proto"
	"naive.systems/rulecheck/ast"
	"naive.systems/rulecheck/rule"
	"naive.systems/rulecheck/symtab"
)

const testFile = "input.c"

func span(startLine, startColumn, endLine, endColumn int32) ast.Span {
	return ast.NewSpan(testFile, startLine, startColumn, endLine, endColumn)
}

// testUnit builds a small but representative tree:
//
//	struct S { char tail[]; };      // lines 2-4
//	void f(void) { (int *)p; }      // lines 6-8
func testUnit() *ast.Node {
	return ast.New(ast.KindTranslationUnit, span(1, 1, 10, 1), &ast.UnitInfo{},
		ast.New(ast.KindStructDecl, span(2, 1, 4, 2), &ast.StructInfo{Name: "S"},
			ast.New(ast.KindFieldDecl, span(3, 3, 3, 14), &ast.FieldInfo{
				Name: "tail",
				Type: ast.TypeRef{Name: "char", Array: true, Flexible: true},
			})),
		ast.New(ast.KindFunctionDecl, span(6, 1, 8, 2), &ast.FuncInfo{Name: "f"},
			ast.New(ast.KindCompoundStmt, span(6, 14, 8, 2), nil,
				ast.New(ast.KindCastExpr, span(7, 3, 7, 12), &ast.CastInfo{
					From: ast.TypeRef{Name: "void", PointerDepth: 1},
					To:   ast.TypeRef{Name: "int", PointerDepth: 1},
				}))))
}

func reportingRule(id string, kinds ...ast.Kind) *rule.Rule {
	return &rule.Rule{
		ID:              id,
		Title:           id,
		DefaultSeverity: pb.Severity_WARNING,
		Kinds:           kinds,
		Check: func(node *ast.Node, ctx *rule.Context) []rule.Finding {
			return []rule.Finding{{Span: node.Span, Message: "hit " + id}}
		},
	}
}

func frozen(rules ...*rule.Rule) *rule.Registry {
	registry := rule.NewRegistry()
	for _, ru := range rules {
		registry.MustRegister(ru)
	}
	registry.Freeze()
	return registry
}

func TestRunRequiresFrozenRegistry(t *testing.T) {
	registry := rule.NewRegistry()
	registry.MustRegister(reportingRule("a.b", ast.KindStructDecl))

	_, err := Run(context.Background(), testFile, testUnit(), symtab.NewTable(), registry)
	if err == nil {
		t.Fatal("Run accepted an unfrozen registry")
	}
}

func TestRunRejectsMalformedTree(t *testing.T) {
	// The child escapes the parent span.
	root := ast.New(ast.KindTranslationUnit, span(1, 1, 5, 1), &ast.UnitInfo{},
		ast.New(ast.KindStructDecl, span(4, 1, 9, 2), &ast.StructInfo{Name: "S"}))
	registry := frozen(reportingRule("a.b", ast.KindStructDecl))

	_, err := Run(context.Background(), testFile, root, symtab.NewTable(), registry)
	if err == nil {
		t.Fatal("Run accepted a tree with an escaping child span")
	}
}

func TestRunVisitsEveryMatchingNodeOnce(t *testing.T) {
	registry := frozen(
		reportingRule("on.struct", ast.KindStructDecl),
		reportingRule("on.cast", ast.KindCastExpr),
		reportingRule("on.field", ast.KindFieldDecl),
	)

	results, err := Run(context.Background(), testFile, testUnit(), symtab.NewTable(), registry)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	counts := make(map[string]int)
	for _, r := range results.Results {
		counts[r.RuleId]++
	}
	for _, id := range []string{"on.struct", "on.cast", "on.field"} {
		if counts[id] != 1 {
			t.Errorf("rule %s fired %d times, want 1", id, counts[id])
		}
	}
}

func TestRunResultsSortedAndDeterministic(t *testing.T) {
	registry := frozen(
		reportingRule("z.rule", ast.KindCastExpr, ast.KindStructDecl),
		reportingRule("a.rule", ast.KindCastExpr, ast.KindStructDecl),
	)

	first, err := Run(context.Background(), testFile, testUnit(), symtab.NewTable(), registry)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for i := 1; i < len(first.Results); i++ {
		prev, cur := first.Results[i-1], first.Results[i]
		if prev.LineNumber > cur.LineNumber {
			t.Fatalf("results not sorted by line: %v before %v", prev, cur)
		}
		if prev.LineNumber == cur.LineNumber && prev.Column == cur.Column && prev.RuleId > cur.RuleId {
			t.Fatalf("tie not broken by rule id: %v before %v", prev, cur)
		}
	}

	second, err := Run(context.Background(), testFile, testUnit(), symtab.NewTable(), registry)
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if !proto.Equal(first, second) {
		t.Error("two runs over the same input differ")
	}
}

func TestRunIsolatesPanickingRule(t *testing.T) {
	broken := &rule.Rule{
		ID:              "broken.rule",
		Title:           "always panics",
		DefaultSeverity: pb.Severity_WARNING,
		Kinds:           []ast.Kind{ast.KindStructDecl},
		Check: func(node *ast.Node, ctx *rule.Context) []rule.Finding {
			panic("nil map write")
		},
	}
	registry := frozen(broken, reportingRule("healthy.rule", ast.KindCastExpr))

	results, err := Run(context.Background(), testFile, testUnit(), symtab.NewTable(), registry)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	var crash, healthy *pb.Result
	for _, r := range results.Results {
		switch r.RuleId {
		case "broken.rule":
			crash = r
		case "healthy.rule":
			healthy = r
		}
	}
	if crash == nil {
		t.Fatal("no synthetic result for the crashed rule")
	}
	if crash.Severity != pb.Severity_ERROR {
		t.Errorf("crash severity = %v, want ERROR", crash.Severity)
	}
	if !strings.Contains(crash.ErrorMessage, "broken.rule") {
		t.Errorf("crash message %q does not name the offending rule", crash.ErrorMessage)
	}
	if healthy == nil {
		t.Error("healthy rule lost its finding to another rule's crash")
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	registry := frozen(reportingRule("a.b", ast.KindStructDecl))
	results, err := Run(ctx, testFile, testUnit(), symtab.NewTable(), registry)
	if err != context.Canceled {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if results != nil {
		t.Error("cancelled run still produced results")
	}
}

func TestRunSkipsDisabledRules(t *testing.T) {
	registry := rule.NewRegistry()
	registry.MustRegister(reportingRule("off.rule", ast.KindStructDecl))
	if err := registry.Disable("off.rule"); err != nil {
		t.Fatalf("Disable: %v", err)
	}
	registry.Freeze()

	results, err := Run(context.Background(), testFile, testUnit(), symtab.NewTable(), registry)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results.Results) != 0 {
		t.Fatalf("disabled rule produced %d results", len(results.Results))
	}
}

func TestAncestorsVisibleDuringVisit(t *testing.T) {
	sawFunction := false
	ru := &rule.Rule{
		ID:              "ctx.rule",
		Title:           "checks ancestors",
		DefaultSeverity: pb.Severity_INFO,
		Kinds:           []ast.Kind{ast.KindCastExpr},
		Check: func(node *ast.Node, ctx *rule.Context) []rule.Finding {
			if fn := ctx.Enclosing(ast.KindFunctionDecl); fn != nil && fn.Func().Name == "f" {
				sawFunction = true
			}
			return nil
		},
	}
	registry := frozen(ru)

	if _, err := Run(context.Background(), testFile, testUnit(), symtab.NewTable(), registry); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !sawFunction {
		t.Error("enclosing function not visible from the cast expression")
	}
}

func TestHasBlockingFindings(t *testing.T) {
	warnOnly := &pb.ResultsList{Results: []*pb.Result{{Severity: pb.Severity_WARNING}}}
	if HasBlockingFindings(warnOnly) {
		t.Error("warning-only list reported as blocking")
	}
	withError := &pb.ResultsList{Results: []*pb.Result{
		{Severity: pb.Severity_WARNING},
		{Severity: pb.Severity_ERROR},
	}}
	if !HasBlockingFindings(withError) {
		t.Error("error result not reported as blocking")
	}
}
