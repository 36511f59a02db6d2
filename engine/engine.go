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

// Package engine walks one translation unit and dispatches every node
// to the applicable rules.
package engine

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/golang/glog"
	"golang.org/x/exp/slices"
	pb "naive.systems/rulecheck/analyzer/proto"
	"naive.systems/rulecheck/ast"
	"naive.systems/rulecheck/rule"
	"naive.systems/rulecheck/symtab"
)

// Run analyzes one translation unit: a single pre-order depth-first
// pass over the tree, visiting every node exactly once. The registry
// must be frozen. The returned list is sorted by (file, line, column,
// rule id); suppression has not been applied yet.
//
// Cancellation is cooperative, checked at the top of every node visit.
// A cancelled run returns no results at all, so a caller can never
// observe a half-filtered list.
func Run(ctx context.Context, path string, root *ast.Node, symbols *symtab.Table, registry *rule.Registry) (*pb.ResultsList, error) {
	if !registry.Frozen() {
		return nil, fmt.Errorf("analysis started before registry freeze")
	}
	if err := ast.Validate(root); err != nil {
		return nil, fmt.Errorf("translation unit %s: %v", path, err)
	}

	walker := &walker{
		ctx:      ctx,
		registry: registry,
		results:  &pb.ResultsList{},
		ruleCtx: rule.Context{
			Path:    path,
			Symbols: symbols,
		},
	}
	if err := walker.visit(root); err != nil {
		return nil, err
	}
	SortResults(walker.results)
	return walker.results, nil
}

type walker struct {
	ctx      context.Context
	registry *rule.Registry
	results  *pb.ResultsList
	// ruleCtx is reused across visits; Ancestors is the live traversal
	// stack, outermost first.
	ruleCtx rule.Context
}

func (w *walker) visit(node *ast.Node) error {
	if err := w.ctx.Err(); err != nil {
		return err
	}
	for _, ru := range w.registry.Lookup(node.Kind) {
		w.evalRule(ru, node)
	}
	w.ruleCtx.Ancestors = append(w.ruleCtx.Ancestors, node)
	for _, child := range node.Children {
		if err := w.visit(child); err != nil {
			return err
		}
	}
	w.ruleCtx.Ancestors = w.ruleCtx.Ancestors[:len(w.ruleCtx.Ancestors)-1]
	return nil
}

// evalRule invokes one matcher on one node. A panic inside the matcher
// is converted to a synthetic error-severity result tagged with the
// rule's own id, and the pass continues: one broken rule must never
// abort the analysis.
func (w *walker) evalRule(ru *rule.Rule, node *ast.Node) {
	defer func() {
		if r := recover(); r != nil {
			glog.Errorf("recovered in rule %s at %v: %v\n%s", ru.ID, node.Span, r, debug.Stack())
			w.results.Results = append(w.results.Results, &pb.Result{
				Path:         node.Span.File,
				LineNumber:   node.Span.StartLine,
				Column:       node.Span.StartColumn,
				RuleId:       ru.ID,
				Severity:     pb.Severity_ERROR,
				ErrorMessage: fmt.Sprintf("internal error while evaluating rule %s: %v", ru.ID, r),
			})
		}
	}()
	findings := ru.Check(node, &w.ruleCtx)
	for _, finding := range findings {
		w.results.Results = append(w.results.Results, &pb.Result{
			Path:         finding.Span.File,
			LineNumber:   finding.Span.StartLine,
			Column:       finding.Span.StartColumn,
			RuleId:       ru.ID,
			Severity:     w.registry.Severity(ru.ID),
			ErrorMessage: finding.Message,
			FixIt:        finding.FixIt,
		})
	}
}

// SortResults orders a list by (file, line, column, rule id). The sort
// is stable, so results that tie on all four keys keep their emission
// order and reruns of the same input stay byte-identical.
func SortResults(results *pb.ResultsList) {
	slices.SortStableFunc(results.Results, func(a, b *pb.Result) bool {
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		if a.LineNumber != b.LineNumber {
			return a.LineNumber < b.LineNumber
		}
		if a.Column != b.Column {
			return a.Column < b.Column
		}
		return a.RuleId < b.RuleId
	})
}

// HasBlockingFindings implements the exit status contract of front
// ends built on this engine: any error-severity result blocks.
func HasBlockingFindings(results *pb.ResultsList) bool {
	for _, result := range results.Results {
		if result.Severity == pb.Severity_ERROR {
			return true
		}
	}
	return false
}
