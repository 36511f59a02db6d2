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

// Package analyzer assembles the built-in rule catalog and runs the
// per-unit analysis pipeline.
package analyzer

import (
	"context"

	pb "naive.systems/rulecheck/analyzer/proto"
	"naive.systems/rulecheck/ast"
	"naive.systems/rulecheck/crules/div_by_loop_var"
	"naive.systems/rulecheck/crules/flexible_array_member"
	"naive.systems/rulecheck/crules/leading_underscore"
	"naive.systems/rulecheck/crules/missing_const"
	"naive.systems/rulecheck/crules/opaque_deref"
	"naive.systems/rulecheck/crules/unterminated_copy"
	"naive.systems/rulecheck/crules/void_ptr_cast"
	"naive.systems/rulecheck/engine"
	"naive.systems/rulecheck/rule"
	"naive.systems/rulecheck/suppress"
	"naive.systems/rulecheck/symtab"
)

// DefaultRegistry returns the built-in catalog, still mutable so a
// front end can apply configuration before freezing.
func DefaultRegistry() *rule.Registry {
	registry := rule.NewRegistry()
	registry.MustRegister(leading_underscore.New())
	registry.MustRegister(flexible_array_member.New())
	registry.MustRegister(div_by_loop_var.New())
	registry.MustRegister(void_ptr_cast.New())
	registry.MustRegister(opaque_deref.New())
	registry.MustRegister(missing_const.New())
	registry.MustRegister(unterminated_copy.New())
	return registry
}

// NewRegistry builds the catalog, applies the given configuration and
// freezes the result for analysis. A nil config keeps the defaults.
func NewRegistry(config *rule.Config) (*rule.Registry, error) {
	registry := DefaultRegistry()
	if config != nil {
		if err := config.Apply(registry); err != nil {
			return nil, err
		}
	}
	registry.Freeze()
	return registry, nil
}

// Analyze runs the full per-unit pipeline: the engine pass, in-source
// suppression, and the final stable sort.
func Analyze(ctx context.Context, path string, root *ast.Node, symbols *symtab.Table, registry *rule.Registry) (*pb.ResultsList, error) {
	results, err := engine.Run(ctx, path, root, symbols, registry)
	if err != nil {
		return nil, err
	}
	results = suppress.Resolve(results, root)
	engine.SortResults(results)
	return results, nil
}
