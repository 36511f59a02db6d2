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
	"fmt"

	"github.com/golang/glog"
	pb "naive.systems/rulecheck/analyzer/proto"
	"naive.systems/rulecheck/ast"
)

// Registry holds the registered rules. It has two phases: a mutable
// registration phase and, after Freeze, an immutable analysis phase
// that may be shared across concurrent workers. Freeze establishes the
// happens-before edge between registration and analysis.
type Registry struct {
	rules    []*Rule
	byID     map[string]*Rule
	disabled map[string]bool
	override map[string]pb.Severity
	frozen   bool
	// byKind is the kind index, built by Freeze. It is on the traversal
	// hot path: one slice lookup per node, no allocation.
	byKind [][]*Rule
}

func NewRegistry() *Registry {
	return &Registry{
		byID:     make(map[string]*Rule),
		disabled: make(map[string]bool),
		override: make(map[string]pb.Severity),
	}
}

// Register adds a rule. Duplicate ids are a configuration error and
// fail registration.
func (r *Registry) Register(ru *Rule) error {
	r.mustBeMutable("Register")
	if ru.ID == "" {
		return fmt.Errorf("rule with empty id")
	}
	if ru.Check == nil {
		return fmt.Errorf("rule %s has no check function", ru.ID)
	}
	if len(ru.Kinds) == 0 {
		return fmt.Errorf("rule %s applies to no node kinds", ru.ID)
	}
	if _, exists := r.byID[ru.ID]; exists {
		return fmt.Errorf("duplicate rule id %s", ru.ID)
	}
	r.byID[ru.ID] = ru
	r.rules = append(r.rules, ru)
	return nil
}

// MustRegister is Register for the built-in catalog, where a duplicate
// id can only be a programming error.
func (r *Registry) MustRegister(ru *Rule) {
	if err := r.Register(ru); err != nil {
		glog.Fatalf("rule registration: %v", err)
	}
}

func (r *Registry) Enable(id string) error {
	r.mustBeMutable("Enable")
	if _, exists := r.byID[id]; !exists {
		return fmt.Errorf("unknown rule id %s", id)
	}
	delete(r.disabled, id)
	return nil
}

func (r *Registry) Disable(id string) error {
	r.mustBeMutable("Disable")
	if _, exists := r.byID[id]; !exists {
		return fmt.Errorf("unknown rule id %s", id)
	}
	r.disabled[id] = true
	return nil
}

// OverrideSeverity pins the reported severity for one rule.
func (r *Registry) OverrideSeverity(id string, s pb.Severity) error {
	r.mustBeMutable("OverrideSeverity")
	if _, exists := r.byID[id]; !exists {
		return fmt.Errorf("unknown rule id %s", id)
	}
	r.override[id] = s
	return nil
}

// Freeze builds the kind index and switches the registry to the
// immutable analysis phase. Disabled rules are left out of the index
// entirely, so they cost nothing during traversal.
func (r *Registry) Freeze() {
	if r.frozen {
		return
	}
	r.byKind = make([][]*Rule, ast.NumKinds())
	for _, ru := range r.rules {
		if r.disabled[ru.ID] {
			continue
		}
		for _, kind := range ru.Kinds {
			r.byKind[kind] = append(r.byKind[kind], ru)
		}
	}
	r.frozen = true
}

func (r *Registry) Frozen() bool {
	return r.frozen
}

// Lookup returns the enabled rules applicable to a node kind, in
// registration order. Only valid after Freeze.
func (r *Registry) Lookup(kind ast.Kind) []*Rule {
	if !r.frozen {
		panic("rule registry: Lookup before Freeze")
	}
	if kind < 0 || int(kind) >= len(r.byKind) {
		return nil
	}
	return r.byKind[kind]
}

// Severity returns the effective severity for a rule: the override if
// present, the rule default otherwise.
func (r *Registry) Severity(id string) pb.Severity {
	if s, ok := r.override[id]; ok {
		return s
	}
	if ru, ok := r.byID[id]; ok {
		return ru.DefaultSeverity
	}
	return pb.Severity_UNKNOWN
}

// Rules returns all registered rules in registration order, including
// disabled ones.
func (r *Registry) Rules() []*Rule {
	return r.rules
}

func (r *Registry) ByID(id string) (*Rule, bool) {
	ru, ok := r.byID[id]
	return ru, ok
}

func (r *Registry) mustBeMutable(op string) {
	if r.frozen {
		panic(fmt.Sprintf("rule registry: %s after Freeze", op))
	}
}
