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

package symtab

import (
	"testing"

	"naive.systems/rulecheck/ast"
)

func TestLookup(t *testing.T) {
	table := NewTable()
	table.DefineSymbol(&Entry{
		Name: "s",
		Type: ast.TypeRef{Name: "char", PointerDepth: 1},
		Def:  ast.NewSpan("input.c", 3, 20, 3, 26),
	})

	entry, ok := table.Lookup("s")
	if !ok {
		t.Fatal("Lookup(s) not found")
	}
	if !entry.Type.IsPointer() {
		t.Errorf("entry type = %v, want pointer", entry.Type)
	}
	if _, ok := table.Lookup("missing"); ok {
		t.Error("Lookup(missing) found an entry")
	}
}

func TestRedeclarationReplaces(t *testing.T) {
	table := NewTable()
	table.DefineSymbol(&Entry{Name: "x", Type: ast.TypeRef{Name: "int"}})
	table.DefineSymbol(&Entry{Name: "x", Type: ast.TypeRef{Name: "long"}})
	entry, _ := table.Lookup("x")
	if entry.Type.Name != "long" {
		t.Errorf("redeclared type = %q, want %q", entry.Type.Name, "long")
	}
}

func TestOpaqueTypes(t *testing.T) {
	table := NewTable()
	table.DefineType(&TypeEntry{Name: "FILE", Opaque: true})
	table.DefineType(&TypeEntry{Name: "FlexArray"})

	if !table.IsOpaqueType("FILE") {
		t.Error("FILE is not reported opaque")
	}
	if table.IsOpaqueType("FlexArray") {
		t.Error("FlexArray is reported opaque")
	}
	if table.IsOpaqueType("undeclared") {
		t.Error("undeclared type is reported opaque")
	}
}
