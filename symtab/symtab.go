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

// Package symtab resolves identifiers of one translation unit to their
// declarations. The table is filled by the external parser and is
// read-only during analysis.
package symtab

import (
	"fmt"

	"naive.systems/rulecheck/ast"
)

type Storage int

const (
	StorageAuto Storage = iota
	StorageStatic
	StorageExtern
)

func (s Storage) String() string {
	switch s {
	case StorageAuto:
		return "auto"
	case StorageStatic:
		return "static"
	case StorageExtern:
		return "extern"
	default:
		return fmt.Sprintf("Storage(%d)", int(s))
	}
}

// Entry is one declared symbol.
type Entry struct {
	Name    string
	Type    ast.TypeRef
	Storage Storage
	Def     ast.Span
}

// TypeEntry is one declared type name. Opaque marks forward-declared or
// implementation-defined types (e.g. FILE) whose internals must not be
// inspected.
type TypeEntry struct {
	Name   string
	Opaque bool
	Def    ast.Span
}

// Table maps names to symbol and type entries. Lookups from many syntax
// nodes resolve to the same entry; the table owns the entries.
type Table struct {
	symbols map[string]*Entry
	types   map[string]*TypeEntry
}

func NewTable() *Table {
	return &Table{
		symbols: make(map[string]*Entry),
		types:   make(map[string]*TypeEntry),
	}
}

// DefineSymbol records a symbol declaration. Redeclaring a name replaces
// the previous entry; the engine analyzes one scope-flattened unit at a
// time and the parser is responsible for scope disambiguation.
func (t *Table) DefineSymbol(e *Entry) {
	t.symbols[e.Name] = e
}

// DefineType records a type declaration.
func (t *Table) DefineType(e *TypeEntry) {
	t.types[e.Name] = e
}

func (t *Table) Lookup(name string) (*Entry, bool) {
	e, ok := t.symbols[name]
	return e, ok
}

func (t *Table) LookupType(name string) (*TypeEntry, bool) {
	e, ok := t.types[name]
	return e, ok
}

// IsOpaqueType reports whether name is declared as an opaque type.
func (t *Table) IsOpaqueType(name string) bool {
	e, ok := t.types[name]
	return ok && e.Opaque
}
