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

/*
Package ast holds the syntax tree handed over by the external parser.
The tree is immutable for the lifetime of one analysis pass: the engine
and the rules only ever read it.
*/
package ast

import "fmt"

type Kind int32

const (
	KindTranslationUnit Kind = iota
	KindStructDecl
	KindFieldDecl
	KindFunctionDecl
	KindParamDecl
	KindVarDecl
	KindMacroDecl
	KindTypedefDecl
	KindCompoundStmt
	KindDeclStmt
	KindExprStmt
	KindIfStmt
	KindForStmt
	KindWhileStmt
	KindReturnStmt
	KindBinaryExpr
	KindUnaryExpr
	KindCastExpr
	KindCallExpr
	KindIdentExpr
	KindMemberExpr
	KindIndexExpr
	KindIntLiteral
	KindStringLiteral
	numKinds
)

var kindNames = [...]string{
	"TranslationUnit",
	"StructDecl",
	"FieldDecl",
	"FunctionDecl",
	"ParamDecl",
	"VarDecl",
	"MacroDecl",
	"TypedefDecl",
	"CompoundStmt",
	"DeclStmt",
	"ExprStmt",
	"IfStmt",
	"ForStmt",
	"WhileStmt",
	"ReturnStmt",
	"BinaryExpr",
	"UnaryExpr",
	"CastExpr",
	"CallExpr",
	"IdentExpr",
	"MemberExpr",
	"IndexExpr",
	"IntLiteral",
	"StringLiteral",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int32(k))
	}
	return kindNames[k]
}

// NumKinds is the size of the kind space, used by the registry to build
// its kind index.
func NumKinds() int {
	return int(numKinds)
}

// Span is a source range. Lines and columns are 1-based; EndColumn is
// inclusive.
type Span struct {
	File        string
	StartLine   int32
	StartColumn int32
	EndLine     int32
	EndColumn   int32
}

func NewSpan(file string, startLine, startColumn, endLine, endColumn int32) Span {
	return Span{File: file, StartLine: startLine, StartColumn: startColumn, EndLine: endLine, EndColumn: endColumn}
}

func (s Span) String() string {
	return fmt.Sprintf("%s:%d:%d", s.File, s.StartLine, s.StartColumn)
}

func (s Span) startsBefore(line, column int32) bool {
	return s.StartLine < line || (s.StartLine == line && s.StartColumn <= column)
}

func (s Span) endsAfter(line, column int32) bool {
	return s.EndLine > line || (s.EndLine == line && s.EndColumn >= column)
}

// ContainsPos reports whether the position lies inside the span.
func (s Span) ContainsPos(line, column int32) bool {
	return s.startsBefore(line, column) && s.endsAfter(line, column)
}

// Contains reports whether other lies entirely inside s. Spans of
// different files never contain each other.
func (s Span) Contains(other Span) bool {
	if s.File != other.File {
		return false
	}
	return s.startsBefore(other.StartLine, other.StartColumn) && s.endsAfter(other.EndLine, other.EndColumn)
}

// EndsBefore reports whether s ends strictly before other starts.
func (s Span) EndsBefore(other Span) bool {
	return s.EndLine < other.StartLine || (s.EndLine == other.StartLine && s.EndColumn < other.StartColumn)
}

// TypeRef is the declared type of a symbol, field or expression as the
// parser resolved it.
type TypeRef struct {
	// Base type spelling, e.g. "int", "void", "FILE", "FlexArray".
	Name         string
	PointerDepth int
	// Const applies to the pointee for pointer types and to the object
	// itself otherwise.
	Const bool
	Array bool
	// ArrayLen is the declared element count; it is meaningless unless
	// Array is set and Flexible is not.
	ArrayLen int64
	// Flexible marks a trailing array member of unspecified size.
	Flexible bool
}

func (t TypeRef) IsPointer() bool {
	return t.PointerDepth > 0
}

func (t TypeRef) IsVoidPointer() bool {
	return t.Name == "void" && t.PointerDepth > 0
}

func (t TypeRef) String() string {
	s := t.Name
	if t.Const {
		s = "const " + s
	}
	for i := 0; i < t.PointerDepth; i++ {
		s += " *"
	}
	if t.Flexible {
		s += "[]"
	} else if t.Array {
		s += fmt.Sprintf("[%d]", t.ArrayLen)
	}
	return s
}

// Comment is one comment attached to the translation unit, in source
// order. The suppression resolver scans these for directives.
type Comment struct {
	Span Span
	Text string
}

// Node is one syntax tree node. Kind tags the variant and Payload holds
// the kind-specific data, one of the *Info types below or nil.
type Node struct {
	Kind     Kind
	Span     Span
	Children []*Node
	Payload  any
}

type UnitInfo struct {
	Comments []Comment
}

type StructInfo struct {
	Name string
}

type FieldInfo struct {
	Name string
	Type TypeRef
}

type FuncInfo struct {
	Name       string
	ReturnType TypeRef
}

type ParamInfo struct {
	Name string
	Type TypeRef
}

type VarInfo struct {
	Name string
	Type TypeRef
}

type MacroInfo struct {
	Name string
}

type TypedefInfo struct {
	Name string
	Type TypeRef
}

// ForInfo describes the loop header. When the control variable starts
// from a statically known constant the parser records it here, so rules
// do not re-evaluate initializer expressions.
type ForInfo struct {
	ControlVar    string
	HasStaticInit bool
	StaticInit    int64
}

type BinaryInfo struct {
	// Op is the operator spelling: "/", "=", "+=", "==", ...
	Op string
}

type UnaryInfo struct {
	// Op is the operator spelling: "*", "&", "++", "--", "sizeof", ...
	Op string
}

type CastInfo struct {
	From TypeRef
	To   TypeRef
}

type CallInfo struct {
	Callee string
}

type IdentInfo struct {
	Name string
}

type MemberInfo struct {
	Name string
	// Arrow is true for p->m, false for s.m.
	Arrow bool
}

type IntInfo struct {
	Value int64
}

type StringInfo struct {
	Value string
}

// New builds a node. The parser owns tree construction; tests use this
// to assemble fixtures.
func New(kind Kind, span Span, payload any, children ...*Node) *Node {
	return &Node{Kind: kind, Span: span, Children: children, Payload: payload}
}

func (n *Node) Unit() *UnitInfo       { p, _ := n.Payload.(*UnitInfo); return p }
func (n *Node) Struct() *StructInfo   { p, _ := n.Payload.(*StructInfo); return p }
func (n *Node) Field() *FieldInfo     { p, _ := n.Payload.(*FieldInfo); return p }
func (n *Node) Func() *FuncInfo       { p, _ := n.Payload.(*FuncInfo); return p }
func (n *Node) Param() *ParamInfo     { p, _ := n.Payload.(*ParamInfo); return p }
func (n *Node) Var() *VarInfo         { p, _ := n.Payload.(*VarInfo); return p }
func (n *Node) Macro() *MacroInfo     { p, _ := n.Payload.(*MacroInfo); return p }
func (n *Node) Typedef() *TypedefInfo { p, _ := n.Payload.(*TypedefInfo); return p }
func (n *Node) For() *ForInfo         { p, _ := n.Payload.(*ForInfo); return p }
func (n *Node) Binary() *BinaryInfo   { p, _ := n.Payload.(*BinaryInfo); return p }
func (n *Node) Unary() *UnaryInfo     { p, _ := n.Payload.(*UnaryInfo); return p }
func (n *Node) Cast() *CastInfo       { p, _ := n.Payload.(*CastInfo); return p }
func (n *Node) Call() *CallInfo       { p, _ := n.Payload.(*CallInfo); return p }
func (n *Node) Ident() *IdentInfo     { p, _ := n.Payload.(*IdentInfo); return p }
func (n *Node) Member() *MemberInfo   { p, _ := n.Payload.(*MemberInfo); return p }
func (n *Node) Int() *IntInfo         { p, _ := n.Payload.(*IntInfo); return p }
func (n *Node) Str() *StringInfo      { p, _ := n.Payload.(*StringInfo); return p }

// IdentName returns the identifier name when the node is an IdentExpr,
// or "" otherwise.
func (n *Node) IdentName() string {
	if n.Kind != KindIdentExpr {
		return ""
	}
	if info := n.Ident(); info != nil {
		return info.Name
	}
	return ""
}
