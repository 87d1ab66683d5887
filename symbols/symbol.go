// Copyright 2020-2026 The SVFront Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package symbols implements the symbol and elaboration layer :
// it walks a parsed syntax tree and builds the named, typed, scoped
// structure a later analysis pass would actually query -- modules,
// packages, variables, nets, instances, and everything else the 
// names -- resolving what the parser deliberately left ambiguous (ANSI vs.
// non-ANSI port lists, net vs. variable declarations, wildcard import
// conflicts) along the way.
package symbols

import (
	"fmt"

	"github.com/svlang/svfront/source"
	"github.com/svlang/svfront/token/keyword"
)

// Direction is a port or modport-port direction (input/output/inout/ref).
type Direction = keyword.Keyword

// Kind discriminates a [Symbol]'s role in the design hierarchy.
type Kind uint8

const (
	Invalid Kind = iota
	CompilationUnit
	Module
	Interface
	Program
	Package
	Primitive
	Definition
	Instance
	InstanceBody
	Variable
	Net
	Parameter
	Nettype
	ExplicitImport
	WildcardImport
	Modport
	ModportPort
	Clocking
	ClockingSignal
	Sequence
	Property
	Let
	RandSequence
	RandSequenceProduction
	Udp
	UdpPort
	ElabSystemTask
	EmptyMember
)

var kindNames = [...]string{
	Invalid: "Invalid", CompilationUnit: "CompilationUnit", Module: "Module",
	Interface: "Interface", Program: "Program", Package: "Package", Primitive: "Primitive",
	Definition: "Definition", Instance: "Instance", InstanceBody: "InstanceBody",
	Variable: "Variable", Net: "Net", Parameter: "Parameter", Nettype: "Nettype",
	ExplicitImport: "ExplicitImport", WildcardImport: "WildcardImport",
	Modport: "Modport", ModportPort: "ModportPort",
	Clocking: "Clocking", ClockingSignal: "ClockingSignal",
	Sequence: "Sequence", Property: "Property", Let: "Let",
	RandSequence: "RandSequence", RandSequenceProduction: "RandSequenceProduction",
	Udp: "Udp", UdpPort: "UdpPort",
	ElabSystemTask: "ElabSystemTask", EmptyMember: "EmptyMember",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("symbols.Kind(%d)", int(k))
}

// Symbol is a single named (or, for a handful of housekeeping kinds,
// unnamed) member of the design hierarchy .
type Symbol interface {
	Name() string
	Kind() Kind
	Location() source.Location
	ParentScope() *Scope

	setParentScope(*Scope)
}

// symbolBase is embedded by every concrete symbol type, the way
// original_source/source/ast/symbols/*.cpp layers every symbol kind over a
// common Symbol base carrying name, kind, and source location.
type symbolBase struct {
	name string
	kind Kind
	loc  source.Location
	scope *Scope
}

func (s *symbolBase) Name() string             { return s.name }
func (s *symbolBase) Kind() Kind                { return s.kind }
func (s *symbolBase) Location() source.Location { return s.loc }
func (s *symbolBase) ParentScope() *Scope       { return s.scope }
func (s *symbolBase) setParentScope(sc *Scope)  { s.scope = sc }

// ValueSymbol is the capability interface for a symbol that carries a type:
// variables, nets, and parameters (the "ValueSymbol capability
// interface: declared type + initializer + lifetime + flags"), grounded on
// original_source/source/ast/symbols/VariableSymbols.cpp's ValueSymbol base.
type ValueSymbol interface {
	Symbol
	DeclaredType() *DeclaredType
}

// VariableLifetime is a variable's storage duration.
type VariableLifetime uint8

const (
	Static VariableLifetime = iota
	Automatic
)

// String implements fmt.Stringer.
func (l VariableLifetime) String() string {
	if l == Automatic {
		return "automatic"
	}
	return "static"
}

// VariableFlags are boolean modifiers on a [VariableSymbol] beyond its
// lifetime.
type VariableFlags uint8

const (
	FlagConst VariableFlags = 1 << iota
)

// VariableSymbol is a `var`-declared value: a plain variable, `const`, or a
// declaration inside a procedural block.
type VariableSymbol struct {
	symbolBase
	declaredType *DeclaredType
	Lifetime     VariableLifetime
	Flags        VariableFlags
}

func (v *VariableSymbol) DeclaredType() *DeclaredType { return v.declaredType }
func (v *VariableSymbol) IsConst() bool                { return v.Flags&FlagConst != 0 }

// NetSymbol is a net-typed value: `wire`, `tri`, or a user-defined nettype
// name (the "Net creation": "the resolved net type, built-in or
// user-defined").
type NetSymbol struct {
	symbolBase
	declaredType *DeclaredType
	NetTypeName  string
	// Implicit records whether this net was created implicitly by a
	// continuous assignment to an undeclared name under the active default
	// nettype, rather than by an explicit declaration .
	Implicit bool
}

func (n *NetSymbol) DeclaredType() *DeclaredType { return n.declaredType }

// ParameterSymbol is a `parameter` or `localparam`.
type ParameterSymbol struct {
	symbolBase
	declaredType *DeclaredType
	IsLocal      bool
}

func (p *ParameterSymbol) DeclaredType() *DeclaredType { return p.declaredType }

// NettypeSymbol is a user-defined `nettype` alias .
type NettypeSymbol struct {
	symbolBase
	UnderlyingTypeName string
	ResolutionFunc      string
}

// PackageSymbol is a `package` declaration and its member scope.
type PackageSymbol struct {
	symbolBase
	scope *Scope
	// exported tracks explicit imports re-exported from within this
	// package, mirroring WildcardImportSymbol::noteImport in
	// original_source's MemberSymbols.cpp.
	exported []Symbol
}

func (p *PackageSymbol) Scope() *Scope { return p.scope }

func (p *PackageSymbol) noteImport(sym Symbol) {
	p.exported = append(p.exported, sym)
}

// DefinitionSymbol is an as-yet-uninstantiated module/interface/program/
// primitive: its syntax is retained, and it is turned into one or more
// [InstanceBody] values on demand as instances of it are elaborated,
// so identically-parameterized instances can share one elaboration.
type DefinitionSymbol struct {
	symbolBase
	Ports      *ParsedPorts
	referenced bool
}

// ExplicitImportSymbol is a single `import pkg::name;` binding.
type ExplicitImportSymbol struct {
	symbolBase
	Package  *PackageSymbol
	Imported Symbol
}

// WildcardImportSymbol is an `import pkg::*;` binding. It has no name of
// its own; it only widens the enclosing scope's lookup fallback
// ([report.CodeAmbiguousImport]).
type WildcardImportSymbol struct {
	symbolBase
	Package *PackageSymbol
}

// ModportSymbol is one named modport view (`modport name(...)`) of an
// interface.
type ModportSymbol struct {
	symbolBase
	scope *Scope
}

func (m *ModportSymbol) Scope() *Scope { return m.scope }

// ModportPortSymbol is one port of a [ModportSymbol]'s view.
type ModportPortSymbol struct {
	symbolBase
	Direction Direction
}

// ClockingSymbol is a `clocking` block.
type ClockingSymbol struct {
	symbolBase
	scope                       *Scope
	sawDefaultInputSkew         bool
	sawDefaultOutputSkew        bool
}

func (c *ClockingSymbol) Scope() *Scope { return c.scope }

// ClockingSignalSymbol is one signal named inside a clocking block.
type ClockingSignalSymbol struct {
	symbolBase
	Direction Direction
}

// SequenceSymbol, PropertySymbol, and LetSymbol are named assertion-layer
// declarations. Spec 4.H's genvar/generate-less scope stops short of
// evaluating their bodies (see [Compilation.elaborateNamed]); they exist as
// named, locatable symbols so a lookup of their name succeeds.
type SequenceSymbol struct{ symbolBase }
type PropertySymbol struct{ symbolBase }
type LetSymbol struct{ symbolBase }

// RandSequenceSymbol is a `randsequence` block; its productions are exposed
// as a nested scope so a production name looks up like any other symbol.
type RandSequenceSymbol struct {
	symbolBase
	scope *Scope
}

func (r *RandSequenceSymbol) Scope() *Scope { return r.scope }

// RandSequenceProductionSymbol is one named production of a randsequence
// block.
type RandSequenceProductionSymbol struct{ symbolBase }

// UdpSymbol is a `primitive` (user-defined primitive) definition.
type UdpSymbol struct {
	symbolBase
	scope        *Scope
	Sequential   bool
	OutputPort   string
}

func (u *UdpSymbol) Scope() *Scope { return u.scope }

// UdpPortSymbol is one port of a UDP.
type UdpPortSymbol struct {
	symbolBase
	Direction Direction
	IsReg     bool
}

// ElabSystemTaskSymbol records a `$fatal`/`$error`/`$warning`/`$info`/
// `$static_assert` elaboration-time system task encountered as a module
// member. It has no name and carries only the task's location in the
// member list: elaboration raises no diagnostic for it, does not format
// its message arguments, and does not evaluate a `$static_assert`
// condition.
type ElabSystemTaskSymbol struct{ symbolBase }

// EmptyMemberSymbol records a stray `;` module member, matching
// original_source/source/ast/symbols/MemberSymbols.cpp's EmptyMemberSymbol.
type EmptyMemberSymbol struct{ symbolBase }

// InstanceSymbol is one named instantiation of a [DefinitionSymbol]. Its
// Body is shared with every other instance elaborated with an identical
// parameterization .
type InstanceSymbol struct {
	symbolBase
	Body *InstanceBody
}

// ParsedPorts is a thin view over a definition's port-list syntax, resolved
// lazily to concrete port symbols once a parameterization is known (a
// port's width can depend on a parameter, so port symbols cannot be created
// until instantiation time).
type ParsedPorts struct {
	IsAnsi bool
}
