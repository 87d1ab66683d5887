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

package symbols

import (
	"github.com/svlang/svfront/internal/arena"
	"github.com/svlang/svfront/report"
	"github.com/svlang/svfront/syntax"
)

// arenas bump-allocates every concrete symbol type a [Compilation]
// produces, rather than letting each one escape to the Go heap
// individually: a compilation elaborates one instance of a symbol per
// declaration site, but potentially many instances of a definition's
// members if instances were not shareable, so the allocation pattern is
// exactly the "many small, uniformly-typed, arena-lifetime objects" case
// internal/arena exists for.
type arenas struct {
	definitions     arena.Arena[DefinitionSymbol]
	packages        arena.Arena[PackageSymbol]
	instances       arena.Arena[InstanceSymbol]
	instanceBodies  arena.Arena[InstanceBody]
	variables       arena.Arena[VariableSymbol]
	nets            arena.Arena[NetSymbol]
	parameters      arena.Arena[ParameterSymbol]
	nettypes        arena.Arena[NettypeSymbol]
	explicitImports arena.Arena[ExplicitImportSymbol]
	wildcardImports arena.Arena[WildcardImportSymbol]
	modports        arena.Arena[ModportSymbol]
	modportPorts    arena.Arena[ModportPortSymbol]
	clockings       arena.Arena[ClockingSymbol]
	clockingSignals arena.Arena[ClockingSignalSymbol]
	sequences       arena.Arena[SequenceSymbol]
	properties      arena.Arena[PropertySymbol]
	lets            arena.Arena[LetSymbol]
	randSeqs        arena.Arena[RandSequenceSymbol]
	randSeqProds    arena.Arena[RandSequenceProductionSymbol]
	udps            arena.Arena[UdpSymbol]
	udpPorts        arena.Arena[UdpPortSymbol]
	elabTasks       arena.Arena[ElabSystemTaskSymbol]
	emptyMembers    arena.Arena[EmptyMemberSymbol]
}

// allocIn bump-allocates v out of a and returns a stable pointer to it, the
// standard arena idiom of allocating then immediately dereferencing to get
// an address that outlives the call ([internal/arena]'s own doc comment:
// "syntax nodes, tokens, and symbols are allocated out of one of these
// arenas").
func allocIn[T any](a *arena.Arena[T], v T) *T {
	return a.New(v).In(a)
}

// Compilation is the top-level orchestrator bridging a parsed syntax tree
// into the symbol/elaboration layer : it owns every symbol's
// storage, the type interner, the package and definition tables, and the
// instance-body cache that gives identically-parameterized instances a
// shared elaboration .
type Compilation struct {
	rep  *report.Report
	root *Scope

	arenas arenas

	types map[string]*Type

	packages    map[string]*PackageSymbol
	definitions map[string]*DefinitionSymbol

	// instanceBodies caches one InstanceBody per (definition, parameter
	// signature) pair (the "Instance sharing" testable property; see
	// instance.go).
	instanceBodies map[string]*InstanceBody

	// defSyntax retains each definition's member syntax for lazy,
	// per-instantiation elaboration (see elaborate.go's
	// elaborateInstanceBody): a definition's members are only walked once
	// something actually instantiates it.
	defSyntax map[*DefinitionSymbol]*syntax.Node

	// defaultNettype and timescale are the ambient preprocessor state a
	// module's elaboration needs but the parser never saw:
	// implicit net creation, timeunit/timescale mismatch detection.
	defaultNettype string
	timescale      string
}

// NewCompilation returns an empty Compilation that will push diagnostics
// onto rep.
func NewCompilation(rep *report.Report) *Compilation {
	c := &Compilation{
		rep:            rep,
		types:          make(map[string]*Type),
		packages:       make(map[string]*PackageSymbol),
		definitions:    make(map[string]*DefinitionSymbol),
		instanceBodies: make(map[string]*InstanceBody),
		defSyntax:      make(map[*DefinitionSymbol]*syntax.Node),
		defaultNettype: "wire",
	}
	c.root = newScope(c, nil, nil)
	return c
}

// Report returns the report the compilation pushes diagnostics onto.
func (c *Compilation) Report() *report.Report { return c.rep }

// RootScope returns the compilation-unit scope: every package and
// definition is a member of it.
func (c *Compilation) RootScope() *Scope { return c.root }

// SetDefaultNettype overrides the net type used for implicit net creation
// , matching the preprocessor's `` `default_nettype `` state at
// the point the source was lexed. An empty string disables implicit nets.
func (c *Compilation) SetDefaultNettype(nettype string) { c.defaultNettype = nettype }

// SetTimescale records the file-level `` `timescale `` value (e.g.
// "1ns/1ps") a module's own `timeunit`/`timeprecision` declaration is
// checked against .
func (c *Compilation) SetTimescale(value string) { c.timescale = value }

// GetPackage looks up a package by name.
func (c *Compilation) GetPackage(name string) (*PackageSymbol, bool) {
	p, ok := c.packages[name]
	return p, ok
}

// GetDefinition looks up a module/interface/program/primitive definition by
// name.
func (c *Compilation) GetDefinition(name string) (*DefinitionSymbol, bool) {
	d, ok := c.definitions[name]
	return d, ok
}

// errorType returns the interned placeholder type used when resolution
// fails or recurses.
func (c *Compilation) errorType() *Type { return c.internType(Type{Kind: TypeErr}) }

func (c *Compilation) internType(t Type) *Type {
	key := typeKey(t)
	if existing, ok := c.types[key]; ok {
		return existing
	}
	stored := t
	c.types[key] = &stored
	return &stored
}

// AddSyntaxTree elaborates every top-level declaration in root (a
// [syntax.File] node) into the compilation-unit scope. Packages are
// resolved as encountered in file order, so a module later in the same
// file can `import` a package declared earlier in it (the seed
// scenario 2); a forward-referenced package (declared later in the file,
// or in a file added after this one) is looked up lazily when the
// importing member is actually elaborated, not when AddSyntaxTree returns,
// so multi-file compilations still resolve as long as every file is added
// before [Compilation.Elaborate] runs.
func (c *Compilation) AddSyntaxTree(root *syntax.Node) {
	list := root.Child(syntax.List)
	if list == nil {
		return
	}
	for _, item := range list.Children() {
		c.elaborateTopLevelItem(item)
	}
}

// TopInstances returns the top-level module instances created by
// [Compilation.Elaborate]: one per definition never referenced by another
// instance's InstanceDecl, matching the usual "implicit top module" rule
// tools apply when no explicit top is named.
func (c *Compilation) TopInstances() []*InstanceSymbol {
	var tops []*InstanceSymbol
	for _, sym := range c.root.Members() {
		if inst, ok := sym.(*InstanceSymbol); ok {
			tops = append(tops, inst)
		}
	}
	return tops
}

// Elaborate instantiates every definition not already referenced as a
// sub-instance of another, as a top module (the drives elaboration
// from module instantiation; a definition nobody instantiates is assumed
// to be a design's top).
//
// Which definitions are referenced has to be known before any of them are
// instantiated: instantiate itself is what marks a definition referenced,
// so iterating c.definitions (map order is unspecified) and instantiating
// on the fly would let a definition that's actually a sub-instance of a
// not-yet-visited top get instantiated a second time as a spurious top.
// markReferencedDefinitions does a syntax-only pre-pass to break that
// ordering dependency.
func (c *Compilation) Elaborate() {
	c.markReferencedDefinitions()
	for _, def := range c.definitions {
		if !def.referenced {
			c.instantiate(def, nil, def.Name(), c.root)
		}
	}
}

func (c *Compilation) markReferencedDefinitions() {
	for _, n := range c.defSyntax {
		members := n.Child(syntax.List)
		if members == nil {
			continue
		}
		for _, m := range members.Children() {
			if m.Kind() != syntax.InstanceDecl {
				continue
			}
			typeNode := m.Child(syntax.DataType)
			if typeNode == nil || len(typeNode.Children()) == 0 {
				continue
			}
			if def, ok := c.definitions[typeNode.Children()[0].Token().Text]; ok {
				def.referenced = true
			}
		}
	}
}
