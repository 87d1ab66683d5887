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
	"github.com/svlang/svfront/report"
	"github.com/svlang/svfront/source"
	"github.com/svlang/svfront/syntax"
)

type declState uint8

const (
	declUnresolved declState = iota
	declResolving
	declResolved
)

// DeclaredType lazily resolves a [ValueSymbol]'s type on first access,
// caching the result and guarding against a definition that resolves back
// into itself through a chain of nettype aliases the parser cannot see
// through ([report.CodeRecursiveDefinition]).
//
// Grounded on original_source/source/ast/symbols/VariableSymbols.cpp's
// three-state DeclaredType: a for-loop's later declarators
// (`for (int i = 0, j = 1; ...)`) share the first declarator's
// DeclaredType via [DeclaredType.SetLink] rather than re-parsing their own
// type syntax.
type DeclaredType struct {
	scope *Scope
	owner Symbol

	typeSyntax *syntax.Node
	initSyntax *syntax.Node
	link       *DeclaredType

	state    declState
	resolved *Type
}

// NewDeclaredType constructs an unresolved DeclaredType owned by owner,
// resolved against scope.
func NewDeclaredType(scope *Scope, owner Symbol) *DeclaredType {
	return &DeclaredType{scope: scope, owner: owner}
}

// SetTypeSyntax records the [syntax.DataType] node this type resolves from.
func (d *DeclaredType) SetTypeSyntax(n *syntax.Node) { d.typeSyntax = n }

// SetInitializerSyntax records this declarator's initializer expression, if
// any.
func (d *DeclaredType) SetInitializerSyntax(n *syntax.Node) { d.initSyntax = n }

// InitializerSyntax returns the initializer expression set by
// [DeclaredType.SetInitializerSyntax], or the linked type's if this one was
// never given its own .
func (d *DeclaredType) InitializerSyntax() *syntax.Node {
	if d.initSyntax != nil {
		return d.initSyntax
	}
	if d.link != nil {
		return d.link.InitializerSyntax()
	}
	return nil
}

// HasInitializer reports whether this declarator (or its link) has an
// initializer.
func (d *DeclaredType) HasInitializer() bool { return d.InitializerSyntax() != nil }

// SetLink makes d resolve to other's type instead of its own, the
// `for (int i = 0; ...)`-style declarator-list sharing case.
func (d *DeclaredType) SetLink(other *DeclaredType) { d.link = other }

// Type resolves and caches d's type against comp.
func (d *DeclaredType) Type(comp *Compilation) *Type {
	if d.link != nil {
		return d.link.Type(comp)
	}
	switch d.state {
	case declResolved:
		return d.resolved
	case declResolving:
		if d.owner != nil {
			loc := d.owner.Location()
			comp.rep.Errorf(report.CodeRecursiveDefinition, source.Range{Start: loc, End: loc},
				"%q's type recursively refers to itself", d.owner.Name())
		}
		d.state = declResolved
		d.resolved = comp.errorType()
		return d.resolved
	}

	d.state = declResolving
	if d.typeSyntax == nil {
		d.resolved = comp.errorType()
	} else {
		d.resolved = comp.resolveDataType(d.scope, d.typeSyntax)
	}
	d.state = declResolved
	return d.resolved
}
