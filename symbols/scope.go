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
)

// Scope holds one lexical scope's ordered members and drives name lookup
// : a module, package, modport, clocking block, or randsequence
// body all own one.
//
// Every member of a scope is added before any lookup against it is
// performed -- elaboration builds a scope's full member list first and
// resolves types lazily afterward (see [DeclaredType]) -- which is what
// makes the "Lookup monotonicity" testable property (the testable-property notes: a later
// lookup never sees less than an earlier one did) hold trivially: nothing
// is ever removed from a scope once added.
type Scope struct {
	comp   *Compilation
	owner  Symbol
	parent *Scope

	members   []Symbol
	byName    map[string]Symbol
	declIndex map[string]int

	wildcardImports []*WildcardImportSymbol
}

func newScope(comp *Compilation, owner Symbol, parent *Scope) *Scope {
	return &Scope{
		comp:      comp,
		owner:     owner,
		parent:    parent,
		byName:    make(map[string]Symbol),
		declIndex: make(map[string]int),
	}
}

// Owner returns the symbol this scope belongs to (nil for the
// compilation-unit scope).
func (s *Scope) Owner() Symbol { return s.owner }

// Parent returns the lexically enclosing scope, or nil at the
// compilation-unit scope.
func (s *Scope) Parent() *Scope { return s.parent }

// Members returns every symbol added to s, in declaration order.
func (s *Scope) Members() []Symbol { return s.members }

// addMember appends sym as the scope's next declaration. The first symbol
// to claim a name wins the name-lookup slot; a later same-named member is
// still appended to Members() (so member iteration sees every declaration)
// but is not reachable by name, matching how a caller detecting a
// redeclaration reports its own diagnostic ([report.CodeDuplicatePortDecl]
// and friends) rather than addMember silently overwriting the binding.
func (s *Scope) addMember(sym Symbol) {
	sym.setParentScope(s)
	s.members = append(s.members, sym)
	if name := sym.Name(); name != "" {
		if _, exists := s.byName[name]; !exists {
			s.byName[name] = sym
			s.declIndex[name] = len(s.members) - 1
		}
	}
}

func (s *Scope) addWildcardImport(w *WildcardImportSymbol) {
	s.addMember(w)
	s.wildcardImports = append(s.wildcardImports, w)
}

// LookupLocal finds name among this scope's own members, ignoring imports
// and enclosing scopes.
func (s *Scope) LookupLocal(name string) (Symbol, bool) {
	sym, ok := s.byName[name]
	return sym, ok
}

// DeclIndexOf returns name's position in Members(), or -1 if name is not a
// local member.
func (s *Scope) DeclIndexOf(name string) int {
	if idx, ok := s.declIndex[name]; ok {
		return idx
	}
	return -1
}

// Lookup resolves name against this scope, then its wildcard imports, then
// its lexically enclosing scope : the same order
// original_source/source/ast/symbols/MemberSymbols.cpp's
// WildcardImportSymbol/ExplicitImportSymbol pair implements by falling
// through from a plain member lookup to package lookup.
func (s *Scope) Lookup(name string) (Symbol, bool) {
	if sym, ok := s.byName[name]; ok {
		return sym, true
	}
	if sym, ok := s.lookupWildcard(name); ok {
		return sym, true
	}
	if s.parent != nil {
		return s.parent.Lookup(name)
	}
	return nil, false
}

// lookupWildcard resolves name against every wildcard-imported package,
// raising [report.CodeAmbiguousImport] if more than one distinct package
// exports it .
func (s *Scope) lookupWildcard(name string) (Symbol, bool) {
	var found Symbol
	var foundPkg *PackageSymbol
	for _, w := range s.wildcardImports {
		if w.Package == nil {
			continue
		}
		sym, ok := w.Package.scope.LookupLocal(name)
		if !ok {
			continue
		}
		if found != nil && foundPkg != w.Package {
			if s.comp != nil {
				loc := w.Location()
				s.comp.rep.Errorf(report.CodeAmbiguousImport, source.Range{Start: loc, End: loc},
					"%q is imported from both %q and %q", name, foundPkg.Name(), w.Package.Name())
			}
			return found, true
		}
		found, foundPkg = sym, w.Package
	}
	return found, found != nil
}
