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

package preprocessor

import (
	"github.com/tidwall/btree"

	"github.com/svlang/svfront/source"
	"github.com/svlang/svfront/token"
)

// Macro is a single `define'd (or predefined) macro: a name, an
// optional parameter list, optional default values, and a replacement
// token list.
type Macro struct {
	Name string

	// Params is nil for an object-like macro (`define FOO ...) and
	// non-nil (possibly empty) for a function-like one
	// (`define FOO(a, b) ...).
	Params []string

	// Defaults holds the default token list for each parameter that has
	// one; a parameter absent from this map is required at every call
	// site.
	Defaults map[string][]token.Token

	// Body is the macro's replacement token list, exactly as captured
	// from the `define line (including any `` paste and `" stringify
	// marker tokens it contains).
	Body []token.Token

	DefinedAt source.Range
}

func (m *Macro) isFunctionLike() bool { return m.Params != nil }

// sameAs reports whether m and other are identical for the purposes of
// SystemVerilog's "redefinition without change is not an error" rule.
func (m *Macro) sameAs(other *Macro) bool {
	if len(m.Params) != len(other.Params) {
		return false
	}
	for i := range m.Params {
		if m.Params[i] != other.Params[i] {
			return false
		}
	}
	if len(m.Body) != len(other.Body) {
		return false
	}
	for i := range m.Body {
		if m.Body[i].Text != other.Body[i].Text {
			return false
		}
	}
	return true
}

// table is the macro table. It is ordered by first
// definition rather than by name, using the same tidwall/btree ordered
// map the source manager uses for its `line-directive table, so that a
// snapshot from [table.snapshot] iterates deterministically instead of
// in arbitrary Go map order.
type table struct {
	seq    int
	byName map[string]int
	tree   btree.Map[int, *Macro]
}

func newTable() *table {
	return &table{byName: make(map[string]int)}
}

// define installs m, returning (existed, mismatch): existed is true if a
// macro of that name was already defined, and mismatch is true if the
// prior definition differs from m.
func (t *table) define(m *Macro) (existed, mismatch bool) {
	if id, ok := t.byName[m.Name]; ok {
		old, _ := t.tree.Get(id)
		mismatch = !old.sameAs(m)
		t.tree.Set(id, m)
		return true, mismatch
	}
	t.seq++
	id := t.seq
	t.byName[m.Name] = id
	t.tree.Set(id, m)
	return false, false
}

func (t *table) undef(name string) bool {
	id, ok := t.byName[name]
	if !ok {
		return false
	}
	t.tree.Delete(id)
	delete(t.byName, name)
	return true
}

func (t *table) undefAll() {
	t.byName = make(map[string]int)
	t.tree = btree.Map[int, *Macro]{}
}

func (t *table) lookup(name string) (*Macro, bool) {
	id, ok := t.byName[name]
	if !ok {
		return nil, false
	}
	return t.tree.Get(id)
}

// snapshot returns every currently-defined macro, ordered by first
// definition.
func (t *table) snapshot() []*Macro {
	out := make([]*Macro, 0, t.tree.Len())
	t.tree.Scan(func(_ int, m *Macro) bool {
		out = append(out, m)
		return true
	})
	return out
}
