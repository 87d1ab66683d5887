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
	"sort"
	"strings"
)

// InstanceBody is the elaborated contents of a definition under one
// specific parameter override set: its own member scope, populated once
// and then shared by every [InstanceSymbol] elaborated with an identical
// parameterization .
type InstanceBody struct {
	Definition *DefinitionSymbol
	scope      *Scope

	// Params holds the resolved value text of every parameter this body
	// overrode or defaulted, keyed by parameter name, purely so two
	// instantiations can be compared without re-walking syntax.
	Params map[string]string
}

func (b *InstanceBody) Scope() *Scope { return b.scope }

// paramOverride is one `#(.name(value))` or positional override captured
// from an InstanceDecl's paramOverrides list.
type paramOverride struct {
	name  string
	value string
}

// instanceKey canonicalizes a definition name plus its resolved parameter
// values into a stable cache key: two instances of the same definition
// with the same parameter values -- regardless of the syntactic form used
// to write the override -- must hash identically, since instance sharing
// is about the resulting elaboration, not the override syntax .
func instanceKey(defName string, overrides []paramOverride) string {
	sorted := append([]paramOverride(nil), overrides...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].name < sorted[j].name })
	var b strings.Builder
	b.WriteString(defName)
	for _, o := range sorted {
		b.WriteByte('|')
		b.WriteString(o.name)
		b.WriteByte('=')
		b.WriteString(o.value)
	}
	return b.String()
}

// instantiate elaborates (or reuses a cached elaboration of) def under
// overrides, and binds the resulting InstanceSymbol as instName in
// parentScope.
func (c *Compilation) instantiate(def *DefinitionSymbol, overrides []paramOverride, instName string, parentScope *Scope) *InstanceSymbol {
	def.referenced = true

	key := instanceKey(def.Name(), overrides)
	body, ok := c.instanceBodies[key]
	if !ok {
		body = c.elaborateInstanceBody(def, overrides)
		c.instanceBodies[key] = body
	}

	inst := allocIn(&c.arenas.instances, InstanceSymbol{
		symbolBase: symbolBase{name: instName, kind: Instance, loc: def.Location()},
		Body:       body,
	})
	if parentScope != nil {
		parentScope.addMember(inst)
	}
	return inst
}
