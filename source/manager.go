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

package source

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// defaultMaxIncludeDepth bounds `include recursion; the depth is
// configurable, defaulting to 200. Real designs nest a few levels deep;
// anything past this is almost certainly a self-inclusion.
const defaultMaxIncludeDepth = 200

// Manager owns every buffer in a compilation: the top-level files handed
// to it directly, the files pulled in transitively through `include, and
// the synthetic buffers produced by macro expansion.
type Manager struct {
	buffers   []*Buffer // index 0 unused; BufferID is 1-indexed.
	pathIndex map[string]BufferID

	opener          Opener
	userIncludes    []string
	systemIncludes  []string
	maxIncludeDepth int
}

// Option configures a [Manager].
type Option func(*Manager)

// WithOpener sets the [Opener] used to resolve `include directives and
// top-level files loaded by path.
func WithOpener(o Opener) Option {
	return func(m *Manager) { m.opener = o }
}

// WithIncludeDirs sets the search path used for `include "..." (user)
// forms. Entries may contain doublestar glob patterns, which are
// expanded against the Manager's opener when it is also an
// [FS]-backed opener.
func WithIncludeDirs(dirs ...string) Option {
	return func(m *Manager) { m.userIncludes = append(m.userIncludes, dirs...) }
}

// WithSystemIncludeDirs sets the search path used for `include <...>
// (system) forms.
func WithSystemIncludeDirs(dirs ...string) Option {
	return func(m *Manager) { m.systemIncludes = append(m.systemIncludes, dirs...) }
}

// WithMaxIncludeDepth overrides the default `include nesting limit.
func WithMaxIncludeDepth(n int) Option {
	return func(m *Manager) { m.maxIncludeDepth = n }
}

// NewManager constructs an empty Manager.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		buffers:         []*Buffer{nil},
		pathIndex:       make(map[string]BufferID),
		maxIncludeDepth: defaultMaxIncludeDepth,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) add(b *Buffer) BufferID {
	id := BufferID(len(m.buffers))
	b.id = id
	m.buffers = append(m.buffers, b)
	return id
}

// AddBuffer registers path/text as a top-level file buffer, without going
// through the configured [Opener]. This is how a caller feeds a
// compilation source text it already has in memory.
func (m *Manager) AddBuffer(path, text string) BufferID {
	if id, ok := m.pathIndex[path]; ok {
		return id
	}
	id := m.add(&Buffer{kind: File, path: path, text: text})
	m.pathIndex[path] = id
	return id
}

// Load reads path through the configured [Opener] and registers it as a
// top-level file buffer.
func (m *Manager) Load(path string) (BufferID, error) {
	if id, ok := m.pathIndex[path]; ok {
		return id, nil
	}
	if m.opener == nil {
		return 0, fmt.Errorf("source: no opener configured, cannot load %q", path)
	}
	text, err := m.opener.Open(path)
	if err != nil {
		return 0, err
	}
	return m.AddBuffer(path, text), nil
}

// MaxIncludeDepth returns the configured `include nesting limit
// ([WithMaxIncludeDepth], default 200).
//
// The Manager does not track include depth itself; the preprocessor
// compares the depth of its own frame stack against this limit.
func (m *Manager) MaxIncludeDepth() int { return m.maxIncludeDepth }

// OpenInclude resolves a `include directive's filename against the
// configured search directories.
//
// angled selects between the two SystemVerilog forms: `include <foo.svh>
// (system search order: system dirs, then user dirs) and
// `include "foo.svh" (user search order: the including file's own
// directory, then user dirs, then system dirs).
func (m *Manager) OpenInclude(name string, from BufferID, angled bool) (BufferID, error) {
	if m.opener == nil {
		return 0, fmt.Errorf("source: no opener configured, cannot resolve include %q", name)
	}

	var dirs []string
	if !angled {
		if b := m.Buffer(from); b != nil {
			dirs = append(dirs, path.Dir(b.Path()))
		}
		dirs = append(dirs, m.userIncludes...)
		dirs = append(dirs, m.systemIncludes...)
	} else {
		dirs = append(dirs, m.systemIncludes...)
		dirs = append(dirs, m.userIncludes...)
	}

	for _, dir := range dirs {
		for _, candidate := range m.expandIncludeDir(dir, name) {
			if id, ok := m.pathIndex[candidate]; ok {
				return id, nil
			}
			text, err := m.opener.Open(candidate)
			if err == nil {
				return m.AddBuffer(candidate, text), nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %s", fs.ErrNotExist, name)
}

// expandIncludeDir returns the candidate paths for name within dir. When
// dir contains doublestar glob metacharacters it is matched with
// [doublestar.Match] against each slash-separated prefix rather than
// joined directly, so entries like "vendor/**/include" resolve against
// whatever directory structure the opener actually serves.
func (m *Manager) expandIncludeDir(dir, name string) []string {
	if !doublestar.ValidatePattern(dir) || !strings.ContainsAny(dir, "*?[{") {
		return []string{path.Join(dir, name)}
	}

	fsys, ok := m.opener.(FS)
	if !ok {
		return []string{path.Join(dir, name)}
	}
	matches, err := doublestar.Glob(fsys.FS, dir)
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(matches))
	for _, dir := range matches {
		out = append(out, path.Join(filepath.ToSlash(dir), name))
	}
	return out
}

// Buffer returns the buffer for id, or nil if id is not owned by m.
func (m *Manager) Buffer(id BufferID) *Buffer {
	if int(id) <= 0 || int(id) >= len(m.buffers) {
		return nil
	}
	return m.buffers[id]
}

// Text returns the full text of buffer id.
func (m *Manager) Text(id BufferID) string {
	if b := m.Buffer(id); b != nil {
		return b.Text()
	}
	return ""
}

// Path returns the path of buffer id.
func (m *Manager) Path(id BufferID) string {
	if b := m.Buffer(id); b != nil {
		return b.Path()
	}
	return ""
}

// NewExpansion registers a new macro-expansion buffer whose text is the
// fully substituted body of one macro invocation, chained back to the
// invocation's range in its parent buffer: expanded text is
// re-lexed from a buffer of its own, so that diagnostics inside expanded
// text point into this buffer, and [Manager.ExpansionChain] leads from
// there back to the call site.
func (m *Manager) NewExpansion(invocation Range, macroName, text string) BufferID {
	return m.add(&Buffer{
		kind:         Expansion,
		path:         fmt.Sprintf("<expansion of `%s>", macroName),
		text:         text,
		expansionOf:  invocation,
		expandedName: macroName,
	})
}

// SetLineDirective records the effect of a `line directive found at
// offset within buffer id.
func (m *Manager) SetLineDirective(id BufferID, offset int, file string, line, level int) {
	if b := m.Buffer(id); b != nil {
		b.addLineDirective(offset, file, line, level)
	}
}

// Resolve turns a [Location] into a display-ready [ResolvedLocation].
func (m *Manager) Resolve(loc Location) ResolvedLocation {
	b := m.Buffer(loc.Buffer)
	if b == nil {
		return ResolvedLocation{}
	}
	return b.resolve(loc.Offset)
}

// ExpansionChain returns loc, followed by the sequence of macro
// invocation locations that ultimately produced the buffer loc lives in,
// outermost last, so a diagnostic inside a macro body carries the full
// expansion chain back to the original invocation.
func (m *Manager) ExpansionChain(loc Location) []Location {
	chain := []Location{loc}
	for {
		b := m.Buffer(loc.Buffer)
		if b == nil || b.Kind() != Expansion {
			return chain
		}
		invocation, _ := b.ExpansionOf()
		loc = invocation.Start
		chain = append(chain, loc)
	}
}
