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
	"slices"
	"strings"
	"sync"

	"github.com/rivo/uniseg"
	"github.com/tidwall/btree"
)

// lineDirectiveMap orders `line directives by the offset at which they
// take effect, so that resolving a location only needs to seek to the
// nearest directive at or before it.
type lineDirectiveMap = btree.Map[int, lineDirective]

// Kind distinguishes the two flavors of buffer a compilation deals with
// .
type Kind int8

const (
	// File is text read from disk (or from an [Opener]), including text
	// pulled in transitively through `include.
	File Kind = iota
	// Expansion is synthetic text produced by macro expansion. Its
	// [Buffer.ExpansionOf] range points at the invocation that produced it.
	Expansion
)

// lineDirective records one `line directive's effect on resolved
// locations: at and after byte offset At, resolved line numbers are
// computed as if the buffer's file were named File and its line at At
// were Line.
type lineDirective struct {
	at   int
	file string
	line int
	// level is `line's third argument (0, 1, or 2); it does not affect
	// resolution but is retained for round-tripping the directive text.
	level int
}

// Buffer is a single unit of source text: a file, or the synthetic
// expansion of a macro invocation.
//
// A Buffer is immutable once its Manager finishes constructing it.
type Buffer struct {
	id   BufferID
	kind Kind
	path string
	text string

	// Set only for Kind == Expansion: the range, in the parent buffer, of
	// the macro invocation (or macro argument) that produced this buffer's
	// text, and the name of the macro that was expanded.
	expansionOf  Range
	expandedName string

	lineOnce  sync.Once
	lineStart []int // byte offset of the start of each line, 0-indexed line number.

	directives *lineDirectiveMap // nil until a `line directive is recorded.
}

// ID returns this buffer's identity within its owning Manager.
func (b *Buffer) ID() BufferID { return b.id }

// Kind returns whether this is a file or a macro expansion.
func (b *Buffer) Kind() Kind { return b.kind }

// Path returns the buffer's path, as given to the Manager (or, for a
// macro expansion, a synthetic "<expansion of X>" path).
func (b *Buffer) Path() string { return b.path }

// Text returns the buffer's full text.
func (b *Buffer) Text() string { return b.text }

// ExpansionOf returns the range of the invocation that produced this
// buffer, and the expanded macro's name. Only meaningful when
// Kind() == Expansion.
func (b *Buffer) ExpansionOf() (Range, string) { return b.expansionOf, b.expandedName }

// Range returns the range spanning this buffer's entire text.
func (b *Buffer) Range() Range {
	return Range{
		Start: Location{Buffer: b.id, Offset: 0},
		End:   Location{Buffer: b.id, Offset: len(b.text)},
	}
}

// Slice returns the text of a byte range within this buffer.
func (b *Buffer) Slice(r Range) string {
	return b.text[r.Start.Offset:r.End.Offset]
}

func (b *Buffer) lines() []int {
	b.lineOnce.Do(func() {
		start := 0
		text := b.text
		for {
			nl := strings.IndexByte(text, '\n')
			if nl < 0 {
				break
			}
			b.lineStart = append(b.lineStart, start)
			start += nl + 1
			text = text[nl+1:]
		}
		b.lineStart = append(b.lineStart, start)
	})
	return b.lineStart
}

// lineOf returns the 0-indexed line containing offset.
func (b *Buffer) lineOf(offset int) int {
	lines := b.lines()
	line, exact := slices.BinarySearch(lines, offset)
	if !exact {
		line--
	}
	return line
}

// addLineDirective records the effect of a `line directive appearing at
// byte offset at, tracking the resolved-vs-physical location split.
func (b *Buffer) addLineDirective(at int, file string, line, level int) {
	if b.directives == nil {
		b.directives = new(lineDirectiveMap)
	}
	b.directives.Set(at, lineDirective{at: at, file: file, line: line, level: level})
}

// nearestDirective returns the last `line directive recorded at or before
// offset, if any.
func (b *Buffer) nearestDirective(offset int) (lineDirective, bool) {
	if b.directives == nil {
		return lineDirective{}, false
	}
	it := b.directives.Iter()
	found := it.Seek(offset)
	if !found || it.Key() > offset {
		// Seek lands on the smallest key >= offset; step back to find the
		// largest key < offset.
		if !it.Prev() {
			return lineDirective{}, false
		}
	}
	return it.Value(), true
}

// resolve turns a byte offset into a display-ready location, honoring any
// `line directives seen before it and using grapheme clusters (not bytes
// or runes) to measure column width.
func (b *Buffer) resolve(offset int) ResolvedLocation {
	physicalLine := b.lineOf(offset)
	lineStart := b.lines()[physicalLine]

	path := b.path
	line := physicalLine + 1
	if d, ok := b.nearestDirective(offset); ok {
		path = d.file
		directiveLine := b.lineOf(d.at)
		line = d.line + (physicalLine - directiveLine)
	}

	column := 1 + uniseg.GraphemeClusterCount(b.text[lineStart:offset])
	return ResolvedLocation{Path: path, Line: line, Column: column, Offset: offset}
}
