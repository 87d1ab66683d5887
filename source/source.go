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

// Package source implements the source manager : the owner of
// every buffer that participates in a compilation, including the text
// pulled in through `include and the synthetic text produced by macro
// expansion, plus the machinery for turning a byte offset back into a
// human-readable file/line/column.
package source

// BufferID identifies a buffer owned by a [Manager]. The zero value is
// never a valid buffer.
type BufferID int32

// IsZero reports whether id refers to no buffer.
func (id BufferID) IsZero() bool { return id == 0 }

// Location is a byte offset into a specific buffer.
type Location struct {
	Buffer BufferID
	Offset int
}

// IsZero reports whether loc refers to nothing.
func (loc Location) IsZero() bool { return loc.Buffer.IsZero() }

// Range is a half-open [Start, End) span of text within a single buffer.
//
// Start.Buffer and End.Buffer are always equal for a well-formed Range;
// spans that must cover text from more than one buffer (for example, a
// macro invocation and its expansion) are represented as a pair of Ranges
// linked through [Buffer.ExpansionOf] rather than as a single Range.
type Range struct {
	Start, End Location
}

// IsZero reports whether r carries no location information.
func (r Range) IsZero() bool { return r.Start.IsZero() }

// Len returns the length of the range, in bytes.
func (r Range) Len() int { return r.End.Offset - r.Start.Offset }

// Join returns the smallest Range containing both r and other.
//
// If either is zero, the other is returned unchanged. Panics if both are
// non-zero and refer to different buffers.
func Join(r, other Range) Range {
	if r.IsZero() {
		return other
	}
	if other.IsZero() {
		return r
	}
	if r.Start.Buffer != other.Start.Buffer {
		panic("source: Join across distinct buffers")
	}
	return Range{
		Start: Location{Buffer: r.Start.Buffer, Offset: min(r.Start.Offset, other.Start.Offset)},
		End:   Location{Buffer: r.Start.Buffer, Offset: max(r.End.Offset, other.End.Offset)},
	}
}

// ResolvedLocation is a human-displayable rendering of a [Location]: a
// path, plus a 1-indexed line and column.
//
// Column is measured in grapheme clusters, accounting for combining
// marks and other multi-codepoint graphemes, not
// bytes or runes, so that a diagnostic caret lines up under the character
// a user would point at.
type ResolvedLocation struct {
	Path   string
	Line   int
	Column int
	Offset int
}
