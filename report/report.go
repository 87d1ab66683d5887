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

// Package report implements the diagnostic engine : an
// accumulator of structured diagnostics with locations, notes, and
// severities, with deduplication and code-based suppression.
//
// Diagnostics are values, not log lines: every phase of the compiler
// (lexer, preprocessor, parser, elaborator) pushes [Diagnostic] values onto
// a shared [Report] rather than writing to stdio, so that an interactive
// editor can render, filter, or discard them as it sees fit.
package report

import (
	"fmt"

	"github.com/svlang/svfront/source"
)

// Severity is how serious a diagnostic is.
type Severity int8

const (
	_ Severity = iota
	Error
	Warning
	Note
)

// String implements fmt.Stringer.
func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Note:
		return "note"
	default:
		return fmt.Sprintf("report.Severity(%d)", int(s))
	}
}

// Code is a stable, symbolic diagnostic identifier (the testable-property notes: "stable
// symbolic identifiers; tools may filter by code or by severity").
//
// Codes are grouped by the pipeline stage that raises them; see codes.go
// for the registry used by this module.
type Code string

// NoteMessage is a single note attached to a [Diagnostic], with its own
// location.
type NoteMessage struct {
	Range   source.Range
	Message string
}

// Diagnostic is a single structured diagnostic.
type Diagnostic struct {
	Code     Code
	Severity Severity

	// Primary is the diagnostic's main location. It may be the zero
	// [source.Range] for diagnostics with no useful span (e.g. "file too
	// large to lex").
	Primary source.Range

	// Message is the rendered diagnostic message. Arguments are formatted
	// eagerly at push time; unlike protocompile's Diagnose interface, this
	// keeps Report's exported surface (the testable-property notes: "enumerate diagnostics")
	// free of a rendering callback that outlives the pass that raised it.
	Message string

	Notes []NoteMessage
}

// Report accumulates diagnostics for a single compilation.
//
// A Report deduplicates by (Code, Primary.Start) and supports suppressing
// specific codes outright .
type Report struct {
	diagnostics []Diagnostic
	seen        map[dedupeKey]struct{}
	suppressed  map[Code]bool
}

type dedupeKey struct {
	code   Code
	buffer source.BufferID
	offset int
}

// Suppress marks a code as suppressed: future pushes of that code are
// dropped.
func (r *Report) Suppress(code Code) {
	if r.suppressed == nil {
		r.suppressed = make(map[Code]bool)
	}
	r.suppressed[code] = true
}

// Unsuppress reverses a prior call to Suppress.
func (r *Report) Unsuppress(code Code) {
	delete(r.suppressed, code)
}

// Push adds a diagnostic to the report, unless the code is suppressed or an
// identical (code, location) diagnostic was already pushed.
//
// Returns whether the diagnostic was actually recorded.
func (r *Report) Push(d Diagnostic) bool {
	if r.suppressed[d.Code] {
		return false
	}

	key := dedupeKey{code: d.Code}
	if !d.Primary.IsZero() {
		key.buffer = d.Primary.Start.Buffer
		key.offset = d.Primary.Start.Offset
	}
	if r.seen == nil {
		r.seen = make(map[dedupeKey]struct{})
	}
	if _, dup := r.seen[key]; dup {
		return false
	}
	r.seen[key] = struct{}{}
	r.diagnostics = append(r.diagnostics, d)
	return true
}

// Errorf pushes an error diagnostic with the given code and message.
func (r *Report) Errorf(code Code, at source.Range, format string, args ...any) {
	r.Push(Diagnostic{Code: code, Severity: Error, Primary: at, Message: fmt.Sprintf(format, args...)})
}

// Warnf pushes a warning diagnostic with the given code and message.
func (r *Report) Warnf(code Code, at source.Range, format string, args ...any) {
	r.Push(Diagnostic{Code: code, Severity: Warning, Primary: at, Message: fmt.Sprintf(format, args...)})
}

// Notef pushes a note-level diagnostic with the given code and message.
func (r *Report) Notef(code Code, at source.Range, format string, args ...any) {
	r.Push(Diagnostic{Code: code, Severity: Note, Primary: at, Message: fmt.Sprintf(format, args...)})
}

// AddNote attaches a note to the most recently pushed diagnostic. It is a
// no-op if the report is empty.
func (r *Report) AddNote(at source.Range, format string, args ...any) {
	if len(r.diagnostics) == 0 {
		return
	}
	last := &r.diagnostics[len(r.diagnostics)-1]
	last.Notes = append(last.Notes, NoteMessage{Range: at, Message: fmt.Sprintf(format, args...)})
}

// All returns every diagnostic pushed onto the report, in push order.
func (r *Report) All() []Diagnostic {
	return r.diagnostics
}

// HasErrors reports whether any diagnostic at [Error] severity was pushed.
func (r *Report) HasErrors() bool {
	for _, d := range r.diagnostics {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// Len returns the number of diagnostics currently recorded.
func (r *Report) Len() int {
	return len(r.diagnostics)
}

// Checkpoint is an opaque marker returned by [Report.Mark], used to discard
// diagnostics accumulated during a speculative parse: speculative
// diagnostics are buffered and discarded on rollback.
type Checkpoint int

// Mark returns a checkpoint at the report's current length.
func (r *Report) Mark() Checkpoint {
	return Checkpoint(len(r.diagnostics))
}

// Rollback discards every diagnostic pushed since mark.
func (r *Report) Rollback(mark Checkpoint) {
	if int(mark) >= len(r.diagnostics) {
		return
	}
	// Deduplication keys for the rolled-back diagnostics must also be
	// forgotten, otherwise re-raising the same diagnostic after a
	// successful reparse would be silently dropped as a duplicate.
	for _, d := range r.diagnostics[mark:] {
		key := dedupeKey{code: d.Code}
		if !d.Primary.IsZero() {
			key.buffer = d.Primary.Start.Buffer
			key.offset = d.Primary.Start.Offset
		}
		delete(r.seen, key)
	}
	r.diagnostics = r.diagnostics[:mark]
}
