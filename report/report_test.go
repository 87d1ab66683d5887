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

package report_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/svlang/svfront/report"
	"github.com/svlang/svfront/source"
)

func at(offset int) source.Range {
	return source.Range{
		Start: source.Location{Buffer: 1, Offset: offset},
		End:   source.Location{Buffer: 1, Offset: offset + 1},
	}
}

func TestPushDeduplicatesByCodeAndLocation(t *testing.T) {
	var r report.Report
	r.Errorf(report.CodeUnknownToken, at(5), "unexpected character")
	r.Errorf(report.CodeUnknownToken, at(5), "unexpected character")
	require.Equal(t, 1, r.Len())

	r.Errorf(report.CodeUnknownToken, at(6), "unexpected character")
	require.Equal(t, 2, r.Len())
}

func TestSuppressDropsFutureDiagnostics(t *testing.T) {
	var r report.Report
	r.Suppress(report.CodeUnknownDirective)
	r.Errorf(report.CodeUnknownDirective, at(0), "bad directive")
	require.Equal(t, 0, r.Len())

	r.Unsuppress(report.CodeUnknownDirective)
	r.Errorf(report.CodeUnknownDirective, at(0), "bad directive")
	require.Equal(t, 1, r.Len())
}

func TestRollbackDiscardsSpeculativeDiagnostics(t *testing.T) {
	var r report.Report
	r.Errorf(report.CodeExpectedToken, at(0), "expected ';'")

	mark := r.Mark()
	r.Errorf(report.CodeUnexpectedTok, at(10), "unexpected token during speculative parse")
	require.Equal(t, 2, r.Len())

	r.Rollback(mark)
	require.Equal(t, 1, r.Len())

	// Re-raising the same diagnostic after rollback must not be treated as
	// a duplicate of the rolled-back one.
	r.Errorf(report.CodeUnexpectedTok, at(10), "unexpected token for real this time")
	require.Equal(t, 2, r.Len())
}

func TestHasErrorsIgnoresWarningsAndNotes(t *testing.T) {
	var r report.Report
	r.Warnf(report.CodeMacroRedefinition, at(0), "redefinition")
	r.Notef(report.CodeUdpMissingOutput, at(0), "note")
	require.False(t, r.HasErrors())

	r.Errorf(report.CodeRecursiveDefinition, at(0), "cycle")
	require.True(t, r.HasErrors())
}

func TestAddNoteAttachesToLastDiagnostic(t *testing.T) {
	var r report.Report
	r.Errorf(report.CodeNameNotFound, at(0), "'foo' not found")
	r.AddNote(at(20), "did you mean 'bar'?")

	all := r.All()
	require.Len(t, all, 1)
	require.Len(t, all[0].Notes, 1)
	require.Equal(t, "did you mean 'bar'?", all[0].Notes[0].Message)
}
