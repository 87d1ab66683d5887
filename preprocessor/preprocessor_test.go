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

package preprocessor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/svlang/svfront/preprocessor"
	"github.com/svlang/svfront/report"
	"github.com/svlang/svfront/source"
	"github.com/svlang/svfront/token"
)

func run(t *testing.T, text string, opts ...source.Option) ([]token.Token, *report.Report, *source.Manager) {
	t.Helper()
	mgr := source.NewManager(opts...)
	id := mgr.AddBuffer("t.sv", text)
	var rep report.Report
	pp := preprocessor.New(mgr, &rep)
	pp.PushFile(id)
	toks := pp.Tokens()
	require.Equal(t, token.EOF, toks[len(toks)-1].Kind)
	return toks[:len(toks)-1], &rep, mgr
}

func texts(toks []token.Token) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Text
	}
	return out
}

func TestObjectLikeMacroExpansion(t *testing.T) {
	toks, rep, _ := run(t, "`define WIDTH 8\nwire [WIDTH-1:0] x;")
	require.Zero(t, rep.Len())
	require.Equal(t, []string{"wire", "[", "8", "-", "1", ":", "0", "]", "x", ";"}, texts(toks))
}

func TestFunctionLikeMacroWithArgsAndDefault(t *testing.T) {
	toks, rep, _ := run(t, "`define MAX(a, b=0) ((a) > (b) ? (a) : (b))\nx = `MAX(y);")
	require.Zero(t, rep.Len())
	require.Equal(t, []string{"x", "=", "(", "(", "y", ")", ">", "(", "0", ")", "?", "(", "y", ")", ":", "(", "0", ")", ")", ";"}, texts(toks))
}

func TestMacroRecursionEmitsVerbatim(t *testing.T) {
	toks, rep, _ := run(t, "`define A 1 + `A\n`A")
	require.Zero(t, rep.Len())
	require.Equal(t, []string{"1", "+", "`A"}, texts(toks))
	require.Equal(t, token.Directive, toks[2].Kind)
}

func TestUndefinedMacroInDirectiveForm(t *testing.T) {
	_, rep, _ := run(t, "`NOPE")
	require.Equal(t, 1, rep.Len())
	require.Equal(t, report.CodeUnknownDirective, rep.All()[0].Code)
}

func TestConditionalInclusionSkipsFalseBranch(t *testing.T) {
	toks, rep, _ := run(t, "`ifdef FOO\nwire a;\n`else\nwire b;\n`endif")
	require.Zero(t, rep.Len())
	require.Equal(t, []string{"wire", "b", ";"}, texts(toks))
}

func TestConditionalInclusionTakesDefinedBranch(t *testing.T) {
	toks, rep, _ := run(t, "`define FOO\n`ifdef FOO\nwire a;\n`else\nwire b;\n`endif")
	require.Zero(t, rep.Len())
	require.Equal(t, []string{"wire", "a", ";"}, texts(toks))
}

func TestElsifChain(t *testing.T) {
	toks, rep, _ := run(t, "`define B\n`ifdef A\none\n`elsif B\ntwo\n`elsif C\nthree\n`else\nfour\n`endif")
	require.Zero(t, rep.Len())
	require.Equal(t, []string{"two"}, texts(toks))
}

func TestUnterminatedConditionalReportsDiagnostic(t *testing.T) {
	_, rep, _ := run(t, "`ifdef FOO\nwire a;")
	require.Equal(t, 1, rep.Len())
	require.Equal(t, report.CodeUnterminatedConditional, rep.All()[0].Code)
}

func TestElseWithoutIfReportsDiagnostic(t *testing.T) {
	_, rep, _ := run(t, "`else\nwire a;\n`endif")
	require.NotZero(t, rep.Len())
	require.Equal(t, report.CodeElseWithoutIf, rep.All()[0].Code)
}

func TestTokenPasting(t *testing.T) {
	toks, rep, _ := run(t, "`define CONCAT(a, b) a``b\nwire `CONCAT(my, sig);")
	require.Zero(t, rep.Len())
	require.Equal(t, []string{"wire", "mysig", ";"}, texts(toks))
}

func TestStringification(t *testing.T) {
	toks, rep, _ := run(t, "`define STR(x) `\"x`\"\nfoo = `STR(hello);")
	require.Zero(t, rep.Len())
	require.Equal(t, token.StringLiteral, toks[2].Kind)
	require.Equal(t, "hello", toks[2].Value.(token.StringValue).Value)
}

func TestIncludeInlinesFile(t *testing.T) {
	opener := source.Map{"foo.svh": "wire included;\n"}
	toks, rep, _ := run(t, "`include \"foo.svh\"\nwire top;", source.WithOpener(opener), source.WithIncludeDirs("."))
	require.Zero(t, rep.Len())
	require.Equal(t, []string{"wire", "included", ";", "wire", "top", ";"}, texts(toks))
}

func TestIncludeNotFoundReportsDiagnostic(t *testing.T) {
	_, rep, _ := run(t, "`include \"missing.svh\"", source.WithOpener(source.Map{}))
	require.Equal(t, 1, rep.Len())
	require.Equal(t, report.CodeIncludeNotFound, rep.All()[0].Code)
}

func TestPredefineAndIsDefined(t *testing.T) {
	mgr := source.NewManager()
	var rep report.Report
	pp := preprocessor.New(mgr, &rep)
	pp.Predefine("SIM", "1")
	require.True(t, pp.IsDefined("SIM"))
	require.False(t, pp.IsDefined("SYNTH"))
}

func TestDefinedMacrosSnapshotOrderedByFirstDefinition(t *testing.T) {
	mgr := source.NewManager()
	id := mgr.AddBuffer("t.sv", "`define B 2\n`define A 1\n`define B 3")
	var rep report.Report
	pp := preprocessor.New(mgr, &rep)
	pp.PushFile(id)
	pp.Tokens()
	// B's second definition has a different body, so it is reported, but
	// B keeps the position of its first definition.
	require.Equal(t, 1, rep.Len())
	require.Equal(t, report.CodeMacroRedefinition, rep.All()[0].Code)
	var names []string
	for _, m := range pp.DefinedMacros() {
		names = append(names, m.Name)
	}
	require.Equal(t, []string{"B", "A"}, names)
}

func TestMacroRedefinitionMismatchReportsDiagnostic(t *testing.T) {
	_, rep, _ := run(t, "`define FOO 1\n`define FOO 2")
	require.Equal(t, 1, rep.Len())
	require.Equal(t, report.CodeMacroRedefinition, rep.All()[0].Code)
}

func TestMacroRedefinitionIdenticalIsSilent(t *testing.T) {
	_, rep, _ := run(t, "`define FOO 1\n`define FOO 1")
	require.Zero(t, rep.Len())
}

func TestUndefRemovesMacro(t *testing.T) {
	mgr := source.NewManager()
	id := mgr.AddBuffer("t.sv", "`define FOO 1\n`undef FOO\n`ifdef FOO\nyes\n`else\nno\n`endif")
	var rep report.Report
	pp := preprocessor.New(mgr, &rep)
	pp.PushFile(id)
	toks := pp.Tokens()
	require.Equal(t, []string{"no"}, texts(toks[:len(toks)-1]))
}

func TestTimescaleDirectiveTracksValue(t *testing.T) {
	toks, rep, _ := run(t, "`timescale 1ns/1ps\nwire a;")
	require.Zero(t, rep.Len())
	require.Equal(t, []string{"wire", "a", ";"}, texts(toks))
}

func TestMalformedTimescaleReportsDiagnostic(t *testing.T) {
	_, rep, _ := run(t, "`timescale bogus\nwire a;")
	require.Equal(t, 1, rep.Len())
	require.Equal(t, report.CodeMalformedTimescale, rep.All()[0].Code)
}

func TestDefineInsideDisabledBranchDoesNotTakeEffect(t *testing.T) {
	toks, rep, _ := run(t, "`ifdef FOO\n`define BAR 1\n`endif\n`ifdef BAR\nyes\n`else\nno\n`endif")
	require.Zero(t, rep.Len())
	require.Equal(t, []string{"no"}, texts(toks))
}
