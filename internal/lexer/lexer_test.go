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

package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/svlang/svfront/internal/lexer"
	"github.com/svlang/svfront/report"
	"github.com/svlang/svfront/source"
	"github.com/svlang/svfront/token"
	"github.com/svlang/svfront/token/keyword"
)

func lex(t *testing.T, text string) ([]token.Token, *report.Report) {
	t.Helper()
	mgr := source.NewManager()
	id := mgr.AddBuffer("t.sv", text)
	var rep report.Report
	toks := lexer.New(mgr, id, &rep).Lex()
	return toks, &rep
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestLexKeywordsAndIdentifiers(t *testing.T) {
	toks, rep := lex(t, "module top; endmodule")
	require.Zero(t, rep.Len())
	require.Equal(t, []token.Kind{token.Keyword, token.Ident, token.Keyword, token.Keyword, token.EOF}, kinds(toks))
	require.Equal(t, keyword.Module, toks[0].Keyword)
	require.Equal(t, "top", toks[1].Text)
}

func TestLexEscapedAndSystemIdentifiers(t *testing.T) {
	toks, rep := lex(t, `\my-signal $display`)
	require.Zero(t, rep.Len())
	require.Equal(t, token.EscapedIdent, toks[0].Kind)
	require.Equal(t, `\my-signal`, toks[0].Text)
	require.Equal(t, token.SystemIdent, toks[1].Kind)
	require.Equal(t, "$display", toks[1].Text)
}

func TestLexBasedIntegerWithFourStateDigits(t *testing.T) {
	toks, rep := lex(t, "8'bxz01_10z1")
	require.Zero(t, rep.Len())
	require.Equal(t, token.IntLiteral, toks[0].Kind)
	v := toks[0].Value.(token.IntValue)
	require.Equal(t, 8, v.Width)
	require.Equal(t, byte('b'), v.Base)
	require.True(t, v.HasUnknown)
}

func TestLexUnbasedUnsizedLiteral(t *testing.T) {
	toks, _ := lex(t, "'z")
	require.Equal(t, token.UnbasedUnsizedLiteral, toks[0].Kind)
	v := toks[0].Value.(token.IntValue)
	require.True(t, v.HasUnknown)
}

func TestLexRealAndTimeLiterals(t *testing.T) {
	toks, rep := lex(t, "1.5e3 10ns")
	require.Zero(t, rep.Len())
	require.Equal(t, token.RealLiteral, toks[0].Kind)
	require.Equal(t, 1500.0, toks[0].Value.(token.RealValue).Value)
	require.Equal(t, token.TimeLiteral, toks[1].Kind)
	tv := toks[1].Value.(token.TimeValue)
	require.Equal(t, "ns", tv.Unit)
	require.Equal(t, 10.0, tv.Value)
}

func TestLexMissingFractionalDigits(t *testing.T) {
	toks, rep := lex(t, "1. foo")
	require.Equal(t, 1, rep.Len())
	require.Equal(t, report.CodeMissingFractionalDigits, rep.All()[0].Code)
	require.True(t, toks[0].Value.(token.RealValue).MissingFractionalDigits)
}

func TestLexStringWithEscapes(t *testing.T) {
	toks, rep := lex(t, `"hello\nworld"`)
	require.Zero(t, rep.Len())
	require.Equal(t, token.StringLiteral, toks[0].Kind)
	require.Equal(t, "hello\nworld", toks[0].Value.(token.StringValue).Value)
}

func TestLexDirectiveToken(t *testing.T) {
	toks, _ := lex(t, "`define WIDTH 8")
	require.Equal(t, token.Directive, toks[0].Kind)
	require.Equal(t, "`define", toks[0].Text)
}

func TestLexPunctuationMaximalMunch(t *testing.T) {
	toks, rep := lex(t, "<<< << <=")
	require.Zero(t, rep.Len())
	require.Equal(t, keyword.LessLessLess, toks[0].Keyword)
	require.Equal(t, keyword.LessLess, toks[1].Keyword)
	require.Equal(t, keyword.LessEq, toks[2].Keyword)
}

func TestLexTriviaAttachesToNextToken(t *testing.T) {
	toks, _ := lex(t, "  // comment\n  wire")
	require.Len(t, toks[0].Leading, 3) // space, comment, space
	require.Equal(t, token.LineComment, toks[0].Leading[1].Kind)
}

func TestLexUnterminatedStringReportsDiagnostic(t *testing.T) {
	_, rep := lex(t, `"oops`)
	require.Equal(t, 1, rep.Len())
	require.Equal(t, report.CodeUnterminatedString, rep.All()[0].Code)
}

func TestLexMacroPasteAndStringifyMarkers(t *testing.T) {
	toks, rep := lex(t, "a``b `\"x`\" `\\\"y`\\\"")
	require.Zero(t, rep.Len())
	require.Equal(t, []token.Kind{
		token.Ident, token.Directive, token.Ident,
		token.Directive, token.Ident, token.Directive,
		token.Directive, token.Ident, token.Directive,
		token.EOF,
	}, kinds(toks))
	require.Equal(t, "``", toks[1].Text)
	require.Equal(t, "`\"", toks[3].Text)
	require.Equal(t, "`\"", toks[5].Text)
	require.Equal(t, "`\\\"", toks[6].Text)
	require.Equal(t, "`\\\"", toks[8].Text)
}
