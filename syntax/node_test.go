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

package syntax_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/svlang/svfront/internal/lexer"
	"github.com/svlang/svfront/report"
	"github.com/svlang/svfront/source"
	"github.com/svlang/svfront/syntax"
	"github.com/svlang/svfront/token"
)

func lexTokens(t *testing.T, text string) []*syntax.Node {
	t.Helper()
	mgr := source.NewManager()
	id := mgr.AddBuffer("t.sv", text)
	var rep report.Report
	toks := lexer.New(mgr, id, &rep).Lex()
	require.Zero(t, rep.Len())
	nodes := make([]*syntax.Node, len(toks))
	for i, tok := range toks {
		nodes[i] = syntax.NewToken(tok)
	}
	return nodes
}

func TestPrintRoundTripsSource(t *testing.T) {
	text := "  module top; // hi\n  wire foo;\nendmodule\n"
	leaves := lexTokens(t, text)
	root := syntax.New(syntax.File, leaves...)
	require.Equal(t, text, syntax.Print(root))
}

func TestPrintOmitsSyntheticTokens(t *testing.T) {
	leaves := lexTokens(t, "wire foo")
	missing := syntax.NewToken(token.Synth(token.Keyword, ";", leaves[len(leaves)-1].Range().End))
	root := syntax.New(syntax.File, append(leaves, missing)...)
	require.Equal(t, "wire foo", syntax.Print(root))
}

func TestChildAndIdentLookup(t *testing.T) {
	leaves := lexTokens(t, "module top")
	decl := syntax.New(syntax.ModuleDecl, leaves...)
	require.Equal(t, "top", decl.Name())
}

func TestRewriteRebuildsOnlyChangedSpine(t *testing.T) {
	leaves := lexTokens(t, "wire foo ; wire bar ;")
	list := syntax.New(syntax.List, leaves...)
	root := syntax.New(syntax.File, list)

	renamed := syntax.Rewrite(root, syntax.RewriterFunc(func(n *syntax.Node) *syntax.Node {
		if n.IsToken() && n.Token().Text == "foo" {
			tok := n.Token()
			tok.Text = "renamed"
			return syntax.NewToken(tok)
		}
		return n
	}))

	require.NotSame(t, root, renamed)
	require.Contains(t, syntax.Print(renamed), "renamed")
	require.Equal(t, "wire foo ; wire bar ;", syntax.Print(root), "original tree must be untouched")
}

func TestWalkVisitsEveryNode(t *testing.T) {
	leaves := lexTokens(t, "a b c")
	root := syntax.New(syntax.List, leaves...)
	count := 0
	syntax.Walk(root, func(*syntax.Node) { count++ })
	require.Equal(t, 1+len(leaves), count)
}
