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

package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/svlang/svfront/parser"
	"github.com/svlang/svfront/preprocessor"
	"github.com/svlang/svfront/report"
	"github.com/svlang/svfront/source"
	"github.com/svlang/svfront/syntax"
)

func parseFile(t *testing.T, text string) (*syntax.Node, *report.Report) {
	t.Helper()
	mgr := source.NewManager()
	id := mgr.AddBuffer("t.sv", text)
	var rep report.Report
	pp := preprocessor.New(mgr, &rep)
	pp.PushFile(id)
	p := parser.FromPreprocessor(pp, &rep)
	root := p.ParseFile()
	return root, &rep
}

func requireRoundTrip(t *testing.T, text string) *syntax.Node {
	t.Helper()
	root, rep := parseFile(t, text)
	require.Zero(t, rep.Len(), "unexpected diagnostics: %v", rep.All())
	require.Equal(t, text, syntax.Print(root))
	return root
}

func TestParseModuleWithWireAndContinuousAssign(t *testing.T) {
	root := requireRoundTrip(t, "module m; wire foo; assign foo = 1, foo = 'z; endmodule\n")
	mod := root.Child(syntax.List).Child(syntax.ModuleDecl)
	require.Equal(t, "m", mod.Name())
	members := mod.Child(syntax.List).Children()
	require.Len(t, members, 2)
	require.Equal(t, syntax.NetDecl, members[0].Kind())
	require.Equal(t, syntax.ContinuousAssign, members[1].Kind())
	items := members[1].Child(syntax.List).ChildrenOf(syntax.AssignItem)
	require.Len(t, items, 2)
}

func TestParsePackageNettypeAndWildcardImport(t *testing.T) {
	root := requireRoundTrip(t, "package p; nettype logic [3:0] foo; endpackage\nmodule m; import p::*; foo a = 1; endmodule\n")
	items := root.Child(syntax.List).Children()
	require.Equal(t, syntax.PackageDecl, items[0].Kind())
	require.NotNil(t, items[0].Child(syntax.List).Child(syntax.NettypeDecl))
	mod := items[1]
	members := mod.Child(syntax.List).Children()
	require.Equal(t, syntax.ImportDecl, members[0].Kind())
	require.Equal(t, syntax.DataDecl, members[1].Kind())
	require.Equal(t, "foo", members[1].Child(syntax.DataType).Name())
}

func TestParseMacroDrivenParameterDefault(t *testing.T) {
	root, rep := parseFile(t, "`define W 4\nmodule m #(parameter int N = `W) (); endmodule\n")
	require.Zero(t, rep.Len())
	mod := root.Child(syntax.List).Child(syntax.ModuleDecl)
	params := mod.Child(syntax.ParamPortList).Child(syntax.List).ChildrenOf(syntax.ParamDecl)
	require.Len(t, params, 1)
	decl := params[0].Child(syntax.Declarator)
	require.NotNil(t, decl.Child(syntax.LiteralExpr))
}

func TestParseTimeunitDecl(t *testing.T) {
	root := requireRoundTrip(t, "module m; timeunit 1ns / 1ps; endmodule\n")
	mod := root.Child(syntax.List).Child(syntax.ModuleDecl)
	tu := mod.Child(syntax.List).Child(syntax.TimeunitDecl)
	require.NotNil(t, tu)
}

func TestParseNonAnsiUdpSequential(t *testing.T) {
	text := "primitive latch (q, clk, d);\noutput q; reg q; input clk, d;\ninitial q = 1'bx;\ntable\n0 0 : ? : 0;\nendtable\nendprimitive\n"
	root := requireRoundTrip(t, text)
	prim := root.Child(syntax.List).Child(syntax.PrimitiveDecl)
	require.Equal(t, "latch", prim.Name())
	body := prim.Child(syntax.UdpBody).Child(syntax.List).Children()
	var sawInitial, sawTable bool
	for _, m := range body {
		if m.Kind() == syntax.UdpInitial {
			sawInitial = true
		}
		if m.Kind() == syntax.UdpTable {
			sawTable = true
		}
	}
	require.True(t, sawInitial)
	require.True(t, sawTable)
}

func TestParseAnsiPortRedeclaredAsPlainInput(t *testing.T) {
	// Parses without a parser-level diagnostic; the PortDeclInANSIModule
	// diagnostic itself belongs to elaboration.
	root, rep := parseFile(t, "module m(input wire a); input a; endmodule\n")
	require.Zero(t, rep.Len())
	mod := root.Child(syntax.List).Child(syntax.ModuleDecl)
	ansiPort := mod.Child(syntax.PortList).Child(syntax.List).Child(syntax.AnsiPort)
	require.Equal(t, "a", ansiPort.Child(syntax.Declarator).Name())
	nonAnsi := mod.Child(syntax.List).Child(syntax.NonAnsiPort)
	require.Equal(t, "a", nonAnsi.Child(syntax.List).Child(syntax.Declarator).Name())
}

func TestParseExpressionPrecedence(t *testing.T) {
	root := requireRoundTrip(t, "module m; assign x = a + b * c; endmodule\n")
	assign := root.Child(syntax.List).Child(syntax.ModuleDecl).Child(syntax.List).Child(syntax.ContinuousAssign)
	rhs := assign.Child(syntax.List).Child(syntax.AssignItem).Children()[2]
	require.Equal(t, syntax.BinaryExpr, rhs.Kind())
	require.Equal(t, "+", rhs.Children()[1].Token().Text)
	mul := rhs.Children()[2]
	require.Equal(t, syntax.BinaryExpr, mul.Kind())
	require.Equal(t, "*", mul.Children()[1].Token().Text)
}

func TestParseInstanceDeclDistinguishedFromDataDecl(t *testing.T) {
	root := requireRoundTrip(t, "module m; wire w; sub s1(.a(w)); endmodule\n")
	members := root.Child(syntax.List).Child(syntax.ModuleDecl).Child(syntax.List).Children()
	require.Equal(t, syntax.NetDecl, members[0].Kind())
	require.Equal(t, syntax.InstanceDecl, members[1].Kind())
	require.Equal(t, "sub", members[1].Child(syntax.DataType).Name())
}

func TestParseErrorRecoveryInsertsSyntheticSemicolon(t *testing.T) {
	root, rep := parseFile(t, "module m wire a; endmodule\n")
	require.NotZero(t, rep.Len())
	require.Equal(t, report.CodeExpectedToken, rep.All()[0].Code)
	mod := root.Child(syntax.List).Child(syntax.ModuleDecl)
	require.Equal(t, "m", mod.Name())
	require.NotEmpty(t, mod.Child(syntax.List).Children())
}

func TestRewriteThenReprintOnParsedTree(t *testing.T) {
	root, rep := parseFile(t, "module m; wire foo; endmodule\n")
	require.Zero(t, rep.Len())
	renamed := syntax.Rewrite(root, syntax.RewriterFunc(func(n *syntax.Node) *syntax.Node {
		if n.IsToken() && n.Token().Text == "foo" {
			tok := n.Token()
			tok.Text = "bar"
			return syntax.NewToken(tok)
		}
		return n
	}))
	require.Contains(t, syntax.Print(renamed), "wire bar;")
	require.Contains(t, syntax.Print(root), "wire foo;")
}
