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

package symbols_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/svlang/svfront/parser"
	"github.com/svlang/svfront/preprocessor"
	"github.com/svlang/svfront/report"
	"github.com/svlang/svfront/source"
	"github.com/svlang/svfront/symbols"
)

func elaborateText(t *testing.T, text string) (*symbols.Compilation, *report.Report) {
	t.Helper()
	mgr := source.NewManager()
	id := mgr.AddBuffer("t.sv", text)
	var rep report.Report
	pp := preprocessor.New(mgr, &rep)
	pp.PushFile(id)
	p := parser.FromPreprocessor(pp, &rep)
	root := p.ParseFile()
	require.Zero(t, rep.Len(), "unexpected parser diagnostics: %v", rep.All())

	comp := symbols.NewCompilation(&rep)
	comp.SetDefaultNettype(pp.DefaultNettype())
	comp.AddSyntaxTree(root)
	comp.Elaborate()
	return comp, &rep
}

func TestImplicitNetCreationFromContinuousAssign(t *testing.T) {
	comp, rep := elaborateText(t, "module m; wire foo; assign foo = 1, bar = 'z; endmodule\n")
	require.Zero(t, rep.Len())

	tops := comp.TopInstances()
	require.Len(t, tops, 1)
	scope := tops[0].Body.Scope()

	fooSym, ok := scope.LookupLocal("foo")
	require.True(t, ok)
	foo, ok := fooSym.(*symbols.NetSymbol)
	require.True(t, ok)
	require.False(t, foo.Implicit)

	barSym, ok := scope.LookupLocal("bar")
	require.True(t, ok)
	bar, ok := barSym.(*symbols.NetSymbol)
	require.True(t, ok)
	require.True(t, bar.Implicit)
	require.Equal(t, "wire", bar.NetTypeName)
}

func TestImplicitNetCreationDisabledByDefaultNettypeNone(t *testing.T) {
	mgr := source.NewManager()
	id := mgr.AddBuffer("t.sv", "module m; assign bar = 1; endmodule\n")
	var rep report.Report
	pp := preprocessor.New(mgr, &rep)
	pp.PushFile(id)
	p := parser.FromPreprocessor(pp, &rep)
	root := p.ParseFile()
	require.Zero(t, rep.Len())

	comp := symbols.NewCompilation(&rep)
	comp.SetDefaultNettype("")
	comp.AddSyntaxTree(root)
	comp.Elaborate()

	require.NotZero(t, rep.Len())
	require.Equal(t, report.CodeNameNotFound, rep.All()[0].Code)
}

func TestNettypeAndWildcardImport(t *testing.T) {
	comp, rep := elaborateText(t,
		"package p; nettype logic [3:0] foo; endpackage\n"+
			"module m; import p::*; foo a = 1; endmodule\n")
	require.Zero(t, rep.Len())

	pkg, ok := comp.GetPackage("p")
	require.True(t, ok)
	_, ok = pkg.Scope().LookupLocal("foo")
	require.True(t, ok)

	tops := comp.TopInstances()
	require.Len(t, tops, 1)
	sym, ok := tops[0].Body.Scope().LookupLocal("a")
	require.True(t, ok)
	require.Equal(t, symbols.Variable, sym.Kind())
}

func TestAmbiguousWildcardImport(t *testing.T) {
	// Forcing a plain-name lookup via an assignment target is what actually
	// exercises wildcard-import resolution here: a data declaration's own
	// named type is resolved lazily and would not otherwise trigger it.
	comp, rep := elaborateText(t,
		"package p1; nettype logic foo; endpackage\n"+
			"package p2; nettype logic foo; endpackage\n"+
			"module m; import p1::*; import p2::*; assign foo = 1; endmodule\n")
	_ = comp
	require.NotZero(t, rep.Len())
	found := false
	for _, d := range rep.All() {
		if d.Code == report.CodeAmbiguousImport {
			found = true
		}
	}
	require.True(t, found)
}

func TestMacroDrivenParameterDefaultFoldsToConstant(t *testing.T) {
	comp, rep := elaborateText(t, "`define W 4\nmodule m #(parameter int N = `W) (); endmodule\n")
	require.Zero(t, rep.Len())

	tops := comp.TopInstances()
	require.Len(t, tops, 1)
	require.Equal(t, "4", tops[0].Body.Params["N"])
}

func TestTimeunitMismatchDiagnostic(t *testing.T) {
	mgr := source.NewManager()
	id := mgr.AddBuffer("t.sv", "module m; timeunit 1ps; endmodule\n")
	var rep report.Report
	pp := preprocessor.New(mgr, &rep)
	pp.PushFile(id)
	p := parser.FromPreprocessor(pp, &rep)
	root := p.ParseFile()
	require.Zero(t, rep.Len())

	comp := symbols.NewCompilation(&rep)
	comp.SetTimescale("1ns/1ns")
	comp.AddSyntaxTree(root)
	comp.Elaborate()

	require.NotZero(t, rep.Len())
	require.Equal(t, report.CodeMismatchedTimeScales, rep.All()[0].Code)
}

func TestTimeunitMatchesTimescaleIsClean(t *testing.T) {
	mgr := source.NewManager()
	id := mgr.AddBuffer("t.sv", "module m; timeunit 1ns; endmodule\n")
	var rep report.Report
	pp := preprocessor.New(mgr, &rep)
	pp.PushFile(id)
	p := parser.FromPreprocessor(pp, &rep)
	root := p.ParseFile()
	require.Zero(t, rep.Len())

	comp := symbols.NewCompilation(&rep)
	comp.SetTimescale("1ns/1ps")
	comp.AddSyntaxTree(root)
	comp.Elaborate()
	require.Zero(t, rep.Len())
}

func TestPortDeclInANSIModule(t *testing.T) {
	comp, rep := elaborateText(t, "module m(input wire a); input a; endmodule\n")
	_ = comp
	require.NotZero(t, rep.Len())
	require.Equal(t, report.CodePortDeclInANSIModule, rep.All()[0].Code)
}

func TestNonAnsiMissingPortDecl(t *testing.T) {
	comp, rep := elaborateText(t, "module m(a, b); input a; endmodule\n")
	_ = comp
	require.NotZero(t, rep.Len())
	found := false
	for _, d := range rep.All() {
		if d.Code == report.CodeMissingPortDecl {
			found = true
		}
	}
	require.True(t, found)
}

func TestNonAnsiPortSatisfiedIsClean(t *testing.T) {
	comp, rep := elaborateText(t, "module m(a, b); input a; output b; endmodule\n")
	require.Zero(t, rep.Len())
	tops := comp.TopInstances()
	require.Len(t, tops, 1)
	_, ok := tops[0].Body.Scope().LookupLocal("a")
	require.True(t, ok)
	_, ok = tops[0].Body.Scope().LookupLocal("b")
	require.True(t, ok)
}

func TestUdpSequentialLatch(t *testing.T) {
	text := "primitive latch (q, clk, d);\noutput q; reg q; input clk, d;\n" +
		"initial q = 1'bx;\ntable\n0 0 : ? : 0;\nendtable\nendprimitive\n"
	mgr := source.NewManager()
	id := mgr.AddBuffer("t.sv", text)
	var rep report.Report
	pp := preprocessor.New(mgr, &rep)
	pp.PushFile(id)
	p := parser.FromPreprocessor(pp, &rep)
	root := p.ParseFile()
	require.Zero(t, rep.Len())

	comp := symbols.NewCompilation(&rep)
	comp.AddSyntaxTree(root)
	comp.Elaborate()
	require.Zero(t, rep.Len())
}

func TestUdpMissingOutputDiagnostic(t *testing.T) {
	text := "primitive bad (a, b);\ninput a, b;\ntable\n0 0 : 0;\nendtable\nendprimitive\n"
	mgr := source.NewManager()
	id := mgr.AddBuffer("t.sv", text)
	var rep report.Report
	pp := preprocessor.New(mgr, &rep)
	pp.PushFile(id)
	p := parser.FromPreprocessor(pp, &rep)
	root := p.ParseFile()

	comp := symbols.NewCompilation(&rep)
	comp.AddSyntaxTree(root)
	comp.Elaborate()

	require.NotZero(t, rep.Len())
	found := false
	for _, d := range rep.All() {
		if d.Code == report.CodeUdpMissingOutput {
			found = true
		}
	}
	require.True(t, found)
}

func TestUdpMultipleOutputsDiagnostic(t *testing.T) {
	text := "primitive bad (a, b, c);\noutput a; output b; input c;\ntable\n0 0 : 0;\nendtable\nendprimitive\n"
	mgr := source.NewManager()
	id := mgr.AddBuffer("t.sv", text)
	var rep report.Report
	pp := preprocessor.New(mgr, &rep)
	pp.PushFile(id)
	p := parser.FromPreprocessor(pp, &rep)
	root := p.ParseFile()

	comp := symbols.NewCompilation(&rep)
	comp.AddSyntaxTree(root)
	comp.Elaborate()

	require.NotZero(t, rep.Len())
	found := false
	for _, d := range rep.All() {
		if d.Code == report.CodeUdpMultipleOutputs {
			found = true
		}
	}
	require.True(t, found)
}

// TestLookupMonotonicity checks that a scope's membership only grows: once
// a name resolves, no later addition to the scope makes it stop resolving,
// and the set of names visible from LookupLocal only grows as members are
// added.
func TestLookupMonotonicity(t *testing.T) {
	comp, rep := elaborateText(t, "module m; wire a; wire b; wire c; endmodule\n")
	require.Zero(t, rep.Len())
	tops := comp.TopInstances()
	require.Len(t, tops, 1)
	scope := tops[0].Body.Scope()

	seenAfter := map[string]bool{}
	for i, mem := range scope.Members() {
		name := mem.Name()
		if name == "" {
			continue
		}
		_, ok := scope.LookupLocal(name)
		require.Truef(t, ok, "member %d (%s) should resolve once added", i, name)
		seenAfter[name] = true
	}
	for name := range seenAfter {
		_, ok := scope.LookupLocal(name)
		require.True(t, ok)
	}
}

// TestInstanceSharing checks that two instances of the same definition with
// identical parameter overrides share one elaborated body, while an
// instance with a different override gets its own.
func TestInstanceSharing(t *testing.T) {
	comp, rep := elaborateText(t,
		"module Sub #(parameter int N = 1) (); endmodule\n"+
			"module Top; Sub #(2) a(); Sub #(2) b(); Sub #(3) c(); endmodule\n")
	require.Zero(t, rep.Len())

	tops := comp.TopInstances()
	require.Len(t, tops, 1)
	top := tops[0]

	var a, b, c *symbols.InstanceSymbol
	for _, mem := range top.Body.Scope().Members() {
		inst, ok := mem.(*symbols.InstanceSymbol)
		if !ok {
			continue
		}
		switch inst.Name() {
		case "a":
			a = inst
		case "b":
			b = inst
		case "c":
			c = inst
		}
	}
	require.NotNil(t, a)
	require.NotNil(t, b)
	require.NotNil(t, c)

	require.Same(t, a.Body, b.Body, "identically-parameterized instances should share one body")
	require.NotSame(t, a.Body, c.Body, "differently-parameterized instances must not share a body")
	require.Equal(t, "2", a.Body.Params["N"])
	require.Equal(t, "3", c.Body.Params["N"])
}

func TestConstVariableRequiresInitializer(t *testing.T) {
	comp, rep := elaborateText(t, "module m; const int x = 1; endmodule\n")
	_ = comp
	require.Zero(t, rep.Len())
}

func TestConstVariableMissingInitializerDiagnostic(t *testing.T) {
	mgr := source.NewManager()
	id := mgr.AddBuffer("t.sv", "module m; const int x; endmodule\n")
	var rep report.Report
	pp := preprocessor.New(mgr, &rep)
	pp.PushFile(id)
	p := parser.FromPreprocessor(pp, &rep)
	root := p.ParseFile()

	comp := symbols.NewCompilation(&rep)
	comp.AddSyntaxTree(root)
	comp.Elaborate()

	require.NotZero(t, rep.Len())
	require.Equal(t, report.CodeConstVarNoInitializer, rep.All()[0].Code)
}
