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

package source_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/svlang/svfront/source"
)

func TestAddBufferDedupesByPath(t *testing.T) {
	m := source.NewManager()
	id1 := m.AddBuffer("top.sv", "module m; endmodule\n")
	id2 := m.AddBuffer("top.sv", "module m; endmodule\n")
	require.Equal(t, id1, id2)
}

func TestResolveLineAndColumn(t *testing.T) {
	m := source.NewManager()
	id := m.AddBuffer("top.sv", "module m;\n  wire x;\nendmodule\n")

	loc := source.Location{Buffer: id, Offset: 13} // inside "wire x;"
	resolved := m.Resolve(loc)
	require.Equal(t, "top.sv", resolved.Path)
	require.Equal(t, 2, resolved.Line)
}

func TestLineDirectiveRemapsResolvedPath(t *testing.T) {
	m := source.NewManager()
	text := "`line 100 \"generated.svh\" 0\nmodule m;\nendmodule\n"
	id := m.AddBuffer("gen.sv", text)

	afterDirective := len("`line 100 \"generated.svh\" 0\n")
	m.SetLineDirective(id, afterDirective, "generated.svh", 100, 0)

	resolved := m.Resolve(source.Location{Buffer: id, Offset: afterDirective + 3})
	require.Equal(t, "generated.svh", resolved.Path)
	require.Equal(t, 100, resolved.Line)
}

func TestOpenIncludeSearchesUserDirsThenSystemDirs(t *testing.T) {
	files := source.Map{
		"vendor/util.svh": "`define WIDTH 8\n",
	}
	m := source.NewManager(
		source.WithOpener(files),
		source.WithIncludeDirs("vendor"),
	)
	top := m.AddBuffer("top.sv", "`include \"util.svh\"\n")

	id, err := m.OpenInclude("util.svh", top, false)
	require.NoError(t, err)
	require.Equal(t, "`define WIDTH 8\n", m.Text(id))
}

func TestExpansionChainWalksBackToInvocation(t *testing.T) {
	m := source.NewManager()
	top := m.AddBuffer("top.sv", "`FOO\n")
	invocation := source.Range{
		Start: source.Location{Buffer: top, Offset: 0},
		End:   source.Location{Buffer: top, Offset: 4},
	}
	expansion := m.NewExpansion(invocation, "FOO", "wire x;")

	chain := m.ExpansionChain(source.Location{Buffer: expansion, Offset: 2})
	require.Len(t, chain, 2)
	require.Equal(t, top, chain[1].Buffer)
}
