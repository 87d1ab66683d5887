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

package syntax

// Rewriter transforms one node during a [Rewrite] pass. Returning n
// unchanged leaves that subtree untouched; returning a different node
// replaces it; returning nil deletes it from its parent's child list.
type Rewriter interface {
	Rewrite(n *Node) *Node
}

// RewriterFunc adapts a plain function to a [Rewriter].
type RewriterFunc func(*Node) *Node

// Rewrite implements [Rewriter].
func (f RewriterFunc) Rewrite(n *Node) *Node { return f(n) }

// Rewrite walks n bottom-up, rebuilding only the spine from a changed node
// up to the root: unchanged subtrees are referenced directly, while
// changed subtrees and their ancestors up to the root are re-built.
//
// rw is never invoked on a Token leaf's own children (it has none); it is
// invoked once per interior node, after that node's children have already
// been rewritten, and once for each leaf.
func Rewrite(n *Node, rw Rewriter) *Node {
	if n == nil {
		return nil
	}
	if n.kind == Token {
		return rw.Rewrite(n)
	}

	newKids := make([]*Node, 0, len(n.kids))
	changed := false
	for _, k := range n.kids {
		nk := Rewrite(k, rw)
		if nk != k {
			changed = true
		}
		if nk != nil {
			newKids = append(newKids, nk)
		}
	}
	if changed {
		n = New(n.kind, newKids...)
	}
	return rw.Rewrite(n)
}

// Walk visits n and every descendant, depth-first, calling visit on each.
// Traversal is depth-first and respects list ordering.
func Walk(n *Node, visit func(*Node)) {
	if n == nil {
		return
	}
	visit(n)
	for _, k := range n.kids {
		Walk(k, visit)
	}
}
