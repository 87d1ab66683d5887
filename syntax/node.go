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

import (
	"strings"

	"github.com/svlang/svfront/seq"
	"github.com/svlang/svfront/source"
	"github.com/svlang/svfront/token"
	"github.com/svlang/svfront/token/keyword"
)

// Node is a single node of the concrete syntax tree: either a leaf wrapping
// one lexical token, or an interior node holding an ordered list of child
// nodes: a discriminated variant over all grammar productions, with
// generic iteration of child tokens/nodes.
//
// A Node's kind, token and children do not change once it is constructed;
// [Rewrite] builds new interior nodes and reuses unchanged subtrees. The
// parent link is the exception: [New] points each child it is given at the
// new node, so a subtree reused by [Rewrite] reports the rewritten tree's
// node as its Parent afterwards, not its node in the original tree.
type Node struct {
	kind   Kind
	tok    token.Token
	kids   []*Node
	parent *Node
}

// NewToken wraps a single lexical token as a leaf node.
func NewToken(tok token.Token) *Node {
	return &Node{kind: Token, tok: tok}
}

// New constructs an interior node of the given kind over kids, setting each
// non-nil child's parent back-link ("every node built by the
// parser sets parent pointers on its children before being returned"). A
// nil entry in kids is dropped, which lets callers build a child list with
// optional pieces (an absent port list, an absent initializer) without
// special-casing each gap.
func New(kind Kind, kids ...*Node) *Node {
	n := &Node{kind: kind}
	n.kids = make([]*Node, 0, len(kids))
	for _, k := range kids {
		if k == nil {
			continue
		}
		k.parent = n
		n.kids = append(n.kids, k)
	}
	return n
}

// Kind returns n's grammar production.
func (n *Node) Kind() Kind {
	if n == nil {
		return Invalid
	}
	return n.kind
}

// IsToken reports whether n is a leaf token node.
func (n *Node) IsToken() bool { return n != nil && n.kind == Token }

// Token returns the wrapped token for a leaf node, or the zero Token
// otherwise.
func (n *Node) Token() token.Token {
	if n == nil {
		return token.Token{}
	}
	return n.tok
}

// Parent returns n's parent, or nil at the root.
func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	return n.parent
}

// Children returns n's direct children, in source order. It is nil for a
// leaf token node.
func (n *Node) Children() []*Node {
	if n == nil {
		return nil
	}
	return n.kids
}

// Len implements [seq.Indexer], so callers walking a List-kind node (module
// members, statement lists, argument lists) can do so without depending
// on the slice representation
// underneath.
func (n *Node) Len() int { return len(n.Children()) }

// At implements [seq.Indexer].
func (n *Node) At(idx int) *Node { return n.kids[idx] }

var _ seq.Indexer[*Node] = (*Node)(nil)

// Child returns the first direct child of the given kind, or nil.
func (n *Node) Child(kind Kind) *Node {
	for _, k := range n.Children() {
		if k.Kind() == kind {
			return k
		}
	}
	return nil
}

// ChildrenOf returns every direct child of the given kind, in source order.
func (n *Node) ChildrenOf(kind Kind) []*Node {
	var out []*Node
	for _, k := range n.Children() {
		if k.Kind() == kind {
			out = append(out, k)
		}
	}
	return out
}

// Keyword returns the first direct Token child spelling kw, or nil.
func (n *Node) Keyword(kw keyword.Keyword) *Node {
	for _, k := range n.Children() {
		if k.IsToken() && k.tok.Is(kw) {
			return k
		}
	}
	return nil
}

// Ident returns the first direct Token child that is a plain identifier, or
// nil. Module/interface/program/package names, declarator names, and net
// declarator names are all found this way.
func (n *Node) Ident() *Node {
	for _, k := range n.Children() {
		if k.IsToken() && k.tok.Kind == token.Ident {
			return k
		}
	}
	return nil
}

// Name returns the identifier text found by [Node.Ident], or "".
func (n *Node) Name() string {
	if id := n.Ident(); id != nil {
		return id.tok.Text
	}
	return ""
}

// FirstLeaf returns the first Token descendant of n in depth-first order,
// or nil if n has no non-empty descendant (only possible for an empty
// List).
func (n *Node) FirstLeaf() *Node {
	if n == nil {
		return nil
	}
	if n.kind == Token {
		return n
	}
	for _, k := range n.kids {
		if leaf := k.FirstLeaf(); leaf != nil {
			return leaf
		}
	}
	return nil
}

// LastLeaf returns the last Token descendant of n in depth-first order.
func (n *Node) LastLeaf() *Node {
	if n == nil {
		return nil
	}
	if n.kind == Token {
		return n
	}
	for i := len(n.kids) - 1; i >= 0; i-- {
		if leaf := n.kids[i].LastLeaf(); leaf != nil {
			return leaf
		}
	}
	return nil
}

// Range returns the source range spanned by n: the start of its first
// token through the end of its last: every token's range is contained
// in the range of every ancestor.
func (n *Node) Range() source.Range {
	first, last := n.FirstLeaf(), n.LastLeaf()
	if first == nil || last == nil {
		return source.Range{}
	}
	return source.Range{Start: first.tok.Range.Start, End: last.tok.Range.End}
}

// Print renders n back to text by depth-first emission of each token's
// leading trivia, text, and trailing trivia : for any tree with
// no synthetic tokens, Print(Parse(s)) == s.
func Print(n *Node) string {
	var b strings.Builder
	writeNode(&b, n)
	return b.String()
}

func writeNode(b *strings.Builder, n *Node) {
	if n == nil {
		return
	}
	if n.kind == Token {
		if n.tok.Synthetic {
			// A synthesized/missing token contributes no text of its own
			// .
			return
		}
		b.WriteString(n.tok.FullText())
		return
	}
	for _, k := range n.kids {
		writeNode(b, k)
	}
}
