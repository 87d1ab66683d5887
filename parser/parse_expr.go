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

package parser

import (
	"github.com/svlang/svfront/report"
	"github.com/svlang/svfront/syntax"
	"github.com/svlang/svfront/token"
	"github.com/svlang/svfront/token/keyword"
)

// binaryPrec gives each binary operator's precedence level, low to high,
// following IEEE 1800's operator precedence table restricted to the
// constant-evaluable subset this front-end needs for parameter defaults and
// expression statements. Higher binds tighter.
var binaryPrec = map[keyword.Keyword]int{
	keyword.PipePipe: 1,
	keyword.AmpAmp:    2,
	keyword.Pipe:      3,
	keyword.Caret:      4,
	keyword.CaretTilde: 4,
	keyword.TildeCaret: 4,
	keyword.Amp: 5,
	keyword.EqEq: 6, keyword.BangEq: 6, keyword.EqEqEq: 6, keyword.BangEqEq: 6,
	keyword.EqEqQuestion: 6, keyword.BangEqQuestion: 6,
	keyword.Less: 7, keyword.LessEq: 7, keyword.Greater: 7, keyword.GreaterEq: 7,
	keyword.LessLess: 8, keyword.GreaterGreater: 8,
	keyword.LessLessLess: 8, keyword.GreaterGreaterGreater: 8,
	keyword.Plus: 9, keyword.Minus: 9,
	keyword.Star: 10, keyword.Slash: 10, keyword.Percent: 10,
	keyword.StarStar: 11,
}

var unaryOps = map[keyword.Keyword]bool{
	keyword.Plus: true, keyword.Minus: true, keyword.Bang: true, keyword.Tilde: true,
	keyword.Amp: true, keyword.Pipe: true, keyword.Caret: true,
	keyword.TildeAmp: true, keyword.TildePipe: true,
	keyword.CaretTilde: true, keyword.TildeCaret: true,
}

// parseExpr parses a full expression, including the ternary conditional
// operator .
func (p *Parser) parseExpr() *syntax.Node {
	cond := p.parseBinary(1)
	if p.at(keyword.Question) {
		q := p.advance()
		then := p.parseExpr()
		colon := p.expectKeyword(keyword.Colon)
		els := p.parseExpr()
		return syntax.New(syntax.TernaryExpr, cond, syntax.NewToken(q), then, colon, els)
	}
	return cond
}

// parseBinary implements precedence climbing over [binaryPrec].
func (p *Parser) parseBinary(minPrec int) *syntax.Node {
	lhs := p.parseUnary()
	for {
		prec, ok := binaryPrec[p.curKeyword()]
		if !ok || prec < minPrec {
			return lhs
		}
		op := p.advance()
		rhs := p.parseBinary(prec + 1)
		lhs = syntax.New(syntax.BinaryExpr, lhs, syntax.NewToken(op), rhs)
	}
}

func (p *Parser) parseUnary() *syntax.Node {
	if unaryOps[p.curKeyword()] {
		op := p.advance()
		operand := p.parseUnary()
		return syntax.New(syntax.UnaryExpr, syntax.NewToken(op), operand)
	}
	return p.parsePostfix()
}

// parsePostfix handles indexing/range-select, calls, member access, and
// type casts (`type'(expr)`) chained onto a primary expression.
func (p *Parser) parsePostfix() *syntax.Node {
	n := p.parsePrimary()
	for {
		switch {
		case p.at(keyword.LBracket):
			n = p.parseIndexOrRange(n)
		case p.at(keyword.LParen):
			n = p.parseCallArgs(n)
		case p.at(keyword.Apostrophe):
			n = p.parseCast(n)
		case p.at(keyword.Dot):
			dot := p.advance()
			member := p.expectIdent()
			n = syntax.New(syntax.IndexExpr, n, syntax.NewToken(dot), member)
		default:
			return n
		}
	}
}

func (p *Parser) parseIndexOrRange(base *syntax.Node) *syntax.Node {
	lb := p.advance() // '['
	idx := p.parseExpr()
	if p.at(keyword.Colon) {
		colon := p.advance()
		lo := p.parseExpr()
		rb := p.expectKeyword(keyword.RBracket)
		return syntax.New(syntax.RangeExpr, base, syntax.NewToken(lb), idx, syntax.NewToken(colon), lo, rb)
	}
	rb := p.expectKeyword(keyword.RBracket)
	return syntax.New(syntax.IndexExpr, base, syntax.NewToken(lb), idx, rb)
}

func (p *Parser) parseCallArgs(callee *syntax.Node) *syntax.Node {
	lp := p.advance() // '('
	var items []*syntax.Node
	if !p.at(keyword.RParen) {
		items = append(items, p.parseExpr())
		for p.at(keyword.Comma) {
			items = append(items, syntax.NewToken(p.advance()))
			items = append(items, p.parseExpr())
		}
	}
	rp := p.expectKeyword(keyword.RParen)
	args := syntax.New(syntax.List, items...)
	return syntax.New(syntax.CallExpr, callee, syntax.NewToken(lp), args, rp)
}

func (p *Parser) parseCast(typeExpr *syntax.Node) *syntax.Node {
	apos := p.advance()
	lp := p.expectKeyword(keyword.LParen)
	inner := p.parseExpr()
	rp := p.expectKeyword(keyword.RParen)
	return syntax.New(syntax.CastExpr, typeExpr, syntax.NewToken(apos), syntax.NewToken(lp), inner, rp)
}

func (p *Parser) parsePrimary() *syntax.Node {
	switch {
	case p.cur().Kind.IsLiteral():
		return syntax.New(syntax.LiteralExpr, syntax.NewToken(p.advance()))
	case p.cur().Kind == token.Ident || p.cur().Kind == token.SystemIdent || p.cur().Kind == token.EscapedIdent:
		return syntax.New(syntax.IdentExpr, syntax.NewToken(p.advance()))
	case p.atAny(keyword.True, keyword.False, keyword.Null, keyword.This, keyword.Super):
		return syntax.New(syntax.IdentExpr, syntax.NewToken(p.advance()))
	case p.at(keyword.LParen):
		lp := p.advance()
		inner := p.parseExpr()
		rp := p.expectKeyword(keyword.RParen)
		return syntax.New(syntax.ParenExpr, syntax.NewToken(lp), inner, rp)
	case p.at(keyword.LBrace):
		return p.parseBraceExpr()
	default:
		return p.errorExpr()
	}
}

// parseBraceExpr parses either a concatenation `{a, b, c}` or a replication
// `{count{a, b}}` .
func (p *Parser) parseBraceExpr() *syntax.Node {
	lb := p.advance() // outer '{'
	first := p.parseExpr()
	if p.at(keyword.LBrace) {
		innerLB := p.advance()
		items := []*syntax.Node{p.parseExpr()}
		for p.at(keyword.Comma) {
			items = append(items, syntax.NewToken(p.advance()))
			items = append(items, p.parseExpr())
		}
		innerRB := p.expectKeyword(keyword.RBrace)
		outerRB := p.expectKeyword(keyword.RBrace)
		list := syntax.New(syntax.List, items...)
		return syntax.New(syntax.ReplicationExpr, syntax.NewToken(lb), first, syntax.NewToken(innerLB), list, innerRB, outerRB)
	}
	items := []*syntax.Node{first}
	for p.at(keyword.Comma) {
		items = append(items, syntax.NewToken(p.advance()))
		items = append(items, p.parseExpr())
	}
	rb := p.expectKeyword(keyword.RBrace)
	list := syntax.New(syntax.List, items...)
	return syntax.New(syntax.ConcatExpr, syntax.NewToken(lb), list, rb)
}

// errorExpr consumes the offending token as a normal (not skipped) leaf so
// it still contributes its own text exactly once to a Print of the
// resulting tree, rather than being double-counted as both trivia and a
// node.
func (p *Parser) errorExpr() *syntax.Node {
	at := p.curRange()
	p.rep.Errorf(report.CodeUnexpectedTok, at, "expected an expression, found %v", p.cur())
	var bad *syntax.Node
	if !p.atEOF() {
		bad = syntax.NewToken(p.advance())
	}
	return syntax.New(syntax.ErrorNode, bad)
}
