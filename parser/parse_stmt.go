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

// parseProceduralBlock parses `always|always_comb|always_ff|always_latch|
// initial|final statement`, always with an
// optional leading event-control sensitivity list for the plain `always`
// and `always_ff` forms).
func (p *Parser) parseProceduralBlock() *syntax.Node {
	kw := p.advance()
	var event *syntax.Node
	if p.at(keyword.At) {
		event = p.parseEventControl()
	}
	body := p.parseStatement()
	return syntax.New(syntax.ProceduralBlock, syntax.NewToken(kw), event, body)
}

// parseEventControl parses `@(posedge sig)`, `@(sig1 or sig2)`, `@*`, or
// `@(*)`.
func (p *Parser) parseEventControl() *syntax.Node {
	at := p.advance() // '@'
	if p.at(keyword.Star) {
		return syntax.New(syntax.EventControl, syntax.NewToken(at), syntax.NewToken(p.advance()))
	}
	lp := p.expectKeyword(keyword.LParen)
	if p.at(keyword.Star) {
		star := p.advance()
		rp := p.expectKeyword(keyword.RParen)
		return syntax.New(syntax.EventControl, syntax.NewToken(at), lp, syntax.NewToken(star), rp)
	}
	items := []*syntax.Node{p.parseEventExpr()}
	// "or" joins event expressions as a bare word rather than a reserved
	// keyword in this grammar's token set, so it is recognized by spelling.
	for p.at(keyword.Comma) || (p.cur().Kind == token.Ident && p.cur().Text == "or") {
		items = append(items, syntax.NewToken(p.advance()))
		items = append(items, p.parseEventExpr())
	}
	rp := p.expectKeyword(keyword.RParen)
	list := syntax.New(syntax.List, items...)
	return syntax.New(syntax.EventControl, syntax.NewToken(at), lp, list, rp)
}

func (p *Parser) parseEventExpr() *syntax.Node {
	if p.atAny(keyword.Posedge, keyword.Negedge, keyword.Edge) {
		edge := p.advance()
		expr := p.parseExpr()
		return syntax.New(syntax.EventControl, syntax.NewToken(edge), expr)
	}
	return p.parseExpr()
}

// assignOpKw is every token that can head an assignment statement's
// operator (plain `=`, compound arithmetic assigns).
var assignOpKw = map[keyword.Keyword]bool{
	keyword.Eq: true, keyword.PlusEq: true, keyword.MinusEq: true,
	keyword.StarEq: true, keyword.SlashEq: true,
}

// parseStatement parses one statement .
func (p *Parser) parseStatement() *syntax.Node {
	switch kw := p.curKeyword(); {
	case kw == keyword.Begin:
		return p.parseBlock()
	case kw == keyword.If:
		return p.parseIfStmt()
	case kw == keyword.Case || kw == keyword.Casex || kw == keyword.Casez:
		return p.parseCaseStmt()
	case kw == keyword.For:
		return p.parseForStmt()
	case kw == keyword.While:
		return p.parseWhileStmt()
	case kw == keyword.Do:
		return p.parseDoWhileStmt()
	case kw == keyword.Forever:
		return p.parseForeverStmt()
	case kw == keyword.Repeat:
		return p.parseRepeatStmt()
	case kw == keyword.Disable:
		return p.parseDisableStmt()
	case kw == keyword.At:
		event := p.parseEventControl()
		body := p.parseStatement()
		return syntax.New(syntax.ExprStmt, event, body)
	case kw == keyword.Semi:
		return syntax.New(syntax.EmptyMember, syntax.NewToken(p.advance()))
	default:
		return p.parseExprOrAssignStmt()
	}
}

func (p *Parser) parseBlock() *syntax.Node {
	begin := p.advance()
	var items []*syntax.Node
	for !p.atEOF() && !p.at(keyword.End) {
		before := p.pos
		items = append(items, p.parseStatement())
		if p.pos == before {
			p.skip()
		}
	}
	end := p.expectKeyword(keyword.End)
	list := syntax.New(syntax.List, items...)
	return syntax.New(syntax.Block, syntax.NewToken(begin), list, end)
}

func (p *Parser) parseIfStmt() *syntax.Node {
	kw := p.advance() // if
	lp := p.expectKeyword(keyword.LParen)
	cond := p.parseExpr()
	rp := p.expectKeyword(keyword.RParen)
	then := p.parseStatement()
	var elseKw, els *syntax.Node
	if p.at(keyword.Else) {
		elseKw = syntax.NewToken(p.advance())
		els = p.parseStatement()
	}
	return syntax.New(syntax.IfStmt, syntax.NewToken(kw), lp, cond, rp, then, elseKw, els)
}

func (p *Parser) parseCaseStmt() *syntax.Node {
	kw := p.advance() // case/casex/casez
	lp := p.expectKeyword(keyword.LParen)
	sel := p.parseExpr()
	rp := p.expectKeyword(keyword.RParen)

	var items []*syntax.Node
	for !p.atEOF() && !p.at(keyword.EndCase) {
		before := p.pos
		items = append(items, p.parseCaseItem())
		if p.pos == before {
			p.skip()
		}
	}
	end := p.expectKeyword(keyword.EndCase)
	list := syntax.New(syntax.List, items...)
	return syntax.New(syntax.CaseStmt, syntax.NewToken(kw), lp, sel, rp, list, end)
}

func (p *Parser) parseCaseItem() *syntax.Node {
	var labels *syntax.Node
	if p.at(keyword.Default) {
		labels = syntax.New(syntax.List, syntax.NewToken(p.advance()))
	} else {
		items := []*syntax.Node{p.parseExpr()}
		for p.at(keyword.Comma) {
			items = append(items, syntax.NewToken(p.advance()))
			items = append(items, p.parseExpr())
		}
		labels = syntax.New(syntax.List, items...)
	}
	colon := p.expectKeyword(keyword.Colon)
	body := p.parseStatement()
	return syntax.New(syntax.CaseItem, labels, colon, body)
}

func (p *Parser) parseForStmt() *syntax.Node {
	kw := p.advance() // for
	lp := p.expectKeyword(keyword.LParen)
	var init *syntax.Node
	if !p.at(keyword.Semi) {
		init = p.parseForClauseAssign()
	}
	semi1 := p.expectKeyword(keyword.Semi)
	var cond *syntax.Node
	if !p.at(keyword.Semi) {
		cond = p.parseExpr()
	}
	semi2 := p.expectKeyword(keyword.Semi)
	var step *syntax.Node
	if !p.at(keyword.RParen) {
		step = p.parseForClauseAssign()
	}
	rp := p.expectKeyword(keyword.RParen)
	body := p.parseStatement()
	return syntax.New(syntax.ForStmt, syntax.NewToken(kw), lp, init, semi1, cond, semi2, step, rp, body)
}

// parseForClauseAssign parses one `lhs = expr` clause of a for-loop's init
// or step position, tolerating an optional leading data type (`for (int i
// = 0; ...)`).
func (p *Parser) parseForClauseAssign() *syntax.Node {
	if builtinTypeKw[p.curKeyword()] {
		dataType := p.parseDataType()
		nameTok := p.expectIdentTok()
		decl := p.parseDeclaratorTail(nameTok)
		return syntax.New(syntax.DataDecl, dataType, decl)
	}
	lhs := p.parsePostfix()
	op := p.expectKeyword(keyword.Eq)
	rhs := p.parseExpr()
	return syntax.New(syntax.BlockingAssignStmt, lhs, op, rhs)
}

func (p *Parser) parseWhileStmt() *syntax.Node {
	kw := p.advance()
	lp := p.expectKeyword(keyword.LParen)
	cond := p.parseExpr()
	rp := p.expectKeyword(keyword.RParen)
	body := p.parseStatement()
	return syntax.New(syntax.WhileStmt, syntax.NewToken(kw), lp, cond, rp, body)
}

func (p *Parser) parseDoWhileStmt() *syntax.Node {
	kw := p.advance() // do
	body := p.parseStatement()
	whileKw := p.expectKeyword(keyword.While)
	lp := p.expectKeyword(keyword.LParen)
	cond := p.parseExpr()
	rp := p.expectKeyword(keyword.RParen)
	semi := p.expectKeyword(keyword.Semi)
	return syntax.New(syntax.DoWhileStmt, syntax.NewToken(kw), body, whileKw, lp, cond, rp, semi)
}

func (p *Parser) parseForeverStmt() *syntax.Node {
	kw := p.advance()
	body := p.parseStatement()
	return syntax.New(syntax.ForeverStmt, syntax.NewToken(kw), body)
}

func (p *Parser) parseRepeatStmt() *syntax.Node {
	kw := p.advance()
	lp := p.expectKeyword(keyword.LParen)
	count := p.parseExpr()
	rp := p.expectKeyword(keyword.RParen)
	body := p.parseStatement()
	return syntax.New(syntax.RepeatStmt, syntax.NewToken(kw), lp, count, rp, body)
}

func (p *Parser) parseDisableStmt() *syntax.Node {
	kw := p.advance()
	name := p.expectIdent()
	semi := p.expectKeyword(keyword.Semi)
	return syntax.New(syntax.DisableStmt, syntax.NewToken(kw), name, semi)
}

// parseExprOrAssignStmt parses a blocking/nonblocking assignment or a bare
// expression statement (a task/function call).
func (p *Parser) parseExprOrAssignStmt() *syntax.Node {
	lhs := p.parsePostfix()
	switch {
	case assignOpKw[p.curKeyword()]:
		op := p.advance()
		rhs := p.parseExpr()
		semi := p.expectKeyword(keyword.Semi)
		return syntax.New(syntax.BlockingAssignStmt, lhs, syntax.NewToken(op), rhs, semi)
	case p.at(keyword.LessEq):
		op := p.advance()
		rhs := p.parseExpr()
		semi := p.expectKeyword(keyword.Semi)
		return syntax.New(syntax.NonblockingAssignStmt, lhs, syntax.NewToken(op), rhs, semi)
	default:
		semi := p.expectKeyword(keyword.Semi)
		return syntax.New(syntax.ExprStmt, lhs, semi)
	}
}

// ParseGuess parses toks by peeking at its leading tokens to classify the
// input among {module member, statement, expression} entry points: used
// by a rewrite-driven incremental re-parse that only knows it has a
// fragment, not which production it belongs to.
func ParseGuess(toks []token.Token, rep *report.Report) *syntax.Node {
	p := New(toks, rep)
	switch kw := p.curKeyword(); {
	case kw == keyword.Module || kw == keyword.Interface || kw == keyword.Program ||
		kw == keyword.Package || kw == keyword.Primitive:
		return p.parseTopLevelItem()
	case kw == keyword.Begin || kw == keyword.If || kw == keyword.Case || kw == keyword.Casex ||
		kw == keyword.Casez || kw == keyword.For || kw == keyword.While || kw == keyword.Do ||
		kw == keyword.Forever || kw == keyword.Repeat || kw == keyword.Disable:
		return p.parseStatement()
	case kw == keyword.Assign || kw == keyword.Always || kw == keyword.AlwaysComb ||
		kw == keyword.AlwaysFF || kw == keyword.AlwaysLatch || kw == keyword.Initial ||
		kw == keyword.Final || kw == keyword.Parameter || kw == keyword.LocalParam ||
		modifierKw[kw] || builtinTypeKw[kw] || netTypeKw[kw] || kw == keyword.Import:
		return p.parseModuleMember()
	default:
		return p.parseExpr()
	}
}
