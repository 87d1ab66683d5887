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

// modifierKw is a module-member modifier that precedes a data type:
// lifetime, const, and static rules.
var modifierKw = map[keyword.Keyword]bool{
	keyword.Var: true, keyword.Const: true, keyword.Static: true, keyword.Automatic: true,
}

// parseMemberListUntil parses module/interface/program/package members up
// to (not including) one of endKws, resyncing by force-skipping a token
// whenever a member production makes no progress.
func (p *Parser) parseMemberListUntil(endKws ...keyword.Keyword) *syntax.Node {
	var items []*syntax.Node
	for !p.atEOF() && !p.atAny(endKws...) {
		before := p.pos
		items = append(items, p.parseModuleMember())
		if p.pos == before {
			p.skip()
		}
	}
	return syntax.New(syntax.List, items...)
}

// parseRawBodyUntil captures every token up to (not including) one of
// endKws as flat leaves, for grammar bodies this front-end structures only
// shallowly (UDP tables, sequence/property/randsequence bodies): elaboration
// is genvar/generate-less scope, so these bodies are consumed losslessly
// for round-tripping and named-symbol creation without a full
// assertion/sequence expression grammar.
func (p *Parser) parseRawBodyUntil(endKws ...keyword.Keyword) *syntax.Node {
	var items []*syntax.Node
	for !p.atEOF() && !p.atAny(endKws...) {
		items = append(items, syntax.NewToken(p.advance()))
	}
	return syntax.New(syntax.List, items...)
}

func (p *Parser) parseModuleMember() *syntax.Node {
	switch kw := p.curKeyword(); {
	case kw == keyword.Semi:
		return syntax.New(syntax.EmptyMember, syntax.NewToken(p.advance()))
	case kw == keyword.Parameter || kw == keyword.LocalParam:
		return p.parseParamDecl()
	case kw == keyword.Assign:
		return p.parseContinuousAssign()
	case kw == keyword.Always || kw == keyword.AlwaysComb || kw == keyword.AlwaysFF ||
		kw == keyword.AlwaysLatch || kw == keyword.Initial || kw == keyword.Final:
		return p.parseProceduralBlock()
	case kw == keyword.Nettype:
		return p.parseNettypeDecl()
	case kw == keyword.Import:
		return p.parseImportDecl()
	case kw == keyword.Modport:
		return p.parseModportDecl()
	case kw == keyword.Clocking:
		return p.parseClockingDecl()
	case kw == keyword.Sequence:
		return p.parseSequenceOrPropertyDecl(syntax.SequenceDecl, keyword.Sequence, keyword.EndSequence)
	case kw == keyword.Property:
		return p.parseSequenceOrPropertyDecl(syntax.PropertyDecl, keyword.Property, keyword.EndProperty)
	case kw == keyword.Let:
		return p.parseLetDecl()
	case kw == keyword.RandSequence:
		return p.parseRandSequenceDecl()
	case kw == keyword.Timeunit:
		return p.parseTimeunitDecl(syntax.TimeunitDecl, keyword.Timeunit)
	case kw == keyword.Timeprecision:
		return p.parseTimeunitDecl(syntax.TimeprecisionDecl, keyword.Timeprecision)
	case p.cur().Kind == token.SystemIdent && (p.cur().Text == "$fatal" || p.cur().Text == "$error" ||
		p.cur().Text == "$warning" || p.cur().Text == "$info" || p.cur().Text == "$static_assert"):
		return p.parseElabSystemTask()
	case kw == keyword.Input || kw == keyword.Output || kw == keyword.Inout || kw == keyword.Ref:
		return p.parseNonAnsiPortDecl()
	case modifierKw[kw] || builtinTypeKw[kw] || netTypeKw[kw]:
		return p.parseDataOrNetDecl()
	case p.cur().Kind == token.Ident:
		return p.parseMemberStartingWithIdent()
	default:
		return p.errorMember()
	}
}

func (p *Parser) errorMember() *syntax.Node {
	at := p.curRange()
	p.rep.Errorf(report.CodeUnexpectedTok, at, "unexpected token in member position: %v", p.cur())
	var bad *syntax.Node
	if !p.atEOF() {
		bad = syntax.NewToken(p.advance())
	}
	return syntax.New(syntax.ErrorNode, bad)
}

// parseDataOrNetDecl parses `[modifiers] type declarator-list ;`, where
// type is either a net-type keyword, a built-in variable type keyword, or
// (via [Parser.parseMemberStartingWithIdent]) a user-defined type name.
// Whether the declared symbols end up as nets or variables is an
// elaboration-time decision keyed on how the type name resolves: a plain
// built-in var type or user type always yields a variable, a built-in
// net keyword always yields a net.
func (p *Parser) parseDataOrNetDecl() *syntax.Node {
	var modifiers []*syntax.Node
	for modifierKw[p.curKeyword()] {
		modifiers = append(modifiers, syntax.NewToken(p.advance()))
	}
	isNet := netTypeKw[p.curKeyword()]
	dataType := p.parseDataType()
	nameTok := p.expectIdentTok()
	declList := p.parseDeclaratorList(nameTok)
	semi := p.expectKeyword(keyword.Semi)

	kids := append(append([]*syntax.Node{}, modifiers...), dataType, declList, semi)
	kind := syntax.DataDecl
	if isNet {
		kind = syntax.NetDecl
	}
	return syntax.New(kind, kids...)
}

// parseNonAnsiPortDecl parses a standalone port direction declaration
// appearing as a module member (`input a;`), the non-ANSI counterpart to a
// port declared inline in the module's port list. Reusing [syntax.NonAnsiPort]
// for both roles is deliberate: they are grammatically identical, and it is
// the elaborator's job  to
// decide whether one redeclares a name the ANSI port list already bound.
func (p *Parser) parseNonAnsiPortDecl() *syntax.Node {
	dirTok := p.advance()
	kids := []*syntax.Node{syntax.NewToken(dirTok)}
	if builtinTypeKw[p.curKeyword()] || netTypeKw[p.curKeyword()] || p.atAny(keyword.Signed, keyword.Unsigned) {
		kids = append(kids, p.parseDataType())
	}
	nameTok := p.expectIdentTok()
	kids = append(kids, p.parseDeclaratorList(nameTok))
	kids = append(kids, p.expectKeyword(keyword.Semi))
	return syntax.New(syntax.NonAnsiPort, kids...)
}

// parseMemberStartingWithIdent disambiguates a leading plain identifier
// between an instance declaration (`Foo bar(...);`) and a data/net
// declaration naming a user-defined type (`Foo bar = 1;`, a `nettype`
// alias): both start identically, so the
// parser commits to instance form only once it actually sees the opening
// '(' of a port-connection list after the instance name.
func (p *Parser) parseMemberStartingWithIdent() *syntax.Node {
	dataType := p.parseDataType()
	var paramOverrides *syntax.Node
	if p.at(keyword.Hash) {
		paramOverrides = p.parseParamValueAssignment()
	}
	nameTok := p.expectIdentTok()
	if p.at(keyword.LParen) {
		return p.finishInstanceDecl(dataType, paramOverrides, nameTok)
	}
	declList := p.parseDeclaratorList(nameTok)
	semi := p.expectKeyword(keyword.Semi)
	return syntax.New(syntax.DataDecl, dataType, declList, semi)
}

func (p *Parser) parseParamValueAssignment() *syntax.Node {
	hash := p.advance() // '#'
	lp := p.expectKeyword(keyword.LParen)
	var items []*syntax.Node
	if !p.at(keyword.RParen) {
		items = append(items, p.parseParamValueItem())
		for p.at(keyword.Comma) {
			items = append(items, syntax.NewToken(p.advance()))
			items = append(items, p.parseParamValueItem())
		}
	}
	rp := p.expectKeyword(keyword.RParen)
	list := syntax.New(syntax.List, items...)
	return syntax.New(syntax.List, syntax.NewToken(hash), lp, list, rp)
}

// parseParamValueItem parses `.name(expr)` (named) or a bare expression
// (positional) parameter override.
func (p *Parser) parseParamValueItem() *syntax.Node {
	if p.at(keyword.Dot) {
		dot := p.advance()
		name := p.expectIdent()
		lp := p.expectKeyword(keyword.LParen)
		var val *syntax.Node
		if !p.at(keyword.RParen) {
			val = p.parseExpr()
		}
		rp := p.expectKeyword(keyword.RParen)
		return syntax.New(syntax.PortConnection, syntax.NewToken(dot), name, lp, val, rp)
	}
	return p.parseExpr()
}

func (p *Parser) finishInstanceDecl(typeNode, paramOverrides *syntax.Node, nameTok token.Token) *syntax.Node {
	items := []*syntax.Node{p.finishInstanceItem(nameTok)}
	for p.at(keyword.Comma) {
		items = append(items, syntax.NewToken(p.advance()))
		items = append(items, p.finishInstanceItem(p.expectIdentTok()))
	}
	semi := p.expectKeyword(keyword.Semi)
	list := syntax.New(syntax.List, items...)
	return syntax.New(syntax.InstanceDecl, typeNode, paramOverrides, list, semi)
}

func (p *Parser) finishInstanceItem(nameTok token.Token) *syntax.Node {
	name := syntax.NewToken(nameTok)
	lp := p.expectKeyword(keyword.LParen)
	var items []*syntax.Node
	if !p.at(keyword.RParen) {
		items = append(items, p.parsePortConnection())
		for p.at(keyword.Comma) {
			items = append(items, syntax.NewToken(p.advance()))
			items = append(items, p.parsePortConnection())
		}
	}
	rp := p.expectKeyword(keyword.RParen)
	list := syntax.New(syntax.List, items...)
	return syntax.New(syntax.InstanceItem, name, lp, list, rp)
}

// parsePortConnection parses `.name(expr)`, `.name`, `.*`, or a positional
// expression.
func (p *Parser) parsePortConnection() *syntax.Node {
	if p.at(keyword.DotStar) {
		return syntax.New(syntax.PortConnection, syntax.NewToken(p.advance()))
	}
	if p.at(keyword.Dot) {
		dot := p.advance()
		name := p.expectIdent()
		if p.at(keyword.LParen) {
			lp := p.advance()
			var val *syntax.Node
			if !p.at(keyword.RParen) {
				val = p.parseExpr()
			}
			rp := p.expectKeyword(keyword.RParen)
			return syntax.New(syntax.PortConnection, syntax.NewToken(dot), name, lp, val, rp)
		}
		return syntax.New(syntax.PortConnection, syntax.NewToken(dot), name)
	}
	return syntax.New(syntax.PortConnection, p.parseExpr())
}

// parseContinuousAssign parses `assign lhs = rhs [, lhs = rhs]* ;`, e.g.
// `assign foo = 1, foo = 'z;`.
func (p *Parser) parseContinuousAssign() *syntax.Node {
	kw := p.advance() // assign
	items := []*syntax.Node{p.parseAssignItem()}
	for p.at(keyword.Comma) {
		items = append(items, syntax.NewToken(p.advance()))
		items = append(items, p.parseAssignItem())
	}
	semi := p.expectKeyword(keyword.Semi)
	list := syntax.New(syntax.List, items...)
	return syntax.New(syntax.ContinuousAssign, syntax.NewToken(kw), list, semi)
}

func (p *Parser) parseAssignItem() *syntax.Node {
	lhs := p.parsePostfix()
	eq := p.expectKeyword(keyword.Eq)
	rhs := p.parseExpr()
	return syntax.New(syntax.AssignItem, lhs, eq, rhs)
}

// parseNettypeDecl parses `nettype type name [with function];` (the 
// seed scenario 2's "package nettype"); the optional resolution-function
// clause is captured as raw tokens since constant-evaluation of a
// resolution function body is out of scope.
func (p *Parser) parseNettypeDecl() *syntax.Node {
	kw := p.advance() // nettype
	dataType := p.parseDataType()
	nameTok := p.expectIdentTok()
	name := syntax.NewToken(nameTok)
	var withClause *syntax.Node
	if p.cur().Kind == token.Ident && p.peek(0).Text == "with" {
		// "with" is not a reserved word in this front-end's keyword set;
		// recognized here by spelling since a resolution-function name
		// follows and both are plain identifiers to the lexer.
		withClause = syntax.New(syntax.List, syntax.NewToken(p.advance()), p.expectIdent())
	}
	semi := p.expectKeyword(keyword.Semi)
	return syntax.New(syntax.NettypeDecl, syntax.NewToken(kw), dataType, name, withClause, semi)
}

// parseImportDecl parses `import pkg::name;` or `import pkg::*;` (the
// wildcard-import form).
func (p *Parser) parseImportDecl() *syntax.Node {
	kw := p.advance() // import
	items := []*syntax.Node{p.parseImportItem()}
	for p.at(keyword.Comma) {
		items = append(items, syntax.NewToken(p.advance()))
		items = append(items, p.parseImportItem())
	}
	semi := p.expectKeyword(keyword.Semi)
	list := syntax.New(syntax.List, items...)
	return syntax.New(syntax.ImportDecl, syntax.NewToken(kw), list, semi)
}

func (p *Parser) parseImportItem() *syntax.Node {
	pkg := p.expectIdent()
	cc := p.expectKeyword(keyword.ColonColon)
	var target *syntax.Node
	if p.at(keyword.Star) {
		target = syntax.NewToken(p.advance())
	} else {
		target = p.expectIdent()
	}
	return syntax.New(syntax.List, pkg, cc, target)
}

// parseModportDecl parses `modport name (port-list [, name (port-list)]*);`
// with each modport item's ports captured generically as simple ports
// (direction + name) since explicit/subroutine/clocking modport port
// kinds are only distinguished by the leading token, not a deeper grammar.
func (p *Parser) parseModportDecl() *syntax.Node {
	kw := p.advance() // modport
	items := []*syntax.Node{p.parseModportItem()}
	for p.at(keyword.Comma) {
		items = append(items, syntax.NewToken(p.advance()))
		items = append(items, p.parseModportItem())
	}
	semi := p.expectKeyword(keyword.Semi)
	list := syntax.New(syntax.List, items...)
	return syntax.New(syntax.ModportDecl, syntax.NewToken(kw), list, semi)
}

func (p *Parser) parseModportItem() *syntax.Node {
	name := p.expectIdent()
	lp := p.expectKeyword(keyword.LParen)
	var ports []*syntax.Node
	if !p.at(keyword.RParen) {
		ports = append(ports, p.parseModportPort())
		for p.at(keyword.Comma) {
			ports = append(ports, syntax.NewToken(p.advance()))
			ports = append(ports, p.parseModportPort())
		}
	}
	rp := p.expectKeyword(keyword.RParen)
	list := syntax.New(syntax.List, ports...)
	return syntax.New(syntax.ModportItem, name, lp, list, rp)
}

func (p *Parser) parseModportPort() *syntax.Node {
	if p.atAny(keyword.Input, keyword.Output, keyword.Inout, keyword.Ref) {
		dir := p.advance()
		name := p.expectIdent()
		return syntax.New(syntax.ModportSimplePort, syntax.NewToken(dir), name)
	}
	if p.at(keyword.Dot) {
		dot := p.advance()
		name := p.expectIdent()
		lp := p.expectKeyword(keyword.LParen)
		expr := p.parseExpr()
		rp := p.expectKeyword(keyword.RParen)
		return syntax.New(syntax.ModportExplicitPort, syntax.NewToken(dot), name, lp, expr, rp)
	}
	return syntax.New(syntax.ModportSimplePort, p.expectIdent())
}

// parseClockingDecl parses `clocking name @(event); [default input/output
// skew #n;]* item*; endclocking` shallowly: skews are structured, member
// items beyond a skew are captured as raw declarations since a clocking
// block's signal list uses the same declarator grammar as a data decl.
func (p *Parser) parseClockingDecl() *syntax.Node {
	kw := p.advance() // clocking
	name := p.expectIdent()
	at := p.expectKeyword(keyword.At)
	lp := p.expectKeyword(keyword.LParen)
	event := p.parseExpr()
	rp := p.expectKeyword(keyword.RParen)
	semi := p.expectKeyword(keyword.Semi)

	var items []*syntax.Node
	for !p.atEOF() && !p.at(keyword.EndClocking) {
		before := p.pos
		switch {
		case p.at(keyword.Default):
			items = append(items, p.parseClockingSkew())
		case p.atAny(keyword.Input, keyword.Output, keyword.Inout):
			items = append(items, p.parseClockingItem())
		case p.at(keyword.Semi):
			items = append(items, syntax.New(syntax.EmptyMember, syntax.NewToken(p.advance())))
		default:
			items = append(items, p.errorMember())
		}
		if p.pos == before {
			p.skip()
		}
	}
	end := p.expectKeyword(keyword.EndClocking)
	list := syntax.New(syntax.List, items...)
	return syntax.New(syntax.ClockingDecl, syntax.NewToken(kw), name, syntax.NewToken(at), lp, event, rp, semi, list, end)
}

// parseClockingSkew parses `default input|output skew #n;` (the
// "multiple default input/output skew" duplicate check applies to these).
func (p *Parser) parseClockingSkew() *syntax.Node {
	def := p.advance() // default
	dir := p.expectKeyword(dirOrInputOutput(p))
	hash := p.expectKeyword(keyword.Hash)
	amount := p.parseExpr()
	semi := p.expectKeyword(keyword.Semi)
	return syntax.New(syntax.ClockingSkew, syntax.NewToken(def), dir, hash, amount, semi)
}

func dirOrInputOutput(p *Parser) keyword.Keyword {
	if p.at(keyword.Output) {
		return keyword.Output
	}
	return keyword.Input
}

func (p *Parser) parseClockingItem() *syntax.Node {
	dir := p.advance() // input/output/inout
	nameTok := p.expectIdentTok()
	declList := p.parseDeclaratorList(nameTok)
	semi := p.expectKeyword(keyword.Semi)
	return syntax.New(syntax.ClockingItem, syntax.NewToken(dir), declList, semi)
}

// assertionPortDirKw is a direction keyword legal on an assertion port
// formal.
var assertionPortDirKw = map[keyword.Keyword]bool{
	keyword.Input: true, keyword.Output: true,
}

// parseSequenceOrPropertyDecl parses `sequence|property name [(ports)];
// body endsequence|endproperty`. The body expression grammar (sequence and
// property operators) is out of scope (the is genvar/generate-less
// scope only, and does not extend to full assertion expression
// evaluation); the body is captured losslessly as raw tokens.
func (p *Parser) parseSequenceOrPropertyDecl(kind syntax.Kind, openKw, endKw keyword.Keyword) *syntax.Node {
	kw := p.expectKeyword(openKw)
	name := p.expectIdent()
	var ports *syntax.Node
	if p.at(keyword.LParen) {
		ports = p.parseAssertionPortList()
	}
	semi := p.expectKeyword(keyword.Semi)
	body := p.parseRawBodyUntil(endKw)
	end := p.expectKeyword(endKw)
	return syntax.New(kind, kw, name, ports, semi, body, end)
}

func (p *Parser) parseAssertionPortList() *syntax.Node {
	lp := p.advance()
	var items []*syntax.Node
	if !p.at(keyword.RParen) {
		items = append(items, p.parseAssertionPort())
		for p.at(keyword.Comma) {
			items = append(items, syntax.NewToken(p.advance()))
			items = append(items, p.parseAssertionPort())
		}
	}
	rp := p.expectKeyword(keyword.RParen)
	list := syntax.New(syntax.List, items...)
	return syntax.New(syntax.PortList, syntax.NewToken(lp), list, rp)
}

// parseAssertionPort parses one formal of a sequence/property/let
// declaration: an optional direction, an optional type (untyped ports
// default at elaboration), a name, and an optional default value.
func (p *Parser) parseAssertionPort() *syntax.Node {
	var kids []*syntax.Node
	if assertionPortDirKw[p.curKeyword()] {
		kids = append(kids, syntax.NewToken(p.advance()))
	}
	if builtinTypeKw[p.curKeyword()] || (p.cur().Kind == token.Ident && p.peek(1).Kind == token.Ident) {
		kids = append(kids, p.parseDataType())
	}
	nameTok := p.expectIdentTok()
	kids = append(kids, p.parseDeclaratorTail(nameTok))
	return syntax.New(syntax.AssertionPort, kids...)
}

// parseLetDecl parses `let name [(ports)] = expr;`.
func (p *Parser) parseLetDecl() *syntax.Node {
	kw := p.advance() // let
	name := p.expectIdent()
	var ports *syntax.Node
	if p.at(keyword.LParen) {
		ports = p.parseAssertionPortList()
	}
	eq := p.expectKeyword(keyword.Eq)
	body := p.parseExpr()
	semi := p.expectKeyword(keyword.Semi)
	return syntax.New(syntax.LetDecl, syntax.NewToken(kw), name, ports, eq, body, semi)
}

// parseRandSequenceDecl parses `randsequence(start) production : rule ... ;
// production ...  endsequence`, capturing each rule's item list as raw
// tokens; the genvar/generate-less scope decision applies equally to
// randsequence item binding, which this front end does not evaluate.
func (p *Parser) parseRandSequenceDecl() *syntax.Node {
	kw := p.advance() // randsequence
	lp := p.expectKeyword(keyword.LParen)
	var start *syntax.Node
	if !p.at(keyword.RParen) {
		start = p.expectIdent()
	}
	rp := p.expectKeyword(keyword.RParen)

	var productions []*syntax.Node
	for !p.atEOF() && !p.at(keyword.EndSequence) {
		before := p.pos
		productions = append(productions, p.parseRandSequenceProduction())
		if p.pos == before {
			p.skip()
		}
	}
	end := p.expectKeyword(keyword.EndSequence)
	list := syntax.New(syntax.List, productions...)
	return syntax.New(syntax.RandSequenceDecl, syntax.NewToken(kw), lp, start, rp, list, end)
}

func (p *Parser) parseRandSequenceProduction() *syntax.Node {
	name := p.expectIdent()
	colon := p.expectKeyword(keyword.Colon)
	var rules []*syntax.Node
	rules = append(rules, p.parseRandSequenceRule())
	for p.at(keyword.Pipe) {
		rules = append(rules, syntax.NewToken(p.advance()))
		rules = append(rules, p.parseRandSequenceRule())
	}
	semi := p.expectKeyword(keyword.Semi)
	list := syntax.New(syntax.List, rules...)
	return syntax.New(syntax.RandSequenceProduction, name, colon, list, semi)
}

func (p *Parser) parseRandSequenceRule() *syntax.Node {
	body := p.parseRawBodyUntil(keyword.Pipe, keyword.Semi)
	return syntax.New(syntax.RandSequenceRule, body)
}

// parseTimeunitDecl parses `timeunit "1ns" [/ "1ps"];` or `timeprecision
// "1ps";` .
func (p *Parser) parseTimeunitDecl(kind syntax.Kind, kw keyword.Keyword) *syntax.Node {
	kwTok := p.expectKeyword(kw)
	value := p.expectLiteralOrIdent()
	var slash, precision *syntax.Node
	if p.at(keyword.Slash) {
		slash = syntax.NewToken(p.advance())
		precision = p.expectLiteralOrIdent()
	}
	semi := p.expectKeyword(keyword.Semi)
	return syntax.New(kind, syntax.NewToken(kwTok), value, slash, precision, semi)
}

// expectLiteralOrIdent accepts a time literal or, defensively, a bare
// identifier -- the lexer already turns "1ns" into a single
// [token.TimeLiteral], so this only ever needs the literal path, but
// falling back avoids a spurious cascade of diagnostics if it doesn't.
func (p *Parser) expectLiteralOrIdent() *syntax.Node {
	if p.cur().Kind.IsLiteral() {
		return syntax.NewToken(p.advance())
	}
	return p.expectIdent()
}

// parseElabSystemTask parses `$fatal|$error|$warning|$info(args...);` or
// `$static_assert(cond, msg);` module-item forms .
func (p *Parser) parseElabSystemTask() *syntax.Node {
	kw := p.advance()
	kids := []*syntax.Node{syntax.NewToken(kw)}
	if p.at(keyword.LParen) {
		lp := p.advance()
		var args []*syntax.Node
		if !p.at(keyword.RParen) {
			args = append(args, p.parseExpr())
			for p.at(keyword.Comma) {
				args = append(args, syntax.NewToken(p.advance()))
				args = append(args, p.parseExpr())
			}
		}
		rp := p.expectKeyword(keyword.RParen)
		kids = append(kids, syntax.NewToken(lp), syntax.New(syntax.List, args...), rp)
	}
	kids = append(kids, p.expectKeyword(keyword.Semi))
	return syntax.New(syntax.ElabSystemTask, kids...)
}
