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

// builtinTypeKw is every reserved word that opens a data type:
// four-state and two-state built-ins, aggregate keywords are handled
// separately since they introduce their own bodies).
var builtinTypeKw = map[keyword.Keyword]bool{
	keyword.Reg: true, keyword.Logic: true, keyword.Bit: true, keyword.Byte: true,
	keyword.ShortInt: true, keyword.Int: true, keyword.LongInt: true, keyword.Integer: true,
	keyword.Time: true, keyword.Real: true, keyword.ShortReal: true, keyword.RealTime: true,
	keyword.String: true, keyword.Chandle: true, keyword.Event: true, keyword.Void: true,
}

// netTypeKw is every built-in net keyword (the "Net creation": "the
// resolved net type, built-in or user-defined").
var netTypeKw = map[keyword.Keyword]bool{
	keyword.Wire: true, keyword.Wand: true, keyword.Wor: true,
	keyword.Tri: true, keyword.Tri0: true, keyword.Tri1: true,
	keyword.Supply0: true, keyword.Supply1: true, keyword.Uwire: true,
}

// parseDataType parses a single data or net type name: a built-in keyword
// or a plain identifier (a class, typedef, or user-defined nettype name --
// the parser doesn't resolve which, keeping "parse the
// grammar shape" separate from "resolve what a name means"), an optional signed/
// unsigned modifier, and any packed dimensions.
func (p *Parser) parseDataType() *syntax.Node {
	var kids []*syntax.Node
	switch {
	case builtinTypeKw[p.curKeyword()] || netTypeKw[p.curKeyword()]:
		kids = append(kids, syntax.NewToken(p.advance()))
	case p.cur().Kind == token.Ident:
		kids = append(kids, syntax.NewToken(p.advance()))
	default:
		kids = append(kids, p.expectIdent())
	}
	if p.atAny(keyword.Signed, keyword.Unsigned) {
		kids = append(kids, syntax.NewToken(p.advance()))
	}
	for p.at(keyword.LBracket) {
		kids = append(kids, p.parsePackedDim())
	}
	return syntax.New(syntax.DataType, kids...)
}

func (p *Parser) parsePackedDim() *syntax.Node {
	lb := p.advance() // '['
	hi := p.parseExpr()
	colon := p.expectKeyword(keyword.Colon)
	lo := p.parseExpr()
	rb := p.expectKeyword(keyword.RBracket)
	return syntax.New(syntax.PackedDim, syntax.NewToken(lb), hi, colon, lo, rb)
}

// parseDeclaratorTail parses the part of a declarator after its name: any
// unpacked dimensions and an optional initializer.
func (p *Parser) parseDeclaratorTail(nameTok token.Token) *syntax.Node {
	kids := []*syntax.Node{syntax.NewToken(nameTok)}
	for p.at(keyword.LBracket) {
		kids = append(kids, p.parsePackedDim())
	}
	if p.at(keyword.Eq) {
		eq := p.advance()
		init := p.parseExpr()
		kids = append(kids, syntax.NewToken(eq), init)
	}
	return syntax.New(syntax.Declarator, kids...)
}

// parseDeclaratorList parses a comma-separated declarator list whose first
// name has already been consumed by the caller: one or more
// comma-separated names, each with its own optional dimensions and
// initializer.
func (p *Parser) parseDeclaratorList(first token.Token) *syntax.Node {
	items := []*syntax.Node{p.parseDeclaratorTail(first)}
	for p.at(keyword.Comma) {
		items = append(items, syntax.NewToken(p.advance()))
		items = append(items, p.parseDeclaratorTail(p.expectIdentTok()))
	}
	return syntax.New(syntax.List, items...)
}

// parsePortItem parses one entry of a module/interface/program/primitive
// port list. Every entry is tagged [syntax.AnsiPort] regardless of whether
// it carries an explicit direction/type; whether the enclosing list is an
// ANSI or non-ANSI port list is an elaboration-time judgment ,
// not a parse-time one, since a bare name here is only distinguishable by
// looking at its neighbors.
func (p *Parser) parsePortItem() *syntax.Node {
	var kids []*syntax.Node
	if p.atAny(keyword.Input, keyword.Output, keyword.Inout, keyword.Ref) {
		kids = append(kids, syntax.NewToken(p.advance()))
	}
	if builtinTypeKw[p.curKeyword()] || netTypeKw[p.curKeyword()] || p.atAny(keyword.Signed, keyword.Unsigned) {
		kids = append(kids, p.parseDataType())
	}
	nameTok := p.expectIdentTok()
	kids = append(kids, p.parseDeclaratorTail(nameTok))
	return syntax.New(syntax.AnsiPort, kids...)
}

func (p *Parser) parsePortList() *syntax.Node {
	lp := p.expectKeyword(keyword.LParen)
	var items []*syntax.Node
	if !p.at(keyword.RParen) {
		items = append(items, p.parsePortItem())
		for p.at(keyword.Comma) {
			items = append(items, syntax.NewToken(p.advance()))
			items = append(items, p.parsePortItem())
		}
	}
	rp := p.expectKeyword(keyword.RParen)
	list := syntax.New(syntax.List, items...)
	return syntax.New(syntax.PortList, lp, list, rp)
}

func (p *Parser) parseParamPortItem() *syntax.Node {
	var kids []*syntax.Node
	if p.atAny(keyword.Parameter, keyword.LocalParam) {
		kids = append(kids, syntax.NewToken(p.advance()))
	}
	if builtinTypeKw[p.curKeyword()] || p.atAny(keyword.Signed, keyword.Unsigned) {
		kids = append(kids, p.parseDataType())
	}
	nameTok := p.expectIdentTok()
	kids = append(kids, p.parseDeclaratorTail(nameTok))
	return syntax.New(syntax.ParamDecl, kids...)
}

func (p *Parser) parseParamPortList() *syntax.Node {
	hash := p.expectKeyword(keyword.Hash)
	lp := p.expectKeyword(keyword.LParen)
	var items []*syntax.Node
	if !p.at(keyword.RParen) {
		items = append(items, p.parseParamPortItem())
		for p.at(keyword.Comma) {
			items = append(items, syntax.NewToken(p.advance()))
			items = append(items, p.parseParamPortItem())
		}
	}
	rp := p.expectKeyword(keyword.RParen)
	list := syntax.New(syntax.List, items...)
	return syntax.New(syntax.ParamPortList, hash, lp, list, rp)
}

// parseParamDecl parses a standalone `parameter`/`localparam` declaration
// appearing as a module member (as opposed to inside a parameter port
// list, see [Parser.parseParamPortItem]).
func (p *Parser) parseParamDecl() *syntax.Node {
	kw := p.advance() // parameter or localparam
	kids := []*syntax.Node{syntax.NewToken(kw)}
	if builtinTypeKw[p.curKeyword()] || p.atAny(keyword.Signed, keyword.Unsigned) {
		kids = append(kids, p.parseDataType())
	}
	nameTok := p.expectIdentTok()
	kids = append(kids, p.parseDeclaratorList(nameTok))
	kids = append(kids, p.expectKeyword(keyword.Semi))
	return syntax.New(syntax.ParamDecl, kids...)
}

// parseModuleLike parses the shared shape of module/interface/program
// declarations: a keyword, a name, an optional parameter port list, an
// optional port list, a member list, and a matching end keyword.
func (p *Parser) parseModuleLike(kw, endKw keyword.Keyword, kind syntax.Kind) *syntax.Node {
	kwTok := p.expectKeyword(kw)
	name := p.expectIdent()
	var paramPorts *syntax.Node
	if p.at(keyword.Hash) {
		paramPorts = p.parseParamPortList()
	}
	var ports *syntax.Node
	if p.at(keyword.LParen) {
		ports = p.parsePortList()
	}
	semi := p.expectKeyword(keyword.Semi)
	members := p.parseMemberListUntil(endKw)
	end := p.expectKeyword(endKw)
	return syntax.New(kind, kwTok, name, paramPorts, ports, semi, members, end)
}

func (p *Parser) parsePackageDecl() *syntax.Node {
	kw := p.expectKeyword(keyword.Package)
	name := p.expectIdent()
	semi := p.expectKeyword(keyword.Semi)
	members := p.parseMemberListUntil(keyword.EndPackage)
	end := p.expectKeyword(keyword.EndPackage)
	return syntax.New(syntax.PackageDecl, kw, name, semi, members, end)
}

// parseTopLevelItem parses one item at the compilation-unit level.
func (p *Parser) parseTopLevelItem() *syntax.Node {
	switch p.curKeyword() {
	case keyword.Module:
		return p.parseModuleLike(keyword.Module, keyword.EndModule, syntax.ModuleDecl)
	case keyword.Interface:
		return p.parseModuleLike(keyword.Interface, keyword.EndInterface, syntax.InterfaceDecl)
	case keyword.Program:
		return p.parseModuleLike(keyword.Program, keyword.EndProgram, syntax.ProgramDecl)
	case keyword.Package:
		return p.parsePackageDecl()
	case keyword.Primitive:
		return p.parsePrimitiveDecl()
	case keyword.Semi:
		return syntax.New(syntax.EmptyMember, syntax.NewToken(p.advance()))
	default:
		return p.errorTopLevelItem()
	}
}

func (p *Parser) errorTopLevelItem() *syntax.Node {
	at := p.curRange()
	p.rep.Errorf(report.CodeUnexpectedTok, at, "expected a module, interface, program, package, or primitive declaration, found %v", p.cur())
	var bad *syntax.Node
	if !p.atEOF() {
		bad = syntax.NewToken(p.advance())
	}
	return syntax.New(syntax.ErrorNode, bad)
}

// ParseFile parses an entire compilation unit: a sequence of top-level
// declarations followed by EOF .
func (p *Parser) ParseFile() *syntax.Node {
	var items []*syntax.Node
	for !p.atEOF() {
		before := p.pos
		items = append(items, p.parseTopLevelItem())
		if p.pos == before {
			p.skip()
		}
	}
	eof := syntax.NewToken(p.advance())
	list := syntax.New(syntax.List, items...)
	return syntax.New(syntax.File, list, eof)
}
