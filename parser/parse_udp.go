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
	"github.com/svlang/svfront/syntax"
	"github.com/svlang/svfront/token/keyword"
)

// parsePrimitiveDecl parses a UDP: `primitive name(ports); port-decl* [
// initial output = value; ] table ... endtable endprimitive`. UDP rules
// cover ANSI/non-ANSI port lists, exactly one output port, sequential
// vs. combinational via `output reg`, `initial` restricted to sequential
// UDPs targeting the output port).
func (p *Parser) parsePrimitiveDecl() *syntax.Node {
	kw := p.expectKeyword(keyword.Primitive)
	name := p.expectIdent()
	ports := p.parsePortList()
	semi := p.expectKeyword(keyword.Semi)

	var items []*syntax.Node
	for !p.atEOF() && !p.at(keyword.EndPrimitive) {
		before := p.pos
		switch {
		case p.atAny(keyword.Input, keyword.Output, keyword.Reg):
			items = append(items, p.parseUdpPortDecl())
		case p.at(keyword.Initial):
			items = append(items, p.parseUdpInitial())
		case p.at(keyword.Table):
			items = append(items, p.parseUdpTable())
		case p.at(keyword.Semi):
			items = append(items, syntax.New(syntax.EmptyMember, syntax.NewToken(p.advance())))
		default:
			items = append(items, p.errorMember())
		}
		if p.pos == before {
			p.skip()
		}
	}
	end := p.expectKeyword(keyword.EndPrimitive)
	body := syntax.New(syntax.UdpBody, syntax.New(syntax.List, items...))
	return syntax.New(syntax.PrimitiveDecl, kw, name, ports, semi, body, end)
}

func (p *Parser) parseUdpPortDecl() *syntax.Node {
	kw := p.advance() // input, output, or reg
	nameTok := p.expectIdentTok()
	declList := p.parseDeclaratorList(nameTok)
	semi := p.expectKeyword(keyword.Semi)
	return syntax.New(syntax.UdpPortDecl, syntax.NewToken(kw), declList, semi)
}

// parseUdpInitial parses `initial out = value;`, the sequential-UDP output
// initializer restricted to 0, 1, or a 1-bit x value .
func (p *Parser) parseUdpInitial() *syntax.Node {
	kw := p.advance() // initial
	target := p.expectIdent()
	eq := p.expectKeyword(keyword.Eq)
	value := p.parsePrimary()
	semi := p.expectKeyword(keyword.Semi)
	return syntax.New(syntax.UdpInitial, syntax.NewToken(kw), target, eq, value, semi)
}

func (p *Parser) parseUdpTable() *syntax.Node {
	kw := p.expectKeyword(keyword.Table)
	body := p.parseRawBodyUntil(keyword.EndTable)
	end := p.expectKeyword(keyword.EndTable)
	return syntax.New(syntax.UdpTable, kw, body, end)
}
