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

// Package preprocessor implements the SystemVerilog preprocessor: it
// drives a stack of active lexers (pushed on `include and
// on macro expansion, popped on exhaustion) and turns the raw token
// stream one of them produces into a post-directive token stream, with
// conditional-inclusion frames tracking which branches are live.
package preprocessor

import (
	"fmt"
	"strings"

	"github.com/svlang/svfront/internal/lexer"
	"github.com/svlang/svfront/report"
	"github.com/svlang/svfront/source"
	"github.com/svlang/svfront/token"
	"github.com/svlang/svfront/token/keyword"
)

// frame is one entry in the active-lexer stack: either a real file buffer
// (pushed by PushFile or by `include) or a macro-expansion buffer (pushed
// by a macro invocation).
type frame struct {
	id   source.BufferID
	toks []token.Token
	pos  int

	// expanding is the macro name this frame is the expansion of, or ""
	// for a plain file frame. It is removed from the currently-expanding
	// set when the frame is popped.
	expanding string
}

// condFrame is one level of the `ifdef/`ifndef/`elsif/`else/`endif stack.
type condFrame struct {
	// active reports whether this frame's branch is the one currently
	// contributing tokens.
	active bool
	// anyTaken reports whether any branch of this if/elsif/.../else chain
	// has been taken yet, which is what makes a later `elsif or `else
	// in the same chain inactive even if its own condition would hold.
	anyTaken bool
	// parentActive is whether the enclosing context was itself active
	// when this frame was pushed; a frame can never be active if its
	// parent isn't.
	parentActive bool
	at           source.Range
}

// Preprocessor turns one or more buffers into a single post-expansion
// token stream .
type Preprocessor struct {
	mgr    *source.Manager
	report *report.Report

	macros *table
	conds  []condFrame
	stack  []*frame

	expanding map[string]bool
	pending   []token.Trivia

	defaultNettype   string
	unconnectedDrive string
	keywordVersions  []string
	timescale        string
	timescaleAt      source.Range

	strict bool
	eof    token.Token
}

// New constructs a Preprocessor with no active buffers. Call [PushFile]
// (usually once, for the compilation's top-level file) before [Next].
func New(mgr *source.Manager, rep *report.Report) *Preprocessor {
	return &Preprocessor{
		mgr:            mgr,
		report:         rep,
		macros:         newTable(),
		expanding:      make(map[string]bool),
		defaultNettype: "wire",
		strict:         true,
	}
}

// Predefine installs name as an object-like macro whose replacement
// text is text.
func (p *Preprocessor) Predefine(name, text string) {
	id := p.mgr.AddBuffer(fmt.Sprintf("<predefine %s>", name), text)
	toks := lexer.New(p.mgr, id, p.report).Lex()
	p.macros.define(&Macro{Name: name, Body: dropEOF(toks)})
}

// IsDefined reports whether name is currently defined at the current
// point in the token stream.
func (p *Preprocessor) IsDefined(name string) bool {
	_, ok := p.macros.lookup(name)
	return ok
}

// DefinedMacros returns a snapshot of the macro table, ordered by first
// definition order.
func (p *Preprocessor) DefinedMacros() []*Macro {
	return p.macros.snapshot()
}

// DefaultNettype returns the net type most recently established by a
// `` `default_nettype `` directive ("wire" until overridden, "" once the
// source has disabled implicit nets), for the elaborator's implicit net
// creation on an undeclared continuous-assign target.
func (p *Preprocessor) DefaultNettype() string {
	return p.defaultNettype
}

// PushFile lexes buffer id in full and pushes it as the active frame,
// ahead of whatever is already on the stack. This is how both top-level
// compilation units and `include targets enter the preprocessor.
func (p *Preprocessor) PushFile(id source.BufferID) {
	toks := lexer.New(p.mgr, id, p.report).Lex()
	p.stack = append(p.stack, &frame{id: id, toks: toks})
}

func dropEOF(toks []token.Token) []token.Token {
	if len(toks) > 0 && toks[len(toks)-1].Kind == token.EOF {
		return toks[:len(toks)-1]
	}
	return toks
}

func (p *Preprocessor) top() *frame {
	if len(p.stack) == 0 {
		return nil
	}
	return p.stack[len(p.stack)-1]
}

// condTaken reports whether the current position is inside a live
// conditional-inclusion branch.
func (p *Preprocessor) condTaken() bool {
	for _, f := range p.conds {
		if !f.active {
			return false
		}
	}
	return true
}

// Next returns the next token of the post-expansion stream, expanding
// macros and applying directives as it goes. Once every active buffer is
// exhausted it returns an EOF token forever.
func (p *Preprocessor) Next() token.Token {
	for {
		f := p.top()
		if f == nil {
			if len(p.conds) > 0 {
				p.report.Errorf(report.CodeUnterminatedConditional, p.conds[len(p.conds)-1].at, "unterminated conditional directive")
				p.conds = nil
			}
			return p.eofToken()
		}
		if f.pos >= len(f.toks) {
			p.stack = p.stack[:len(p.stack)-1]
			if f.expanding != "" {
				delete(p.expanding, f.expanding)
			}
			continue
		}

		tok := f.toks[f.pos]
		if tok.Kind == token.EOF {
			f.pos++
			continue
		}

		if tok.Kind == token.Directive {
			f.pos++
			if out, verbatim := p.handleDirective(f, tok); verbatim {
				return p.emit(out)
			}
			continue
		}

		if !p.condTaken() {
			p.markDisabled(tok)
			f.pos++
			continue
		}

		if tok.Kind == token.Ident {
			if m, ok := p.macros.lookup(tok.Text); ok {
				f.pos++
				if out, verbatim := p.expandInvocation(f, tok, m); verbatim {
					return p.emit(out)
				}
				continue
			}
		}

		f.pos++
		return p.emit(tok)
	}
}

// Tokens drains Next() into a slice, terminated by (and including) the
// final EOF token. It is a convenience for tests and for callers that
// want the whole post-expansion stream at once rather than pulling it
// incrementally.
func (p *Preprocessor) Tokens() []token.Token {
	var out []token.Token
	for {
		t := p.Next()
		out = append(out, t)
		if t.Kind == token.EOF {
			return out
		}
	}
}

func (p *Preprocessor) eofToken() token.Token {
	if p.eof.Kind != token.EOF {
		p.eof = token.Token{Kind: token.EOF, Leading: p.pending}
		p.pending = nil
	}
	return p.eof
}

// emit attaches any accumulated disabled-text trivia to tok's leading
// trivia and returns it.
func (p *Preprocessor) emit(tok token.Token) token.Token {
	if len(p.pending) == 0 {
		return tok
	}
	leading := make([]token.Trivia, 0, len(p.pending)+len(tok.Leading))
	leading = append(leading, p.pending...)
	leading = append(leading, tok.Leading...)
	tok.Leading = leading
	p.pending = nil
	return tok
}

// markDisabled records tok as disabled text: tokens inside a non-taken
// branch are consumed but emitted as disabled-text trivia attached to
// the next passing token.
func (p *Preprocessor) markDisabled(tok token.Token) {
	p.pending = append(p.pending, token.Trivia{
		Kind:  token.DisabledText,
		Range: tok.Range,
		Text:  tok.FullText(),
	})
}

// endsLine reports whether leading contains a real (non backslash-
// continued) newline, marking the start of a new logical source line —
// the boundary every directive's argument list stops at.
func endsLine(leading []token.Trivia) bool {
	for _, tr := range leading {
		if tr.Kind != token.Whitespace {
			continue
		}
		text := tr.Text
		for i := 0; i < len(text); i++ {
			if text[i] != '\n' {
				continue
			}
			j := i - 1
			if j >= 0 && text[j] == '\r' {
				j--
			}
			if j >= 0 && text[j] == '\\' {
				continue // escaped: not a real line break
			}
			return true
		}
	}
	return false
}

// takeLine consumes tokens from f starting at f.pos, up to (but not
// including) the first token whose own leading trivia crosses a real
// newline, and returns them.
func (p *Preprocessor) takeLine(f *frame) []token.Token {
	var out []token.Token
	for f.pos < len(f.toks) {
		t := f.toks[f.pos]
		if t.Kind == token.EOF {
			break
		}
		if len(out) > 0 && endsLine(t.Leading) {
			break
		}
		out = append(out, t)
		f.pos++
	}
	return out
}

// handleDirective processes one directive/macro-invocation token, having
// already been advanced past it. It returns (tok, true) when the
// directive turned out to be a macro invocation blocked by the
// currently-expanding recursion guard: the caller must emit that token
// verbatim rather than looping again.
func (p *Preprocessor) handleDirective(f *frame, tok token.Token) (token.Token, bool) {
	name := strings.TrimPrefix(tok.Text, "`")

	// The conditional-inclusion directives themselves must always run,
	// even inside an already-disabled branch, so that nesting stays
	// balanced .
	switch name {
	case "ifdef":
		p.pushCond(f, tok, false)
		return token.Token{}, false
	case "ifndef":
		p.pushCond(f, tok, true)
		return token.Token{}, false
	case "elsif":
		p.handleElsif(f, tok)
		return token.Token{}, false
	case "else":
		p.handleElse(tok)
		return token.Token{}, false
	case "endif":
		p.handleEndif(tok)
		return token.Token{}, false
	}

	if !p.condTaken() {
		// Every other directive inside a non-taken branch — including a
		// `define, which must not take effect — is left for the main
		// loop to consume token-by-token as disabled-text trivia.
		return token.Token{}, false
	}

	switch name {
	case "define":
		p.handleDefine(f, tok)
	case "undef":
		p.handleUndef(f, tok)
	case "undefineall":
		p.macros.undefAll()
	case "include":
		p.handleInclude(f, tok)
	case "timescale":
		p.handleTimescale(f, tok)
	case "default_nettype":
		p.handleDefaultNettype(f)
	case "line":
		p.handleLine(f, tok)
	case "resetall":
		p.defaultNettype = "wire"
		p.unconnectedDrive = ""
	case "celldefine", "endcelldefine":
		// Accepted with no effect; no state is recorded.
	case "unconnected_drive":
		p.handleUnconnectedDrive(f)
	case "nounconnected_drive":
		p.unconnectedDrive = ""
	case "begin_keywords":
		p.handleBeginKeywords(f)
	case "end_keywords":
		if n := len(p.keywordVersions); n > 0 {
			p.keywordVersions = p.keywordVersions[:n-1]
		}
	case "pragma":
		p.skipPragma(f, tok)
	case "``", "`\"", "`\\\"":
		// A paste/stringify marker outside of a macro body has no
		// meaning; treat it as an unknown directive.
		p.report.Errorf(report.CodeUnknownDirective, tok.Range, "%s has no effect outside a macro body", tok.Text)
	default:
		if m, ok := p.macros.lookup(name); ok {
			return p.expandInvocation(f, tok, m)
		}
		p.report.Errorf(report.CodeUnknownDirective, tok.Range, "unknown directive `%s", name)
		p.takeLine(f) // skip to end of line
	}
	return token.Token{}, false
}

func (p *Preprocessor) handleDefine(f *frame, directive token.Token) {
	if f.pos >= len(f.toks) {
		return
	}
	nameTok := f.toks[f.pos]
	f.pos++
	macro := &Macro{Name: nameTok.Text, DefinedAt: source.Range{Start: directive.Range.Start, End: nameTok.Range.End}}

	if f.pos < len(f.toks) && f.toks[f.pos].Is(keyword.LParen) && f.toks[f.pos].Range.Start.Offset == nameTok.Range.End.Offset {
		f.pos++ // consume '('
		macro.Params = []string{}
		macro.Defaults = make(map[string][]token.Token)
		for {
			if f.pos >= len(f.toks) || f.toks[f.pos].Kind == token.EOF {
				p.report.Errorf(report.CodeUnterminatedArgumentList, directive.Range, "unterminated macro parameter list in `define %s", macro.Name)
				break
			}
			if f.toks[f.pos].Is(keyword.RParen) {
				f.pos++
				break
			}
			if f.toks[f.pos].Is(keyword.Comma) {
				f.pos++
				continue
			}
			param := f.toks[f.pos]
			f.pos++
			macro.Params = append(macro.Params, param.Text)
			if f.pos < len(f.toks) && f.toks[f.pos].Is(keyword.Eq) {
				f.pos++
				var def []token.Token
				depth := 0
				for f.pos < len(f.toks) {
					t := f.toks[f.pos]
					if t.Kind == token.EOF {
						break
					}
					if t.Kind == token.Keyword {
						switch t.Keyword {
						case keyword.LParen, keyword.LBracket, keyword.LBrace:
							depth++
						case keyword.RParen:
							if depth == 0 {
								break
							}
							depth--
						case keyword.RBracket, keyword.RBrace:
							depth--
						case keyword.Comma:
							if depth == 0 {
								break
							}
						}
						if depth == 0 && (t.Keyword == keyword.RParen || t.Keyword == keyword.Comma) {
							break
						}
					}
					def = append(def, t)
					f.pos++
				}
				macro.Defaults[param.Text] = def
			}
		}
	}

	macro.Body = p.takeLine(f)

	existed, mismatch := p.macros.define(macro)
	if existed && mismatch {
		p.report.Errorf(report.CodeMacroRedefinition, macro.DefinedAt, "redefinition of macro `%s does not match its previous definition", macro.Name)
	}
}

func (p *Preprocessor) handleUndef(f *frame, directive token.Token) {
	if f.pos >= len(f.toks) {
		return
	}
	name := f.toks[f.pos].Text
	f.pos++
	if !p.macros.undef(name) {
		p.report.Warnf(report.CodeUndefinedMacro, directive.Range, "`undef of undefined macro `%s", name)
	}
}

func (p *Preprocessor) pushCond(f *frame, directive token.Token, negate bool) {
	if f.pos >= len(f.toks) {
		return
	}
	name := f.toks[f.pos].Text
	f.pos++
	parentActive := p.condTaken()
	isDef := p.IsDefined(name)
	active := parentActive && (isDef != negate)
	p.conds = append(p.conds, condFrame{active: active, anyTaken: active, parentActive: parentActive, at: directive.Range})
}

func (p *Preprocessor) handleElsif(f *frame, directive token.Token) {
	if f.pos >= len(f.toks) {
		return
	}
	name := f.toks[f.pos].Text
	f.pos++
	if len(p.conds) == 0 {
		p.report.Errorf(report.CodeElseWithoutIf, directive.Range, "`elsif without a matching `ifdef/`ifndef")
		return
	}
	top := &p.conds[len(p.conds)-1]
	if top.anyTaken {
		top.active = false
		return
	}
	top.active = top.parentActive && p.IsDefined(name)
	if top.active {
		top.anyTaken = true
	}
}

func (p *Preprocessor) handleElse(directive token.Token) {
	if len(p.conds) == 0 {
		p.report.Errorf(report.CodeElseWithoutIf, directive.Range, "`else without a matching `ifdef/`ifndef")
		return
	}
	top := &p.conds[len(p.conds)-1]
	top.active = top.parentActive && !top.anyTaken
	if top.active {
		top.anyTaken = true
	}
}

func (p *Preprocessor) handleEndif(directive token.Token) {
	if len(p.conds) == 0 {
		p.report.Errorf(report.CodeElseWithoutIf, directive.Range, "`endif without a matching `ifdef/`ifndef")
		return
	}
	p.conds = p.conds[:len(p.conds)-1]
}

func (p *Preprocessor) handleInclude(f *frame, directive token.Token) {
	if f.pos >= len(f.toks) {
		return
	}
	var name string
	var angled bool
	tok := f.toks[f.pos]
	switch {
	case tok.Kind == token.StringLiteral:
		name = tok.Value.(token.StringValue).Value
		f.pos++
	case tok.Is(keyword.Less):
		f.pos++
		var b strings.Builder
		for f.pos < len(f.toks) && !f.toks[f.pos].Is(keyword.Greater) && f.toks[f.pos].Kind != token.EOF {
			b.WriteString(f.toks[f.pos].Text)
			f.pos++
		}
		if f.pos < len(f.toks) && f.toks[f.pos].Is(keyword.Greater) {
			f.pos++
		}
		name = b.String()
		angled = true
	default:
		p.report.Errorf(report.CodeIncludeNotFound, directive.Range, "malformed `include directive")
		return
	}

	if len(p.stack) >= p.mgr.MaxIncludeDepth() {
		p.report.Errorf(report.CodeIncludeDepth, directive.Range, "`include nesting exceeds maximum depth of %d", p.mgr.MaxIncludeDepth())
		return
	}

	id, err := p.mgr.OpenInclude(name, f.id, angled)
	if err != nil {
		p.report.Errorf(report.CodeIncludeNotFound, directive.Range, "cannot find include file %q", name)
		return
	}
	p.PushFile(id)
}

func (p *Preprocessor) handleTimescale(f *frame, directive token.Token) {
	tokens := p.takeLine(f)
	text := ""
	for _, t := range tokens {
		text += t.Text
	}
	unit, prec, ok := parseTimescale(text)
	if !ok {
		p.report.Errorf(report.CodeMalformedTimescale, directive.Range, "malformed `timescale %s", text)
		return
	}
	value := unit + "/" + prec
	if p.timescale != "" && p.timescale != value {
		p.report.Errorf(report.CodeMismatchedTimeScales, directive.Range, "`timescale %s conflicts with earlier `timescale %s", value, p.timescale)
	}
	p.timescale = value
	p.timescaleAt = directive.Range
}

// parseTimescale splits "1ns/1ps"-shaped text into its unit and
// precision halves and checks each has a legal SystemVerilog time-unit
// magnitude (1, 10, or 100).
func parseTimescale(text string) (unit, precision string, ok bool) {
	parts := strings.SplitN(text, "/", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	if !validTimescaleValue(parts[0]) || !validTimescaleValue(parts[1]) {
		return "", "", false
	}
	return parts[0], parts[1], true
}

func validTimescaleValue(s string) bool {
	for _, mag := range []string{"1", "10", "100"} {
		if strings.HasPrefix(s, mag) {
			rest := s[len(mag):]
			switch rest {
			case "fs", "ps", "ns", "us", "ms", "s":
				return true
			}
		}
	}
	return false
}

func (p *Preprocessor) handleDefaultNettype(f *frame) {
	if f.pos >= len(f.toks) {
		return
	}
	p.defaultNettype = f.toks[f.pos].Text
	if p.defaultNettype == "none" {
		p.defaultNettype = ""
	}
	f.pos++
}

func (p *Preprocessor) handleLine(f *frame, directive token.Token) {
	if f.pos+1 >= len(f.toks) {
		return
	}
	lineTok := f.toks[f.pos]
	fileTok := f.toks[f.pos+1]
	f.pos += 2
	level := 0
	if f.pos < len(f.toks) && f.toks[f.pos].Kind == token.IntLiteral {
		level = int(f.toks[f.pos].Value.(token.IntValue).Value)
		f.pos++
	}
	if lineTok.Kind != token.IntLiteral || fileTok.Kind != token.StringLiteral {
		p.report.Errorf(report.CodeMalformedTimescale, directive.Range, "malformed `line directive")
		return
	}
	line := int(lineTok.Value.(token.IntValue).Value)
	file := fileTok.Value.(token.StringValue).Value
	p.mgr.SetLineDirective(f.id, directive.Range.Start.Offset, file, line, level)
}

func (p *Preprocessor) handleUnconnectedDrive(f *frame) {
	if f.pos >= len(f.toks) {
		return
	}
	p.unconnectedDrive = f.toks[f.pos].Text
	f.pos++
}

func (p *Preprocessor) handleBeginKeywords(f *frame) {
	if f.pos >= len(f.toks) || f.toks[f.pos].Kind != token.StringLiteral {
		return
	}
	p.keywordVersions = append(p.keywordVersions, f.toks[f.pos].Value.(token.StringValue).Value)
	f.pos++
}

func (p *Preprocessor) skipPragma(f *frame, directive token.Token) {
	line := p.takeLine(f)
	var b strings.Builder
	b.WriteString(directive.Text)
	for _, t := range line {
		b.WriteString(t.FullText())
	}
	p.pending = append(p.pending, token.Trivia{Kind: token.DisabledText, Range: directive.Range, Text: b.String()})
}

// expandInvocation expands a macro invocation at tok (a bare identifier
// matching a macro name, or the directive token of an explicit `NAME
// invocation) and pushes the result as a new active frame. It returns
// (tok, true) instead when m is already being expanded higher up the
// frame stack: the macro-recursion testable property requires the
// inner self-reference to be emitted verbatim rather than re-expanded
// or dropped.
func (p *Preprocessor) expandInvocation(f *frame, tok token.Token, m *Macro) (token.Token, bool) {
	if p.expanding[m.Name] {
		return tok, true
	}

	var args [][]token.Token
	if m.isFunctionLike() {
		if f.pos < len(f.toks) && f.toks[f.pos].Is(keyword.LParen) {
			var ok bool
			args, ok = p.parseArgs(f, tok)
			if !ok {
				return token.Token{}, false
			}
		} else if !allDefaulted(m) {
			p.report.Errorf(report.CodeWrongMacroArgCount, tok.Range, "macro `%s requires an argument list", m.Name)
			return token.Token{}, false
		}
	}

	argFlat := make(map[string]string, len(m.Params))
	for i, param := range m.Params {
		switch {
		case i < len(args):
			argFlat[param] = flattenTokens(args[i])
		case m.Defaults != nil:
			if def, ok := m.Defaults[param]; ok {
				argFlat[param] = flattenTokens(def)
			} else {
				p.report.Errorf(report.CodeWrongMacroArgCount, tok.Range, "missing argument %q to macro `%s", param, m.Name)
			}
		default:
			p.report.Errorf(report.CodeWrongMacroArgCount, tok.Range, "missing argument %q to macro `%s", param, m.Name)
		}
	}
	if len(args) > len(m.Params) {
		p.report.Errorf(report.CodeWrongMacroArgCount, tok.Range, "too many arguments to macro `%s: expected %d, got %d", m.Name, len(m.Params), len(args))
	}

	text, joins := bodyToText(m, argFlat)
	id := p.mgr.NewExpansion(tok.Range, m.Name, text)
	toks := lexer.New(p.mgr, id, p.report).Lex()
	checkPasteJoins(p.report, tok.Range, text, toks, joins)

	p.expanding[m.Name] = true
	p.stack = append(p.stack, &frame{id: id, toks: toks, expanding: m.Name})
	return token.Token{}, false
}

func allDefaulted(m *Macro) bool {
	if m.Defaults == nil {
		return len(m.Params) == 0
	}
	for _, param := range m.Params {
		if _, ok := m.Defaults[param]; !ok {
			return false
		}
	}
	return true
}

// parseArgs consumes a parenthesized, comma-separated macro argument list
// starting at f.toks[f.pos] (a '(' token), splitting at top-level commas
// while respecting nested (), [], and {} . String,
// comment, and escaped-identifier boundaries are respected for free,
// since each is already a single token by the time the preprocessor sees
// it.
func (p *Preprocessor) parseArgs(f *frame, invocation token.Token) ([][]token.Token, bool) {
	f.pos++ // consume '('
	var args [][]token.Token
	var cur []token.Token
	depth := 0
	for {
		if f.pos >= len(f.toks) || f.toks[f.pos].Kind == token.EOF {
			p.report.Errorf(report.CodeUnterminatedArgumentList, invocation.Range, "unterminated argument list for macro `%s", invocation.Text)
			args = append(args, cur)
			return args, false
		}
		t := f.toks[f.pos]
		if t.Kind == token.Keyword {
			switch t.Keyword {
			case keyword.LParen, keyword.LBracket, keyword.LBrace:
				depth++
			case keyword.RParen:
				if depth == 0 {
					args = append(args, cur)
					f.pos++
					return args, true
				}
				depth--
			case keyword.RBracket, keyword.RBrace:
				depth--
			case keyword.Comma:
				if depth == 0 {
					args = append(args, cur)
					cur = nil
					f.pos++
					continue
				}
			}
		}
		cur = append(cur, t)
		f.pos++
	}
}

func flattenTokens(toks []token.Token) string {
	var b strings.Builder
	for i, t := range toks {
		if i == 0 {
			b.WriteString(t.Text)
		} else {
			b.WriteString(t.FullText())
		}
	}
	return b.String()
}

// bodyToText renders macro m's replacement list to source text, with
// argFlat's parameter substitutions spliced in, `` paste markers eliding
// the whitespace between the tokens they join, and `"/`\" stringify
// marker pairs replaced by a single string-literal spelling of the
// tokens between them. The returned joins are the
// byte offsets in text at which a paste took place, for
// [checkPasteJoins] to verify the re-lex actually fused them.
func bodyToText(m *Macro, argFlat map[string]string) (text string, joins []int) {
	var out strings.Builder
	body := m.Body
	n := len(body)
	suppressTrivia := false

	write := func(t token.Token) {
		if v, ok := argFlat[t.Text]; ok && t.Kind == token.Ident {
			out.WriteString(v)
			return
		}
		if suppressTrivia {
			out.WriteString(t.Text)
		} else {
			out.WriteString(t.FullText())
		}
		suppressTrivia = false
	}

	i := 0
	for i < n {
		t := body[i]
		switch {
		case t.Kind == token.Directive && t.Text == "``":
			suppressTrivia = true
			joins = append(joins, out.Len())
			i++
		case t.Kind == token.Directive && (t.Text == "`\"" || t.Text == "`\\\""):
			j := i + 1
			for j < n && !(body[j].Kind == token.Directive && (body[j].Text == "`\"" || body[j].Text == "`\\\"")) {
				j++
			}
			var inner strings.Builder
			for _, it := range body[i+1 : j] {
				if v, ok := argFlat[it.Text]; ok && it.Kind == token.Ident {
					inner.WriteString(v)
				} else {
					inner.WriteString(it.Text)
				}
			}
			out.WriteByte('"')
			out.WriteString(strings.ReplaceAll(strings.TrimSpace(inner.String()), `"`, `\"`))
			out.WriteByte('"')
			suppressTrivia = false
			if j < n {
				i = j + 1
			} else {
				i = j
			}
		default:
			write(t)
			i++
		}
	}
	return out.String(), joins
}

// checkPasteJoins reports CodeMacroPasteFailed for every recorded paste
// point that the re-lex of text did not actually fuse into a single
// token, i.e. where a token boundary still falls exactly on the join.
func checkPasteJoins(rep *report.Report, at source.Range, text string, toks []token.Token, joins []int) {
	if len(joins) == 0 {
		return
	}
	starts := make(map[int]bool, len(toks))
	for _, t := range toks {
		starts[t.Range.Start.Offset] = true
	}
	for _, j := range joins {
		if j > 0 && j < len(text) && starts[j] {
			rep.Errorf(report.CodeMacroPasteFailed, at, "token pasting at offset %d did not produce a single token", j)
		}
	}
}
