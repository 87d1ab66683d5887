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

// Package lexer implements the SystemVerilog lexer : it turns a
// buffer's text into a stream of [token.Token] values, each carrying its
// own leading and trailing trivia, so that the token stream can be
// printed back out losslessly.
//
// A Lexer makes one pass over one buffer; it has no way to save or
// restore its cursor. The preprocessor re-lexes the substituted body of a
// macro invocation by running a new Lexer over the expansion buffer it
// creates for that invocation, as if it were ordinary source.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/svlang/svfront/report"
	"github.com/svlang/svfront/source"
	"github.com/svlang/svfront/token"
	"github.com/svlang/svfront/token/keyword"
)

// Lexer scans a single buffer into a flat token stream.
type Lexer struct {
	buffer *source.Buffer
	id     source.BufferID
	text   string
	report *report.Report

	cursor int
}

// New constructs a Lexer over the given buffer.
func New(mgr *source.Manager, id source.BufferID, rep *report.Report) *Lexer {
	buf := mgr.Buffer(id)
	return &Lexer{buffer: buf, id: id, text: buf.Text(), report: rep}
}

// Lex scans the entire buffer and returns its tokens, terminated by a
// single EOF token.
func (l *Lexer) Lex() []token.Token {
	var out []token.Token
	var pending []token.Trivia
	for {
		leading := append(pending, l.skipTrivia()...)
		pending = nil
		if l.done() {
			out = append(out, token.Token{
				Kind:    token.EOF,
				Range:   l.rangeFrom(l.cursor),
				Leading: leading,
			})
			return out
		}

		start := l.cursor
		tok, ok := l.next()
		if !ok {
			// next() already recorded a diagnostic; treat the offending
			// byte as a one-byte piece of skipped trivia and continue.
			l.cursor = start + 1
			pending = append(leading, token.Trivia{Kind: token.SkippedToken, Range: l.rangeFrom(start), Text: l.text[start:l.cursor]})
			continue
		}
		tok.Range = l.rangeFrom(start)
		tok.Leading = leading
		out = append(out, tok)
	}
}

func (l *Lexer) rangeFrom(start int) source.Range {
	return source.Range{
		Start: source.Location{Buffer: l.id, Offset: start},
		End:   source.Location{Buffer: l.id, Offset: l.cursor},
	}
}

func (l *Lexer) rest() string { return l.text[l.cursor:] }

func (l *Lexer) done() bool { return l.cursor >= len(l.text) }

// peek returns the next rune without consuming it, or -1 at EOF.
func (l *Lexer) peek() rune {
	if l.done() {
		return -1
	}
	r, _ := utf8.DecodeRuneInString(l.rest())
	return r
}

// peekAt returns the rune n runes ahead of the cursor, or -1 past EOF.
func (l *Lexer) peekAt(n int) rune {
	rest := l.rest()
	for i := 0; i < n; i++ {
		_, sz := utf8.DecodeRuneInString(rest)
		if sz == 0 {
			return -1
		}
		rest = rest[sz:]
	}
	if rest == "" {
		return -1
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return r
}

func (l *Lexer) pop() rune {
	r := l.peek()
	if r != -1 {
		l.cursor += utf8.RuneLen(r)
	}
	return r
}

func (l *Lexer) takeWhile(f func(rune) bool) string {
	start := l.cursor
	for !l.done() {
		if r := l.peek(); r == -1 || !f(r) {
			break
		}
		l.pop()
	}
	return l.text[start:l.cursor]
}

// skipTrivia consumes whitespace and comments, returning them as
// [token.Trivia] to be attached to the next real token.
func (l *Lexer) skipTrivia() []token.Trivia {
	var trivia []token.Trivia
	for {
		start := l.cursor
		switch {
		case l.peek() == -1:
			return trivia
		case isSVSpace(l.peek()):
			l.takeWhile(isSVSpace)
			trivia = append(trivia, token.Trivia{Kind: token.Whitespace, Range: l.rangeFrom(start), Text: l.text[start:l.cursor]})
		case l.peek() == '/' && l.peekAt(1) == '/':
			l.takeWhile(func(r rune) bool { return r != '\n' })
			trivia = append(trivia, token.Trivia{Kind: token.LineComment, Range: l.rangeFrom(start), Text: l.text[start:l.cursor]})
		case l.peek() == '/' && l.peekAt(1) == '*':
			l.pop()
			l.pop()
			closed := false
			for !l.done() {
				if l.peek() == '*' && l.peekAt(1) == '/' {
					l.pop()
					l.pop()
					closed = true
					break
				}
				l.pop()
			}
			if !closed {
				l.report.Errorf(report.CodeUnterminatedBlockComment, l.rangeFrom(start), "unterminated block comment")
			}
			trivia = append(trivia, token.Trivia{Kind: token.BlockComment, Range: l.rangeFrom(start), Text: l.text[start:l.cursor]})
		default:
			return trivia
		}
	}
}

func isSVSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n' || r == '\f' || r == '\v'
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentCont(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// next scans exactly one real (non-trivia) token starting at the cursor.
func (l *Lexer) next() (token.Token, bool) {
	start := l.cursor
	r := l.peek()

	switch {
	case r == '`' && strings.HasPrefix(l.rest(), "``"):
		// The macro-body token-pasting operator : two bare
		// backticks with nothing between them, distinct from a directive or
		// macro-invocation name.
		l.cursor += 2
		return token.Token{Kind: token.Directive, Text: "``"}, true

	case r == '`' && strings.HasPrefix(l.rest(), "`\\\""):
		// The escaped-quote stringification operator, `\"...\"` , used to
		// stringify an argument while embedding literal quotes.
		l.cursor += 3
		return token.Token{Kind: token.Directive, Text: "`\\\""}, true

	case r == '`' && strings.HasPrefix(l.rest(), "`\""):
		// The stringification operator, `"..."`.
		l.cursor += 2
		return token.Token{Kind: token.Directive, Text: "`\""}, true

	case r == '`':
		l.pop()
		name := l.takeWhile(isIdentCont)
		return token.Token{Kind: token.Directive, Text: "`" + name}, true

	case r == '\\':
		l.pop()
		text := l.takeWhile(func(r rune) bool { return !isSVSpace(r) })
		return token.Token{Kind: token.EscapedIdent, Text: "\\" + text}, true

	case r == '$' && isIdentStart(l.peekAt(1)):
		l.pop()
		text := l.takeWhile(isIdentCont)
		return token.Token{Kind: token.SystemIdent, Text: "$" + text}, true

	case r == '"':
		return l.lexString()

	case r == '\'':
		if isBaseLetter(l.peekAt(1)) || l.peekAt(1) == 's' || l.peekAt(1) == 'S' {
			return l.lexBasedInt(start, "")
		}
		if isUnbasedDigit(l.peekAt(1)) {
			return l.lexUnbasedUnsized()
		}

	case unicode.IsDigit(r):
		return l.lexNumber()

	case isIdentStart(r):
		text := l.takeWhile(isIdentCont)
		if kw, ok := keyword.LookupWord(text); ok {
			return token.Token{Kind: token.Keyword, Keyword: kw, Text: text}, true
		}
		return token.Token{Kind: token.Ident, Text: text}, true
	}

	// Maximal-munch over punctuation/operator keywords.
	if kw := keyword.PunctPrefix(l.rest()); kw.IsValid() {
		text := kw.String()
		l.cursor += len(text)
		return token.Token{Kind: token.Keyword, Keyword: kw, Text: text}, true
	}

	l.pop()
	l.report.Errorf(report.CodeUnknownToken, l.rangeFrom(start), "unrecognized character %q", r)
	return token.Token{}, false
}
