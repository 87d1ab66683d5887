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

package token

import (
	"fmt"

	"github.com/svlang/svfront/source"
	"github.com/svlang/svfront/token/keyword"
)

// IntValue is the decoded form of an [IntLiteral] or
// [UnbasedUnsizedLiteral] token: underscore separators, ?/z/x
// don't-cares, and unbased unsized literals.
type IntValue struct {
	// Width is the declared bit width (the part before the base letter),
	// or -1 if the literal was unsized.
	Width int
	Signed bool
	// Base is one of 'b', 'o', 'd', 'h', or 0 for an unbased (plain
	// decimal or unbased-unsized) literal.
	Base byte
	// Digits holds one 4-state digit per character of the literal, most
	// significant first, with underscores already stripped. A digit of
	// 'x', 'z', or '?' ('?' is a synonym for 'z') means unknown/high-Z.
	Digits string
	// Value is the fully-resolved value when Digits contains no x/z/?
	// digit; otherwise it is the value with unknown digits treated as 0.
	Value    uint64
	HasUnknown bool
}

// RealValue is the decoded form of a [RealLiteral] token.
type RealValue struct {
	Value float64
	// MissingFractionalDigits records the edge case of a
	// literal like "1." with a decimal point but no digits after it.
	MissingFractionalDigits bool
}

// TimeValue is the decoded form of a [TimeLiteral] token.
type TimeValue struct {
	Value float64
	// Unit is one of "s", "ms", "us", "ns", "ps", "fs".
	Unit string
}

// StringValue is the decoded form of a [StringLiteral] token, with all
// escape sequences resolved.
type StringValue struct {
	Value string
}

// Token is a single lexical element, plus the trivia attached to it.
//
// Every byte of the original source is accounted for by exactly one
// token's [Token.Leading] or [Token.Trailing] trivia, which is what makes
// the token stream losslessly printable .
type Token struct {
	Kind  Kind
	Range source.Range

	// Keyword identifies which reserved word or punctuation this token is,
	// when Kind == Keyword. Zero ([keyword.Unknown]) otherwise.
	Keyword keyword.Keyword

	// Text is the token's exact source text (for Ident/EscapedIdent/
	// SystemIdent/Directive/Keyword tokens; literal tokens additionally
	// carry a decoded Value).
	Text string

	// Value holds the decoded literal payload for Kind.IsLiteral()
	// tokens: one of [IntValue], [RealValue], [TimeValue], or
	// [StringValue].
	Value any

	Leading, Trailing []Trivia

	// Synthetic is set for a token the parser inserted during error
	// recovery rather than one that came from the lexer.
	Synthetic bool
	// Missing is set alongside Synthetic for a token that stands in for
	// one the parser expected but did not find, as opposed to one it
	// invented to smooth over a different kind of error.
	Missing bool
}

// String implements fmt.Stringer.
func (t Token) String() string {
	if t.Kind == Keyword {
		return fmt.Sprintf("%v(%v)", t.Kind, t.Keyword)
	}
	return fmt.Sprintf("%v(%q)", t.Kind, t.Text)
}

// Is reports whether t is a [Keyword] token spelling kw.
func (t Token) Is(kw keyword.Keyword) bool {
	return t.Kind == Keyword && t.Keyword == kw
}

// FullText returns the token's text with all of its leading and trailing
// trivia reattached, i.e. exactly the source text it was lexed from.
func (t Token) FullText() string {
	var buf []byte
	for _, tr := range t.Leading {
		buf = append(buf, tr.Text...)
	}
	buf = append(buf, t.Text...)
	for _, tr := range t.Trailing {
		buf = append(buf, tr.Text...)
	}
	return string(buf)
}

// Synth constructs a synthetic token of the given kind and text, used by
// the parser's error recovery to stand in for a token that should have
// been present .
func Synth(kind Kind, text string, at source.Location) Token {
	return Token{
		Kind:      kind,
		Text:      text,
		Range:     source.Range{Start: at, End: at},
		Synthetic: true,
		Missing:   true,
	}
}

// SynthKeyword is like [Synth], but for a missing keyword or punctuation
// token.
func SynthKeyword(kw keyword.Keyword, at source.Location) Token {
	return Token{
		Kind:      Keyword,
		Keyword:   kw,
		Text:      kw.String(),
		Range:     source.Range{Start: at, End: at},
		Synthetic: true,
		Missing:   true,
	}
}
