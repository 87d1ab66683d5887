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

package lexer

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/svlang/svfront/report"
	"github.com/svlang/svfront/token"
)

func isBaseLetter(r rune) bool {
	switch r {
	case 'b', 'B', 'o', 'O', 'd', 'D', 'h', 'H':
		return true
	default:
		return false
	}
}

func isUnbasedDigit(r rune) bool {
	switch r {
	case '0', '1', 'x', 'X', 'z', 'Z':
		return true
	default:
		return false
	}
}

// is4StateDigit reports whether r is a legal digit for base, including the
// don't-care digits x/X/z/Z/? .
func is4StateDigit(r rune, base byte) bool {
	if r == 'x' || r == 'X' || r == 'z' || r == 'Z' || r == '?' || r == '_' || r == '-' {
		return true
	}
	switch base {
	case 'b', 'B':
		return r == '0' || r == '1'
	case 'o', 'O':
		return r >= '0' && r <= '7'
	case 'h', 'H':
		return unicode.IsDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
	default: // decimal
		return unicode.IsDigit(r)
	}
}

// takeDigits consumes a run of decimal digits and underscore separators
// .
func (l *Lexer) takeDigits() string {
	return l.takeWhile(func(r rune) bool { return unicode.IsDigit(r) || r == '_' })
}

func stripUnderscores(s string) string { return strings.ReplaceAll(s, "_", "") }

var timeUnits = []string{"fs", "ps", "ns", "us", "ms", "s"}

// matchTimeUnit consumes one of the SystemVerilog time units if the
// cursor is at one and it is not itself the start of a longer identifier
// (so that "1ns" is a time literal but "1nsx" is a decimal number
// immediately followed by an identifier, a lexer error either way but not
// one we should misclassify).
func (l *Lexer) matchTimeUnit() (string, bool) {
	for _, unit := range timeUnits {
		if strings.HasPrefix(l.rest(), unit) {
			after := l.rest()[len(unit):]
			if after != "" && isIdentCont(rune(after[0])) {
				continue
			}
			l.cursor += len(unit)
			return unit, true
		}
	}
	return "", false
}

// lexNumber scans a decimal integer, a based/unbased-unsized vector
// literal preceded by a size, a real literal, or a time literal — they
// all begin with a run of decimal digits so share one entry point.
func (l *Lexer) lexNumber() (token.Token, bool) {
	start := l.cursor
	intPart := l.takeDigits()

	if l.peek() == '\'' {
		return l.lexBasedInt(start, intPart)
	}

	fracPart := ""
	isReal := false
	missingFrac := false
	if l.peek() == '.' {
		save := l.cursor
		l.pop()
		if unicode.IsDigit(l.peek()) {
			fracPart = l.takeDigits()
			isReal = true
		} else {
			// "1." with nothing after the point: still a real literal, with
			// MissingFractionalDigits set, whatever follows the point; the
			// dot is always consumed as part of the number.
			isReal = true
			missingFrac = true
			l.cursor = save + 1
		}
	}

	if r := l.peek(); r == 'e' || r == 'E' {
		save := l.cursor
		l.pop()
		if l.peek() == '+' || l.peek() == '-' {
			l.pop()
		}
		if exp := l.takeDigits(); exp != "" {
			isReal = true
		} else {
			l.cursor = save
		}
	}

	if isReal {
		if missingFrac {
			l.report.Errorf(report.CodeMissingFractionalDigits, l.rangeFrom(start), "missing digits after decimal point")
		}
		text := l.text[start:l.cursor]
		clean := stripUnderscores(text)
		f, _ := strconv.ParseFloat(clean, 64)
		return token.Token{
			Kind: token.RealLiteral,
			Text: text,
			Value: token.RealValue{
				Value:                   f,
				MissingFractionalDigits: missingFrac,
			},
		}, true
	}

	if unit, ok := l.matchTimeUnit(); ok {
		clean := stripUnderscores(intPart)
		f, _ := strconv.ParseFloat(clean, 64)
		return token.Token{
			Kind:  token.TimeLiteral,
			Text:  l.text[start:l.cursor],
			Value: token.TimeValue{Value: f, Unit: unit},
		}, true
	}

	clean := stripUnderscores(intPart)
	v, _ := strconv.ParseUint(clean, 10, 64)
	return token.Token{
		Kind: token.IntLiteral,
		Text: l.text[start:l.cursor],
		Value: token.IntValue{
			Width:  -1,
			Base:   0,
			Digits: clean,
			Value:  v,
		},
	}, true
}

// lexBasedInt scans the "'[s]<base><digits>" tail of a based vector
// literal, with sizeText (possibly empty) already consumed ahead of it.
func (l *Lexer) lexBasedInt(start int, sizeText string) (token.Token, bool) {
	l.pop() // '\''

	signed := false
	if l.peek() == 's' || l.peek() == 'S' {
		signed = true
		l.pop()
	}

	base := byte('d')
	if isBaseLetter(l.peek()) {
		base = byte(unicode.ToLower(l.peek()))
		l.pop()
	}

	digitsStart := l.cursor
	l.takeWhile(func(r rune) bool { return is4StateDigit(r, base) })
	digits := stripUnderscores(l.text[digitsStart:l.cursor])

	width := -1
	if sizeText != "" {
		if w, err := strconv.Atoi(stripUnderscores(sizeText)); err == nil {
			width = w
		}
	}

	hasUnknown := strings.ContainsAny(digits, "xXzZ?")
	var value uint64
	if !hasUnknown && digits != "" {
		switch base {
		case 'b':
			value, _ = strconv.ParseUint(digits, 2, 64)
		case 'o':
			value, _ = strconv.ParseUint(digits, 8, 64)
		case 'h':
			value, _ = strconv.ParseUint(digits, 16, 64)
		default:
			value, _ = strconv.ParseUint(digits, 10, 64)
		}
	}

	return token.Token{
		Kind: token.IntLiteral,
		Text: l.text[start:l.cursor],
		Value: token.IntValue{
			Width:      width,
			Signed:     signed,
			Base:       base,
			Digits:     digits,
			Value:      value,
			HasUnknown: hasUnknown,
		},
	}, true
}

// lexUnbasedUnsized scans 'X style unbased unsized literals: '0, '1, 'x, 'z.
func (l *Lexer) lexUnbasedUnsized() (token.Token, bool) {
	start := l.cursor
	l.pop() // '\''
	digit := l.pop()

	hasUnknown := digit == 'x' || digit == 'X' || digit == 'z' || digit == 'Z'
	var value uint64
	if digit == '1' {
		value = 1
	}

	return token.Token{
		Kind: token.UnbasedUnsizedLiteral,
		Text: l.text[start:l.cursor],
		Value: token.IntValue{
			Width:      -1,
			Base:       0,
			Digits:     string(digit),
			Value:      value,
			HasUnknown: hasUnknown,
		},
	}, true
}
