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

	"github.com/svlang/svfront/report"
	"github.com/svlang/svfront/token"
)

// lexString scans a double-quoted string literal, resolving its escape
// sequences into the token's decoded [token.StringValue].
func (l *Lexer) lexString() (token.Token, bool) {
	start := l.cursor
	l.pop() // opening quote

	var decoded strings.Builder
	closed := false
loop:
	for !l.done() {
		switch r := l.peek(); {
		case r == '"':
			l.pop()
			closed = true
			break loop
		case r == '\n':
			// Bare newlines are not allowed inside a string literal; stop
			// here and report it as unterminated.
			break loop
		case r == '\\':
			l.pop()
			l.decodeEscape(&decoded)
		default:
			l.pop()
			decoded.WriteRune(r)
		}
	}

	if !closed {
		l.report.Errorf(report.CodeUnterminatedString, l.rangeFrom(start), "unterminated string literal")
	}

	return token.Token{
		Kind:  token.StringLiteral,
		Text:  l.text[start:l.cursor],
		Value: token.StringValue{Value: decoded.String()},
	}, true
}

func (l *Lexer) decodeEscape(out *strings.Builder) {
	r := l.pop()
	switch r {
	case 'n':
		out.WriteByte('\n')
	case 't':
		out.WriteByte('\t')
	case '\\':
		out.WriteByte('\\')
	case '"':
		out.WriteByte('"')
	case 'a':
		out.WriteByte('\a')
	case 'f':
		out.WriteByte('\f')
	case 'v':
		out.WriteByte('\v')
	case '\n':
		// Line continuation: the newline is elided from the decoded value.
	case 'x':
		hex := l.takeHex(2)
		if n, err := strconv.ParseUint(hex, 16, 8); err == nil {
			out.WriteByte(byte(n))
		}
	case '0', '1', '2', '3', '4', '5', '6', '7':
		digits := string(r)
		for i := 0; i < 2 && isOctalDigit(l.peek()); i++ {
			digits += string(l.pop())
		}
		if n, err := strconv.ParseUint(digits, 8, 8); err == nil {
			out.WriteByte(byte(n))
		}
	default:
		// Unknown escape: SystemVerilog leaves the backslash in place.
		out.WriteByte('\\')
		if r != -1 {
			out.WriteRune(r)
		}
	}
}

func (l *Lexer) takeHex(max int) string {
	var s strings.Builder
	for i := 0; i < max && isHexDigit(l.peek()); i++ {
		s.WriteRune(l.pop())
	}
	return s.String()
}

func isOctalDigit(r rune) bool { return r >= '0' && r <= '7' }

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
