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

// Package token implements the lexical token type : a lossless
// concrete-syntax-tree leaf carrying its own leading and trailing trivia,
// so that printing a token stream reconstructs the original source text
// exactly.
package token

import "fmt"

// Kind identifies the lexical category of a [Token].
type Kind int8

const (
	Invalid Kind = iota
	EOF

	Ident         // A plain identifier.
	EscapedIdent  // \foo -- an escaped identifier, terminated by whitespace.
	SystemIdent   // $foo -- a system task/function/identifier.
	Keyword       // A reserved word or piece of punctuation; see [Token.Keyword].
	Directive     // A `foo compiler directive name, including the backtick.

	IntLiteral            // A based or unbased sized/unsized integer literal.
	UnbasedUnsizedLiteral // '0, '1, 'x, 'z.
	RealLiteral           // A real (floating-point) literal.
	TimeLiteral           // A number with a time unit suffix (1.5ns).
	StringLiteral         // A double-quoted string literal.

	numKinds
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Ident:
		return "Ident"
	case EscapedIdent:
		return "EscapedIdent"
	case SystemIdent:
		return "SystemIdent"
	case Keyword:
		return "Keyword"
	case Directive:
		return "Directive"
	case IntLiteral:
		return "IntLiteral"
	case UnbasedUnsizedLiteral:
		return "UnbasedUnsizedLiteral"
	case RealLiteral:
		return "RealLiteral"
	case TimeLiteral:
		return "TimeLiteral"
	case StringLiteral:
		return "StringLiteral"
	default:
		return fmt.Sprintf("token.Kind(%d)", int(k))
	}
}

// IsLiteral reports whether k is one of the literal kinds carrying a
// decoded [Token.Value].
func (k Kind) IsLiteral() bool {
	switch k {
	case IntLiteral, UnbasedUnsizedLiteral, RealLiteral, TimeLiteral, StringLiteral:
		return true
	default:
		return false
	}
}
