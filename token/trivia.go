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

import "github.com/svlang/svfront/source"

// TriviaKind identifies what kind of non-semantic text a [Trivia] value
// carries: whitespace, comments, skipped tokens, or disabled text
// attached to tokens.
type TriviaKind int8

const (
	Whitespace TriviaKind = iota
	LineComment
	BlockComment
	// SkippedToken wraps text the lexer or parser could not make sense of
	// during error recovery; it is preserved so printing still round-trips.
	SkippedToken
	// DisabledText is source disabled by a false `ifdef/`ifndef branch.
	// The preprocessor still has to walk it (for nested conditionals) but
	// none of it is lexed as code.
	DisabledText
)

// Trivia is a single run of non-semantic text attached to a [Token].
type Trivia struct {
	Kind  TriviaKind
	Range source.Range
	Text  string
}
