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

// Package keyword enumerates the reserved words and punctuation of the
// grammar surface this front-end implements (module,
// package, interface, and program declarations; ports and parameters;
// data and net declarations; continuous assigns and instances; nettype
// and modports; clocking blocks; sequence, property, and let
// declarations; randsequence; UDP primitives; timeunit/timeprecision;
// and the constant-evaluation-capable expression grammar).
package keyword

import (
	"fmt"

	"github.com/svlang/svfront/internal/trie"
)

// Keyword identifies a reserved word or a piece of punctuation.
type Keyword int32

const (
	Unknown Keyword = iota

	// Module/interface/program/package structure.
	Module
	EndModule
	Interface
	EndInterface
	Program
	EndProgram
	Package
	EndPackage
	Primitive
	EndPrimitive
	Class
	EndClass
	Extern
	Import
	Export

	// Ports and directions.
	Input
	Output
	Inout
	Ref

	// Storage/lifetime and net/variable declarations.
	Parameter
	LocalParam
	Genvar
	Wire
	Wand
	Wor
	Tri
	Tri0
	Tri1
	Supply0
	Supply1
	Uwire
	Reg
	Logic
	Bit
	Byte
	ShortInt
	Int
	LongInt
	Integer
	Time
	Real
	ShortReal
	RealTime
	String
	Chandle
	Event
	Void
	Automatic
	Static
	Const
	Var
	Signed
	Unsigned
	Nettype

	// Aggregate types.
	Struct
	Union
	Enum
	Typedef
	Packed
	Unpacked

	// Procedural constructs.
	Always
	AlwaysComb
	AlwaysFF
	AlwaysLatch
	Initial
	Final
	Assign
	Deassign
	Force
	Release
	Begin
	End
	Fork
	Join
	JoinAny
	JoinNone
	If
	Else
	Case
	Casex
	Casez
	EndCase
	Default
	For
	While
	Do
	Repeat
	Forever
	Return
	Break
	Continue
	Function
	EndFunction
	Task
	EndTask

	// Generate.
	Generate
	EndGenerate

	// Instances.
	Posedge
	Negedge
	Edge

	// Modports/clocking.
	Modport
	Clocking
	EndClocking
	Global
	Skew

	// Assertions.
	Assert
	Assume
	Cover
	Property
	EndProperty
	Sequence
	EndSequence
	Let
	RandSequence
	Disable
	Iff

	// UDP primitives.
	Table
	EndTable

	// Timescale.
	Timeunit
	Timeprecision

	// Elaboration system tasks.
	SysFatal
	SysError
	SysWarning
	SysInfo

	// Literals/values.
	True
	False
	Null
	This
	Super
	New

	// Punctuation and operators.
	Semi
	Comma
	Dot
	DotStar
	Colon
	ColonColon
	Hash
	HashHash
	At
	AtAt
	Eq
	PlusEq
	MinusEq
	StarEq
	SlashEq
	Plus
	Minus
	Star
	StarStar
	Slash
	Percent
	Bang
	Tilde
	Amp
	AmpAmp
	AmpAmpAmp
	Pipe
	PipePipe
	Caret
	CaretTilde
	TildeCaret
	TildeAmp
	TildePipe
	Question
	Less
	Greater
	LessEq
	GreaterEq
	EqEq
	BangEq
	EqEqEq
	BangEqEq
	EqEqQuestion
	BangEqQuestion
	LessLess
	GreaterGreater
	LessLessLess
	GreaterGreaterGreater
	Arrow
	ArrowArrow
	Apostrophe
	Dollar
	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket

	numKeywords
)

type property uint8

const (
	word property = 1 << iota
	punct
)

var names = [numKeywords]string{
	Module: "module", EndModule: "endmodule",
	Interface: "interface", EndInterface: "endinterface",
	Program: "program", EndProgram: "endprogram",
	Package: "package", EndPackage: "endpackage",
	Primitive: "primitive", EndPrimitive: "endprimitive",
	Class: "class", EndClass: "endclass",
	Extern: "extern", Import: "import", Export: "export",

	Input: "input", Output: "output", Inout: "inout", Ref: "ref",

	Parameter: "parameter", LocalParam: "localparam", Genvar: "genvar",
	Wire: "wire", Wand: "wand", Wor: "wor",
	Tri: "tri", Tri0: "tri0", Tri1: "tri1",
	Supply0: "supply0", Supply1: "supply1", Uwire: "uwire",
	Reg: "reg", Logic: "logic", Bit: "bit", Byte: "byte",
	ShortInt: "shortint", Int: "int", LongInt: "longint", Integer: "integer",
	Time: "time", Real: "real", ShortReal: "shortreal", RealTime: "realtime",
	String: "string", Chandle: "chandle", Event: "event", Void: "void",
	Automatic: "automatic", Static: "static", Const: "const", Var: "var",
	Signed: "signed", Unsigned: "unsigned", Nettype: "nettype",

	Struct: "struct", Union: "union", Enum: "enum", Typedef: "typedef",
	Packed: "packed", Unpacked: "unpacked",

	Always: "always", AlwaysComb: "always_comb", AlwaysFF: "always_ff",
	AlwaysLatch: "always_latch", Initial: "initial", Final: "final",
	Assign: "assign", Deassign: "deassign", Force: "force", Release: "release",
	Begin: "begin", End: "end", Fork: "fork", Join: "join",
	JoinAny: "join_any", JoinNone: "join_none",
	If: "if", Else: "else",
	Case: "case", Casex: "casex", Casez: "casez", EndCase: "endcase",
	Default: "default",
	For:     "for", While: "while", Do: "do", Repeat: "repeat", Forever: "forever",
	Return: "return", Break: "break", Continue: "continue",
	Function: "function", EndFunction: "endfunction",
	Task: "task", EndTask: "endtask",

	Generate: "generate", EndGenerate: "endgenerate",

	Posedge: "posedge", Negedge: "negedge", Edge: "edge",

	Modport: "modport", Clocking: "clocking", EndClocking: "endclocking",
	Global: "global", Skew: "skew",

	Assert: "assert", Assume: "assume", Cover: "cover",
	Property: "property", EndProperty: "endproperty",
	Sequence: "sequence", EndSequence: "endsequence",
	Let: "let", RandSequence: "randsequence",
	Disable: "disable", Iff: "iff",

	Table: "table", EndTable: "endtable",

	Timeunit: "timeunit", Timeprecision: "timeprecision",

	SysFatal: "$fatal", SysError: "$error", SysWarning: "$warning", SysInfo: "$info",

	True: "true", False: "false", Null: "null", This: "this", Super: "super", New: "new",

	Semi: ";", Comma: ",", Dot: ".", DotStar: ".*",
	Colon: ":", ColonColon: "::", Hash: "#", HashHash: "##",
	At: "@", AtAt: "@@",
	Eq: "=", PlusEq: "+=", MinusEq: "-=", StarEq: "*=", SlashEq: "/=",
	Plus: "+", Minus: "-", Star: "*", StarStar: "**", Slash: "/", Percent: "%",
	Bang: "!", Tilde: "~",
	Amp: "&", AmpAmp: "&&", AmpAmpAmp: "&&&",
	Pipe: "|", PipePipe: "||",
	Caret: "^", CaretTilde: "^~", TildeCaret: "~^", TildeAmp: "~&", TildePipe: "~|",
	Question: "?",
	Less:     "<", Greater: ">", LessEq: "<=", GreaterEq: ">=",
	EqEq: "==", BangEq: "!=", EqEqEq: "===", BangEqEq: "!==",
	EqEqQuestion: "==?", BangEqQuestion: "!=?",
	LessLess: "<<", GreaterGreater: ">>", LessLessLess: "<<<", GreaterGreaterGreater: ">>>",
	Arrow: "->", ArrowArrow: "->>",
	Apostrophe: "'", Dollar: "$",
	LParen: "(", RParen: ")", LBrace: "{", RBrace: "}", LBracket: "[", RBracket: "]",
}

var properties [numKeywords]property

func init() {
	for kw, name := range names {
		if name == "" {
			continue
		}
		if name[0] == '$' || (name[0] >= 'a' && name[0] <= 'z') {
			properties[kw] = word
		} else {
			properties[kw] = punct
		}
	}
}

// String implements fmt.Stringer, returning the keyword's spelling.
func (k Keyword) String() string {
	if k <= Unknown || int(k) >= len(names) {
		return fmt.Sprintf("keyword.Keyword(%d)", int(k))
	}
	return names[k]
}

// IsValid reports whether k is a known keyword.
func (k Keyword) IsValid() bool { return k > Unknown && int(k) < len(names) && names[k] != "" }

// IsWord reports whether k is a reserved word (as opposed to punctuation).
func (k Keyword) IsWord() bool { return k.IsValid() && properties[k]&word != 0 }

// IsPunct reports whether k is punctuation or an operator.
func (k Keyword) IsPunct() bool { return k.IsValid() && properties[k]&punct != 0 }

var (
	wordTrie  *trie.Trie[Keyword]
	punctTrie *trie.Trie[Keyword]
)

func init() {
	wordTrie = new(trie.Trie[Keyword])
	punctTrie = new(trie.Trie[Keyword])
	for kw, name := range names {
		if name == "" {
			continue
		}
		if properties[kw]&word != 0 {
			wordTrie.Insert(name, Keyword(kw))
		} else {
			punctTrie.Insert(name, Keyword(kw))
		}
	}
}

// LookupWord returns the keyword matching text exactly, if text is a
// reserved word. Used by the lexer once it has already scanned a full
// identifier, to decide whether it names a keyword instead.
func LookupWord(text string) (Keyword, bool) {
	prefix, kw := wordTrie.Get(text)
	if prefix != text {
		return Unknown, false
	}
	return kw, true
}

// PunctPrefix returns the longest punctuation/operator keyword that is a
// prefix of text, used by the lexer's maximal-munch scan over operator
// characters.
func PunctPrefix(text string) Keyword {
	_, kw := punctTrie.Get(text)
	return kw
}
