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

package report

// Diagnostic codes raised by the source manager .
const (
	CodeIoError      Code = "IoError"
	CodeNotFound     Code = "NotFound"
	CodeIncludeDepth Code = "IncludeDepth"
)

// Diagnostic codes raised by the lexer .
const (
	CodeUnknownToken             Code = "UnknownToken"
	CodeUnterminatedBlockComment Code = "UnterminatedBlockComment"
	CodeUnterminatedString       Code = "UnterminatedString"
	CodeUnterminatedNumber       Code = "UnterminatedNumber"
	CodeMissingFractionalDigits  Code = "MissingFractionalDigits"
	CodeInvalidLiteralDigit      Code = "InvalidLiteralDigit"
)

// Diagnostic codes raised by the preprocessor .
const (
	CodeUnknownDirective          Code = "UnknownDirective"
	CodeUnterminatedArgumentList  Code = "UnterminatedArgumentList"
	CodeWrongMacroArgCount        Code = "WrongMacroArgCount"
	CodeMacroRedefinition         Code = "MacroRedefinition"
	CodeUndefinedMacro            Code = "UndefinedMacro"
	CodeMacroPasteFailed          Code = "MacroPasteFailed"
	CodeUnterminatedConditional   Code = "UnterminatedConditional"
	CodeElseWithoutIf             Code = "ElseWithoutIf"
	CodeMismatchedTimeScales      Code = "MismatchedTimeScales"
	CodeMalformedTimescale        Code = "MalformedTimescale"
	CodeIncludeNotFound           Code = "IncludeNotFound"
)

// Diagnostic codes raised by the parser .
const (
	CodeExpectedToken  Code = "ExpectedToken"
	CodeUnexpectedTok  Code = "UnexpectedToken"
	CodeSkippedTokens  Code = "SkippedTokens"
)

// Diagnostic codes raised by the symbol/elaboration layer .
const (
	CodeRecursiveDefinition        Code = "RecursiveDefinition"
	CodePortDeclInANSIModule       Code = "PortDeclInANSIModule"
	CodeMissingPortDecl            Code = "MissingPortDecl"
	CodeDuplicatePortDecl          Code = "DuplicatePortDecl"
	CodeMultipleDefaultInputSkew   Code = "MultipleDefaultInputSkew"
	CodeMultipleDefaultOutputSkew  Code = "MultipleDefaultOutputSkew"
	CodeAutomaticNotAllowed        Code = "AutomaticNotAllowed"
	CodeStaticInitializerMustBeExplicit Code = "StaticInitializerMustBeExplicit"
	CodeConstVarNoInitializer      Code = "ConstVarNoInitializer"
	CodeUnsupportedUdpPortList     Code = "UnsupportedUdpPortList"
	CodeExpectedLValue             Code = "ExpectedLValue"
	CodeInvalidUdpOutputInitializer Code = "InvalidUdpOutputInitializer"
	CodeUdpMissingOutput           Code = "UdpMissingOutput"
	CodeUdpMultipleOutputs         Code = "UdpMultipleOutputs"
	CodeUdpInitialOnCombinational  Code = "UdpInitialOnCombinational"
	CodeNameNotFound               Code = "NameNotFound"
	CodeAmbiguousImport            Code = "AmbiguousImport"
	CodeLocalOutputNotAllowed      Code = "LocalOutputNotAllowed"
	CodeSequenceTypeRequired       Code = "SequenceTypeRequired"
	CodeDefaultOnDirectionalLocal  Code = "DefaultOnDirectionalLocal"
	CodeStaticAssertFailed         Code = "StaticAssertFailed"
)
