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

// Package syntax implements the concrete syntax tree : a
// discriminated-variant node type with generic child iteration, parent
// back-links, a bottom-up rewriter, and a lossless printer.
package syntax

import "fmt"

// Kind discriminates a [Node]'s grammar production.
type Kind uint16

const (
	Invalid Kind = iota

	// Token is a leaf node wrapping exactly one [token.Token]. Every other
	// kind is an interior node with only [Node] children.
	Token

	// List is a generic homogeneous or separated list wrapper: module/
	// interface member lists, statement lists inside a block, case-item
	// lists, argument lists, and so on all use it rather than each having
	// their own list kind, since the list flavor itself is carried by the
	// parser's construction, not
	// by a proliferation of Kind values.
	List

	File

	ModuleDecl
	InterfaceDecl
	ProgramDecl
	PackageDecl
	PrimitiveDecl

	ParamPortList
	ParamDecl
	PortList
	AnsiPort
	NonAnsiPort

	DataDecl
	NetDecl
	Declarator
	PackedDim

	ContinuousAssign
	AssignItem

	InstanceDecl
	InstanceItem
	PortConnection

	NettypeDecl
	ImportDecl

	ModportDecl
	ModportItem
	ModportSimplePort
	ModportExplicitPort

	ClockingDecl
	ClockingItem
	ClockingSkew

	SequenceDecl
	PropertyDecl
	LetDecl
	AssertionPort

	RandSequenceDecl
	RandSequenceProduction
	RandSequenceRule

	TimeunitDecl
	TimeprecisionDecl

	ElabSystemTask
	EmptyMember

	UdpBody
	UdpPortDecl
	UdpInitial
	UdpTable

	ProceduralBlock
	Block
	IfStmt
	CaseStmt
	CaseItem
	ForStmt
	WhileStmt
	DoWhileStmt
	ForeverStmt
	RepeatStmt
	BlockingAssignStmt
	NonblockingAssignStmt
	ExprStmt
	DisableStmt
	EventControl

	DataType

	IdentExpr
	LiteralExpr
	UnaryExpr
	BinaryExpr
	TernaryExpr
	ParenExpr
	CallExpr
	IndexExpr
	RangeExpr
	ConcatExpr
	ReplicationExpr
	CastExpr

	ErrorNode

	numKinds
)

var kindNames = [numKinds]string{
	Invalid: "Invalid", Token: "Token", List: "List", File: "File",
	ModuleDecl: "ModuleDecl", InterfaceDecl: "InterfaceDecl", ProgramDecl: "ProgramDecl",
	PackageDecl: "PackageDecl", PrimitiveDecl: "PrimitiveDecl",
	ParamPortList: "ParamPortList", ParamDecl: "ParamDecl",
	PortList: "PortList", AnsiPort: "AnsiPort", NonAnsiPort: "NonAnsiPort",
	DataDecl: "DataDecl", NetDecl: "NetDecl", Declarator: "Declarator", PackedDim: "PackedDim",
	ContinuousAssign: "ContinuousAssign", AssignItem: "AssignItem",
	InstanceDecl: "InstanceDecl", InstanceItem: "InstanceItem", PortConnection: "PortConnection",
	NettypeDecl: "NettypeDecl", ImportDecl: "ImportDecl",
	ModportDecl: "ModportDecl", ModportItem: "ModportItem",
	ModportSimplePort: "ModportSimplePort", ModportExplicitPort: "ModportExplicitPort",
	ClockingDecl: "ClockingDecl", ClockingItem: "ClockingItem", ClockingSkew: "ClockingSkew",
	SequenceDecl: "SequenceDecl", PropertyDecl: "PropertyDecl", LetDecl: "LetDecl",
	AssertionPort: "AssertionPort",
	RandSequenceDecl: "RandSequenceDecl", RandSequenceProduction: "RandSequenceProduction",
	RandSequenceRule: "RandSequenceRule",
	TimeunitDecl: "TimeunitDecl", TimeprecisionDecl: "TimeprecisionDecl",
	ElabSystemTask: "ElabSystemTask", EmptyMember: "EmptyMember",
	UdpBody: "UdpBody", UdpPortDecl: "UdpPortDecl", UdpInitial: "UdpInitial", UdpTable: "UdpTable",
	ProceduralBlock: "ProceduralBlock", Block: "Block",
	IfStmt: "IfStmt", CaseStmt: "CaseStmt", CaseItem: "CaseItem",
	ForStmt: "ForStmt", WhileStmt: "WhileStmt", DoWhileStmt: "DoWhileStmt",
	ForeverStmt: "ForeverStmt", RepeatStmt: "RepeatStmt",
	BlockingAssignStmt: "BlockingAssignStmt", NonblockingAssignStmt: "NonblockingAssignStmt",
	ExprStmt: "ExprStmt", DisableStmt: "DisableStmt", EventControl: "EventControl",
	DataType: "DataType",
	IdentExpr: "IdentExpr", LiteralExpr: "LiteralExpr", UnaryExpr: "UnaryExpr",
	BinaryExpr: "BinaryExpr", TernaryExpr: "TernaryExpr", ParenExpr: "ParenExpr",
	CallExpr: "CallExpr", IndexExpr: "IndexExpr", RangeExpr: "RangeExpr",
	ConcatExpr: "ConcatExpr", ReplicationExpr: "ReplicationExpr", CastExpr: "CastExpr",
	ErrorNode: "ErrorNode",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("syntax.Kind(%d)", int(k))
}
