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

package symbols

import (
	"strconv"
	"strings"

	"github.com/svlang/svfront/report"
	"github.com/svlang/svfront/source"
	"github.com/svlang/svfront/syntax"
	"github.com/svlang/svfront/token"
	"github.com/svlang/svfront/token/keyword"
)

// netTypeKeywords mirrors the parser's own net-type keyword set (the 
// "Net creation"): the elaborator has to make the same net-vs-variable
// call the parser deliberately deferred, so it needs the same vocabulary.
var netTypeKeywords = map[keyword.Keyword]bool{
	keyword.Wire: true, keyword.Wand: true, keyword.Wor: true,
	keyword.Tri: true, keyword.Tri0: true, keyword.Tri1: true,
	keyword.Supply0: true, keyword.Supply1: true, keyword.Uwire: true,
}

func loc(n *syntax.Node) source.Location { return n.Range().Start }
func rng(n *syntax.Node) source.Range    { return n.Range() }

// identText extracts an identifier's spelling whether n is the identifier
// token leaf itself (as when a caller already holds a positional child
// straight out of Children()) or an interior node with the identifier as
// a direct Token child (as [syntax.Node.Name] expects). Mixing these two
// shapes up silently returns "" (Ident/Name only search direct
// children), which is exactly the bug this helper exists to make
// impossible to write by accident.
func identText(n *syntax.Node) string {
	if n == nil {
		return ""
	}
	if n.IsToken() {
		return n.Token().Text
	}
	return n.Name()
}

// firstNonToken returns n's first child that isn't a leaf token, e.g. the
// operand wrapped inside a ParenExpr or UnaryExpr's punctuation.
func firstNonToken(n *syntax.Node) *syntax.Node {
	for _, k := range n.Children() {
		if k.Kind() != syntax.Token {
			return k
		}
	}
	return nil
}

// evalConstInt folds the constant-evaluable subset of the expression
// grammar this front end parses (the seed scenario 3: a macro-
// expanded parameter default folding to the literal 4): integer literals,
// parenthesization, and the arithmetic/bitwise-complement operators. It
// does not attempt four-state or bit-width-accurate evaluation; an
// expression involving anything outside this subset (an identifier, a
// system function call, an x/z-valued literal) simply fails to fold.
func evalConstInt(n *syntax.Node) (int64, bool) {
	if n == nil {
		return 0, false
	}
	switch n.Kind() {
	case syntax.LiteralExpr:
		tokNode := n.Child(syntax.Token)
		if tokNode == nil {
			return 0, false
		}
		if iv, ok := tokNode.Token().Value.(token.IntValue); ok && !iv.HasUnknown {
			return int64(iv.Value), true
		}
		return 0, false
	case syntax.ParenExpr:
		return evalConstInt(firstNonToken(n))
	case syntax.UnaryExpr:
		kids := n.Children()
		if len(kids) != 2 {
			return 0, false
		}
		v, ok := evalConstInt(kids[1])
		if !ok {
			return 0, false
		}
		switch kids[0].Token().Keyword {
		case keyword.Minus:
			return -v, true
		case keyword.Plus:
			return v, true
		case keyword.Tilde:
			return ^v, true
		default:
			return 0, false
		}
	case syntax.BinaryExpr:
		kids := n.Children()
		if len(kids) != 3 {
			return 0, false
		}
		lhs, ok1 := evalConstInt(kids[0])
		rhs, ok2 := evalConstInt(kids[2])
		if !ok1 || !ok2 {
			return 0, false
		}
		switch kids[1].Token().Keyword {
		case keyword.Plus:
			return lhs + rhs, true
		case keyword.Minus:
			return lhs - rhs, true
		case keyword.Star:
			return lhs * rhs, true
		case keyword.Slash:
			if rhs == 0 {
				return 0, false
			}
			return lhs / rhs, true
		case keyword.Percent:
			if rhs == 0 {
				return 0, false
			}
			return lhs % rhs, true
		default:
			return 0, false
		}
	default:
		return 0, false
	}
}

// bindInitializer records decl's `= expr` tail (if any) on dt.
func bindInitializer(dt *DeclaredType, decl *syntax.Node) {
	if decl == nil {
		return
	}
	kids := decl.Children()
	for i, k := range kids {
		if k.IsToken() && k.Token().Is(keyword.Eq) && i+1 < len(kids) {
			dt.SetInitializerSyntax(kids[i+1])
			return
		}
	}
}

// resolveDataType resolves a [syntax.DataType] node into an interned
// [Type]. Width is not evaluated bit-accurately (see [Type]'s doc
// comment); this only distinguishes kind, signedness, and packed-
// dimension count.
func (c *Compilation) resolveDataType(scope *Scope, n *syntax.Node) *Type {
	if n == nil {
		return c.errorType()
	}
	kids := n.Children()
	if len(kids) == 0 || !kids[0].IsToken() {
		return c.errorType()
	}
	head := kids[0].Token()
	kind := TypeBuiltin
	name := head.Text
	if head.Kind == token.Keyword {
		if netTypeKeywords[head.Keyword] {
			kind = TypeNet
		}
	} else {
		kind = TypeNamed
		if sym, ok := scope.Lookup(head.Text); ok {
			if _, isNettype := sym.(*NettypeSymbol); isNettype {
				kind = TypeNet
			}
		}
	}

	signed := false
	packedDims := 0
	for _, k := range kids[1:] {
		switch {
		case k.IsToken() && k.Token().Is(keyword.Signed):
			signed = true
		case k.Kind() == syntax.PackedDim:
			packedDims++
		}
	}
	return c.internType(Type{Kind: kind, Name: name, Signed: signed, PackedDims: packedDims})
}

func isNetTypeNode(dt *syntax.Node) bool {
	if dt == nil {
		return false
	}
	kids := dt.Children()
	return len(kids) > 0 && kids[0].IsToken() && kids[0].Token().Kind == token.Keyword && netTypeKeywords[kids[0].Token().Keyword]
}

// elaborateTopLevelItem dispatches one compilation-unit-level declaration
// .
func (c *Compilation) elaborateTopLevelItem(n *syntax.Node) {
	switch n.Kind() {
	case syntax.ModuleDecl:
		c.elaborateDefinition(n, Module)
	case syntax.InterfaceDecl:
		c.elaborateDefinition(n, Interface)
	case syntax.ProgramDecl:
		c.elaborateDefinition(n, Program)
	case syntax.PackageDecl:
		c.elaboratePackage(n)
	case syntax.PrimitiveDecl:
		c.elaborateUdpDefinition(n)
	}
}

func (c *Compilation) elaboratePackage(n *syntax.Node) *PackageSymbol {
	name := identText(n)
	pkg := allocIn(&c.arenas.packages, PackageSymbol{
		symbolBase: symbolBase{name: name, kind: Package, loc: loc(n)},
	})
	pkg.scope = newScope(c, pkg, c.root)
	c.root.addMember(pkg)
	c.packages[name] = pkg

	if members := n.Child(syntax.List); members != nil {
		for _, m := range members.Children() {
			c.elaborateMember(pkg.scope, m, nil)
		}
	}
	return pkg
}

// elaborateDefinition registers a module/interface/program's name and
// port-list classification without walking its members: member
// elaboration is deferred to [Compilation.elaborateInstanceBody] since a
// port's resolved type can depend on a parameter override that isn't
// known until instantiation .
func (c *Compilation) elaborateDefinition(n *syntax.Node, kind Kind) *DefinitionSymbol {
	name := identText(n)
	def := allocIn(&c.arenas.definitions, DefinitionSymbol{
		symbolBase: symbolBase{name: name, kind: kind, loc: loc(n)},
	})
	def.Ports = &ParsedPorts{}
	if ports := n.Child(syntax.PortList); ports != nil {
		def.Ports.IsAnsi = c.classifyPortList(ports)
	} else {
		def.Ports.IsAnsi = true
	}
	c.defSyntax[def] = n
	c.root.addMember(def)
	c.definitions[name] = def
	return def
}

// classifyPortList decides whether a port list is ANSI-style: a list is
// ANSI if any entry carries an explicit direction or type beyond a bare
// declarator, since the parser itself tags every entry
// [syntax.AnsiPort] regardless of shape -- a bare name has exactly one
// child, the [syntax.Declarator]; anything more means a direction and/or
// type token preceded it). A list where every entry is bare is genuine
// non-ANSI style: directions and types come from matching
// [syntax.NonAnsiPort] members instead.
func (c *Compilation) classifyPortList(ports *syntax.Node) bool {
	list := ports.Child(syntax.List)
	if list == nil {
		return true
	}
	for _, e := range list.ChildrenOf(syntax.AnsiPort) {
		if len(e.Children()) > 1 {
			return true
		}
	}
	return false
}

func portDirection(e *syntax.Node) (Direction, bool) {
	for _, kw := range [...]keyword.Keyword{keyword.Input, keyword.Output, keyword.Inout, keyword.Ref} {
		if e.Keyword(kw) != nil {
			return kw, true
		}
	}
	return keyword.Unknown, false
}

// portInfo tracks one non-ANSI port list entry waiting for a matching
// direction declaration among the definition's members.
type portInfo struct {
	name      string
	node      *syntax.Node
	satisfied bool
}

// portCtx threads port-list state from [Compilation.elaboratePorts]
// through the member loop so a [syntax.NonAnsiPort] member can be
// checked against it (the [report.CodePortDeclInANSIModule],
// [report.CodeMissingPortDecl]).
type portCtx struct {
	pending   map[string]*portInfo // non-nil only for a genuinely non-ANSI list
	ansiNames map[string]bool      // non-nil only for an ANSI list
}

func (c *Compilation) addPortSymbol(scope *Scope, name string, dir Direction, dt *syntax.Node, decl *syntax.Node, at *syntax.Node) {
	_ = dir // direction is not yet surfaced on VariableSymbol/NetSymbol; retained for future modport binding
	if isNetTypeNode(dt) {
		netTypeName := ""
		if kids := dt.Children(); len(kids) > 0 {
			netTypeName = kids[0].Token().Text
		}
		sym := allocIn(&c.arenas.nets, NetSymbol{
			symbolBase:  symbolBase{name: name, kind: Net, loc: loc(at)},
			NetTypeName: netTypeName,
		})
		sym.declaredType = NewDeclaredType(scope, sym)
		sym.declaredType.SetTypeSyntax(dt)
		bindInitializer(sym.declaredType, decl)
		scope.addMember(sym)
		return
	}
	if dt == nil {
		sym := allocIn(&c.arenas.nets, NetSymbol{
			symbolBase:  symbolBase{name: name, kind: Net, loc: loc(at)},
			NetTypeName: c.defaultNettype,
			Implicit:    true,
		})
		scope.addMember(sym)
		return
	}
	sym := allocIn(&c.arenas.variables, VariableSymbol{
		symbolBase: symbolBase{name: name, kind: Variable, loc: loc(at)},
	})
	sym.declaredType = NewDeclaredType(scope, sym)
	sym.declaredType.SetTypeSyntax(dt)
	bindInitializer(sym.declaredType, decl)
	scope.addMember(sym)
}

// elaboratePorts binds a definition's port-list entries directly (ANSI
// case) or registers them as pending, to be satisfied by a matching
// [syntax.NonAnsiPort] member (non-ANSI case).
func (c *Compilation) elaboratePorts(scope *Scope, ports *syntax.Node, isAnsi bool, ctx *portCtx) {
	list := ports.Child(syntax.List)
	if list == nil {
		return
	}
	entries := list.ChildrenOf(syntax.AnsiPort)

	if !isAnsi {
		ctx.pending = make(map[string]*portInfo, len(entries))
		for _, e := range entries {
			name := identText(e.Child(syntax.Declarator))
			ctx.pending[name] = &portInfo{name: name, node: e}
		}
		return
	}

	ctx.ansiNames = make(map[string]bool, len(entries))
	var dir Direction = keyword.Input
	haveDir := false
	var lastType *syntax.Node
	for _, e := range entries {
		d, hasDir := portDirection(e)
		dt := e.Child(syntax.DataType)
		switch {
		case hasDir:
			dir, haveDir = d, true
			lastType = dt
		case haveDir:
			if dt == nil {
				dt = lastType
			}
		default:
			dir, haveDir = keyword.Input, true
		}
		decl := e.Child(syntax.Declarator)
		name := identText(decl)
		ctx.ansiNames[name] = true
		c.addPortSymbol(scope, name, dir, dt, decl, e)
	}
}

// elaborateNonAnsiPort handles a standalone `input`/`output`/`inout`/`ref`
// module member: it either satisfies a pending non-ANSI port-list entry,
// or (in an ANSI-ported definition) redeclares a name the port list
// already bound, which is exactly [report.CodePortDeclInANSIModule]'s
// seed scenario.
func (c *Compilation) elaborateNonAnsiPort(scope *Scope, n *syntax.Node, ctx *portCtx) {
	if len(n.Children()) == 0 {
		return
	}
	dirTok := n.Children()[0]
	var dir Direction
	if dirTok.IsToken() {
		dir = dirTok.Token().Keyword
	}
	dt := n.Child(syntax.DataType)
	declList := n.Child(syntax.List)
	if declList == nil {
		return
	}
	for _, decl := range declList.ChildrenOf(syntax.Declarator) {
		name := identText(decl)
		if ctx != nil && ctx.pending != nil {
			if pi, ok := ctx.pending[name]; ok {
				if pi.satisfied {
					c.rep.Errorf(report.CodeDuplicatePortDecl, rng(decl),
						"port %q already has a direction declaration", name)
					continue
				}
				pi.satisfied = true
				c.addPortSymbol(scope, name, dir, dt, decl, n)
				continue
			}
		}
		if ctx != nil && ctx.ansiNames != nil && ctx.ansiNames[name] {
			c.rep.Errorf(report.CodePortDeclInANSIModule, rng(decl),
				"port %q is already declared in the ANSI port list", name)
			continue
		}
		c.addPortSymbol(scope, name, dir, dt, decl, n)
	}
}

// elaborateMember dispatches one module/interface/program/package member
// . ctx is non-nil only inside a module/interface/program body,
// where [syntax.NonAnsiPort] members need port-list context; it is nil
// for package members, which cannot declare ports.
func (c *Compilation) elaborateMember(scope *Scope, n *syntax.Node, ctx *portCtx) {
	switch n.Kind() {
	case syntax.EmptyMember:
		sym := allocIn(&c.arenas.emptyMembers, EmptyMemberSymbol{symbolBase{kind: EmptyMember, loc: loc(n)}})
		scope.addMember(sym)
	case syntax.ParamDecl:
		c.elaborateStandaloneParamDecl(scope, n)
	case syntax.DataDecl:
		c.elaborateDataDecl(scope, n)
	case syntax.NetDecl:
		c.elaborateNetDecl(scope, n)
	case syntax.ContinuousAssign:
		c.elaborateContinuousAssign(scope, n)
	case syntax.InstanceDecl:
		c.elaborateInstanceDecl(scope, n)
	case syntax.NettypeDecl:
		c.elaborateNettypeDecl(scope, n)
	case syntax.ImportDecl:
		c.elaborateImportDecl(scope, n)
	case syntax.ModportDecl:
		c.elaborateModportDecl(scope, n)
	case syntax.ClockingDecl:
		c.elaborateClockingDecl(scope, n)
	case syntax.SequenceDecl:
		sym := allocIn(&c.arenas.sequences, SequenceSymbol{symbolBase{name: identText(n), kind: Sequence, loc: loc(n)}})
		scope.addMember(sym)
	case syntax.PropertyDecl:
		sym := allocIn(&c.arenas.properties, PropertySymbol{symbolBase{name: identText(n), kind: Property, loc: loc(n)}})
		scope.addMember(sym)
	case syntax.LetDecl:
		sym := allocIn(&c.arenas.lets, LetSymbol{symbolBase{name: identText(n), kind: Let, loc: loc(n)}})
		scope.addMember(sym)
	case syntax.RandSequenceDecl:
		c.elaborateRandSequenceDecl(scope, n)
	case syntax.TimeunitDecl, syntax.TimeprecisionDecl:
		c.elaborateTimeunitDecl(scope, n)
	case syntax.ElabSystemTask:
		sym := allocIn(&c.arenas.elabTasks, ElabSystemTaskSymbol{symbolBase{kind: ElabSystemTask, loc: loc(n)}})
		scope.addMember(sym)
	case syntax.NonAnsiPort:
		c.elaborateNonAnsiPort(scope, n, ctx)
	case syntax.ProceduralBlock:
		// Statement-body elaboration stops at genvar/generate-less scope
		// ; a procedural block contributes no named symbol.
	}
}

func (c *Compilation) elaborateStandaloneParamDecl(scope *Scope, n *syntax.Node) {
	isLocal := n.Keyword(keyword.LocalParam) != nil
	dt := n.Child(syntax.DataType)
	declList := n.Child(syntax.List)
	if declList == nil {
		return
	}
	for _, decl := range declList.ChildrenOf(syntax.Declarator) {
		name := identText(decl)
		sym := allocIn(&c.arenas.parameters, ParameterSymbol{
			symbolBase: symbolBase{name: name, kind: Parameter, loc: loc(decl)},
			IsLocal:    isLocal,
		})
		sym.declaredType = NewDeclaredType(scope, sym)
		sym.declaredType.SetTypeSyntax(dt)
		bindInitializer(sym.declaredType, decl)
		scope.addMember(sym)
	}
}

// elaborateParamDecl elaborates one entry of a parameter *port* list at
// instantiation time, recording its resolved value (an instance override
// if given, else its constant-folded default) into recordedParams for
// [instanceKey] .
func (c *Compilation) elaborateParamDecl(scope *Scope, n *syntax.Node, overrides map[string]string, recordedParams map[string]string) {
	isLocal := n.Keyword(keyword.LocalParam) != nil
	dt := n.Child(syntax.DataType)
	decl := n.Child(syntax.Declarator)
	if decl == nil {
		return
	}
	name := identText(decl)
	sym := allocIn(&c.arenas.parameters, ParameterSymbol{
		symbolBase: symbolBase{name: name, kind: Parameter, loc: loc(decl)},
		IsLocal:    isLocal,
	})
	sym.declaredType = NewDeclaredType(scope, sym)
	sym.declaredType.SetTypeSyntax(dt)
	bindInitializer(sym.declaredType, decl)
	scope.addMember(sym)

	if v, ok := overrides[name]; ok {
		recordedParams[name] = v
		return
	}
	if init := sym.declaredType.InitializerSyntax(); init != nil {
		if v, ok := evalConstInt(init); ok {
			recordedParams[name] = strconv.FormatInt(v, 10)
		}
	}
}

func lifetimeAndFlagsOf(n *syntax.Node) (VariableLifetime, VariableFlags) {
	lifetime := Static
	var flags VariableFlags
	for _, k := range n.Children() {
		if !k.IsToken() {
			continue
		}
		switch k.Token().Keyword {
		case keyword.Automatic:
			lifetime = Automatic
		case keyword.Static:
			lifetime = Static
		case keyword.Const:
			flags |= FlagConst
		}
	}
	return lifetime, flags
}

func (c *Compilation) elaborateDataDecl(scope *Scope, n *syntax.Node) {
	lifetime, flags := lifetimeAndFlagsOf(n)
	dt := n.Child(syntax.DataType)
	declList := n.Child(syntax.List)
	if declList == nil {
		return
	}
	for _, decl := range declList.ChildrenOf(syntax.Declarator) {
		name := identText(decl)
		sym := allocIn(&c.arenas.variables, VariableSymbol{
			symbolBase: symbolBase{name: name, kind: Variable, loc: loc(decl)},
			Lifetime:   lifetime,
			Flags:      flags,
		})
		sym.declaredType = NewDeclaredType(scope, sym)
		sym.declaredType.SetTypeSyntax(dt)
		bindInitializer(sym.declaredType, decl)
		if sym.IsConst() && !sym.declaredType.HasInitializer() {
			c.rep.Errorf(report.CodeConstVarNoInitializer, rng(decl),
				"const variable %q must have an initializer", name)
		}
		scope.addMember(sym)
	}
}

func (c *Compilation) elaborateNetDecl(scope *Scope, n *syntax.Node) {
	dt := n.Child(syntax.DataType)
	netTypeName := ""
	if dt != nil {
		if kids := dt.Children(); len(kids) > 0 {
			netTypeName = kids[0].Token().Text
		}
	}
	declList := n.Child(syntax.List)
	if declList == nil {
		return
	}
	for _, decl := range declList.ChildrenOf(syntax.Declarator) {
		name := identText(decl)
		sym := allocIn(&c.arenas.nets, NetSymbol{
			symbolBase:  symbolBase{name: name, kind: Net, loc: loc(decl)},
			NetTypeName: netTypeName,
		})
		sym.declaredType = NewDeclaredType(scope, sym)
		sym.declaredType.SetTypeSyntax(dt)
		bindInitializer(sym.declaredType, decl)
		scope.addMember(sym)
	}
}

// elaborateContinuousAssign implicitly declares a net for any assignment
// target that names nothing already in scope, under the active default
// nettype .
func (c *Compilation) elaborateContinuousAssign(scope *Scope, n *syntax.Node) {
	list := n.Child(syntax.List)
	if list == nil {
		return
	}
	for _, item := range list.ChildrenOf(syntax.AssignItem) {
		if kids := item.Children(); len(kids) > 0 {
			c.ensureAssignTarget(scope, kids[0])
		}
	}
}

func (c *Compilation) ensureAssignTarget(scope *Scope, lhs *syntax.Node) {
	if lhs.Kind() != syntax.IdentExpr {
		return
	}
	name := identText(lhs)
	if name == "" {
		return
	}
	if _, ok := scope.Lookup(name); ok {
		return
	}
	if c.defaultNettype == "" {
		c.rep.Errorf(report.CodeNameNotFound, rng(lhs),
			"%q is not declared and implicit nets are disabled", name)
		return
	}
	sym := allocIn(&c.arenas.nets, NetSymbol{
		symbolBase:  symbolBase{name: name, kind: Net, loc: loc(lhs)},
		NetTypeName: c.defaultNettype,
		Implicit:    true,
	})
	scope.addMember(sym)
}

// elaborateInstanceDecl elaborates every instance item of one
// `Def #(...) name(...), name2(...);` member.
func (c *Compilation) elaborateInstanceDecl(scope *Scope, n *syntax.Node) {
	typeNode := n.Child(syntax.DataType)
	if typeNode == nil {
		return
	}
	typeKids := typeNode.Children()
	if len(typeKids) == 0 || !typeKids[0].IsToken() {
		return
	}
	defName := typeKids[0].Token().Text

	// The optional paramOverrides wrapper and the mandatory instance-item
	// list are both Kind() == syntax.List, indistinguishable via Child;
	// disambiguate positionally via ChildrenOf (paramOverrides, when
	// present, is always emitted first).
	lists := n.ChildrenOf(syntax.List)
	var paramList, itemList *syntax.Node
	switch len(lists) {
	case 2:
		paramList, itemList = lists[0], lists[1]
	case 1:
		itemList = lists[0]
	default:
		return
	}

	def, ok := c.definitions[defName]
	if !ok {
		c.rep.Errorf(report.CodeNameNotFound, rng(typeNode), "unknown module or interface %q", defName)
		return
	}

	var overrides []paramOverride
	if paramList != nil {
		if inner := paramList.Child(syntax.List); inner != nil {
			idx := 0
			for _, item := range inner.Children() {
				if item.Kind() == syntax.Token {
					continue // comma separator
				}
				if ov, ok := c.resolveParamOverride(item, idx); ok {
					overrides = append(overrides, ov)
				}
				idx++
			}
		}
	}

	for _, item := range itemList.ChildrenOf(syntax.InstanceItem) {
		instName := identText(item)
		c.instantiate(def, overrides, instName, scope)
	}
}

// resolveParamOverride resolves one `#(...)` argument to a canonical
// (name, value) pair: a named override (`.p(expr)`) keys on its own name;
// a positional override keys on its ordinal position, which is a stable
// key for [instanceKey] purposes since a given argument index always maps
// to the same formal parameter for a fixed definition.
func (c *Compilation) resolveParamOverride(item *syntax.Node, idx int) (paramOverride, bool) {
	if item.Kind() == syntax.PortConnection {
		name := identText(item)
		kids := item.Children()
		if len(kids) < 4 {
			return paramOverride{}, false
		}
		val := kids[3]
		if v, ok := evalConstInt(val); ok {
			return paramOverride{name: name, value: strconv.FormatInt(v, 10)}, true
		}
		return paramOverride{name: name, value: syntax.Print(val)}, true
	}
	key := "$pos" + strconv.Itoa(idx)
	if v, ok := evalConstInt(item); ok {
		return paramOverride{name: key, value: strconv.FormatInt(v, 10)}, true
	}
	return paramOverride{name: key, value: syntax.Print(item)}, true
}

// elaborateInstanceBody elaborates def's members once for the given
// parameter overrides; [Compilation.instantiate] caches the result so
// every other instance with an identical parameterization shares it
// .
func (c *Compilation) elaborateInstanceBody(def *DefinitionSymbol, overrides []paramOverride) *InstanceBody {
	n := c.defSyntax[def]
	body := allocIn(&c.arenas.instanceBodies, InstanceBody{Definition: def, Params: map[string]string{}})
	body.scope = newScope(c, nil, c.root)
	if n == nil {
		return body
	}

	ctx := &portCtx{}
	if ports := n.Child(syntax.PortList); ports != nil {
		c.elaboratePorts(body.scope, ports, def.Ports.IsAnsi, ctx)
	}

	overrideVals := make(map[string]string, len(overrides))
	for _, o := range overrides {
		overrideVals[o.name] = o.value
	}

	if paramPorts := n.Child(syntax.ParamPortList); paramPorts != nil {
		if list := paramPorts.Child(syntax.List); list != nil {
			for i, pd := range list.ChildrenOf(syntax.ParamDecl) {
				// A positional override applies to the parameter at its index.
				if v, ok := overrideVals["$pos"+strconv.Itoa(i)]; ok {
					if name := identText(pd.Child(syntax.Declarator)); name != "" {
						overrideVals[name] = v
					}
				}
				c.elaborateParamDecl(body.scope, pd, overrideVals, body.Params)
			}
		}
	}

	if members := n.Child(syntax.List); members != nil {
		for _, m := range members.Children() {
			c.elaborateMember(body.scope, m, ctx)
		}
	}

	if !def.Ports.IsAnsi {
		for name, pi := range ctx.pending {
			if !pi.satisfied {
				c.rep.Errorf(report.CodeMissingPortDecl, rng(pi.node),
					"port %q has no direction declaration", name)
			}
		}
	}
	return body
}

func (c *Compilation) elaborateNettypeDecl(scope *Scope, n *syntax.Node) {
	name := identText(n)
	dt := n.Child(syntax.DataType)
	underlying := ""
	if dt != nil {
		if kids := dt.Children(); len(kids) > 0 {
			underlying = kids[0].Token().Text
		}
	}
	resolutionFunc := ""
	if lists := n.ChildrenOf(syntax.List); len(lists) > 0 {
		if kids := lists[0].Children(); len(kids) == 2 {
			resolutionFunc = identText(kids[1])
		}
	}
	sym := allocIn(&c.arenas.nettypes, NettypeSymbol{
		symbolBase:         symbolBase{name: name, kind: Nettype, loc: loc(n)},
		UnderlyingTypeName: underlying,
		ResolutionFunc:     resolutionFunc,
	})
	scope.addMember(sym)
}

// elaborateImportDecl resolves `import pkg::name;` and `import pkg::*;`
// , raising [report.CodeAmbiguousImport] lazily
// at lookup time (see [Scope.lookupWildcard]) rather than here.
func (c *Compilation) elaborateImportDecl(scope *Scope, n *syntax.Node) {
	list := n.Child(syntax.List)
	if list == nil {
		return
	}
	for _, item := range list.ChildrenOf(syntax.List) {
		kids := item.Children()
		if len(kids) != 3 {
			continue
		}
		pkgName := identText(kids[0])
		targetNode := kids[2]

		pkg, ok := c.packages[pkgName]
		if !ok {
			c.rep.Errorf(report.CodeNameNotFound, rng(item), "unknown package %q", pkgName)
			continue
		}

		if targetNode.IsToken() && targetNode.Token().Is(keyword.Star) {
			w := allocIn(&c.arenas.wildcardImports, WildcardImportSymbol{
				symbolBase: symbolBase{kind: WildcardImport, loc: loc(item)},
				Package:    pkg,
			})
			scope.addWildcardImport(w)
			pkg.noteImport(w)
			continue
		}

		targetName := identText(targetNode)
		imported, ok := pkg.scope.LookupLocal(targetName)
		if !ok {
			c.rep.Errorf(report.CodeNameNotFound, rng(item), "%q is not a member of package %q", targetName, pkgName)
			continue
		}
		ei := allocIn(&c.arenas.explicitImports, ExplicitImportSymbol{
			symbolBase: symbolBase{name: targetName, kind: ExplicitImport, loc: loc(item)},
			Package:    pkg,
			Imported:   imported,
		})
		scope.addMember(ei)
		pkg.noteImport(ei)
	}
}

func (c *Compilation) elaborateModportDecl(scope *Scope, n *syntax.Node) {
	list := n.Child(syntax.List)
	if list == nil {
		return
	}
	for _, item := range list.ChildrenOf(syntax.ModportItem) {
		name := identText(item)
		sym := allocIn(&c.arenas.modports, ModportSymbol{symbolBase: symbolBase{name: name, kind: Modport, loc: loc(item)}})
		sym.scope = newScope(c, sym, scope)
		scope.addMember(sym)
		if ports := item.Child(syntax.List); ports != nil {
			c.elaborateModportSimplePorts(sym.scope, ports)
		}
	}
}

func (c *Compilation) elaborateModportSimplePorts(scope *Scope, ports *syntax.Node) {
	lastDir := Direction(keyword.Input)
	for _, p := range ports.Children() {
		switch p.Kind() {
		case syntax.ModportSimplePort:
			kids := p.Children()
			var dir Direction
			var nameNode *syntax.Node
			if len(kids) == 2 {
				if kids[0].IsToken() {
					dir = kids[0].Token().Keyword
				}
				nameNode = kids[1]
				lastDir = dir
			} else if len(kids) == 1 {
				dir = lastDir
				nameNode = kids[0]
			} else {
				continue
			}
			sym := allocIn(&c.arenas.modportPorts, ModportPortSymbol{
				symbolBase: symbolBase{name: identText(nameNode), kind: ModportPort, loc: loc(p)},
				Direction:  dir,
			})
			scope.addMember(sym)
		case syntax.ModportExplicitPort:
			kids := p.Children()
			if len(kids) < 2 {
				continue
			}
			sym := allocIn(&c.arenas.modportPorts, ModportPortSymbol{
				symbolBase: symbolBase{name: identText(kids[1]), kind: ModportPort, loc: loc(p)},
			})
			scope.addMember(sym)
		}
	}
}

func (c *Compilation) elaborateClockingDecl(scope *Scope, n *syntax.Node) {
	name := identText(n)
	sym := allocIn(&c.arenas.clockings, ClockingSymbol{symbolBase: symbolBase{name: name, kind: Clocking, loc: loc(n)}})
	sym.scope = newScope(c, sym, scope)
	scope.addMember(sym)

	list := n.Child(syntax.List)
	if list == nil {
		return
	}
	for _, item := range list.Children() {
		switch item.Kind() {
		case syntax.ClockingSkew:
			c.elaborateClockingSkew(sym, item)
		case syntax.ClockingItem:
			c.elaborateClockingItem(sym.scope, item)
		}
	}
}

func (c *Compilation) elaborateClockingSkew(sym *ClockingSymbol, item *syntax.Node) {
	kids := item.Children()
	if len(kids) < 2 {
		return
	}
	isOutput := kids[1].IsToken() && kids[1].Token().Is(keyword.Output)
	if isOutput {
		if sym.sawDefaultOutputSkew {
			c.rep.Errorf(report.CodeMultipleDefaultOutputSkew, rng(item),
				"clocking block %q already has a default output skew", sym.Name())
		}
		sym.sawDefaultOutputSkew = true
		return
	}
	if sym.sawDefaultInputSkew {
		c.rep.Errorf(report.CodeMultipleDefaultInputSkew, rng(item),
			"clocking block %q already has a default input skew", sym.Name())
	}
	sym.sawDefaultInputSkew = true
}

func (c *Compilation) elaborateClockingItem(scope *Scope, item *syntax.Node) {
	kids := item.Children()
	if len(kids) == 0 {
		return
	}
	dir := keyword.Input
	if kids[0].IsToken() {
		dir = kids[0].Token().Keyword
	}
	declList := item.Child(syntax.List)
	if declList == nil {
		return
	}
	for _, decl := range declList.ChildrenOf(syntax.Declarator) {
		sym := allocIn(&c.arenas.clockingSignals, ClockingSignalSymbol{
			symbolBase: symbolBase{name: identText(decl), kind: ClockingSignal, loc: loc(decl)},
			Direction:  dir,
		})
		scope.addMember(sym)
	}
}

func (c *Compilation) elaborateRandSequenceDecl(scope *Scope, n *syntax.Node) {
	sym := allocIn(&c.arenas.randSeqs, RandSequenceSymbol{symbolBase: symbolBase{kind: RandSequence, loc: loc(n)}})
	sym.scope = newScope(c, sym, scope)
	scope.addMember(sym)

	list := n.Child(syntax.List)
	if list == nil {
		return
	}
	for _, prod := range list.ChildrenOf(syntax.RandSequenceProduction) {
		psym := allocIn(&c.arenas.randSeqProds, RandSequenceProductionSymbol{
			symbolBase{name: identText(prod), kind: RandSequenceProduction, loc: loc(prod)},
		})
		sym.scope.addMember(psym)
	}
}

// elaborateTimeunitDecl checks a module's own `timeunit`/`timeprecision`
// declaration against the compilation's `` `timescale `` (the seed
// scenario 4). The comparison is a literal-text containment check rather
// than a real time-unit parse, matching the front end's stated stance
// that time-value arithmetic is out of scope: a declared value that
// appears anywhere in the `timescale` text, unit or precision half, is
// accepted, so "1ps" against "1ns/1ps" passes while "1ps" against
// "1ns/1ns" is reported.
func (c *Compilation) elaborateTimeunitDecl(scope *Scope, n *syntax.Node) {
	kids := n.Children()
	if len(kids) < 2 {
		return
	}
	value := identText(kids[1])
	if c.timescale == "" || value == "" {
		return
	}
	if !strings.Contains(c.timescale, value) {
		c.rep.Errorf(report.CodeMismatchedTimeScales, rng(n),
			"declared time unit %q does not match the compilation timescale %q", value, c.timescale)
	}
}

// elaborateUdpDefinition elaborates a `primitive`: UDP rules cover
// ANSI/non-ANSI port lists, exactly one output port, sequential vs.
// combinational via `output reg`, `initial` restricted to sequential
// UDPs targeting the output port).
func (c *Compilation) elaborateUdpDefinition(n *syntax.Node) *UdpSymbol {
	name := identText(n)
	sym := allocIn(&c.arenas.udps, UdpSymbol{symbolBase: symbolBase{name: name, kind: Udp, loc: loc(n)}})
	sym.scope = newScope(c, sym, c.root)
	c.root.addMember(sym)

	ports := n.Child(syntax.PortList)
	isAnsi := true
	ctx := &portCtx{}
	if ports != nil {
		isAnsi = c.classifyPortList(ports)
		c.elaborateUdpPorts(sym.scope, ports, isAnsi, ctx)
	}

	outputName := ""
	outputCount := 0
	sawReg := false

	if body := n.Child(syntax.UdpBody); body != nil {
		if list := body.Child(syntax.List); list != nil {
			for _, item := range list.Children() {
				if item.Kind() == syntax.UdpPortDecl {
					kids := item.Children()
					if len(kids) == 0 || !kids[0].IsToken() {
						continue
					}
					kw := kids[0].Token().Keyword
					declList := item.Child(syntax.List)
					if declList == nil {
						continue
					}
					for _, decl := range declList.ChildrenOf(syntax.Declarator) {
						pname := identText(decl)
						isReg := kw == keyword.Reg
						if kw == keyword.Output {
							outputCount++
							outputName = pname
						}
						if isReg {
							sawReg = true
						}
						psym := allocIn(&c.arenas.udpPorts, UdpPortSymbol{
							symbolBase: symbolBase{name: pname, kind: UdpPort, loc: loc(decl)},
							IsReg:      isReg,
						})
						if kw == keyword.Input || kw == keyword.Output {
							psym.Direction = kw
						}
						sym.scope.addMember(psym)
					}
				}
			}
			for _, item := range list.Children() {
				if item.Kind() != syntax.UdpInitial {
					continue
				}
				kids := item.Children()
				if len(kids) < 2 {
					continue
				}
				target := identText(kids[1])
				if outputName != "" && target != outputName {
					c.rep.Errorf(report.CodeInvalidUdpOutputInitializer, rng(item),
						"initial statement must target the output port %q, not %q", outputName, target)
				}
				if !sawReg {
					c.rep.Errorf(report.CodeUdpInitialOnCombinational, rng(item),
						"initial statement is only allowed in a sequential primitive")
				}
			}
		}
	}

	sym.OutputPort = outputName
	sym.Sequential = sawReg
	switch {
	case outputCount == 0:
		c.rep.Errorf(report.CodeUdpMissingOutput, rng(n), "primitive %q declares no output port", name)
	case outputCount > 1:
		c.rep.Errorf(report.CodeUdpMultipleOutputs, rng(n), "primitive %q declares more than one output port", name)
	}
	return sym
}

func (c *Compilation) elaborateUdpPorts(scope *Scope, ports *syntax.Node, isAnsi bool, ctx *portCtx) {
	list := ports.Child(syntax.List)
	if list == nil {
		return
	}
	entries := list.ChildrenOf(syntax.AnsiPort)
	if !isAnsi {
		ctx.pending = make(map[string]*portInfo, len(entries))
		for _, e := range entries {
			name := identText(e.Child(syntax.Declarator))
			ctx.pending[name] = &portInfo{name: name, node: e}
		}
		return
	}
	for _, e := range entries {
		dir, _ := portDirection(e)
		sym := allocIn(&c.arenas.udpPorts, UdpPortSymbol{
			symbolBase: symbolBase{name: identText(e.Child(syntax.Declarator)), kind: UdpPort, loc: loc(e)},
			Direction:  dir,
		})
		scope.addMember(sym)
	}
}
