package sema

import (
	"github.com/banjo-lang/banjoc/internal/ast"
	"github.com/banjo-lang/banjoc/internal/report"
	"github.com/banjo-lang/banjoc/internal/sir"
	"github.com/banjo-lang/banjoc/internal/specialize"
)

// analyzeExpr types one expression, coercing untyped literals toward
// expected when one is known (a declared variable type, a parameter type,
// an already-typed sibling in a binary expression) and defaulting them
// otherwise. expected may be nil.
func (a *Analyzer) analyzeExpr(s *scope, e ast.Expr, expected sir.Expr) (sir.Expr, Result) {
	pos := toSirPos(a.curMod, e.Position())

	switch v := e.(type) {
	case *ast.IntLiteral:
		lit := a.curMod.Arena().CreateIntLit(pos, v.Value)
		if name := typeName(expected); intTypeNames[name] {
			lit.SetType(expected)
		} else {
			lit.SetType(a.preambleType("i32"))
		}
		return lit, Success

	case *ast.FloatLiteral:
		lit := a.curMod.Arena().CreateFloatLit(pos, v.Value)
		if name := typeName(expected); floatTypeNames[name] {
			lit.SetType(expected)
		} else {
			lit.SetType(a.preambleType("f64"))
		}
		return lit, Success

	case *ast.StringLiteral:
		lit := a.curMod.Arena().CreateStringLit(pos, v.Value)
		lit.SetType(a.preambleType("string"))
		return lit, Success

	case *ast.BoolLiteral:
		lit := a.curMod.Arena().CreateBoolLit(pos, v.Value)
		lit.SetType(a.preambleType("bool"))
		return lit, Success

	case *ast.NullLiteral:
		lit := a.curMod.Arena().CreateNullLit(pos)
		if expected == nil {
			return lit, a.insert(a.newError(report.PhaseSema, report.SEMA004TypeMismatch).
				Message("cannot infer the type of null without surrounding context").
				At(ast.Span{Start: v.Pos, End: v.Pos}))
		}
		lit.SetType(expected)
		return lit, Success

	case *ast.Identifier:
		return a.analyzeIdentifier(s, v)

	case *ast.BinaryExpr:
		return a.analyzeBinary(s, v)

	case *ast.UnaryExpr:
		return a.analyzeUnary(s, v)

	case *ast.CallExpr:
		return a.analyzeCall(s, v)

	case *ast.DotExpr:
		return a.analyzeDot(s, v)

	case *ast.StructLiteral:
		return a.analyzeStructLiteral(s, v)

	case *ast.IfExpr:
		return a.analyzeIf(s, v, expected)

	case *ast.MatchExpr:
		return a.analyzeMatch(s, v, expected)

	case *ast.CompletionSentinel:
		return a.analyzeCompletionSentinel(s, v)

	default:
		return nil, a.insert(a.newError(report.PhaseSema, report.SEMA004TypeMismatch).
			Message("unsupported expression").
			At(ast.Span{Start: e.Position(), End: e.Position()}))
	}
}

func (a *Analyzer) analyzeIdentifier(s *scope, v *ast.Identifier) (sir.Expr, Result) {
	sym, ok := s.table.Lookup(v.Name)
	if !ok {
		return nil, a.insert(a.newError(report.PhaseSema, report.SEMA002SymbolNotFound).
			Message("undefined name %q", v.Name).
			At(ast.Span{Start: v.Pos, End: v.Pos}))
	}
	a.addSymbolUse(v.Pos, sym)
	expr := a.curMod.Arena().CreateSymbolExpr(toSirPos(a.curMod, v.Pos), sym)
	expr.SetType(symbolType(sym))
	return expr, Success
}

var comparisonOps = map[string]sir.BinaryOp{
	"==": sir.OpEq, "!=": sir.OpNe,
	"<": sir.OpLt, "<=": sir.OpLe,
	">": sir.OpGt, ">=": sir.OpGe,
}

var logicalOps = map[string]sir.BinaryOp{"&&": sir.OpAnd, "||": sir.OpOr}

var arithmeticOps = map[string]sir.BinaryOp{
	"+": sir.OpAdd, "-": sir.OpSub, "*": sir.OpMul, "/": sir.OpDiv, "%": sir.OpMod,
}

func (a *Analyzer) analyzeBinary(s *scope, v *ast.BinaryExpr) (sir.Expr, Result) {
	left, r1 := a.analyzeExpr(s, v.Left, nil)
	result := r1

	var expectedRight sir.Expr
	if left != nil {
		expectedRight = left.Type()
	}
	right, r2 := a.analyzeExpr(s, v.Right, expectedRight)
	result = mergeResult(result, r2)

	op, ok := comparisonOps[v.Op]
	if !ok {
		op, ok = logicalOps[v.Op]
	}
	isBoolResult := ok
	if !ok {
		op, ok = arithmeticOps[v.Op]
	}
	if !ok {
		return nil, a.insert(a.newError(report.PhaseSema, report.SEMA004TypeMismatch).
			Message("unknown operator %q", v.Op).
			At(ast.Span{Start: v.Pos, End: v.Pos}))
	}

	expr := a.curMod.Arena().CreateBinaryExpr(toSirPos(a.curMod, v.Pos), op, left, right)
	if isBoolResult {
		expr.SetType(a.preambleType("bool"))
	} else if left != nil {
		expr.SetType(left.Type())
	}
	return expr, result
}

func (a *Analyzer) analyzeUnary(s *scope, v *ast.UnaryExpr) (sir.Expr, Result) {
	operand, result := a.analyzeExpr(s, v.Operand, nil)
	var op sir.UnaryOp
	switch v.Op {
	case "-":
		op = sir.OpNeg
	case "!":
		op = sir.OpNot
	case "*":
		op = sir.OpDeref
	case "&":
		op = sir.OpRef
	default:
		return nil, a.insert(a.newError(report.PhaseSema, report.SEMA004TypeMismatch).
			Message("unknown unary operator %q", v.Op).
			At(ast.Span{Start: v.Pos, End: v.Pos}))
	}

	expr := a.curMod.Arena().CreateUnaryExpr(toSirPos(a.curMod, v.Pos), op, operand)
	if operand == nil {
		return expr, result
	}

	switch op {
	case sir.OpRef:
		expr.SetType(a.curMod.Arena().CreateUnaryExpr(toSirPos(a.curMod, v.Pos), sir.OpRef, operand.Type()))
	case sir.OpDeref:
		ptr, ok := operand.Type().(*sir.UnaryExpr)
		if !ok || ptr.Op != sir.OpRef {
			return expr, mergeResult(result, a.insert(a.newError(report.PhaseSema, report.SEMA004TypeMismatch).
				Message("cannot dereference a non-pointer value").
				At(ast.Span{Start: v.Pos, End: v.Pos})))
		}
		expr.SetType(ptr.Operand)
	default:
		expr.SetType(operand.Type())
	}
	return expr, result
}

func (a *Analyzer) analyzeCall(s *scope, v *ast.CallExpr) (sir.Expr, Result) {
	ident, isIdent := v.Callee.(*ast.Identifier)
	var calleeSym sir.Symbol
	var calleeExpr sir.Expr
	result := Success

	if isIdent {
		sym, ok := s.table.Lookup(ident.Name)
		if !ok {
			return nil, a.insert(a.newError(report.PhaseSema, report.SEMA002SymbolNotFound).
				Message("undefined function %q", ident.Name).
				At(ast.Span{Start: ident.Pos, End: ident.Pos}))
		}
		a.addSymbolUse(ident.Pos, sym)
		calleeSym = sym
	} else {
		expr, r := a.analyzeExpr(s, v.Callee, nil)
		result = mergeResult(result, r)
		calleeExpr = expr
		if se, ok := expr.(*sir.SymbolExpr); ok {
			calleeSym = se.Sym
		}
	}

	var resolved sir.Symbol
	var args []sir.Expr
	var r Result
	if set, isSet := calleeSym.(*sir.OverloadSetSymbol); isSet {
		resolved, args, r = a.resolveOverloadCall(s, set, v)
	} else {
		resolved = calleeSym
		args, r = a.analyzeArgs(s, v.Args, resolved)
	}
	result = mergeResult(result, r)

	if calleeExpr == nil && resolved != nil {
		calleeExpr = a.curMod.Arena().CreateSymbolExpr(toSirPos(a.curMod, v.Callee.Position()), resolved)
	}

	_, retType := signatureOf(resolved)

	genericArgs := make([]sir.Expr, len(v.GenericArgs))
	for i, ga := range v.GenericArgs {
		typ, gr := a.resolveTypeExpr(s, ga)
		result = mergeResult(result, gr)
		genericArgs[i] = typ
	}

	// An explicit generic argument list against a generic function
	// triggers instantiation right here rather than waiting for a later
	// pass: the return type used to type this very call expression needs
	// the substituted (not the generic-parameter) type.
	if fn, ok := resolved.(*sir.FuncDefSymbol); ok && fn.IsGeneric() && len(genericArgs) == len(fn.GenericParams) {
		spec := specialize.InstantiateFunc(a.specTable, fn, genericArgs)
		if clone, ok := spec.Def.(*sir.FuncDefSymbol); ok {
			retType = clone.ReturnType
		}
	}

	call := a.curMod.Arena().CreateCallExpr(toSirPos(a.curMod, v.Pos), calleeExpr, args, genericArgs)
	call.SetType(retType)
	return call, result
}

// analyzeArgs types each call argument, using resolved's declared
// parameter types (when resolved has a signature) as the expected type
// hint for literal coercion; args past a fixed-arity signature's end, or
// every arg when resolved is nil or has none, get no hint.
func (a *Analyzer) analyzeArgs(s *scope, argExprs []ast.Expr, resolved sir.Symbol) ([]sir.Expr, Result) {
	params, _ := signatureOf(resolved)
	result := Success
	args := make([]sir.Expr, len(argExprs))
	for i, argExpr := range argExprs {
		var expected sir.Expr
		if i < len(params) {
			expected = params[i].Type
		}
		argVal, r := a.analyzeExpr(s, argExpr, expected)
		result = mergeResult(result, r)
		args[i] = argVal
	}
	return args, result
}

// signatureOf extracts the parameters and return type of a resolved
// callee symbol (a single FuncDef/FuncDecl/NativeFuncDecl, never an
// OverloadSetSymbol — resolveOverloadCall always picks one concrete
// candidate first).
func signatureOf(sym sir.Symbol) ([]*sir.ParamSymbol, sir.Expr) {
	switch v := sym.(type) {
	case *sir.FuncDefSymbol:
		return v.Params, v.ReturnType
	case *sir.FuncDeclSymbol:
		return v.Params, v.ReturnType
	case *sir.NativeFuncDeclSymbol:
		return v.Params, v.ReturnType
	default:
		return nil, nil
	}
}

// resolveOverloadCall disambiguates a call to an overloaded function name
// in two passes: arity first (cheap, needs no argument types), then —
// only when more than one overload takes that many arguments — hands the
// pre-typed arguments to internal/specialize for full per-parameter
// assignability and a fewest-coercions tie-break. Returning the typed args
// alongside the resolved symbol avoids analyzing each argument expression
// twice.
func (a *Analyzer) resolveOverloadCall(s *scope, set *sir.OverloadSetSymbol, v *ast.CallExpr) (sir.Symbol, []sir.Expr, Result) {
	var byArity []*sir.FuncDefSymbol
	for _, f := range set.Funcs {
		n := len(f.Params)
		if n > 0 && f.Params[0].IsSelf {
			n--
		}
		if n == len(v.Args) {
			byArity = append(byArity, f)
		}
	}

	if len(byArity) == 0 {
		args, r := a.analyzeArgs(s, v.Args, nil)
		return nil, args, mergeResult(r, a.insert(a.newError(report.PhaseSema, report.SEMA012NoMatchingOverload).
			Message("no overload of %q takes %d argument(s)", set.Name, len(v.Args)).
			At(ast.Span{Start: v.Pos, End: v.Pos})))
	}
	if len(byArity) == 1 {
		args, r := a.analyzeArgs(s, v.Args, byArity[0])
		return byArity[0], args, r
	}

	args, result := a.analyzeArgs(s, v.Args, nil)
	best, ok, ambiguous := specialize.Resolve(byArity, args)
	if !ok {
		return nil, args, mergeResult(result, a.insert(a.newError(report.PhaseSema, report.SEMA012NoMatchingOverload).
			Message("no overload of %q matches these argument types", set.Name).
			At(ast.Span{Start: v.Pos, End: v.Pos})))
	}
	if ambiguous {
		result = mergeResult(result, a.insert(a.newError(report.PhaseSema, report.SEMA011AmbiguousOverload).
			Message("call to %q is ambiguous among %d overloads", set.Name, len(byArity)).
			At(ast.Span{Start: v.Pos, End: v.Pos})))
	}
	return best, args, result
}

func (a *Analyzer) analyzeDot(s *scope, v *ast.DotExpr) (sir.Expr, Result) {
	left, result := a.analyzeExpr(s, v.Left, nil)
	expr := a.curMod.Arena().CreateDotExpr(toSirPos(a.curMod, v.Pos), left, v.Name)
	if left == nil || left.Type() == nil {
		return expr, result
	}

	structDef := structDefOf(left.Type())
	if structDef == nil {
		return expr, mergeResult(result, a.insert(a.newError(report.PhaseSema, report.SEMA004TypeMismatch).
			Message("%q is not a struct value", v.Name).
			At(ast.Span{Start: v.Pos, End: v.Pos})))
	}

	field := structDef.FieldByName(v.Name)
	if field == nil {
		return expr, mergeResult(result, a.insert(a.newError(report.PhaseSema, report.SEMA002SymbolNotFound).
			Message("%q has no field named %q", structDef.Name, v.Name).
			At(ast.Span{Start: v.Pos, End: v.Pos})))
	}
	expr.Field = field
	expr.SetType(field.Type)
	return expr, result
}

// structDefOf unwraps a type expression down to the StructDefSymbol it
// names, following through a pointer indirection, or nil if it isn't one.
func structDefOf(t sir.Expr) *sir.StructDefSymbol {
	switch v := t.(type) {
	case *sir.SymbolExpr:
		if sd, ok := v.Sym.(*sir.StructDefSymbol); ok {
			return sd
		}
	case *sir.UnaryExpr:
		if v.Op == sir.OpRef {
			return structDefOf(v.Operand)
		}
	}
	return nil
}

func (a *Analyzer) analyzeStructLiteral(s *scope, v *ast.StructLiteral) (sir.Expr, Result) {
	sym, ok := s.table.Lookup(v.TypeName)
	if !ok {
		return nil, a.insert(a.newError(report.PhaseSema, report.SEMA002SymbolNotFound).
			Message("undefined type %q", v.TypeName).
			At(ast.Span{Start: v.Pos, End: v.Pos}))
	}
	structDef, ok := sym.(*sir.StructDefSymbol)
	if !ok {
		return nil, a.insert(a.newError(report.PhaseSema, report.SEMA004TypeMismatch).
			Message("%q is not a struct type", v.TypeName).
			At(ast.Span{Start: v.Pos, End: v.Pos}))
	}

	result := Success
	seen := make(map[string]bool, len(v.Entries))
	entries := make([]sir.StructLiteralEntry, 0, len(v.Entries))
	for _, entry := range v.Entries {
		if seen[entry.Name] {
			result = mergeResult(result, a.insert(a.newError(report.PhaseSema, report.SEMA009DuplicateStructField).
				Message("field %q set more than once", entry.Name).
				At(ast.Span{Start: entry.Pos, End: entry.Pos})))
			continue
		}
		seen[entry.Name] = true

		field := structDef.FieldByName(entry.Name)
		if field == nil {
			result = mergeResult(result, a.insert(a.newError(report.PhaseSema, report.SEMA002SymbolNotFound).
				Message("%q has no field named %q", structDef.Name, entry.Name).
				At(ast.Span{Start: entry.Pos, End: entry.Pos})))
			continue
		}
		val, r := a.analyzeExpr(s, entry.Value, field.Type)
		result = mergeResult(result, r)
		entries = append(entries, sir.StructLiteralEntry{Name: entry.Name, Value: val, Field: field})
	}

	for _, field := range structDef.Fields {
		if !seen[field.Name] && field.Default == nil {
			result = mergeResult(result, a.insert(a.newError(report.PhaseSema, report.SEMA010MissingStructField).
				Message("missing field %q in literal for %q", field.Name, structDef.Name).
				At(ast.Span{Start: v.Pos, End: v.Pos})))
		}
	}

	lit := a.curMod.Arena().CreateStructLiteral(toSirPos(a.curMod, v.Pos), structDef, entries)
	lit.SetType(a.curMod.Arena().CreateSymbolExpr(toSirPos(a.curMod, v.Pos), structDef))
	return lit, result
}

func (a *Analyzer) analyzeIf(s *scope, v *ast.IfExpr, expected sir.Expr) (sir.Expr, Result) {
	cond, result := a.analyzeExpr(s, v.Cond, a.preambleType("bool"))
	then, r := a.analyzeBlock(s, v.Then, expected)
	result = mergeResult(result, r)

	var els *sir.Block
	if v.Else != nil {
		els, r = a.analyzeBlock(s, v.Else, expected)
		result = mergeResult(result, r)
	}

	expr := a.curMod.Arena().CreateIfExpr(toSirPos(a.curMod, v.Pos), cond, then, els)
	if els != nil {
		expr.SetType(blockValueType(then))
	}
	return expr, result
}

func (a *Analyzer) analyzeMatch(s *scope, v *ast.MatchExpr, expected sir.Expr) (sir.Expr, Result) {
	subject, result := a.analyzeExpr(s, v.Subject, nil)

	cases := make([]sir.MatchCase, len(v.Cases))
	for i, c := range v.Cases {
		blockTable := a.curMod.Arena().CreateSymbolTable(s.table)
		caseScope := &scope{decl: s.decl, table: blockTable, genericArgs: s.genericArgs}

		pattern, r := a.analyzePattern(caseScope, c.Pattern, subject)
		result = mergeResult(result, r)

		var guard sir.Expr
		if c.Guard != nil {
			guard, r = a.analyzeExpr(caseScope, c.Guard, a.preambleType("bool"))
			result = mergeResult(result, r)
		}

		body, r := a.analyzeBlock(caseScope, c.Body, expected)
		result = mergeResult(result, r)

		cases[i] = sir.MatchCase{Pattern: pattern, Guard: guard, Body: body}
	}

	expr := a.curMod.Arena().CreateMatchExpr(toSirPos(a.curMod, v.Pos), subject, cases)
	if len(cases) > 0 {
		expr.SetType(blockValueType(cases[0].Body))
	}
	return expr, result
}

func (a *Analyzer) analyzePattern(s *scope, p ast.Pattern, subject sir.Expr) (sir.Pattern, Result) {
	pos := toSirPos(a.curMod, p.Position())
	switch v := p.(type) {
	case *ast.WildcardPattern:
		return &sir.WildcardPattern{PatternBase: sir.PatternBase{Pos: pos}}, Success

	case *ast.BindPattern:
		local := &sir.LocalSymbol{}
		local.Name, local.Ident = v.Name, v.Pos
		if subject != nil {
			local.Type = subject.Type()
		}
		s.table.Insert(v.Name, local)
		a.addSymbolDef(local)
		return &sir.BindPattern{PatternBase: sir.PatternBase{Pos: pos}, Local: local}, Success

	case *ast.ConstructorPattern:
		union := unionDefOf(subject)
		if union == nil {
			return nil, a.insert(a.newError(report.PhaseSema, report.SEMA004TypeMismatch).
				Message("pattern %q only matches a union value", v.CaseName).
				At(ast.Span{Start: v.Pos, End: v.Pos}))
		}
		var uc *sir.UnionCaseSymbol
		for _, c := range union.Cases {
			if c.Name == v.CaseName {
				uc = c
				break
			}
		}
		if uc == nil {
			return nil, a.insert(a.newError(report.PhaseSema, report.SEMA002SymbolNotFound).
				Message("%q has no case named %q", union.Name, v.CaseName).
				At(ast.Span{Start: v.Pos, End: v.Pos}))
		}
		result := Success
		fields := make([]sir.Pattern, len(v.Fields))
		for i, fp := range v.Fields {
			var fieldSubject sir.Expr
			if i < len(uc.Fields) {
				fieldSubject = &sir.SymbolExpr{ExprBase: sir.ExprBase{Typ: uc.Fields[i].Type}}
			}
			sub, r := a.analyzePattern(s, fp, fieldSubject)
			result = mergeResult(result, r)
			fields[i] = sub
		}
		return &sir.ConstructorPattern{PatternBase: sir.PatternBase{Pos: pos}, Case: uc, Fields: fields}, result

	default:
		return nil, a.insert(a.newError(report.PhaseSema, report.SEMA004TypeMismatch).
			Message("unsupported pattern").
			At(ast.Span{Start: p.Position(), End: p.Position()}))
	}
}

// unionDefOf extracts the UnionDefSymbol subject's own type names, or nil
// if subject isn't typed as a union value.
func unionDefOf(subject sir.Expr) *sir.UnionDefSymbol {
	if subject == nil || subject.Type() == nil {
		return nil
	}
	se, ok := subject.Type().(*sir.SymbolExpr)
	if !ok {
		return nil
	}
	ud, _ := se.Sym.(*sir.UnionDefSymbol)
	return ud
}

// blockValueType is the type of a block used in expression position: its
// trailing ExprStmt's value type, or nil for an empty or statement-only
// block (which types as void in a full implementation; this analyzer just
// leaves the IfExpr/MatchExpr untyped in that case rather than
// manufacturing a void SymbolExpr with no backing declaration).
func blockValueType(b *sir.Block) sir.Expr {
	if b == nil || len(b.Stmts) == 0 {
		return nil
	}
	last, ok := b.Stmts[len(b.Stmts)-1].(*sir.ExprStmt)
	if !ok || last.Value == nil {
		return nil
	}
	return last.Value.Type()
}

func (a *Analyzer) analyzeCompletionSentinel(s *scope, v *ast.CompletionSentinel) (sir.Expr, Result) {
	pos := toSirPos(a.curMod, v.Pos)

	switch {
	case v.AfterDot != nil:
		lhs, result := a.analyzeExpr(s, v.AfterDot, nil)
		a.Completion = CompleteAfterDot{Lhs: lhs}
		return a.curMod.Arena().CreateCompletionMarker(pos, lhs), result
	case v.InUse:
		a.Completion = CompleteInUse{}
		return a.curMod.Arena().CreateCompletionMarker(pos, nil), Success
	case v.AfterUseDot != nil:
		a.Completion = CompleteAfterUseDot{Lhs: v.AfterUseDot}
		return a.curMod.Arena().CreateCompletionMarker(pos, nil), Success
	default:
		if s.block != nil {
			a.Completion = CompleteInBlock{Block: s.block}
		} else {
			a.Completion = CompleteInDeclBlock{DeclBlock: a.curMod.Root}
		}
		return a.curMod.Arena().CreateCompletionMarker(pos, nil), Success
	}
}
