package scheme

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type reservedTag int

const (
	rwBegin reservedTag = iota
	rwQuote
	rwIf
	rwCond
	rwLambda
	rwDefine
	rwLet
	rwLetrec
	rwSet
)

// reservedWords is the process-wide, read-only special-form table.
var reservedWords = map[string]reservedTag{
	"begin":  rwBegin,
	"quote":  rwQuote,
	"if":     rwIf,
	"cond":   rwCond,
	"lambda": rwLambda,
	"define": rwDefine,
	"let":    rwLet,
	"letrec": rwLetrec,
	"set!":   rwSet,
}

// isValidIdentifier rejects names that start with a digit, '.' or
// '@', or contain '#', quote or backtick characters.
func isValidIdentifier(s string) bool {
	if s == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	if unicode.IsDigit(r) || r == '.' || r == '@' {
		return false
	}
	return !strings.ContainsAny(s, "#'`")
}

// Translate converts a syntax-tree node into an expression-tree node.
// Translation never partially succeeds: the first failure aborts it.
func Translate(stx Syntax, env *Environment) (Expr, error) {
	switch s := stx.(type) {
	case *Number:
		return &Fixnum{N: s.N}, nil
	case *RationalSyntax:
		return &RationalLit{Num: s.Num, Den: s.Den}, nil
	case *StringSyntax:
		return &StringLit{S: s.S}, nil
	case *TrueSyntax:
		return &True{}, nil
	case *FalseSyntax:
		return &False{}, nil
	case *SymbolSyntax:
		if !isValidIdentifier(s.Name) {
			return nil, newError(ErrSyntax, "invalid identifier: %s", s.Name)
		}
		return &Var{Name: s.Name}, nil
	case *List:
		return translateList(s, env)
	}
	return nil, newError(ErrSyntax, "unknown syntax: %s", stx)
}

func translateOperands(stxs []Syntax, env *Environment) ([]Expr, error) {
	rands := make([]Expr, 0, len(stxs))
	for _, stx := range stxs {
		e, err := Translate(stx, env)
		if err != nil {
			return nil, err
		}
		rands = append(rands, e)
	}
	return rands, nil
}

func translateList(l *List, env *Environment) (Expr, error) {
	if len(l.Items) == 0 {
		return &Quote{Datum: NullV()}, nil
	}

	head, ok := l.Items[0].(*SymbolSyntax)
	if !ok {
		// Non-symbol head is always an application.
		rator, err := Translate(l.Items[0], env)
		if err != nil {
			return nil, err
		}
		rands, err := translateOperands(l.Items[1:], env)
		if err != nil {
			return nil, err
		}
		return &Apply{Rator: rator, Rands: rands}, nil
	}
	op := head.Name

	if p, ok := primitives[op]; ok {
		return translatePrimitive(p, l.Items[1:], env)
	}
	if tag, ok := reservedWords[op]; ok {
		return translateReserved(op, tag, l.Items, env)
	}

	// Neither primitive nor reserved: variable reference applied to
	// the operands, resolved at evaluation time.
	if !isValidIdentifier(op) {
		return nil, newError(ErrSyntax, "invalid identifier: %s", op)
	}
	rands, err := translateOperands(l.Items[1:], env)
	if err != nil {
		return nil, err
	}
	return &Apply{Rator: &Var{Name: op}, Rands: rands}, nil
}

func translatePrimitive(p *primitive, stxs []Syntax, env *Environment) (Expr, error) {
	n := len(stxs)
	if n < p.min || (p.max >= 0 && n > p.max) {
		return nil, newError(ErrSyntax, "%s: wrong number of operands", p.name)
	}
	rands, err := translateOperands(stxs, env)
	if err != nil {
		return nil, err
	}

	switch p.name {
	case "and":
		return &And{Rands: rands}, nil
	case "or":
		return &Or{Rands: rands}, nil
	case "void":
		return &MakeVoid{}, nil
	case "exit":
		return &Exit{}, nil
	}
	switch {
	case p.unary != nil:
		return &UnaryExpr{Op: p.name, fn: p.unary, Rand: rands[0]}, nil
	case n == 2 && p.binary != nil:
		return &BinaryExpr{Op: p.name, fn: p.binary, Rand1: rands[0], Rand2: rands[1]}, nil
	}
	return &VariadicExpr{Op: p.name, fn: p.variadic, Rands: rands}, nil
}

func translateReserved(op string, tag reservedTag, items []Syntax, env *Environment) (Expr, error) {
	switch tag {
	case rwBegin:
		body, err := translateOperands(items[1:], env)
		if err != nil {
			return nil, err
		}
		return &Begin{Body: body}, nil

	case rwQuote:
		if len(items) != 2 {
			return nil, newError(ErrSyntax, "quote: wrong number of operands")
		}
		datum, err := datumToValue(items[1])
		if err != nil {
			return nil, err
		}
		return &Quote{Datum: datum}, nil

	case rwIf:
		if len(items) != 4 {
			return nil, newError(ErrSyntax, "if: wrong number of operands")
		}
		cond, err := Translate(items[1], env)
		if err != nil {
			return nil, err
		}
		conseq, err := Translate(items[2], env)
		if err != nil {
			return nil, err
		}
		alter, err := Translate(items[3], env)
		if err != nil {
			return nil, err
		}
		return &If{Cond: cond, Conseq: conseq, Alter: alter}, nil

	case rwCond:
		if len(items) < 2 {
			return nil, newError(ErrSyntax, "cond: needs at least one clause")
		}
		var clauses []CondClause
		for i, stx := range items[1:] {
			cl, ok := stx.(*List)
			if !ok || len(cl.Items) == 0 {
				return nil, newError(ErrSyntax, "cond: clause must be a non-empty list")
			}
			if sym, ok := cl.Items[0].(*SymbolSyntax); ok && sym.Name == "else" {
				if i != len(items)-2 {
					return nil, newError(ErrSyntax, "cond: else clause must be the last clause")
				}
				body, err := translateOperands(cl.Items[1:], env)
				if err != nil {
					return nil, err
				}
				clauses = append(clauses, CondClause{Body: body})
				continue
			}
			test, err := Translate(cl.Items[0], env)
			if err != nil {
				return nil, err
			}
			body, err := translateOperands(cl.Items[1:], env)
			if err != nil {
				return nil, err
			}
			clauses = append(clauses, CondClause{Test: test, Body: body})
		}
		return &Cond{Clauses: clauses}, nil

	case rwLambda:
		if len(items) < 3 {
			return nil, newError(ErrSyntax, "lambda: too few operands")
		}
		params, err := paramNames(items[1], op)
		if err != nil {
			return nil, err
		}
		body, err := bodyExpr(items[2:], env)
		if err != nil {
			return nil, err
		}
		return &Lambda{Params: params, Body: body}, nil

	case rwDefine:
		if len(items) < 3 {
			return nil, newError(ErrSyntax, "define: wrong number of operands")
		}
		if sig, ok := items[1].(*List); ok {
			// (define (name param ...) body ...) desugars to a lambda.
			if len(sig.Items) == 0 {
				return nil, newError(ErrSyntax, "define: function name missing")
			}
			name, ok := sig.Items[0].(*SymbolSyntax)
			if !ok || !isValidIdentifier(name.Name) {
				return nil, newError(ErrSyntax, "define: function name must be a symbol")
			}
			params, err := paramNames(&List{Items: sig.Items[1:]}, op)
			if err != nil {
				return nil, err
			}
			body, err := bodyExpr(items[2:], env)
			if err != nil {
				return nil, err
			}
			return &Define{Name: name.Name, E: &Lambda{Params: params, Body: body}}, nil
		}
		if len(items) != 3 {
			return nil, newError(ErrSyntax, "define: wrong number of operands")
		}
		name, ok := items[1].(*SymbolSyntax)
		if !ok || !isValidIdentifier(name.Name) {
			return nil, newError(ErrSyntax, "define: variable name must be a symbol")
		}
		e, err := Translate(items[2], env)
		if err != nil {
			return nil, err
		}
		return &Define{Name: name.Name, E: e}, nil

	case rwLet, rwLetrec:
		if len(items) < 3 {
			return nil, newError(ErrSyntax, "%s: needs bindings and a body", op)
		}
		bindList, ok := items[1].(*List)
		if !ok {
			return nil, newError(ErrSyntax, "%s: bindings must be in a list", op)
		}
		binds := make([]Binding, 0, len(bindList.Items))
		for _, stx := range bindList.Items {
			pair, ok := stx.(*List)
			if !ok || len(pair.Items) != 2 {
				return nil, newError(ErrSyntax, "%s: each binding must be a (variable expression) pair", op)
			}
			name, ok := pair.Items[0].(*SymbolSyntax)
			if !ok || !isValidIdentifier(name.Name) {
				return nil, newError(ErrSyntax, "%s: variable in a binding must be a symbol", op)
			}
			e, err := Translate(pair.Items[1], env)
			if err != nil {
				return nil, err
			}
			binds = append(binds, Binding{Name: name.Name, E: e})
		}
		body, err := bodyExpr(items[2:], env)
		if err != nil {
			return nil, err
		}
		if tag == rwLet {
			return &Let{Binds: binds, Body: body}, nil
		}
		return &Letrec{Binds: binds, Body: body}, nil

	case rwSet:
		if len(items) != 3 {
			return nil, newError(ErrSyntax, "set!: needs a variable and an expression")
		}
		name, ok := items[1].(*SymbolSyntax)
		if !ok || !isValidIdentifier(name.Name) {
			return nil, newError(ErrSyntax, "set!: variable must be a symbol")
		}
		e, err := Translate(items[2], env)
		if err != nil {
			return nil, err
		}
		return &Set{Name: name.Name, E: e}, nil
	}
	return nil, newError(ErrSyntax, "unknown reserved word: %s", op)
}

// paramNames reads a parameter list: a parenthesized sequence of
// symbols.
func paramNames(stx Syntax, op string) ([]string, error) {
	list, ok := stx.(*List)
	if !ok {
		return nil, newError(ErrSyntax, "%s: parameters must be a list", op)
	}
	params := make([]string, 0, len(list.Items))
	for _, item := range list.Items {
		sym, ok := item.(*SymbolSyntax)
		if !ok || !isValidIdentifier(sym.Name) {
			return nil, newError(ErrSyntax, "%s: parameters must be symbols", op)
		}
		params = append(params, sym.Name)
	}
	return params, nil
}

// bodyExpr translates one or more body expressions, wrapping several
// in an implicit begin.
func bodyExpr(stxs []Syntax, env *Environment) (Expr, error) {
	if len(stxs) == 1 {
		return Translate(stxs[0], env)
	}
	body, err := translateOperands(stxs, env)
	if err != nil {
		return nil, err
	}
	return &Begin{Body: body}, nil
}

// datumToValue materializes a quoted datum as a runtime value by
// structural recursion. A '.' symbol inside a list builds an improper
// list; it must not come first and must be followed by exactly one
// element.
func datumToValue(stx Syntax) (Value, error) {
	switch s := stx.(type) {
	case *Number:
		return IntegerV(s.N), nil
	case *RationalSyntax:
		return RationalV(s.Num, s.Den)
	case *StringSyntax:
		return StringV(s.S), nil
	case *SymbolSyntax:
		return SymbolV(s.Name), nil
	case *TrueSyntax:
		return BooleanV(true), nil
	case *FalseSyntax:
		return BooleanV(false), nil
	case *List:
		dot := -1
		for i, item := range s.Items {
			if sym, ok := item.(*SymbolSyntax); ok && sym.Name == "." {
				dot = i
				break
			}
		}
		if dot == 0 {
			return nil, newError(ErrMalformedQuote, "quote: dot cannot be the first element")
		}
		if dot > 0 && len(s.Items)-dot != 2 {
			return nil, newError(ErrMalformedQuote, "quote: dot must be followed by exactly one element")
		}

		tail := NullV()
		last := len(s.Items) - 1
		if dot > 0 {
			v, err := datumToValue(s.Items[last])
			if err != nil {
				return nil, err
			}
			tail = v
			last = dot - 1
		}
		for i := last; i >= 0; i-- {
			v, err := datumToValue(s.Items[i])
			if err != nil {
				return nil, err
			}
			tail = PairV(v, tail)
		}
		return tail, nil
	}
	return nil, newError(ErrMalformedQuote, "quote: unknown datum: %s", stx)
}
