package scheme

import "fmt"

// primitive describes one built-in operator: its allowed operand
// count and its behavior per arity class. The translator selects the
// binary form when exactly two operands are given and a binary
// behavior exists, the variadic form otherwise.
type primitive struct {
	name     string
	min, max int // max of -1 means unbounded
	unary    unaryFn
	binary   binaryFn
	variadic variadicFn
}

// primitives is the process-wide, read-only operator table, consulted
// by both the translator and Var evaluation. Built once, never
// changed.
var primitives = map[string]*primitive{}

func init() {
	reg := func(p *primitive) { primitives[p.name] = p }

	reg(&primitive{name: "+", min: 0, max: -1, binary: primAdd, variadic: primAddVar})
	reg(&primitive{name: "-", min: 1, max: -1, binary: primSub, variadic: primSubVar})
	reg(&primitive{name: "*", min: 0, max: -1, binary: primMul, variadic: primMulVar})
	reg(&primitive{name: "/", min: 1, max: -1, binary: primDiv, variadic: primDivVar})
	reg(&primitive{name: "modulo", min: 2, max: 2, binary: primModulo})
	reg(&primitive{name: "expt", min: 2, max: 2, binary: primExpt})
	reg(&primitive{name: "<", min: 2, max: -1, binary: cmpBinary(ltCmp), variadic: cmpVariadic(ltCmp)})
	reg(&primitive{name: "<=", min: 2, max: -1, binary: cmpBinary(leCmp), variadic: cmpVariadic(leCmp)})
	reg(&primitive{name: "=", min: 2, max: -1, binary: cmpBinary(eqCmp), variadic: cmpVariadic(eqCmp)})
	reg(&primitive{name: ">=", min: 2, max: -1, binary: cmpBinary(geCmp), variadic: cmpVariadic(geCmp)})
	reg(&primitive{name: ">", min: 2, max: -1, binary: cmpBinary(gtCmp), variadic: cmpVariadic(gtCmp)})
	reg(&primitive{name: "cons", min: 2, max: 2, binary: primCons})
	reg(&primitive{name: "car", min: 1, max: 1, unary: primCar})
	reg(&primitive{name: "cdr", min: 1, max: 1, unary: primCdr})
	reg(&primitive{name: "list", min: 0, max: -1, variadic: primList})
	reg(&primitive{name: "set-car!", min: 2, max: 2, binary: primSetCar})
	reg(&primitive{name: "set-cdr!", min: 2, max: 2, binary: primSetCdr})
	reg(&primitive{name: "not", min: 1, max: 1, unary: primNot})
	reg(&primitive{name: "and", min: 0, max: -1})
	reg(&primitive{name: "or", min: 0, max: -1})
	reg(&primitive{name: "eq?", min: 2, max: 2, binary: primIsEq})
	reg(&primitive{name: "boolean?", min: 1, max: 1, unary: typePredicate[*Boolean]})
	reg(&primitive{name: "number?", min: 1, max: 1, unary: typePredicate[*Integer]})
	reg(&primitive{name: "null?", min: 1, max: 1, unary: typePredicate[*Null]})
	reg(&primitive{name: "pair?", min: 1, max: 1, unary: typePredicate[*Pair]})
	reg(&primitive{name: "procedure?", min: 1, max: 1, unary: typePredicate[*Procedure]})
	reg(&primitive{name: "symbol?", min: 1, max: 1, unary: typePredicate[*Symbol]})
	reg(&primitive{name: "string?", min: 1, max: 1, unary: typePredicate[*String]})
	reg(&primitive{name: "list?", min: 1, max: 1, unary: primIsList})
	reg(&primitive{name: "display", min: 1, max: 1, unary: primDisplay})
	reg(&primitive{name: "void", min: 0, max: 0})
	reg(&primitive{name: "exit", min: 0, max: 0})
}

// Arithmetic.

func primAdd(_ *Environment, a, b Value) (Value, error) {
	x, err := asRatio(a)
	if err != nil {
		return nil, err
	}
	y, err := asRatio(b)
	if err != nil {
		return nil, err
	}
	return x.add(y).value()
}

func primSub(_ *Environment, a, b Value) (Value, error) {
	x, err := asRatio(a)
	if err != nil {
		return nil, err
	}
	y, err := asRatio(b)
	if err != nil {
		return nil, err
	}
	return x.sub(y).value()
}

func primMul(_ *Environment, a, b Value) (Value, error) {
	x, err := asRatio(a)
	if err != nil {
		return nil, err
	}
	y, err := asRatio(b)
	if err != nil {
		return nil, err
	}
	return x.mul(y).value()
}

func primDiv(_ *Environment, a, b Value) (Value, error) {
	x, err := asRatio(a)
	if err != nil {
		return nil, err
	}
	y, err := asRatio(b)
	if err != nil {
		return nil, err
	}
	q, err := x.div(y)
	if err != nil {
		return nil, err
	}
	return q.value()
}

func primAddVar(_ *Environment, rands []Value) (Value, error) {
	acc := ratio{0, 1}
	for _, v := range rands {
		r, err := asRatio(v)
		if err != nil {
			return nil, err
		}
		acc, err = acc.add(r).normalized()
		if err != nil {
			return nil, err
		}
	}
	return acc.value()
}

func primSubVar(_ *Environment, rands []Value) (Value, error) {
	acc, err := asRatio(rands[0])
	if err != nil {
		return nil, err
	}
	if len(rands) == 1 {
		return acc.neg().value()
	}
	for _, v := range rands[1:] {
		r, err := asRatio(v)
		if err != nil {
			return nil, err
		}
		acc, err = acc.sub(r).normalized()
		if err != nil {
			return nil, err
		}
	}
	return acc.value()
}

func primMulVar(_ *Environment, rands []Value) (Value, error) {
	acc := ratio{1, 1}
	for _, v := range rands {
		r, err := asRatio(v)
		if err != nil {
			return nil, err
		}
		acc, err = acc.mul(r).normalized()
		if err != nil {
			return nil, err
		}
	}
	return acc.value()
}

func primDivVar(_ *Environment, rands []Value) (Value, error) {
	acc, err := asRatio(rands[0])
	if err != nil {
		return nil, err
	}
	if len(rands) == 1 {
		r, err := acc.recip()
		if err != nil {
			return nil, err
		}
		return r.value()
	}
	for _, v := range rands[1:] {
		r, err := asRatio(v)
		if err != nil {
			return nil, err
		}
		acc, err = acc.div(r)
		if err != nil {
			return nil, err
		}
		acc, err = acc.normalized()
		if err != nil {
			return nil, err
		}
	}
	return acc.value()
}

func primModulo(_ *Environment, a, b Value) (Value, error) {
	x, okX := a.(*Integer)
	y, okY := b.(*Integer)
	if !okX || !okY {
		return nil, newError(ErrType, "modulo is only defined for integers")
	}
	if y.N == 0 {
		return nil, newError(ErrDivisionByZero, "division by zero")
	}
	return IntegerV(x.N % y.N), nil
}

func primExpt(_ *Environment, a, b Value) (Value, error) {
	x, okX := a.(*Integer)
	y, okY := b.(*Integer)
	if !okX || !okY {
		return nil, newError(ErrType, "expt is only defined for integers")
	}
	n, err := intPow(x.N, y.N)
	if err != nil {
		return nil, err
	}
	return IntegerV(n), nil
}

// Comparison. All five operators share the pairwise chaining rule.

func ltCmp(c int) bool { return c < 0 }
func leCmp(c int) bool { return c <= 0 }
func eqCmp(c int) bool { return c == 0 }
func geCmp(c int) bool { return c >= 0 }
func gtCmp(c int) bool { return c > 0 }

func cmpBinary(accept func(int) bool) binaryFn {
	return func(_ *Environment, a, b Value) (Value, error) {
		x, err := asRatio(a)
		if err != nil {
			return nil, err
		}
		y, err := asRatio(b)
		if err != nil {
			return nil, err
		}
		return BooleanV(accept(x.compare(y))), nil
	}
}

func cmpVariadic(accept func(int) bool) variadicFn {
	return func(_ *Environment, rands []Value) (Value, error) {
		prev, err := asRatio(rands[0])
		if err != nil {
			return nil, err
		}
		for _, v := range rands[1:] {
			cur, err := asRatio(v)
			if err != nil {
				return nil, err
			}
			if !accept(prev.compare(cur)) {
				return BooleanV(false), nil
			}
			prev = cur
		}
		return BooleanV(true), nil
	}
}

// Pairs and lists.

func primCons(_ *Environment, a, b Value) (Value, error) {
	return PairV(a, b), nil
}

func primCar(_ *Environment, v Value) (Value, error) {
	p, ok := v.(*Pair)
	if !ok {
		return nil, newError(ErrType, "car: expects argument to be a pair")
	}
	return p.Car, nil
}

func primCdr(_ *Environment, v Value) (Value, error) {
	p, ok := v.(*Pair)
	if !ok {
		return nil, newError(ErrType, "cdr: expects argument to be a pair")
	}
	return p.Cdr, nil
}

func primList(_ *Environment, rands []Value) (Value, error) {
	res := NullV()
	for i := len(rands) - 1; i >= 0; i-- {
		res = PairV(rands[i], res)
	}
	return res, nil
}

func primSetCar(_ *Environment, a, b Value) (Value, error) {
	p, ok := a.(*Pair)
	if !ok {
		return nil, newError(ErrType, "set-car!: expects argument to be a pair")
	}
	p.Car = b
	return VoidV(), nil
}

func primSetCdr(_ *Environment, a, b Value) (Value, error) {
	p, ok := a.(*Pair)
	if !ok {
		return nil, newError(ErrType, "set-cdr!: expects argument to be a pair")
	}
	p.Cdr = b
	return VoidV(), nil
}

func primNot(_ *Environment, v Value) (Value, error) {
	return BooleanV(isFalse(v)), nil
}

// primIsEq compares integers, booleans and symbols by content, null
// and void by kind, everything else by identity.
func primIsEq(_ *Environment, a, b Value) (Value, error) {
	switch x := a.(type) {
	case *Integer:
		if y, ok := b.(*Integer); ok {
			return BooleanV(x.N == y.N), nil
		}
	case *Boolean:
		if y, ok := b.(*Boolean); ok {
			return BooleanV(x.B == y.B), nil
		}
	case *Symbol:
		if y, ok := b.(*Symbol); ok {
			return BooleanV(x.Name == y.Name), nil
		}
	case *Null:
		if _, ok := b.(*Null); ok {
			return BooleanV(true), nil
		}
	case *Void:
		if _, ok := b.(*Void); ok {
			return BooleanV(true), nil
		}
	}
	return BooleanV(a == b), nil
}

func typePredicate[T Value](_ *Environment, v Value) (Value, error) {
	_, ok := v.(T)
	return BooleanV(ok), nil
}

func primIsList(_ *Environment, v Value) (Value, error) {
	for {
		switch cur := v.(type) {
		case *Null:
			return BooleanV(true), nil
		case *Pair:
			v = cur.Cdr
		default:
			return BooleanV(false), nil
		}
	}
}

// primDisplay writes the textual form plus a newline; strings print
// without their quotes.
func primDisplay(env *Environment, v Value) (Value, error) {
	if s, ok := v.(*String); ok {
		fmt.Fprintln(env.out, s.S)
	} else {
		fmt.Fprintln(env.out, Show(v))
	}
	return VoidV(), nil
}

// primProcedure reifies a primitive as a first-class procedure: its
// canonical expression form closed over env. This is what makes a
// bare + usable as an ordinary value.
func primProcedure(name string, env *Environment) (Value, bool) {
	p, ok := primitives[name]
	if !ok {
		return nil, false
	}
	captured := env.snapshot()
	switch {
	case name == "and":
		return ProcedureV([]string{"parm1", "parm2"},
			&And{Rands: []Expr{&Var{Name: "parm1"}, &Var{Name: "parm2"}}}, captured), true
	case name == "or":
		return ProcedureV([]string{"parm1", "parm2"},
			&Or{Rands: []Expr{&Var{Name: "parm1"}, &Var{Name: "parm2"}}}, captured), true
	case name == "exit":
		return ProcedureV(nil, &Exit{}, captured), true
	case name == "void":
		return ProcedureV(nil, &MakeVoid{}, captured), true
	case p.unary != nil:
		return ProcedureV([]string{"parm"},
			&UnaryExpr{Op: name, fn: p.unary, Rand: &Var{Name: "parm"}}, captured), true
	case p.binary != nil:
		return ProcedureV([]string{"parm1", "parm2"},
			&BinaryExpr{Op: name, fn: p.binary, Rand1: &Var{Name: "parm1"}, Rand2: &Var{Name: "parm2"}}, captured), true
	default:
		return ProcedureV([]string{"parm1", "parm2"},
			&VariadicExpr{Op: name, fn: p.variadic, Rands: []Expr{&Var{Name: "parm1"}, &Var{Name: "parm2"}}}, captured), true
	}
}
