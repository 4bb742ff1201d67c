package scheme

// Evaluate reduces a translated expression to a value against env.
// It may widen env as a side effect of define.
func Evaluate(e Expr, env *Environment) (Value, error) {
	return e.Eval(env)
}

// Literals.

func (e *Fixnum) Eval(env *Environment) (Value, error) {
	return IntegerV(e.N), nil
}

func (e *RationalLit) Eval(env *Environment) (Value, error) {
	return RationalV(e.Num, e.Den)
}

func (e *StringLit) Eval(env *Environment) (Value, error) {
	return StringV(e.S), nil
}

func (e *True) Eval(env *Environment) (Value, error) {
	return BooleanV(true), nil
}

func (e *False) Eval(env *Environment) (Value, error) {
	return BooleanV(false), nil
}

func (e *MakeVoid) Eval(env *Environment) (Value, error) {
	return VoidV(), nil
}

func (e *Exit) Eval(env *Environment) (Value, error) {
	return TerminateV(), nil
}

// Quote was materialized at translation time; values are shared, not
// copied.
func (e *Quote) Eval(env *Environment) (Value, error) {
	return e.Datum, nil
}

// Primitive forms evaluate operands left to right, then dispatch.

func (e *UnaryExpr) Eval(env *Environment) (Value, error) {
	v, err := e.Rand.Eval(env)
	if err != nil {
		return nil, err
	}
	return e.fn(env, v)
}

func (e *BinaryExpr) Eval(env *Environment) (Value, error) {
	v1, err := e.Rand1.Eval(env)
	if err != nil {
		return nil, err
	}
	v2, err := e.Rand2.Eval(env)
	if err != nil {
		return nil, err
	}
	return e.fn(env, v1, v2)
}

func (e *VariadicExpr) Eval(env *Environment) (Value, error) {
	rands := make([]Value, 0, len(e.Rands))
	for _, rand := range e.Rands {
		v, err := rand.Eval(env)
		if err != nil {
			return nil, err
		}
		rands = append(rands, v)
	}
	return e.fn(env, rands)
}

// Var looks the name up in the environment; a binding always shadows
// a primitive of the same name. An unbound primitive name reifies as
// a first-class procedure.
func (e *Var) Eval(env *Environment) (Value, error) {
	if v, ok := env.Lookup(e.Name); ok && v != nil {
		return v, nil
	}
	if v, ok := primProcedure(e.Name, env); ok {
		return v, nil
	}
	return nil, newError(ErrUnboundVariable, "undefined variable: %s", e.Name)
}

func (e *Begin) Eval(env *Environment) (Value, error) {
	res := VoidV()
	for _, expr := range e.Body {
		v, err := expr.Eval(env)
		if err != nil {
			return nil, err
		}
		res = v
	}
	return res, nil
}

// And short-circuits on the first #f; otherwise it yields the last
// operand's value, uncoerced. Empty and is #t.
func (e *And) Eval(env *Environment) (Value, error) {
	last := BooleanV(true)
	for _, rand := range e.Rands {
		v, err := rand.Eval(env)
		if err != nil {
			return nil, err
		}
		if isFalse(v) {
			return BooleanV(false), nil
		}
		last = v
	}
	return last, nil
}

// Or yields the first operand value that is not #f. Empty or is #f.
func (e *Or) Eval(env *Environment) (Value, error) {
	for _, rand := range e.Rands {
		v, err := rand.Eval(env)
		if err != nil {
			return nil, err
		}
		if !isFalse(v) {
			return v, nil
		}
	}
	return BooleanV(false), nil
}

func (e *If) Eval(env *Environment) (Value, error) {
	cond, err := e.Cond.Eval(env)
	if err != nil {
		return nil, err
	}
	if isFalse(cond) {
		return e.Alter.Eval(env)
	}
	return e.Conseq.Eval(env)
}

// Cond picks the first clause whose test is truthy (an else clause
// always matches) and runs its body as an implicit begin. A clause
// without a body yields its test value; no matching clause yields
// void.
func (e *Cond) Eval(env *Environment) (Value, error) {
	for _, clause := range e.Clauses {
		if clause.Test == nil {
			return evalSequence(clause.Body, VoidV(), env)
		}
		t, err := clause.Test.Eval(env)
		if err != nil {
			return nil, err
		}
		if isFalse(t) {
			continue
		}
		return evalSequence(clause.Body, t, env)
	}
	return VoidV(), nil
}

func evalSequence(body []Expr, empty Value, env *Environment) (Value, error) {
	res := empty
	for _, expr := range body {
		v, err := expr.Eval(env)
		if err != nil {
			return nil, err
		}
		res = v
	}
	return res, nil
}

// Lambda captures the defining environment by reference.
func (e *Lambda) Eval(env *Environment) (Value, error) {
	return ProcedureV(e.Params, e.Body, env.snapshot()), nil
}

// Apply extends the procedure's closure environment, never the
// caller's, with one frame per parameter.
func (e *Apply) Eval(env *Environment) (Value, error) {
	rator, err := e.Rator.Eval(env)
	if err != nil {
		return nil, err
	}
	proc, ok := rator.(*Procedure)
	if !ok {
		return nil, newError(ErrNotAProcedure, "attempt to apply a non-procedure: %s", Show(rator))
	}

	args := make([]Value, 0, len(e.Rands))
	for _, rand := range e.Rands {
		v, err := rand.Eval(env)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	if len(args) != len(proc.Params) {
		return nil, newError(ErrArityMismatch, "wrong number of arguments: expected %d, got %d",
			len(proc.Params), len(args))
	}

	callEnv := proc.Env.snapshot()
	for i, name := range proc.Params {
		callEnv.Define(name, args[i])
	}
	return proc.Body.Eval(callEnv)
}

// Define binds a placeholder first so the expression can refer to the
// name recursively, then rewrites it with the computed value. The
// widened environment persists in the enclosing scope.
func (e *Define) Eval(env *Environment) (Value, error) {
	env.Define(e.Name, nil)
	v, err := e.E.Eval(env)
	if err != nil {
		return nil, err
	}
	if err := env.Modify(e.Name, v); err != nil {
		return nil, err
	}
	return VoidV(), nil
}

// Let evaluates every binding in the original environment; bindings
// never see each other.
func (e *Let) Eval(env *Environment) (Value, error) {
	letEnv := env.snapshot()
	for _, b := range e.Binds {
		v, err := b.E.Eval(env)
		if err != nil {
			return nil, err
		}
		letEnv.Define(b.Name, v)
	}
	return e.Body.Eval(letEnv)
}

// Letrec extends with placeholders first, so bindings may refer to
// each other and to themselves.
func (e *Letrec) Eval(env *Environment) (Value, error) {
	recEnv := env.snapshot()
	for _, b := range e.Binds {
		recEnv.Define(b.Name, nil)
	}
	for _, b := range e.Binds {
		v, err := b.E.Eval(recEnv)
		if err != nil {
			return nil, err
		}
		if err := recEnv.Modify(b.Name, v); err != nil {
			return nil, err
		}
	}
	return e.Body.Eval(recEnv)
}

func (e *Set) Eval(env *Environment) (Value, error) {
	v, err := e.E.Eval(env)
	if err != nil {
		return nil, err
	}
	if err := env.Modify(e.Name, v); err != nil {
		return nil, err
	}
	return VoidV(), nil
}
