package scheme

// Expr is the closed set of post-translation expression forms. An
// expression is produced once by the translator, is immutable, and may
// be evaluated any number of times against different environments.
type Expr interface {
	Eval(env *Environment) (Value, error)
}

// Literal forms.

type Fixnum struct {
	N int64
}

type RationalLit struct {
	Num, Den int64
}

type StringLit struct {
	S string
}

type True struct{}

type False struct{}

type MakeVoid struct{}

type Exit struct{}

// Quote holds the datum already materialized as a value at
// translation time.
type Quote struct {
	Datum Value
}

// Arity-classified primitive forms. The operator behavior lives in the
// primitive table; Op is kept for error messages and the printer.

type unaryFn func(env *Environment, rand Value) (Value, error)
type binaryFn func(env *Environment, rand1, rand2 Value) (Value, error)
type variadicFn func(env *Environment, rands []Value) (Value, error)

type UnaryExpr struct {
	Op   string
	fn   unaryFn
	Rand Expr
}

type BinaryExpr struct {
	Op           string
	fn           binaryFn
	Rand1, Rand2 Expr
}

type VariadicExpr struct {
	Op    string
	fn    variadicFn
	Rands []Expr
}

// Special forms.

type Var struct {
	Name string
}

type Begin struct {
	Body []Expr
}

type And struct {
	Rands []Expr
}

type Or struct {
	Rands []Expr
}

type If struct {
	Cond, Conseq, Alter Expr
}

// CondClause with a nil Test is an else clause.
type CondClause struct {
	Test Expr
	Body []Expr
}

type Cond struct {
	Clauses []CondClause
}

type Lambda struct {
	Params []string
	Body   Expr
}

type Apply struct {
	Rator Expr
	Rands []Expr
}

type Define struct {
	Name string
	E    Expr
}

type Binding struct {
	Name string
	E    Expr
}

type Let struct {
	Binds []Binding
	Body  Expr
}

type Letrec struct {
	Binds []Binding
	Body  Expr
}

type Set struct {
	Name string
	E    Expr
}
