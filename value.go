package scheme

import (
	"strconv"
	"strings"
)

// Value is the closed set of runtime values. Every variant knows how
// to render itself, and how to render itself when it sits in the cdr
// position of a pair, which is what makes proper lists print without
// a trailing dot.
type Value interface {
	show(b *strings.Builder)
	showCdr(b *strings.Builder)
}

// Show renders a value the way the printer and display do.
func Show(v Value) string {
	var b strings.Builder
	v.show(&b)
	return b.String()
}

// dottedCdr is the default cdr rendering: " . v)".
func dottedCdr(v Value, b *strings.Builder) {
	b.WriteString(" . ")
	v.show(b)
	b.WriteByte(')')
}

type Void struct{}

func (v *Void) show(b *strings.Builder)    { b.WriteString("#<void>") }
func (v *Void) showCdr(b *strings.Builder) { dottedCdr(v, b) }

func VoidV() Value { return &Void{} }

type Integer struct {
	N int64
}

func (i *Integer) show(b *strings.Builder)    { b.WriteString(strconv.FormatInt(i.N, 10)) }
func (i *Integer) showCdr(b *strings.Builder) { dottedCdr(i, b) }

func IntegerV(n int64) Value { return &Integer{N: n} }

// Rational is always held in lowest terms with a positive denominator;
// RationalV enforces that and collapses a denominator of 1 to an
// Integer.
type Rational struct {
	Num, Den int64
}

func (r *Rational) show(b *strings.Builder) {
	b.WriteString(strconv.FormatInt(r.Num, 10))
	if r.Den != 1 {
		b.WriteByte('/')
		b.WriteString(strconv.FormatInt(r.Den, 10))
	}
}
func (r *Rational) showCdr(b *strings.Builder) { dottedCdr(r, b) }

func RationalV(num, den int64) (Value, error) {
	num, den, err := normalize(num, den)
	if err != nil {
		return nil, err
	}
	if den == 1 {
		return IntegerV(num), nil
	}
	return &Rational{Num: num, Den: den}, nil
}

type Boolean struct {
	B bool
}

func (v *Boolean) show(b *strings.Builder) {
	if v.B {
		b.WriteString("#t")
	} else {
		b.WriteString("#f")
	}
}
func (v *Boolean) showCdr(b *strings.Builder) { dottedCdr(v, b) }

func BooleanV(b bool) Value { return &Boolean{B: b} }

type Symbol struct {
	Name string
}

func (s *Symbol) show(b *strings.Builder)    { b.WriteString(s.Name) }
func (s *Symbol) showCdr(b *strings.Builder) { dottedCdr(s, b) }

func SymbolV(name string) Value { return &Symbol{Name: name} }

type String struct {
	S string
}

func (s *String) show(b *strings.Builder) {
	b.WriteByte('"')
	b.WriteString(s.S)
	b.WriteByte('"')
}
func (s *String) showCdr(b *strings.Builder) { dottedCdr(s, b) }

func StringV(s string) Value { return &String{S: s} }

// Null is the unique empty-list terminator.
type Null struct{}

func (n *Null) show(b *strings.Builder)    { b.WriteString("()") }
func (n *Null) showCdr(b *strings.Builder) { b.WriteByte(')') }

func NullV() Value { return &Null{} }

// Pair forms proper and improper lists. Car and Cdr are mutable in
// place through set-car! and set-cdr!.
type Pair struct {
	Car, Cdr Value
}

func (p *Pair) show(b *strings.Builder) {
	b.WriteByte('(')
	p.Car.show(b)
	p.Cdr.showCdr(b)
}

func (p *Pair) showCdr(b *strings.Builder) {
	b.WriteByte(' ')
	p.Car.show(b)
	p.Cdr.showCdr(b)
}

func PairV(car, cdr Value) Value { return &Pair{Car: car, Cdr: cdr} }

// Procedure closes over the environment active at its definition,
// shared by reference, never copied.
type Procedure struct {
	Params []string
	Body   Expr
	Env    *Environment
}

func (p *Procedure) show(b *strings.Builder)    { b.WriteString("#<procedure>") }
func (p *Procedure) showCdr(b *strings.Builder) { dottedCdr(p, b) }

func ProcedureV(params []string, body Expr, env *Environment) Value {
	return &Procedure{Params: params, Body: body, Env: env}
}

// Terminate is the sentinel produced by (exit); drivers stop when they
// see it.
type Terminate struct{}

func (t *Terminate) show(b *strings.Builder)    { b.WriteString("()") }
func (t *Terminate) showCdr(b *strings.Builder) { dottedCdr(t, b) }

func TerminateV() Value { return &Terminate{} }

// isFalse reports whether v is the boolean #f; everything else is
// truthy.
func isFalse(v Value) bool {
	b, ok := v.(*Boolean)
	return ok && !b.B
}
