package scheme

import (
	"io"
	"os"
)

// frame is a single (name, value) binding plus its parent link.
// Chains of frames form lexical scopes; closures and call sites share
// suffixes of the same chain, so rewriting a frame's value in place is
// visible to every holder. A nil value marks a letrec/define
// placeholder that has not been initialized yet.
type frame struct {
	name  string
	value Value
	next  *frame
}

// Environment is a handle on a frame chain. Extend returns a fresh
// handle one frame larger; Define widens this handle in place, which
// is the permanent scope-widening effect of define.
type Environment struct {
	head *frame
	out  io.Writer
}

func NewEnvironment() *Environment {
	return &Environment{out: os.Stdout}
}

// SetOutput redirects display output, e.g. to a buffer in tests.
func (e *Environment) SetOutput(w io.Writer) {
	e.out = w
}

func (e *Environment) Extend(name string, v Value) *Environment {
	return &Environment{head: &frame{name: name, value: v, next: e.head}, out: e.out}
}

func (e *Environment) Define(name string, v Value) {
	e.head = &frame{name: name, value: v, next: e.head}
}

// Lookup walks from the innermost frame outward; the first matching
// name wins. A placeholder binding reports ok with a nil value.
func (e *Environment) Lookup(name string) (Value, bool) {
	for f := e.head; f != nil; f = f.next {
		if f.name == name {
			return f.value, true
		}
	}
	return nil, false
}

// Modify rewrites the bound value at the frame where name is first
// found. The mutation is observable through every environment sharing
// that frame.
func (e *Environment) Modify(name string, v Value) error {
	for f := e.head; f != nil; f = f.next {
		if f.name == name {
			f.value = v
			return nil
		}
	}
	return newError(ErrUnboundVariable, "undefined variable: %s", name)
}

func (e *Environment) Bound(name string) bool {
	_, ok := e.Lookup(name)
	return ok
}

// snapshot captures the current chain under a fresh handle, so later
// defines through this handle do not widen the captured scope.
func (e *Environment) snapshot() *Environment {
	return &Environment{head: e.head, out: e.out}
}
