package scheme

import (
	"io"
	"os"
)

// Run reads a whole program, translating and evaluating each
// top-level form in order against env. It returns the value of the
// last form, or the Terminate sentinel as soon as one form evaluates
// to it.
func Run(env *Environment, r io.Reader) (Value, error) {
	forms, err := NewParser(r).Parse()
	if err != nil {
		return nil, err
	}

	ret := VoidV()
	for _, stx := range forms {
		expr, err := Translate(stx, env)
		if err != nil {
			return nil, err
		}
		v, err := Evaluate(expr, env)
		if err != nil {
			return nil, err
		}
		if _, ok := v.(*Terminate); ok {
			return v, nil
		}
		ret = v
	}
	return ret, nil
}

// LoadFile runs the program in the named file against env.
func LoadFile(env *Environment, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = Run(env, f)
	return err
}
