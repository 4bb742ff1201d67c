package scheme

import "fmt"

// ErrorKind classifies every failure the translator and the evaluator
// can raise. The first failure propagates to the caller unchanged;
// nothing in this package recovers from an error.
type ErrorKind int

const (
	ErrSyntax ErrorKind = iota
	ErrUnboundVariable
	ErrNotAProcedure
	ErrArityMismatch
	ErrType
	ErrDivisionByZero
	ErrOverflow
	ErrMalformedQuote
)

func (k ErrorKind) String() string {
	switch k {
	case ErrSyntax:
		return "syntax error"
	case ErrUnboundVariable:
		return "unbound variable"
	case ErrNotAProcedure:
		return "not a procedure"
	case ErrArityMismatch:
		return "arity mismatch"
	case ErrType:
		return "type error"
	case ErrDivisionByZero:
		return "division by zero"
	case ErrOverflow:
		return "arithmetic overflow"
	case ErrMalformedQuote:
		return "malformed quote"
	}
	return "unknown error"
}

type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

func newError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// KindOf reports the taxonomy kind of err, if err came out of this
// package.
func KindOf(err error) (ErrorKind, bool) {
	if e, ok := err.(*Error); ok {
		return e.Kind, true
	}
	return 0, false
}
