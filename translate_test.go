package scheme

import (
	"strings"
	"testing"
)

func translateOne(t *testing.T, src string) (Expr, error) {
	t.Helper()
	forms, err := NewParser(strings.NewReader(src)).Parse()
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	if len(forms) != 1 {
		t.Fatalf("parse %q: %d forms", src, len(forms))
	}
	return Translate(forms[0], NewEnvironment())
}

func mustTranslate(t *testing.T, src string) Expr {
	t.Helper()
	e, err := translateOne(t, src)
	if err != nil {
		t.Fatalf("translate %q: %v", src, err)
	}
	return e
}

func TestTranslateShapes(t *testing.T) {
	tests := []struct {
		src  string
		want Expr
	}{
		{"1", &Fixnum{}},
		{"1/2", &RationalLit{}},
		{`"s"`, &StringLit{}},
		{"#t", &True{}},
		{"#f", &False{}},
		{"x", &Var{}},
		{"(car x)", &UnaryExpr{}},
		{"(+ 1 2)", &BinaryExpr{}},
		{"(+ 1 2 3)", &VariadicExpr{}},
		{"(+)", &VariadicExpr{}},
		{"(- 1)", &VariadicExpr{}},
		{"(list 1 2)", &VariadicExpr{}},
		{"(cons 1 2)", &BinaryExpr{}},
		{"(and 1 2)", &And{}},
		{"(or)", &Or{}},
		{"(void)", &MakeVoid{}},
		{"(exit)", &Exit{}},
		{"(begin 1 2)", &Begin{}},
		{"(if #t 1 2)", &If{}},
		{"(cond (#t 1))", &Cond{}},
		{"(lambda (x) x)", &Lambda{}},
		{"(f 1 2)", &Apply{}},
		{"((lambda (x) x) 1)", &Apply{}},
		{"(define x 1)", &Define{}},
		{"(let ((x 1)) x)", &Let{}},
		{"(letrec ((x 1)) x)", &Letrec{}},
		{"(set! x 1)", &Set{}},
		{"'x", &Quote{}},
		{"()", &Quote{}},
	}
	for _, test := range tests {
		e := mustTranslate(t, test.src)
		// Compare the dynamic types only.
		if gotT, wantT := typeName(e), typeName(test.want); gotT != wantT {
			t.Errorf("translate %q = %s, want %s", test.src, gotT, wantT)
		}
	}
}

func typeName(e Expr) string {
	switch e.(type) {
	case *Fixnum:
		return "Fixnum"
	case *RationalLit:
		return "RationalLit"
	case *StringLit:
		return "StringLit"
	case *True:
		return "True"
	case *False:
		return "False"
	case *MakeVoid:
		return "MakeVoid"
	case *Exit:
		return "Exit"
	case *Quote:
		return "Quote"
	case *UnaryExpr:
		return "UnaryExpr"
	case *BinaryExpr:
		return "BinaryExpr"
	case *VariadicExpr:
		return "VariadicExpr"
	case *Var:
		return "Var"
	case *Begin:
		return "Begin"
	case *And:
		return "And"
	case *Or:
		return "Or"
	case *If:
		return "If"
	case *Cond:
		return "Cond"
	case *Lambda:
		return "Lambda"
	case *Apply:
		return "Apply"
	case *Define:
		return "Define"
	case *Let:
		return "Let"
	case *Letrec:
		return "Letrec"
	case *Set:
		return "Set"
	}
	return "unknown"
}

func TestTranslateDefineFunctionForm(t *testing.T) {
	e := mustTranslate(t, "(define (add a b) (+ a b))")
	def, ok := e.(*Define)
	if !ok {
		t.Fatalf("got %T", e)
	}
	if def.Name != "add" {
		t.Errorf("name = %q", def.Name)
	}
	lam, ok := def.E.(*Lambda)
	if !ok {
		t.Fatalf("body = %T, want lambda", def.E)
	}
	if len(lam.Params) != 2 || lam.Params[0] != "a" || lam.Params[1] != "b" {
		t.Errorf("params = %v", lam.Params)
	}

	// Multiple body forms get an implicit begin.
	e = mustTranslate(t, "(define (f) (display 1) 2)")
	lam = e.(*Define).E.(*Lambda)
	if _, ok := lam.Body.(*Begin); !ok {
		t.Errorf("multi-form body = %T, want Begin", lam.Body)
	}
}

func TestTranslateQuoteDatum(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"'x", "x"},
		{"'1", "1"},
		{"'()", "()"},
		{"'(1 2 3)", "(1 2 3)"},
		{"'(1 . 2)", "(1 . 2)"},
		{"'(1 2 . 3)", "(1 2 . 3)"},
		{"'(a (b c))", "(a (b c))"},
		{"''a", "(quote a)"},
		{"'#t", "#t"},
		{`'"s"`, `"s"`},
		{"'1/2", "1/2"},
	}
	for _, test := range tests {
		e := mustTranslate(t, test.src)
		q, ok := e.(*Quote)
		if !ok {
			t.Fatalf("translate %q = %T", test.src, e)
		}
		if got := Show(q.Datum); got != test.want {
			t.Errorf("translate %q datum = %q, want %q", test.src, got, test.want)
		}
	}
}

func TestTranslateErrors(t *testing.T) {
	tests := []struct {
		src  string
		kind ErrorKind
	}{
		{"(car)", ErrSyntax},
		{"(car 1 2)", ErrSyntax},
		{"(modulo 1)", ErrSyntax},
		{"(cons 1)", ErrSyntax},
		{"(-)", ErrSyntax},
		{"(< 1)", ErrSyntax},
		{"(void 1)", ErrSyntax},
		{"(if #t 1)", ErrSyntax},
		{"(if #t 1 2 3)", ErrSyntax},
		{"(quote)", ErrSyntax},
		{"(quote 1 2)", ErrSyntax},
		{"(cond)", ErrSyntax},
		{"(cond ())", ErrSyntax},
		{"(cond (else 1) (#t 2))", ErrSyntax},
		{"(lambda (x))", ErrSyntax},
		{"(lambda x x)", ErrSyntax},
		{"(lambda (1) x)", ErrSyntax},
		{"(define)", ErrSyntax},
		{"(define x)", ErrSyntax},
		{"(define x 1 2)", ErrSyntax},
		{"(define 1 2)", ErrSyntax},
		{"(define () 1)", ErrSyntax},
		{"(define (1 x) x)", ErrSyntax},
		{"(let ((x 1)))", ErrSyntax},
		{"(let x 1)", ErrSyntax},
		{"(let ((x)) x)", ErrSyntax},
		{"(let ((1 2)) 3)", ErrSyntax},
		{"(letrec ((x 1)))", ErrSyntax},
		{"(set! x)", ErrSyntax},
		{"(set! 1 2)", ErrSyntax},
		{"@foo", ErrSyntax},
		{".x", ErrSyntax},
		{"(quote (. 1))", ErrMalformedQuote},
		{"(quote (1 .))", ErrMalformedQuote},
		{"(quote (1 . 2 3))", ErrMalformedQuote},
	}
	for _, test := range tests {
		_, err := translateOne(t, test.src)
		if err == nil {
			t.Errorf("translate %q: want error", test.src)
			continue
		}
		if kind, ok := KindOf(err); !ok || kind != test.kind {
			t.Errorf("translate %q: kind = %v, want %v", test.src, kind, test.kind)
		}
	}
}
