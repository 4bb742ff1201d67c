package scheme

import (
	"strconv"
	"strings"
)

// Syntax is the parenthesized-expression tree the reader produces,
// prior to semantic translation.
type Syntax interface {
	String() string
}

type Number struct {
	N int64
}

func (n *Number) String() string { return strconv.FormatInt(n.N, 10) }

type RationalSyntax struct {
	Num, Den int64
}

func (r *RationalSyntax) String() string {
	return strconv.FormatInt(r.Num, 10) + "/" + strconv.FormatInt(r.Den, 10)
}

type StringSyntax struct {
	S string
}

func (s *StringSyntax) String() string { return strconv.Quote(s.S) }

type SymbolSyntax struct {
	Name string
}

func (s *SymbolSyntax) String() string { return s.Name }

type TrueSyntax struct{}

func (t *TrueSyntax) String() string { return "#t" }

type FalseSyntax struct{}

func (f *FalseSyntax) String() string { return "#f" }

type List struct {
	Items []Syntax
}

func (l *List) String() string {
	parts := make([]string, len(l.Items))
	for i, s := range l.Items {
		parts[i] = s.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}
