package scheme

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
	"strings"
	"unicode"
)

func NewParser(r io.Reader) *Parser {
	return &Parser{
		buf: bufio.NewReader(r),
	}
}

type Parser struct {
	buf *bufio.Reader
	pos int
}

func isSymbolRune(r rune) bool {
	return strings.ContainsRune(`+-*/<>=&%?.@_#$:!`, r)
}

func (p *Parser) Pos() int {
	return p.pos
}

func (p *Parser) readRune() (rune, error) {
	r, n, err := p.buf.ReadRune()
	p.pos += n
	return r, err
}

func (p *Parser) unreadRune() error {
	err := p.buf.UnreadRune()
	p.pos -= 1
	return err
}

func (p *Parser) skipWhite() {
	for {
		r, err := p.readRune()
		if err != nil {
			return
		}
		if r == ';' {
			for {
				r, err = p.readRune()
				if err != nil {
					return
				}
				if r == '\n' {
					break
				}
			}
			continue
		}
		if !unicode.IsSpace(r) {
			p.unreadRune()
			return
		}
	}
}

func (p *Parser) parseList() (Syntax, error) {
	list := &List{}
	for {
		p.skipWhite()
		b, err := p.buf.Peek(1)
		if err != nil {
			return nil, newError(ErrSyntax, "unexpected end of file: %d", p.Pos())
		}
		if b[0] == ')' {
			p.readRune()
			return list, nil
		}
		child, err := p.parseAny()
		if err != nil {
			return nil, err
		}
		list.Items = append(list.Items, child)
	}
}

func (p *Parser) parseString() (Syntax, error) {
	var buf bytes.Buffer
	for {
		r, err := p.readRune()
		if err != nil {
			return nil, newError(ErrSyntax, "unterminated string: %d", p.Pos())
		}

		if r == '\\' {
			r, err = p.readRune()
			if err != nil {
				return nil, newError(ErrSyntax, "unterminated string: %d", p.Pos())
			}
			switch r {
			case '\\':
				r = '\\'
			case 'n':
				r = '\n'
			case 'r':
				r = '\r'
			case 't':
				r = '\t'
			case 'b':
				r = '\b'
			case 'f':
				r = '\f'
			case '"':
				buf.WriteRune(r)
				continue
			}
		}
		if r == '"' {
			break
		}
		buf.WriteRune(r)
	}
	return &StringSyntax{S: buf.String()}, nil
}

func (p *Parser) parseQuote() (Syntax, error) {
	node, err := p.parseAny()
	if err == io.EOF {
		return nil, newError(ErrSyntax, "unexpected end of file: %d", p.Pos())
	}
	if err != nil {
		return nil, err
	}
	return &List{Items: []Syntax{&SymbolSyntax{Name: "quote"}, node}}, nil
}

func (p *Parser) parseAtom() (Syntax, error) {
	var buf bytes.Buffer
	for {
		r, err := p.readRune()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}

		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !isSymbolRune(r) {
			p.unreadRune()
			break
		}
		buf.WriteRune(r)
	}

	s := buf.String()

	if s == "#t" {
		return &TrueSyntax{}, nil
	}
	if s == "#f" {
		return &FalseSyntax{}, nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return &Number{N: n}, nil
	}
	if i := strings.IndexByte(s, '/'); i > 0 && i < len(s)-1 {
		num, errN := strconv.ParseInt(s[:i], 10, 64)
		den, errD := strconv.ParseInt(s[i+1:], 10, 64)
		if errN == nil && errD == nil {
			return &RationalSyntax{Num: num, Den: den}, nil
		}
	}
	return &SymbolSyntax{Name: s}, nil
}

func (p *Parser) parseAny() (Syntax, error) {
	p.skipWhite()
	r, err := p.readRune()
	if err != nil {
		return nil, err
	}

	if r == '(' {
		return p.parseList()
	}
	if unicode.IsLetter(r) || unicode.IsDigit(r) || isSymbolRune(r) {
		p.unreadRune()
		return p.parseAtom()
	}
	if r == '\'' {
		return p.parseQuote()
	}
	if r == '"' {
		return p.parseString()
	}
	return nil, newError(ErrSyntax, "invalid token: %q (%d)", r, p.Pos())
}

// ParseForm reads one top-level datum; io.EOF signals a clean end of
// input.
func (p *Parser) ParseForm() (Syntax, error) {
	p.skipWhite()
	b, err := p.buf.Peek(1)
	if err != nil {
		return nil, io.EOF
	}
	if b[0] == ')' {
		return nil, newError(ErrSyntax, "unexpected ')': %d", p.Pos())
	}
	return p.parseAny()
}

// Parse reads every top-level datum until end of input.
func (p *Parser) Parse() ([]Syntax, error) {
	var forms []Syntax
	for {
		stx, err := p.ParseForm()
		if err == io.EOF {
			return forms, nil
		}
		if err != nil {
			return nil, err
		}
		forms = append(forms, stx)
	}
}
