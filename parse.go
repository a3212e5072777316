package mathexpr

import (
	"errors"
	"math"
	"strconv"
)

// Expression = Term { ('+' | '-') Term }
// Term       = Factor { ('*' | '/' | '%' | '^') Factor }
// Factor     = '+' Factor | '-' Factor | '(' Expression ')' | Call | name | number
// Call       = funcname '(' [ Expression { [','] Expression } ] ')'
//            | funcname Factor
//
// All binary operators are left-associative, and '^' shares the tier of '*'
// and '/': "2^3^2" is (2^3)^2 = 64. Parsing and evaluation are fused; each
// production returns the value of the input it consumed.

// parser drives the scanner through one expression, resolving names against
// the owning evaluator's tables.
type parser struct {
	s  *scanner
	ev *Evaluator
}

// expression parses a chain of terms joined by '+' and '-'.
func (p *parser) expression() (float64, error) {
	v, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		switch {
		case p.s.accept('+'):
			rhs, err := p.term()
			if err != nil {
				return 0, err
			}
			v += rhs
		case p.s.accept('-'):
			rhs, err := p.term()
			if err != nil {
				return 0, err
			}
			v -= rhs
		default:
			return v, nil
		}
	}
}

// term parses a chain of factors joined by '*', '/', '%', and '^', applied
// strictly left to right.
func (p *parser) term() (float64, error) {
	v, err := p.factor()
	if err != nil {
		return 0, err
	}
	for {
		switch {
		case p.s.accept('*'):
			rhs, err := p.factor()
			if err != nil {
				return 0, err
			}
			v *= rhs
		case p.s.accept('/'):
			rhs, err := p.factor()
			if err != nil {
				return 0, err
			}
			v /= rhs
		case p.s.accept('%'):
			rhs, err := p.factor()
			if err != nil {
				return 0, err
			}
			v = math.Mod(v, rhs)
		case p.s.accept('^'):
			rhs, err := p.factor()
			if err != nil {
				return 0, err
			}
			v = math.Pow(v, rhs)
		default:
			return v, nil
		}
	}
}

// factor parses the tightest-binding production: unary sign, parenthesized
// subexpression, identifier, or numeric literal.
func (p *parser) factor() (float64, error) {
	if p.s.accept('+') {
		return p.factor()
	}
	if p.s.accept('-') {
		v, err := p.factor()
		if err != nil {
			return 0, err
		}
		return -v, nil
	}
	if p.s.accept('(') {
		v, err := p.expression()
		if err != nil {
			return 0, err
		}
		if !p.s.accept(')') {
			return 0, &BracketError{Col: p.s.col()}
		}
		return v, nil
	}
	p.s.skipSpace()
	switch {
	case isIdentStart(p.s.ch):
		return p.identifier()
	case isDigit(p.s.ch), p.s.ch == '.':
		return p.number()
	default:
		return 0, &CharError{Col: p.s.col(), Char: p.s.rune()}
	}
}

// identifier scans a name and resolves it. Resolution order is fixed:
// variables shadow custom functions, which shadow built-in constants, which
// shadow built-in functions. Variables never take arguments.
func (p *parser) identifier() (float64, error) {
	col := p.s.col()
	name := p.s.scanIdent()
	if v, ok := p.ev.vars[name]; ok {
		return v, nil
	}
	if f, ok := p.ev.funcs[name]; ok {
		return p.call(name, f.fn, f.arity, col)
	}
	if c, ok := constants[name]; ok {
		return c, nil
	}
	if f, ok := builtins[name]; ok {
		return p.call(name, f.fn, f.arity, col)
	}
	return 0, &NameError{Col: col, Name: name}
}

// call parses an argument list, validates its length, and invokes fn.
func (p *parser) call(name string, fn Func, arity, col int) (float64, error) {
	args, err := p.args()
	if err != nil {
		return 0, err
	}
	switch {
	case arity == Variadic:
		if len(args) == 0 {
			return 0, &ArityError{Col: col, Func: name, Want: 1, Got: 0, Variadic: true}
		}
	case len(args) != arity:
		return 0, &ArityError{Col: col, Func: name, Want: arity, Got: len(args)}
	}
	return fn(args), nil
}

// args parses a function argument list. With parentheses, arguments are
// whole expressions and the comma separator is optional: "max(1 2 3)" and
// "max(1, 2, 3)" are the same call. Without parentheses, the single argument
// is one factor, so that "sqrt 100 * 70" is sqrt(100)*70.
func (p *parser) args() ([]float64, error) {
	if !p.s.accept('(') {
		v, err := p.factor()
		if err != nil {
			return nil, err
		}
		return []float64{v}, nil
	}
	if p.s.accept(')') {
		return nil, nil
	}
	var args []float64
	for {
		v, err := p.expression()
		if err != nil {
			return nil, err
		}
		args = append(args, v)
		p.s.accept(',')
		if p.s.accept(')') {
			return args, nil
		}
		if p.s.eof() {
			return nil, &BracketError{Col: p.s.col()}
		}
	}
}

// number scans and converts a numeric literal.
func (p *parser) number() (float64, error) {
	col := p.s.col()
	text := p.s.scanNumber()
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// Out-of-range literals saturate to ±Inf, which is a value here,
		// not an error.
		if errors.Is(err, strconv.ErrRange) {
			return v, nil
		}
		// The literal is all ASCII, so the offending text begins at its
		// first byte. In practice this is a bare '.' with no digits.
		return 0, &CharError{Col: col, Char: rune(text[0])}
	}
	return v, nil
}
