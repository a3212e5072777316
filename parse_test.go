package mathexpr_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yardanico/mathexpr"
)

func TestEvalArithmetic(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want float64
	}{
		{"num", "1", 1},
		{"float", "12.34", 12.34},
		{"leading-dot", ".5*4", 2},
		{"trailing-dot", "5.*2", 10},
		{"exponent", "2e3", 2000},
		{"exponent-sign", "1.5e-2", 0.015},
		{"exponent-upper", "1E2", 100},
		{"add", "4+5+6", 15},
		{"sub", "4-5-6", -7},
		{"mul", "4*5*6", 120},
		{"div", "4/5/6", 4.0 / 5.0 / 6.0},
		{"mod", "7 % 4", 3},
		{"mod-chain", "10%4%3", 2},
		{"precedence", "2+3*4", 14},
		{"parens", "(2+3)*4", 20},
		{"nested-parens", "2*(3+(4-1))", 12},
		{"pow-left-assoc", "2^3^2", 64},
		{"pow-same-tier", "2*3^2", 36},
		{"pow-unary-rhs", "2^-2", 0.25},
		{"unary-plus", "+5", 5},
		{"unary-minus", "-5+10", 5},
		{"double-minus", "--5", 5},
		{"mixed-signs", "+-5", -5},
		{"whitespace", " \t 1 + \n 2 ", 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := mathexpr.Eval(c.src)
			require.NoError(t, err)
			assert.Equal(t, c.want, r)
		})
	}
}

func TestEvalCalls(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want float64
	}{
		{"sqrt", "sqrt(16)", 4},
		{"bare-arg", "sqrt 100 * 70", 700},
		{"bare-arg-negative", "cos -0", 1},
		{"space-args", "max(1 2 3)", 3},
		{"comma-args", "max(1, 2, 3)", 3},
		{"mixed-args", "min(4 2, 8)", 2},
		{"space-before-parens", "max (1 2)", 2},
		{"sum", "sum(1 2 3.5)", 6.5},
		{"pow", "pow(2 10)", 1024},
		{"abs", "abs(-3)", 3},
		{"floor", "floor(2.7)", 2},
		{"ceil", "ceil(2.1)", 3},
		{"fac", "fac(5)", 120},
		{"fac-truncates", "fac 5.9", 120},
		{"ncr", "ncr(5 2)", 10},
		{"npr", "npr(5 2)", 20},
		{"sgn-neg", "sgn(-3)", -1},
		{"sgn-zero", "sgn 0", 0},
		{"sgn-pos", "sgn(4)", 1},
		{"log", "log(100)", 2},
		{"log2", "log2(8)", 3},
		{"exp", "exp(0)", 1},
		{"atan2", "atan2(0, 1)", 0},
		{"cos", "cos(0)", 1},
		{"sinh", "sinh(0)", 0},
		{"call-in-expr", "1 + sqrt(9) * 2", 7},
		{"call-as-arg", "max(sqrt(16), 3)", 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := mathexpr.Eval(c.src)
			require.NoError(t, err)
			assert.Equal(t, c.want, r)
		})
	}
}

func TestEvalConstants(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want float64
	}{
		{"pi", "pi", math.Pi},
		{"tau", "tau", 2 * math.Pi},
		{"e", "e", math.E},
		{"tau-pi", "tau/2 - pi", 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := mathexpr.Eval(c.src)
			require.NoError(t, err)
			assert.Equal(t, c.want, r)
		})
	}
}

func TestEvalTranscendental(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want float64
	}{
		{"ln-e", "ln(e)", 1},
		{"deg", "deg(pi)", 180},
		{"rad", "rad(180)", math.Pi},
		{"sin", "sin(pi/2)", 1},
		{"tanh", "tanh(100)", 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := mathexpr.Eval(c.src)
			require.NoError(t, err)
			assert.InDelta(t, c.want, r, 1e-12)
		})
	}
}

func TestEvalAliases(t *testing.T) {
	cases := []struct {
		name       string
		src, alias string
	}{
		{"log10", "log(100)", "log10(100)"},
		{"arccos", "acos(0.5)", "arccos(0.5)"},
		{"arcsin", "asin(.3)", "arcsin(.3)"},
		{"arctan", "atan(1)", "arctan(1)"},
		{"arctg", "atan(1)", "arctg(1)"},
		{"arctan2", "atan2(1 2)", "arctan2(1 2)"},
		{"tg", "tan(1)", "tg(1)"},
		{"binom", "ncr(7 3)", "binom(7 3)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := mathexpr.Eval(c.src)
			require.NoError(t, err)
			b, err := mathexpr.Eval(c.alias)
			require.NoError(t, err)
			assert.Equal(t, a, b)
		})
	}
}

func TestEvalNonFinite(t *testing.T) {
	t.Run("nan", func(t *testing.T) {
		for _, src := range []string{"0/0", "0 % 0", "sqrt(-1)", "fac(-1)"} {
			r, err := mathexpr.Eval(src)
			require.NoError(t, err, "%q should not error", src)
			assert.True(t, math.IsNaN(r), "%q should be NaN, got %g", src, r)
		}
	})
	t.Run("inf", func(t *testing.T) {
		cases := []struct {
			src  string
			sign int
		}{
			{"1/0", 1},
			{"-1/0", -1},
			{"log(0)", -1},
			{"1e999", 1},
			{"fac(200)", 1},
		}
		for _, c := range cases {
			r, err := mathexpr.Eval(c.src)
			require.NoError(t, err, "%q should not error", c.src)
			assert.True(t, math.IsInf(r, c.sign), "%q should be Inf(%d), got %g", c.src, c.sign, r)
		}
	})
}

func TestEvalErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
		pos  int
	}{
		{"empty", "", &mathexpr.EmptyExprError{}, 1},
		{"blank", "   \t ", &mathexpr.EmptyExprError{}, 1},
		{"open-group", "(1+2", &mathexpr.BracketError{}, 5},
		{"open-nested", "2*(4+1", &mathexpr.BracketError{}, 7},
		{"open-call", "max(1, 2", &mathexpr.BracketError{}, 9},
		{"bad-char", "1 $ 2", &mathexpr.CharError{}, 3},
		{"bad-char-unicode", "1 × 2", &mathexpr.CharError{}, 3},
		{"cut-short", "1 + ", &mathexpr.CharError{}, 5},
		{"empty-group", "()", &mathexpr.CharError{}, 2},
		{"trailing-close", "(2+3))", &mathexpr.CharError{}, 6},
		{"trailing-num", "1 2", &mathexpr.CharError{}, 3},
		{"trailing-dot", "1..", &mathexpr.CharError{}, 3},
		{"unknown", "foo(1)", &mathexpr.NameError{}, 1},
		{"unknown-rhs", "2 + bar", &mathexpr.NameError{}, 5},
		{"too-many", "sqrt(1, 2)", &mathexpr.ArityError{}, 1},
		{"too-few", "pow(1)", &mathexpr.ArityError{}, 1},
		{"variadic-empty", "max()", &mathexpr.ArityError{}, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := mathexpr.Eval(c.src)
			require.Error(t, err)
			require.IsType(t, c.err, err, "evaluating %q", c.src)
			var ie mathexpr.InputError
			require.ErrorAs(t, err, &ie)
			assert.Equal(t, c.pos, ie.Pos(), "position in %q", c.src)
			assert.NotEmpty(t, err.Error())
		})
	}
}

func TestEvalErrorPayloads(t *testing.T) {
	t.Run("char", func(t *testing.T) {
		_, err := mathexpr.Eval("1 $ 2")
		var ce *mathexpr.CharError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, '$', ce.Char)
		assert.Contains(t, ce.Error(), "'$'")
	})
	t.Run("name", func(t *testing.T) {
		_, err := mathexpr.Eval("2 + bogus")
		var ne *mathexpr.NameError
		require.ErrorAs(t, err, &ne)
		assert.Equal(t, "bogus", ne.Name)
		assert.Contains(t, ne.Error(), "bogus")
	})
	t.Run("arity", func(t *testing.T) {
		_, err := mathexpr.Eval("pow(1)")
		var ae *mathexpr.ArityError
		require.ErrorAs(t, err, &ae)
		assert.Equal(t, "pow", ae.Func)
		assert.Equal(t, 2, ae.Want)
		assert.Equal(t, 1, ae.Got)
		assert.False(t, ae.Variadic)
	})
	t.Run("arity-variadic", func(t *testing.T) {
		_, err := mathexpr.Eval("sum()")
		var ae *mathexpr.ArityError
		require.ErrorAs(t, err, &ae)
		assert.True(t, ae.Variadic)
		assert.Zero(t, ae.Got)
		assert.Contains(t, ae.Error(), "at least")
	})
}
