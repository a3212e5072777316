package mathexpr

import "math"

// Evaluator holds the variables and custom functions visible to the
// expressions it evaluates. Evaluators are independent of each other; it is
// safe to use one per goroutine, but a single Evaluator performs no locking,
// so concurrent mutation of a shared one must be synchronized by the caller.
type Evaluator struct {
	vars  map[string]float64
	funcs map[string]funcEntry
	// round is the number of decimal places to round results to, or -1 to
	// return results exactly as computed.
	round int
}

// funcEntry is a registered custom function with its declared arity.
type funcEntry struct {
	fn    Func
	arity int
}

// Option is an option used when creating an Evaluator.
type Option interface {
	option(*Evaluator)
}

type (
	varopt struct {
		name string
		val  float64
	}
	varsopt  map[string]float64
	roundopt int
)

func (o varopt) option(ev *Evaluator) { ev.vars[o.name] = o.val }

func (o varsopt) option(ev *Evaluator) {
	for k, v := range o {
		ev.vars[k] = v
	}
}

func (o roundopt) option(ev *Evaluator) { ev.round = int(o) }

// WithVar sets the value of a variable in the new evaluator.
func WithVar(name string, value float64) Option {
	return varopt{name, value}
}

// WithVars sets the values of any number of variables in the new evaluator.
func WithVars(vars map[string]float64) Option {
	return varsopt(vars)
}

// WithRounding makes the evaluator round every result to the given number of
// decimal places before returning it, masking representation noise such as
// 0.1+0.2 evaluating to 0.30000000000000004. A negative count restores the
// default behavior of returning results exactly as computed.
func WithRounding(places int) Option {
	return roundopt(places)
}

// New creates an evaluator with empty variable and function tables. The
// given options are applied in order.
func New(opts ...Option) *Evaluator {
	ev := &Evaluator{
		vars:  make(map[string]float64),
		funcs: make(map[string]funcEntry),
		round: -1,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.option(ev)
	}
	return ev
}

// AddVar sets the value of a variable, inserting or overwriting. Variables
// shadow every other meaning of their name, including builtins.
func (ev *Evaluator) AddVar(name string, value float64) {
	ev.vars[name] = value
}

// RemoveVar removes a variable. Removing a name that is not present is a
// no-op.
func (ev *Evaluator) RemoveVar(name string) {
	delete(ev.vars, name)
}

// AddFunc registers a custom function, replacing any previous registration
// of the same name. arity is the exact number of arguments the function
// requires, or Variadic to accept any count of at least one; any negative
// arity means Variadic.
func (ev *Evaluator) AddFunc(name string, fn Func, arity int) {
	if arity < 0 {
		arity = Variadic
	}
	ev.funcs[name] = funcEntry{fn, arity}
}

// RemoveFunc removes a custom function. Removing a name that is not present
// is a no-op.
func (ev *Evaluator) RemoveFunc(name string) {
	delete(ev.funcs, name)
}

// Eval evaluates a single expression and returns its value. Malformed input
// yields an error implementing InputError and no value. Numeric edge cases
// are not errors: division by zero, logarithms of non-positive values, and
// overflow all propagate as IEEE-754 infinities or NaN.
func (ev *Evaluator) Eval(expr string) (float64, error) {
	s := newScanner(expr)
	s.skipSpace()
	if s.eof() {
		return 0, &EmptyExprError{}
	}
	p := parser{s: s, ev: ev}
	v, err := p.expression()
	if err != nil {
		return 0, err
	}
	s.skipSpace()
	if !s.eof() {
		// The whole input must belong to the expression.
		return 0, &CharError{Col: s.col(), Char: s.rune()}
	}
	if ev.round >= 0 {
		v = roundTo(v, ev.round)
	}
	return v, nil
}

// Eval is a shortcut to evaluate an expression with only the builtin
// catalogue in scope.
func Eval(expr string) (float64, error) {
	return New().Eval(expr)
}

// roundTo rounds v to the given number of decimal places. When the scale
// factor or the scaled value overflows float64, v has no representable digits
// at that precision anyway and is returned unchanged.
func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	r := math.Round(v*p) / p
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return v
	}
	return r
}
