package mathexpr

import "math"

// Func is a function from reals to a real. Callbacks registered with AddFunc
// receive the evaluated argument list; by the time a callback runs, its
// length has already been validated against the declared arity.
type Func func(args []float64) float64

// Variadic is the arity of a function accepting any number of arguments
// greater than zero.
const Variadic = -1

// builtin pairs an operation with its declared arity.
type builtin struct {
	fn    Func
	arity int
}

func unary(f func(float64) float64) builtin {
	return builtin{func(args []float64) float64 { return f(args[0]) }, 1}
}

func binary(f func(x, y float64) float64) builtin {
	return builtin{func(args []float64) float64 { return f(args[0], args[1]) }, 2}
}

func variadic(f func(args []float64) float64) builtin {
	return builtin{f, Variadic}
}

// constants are the named constants. Registered variables of the same name
// shadow them.
var constants = map[string]float64{
	"pi":  math.Pi,
	"tau": 2 * math.Pi,
	"e":   math.E,
}

// builtins is the function catalogue. Aliases are separate keys sharing one
// entry, so "arccos" and "acos" are the same function by construction.
var builtins map[string]builtin

func init() {
	builtins = map[string]builtin{
		"abs":   unary(math.Abs),
		"acos":  unary(math.Acos),
		"asin":  unary(math.Asin),
		"atan":  unary(math.Atan),
		"atan2": binary(math.Atan2),
		"ceil":  unary(math.Ceil),
		"cos":   unary(math.Cos),
		"cosh":  unary(math.Cosh),
		"deg":   unary(degrees),
		"exp":   unary(math.Exp),
		"fac":   unary(factorial),
		"floor": unary(math.Floor),
		"ln":    unary(math.Log),
		"log":   unary(math.Log10),
		"log2":  unary(math.Log2),
		"max":   variadic(largest),
		"min":   variadic(smallest),
		"ncr":   binary(binomial),
		"npr":   binary(permutations),
		"pow":   binary(math.Pow),
		"rad":   unary(radians),
		"sgn":   unary(sign),
		"sin":   unary(math.Sin),
		"sinh":  unary(math.Sinh),
		"sqrt":  unary(math.Sqrt),
		"sum":   variadic(total),
		"tan":   unary(math.Tan),
		"tanh":  unary(math.Tanh),
	}
	for alias, name := range map[string]string{
		"arccos":  "acos",
		"arcsin":  "asin",
		"arctan":  "atan",
		"arctg":   "atan",
		"arctan2": "atan2",
		"binom":   "ncr",
		"log10":   "log",
		"tg":      "tan",
	} {
		builtins[alias] = builtins[name]
	}
}

func degrees(x float64) float64 {
	return x * (180 / math.Pi)
}

func radians(x float64) float64 {
	return x * (math.Pi / 180)
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		// 0, -0, or NaN.
		return x
	}
}

// factorial computes n! for the truncated integer part of x. Negative and
// NaN arguments give NaN; 171! and beyond overflow float64 to +Inf.
func factorial(x float64) float64 {
	if math.IsNaN(x) || x < 0 {
		return math.NaN()
	}
	// Truncation happens before the overflow cap, so anything below 171
	// still gets its finite factorial. The comparison also keeps the int
	// conversion below in range.
	if x >= 171 {
		return math.Inf(1)
	}
	r := 1.0
	for i := 2; i <= int(x); i++ {
		r *= float64(i)
	}
	return r
}

// binomial computes C(n, k) over the truncated integer parts of x and y.
// Out-of-domain pairs give 0, matching the convention for choosing more
// items than exist.
func binomial(x, y float64) float64 {
	if math.IsNaN(x) || math.IsNaN(y) {
		return math.NaN()
	}
	n, k := int(x), int(y)
	if n < 0 || k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	r := 1.0
	for i := 1; i <= k; i++ {
		r = r * float64(n-k+i) / float64(i)
	}
	return math.Round(r)
}

// permutations computes P(n, k) = C(n, k) * k!.
func permutations(x, y float64) float64 {
	return binomial(x, y) * factorial(y)
}

func total(args []float64) float64 {
	r := 0.0
	for _, v := range args {
		r += v
	}
	return r
}

func largest(args []float64) float64 {
	r := args[0]
	for _, v := range args[1:] {
		r = math.Max(r, v)
	}
	return r
}

func smallest(args []float64) float64 {
	r := args[0]
	for _, v := range args[1:] {
		r = math.Min(r, v)
	}
	return r
}
