package mathexpr_test

import (
	"fmt"
	"math"

	"github.com/Yardanico/mathexpr"
)

func Example() {
	r, _ := mathexpr.Eval("(2+3)*4 + sqrt(16)")
	fmt.Println(r)
	// Output:
	// 24
}

func ExampleEvaluator_AddVar() {
	ev := mathexpr.New()
	ev.AddVar("x", 5)
	r, _ := ev.Eval("x^2 + 1")
	fmt.Println(r)
	// Output:
	// 26
}

func ExampleEvaluator_AddFunc() {
	ev := mathexpr.New()
	ev.AddFunc("hypot", func(args []float64) float64 {
		return math.Hypot(args[0], args[1])
	}, 2)
	r, _ := ev.Eval("hypot(3 4)")
	fmt.Println(r)
	// Output:
	// 5
}

func ExampleWithRounding() {
	plain, _ := mathexpr.Eval("0.1 + 0.2")
	rounded, _ := mathexpr.New(mathexpr.WithRounding(2)).Eval("0.1 + 0.2")
	fmt.Println(plain)
	fmt.Println(rounded)
	// Output:
	// 0.30000000000000004
	// 0.3
}
