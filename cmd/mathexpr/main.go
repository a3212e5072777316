package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/Yardanico/mathexpr"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb string
		with         [][2]string
		round        int
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.Func("given", "name=value variable definition (any number of times)", addwith)
	flag.IntVar(&round, "round", -1, "decimal places to round results to (negative for none)")
	flag.Parse()
	verb += "\n"

	ev := mathexpr.New(mathexpr.WithRounding(round))
	for _, d := range with {
		nm, vl := d[0], d[1]
		// Definitions are themselves expressions, so -given t=2*pi works.
		r, err := ev.Eval(vl)
		if err != nil {
			log.Fatalf("setting %s: %v", nm, err)
		}
		ev.AddVar(nm, r)
	}

	os.Exit(run(ev, inname, flag.Args(), verb, os.Stdout, os.Stderr))
}

// run evaluates the input file (or stdin) and then any argument expressions,
// in that order. An explicit -in is read even when arguments are also given;
// the default stdin is only read when there are no arguments. The result is
// the process exit code.
func run(ev *mathexpr.Evaluator, inname string, args []string, verb string, out, errw io.Writer) int {
	code := 0
	if inname != "" || len(args) == 0 {
		in, prompt, err := input(inname)
		if err != nil {
			log.Fatal(err)
		}
		if !repl(ev, in, prompt, verb, out, errw) {
			code = 1
		}
	}
	for _, arg := range args {
		r, err := ev.Eval(arg)
		if err != nil {
			fmt.Fprintln(errw, err)
			code = 1
			continue
		}
		fmt.Fprintf(out, verb, r)
	}
	return code
}

// input opens the expression source. The second result reports whether to
// print an interactive prompt, which is only wanted when reading directly
// from a terminal.
func input(inname string) (io.Reader, bool, error) {
	if inname != "" && inname != "-" {
		f, err := os.Open(inname)
		if err != nil {
			return nil, false, err
		}
		return f, false, nil
	}
	return os.Stdin, isatty.IsTerminal(os.Stdin.Fd()), nil
}

// repl evaluates one expression per input line. Errors are reported per line
// and do not end the session; the result reports whether every line
// succeeded.
func repl(ev *mathexpr.Evaluator, in io.Reader, prompt bool, verb string, out, errw io.Writer) bool {
	ok := true
	scan := bufio.NewScanner(in)
	for {
		if prompt {
			fmt.Fprint(out, "> ")
		}
		if !scan.Scan() {
			break
		}
		line := strings.TrimSpace(scan.Text())
		if line == "" {
			continue
		}
		r, err := ev.Eval(line)
		if err != nil {
			fmt.Fprintln(errw, err)
			ok = false
			continue
		}
		fmt.Fprintf(out, verb, r)
	}
	if err := scan.Err(); err != nil {
		log.Fatal(err)
	}
	return ok
}
