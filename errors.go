package mathexpr

import "strconv"

// EmptyExprError is the error from evaluating an empty or all-whitespace
// input. It implements InputError.
type EmptyExprError struct{}

func (*EmptyExprError) Error() string {
	return errpos(1, "empty expression")
}

func (*EmptyExprError) Pos() int {
	return 1
}

// BracketError is the error from an opened group or argument list with no
// matching close parenthesis. It implements InputError.
type BracketError struct {
	// Col is the position where the close parenthesis was required.
	Col int
}

func (err *BracketError) Error() string {
	return errpos(err.Col, "unbalanced parentheses")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// CharError is the error from a character appearing where no grammar
// production accepts it, including leftover input after a complete
// expression. It implements InputError.
type CharError struct {
	// Col is the position of the character.
	Col int
	// Char is the offending character, or 0 if the input ended where more
	// was required.
	Char rune
}

func (err *CharError) Error() string {
	if err.Char == 0 {
		return errpos(err.Col, "unexpected end of input")
	}
	return errpos(err.Col, "unexpected character "+strconv.QuoteRune(err.Char))
}

func (err *CharError) Pos() int {
	return err.Col
}

// NameError is the error from an identifier matching no variable, custom
// function, constant, or builtin. It implements InputError.
type NameError struct {
	// Col is the position where the identifier began.
	Col int
	// Name is the identifier.
	Name string
}

func (err *NameError) Error() string {
	return errpos(err.Col, "unknown identifier "+strconv.Quote(err.Name))
}

func (err *NameError) Pos() int {
	return err.Col
}

// ArityError is the error from calling a function with the wrong number of
// arguments. It implements InputError.
type ArityError struct {
	// Col is the position where the function name began.
	Col int
	// Func is the function name.
	Func string
	// Want is the declared arity, or 1 for a variadic function called with
	// no arguments.
	Want int
	// Got is the number of arguments the call collected.
	Got int
	// Variadic reports whether the function accepts any count >= 1.
	Variadic bool
}

func (err *ArityError) Error() string {
	if err.Variadic {
		return errpos(err.Col, err.Func+" expects at least 1 argument, got "+strconv.Itoa(err.Got))
	}
	return errpos(err.Col, err.Func+" expects "+strconv.Itoa(err.Want)+" arguments, got "+strconv.Itoa(err.Got))
}

func (err *ArityError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based column, in runes, of the token that caused
	// the error.
	Pos() int
}

var (
	_ InputError = (*EmptyExprError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*CharError)(nil)
	_ InputError = (*NameError)(nil)
	_ InputError = (*ArityError)(nil)
)
