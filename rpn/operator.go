package rpn

import (
	"math"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// variadic marks an operator that consumes the whole stack.
const variadic = -1

// Operator is a word that pops Arity operands and pushes Yield results.
type Operator struct {
	Symbol      string
	Arity       int
	Yield       int
	Description string

	// apply receives operands ordered bottom to top.
	apply func(args []float64) ([]float64, error)
}

func binary(symbol, desc string, fn func(a, b float64) (float64, error)) *Operator {
	return &Operator{
		Symbol:      symbol,
		Arity:       2,
		Yield:       1,
		Description: desc,
		apply: func(args []float64) ([]float64, error) {
			r, err := fn(args[0], args[1])
			return []float64{r}, err
		},
	}
}

func unary(symbol, desc string, fn func(a float64) (float64, error)) *Operator {
	return &Operator{
		Symbol:      symbol,
		Arity:       1,
		Yield:       1,
		Description: desc,
		apply: func(args []float64) ([]float64, error) {
			r, err := fn(args[0])
			return []float64{r}, err
		},
	}
}

func pure1(fn func(float64) float64) func(float64) (float64, error) {
	return func(a float64) (float64, error) { return fn(a), nil }
}

func pure2(fn func(a, b float64) float64) func(a, b float64) (float64, error) {
	return func(a, b float64) (float64, error) { return fn(a, b), nil }
}

var operators = lo.KeyBy([]*Operator{
	binary("+", "Add the top two values", pure2(func(a, b float64) float64 { return a + b })),
	binary("-", "Subtract the top value from the one below it", pure2(func(a, b float64) float64 { return a - b })),
	binary("*", "Multiply the top two values", pure2(func(a, b float64) float64 { return a * b })),
	binary("/", "Divide the second value by the top value", func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	}),
	binary("%", "Remainder of dividing the second value by the top value", func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return math.Mod(a, b), nil
	}),
	binary("^", "Raise the second value to the power of the top value", pure2(math.Pow)),
	binary("max", "Keep the larger of the top two values", pure2(math.Max)),
	binary("min", "Keep the smaller of the top two values", pure2(math.Min)),

	unary("neg", "Negate the top value", pure1(func(a float64) float64 { return -a })),
	unary("abs", "Absolute value of the top value", pure1(math.Abs)),
	unary("sq", "Square the top value", pure1(func(a float64) float64 { return a * a })),
	unary("sqrt", "Square root of the top value", func(a float64) (float64, error) {
		if a < 0 {
			return 0, ErrDomain
		}
		return math.Sqrt(a), nil
	}),
	unary("inv", "Reciprocal of the top value", func(a float64) (float64, error) {
		if a == 0 {
			return 0, ErrDomain
		}
		return 1 / a, nil
	}),
	unary("floor", "Round the top value down", pure1(math.Floor)),
	unary("ceil", "Round the top value up", pure1(math.Ceil)),

	{
		Symbol: "dup", Arity: 1, Yield: 2,
		Description: "Duplicate the top value",
		apply: func(args []float64) ([]float64, error) {
			return []float64{args[0], args[0]}, nil
		},
	},
	{
		Symbol: "drop", Arity: 1, Yield: 0,
		Description: "Discard the top value",
		apply: func([]float64) ([]float64, error) {
			return nil, nil
		},
	},
	{
		Symbol: "swap", Arity: 2, Yield: 2,
		Description: "Exchange the top two values",
		apply: func(args []float64) ([]float64, error) {
			return []float64{args[1], args[0]}, nil
		},
	},
	{
		Symbol: "over", Arity: 2, Yield: 3,
		Description: "Copy the second value onto the top",
		apply: func(args []float64) ([]float64, error) {
			return []float64{args[0], args[1], args[0]}, nil
		},
	},
	{
		Symbol: "clear", Arity: variadic, Yield: 0,
		Description: "Discard every value",
		apply: func([]float64) ([]float64, error) {
			return nil, nil
		},
	},
}, func(op *Operator) string {
	return op.Symbol
})

// constants are pushed like numbers.
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// Lookup returns the operator registered under symbol, ignoring case.
func Lookup(symbol string) (*Operator, bool) {
	op, ok := operators[strings.ToLower(symbol)]
	return op, ok
}

// Operators returns every registered operator sorted by symbol.
func Operators() []*Operator {
	ops := lo.Values(operators)
	slices.SortFunc(ops, func(a, b *Operator) int {
		return strings.Compare(a.Symbol, b.Symbol)
	})
	return ops
}

// Symbols returns every word the calculator recognizes, operators and constants alike.
func Symbols() []string {
	symbols := append(lo.Keys(operators), lo.Keys(constants)...)
	slices.Sort(symbols)
	return symbols
}
