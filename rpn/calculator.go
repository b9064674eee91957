// Package rpn evaluates reverse Polish notation against a bounded operand stack.
//
// Operands are pushed; operators pop their arguments and push the result.
// Every token is applied atomically: when it fails the stack is left exactly as it was.
package rpn

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/stackcalc/stackcalc/log"
	"github.com/stackcalc/stackcalc/stack"
)

var (
	ErrUnknownToken         = errors.New("unknown token")
	ErrInsufficientOperands = errors.New("insufficient operands")
	ErrDivisionByZero       = errors.New("division by zero")
	ErrDomain               = errors.New("value out of domain")
	ErrEmptyExpression      = errors.New("empty expression")
)

// TokenError describes the token that stopped an evaluation.
type TokenError struct {
	Token      string
	Position   int // 1-based
	Line       int // 1-based, 0 outside EvalLines
	Suggestion mo.Option[string]
	Err        error
}

func (e *TokenError) Error() string {
	msg := fmt.Sprintf("token %d %q: %v", e.Position, e.Token, e.Err)
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d, %s", e.Line, msg)
	}
	if suggestion, ok := e.Suggestion.Get(); ok {
		msg += fmt.Sprintf(", did you mean %q?", suggestion)
	}
	return msg
}

func (e *TokenError) Unwrap() error {
	return e.Err
}

// Calculator applies tokens to the stack it owns.
type Calculator struct {
	stack *stack.Stack
}

// New returns a calculator operating on s.
func New(s *stack.Stack) *Calculator {
	return &Calculator{stack: s}
}

// Stack returns the underlying operand stack.
func (c *Calculator) Stack() *stack.Stack {
	return c.stack
}

// Result returns the topmost value.
func (c *Calculator) Result() (float64, error) {
	return c.stack.Peek()
}

// Apply evaluates a single token.
func (c *Calculator) Apply(token string) error {
	token = strings.ToLower(strings.TrimSpace(token))

	if op, ok := operators[token]; ok {
		return c.applyOperator(op)
	}

	value, err := ParseNumber(token)
	if err != nil {
		log.With(log.Fields{"token": token}).Warn("rejected token")
		return err
	}

	// Callers check before pushing; the stack would report the same condition.
	if c.stack.IsFull() {
		return stack.ErrOverflow
	}

	lo.Must0(c.stack.Push(value))
	log.With(log.Fields{"token": token, "depth": c.stack.Len()}).Debug("pushed operand")
	return nil
}

// Eval applies every whitespace-separated token of expr in order.
// It stops at the first failing token, restores the stack to its state before
// the call and returns a *TokenError.
func (c *Calculator) Eval(expr string) error {
	tokens := strings.Fields(expr)
	if len(tokens) == 0 {
		return ErrEmptyExpression
	}

	snapshot := c.stack.Values()
	for i, token := range tokens {
		if err := c.Apply(token); err != nil {
			c.restore(snapshot)

			tokenErr := &TokenError{
				Token:      token,
				Position:   i + 1,
				Suggestion: mo.None[string](),
				Err:        err,
			}
			if errors.Is(err, ErrUnknownToken) {
				tokenErr.Suggestion = Suggest(token)
			}
			return tokenErr
		}
	}

	return nil
}

// EvalLines evaluates lines in order as a single unit. When a line fails the stack
// is restored to its state before the first line and the error records the line.
func (c *Calculator) EvalLines(lines []string) error {
	snapshot := c.stack.Values()
	for i, line := range lines {
		if err := c.Eval(line); err != nil {
			c.restore(snapshot)

			var tokenErr *TokenError
			if errors.As(err, &tokenErr) {
				tokenErr.Line = i + 1
			}
			return err
		}
	}

	return nil
}

func (c *Calculator) applyOperator(op *Operator) error {
	arity := op.Arity
	if arity == variadic {
		arity = c.stack.Len()
	}

	if c.stack.Len() < arity {
		return fmt.Errorf("%s needs %d, have %d: %w", op.Symbol, arity, c.stack.Len(), ErrInsufficientOperands)
	}

	if c.stack.Len()-arity+op.Yield > c.stack.Cap() {
		return stack.ErrOverflow
	}

	args := make([]float64, arity)
	for i := arity - 1; i >= 0; i-- {
		args[i] = lo.Must(c.stack.Pop())
	}

	results, err := op.apply(args)
	if err == nil && lo.SomeBy(results, isNonFinite) {
		err = ErrDomain
	}
	if err != nil {
		for _, arg := range args {
			lo.Must0(c.stack.Push(arg))
		}
		return err
	}

	for _, r := range results {
		lo.Must0(c.stack.Push(r))
	}

	log.With(log.Fields{"operator": op.Symbol, "depth": c.stack.Len()}).Debug("applied operator")
	return nil
}

func (c *Calculator) restore(values []float64) {
	c.stack.Clear()
	for _, v := range values {
		lo.Must0(c.stack.Push(v))
	}
}

// ParseNumber converts a literal or a named constant to a finite value.
// Non-finite and out-of-range literals yield ErrDomain, anything else that is not a number ErrUnknownToken.
func ParseNumber(token string) (float64, error) {
	token = strings.ToLower(strings.TrimSpace(token))
	if value, ok := constants[token]; ok {
		return value, nil
	}

	value, err := strconv.ParseFloat(token, 64)
	if errors.Is(err, strconv.ErrRange) {
		return 0, ErrDomain
	}
	if err != nil {
		return 0, ErrUnknownToken
	}

	if isNonFinite(value) {
		return 0, ErrDomain
	}

	return value, nil
}

func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
