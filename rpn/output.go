package rpn

// Output is the machine-readable result of an evaluation.
type Output struct {
	Expression string    `json:"expression"`
	Result     *float64  `json:"result,omitempty" jsonschema:"description=Topmost value after evaluation"`
	Stack      []float64 `json:"stack" jsonschema:"description=Values ordered bottom to top"`
	Capacity   int       `json:"capacity"`
	Error      string    `json:"error,omitempty"`
}

// NewOutput captures the calculator state after evaluating expr.
func NewOutput(expr string, c *Calculator, evalErr error) *Output {
	out := &Output{
		Expression: expr,
		Stack:      c.Stack().Values(),
		Capacity:   c.Stack().Cap(),
	}

	if evalErr != nil {
		out.Error = evalErr.Error()
		return out
	}

	if result, err := c.Result(); err == nil {
		out.Result = &result
	}
	return out
}
