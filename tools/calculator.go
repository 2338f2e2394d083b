package tools

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dop251/goja"

	"github.com/rickchristie/reagent"
	"github.com/rickchristie/reagent/schema"
)

// DefaultCalculatorTimeout bounds a single expression evaluation.
const DefaultCalculatorTimeout = 2 * time.Second

const calculatorDescription = `Performs basic mathematical calculations, use also for simple additions

Args:
    expression (str): The mathematical expression to evaluate (e.g., '2+2', '10*5')

Returns:
    str: the result of the evaluation or an error message in case of failure`

// Calculator evaluates arithmetic expressions in a fresh JavaScript runtime
// per call. The runtime is interrupted when the timeout or the context
// deadline hits, so a looping expression cannot stall the agent.
//
// Evaluation failures are reported in band as an error message result, not
// as a Go error; the model sees them as a plain observation and can adjust
// the expression.
type Calculator struct {
	timeout time.Duration
}

// NewCalculator creates a Calculator with DefaultCalculatorTimeout.
func NewCalculator() *Calculator {
	return &Calculator{timeout: DefaultCalculatorTimeout}
}

// WithTimeout sets the evaluation timeout. Returns the tool for chaining.
func (c *Calculator) WithTimeout(d time.Duration) *Calculator {
	c.timeout = d
	return c
}

// Name returns the tool name.
func (c *Calculator) Name() string {
	return "calculator"
}

// Description returns the tool documentation for the system prompt.
func (c *Calculator) Description() string {
	return calculatorDescription
}

// ParameterSchema returns the tool's argument schema.
func (c *Calculator) ParameterSchema() map[string]any {
	return schema.Object(map[string]*schema.Property{
		"expression": schema.String("The mathematical expression to evaluate (e.g., '2+2', '10*5')"),
	}, "expression")
}

// Call evaluates the expression.
func (c *Calculator) Call(ctx context.Context, args map[string]any) (string, error) {
	expression, ok := args["expression"].(string)
	if !ok {
		return "", fmt.Errorf("expression must be a string, got %T", args["expression"])
	}

	vm := goja.New()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			vm.Interrupt("canceled")
		case <-time.After(c.timeout):
			vm.Interrupt("timeout")
		case <-done:
		}
	}()

	value, err := vm.RunString(expression)
	if err != nil {
		var interrupted *goja.InterruptedError
		if errors.As(err, &interrupted) {
			return "Error: Evaluation timed out", nil
		}
		return "Error: Invalid mathematical expression", nil
	}

	return value.String(), nil
}

// Compile-time check that Calculator implements reagent.Tool.
var _ reagent.Tool = (*Calculator)(nil)
