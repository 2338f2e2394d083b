package tools

import (
	"context"

	"github.com/rickchristie/reagent"
	"github.com/rickchristie/reagent/schema"
)

const clockDescription = `Reports the current date and time

Args:
    None

Returns:
    str: a string with the date and time in ISO 8601 format`

// Clock reports the current date and time, minute precision.
type Clock struct {
	tp reagent.TimeProvider
}

// NewClock creates a Clock reading from the given TimeProvider. Pass nil to
// use the system clock.
func NewClock(tp reagent.TimeProvider) *Clock {
	if tp == nil {
		tp = reagent.NewDefaultTimeProvider()
	}
	return &Clock{tp: tp}
}

// Name returns the tool name.
func (c *Clock) Name() string {
	return "date"
}

// Description returns the tool documentation for the system prompt.
func (c *Clock) Description() string {
	return clockDescription
}

// ParameterSchema returns the tool's argument schema. The tool takes no
// parameters; the model sends an empty object.
func (c *Clock) ParameterSchema() map[string]any {
	return schema.Object(map[string]*schema.Property{})
}

// Call reports the current date and time.
func (c *Clock) Call(ctx context.Context, args map[string]any) (string, error) {
	return c.tp.Format("2006-01-02T15:04"), nil
}

// Compile-time check that Clock implements reagent.Tool.
var _ reagent.Tool = (*Clock)(nil)
