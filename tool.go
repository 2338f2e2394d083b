package reagent

import (
	"context"
	"fmt"

	"github.com/rickchristie/reagent/schema"
)

// Tool is a single callable the agent can dispatch to. Implementations carry
// their own documentation as data: the name and description are consumed
// verbatim by the system prompt, and the optional parameter schema is
// validated against the model-supplied arguments before Call runs.
//
// Tools receive a JSON-object shaped argument map (string keys, JSON-typed
// values) and return text describing the outcome. No typing of parameters is
// imposed beyond what the schema and the tool itself enforce.
type Tool interface {
	// Name returns the tool's identifier used in directives.
	Name() string

	// Description returns usage documentation for the model, included
	// verbatim in the system prompt's tools block.
	Description() string

	// ParameterSchema returns the JSON Schema for the tool's arguments.
	// Returns nil if the tool takes no parameters or skips validation.
	ParameterSchema() map[string]any

	// Call executes the tool. Returned errors are contained at the dispatch
	// boundary and fed back to the model as error observations; they never
	// abort the agent loop.
	Call(ctx context.Context, args map[string]any) (string, error)
}

// ToolFunc is a convenience type for building tools from plain functions.
type ToolFunc struct {
	name        string
	description string
	schema      map[string]any
	fn          func(ctx context.Context, args map[string]any) (string, error)
}

// NewToolFunc creates a Tool from a function plus its descriptor data.
func NewToolFunc(
	name, description string,
	schema map[string]any,
	fn func(ctx context.Context, args map[string]any) (string, error),
) *ToolFunc {
	return &ToolFunc{
		name:        name,
		description: description,
		schema:      schema,
		fn:          fn,
	}
}

// Name returns the tool's identifier.
func (t *ToolFunc) Name() string {
	return t.name
}

// Description returns usage documentation for the model.
func (t *ToolFunc) Description() string {
	return t.description
}

// ParameterSchema returns the JSON Schema for the tool's arguments.
func (t *ToolFunc) ParameterSchema() map[string]any {
	return t.schema
}

// Call executes the wrapped function.
func (t *ToolFunc) Call(ctx context.Context, args map[string]any) (string, error) {
	return t.fn(ctx, args)
}

// Compile-time check that ToolFunc implements Tool.
var _ Tool = (*ToolFunc)(nil)

// ----------------------------------------------------------------------------
// Terminal tool
// ----------------------------------------------------------------------------

// AnswerToolName is the reserved name of the terminal tool. Invoking it ends
// the task successfully with the tool's payload as the final answer.
const AnswerToolName = "answer"

const answerDescription = `Conveys your final reply to the user

Args:
    reply (str): Your final reply to the user

Returns:
    str: echoes 'reply'`

// newAnswerTool builds the terminal tool. Every registry carries one; it
// cannot be excluded or overridden by caller configuration.
func newAnswerTool() Tool {
	return NewToolFunc(
		AnswerToolName,
		answerDescription,
		schema.Object(map[string]*schema.Property{
			"reply": schema.String("Your final reply to the user"),
		}, "reply"),
		func(_ context.Context, args map[string]any) (string, error) {
			reply, ok := args["reply"].(string)
			if !ok {
				return "", fmt.Errorf("reply must be a string, got %T", args["reply"])
			}
			return reply, nil
		},
	)
}
