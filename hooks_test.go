package reagent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorderHook implements every hook interface and records which methods
// fired, in order.
type recorderHook struct {
	calls []string
}

func (r *recorderHook) OnBeforeTask(ctx context.Context, e BeforeTaskEvent) {
	r.calls = append(r.calls, "before_task")
}

func (r *recorderHook) OnAfterTask(ctx context.Context, e AfterTaskEvent) {
	r.calls = append(r.calls, "after_task")
}

func (r *recorderHook) OnBeforeStep(ctx context.Context, e BeforeStepEvent) {
	r.calls = append(r.calls, "before_step")
}

func (r *recorderHook) OnAfterModelCall(ctx context.Context, e AfterModelCallEvent) {
	r.calls = append(r.calls, "after_model_call")
}

func (r *recorderHook) OnParseError(ctx context.Context, e ParseErrorEvent) {
	r.calls = append(r.calls, "parse_error")
}

func (r *recorderHook) OnBeforeToolCall(ctx context.Context, e *BeforeToolCallEvent) {
	r.calls = append(r.calls, "before_tool_call")
}

func (r *recorderHook) OnAfterToolCall(ctx context.Context, e AfterToolCallEvent) {
	r.calls = append(r.calls, "after_tool_call")
}

// stepCounterHook implements only BeforeStepHook.
type stepCounterHook struct {
	steps []int
}

func (s *stepCounterHook) OnBeforeStep(ctx context.Context, e BeforeStepEvent) {
	s.steps = append(s.steps, e.Step)
}

func TestHookRegistry_RegisterChains(t *testing.T) {
	registry := NewHookRegistry().
		Register(&recorderHook{}).
		Register(&stepCounterHook{})

	assert.Equal(t, 2, registry.Len())

	registry.Clear()
	assert.Equal(t, 0, registry.Len())
}

func TestHookRegistry_DispatchesByInterface(t *testing.T) {
	ctx := context.Background()
	all := &recorderHook{}
	stepOnly := &stepCounterHook{}
	registry := NewHookRegistry().Register(all).Register(stepOnly)

	registry.FireBeforeTask(ctx, BeforeTaskEvent{Query: "q", MaxSteps: 10})
	registry.FireBeforeStep(ctx, BeforeStepEvent{Step: 1, MaxSteps: 10, Input: "q"})
	registry.FireAfterModelCall(ctx, AfterModelCallEvent{Step: 1})
	registry.FireParseError(ctx, ParseErrorEvent{Step: 1, Status: ParseMalformed})
	registry.FireBeforeToolCall(ctx, &BeforeToolCallEvent{Step: 1, ToolName: "x"})
	registry.FireAfterToolCall(ctx, AfterToolCallEvent{Step: 1, ToolName: "x"})
	registry.FireBeforeStep(ctx, BeforeStepEvent{Step: 2, MaxSteps: 10})
	registry.FireAfterTask(ctx, AfterTaskEvent{Status: TaskAnswered, Steps: 2})

	assert.Equal(t, []string{
		"before_task",
		"before_step",
		"after_model_call",
		"parse_error",
		"before_tool_call",
		"after_tool_call",
		"before_step",
		"after_task",
	}, all.calls)

	// The single-interface hook only saw the step events.
	assert.Equal(t, []int{1, 2}, stepOnly.steps)
}

func TestHookRegistry_RegistrationOrder(t *testing.T) {
	ctx := context.Background()
	var order []string

	first := &orderedHook{name: "first", order: &order}
	second := &orderedHook{name: "second", order: &order}
	registry := NewHookRegistry().Register(first).Register(second)

	registry.FireBeforeTask(ctx, BeforeTaskEvent{})
	assert.Equal(t, []string{"first", "second"}, order)
}

type orderedHook struct {
	name  string
	order *[]string
}

func (o *orderedHook) OnBeforeTask(ctx context.Context, e BeforeTaskEvent) {
	*o.order = append(*o.order, o.name)
}

// argRewriteHook rewrites tool arguments before dispatch.
type argRewriteHook struct{}

func (argRewriteHook) OnBeforeToolCall(ctx context.Context, e *BeforeToolCallEvent) {
	e.Args["injected"] = true
}

func TestFireBeforeToolCall_ArgsVisibleToCaller(t *testing.T) {
	registry := NewHookRegistry().Register(argRewriteHook{})

	event := &BeforeToolCallEvent{
		Step:     3,
		ToolName: "calculator",
		Args:     map[string]any{"expression": "2+2"},
	}
	registry.FireBeforeToolCall(context.Background(), event)

	require.Contains(t, event.Args, "injected")
	assert.Equal(t, true, event.Args["injected"])
	assert.Equal(t, "2+2", event.Args["expression"])
}

func TestHookRegistry_EmptyRegistryIsNoop(t *testing.T) {
	ctx := context.Background()
	registry := NewHookRegistry()

	assert.NotPanics(t, func() {
		registry.FireBeforeTask(ctx, BeforeTaskEvent{})
		registry.FireAfterTask(ctx, AfterTaskEvent{})
		registry.FireBeforeStep(ctx, BeforeStepEvent{})
		registry.FireAfterModelCall(ctx, AfterModelCallEvent{})
		registry.FireParseError(ctx, ParseErrorEvent{})
		registry.FireBeforeToolCall(ctx, &BeforeToolCallEvent{})
		registry.FireAfterToolCall(ctx, AfterToolCallEvent{})
	})
}
