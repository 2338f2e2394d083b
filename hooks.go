package reagent

import (
	"context"
	"time"
)

// -----------------------------------------------------------------------------
// Hook Interfaces
// -----------------------------------------------------------------------------
//
// Hooks allow observing the agent loop at various points. To use hooks:
//
//  1. Implement the desired hook interface(s)
//  2. Register with a HookRegistry
//  3. Pass the registry to the agent via WithHooks
//
// Example:
//
//	type LoggingHook struct {
//	    logger *log.Logger
//	}
//
//	func (h *LoggingHook) OnBeforeStep(ctx context.Context, e reagent.BeforeStepEvent) {
//	    h.logger.Printf("step %d/%d", e.Step, e.MaxSteps)
//	}
//
//	func (h *LoggingHook) OnAfterToolCall(ctx context.Context, e reagent.AfterToolCallEvent) {
//	    h.logger.Printf("tool %s took %v", e.ToolName, e.Duration)
//	}
//
//	registry := reagent.NewHookRegistry().Register(&LoggingHook{logger: log.Default()})
//	agent.WithHooks(registry)
//
// Hooks are called in registration order and should not panic; a panic in a
// hook propagates and aborts the task. Hooks cannot alter control flow, with
// one exception: BeforeToolCallHook may modify the argument map in place.

// BeforeTaskHook is notified once when a task starts, before the first step.
type BeforeTaskHook interface {
	OnBeforeTask(ctx context.Context, event BeforeTaskEvent)
}

// AfterTaskHook is notified once when a task ends, whether it produced an
// answer, ran out of steps, or failed on a transport error. Always called if
// OnBeforeTask was called.
type AfterTaskHook interface {
	OnAfterTask(ctx context.Context, event AfterTaskEvent)
}

// BeforeStepHook is notified before each step of the loop.
type BeforeStepHook interface {
	OnBeforeStep(ctx context.Context, event BeforeStepEvent)
}

// AfterModelCallHook is notified after each model call completes, on success
// and on transport failure alike.
type AfterModelCallHook interface {
	OnAfterModelCall(ctx context.Context, event AfterModelCallEvent)
}

// ParseErrorHook is notified when a model reply fails protocol parsing and
// the loop recovers locally (discard and retry, or a corrective
// observation). These events never surface to the caller; the hook is the
// only way to monitor them.
type ParseErrorHook interface {
	OnParseError(ctx context.Context, event ParseErrorEvent)
}

// BeforeToolCallHook is notified before each tool dispatch. The hook may
// modify event.Args in place to change the arguments passed to the tool.
type BeforeToolCallHook interface {
	OnBeforeToolCall(ctx context.Context, event *BeforeToolCallEvent)
}

// AfterToolCallHook is notified after each tool dispatch completes.
type AfterToolCallHook interface {
	OnAfterToolCall(ctx context.Context, event AfterToolCallEvent)
}

// -----------------------------------------------------------------------------
// Hook Events
// -----------------------------------------------------------------------------

// HookEvent is a marker interface for all hook events.
type HookEvent interface {
	hookEvent()
}

// BeforeTaskEvent is emitted once when Task is called.
type BeforeTaskEvent struct {
	// Query is the user's task text.
	Query string

	// MaxSteps is the step budget for this task.
	MaxSteps int
}

func (BeforeTaskEvent) hookEvent() {}

// AfterTaskEvent is emitted once when Task returns.
type AfterTaskEvent struct {
	// Status indicates how the task ended.
	Status TaskStatus

	// Answer is the text returned to the caller (empty on transport failure).
	Answer string

	// Steps is the number of steps consumed.
	Steps int

	// Err is the transport error when Status is TaskFailed, nil otherwise.
	Err error
}

func (AfterTaskEvent) hookEvent() {}

// BeforeStepEvent is emitted before each step of the loop.
type BeforeStepEvent struct {
	// Step is the current step number (1-indexed).
	Step int

	// MaxSteps is the step budget for this task.
	MaxSteps int

	// Input is the user-side text sent to the model this step: the task
	// query on the first step, an observation afterwards.
	Input string
}

func (BeforeStepEvent) hookEvent() {}

// AfterModelCallEvent is emitted after each model call.
type AfterModelCallEvent struct {
	// Step is the step number the call belongs to.
	Step int

	// Response is the transport's reply (nil when Err is set).
	Response *ChatResponse

	// Duration is how long the call took.
	Duration time.Duration

	// Err is the transport error, nil on success.
	Err error
}

func (AfterModelCallEvent) hookEvent() {}

// ParseErrorEvent is emitted when a reply fails protocol parsing.
type ParseErrorEvent struct {
	// Step is the step number the reply belongs to.
	Step int

	// Status is the parse classification (runaway, malformed, invalid input).
	Status ParseStatus

	// Response is the raw reply text that failed to parse.
	Response string
}

func (ParseErrorEvent) hookEvent() {}

// BeforeToolCallEvent is emitted before each tool dispatch. Hooks receive a
// pointer and may modify Args to change the input.
type BeforeToolCallEvent struct {
	// Step is the step number the dispatch belongs to.
	Step int

	// ToolName is the name of the tool being called.
	ToolName string

	// Args contains the arguments that will be passed to the tool.
	Args map[string]any
}

func (BeforeToolCallEvent) hookEvent() {}

// AfterToolCallEvent is emitted after each tool dispatch.
type AfterToolCallEvent struct {
	// Step is the step number the dispatch belongs to.
	Step int

	// ToolName is the name of the tool that was called.
	ToolName string

	// Args contains the arguments that were passed to the tool.
	Args map[string]any

	// Output is the tool's text result (empty when Err is set).
	Output string

	// Duration is how long the dispatch took.
	Duration time.Duration

	// Err is the dispatch error, nil on success.
	Err error
}

func (AfterToolCallEvent) hookEvent() {}

// -----------------------------------------------------------------------------
// Hook Registry
// -----------------------------------------------------------------------------

// HookRegistry holds registered hooks and dispatches events to those that
// implement the matching interface. A single hook value may implement any
// number of hook interfaces; it receives every event it has a method for.
//
// HookRegistry is NOT thread-safe. Register all hooks before starting tasks.
type HookRegistry struct {
	hooks []any
}

// NewHookRegistry creates an empty hook registry.
func NewHookRegistry() *HookRegistry {
	return &HookRegistry{}
}

// Register adds a hook. Returns the registry for chaining.
func (r *HookRegistry) Register(hook any) *HookRegistry {
	r.hooks = append(r.hooks, hook)
	return r
}

// Len returns the number of registered hooks.
func (r *HookRegistry) Len() int {
	return len(r.hooks)
}

// Clear removes all registered hooks.
func (r *HookRegistry) Clear() {
	r.hooks = nil
}

// FireBeforeTask calls OnBeforeTask on all hooks implementing BeforeTaskHook.
func (r *HookRegistry) FireBeforeTask(ctx context.Context, event BeforeTaskEvent) {
	for _, h := range r.hooks {
		if hook, ok := h.(BeforeTaskHook); ok {
			hook.OnBeforeTask(ctx, event)
		}
	}
}

// FireAfterTask calls OnAfterTask on all hooks implementing AfterTaskHook.
func (r *HookRegistry) FireAfterTask(ctx context.Context, event AfterTaskEvent) {
	for _, h := range r.hooks {
		if hook, ok := h.(AfterTaskHook); ok {
			hook.OnAfterTask(ctx, event)
		}
	}
}

// FireBeforeStep calls OnBeforeStep on all hooks implementing BeforeStepHook.
func (r *HookRegistry) FireBeforeStep(ctx context.Context, event BeforeStepEvent) {
	for _, h := range r.hooks {
		if hook, ok := h.(BeforeStepHook); ok {
			hook.OnBeforeStep(ctx, event)
		}
	}
}

// FireAfterModelCall calls OnAfterModelCall on all hooks implementing
// AfterModelCallHook.
func (r *HookRegistry) FireAfterModelCall(ctx context.Context, event AfterModelCallEvent) {
	for _, h := range r.hooks {
		if hook, ok := h.(AfterModelCallHook); ok {
			hook.OnAfterModelCall(ctx, event)
		}
	}
}

// FireParseError calls OnParseError on all hooks implementing ParseErrorHook.
func (r *HookRegistry) FireParseError(ctx context.Context, event ParseErrorEvent) {
	for _, h := range r.hooks {
		if hook, ok := h.(ParseErrorHook); ok {
			hook.OnParseError(ctx, event)
		}
	}
}

// FireBeforeToolCall calls OnBeforeToolCall on all hooks implementing
// BeforeToolCallHook. Hooks may modify event.Args in place.
func (r *HookRegistry) FireBeforeToolCall(ctx context.Context, event *BeforeToolCallEvent) {
	for _, h := range r.hooks {
		if hook, ok := h.(BeforeToolCallHook); ok {
			hook.OnBeforeToolCall(ctx, event)
		}
	}
}

// FireAfterToolCall calls OnAfterToolCall on all hooks implementing
// AfterToolCallHook.
func (r *HookRegistry) FireAfterToolCall(ctx context.Context, event AfterToolCallEvent) {
	for _, h := range r.hooks {
		if hook, ok := h.(AfterToolCallHook); ok {
			hook.OnAfterToolCall(ctx, event)
		}
	}
}
