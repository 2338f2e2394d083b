package reagent

import (
	"context"
	"fmt"
	"time"
)

// DefaultMaxSteps is the step budget used when the caller does not override
// it with WithMaxSteps or WithStepLimit.
const DefaultMaxSteps = 10

// TaskStatus indicates how a task ended.
type TaskStatus int

const (
	// TaskAnswered means the model invoked the terminal tool successfully.
	TaskAnswered TaskStatus = iota

	// TaskExhausted means the step budget ran out before an answer.
	TaskExhausted

	// TaskFailed means the transport returned an error.
	TaskFailed
)

// String returns a human-readable name for the status.
func (s TaskStatus) String() string {
	switch s {
	case TaskAnswered:
		return "answered"
	case TaskExhausted:
		return "exhausted"
	case TaskFailed:
		return "failed"
	default:
		return fmt.Sprintf("TaskStatus(%d)", int(s))
	}
}

// ----------------------------------------------------------------------------
// Agent
// ----------------------------------------------------------------------------

// Agent runs the reasoning/acting control loop. Each task alternates model
// calls with tool dispatches until the model invokes the terminal answer
// tool or the step budget runs out.
//
// Flow per step: send the pending input to the model, parse the reply as a
// Thought/Action/Action Input directive, then either dispatch the named tool
// and feed its result back as an observation, or recover from a protocol
// violation by discarding the exchange or feeding back a corrective
// observation. Only a transport failure aborts the task.
//
// The message history persists across Task calls, so follow-up questions see
// the full prior conversation. Use Reset to start over.
//
// Agent is NOT safe for concurrent use.
type Agent struct {
	transport Transport
	registry  *Registry
	hooks     *HookRegistry
	preamble  string
	maxSteps  int
	messages  []Message
	usage     Usage
}

// NewAgent creates an agent talking through the given transport, with the
// given tools plus the always-present terminal answer tool.
// Defaults:
//   - MaxSteps: DefaultMaxSteps
//   - Preamble: DefaultPreamble
//
// Returns an error if a tool's parameter schema does not compile.
func NewAgent(transport Transport, tools ...Tool) (*Agent, error) {
	registry, err := NewRegistry(tools...)
	if err != nil {
		return nil, err
	}

	a := &Agent{
		transport: transport,
		registry:  registry,
		hooks:     NewHookRegistry(),
		preamble:  DefaultPreamble,
		maxSteps:  DefaultMaxSteps,
	}
	a.messages = []Message{{
		Role:    RoleSystem,
		Content: ComposeSystemPrompt(a.preamble, registry.Tools()),
	}}
	return a, nil
}

// WithMaxSteps sets the default step budget for tasks. Override per task
// with WithStepLimit.
func (a *Agent) WithMaxSteps(n int) *Agent {
	a.maxSteps = n
	return a
}

// WithPreamble replaces the system prompt's opening section and recomposes
// the system message. Call before the first task; changing the preamble
// mid-conversation leaves earlier exchanges shaped by the old prompt.
func (a *Agent) WithPreamble(preamble string) *Agent {
	a.preamble = preamble
	a.messages[0].Content = ComposeSystemPrompt(preamble, a.registry.Tools())
	return a
}

// WithHooks sets the hook registry receiving loop events.
func (a *Agent) WithHooks(hooks *HookRegistry) *Agent {
	if hooks != nil {
		a.hooks = hooks
	}
	return a
}

// Registry returns the agent's tool registry.
func (a *Agent) Registry() *Registry {
	return a.registry
}

// SystemPrompt returns the composed system message content.
func (a *Agent) SystemPrompt() string {
	return a.messages[0].Content
}

// Usage returns token usage accumulated across all model calls made by this
// agent, including calls whose replies were discarded.
func (a *Agent) Usage() Usage {
	return a.usage
}

// Messages returns a copy of the full message history, system message first.
func (a *Agent) Messages() []Message {
	out := make([]Message, len(a.messages))
	copy(out, a.messages)
	return out
}

// MessageHistory returns a rendered transcript of the conversation so far,
// excluding the system prompt. Debugging helper; the loop never parses it.
func (a *Agent) MessageHistory() string {
	return renderTranscript(a.messages[1:])
}

// Reset drops the conversation history and accumulated usage, keeping the
// system message.
func (a *Agent) Reset() {
	a.messages = a.messages[:1]
	a.usage = Usage{}
}

// ----------------------------------------------------------------------------
// Task loop
// ----------------------------------------------------------------------------

type taskConfig struct {
	maxSteps int
}

// TaskOption adjusts a single Task call.
type TaskOption func(*taskConfig)

// WithStepLimit overrides the agent's step budget for one task.
func WithStepLimit(n int) TaskOption {
	return func(c *taskConfig) {
		c.maxSteps = n
	}
}

// Task runs the loop on the user's query until the model answers, the step
// budget runs out, or the transport fails.
//
// The returned string is always plain text: the terminal tool's payload on
// success, or a fixed message naming the step budget on exhaustion.
// Exhaustion is a normal return, not an error. The only error path is a
// transport failure, returned wrapped and unrecovered.
//
// Protocol violations by the model never surface here. A runaway reply (one
// that includes an Observation or more than one directive) is discarded and
// the same input retried; a malformed or unparsable reply is answered with a
// corrective observation; unknown tools and tool failures become error
// observations. Each of these consumes a step, so a persistently confused
// model still terminates.
func (a *Agent) Task(ctx context.Context, query string, opts ...TaskOption) (string, error) {
	cfg := taskConfig{maxSteps: a.maxSteps}
	for _, opt := range opts {
		opt(&cfg)
	}

	a.hooks.FireBeforeTask(ctx, BeforeTaskEvent{Query: query, MaxSteps: cfg.maxSteps})

	step := 0
	stepInput := query

	for step < cfg.maxSteps {
		step++
		a.hooks.FireBeforeStep(ctx, BeforeStepEvent{
			Step:     step,
			MaxSteps: cfg.maxSteps,
			Input:    stepInput,
		})

		response, err := a.chat(ctx, step, stepInput)
		if err != nil {
			err = fmt.Errorf("model call failed: %w", err)
			a.hooks.FireAfterTask(ctx, AfterTaskEvent{Status: TaskFailed, Steps: step, Err: err})
			return "", err
		}

		parsed := ParseResponse(response)
		switch parsed.Status {
		case ParseRunaway:
			// Drop the bad reply and the input that produced it, then retry
			// the same input. The discarded call still consumed a step.
			a.messages = a.messages[:len(a.messages)-2]
			a.hooks.FireParseError(ctx, ParseErrorEvent{Step: step, Status: ParseRunaway, Response: response})
			continue

		case ParseMalformed:
			a.hooks.FireParseError(ctx, ParseErrorEvent{Step: step, Status: ParseMalformed, Response: response})
			stepInput = "Observation: Error: Invalid response format"
			continue

		case ParseInvalidInput:
			a.hooks.FireParseError(ctx, ParseErrorEvent{Step: step, Status: ParseInvalidInput, Response: response})
			stepInput = "Observation: Error: Invalid Action Input format"
			continue
		}

		action := parsed.Directive.Action
		if _, ok := a.registry.Lookup(action); !ok {
			stepInput = fmt.Sprintf("Observation: Error: Invalid action (%s)", action)
			continue
		}

		result, invokeErr := a.invoke(ctx, step, action, parsed.Directive.Input)
		if invokeErr != nil {
			stepInput = fmt.Sprintf("Observation: Error: There was a problem using the tool ('%s') with the given input.", action)
			continue
		}

		if action == AnswerToolName {
			a.hooks.FireAfterTask(ctx, AfterTaskEvent{Status: TaskAnswered, Answer: result, Steps: step})
			return result, nil
		}

		stepInput = fmt.Sprintf("Observation: %s", result)
	}

	answer := fmt.Sprintf("Agent was unable to answer your question in the maximal number of steps (%d)", cfg.maxSteps)
	a.hooks.FireAfterTask(ctx, AfterTaskEvent{Status: TaskExhausted, Answer: answer, Steps: step})
	return answer, nil
}

// chat appends the input to the history, calls the transport, and appends
// the assistant's reply. On transport failure the reply is not recorded and
// the error is returned as-is for the caller to wrap.
func (a *Agent) chat(ctx context.Context, step int, input string) (string, error) {
	a.messages = append(a.messages, Message{Role: RoleUser, Content: input})

	start := time.Now()
	response, err := a.transport.Chat(ctx, a.messages)
	a.hooks.FireAfterModelCall(ctx, AfterModelCallEvent{
		Step:     step,
		Response: response,
		Duration: time.Since(start),
		Err:      err,
	})
	if err != nil {
		return "", err
	}

	a.usage.Add(response.Usage)
	a.messages = append(a.messages, Message{Role: RoleAssistant, Content: response.Text})
	return response.Text, nil
}

// invoke dispatches one tool call with hook instrumentation.
func (a *Agent) invoke(ctx context.Context, step int, name string, args map[string]any) (string, error) {
	event := &BeforeToolCallEvent{Step: step, ToolName: name, Args: args}
	a.hooks.FireBeforeToolCall(ctx, event)

	start := time.Now()
	result, err := a.registry.Invoke(ctx, name, event.Args)
	a.hooks.FireAfterToolCall(ctx, AfterToolCallEvent{
		Step:     step,
		ToolName: name,
		Args:     event.Args,
		Output:   result,
		Duration: time.Since(start),
		Err:      err,
	})
	return result, err
}
