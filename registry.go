package reagent

import (
	"context"
	"errors"
	"fmt"

	"github.com/rickchristie/reagent/schema"
)

// ErrUnknownTool is returned by Registry.Invoke when the directive names a
// tool that is not registered.
var ErrUnknownTool = errors.New("unknown tool")

// Registry maps tool names to implementations plus their compiled parameter
// schemas. A freshly constructed registry always carries the terminal answer
// tool in first position; caller configuration cannot exclude or replace it.
//
// Name collisions among caller tools resolve last-wins: the later
// registration replaces the earlier one but keeps its position in the
// listing order. Registering under the reserved terminal name is a no-op.
//
// Registry is NOT thread-safe. Register all tools before handing it to an
// agent.
type Registry struct {
	order   []string
	byName  map[string]Tool
	schemas map[string]*schema.Schema
}

// NewRegistry creates a registry holding the terminal tool plus the given
// caller tools, in order. Returns an error if a tool's parameter schema does
// not compile.
func NewRegistry(tools ...Tool) (*Registry, error) {
	r := &Registry{
		byName:  make(map[string]Tool),
		schemas: make(map[string]*schema.Schema),
	}
	if err := r.Register(newAnswerTool()); err != nil {
		return nil, err
	}
	for _, t := range tools {
		if err := r.Register(t); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a tool to the registry, compiling its parameter schema.
// A tool whose name matches an already registered entry replaces it in
// place; a tool named after the terminal tool is dropped.
func (r *Registry) Register(t Tool) error {
	name := t.Name()
	if name == AnswerToolName && r.byName[AnswerToolName] != nil {
		return nil
	}

	compiled, err := schema.Compile(t.ParameterSchema())
	if err != nil {
		return fmt.Errorf("tool %q: %w", name, err)
	}

	if _, exists := r.byName[name]; !exists {
		r.order = append(r.order, name)
	}
	r.byName[name] = t
	r.schemas[name] = compiled
	return nil
}

// Lookup returns the tool registered under name, or false if absent.
func (r *Registry) Lookup(name string) (Tool, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// Tools returns the registered tools in listing order, terminal tool first.
func (r *Registry) Tools() []Tool {
	tools := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		tools = append(tools, r.byName[name])
	}
	return tools
}

// Len returns the number of registered tools, including the terminal tool.
func (r *Registry) Len() int {
	return len(r.order)
}

// Invoke dispatches to the named tool. The arguments are validated against
// the tool's compiled schema before the call. Unknown names return an error
// wrapping ErrUnknownTool; validation failures, tool errors, and tool panics
// are all returned as plain errors so the caller can convert them into an
// error observation instead of crashing the loop.
func (r *Registry) Invoke(ctx context.Context, name string, args map[string]any) (result string, err error) {
	tool, ok := r.byName[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}

	if s := r.schemas[name]; s != nil {
		if vErr := s.Validate(args); vErr != nil {
			return "", fmt.Errorf("tool %q: %w", name, vErr)
		}
	}

	defer func() {
		if rec := recover(); rec != nil {
			result = ""
			err = fmt.Errorf("tool %q panicked: %v", name, rec)
		}
	}()
	return tool.Call(ctx, args)
}
