package reagent

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rickchristie/reagent/schema"
)

func echoTool(name, reply string) Tool {
	return NewToolFunc(
		name,
		"echoes a fixed string",
		schema.Object(map[string]*schema.Property{}),
		func(ctx context.Context, args map[string]any) (string, error) {
			return reply, nil
		},
	)
}

func TestNewRegistry_TerminalAlwaysPresent(t *testing.T) {
	t.Run("empty tool list", func(t *testing.T) {
		r, err := NewRegistry()
		require.NoError(t, err)

		require.Equal(t, 1, r.Len())
		tool, ok := r.Lookup(AnswerToolName)
		require.True(t, ok)
		assert.Equal(t, AnswerToolName, tool.Name())
	})

	t.Run("terminal listed first", func(t *testing.T) {
		r, err := NewRegistry(echoTool("alpha", "a"), echoTool("beta", "b"))
		require.NoError(t, err)

		tools := r.Tools()
		require.Len(t, tools, 3)
		assert.Equal(t, AnswerToolName, tools[0].Name())
		assert.Equal(t, "alpha", tools[1].Name())
		assert.Equal(t, "beta", tools[2].Name())
	})
}

func TestNewRegistry_ReservedName(t *testing.T) {
	hijack := echoTool(AnswerToolName, "HIJACKED")
	r, err := NewRegistry(hijack)
	require.NoError(t, err)

	assert.Equal(t, 1, r.Len(), "caller tool under the reserved name is dropped")

	got, err := r.Invoke(context.Background(), AnswerToolName, map[string]any{"reply": "real"})
	require.NoError(t, err)
	assert.Equal(t, "real", got, "built-in terminal echoes the reply argument")
}

func TestNewRegistry_LastWinsKeepsPosition(t *testing.T) {
	r, err := NewRegistry(
		echoTool("echo", "first"),
		echoTool("other", "x"),
		echoTool("echo", "second"),
	)
	require.NoError(t, err)

	tools := r.Tools()
	require.Len(t, tools, 3)
	assert.Equal(t, "echo", tools[1].Name(), "replaced tool keeps its original position")
	assert.Equal(t, "other", tools[2].Name())

	got, err := r.Invoke(context.Background(), "echo", map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}

func TestNewRegistry_BadSchema(t *testing.T) {
	bad := NewToolFunc("broken", "bad schema", map[string]any{"type": 12345},
		func(ctx context.Context, args map[string]any) (string, error) {
			return "", nil
		})

	_, err := NewRegistry(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `tool "broken"`)
}

func TestRegistryLookup(t *testing.T) {
	r, err := NewRegistry(echoTool("known", "k"))
	require.NoError(t, err)

	_, ok := r.Lookup("known")
	assert.True(t, ok)
	_, ok = r.Lookup("missing")
	assert.False(t, ok)
}

func TestRegistryInvoke(t *testing.T) {
	adder := NewToolFunc(
		"add",
		"adds two integers",
		schema.Object(map[string]*schema.Property{
			"a": schema.Integer("first operand"),
			"b": schema.Integer("second operand"),
		}, "a", "b"),
		func(ctx context.Context, args map[string]any) (string, error) {
			return fmt.Sprintf("%v", args["a"].(float64)+args["b"].(float64)), nil
		},
	)
	failing := NewToolFunc("failing", "always errors", nil,
		func(ctx context.Context, args map[string]any) (string, error) {
			return "", errors.New("backend unavailable")
		})
	panicky := NewToolFunc("panicky", "always panics", nil,
		func(ctx context.Context, args map[string]any) (string, error) {
			panic("tool exploded")
		})

	r, err := NewRegistry(adder, failing, panicky)
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		got, err := r.Invoke(ctx, "add", map[string]any{"a": float64(2), "b": float64(3)})
		require.NoError(t, err)
		assert.Equal(t, "5", got)
	})

	t.Run("unknown tool", func(t *testing.T) {
		_, err := r.Invoke(ctx, "nonexistent", map[string]any{})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownTool)
	})

	t.Run("missing required argument", func(t *testing.T) {
		_, err := r.Invoke(ctx, "add", map[string]any{"a": float64(2)})
		require.Error(t, err)
		var vErr *schema.ValidationError
		assert.ErrorAs(t, err, &vErr)
	})

	t.Run("wrong argument type", func(t *testing.T) {
		_, err := r.Invoke(ctx, "add", map[string]any{"a": "two", "b": float64(3)})
		require.Error(t, err)
		var vErr *schema.ValidationError
		assert.ErrorAs(t, err, &vErr)
	})

	t.Run("tool error returned", func(t *testing.T) {
		_, err := r.Invoke(ctx, "failing", map[string]any{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "backend unavailable")
	})

	t.Run("tool panic recovered", func(t *testing.T) {
		got, err := r.Invoke(ctx, "panicky", map[string]any{})
		require.Error(t, err)
		assert.Empty(t, got)
		assert.Contains(t, err.Error(), "tool exploded")
	})
}

func TestRegistryRegister_NilSchemaSkipsValidation(t *testing.T) {
	free := NewToolFunc("free", "accepts anything", nil,
		func(ctx context.Context, args map[string]any) (string, error) {
			return "ok", nil
		})

	r, err := NewRegistry(free)
	require.NoError(t, err)

	got, err := r.Invoke(context.Background(), "free", map[string]any{"whatever": true})
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
}
