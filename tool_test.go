package reagent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolFunc(t *testing.T) {
	called := false
	tool := NewToolFunc("greet", "Greets by name.",
		map[string]any{"type": "object"},
		func(ctx context.Context, args map[string]any) (string, error) {
			called = true
			return "hello " + args["name"].(string), nil
		})

	assert.Equal(t, "greet", tool.Name())
	assert.Equal(t, "Greets by name.", tool.Description())
	assert.Equal(t, map[string]any{"type": "object"}, tool.ParameterSchema())

	got, err := tool.Call(context.Background(), map[string]any{"name": "世界"})
	require.NoError(t, err)
	assert.Equal(t, "hello 世界", got)
	assert.True(t, called)
}

func TestAnswerTool(t *testing.T) {
	tool := newAnswerTool()
	ctx := context.Background()

	assert.Equal(t, AnswerToolName, tool.Name())
	assert.Contains(t, tool.Description(), "final reply")
	require.NotNil(t, tool.ParameterSchema())

	t.Run("echoes the reply", func(t *testing.T) {
		got, err := tool.Call(ctx, map[string]any{"reply": "All done."})
		require.NoError(t, err)
		assert.Equal(t, "All done.", got)
	})

	t.Run("non-string reply rejected", func(t *testing.T) {
		_, err := tool.Call(ctx, map[string]any{"reply": 42})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reply must be a string")
	})

	t.Run("missing reply rejected", func(t *testing.T) {
		_, err := tool.Call(ctx, map[string]any{})
		require.Error(t, err)
	})
}
