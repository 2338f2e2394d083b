package tools

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requirePython(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("python3"); err != nil {
		t.Skip("python3 not available")
	}
}

func TestScriptCall(t *testing.T) {
	requirePython(t)
	script := NewScript(t.TempDir())

	got, err := script.Call(context.Background(), map[string]any{
		"script": "print(6*7)",
	})
	require.NoError(t, err)
	assert.Equal(t, "42\n", got)
}

func TestScriptCall_WritesIntoWorkDir(t *testing.T) {
	requirePython(t)
	dir := t.TempDir()
	script := NewScript(dir)

	_, err := script.Call(context.Background(), map[string]any{
		"script": "open('out.txt', 'w').write('hello')",
	})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "out.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	_, err = os.Stat(filepath.Join(dir, scriptFilename))
	assert.NoError(t, err, "script file stays in the work dir")
}

func TestScriptCall_FailureCarriesStderr(t *testing.T) {
	requirePython(t)
	script := NewScript(t.TempDir())

	_, err := script.Call(context.Background(), map[string]any{
		"script": "raise ValueError('boom')",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestScriptCall_Timeout(t *testing.T) {
	requirePython(t)
	script := NewScript(t.TempDir()).WithTimeout(200 * time.Millisecond)

	_, err := script.Call(context.Background(), map[string]any{
		"script": "import time; time.sleep(10)",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
}

func TestScriptCall_NonStringScript(t *testing.T) {
	script := NewScript(t.TempDir())

	_, err := script.Call(context.Background(), map[string]any{"script": 7})
	assert.Error(t, err)
}

func TestScriptDescriptor(t *testing.T) {
	script := NewScript("")

	assert.Equal(t, "execute_script", script.Name())
	assert.Equal(t, "work", script.WorkDir())
	assert.Contains(t, script.Description(), "python")

	raw := script.ParameterSchema()
	assert.Equal(t, []string{"script"}, raw["required"])
}
