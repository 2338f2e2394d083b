package tools

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/rickchristie/reagent"
	"github.com/rickchristie/reagent/schema"
)

// DefaultScriptTimeout bounds a single script run.
const DefaultScriptTimeout = 60 * time.Second

const scriptFilename = "temp_script.py"

const scriptDescription = `Execute python code and return the result as a string.
You may import any python module, e.g. datetime or pandas
If the script produces a figure, write it to a PNG file in the current working directory and return its name as a string using the format '## Figure: [name] ##' so it is visible to the user

Args:
    script (str): The python script to evaluate

Returns:
    str: the result of running the script or an error message in case of failure`

// Script writes model-supplied Python code to a scratch file inside the work
// directory and runs it with the configured interpreter, returning stdout.
//
// The work directory doubles as the script's working directory, so files the
// script writes (figures, CSVs) land there. Runs are killed at the timeout
// or when the call's context is canceled.
//
// The script runs with the privileges of this process. Only wire this tool
// to models you trust, or point the interpreter at a sandbox.
type Script struct {
	interpreter string
	workDir     string
	timeout     time.Duration
}

// NewScript creates a Script tool running inside workDir. An empty workDir
// falls back to "work".
// Defaults:
//   - Interpreter: "python3"
//   - Timeout: DefaultScriptTimeout
func NewScript(workDir string) *Script {
	if workDir == "" {
		workDir = "work"
	}
	return &Script{
		interpreter: "python3",
		workDir:     workDir,
		timeout:     DefaultScriptTimeout,
	}
}

// WithInterpreter sets the interpreter binary (e.g. "python", a venv path,
// or a sandbox wrapper). Returns the tool for chaining.
func (s *Script) WithInterpreter(path string) *Script {
	s.interpreter = path
	return s
}

// WithTimeout sets the run timeout. Returns the tool for chaining.
func (s *Script) WithTimeout(d time.Duration) *Script {
	s.timeout = d
	return s
}

// WorkDir returns the scratch directory scripts run in.
func (s *Script) WorkDir() string {
	return s.workDir
}

// Name returns the tool name.
func (s *Script) Name() string {
	return "execute_script"
}

// Description returns the tool documentation for the system prompt.
func (s *Script) Description() string {
	return scriptDescription
}

// ParameterSchema returns the tool's argument schema.
func (s *Script) ParameterSchema() map[string]any {
	return schema.Object(map[string]*schema.Property{
		"script": schema.String("The python script to evaluate"),
	}, "script")
}

// Call writes the script to the work directory and runs it.
func (s *Script) Call(ctx context.Context, args map[string]any) (string, error) {
	script, ok := args["script"].(string)
	if !ok {
		return "", fmt.Errorf("script must be a string, got %T", args["script"])
	}

	if err := os.MkdirAll(s.workDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create work dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.workDir, scriptFilename), []byte(script), 0o644); err != nil {
		return "", fmt.Errorf("failed to write script: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, s.interpreter, scriptFilename)
	cmd.Dir = s.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("script timed out after %s", s.timeout)
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("script failed: %s", msg)
	}

	return stdout.String(), nil
}

// Compile-time check that Script implements reagent.Tool.
var _ reagent.Tool = (*Script)(nil)
