package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/runoshun/shellmate/internal/app"
	"github.com/runoshun/shellmate/internal/domain"
	"github.com/runoshun/shellmate/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestContainer builds a container with recording doubles.
func newTestContainer() (*app.Container, *testutil.MockPrinter, *testutil.MockExecutor, *testutil.MockLogger) {
	printer := &testutil.MockPrinter{}
	executor := &testutil.MockExecutor{}
	logger := &testutil.MockLogger{}
	c := app.NewWithDeps(domain.NewDefaultConfig(), printer, executor, logger)
	return c, printer, executor, logger
}

// execute runs the root command with args and captures cobra's streams.
func execute(t *testing.T, c *app.Container, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCommand(c, "test-version")
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand_Help(t *testing.T) {
	c, _, _, _ := newTestContainer()
	stdout, _, err := execute(t, c, "--help")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Diagnostic Output:")
	assert.Contains(t, stdout, "Command Execution:")
	assert.Contains(t, stdout, "snippet")
}

func TestRootCommand_Version(t *testing.T) {
	c, _, _, _ := newTestContainer()
	stdout, _, err := execute(t, c, "--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "test-version")
}

func TestRootCommand_InitWarnings(t *testing.T) {
	c, _, _, _ := newTestContainer()
	c.Warnings = []string{"using default config: bad toml"}
	_, stderr, err := execute(t, c, "print", "ok")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Warning: using default config: bad toml")
}

func TestRootCommand_NoColor(t *testing.T) {
	cfg := domain.NewDefaultConfig()
	cfg.Output.Color = domain.ColorAlways
	c := app.NewWithDeps(cfg, &testutil.MockPrinter{}, &testutil.MockExecutor{}, &testutil.MockLogger{})
	var diag bytes.Buffer
	c.Stderr = &diag

	_, _, err := execute(t, c, "warn", "--no-color", "plain please")
	require.NoError(t, err)
	assert.Contains(t, diag.String(), "⚠ plain please")
	assert.NotContains(t, diag.String(), "\x1b[")
}

func TestPrintCommand(t *testing.T) {
	t.Run("formats arguments", func(t *testing.T) {
		c, printer, _, _ := newTestContainer()
		_, _, err := execute(t, c, "print", "deploy %s", "v2")
		require.NoError(t, err)
		assert.Equal(t, []string{"deploy v2"}, printer.Stdout)
	})

	t.Run("no arguments prints a blank line", func(t *testing.T) {
		c, printer, _, _ := newTestContainer()
		_, _, err := execute(t, c, "print")
		require.NoError(t, err)
		assert.Equal(t, []string{""}, printer.Stdout)
	})
}

func TestWarnCommand_ReportsSuccess(t *testing.T) {
	c, printer, _, _ := newTestContainer()
	_, _, err := execute(t, c, "warn", "disk", "almost", "full")
	require.NoError(t, err)
	assert.Equal(t, []string{"disk almost full"}, printer.Warnings)
}

func TestErrorCommand_ReportsFailure(t *testing.T) {
	c, printer, _, _ := newTestContainer()
	_, _, err := execute(t, c, "error", "missing input")
	require.Error(t, err)

	var exitErr *domain.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, domain.ExitFailure, exitErr.Code)
	assert.Equal(t, []string{"missing input"}, printer.Errors)
}

func TestRunCommand(t *testing.T) {
	t.Run("success is silent", func(t *testing.T) {
		c, printer, executor, _ := newTestContainer()
		_, _, err := execute(t, c, "run", "--", "true")
		require.NoError(t, err)
		assert.Empty(t, printer.Warnings)
		require.Len(t, executor.Commands, 1)
		assert.Equal(t, "true", executor.Commands[0].Program)
	})

	t.Run("ignore-failure downgrades to a warning", func(t *testing.T) {
		c, printer, executor, _ := newTestContainer()
		executor.ExecuteErr = errors.New("exit status 1")
		_, _, err := execute(t, c, "run", "--ignore-failure", "--", "false")
		require.NoError(t, err)
		assert.Equal(t, []string{"command failed: false"}, printer.Warnings)
	})

	t.Run("child flags are not parsed as run flags", func(t *testing.T) {
		c, _, executor, _ := newTestContainer()
		_, _, err := execute(t, c, "run", "git", "status", "--porcelain")
		require.NoError(t, err)
		require.Len(t, executor.Commands, 1)
		assert.Equal(t, []string{"status", "--porcelain"}, executor.Commands[0].Args)
	})

	t.Run("shell mode hands the line to sh", func(t *testing.T) {
		c, _, executor, _ := newTestContainer()
		_, _, err := execute(t, c, "run", "-c", "--", "echo hi | cat")
		require.NoError(t, err)
		require.Len(t, executor.Commands, 1)
		assert.Equal(t, "sh", executor.Commands[0].Program)
		assert.Equal(t, []string{"-c", "echo hi | cat"}, executor.Commands[0].Args)
	})

	t.Run("requires a command", func(t *testing.T) {
		c, _, _, _ := newTestContainer()
		_, _, err := execute(t, c, "run")
		require.Error(t, err)
	})
}

func TestSnippetCommand(t *testing.T) {
	t.Run("prints the shell fragment", func(t *testing.T) {
		c, _, _, _ := newTestContainer()
		stdout, _, err := execute(t, c, "snippet")
		require.NoError(t, err)
		assert.Contains(t, stdout, "println()")
		assert.Contains(t, stdout, "ignore_failure()")
	})

	t.Run("workflow format emits YAML", func(t *testing.T) {
		c, _, _, _ := newTestContainer()
		stdout, _, err := execute(t, c, "snippet", "--format", "workflow")
		require.NoError(t, err)
		assert.Contains(t, stdout, "env:")
		assert.Contains(t, stdout, domain.DefaultSnippetVar)
	})

	t.Run("unknown format fails", func(t *testing.T) {
		c, _, _, _ := newTestContainer()
		_, _, err := execute(t, c, "snippet", "--format", "json")
		assert.ErrorIs(t, err, domain.ErrInvalidFormat)
	})

	t.Run("github-env without target fails", func(t *testing.T) {
		t.Setenv("GITHUB_ENV", "")
		c, _, _, _ := newTestContainer()
		_, _, err := execute(t, c, "snippet", "--github-env")
		assert.ErrorIs(t, err, domain.ErrEnvFileNotSet)
	})
}
