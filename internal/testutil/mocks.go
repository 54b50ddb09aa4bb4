// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"io"

	"github.com/runoshun/shellmate/internal/domain"
)

// MockPrinter is a test double for domain.DiagnosticPrinter that
// records every line it is asked to write.
type MockPrinter struct {
	Stdout   []string // Lines written via Println (formatted, no newline)
	Warnings []string // Messages written via Warn
	Errors   []string // Messages written via Error
}

// Println records the formatted line.
func (m *MockPrinter) Println(args ...string) {
	if len(args) == 0 {
		m.Stdout = append(m.Stdout, "")
		return
	}
	rest := make([]any, len(args)-1)
	for i, a := range args[1:] {
		rest[i] = a
	}
	m.Stdout = append(m.Stdout, fmt.Sprintf(args[0], rest...))
}

// Warn records the warning message.
func (m *MockPrinter) Warn(message string) {
	m.Warnings = append(m.Warnings, message)
}

// Error records the error message.
func (m *MockPrinter) Error(message string) {
	m.Errors = append(m.Errors, message)
}

// MockExecutor is a test double for domain.CommandExecutor.
// Fields are ordered to minimize memory padding.
type MockExecutor struct {
	ExecuteErr error                // Error returned by all execute methods
	Output     []byte               // Combined output returned by Execute
	StdoutText string               // Text written to stdout by ExecuteWithContext
	StderrText string               // Text written to stderr by ExecuteWithContext
	Commands   []domain.ExecCommand // Every command received, in order
}

// Execute records the command and returns the configured output.
func (m *MockExecutor) Execute(cmd *domain.ExecCommand) ([]byte, error) {
	m.Commands = append(m.Commands, *cmd)
	return m.Output, m.ExecuteErr
}

// ExecuteWithContext records the command, writes the configured stream
// text and returns the configured error.
func (m *MockExecutor) ExecuteWithContext(_ context.Context, cmd *domain.ExecCommand, stdout, stderr io.Writer) error {
	m.Commands = append(m.Commands, *cmd)
	if m.StdoutText != "" {
		_, _ = io.WriteString(stdout, m.StdoutText)
	}
	if m.StderrText != "" {
		_, _ = io.WriteString(stderr, m.StderrText)
	}
	return m.ExecuteErr
}

// MockLogger is a test double for domain.Logger that records entries
// as "LEVEL [category] msg" strings.
type MockLogger struct {
	Entries []string
}

// Debug records a debug entry.
func (m *MockLogger) Debug(category, msg string) { m.record("DEBUG", category, msg) }

// Info records an info entry.
func (m *MockLogger) Info(category, msg string) { m.record("INFO", category, msg) }

// Warn records a warn entry.
func (m *MockLogger) Warn(category, msg string) { m.record("WARN", category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(category, msg string) { m.record("ERROR", category, msg) }

func (m *MockLogger) record(level, category, msg string) {
	m.Entries = append(m.Entries, fmt.Sprintf("%s [%s] %s", level, category, msg))
}

// MockConfigLoader is a test double for domain.ConfigLoader returning
// a fixed config and recording which layer was requested.
type MockConfigLoader struct {
	Cfg   *domain.Config
	Err   error
	Calls []string // "merged", "global" or "repo", in order
}

// Load returns the configured config or error.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	m.Calls = append(m.Calls, "merged")
	return m.Cfg, m.Err
}

// LoadGlobal returns the configured config or error.
func (m *MockConfigLoader) LoadGlobal() (*domain.Config, error) {
	m.Calls = append(m.Calls, "global")
	return m.Cfg, m.Err
}

// LoadRepo returns the configured config or error.
func (m *MockConfigLoader) LoadRepo() (*domain.Config, error) {
	m.Calls = append(m.Calls, "repo")
	return m.Cfg, m.Err
}

// MockConfigManager is a test double for domain.ConfigManager.
type MockConfigManager struct {
	InitPath   string
	RenderText string
	InitErr    error
	RenderErr  error
	InitCalls  []bool // Global flag of each Init call
}

// Init records the call and returns the configured path or error.
func (m *MockConfigManager) Init(global bool) (string, error) {
	m.InitCalls = append(m.InitCalls, global)
	return m.InitPath, m.InitErr
}

// Render returns the configured text or error.
func (m *MockConfigManager) Render(_ *domain.Config) (string, error) {
	return m.RenderText, m.RenderErr
}
