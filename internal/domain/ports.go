package domain

import (
	"context"
	"io"
)

// DiagnosticPrinter writes human-readable diagnostics.
// Write failures are deliberately ignored: CLI consumers frequently pipe
// output to tools that close early, and diagnostics must never abort the
// operation they describe.
type DiagnosticPrinter interface {
	// Println formats args to stdout using the first as a format template
	// and unconditionally appends a newline. With no args it writes only
	// the newline.
	Println(args ...string)

	// Warn writes the message to stderr prefixed with the warning marker.
	Warn(message string)

	// Error writes the message to stderr prefixed with the error marker.
	Error(message string)
}

// CommandExecutor runs external commands.
type CommandExecutor interface {
	// Execute runs the command and returns its combined output.
	Execute(cmd *ExecCommand) ([]byte, error)

	// ExecuteWithContext runs a command with context and custom
	// stdout/stderr writers.
	ExecuteWithContext(ctx context.Context, cmd *ExecCommand, stdout, stderr io.Writer) error
}

// ConfigLoader loads configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (default <- global <- repo).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)

	// LoadRepo returns only the repository configuration.
	LoadRepo() (*Config, error)
}

// ConfigManager creates and renders configuration files.
type ConfigManager interface {
	// Init writes the commented config template. Returns the written path.
	Init(global bool) (string, error)

	// Render returns the configuration serialized as TOML.
	Render(cfg *Config) (string, error)
}

// Logger records events to the log files.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}
