package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/runoshun/shellmate/internal/domain"
)

// RunCommandInput contains the parameters for running a command.
type RunCommandInput struct {
	Command []string // Command and arguments to execute (required)
	Dir     string   // Working directory; empty means the current one

	// IgnoreFailure downgrades a failing command to a single warning
	// line and a success status. This is strictly opt-in; by default
	// the child's failure propagates.
	IgnoreFailure bool

	// Quiet suppresses the child's stdout/stderr. The combined output
	// is still captured and kept in the debug log.
	Quiet bool

	// Shell joins the arguments into a single line and runs it through
	// `sh -c`, so pipelines and conditionals work without quoting games.
	Shell bool
}

// RunCommandOutput contains the result of running a command.
type RunCommandOutput struct {
	ExitCode   int  // Status to report to the caller
	Suppressed bool // Whether a failure was downgraded to a warning
}

// RunCommand is the use case for executing a command, optionally
// suppressing its failure.
type RunCommand struct {
	executor domain.CommandExecutor
	printer  domain.DiagnosticPrinter
	logger   domain.Logger
	stdout   io.Writer
	stderr   io.Writer
}

// NewRunCommand creates a new RunCommand use case. stdout and stderr
// receive the child's streams.
func NewRunCommand(executor domain.CommandExecutor, printer domain.DiagnosticPrinter, logger domain.Logger, stdout, stderr io.Writer) *RunCommand {
	return &RunCommand{
		executor: executor,
		printer:  printer,
		logger:   logger,
		stdout:   stdout,
		stderr:   stderr,
	}
}

// Execute runs the command. A non-zero child exit is reflected in the
// output's ExitCode, not in the returned error; the error is reserved
// for commands that could not be run at all. With IgnoreFailure set,
// any failure results in exactly one warning line and a zero exit code.
func (uc *RunCommand) Execute(ctx context.Context, in RunCommandInput) (*RunCommandOutput, error) {
	if len(in.Command) == 0 {
		return nil, domain.ErrEmptyCommand
	}

	var cmd *domain.ExecCommand
	if in.Shell {
		cmd = domain.NewShellCommand(strings.Join(in.Command, " "), in.Dir)
	} else {
		cmd = domain.NewCommand(in.Command[0], in.Command[1:], in.Dir)
	}

	uc.logger.Debug("run", cmd.Line())

	var err error
	if in.Quiet {
		// Capture instead of streaming so the output still reaches the log.
		var output []byte
		output, err = uc.executor.Execute(cmd)
		if trimmed := strings.TrimSpace(string(output)); trimmed != "" {
			uc.logger.Debug("run", "quiet output: "+trimmed)
		}
	} else {
		err = uc.executor.ExecuteWithContext(ctx, cmd, uc.stdout, uc.stderr)
	}
	if err == nil {
		return &RunCommandOutput{ExitCode: domain.ExitSuccess}, nil
	}

	if in.IgnoreFailure {
		uc.printer.Warn("command failed: " + cmd.Line())
		uc.logger.Warn("run", fmt.Sprintf("suppressed failure: %s (%v)", cmd.Line(), err))
		return &RunCommandOutput{ExitCode: domain.ExitSuccess, Suppressed: true}, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// The child ran and failed; it already wrote its own
		// diagnostics, so only its status is propagated.
		uc.logger.Info("run", fmt.Sprintf("command failed: %s (%v)", cmd.Line(), err))
		return &RunCommandOutput{ExitCode: domain.ExitCodeOf(err)}, nil
	}

	return nil, fmt.Errorf("run %s: %w", cmd.Line(), err)
}
