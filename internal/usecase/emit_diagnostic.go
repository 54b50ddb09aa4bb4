package usecase

import (
	"context"
	"strings"

	"github.com/runoshun/shellmate/internal/domain"
)

// EmitDiagnosticInput contains the parameters for emitting a warning or
// error line.
type EmitDiagnosticInput struct {
	// Args are joined with spaces to form the message; warn and error
	// are message helpers, not format helpers.
	Args []string

	// Severity selects the warning or error variant.
	Severity domain.Severity
}

// EmitDiagnosticOutput contains the result of emitting a diagnostic.
type EmitDiagnosticOutput struct {
	Outcome domain.Outcome
}

// EmitDiagnostic is the use case for the warning and error helpers.
// Warnings always report success so callers can use them without
// aborting a sequence; errors always report failure so their result
// can serve as a "report and stop" signal.
type EmitDiagnostic struct {
	printer domain.DiagnosticPrinter
	logger  domain.Logger
}

// NewEmitDiagnostic creates a new EmitDiagnostic use case.
func NewEmitDiagnostic(printer domain.DiagnosticPrinter, logger domain.Logger) *EmitDiagnostic {
	return &EmitDiagnostic{printer: printer, logger: logger}
}

// Execute writes the diagnostic line and returns the outcome.
func (uc *EmitDiagnostic) Execute(_ context.Context, in EmitDiagnosticInput) (*EmitDiagnosticOutput, error) {
	message := strings.Join(in.Args, " ")

	if in.Severity == domain.SeverityError {
		uc.printer.Error(message)
		uc.logger.Error("diag", message)
		return &EmitDiagnosticOutput{Outcome: domain.Failure(message)}, nil
	}

	uc.printer.Warn(message)
	uc.logger.Warn("diag", message)
	return &EmitDiagnosticOutput{Outcome: domain.Notice(domain.SeverityWarning, message)}, nil
}
