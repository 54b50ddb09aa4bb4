// Package usecase contains the application use cases.
package usecase

import (
	"context"

	"github.com/runoshun/shellmate/internal/domain"
)

// PrintMessageInput contains the parameters for printing an
// informational line.
type PrintMessageInput struct {
	// Args is the raw argument list. The first argument is the format
	// template; the rest are its operands. Empty means "print a blank
	// line".
	Args []string
}

// PrintMessage is the use case for the diagnostic output helper: format
// the arguments to stdout and unconditionally terminate the line.
type PrintMessage struct {
	printer domain.DiagnosticPrinter
}

// NewPrintMessage creates a new PrintMessage use case.
func NewPrintMessage(printer domain.DiagnosticPrinter) *PrintMessage {
	return &PrintMessage{printer: printer}
}

// Execute writes the formatted line. It has no error conditions.
func (uc *PrintMessage) Execute(_ context.Context, in PrintMessageInput) error {
	uc.printer.Println(in.Args...)
	return nil
}
