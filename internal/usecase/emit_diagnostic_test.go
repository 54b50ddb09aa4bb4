package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/shellmate/internal/domain"
	"github.com/runoshun/shellmate/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitDiagnostic_Execute(t *testing.T) {
	t.Run("warning reports success", func(t *testing.T) {
		printer := &testutil.MockPrinter{}
		logger := &testutil.MockLogger{}
		uc := NewEmitDiagnostic(printer, logger)

		out, err := uc.Execute(context.Background(), EmitDiagnosticInput{
			Severity: domain.SeverityWarning,
			Args:     []string{"cache", "is", "stale"},
		})
		require.NoError(t, err)
		assert.False(t, out.Outcome.Failed())
		assert.Equal(t, domain.ExitSuccess, out.Outcome.ExitCode())
		assert.Equal(t, []string{"cache is stale"}, printer.Warnings)
		assert.Empty(t, printer.Errors)
		assert.Contains(t, logger.Entries, "WARN [diag] cache is stale")
	})

	t.Run("error reports failure", func(t *testing.T) {
		printer := &testutil.MockPrinter{}
		logger := &testutil.MockLogger{}
		uc := NewEmitDiagnostic(printer, logger)

		out, err := uc.Execute(context.Background(), EmitDiagnosticInput{
			Severity: domain.SeverityError,
			Args:     []string{"missing input"},
		})
		require.NoError(t, err)
		assert.True(t, out.Outcome.Failed())
		assert.Equal(t, domain.ExitFailure, out.Outcome.ExitCode())
		assert.Equal(t, []string{"missing input"}, printer.Errors)
		assert.Empty(t, printer.Warnings)
	})

	t.Run("empty message is still emitted", func(t *testing.T) {
		printer := &testutil.MockPrinter{}
		uc := NewEmitDiagnostic(printer, &testutil.MockLogger{})

		out, err := uc.Execute(context.Background(), EmitDiagnosticInput{
			Severity: domain.SeverityWarning,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{""}, printer.Warnings)
		assert.False(t, out.Outcome.Failed())
	})
}
