package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcome(t *testing.T) {
	t.Run("notice reports success", func(t *testing.T) {
		o := Notice(SeverityWarning, "disk almost full")
		assert.False(t, o.Failed())
		assert.Equal(t, ExitSuccess, o.ExitCode())
		assert.Equal(t, "disk almost full", o.Message)
	})

	t.Run("failure reports failure", func(t *testing.T) {
		o := Failure("missing input")
		assert.True(t, o.Failed())
		assert.Equal(t, ExitFailure, o.ExitCode())
	})

	t.Run("notice never carries error severity", func(t *testing.T) {
		o := Notice(SeverityError, "downgraded")
		assert.False(t, o.Failed())
		assert.Equal(t, SeverityWarning, o.Severity)
	})
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
}
