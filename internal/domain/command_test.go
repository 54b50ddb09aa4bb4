package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecCommandLine(t *testing.T) {
	t.Run("program only", func(t *testing.T) {
		cmd := NewCommand("true", nil, "")
		assert.Equal(t, "true", cmd.Line())
	})

	t.Run("program with args", func(t *testing.T) {
		cmd := NewCommand("git", []string{"status", "--porcelain"}, "")
		assert.Equal(t, "git status --porcelain", cmd.Line())
	})

	t.Run("shell command", func(t *testing.T) {
		cmd := NewShellCommand("echo hello", "/tmp")
		assert.Equal(t, "sh", cmd.Program)
		assert.Equal(t, []string{"-c", "echo hello"}, cmd.Args)
		assert.Equal(t, "/tmp", cmd.Dir)
	})
}
