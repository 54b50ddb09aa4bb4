package printer

import (
	"bytes"
	"testing"

	"github.com/runoshun/shellmate/internal/domain"
	"github.com/stretchr/testify/assert"
)

func newTestPrinter() (*Printer, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	cfg := domain.NewDefaultConfig().Output
	cfg.Color = domain.ColorNever
	return New(&stdout, &stderr, cfg), &stdout, &stderr
}

func TestPrinter_Println(t *testing.T) {
	t.Run("formats args to stdout with trailing newline", func(t *testing.T) {
		p, stdout, stderr := newTestPrinter()
		p.Println("deploy %s to %s", "v1.2.3", "staging")
		assert.Equal(t, "deploy v1.2.3 to staging\n", stdout.String())
		assert.Empty(t, stderr.String())
	})

	t.Run("single argument is used verbatim", func(t *testing.T) {
		p, stdout, _ := newTestPrinter()
		p.Println("done")
		assert.Equal(t, "done\n", stdout.String())
	})

	t.Run("no args writes only the newline", func(t *testing.T) {
		p, stdout, _ := newTestPrinter()
		p.Println()
		assert.Equal(t, "\n", stdout.String())
	})
}

func TestPrinter_Warn(t *testing.T) {
	p, stdout, stderr := newTestPrinter()
	p.Warn("cache purge failed")
	assert.Equal(t, domain.DefaultWarnMarker+" cache purge failed\n", stderr.String())
	assert.Empty(t, stdout.String())
}

func TestPrinter_Error(t *testing.T) {
	p, stdout, stderr := newTestPrinter()
	p.Error("missing required input")
	assert.Equal(t, domain.DefaultErrorMarker+" missing required input\n", stderr.String())
	assert.Empty(t, stdout.String())
}

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	t.Run("always", func(t *testing.T) {
		assert.True(t, colorEnabled(domain.ColorAlways, &buf))
	})

	t.Run("never", func(t *testing.T) {
		assert.False(t, colorEnabled(domain.ColorNever, &buf))
	})

	t.Run("auto with non-file stream", func(t *testing.T) {
		assert.False(t, colorEnabled(domain.ColorAuto, &buf))
	})

	t.Run("auto honors NO_COLOR", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		assert.False(t, colorEnabled(domain.ColorAuto, &buf))
	})
}

func TestCustomMarkers(t *testing.T) {
	var stderr bytes.Buffer
	p := New(&bytes.Buffer{}, &stderr, domain.OutputConfig{
		WarnMarker:  "WARN:",
		ErrorMarker: "ERROR:",
		Color:       domain.ColorNever,
	})
	p.Warn("one")
	p.Error("two")
	assert.Equal(t, "WARN: one\nERROR: two\n", stderr.String())
}
