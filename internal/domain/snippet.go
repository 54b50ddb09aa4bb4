package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed snippet.sh.tmpl
var snippetTemplateContent string

// Snippet formats.
const (
	SnippetFormatShell    = "shell"
	SnippetFormatWorkflow = "workflow"
)

// snippetTemplateData carries the marker glyphs rendered into the shell
// fragment.
type snippetTemplateData struct {
	WarnMarker  string
	ErrorMarker string
}

// RenderSnippet renders the POSIX-shell fragment defining the println,
// warn, err and ignore_failure helpers with the configured markers.
// The fragment sets no shell options; mode policy belongs to the
// enclosing script.
func RenderSnippet(cfg *Config) string {
	data := snippetTemplateData{
		WarnMarker:  cfg.Output.WarnMarker,
		ErrorMarker: cfg.Output.ErrorMarker,
	}

	tmpl, err := template.New("snippet").Parse(snippetTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse snippet template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		// Should never happen with valid data
		panic(fmt.Sprintf("failed to execute snippet template: %v", err))
	}

	return buf.String()
}

// GitHubEnvEntry formats a multi-line value for appending to a GitHub
// Actions environment file, using heredoc delimiter syntax. The
// delimiter is extended until it does not occur in the value.
func GitHubEnvEntry(name, value string) string {
	delim := "SHELLMATE_EOF"
	for strings.Contains(value, delim) {
		delim += "_"
	}
	return fmt.Sprintf("%s<<%s\n%s\n%s\n", name, delim, strings.TrimRight(value, "\n"), delim)
}
