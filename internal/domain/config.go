package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Configuration file locations.
const (
	// RepoConfigFileName is the repository-local config file, placed at
	// the repository root.
	RepoConfigFileName = ".shellmate.toml"

	// GlobalConfigFileName is the config file inside the global config
	// directory.
	GlobalConfigFileName = "config.toml"
)

// Default configuration values.
const (
	DefaultWarnMarker  = "⚠"
	DefaultErrorMarker = "✗"
	DefaultColorMode   = "auto"
	DefaultSnippetVar  = "SHELLMATE_INIT"
	DefaultLogLevel    = "info"
)

// Color modes for diagnostic output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// GlobalConfigDir returns the global config directory under the given
// config home (e.g. ~/.config).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, "shellmate")
}

// Config represents the application configuration.
type Config struct {
	Output  OutputConfig  `toml:"output"`
	Snippet SnippetConfig `toml:"snippet"`
	Log     LogConfig     `toml:"log"`
}

// OutputConfig holds settings for diagnostic output from [output].
type OutputConfig struct {
	WarnMarker  string `toml:"warn_marker,omitempty"`  // Prefix glyph for warning lines
	ErrorMarker string `toml:"error_marker,omitempty"` // Prefix glyph for error lines
	Color       string `toml:"color,omitempty"`        // "auto" (default), "always" or "never"
}

// SnippetConfig holds settings for snippet generation from [snippet].
type SnippetConfig struct {
	VarName string `toml:"var_name,omitempty"` // Environment variable carrying the fragment
}

// LogConfig holds settings for file logging from [log].
type LogConfig struct {
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error
	Dir   string `toml:"dir,omitempty"`   // Log directory; empty disables file logging
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			WarnMarker:  DefaultWarnMarker,
			ErrorMarker: DefaultErrorMarker,
			Color:       DefaultColorMode,
		},
		Snippet: SnippetConfig{
			VarName: DefaultSnippetVar,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// Validate checks the configuration for values that cannot be acted on.
func (c *Config) Validate() error {
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidColorMode, c.Output.Color)
	}
	return nil
}

// configTemplateData carries the defaults rendered into the commented
// config template.
type configTemplateData struct {
	WarnMarker  string
	ErrorMarker string
	ColorMode   string
	SnippetVar  string
	LogLevel    string
}

// RenderConfigTemplate renders the commented configuration template with
// the given config's values as defaults.
func RenderConfigTemplate(cfg *Config) string {
	data := configTemplateData{
		WarnMarker:  cfg.Output.WarnMarker,
		ErrorMarker: cfg.Output.ErrorMarker,
		ColorMode:   cfg.Output.Color,
		SnippetVar:  cfg.Snippet.VarName,
		LogLevel:    cfg.Log.Level,
	}

	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		// Should never happen with valid data
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}

	return buf.String()
}
