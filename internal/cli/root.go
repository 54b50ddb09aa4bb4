// Package cli provides the command-line interface for shellmate.
package cli

import (
	"fmt"

	"github.com/runoshun/shellmate/internal/app"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupOutput  = "output"
	groupExec    = "exec"
	groupSnippet = "snippet"
	groupSetup   = "setup"
)

// NewRootCommand creates the root command for shellmate.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var noColor bool

	root := &cobra.Command{
		Use:   "shellmate",
		Short: "Diagnostic helpers for shell scripts and CI steps",
		Long: `shellmate formalizes the diagnostic conventions for shell scripts:
informational lines on stdout, marker-prefixed warnings and errors on
stderr, and an explicit opt-in wrapper that downgrades a command's
failure to a logged warning.

The same helpers are available as a POSIX-shell fragment: 'shellmate
snippet' renders it, and 'shellmate snippet --github-env' appends it to
a GitHub Actions environment file so every later step can eval it.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if c == nil {
				return
			}
			if noColor {
				c.DisableColor()
			}
			for _, w := range c.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
		},
	}

	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable styled output")

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupOutput, Title: "Diagnostic Output:"},
		&cobra.Group{ID: groupExec, Title: "Command Execution:"},
		&cobra.Group{ID: groupSnippet, Title: "Snippet Generation:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	// Diagnostic output commands
	printCmd := newPrintCommand(c)
	printCmd.GroupID = groupOutput

	warnCmd := newWarnCommand(c)
	warnCmd.GroupID = groupOutput

	errorCmd := newErrorCommand(c)
	errorCmd.GroupID = groupOutput

	// Command execution
	runCmd := newRunCommand(c)
	runCmd.GroupID = groupExec

	// Snippet generation
	snippetCmd := newSnippetCommand(c)
	snippetCmd.GroupID = groupSnippet

	// Setup commands
	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		printCmd,
		warnCmd,
		errorCmd,
		runCmd,
		snippetCmd,
		configCmd,
	)

	return root
}
