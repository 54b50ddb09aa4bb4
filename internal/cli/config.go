package cli

import (
	"fmt"

	"github.com/runoshun/shellmate/internal/app"
	"github.com/runoshun/shellmate/internal/usecase"
	"github.com/spf13/cobra"
)

// newConfigCommand creates the config command with init/show subcommands.
func newConfigCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage shellmate configuration",
		Long: `Manage shellmate configuration.

Configuration is merged from the global file
($XDG_CONFIG_HOME/shellmate/config.toml) and the repository-local
.shellmate.toml at the repository root; the repository file wins.`,
	}

	cmd.AddCommand(
		newConfigInitCommand(c),
		newConfigShowCommand(c),
	)
	return cmd
}

// newConfigInitCommand creates the config init subcommand.
func newConfigInitCommand(c *app.Container) *cobra.Command {
	var global bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a commented config template",
		Long: `Write a commented configuration template.

By default the repository-local .shellmate.toml is created, which
requires running inside a git repository. With --global the template
goes to the global config directory instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.InitConfigUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.InitConfigInput{Global: global})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", out.Path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&global, "global", false, "Write the global config instead of the repo-local one")
	return cmd
}

// newConfigShowCommand creates the config show subcommand.
func newConfigShowCommand(c *app.Container) *cobra.Command {
	var global bool
	var repo bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective merged configuration",
		Long: `Show the effective merged configuration as TOML.

With --global or --repo only that single file is shown, which fails
when the file does not exist. Without a scope the merged result is
shown, falling back to defaults for anything unset.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ShowConfigUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowConfigInput{Global: global, Repo: repo})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), out.TOML)
			return nil
		},
	}

	cmd.Flags().BoolVar(&global, "global", false, "Show only the global config file")
	cmd.Flags().BoolVar(&repo, "repo", false, "Show only the repository-local config file")
	cmd.MarkFlagsMutuallyExclusive("global", "repo")
	return cmd
}
