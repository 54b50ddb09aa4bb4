package cli

import (
	"fmt"

	"github.com/runoshun/shellmate/internal/app"
	"github.com/runoshun/shellmate/internal/usecase"
	"github.com/spf13/cobra"
)

// githubEnvAuto marks --github-env given without a file, meaning
// "resolve from $GITHUB_ENV".
const githubEnvAuto = "-"

// newSnippetCommand creates the snippet command for rendering and
// injecting the shell helper fragment.
func newSnippetCommand(c *app.Container) *cobra.Command {
	var format string
	var githubEnv string

	cmd := &cobra.Command{
		Use:   "snippet",
		Short: "Render the shell helper fragment",
		Long: `Render the POSIX-shell fragment defining println, warn, err and
ignore_failure, semantically identical to the shellmate commands.

By default the fragment is written to stdout. With --format workflow a
YAML env mapping is emitted for pasting into a workflow file. With
--github-env the fragment is appended to a GitHub Actions environment
file instead, so each later step can start with:

  eval "$SHELLMATE_INIT"

Examples:
  # Print the fragment
  shellmate snippet

  # Emit a workflow env block
  shellmate snippet --format workflow

  # Append to $GITHUB_ENV (inside a workflow step)
  shellmate snippet --github-env

  # Append to an explicit file
  shellmate snippet --github-env=/tmp/env`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if githubEnv != "" {
				envFile := githubEnv
				if envFile == githubEnvAuto {
					envFile = ""
				}
				uc := c.InjectSnippetUseCase()
				out, err := uc.Execute(cmd.Context(), usecase.InjectSnippetInput{EnvFile: envFile})
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Injected %s into %s\n", out.VarName, out.Path)
				return nil
			}

			uc := c.RenderSnippetUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.RenderSnippetInput{Format: format})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), out.Text)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "shell", "Output format: shell or workflow")
	cmd.Flags().StringVar(&githubEnv, "github-env", "", "Append the fragment to a GitHub Actions environment file (defaults to $GITHUB_ENV)")
	cmd.Flags().Lookup("github-env").NoOptDefVal = githubEnvAuto

	return cmd
}
