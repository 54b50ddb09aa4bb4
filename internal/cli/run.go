package cli

import (
	"github.com/runoshun/shellmate/internal/app"
	"github.com/runoshun/shellmate/internal/domain"
	"github.com/runoshun/shellmate/internal/usecase"
	"github.com/spf13/cobra"
)

// newRunCommand creates the run command for executing a command with
// optional failure suppression.
func newRunCommand(c *app.Container) *cobra.Command {
	var ignoreFailure bool
	var quiet bool
	var shell bool
	var dir string

	cmd := &cobra.Command{
		Use:   "run [flags] -- <command> [args...]",
		Short: "Run a command, optionally downgrading its failure to a warning",
		Long: `Run a command with its stdout/stderr passed through.

By default the child's exit status is mirrored: failures propagate to
the calling script's sequencing logic. With --ignore-failure any
failure is deliberately converted into exactly one warning line and a
zero exit status. This is a policy choice the caller opts into, typical
for best-effort cleanup steps:

  shellmate run --ignore-failure -- docker rm -f build-cache

With --shell the arguments are joined and handed to sh -c, so
pipelines and conditionals need no extra quoting:

  shellmate run -c -- "docker ps -q | xargs docker stop"

Examples:
  # Propagate failure (exit mirrors the child)
  shellmate run -- make test

  # Best-effort: warn instead of failing
  shellmate run --ignore-failure --quiet -- rm -r /tmp/scratch`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.RunCommandUseCase(cmd.OutOrStdout(), cmd.ErrOrStderr())
			out, err := uc.Execute(cmd.Context(), usecase.RunCommandInput{
				Command:       args,
				Dir:           dir,
				IgnoreFailure: ignoreFailure,
				Quiet:         quiet,
				Shell:         shell,
			})
			if err != nil {
				return err
			}
			if out.ExitCode != domain.ExitSuccess {
				// The child already wrote its diagnostics; mirror the status silently.
				return domain.NewExitError(out.ExitCode)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&ignoreFailure, "ignore-failure", false, "Downgrade a failure to a single warning and exit 0")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "Discard the command's stdout and stderr")
	cmd.Flags().BoolVarP(&shell, "shell", "c", false, "Join the arguments and run them through sh -c")
	cmd.Flags().StringVar(&dir, "dir", "", "Working directory for the command")
	// Flags after the command belong to the command
	cmd.Flags().SetInterspersed(false)

	return cmd
}
