package cli

import (
	"github.com/runoshun/shellmate/internal/app"
	"github.com/runoshun/shellmate/internal/domain"
	"github.com/runoshun/shellmate/internal/usecase"
	"github.com/spf13/cobra"
)

// newPrintCommand creates the print command for informational output.
func newPrintCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print [format [args...]]",
		Short: "Print a formatted line to stdout",
		Long: `Print a line to stdout. The first argument is a printf-style format
template, the remaining arguments are its operands. The line terminator
is always appended; with no arguments only a blank line is printed.

Examples:
  shellmate print "deploying %s to %s" v1.2.3 staging
  shellmate print done
  shellmate print`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.PrintMessageUseCase()
			return uc.Execute(cmd.Context(), usecase.PrintMessageInput{Args: args})
		},
	}

	// Leading dashes in the format string must reach the use case
	cmd.Flags().SetInterspersed(false)
	return cmd
}

// newWarnCommand creates the warn command.
func newWarnCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "warn [message...]",
		Short: "Print a warning to stderr and report success",
		Long: `Print the message to stderr, prefixed with the warning marker.

The command always exits 0 so it can be used inside sequences without
aborting them:

  make lint || shellmate warn "lint failed, continuing"`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.EmitDiagnosticUseCase()
			_, err := uc.Execute(cmd.Context(), usecase.EmitDiagnosticInput{
				Severity: domain.SeverityWarning,
				Args:     args,
			})
			return err
		},
	}

	cmd.Flags().SetInterspersed(false)
	return cmd
}

// newErrorCommand creates the error command.
func newErrorCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "error [message...]",
		Short: "Print an error to stderr and report failure",
		Long: `Print the message to stderr, prefixed with the error marker.

The command always exits 1 so its status can serve as a "report and
stop" signal:

  test -f config.toml || { shellmate error "config.toml missing"; exit 1; }`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.EmitDiagnosticUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.EmitDiagnosticInput{
				Severity: domain.SeverityError,
				Args:     args,
			})
			if err != nil {
				return err
			}
			// The message already reached stderr; only the status remains.
			return domain.NewExitError(out.Outcome.ExitCode())
		},
	}

	cmd.Flags().SetInterspersed(false)
	return cmd
}
