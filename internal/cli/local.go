package cli

import (
	"github.com/spf13/cobra"

	"mortar.dev/mortar/internal/output"
	"mortar.dev/mortar/internal/pyenv"
)

// newLocalCmd creates the local command group
func newLocalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "local",
		Short: "Manage the local Python runtime",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "setup",
		Short: "Create a local Python environment and install project requirements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			printer := output.NewPrinter()

			repo, _, err := ensureProject(ctx)
			if err != nil {
				return err
			}

			if err := pyenv.Setup(ctx, repo.Root()); err != nil {
				return err
			}

			printer.Info("Local Python environment ready at %s", pyenv.EnvPath(repo.Root()))
			return nil
		},
	})

	return cmd
}
