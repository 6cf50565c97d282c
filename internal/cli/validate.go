package cli

import (
	"github.com/spf13/cobra"

	"mortar.dev/mortar/internal/git"
	"mortar.dev/mortar/internal/output"
	"mortar.dev/mortar/internal/snapshot"
)

// newValidateCmd creates the validate command
func newValidateCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that the project is ready to snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			printer := output.NewPrinter()

			repo, cfg, err := ensureProject(ctx)
			if err != nil {
				return err
			}
			printer.Info("Git repository found at %s", repo.Root())

			if err := confirmDefaultManifest(repo.Root(), yes); err != nil {
				return err
			}

			paths, err := snapshot.ResolvePaths(repo.Root())
			if err != nil {
				return err
			}
			printer.Info("Manifest resolves %d paths", len(paths))

			conflicted, err := git.HasConflicts(ctx, repo.Runner())
			if err != nil {
				return err
			}
			if conflicted {
				printer.Warn("Working tree has unresolved merge conflicts")
			}

			if name, err := repo.ProjectName(); err == nil {
				printer.Info("Project: %s", name)
			}

			printer.Info("Remote for snapshots: %s", cfg.RemoteName())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Create a default project.manifest without asking")

	return cmd
}
