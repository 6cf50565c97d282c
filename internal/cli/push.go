package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"mortar.dev/mortar/internal/git"
	"mortar.dev/mortar/internal/output"
)

// newPushCmd creates the push command
func newPushCmd() *cobra.Command {
	var remote string

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Push the trunk branch to the project remote",
		Long: `Push the trunk branch to the project remote.

Unlike snapshot, this operates against the live working tree: uncommitted
changes are stashed for the duration of the push and restored afterward.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			printer := output.NewPrinter()

			repo, cfg, err := ensureProject(ctx)
			if err != nil {
				return err
			}
			runner := repo.Runner()

			conflicted, err := git.HasConflicts(ctx, runner)
			if err != nil {
				return err
			}
			if conflicted {
				return fmt.Errorf("working tree has unresolved merge conflicts; resolve them before pushing")
			}

			branch, err := git.CurrentBranch(ctx, runner)
			if err != nil {
				return err
			}
			trunk := cfg.TrunkName()
			if branch != trunk {
				return fmt.Errorf("currently on branch %s; check out %s before pushing", branch, trunk)
			}

			stashed, err := git.StashPush(ctx, runner, "mortar push")
			if err != nil {
				return err
			}

			pushTarget := cfg.RemoteName()
			if remote != "" {
				pushTarget = remote
			}
			pushErr := git.PushBranch(ctx, runner, pushTarget, trunk)

			if stashed {
				if err := git.StashPop(ctx, runner); err != nil {
					if pushErr != nil {
						return fmt.Errorf("%v; additionally failed to restore stashed changes: %w", pushErr, err)
					}
					return fmt.Errorf("pushed %s but failed to restore stashed changes: %w", trunk, err)
				}
			}
			if pushErr != nil {
				return pushErr
			}

			printer.Info("Pushed %s to %s", trunk, pushTarget)
			return nil
		},
	}

	cmd.Flags().StringVar(&remote, "remote", "", "Push to this remote instead of the configured one")

	return cmd
}
