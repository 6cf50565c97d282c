package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"mortar.dev/mortar/internal/output"
	"mortar.dev/mortar/internal/snapshot"
)

// newSnapshotCmd creates the snapshot command
func newSnapshotCmd() *cobra.Command {
	var (
		remote string
		yes    bool
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Snapshot the project and push it for remote execution",
		Long: `Snapshot the project and push it for remote execution.

The paths listed in project.manifest are copied into a temporary directory,
committed there on a uniquely named branch, and pushed to the project
remote. Your working tree is never modified. On success the commit hash of
the pushed snapshot is printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			printer := output.NewPrinter()

			repo, cfg, err := ensureProject(ctx)
			if err != nil {
				return err
			}

			if err := confirmDefaultManifest(repo.Root(), yes); err != nil {
				return err
			}

			publisher := newPublisher(cfg, remote)
			if !repo.HasRemote(publisher.Remote) {
				return fmt.Errorf("remote %q is not configured; add it with 'git remote add %s <url>'", publisher.Remote, publisher.Remote)
			}

			snapshotter := snapshot.NewSnapshotter(repo, publisher)
			sha, err := snapshotter.CreateAndPush(ctx)
			if err != nil {
				return err
			}

			printer.Info("Snapshot pushed")
			printer.Ref(sha)
			return nil
		},
	}

	cmd.Flags().StringVar(&remote, "remote", "", "Push the snapshot to this remote instead of the configured one")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Create a default project.manifest without asking")

	return cmd
}
