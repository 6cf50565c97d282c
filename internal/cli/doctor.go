package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mortar.dev/mortar/internal/git"
	"mortar.dev/mortar/internal/output"
	"mortar.dev/mortar/internal/pyenv"
	"mortar.dev/mortar/internal/snapshot"
)

// newDoctorCmd creates the doctor command
func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check your environment for problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			printer := output.NewPrinter()
			problems := 0

			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			runner := git.NewCommandRunner(wd)

			printer.Plain("Checking environment...")

			if err := git.CheckGitVersion(ctx, runner); err != nil {
				printer.Error("  ✗ %v", err)
				problems++
			} else {
				banner, _ := runner.Git(ctx, "version")
				printer.Info("  ✓ %s", banner)
			}

			if _, err := runner.Tool(ctx, "virtualenv", "--version"); err != nil {
				printer.Warn("  - virtualenv not found; 'mortar local setup' will not work")
			} else {
				printer.Info("  ✓ virtualenv found")
			}

			repo, err := git.OpenRepository(wd)
			if err != nil {
				printer.Error("  ✗ %v", err)
				problems++
			} else {
				printer.Info("  ✓ git repository at %s", repo.Root())

				if snapshot.ManifestExists(repo.Root()) {
					printer.Info("  ✓ %s present", snapshot.ManifestFileName)
				} else {
					printer.Warn("  - no %s; one will be created on first snapshot", snapshot.ManifestFileName)
				}

				if name, err := repo.ProjectName(); err == nil {
					printer.Info("  ✓ mortar project: %s", name)
				} else {
					printer.Warn("  - no remote matches the mortar project naming convention")
				}
			}

			printer.Plain("Python distribution URL: %s", pyenv.DistURL())
			printer.Plain("Requirements file: %s", pyenv.RequirementsPath())

			if problems > 0 {
				return fmt.Errorf("%d problem(s) found", problems)
			}
			printer.Info("Everything looks good")
			return nil
		},
	}
}
