package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"

	"mortar.dev/mortar/internal/config"
	"mortar.dev/mortar/internal/git"
	"mortar.dev/mortar/internal/snapshot"
)

// ensureProject verifies the environment a mortar command needs: a
// supported git on the PATH and a git repository at the current directory.
func ensureProject(ctx context.Context) (*git.Repository, *config.ProjectConfig, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, nil, err
	}

	if err := git.CheckGitVersion(ctx, git.NewCommandRunner(wd)); err != nil {
		return nil, nil, err
	}

	repo, err := git.OpenRepository(wd)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(repo.Root())
	if err != nil {
		return nil, nil, err
	}
	return repo, cfg, nil
}

// confirmDefaultManifest asks before writing a default manifest when the
// project has none. Non-interactive runs and --yes skip the prompt and
// write it, matching the resolver's create-if-absent behavior.
func confirmDefaultManifest(root string, assumeYes bool) error {
	if snapshot.ManifestExists(root) {
		return nil
	}
	if assumeYes || !isatty.IsTerminal(os.Stdin.Fd()) {
		return nil
	}

	create := false
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("No %s found. Create one with the default project directories?", snapshot.ManifestFileName),
		Default: true,
	}
	if err := survey.AskOne(prompt, &create); err != nil {
		return err
	}
	if !create {
		return fmt.Errorf("a %s file is required to take a snapshot", snapshot.ManifestFileName)
	}
	return nil
}

// newPublisher builds a publisher from project configuration
func newPublisher(cfg *config.ProjectConfig, remoteOverride string) *snapshot.Publisher {
	remote := cfg.RemoteName()
	if remoteOverride != "" {
		remote = remoteOverride
	}

	publisher := snapshot.NewPublisher(remote)
	if cfg.Publish.MaxAttempts > 0 {
		publisher.MaxAttempts = cfg.Publish.MaxAttempts
	}
	if delay := cfg.PublishBaseDelay(); delay > 0 {
		publisher.BaseDelay = delay
	}
	return publisher
}
