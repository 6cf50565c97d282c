package git

import (
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"

	mortarerrors "mortar.dev/mortar/internal/errors"
)

// Repository wraps a go-git repository rooted at a project directory.
// No state of its own is persisted; everything is read live from the
// filesystem and the git command.
type Repository struct {
	*gogit.Repository
	root   string
	runner *CommandRunner
}

// OpenRepository opens the git repository containing path
func OpenRepository(path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := gogit.PlainOpenWithOptions(absPath, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, mortarerrors.NewRepositoryNotFoundError(absPath)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}
	root := worktree.Filesystem.Root()

	return &Repository{
		Repository: repo,
		root:       root,
		runner:     NewCommandRunner(root),
	}, nil
}

// Root returns the root directory of the repository
func (r *Repository) Root() string {
	return r.root
}

// Runner returns a command runner rooted at the repository
func (r *Repository) Runner() *CommandRunner {
	return r.runner
}
