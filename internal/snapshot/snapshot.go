package snapshot

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"

	mortarerrors "mortar.dev/mortar/internal/errors"
	"mortar.dev/mortar/internal/git"
)

// Snapshotter orchestrates the snapshot workflow against one repository
type Snapshotter struct {
	repo      *git.Repository
	publisher *Publisher
}

// NewSnapshotter creates a Snapshotter that publishes to the given remote
func NewSnapshotter(repo *git.Repository, publisher *Publisher) *Snapshotter {
	return &Snapshotter{repo: repo, publisher: publisher}
}

// Create resolves the manifest, stages an isolated copy and commits the
// current project state on a fresh snapshot branch inside it. The original
// working tree is never touched. The caller owns the returned directory.
func (s *Snapshotter) Create(ctx context.Context) (stagedDir, branchName string, err error) {
	hasCommits, err := git.HasCommits(ctx, s.repo.Runner())
	if err != nil {
		return "", "", err
	}
	if !hasCommits {
		return "", "", mortarerrors.NewNoCommitsError(s.repo.Root())
	}

	paths, err := ResolvePaths(s.repo.Root())
	if err != nil {
		return "", "", err
	}

	stagedDir, err = Stage(s.repo.Root(), paths)
	if err != nil {
		return "", "", err
	}

	branchName, err = CreateBranch(ctx, stagedDir)
	if err != nil {
		os.RemoveAll(stagedDir)
		return "", "", err
	}

	logrus.WithFields(logrus.Fields{
		"dir":    stagedDir,
		"branch": branchName,
	}).Debug("snapshot staged")

	return stagedDir, branchName, nil
}

// CreateAndPush creates a snapshot, publishes it, and returns the resolved
// commit hash, the only artifact that outlives the snapshot. The staged
// directory is discarded on every exit path.
func (s *Snapshotter) CreateAndPush(ctx context.Context) (string, error) {
	stagedDir, branchName, err := s.Create(ctx)
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(stagedDir)

	return s.publisher.Publish(ctx, stagedDir, branchName)
}
