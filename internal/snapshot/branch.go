package snapshot

import (
	"context"
	"fmt"

	uuid "github.com/nu7hatch/gouuid"

	"mortar.dev/mortar/internal/git"
)

// BranchPrefix is the fixed prefix for snapshot branch names
const BranchPrefix = "mortar-snapshot-"

// commitMessage is the fixed message for snapshot commits
const commitMessage = "Mortar development snapshot"

// NewBranchName generates a unique snapshot branch name. Collision
// probability is treated as negligible; there is no collision retry.
func NewBranchName() (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", fmt.Errorf("failed to generate branch id: %w", err)
	}
	return BranchPrefix + id.String(), nil
}

// CreateBranch captures the current state of the staged copy on a uniquely
// named branch: check the branch out as new, stage previously-untracked
// files, and commit pending changes if the tree is not already clean. The
// capture is a flattening, point-in-time commit; history structure is not
// preserved.
func CreateBranch(ctx context.Context, stagedDir string) (string, error) {
	runner := git.NewCommandRunner(stagedDir)

	branchName, err := NewBranchName()
	if err != nil {
		return "", err
	}

	if err := git.CreateAndCheckoutBranch(ctx, runner, branchName); err != nil {
		return "", err
	}

	untracked, err := git.UntrackedFiles(ctx, runner)
	if err != nil {
		return "", err
	}
	if err := git.Add(ctx, runner, untracked...); err != nil {
		return "", err
	}

	clean, err := git.IsClean(ctx, runner)
	if err != nil {
		return "", err
	}
	if !clean {
		if err := git.Commit(ctx, runner, commitMessage); err != nil {
			return "", err
		}
	}
	return branchName, nil
}
