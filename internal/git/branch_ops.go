package git

import (
	"context"
	"fmt"
)

// CreateAndCheckoutBranch creates and checks out a new branch
func CreateAndCheckoutBranch(ctx context.Context, runner *CommandRunner, branchName string) error {
	if _, err := runner.Git(ctx, "checkout", "-b", branchName); err != nil {
		return fmt.Errorf("failed to create and checkout branch %s: %w", branchName, err)
	}
	return nil
}

// Add stages the given paths
func Add(ctx context.Context, runner *CommandRunner, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	args := append([]string{"add", "--"}, paths...)
	if _, err := runner.Git(ctx, args...); err != nil {
		return fmt.Errorf("failed to stage files: %w", err)
	}
	return nil
}

// Commit creates a commit with the given message, staging pending changes
// to tracked files as part of the commit
func Commit(ctx context.Context, runner *CommandRunner, message string) error {
	if _, err := runner.Git(ctx, "commit", "-a", "-m", message); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// PushBranch pushes a branch to the given remote
func PushBranch(ctx context.Context, runner *CommandRunner, remote, branchName string) error {
	if _, err := runner.Git(ctx, "push", remote, branchName); err != nil {
		return fmt.Errorf("failed to push branch %s to %s: %w", branchName, remote, err)
	}
	return nil
}

// RevParse resolves a ref to its commit hash
func RevParse(ctx context.Context, runner *CommandRunner, ref string) (string, error) {
	sha, err := runner.Git(ctx, "rev-parse", "--verify", ref)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", ref, err)
	}
	return sha, nil
}
