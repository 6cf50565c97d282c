package git

import (
	"context"
	"fmt"
	"strings"
)

// StashPush stashes pending changes, including untracked files. Returns
// true if anything was actually stashed so the caller knows whether a
// matching StashPop is needed.
func StashPush(ctx context.Context, runner *CommandRunner, message string) (bool, error) {
	args := []string{"stash", "push", "-u"}
	if message != "" {
		args = append(args, "-m", message)
	}
	output, err := runner.Git(ctx, args...)
	if err != nil {
		return false, fmt.Errorf("stash push failed: %w", err)
	}
	return !strings.Contains(output, "No local changes"), nil
}

// StashPop restores the most recently stashed changes
func StashPop(ctx context.Context, runner *CommandRunner) error {
	if _, err := runner.Git(ctx, "stash", "pop"); err != nil {
		return fmt.Errorf("stash pop failed: %w", err)
	}
	return nil
}
