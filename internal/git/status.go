package git

import (
	"context"
	"fmt"
	"strings"

	mortarerrors "mortar.dev/mortar/internal/errors"
)

// conflictCodes is the fixed set of two-letter porcelain status codes that
// indicate an unresolved merge conflict
var conflictCodes = map[string]bool{
	"DD": true,
	"AU": true,
	"UD": true,
	"UA": true,
	"DU": true,
	"AA": true,
	"UU": true,
}

// HasCommits reports whether the repository has at least one resolvable commit
func HasCommits(ctx context.Context, runner *CommandRunner) (bool, error) {
	if err := runner.RequireRepo(); err != nil {
		return false, err
	}
	_, err := runner.Git(ctx, "rev-parse", "--verify", "--quiet", "HEAD")
	if err != nil {
		// rev-parse fails when HEAD does not resolve, which is the
		// no-commits case, not an error
		return false, nil
	}
	return true, nil
}

// CurrentBranch returns the name of the currently checked out branch by
// parsing the line-oriented branch listing. A repository with no marked
// line is an invariant violation, surfaced as ErrBranchNotFound.
func CurrentBranch(ctx context.Context, runner *CommandRunner) (string, error) {
	if err := runner.RequireRepo(); err != nil {
		return "", err
	}
	lines, err := runner.GitLines(ctx, "branch", "--no-color")
	if err != nil {
		return "", err
	}
	for _, line := range lines {
		if name, ok := strings.CutPrefix(line, "* "); ok {
			return strings.TrimSpace(name), nil
		}
	}
	return "", fmt.Errorf("%w: no branch marked as checked out", mortarerrors.ErrBranchNotFound)
}

// IsClean reports whether the working tree has no pending changes, tracked
// or untracked, modulo ignore rules
func IsClean(ctx context.Context, runner *CommandRunner) (bool, error) {
	lines, err := statusLines(ctx, runner)
	if err != nil {
		return false, err
	}
	return len(lines) == 0, nil
}

// HasConflicts reports whether any status entry carries a merge-conflict code
func HasConflicts(ctx context.Context, runner *CommandRunner) (bool, error) {
	lines, err := statusLines(ctx, runner)
	if err != nil {
		return false, err
	}
	for _, line := range lines {
		if len(line) >= 2 && conflictCodes[line[:2]] {
			return true, nil
		}
	}
	return false, nil
}

// UntrackedFiles returns files that are neither tracked nor excluded by
// ignore rules
func UntrackedFiles(ctx context.Context, runner *CommandRunner) ([]string, error) {
	if err := runner.RequireRepo(); err != nil {
		return nil, err
	}
	return runner.GitLines(ctx, "ls-files", "--others", "--exclude-standard")
}

// statusLines returns raw porcelain status lines. The raw (untrimmed)
// output is used because the two-letter code may begin with a space.
func statusLines(ctx context.Context, runner *CommandRunner) ([]string, error) {
	if err := runner.RequireRepo(); err != nil {
		return nil, err
	}
	output, err := runner.GitRaw(ctx, "status", "--porcelain")
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}
