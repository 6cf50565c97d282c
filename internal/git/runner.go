// Package git wraps the git command line and go-git for repository operations.
package git

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	mortarerrors "mortar.dev/mortar/internal/errors"
)

// DefaultCommandTimeout is the default timeout for external commands
const DefaultCommandTimeout = 5 * time.Minute

// CommandRunner executes external commands in a fixed working directory.
// Every runner carries its own base directory; the process working directory
// is never changed.
type CommandRunner struct {
	workingDir string
}

// NewCommandRunner creates a CommandRunner rooted at workingDir
func NewCommandRunner(workingDir string) *CommandRunner {
	return &CommandRunner{workingDir: workingDir}
}

// WorkingDir returns the directory commands run in
func (r *CommandRunner) WorkingDir() string {
	return r.workingDir
}

// InDir returns a runner with the same behavior rooted at dir
func (r *CommandRunner) InDir(dir string) *CommandRunner {
	return &CommandRunner{workingDir: dir}
}

// RequireRepo checks that the runner's working directory contains a git
// control directory. Operations that mutate or query repository state call
// this before shelling out.
func (r *CommandRunner) RequireRepo() error {
	gitDir := filepath.Join(r.workingDir, ".git")
	if _, err := os.Stat(gitDir); err != nil {
		return mortarerrors.NewRepositoryNotFoundError(r.workingDir)
	}
	return nil
}

// Git executes a git command and returns trimmed stdout
func (r *CommandRunner) Git(ctx context.Context, args ...string) (string, error) {
	return r.run(ctx, "git", true, args...)
}

// GitRaw executes a git command and returns stdout without trimming
func (r *CommandRunner) GitRaw(ctx context.Context, args ...string) (string, error) {
	return r.run(ctx, "git", false, args...)
}

// GitLines executes a git command and returns stdout split into lines
func (r *CommandRunner) GitLines(ctx context.Context, args ...string) ([]string, error) {
	output, err := r.Git(ctx, args...)
	if err != nil {
		return nil, err
	}
	if output == "" {
		return []string{}, nil
	}
	return strings.Split(output, "\n"), nil
}

// Tool executes an arbitrary external tool (pip, virtualenv) and returns
// trimmed stdout
func (r *CommandRunner) Tool(ctx context.Context, name string, args ...string) (string, error) {
	return r.run(ctx, name, true, args...)
}

func (r *CommandRunner) run(ctx context.Context, name string, trim bool, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// If no timeout/deadline is set in the context, add the default one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logrus.WithFields(logrus.Fields{
		"command": name,
		"args":    args,
		"dir":     r.workingDir,
	}).Debug("running command")

	err := cmd.Run()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", mortarerrors.NewCommandError(name, args, stdout.String(), stderr.String(), ctx.Err())
		}
		return "", mortarerrors.NewCommandError(name, args, stdout.String(), stderr.String(), err)
	}
	if trim {
		return strings.TrimSpace(stdout.String()), nil
	}
	return stdout.String(), nil
}
