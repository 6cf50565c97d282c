// Package errors provides sentinel errors and custom error types for the mortar CLI.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrToolUnavailable indicates a required external tool is missing or too old
	ErrToolUnavailable = errors.New("tool unavailable")

	// ErrRepositoryNotFound indicates that no git repository is present
	ErrRepositoryNotFound = errors.New("repository not found")

	// ErrNoCommits indicates a snapshot was requested before any commit exists
	ErrNoCommits = errors.New("no commits")

	// ErrCommandFailed indicates an external tool ran but returned failure
	ErrCommandFailed = errors.New("command failed")

	// ErrManifestPathMissing indicates a configured snapshot path does not exist
	ErrManifestPathMissing = errors.New("manifest path missing")

	// ErrPublishExhausted indicates push retries were exhausted
	ErrPublishExhausted = errors.New("publish exhausted")

	// ErrBranchNotFound indicates that no checked-out branch could be determined
	ErrBranchNotFound = errors.New("branch not found")
)

// ToolUnavailableError reports a missing or outdated external tool
type ToolUnavailableError struct {
	Tool    string
	Minimum string
	Found   string
}

func (e *ToolUnavailableError) Error() string {
	if e.Found != "" {
		return fmt.Sprintf("%s %s or later is required, found %s", e.Tool, e.Minimum, e.Found)
	}
	if e.Minimum != "" {
		return fmt.Sprintf("%s %s or later is required but was not found on your PATH", e.Tool, e.Minimum)
	}
	return fmt.Sprintf("%s is required but was not found on your PATH", e.Tool)
}

// Is returns true if the target error is ErrToolUnavailable
func (e *ToolUnavailableError) Is(target error) bool {
	return target == ErrToolUnavailable
}

// NewToolUnavailableError creates a new ToolUnavailableError
func NewToolUnavailableError(tool, minimum, found string) *ToolUnavailableError {
	return &ToolUnavailableError{Tool: tool, Minimum: minimum, Found: found}
}

// RepositoryNotFoundError reports that an operation needed a git repository
// and none was present at the given path
type RepositoryNotFoundError struct {
	Path string
}

func (e *RepositoryNotFoundError) Error() string {
	return fmt.Sprintf("no git repository found at %s (run 'git init' first)", e.Path)
}

// Is returns true if the target error is ErrRepositoryNotFound
func (e *RepositoryNotFoundError) Is(target error) bool {
	return target == ErrRepositoryNotFound
}

// NewRepositoryNotFoundError creates a new RepositoryNotFoundError
func NewRepositoryNotFoundError(path string) *RepositoryNotFoundError {
	return &RepositoryNotFoundError{Path: path}
}

// NoCommitsError reports a snapshot attempt on a repository with no commits
type NoCommitsError struct {
	Path string
}

func (e *NoCommitsError) Error() string {
	return fmt.Sprintf("repository at %s has no commits; make an initial commit before taking a snapshot", e.Path)
}

// Is returns true if the target error is ErrNoCommits
func (e *NoCommitsError) Is(target error) bool {
	return target == ErrNoCommits
}

// NewNoCommitsError creates a new NoCommitsError
func NewNoCommitsError(path string) *NoCommitsError {
	return &NoCommitsError{Path: path}
}

// CommandError represents a failed external command execution. The captured
// output is included verbatim for diagnosability.
type CommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += " " + strings.Join(e.Args, " ")
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrCommandFailed
func (e *CommandError) Is(target error) bool {
	return target == ErrCommandFailed
}

// NewCommandError creates a new CommandError
func NewCommandError(command string, args []string, stdout, stderr string, err error) *CommandError {
	return &CommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}

// ManifestPathMissingError reports a manifest entry that does not exist on disk
type ManifestPathMissingError struct {
	Path string
}

func (e *ManifestPathMissingError) Error() string {
	return fmt.Sprintf("manifest entry %q does not exist; remove it from project.manifest or create it", e.Path)
}

// Is returns true if the target error is ErrManifestPathMissing
func (e *ManifestPathMissingError) Is(target error) bool {
	return target == ErrManifestPathMissing
}

// NewManifestPathMissingError creates a new ManifestPathMissingError
func NewManifestPathMissingError(path string) *ManifestPathMissingError {
	return &ManifestPathMissingError{Path: path}
}

// PublishExhaustedError reports that pushing a snapshot branch failed on
// every attempt
type PublishExhaustedError struct {
	Attempts int
	Err      error
}

func (e *PublishExhaustedError) Error() string {
	return fmt.Sprintf("giving up pushing snapshot after %d attempts: %v", e.Attempts, e.Err)
}

func (e *PublishExhaustedError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrPublishExhausted
func (e *PublishExhaustedError) Is(target error) bool {
	return target == ErrPublishExhausted
}

// NewPublishExhaustedError creates a new PublishExhaustedError
func NewPublishExhaustedError(attempts int, err error) *PublishExhaustedError {
	return &PublishExhaustedError{Attempts: attempts, Err: err}
}
