// Package pyenv bootstraps a local Python runtime for running user-defined
// functions. It orchestrates the virtualenv and pip tools; it does not
// reimplement them.
package pyenv

import (
	"context"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	mortarerrors "mortar.dev/mortar/internal/errors"
	"mortar.dev/mortar/internal/git"
)

// LocalDir is where the local runtime lives, relative to the project root
const LocalDir = ".mortar-local"

// Environment variable overrides for the external boundary
const (
	DistURLEnv          = "MORTAR_PYTHON_DIST_URL"
	RequirementsPathEnv = "MORTAR_REQUIREMENTS_PATH"
)

// Fixed defaults applied when the environment does not override them
const (
	defaultDistURL          = "https://s3.amazonaws.com/mortar-releases/python-dist.tar.gz"
	defaultRequirementsPath = "requirements.txt"
)

// DistURL returns the Python distribution archive URL
func DistURL() string {
	if url := os.Getenv(DistURLEnv); url != "" {
		return url
	}
	return defaultDistURL
}

// RequirementsPath returns the pip requirements file path, relative to the
// project root
func RequirementsPath() string {
	if path := os.Getenv(RequirementsPathEnv); path != "" {
		return path
	}
	return defaultRequirementsPath
}

// EnvPath returns the virtualenv directory for a project root
func EnvPath(root string) string {
	return filepath.Join(root, LocalDir, "pythonenv")
}

// Setup creates a virtualenv under the project's local directory and
// installs the project's requirements into it. Requires the virtualenv and
// pip tools on the PATH.
func Setup(ctx context.Context, root string) error {
	runner := git.NewCommandRunner(root)

	if _, err := runner.Tool(ctx, "virtualenv", "--version"); err != nil {
		return mortarerrors.NewToolUnavailableError("virtualenv", "", "")
	}

	envPath := EnvPath(root)
	if err := os.MkdirAll(filepath.Dir(envPath), 0o755); err != nil {
		return err
	}

	logrus.WithField("env", envPath).Debug("creating virtualenv")
	if _, err := runner.Tool(ctx, "virtualenv", envPath); err != nil {
		return err
	}

	requirements := filepath.Join(root, RequirementsPath())
	if _, err := os.Stat(requirements); err != nil {
		// No requirements file is fine; the environment stays empty
		return nil
	}

	pip := filepath.Join(envPath, "bin", "pip")
	logrus.WithField("requirements", requirements).Debug("installing requirements")
	if _, err := runner.Tool(ctx, pip, "install", "-r", requirements); err != nil {
		return err
	}
	return nil
}
