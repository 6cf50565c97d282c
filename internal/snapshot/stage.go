package snapshot

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Stage copies the given paths, relative to root, into a freshly created
// temporary directory and returns its path. Snapshot mutations (branch
// checkout, commit) happen in that copy so the live working tree observed
// by editors and other tools is never touched. The caller owns the
// directory and must remove it.
func Stage(root string, paths []string) (string, error) {
	stagedDir, err := os.MkdirTemp("", "mortar-snapshot-")
	if err != nil {
		return "", fmt.Errorf("failed to create staging directory: %w", err)
	}

	for _, path := range paths {
		src := filepath.Join(root, path)
		dst := filepath.Join(stagedDir, path)
		if err := copyPath(src, dst); err != nil {
			os.RemoveAll(stagedDir)
			return "", fmt.Errorf("failed to stage %s: %w", path, err)
		}
	}
	return stagedDir, nil
}

// WithStagedCopy stages the given paths and invokes fn with the staged
// directory. The directory is removed on every exit path, including when
// fn returns an error.
func WithStagedCopy(root string, paths []string, fn func(stagedDir string) error) error {
	stagedDir, err := Stage(root, paths)
	if err != nil {
		return err
	}
	defer os.RemoveAll(stagedDir)

	return fn(stagedDir)
}

// copyPath copies a file, directory tree, or symlink from src to dst,
// preserving file modes
func copyPath(src, dst string) error {
	info, err := os.Lstat(src)
	if err != nil {
		return err
	}

	switch {
	case info.Mode()&os.ModeSymlink != 0:
		target, err := os.Readlink(src)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return err
		}
		return os.Symlink(target, dst)

	case info.IsDir():
		if err := os.MkdirAll(dst, info.Mode().Perm()); err != nil {
			return err
		}
		entries, err := os.ReadDir(src)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			if err := copyPath(filepath.Join(src, entry.Name()), filepath.Join(dst, entry.Name())); err != nil {
				return err
			}
		}
		return nil

	default:
		return copyFile(src, dst, info.Mode().Perm())
	}
}

func copyFile(src, dst string, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
