// Package snapshot implements the snapshot-and-push workflow: resolving the
// project manifest, staging an isolated copy of the project, committing its
// state on a disposable branch, and publishing that branch to a remote.
package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	mortarerrors "mortar.dev/mortar/internal/errors"
)

// ManifestFileName is the well-known manifest file at the project root
const ManifestFileName = "project.manifest"

// MetadataDir is the repository metadata directory, always included in a
// snapshot regardless of manifest contents
const MetadataDir = ".git"

// DefaultManifestEntries is the default manifest content written when no
// manifest exists
var DefaultManifestEntries = []string{
	"pigscripts",
	"macros",
	"fixtures",
	"udfs",
}

// ManifestPath returns the path of the manifest file for a project root
func ManifestPath(root string) string {
	return filepath.Join(root, ManifestFileName)
}

// ManifestExists reports whether the project has a manifest file
func ManifestExists(root string) bool {
	_, err := os.Stat(ManifestPath(root))
	return err == nil
}

// WriteDefaultManifest writes the default manifest file
func WriteDefaultManifest(root string) error {
	content := strings.Join(DefaultManifestEntries, "\n") + "\n"
	if err := os.WriteFile(ManifestPath(root), []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", ManifestFileName, err)
	}
	return nil
}

// ReadManifest returns the manifest entries in file order. Blank lines and
// lines starting with # are skipped.
func ReadManifest(root string) ([]string, error) {
	data, err := os.ReadFile(ManifestPath(root))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ManifestFileName, err)
	}

	var entries []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}
	return entries, nil
}

// ResolvePaths determines the whitelist of paths included in a snapshot:
// the manifest entries (written with default content first if the manifest
// is absent) plus the repository metadata directory. Order is preserved and
// duplicates are not removed. Every entry must exist on disk.
func ResolvePaths(root string) ([]string, error) {
	if !ManifestExists(root) {
		if err := WriteDefaultManifest(root); err != nil {
			return nil, err
		}
	}

	entries, err := ReadManifest(root)
	if err != nil {
		return nil, err
	}

	// The metadata directory rides along unconditionally; it is never
	// written back to the manifest file.
	paths := append(entries, MetadataDir)

	for _, path := range paths {
		if _, err := os.Stat(filepath.Join(root, path)); err != nil {
			return nil, mortarerrors.NewManifestPathMissingError(path)
		}
	}
	return paths, nil
}
