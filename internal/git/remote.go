package git

import (
	"fmt"
	"regexp"
)

// mortarRemoteRegex matches the mortar remote naming convention
// host:org/<anyprefix>_<project-name>.git and captures the project name
var mortarRemoteRegex = regexp.MustCompile(`^[^:]+:[^/]+/[^/]*_(.+)\.git$`)

// ProjectNameFromURL recovers a mortar project name from a remote URL, or
// returns false when the URL does not follow the naming convention
func ProjectNameFromURL(url string) (string, bool) {
	match := mortarRemoteRegex.FindStringSubmatch(url)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// ProjectName scans the repository's configured remotes for one following
// the mortar naming convention and returns the recovered project name
func (r *Repository) ProjectName() (string, error) {
	remotes, err := r.Remotes()
	if err != nil {
		return "", fmt.Errorf("failed to list remotes: %w", err)
	}

	for _, remote := range remotes {
		for _, url := range remote.Config().URLs {
			if name, ok := ProjectNameFromURL(url); ok {
				return name, nil
			}
		}
	}
	return "", fmt.Errorf("no remote matches the mortar project naming convention")
}

// HasRemote reports whether a remote with the given name is configured
func (r *Repository) HasRemote(name string) bool {
	_, err := r.Remote(name)
	return err == nil
}
