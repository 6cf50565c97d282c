package git

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	mortarerrors "mortar.dev/mortar/internal/errors"
)

// MinGitVersion is the oldest git release the snapshot workflow supports
var MinGitVersion = Version{Major: 1, Minor: 7, Patch: 7}

var versionBannerRegex = regexp.MustCompile(`(\d+)\.(\d+)(?:\.(\d+))?`)

// Version is a parsed major.minor.patch git version
type Version struct {
	Major int
	Minor int
	Patch int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Less reports whether v is older than other
func (v Version) Less(other Version) bool {
	if v.Major != other.Major {
		return v.Major < other.Major
	}
	if v.Minor != other.Minor {
		return v.Minor < other.Minor
	}
	return v.Patch < other.Patch
}

// ParseVersionBanner extracts a Version from a "git version x.y.z" banner
func ParseVersionBanner(banner string) (Version, error) {
	match := versionBannerRegex.FindStringSubmatch(strings.TrimSpace(banner))
	if match == nil {
		return Version{}, fmt.Errorf("unrecognized git version banner: %q", banner)
	}

	major, _ := strconv.Atoi(match[1])
	minor, _ := strconv.Atoi(match[2])
	patch := 0
	if match[3] != "" {
		patch, _ = strconv.Atoi(match[3])
	}
	return Version{Major: major, Minor: minor, Patch: patch}, nil
}

// CheckGitVersion refuses to proceed when git is missing or older than
// MinGitVersion
func CheckGitVersion(ctx context.Context, runner *CommandRunner) error {
	banner, err := runner.Git(ctx, "version")
	if err != nil {
		return mortarerrors.NewToolUnavailableError("git", MinGitVersion.String(), "")
	}

	version, err := ParseVersionBanner(banner)
	if err != nil {
		return mortarerrors.NewToolUnavailableError("git", MinGitVersion.String(), banner)
	}

	if version.Less(MinGitVersion) {
		return mortarerrors.NewToolUnavailableError("git", MinGitVersion.String(), version.String())
	}
	return nil
}
