// Package config reads the optional per-project mortar configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigPath is the project configuration file, relative to the repo root
const ConfigPath = ".mortar/config.yml"

// DefaultRemote is the remote snapshots are published to unless configured
// otherwise
const DefaultRemote = "mortar"

// DefaultTrunk is the branch the plain push flow targets
const DefaultTrunk = "master"

// ProjectConfig holds per-project overrides. Every field is optional; zero
// values fall back to defaults.
type ProjectConfig struct {
	Remote  string        `yaml:"remote,omitempty"`
	Trunk   string        `yaml:"trunk,omitempty"`
	Publish PublishConfig `yaml:"publish,omitempty"`
}

// PublishConfig tunes the push-with-retry publisher
type PublishConfig struct {
	MaxAttempts int    `yaml:"max_attempts,omitempty"`
	BaseDelay   string `yaml:"base_delay,omitempty"`
}

// Load reads the project configuration, returning defaults when the file
// does not exist
func Load(repoRoot string) (*ProjectConfig, error) {
	data, err := os.ReadFile(filepath.Join(repoRoot, ConfigPath))
	if err != nil {
		if os.IsNotExist(err) {
			return &ProjectConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", ConfigPath, err)
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ConfigPath, err)
	}
	return &cfg, nil
}

// RemoteName returns the configured remote or the default
func (c *ProjectConfig) RemoteName() string {
	if c.Remote != "" {
		return c.Remote
	}
	return DefaultRemote
}

// TrunkName returns the configured trunk branch or the default
func (c *ProjectConfig) TrunkName() string {
	if c.Trunk != "" {
		return c.Trunk
	}
	return DefaultTrunk
}

// PublishBaseDelay returns the configured backoff unit, or zero when unset
// or unparsable so the publisher default applies
func (c *ProjectConfig) PublishBaseDelay() time.Duration {
	if c.Publish.BaseDelay == "" {
		return 0
	}
	delay, err := time.ParseDuration(c.Publish.BaseDelay)
	if err != nil {
		return 0
	}
	return delay
}
