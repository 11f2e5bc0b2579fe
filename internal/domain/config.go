package domain

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultCheckCommand is probed when the user supplies no check command.
var DefaultCheckCommand = []string{"go", "build", "./..."}

// Config is the read-only snapshot driving one scan.
type Config struct {
	MinimumVersion          *Version
	MaximumVersion          *Version
	IncludeAllPatchReleases bool
	CheckCommand            []string
	Target                  string
}

// DefaultConfig returns a snapshot with the default check command and no
// version bounds.
func DefaultConfig() Config {
	return Config{CheckCommand: append([]string(nil), DefaultCheckCommand...)}
}

// CheckCommandString renders the check command the way it is shown to users
// and recorded in history entries.
func (c Config) CheckCommandString() string {
	return strings.Join(c.CheckCommand, " ")
}

// Validate rejects snapshots that cannot drive a scan.
func (c Config) Validate() error {
	if len(c.CheckCommand) == 0 {
		return errors.New("check command must not be empty")
	}
	if c.MinimumVersion != nil && !c.MinimumVersion.IsValid() {
		return fmt.Errorf("invalid minimum version %q", *c.MinimumVersion)
	}
	if c.MaximumVersion != nil && !c.MaximumVersion.IsValid() {
		return fmt.Errorf("invalid maximum version %q", *c.MaximumVersion)
	}
	if c.MinimumVersion != nil && c.MaximumVersion != nil &&
		c.MinimumVersion.Compare(*c.MaximumVersion) > 0 {
		return fmt.Errorf("minimum version %s is above maximum version %s",
			*c.MinimumVersion, *c.MaximumVersion)
	}
	return nil
}

// FileSettings mirrors the .gomsv.yaml schema. Zero values mean "not set", so
// explicit command-line flags always win over file values.
type FileSettings struct {
	MinVersion string `yaml:"min_version"`
	MaxVersion string `yaml:"max_version"`
	Check      string `yaml:"check"`
	AllPatches bool   `yaml:"all_patches"`
	Target     string `yaml:"target"`
}

// Validate catches malformed versions in the user's raw file input.
func (f FileSettings) Validate() error {
	if f.MinVersion != "" && !Version(f.MinVersion).IsValid() {
		return fmt.Errorf("invalid min_version %q", f.MinVersion)
	}
	if f.MaxVersion != "" && !Version(f.MaxVersion).IsValid() {
		return fmt.Errorf("invalid max_version %q", f.MaxVersion)
	}
	return nil
}
