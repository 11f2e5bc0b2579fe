package domain

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Version is a toolchain version in canonical form without the leading "v",
// e.g. "1.21.3" or "1.22.0-rc1".
type Version string

func (v Version) String() string { return string(v) }

func (v Version) tag() string { return "v" + string(v) }

// IsValid reports whether v parses as a semantic version.
func (v Version) IsValid() bool { return semver.IsValid(v.tag()) }

// Compare orders versions by full semantic-version precedence: major, minor,
// patch, then pre-release rank. Pre-releases sort before the release they
// precede. It returns -1, 0 or +1.
func (v Version) Compare(o Version) int { return semver.Compare(v.tag(), o.tag()) }

// MajorMinor returns the "1.21" prefix shared by every patch release of one
// minor version.
func (v Version) MajorMinor() string {
	return strings.TrimPrefix(semver.MajorMinor(v.tag()), "v")
}

// IsPrerelease reports whether v carries a pre-release label such as rc1.
func (v Version) IsPrerelease() bool { return semver.Prerelease(v.tag()) != "" }
