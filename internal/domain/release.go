package domain

import "strings"

// Channel labels the release train a version was published on.
type Channel string

const (
	ChannelStable Channel = "stable"
	ChannelRC     Channel = "rc"
	ChannelBeta   Channel = "beta"
)

// Archive points at the downloadable build of a release for one platform.
type Archive struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	SHA256   string `json:"sha256"`
}

// Release is one installable toolchain build from the catalog. Releases are
// supplied by the catalog ordered newest-first; a catalog never lists the
// same version twice.
type Release struct {
	Version Version `json:"version"`
	Channel Channel `json:"channel"`
	Archive Archive `json:"archive"`
}

// ToolchainID names the concrete toolchain bundle for this release, e.g.
// "go1.21.3.linux-amd64" when archive metadata is present.
func (r Release) ToolchainID() string {
	if r.Archive.Filename != "" {
		return strings.TrimSuffix(r.Archive.Filename, ".tar.gz")
	}
	return "go" + string(r.Version)
}
