package domain

import "time"

// ReleaseCatalog supplies the ordered list of installable releases, newest
// first. Both views may fail with catalog fetch or parse errors.
type ReleaseCatalog interface {
	// AllReleases returns every published patch release.
	AllReleases() ([]Release, error)
	// RepresentativeReleases returns one release per minor version: its
	// newest patch. Choosing this view assumes patch releases within a minor
	// never change compatibility, which the scan itself does not verify.
	RepresentativeReleases() ([]Release, error)
}

// ToolchainChecker installs a release and runs the configured check command
// against it. The returned CheckOutcome carries the semantic pass/fail; a
// non-nil error means the toolchain could not be installed or the command
// could not be launched, and must never be interpreted as incompatibility.
// Calls block for the full installation plus command run.
type ToolchainChecker interface {
	Check(release Release, cfg Config) (CheckOutcome, error)
}

// ProgressReporter observes scan progress. Implementations must not affect
// control flow.
type ProgressReporter interface {
	Announce(target, command string)
	Progress(phase string, version Version)
	Success(version Version)
	Failure(command string)
}

// ScanRecord is one verified result kept in the project's history log.
type ScanRecord struct {
	Version    Version   `json:"version"`
	Toolchain  string    `json:"toolchain"`
	Command    string    `json:"command"`
	CommitHash string    `json:"commit_hash,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// ScanHistory persists verified results per project. The history is a log
// only; it is never consulted to skip probes.
type ScanHistory interface {
	Save(projectPath string, record ScanRecord) error
	Load(projectPath string) ([]ScanRecord, error)
}

// GitInfo exposes version-control metadata for a project directory.
type GitInfo interface {
	IsGitRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
}
