package domain

import "fmt"

// CatalogError wraps a failure to acquire or parse the release catalog. It is
// fatal and aborts before any scanning starts.
type CatalogError struct {
	Err error
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("fetching release catalog: %v", e.Err)
}

func (e *CatalogError) Unwrap() error { return e.Err }

// InfrastructureError marks a checker failure unrelated to the user's check
// command: the toolchain could not be installed or the command could not be
// launched. It aborts the scan in progress and must never be read as "this
// version is incompatible".
type InfrastructureError struct {
	Stage string // "install" or "launch"
	Err   error
}

func (e *InfrastructureError) Error() string {
	return fmt.Sprintf("toolchain %s failed: %v", e.Stage, e.Err)
}

func (e *InfrastructureError) Unwrap() error { return e.Err }

// NoCompatibleToolchainsError reports a completed scan whose verdict named no
// passing release. It carries the attempted check command for diagnostics and
// is synthesized by the caller of the scan, not inside it.
type NoCompatibleToolchainsError struct {
	Command string
}

func (e *NoCompatibleToolchainsError) Error() string {
	return fmt.Sprintf("no compatible toolchain found for check command %q", e.Command)
}
