package domain

// VerdictKind discriminates Verdict variants.
type VerdictKind int

const (
	// NoCompatibleToolchains is the initial verdict; it survives to the end
	// of a scan only when not even the newest candidate passed the check.
	NoCompatibleToolchains VerdictKind = iota
	// CapableToolchain records the oldest release seen so far that passed
	// the check.
	CapableToolchain
)

// Verdict is the compatibility result of one scan. It is owned by a single
// scanner for the duration of the scan and only ever moves forward: each
// successful probe overwrites it with the just-probed (older) release.
type Verdict struct {
	Kind      VerdictKind
	Toolchain string
	Version   Version
}

// NoCompatible returns the initial verdict.
func NoCompatible() Verdict { return Verdict{Kind: NoCompatibleToolchains} }

// Capable returns a verdict naming a release that passed the check.
func Capable(toolchain string, version Version) Verdict {
	return Verdict{Kind: CapableToolchain, Toolchain: toolchain, Version: version}
}

// IsCapable reports whether the verdict names a passing release.
func (v Verdict) IsCapable() bool { return v.Kind == CapableToolchain }
