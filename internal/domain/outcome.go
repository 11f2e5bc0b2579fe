package domain

// OutcomeKind discriminates CheckOutcome variants.
type OutcomeKind int

const (
	// OutcomeSuccess means the check command succeeded on the installed
	// toolchain.
	OutcomeSuccess OutcomeKind = iota
	// OutcomeFailure means the toolchain installed fine but the check command
	// itself failed.
	OutcomeFailure
)

// CheckOutcome is the semantic result of probing one release. It is produced
// exactly once per probed release and never mutated afterwards.
type CheckOutcome struct {
	Kind       OutcomeKind
	Toolchain  string
	Version    Version
	Diagnostic string // check command output, set only on failure
}

// SuccessOutcome marks a release whose check command succeeded.
func SuccessOutcome(toolchain string, version Version) CheckOutcome {
	return CheckOutcome{Kind: OutcomeSuccess, Toolchain: toolchain, Version: version}
}

// FailureOutcome marks a release whose check command failed, carrying the
// command output as diagnostic.
func FailureOutcome(toolchain string, diagnostic string) CheckOutcome {
	return CheckOutcome{Kind: OutcomeFailure, Toolchain: toolchain, Diagnostic: diagnostic}
}
