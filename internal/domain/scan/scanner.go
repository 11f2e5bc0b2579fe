// Package scan holds the compatibility scanner: the sequential search that
// finds the oldest release still passing the check command.
package scan

import "github.com/gomsv/gomsv/internal/domain"

// Scanner walks a newest-first release sequence and keeps the oldest release
// that still passes the check command.
//
// The stop-on-first-failure rule assumes compatibility is monotonic in
// version order: if a release fails, every strictly older release is assumed
// to fail too. That bounds the number of probes to the index of the first
// failure plus one. Under non-monotonic compatibility (a regression later
// fixed) the scanner reports a stricter boundary than the true one.
type Scanner struct {
	checker  domain.ToolchainChecker
	reporter domain.ProgressReporter
}

// New creates a Scanner probing through checker and reporting to reporter.
func New(checker domain.ToolchainChecker, reporter domain.ProgressReporter) *Scanner {
	return &Scanner{checker: checker, reporter: reporter}
}

// Run probes releases strictly in the given order, which must be newest
// first. Each probe is a blocking, possibly expensive external call. A
// semantic failure stops the scan and leaves the verdict at its last value;
// an infrastructure error aborts the scan and is returned unmodified, with
// no verdict produced. The final verdict is reported to the progress
// reporter before returning.
func (s *Scanner) Run(releases []domain.Release, cfg domain.Config) (domain.Verdict, error) {
	verdict := domain.NoCompatible()

	for _, release := range releases {
		s.reporter.Progress("Checking", release.Version)

		outcome, err := s.checker.Check(release, cfg)
		if err != nil {
			return domain.Verdict{}, err
		}

		if outcome.Kind == domain.OutcomeFailure {
			break
		}
		verdict = domain.Capable(outcome.Toolchain, outcome.Version)
	}

	if verdict.IsCapable() {
		s.reporter.Success(verdict.Version)
	} else {
		s.reporter.Failure(cfg.CheckCommandString())
	}

	return verdict, nil
}
