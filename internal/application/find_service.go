package application

import (
	"github.com/gomsv/gomsv/internal/domain"
	"github.com/gomsv/gomsv/internal/domain/scan"
)

// FindService orchestrates the search pipeline:
// fetch catalog -> select view -> filter by bounds -> scan newest-first.
type FindService struct {
	catalog  domain.ReleaseCatalog
	checker  domain.ToolchainChecker
	reporter domain.ProgressReporter
}

func NewFindService(
	catalog domain.ReleaseCatalog,
	checker domain.ToolchainChecker,
	reporter domain.ProgressReporter,
) *FindService {
	return &FindService{
		catalog:  catalog,
		checker:  checker,
		reporter: reporter,
	}
}

// Candidates returns the newest-first release sequence the scan would probe:
// the catalog view chosen by cfg.IncludeAllPatchReleases, narrowed to the
// configured version bounds.
func (s *FindService) Candidates(cfg domain.Config) ([]domain.Release, error) {
	var (
		releases []domain.Release
		err      error
	)
	if cfg.IncludeAllPatchReleases {
		releases, err = s.catalog.AllReleases()
	} else {
		releases, err = s.catalog.RepresentativeReleases()
	}
	if err != nil {
		return nil, &domain.CatalogError{Err: err}
	}

	return domain.FilterReleases(releases, cfg.MinimumVersion, cfg.MaximumVersion), nil
}

// Find returns the verdict naming the oldest release that passes the check
// command. When the completed scan found no passing release, the verdict is
// accompanied by a NoCompatibleToolchainsError carrying the attempted
// command. Catalog and infrastructure errors propagate unmodified.
func (s *FindService) Find(cfg domain.Config) (domain.Verdict, error) {
	if err := cfg.Validate(); err != nil {
		return domain.Verdict{}, err
	}

	candidates, err := s.Candidates(cfg)
	if err != nil {
		return domain.Verdict{}, err
	}

	s.reporter.Announce(cfg.Target, cfg.CheckCommandString())

	verdict, err := scan.New(s.checker, s.reporter).Run(candidates, cfg)
	if err != nil {
		return domain.Verdict{}, err
	}

	if !verdict.IsCapable() {
		return verdict, &domain.NoCompatibleToolchainsError{Command: cfg.CheckCommandString()}
	}
	return verdict, nil
}
