package application_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomsv/gomsv/internal/application"
	"github.com/gomsv/gomsv/internal/domain"
)

type fakeCatalog struct {
	all            []domain.Release
	representative []domain.Release
	err            error
}

func (c *fakeCatalog) AllReleases() ([]domain.Release, error) {
	return c.all, c.err
}

func (c *fakeCatalog) RepresentativeReleases() ([]domain.Release, error) {
	return c.representative, c.err
}

// passingChecker succeeds on every release.
type passingChecker struct {
	probed []domain.Version
}

func (c *passingChecker) Check(release domain.Release, _ domain.Config) (domain.CheckOutcome, error) {
	c.probed = append(c.probed, release.Version)
	return domain.SuccessOutcome(release.ToolchainID(), release.Version), nil
}

// failingChecker fails on every release.
type failingChecker struct{}

func (failingChecker) Check(release domain.Release, _ domain.Config) (domain.CheckOutcome, error) {
	return domain.FailureOutcome(release.ToolchainID(), "check failed"), nil
}

type nopReporter struct{}

func (nopReporter) Announce(string, string)         {}
func (nopReporter) Progress(string, domain.Version) {}
func (nopReporter) Success(domain.Version)          {}
func (nopReporter) Failure(string)                  {}

func stableReleases(versions ...domain.Version) []domain.Release {
	var out []domain.Release
	for _, v := range versions {
		out = append(out, domain.Release{Version: v, Channel: domain.ChannelStable})
	}
	return out
}

func vp(s string) *domain.Version {
	v := domain.Version(s)
	return &v
}

func TestFindService_CandidatesAppliesMinimumBound(t *testing.T) {
	catalog := &fakeCatalog{
		representative: stableReleases("1.51.0", "1.50.0", "1.49.0", "1.48.0"),
	}
	svc := application.NewFindService(catalog, &passingChecker{}, nopReporter{})

	cfg := domain.DefaultConfig()
	cfg.MinimumVersion = vp("1.49.0")

	candidates, err := svc.Candidates(cfg)
	require.NoError(t, err)

	var versions []domain.Version
	for _, r := range candidates {
		versions = append(versions, r.Version)
	}
	assert.Equal(t, []domain.Version{"1.51.0", "1.50.0", "1.49.0"}, versions)
}

func TestFindService_CandidatesSelectsCatalogView(t *testing.T) {
	catalog := &fakeCatalog{
		all:            stableReleases("1.50.2", "1.50.1", "1.50.0"),
		representative: stableReleases("1.50.2"),
	}
	svc := application.NewFindService(catalog, &passingChecker{}, nopReporter{})

	cfg := domain.DefaultConfig()
	candidates, err := svc.Candidates(cfg)
	require.NoError(t, err)
	assert.Len(t, candidates, 1)

	cfg.IncludeAllPatchReleases = true
	candidates, err = svc.Candidates(cfg)
	require.NoError(t, err)
	assert.Len(t, candidates, 3)
}

func TestFindService_CandidatesWrapsCatalogErrors(t *testing.T) {
	fetchErr := errors.New("connection refused")
	svc := application.NewFindService(&fakeCatalog{err: fetchErr}, &passingChecker{}, nopReporter{})

	_, err := svc.Candidates(domain.DefaultConfig())

	var catErr *domain.CatalogError
	require.ErrorAs(t, err, &catErr)
	assert.ErrorIs(t, err, fetchErr)
}

func TestFindService_FindReturnsOldestPassingRelease(t *testing.T) {
	catalog := &fakeCatalog{
		representative: stableReleases("1.51.0", "1.50.0", "1.49.0"),
	}
	checker := &passingChecker{}
	svc := application.NewFindService(catalog, checker, nopReporter{})

	verdict, err := svc.Find(domain.DefaultConfig())

	require.NoError(t, err)
	assert.Equal(t, domain.Version("1.49.0"), verdict.Version)
	assert.Equal(t, []domain.Version{"1.51.0", "1.50.0", "1.49.0"}, checker.probed)
}

func TestFindService_FindSynthesizesNoCompatibleError(t *testing.T) {
	catalog := &fakeCatalog{representative: stableReleases("1.50.0")}
	svc := application.NewFindService(catalog, failingChecker{}, nopReporter{})

	verdict, err := svc.Find(domain.DefaultConfig())

	var noCompat *domain.NoCompatibleToolchainsError
	require.ErrorAs(t, err, &noCompat)
	assert.Equal(t, "go build ./...", noCompat.Command)
	assert.False(t, verdict.IsCapable())
}

func TestFindService_FindRejectsInvalidConfig(t *testing.T) {
	catalog := &fakeCatalog{representative: stableReleases("1.50.0")}
	svc := application.NewFindService(catalog, &passingChecker{}, nopReporter{})

	cfg := domain.DefaultConfig()
	cfg.CheckCommand = nil

	_, err := svc.Find(cfg)
	require.Error(t, err)
}

func TestFindService_FindPropagatesCatalogError(t *testing.T) {
	svc := application.NewFindService(
		&fakeCatalog{err: errors.New("boom")}, &passingChecker{}, nopReporter{},
	)

	_, err := svc.Find(domain.DefaultConfig())

	var catErr *domain.CatalogError
	require.ErrorAs(t, err, &catErr)
}
