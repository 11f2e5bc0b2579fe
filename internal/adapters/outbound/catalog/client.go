// Package catalog fetches the list of published toolchain releases from the
// official download index.
package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gomsv/gomsv/internal/domain"
)

const (
	defaultBaseURL  = "https://go.dev/dl/?mode=json&include=all"
	defaultCacheTTL = 5 * time.Minute
)

// HTTPClient is the minimal HTTP surface the client needs, kept narrow so
// tests can substitute it.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different index, e.g. a mirror.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if base != "" {
			c.baseURL = base
		}
	}
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(h HTTPClient) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// WithTarget selects the platform whose archives are resolved, as "os/arch".
func WithTarget(target string) Option {
	return func(c *Client) {
		if target != "" {
			c.target = target
		}
	}
}

// WithCacheTTL sets how long a fetched index is reused.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) {
		if ttl > 0 {
			c.cacheTTL = ttl
		}
	}
}

// Client implements domain.ReleaseCatalog against the go.dev download index.
type Client struct {
	baseURL      string
	downloadBase string
	httpClient   HTTPClient
	target       string
	cacheTTL     time.Duration

	mu       sync.Mutex
	cached   []domain.Release
	cachedAt time.Time
}

// New creates a catalog client. The default target is the running platform.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		httpClient: http.DefaultClient,
		target:     runtime.GOOS + "/" + runtime.GOARCH,
		cacheTTL:   defaultCacheTTL,
	}
	for _, opt := range opts {
		opt(c)
	}
	// The index lists bare filenames; archives live under /dl/ on the same
	// host, for mirrors as well as for go.dev.
	if u, err := url.Parse(c.baseURL); err == nil && u.Host != "" {
		c.downloadBase = u.Scheme + "://" + u.Host + "/dl/"
	}
	return c
}

// AllReleases returns every published stable patch release for the target
// platform, newest first.
func (c *Client) AllReleases() ([]domain.Release, error) {
	releases, err := c.fetch()
	if err != nil {
		return nil, err
	}

	var stable []domain.Release
	for _, r := range releases {
		if r.Channel == domain.ChannelStable {
			stable = append(stable, r)
		}
	}
	return stable, nil
}

// RepresentativeReleases returns the newest patch of each minor version,
// newest first. This view can mask a patch-level compatibility change within
// a minor version; callers wanting patch granularity use AllReleases.
func (c *Client) RepresentativeReleases() ([]domain.Release, error) {
	all, err := c.AllReleases()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var representative []domain.Release
	for _, r := range all {
		mm := r.Version.MajorMinor()
		if _, ok := seen[mm]; ok {
			continue
		}
		seen[mm] = struct{}{}
		representative = append(representative, r)
	}
	return representative, nil
}

func (c *Client) fetch() ([]domain.Release, error) {
	if releases, ok := c.getCached(); ok {
		return releases, nil
	}

	req, err := http.NewRequest(http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building index request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting release index: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("release index returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading release index: %w", err)
	}

	releases, err := c.parse(body)
	if err != nil {
		return nil, err
	}

	c.setCache(releases)
	return releases, nil
}

func (c *Client) parse(data []byte) ([]domain.Release, error) {
	var entries []indexRelease
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decoding release index: %w", err)
	}

	targetOS, targetArch, ok := strings.Cut(c.target, "/")
	if !ok {
		return nil, fmt.Errorf("invalid target %q, want os/arch", c.target)
	}

	var releases []domain.Release
	for _, entry := range entries {
		version, channel, err := ParseVersion(entry.Version)
		if err != nil {
			return nil, err
		}

		archive, ok := entry.archiveFor(c.downloadBase, targetOS, targetArch)
		if !ok {
			// Not built for this platform, e.g. old releases on arm64.
			continue
		}

		releases = append(releases, domain.Release{
			Version: version,
			Channel: channel,
			Archive: archive,
		})
	}

	sort.SliceStable(releases, func(i, j int) bool {
		return releases[i].Version.Compare(releases[j].Version) > 0
	})

	return releases, nil
}

func (c *Client) getCached() ([]domain.Release, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.cached) == 0 {
		return nil, false
	}
	if c.cacheTTL > 0 && time.Since(c.cachedAt) > c.cacheTTL {
		c.cached = nil
		return nil, false
	}
	clone := make([]domain.Release, len(c.cached))
	copy(clone, c.cached)
	return clone, true
}

func (c *Client) setCache(releases []domain.Release) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cached = make([]domain.Release, len(releases))
	copy(c.cached, releases)
	c.cachedAt = time.Now()
}

// indexRelease is one version record in the go.dev JSON index.
type indexRelease struct {
	Version string      `json:"version"`
	Stable  bool        `json:"stable"`
	Files   []indexFile `json:"files"`
}

// indexFile is one downloadable file under a release.
type indexFile struct {
	Filename string `json:"filename"`
	OS       string `json:"os"`
	Arch     string `json:"arch"`
	SHA256   string `json:"sha256"`
	Kind     string `json:"kind"`
}

func (r indexRelease) archiveFor(downloadBase, os, arch string) (domain.Archive, bool) {
	for _, f := range r.Files {
		if f.Kind != "archive" || f.OS != os || f.Arch != arch {
			continue
		}
		return domain.Archive{
			URL:      downloadBase + f.Filename,
			Filename: f.Filename,
			SHA256:   f.SHA256,
		}, true
	}
	return domain.Archive{}, false
}

// ParseVersion converts an index version string like "go1.21.3" or
// "go1.22rc1" into a canonical domain version plus its channel.
func ParseVersion(raw string) (domain.Version, domain.Channel, error) {
	rest := strings.TrimPrefix(raw, "go")

	channel := domain.ChannelStable
	pre := ""
	if idx := strings.Index(rest, "rc"); idx > 0 {
		channel, pre, rest = domain.ChannelRC, rest[idx:], rest[:idx]
	} else if idx := strings.Index(rest, "beta"); idx > 0 {
		channel, pre, rest = domain.ChannelBeta, rest[idx:], rest[:idx]
	}

	// Pad to major.minor.patch: the index writes "go1.21" for 1.21.0.
	rest = strings.TrimSuffix(rest, ".")
	for strings.Count(rest, ".") < 2 {
		rest += ".0"
	}

	version := domain.Version(rest)
	if pre != "" {
		version = domain.Version(rest + "-" + pre)
	}
	if !version.IsValid() {
		return "", "", fmt.Errorf("unparseable version %q in release index", raw)
	}
	return version, channel, nil
}
