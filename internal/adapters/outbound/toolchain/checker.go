// Package toolchain installs toolchain releases and runs the check command
// against them.
package toolchain

import (
	"errors"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/gomsv/gomsv/internal/domain"
)

// HTTPClient is the minimal HTTP surface the downloader needs.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Option configures a Checker.
type Option func(*Checker)

// WithRootDir overrides where toolchains are installed (default ~/.gomsv).
func WithRootDir(dir string) Option {
	return func(c *Checker) {
		if dir != "" {
			c.rootDir = dir
		}
	}
}

// WithHTTPClient replaces the HTTP client used for archive downloads.
func WithHTTPClient(h HTTPClient) Option {
	return func(c *Checker) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// Checker implements domain.ToolchainChecker against real downloaded
// toolchains. Each probed release is installed under its own directory below
// rootDir and the check command runs in workDir with the release's bin
// directory first on PATH.
type Checker struct {
	workDir    string
	rootDir    string
	httpClient HTTPClient
}

// New creates a Checker running check commands in workDir.
func New(workDir string, opts ...Option) *Checker {
	c := &Checker{
		workDir:    workDir,
		rootDir:    defaultRootDir(),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func defaultRootDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".gomsv")
	}
	return filepath.Join(os.TempDir(), "gomsv")
}

// Check installs the release if needed, then runs cfg.CheckCommand. A failed
// install or a command that cannot be launched is an infrastructure error; a
// command that runs and exits non-zero is a semantic failure.
func (c *Checker) Check(release domain.Release, cfg domain.Config) (domain.CheckOutcome, error) {
	goroot, err := c.ensureInstalled(release)
	if err != nil {
		return domain.CheckOutcome{}, &domain.InfrastructureError{Stage: "install", Err: err}
	}

	cmd := exec.Command(cfg.CheckCommand[0], cfg.CheckCommand[1:]...)
	cmd.Dir = c.workDir
	cmd.Env = commandEnv(goroot)

	out, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return domain.FailureOutcome(release.ToolchainID(), string(out)), nil
		}
		return domain.CheckOutcome{}, &domain.InfrastructureError{Stage: "launch", Err: err}
	}

	return domain.SuccessOutcome(release.ToolchainID(), release.Version), nil
}

// commandEnv puts goroot's bin directory first on PATH so the check command
// resolves the probed toolchain, and pins GOROOT to match.
func commandEnv(goroot string) []string {
	env := []string{
		"PATH=" + filepath.Join(goroot, "bin") + string(os.PathListSeparator) + os.Getenv("PATH"),
		"GOROOT=" + goroot,
	}
	for _, kv := range os.Environ() {
		switch {
		case len(kv) >= 5 && kv[:5] == "PATH=":
		case len(kv) >= 7 && kv[:7] == "GOROOT=":
		default:
			env = append(env, kv)
		}
	}
	return env
}
