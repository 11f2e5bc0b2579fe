package toolchain

import (
	"archive/tar"
	"compress/gzip"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gomsv/gomsv/internal/domain"
)

// ensureInstalled returns the GOROOT of the release, downloading and
// extracting its archive on first use. Installs are atomic: the archive is
// extracted into a temp directory and renamed into place, so an interrupted
// install never leaves a half-written toolchain behind.
func (c *Checker) ensureInstalled(release domain.Release) (string, error) {
	installPath := filepath.Join(c.rootDir, "toolchains", release.Version.String())

	if isInstalled(installPath) {
		return installPath, nil
	}

	if release.Archive.URL == "" {
		return "", fmt.Errorf("release %s has no archive for this platform", release.Version)
	}
	if !strings.HasSuffix(release.Archive.Filename, ".tar.gz") {
		return "", fmt.Errorf("unsupported archive format %q", release.Archive.Filename)
	}

	if err := os.MkdirAll(filepath.Dir(installPath), 0o755); err != nil {
		return "", fmt.Errorf("preparing toolchain directory: %w", err)
	}

	archivePath, err := c.download(release.Archive)
	if err != nil {
		return "", err
	}
	defer os.Remove(archivePath)

	tempDir, err := os.MkdirTemp(filepath.Dir(installPath), "install-*")
	if err != nil {
		return "", fmt.Errorf("creating temp install dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	if err := extractTarGz(archivePath, tempDir); err != nil {
		return "", err
	}

	if err := os.Rename(tempDir, installPath); err != nil {
		return "", fmt.Errorf("moving toolchain into place: %w", err)
	}

	return installPath, nil
}

func isInstalled(installPath string) bool {
	info, err := os.Stat(filepath.Join(installPath, "bin", "go"))
	return err == nil && !info.IsDir()
}

// download fetches the archive to a temp file, verifying its checksum
// against the catalog entry.
func (c *Checker) download(archive domain.Archive) (string, error) {
	req, err := http.NewRequest(http.MethodGet, archive.URL, nil)
	if err != nil {
		return "", fmt.Errorf("building download request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("downloading %s: %w", archive.Filename, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("downloading %s: status %d", archive.Filename, resp.StatusCode)
	}

	tmp, err := os.CreateTemp("", "gomsv-*.tar.gz")
	if err != nil {
		return "", fmt.Errorf("creating download file: %w", err)
	}
	defer tmp.Close()

	hash := sha256.New()
	if _, err := io.Copy(io.MultiWriter(tmp, hash), resp.Body); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("writing %s: %w", archive.Filename, err)
	}

	if sum := hex.EncodeToString(hash.Sum(nil)); archive.SHA256 != "" && sum != archive.SHA256 {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("checksum mismatch for %s: got %s, want %s",
			archive.Filename, sum, archive.SHA256)
	}

	return tmp.Name(), nil
}

// extractTarGz unpacks the toolchain archive into dest, stripping the
// leading "go/" directory the official archives carry.
func extractTarGz(archivePath, dest string) error {
	file, err := os.Open(archivePath)
	if err != nil {
		return fmt.Errorf("opening archive: %w", err)
	}
	defer file.Close()

	gz, err := gzip.NewReader(file)
	if err != nil {
		return fmt.Errorf("reading archive: %w", err)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading archive entry: %w", err)
		}

		rel := strings.TrimPrefix(filepath.ToSlash(hdr.Name), "go/")
		if rel == "" || rel == "go" {
			continue
		}
		if strings.Contains(rel, "..") {
			return fmt.Errorf("archive entry %q escapes destination", hdr.Name)
		}
		target := filepath.Join(dest, filepath.FromSlash(rel))

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, os.FileMode(hdr.Mode)|0o700); err != nil {
				return fmt.Errorf("creating directory %s: %w", rel, err)
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return fmt.Errorf("creating parent of %s: %w", rel, err)
			}
			out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, os.FileMode(hdr.Mode))
			if err != nil {
				return fmt.Errorf("creating %s: %w", rel, err)
			}
			if _, err := io.Copy(out, tr); err != nil {
				out.Close()
				return fmt.Errorf("writing %s: %w", rel, err)
			}
			out.Close()
		case tar.TypeSymlink:
			if err := os.Symlink(hdr.Linkname, target); err != nil && !os.IsExist(err) {
				return fmt.Errorf("linking %s: %w", rel, err)
			}
		}
	}
}
