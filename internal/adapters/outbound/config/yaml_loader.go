// Package config loads per-project settings from .gomsv.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gomsv/gomsv/internal/domain"
)

const fileName = ".gomsv.yaml"

// YAMLLoader reads .gomsv.yaml from a project directory.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .gomsv.yaml from projectPath. A missing file yields zero
// settings, so projects without a config file work unchanged.
func (l *YAMLLoader) Load(projectPath string) (domain.FileSettings, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.FileSettings{}, nil
		}
		return domain.FileSettings{}, err
	}

	var settings domain.FileSettings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return domain.FileSettings{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	if err := settings.Validate(); err != nil {
		return domain.FileSettings{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return settings, nil
}
