// Package history persists verified scan results per project.
package history

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/gomsv/gomsv/internal/domain"
)

const historyFile = ".gomsv/history.json"

// FileHistory implements domain.ScanHistory using JSON file storage inside
// the project directory.
type FileHistory struct{}

func New() *FileHistory {
	return &FileHistory{}
}

func (h *FileHistory) Save(projectPath string, record domain.ScanRecord) error {
	records, err := h.Load(projectPath)
	if err != nil {
		return err
	}

	records = append(records, record)

	fp := filepath.Join(projectPath, historyFile)
	if err := os.MkdirAll(filepath.Dir(fp), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(fp, data, 0o644)
}

func (h *FileHistory) Load(projectPath string) ([]domain.ScanRecord, error) {
	fp := filepath.Join(projectPath, historyFile)

	data, err := os.ReadFile(fp)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var records []domain.ScanRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}

	return records, nil
}
