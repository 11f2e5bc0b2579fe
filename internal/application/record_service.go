package application

import (
	"time"

	"github.com/gomsv/gomsv/internal/domain"
)

// RecordService appends verified scan results to the project's history log.
// The log is informational only; it is never read back to skip probes.
type RecordService struct {
	history domain.ScanHistory
	gitInfo domain.GitInfo
	now     func() time.Time
}

func NewRecordService(history domain.ScanHistory, gitInfo domain.GitInfo) *RecordService {
	return &RecordService{
		history: history,
		gitInfo: gitInfo,
		now:     time.Now,
	}
}

// Record saves the verdict with the check command and, when the project is a
// git repository, the commit it was verified against. Verdicts that found no
// capable toolchain are not recorded.
func (s *RecordService) Record(projectPath string, verdict domain.Verdict, command string) error {
	if !verdict.IsCapable() {
		return nil
	}

	record := domain.ScanRecord{
		Version:   verdict.Version,
		Toolchain: verdict.Toolchain,
		Command:   command,
		Timestamp: s.now().UTC(),
	}

	if s.gitInfo.IsGitRepo(projectPath) {
		if hash, err := s.gitInfo.CommitHash(projectPath); err == nil {
			record.CommitHash = hash
		}
	}

	return s.history.Save(projectPath, record)
}
