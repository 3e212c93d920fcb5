// internal/sync/sync.go
package sync

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"go.uber.org/zap"

	"github.com/sstent/fitcoach-go/internal/models"
	"github.com/sstent/fitcoach-go/internal/observability"
)

// syncTimeout bounds one garmindb_cli run.
const syncTimeout = 5 * time.Minute

// outputTail is how much trailing CLI output is kept in the result.
const outputTail = 500

// Service triggers GarminDB resyncs by shelling out to the garmindb CLI.
// The CLI owns all Garmin Connect credentials and file parsing; we only
// schedule it and report the outcome.
type Service struct {
	cliPath string
	workDir string
	logger  *zap.SugaredLogger
}

func NewService(cliPath, workDir string, logger *zap.SugaredLogger) *Service {
	if cliPath == "" {
		cliPath = "garmindb_cli.py"
	}
	return &Service{cliPath: cliPath, workDir: workDir, logger: logger}
}

// Sync runs one import-and-analyze pass. Failures are reported in the
// result, never panicked or silently dropped.
func (s *Service) Sync(ctx context.Context) models.SyncResult {
	start := time.Now()
	s.logger.Infow("starting garmindb sync", "cli", s.cliPath)

	ctx, cancel := context.WithTimeout(ctx, syncTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, s.cliPath, "--import", "--analyze", "--latest")
	cmd.Dir = s.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := models.SyncResult{LastSync: time.Now()}

	switch {
	case err == nil:
		result.Success = true
		result.Message = "Data sync completed successfully"
		result.Output = tail(stdout.String())
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		result.Message = "Sync timeout - process took too long"
	case errors.Is(err, exec.ErrNotFound):
		result.Message = fmt.Sprintf("%s not found - check GarminDB installation", s.cliPath)
	default:
		result.Message = "Sync failed - check GarminDB configuration"
		result.Output = tail(stderr.String())
	}

	observability.RecordSyncRun(result.Success)
	if result.Success {
		s.logger.Infow("garmindb sync completed", "duration", time.Since(start))
	} else {
		s.logger.Warnw("garmindb sync failed", "message", result.Message, "error", err)
	}
	return result
}

func tail(s string) string {
	if len(s) <= outputTail {
		return s
	}
	return s[len(s)-outputTail:]
}
