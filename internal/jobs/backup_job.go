package jobs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/netgenix/printshop-api/internal/domain"
	"github.com/netgenix/printshop-api/internal/storage"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BackupJobName is the name of the scheduled database backup job
const BackupJobName = "database_backup"

// BackupJob dumps the operational tables to a dated JSON archive in the
// configured store. The dump is a logical backup of business data, not a
// physical database backup.
type BackupJob struct {
	db      *gorm.DB
	store   storage.Storage
	logger  *zap.Logger
	timeout time.Duration
}

// NewBackupJob creates a new backup job.
func NewBackupJob(db *gorm.DB, store storage.Storage, logger *zap.Logger, timeout time.Duration) *BackupJob {
	return &BackupJob{
		db:      db,
		store:   store,
		logger:  logger,
		timeout: timeout,
	}
}

type backupArchive struct {
	TakenAt   time.Time                 `json:"takenAt"`
	Rolls     []domain.MaterialRoll     `json:"rolls"`
	Jobs      []domain.Job              `json:"jobs"`
	Materials []domain.Material         `json:"materials"`
	Expenses  []domain.Expense          `json:"expenses"`
	Reports   []domain.Report           `json:"reports"`
	Settings  []domain.BusinessSettings `json:"settings"`
}

// Run executes the backup. Called by the scheduler.
func (j *BackupJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	start := time.Now()

	archive := backupArchive{TakenAt: start.UTC()}
	for _, step := range []struct {
		name string
		dest interface{}
	}{
		{"material_rolls", &archive.Rolls},
		{"jobs", &archive.Jobs},
		{"materials", &archive.Materials},
		{"expenses", &archive.Expenses},
		{"reports", &archive.Reports},
		{"business_settings", &archive.Settings},
	} {
		if err := j.db.WithContext(ctx).Find(step.dest).Error; err != nil {
			j.logger.Error("backup aborted: table dump failed",
				zap.String("table", step.name),
				zap.Error(err))
			return
		}
	}

	payload, err := json.Marshal(&archive)
	if err != nil {
		j.logger.Error("backup aborted: archive encode failed", zap.Error(err))
		return
	}

	name := fmt.Sprintf("printshop-backup-%s.json", start.UTC().Format("2006-01-02"))
	size, err := j.store.Store(ctx, name, "application/json", bytes.NewReader(payload))
	if err != nil {
		j.logger.Error("backup aborted: archive upload failed",
			zap.String("archive", name),
			zap.Error(err))
		return
	}

	j.logger.Info("database backup completed",
		zap.String("archive", name),
		zap.Int64("size_bytes", size),
		zap.Int("jobs", len(archive.Jobs)),
		zap.Int("rolls", len(archive.Rolls)),
		zap.Duration("duration", time.Since(start)))
}
