package logging

import (
	"log/slog"
	"time"

	"github.com/ChristianDVillar/inventory-backend/internal/models"
	"gorm.io/gorm"
)

// StartCleanup runs a daily goroutine that deletes system_logs older
// than the configured retention window.
func StartCleanup(db *gorm.DB, retention time.Duration, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				PurgeOldLogs(db, time.Now().Add(-retention))
			case <-done:
				return
			}
		}
	}()
}

// PurgeOldLogs deletes every system log row with a timestamp before cutoff.
func PurgeOldLogs(db *gorm.DB, cutoff time.Time) {
	result := db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
	if result.Error != nil {
		slog.Error("log cleanup failed", "error", result.Error)
	} else if result.RowsAffected > 0 {
		slog.Info("log cleanup completed", "deleted", result.RowsAffected)
	}
}
