package admission

import (
	"fmt"
	"time"
)

// BackupFilename returns the download name for a backup taken at t,
// e.g. "admission_backup_2026-08-31.json".
func BackupFilename(t time.Time) string {
	return fmt.Sprintf("admission_backup_%s.json", t.Format("2006-01-02"))
}
