// internal/garmindb/status.go
package garmindb

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sstent/fitcoach-go/internal/models"
)

// Status reports whether the GarminDB store is usable: directory present,
// database files present, and monitoring data actually synced.
func (r *Reader) Status() models.StoreStatus {
	status := models.StoreStatus{Path: r.path}

	if _, err := os.Stat(r.path); err != nil {
		status.Status = "GarminDB directory not found"
		status.SetupRequired = true
		return status
	}

	var missing []string
	for _, name := range allDatabases {
		if _, err := os.Stat(filepath.Join(r.path, name)); err != nil {
			missing = append(missing, strings.TrimSuffix(name, ".db"))
		}
	}
	if len(missing) > 0 {
		status.Status = fmt.Sprintf("Missing databases: %s", strings.Join(missing, ", "))
		status.SetupRequired = true
		status.MissingDatabases = missing
		return status
	}

	conn := r.open(dbMonitoring)
	if conn == nil {
		status.Status = "Monitoring database unreadable"
		status.SetupRequired = true
		return status
	}

	var count int
	if err := conn.QueryRow("SELECT COUNT(*) FROM monitoring_info").Scan(&count); err != nil {
		status.Status = fmt.Sprintf("Database error: %v", err)
		status.SetupRequired = true
		return status
	}

	status.Connected = true
	if count == 0 {
		status.Status = "GarminDB found but no data - run sync first"
		return status
	}

	status.Status = "GarminDB ready"
	status.HasData = true
	status.DataCount = count
	return status
}
