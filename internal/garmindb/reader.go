// internal/garmindb/reader.go
package garmindb

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/sstent/fitcoach-go/internal/models"
)

// GarminDB database files. The schema is owned by the garmindb tool and
// drifts between versions, so every lookup tries an ordered list of query
// variants and takes the first hit.
const (
	dbGarmin     = "garmin.db"
	dbActivities = "garmin_activities.db"
	dbMonitoring = "garmin_monitoring.db"
	dbSummary    = "garmin_summary.db"
)

var allDatabases = []string{dbGarmin, dbActivities, dbMonitoring, dbSummary}

const timeLayout = "2006-01-02 15:04:05"
const dayLayout = "2006-01-02"

// Reader provides best-effort, read-only access to a GarminDB directory.
// A missing file or failed query yields an absent field, never an error
// upward.
type Reader struct {
	path   string
	logger *zap.SugaredLogger
	conns  map[string]*sql.DB
}

func NewReader(path string, logger *zap.SugaredLogger) *Reader {
	return &Reader{
		path:   path,
		logger: logger,
		conns:  make(map[string]*sql.DB),
	}
}

// Path returns the GarminDB directory this reader points at.
func (r *Reader) Path() string {
	return r.path
}

// open returns a read-only connection to one database file, or nil when the
// file is missing or unreadable. Only successful opens are cached: a file
// absent now may appear after the next sync, so misses are retried on every
// call.
func (r *Reader) open(name string) *sql.DB {
	if conn, ok := r.conns[name]; ok {
		return conn
	}

	file := filepath.Join(r.path, name)
	if _, err := os.Stat(file); err != nil {
		r.logger.Debugw("garmindb file unavailable", "db", name, "error", err)
		return nil
	}

	conn, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro&_busy_timeout=5000", file))
	if err != nil {
		r.logger.Warnw("failed to open garmindb file", "db", name, "error", err)
		return nil
	}

	r.conns[name] = conn
	return conn
}

// Close releases every open connection.
func (r *Reader) Close() error {
	var firstErr error
	for name, conn := range r.conns {
		if err := conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(r.conns, name)
	}
	return firstErr
}

// variant is one candidate query against one database file.
type variant struct {
	db    string
	query string
	args  []interface{}
}

// firstInt runs the variants in order and returns the first non-null
// integer result. All-fail returns nil.
func (r *Reader) firstInt(variants []variant) *int {
	for _, v := range variants {
		conn := r.open(v.db)
		if conn == nil {
			continue
		}
		var value sql.NullFloat64
		if err := conn.QueryRow(v.query, v.args...).Scan(&value); err != nil {
			continue
		}
		if !value.Valid {
			continue
		}
		result := int(value.Float64)
		return &result
	}
	return nil
}

// LatestSnapshot assembles a metrics snapshot for the trailing daysBack
// days. Fields the store cannot answer stay nil; an entirely unreachable
// store yields an all-absent snapshot flagged unavailable.
func (r *Reader) LatestSnapshot(daysBack int) *models.MetricsSnapshot {
	if daysBack <= 0 {
		daysBack = 1
	}
	end := time.Now()
	start := end.AddDate(0, 0, -daysBack)

	if _, err := os.Stat(r.path); err != nil {
		r.logger.Warnw("garmindb directory unavailable", "path", r.path, "error", err)
		return &models.MetricsSnapshot{
			Timestamp:  end,
			DataSource: models.SourceUnavailable,
		}
	}

	snapshot := &models.MetricsSnapshot{
		AverageHeartRate: r.averageHeartRate(start, end),
		SleepScore:       r.sleepScore(start, end),
		StressLevel:      r.stressLevel(start, end),
		BodyBattery:      r.bodyBattery(start, end),
		RestingHeartRate: r.restingHeartRate(start, end),
		LastActivity:     r.latestActivity(),
		Timestamp:        end,
		DataSource:       models.SourceGarminDB,
	}
	if steps := r.dailySteps(start, end); steps != nil {
		snapshot.Steps = *steps
	}

	r.logger.Debugw("snapshot assembled",
		"steps", snapshot.Steps,
		"has_sleep", snapshot.SleepScore != nil,
		"has_stress", snapshot.StressLevel != nil,
	)
	return snapshot
}

func (r *Reader) dailySteps(start, end time.Time) *int {
	return r.firstInt([]variant{
		{dbMonitoring,
			"SELECT SUM(steps) FROM monitoring_info WHERE timestamp BETWEEN ? AND ? AND steps IS NOT NULL",
			[]interface{}{start.Format(timeLayout), end.Format(timeLayout)}},
		{dbMonitoring,
			"SELECT SUM(steps) FROM monitoring_daily WHERE day BETWEEN ? AND ? AND steps IS NOT NULL",
			[]interface{}{start.Format(dayLayout), end.Format(dayLayout)}},
		{dbMonitoring,
			"SELECT steps FROM monitoring_info WHERE DATE(timestamp) = DATE(?) ORDER BY timestamp DESC LIMIT 1",
			[]interface{}{end.Format(timeLayout)}},
	})
}

func (r *Reader) averageHeartRate(start, end time.Time) *int {
	args := []interface{}{start.Format(timeLayout), end.Format(timeLayout)}
	return r.firstInt([]variant{
		{dbMonitoring, "SELECT AVG(heart_rate) FROM monitoring_hr WHERE timestamp BETWEEN ? AND ? AND heart_rate > 0", args},
		{dbMonitoring, "SELECT AVG(avg_hr) FROM monitoring_info WHERE timestamp BETWEEN ? AND ? AND avg_hr > 0", args},
	})
}

func (r *Reader) sleepScore(start, end time.Time) *int {
	args := []interface{}{start.Format(dayLayout), end.Format(dayLayout)}
	variants := make([]variant, 0, 4)
	// Summary database first, then the main one.
	for _, db := range []string{dbSummary, dbGarmin} {
		variants = append(variants,
			variant{db, "SELECT sleep_score FROM sleep_events WHERE day BETWEEN ? AND ? ORDER BY day DESC LIMIT 1", args},
			variant{db, "SELECT overall_score FROM sleep WHERE day BETWEEN ? AND ? ORDER BY day DESC LIMIT 1", args},
		)
	}
	return r.firstInt(variants)
}

func (r *Reader) stressLevel(start, end time.Time) *int {
	args := []interface{}{start.Format(timeLayout), end.Format(timeLayout)}
	return r.firstInt([]variant{
		{dbMonitoring, "SELECT AVG(stress_level) FROM monitoring_info WHERE timestamp BETWEEN ? AND ? AND stress_level >= 0", args},
		{dbMonitoring, "SELECT stress FROM monitoring_stress WHERE timestamp BETWEEN ? AND ? ORDER BY timestamp DESC LIMIT 1", args},
	})
}

func (r *Reader) bodyBattery(start, end time.Time) *int {
	args := []interface{}{start.Format(timeLayout), end.Format(timeLayout)}
	return r.firstInt([]variant{
		{dbMonitoring, "SELECT body_battery FROM monitoring_info WHERE timestamp BETWEEN ? AND ? ORDER BY timestamp DESC LIMIT 1", args},
		{dbMonitoring, "SELECT battery_level FROM body_battery WHERE timestamp BETWEEN ? AND ? ORDER BY timestamp DESC LIMIT 1", args},
	})
}

func (r *Reader) restingHeartRate(start, end time.Time) *int {
	args := []interface{}{start.Format(dayLayout), end.Format(dayLayout)}
	variants := make([]variant, 0, 4)
	for _, db := range []string{dbSummary, dbGarmin} {
		variants = append(variants,
			variant{db, "SELECT rhr FROM resting_hr WHERE day BETWEEN ? AND ? ORDER BY day DESC LIMIT 1", args},
			variant{db, "SELECT resting_hr FROM daily_summary WHERE day BETWEEN ? AND ? ORDER BY day DESC LIMIT 1", args},
		)
	}
	return r.firstInt(variants)
}
