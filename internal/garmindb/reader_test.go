package garmindb

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sstent/fitcoach-go/internal/models"
)

// seedDB creates one GarminDB file with the given schema and statements.
func seedDB(t *testing.T, dir, name, schema string, statements ...string) {
	t.Helper()
	conn, err := sql.Open("sqlite3", filepath.Join(dir, name))
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Exec(schema)
	require.NoError(t, err)
	for _, stmt := range statements {
		_, err = conn.Exec(stmt)
		require.NoError(t, err)
	}
}

func seedFullStore(t *testing.T, dir string) {
	t.Helper()
	now := time.Now()
	ts := now.Add(-1 * time.Hour).Format(timeLayout)
	day := now.Format(dayLayout)

	seedDB(t, dir, dbMonitoring, `
	CREATE TABLE monitoring_info (timestamp TEXT, steps INTEGER, stress_level INTEGER, body_battery INTEGER);
	CREATE TABLE monitoring_hr (timestamp TEXT, heart_rate INTEGER);`,
		"INSERT INTO monitoring_info VALUES ('"+ts+"', 5000, 25, 85)",
		"INSERT INTO monitoring_hr VALUES ('"+ts+"', 72)",
	)
	seedDB(t, dir, dbSummary, `
	CREATE TABLE sleep_events (day TEXT, sleep_score INTEGER);
	CREATE TABLE resting_hr (day TEXT, rhr INTEGER);`,
		"INSERT INTO sleep_events VALUES ('"+day+"', 80)",
		"INSERT INTO resting_hr VALUES ('"+day+"', 52)",
	)
	seedDB(t, dir, dbActivities, `
	CREATE TABLE activities (name TEXT, start_time TEXT, sport TEXT, distance REAL, avg_hr INTEGER, calories INTEGER, elapsed_time INTEGER);`,
		"INSERT INTO activities VALUES ('Morning Run', '"+ts+"', 'running', 8000, 150, 450, 2400)",
	)
	seedDB(t, dir, dbGarmin, `CREATE TABLE attributes (key TEXT, value TEXT);`)
}

func TestLatestSnapshot_FullStore(t *testing.T) {
	dir := t.TempDir()
	seedFullStore(t, dir)

	reader := NewReader(dir, zap.NewNop().Sugar())
	defer reader.Close()

	snapshot := reader.LatestSnapshot(1)

	assert.Equal(t, models.SourceGarminDB, snapshot.DataSource)
	assert.True(t, snapshot.Available())
	assert.Equal(t, 5000, snapshot.Steps)
	require.NotNil(t, snapshot.AverageHeartRate)
	assert.Equal(t, 72, *snapshot.AverageHeartRate)
	require.NotNil(t, snapshot.SleepScore)
	assert.Equal(t, 80, *snapshot.SleepScore)
	require.NotNil(t, snapshot.StressLevel)
	assert.Equal(t, 25, *snapshot.StressLevel)
	require.NotNil(t, snapshot.BodyBattery)
	assert.Equal(t, 85, *snapshot.BodyBattery)
	require.NotNil(t, snapshot.RestingHeartRate)
	assert.Equal(t, 52, *snapshot.RestingHeartRate)
	require.NotNil(t, snapshot.LastActivity)
	assert.Equal(t, "Morning Run", snapshot.LastActivity.Name)
	assert.Equal(t, "running", snapshot.LastActivity.Sport)
	assert.Equal(t, 2400, snapshot.LastActivity.DurationSeconds)
}

func TestLatestSnapshot_MissingDirectoryIsUnavailable(t *testing.T) {
	reader := NewReader(filepath.Join(t.TempDir(), "nope"), zap.NewNop().Sugar())
	defer reader.Close()

	snapshot := reader.LatestSnapshot(1)

	assert.Equal(t, models.SourceUnavailable, snapshot.DataSource)
	assert.False(t, snapshot.Available())
	assert.Nil(t, snapshot.SleepScore)
	assert.Nil(t, snapshot.LastActivity)
	assert.Zero(t, snapshot.Steps)
}

func TestLatestSnapshot_MissingFieldsStayAbsent(t *testing.T) {
	// Store present but only the monitoring db exists, with no sleep or
	// battery data to report.
	dir := t.TempDir()
	seedDB(t, dir, dbMonitoring, `
	CREATE TABLE monitoring_info (timestamp TEXT, steps INTEGER, stress_level INTEGER, body_battery INTEGER);`,
		"INSERT INTO monitoring_info (timestamp, steps) VALUES ('"+time.Now().Format(timeLayout)+"', 3000)",
	)

	reader := NewReader(dir, zap.NewNop().Sugar())
	defer reader.Close()

	snapshot := reader.LatestSnapshot(1)

	assert.Equal(t, models.SourceGarminDB, snapshot.DataSource)
	assert.Equal(t, 3000, snapshot.Steps)
	assert.Nil(t, snapshot.SleepScore)
	assert.Nil(t, snapshot.RestingHeartRate)
	assert.Nil(t, snapshot.AverageHeartRate)
	assert.Nil(t, snapshot.LastActivity)
}

func TestLatestSnapshot_FallsBackToSchemaVariant(t *testing.T) {
	// Older GarminDB layouts use monitoring_daily and sleep.overall_score;
	// the reader must fall through to them.
	dir := t.TempDir()
	day := time.Now().Format(dayLayout)
	seedDB(t, dir, dbMonitoring, `
	CREATE TABLE monitoring_daily (day TEXT, steps INTEGER);`,
		"INSERT INTO monitoring_daily VALUES ('"+day+"', 7500)",
	)
	seedDB(t, dir, dbGarmin, `
	CREATE TABLE sleep (day TEXT, overall_score INTEGER);`,
		"INSERT INTO sleep VALUES ('"+day+"', 66)",
	)

	reader := NewReader(dir, zap.NewNop().Sugar())
	defer reader.Close()

	snapshot := reader.LatestSnapshot(1)

	assert.Equal(t, 7500, snapshot.Steps)
	require.NotNil(t, snapshot.SleepScore)
	assert.Equal(t, 66, *snapshot.SleepScore)
}

func TestLatestSnapshot_SeesDataSyncedAfterFirstRead(t *testing.T) {
	// First-run flow: the reader is built against an empty directory, a sync
	// then creates the database files. The next extraction must pick them up
	// without a restart.
	dir := t.TempDir()
	reader := NewReader(dir, zap.NewNop().Sugar())
	defer reader.Close()

	before := reader.LatestSnapshot(1)
	assert.Zero(t, before.Steps)

	seedDB(t, dir, dbMonitoring, `
	CREATE TABLE monitoring_info (timestamp TEXT, steps INTEGER, stress_level INTEGER, body_battery INTEGER);`,
		"INSERT INTO monitoring_info (timestamp, steps) VALUES ('"+time.Now().Add(-1*time.Hour).Format(timeLayout)+"', 5000)",
	)

	after := reader.LatestSnapshot(1)
	assert.Equal(t, 5000, after.Steps)
	assert.Equal(t, models.SourceGarminDB, after.DataSource)
}

func TestRecentActivities_NewestFirst(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	seedDB(t, dir, dbActivities, `
	CREATE TABLE activities (name TEXT, start_time TEXT, sport TEXT, distance REAL, avg_hr INTEGER, calories INTEGER, elapsed_time INTEGER);`,
		"INSERT INTO activities VALUES ('Old Ride', '"+now.AddDate(0, 0, -3).Format(timeLayout)+"', 'cycling', 20000, 135, 600, 3600)",
		"INSERT INTO activities VALUES ('New Run', '"+now.Add(-2*time.Hour).Format(timeLayout)+"', 'running', 5000, 155, 300, 1800)",
	)

	reader := NewReader(dir, zap.NewNop().Sugar())
	defer reader.Close()

	activities := reader.RecentActivities(10)

	require.Len(t, activities, 2)
	assert.Equal(t, "New Run", activities[0].Name)
	assert.Equal(t, "Old Ride", activities[1].Name)
}

func TestStatus(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		reader := NewReader(filepath.Join(t.TempDir(), "nope"), zap.NewNop().Sugar())
		status := reader.Status()
		assert.False(t, status.Connected)
		assert.True(t, status.SetupRequired)
	})

	t.Run("missing databases", func(t *testing.T) {
		dir := t.TempDir()
		seedDB(t, dir, dbMonitoring, `CREATE TABLE monitoring_info (timestamp TEXT, steps INTEGER);`)
		reader := NewReader(dir, zap.NewNop().Sugar())
		defer reader.Close()

		status := reader.Status()
		assert.False(t, status.Connected)
		assert.True(t, status.SetupRequired)
		assert.Contains(t, status.MissingDatabases, "garmin_activities")
	})

	t.Run("ready with data", func(t *testing.T) {
		dir := t.TempDir()
		seedFullStore(t, dir)
		reader := NewReader(dir, zap.NewNop().Sugar())
		defer reader.Close()

		status := reader.Status()
		assert.True(t, status.Connected)
		assert.True(t, status.HasData)
		assert.False(t, status.SetupRequired)
		assert.Equal(t, "GarminDB ready", status.Status)
		assert.Equal(t, 1, status.DataCount)
	})
}

func TestWeeklySummary(t *testing.T) {
	dir := t.TempDir()
	seedFullStore(t, dir)

	reader := NewReader(dir, zap.NewNop().Sugar())
	defer reader.Close()

	summary := reader.WeeklySummary()

	assert.Equal(t, models.SourceGarminDB, summary.DataSource)
	require.Len(t, summary.DailySteps, 1)
	assert.Equal(t, 5000, summary.DailySteps[0].Steps)
	assert.Equal(t, 1, summary.ActivityCount)
	assert.Equal(t, 450, summary.TotalCalories)
	assert.InDelta(t, 8000.0, summary.AvgDistance, 0.01)
	assert.NotEmpty(t, summary.Period)
}
