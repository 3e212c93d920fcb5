// internal/garmindb/activities.go
package garmindb

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/sstent/fitcoach-go/internal/models"
)

const activityColumns = "name, start_time, sport, distance, avg_hr, calories, elapsed_time"

// latestActivity returns the most recent activity, or nil when none can be
// read.
func (r *Reader) latestActivity() *models.ActivityRecord {
	activities := r.RecentActivities(1)
	if len(activities) == 0 {
		return nil
	}
	return &activities[0]
}

// RecentActivities reads up to limit activities, newest first. An
// unreachable activities database yields an empty slice.
func (r *Reader) RecentActivities(limit int) []models.ActivityRecord {
	conn := r.open(dbActivities)
	if conn == nil {
		return nil
	}

	query := fmt.Sprintf(`
	SELECT %s
	FROM activities
	WHERE start_time IS NOT NULL
	ORDER BY start_time DESC
	LIMIT ?`, activityColumns)

	rows, err := conn.Query(query, limit)
	if err != nil {
		r.logger.Debugw("activity query failed", "error", err)
		return nil
	}
	defer rows.Close()

	var activities []models.ActivityRecord
	for rows.Next() {
		record, err := scanActivity(rows)
		if err != nil {
			r.logger.Debugw("activity scan failed", "error", err)
			continue
		}
		activities = append(activities, record)
	}
	return activities
}

func scanActivity(rows *sql.Rows) (models.ActivityRecord, error) {
	var (
		name, sport, startTime       sql.NullString
		distance                     sql.NullFloat64
		avgHR, calories, durationSec sql.NullFloat64
	)
	if err := rows.Scan(&name, &startTime, &sport, &distance, &avgHR, &calories, &durationSec); err != nil {
		return models.ActivityRecord{}, err
	}

	record := models.ActivityRecord{
		Name:             "Unknown Activity",
		Sport:            "unknown",
		Distance:         distance.Float64,
		AverageHeartRate: int(avgHR.Float64),
		Calories:         int(calories.Float64),
		DurationSeconds:  int(durationSec.Float64),
	}
	if name.Valid && name.String != "" {
		record.Name = name.String
	}
	if sport.Valid && sport.String != "" {
		record.Sport = sport.String
	}
	if startTime.Valid {
		if t, err := time.Parse(timeLayout, startTime.String); err == nil {
			record.StartTime = t
		}
	}
	return record, nil
}

// WeeklySummary aggregates the trailing seven days of monitoring and
// activity data. Unreachable databases contribute empty sections; the
// summary itself is always returned.
func (r *Reader) WeeklySummary() *models.WeeklySummary {
	end := time.Now()
	start := end.AddDate(0, 0, -7)

	summary := &models.WeeklySummary{
		Period:     fmt.Sprintf("%s to %s", start.Format(dayLayout), end.Format(dayLayout)),
		DataSource: models.SourceGarminDB,
	}
	if r.open(dbMonitoring) == nil && r.open(dbActivities) == nil {
		summary.DataSource = models.SourceUnavailable
	}

	if conn := r.open(dbMonitoring); conn != nil {
		rows, err := conn.Query(`
		SELECT DATE(timestamp) AS day, MAX(steps) AS daily_steps
		FROM monitoring_info
		WHERE timestamp BETWEEN ? AND ? AND steps IS NOT NULL
		GROUP BY DATE(timestamp)
		ORDER BY day`,
			start.Format(timeLayout), end.Format(timeLayout))
		if err == nil {
			defer rows.Close()
			for rows.Next() {
				var day sql.NullString
				var steps sql.NullFloat64
				if err := rows.Scan(&day, &steps); err != nil {
					continue
				}
				summary.DailySteps = append(summary.DailySteps, models.DailySteps{
					Day:   day.String,
					Steps: int(steps.Float64),
				})
			}
		}
	}

	if conn := r.open(dbActivities); conn != nil {
		var count sql.NullInt64
		var avgDistance, totalCalories sql.NullFloat64
		err := conn.QueryRow(`
		SELECT COUNT(*), AVG(distance), SUM(calories)
		FROM activities
		WHERE start_time BETWEEN ? AND ?`,
			start.Format(timeLayout), end.Format(timeLayout)).
			Scan(&count, &avgDistance, &totalCalories)
		if err == nil {
			summary.ActivityCount = int(count.Int64)
			summary.AvgDistance = avgDistance.Float64
			summary.TotalCalories = int(totalCalories.Float64)
		}
	}

	return summary
}
