// internal/models/models.go
package models

import "time"

// MetricsSnapshot is a point-in-time bundle of Garmin health metrics used as
// scoring input. Every field the tracker may not have reported is a pointer:
// nil means "unknown" and must never be treated as zero.
type MetricsSnapshot struct {
	Steps                int             `json:"steps"`
	AverageHeartRate     *int            `json:"averageHeartRate,omitempty"`
	SleepScore           *int            `json:"sleepScore,omitempty"`
	StressLevel          *int            `json:"stressLevel,omitempty"`
	BodyBattery          *int            `json:"bodyBattery,omitempty"`
	RestingHeartRate     *int            `json:"restingHeartRate,omitempty"`
	HeartRateVariability *int            `json:"heartRateVariability,omitempty"`
	LastActivity         *ActivityRecord `json:"lastActivity,omitempty"`
	Timestamp            time.Time       `json:"timestamp"`
	DataSource           string          `json:"dataSource"`
}

// Data source markers for MetricsSnapshot.
const (
	SourceGarminDB    = "garmindb"
	SourceUnavailable = "unavailable"
)

// Available reports whether the snapshot came from a reachable store.
func (s *MetricsSnapshot) Available() bool {
	return s.DataSource == SourceGarminDB
}

// ActivityRecord is a single logged activity as read from the GarminDB
// activities database.
type ActivityRecord struct {
	Name             string    `json:"activityName"`
	StartTime        time.Time `json:"startTime"`
	Sport            string    `json:"sport"`
	Distance         float64   `json:"distance"` // meters
	AverageHeartRate int       `json:"averageHeartRate"`
	Calories         int       `json:"calories"`
	DurationSeconds  int       `json:"duration"`
}

// RecoveryLabel categorises a recovery score.
type RecoveryLabel string

const (
	RecoveryExcellent   RecoveryLabel = "Excellent"
	RecoveryGood        RecoveryLabel = "Good"
	RecoveryModerate    RecoveryLabel = "Moderate"
	RecoveryPoor        RecoveryLabel = "Poor"
	RecoveryUnavailable RecoveryLabel = "Unavailable"
)

// RecoveryAssessment is the derived recovery state for one snapshot.
// Score is only meaningful when Label != RecoveryUnavailable.
type RecoveryAssessment struct {
	Score  int           `json:"score"`
	Label  RecoveryLabel `json:"label"`
	Advice string        `json:"advice"`
}

// LoadLabel categorises a training-load magnitude.
type LoadLabel string

const (
	LoadLow          LoadLabel = "Low"
	LoadOptimal      LoadLabel = "Optimal"
	LoadModerateHigh LoadLabel = "ModerateHigh"
	LoadHigh         LoadLabel = "High"
)

// LoadTrend describes the short-term direction of training volume.
type LoadTrend string

const (
	TrendIncreasingHigh     LoadTrend = "Increasing-High"
	TrendIncreasingModerate LoadTrend = "Increasing-Moderate"
	TrendStable             LoadTrend = "Stable"
	TrendDecreasing         LoadTrend = "Decreasing"
	TrendBuildingBaseline   LoadTrend = "Building-Baseline"
	TrendInsufficientData   LoadTrend = "Insufficient-Data"
)

// TrainingLoadAssessment is the derived load state over the recent
// activity window.
type TrainingLoadAssessment struct {
	Load   float64   `json:"load"`
	Label  LoadLabel `json:"label"`
	Trend  LoadTrend `json:"trend"`
	Advice string    `json:"advice"`
}

// Insight is one titled block of generated (or fallback) content shown in
// the companion app.
type Insight struct {
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"type"`
	Agent     string    `json:"agent"`
	Timestamp time.Time `json:"timestamp"`
}

// Insight categories.
const (
	CategoryAnalysis       = "analysis"
	CategoryRecommendation = "recommendation"
	CategoryHealth         = "health"
	CategoryInfo           = "info"
	CategoryError          = "error"
)
