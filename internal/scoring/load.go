// internal/scoring/load.go
package scoring

import (
	"math"
	"strings"

	"github.com/sstent/fitcoach-go/internal/models"
)

// loadWindow is the number of most recent activities the scorer considers.
const loadWindow = 7

// sportIntensity maps a lower-cased sport name to its intensity factor.
// Unrecognised sports fall back to defaultIntensity.
var sportIntensity = map[string]float64{
	"running":           1.3,
	"cycling":           1.0,
	"swimming":          1.2,
	"strength_training": 0.9,
	"rowing":            1.1,
	"pilates":           0.5,
	"hiking":            0.6,
	"yoga":              0.4,
	"walking":           0.3,
}

const defaultIntensity = 0.8

// Load label thresholds (load > threshold).
const (
	loadHighThreshold         = 400
	loadModerateHighThreshold = 250
	loadOptimalThreshold      = 100
)

// ScoreTrainingLoad maps the recent activity history (newest last) to a
// training-load assessment. Only the last seven activities contribute.
func ScoreTrainingLoad(activities []models.ActivityRecord) models.TrainingLoadAssessment {
	window := activities
	if len(window) > loadWindow {
		window = window[len(window)-loadWindow:]
	}

	var total float64
	for _, act := range window {
		total += activityLoad(act)
	}
	total = math.Round(total*10) / 10

	label := loadLabel(total)

	return models.TrainingLoadAssessment{
		Load:   total,
		Label:  label,
		Trend:  loadTrend(window),
		Advice: LoadAdvice(label),
	}
}

// activityLoad is duration_hours * sport_factor * hr_factor * 100, where the
// heart-rate factor is avg HR over a 180 bpm ceiling, capped at 1.
func activityLoad(act models.ActivityRecord) float64 {
	hours := float64(act.DurationSeconds) / 3600
	hrFactor := math.Min(float64(act.AverageHeartRate)/180, 1.0)
	if hrFactor < 0 {
		hrFactor = 0
	}
	return hours * SportIntensityFactor(act.Sport) * hrFactor * 100
}

// SportIntensityFactor looks up the intensity factor for a sport name,
// case-insensitively.
func SportIntensityFactor(sport string) float64 {
	if factor, ok := sportIntensity[strings.ToLower(sport)]; ok {
		return factor
	}
	return defaultIntensity
}

func loadLabel(load float64) models.LoadLabel {
	switch {
	case load > loadHighThreshold:
		return models.LoadHigh
	case load > loadModerateHighThreshold:
		return models.LoadModerateHigh
	case load > loadOptimalThreshold:
		return models.LoadOptimal
	default:
		return models.LoadLow
	}
}

// loadTrend compares the mean duration of the newest three activities
// against the mean of the up-to-four preceding ones.
func loadTrend(window []models.ActivityRecord) models.LoadTrend {
	if len(window) < 3 {
		return models.TrendInsufficientData
	}

	recent := window[len(window)-3:]
	older := window[:len(window)-3]
	if len(older) == 0 {
		return models.TrendBuildingBaseline
	}

	recentAvg := meanDuration(recent)
	olderAvg := meanDuration(older)
	if olderAvg == 0 {
		return models.TrendBuildingBaseline
	}

	ratio := recentAvg / olderAvg
	switch {
	case ratio > 1.2:
		return models.TrendIncreasingHigh
	case ratio > 1.1:
		return models.TrendIncreasingModerate
	case ratio < 0.8:
		return models.TrendDecreasing
	default:
		return models.TrendStable
	}
}

func meanDuration(activities []models.ActivityRecord) float64 {
	if len(activities) == 0 {
		return 0
	}
	var sum float64
	for _, act := range activities {
		sum += float64(act.DurationSeconds)
	}
	return sum / float64(len(activities))
}
