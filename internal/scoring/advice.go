// internal/scoring/advice.go
package scoring

import (
	"fmt"

	"github.com/sstent/fitcoach-go/internal/models"
)

// adviceFallback is returned for any label the tables do not cover.
const adviceFallback = "Monitor how you feel and train accordingly."

var recoveryAdvice = map[models.RecoveryLabel]string{
	models.RecoveryExcellent:   "Perfect day for high-intensity training! Your metrics show full recovery.",
	models.RecoveryGood:        "Good day for moderate to high intensity exercise. Listen to your body.",
	models.RecoveryModerate:    "Consider light to moderate activity. Focus on active recovery.",
	models.RecoveryPoor:        "Rest day recommended. Prioritize sleep, hydration, and stress management.",
	models.RecoveryUnavailable: "Sync your Garmin data to get personalized recovery insights.",
}

var loadAdvice = map[models.LoadLabel]string{
	models.LoadHigh:         "Consider reducing intensity this week. Risk of overtraining - schedule a rest day within 48 hours.",
	models.LoadModerateHigh: "Maintain current intensity and ensure adequate recovery between sessions. Monitor for signs of fatigue.",
	models.LoadOptimal:      "Good training volume and intensity. Excellent balance of stress and recovery - continue current progression.",
	models.LoadLow:          "Opportunity to increase training volume. Add an extra session this week if feeling good.",
}

// RecoveryAdvice returns the canned recommendation for a recovery label.
// Always non-empty.
func RecoveryAdvice(label models.RecoveryLabel) string {
	if advice, ok := recoveryAdvice[label]; ok {
		return advice
	}
	return adviceFallback
}

// LoadAdvice returns the canned recommendation for a training-load label.
// Always non-empty.
func LoadAdvice(label models.LoadLabel) string {
	if advice, ok := loadAdvice[label]; ok {
		return advice
	}
	return adviceFallback
}

// ZoneFocus suggests which heart-rate zones to favour at the current load.
func ZoneFocus(load float64) string {
	switch {
	case load > 300:
		return "Focus: Zone 1-2 (Recovery/Easy), limit Zone 4-5"
	case load > 200:
		return "Focus: Zone 2-3 (Aerobic/Tempo), 1x Zone 4 session"
	default:
		return "Focus: Zone 2-4 (Aerobic to Threshold), add intensity"
	}
}

// HeartRateZones derives the five classic training zones from a max HR.
func HeartRateZones(maxHR int) map[string]string {
	zone := func(lo, hi float64) string {
		return fmt.Sprintf("%d-%d bpm", int(float64(maxHR)*lo), int(float64(maxHR)*hi))
	}
	return map[string]string{
		"Zone 1 (Active Recovery)":   zone(0.5, 0.6),
		"Zone 2 (Aerobic Base)":      zone(0.6, 0.7),
		"Zone 3 (Tempo)":             zone(0.7, 0.8),
		"Zone 4 (Lactate Threshold)": zone(0.8, 0.9),
		"Zone 5 (VO2 Max)":           fmt.Sprintf("%d-%d bpm", int(float64(maxHR)*0.9), maxHR),
	}
}
