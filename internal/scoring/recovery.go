// internal/scoring/recovery.go
package scoring

import (
	"math"

	"github.com/sstent/fitcoach-go/internal/models"
)

// Recovery factor weights. Renormalized at scoring time over whichever
// factors the snapshot actually carries, so a snapshot with only a sleep
// score still maps onto the full 0-100 range.
const (
	weightSleep       = 0.40
	weightStress      = 0.30
	weightBodyBattery = 0.20
	weightHeart       = 0.10
)

// Recovery label thresholds (score >= threshold).
const (
	thresholdExcellent = 85
	thresholdGood      = 70
	thresholdModerate  = 55
)

// ScoreRecovery maps a metrics snapshot to a recovery assessment.
//
// score = sum(weight_i * value_i) / sum(weight_i present), clamped to
// [0,100] and rounded. The heart factor contributes only when both HRV and
// resting HR are known. With zero usable inputs the assessment is
// Unavailable and no score is fabricated.
func ScoreRecovery(snapshot *models.MetricsSnapshot) models.RecoveryAssessment {
	var weighted, totalWeight float64

	if snapshot.SleepScore != nil {
		weighted += float64(*snapshot.SleepScore) * weightSleep
		totalWeight += weightSleep
	}

	// Lower stress is better.
	if snapshot.StressLevel != nil {
		weighted += float64(100-*snapshot.StressLevel) * weightStress
		totalWeight += weightStress
	}

	if snapshot.BodyBattery != nil {
		weighted += float64(*snapshot.BodyBattery) * weightBodyBattery
		totalWeight += weightBodyBattery
	}

	if snapshot.HeartRateVariability != nil && snapshot.RestingHeartRate != nil {
		weighted += heartFactor(*snapshot.HeartRateVariability, *snapshot.RestingHeartRate) * weightHeart
		totalWeight += weightHeart
	}

	if totalWeight == 0 {
		return models.RecoveryAssessment{
			Label:  models.RecoveryUnavailable,
			Advice: RecoveryAdvice(models.RecoveryUnavailable),
		}
	}

	score := int(math.Round(clamp(weighted/totalWeight, 0, 100)))
	label := recoveryLabel(score)

	return models.RecoveryAssessment{
		Score:  score,
		Label:  label,
		Advice: RecoveryAdvice(label),
	}
}

// heartFactor combines HRV and resting HR into a single 0-100 value.
// HRV is normalized over 20-50 ms (higher is better), resting HR over
// 40-80 bpm (lower is better).
func heartFactor(hrv, restingHR int) float64 {
	hrvNorm := clamp((float64(hrv)-20)/30*100, 0, 100)
	rhrNorm := clamp((80-float64(restingHR))/40*100, 0, 100)
	return (hrvNorm + rhrNorm) / 2
}

func recoveryLabel(score int) models.RecoveryLabel {
	switch {
	case score >= thresholdExcellent:
		return models.RecoveryExcellent
	case score >= thresholdGood:
		return models.RecoveryGood
	case score >= thresholdModerate:
		return models.RecoveryModerate
	default:
		return models.RecoveryPoor
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
