package scoring

import (
	"strings"
	"testing"

	"github.com/sstent/fitcoach-go/internal/models"
)

func TestRecoveryAdvice_CoversEveryLabel(t *testing.T) {
	labels := []models.RecoveryLabel{
		models.RecoveryExcellent,
		models.RecoveryGood,
		models.RecoveryModerate,
		models.RecoveryPoor,
		models.RecoveryUnavailable,
	}
	for _, label := range labels {
		if RecoveryAdvice(label) == "" {
			t.Errorf("empty advice for label %s", label)
		}
	}
}

func TestLoadAdvice_CoversEveryLabel(t *testing.T) {
	labels := []models.LoadLabel{
		models.LoadLow,
		models.LoadOptimal,
		models.LoadModerateHigh,
		models.LoadHigh,
	}
	for _, label := range labels {
		if LoadAdvice(label) == "" {
			t.Errorf("empty advice for label %s", label)
		}
	}
}

func TestAdvice_UnknownLabelFallsBack(t *testing.T) {
	if got := RecoveryAdvice(models.RecoveryLabel("bogus")); got != adviceFallback {
		t.Errorf("got %q, want fallback", got)
	}
	if got := LoadAdvice(models.LoadLabel("bogus")); got != adviceFallback {
		t.Errorf("got %q, want fallback", got)
	}
}

func TestHeartRateZones(t *testing.T) {
	zones := HeartRateZones(185)
	if len(zones) != 5 {
		t.Fatalf("expected 5 zones, got %d", len(zones))
	}
	if zones["Zone 1 (Active Recovery)"] != "92-111 bpm" {
		t.Errorf("zone 1 mismatch: %s", zones["Zone 1 (Active Recovery)"])
	}
	if !strings.HasSuffix(zones["Zone 5 (VO2 Max)"], "185 bpm") {
		t.Errorf("zone 5 should top out at max HR: %s", zones["Zone 5 (VO2 Max)"])
	}
}

func TestZoneFocus(t *testing.T) {
	tests := []struct {
		load float64
		want string
	}{
		{350, "Focus: Zone 1-2 (Recovery/Easy), limit Zone 4-5"},
		{250, "Focus: Zone 2-3 (Aerobic/Tempo), 1x Zone 4 session"},
		{50, "Focus: Zone 2-4 (Aerobic to Threshold), add intensity"},
	}
	for _, tt := range tests {
		if got := ZoneFocus(tt.load); got != tt.want {
			t.Errorf("ZoneFocus(%v) = %q, want %q", tt.load, got, tt.want)
		}
	}
}
