package agents

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sstent/fitcoach-go/internal/models"
)

type stubGenerator struct {
	response string
	err      error
	prompts  []string
}

func (s *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.response, s.err
}

func testSnapshot() *models.MetricsSnapshot {
	sleep, stress, battery := 80, 25, 85
	return &models.MetricsSnapshot{
		Steps:       5000,
		SleepScore:  &sleep,
		StressLevel: &stress,
		BodyBattery: &battery,
		DataSource:  models.SourceGarminDB,
	}
}

func TestDailyInsights_ThreeInsightsInOrder(t *testing.T) {
	gen := &stubGenerator{response: "A detailed and helpful analysis of the day."}
	crew := NewCrew(gen, zap.NewNop().Sugar())

	got := crew.DailyInsights(context.Background(), testSnapshot(), nil)

	require.Len(t, got.Insights, 3)
	assert.Equal(t, models.CategoryAnalysis, got.Insights[0].Category)
	assert.Equal(t, models.CategoryRecommendation, got.Insights[1].Category)
	assert.Equal(t, models.CategoryHealth, got.Insights[2].Category)
	assert.Len(t, gen.prompts, 3)
	for _, insight := range got.Insights {
		assert.NotEmpty(t, insight.Title)
		assert.NotEmpty(t, insight.Content)
		assert.False(t, insight.Timestamp.IsZero())
	}
}

func TestDailyInsights_FallbackOnGenerationFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("upstream unavailable")}
	crew := NewCrew(gen, zap.NewNop().Sugar())

	got := crew.DailyInsights(context.Background(), testSnapshot(), nil)

	require.Len(t, got.Insights, 3)
	for _, insight := range got.Insights {
		assert.NotEmpty(t, insight.Content, "fallback content must never be empty")
	}
	// Coach fallback interpolates the step count.
	assert.Contains(t, got.Insights[1].Content, "5000 steps")
}

func TestDailyInsights_FallbackOnShortOutput(t *testing.T) {
	gen := &stubGenerator{response: "ok"}
	crew := NewCrew(gen, zap.NewNop().Sugar())

	got := crew.DailyInsights(context.Background(), testSnapshot(), nil)

	for _, insight := range got.Insights {
		assert.NotEqual(t, "ok", insight.Content)
	}
}

func TestChat_RoutesToHealthMonitor(t *testing.T) {
	gen := &stubGenerator{err: errors.New("down")}
	crew := NewCrew(gen, zap.NewNop().Sugar())

	got := crew.Chat(context.Background(), testSnapshot(), nil, "How's my recovery today?")

	assert.Equal(t, string(AgentHealthMonitor), got.AgentType)
	assert.Equal(t, "Health Monitor", got.AgentName)
	assert.NotEmpty(t, got.Response)
	assert.NotNil(t, got.Insights)
	assert.Empty(t, got.Insights)
}

func TestChat_PromptCarriesMetricsContext(t *testing.T) {
	gen := &stubGenerator{response: "Here is a sufficiently long coaching answer."}
	crew := NewCrew(gen, zap.NewNop().Sugar())

	crew.Chat(context.Background(), testSnapshot(), nil, "What workout should I do?")

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "Steps today: 5000")
	assert.Contains(t, gen.prompts[0], "Sleep score: 80/100")
}

func TestChat_NilGeneratorStillAnswers(t *testing.T) {
	crew := NewCrew(nil, zap.NewNop().Sugar())

	got := crew.Chat(context.Background(), testSnapshot(), nil, "hello there")

	assert.NotEmpty(t, got.Response)
}

func TestMetricsContext_MissingFieldsRenderAsNA(t *testing.T) {
	gen := &stubGenerator{response: strings.Repeat("x", 50)}
	crew := NewCrew(gen, zap.NewNop().Sugar())

	crew.Chat(context.Background(), &models.MetricsSnapshot{Steps: 100}, nil, "how are my numbers?")

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "Sleep score: N/A/100")
	assert.NotContains(t, gen.prompts[0], "Sleep score: 0/100")
}
