// internal/agents/crew.go
package agents

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sstent/fitcoach-go/internal/models"
	"github.com/sstent/fitcoach-go/internal/scoring"
)

// minResponseLength guards against degenerate one-word generations; anything
// shorter is replaced with the canned fallback.
const minResponseLength = 10

// Crew coordinates the three topic experts over a single Generator. Each
// request is one sequential pass; the crew holds no per-request state.
type Crew struct {
	generator Generator
	logger    *zap.SugaredLogger
}

func NewCrew(generator Generator, logger *zap.SugaredLogger) *Crew {
	return &Crew{generator: generator, logger: logger}
}

// DailyInsights runs every expert in fixed order against the snapshot and
// recent activity history, producing one insight per expert. A failed or
// empty generation degrades to that expert's deterministic fallback, so the
// result always has three insights.
func (c *Crew) DailyInsights(ctx context.Context, snapshot *models.MetricsSnapshot, activities []models.ActivityRecord) models.InsightsResponse {
	recovery := scoring.ScoreRecovery(snapshot)
	load := scoring.ScoreTrainingLoad(activities)

	insights := make([]models.Insight, 0, 3)
	for _, expert := range DailyExperts() {
		content := c.produce(ctx, expert, expert.DailyPrompt(snapshot, recovery, load),
			expert.FallbackText(snapshot, recovery, load))

		insights = append(insights, models.Insight{
			Title:     expert.InsightTitle,
			Content:   content,
			Category:  expert.Category,
			Agent:     string(expert.Type),
			Timestamp: time.Now(),
		})
	}

	c.logger.Infow("daily insights generated", "count", len(insights))
	return models.InsightsResponse{Insights: insights}
}

// Chat routes the message to one expert and produces a chat envelope. The
// routing decides attribution and fallback wording only; a generation
// failure never reaches the caller as an error.
func (c *Crew) Chat(ctx context.Context, snapshot *models.MetricsSnapshot, activities []models.ActivityRecord, message string) models.ChatResponse {
	recovery := scoring.ScoreRecovery(snapshot)
	load := scoring.ScoreTrainingLoad(activities)

	expert := ExpertFor(Route(message))
	c.logger.Debugw("chat routed", "agent", expert.Type, "message_len", len(message))

	response := c.produce(ctx, expert, expert.ChatPrompt(snapshot, recovery, load, message),
		expert.FallbackText(snapshot, recovery, load))

	return models.ChatResponse{
		Response:  response,
		AgentType: string(expert.Type),
		AgentName: expert.Name,
		Insights:  []models.Insight{},
		Timestamp: time.Now(),
	}
}

// produce runs one generation and falls back to the canned text on any
// failure or too-short output.
func (c *Crew) produce(ctx context.Context, expert Expert, prompt, fallback string) string {
	if c.generator == nil {
		return fallback
	}

	text, err := c.generator.Generate(ctx, prompt)
	if err != nil {
		c.logger.Warnw("generation failed, using fallback", "agent", expert.Type, "error", err)
		return fallback
	}
	if len(text) < minResponseLength {
		c.logger.Warnw("generation too short, using fallback", "agent", expert.Type, "length", len(text))
		return fallback
	}
	return text
}

// ErrorInsight builds the user-safe insight that accompanies every error
// envelope.
func ErrorInsight(detail string) models.Insight {
	return models.Insight{
		Title:     "System Notice",
		Content:   fmt.Sprintf("The AI fitness team is experiencing a brief issue (%s). Your data is secure and analysis will resume momentarily.", detail),
		Category:  models.CategoryError,
		Agent:     string(AgentSystem),
		Timestamp: time.Now(),
	}
}
