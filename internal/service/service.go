// internal/service/service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sstent/fitcoach-go/internal/agents"
	"github.com/sstent/fitcoach-go/internal/models"
	"github.com/sstent/fitcoach-go/internal/observability"
)

// activityHistory is how many recent activities are fed to the training
// load scorer.
const activityHistory = 7

// Snapshotter supplies current metrics; satisfied by *garmindb.Reader.
type Snapshotter interface {
	LatestSnapshot(daysBack int) *models.MetricsSnapshot
	RecentActivities(limit int) []models.ActivityRecord
}

// Service dispatches request envelopes to the agent crew. Every invocation
// rebuilds its inputs from the store; there is no cross-request state.
type Service struct {
	store  Snapshotter
	crew   *agents.Crew
	logger *zap.SugaredLogger
}

func New(store Snapshotter, crew *agents.Crew, logger *zap.SugaredLogger) *Service {
	return &Service{store: store, crew: crew, logger: logger}
}

// Handle processes one raw request envelope and always returns a
// well-formed response envelope, marshalled. Malformed input, unknown
// request types, and upstream failures all map to envelopes, never to a
// missing or differently-shaped reply.
func (s *Service) Handle(ctx context.Context, raw []byte) []byte {
	var req models.Request
	if err := json.Unmarshal(raw, &req); err != nil {
		s.logger.Warnw("malformed request envelope", "error", err)
		return mustMarshal(errorEnvelope(fmt.Sprintf("invalid JSON in request: %v", err), nil))
	}
	return mustMarshal(s.Dispatch(ctx, &req))
}

// Dispatch routes a parsed request to the matching operation.
func (s *Service) Dispatch(ctx context.Context, req *models.Request) interface{} {
	switch req.RequestType {
	case models.RequestDailyInsights:
		return s.DailyInsights(ctx, req.Data)
	case models.RequestChat:
		return s.Chat(ctx, req.Data, req.Message)
	default:
		s.logger.Warnw("unknown request type", "request_type", req.RequestType)
		return errorEnvelope(
			fmt.Sprintf("unknown request type: %s", req.RequestType),
			[]string{models.RequestDailyInsights, models.RequestChat},
		)
	}
}

// DailyInsights generates the three daily insights. A nil snapshot in the
// request means "read fresh from the store".
func (s *Service) DailyInsights(ctx context.Context, snapshot *models.MetricsSnapshot) models.InsightsResponse {
	observability.RecordInsightRequest()
	snapshot, activities := s.resolveInputs(snapshot)
	return s.crew.DailyInsights(ctx, snapshot, activities)
}

// Chat answers one chat turn.
func (s *Service) Chat(ctx context.Context, snapshot *models.MetricsSnapshot, message string) models.ChatResponse {
	observability.RecordChatRequest()
	snapshot, activities := s.resolveInputs(snapshot)
	return s.crew.Chat(ctx, snapshot, activities, message)
}

// resolveInputs fills in whatever the caller did not supply. A caller
// snapshot is used as-is (the companion app may pass its own view of the
// data); activities always come from the store.
func (s *Service) resolveInputs(snapshot *models.MetricsSnapshot) (*models.MetricsSnapshot, []models.ActivityRecord) {
	if snapshot == nil {
		snapshot = s.store.LatestSnapshot(1)
	}
	if snapshot.Timestamp.IsZero() {
		snapshot.Timestamp = time.Now()
	}

	// The store returns newest first; the load scorer expects chronological
	// order so its trend window is the newest activities.
	activities := s.store.RecentActivities(activityHistory)
	for i, j := 0, len(activities)-1; i < j; i, j = i+1, j-1 {
		activities[i], activities[j] = activities[j], activities[i]
	}
	return snapshot, activities
}

func errorEnvelope(detail string, supported []string) models.ErrorResponse {
	return models.ErrorResponse{
		Error:          detail,
		SupportedTypes: supported,
		Insights:       []models.Insight{agents.ErrorInsight(detail)},
	}
}

// mustMarshal never fails for our envelope types; a marshal error still
// produces a minimal, valid error envelope by hand.
func mustMarshal(v interface{}) []byte {
	out, err := json.Marshal(v)
	if err != nil {
		return []byte(`{"error":"internal marshalling failure","insights":[]}`)
	}
	return out
}
