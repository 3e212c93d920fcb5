// internal/models/envelope.go
package models

import "time"

// Request envelope consumed from the companion app.
type Request struct {
	RequestType string           `json:"request_type"`
	Data        *MetricsSnapshot `json:"data,omitempty"`
	Message     string           `json:"message,omitempty"`
}

// Supported request types.
const (
	RequestDailyInsights = "daily_insights"
	RequestChat          = "chat"
)

// InsightsResponse is the envelope for a daily_insights request.
type InsightsResponse struct {
	Insights []Insight `json:"insights"`
}

// ChatResponse is the envelope for a chat request.
type ChatResponse struct {
	Response  string    `json:"response"`
	AgentType string    `json:"agent_type"`
	AgentName string    `json:"agent_name"`
	Insights  []Insight `json:"insights"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorResponse is the envelope for any failed request. Error carries the
// diagnostic string; Insights always holds at least one user-safe fallback so
// the app never has to render a bare error.
type ErrorResponse struct {
	Error          string    `json:"error"`
	SupportedTypes []string  `json:"supported_types,omitempty"`
	Insights       []Insight `json:"insights"`
}

// SyncResult reports the outcome of a GarminDB resync run.
type SyncResult struct {
	Success  bool      `json:"success"`
	Message  string    `json:"message"`
	LastSync time.Time `json:"lastSync"`
	Output   string    `json:"output,omitempty"`
}

// StoreStatus reports GarminDB connectivity for the /api/status endpoint.
type StoreStatus struct {
	Connected        bool     `json:"connected"`
	Status           string   `json:"status"`
	SetupRequired    bool     `json:"setup_required"`
	HasData          bool     `json:"has_data"`
	DataCount        int      `json:"data_count,omitempty"`
	MissingDatabases []string `json:"missing_databases,omitempty"`
	Path             string   `json:"path"`
}

// WeeklySummary aggregates the trailing seven days of activity.
type WeeklySummary struct {
	DailySteps    []DailySteps `json:"weekly_steps"`
	ActivityCount int          `json:"activity_count"`
	AvgDistance   float64      `json:"avg_distance"`
	TotalCalories int          `json:"total_calories"`
	Period        string       `json:"period"`
	DataSource    string       `json:"dataSource"`
}

// DailySteps is one day's step total inside a WeeklySummary.
type DailySteps struct {
	Day   string `json:"day"`
	Steps int    `json:"steps"`
}
