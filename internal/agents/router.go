// internal/agents/router.go
package agents

import "strings"

// AgentType identifies which topic expert answers a message.
type AgentType string

const (
	AgentDataAnalyst   AgentType = "data_analyst"
	AgentFitnessCoach  AgentType = "fitness_coach"
	AgentHealthMonitor AgentType = "health_monitor"
	AgentSystem        AgentType = "system"
)

// Health wording is checked before data wording: a message like "is this
// stress trend normal?" must reach the health monitor, not the analyst.
var healthKeywords = []string{
	"health", "concern", "worry", "overtraining", "sick", "tired",
	"rest", "sleep", "stress", "recovery", "wellness",
}

var dataKeywords = []string{
	"data", "trend", "pattern", "analysis", "stats", "numbers",
	"chart", "graph", "compare", "progress",
}

// Route picks the topic expert for a free-text message. Priority order is
// fixed: health > data > coaching default.
func Route(message string) AgentType {
	lower := strings.ToLower(message)

	if containsAny(lower, healthKeywords) {
		return AgentHealthMonitor
	}
	if containsAny(lower, dataKeywords) {
		return AgentDataAnalyst
	}
	return AgentFitnessCoach
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
