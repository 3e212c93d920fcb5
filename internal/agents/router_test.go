package agents

import "testing"

func TestRoute(t *testing.T) {
	tests := []struct {
		message string
		want    AgentType
	}{
		{"Show me my step trends this month", AgentDataAnalyst},
		{"compare my progress to last week", AgentDataAnalyst},
		{"How's my recovery today?", AgentHealthMonitor},
		{"I feel tired, should I train?", AgentHealthMonitor},
		{"am i overtraining?", AgentHealthMonitor},
		{"What workout should I do today?", AgentFitnessCoach},
		{"give me a session plan", AgentFitnessCoach},
		{"", AgentFitnessCoach},
	}
	for _, tt := range tests {
		if got := Route(tt.message); got != tt.want {
			t.Errorf("Route(%q) = %s, want %s", tt.message, got, tt.want)
		}
	}
}

func TestRoute_HealthBeatsData(t *testing.T) {
	// "stress" (health) and "trend" (data) in one message: health wins.
	if got := Route("is this stress trend something to worry about?"); got != AgentHealthMonitor {
		t.Errorf("got %s, want %s", got, AgentHealthMonitor)
	}
}

func TestRoute_CaseInsensitive(t *testing.T) {
	if got := Route("MY SLEEP WAS TERRIBLE"); got != AgentHealthMonitor {
		t.Errorf("got %s, want %s", got, AgentHealthMonitor)
	}
}

func TestExpertFor_UnknownFallsBackToCoach(t *testing.T) {
	if got := ExpertFor(AgentType("bogus")); got.Type != AgentFitnessCoach {
		t.Errorf("got %s, want %s", got.Type, AgentFitnessCoach)
	}
}
