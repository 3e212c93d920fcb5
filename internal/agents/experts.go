// internal/agents/experts.go
package agents

import (
	"fmt"
	"strings"

	"github.com/sstent/fitcoach-go/internal/models"
	"github.com/sstent/fitcoach-go/internal/scoring"
)

// Expert is one fixed topic-expert profile. The three experts differ only in
// framing text; generation itself goes through the injected Generator.
type Expert struct {
	Type         AgentType
	Name         string
	Role         string
	Goal         string
	Backstory    string
	InsightTitle string
	Category     string
}

var (
	dataAnalyst = Expert{
		Type: AgentDataAnalyst,
		Name: "Data Analyst",
		Role: "Fitness Data Analyst",
		Goal: "Analyze fitness and health metrics to identify patterns, trends, and actionable insights",
		Backstory: "You are an expert sports scientist and data analyst with 15+ years of experience " +
			"analyzing fitness data for elite athletes and fitness enthusiasts. You excel at finding " +
			"meaningful patterns in heart rate, sleep, activity, and recovery data, and your analysis " +
			"is always backed by sports science principles and presented in clear, actionable terms.",
		InsightTitle: "Data Analysis Insights",
		Category:     models.CategoryAnalysis,
	}

	fitnessCoach = Expert{
		Type: AgentFitnessCoach,
		Name: "Fitness Coach",
		Role: "AI Fitness Coach",
		Goal: "Provide personalized, motivating training recommendations based on scientific principles",
		Backstory: "You are a certified personal trainer and exercise physiologist with expertise in " +
			"training periodization and exercise prescription. You provide practical, actionable advice " +
			"tailored to each individual's fitness level, goals, and current state. You are encouraging " +
			"but realistic, always prioritizing safety and sustainable progress.",
		InsightTitle: "Coaching Recommendations",
		Category:     models.CategoryRecommendation,
	}

	healthMonitor = Expert{
		Type: AgentHealthMonitor,
		Name: "Health Monitor",
		Role: "Health & Wellness Monitor",
		Goal: "Monitor health indicators, identify potential concerns, and promote optimal wellness",
		Backstory: "You are a health monitoring specialist with deep knowledge of exercise physiology, " +
			"recovery science, and preventive health. You watch for signs of overtraining, poor recovery, " +
			"or other health concerns and provide early, evidence-based warnings. You are cautious but " +
			"not alarmist, focusing on preventive care and long-term wellness.",
		InsightTitle: "Health & Wellness Monitor",
		Category:     models.CategoryHealth,
	}
)

// ExpertFor returns the profile for an agent type. Unknown types fall back
// to the fitness coach, matching the router's default.
func ExpertFor(agentType AgentType) Expert {
	switch agentType {
	case AgentDataAnalyst:
		return dataAnalyst
	case AgentHealthMonitor:
		return healthMonitor
	default:
		return fitnessCoach
	}
}

// DailyExperts is the fixed sequential order for daily-insight generation.
func DailyExperts() []Expert {
	return []Expert{dataAnalyst, fitnessCoach, healthMonitor}
}

// metricLine renders an optional metric for a prompt, keeping "unknown"
// visibly distinct from zero.
func metricLine(v *int, unit string) string {
	if v == nil {
		return "N/A"
	}
	if unit == "" {
		return fmt.Sprintf("%d", *v)
	}
	return fmt.Sprintf("%d %s", *v, unit)
}

func metricsContext(snapshot *models.MetricsSnapshot, recovery models.RecoveryAssessment, load models.TrainingLoadAssessment) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Steps today: %d\n", snapshot.Steps)
	fmt.Fprintf(&b, "Average heart rate: %s\n", metricLine(snapshot.AverageHeartRate, "bpm"))
	fmt.Fprintf(&b, "Resting heart rate: %s\n", metricLine(snapshot.RestingHeartRate, "bpm"))
	fmt.Fprintf(&b, "Sleep score: %s/100\n", metricLine(snapshot.SleepScore, ""))
	fmt.Fprintf(&b, "Stress level: %s/100\n", metricLine(snapshot.StressLevel, ""))
	fmt.Fprintf(&b, "Body battery: %s/100\n", metricLine(snapshot.BodyBattery, ""))
	fmt.Fprintf(&b, "Recovery status: %s recovery", recovery.Label)
	if recovery.Label != models.RecoveryUnavailable {
		fmt.Fprintf(&b, " (score %d/100)", recovery.Score)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "7-day training load: %.1f points (%s, trend %s)\n", load.Load, load.Label, load.Trend)

	if act := snapshot.LastActivity; act != nil {
		fmt.Fprintf(&b, "Last activity: %s (%s, %d min, avg %d bpm)\n",
			act.Name, act.Sport, act.DurationSeconds/60, act.AverageHeartRate)
	} else {
		b.WriteString("Last activity: none recorded\n")
	}

	return b.String()
}

// DailyPrompt builds the task prompt one expert sees during daily-insight
// generation.
func (e Expert) DailyPrompt(snapshot *models.MetricsSnapshot, recovery models.RecoveryAssessment, load models.TrainingLoadAssessment) string {
	var task string
	switch e.Type {
	case AgentDataAnalyst:
		task = "Provide 2-3 key analytical insights about patterns, performance trends, and notable " +
			"observations. Focus on what the data reveals about the user's current fitness state and trajectory."
	case AgentHealthMonitor:
		task = "Assess the health indicators. Monitor for signs of overtraining or insufficient recovery, " +
			"sleep quality concerns, and stress management needs. Provide wellness recommendations and flag " +
			"any concerns that need attention."
	default:
		task = "Provide specific, actionable recommendations for today's optimal training approach, " +
			"including intensity and duration suggestions, adjusted for the current recovery status. " +
			"Be encouraging while being realistic."
	}

	return fmt.Sprintf(`%s

Your role: %s.
Your goal: %s.

Today's fitness metrics:
%s
%s

Keep the response focused, practical, and encouraging. Plain text only.`,
		e.Backstory, e.Role, e.Goal,
		metricsContext(snapshot, recovery, load), task)
}

// ChatPrompt builds the prompt for a single chat turn answered by this
// expert.
func (e Expert) ChatPrompt(snapshot *models.MetricsSnapshot, recovery models.RecoveryAssessment, load models.TrainingLoadAssessment, message string) string {
	return fmt.Sprintf(`%s

Your role: %s.

The user asked: %q

Current fitness context:
%s
Respond as the %s with your specific expertise. Directly address the question,
use the current fitness data for context, offer actionable advice, and keep a
conversational, supportive tone. Plain text only.`,
		e.Backstory, e.Role, message,
		metricsContext(snapshot, recovery, load), e.Name)
}

// FallbackText is the deterministic reply used when upstream generation
// fails or returns nothing. Built from the scoring layer so the user still
// gets something actionable.
func (e Expert) FallbackText(snapshot *models.MetricsSnapshot, recovery models.RecoveryAssessment, load models.TrainingLoadAssessment) string {
	switch e.Type {
	case AgentDataAnalyst:
		return fmt.Sprintf(
			"Looking at your current metrics: %d steps today with %s recovery and a 7-day training load of %.1f points (%s). %s",
			snapshot.Steps, strings.ToLower(string(recovery.Label)), load.Load, load.Label, scoring.ZoneFocus(load.Load))
	case AgentHealthMonitor:
		return fmt.Sprintf(
			"I'm monitoring your health indicators. Your current recovery status is %s with a sleep score of %s/100. %s",
			strings.ToLower(string(recovery.Label)), metricLine(snapshot.SleepScore, ""), recovery.Advice)
	default:
		return fmt.Sprintf(
			"Based on your current status (%s recovery), here's my take: %s Every step counts - you've got %d steps today!",
			strings.ToLower(string(recovery.Label)), load.Advice, snapshot.Steps)
	}
}
