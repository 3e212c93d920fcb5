// internal/observability/metrics.go
package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	insightRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fitcoach",
		Subsystem: "requests",
		Name:      "daily_insights_total",
		Help:      "Number of daily-insight generations requested.",
	})

	chatRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fitcoach",
		Subsystem: "requests",
		Name:      "chat_total",
		Help:      "Number of chat turns requested.",
	})

	syncRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitcoach",
		Subsystem: "sync",
		Name:      "runs_total",
		Help:      "GarminDB sync runs by outcome.",
	}, []string{"outcome"})
)

func init() {
	prometheus.MustRegister(insightRequests, chatRequests, syncRuns)
}

// RecordInsightRequest counts one daily-insights request.
func RecordInsightRequest() {
	insightRequests.Inc()
}

// RecordChatRequest counts one chat request.
func RecordChatRequest() {
	chatRequests.Inc()
}

// RecordSyncRun counts one sync run by outcome.
func RecordSyncRun(success bool) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	syncRuns.WithLabelValues(outcome).Inc()
}
