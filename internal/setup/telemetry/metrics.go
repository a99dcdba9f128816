package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lounge"

// Metrics holds the engine's Prometheus collectors.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	votes           *prometheus.CounterVec
	scorePoints     *prometheus.CounterVec
	badgesAwarded   *prometheus.CounterVec
	questsCompleted *prometheus.CounterVec
	batchRuns       *prometheus.CounterVec
}

// NewMetrics registers the engine collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		votes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "votes_total",
			Help:      "Votes cast, by outcome.",
		}, []string{"outcome"}),
		scorePoints: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "score_points_total",
			Help:      "Score points awarded, by category.",
		}, []string{"category"}),
		badgesAwarded: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "badges_awarded_total",
			Help:      "Badges newly granted, by badge type.",
		}, []string{"badge_type"}),
		questsCompleted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quests_completed_total",
			Help:      "Quest completions, by quest type.",
		}, []string{"quest_type"}),
		batchRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batch_runs_total",
			Help:      "Batch job runs, by job and result.",
		}, []string{"job", "result"}),
	}
}

// Vote counts a vote outcome.
func (m *Metrics) Vote(outcome string) {
	if m == nil {
		return
	}
	m.votes.WithLabelValues(outcome).Inc()
}

// ScorePoints adds awarded points to a category.
func (m *Metrics) ScorePoints(category string, points int64) {
	if m == nil || points <= 0 {
		return
	}
	m.scorePoints.WithLabelValues(category).Add(float64(points))
}

// BadgeAwarded counts a badge the user did not hold before.
func (m *Metrics) BadgeAwarded(badgeType string) {
	if m == nil {
		return
	}
	m.badgesAwarded.WithLabelValues(badgeType).Inc()
}

// QuestCompleted counts a quest completion.
func (m *Metrics) QuestCompleted(questType string) {
	if m == nil {
		return
	}
	m.questsCompleted.WithLabelValues(questType).Inc()
}

// BatchRun counts a batch job run. A nil err is recorded as success.
func (m *Metrics) BatchRun(job string, err error) {
	if m == nil {
		return
	}

	result := "success"
	if err != nil {
		result = "failure"
	}
	m.batchRuns.WithLabelValues(job, result).Inc()
}
