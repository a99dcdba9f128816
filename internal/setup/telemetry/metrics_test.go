package telemetry_test

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/team-Roy/prototype-sub000/internal/setup/telemetry"
)

func TestMetricsRecord(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	metrics := telemetry.NewMetrics(reg)

	metrics.Vote("CREATED")
	metrics.Vote("CREATED")
	metrics.ScorePoints("POST", 10)
	metrics.ScorePoints("POST", 0)
	metrics.BadgeAwarded("TOP_FAN")
	metrics.QuestCompleted("DAILY")
	metrics.BatchRun("monthly", nil)
	metrics.BatchRun("monthly", errors.New("boom"))

	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 6, count)

	families, err := reg.Gather()
	require.NoError(t, err)

	values := map[string]float64{}
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			values[family.GetName()] += metric.GetCounter().GetValue()
		}
	}

	assert.InDelta(t, 2, values["lounge_votes_total"], 0)
	assert.InDelta(t, 10, values["lounge_score_points_total"], 0)
	assert.InDelta(t, 1, values["lounge_badges_awarded_total"], 0)
	assert.InDelta(t, 1, values["lounge_quests_completed_total"], 0)
	assert.InDelta(t, 2, values["lounge_batch_runs_total"], 0)
}

func TestNilMetricsIsNoop(t *testing.T) {
	t.Parallel()

	var metrics *telemetry.Metrics

	assert.NotPanics(t, func() {
		metrics.Vote("CREATED")
		metrics.ScorePoints("POST", 1)
		metrics.BadgeAwarded("TOP_FAN")
		metrics.QuestCompleted("DAILY")
		metrics.BatchRun("monthly", nil)
	})
}
