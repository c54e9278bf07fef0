package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistersAllCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.PublishedTotal.WithLabelValues("test.onex.evt.omniintelligence.pattern-stored.v1").Inc()
	m.DeadLetterTotal.WithLabelValues("test.onex.cmd.omniintelligence.claude-hook-event.v1", "validation").Inc()
	m.DispatchTotal.WithLabelValues("hook-event-ingestion", "ok").Add(3)
	m.PublishQueueDepth.Set(7)

	assert.Equal(t, float64(3), testutil.ToFloat64(
		m.DispatchTotal.WithLabelValues("hook-event-ingestion", "ok")))
	assert.Equal(t, float64(7), testutil.ToFloat64(m.PublishQueueDepth))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestNopMetricsRecordWithoutRegistry(t *testing.T) {
	m := NewNop()
	// Safe to record against; nothing is exported anywhere.
	m.DuplicateHitsTotal.WithLabelValues("hook-event-ingestion").Inc()
	m.FSMTransitionsTotal.WithLabelValues("ingestion").Inc()
	m.QualityDecayTotal.Inc()
	assert.Equal(t, float64(1), testutil.ToFloat64(m.QualityDecayTotal))
}
