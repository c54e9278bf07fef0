package bus_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onex-platform/omniintelligence/pkg/bus"
	"github.com/onex-platform/omniintelligence/pkg/config"
	"github.com/onex-platform/omniintelligence/pkg/metrics"
	"github.com/onex-platform/omniintelligence/test/util"
)

func publisherConfig(buffer int) *config.PublisherConfig {
	return &config.PublisherConfig{
		BufferHighWaterMark: buffer,
		RetryBase:           10 * time.Millisecond,
		RetryCap:            100 * time.Millisecond,
		MaxAttempts:         3,
	}
}

func TestPublisherDeliversToBus(t *testing.T) {
	_, db := util.SetupTestDatabase(t)
	ctx := context.Background()
	store := bus.NewStore(db, 2)
	dlq := bus.NewDLQWriter(store, nil, nil)
	topic := bus.EventTopic("test", "pattern-stored")

	pub := bus.NewPublisher(store, dlq, publisherConfig(100), metrics.NewNop())
	pub.Start(ctx)
	defer pub.Stop()

	env, err := bus.NewEnvelope("pattern-stored", "corr-1", "sess-1", map[string]string{"pattern_id": "p1"})
	require.NoError(t, err)
	require.NoError(t, pub.Publish(topic, "sess-1", env))

	require.Eventually(t, func() bool {
		messages, err := store.Fetch(ctx, topic, bus.PartitionFor("sess-1", 2), 0, 10)
		return err == nil && len(messages) == 1
	}, 5*time.Second, 20*time.Millisecond, "published message should land on the bus")

	messages, err := store.Fetch(ctx, topic, bus.PartitionFor("sess-1", 2), 0, 10)
	require.NoError(t, err)
	decoded, err := bus.DecodeEnvelope(messages[0].Envelope)
	require.NoError(t, err)
	assert.Equal(t, env.EventID, decoded.EventID)
}

func TestPublisherStopFlushesQueue(t *testing.T) {
	_, db := util.SetupTestDatabase(t)
	ctx := context.Background()
	store := bus.NewStore(db, 1)
	dlq := bus.NewDLQWriter(store, nil, nil)
	topic := bus.EventTopic("test", "pattern-promoted")

	pub := bus.NewPublisher(store, dlq, publisherConfig(100), metrics.NewNop())
	pub.Start(ctx)

	for i := 0; i < 10; i++ {
		env, err := bus.NewEnvelope("pattern-promoted", "", "", map[string]int{"n": i})
		require.NoError(t, err)
		require.NoError(t, pub.Publish(topic, "", env))
	}
	pub.Stop()

	messages, err := store.Fetch(ctx, topic, 0, 0, 100)
	require.NoError(t, err)
	assert.Len(t, messages, 10)
}

func TestPublisherOverflowRoutesToDLQ(t *testing.T) {
	_, db := util.SetupTestDatabase(t)
	ctx := context.Background()
	store := bus.NewStore(db, 1)
	dlq := bus.NewDLQWriter(store, nil, nil)
	topic := bus.EventTopic("test", "pattern-stored")

	// Never started, so the queue only drains at Stop. Capacity one makes
	// the second publish overflow.
	pub := bus.NewPublisher(store, dlq, publisherConfig(1), metrics.NewNop())

	first, err := bus.NewEnvelope("pattern-stored", "corr-1", "", map[string]int{"n": 1})
	require.NoError(t, err)
	require.NoError(t, pub.Publish(topic, "", first))

	second, err := bus.NewEnvelope("pattern-stored", "corr-2", "", map[string]int{"n": 2})
	require.NoError(t, err)
	require.NoError(t, pub.Publish(topic, "", second))

	deadLetters, err := store.Fetch(ctx, bus.DLQTopic(topic), 0, 0, 10)
	require.NoError(t, err)
	require.Len(t, deadLetters, 1)
	env, err := bus.DecodeEnvelope(deadLetters[0].Envelope)
	require.NoError(t, err)
	assert.Equal(t, "corr-2", env.CorrelationID)
}

func TestPublisherRejectsAfterStop(t *testing.T) {
	_, db := util.SetupTestDatabase(t)
	store := bus.NewStore(db, 1)
	dlq := bus.NewDLQWriter(store, nil, nil)

	pub := bus.NewPublisher(store, dlq, publisherConfig(10), metrics.NewNop())
	pub.Start(context.Background())
	pub.Stop()

	env, err := bus.NewEnvelope("pattern-stored", "", "", map[string]int{"n": 1})
	require.NoError(t, err)
	err = pub.Publish(bus.EventTopic("test", "pattern-stored"), "", env)
	require.ErrorIs(t, err, bus.ErrPublisherStopped)
}
