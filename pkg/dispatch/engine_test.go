package dispatch_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onex-platform/omniintelligence/ent"
	"github.com/onex-platform/omniintelligence/pkg/bus"
	"github.com/onex-platform/omniintelligence/pkg/config"
	"github.com/onex-platform/omniintelligence/pkg/dispatch"
	"github.com/onex-platform/omniintelligence/pkg/ledger"
	"github.com/onex-platform/omniintelligence/pkg/metrics"
	"github.com/onex-platform/omniintelligence/pkg/registry"
	"github.com/onex-platform/omniintelligence/test/util"
)

// invocationLog records handler calls across workers.
type invocationLog struct {
	mu     sync.Mutex
	events []string
}

func (l *invocationLog) add(eventID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, eventID)
}

func (l *invocationLog) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.events)
}

type engineFixture struct {
	client   *ent.Client
	store    *bus.Store
	engine   *dispatch.Engine
	topic    string
	log      *invocationLog
	failures map[string]error // event_type → error returned by the handler
}

// newEngineFixture wires a running engine over a real database and
// listener, with one idempotent contract on a two-partition topic.
func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()
	ctx := context.Background()
	client, db, dsn := util.SetupTestDatabaseWithDSN(t)

	busCfg := &config.BusConfig{
		TopicEnvPrefix:     "test",
		ConsumerGroup:      "omniintelligence",
		Partitions:         2,
		PollInterval:       100 * time.Millisecond,
		PollIntervalJitter: 20 * time.Millisecond,
	}
	dispatchCfg := &config.DispatchConfig{
		MaxRetries:     2,
		RetryBackoff:   20 * time.Millisecond,
		DrainTimeout:   5 * time.Second,
		FetchBatchSize: 16,
	}

	f := &engineFixture{
		client:   client,
		store:    bus.NewStore(db, busCfg.Partitions),
		topic:    bus.CommandTopic("test", "claude-hook-event"),
		log:      &invocationLog{},
		failures: make(map[string]error),
	}

	handler := func(_ context.Context, _ *registry.MessageContext, _ *ent.Tx, env *bus.Envelope) error {
		if err, ok := f.failures[env.EventType]; ok {
			return err
		}
		f.log.add(env.EventID)
		return nil
	}

	reg := registry.New()
	require.NoError(t, reg.Register(&registry.Contract{
		Name:            "hook-event-ingestion",
		Routing:         registry.RouteByEventType,
		SubscribeTopics: []string{f.topic},
		Idempotent:      true,
		Bindings: []registry.Binding{
			{Trigger: "claude-hook-event", Handler: handler},
			{Trigger: "poison-event", Handler: handler},
			{Trigger: "flaky-event", Handler: handler},
		},
	}))
	require.NoError(t, reg.Wire(nil))

	listener := bus.NewListener(dsn)
	require.NoError(t, listener.Start(ctx))
	t.Cleanup(func() { listener.Stop(context.Background()) })

	dlq := bus.NewDLQWriter(f.store, nil, nil)
	f.engine = dispatch.NewEngine(client, f.store, listener, reg, ledger.New(),
		dlq, dispatchCfg, busCfg, metrics.NewNop())
	require.NoError(t, f.engine.Start(ctx))
	t.Cleanup(f.engine.Stop)

	return f
}

func (f *engineFixture) publish(t *testing.T, eventType, key string) *bus.Envelope {
	t.Helper()
	env, err := bus.NewEnvelope(eventType, "corr-1", key, map[string]string{"k": "v"})
	require.NoError(t, err)
	data, err := env.Marshal()
	require.NoError(t, err)
	_, err = f.store.Append(context.Background(), f.topic, key, data)
	require.NoError(t, err)
	return env
}

func (f *engineFixture) deadLetters(t *testing.T) []bus.DeadLetter {
	t.Helper()
	ctx := context.Background()
	var records []bus.DeadLetter
	for p := 0; p < 2; p++ {
		messages, err := f.store.Fetch(ctx, bus.DLQTopic(f.topic), p, 0, 100)
		require.NoError(t, err)
		for _, m := range messages {
			env, err := bus.DecodeEnvelope(m.Envelope)
			require.NoError(t, err)
			var record bus.DeadLetter
			require.NoError(t, json.Unmarshal(env.Payload, &record))
			records = append(records, record)
		}
	}
	return records
}

func TestEngineDeliversAndCommits(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	env := f.publish(t, "claude-hook-event", "sess-1")

	require.Eventually(t, func() bool {
		return f.log.count() == 1
	}, 5*time.Second, 20*time.Millisecond, "handler should run once")

	t.Run("offset committed", func(t *testing.T) {
		partition := bus.PartitionFor("sess-1", 2)
		require.Eventually(t, func() bool {
			committed, err := f.store.CommittedOffset(ctx, "omniintelligence", f.topic, partition)
			return err == nil && committed > 0
		}, 5*time.Second, 20*time.Millisecond)
	})

	t.Run("idempotency claim recorded", func(t *testing.T) {
		count, err := f.client.IdempotencyRecord.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("duplicate append is skipped", func(t *testing.T) {
		data, err := env.Marshal()
		require.NoError(t, err)
		_, err = f.store.Append(ctx, f.topic, "sess-1", data)
		require.NoError(t, err)

		partition := bus.PartitionFor("sess-1", 2)
		var before int64
		before, err = f.store.CommittedOffset(ctx, "omniintelligence", f.topic, partition)
		require.NoError(t, err)

		require.Eventually(t, func() bool {
			committed, err := f.store.CommittedOffset(ctx, "omniintelligence", f.topic, partition)
			return err == nil && committed > before
		}, 5*time.Second, 20*time.Millisecond, "duplicate should commit without re-invoking")
		assert.Equal(t, 1, f.log.count())
	})
}

func TestEnginePermanentFailureDeadLetters(t *testing.T) {
	f := newEngineFixture(t)
	f.failures["poison-event"] = registry.Domain(errors.New("pattern not found"))

	f.publish(t, "poison-event", "sess-2")

	require.Eventually(t, func() bool {
		return len(f.deadLetters(t)) == 1
	}, 5*time.Second, 20*time.Millisecond)

	records := f.deadLetters(t)
	assert.Equal(t, bus.ErrorKindDomain, records[0].ErrorKind)
	assert.Equal(t, f.topic, records[0].OriginalTopic)

	// The offset moved past the poison message.
	partition := bus.PartitionFor("sess-2", 2)
	require.Eventually(t, func() bool {
		committed, err := f.store.CommittedOffset(context.Background(), "omniintelligence", f.topic, partition)
		return err == nil && committed > 0
	}, 5*time.Second, 20*time.Millisecond)
}

func TestEngineTransientFailureRetriesThenDeadLetters(t *testing.T) {
	f := newEngineFixture(t)
	f.failures["flaky-event"] = registry.Transient(errors.New("db timeout"))

	f.publish(t, "flaky-event", "sess-3")

	// MaxRetries is 2; after the cap the message dead-letters with the
	// transient kind and the partition moves on.
	require.Eventually(t, func() bool {
		records := f.deadLetters(t)
		return len(records) == 1 && records[0].ErrorKind == bus.ErrorKindTransient
	}, 10*time.Second, 50*time.Millisecond)

	t.Run("subsequent messages still flow", func(t *testing.T) {
		f.publish(t, "claude-hook-event", "sess-3")
		require.Eventually(t, func() bool {
			return f.log.count() == 1
		}, 5*time.Second, 20*time.Millisecond)
	})
}

func TestEngineMalformedMessageDeadLetters(t *testing.T) {
	f := newEngineFixture(t)

	_, err := f.store.Append(context.Background(), f.topic, "", []byte("not an envelope"))
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		records := f.deadLetters(t)
		return len(records) == 1 && records[0].ErrorKind == bus.ErrorKindValidation
	}, 5*time.Second, 20*time.Millisecond)
}

func TestEngineOrphanPolicy(t *testing.T) {
	f := newEngineFixture(t)

	f.publish(t, "unknown-event", "sess-4")

	require.Eventually(t, func() bool {
		records := f.deadLetters(t)
		return len(records) == 1
	}, 5*time.Second, 20*time.Millisecond)

	records := f.deadLetters(t)
	assert.Equal(t, bus.ErrorKindValidation, records[0].ErrorKind)
	assert.Contains(t, records[0].ErrorMessage, "unknown-event")
	assert.Zero(t, f.log.count())
}

func TestEngineHealth(t *testing.T) {
	f := newEngineFixture(t)
	h := f.engine.Health()
	assert.Equal(t, 2, h.TotalWorkers)
	assert.Zero(t, h.HaltedWorkers)
}
