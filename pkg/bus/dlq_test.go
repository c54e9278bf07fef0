package bus_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onex-platform/omniintelligence/pkg/bus"
	"github.com/onex-platform/omniintelligence/test/util"
)

type redactingScrubber struct{}

func (redactingScrubber) Scrub(data []byte) []byte {
	return bytes.ReplaceAll(data, []byte("hunter2"), []byte("***"))
}

func TestDLQWriter(t *testing.T) {
	_, db := util.SetupTestDatabase(t)
	ctx := context.Background()
	store := bus.NewStore(db, 1)
	topic := bus.CommandTopic("test", "claude-hook-event")

	fetchDeadLetters := func(t *testing.T) []bus.DeadLetter {
		messages, err := store.Fetch(ctx, bus.DLQTopic(topic), 0, 0, 100)
		require.NoError(t, err)
		records := make([]bus.DeadLetter, 0, len(messages))
		for _, m := range messages {
			env, err := bus.DecodeEnvelope(m.Envelope)
			require.NoError(t, err)
			assert.Equal(t, "dead-letter", env.EventType)
			var record bus.DeadLetter
			require.NoError(t, json.Unmarshal(env.Payload, &record))
			records = append(records, record)
		}
		return records
	}

	t.Run("records failure context and metadata", func(t *testing.T) {
		writer := bus.NewDLQWriter(store, nil, map[string]string{"service": "omniintelligence", "pod_id": "pod-1"})

		original, err := bus.NewEnvelope("claude-hook-event", "corr-1", "sess-1", map[string]string{"k": "v"})
		require.NoError(t, err)
		data, err := original.Marshal()
		require.NoError(t, err)

		require.NoError(t, writer.Write(ctx, topic, "sess-1", data, bus.ErrorKindDomain, "pattern not found", 0))

		records := fetchDeadLetters(t)
		require.Len(t, records, 1)
		record := records[0]
		assert.Equal(t, topic, record.OriginalTopic)
		assert.Equal(t, bus.ErrorKindDomain, record.ErrorKind)
		assert.Equal(t, "pattern not found", record.ErrorMessage)
		assert.Equal(t, "pod-1", record.ServiceMetadata["pod_id"])
		assert.JSONEq(t, string(data), string(record.Original))
	})

	t.Run("threads the original correlation id", func(t *testing.T) {
		writer := bus.NewDLQWriter(store, nil, nil)

		original, err := bus.NewEnvelope("claude-hook-event", "corr-known", "", nil)
		require.NoError(t, err)
		original.Payload = json.RawMessage(`{"k":"v"}`)
		data, err := original.Marshal()
		require.NoError(t, err)

		require.NoError(t, writer.Write(ctx, topic, "", data, bus.ErrorKindTransient, "db down", 5))

		messages, err := store.Fetch(ctx, bus.DLQTopic(topic), 0, 0, 100)
		require.NoError(t, err)
		env, err := bus.DecodeEnvelope(messages[len(messages)-1].Envelope)
		require.NoError(t, err)
		assert.Equal(t, "corr-known", env.CorrelationID)
	})

	t.Run("unparseable original gets a fresh correlation id", func(t *testing.T) {
		writer := bus.NewDLQWriter(store, nil, nil)
		require.NoError(t, writer.Write(ctx, topic, "", []byte("not json"), bus.ErrorKindValidation, "decode failed", 0))

		messages, err := store.Fetch(ctx, bus.DLQTopic(topic), 0, 0, 100)
		require.NoError(t, err)
		env, err := bus.DecodeEnvelope(messages[len(messages)-1].Envelope)
		require.NoError(t, err)
		assert.NotEmpty(t, env.CorrelationID)

		// Non-JSON originals are preserved as a quoted string.
		var record bus.DeadLetter
		require.NoError(t, json.Unmarshal(env.Payload, &record))
		var quoted string
		require.NoError(t, json.Unmarshal(record.Original, &quoted))
		assert.Equal(t, "not json", quoted)
	})

	t.Run("scrubs envelope and error message", func(t *testing.T) {
		writer := bus.NewDLQWriter(store, redactingScrubber{}, nil)

		original, err := bus.NewEnvelope("claude-hook-event", "corr-2", "", map[string]string{"token": "hunter2"})
		require.NoError(t, err)
		data, err := original.Marshal()
		require.NoError(t, err)

		require.NoError(t, writer.Write(ctx, topic, "", data, bus.ErrorKindDomain, "rejected token hunter2", 1))

		records := fetchDeadLetters(t)
		record := records[len(records)-1]
		assert.NotContains(t, string(record.Original), "hunter2")
		assert.NotContains(t, record.ErrorMessage, "hunter2")
		assert.Contains(t, record.ErrorMessage, "***")
	})
}
