package handlers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onex-platform/omniintelligence/pkg/bus"
)

func TestReshapeFlatHookEvent(t *testing.T) {
	t.Run("flat fields nest under payload", func(t *testing.T) {
		in := []byte(`{
			"event_id": "6a1f5c1e-0000-4000-8000-000000000001",
			"event_type": "claude-hook-event",
			"schema_version": 1,
			"correlation_id": "corr-1",
			"session_id": "sess-1",
			"occurred_at": "2026-08-01T10:00:00Z",
			"hook_type": "post-tool",
			"description": "fix the parser crash"
		}`)

		out, err := ReshapeFlatHookEvent(in)
		require.NoError(t, err)

		env, err := bus.DecodeEnvelope(out)
		require.NoError(t, err)
		assert.Equal(t, "claude-hook-event", env.EventType)
		require.NotNil(t, env.SessionID)
		assert.Equal(t, "sess-1", *env.SessionID)

		var payload map[string]string
		require.NoError(t, json.Unmarshal(env.Payload, &payload))
		assert.Equal(t, "post-tool", payload["hook_type"])
		assert.Equal(t, "fix the parser crash", payload["description"])
	})

	t.Run("already nested messages pass through", func(t *testing.T) {
		env, err := bus.NewEnvelope(EventHookEvent, "corr-1", "sess-1",
			map[string]string{"hook_type": "post-tool"})
		require.NoError(t, err)
		in, err := env.Marshal()
		require.NoError(t, err)

		out, err := ReshapeFlatHookEvent(in)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})

	t.Run("missing identifiers are filled", func(t *testing.T) {
		out, err := ReshapeFlatHookEvent([]byte(`{"hook_type": "post-tool"}`))
		require.NoError(t, err)

		env, err := bus.DecodeEnvelope(out)
		require.NoError(t, err)
		require.NoError(t, env.Validate())
		assert.Equal(t, EventHookEvent, env.EventType)
		assert.Equal(t, 1, env.SchemaVersion)
		assert.NotEmpty(t, env.EventID)
		assert.NotEmpty(t, env.CorrelationID)
		assert.False(t, env.OccurredAt.IsZero())
	})

	t.Run("envelope-only message rejected", func(t *testing.T) {
		_, err := ReshapeFlatHookEvent([]byte(`{"event_type": "claude-hook-event"}`))
		require.Error(t, err)
	})

	t.Run("non-object rejected", func(t *testing.T) {
		_, err := ReshapeFlatHookEvent([]byte(`[1,2,3]`))
		require.Error(t, err)
	})
}
