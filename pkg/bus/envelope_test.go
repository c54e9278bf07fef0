package bus

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnvelope(t *testing.T) {
	t.Run("fills identifiers and defaults", func(t *testing.T) {
		env, err := NewEnvelope("pattern-stored", "corr-1", "sess-1", map[string]string{"k": "v"})
		require.NoError(t, err)

		assert.NotEmpty(t, env.EventID)
		assert.Equal(t, "pattern-stored", env.EventType)
		assert.Equal(t, 1, env.SchemaVersion)
		assert.Equal(t, "corr-1", env.CorrelationID)
		require.NotNil(t, env.SessionID)
		assert.Equal(t, "sess-1", *env.SessionID)
		assert.False(t, env.OccurredAt.IsZero())
	})

	t.Run("empty session id stays null", func(t *testing.T) {
		env, err := NewEnvelope("pattern-stored", "corr-1", "", nil)
		require.NoError(t, err)
		assert.Nil(t, env.SessionID)
	})

	t.Run("empty correlation id gets a fresh one", func(t *testing.T) {
		env, err := NewEnvelope("pattern-stored", "", "", nil)
		require.NoError(t, err)
		assert.NotEmpty(t, env.CorrelationID)
	})

	t.Run("unmarshalable payload fails synchronously", func(t *testing.T) {
		_, err := NewEnvelope("pattern-stored", "corr-1", "", make(chan int))
		require.Error(t, err)
	})
}

func TestEnvelopeValidate(t *testing.T) {
	valid := func(t *testing.T) *Envelope {
		env, err := NewEnvelope("pattern-stored", "corr-1", "", map[string]string{"k": "v"})
		require.NoError(t, err)
		return env
	}

	t.Run("fresh envelope validates", func(t *testing.T) {
		require.NoError(t, valid(t).Validate())
	})

	t.Run("event_id must be a UUID", func(t *testing.T) {
		env := valid(t)
		env.EventID = "not-a-uuid"
		err := env.Validate()
		require.ErrorIs(t, err, ErrInvalidEnvelope)
	})

	t.Run("schema_version must be positive", func(t *testing.T) {
		env := valid(t)
		env.SchemaVersion = 0
		require.ErrorIs(t, env.Validate(), ErrInvalidEnvelope)
	})

	t.Run("payload is required", func(t *testing.T) {
		env := valid(t)
		env.Payload = nil
		require.ErrorIs(t, env.Validate(), ErrInvalidEnvelope)
	})
}

func TestDecodeEnvelope(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		env, err := NewEnvelope("session-outcome", "corr-1", "sess-1", map[string]int{"n": 3})
		require.NoError(t, err)
		data, err := env.Marshal()
		require.NoError(t, err)

		decoded, err := DecodeEnvelope(data)
		require.NoError(t, err)
		assert.Equal(t, env.EventID, decoded.EventID)
		assert.Equal(t, env.EventType, decoded.EventType)
		assert.JSONEq(t, string(env.Payload), string(decoded.Payload))
	})

	t.Run("unknown envelope fields rejected", func(t *testing.T) {
		env, err := NewEnvelope("session-outcome", "corr-1", "", map[string]int{"n": 3})
		require.NoError(t, err)
		data, err := env.Marshal()
		require.NoError(t, err)

		var loose map[string]any
		require.NoError(t, json.Unmarshal(data, &loose))
		loose["surprise"] = true
		data, err = json.Marshal(loose)
		require.NoError(t, err)

		_, err = DecodeEnvelope(data)
		require.ErrorIs(t, err, ErrInvalidEnvelope)
	})

	t.Run("unknown payload fields pass through", func(t *testing.T) {
		env, err := NewEnvelope("session-outcome", "corr-1", "",
			map[string]any{"n": 3, "future_field": "kept"})
		require.NoError(t, err)
		data, err := env.Marshal()
		require.NoError(t, err)

		decoded, err := DecodeEnvelope(data)
		require.NoError(t, err)
		assert.Contains(t, string(decoded.Payload), "future_field")
	})

	t.Run("not json", func(t *testing.T) {
		_, err := DecodeEnvelope([]byte("not json"))
		require.ErrorIs(t, err, ErrInvalidEnvelope)
	})
}

func TestUnmarshalPayload(t *testing.T) {
	type payload struct {
		N int `json:"n"`
	}

	t.Run("typed decode", func(t *testing.T) {
		env, err := NewEnvelope("x", "corr-1", "", payload{N: 7})
		require.NoError(t, err)

		var out payload
		require.NoError(t, env.UnmarshalPayload(&out))
		assert.Equal(t, 7, out.N)
	})

	t.Run("unknown payload fields are tolerated", func(t *testing.T) {
		// Producers add payload fields ahead of consumers; only the
		// envelope frame is strict.
		env, err := NewEnvelope("x", "corr-1", "", map[string]any{"n": 7, "extra_new": "later"})
		require.NoError(t, err)

		var out payload
		require.NoError(t, env.UnmarshalPayload(&out))
		assert.Equal(t, 7, out.N)
	})

	t.Run("type mismatch still fails", func(t *testing.T) {
		env, err := NewEnvelope("x", "corr-1", "", map[string]any{"n": "seven"})
		require.NoError(t, err)

		var out payload
		require.ErrorIs(t, env.UnmarshalPayload(&out), ErrInvalidPayload)
	})
}
