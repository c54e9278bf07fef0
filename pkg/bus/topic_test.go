package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicBuilders(t *testing.T) {
	assert.Equal(t, "dev.onex.cmd.omniintelligence.claude-hook-event.v1",
		CommandTopic("dev", "claude-hook-event"))
	assert.Equal(t, "prod.onex.evt.omniintelligence.pattern-promoted.v1",
		EventTopic("prod", "pattern-promoted"))
}

func TestDLQTopic(t *testing.T) {
	t.Run("appends suffix", func(t *testing.T) {
		assert.Equal(t, "dev.onex.cmd.omniintelligence.session-outcome.v1.dlq",
			DLQTopic("dev.onex.cmd.omniintelligence.session-outcome.v1"))
	})

	t.Run("never recurses", func(t *testing.T) {
		dlq := DLQTopic("dev.onex.cmd.omniintelligence.session-outcome.v1")
		assert.Equal(t, dlq, DLQTopic(dlq))
	})
}

func TestParseTopic(t *testing.T) {
	t.Run("parses well-formed topic", func(t *testing.T) {
		topic, err := ParseTopic("staging.onex.evt.omniintelligence.pattern-stored.v2")
		require.NoError(t, err)
		assert.Equal(t, "staging", topic.Env)
		assert.Equal(t, KindEvent, topic.Kind)
		assert.Equal(t, "omniintelligence", topic.Producer)
		assert.Equal(t, "pattern-stored", topic.Name)
		assert.Equal(t, 2, topic.Version)
		assert.False(t, topic.DLQ)
	})

	t.Run("parses DLQ topic", func(t *testing.T) {
		topic, err := ParseTopic("dev.onex.cmd.omniintelligence.claude-hook-event.v1.dlq")
		require.NoError(t, err)
		assert.True(t, topic.DLQ)
		assert.Equal(t, "claude-hook-event", topic.Name)
	})

	t.Run("round trips through String", func(t *testing.T) {
		s := "dev.onex.cmd.omniintelligence.pattern-lifecycle.v1.dlq"
		topic, err := ParseTopic(s)
		require.NoError(t, err)
		assert.Equal(t, s, topic.String())
	})

	t.Run("rejects bad shapes", func(t *testing.T) {
		for _, s := range []string{
			"",
			"too.short.v1",
			"dev.notonex.cmd.omniintelligence.x.v1",
			"dev.onex.query.omniintelligence.x.v1",
			"dev.onex.cmd.omniintelligence.x.version1",
			"dev.onex.cmd.omniintelligence.x.v0",
		} {
			_, err := ParseTopic(s)
			assert.ErrorIs(t, err, ErrInvalidTopic, "topic %q", s)
		}
	})
}

func TestPartitionFor(t *testing.T) {
	t.Run("deterministic and in range", func(t *testing.T) {
		for _, key := range []string{"a", "session-1", "pattern-xyz"} {
			p := PartitionFor(key, 4)
			assert.Equal(t, p, PartitionFor(key, 4))
			assert.GreaterOrEqual(t, p, 0)
			assert.Less(t, p, 4)
		}
	})

	t.Run("empty key goes to partition zero", func(t *testing.T) {
		assert.Equal(t, 0, PartitionFor("", 8))
	})

	t.Run("single partition short circuits", func(t *testing.T) {
		assert.Equal(t, 0, PartitionFor("anything", 1))
	})
}

func TestNotifyChannel(t *testing.T) {
	assert.Equal(t, "bus:dev.onex.cmd.omniintelligence.session-outcome.v1",
		NotifyChannel("dev.onex.cmd.omniintelligence.session-outcome.v1"))
}
