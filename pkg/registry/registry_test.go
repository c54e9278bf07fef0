package registry_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onex-platform/omniintelligence/ent"
	"github.com/onex-platform/omniintelligence/pkg/bus"
	"github.com/onex-platform/omniintelligence/pkg/registry"
)

func noopHandler(_ context.Context, _ *registry.MessageContext, _ *ent.Tx, _ *bus.Envelope) error {
	return nil
}

func envelope(t *testing.T, eventType string, payload any) *bus.Envelope {
	t.Helper()
	env, err := bus.NewEnvelope(eventType, "corr-1", "", payload)
	require.NoError(t, err)
	return env
}

func TestRegister(t *testing.T) {
	t.Run("duplicate names rejected", func(t *testing.T) {
		r := registry.New()
		require.NoError(t, r.Register(&registry.Contract{Name: "hook-event-ingestion"}))
		err := r.Register(&registry.Contract{Name: "hook-event-ingestion"})
		require.ErrorIs(t, err, registry.ErrDuplicateContract)
	})

	t.Run("routing and orphan policy default", func(t *testing.T) {
		r := registry.New()
		c := &registry.Contract{Name: "c"}
		require.NoError(t, r.Register(c))
		assert.Equal(t, registry.RouteByEventType, c.Routing)
		assert.Equal(t, registry.OrphanToDLQ, c.OrphanPolicy)
	})
}

func TestWireDependencies(t *testing.T) {
	contract := func() *registry.Contract {
		return &registry.Contract{
			Name: "session-outcome-feedback",
			Dependencies: []registry.Dependency{
				{Name: "feedback_aggregator", Required: true},
				{Name: "event_publisher", Required: false},
			},
		}
	}

	t.Run("missing required dependency fails fast", func(t *testing.T) {
		r := registry.New()
		require.NoError(t, r.Register(contract()))
		err := r.Wire(map[string]any{"event_publisher": struct{}{}})
		require.ErrorIs(t, err, registry.ErrMissingDependency)
		assert.Contains(t, err.Error(), "feedback_aggregator")
	})

	t.Run("nil counts as missing", func(t *testing.T) {
		r := registry.New()
		require.NoError(t, r.Register(contract()))
		err := r.Wire(map[string]any{"feedback_aggregator": nil})
		require.ErrorIs(t, err, registry.ErrMissingDependency)
	})

	t.Run("absent optional dependency is fine", func(t *testing.T) {
		r := registry.New()
		require.NoError(t, r.Register(contract()))
		require.NoError(t, r.Wire(map[string]any{"feedback_aggregator": struct{}{}}))
	})
}

func TestRouteByEventType(t *testing.T) {
	topic := bus.CommandTopic("test", "claude-hook-event")

	r := registry.New()
	require.NoError(t, r.Register(&registry.Contract{
		Name:            "hook-event-ingestion",
		Routing:         registry.RouteByEventType,
		SubscribeTopics: []string{topic},
		Bindings: []registry.Binding{
			{Trigger: "claude-hook-event", Handler: noopHandler},
		},
	}))
	require.NoError(t, r.Wire(nil))

	t.Run("matching event type routes", func(t *testing.T) {
		route, err := r.RouteFor(topic, envelope(t, "claude-hook-event", map[string]string{}))
		require.NoError(t, err)
		assert.Equal(t, "hook-event-ingestion", route.Contract.Name)
	})

	t.Run("unknown event type is an orphan", func(t *testing.T) {
		_, err := r.RouteFor(topic, envelope(t, "other-event", map[string]string{}))
		require.ErrorIs(t, err, registry.ErrNoHandler)
	})

	t.Run("unsubscribed topic is an orphan", func(t *testing.T) {
		_, err := r.RouteFor("test.onex.cmd.omniintelligence.unknown.v1",
			envelope(t, "claude-hook-event", map[string]string{}))
		require.ErrorIs(t, err, registry.ErrNoHandler)
	})

	t.Run("subscribed topics reported", func(t *testing.T) {
		assert.Equal(t, []string{topic}, r.SubscribedTopics())
	})
}

func TestRouteByOperation(t *testing.T) {
	topic := bus.CommandTopic("test", "pattern-lifecycle")

	var invoked string
	handlerFor := func(name string) registry.HandlerFunc {
		return func(_ context.Context, _ *registry.MessageContext, _ *ent.Tx, _ *bus.Envelope) error {
			invoked = name
			return nil
		}
	}

	r := registry.New()
	require.NoError(t, r.Register(&registry.Contract{
		Name:            "pattern-lifecycle-admin",
		Routing:         registry.RouteByOperation,
		SubscribeTopics: []string{topic},
		Bindings: []registry.Binding{
			{Trigger: "disable", Handler: handlerFor("disable")},
			{Trigger: "enable", Handler: handlerFor("enable")},
			{Trigger: "evaluate", Handler: handlerFor("evaluate")},
		},
	}))
	require.NoError(t, r.Wire(nil))

	t.Run("operation field selects the binding", func(t *testing.T) {
		env := envelope(t, "pattern-lifecycle", map[string]string{"operation": "enable", "pattern_id": "p1"})
		route, err := r.RouteFor(topic, env)
		require.NoError(t, err)
		require.NoError(t, route.Handler(context.Background(), &registry.MessageContext{}, nil, env))
		assert.Equal(t, "enable", invoked)
	})

	t.Run("unknown operation is an orphan", func(t *testing.T) {
		_, err := r.RouteFor(topic, envelope(t, "pattern-lifecycle", map[string]string{"operation": "purge"}))
		require.ErrorIs(t, err, registry.ErrNoHandler)
	})

	t.Run("unparseable payload is a validation failure", func(t *testing.T) {
		env := envelope(t, "pattern-lifecycle", map[string]string{})
		env.Payload = json.RawMessage(`[1,2,3]`)
		_, err := r.RouteFor(topic, env)
		pe, ok := registry.AsPermanent(err)
		require.True(t, ok)
		assert.Equal(t, "validation", pe.Kind)
	})
}

func TestOrphanPolicyAndReshape(t *testing.T) {
	topic := bus.CommandTopic("test", "claude-hook-event")

	r := registry.New()
	require.NoError(t, r.Register(&registry.Contract{
		Name:            "hook-event-ingestion",
		SubscribeTopics: []string{topic},
		OrphanPolicy:    registry.OrphanDrop,
		Bindings:        []registry.Binding{{Trigger: "claude-hook-event", Handler: noopHandler}},
	}))
	require.NoError(t, r.Wire(nil))

	t.Run("policy follows the contract", func(t *testing.T) {
		assert.Equal(t, registry.OrphanDrop, r.PolicyFor(topic))
	})

	t.Run("unknown topics default to DLQ", func(t *testing.T) {
		assert.Equal(t, registry.OrphanToDLQ, r.PolicyFor("test.onex.cmd.omniintelligence.other.v1"))
	})

	t.Run("reshape is per topic", func(t *testing.T) {
		r.RegisterReshape(topic, func(data []byte) ([]byte, error) { return data, nil })
		assert.NotNil(t, r.ReshapeFor(topic))
		assert.Nil(t, r.ReshapeFor("test.onex.cmd.omniintelligence.other.v1"))
	})
}

func TestErrorClassification(t *testing.T) {
	base := errors.New("boom")

	t.Run("transient", func(t *testing.T) {
		err := registry.Transient(base)
		assert.True(t, registry.IsTransient(err))
		assert.False(t, registry.IsTransient(base))
		assert.ErrorIs(t, err, base)
	})

	t.Run("permanent kinds", func(t *testing.T) {
		pe, ok := registry.AsPermanent(registry.Validation(base))
		require.True(t, ok)
		assert.Equal(t, "validation", pe.Kind)

		pe, ok = registry.AsPermanent(registry.Domain(base))
		require.True(t, ok)
		assert.Equal(t, "domain", pe.Kind)

		_, ok = registry.AsPermanent(base)
		assert.False(t, ok)
	})

	t.Run("invariant", func(t *testing.T) {
		err := registry.Invariant(base)
		assert.True(t, registry.IsInvariant(err))
		assert.False(t, registry.IsTransient(err))
		assert.ErrorIs(t, err, base)
	})
}
