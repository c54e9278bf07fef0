package handlers_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onex-platform/omniintelligence/ent"
	"github.com/onex-platform/omniintelligence/ent/feedbackaggregate"
	"github.com/onex-platform/omniintelligence/ent/pattern"
	"github.com/onex-platform/omniintelligence/ent/patterndisable"
	"github.com/onex-platform/omniintelligence/pkg/bus"
	"github.com/onex-platform/omniintelligence/pkg/config"
	"github.com/onex-platform/omniintelligence/pkg/feedback"
	"github.com/onex-platform/omniintelligence/pkg/fsm"
	"github.com/onex-platform/omniintelligence/pkg/handlers"
	"github.com/onex-platform/omniintelligence/pkg/lifecycle"
	"github.com/onex-platform/omniintelligence/pkg/metrics"
	"github.com/onex-platform/omniintelligence/pkg/registry"
	"github.com/onex-platform/omniintelligence/pkg/store"
	"github.com/onex-platform/omniintelligence/test/util"
)

// capturingEmitter records handler-emitted events.
type capturingEmitter struct {
	mu        sync.Mutex
	published map[string][]*bus.Envelope // topic → envelopes
}

func newCapturingEmitter() *capturingEmitter {
	return &capturingEmitter{published: make(map[string][]*bus.Envelope)}
}

func (c *capturingEmitter) Publish(topic, _ string, env *bus.Envelope) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.published[topic] = append(c.published[topic], env)
	return nil
}

func (c *capturingEmitter) forTopic(topic string) []*bus.Envelope {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.published[topic]
}

type fixture struct {
	client   *ent.Client
	handlers *handlers.Handlers
	reducer  *fsm.Reducer
	emitter  *capturingEmitter
}

func newFixture(t *testing.T) *fixture {
	client, _ := util.SetupTestDatabase(t)
	m := metrics.NewNop()
	emitter := newCapturingEmitter()

	st := store.New()
	lcfg := &config.LifecycleConfig{
		PromotionThreshold: 0.75,
		DemotionThreshold:  0.40,
		MinDemotionSamples: 5,
		WeakSamples:        10,
		ModerateSamples:    30,
		StrongSamples:      100,
	}
	fcfg := &config.FeedbackConfig{
		WindowSize:         100,
		WindowMaxAge:       720 * time.Hour,
		ViolationDecrement: 0.01,
	}
	controller := lifecycle.New(client, st, lcfg, emitter, m, "test")
	aggregator := feedback.New(client, fcfg, lcfg.DemotionThreshold, m)
	reducer := fsm.NewReducer(m)

	return &fixture{
		client:   client,
		handlers: handlers.New(st, controller, aggregator, reducer, nil, emitter, "test"),
		reducer:  reducer,
		emitter:  emitter,
	}
}

// invoke runs a handler inside a committed transaction, mirroring the
// dispatch engine's invocation shape.
func (f *fixture) invoke(t *testing.T, handler registry.HandlerFunc, env *bus.Envelope) error {
	t.Helper()
	ctx := context.Background()
	tx, err := f.client.Tx(ctx)
	require.NoError(t, err)

	sessionID := ""
	if env.SessionID != nil {
		sessionID = *env.SessionID
	}
	mc := &registry.MessageContext{
		CorrelationID: env.CorrelationID,
		SessionID:     sessionID,
		EventID:       env.EventID,
		Topic:         "test-topic",
	}

	if err := handler(ctx, mc, tx, env); err != nil {
		_ = tx.Rollback()
		return err
	}
	require.NoError(t, tx.Commit())
	return nil
}

func hookEnvelope(t *testing.T, sessionID string, payload handlers.HookEventPayload) *bus.Envelope {
	t.Helper()
	env, err := bus.NewEnvelope(handlers.EventHookEvent, "corr-hook", sessionID, payload)
	require.NoError(t, err)
	return env
}

// minedTrace repeats a bash→editor bigram often enough for the local
// miner to emit it with confidence above the elevation floor.
const minedTrace = `bash.run build.sh ok
editor.write main.go ok
bash.run build.sh ok
editor.write parser.go ok
bash.run build.sh ok
editor.write lexer.go ok`

func TestHandleHookEvent(t *testing.T) {
	t.Run("mines stores and elevates a pattern", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()

		env := hookEnvelope(t, "sess-1", handlers.HookEventPayload{
			HookType:    "post-tool",
			Description: "fix the crash in the parser",
			ToolTrace:   minedTrace,
		})
		require.NoError(t, f.invoke(t, f.handlers.HandleHookEvent, env))

		patterns, err := f.client.Pattern.Query().All(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, patterns)

		var mined *ent.Pattern
		for _, p := range patterns {
			if p.Body == "bash:run -> editor:write" {
				mined = p
			}
		}
		require.NotNil(t, mined, "expected the repeated bigram to be stored")
		assert.Equal(t, pattern.LifecycleStatusProvisional, mined.LifecycleStatus)
		assert.Equal(t, "bugfix", mined.Metadata["intent"])
		assert.Equal(t, "post-tool", mined.Metadata["hook_type"])

		t.Run("ingestion machine reached indexed", func(t *testing.T) {
			state, err := f.reducer.Current(ctx, f.client, fsm.KindIngestion, "sess-1")
			require.NoError(t, err)
			assert.Equal(t, fsm.StateIndexed, state)
		})

		t.Run("pattern learning machine completed", func(t *testing.T) {
			state, err := f.reducer.Current(ctx, f.client, fsm.KindPatternLearning, env.EventID)
			require.NoError(t, err)
			assert.Equal(t, fsm.StateCompleted, state)
		})

		t.Run("events emitted", func(t *testing.T) {
			assert.NotEmpty(t, f.emitter.forTopic(bus.EventTopic("test", handlers.EventIntentClassified)))
			assert.NotEmpty(t, f.emitter.forTopic(bus.EventTopic("test", handlers.EventPatternStored)))
		})
	})

	t.Run("redelivery dedups on the signature", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()

		payload := handlers.HookEventPayload{
			HookType:    "post-tool",
			Description: "fix the crash",
			ToolTrace:   minedTrace,
		}
		require.NoError(t, f.invoke(t, f.handlers.HandleHookEvent, hookEnvelope(t, "sess-1", payload)))
		before, err := f.client.Pattern.Query().Count(ctx)
		require.NoError(t, err)

		require.NoError(t, f.invoke(t, f.handlers.HandleHookEvent, hookEnvelope(t, "sess-2", payload)))
		after, err := f.client.Pattern.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("quality signals drive the assessment machine", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()

		env := hookEnvelope(t, "sess-q", handlers.HookEventPayload{
			HookType:    "post-tool",
			Description: "add coverage for the parser",
			Quality:     &handlers.QualitySignalsPayload{TestsPassed: 3, TestsFailed: 1},
		})
		require.NoError(t, f.invoke(t, f.handlers.HandleHookEvent, env))

		state, err := f.reducer.Current(ctx, f.client, fsm.KindQualityAssessment, env.EventID)
		require.NoError(t, err)
		assert.Equal(t, fsm.StateStored, state)
	})

	t.Run("missing hook_type is a validation failure", func(t *testing.T) {
		f := newFixture(t)
		err := f.invoke(t, f.handlers.HandleHookEvent,
			hookEnvelope(t, "sess-1", handlers.HookEventPayload{Description: "fix it"}))
		pe, ok := registry.AsPermanent(err)
		require.True(t, ok)
		assert.Equal(t, "validation", pe.Kind)
	})

	t.Run("unparseable trace is a validation failure", func(t *testing.T) {
		f := newFixture(t)
		err := f.invoke(t, f.handlers.HandleHookEvent, hookEnvelope(t, "sess-1", handlers.HookEventPayload{
			HookType:  "post-tool",
			ToolTrace: "garbage\nmore garbage",
		}))
		pe, ok := registry.AsPermanent(err)
		require.True(t, ok)
		assert.Equal(t, "validation", pe.Kind)
	})

	t.Run("traceless empty event still indexes", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()

		env := hookEnvelope(t, "sess-e", handlers.HookEventPayload{HookType: "session-start"})
		require.NoError(t, f.invoke(t, f.handlers.HandleHookEvent, env))

		state, err := f.reducer.Current(ctx, f.client, fsm.KindIngestion, "sess-e")
		require.NoError(t, err)
		assert.Equal(t, fsm.StateIndexed, state)

		count, err := f.client.Pattern.Query().Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func outcomeEnvelope(t *testing.T, payload handlers.SessionOutcomePayload) *bus.Envelope {
	t.Helper()
	env, err := bus.NewEnvelope(handlers.EventSessionOutcome, "corr-outcome", payload.SessionID, payload)
	require.NoError(t, err)
	return env
}

func TestHandleSessionOutcome(t *testing.T) {
	seedPattern := func(t *testing.T, f *fixture, status pattern.LifecycleStatus) string {
		t.Helper()
		ctx := context.Background()
		tx, err := f.client.Tx(ctx)
		require.NoError(t, err)
		id, _, err := store.New().UpsertPattern(ctx, tx, "sig-"+t.Name(), "body", nil)
		require.NoError(t, err)
		if status != pattern.LifecycleStatusCandidate {
			require.NoError(t, tx.Pattern.UpdateOneID(id).SetLifecycleStatus(status).Exec(ctx))
		}
		require.NoError(t, tx.Commit())
		return id
	}

	t.Run("applies feedback to advised patterns", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		id := seedPattern(t, f, pattern.LifecycleStatusProvisional)

		err := f.invoke(t, f.handlers.HandleSessionOutcome, outcomeEnvelope(t, handlers.SessionOutcomePayload{
			SessionID: "sess-1",
			Outcome:   "success",
			Patterns: []handlers.PatternOutcomeRecord{
				{PatternID: id, WasAdvised: true, WasUsed: true},
			},
		}))
		require.NoError(t, err)

		agg, err := f.client.FeedbackAggregate.Query().
			Where(feedbackaggregate.PatternIDEQ(id)).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, agg.WindowSuccesses)

		// Evidence refresh ran in the handler transaction.
		p, err := f.client.Pattern.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, pattern.EvidenceTierInsufficient, p.EvidenceTier)
	})

	t.Run("promotion sweep runs after the window update", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		id := seedPattern(t, f, pattern.LifecycleStatusProvisional)

		// Push the window over both gates: 35 advised successes.
		for i := 0; i < 35; i++ {
			err := f.invoke(t, f.handlers.HandleSessionOutcome, outcomeEnvelope(t, handlers.SessionOutcomePayload{
				SessionID: "sess-promo",
				Outcome:   "success",
				Patterns: []handlers.PatternOutcomeRecord{
					{PatternID: id, WasAdvised: true, WasUsed: true},
				},
			}))
			require.NoError(t, err)
		}

		p, err := f.client.Pattern.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, pattern.LifecycleStatusValidated, p.LifecycleStatus)
		assert.NotEmpty(t, f.emitter.forTopic(bus.EventTopic("test", "pattern-promoted")))
	})

	t.Run("no referenced patterns is a no-op", func(t *testing.T) {
		f := newFixture(t)
		err := f.invoke(t, f.handlers.HandleSessionOutcome, outcomeEnvelope(t, handlers.SessionOutcomePayload{
			SessionID: "sess-1",
			Outcome:   "success",
		}))
		require.NoError(t, err)
	})

	t.Run("redelivered event does not double-apply", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		id := seedPattern(t, f, pattern.LifecycleStatusProvisional)

		// The window updates commit per pattern, outside the handler's
		// transaction. A transient failure later in the handler hands the
		// same envelope back for redelivery; the already-committed decay
		// and outcome row must not be applied again.
		env := outcomeEnvelope(t, handlers.SessionOutcomePayload{
			SessionID: "sess-redeliver",
			Outcome:   "failure",
			Patterns: []handlers.PatternOutcomeRecord{
				{PatternID: id, WasAdvised: true, WasCorrected: true},
			},
		})
		require.NoError(t, f.invoke(t, f.handlers.HandleSessionOutcome, env))
		require.NoError(t, f.invoke(t, f.handlers.HandleSessionOutcome, env))

		agg, err := f.client.FeedbackAggregate.Query().
			Where(feedbackaggregate.PatternIDEQ(id)).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, agg.SampleCount)
		assert.Equal(t, 1, agg.ConsecutiveLowWindows)

		p, err := f.client.Pattern.Get(ctx, id)
		require.NoError(t, err)
		assert.InDelta(t, 0.99, p.QualityScore, 1e-9)
	})

	t.Run("unknown outcome is a validation failure", func(t *testing.T) {
		f := newFixture(t)
		err := f.invoke(t, f.handlers.HandleSessionOutcome, outcomeEnvelope(t, handlers.SessionOutcomePayload{
			SessionID: "sess-1",
			Outcome:   "maybe",
			Patterns:  []handlers.PatternOutcomeRecord{{PatternID: "p1"}},
		}))
		pe, ok := registry.AsPermanent(err)
		require.True(t, ok)
		assert.Equal(t, "validation", pe.Kind)
	})

	t.Run("unknown pattern lands on the domain path with survivors committed", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		id := seedPattern(t, f, pattern.LifecycleStatusProvisional)

		err := f.invoke(t, f.handlers.HandleSessionOutcome, outcomeEnvelope(t, handlers.SessionOutcomePayload{
			SessionID: "sess-mixed",
			Outcome:   "success",
			Patterns: []handlers.PatternOutcomeRecord{
				{PatternID: id, WasAdvised: true},
				{PatternID: "no-such-pattern", WasAdvised: true},
			},
		}))
		pe, ok := registry.AsPermanent(err)
		require.True(t, ok)
		assert.Equal(t, "domain", pe.Kind)
		assert.Contains(t, pe.Error(), "no-such-pattern")

		// The good pattern's window update survived the handler rollback.
		agg, err := f.client.FeedbackAggregate.Query().
			Where(feedbackaggregate.PatternIDEQ(id)).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, agg.SampleCount)
	})
}

func lifecycleEnvelope(t *testing.T, payload handlers.LifecycleCommandPayload) *bus.Envelope {
	t.Helper()
	env, err := bus.NewEnvelope("pattern-lifecycle", "corr-admin", "", payload)
	require.NoError(t, err)
	return env
}

func TestLifecycleCommands(t *testing.T) {
	seed := func(t *testing.T, f *fixture, status pattern.LifecycleStatus) string {
		t.Helper()
		ctx := context.Background()
		tx, err := f.client.Tx(ctx)
		require.NoError(t, err)
		id, _, err := store.New().UpsertPattern(ctx, tx, "sig-"+strings.ReplaceAll(t.Name(), "/", "-"), "body", nil)
		require.NoError(t, err)
		if status != pattern.LifecycleStatusCandidate {
			require.NoError(t, tx.Pattern.UpdateOneID(id).SetLifecycleStatus(status).Exec(ctx))
		}
		require.NoError(t, tx.Commit())
		return id
	}

	t.Run("safety disable force-deprecates", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		id := seed(t, f, pattern.LifecycleStatusValidated)

		err := f.invoke(t, f.handlers.HandleDisable, lifecycleEnvelope(t, handlers.LifecycleCommandPayload{
			Operation:   handlers.OpDisable,
			PatternID:   id,
			Reason:      "safety",
			Detail:      "observed harmful advice",
			RequestedBy: "oncall",
		}))
		require.NoError(t, err)

		p, err := f.client.Pattern.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, pattern.LifecycleStatusDeprecated, p.LifecycleStatus)

		events, err := f.client.PatternDisable.Query().All(ctx)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, patterndisable.ActionDisable, events[0].Action)
		assert.Equal(t, "oncall", events[0].DisabledBy)

		assert.NotEmpty(t, f.emitter.forTopic(bus.EventTopic("test", "pattern-deprecated")))
	})

	t.Run("quality disable keeps the lifecycle status", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		id := seed(t, f, pattern.LifecycleStatusValidated)

		err := f.invoke(t, f.handlers.HandleDisable, lifecycleEnvelope(t, handlers.LifecycleCommandPayload{
			Operation: handlers.OpDisable,
			PatternID: id,
			Reason:    "quality",
		}))
		require.NoError(t, err)

		p, err := f.client.Pattern.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, pattern.LifecycleStatusValidated, p.LifecycleStatus)
	})

	t.Run("disable of unknown pattern is a domain failure", func(t *testing.T) {
		f := newFixture(t)
		err := f.invoke(t, f.handlers.HandleDisable, lifecycleEnvelope(t, handlers.LifecycleCommandPayload{
			Operation: handlers.OpDisable,
			PatternID: "missing",
			Reason:    "manual",
		}))
		pe, ok := registry.AsPermanent(err)
		require.True(t, ok)
		assert.Equal(t, "domain", pe.Kind)
	})

	t.Run("enable lifts the kill switch", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		id := seed(t, f, pattern.LifecycleStatusValidated)

		require.NoError(t, f.invoke(t, f.handlers.HandleDisable, lifecycleEnvelope(t, handlers.LifecycleCommandPayload{
			Operation: handlers.OpDisable, PatternID: id, Reason: "quality",
		})))
		require.NoError(t, f.invoke(t, f.handlers.HandleEnable, lifecycleEnvelope(t, handlers.LifecycleCommandPayload{
			Operation: handlers.OpEnable, PatternID: id, RequestedBy: "oncall",
		})))

		tx, err := f.client.Tx(ctx)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback() }()
		disabled, _, err := store.New().IsDisabled(ctx, tx, id)
		require.NoError(t, err)
		assert.False(t, disabled)
	})

	t.Run("missing pattern_id is a validation failure", func(t *testing.T) {
		f := newFixture(t)
		err := f.invoke(t, f.handlers.HandleEnable, lifecycleEnvelope(t, handlers.LifecycleCommandPayload{
			Operation: handlers.OpEnable,
		}))
		pe, ok := registry.AsPermanent(err)
		require.True(t, ok)
		assert.Equal(t, "validation", pe.Kind)
	})

	t.Run("evaluate sweeps on demand", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		id := seed(t, f, pattern.LifecycleStatusProvisional)
		_, err := f.client.FeedbackAggregate.Create().
			SetPatternID(id).
			SetEffectiveness(0.85).
			SetSampleCount(40).
			Save(ctx)
		require.NoError(t, err)

		require.NoError(t, f.invoke(t, f.handlers.HandleEvaluate, lifecycleEnvelope(t, handlers.LifecycleCommandPayload{
			Operation: handlers.OpEvaluate,
		})))

		p, err := f.client.Pattern.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, pattern.LifecycleStatusValidated, p.LifecycleStatus)
	})
}
