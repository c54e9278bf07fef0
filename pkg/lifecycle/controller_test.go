package lifecycle_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onex-platform/omniintelligence/ent"
	"github.com/onex-platform/omniintelligence/ent/pattern"
	"github.com/onex-platform/omniintelligence/ent/patternaudit"
	"github.com/onex-platform/omniintelligence/ent/patterndisable"
	"github.com/onex-platform/omniintelligence/pkg/bus"
	"github.com/onex-platform/omniintelligence/pkg/config"
	"github.com/onex-platform/omniintelligence/pkg/lifecycle"
	"github.com/onex-platform/omniintelligence/pkg/metrics"
	"github.com/onex-platform/omniintelligence/pkg/store"
	"github.com/onex-platform/omniintelligence/test/util"
)

// recordingEmitter captures published lifecycle events.
type recordingEmitter struct {
	mu        sync.Mutex
	published []publishedEvent
}

type publishedEvent struct {
	topic string
	key   string
	env   *bus.Envelope
}

func (r *recordingEmitter) Publish(topic, key string, env *bus.Envelope) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.published = append(r.published, publishedEvent{topic: topic, key: key, env: env})
	return nil
}

func (r *recordingEmitter) events() []publishedEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]publishedEvent(nil), r.published...)
}

func lifecycleConfig() *config.LifecycleConfig {
	return &config.LifecycleConfig{
		PromotionThreshold: 0.75,
		DemotionThreshold:  0.40,
		MinDemotionSamples: 5,
		WeakSamples:        10,
		ModerateSamples:    30,
		StrongSamples:      100,
	}
}

func newController(client *ent.Client, emitter lifecycle.Emitter) *lifecycle.Controller {
	return lifecycle.New(client, store.New(), lifecycleConfig(), emitter, metrics.NewNop(), "test")
}

func seedPattern(t *testing.T, client *ent.Client, status pattern.LifecycleStatus) string {
	t.Helper()
	id := uuid.NewString()
	_, err := client.Pattern.Create().
		SetID(id).
		SetSignatureHash(uuid.NewString()).
		SetBody("bash:run -> editor:write").
		SetLifecycleStatus(status).
		Save(context.Background())
	require.NoError(t, err)
	return id
}

func seedAggregate(t *testing.T, client *ent.Client, patternID string, effectiveness float64, samples, lowWindows int) {
	t.Helper()
	_, err := client.FeedbackAggregate.Create().
		SetPatternID(patternID).
		SetEffectiveness(effectiveness).
		SetSampleCount(samples).
		SetConsecutiveLowWindows(lowWindows).
		Save(context.Background())
	require.NoError(t, err)
}

func TestTierFor(t *testing.T) {
	c := newController(nil, nil)

	tests := []struct {
		samples int
		want    pattern.EvidenceTier
	}{
		{0, pattern.EvidenceTierInsufficient},
		{9, pattern.EvidenceTierInsufficient},
		{10, pattern.EvidenceTierWeak},
		{29, pattern.EvidenceTierWeak},
		{30, pattern.EvidenceTierModerate},
		{99, pattern.EvidenceTierModerate},
		{100, pattern.EvidenceTierStrong},
		{500, pattern.EvidenceTierStrong},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.TierFor(tt.samples), "samples=%d", tt.samples)
	}
}

func TestConfidenceFor(t *testing.T) {
	assert.InDelta(t, 0.2, lifecycle.ConfidenceFor(0.8, pattern.EvidenceTierInsufficient), 1e-9)
	assert.InDelta(t, 0.4, lifecycle.ConfidenceFor(0.8, pattern.EvidenceTierWeak), 1e-9)
	assert.InDelta(t, 0.6, lifecycle.ConfidenceFor(0.8, pattern.EvidenceTierModerate), 1e-9)
	assert.InDelta(t, 0.8, lifecycle.ConfidenceFor(0.8, pattern.EvidenceTierStrong), 1e-9)
}

func TestElevateIfQualified(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	c := newController(client, nil)

	t.Run("confident mining elevates", func(t *testing.T) {
		id := seedPattern(t, client, pattern.LifecycleStatusCandidate)
		tx, err := client.Tx(ctx)
		require.NoError(t, err)
		elevated, err := c.ElevateIfQualified(ctx, tx, id, 0.7, "corr-1")
		require.NoError(t, err)
		assert.True(t, elevated)
		require.NoError(t, tx.Commit())

		p, err := client.Pattern.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, pattern.LifecycleStatusProvisional, p.LifecycleStatus)
	})

	t.Run("thin mining confidence stays candidate", func(t *testing.T) {
		id := seedPattern(t, client, pattern.LifecycleStatusCandidate)
		tx, err := client.Tx(ctx)
		require.NoError(t, err)
		elevated, err := c.ElevateIfQualified(ctx, tx, id, 0.49, "corr-2")
		require.NoError(t, err)
		assert.False(t, elevated)
		require.NoError(t, tx.Commit())

		p, err := client.Pattern.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, pattern.LifecycleStatusCandidate, p.LifecycleStatus)
	})
}

func TestEvaluatePromotions(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	emitter := &recordingEmitter{}
	c := newController(client, emitter)

	eligible := seedPattern(t, client, pattern.LifecycleStatusProvisional)
	seedAggregate(t, client, eligible, 0.82, 40, 0)

	thin := seedPattern(t, client, pattern.LifecycleStatusProvisional)
	seedAggregate(t, client, thin, 0.90, 12, 0)

	disabled := seedPattern(t, client, pattern.LifecycleStatusProvisional)
	seedAggregate(t, client, disabled, 0.95, 60, 0)
	_, err := client.PatternDisable.Create().
		SetPatternID(disabled).
		SetAction(patterndisable.ActionDisable).
		SetReason(patterndisable.ReasonQuality).
		SetDisabledBy("oncall").
		Save(ctx)
	require.NoError(t, err)

	promoted, err := c.EvaluatePromotions(ctx, "corr-promo")
	require.NoError(t, err)
	assert.Equal(t, []string{eligible}, promoted)

	t.Run("promoted pattern is validated with refreshed evidence", func(t *testing.T) {
		p, err := client.Pattern.Get(ctx, eligible)
		require.NoError(t, err)
		assert.Equal(t, pattern.LifecycleStatusValidated, p.LifecycleStatus)
		assert.Equal(t, pattern.EvidenceTierModerate, p.EvidenceTier)
		assert.InDelta(t, 0.82*0.75, p.Confidence, 1e-9)
		assert.NotNil(t, p.LastPromotedAt)
	})

	t.Run("audit row carries the evidence snapshot", func(t *testing.T) {
		audit, err := client.PatternAudit.Query().
			Where(patternaudit.PatternIDEQ(eligible)).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, "promotion_eligible", audit.Trigger)
		assert.Equal(t, "corr-promo", audit.CorrelationID)
		assert.Equal(t, 0.82, audit.EvidenceSnapshot["effectiveness"])
	})

	t.Run("promotion event published after commit", func(t *testing.T) {
		events := emitter.events()
		require.Len(t, events, 1)
		assert.Equal(t, bus.EventTopic("test", "pattern-promoted"), events[0].topic)
		assert.Equal(t, eligible, events[0].key)
	})

	t.Run("thin evidence and disabled patterns stay provisional", func(t *testing.T) {
		for _, id := range []string{thin, disabled} {
			p, err := client.Pattern.Get(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, pattern.LifecycleStatusProvisional, p.LifecycleStatus)
		}
	})

	t.Run("second sweep finds nothing", func(t *testing.T) {
		promoted, err := c.EvaluatePromotions(ctx, "corr-promo-2")
		require.NoError(t, err)
		assert.Empty(t, promoted)
	})
}

func TestEvaluateDemotions(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	emitter := &recordingEmitter{}
	c := newController(client, emitter)

	failing := seedPattern(t, client, pattern.LifecycleStatusValidated)
	seedAggregate(t, client, failing, 0.25, 50, 6)

	recovering := seedPattern(t, client, pattern.LifecycleStatusValidated)
	seedAggregate(t, client, recovering, 0.30, 50, 2)

	demoted, err := c.EvaluateDemotions(ctx, "corr-demo")
	require.NoError(t, err)
	assert.Equal(t, []string{failing}, demoted)

	p, err := client.Pattern.Get(ctx, failing)
	require.NoError(t, err)
	assert.Equal(t, pattern.LifecycleStatusDeprecated, p.LifecycleStatus)
	assert.NotNil(t, p.DeprecatedAt)

	kept, err := client.Pattern.Get(ctx, recovering)
	require.NoError(t, err)
	assert.Equal(t, pattern.LifecycleStatusValidated, kept.LifecycleStatus)

	events := emitter.events()
	require.Len(t, events, 1)
	assert.Equal(t, bus.EventTopic("test", "pattern-deprecated"), events[0].topic)
	assert.Equal(t, failing, events[0].key)
}

func TestForceDemote(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	c := newController(client, &recordingEmitter{})

	t.Run("validated pattern deprecates", func(t *testing.T) {
		id := seedPattern(t, client, pattern.LifecycleStatusValidated)
		tx, err := client.Tx(ctx)
		require.NoError(t, err)
		demoted, err := c.ForceDemote(ctx, tx, id, patterndisable.ReasonSafety, "corr-f1")
		require.NoError(t, err)
		assert.True(t, demoted)
		require.NoError(t, tx.Commit())

		p, err := client.Pattern.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, pattern.LifecycleStatusDeprecated, p.LifecycleStatus)

		audit, err := client.PatternAudit.Query().
			Where(patternaudit.PatternIDEQ(id)).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, "administrative_disable", audit.Trigger)
	})

	t.Run("candidate is left alone", func(t *testing.T) {
		id := seedPattern(t, client, pattern.LifecycleStatusCandidate)
		tx, err := client.Tx(ctx)
		require.NoError(t, err)
		demoted, err := c.ForceDemote(ctx, tx, id, patterndisable.ReasonSafety, "corr-f2")
		require.NoError(t, err)
		assert.False(t, demoted)
		require.NoError(t, tx.Rollback())
	})

	t.Run("missing pattern reports not found", func(t *testing.T) {
		tx, err := client.Tx(ctx)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback() }()
		_, err = c.ForceDemote(ctx, tx, "missing", patterndisable.ReasonSafety, "corr-f3")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestRefreshEvidence(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	c := newController(client, nil)

	t.Run("tier and confidence track the aggregate", func(t *testing.T) {
		id := seedPattern(t, client, pattern.LifecycleStatusProvisional)
		seedAggregate(t, client, id, 0.8, 35, 0)

		tx, err := client.Tx(ctx)
		require.NoError(t, err)
		require.NoError(t, c.RefreshEvidence(ctx, tx, id))
		require.NoError(t, tx.Commit())

		p, err := client.Pattern.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, pattern.EvidenceTierModerate, p.EvidenceTier)
		assert.InDelta(t, 0.6, p.Confidence, 1e-9)
	})

	t.Run("no aggregate is a no-op", func(t *testing.T) {
		id := seedPattern(t, client, pattern.LifecycleStatusCandidate)
		tx, err := client.Tx(ctx)
		require.NoError(t, err)
		require.NoError(t, c.RefreshEvidence(ctx, tx, id))
		require.NoError(t, tx.Rollback())
	})
}
