package feedback_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onex-platform/omniintelligence/ent"
	"github.com/onex-platform/omniintelligence/ent/feedbackaggregate"
	"github.com/onex-platform/omniintelligence/ent/sessionoutcome"
	"github.com/onex-platform/omniintelligence/pkg/config"
	"github.com/onex-platform/omniintelligence/pkg/feedback"
	"github.com/onex-platform/omniintelligence/pkg/metrics"
	"github.com/onex-platform/omniintelligence/test/util"
)

func feedbackConfig() *config.FeedbackConfig {
	return &config.FeedbackConfig{
		WindowSize:         100,
		WindowMaxAge:       720 * time.Hour,
		ViolationDecrement: 0.01,
	}
}

func createPattern(t *testing.T, client *ent.Client) string {
	t.Helper()
	id := uuid.NewString()
	_, err := client.Pattern.Create().
		SetID(id).
		SetSignatureHash(uuid.NewString()).
		SetBody("bash:run -> editor:write").
		Save(context.Background())
	require.NoError(t, err)
	return id
}

func aggregateFor(t *testing.T, client *ent.Client, patternID string) *ent.FeedbackAggregate {
	t.Helper()
	agg, err := client.FeedbackAggregate.Query().
		Where(feedbackaggregate.PatternIDEQ(patternID)).
		Only(context.Background())
	require.NoError(t, err)
	return agg
}

func TestApplyOutcomeEffectiveness(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	a := feedback.New(client, feedbackConfig(), 0.40, metrics.NewNop())
	patternID := createPattern(t, client)

	outcome := func(o sessionoutcome.Outcome) feedback.OutcomeInput {
		return feedback.OutcomeInput{
			EventID:    uuid.NewString(),
			SessionID:  uuid.NewString(),
			PatternID:  patternID,
			Outcome:    o,
			WasAdvised: true,
		}
	}

	t.Run("single success smooths to two thirds", func(t *testing.T) {
		require.NoError(t, a.ApplyOutcome(ctx, outcome(sessionoutcome.OutcomeSuccess)))
		agg := aggregateFor(t, client, patternID)
		assert.Equal(t, 1, agg.WindowSuccesses)
		assert.InDelta(t, 2.0/3.0, agg.Effectiveness, 1e-9)
	})

	t.Run("three successes one failure", func(t *testing.T) {
		require.NoError(t, a.ApplyOutcome(ctx, outcome(sessionoutcome.OutcomeSuccess)))
		require.NoError(t, a.ApplyOutcome(ctx, outcome(sessionoutcome.OutcomeSuccess)))
		require.NoError(t, a.ApplyOutcome(ctx, outcome(sessionoutcome.OutcomeFailure)))

		agg := aggregateFor(t, client, patternID)
		assert.Equal(t, 3, agg.WindowSuccesses)
		assert.Equal(t, 1, agg.WindowFailures)
		assert.Equal(t, 4, agg.SampleCount)
		assert.InDelta(t, 4.0/6.0, agg.Effectiveness, 1e-9)
	})

	t.Run("partials count samples but not the ratio", func(t *testing.T) {
		require.NoError(t, a.ApplyOutcome(ctx, outcome(sessionoutcome.OutcomePartial)))

		agg := aggregateFor(t, client, patternID)
		assert.Equal(t, 5, agg.SampleCount)
		assert.InDelta(t, 4.0/6.0, agg.Effectiveness, 1e-9)
	})
}

func TestApplyOutcomeContribution(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	a := feedback.New(client, feedbackConfig(), 0.40, metrics.NewNop())

	t.Run("used advice counts double", func(t *testing.T) {
		patternID := createPattern(t, client)
		require.NoError(t, a.ApplyOutcome(ctx, feedback.OutcomeInput{
			EventID:    uuid.NewString(),
			SessionID:  "sess-1",
			PatternID:  patternID,
			Outcome:    sessionoutcome.OutcomeSuccess,
			WasAdvised: true,
			WasUsed:    true,
		}))
		agg := aggregateFor(t, client, patternID)
		assert.InDelta(t, 3.0/4.0, agg.ContributionScore, 1e-9)
	})

	t.Run("confirmed violation counts double against", func(t *testing.T) {
		patternID := createPattern(t, client)
		require.NoError(t, a.ApplyOutcome(ctx, feedback.OutcomeInput{
			EventID:      uuid.NewString(),
			SessionID:    "sess-2",
			PatternID:    patternID,
			Outcome:      sessionoutcome.OutcomeFailure,
			WasAdvised:   true,
			WasCorrected: true,
		}))
		agg := aggregateFor(t, client, patternID)
		assert.InDelta(t, 1.0/4.0, agg.ContributionScore, 1e-9)
	})

	t.Run("unadvised outcomes leave contribution neutral", func(t *testing.T) {
		patternID := createPattern(t, client)
		require.NoError(t, a.ApplyOutcome(ctx, feedback.OutcomeInput{
			EventID:   uuid.NewString(),
			SessionID: "sess-3",
			PatternID: patternID,
			Outcome:   sessionoutcome.OutcomeSuccess,
		}))
		agg := aggregateFor(t, client, patternID)
		assert.InDelta(t, 0.5, agg.ContributionScore, 1e-9)
	})
}

func TestQualityDecay(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	a := feedback.New(client, feedbackConfig(), 0.40, metrics.NewNop())
	patternID := createPattern(t, client)

	violation := func() feedback.OutcomeInput {
		return feedback.OutcomeInput{
			EventID:      uuid.NewString(),
			SessionID:    uuid.NewString(),
			PatternID:    patternID,
			Outcome:      sessionoutcome.OutcomeFailure,
			WasAdvised:   true,
			WasCorrected: true,
		}
	}

	t.Run("fifty violations halve the score", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			require.NoError(t, a.ApplyOutcome(ctx, violation()))
		}
		p, err := client.Pattern.Get(ctx, patternID)
		require.NoError(t, err)
		assert.InDelta(t, 0.5, p.QualityScore, 0.005)
	})

	t.Run("score clamps at zero", func(t *testing.T) {
		for i := 0; i < 60; i++ {
			require.NoError(t, a.ApplyOutcome(ctx, violation()))
		}
		p, err := client.Pattern.Get(ctx, patternID)
		require.NoError(t, err)
		assert.Equal(t, 0.0, p.QualityScore)
	})

	t.Run("plain failures do not decay quality", func(t *testing.T) {
		other := createPattern(t, client)
		require.NoError(t, a.ApplyOutcome(ctx, feedback.OutcomeInput{
			EventID:    uuid.NewString(),
			SessionID:  "sess-x",
			PatternID:  other,
			Outcome:    sessionoutcome.OutcomeFailure,
			WasAdvised: true,
		}))
		p, err := client.Pattern.Get(ctx, other)
		require.NoError(t, err)
		assert.Equal(t, 1.0, p.QualityScore)
	})
}

func TestConsecutiveLowWindows(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	a := feedback.New(client, feedbackConfig(), 0.40, metrics.NewNop())
	patternID := createPattern(t, client)

	outcome := func(o sessionoutcome.Outcome) feedback.OutcomeInput {
		return feedback.OutcomeInput{
			EventID:    uuid.NewString(),
			SessionID:  uuid.NewString(),
			PatternID:  patternID,
			Outcome:    o,
			WasAdvised: true,
		}
	}

	t.Run("low evaluations accumulate", func(t *testing.T) {
		// One failure: (0+1)/(1+2) = 0.33, below the 0.40 threshold.
		require.NoError(t, a.ApplyOutcome(ctx, outcome(sessionoutcome.OutcomeFailure)))
		assert.Equal(t, 1, aggregateFor(t, client, patternID).ConsecutiveLowWindows)

		require.NoError(t, a.ApplyOutcome(ctx, outcome(sessionoutcome.OutcomeFailure)))
		assert.Equal(t, 2, aggregateFor(t, client, patternID).ConsecutiveLowWindows)
	})

	t.Run("recovery resets the counter", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			require.NoError(t, a.ApplyOutcome(ctx, outcome(sessionoutcome.OutcomeSuccess)))
		}
		assert.Equal(t, 0, aggregateFor(t, client, patternID).ConsecutiveLowWindows)
	})
}

func TestWindowTrimming(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	cfg := feedbackConfig()
	cfg.WindowSize = 2
	a := feedback.New(client, cfg, 0.40, metrics.NewNop())
	patternID := createPattern(t, client)

	base := time.Now().Add(-time.Hour)
	outcomes := []sessionoutcome.Outcome{
		sessionoutcome.OutcomeFailure,
		sessionoutcome.OutcomeSuccess,
		sessionoutcome.OutcomeSuccess,
	}
	for i, o := range outcomes {
		require.NoError(t, a.ApplyOutcome(ctx, feedback.OutcomeInput{
			EventID:    uuid.NewString(),
			SessionID:  uuid.NewString(),
			PatternID:  patternID,
			Outcome:    o,
			WasAdvised: true,
			OccurredAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	// The old failure fell out of the two-slot window.
	agg := aggregateFor(t, client, patternID)
	assert.Equal(t, 2, agg.SampleCount)
	assert.Equal(t, 0, agg.WindowFailures)
	assert.InDelta(t, 3.0/4.0, agg.Effectiveness, 1e-9)
}

func TestProcessSessionIsolation(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	a := feedback.New(client, feedbackConfig(), 0.40, metrics.NewNop())

	good := createPattern(t, client)

	eventID := uuid.NewString()
	failures := a.ProcessSession(ctx, []feedback.OutcomeInput{
		{EventID: eventID, SessionID: "sess-1", PatternID: good, Outcome: sessionoutcome.OutcomeSuccess, WasAdvised: true},
		{EventID: eventID, SessionID: "sess-1", PatternID: "missing-pattern", Outcome: sessionoutcome.OutcomeSuccess},
	})

	// The unknown pattern fails alone; the good pattern's update committed.
	require.Len(t, failures, 1)
	assert.Equal(t, "missing-pattern", failures[0].PatternID)
	agg := aggregateFor(t, client, good)
	assert.Equal(t, 1, agg.SampleCount)
}

func TestRedeliveredOutcomeAppliesOnce(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	a := feedback.New(client, feedbackConfig(), 0.40, metrics.NewNop())
	patternID := createPattern(t, client)

	// Pattern updates commit per pattern, so a transient failure later in
	// the same event can hand the event back for redelivery after some
	// updates already landed. Reapplying the same event must be a no-op.
	in := feedback.OutcomeInput{
		EventID:      uuid.NewString(),
		SessionID:    "sess-1",
		PatternID:    patternID,
		Outcome:      sessionoutcome.OutcomeFailure,
		WasAdvised:   true,
		WasCorrected: true,
	}
	require.NoError(t, a.ApplyOutcome(ctx, in))
	require.NoError(t, a.ApplyOutcome(ctx, in))

	rows, err := client.SessionOutcome.Query().
		Where(sessionoutcome.PatternIDEQ(patternID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, rows)

	p, err := client.Pattern.Get(ctx, patternID)
	require.NoError(t, err)
	assert.InDelta(t, 0.99, p.QualityScore, 1e-9)

	agg := aggregateFor(t, client, patternID)
	assert.Equal(t, 1, agg.SampleCount)
	assert.Equal(t, 1, agg.ConsecutiveLowWindows)
}
