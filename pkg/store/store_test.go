package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onex-platform/omniintelligence/ent"
	"github.com/onex-platform/omniintelligence/ent/pattern"
	"github.com/onex-platform/omniintelligence/ent/patternaudit"
	"github.com/onex-platform/omniintelligence/ent/patterndisable"
	"github.com/onex-platform/omniintelligence/pkg/store"
	"github.com/onex-platform/omniintelligence/test/util"
)

func withTx(t *testing.T, client *ent.Client, fn func(tx *ent.Tx)) {
	t.Helper()
	tx, err := client.Tx(context.Background())
	require.NoError(t, err)
	fn(tx)
	require.NoError(t, tx.Commit())
}

func TestUpsertPattern(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	s := store.New()

	var firstID string

	t.Run("creates a candidate on first sight", func(t *testing.T) {
		withTx(t, client, func(tx *ent.Tx) {
			id, created, err := s.UpsertPattern(ctx, tx, "sig-1", "bash:run -> editor:write",
				map[string]interface{}{"intent": "bugfix"})
			require.NoError(t, err)
			assert.True(t, created)
			firstID = id
		})

		p, err := client.Pattern.Get(ctx, firstID)
		require.NoError(t, err)
		assert.Equal(t, pattern.LifecycleStatusCandidate, p.LifecycleStatus)
		assert.Equal(t, "bugfix", p.Metadata["intent"])
	})

	t.Run("same signature dedups to the existing row", func(t *testing.T) {
		withTx(t, client, func(tx *ent.Tx) {
			id, created, err := s.UpsertPattern(ctx, tx, "sig-1", "bash:run -> editor:write", nil)
			require.NoError(t, err)
			assert.False(t, created)
			assert.Equal(t, firstID, id)
		})
	})

	t.Run("deprecated patterns do not block re-creation", func(t *testing.T) {
		withTx(t, client, func(tx *ent.Tx) {
			require.NoError(t, s.TransitionLifecycle(ctx, tx, store.TransitionInput{
				PatternID: firstID,
				From:      pattern.LifecycleStatusCandidate,
				To:        pattern.LifecycleStatusProvisional,
				Trigger:   "initial_storage",
			}))
			require.NoError(t, s.TransitionLifecycle(ctx, tx, store.TransitionInput{
				PatternID: firstID,
				From:      pattern.LifecycleStatusProvisional,
				To:        pattern.LifecycleStatusDeprecated,
				Trigger:   "administrative_disable",
			}))
		})

		withTx(t, client, func(tx *ent.Tx) {
			id, created, err := s.UpsertPattern(ctx, tx, "sig-1", "bash:run -> editor:write", nil)
			require.NoError(t, err)
			assert.True(t, created)
			assert.NotEqual(t, firstID, id)
		})
	})
}

func TestUpsertPatternConcurrentRace(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	s := store.New()

	// Two transactions insert the same signature. The loser's constraint
	// error aborts its transaction, so no in-transaction recovery is
	// possible; the loser must get ErrConflict and retry fresh.
	tx1, err := client.Tx(ctx)
	require.NoError(t, err)

	winnerID, created, err := s.UpsertPattern(ctx, tx1, "sig-race", "body", nil)
	require.NoError(t, err)
	require.True(t, created)

	loser := make(chan error, 1)
	go func() {
		tx2, err := client.Tx(ctx)
		if err != nil {
			loser <- err
			return
		}
		defer func() { _ = tx2.Rollback() }()
		// Blocks on tx1's uncommitted index entry until tx1 commits,
		// then fails the unique check.
		_, _, err = s.UpsertPattern(ctx, tx2, "sig-race", "body", nil)
		loser <- err
	}()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, tx1.Commit())

	select {
	case err := <-loser:
		require.ErrorIs(t, err, store.ErrConflict)
	case <-time.After(10 * time.Second):
		t.Fatal("racing upsert did not finish")
	}

	// A fresh transaction dedups against the committed winner.
	withTx(t, client, func(tx *ent.Tx) {
		id, created, err := s.UpsertPattern(ctx, tx, "sig-race", "body", nil)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, winnerID, id)
	})
}

func TestTransitionLifecycle(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	s := store.New()

	create := func(t *testing.T, sig string) string {
		var id string
		withTx(t, client, func(tx *ent.Tx) {
			var err error
			id, _, err = s.UpsertPattern(ctx, tx, sig, "body", nil)
			require.NoError(t, err)
		})
		return id
	}

	t.Run("valid transition writes the audit row", func(t *testing.T) {
		id := create(t, "sig-t1")
		withTx(t, client, func(tx *ent.Tx) {
			require.NoError(t, s.TransitionLifecycle(ctx, tx, store.TransitionInput{
				PatternID:     id,
				From:          pattern.LifecycleStatusCandidate,
				To:            pattern.LifecycleStatusProvisional,
				Trigger:       "initial_storage",
				Reason:        "mining confidence above elevation floor",
				CorrelationID: "corr-1",
			}))
		})

		p, err := client.Pattern.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, pattern.LifecycleStatusProvisional, p.LifecycleStatus)
		assert.NotNil(t, p.LastPromotedAt)

		audits, err := client.PatternAudit.Query().
			Where(patternaudit.PatternIDEQ(id)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, audits, 1)
		assert.Equal(t, "candidate", audits[0].FromStatus)
		assert.Equal(t, "provisional", audits[0].ToStatus)
		assert.Equal(t, "initial_storage", audits[0].Trigger)
		assert.Equal(t, "corr-1", audits[0].CorrelationID)
	})

	t.Run("skipping a stage is rejected", func(t *testing.T) {
		id := create(t, "sig-t2")
		tx, err := client.Tx(ctx)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback() }()

		err = s.TransitionLifecycle(ctx, tx, store.TransitionInput{
			PatternID: id,
			From:      pattern.LifecycleStatusCandidate,
			To:        pattern.LifecycleStatusValidated,
			Trigger:   "promotion_eligible",
		})
		require.ErrorIs(t, err, store.ErrInvalidTransition)
	})

	t.Run("stale expectation conflicts", func(t *testing.T) {
		id := create(t, "sig-t3")
		withTx(t, client, func(tx *ent.Tx) {
			require.NoError(t, s.TransitionLifecycle(ctx, tx, store.TransitionInput{
				PatternID: id,
				From:      pattern.LifecycleStatusCandidate,
				To:        pattern.LifecycleStatusProvisional,
				Trigger:   "initial_storage",
			}))
		})

		tx, err := client.Tx(ctx)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback() }()

		err = s.TransitionLifecycle(ctx, tx, store.TransitionInput{
			PatternID: id,
			From:      pattern.LifecycleStatusCandidate,
			To:        pattern.LifecycleStatusProvisional,
			Trigger:   "initial_storage",
		})
		require.ErrorIs(t, err, store.ErrConflict)
	})

	t.Run("missing pattern reports not found", func(t *testing.T) {
		tx, err := client.Tx(ctx)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback() }()

		err = s.TransitionLifecycle(ctx, tx, store.TransitionInput{
			PatternID: "no-such-pattern",
			From:      pattern.LifecycleStatusCandidate,
			To:        pattern.LifecycleStatusProvisional,
			Trigger:   "initial_storage",
		})
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("deprecated is terminal", func(t *testing.T) {
		id := create(t, "sig-t4")
		withTx(t, client, func(tx *ent.Tx) {
			require.NoError(t, s.TransitionLifecycle(ctx, tx, store.TransitionInput{
				PatternID: id, From: pattern.LifecycleStatusCandidate,
				To: pattern.LifecycleStatusProvisional, Trigger: "initial_storage",
			}))
			require.NoError(t, s.TransitionLifecycle(ctx, tx, store.TransitionInput{
				PatternID: id, From: pattern.LifecycleStatusProvisional,
				To: pattern.LifecycleStatusDeprecated, Trigger: "sustained_negative_feedback",
			}))
		})

		tx, err := client.Tx(ctx)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback() }()

		err = s.TransitionLifecycle(ctx, tx, store.TransitionInput{
			PatternID: id, From: pattern.LifecycleStatusDeprecated,
			To: pattern.LifecycleStatusProvisional, Trigger: "initial_storage",
		})
		require.ErrorIs(t, err, store.ErrInvalidTransition)
	})
}

func TestDisableProjection(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	s := store.New()

	var id string
	withTx(t, client, func(tx *ent.Tx) {
		var err error
		id, _, err = s.UpsertPattern(ctx, tx, "sig-d1", "body", nil)
		require.NoError(t, err)
	})

	t.Run("untouched pattern is enabled", func(t *testing.T) {
		withTx(t, client, func(tx *ent.Tx) {
			disabled, _, err := s.IsDisabled(ctx, tx, id)
			require.NoError(t, err)
			assert.False(t, disabled)
		})
	})

	t.Run("disable event flips the projection", func(t *testing.T) {
		withTx(t, client, func(tx *ent.Tx) {
			_, err := s.RecordDisable(ctx, tx, id,
				patterndisable.ActionDisable, patterndisable.ReasonSafety,
				"observed harmful advice", "oncall")
			require.NoError(t, err)
		})
		withTx(t, client, func(tx *ent.Tx) {
			disabled, latest, err := s.IsDisabled(ctx, tx, id)
			require.NoError(t, err)
			require.True(t, disabled)
			assert.Equal(t, patterndisable.ReasonSafety, latest.Reason)
			assert.Equal(t, "oncall", latest.DisabledBy)
		})
	})

	t.Run("latest event wins", func(t *testing.T) {
		withTx(t, client, func(tx *ent.Tx) {
			_, err := s.RecordDisable(ctx, tx, id,
				patterndisable.ActionEnable, patterndisable.ReasonManual, "", "oncall")
			require.NoError(t, err)
		})
		withTx(t, client, func(tx *ent.Tx) {
			disabled, _, err := s.IsDisabled(ctx, tx, id)
			require.NoError(t, err)
			assert.False(t, disabled)

			list, err := s.ListCurrentlyDisabled(ctx, tx)
			require.NoError(t, err)
			assert.Empty(t, list)
		})
	})

	t.Run("currently disabled list projects per pattern", func(t *testing.T) {
		var other string
		withTx(t, client, func(tx *ent.Tx) {
			var err error
			other, _, err = s.UpsertPattern(ctx, tx, "sig-d2", "body", nil)
			require.NoError(t, err)
			_, err = s.RecordDisable(ctx, tx, other,
				patterndisable.ActionDisable, patterndisable.ReasonQuality, "", "sweeper")
			require.NoError(t, err)
		})
		withTx(t, client, func(tx *ent.Tx) {
			list, err := s.ListCurrentlyDisabled(ctx, tx)
			require.NoError(t, err)
			require.Len(t, list, 1)
			assert.Equal(t, other, list[0].PatternID)
		})
	})
}

func TestEligibilityQueries(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	s := store.New()

	seed := func(t *testing.T, sig string, status pattern.LifecycleStatus, effectiveness float64, samples, lowWindows int) string {
		var id string
		withTx(t, client, func(tx *ent.Tx) {
			var err error
			id, _, err = s.UpsertPattern(ctx, tx, sig, "body", nil)
			require.NoError(t, err)
			if status != pattern.LifecycleStatusCandidate {
				require.NoError(t, s.TransitionLifecycle(ctx, tx, store.TransitionInput{
					PatternID: id, From: pattern.LifecycleStatusCandidate,
					To: pattern.LifecycleStatusProvisional, Trigger: "initial_storage",
				}))
			}
			if status == pattern.LifecycleStatusValidated {
				require.NoError(t, s.TransitionLifecycle(ctx, tx, store.TransitionInput{
					PatternID: id, From: pattern.LifecycleStatusProvisional,
					To: pattern.LifecycleStatusValidated, Trigger: "promotion_eligible",
				}))
			}
			_, err = tx.FeedbackAggregate.Create().
				SetPatternID(id).
				SetEffectiveness(effectiveness).
				SetSampleCount(samples).
				SetConsecutiveLowWindows(lowWindows).
				Save(ctx)
			require.NoError(t, err)
		})
		return id
	}

	strong := seed(t, "sig-e1", pattern.LifecycleStatusProvisional, 0.82, 40, 0)
	seed(t, "sig-e2", pattern.LifecycleStatusProvisional, 0.90, 3, 0)  // too few samples
	seed(t, "sig-e3", pattern.LifecycleStatusProvisional, 0.60, 50, 0) // below threshold
	failing := seed(t, "sig-e4", pattern.LifecycleStatusValidated, 0.30, 50, 6)
	seed(t, "sig-e5", pattern.LifecycleStatusValidated, 0.30, 50, 2) // not sustained yet

	t.Run("promotion candidates", func(t *testing.T) {
		withTx(t, client, func(tx *ent.Tx) {
			patterns, err := s.ListEligibleForPromotion(ctx, tx, 0.75, 10)
			require.NoError(t, err)
			require.Len(t, patterns, 1)
			assert.Equal(t, strong, patterns[0].ID)
		})
	})

	t.Run("demotion candidates", func(t *testing.T) {
		withTx(t, client, func(tx *ent.Tx) {
			patterns, err := s.ListEligibleForDemotion(ctx, tx, 5)
			require.NoError(t, err)
			require.Len(t, patterns, 1)
			assert.Equal(t, failing, patterns[0].ID)
		})
	})
}

func TestQueries(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	s := store.New()

	var id string
	withTx(t, client, func(tx *ent.Tx) {
		var err error
		id, _, err = s.UpsertPattern(ctx, tx, "sig-q1", "body", nil)
		require.NoError(t, err)
	})

	t.Run("by id", func(t *testing.T) {
		withTx(t, client, func(tx *ent.Tx) {
			p, err := s.QueryByID(ctx, tx, id)
			require.NoError(t, err)
			assert.Equal(t, "sig-q1", p.SignatureHash)

			_, err = s.QueryByID(ctx, tx, "missing")
			require.ErrorIs(t, err, store.ErrNotFound)
		})
	})

	t.Run("by signature", func(t *testing.T) {
		withTx(t, client, func(tx *ent.Tx) {
			p, err := s.QueryBySignature(ctx, tx, "sig-q1")
			require.NoError(t, err)
			assert.Equal(t, id, p.ID)

			_, err = s.QueryBySignature(ctx, tx, "missing")
			require.ErrorIs(t, err, store.ErrNotFound)
		})
	})

	t.Run("injection requires an existing pattern", func(t *testing.T) {
		withTx(t, client, func(tx *ent.Tx) {
			injectionID, err := s.RecordInjection(ctx, tx, id, "sess-1", "")
			require.NoError(t, err)
			assert.NotEmpty(t, injectionID)
		})

		tx, err := client.Tx(ctx)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback() }()
		_, err = s.RecordInjection(ctx, tx, "missing", "sess-1", "control")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}
