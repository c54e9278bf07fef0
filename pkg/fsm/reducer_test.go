package fsm_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onex-platform/omniintelligence/ent"
	"github.com/onex-platform/omniintelligence/pkg/fsm"
	"github.com/onex-platform/omniintelligence/pkg/metrics"
	"github.com/onex-platform/omniintelligence/test/util"
)

func apply(t *testing.T, client *ent.Client, r *fsm.Reducer, kind fsm.Kind, entityID, trigger, eventID string) *fsm.Result {
	t.Helper()
	ctx := context.Background()
	tx, err := client.Tx(ctx)
	require.NoError(t, err)
	result, err := r.Apply(ctx, tx, kind, entityID, trigger, eventID)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	return result
}

func TestReducerApply(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	r := fsm.NewReducer(metrics.NewNop())

	t.Run("first trigger creates the machine at idle", func(t *testing.T) {
		result := apply(t, client, r, fsm.KindIngestion, "evt-1", fsm.TriggerReceive, "msg-1")
		assert.True(t, result.Applied)
		assert.Equal(t, fsm.StateIdle, result.FromState)
		assert.Equal(t, fsm.StateReceived, result.ToState)

		current, err := r.Current(ctx, client, fsm.KindIngestion, "evt-1")
		require.NoError(t, err)
		assert.Equal(t, fsm.StateReceived, current)
	})

	t.Run("history rows accumulate in order", func(t *testing.T) {
		apply(t, client, r, fsm.KindIngestion, "evt-1", fsm.TriggerProcess, "msg-2")
		apply(t, client, r, fsm.KindIngestion, "evt-1", fsm.TriggerIndex, "msg-3")

		history, err := r.History(ctx, client, fsm.KindIngestion, "evt-1")
		require.NoError(t, err)
		require.Len(t, history, 3)
		assert.Equal(t, fsm.StateIdle, history[0].FromState)
		assert.Equal(t, fsm.StateReceived, history[0].ToState)
		assert.Equal(t, fsm.StateIndexed, history[2].ToState)
		assert.Equal(t, "msg-3", history[2].EventID)
	})

	t.Run("undefined transition is rejected without error", func(t *testing.T) {
		// evt-1 is terminal now; nothing applies.
		result := apply(t, client, r, fsm.KindIngestion, "evt-1", fsm.TriggerReceive, "msg-4")
		assert.False(t, result.Applied)
		assert.Equal(t, fsm.StateIndexed, result.FromState)

		history, err := r.History(ctx, client, fsm.KindIngestion, "evt-1")
		require.NoError(t, err)
		assert.Len(t, history, 3, "rejected triggers leave no history")
	})

	t.Run("machines are isolated per kind and entity", func(t *testing.T) {
		apply(t, client, r, fsm.KindQualityAssessment, "evt-1", fsm.TriggerIngest, "")
		apply(t, client, r, fsm.KindIngestion, "evt-2", fsm.TriggerReceive, "")

		current, err := r.Current(ctx, client, fsm.KindQualityAssessment, "evt-1")
		require.NoError(t, err)
		assert.Equal(t, fsm.StateRaw, current)

		current, err = r.Current(ctx, client, fsm.KindIngestion, "evt-2")
		require.NoError(t, err)
		assert.Equal(t, fsm.StateReceived, current)
	})

	t.Run("untouched machine reads as idle", func(t *testing.T) {
		current, err := r.Current(ctx, client, fsm.KindPatternLearning, "nobody")
		require.NoError(t, err)
		assert.Equal(t, fsm.StateIdle, current)
	})

	t.Run("rolled back transition leaves no trace", func(t *testing.T) {
		tx, err := client.Tx(ctx)
		require.NoError(t, err)
		result, err := r.Apply(ctx, tx, fsm.KindPatternLearning, "evt-3", fsm.TriggerStart, "")
		require.NoError(t, err)
		assert.True(t, result.Applied)
		require.NoError(t, tx.Rollback())

		current, err := r.Current(ctx, client, fsm.KindPatternLearning, "evt-3")
		require.NoError(t, err)
		assert.Equal(t, fsm.StateIdle, current)
	})
}
