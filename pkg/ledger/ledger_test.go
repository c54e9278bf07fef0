package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onex-platform/omniintelligence/ent"
	"github.com/onex-platform/omniintelligence/pkg/config"
	"github.com/onex-platform/omniintelligence/pkg/ledger"
	"github.com/onex-platform/omniintelligence/test/util"
)

func inTx(t *testing.T, client *ent.Client, fn func(tx *ent.Tx)) {
	t.Helper()
	tx, err := client.Tx(context.Background())
	require.NoError(t, err)
	fn(tx)
	require.NoError(t, tx.Commit())
}

func TestLedgerSeen(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	l := ledger.New()

	t.Run("first delivery claims the pair", func(t *testing.T) {
		inTx(t, client, func(tx *ent.Tx) {
			outcome, err := l.Seen(ctx, tx, "evt-1", "hook-event-ingestion")
			require.NoError(t, err)
			assert.False(t, outcome.Duplicate)
		})
	})

	t.Run("second delivery is a duplicate", func(t *testing.T) {
		inTx(t, client, func(tx *ent.Tx) {
			outcome, err := l.Seen(ctx, tx, "evt-1", "hook-event-ingestion")
			require.NoError(t, err)
			assert.True(t, outcome.Duplicate)
		})
	})

	t.Run("same event under another handler is fresh", func(t *testing.T) {
		inTx(t, client, func(tx *ent.Tx) {
			outcome, err := l.Seen(ctx, tx, "evt-1", "session-outcome-feedback")
			require.NoError(t, err)
			assert.False(t, outcome.Duplicate)
		})
	})

	t.Run("rolled back claim is released", func(t *testing.T) {
		tx, err := client.Tx(ctx)
		require.NoError(t, err)
		outcome, err := l.Seen(ctx, tx, "evt-2", "hook-event-ingestion")
		require.NoError(t, err)
		assert.False(t, outcome.Duplicate)
		require.NoError(t, tx.Rollback())

		inTx(t, client, func(tx *ent.Tx) {
			outcome, err := l.Seen(ctx, tx, "evt-2", "hook-event-ingestion")
			require.NoError(t, err)
			assert.False(t, outcome.Duplicate)
		})
	})
}

func TestLedgerRecordResult(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	l := ledger.New()

	t.Run("result hash comes back on duplicate", func(t *testing.T) {
		inTx(t, client, func(tx *ent.Tx) {
			outcome, err := l.Seen(ctx, tx, "evt-3", "hook-event-ingestion")
			require.NoError(t, err)
			require.False(t, outcome.Duplicate)
			require.NoError(t, l.RecordResult(ctx, tx, "evt-3", "hook-event-ingestion", "hash-abc"))
		})

		inTx(t, client, func(tx *ent.Tx) {
			outcome, err := l.Seen(ctx, tx, "evt-3", "hook-event-ingestion")
			require.NoError(t, err)
			assert.True(t, outcome.Duplicate)
			assert.Equal(t, "hash-abc", outcome.ResultHash)
		})
	})

	t.Run("recording against an unclaimed pair fails", func(t *testing.T) {
		tx, err := client.Tx(ctx)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback() }()
		require.Error(t, l.RecordResult(ctx, tx, "evt-never", "hook-event-ingestion", "h"))
	})
}

type fakeBusRetention struct {
	cutoffs []time.Time
}

func (f *fakeBusRetention) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	f.cutoffs = append(f.cutoffs, cutoff)
	return 0, nil
}

func TestSweeperEvictsExpiredEntries(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	// One expired entry, one fresh.
	_, err := client.IdempotencyRecord.Create().
		SetEventID("evt-old").
		SetHandlerName("hook-event-ingestion").
		SetFirstSeenAt(time.Now().AddDate(0, 0, -45)).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.IdempotencyRecord.Create().
		SetEventID("evt-new").
		SetHandlerName("hook-event-ingestion").
		Save(ctx)
	require.NoError(t, err)

	bus := &fakeBusRetention{}
	sweeper := ledger.NewSweeper(client, bus, &config.IdempotencyConfig{
		RetentionDays: 30,
		SweepInterval: time.Hour,
	})
	sweeper.Start(ctx)
	sweeper.Stop()

	remaining, err := client.IdempotencyRecord.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "evt-new", remaining[0].EventID)

	// Bus retention runs with a strictly older cutoff than the ledger's.
	require.Len(t, bus.cutoffs, 1)
	assert.True(t, bus.cutoffs[0].Before(time.Now().AddDate(0, 0, -30)))
}
