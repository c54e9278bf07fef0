package bus_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onex-platform/omniintelligence/pkg/bus"
	"github.com/onex-platform/omniintelligence/test/util"
)

func TestStoreAppendAndFetch(t *testing.T) {
	_, db := util.SetupTestDatabase(t)
	ctx := context.Background()
	store := bus.NewStore(db, 4)

	topic := bus.CommandTopic("test", "claude-hook-event")

	t.Run("append assigns monotonic ids", func(t *testing.T) {
		first, err := store.Append(ctx, topic, "key-a", []byte(`{"n":1}`))
		require.NoError(t, err)
		second, err := store.Append(ctx, topic, "key-a", []byte(`{"n":2}`))
		require.NoError(t, err)
		assert.Greater(t, second, first)
	})

	t.Run("fetch returns only the keyed partition after the offset", func(t *testing.T) {
		partition := bus.PartitionFor("key-a", 4)
		messages, err := store.Fetch(ctx, topic, partition, 0, 10)
		require.NoError(t, err)
		require.Len(t, messages, 2)
		assert.Equal(t, []byte(`{"n":1}`), messages[0].Envelope)
		assert.Equal(t, "key-a", messages[0].Key)
		assert.Equal(t, partition, messages[0].Partition)

		// Advancing past the first message hides it.
		messages, err = store.Fetch(ctx, topic, partition, messages[0].ID, 10)
		require.NoError(t, err)
		require.Len(t, messages, 1)
		assert.Equal(t, []byte(`{"n":2}`), messages[0].Envelope)
	})

	t.Run("fetch honors the limit", func(t *testing.T) {
		partition := bus.PartitionFor("key-a", 4)
		messages, err := store.Fetch(ctx, topic, partition, 0, 1)
		require.NoError(t, err)
		assert.Len(t, messages, 1)
	})

	t.Run("other partitions stay empty", func(t *testing.T) {
		used := bus.PartitionFor("key-a", 4)
		for p := 0; p < 4; p++ {
			if p == used {
				continue
			}
			messages, err := store.Fetch(ctx, topic, p, 0, 10)
			require.NoError(t, err)
			assert.Empty(t, messages)
		}
	})
}

func TestStoreAppendTx(t *testing.T) {
	_, db := util.SetupTestDatabase(t)
	ctx := context.Background()
	store := bus.NewStore(db, 2)
	topic := bus.EventTopic("test", "pattern-stored")

	t.Run("rolled back append leaves no message", func(t *testing.T) {
		tx, err := db.BeginTx(ctx, nil)
		require.NoError(t, err)
		_, err = store.AppendTx(ctx, tx, topic, "k", []byte(`{}`))
		require.NoError(t, err)
		require.NoError(t, tx.Rollback())

		messages, err := store.Fetch(ctx, topic, bus.PartitionFor("k", 2), 0, 10)
		require.NoError(t, err)
		assert.Empty(t, messages)
	})

	t.Run("committed append is visible", func(t *testing.T) {
		tx, err := db.BeginTx(ctx, nil)
		require.NoError(t, err)
		_, err = store.AppendTx(ctx, tx, topic, "k", []byte(`{}`))
		require.NoError(t, err)
		require.NoError(t, tx.Commit())

		messages, err := store.Fetch(ctx, topic, bus.PartitionFor("k", 2), 0, 10)
		require.NoError(t, err)
		assert.Len(t, messages, 1)
	})
}

func TestStoreOffsets(t *testing.T) {
	_, db := util.SetupTestDatabase(t)
	ctx := context.Background()
	store := bus.NewStore(db, 1)
	topic := bus.CommandTopic("test", "session-outcome")

	t.Run("uncommitted group reads zero", func(t *testing.T) {
		committed, err := store.CommittedOffset(ctx, "group-a", topic, 0)
		require.NoError(t, err)
		assert.Zero(t, committed)
	})

	t.Run("commit then read back", func(t *testing.T) {
		require.NoError(t, store.CommitOffset(ctx, "group-a", topic, 0, 42))
		committed, err := store.CommittedOffset(ctx, "group-a", topic, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(42), committed)
	})

	t.Run("stale commit never moves the offset backwards", func(t *testing.T) {
		require.NoError(t, store.CommitOffset(ctx, "group-a", topic, 0, 7))
		committed, err := store.CommittedOffset(ctx, "group-a", topic, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(42), committed)
	})

	t.Run("groups are independent", func(t *testing.T) {
		committed, err := store.CommittedOffset(ctx, "group-b", topic, 0)
		require.NoError(t, err)
		assert.Zero(t, committed)
	})
}

func TestStoreDeleteOlderThan(t *testing.T) {
	_, db := util.SetupTestDatabase(t)
	ctx := context.Background()
	store := bus.NewStore(db, 1)
	topic := bus.CommandTopic("test", "claude-hook-event")

	for i := 0; i < 3; i++ {
		_, err := store.Append(ctx, topic, "", []byte(fmt.Sprintf(`{"n":%d}`, i)))
		require.NoError(t, err)
	}

	t.Run("past cutoff deletes nothing", func(t *testing.T) {
		n, err := store.DeleteOlderThan(ctx, time.Now().Add(-time.Hour))
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("future cutoff deletes everything", func(t *testing.T) {
		n, err := store.DeleteOlderThan(ctx, time.Now().Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)

		messages, err := store.Fetch(ctx, topic, 0, 0, 10)
		require.NoError(t, err)
		assert.Empty(t, messages)
	})
}
