package bus

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Message is one stored bus message. ID is the autoincrement row ID and
// doubles as the offset: globally monotonic, so monotonic within any
// (topic, partition) slice.
type Message struct {
	ID        int64
	Topic     string
	Partition int
	Key       string
	Envelope  []byte
	CreatedAt time.Time
}

// Store persists and fetches bus messages and consumer-group offsets.
// It works on the shared *sql.DB directly: the append path must be able
// to join arbitrary caller transactions, which the Ent client cannot
// offer for raw pg_notify calls.
type Store struct {
	db         *sql.DB
	partitions int
}

// NewStore creates a bus store over the shared connection pool.
func NewStore(db *sql.DB, partitions int) *Store {
	if partitions < 1 {
		partitions = 1
	}
	return &Store{db: db, partitions: partitions}
}

// Partitions returns the configured partition count.
func (s *Store) Partitions() int {
	return s.partitions
}

// Append persists one message and fires the topic's NOTIFY in a single
// transaction. pg_notify is transactional, so consumers only wake after
// the row is visible.
func (s *Store) Append(ctx context.Context, topic, key string, envelope []byte) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin append transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	id, err := s.AppendTx(ctx, tx, topic, key, envelope)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit append: %w", err)
	}
	return id, nil
}

// AppendTx persists one message inside the caller's transaction. Used by
// handlers that emit events atomically with their state writes. The
// NOTIFY is held until the caller commits.
func (s *Store) AppendTx(ctx context.Context, tx *sql.Tx, topic, key string, envelope []byte) (int64, error) {
	partition := PartitionFor(key, s.partitions)

	var id int64
	err := tx.QueryRowContext(ctx,
		`INSERT INTO bus_messages (topic, partition, key, envelope, created_at)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		topic, partition, key, envelope, time.Now(),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to persist bus message: %w", err)
	}

	// NOTIFY payload is just the partition number. Consumers treat it as
	// a wakeup hint and read actual messages from the table.
	_, err = tx.ExecContext(ctx, "SELECT pg_notify($1, $2)",
		NotifyChannel(topic), fmt.Sprintf("%d", partition))
	if err != nil {
		return 0, fmt.Errorf("pg_notify failed: %w", err)
	}

	return id, nil
}

// Fetch returns up to limit messages on (topic, partition) with ID greater
// than afterID, in ID order.
func (s *Store) Fetch(ctx context.Context, topic string, partition int, afterID int64, limit int) ([]Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, topic, partition, COALESCE(key, ''), envelope, created_at
		 FROM bus_messages
		 WHERE topic = $1 AND partition = $2 AND id > $3
		 ORDER BY id ASC
		 LIMIT $4`,
		topic, partition, afterID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bus messages: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var messages []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.Topic, &m.Partition, &m.Key, &m.Envelope, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bus message: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read bus messages: %w", err)
	}
	return messages, nil
}

// CommittedOffset returns the last committed message ID for the consumer
// group on (topic, partition), or 0 if the group has never committed.
func (s *Store) CommittedOffset(ctx context.Context, group, topic string, partition int) (int64, error) {
	var committed int64
	err := s.db.QueryRowContext(ctx,
		`SELECT committed FROM bus_offsets
		 WHERE consumer_group = $1 AND topic = $2 AND partition = $3`,
		group, topic, partition,
	).Scan(&committed)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read committed offset: %w", err)
	}
	return committed, nil
}

// CommitOffset records the last processed message ID for the consumer
// group. The GREATEST guard makes commits monotonic even if a stale
// worker retries an old commit.
func (s *Store) CommitOffset(ctx context.Context, group, topic string, partition int, messageID int64) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO bus_offsets (consumer_group, topic, partition, committed, updated_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (consumer_group, topic, partition)
		 DO UPDATE SET committed = GREATEST(bus_offsets.committed, EXCLUDED.committed),
		               updated_at = EXCLUDED.updated_at`,
		group, topic, partition, messageID, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to commit offset: %w", err)
	}
	return nil
}

// DeleteOlderThan removes messages created before the cutoff. Used by the
// retention sweep; the offset retention window must exceed the idempotency
// ledger retention to avoid re-delivery after ledger eviction.
func (s *Store) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM bus_messages WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old bus messages: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted bus messages: %w", err)
	}
	return n, nil
}
