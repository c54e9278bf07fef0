// Package ledger implements the idempotency ledger: a table of
// (event_id, handler_name) pairs that absorbs duplicate bus deliveries.
package ledger

import (
	"context"
	"fmt"

	"github.com/onex-platform/omniintelligence/ent"
	"github.com/onex-platform/omniintelligence/ent/idempotencyrecord"
)

// Outcome is the result of checking an event against the ledger.
type Outcome struct {
	// Duplicate is true when this (event, handler) pair was already
	// processed.
	Duplicate bool

	// ResultHash is the cached hash of the first processing's observable
	// outcome, when one was recorded. Empty otherwise.
	ResultHash string
}

// Ledger checks and marks processed events. All writes go through the
// caller's transaction: marking must be atomic with the handler's
// downstream writes so partial processing never records an event as seen.
type Ledger struct{}

// New creates a ledger.
func New() *Ledger {
	return &Ledger{}
}

// Seen checks whether (eventID, handlerName) was already processed and,
// if not, claims it inside tx. The claim row only becomes visible when
// the caller commits; a rollback releases it.
//
// Two concurrent claims of the same pair resolve at commit time via the
// unique index: the loser gets a constraint error on commit, which the
// dispatcher treats as a transient failure and redelivers, at which point
// the ledger reports duplicate.
func (l *Ledger) Seen(ctx context.Context, tx *ent.Tx, eventID, handlerName string) (*Outcome, error) {
	existing, err := tx.IdempotencyRecord.Query().
		Where(
			idempotencyrecord.EventIDEQ(eventID),
			idempotencyrecord.HandlerNameEQ(handlerName),
		).
		Only(ctx)
	if err == nil {
		return &Outcome{Duplicate: true, ResultHash: existing.ResultHash}, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query idempotency ledger: %w", err)
	}

	_, err = tx.IdempotencyRecord.Create().
		SetEventID(eventID).
		SetHandlerName(handlerName).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost a race with a concurrent claim that already committed.
			return &Outcome{Duplicate: true}, nil
		}
		return nil, fmt.Errorf("failed to claim idempotency record: %w", err)
	}

	return &Outcome{Duplicate: false}, nil
}

// RecordResult stores the hash of the handler's observable outcome on the
// claim row, for return on later duplicate deliveries.
func (l *Ledger) RecordResult(ctx context.Context, tx *ent.Tx, eventID, handlerName, resultHash string) error {
	n, err := tx.IdempotencyRecord.Update().
		Where(
			idempotencyrecord.EventIDEQ(eventID),
			idempotencyrecord.HandlerNameEQ(handlerName),
		).
		SetResultHash(resultHash).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to record result hash: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("no idempotency record claimed for event %s handler %s", eventID, handlerName)
	}
	return nil
}
