// Package store implements the pattern store: idempotent pattern creation,
// atomic lifecycle transitions with audit rows, injection and disable
// records, and the eligibility queries used by the lifecycle controller.
//
// Every operation takes an externally-supplied *ent.Tx so callers compose
// multi-step operations atomically (store pattern + claim idempotency in
// one commit).
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/onex-platform/omniintelligence/ent"
	"github.com/onex-platform/omniintelligence/ent/feedbackaggregate"
	"github.com/onex-platform/omniintelligence/ent/pattern"
)

// allowedTransitions is the full set of legal lifecycle moves. The status
// order is total (CANDIDATE → PROVISIONAL → VALIDATED → DEPRECATED) and
// nothing ever moves back to CANDIDATE.
var allowedTransitions = map[pattern.LifecycleStatus][]pattern.LifecycleStatus{
	pattern.LifecycleStatusCandidate:   {pattern.LifecycleStatusProvisional},
	pattern.LifecycleStatusProvisional: {pattern.LifecycleStatusValidated, pattern.LifecycleStatusDeprecated},
	pattern.LifecycleStatusValidated:   {pattern.LifecycleStatusDeprecated},
	pattern.LifecycleStatusDeprecated:  nil, // terminal
}

// transitionAllowed reports whether from → to is in the allowed set.
func transitionAllowed(from, to pattern.LifecycleStatus) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Store exposes pattern persistence operations.
type Store struct{}

// New creates a pattern store.
func New() *Store {
	return &Store{}
}

// UpsertPattern stores a pattern if no non-deprecated pattern with the
// same signature exists. Returns the pattern ID and whether a new row was
// created. A deduplication hit returns the existing ID unchanged; losing
// a concurrent insert race returns ErrConflict.
func (s *Store) UpsertPattern(ctx context.Context, tx *ent.Tx, signatureHash, body string, metadata map[string]interface{}) (string, bool, error) {
	existing, err := tx.Pattern.Query().
		Where(
			pattern.SignatureHashEQ(signatureHash),
			pattern.LifecycleStatusNEQ(pattern.LifecycleStatusDeprecated),
		).
		Only(ctx)
	if err == nil {
		return existing.ID, false, nil
	}
	if !ent.IsNotFound(err) {
		return "", false, fmt.Errorf("failed to query pattern by signature: %w", err)
	}

	create := tx.Pattern.Create().
		SetID(uuid.NewString()).
		SetSignatureHash(signatureHash).
		SetBody(body)
	if metadata != nil {
		create = create.SetMetadata(metadata)
	}

	created, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost a concurrent upsert race on the partial unique index.
			// The constraint error aborted the transaction, so the
			// winner's row cannot be read here; callers treat the
			// conflict as transient and the redelivery dedups against
			// the committed winner.
			return "", false, fmt.Errorf("%w: concurrent insert for signature %s", ErrConflict, signatureHash)
		}
		return "", false, fmt.Errorf("failed to create pattern: %w", err)
	}

	return created.ID, true, nil
}

// TransitionInput carries the context recorded on the audit row.
type TransitionInput struct {
	PatternID        string
	From             pattern.LifecycleStatus // expected current status
	To               pattern.LifecycleStatus
	Trigger          string
	Reason           string
	EvidenceSnapshot map[string]interface{}
	CorrelationID    string
}

// TransitionLifecycle validates and applies a lifecycle transition,
// writing the audit row in the same transaction. The update is guarded by
// WHERE lifecycle_status = expected, so concurrent controllers cannot
// double-advance a pattern.
func (s *Store) TransitionLifecycle(ctx context.Context, tx *ent.Tx, in TransitionInput) error {
	if !transitionAllowed(in.From, in.To) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, in.From, in.To)
	}

	now := time.Now()
	update := tx.Pattern.Update().
		Where(
			pattern.IDEQ(in.PatternID),
			pattern.LifecycleStatusEQ(in.From),
		).
		SetLifecycleStatus(in.To)

	switch in.To {
	case pattern.LifecycleStatusValidated:
		update = update.SetLastPromotedAt(now)
	case pattern.LifecycleStatusDeprecated:
		update = update.SetLastDemotedAt(now).SetDeprecatedAt(now)
	case pattern.LifecycleStatusProvisional:
		update = update.SetLastPromotedAt(now)
	}

	n, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update pattern status: %w", err)
	}
	if n == 0 {
		// Distinguish a missing pattern from a stale expectation.
		exists, qerr := tx.Pattern.Query().Where(pattern.IDEQ(in.PatternID)).Exist(ctx)
		if qerr != nil {
			return fmt.Errorf("failed to check pattern existence: %w", qerr)
		}
		if !exists {
			return fmt.Errorf("%w: %s", ErrNotFound, in.PatternID)
		}
		return fmt.Errorf("%w: pattern %s is no longer %s", ErrConflict, in.PatternID, in.From)
	}

	audit := tx.PatternAudit.Create().
		SetPatternID(in.PatternID).
		SetFromStatus(string(in.From)).
		SetToStatus(string(in.To)).
		SetTrigger(in.Trigger)
	if in.Reason != "" {
		audit = audit.SetReason(in.Reason)
	}
	if in.EvidenceSnapshot != nil {
		audit = audit.SetEvidenceSnapshot(in.EvidenceSnapshot)
	}
	if in.CorrelationID != "" {
		audit = audit.SetCorrelationID(in.CorrelationID)
	}
	if _, err := audit.Save(ctx); err != nil {
		return fmt.Errorf("failed to write audit row: %w", err)
	}

	return nil
}

// RecordInjection stores an A/B injection record linking a pattern to a
// session. cohort defaults to "treatment" when empty.
func (s *Store) RecordInjection(ctx context.Context, tx *ent.Tx, patternID, sessionID, cohort string) (string, error) {
	create := tx.PatternInjection.Create().
		SetID(uuid.NewString()).
		SetPatternID(patternID).
		SetSessionID(sessionID)
	if cohort != "" {
		create = create.SetCohort(cohort)
	}

	injection, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, patternID)
		}
		return "", fmt.Errorf("failed to record injection: %w", err)
	}
	return injection.ID, nil
}

// QueryByID returns the pattern with the given ID.
func (s *Store) QueryByID(ctx context.Context, tx *ent.Tx, patternID string) (*ent.Pattern, error) {
	p, err := tx.Pattern.Get(ctx, patternID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, patternID)
		}
		return nil, fmt.Errorf("failed to query pattern: %w", err)
	}
	return p, nil
}

// QueryBySignature returns the non-deprecated pattern with the given
// signature hash, or ErrNotFound.
func (s *Store) QueryBySignature(ctx context.Context, tx *ent.Tx, signatureHash string) (*ent.Pattern, error) {
	p, err := tx.Pattern.Query().
		Where(
			pattern.SignatureHashEQ(signatureHash),
			pattern.LifecycleStatusNEQ(pattern.LifecycleStatusDeprecated),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: signature %s", ErrNotFound, signatureHash)
		}
		return nil, fmt.Errorf("failed to query pattern by signature: %w", err)
	}
	return p, nil
}

// ListEligibleForPromotion returns PROVISIONAL patterns whose feedback
// aggregate clears the promotion gate. The disable check runs separately
// in the lifecycle controller since "currently disabled" is a projection
// over the disable event log.
func (s *Store) ListEligibleForPromotion(ctx context.Context, tx *ent.Tx, minEffectiveness float64, minSamples int) ([]*ent.Pattern, error) {
	patterns, err := tx.Pattern.Query().
		Where(
			pattern.LifecycleStatusEQ(pattern.LifecycleStatusProvisional),
			pattern.HasFeedbackAggregateWith(
				feedbackaggregate.EffectivenessGTE(minEffectiveness),
				feedbackaggregate.SampleCountGTE(minSamples),
			),
		).
		Order(ent.Asc(pattern.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list promotion candidates: %w", err)
	}
	return patterns, nil
}

// ListEligibleForDemotion returns VALIDATED patterns with a sustained
// negative signal: enough consecutive window evaluations below the
// demotion threshold.
func (s *Store) ListEligibleForDemotion(ctx context.Context, tx *ent.Tx, minConsecutiveLowWindows int) ([]*ent.Pattern, error) {
	patterns, err := tx.Pattern.Query().
		Where(
			pattern.LifecycleStatusEQ(pattern.LifecycleStatusValidated),
			pattern.HasFeedbackAggregateWith(
				feedbackaggregate.ConsecutiveLowWindowsGTE(minConsecutiveLowWindows),
			),
		).
		Order(ent.Asc(pattern.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list demotion candidates: %w", err)
	}
	return patterns, nil
}
