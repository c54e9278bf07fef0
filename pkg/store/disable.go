package store

import (
	"context"
	"fmt"

	"github.com/onex-platform/omniintelligence/ent"
	"github.com/onex-platform/omniintelligence/ent/patterndisable"
)

// RecordDisable appends a disable or enable event to the kill-switch log.
func (s *Store) RecordDisable(ctx context.Context, tx *ent.Tx, patternID string, action patterndisable.Action, reason patterndisable.Reason, detail, disabledBy string) (*ent.PatternDisable, error) {
	create := tx.PatternDisable.Create().
		SetPatternID(patternID).
		SetAction(action).
		SetReason(reason).
		SetDisabledBy(disabledBy)
	if detail != "" {
		create = create.SetDetail(detail)
	}

	event, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, patternID)
		}
		return nil, fmt.Errorf("failed to record disable event: %w", err)
	}
	return event, nil
}

// IsDisabled projects the latest disable/enable event for the pattern.
// Returns the latest event when the pattern is currently disabled.
func (s *Store) IsDisabled(ctx context.Context, tx *ent.Tx, patternID string) (bool, *ent.PatternDisable, error) {
	latest, err := tx.PatternDisable.Query().
		Where(patterndisable.PatternIDEQ(patternID)).
		Order(ent.Desc(patterndisable.FieldCreatedAt), ent.Desc(patterndisable.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, nil, nil
		}
		return false, nil, fmt.Errorf("failed to query disable events: %w", err)
	}
	if latest.Action == patterndisable.ActionDisable {
		return true, latest, nil
	}
	return false, nil, nil
}

// ListCurrentlyDisabled projects the full disable event log down to the
// set of patterns whose latest event is a disable. Events arrive newest
// first, so the first event seen per pattern decides.
func (s *Store) ListCurrentlyDisabled(ctx context.Context, tx *ent.Tx) ([]*ent.PatternDisable, error) {
	events, err := tx.PatternDisable.Query().
		Order(ent.Desc(patterndisable.FieldCreatedAt), ent.Desc(patterndisable.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list disable events: %w", err)
	}

	seen := make(map[string]bool)
	var disabled []*ent.PatternDisable
	for _, e := range events {
		if seen[e.PatternID] {
			continue
		}
		seen[e.PatternID] = true
		if e.Action == patterndisable.ActionDisable {
			disabled = append(disabled, e)
		}
	}
	return disabled, nil
}
