package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/onex-platform/omniintelligence/ent"
	"github.com/onex-platform/omniintelligence/ent/sessionoutcome"
	"github.com/onex-platform/omniintelligence/pkg/bus"
	"github.com/onex-platform/omniintelligence/pkg/feedback"
	"github.com/onex-platform/omniintelligence/pkg/registry"
)

// SessionOutcomePayload is the session-outcome command payload.
type SessionOutcomePayload struct {
	SessionID    string                 `json:"session_id"`
	Outcome      string                 `json:"outcome"`
	QualityDelta float64                `json:"quality_delta"`
	OccurredAt   time.Time              `json:"occurred_at"`
	Patterns     []PatternOutcomeRecord `json:"patterns"`
}

// PatternOutcomeRecord is one advised pattern's share of the outcome.
type PatternOutcomeRecord struct {
	PatternID    string `json:"pattern_id"`
	WasAdvised   bool   `json:"was_advised"`
	WasUsed      bool   `json:"was_used"`
	WasCorrected bool   `json:"was_corrected"`
}

var outcomeValues = map[string]sessionoutcome.Outcome{
	"success": sessionoutcome.OutcomeSuccess,
	"failure": sessionoutcome.OutcomeFailure,
	"partial": sessionoutcome.OutcomePartial,
}

// HandleSessionOutcome applies a session's feedback to every referenced
// pattern's rolling window, refreshes evidence tiers, and runs the
// promotion and demotion sweeps.
//
// Each pattern's window update commits in its own transaction inside the
// aggregator; a failure on one pattern never rolls back the others. When
// any pattern fails, the handler reports a permanent error so the message
// lands on the DLQ with the already-committed updates intact.
func (h *Handlers) HandleSessionOutcome(ctx context.Context, mc *registry.MessageContext, tx *ent.Tx, env *bus.Envelope) error {
	log := mc.Logger()

	var payload SessionOutcomePayload
	if err := env.UnmarshalPayload(&payload); err != nil {
		return registry.Validation(err)
	}
	if payload.SessionID == "" {
		return registry.Validation(fmt.Errorf("session outcome missing session_id"))
	}
	outcome, ok := outcomeValues[payload.Outcome]
	if !ok {
		return registry.Validation(fmt.Errorf("unknown outcome %q", payload.Outcome))
	}
	if len(payload.Patterns) == 0 {
		log.Debug("Session outcome references no patterns", "session_id", payload.SessionID)
		return nil
	}

	occurredAt := payload.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = env.OccurredAt
	}

	// 1. Per-pattern window updates, isolated transactions.
	inputs := make([]feedback.OutcomeInput, 0, len(payload.Patterns))
	for _, p := range payload.Patterns {
		if p.PatternID == "" {
			return registry.Validation(fmt.Errorf("pattern record missing pattern_id"))
		}
		inputs = append(inputs, feedback.OutcomeInput{
			EventID:      env.EventID,
			SessionID:    payload.SessionID,
			PatternID:    p.PatternID,
			Outcome:      outcome,
			WasAdvised:   p.WasAdvised,
			WasUsed:      p.WasUsed,
			WasCorrected: p.WasCorrected,
			QualityDelta: payload.QualityDelta,
			OccurredAt:   occurredAt,
		})
	}
	failures := h.feedback.ProcessSession(ctx, inputs)

	// 2. Refresh evidence tier and confidence for the patterns that
	// updated, inside the handler transaction holding the idempotency
	// claim.
	failed := make(map[string]bool, len(failures))
	for _, f := range failures {
		failed[f.PatternID] = true
	}
	for _, in := range inputs {
		if failed[in.PatternID] {
			continue
		}
		if err := h.lifecycle.RefreshEvidence(ctx, tx, in.PatternID); err != nil {
			return registry.Transient(err)
		}
	}

	// 3. Lifecycle sweeps run in their own transactions; redelivery finds
	// nothing left to transition, so partial completion here is safe.
	if _, err := h.lifecycle.EvaluatePromotions(ctx, mc.CorrelationID); err != nil {
		return registry.Transient(err)
	}
	if _, err := h.lifecycle.EvaluateDemotions(ctx, mc.CorrelationID); err != nil {
		return registry.Transient(err)
	}

	if len(failures) > 0 {
		errs := make([]error, 0, len(failures))
		for _, f := range failures {
			log.Warn("Pattern feedback update failed",
				"pattern_id", f.PatternID, "error", f.Err)
			errs = append(errs, fmt.Errorf("pattern %s: %w", f.PatternID, f.Err))
		}
		return registry.Domain(fmt.Errorf("%d of %d pattern updates failed: %w",
			len(failures), len(payload.Patterns), errors.Join(errs...)))
	}
	return nil
}
