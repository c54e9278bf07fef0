package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/onex-platform/omniintelligence/ent"
	"github.com/onex-platform/omniintelligence/ent/patterndisable"
	"github.com/onex-platform/omniintelligence/pkg/bus"
	"github.com/onex-platform/omniintelligence/pkg/registry"
	"github.com/onex-platform/omniintelligence/pkg/store"
)

// LifecycleCommandPayload is the administrative pattern-lifecycle command
// payload. The operation field routes to the bound handler.
type LifecycleCommandPayload struct {
	Operation   string `json:"operation"`
	PatternID   string `json:"pattern_id,omitempty"`
	Reason      string `json:"reason,omitempty"`
	Detail      string `json:"detail,omitempty"`
	RequestedBy string `json:"requested_by,omitempty"`
}

var disableReasons = map[string]patterndisable.Reason{
	"safety":     patterndisable.ReasonSafety,
	"compliance": patterndisable.ReasonCompliance,
	"quality":    patterndisable.ReasonQuality,
	"manual":     patterndisable.ReasonManual,
}

// HandleDisable appends a disable event for a pattern. A safety or
// compliance reason additionally forces the pattern to DEPRECATED in the
// same transaction.
func (h *Handlers) HandleDisable(ctx context.Context, mc *registry.MessageContext, tx *ent.Tx, env *bus.Envelope) error {
	log := mc.Logger()

	payload, err := decodeLifecycleCommand(env)
	if err != nil {
		return err
	}
	reason, ok := disableReasons[payload.Reason]
	if !ok {
		return registry.Validation(fmt.Errorf("unknown disable reason %q", payload.Reason))
	}

	if _, err := h.store.QueryByID(ctx, tx, payload.PatternID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return registry.Domain(fmt.Errorf("cannot disable unknown pattern %s", payload.PatternID))
		}
		return registry.Transient(err)
	}

	_, err = h.store.RecordDisable(ctx, tx, payload.PatternID,
		patterndisable.ActionDisable, reason, payload.Detail, payload.RequestedBy)
	if err != nil {
		return registry.Transient(err)
	}
	log.Info("Pattern disabled",
		"pattern_id", payload.PatternID, "reason", reason, "requested_by", payload.RequestedBy)

	if reason != patterndisable.ReasonSafety && reason != patterndisable.ReasonCompliance {
		return nil
	}

	demoted, err := h.lifecycle.ForceDemote(ctx, tx, payload.PatternID, reason, mc.CorrelationID)
	if err != nil {
		return registry.Transient(err)
	}
	if demoted {
		// The emit rides the async publisher queue; the envelope outlives
		// this transaction's commit.
		h.lifecycle.EmitDeprecated(payload.PatternID, mc.CorrelationID)
		log.Info("Pattern force-deprecated", "pattern_id", payload.PatternID, "reason", reason)
	}
	return nil
}

// HandleEnable appends an enable event, lifting the kill switch. A
// DEPRECATED pattern stays deprecated; enable only affects the disabled
// view.
func (h *Handlers) HandleEnable(ctx context.Context, mc *registry.MessageContext, tx *ent.Tx, env *bus.Envelope) error {
	payload, err := decodeLifecycleCommand(env)
	if err != nil {
		return err
	}

	if _, err := h.store.QueryByID(ctx, tx, payload.PatternID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return registry.Domain(fmt.Errorf("cannot enable unknown pattern %s", payload.PatternID))
		}
		return registry.Transient(err)
	}

	reason := patterndisable.ReasonManual
	if r, ok := disableReasons[payload.Reason]; ok {
		reason = r
	}
	_, err = h.store.RecordDisable(ctx, tx, payload.PatternID,
		patterndisable.ActionEnable, reason, payload.Detail, payload.RequestedBy)
	if err != nil {
		return registry.Transient(err)
	}
	mc.Logger().Info("Pattern enabled",
		"pattern_id", payload.PatternID, "requested_by", payload.RequestedBy)
	return nil
}

// HandleEvaluate runs the promotion and demotion sweeps on demand. The
// sweeps use their own transactions; rerunning after a crash finds
// nothing left to transition.
func (h *Handlers) HandleEvaluate(ctx context.Context, mc *registry.MessageContext, _ *ent.Tx, env *bus.Envelope) error {
	log := mc.Logger()

	promoted, err := h.lifecycle.EvaluatePromotions(ctx, mc.CorrelationID)
	if err != nil {
		return registry.Transient(err)
	}
	demoted, err := h.lifecycle.EvaluateDemotions(ctx, mc.CorrelationID)
	if err != nil {
		return registry.Transient(err)
	}
	log.Info("Lifecycle evaluation complete",
		"promoted", len(promoted), "demoted", len(demoted))
	return nil
}

// decodeLifecycleCommand parses and checks the shared command fields.
func decodeLifecycleCommand(env *bus.Envelope) (*LifecycleCommandPayload, error) {
	var payload LifecycleCommandPayload
	if err := env.UnmarshalPayload(&payload); err != nil {
		return nil, registry.Validation(err)
	}
	if payload.Operation != OpEvaluate && payload.PatternID == "" {
		return nil, registry.Validation(fmt.Errorf("lifecycle command %q missing pattern_id", payload.Operation))
	}
	return &payload, nil
}
