package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/onex-platform/omniintelligence/ent"
	"github.com/onex-platform/omniintelligence/pkg/bus"
	"github.com/onex-platform/omniintelligence/pkg/compute"
	"github.com/onex-platform/omniintelligence/pkg/fsm"
	"github.com/onex-platform/omniintelligence/pkg/mining"
	"github.com/onex-platform/omniintelligence/pkg/registry"
)

// HookEventPayload is the claude-hook-event command payload after reshape.
type HookEventPayload struct {
	HookType    string `json:"hook_type"`
	Description string `json:"description"`
	ToolTrace   string `json:"tool_trace,omitempty"`
	VersionTag  string `json:"version_tag,omitempty"`

	// Quality signals are attached by post-tool-use hooks only.
	Quality *QualitySignalsPayload `json:"quality,omitempty"`
}

// QualitySignalsPayload carries raw quality counters from the hook source.
type QualitySignalsPayload struct {
	LintErrors     int `json:"lint_errors"`
	LintWarnings   int `json:"lint_warnings"`
	TestsPassed    int `json:"tests_passed"`
	TestsFailed    int `json:"tests_failed"`
	FilesTouched   int `json:"files_touched"`
	LinesChanged   int `json:"lines_changed"`
	ReviewConcerns int `json:"review_concerns"`
}

// intentClassifiedPayload is the intent-classified event payload.
type intentClassifiedPayload struct {
	SessionID  string  `json:"session_id,omitempty"`
	HookType   string  `json:"hook_type"`
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
}

// patternStoredPayload is the pattern-stored event payload.
type patternStoredPayload struct {
	PatternID       string  `json:"pattern_id"`
	SignatureHash   string  `json:"signature_hash"`
	LifecycleStatus string  `json:"lifecycle_status"`
	Intent          string  `json:"intent"`
	Confidence      float64 `json:"confidence"`
	Created         bool    `json:"created"`
}

// HandleHookEvent ingests one hook event: drives the ingestion machine,
// classifies intent, mines the tool trace for patterns, and stores them.
func (h *Handlers) HandleHookEvent(ctx context.Context, mc *registry.MessageContext, tx *ent.Tx, env *bus.Envelope) error {
	log := mc.Logger()

	var payload HookEventPayload
	if err := env.UnmarshalPayload(&payload); err != nil {
		return registry.Validation(err)
	}
	if payload.HookType == "" {
		return registry.Validation(fmt.Errorf("hook event missing hook_type"))
	}

	// 1. Ingestion machine tracks the session's event intake. Entity is
	// the session; without one, the event itself.
	ingestEntity := mc.SessionID
	if ingestEntity == "" {
		ingestEntity = env.EventID
	}
	for _, trigger := range []string{fsm.TriggerReceive, fsm.TriggerProcess} {
		if _, err := h.reducer.Apply(ctx, tx, fsm.KindIngestion, ingestEntity, trigger, env.EventID); err != nil {
			return registry.Transient(err)
		}
	}

	// 2. Intent classification is pure; the result rides both the emitted
	// event and the metadata of any stored pattern.
	intent, intentConfidence := compute.ClassifyIntent(payload.Description)
	h.emit(EventIntentClassified, mc.SessionID, mc.CorrelationID, mc.SessionID, intentClassifiedPayload{
		SessionID:  mc.SessionID,
		HookType:   payload.HookType,
		Intent:     string(intent),
		Confidence: intentConfidence,
	})

	// 3. Quality signals, when the hook carries them, feed the pattern
	// metadata and the quality-assessment machine.
	var qualityScore float64
	if payload.Quality != nil {
		qualityScore = compute.QualityScore(compute.QualitySignals{
			LintErrors:     payload.Quality.LintErrors,
			LintWarnings:   payload.Quality.LintWarnings,
			TestsPassed:    payload.Quality.TestsPassed,
			TestsFailed:    payload.Quality.TestsFailed,
			FilesTouched:   payload.Quality.FilesTouched,
			LinesChanged:   payload.Quality.LinesChanged,
			ReviewConcerns: payload.Quality.ReviewConcerns,
		})
		for _, trigger := range []string{fsm.TriggerIngest, fsm.TriggerAssess, fsm.TriggerScore, fsm.TriggerStore} {
			if _, err := h.reducer.Apply(ctx, tx, fsm.KindQualityAssessment, env.EventID, trigger, env.EventID); err != nil {
				return registry.Transient(err)
			}
		}
	}

	// 4. Mine the tool trace. A hook without a trace has nothing to learn
	// from; finish ingestion and return.
	trace, err := h.parseTrace(payload.ToolTrace)
	if err != nil {
		return registry.Validation(err)
	}
	if len(trace) == 0 && strings.TrimSpace(payload.Description) == "" {
		_, err := h.reducer.Apply(ctx, tx, fsm.KindIngestion, ingestEntity, fsm.TriggerIndex, env.EventID)
		if err != nil {
			return registry.Transient(err)
		}
		return nil
	}

	// 5. One pattern-learning run per hook event, keyed by the event so
	// every run walks its machine from idle to completed.
	learnEntity := env.EventID
	if _, err := h.reducer.Apply(ctx, tx, fsm.KindPatternLearning, learnEntity, fsm.TriggerStart, env.EventID); err != nil {
		return registry.Transient(err)
	}

	mined, err := h.miner.ExtractPatterns(ctx, &mining.Input{
		SessionID:     mc.SessionID,
		CorrelationID: mc.CorrelationID,
		Description:   payload.Description,
		Trace:         trace,
	})
	if err != nil {
		// The external miner being down is retryable.
		return registry.Transient(fmt.Errorf("pattern mining failed: %w", err))
	}
	if _, err := h.reducer.Apply(ctx, tx, fsm.KindPatternLearning, learnEntity, fsm.TriggerMatch, env.EventID); err != nil {
		return registry.Transient(err)
	}

	// 6. Store each mined pattern. Dedup happens inside UpsertPattern via
	// the signature hash.
	versionTag := payload.VersionTag
	if versionTag == "" {
		versionTag = "v1"
	}
	for _, p := range mined {
		sig := compute.SignatureHash(p.Body, versionTag)
		metadata := map[string]interface{}{
			"intent":            string(intent),
			"hook_type":         payload.HookType,
			"mining_confidence": p.Confidence,
		}
		if payload.Quality != nil {
			metadata["quality_score"] = qualityScore
		}

		patternID, created, err := h.store.UpsertPattern(ctx, tx, sig, p.Body, metadata)
		if err != nil {
			return registry.Transient(fmt.Errorf("failed to store pattern: %w", err))
		}

		status := "candidate"
		if created {
			elevated, err := h.lifecycle.ElevateIfQualified(ctx, tx, patternID, p.Confidence, mc.CorrelationID)
			if err != nil {
				return registry.Transient(err)
			}
			if elevated {
				status = "provisional"
			}
			log.Info("Pattern stored",
				"pattern_id", patternID, "status", status, "intent", intent)
		} else {
			existing, err := h.store.QueryByID(ctx, tx, patternID)
			if err != nil {
				return registry.Transient(err)
			}
			status = string(existing.LifecycleStatus)
			log.Debug("Pattern already known", "pattern_id", patternID, "status", status)
		}

		h.emit(EventPatternStored, patternID, mc.CorrelationID, mc.SessionID, patternStoredPayload{
			PatternID:       patternID,
			SignatureHash:   sig,
			LifecycleStatus: status,
			Intent:          string(p.Intent),
			Confidence:      p.Confidence,
			Created:         created,
		})
	}

	// 7. Close out both machines.
	for _, trigger := range []string{fsm.TriggerValidate, fsm.TriggerTrace, fsm.TriggerComplete} {
		if _, err := h.reducer.Apply(ctx, tx, fsm.KindPatternLearning, learnEntity, trigger, env.EventID); err != nil {
			return registry.Transient(err)
		}
	}
	if _, err := h.reducer.Apply(ctx, tx, fsm.KindIngestion, ingestEntity, fsm.TriggerIndex, env.EventID); err != nil {
		return registry.Transient(err)
	}
	return nil
}

// parseTrace parses the raw tool trace, treating an empty trace as no
// trace rather than an error.
func (h *Handlers) parseTrace(raw string) ([]compute.TraceEntry, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	trace, err := compute.ParseToolTrace(raw)
	if err != nil {
		return nil, fmt.Errorf("unparseable tool trace: %w", err)
	}
	return trace, nil
}
