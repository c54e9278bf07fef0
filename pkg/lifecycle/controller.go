// Package lifecycle implements the pattern lifecycle controller: evidence
// tier derivation, promotion and demotion evaluation, and the event
// emission that follows committed transitions.
package lifecycle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/onex-platform/omniintelligence/ent"
	"github.com/onex-platform/omniintelligence/ent/feedbackaggregate"
	"github.com/onex-platform/omniintelligence/ent/pattern"
	"github.com/onex-platform/omniintelligence/ent/patterndisable"
	"github.com/onex-platform/omniintelligence/pkg/bus"
	"github.com/onex-platform/omniintelligence/pkg/config"
	"github.com/onex-platform/omniintelligence/pkg/metrics"
	"github.com/onex-platform/omniintelligence/pkg/store"
)

// Emitter publishes lifecycle events. Satisfied by bus.Publisher.
// Emission is best-effort: a failed emit never rolls back the DB state
// because the audit trail is authoritative.
type Emitter interface {
	Publish(topic, key string, env *bus.Envelope) error
}

// Controller evaluates and applies lifecycle transitions.
type Controller struct {
	client  *ent.Client
	store   *store.Store
	config  *config.LifecycleConfig
	emitter Emitter
	metrics *metrics.Metrics
	envName string // topic {env} segment
}

// New creates a lifecycle controller.
func New(client *ent.Client, st *store.Store, cfg *config.LifecycleConfig, emitter Emitter, m *metrics.Metrics, envName string) *Controller {
	return &Controller{
		client:  client,
		store:   st,
		config:  cfg,
		emitter: emitter,
		metrics: m,
		envName: envName,
	}
}

// TierFor derives the evidence tier from the window sample count.
func (c *Controller) TierFor(sampleCount int) pattern.EvidenceTier {
	switch {
	case sampleCount < c.config.WeakSamples:
		return pattern.EvidenceTierInsufficient
	case sampleCount < c.config.ModerateSamples:
		return pattern.EvidenceTierWeak
	case sampleCount < c.config.StrongSamples:
		return pattern.EvidenceTierModerate
	default:
		return pattern.EvidenceTierStrong
	}
}

// tierWeight discounts confidence for thin evidence.
var tierWeight = map[pattern.EvidenceTier]float64{
	pattern.EvidenceTierInsufficient: 0.25,
	pattern.EvidenceTierWeak:         0.5,
	pattern.EvidenceTierModerate:     0.75,
	pattern.EvidenceTierStrong:       1.0,
}

// ConfidenceFor combines window effectiveness with the evidence tier.
func ConfidenceFor(effectiveness float64, tier pattern.EvidenceTier) float64 {
	return effectiveness * tierWeight[tier]
}

// ElevateIfQualified applies the CANDIDATE → PROVISIONAL transition for a
// freshly stored pattern whose mining confidence meets the minimum
// evidence bar. Runs inside the storage handler's transaction.
func (c *Controller) ElevateIfQualified(ctx context.Context, tx *ent.Tx, patternID string, miningConfidence float64, correlationID string) (bool, error) {
	if miningConfidence < 0.5 {
		return false, nil
	}

	err := c.store.TransitionLifecycle(ctx, tx, store.TransitionInput{
		PatternID: patternID,
		From:      pattern.LifecycleStatusCandidate,
		To:        pattern.LifecycleStatusProvisional,
		Trigger:   "initial_storage",
		Reason:    fmt.Sprintf("mining confidence %.2f meets minimum evidence", miningConfidence),
		EvidenceSnapshot: map[string]interface{}{
			"mining_confidence": miningConfidence,
		},
		CorrelationID: correlationID,
	})
	if err != nil {
		return false, err
	}
	c.metrics.LifecycleTransitionsTotal.WithLabelValues(
		string(pattern.LifecycleStatusCandidate), string(pattern.LifecycleStatusProvisional)).Inc()
	return true, nil
}

// EvaluatePromotions promotes every PROVISIONAL pattern that clears the
// gate: evidence_tier >= moderate, effectiveness >= the promotion
// threshold, and no active disable event. Returns the promoted IDs.
func (c *Controller) EvaluatePromotions(ctx context.Context, correlationID string) ([]string, error) {
	log := slog.With("correlation_id", correlationID)

	tx, err := c.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start promotion transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	candidates, err := c.store.ListEligibleForPromotion(ctx, tx,
		c.config.PromotionThreshold, c.config.ModerateSamples)
	if err != nil {
		return nil, err
	}

	var promoted []string
	for _, p := range candidates {
		disabled, _, err := c.store.IsDisabled(ctx, tx, p.ID)
		if err != nil {
			return nil, err
		}
		if disabled {
			log.Debug("Skipping promotion of disabled pattern", "pattern_id", p.ID)
			continue
		}

		agg, err := tx.FeedbackAggregate.Query().
			Where(feedbackaggregate.PatternIDEQ(p.ID)).
			Only(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load aggregate for %s: %w", p.ID, err)
		}

		tier := c.TierFor(agg.SampleCount)
		err = c.store.TransitionLifecycle(ctx, tx, store.TransitionInput{
			PatternID:        p.ID,
			From:             pattern.LifecycleStatusProvisional,
			To:               pattern.LifecycleStatusValidated,
			Trigger:          "promotion_eligible",
			Reason:           fmt.Sprintf("effectiveness %.2f over %d samples", agg.Effectiveness, agg.SampleCount),
			EvidenceSnapshot: evidenceSnapshot(agg, tier),
			CorrelationID:    correlationID,
		})
		if err != nil {
			return nil, err
		}

		if err := tx.Pattern.UpdateOneID(p.ID).
			SetEvidenceTier(tier).
			SetConfidence(ConfidenceFor(agg.Effectiveness, tier)).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to update evidence tier for %s: %w", p.ID, err)
		}

		promoted = append(promoted, p.ID)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit promotions: %w", err)
	}

	for _, id := range promoted {
		c.metrics.LifecycleTransitionsTotal.WithLabelValues(
			string(pattern.LifecycleStatusProvisional), string(pattern.LifecycleStatusValidated)).Inc()
		c.emit(id, "pattern-promoted", correlationID)
		log.Info("Pattern promoted", "pattern_id", id)
	}
	return promoted, nil
}

// EvaluateDemotions deprecates every VALIDATED pattern with a sustained
// negative signal. Returns the demoted IDs.
func (c *Controller) EvaluateDemotions(ctx context.Context, correlationID string) ([]string, error) {
	log := slog.With("correlation_id", correlationID)

	tx, err := c.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start demotion transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	candidates, err := c.store.ListEligibleForDemotion(ctx, tx, c.config.MinDemotionSamples)
	if err != nil {
		return nil, err
	}

	var demoted []string
	for _, p := range candidates {
		agg, err := tx.FeedbackAggregate.Query().
			Where(feedbackaggregate.PatternIDEQ(p.ID)).
			Only(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load aggregate for %s: %w", p.ID, err)
		}

		tier := c.TierFor(agg.SampleCount)
		err = c.store.TransitionLifecycle(ctx, tx, store.TransitionInput{
			PatternID: p.ID,
			From:      pattern.LifecycleStatusValidated,
			To:        pattern.LifecycleStatusDeprecated,
			Trigger:   "sustained_negative_feedback",
			Reason: fmt.Sprintf("effectiveness %.2f below %.2f for %d consecutive windows",
				agg.Effectiveness, c.config.DemotionThreshold, agg.ConsecutiveLowWindows),
			EvidenceSnapshot: evidenceSnapshot(agg, tier),
			CorrelationID:    correlationID,
		})
		if err != nil {
			return nil, err
		}
		demoted = append(demoted, p.ID)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit demotions: %w", err)
	}

	for _, id := range demoted {
		c.metrics.LifecycleTransitionsTotal.WithLabelValues(
			string(pattern.LifecycleStatusValidated), string(pattern.LifecycleStatusDeprecated)).Inc()
		c.emit(id, "pattern-deprecated", correlationID)
		log.Info("Pattern deprecated", "pattern_id", id)
	}
	return demoted, nil
}

// ForceDemote applies the direct demotion path for administrative disable
// events with a safety or compliance reason. PROVISIONAL and VALIDATED
// patterns both deprecate; other statuses are left alone.
func (c *Controller) ForceDemote(ctx context.Context, tx *ent.Tx, patternID string, reason patterndisable.Reason, correlationID string) (bool, error) {
	p, err := c.store.QueryByID(ctx, tx, patternID)
	if err != nil {
		return false, err
	}

	from := p.LifecycleStatus
	if from != pattern.LifecycleStatusProvisional && from != pattern.LifecycleStatusValidated {
		return false, nil
	}

	err = c.store.TransitionLifecycle(ctx, tx, store.TransitionInput{
		PatternID:     patternID,
		From:          from,
		To:            pattern.LifecycleStatusDeprecated,
		Trigger:       "administrative_disable",
		Reason:        fmt.Sprintf("disable event with reason %s", reason),
		CorrelationID: correlationID,
	})
	if err != nil {
		return false, err
	}

	c.metrics.LifecycleTransitionsTotal.WithLabelValues(
		string(from), string(pattern.LifecycleStatusDeprecated)).Inc()
	return true, nil
}

// EmitDeprecated publishes the pattern-deprecated event after the caller
// commits a forced demotion.
func (c *Controller) EmitDeprecated(patternID, correlationID string) {
	c.emit(patternID, "pattern-deprecated", correlationID)
}

// RefreshEvidence recomputes the pattern's evidence tier and confidence
// from its current aggregate. Called by the feedback path after window
// updates so the tier column tracks the window without a separate sweep.
func (c *Controller) RefreshEvidence(ctx context.Context, tx *ent.Tx, patternID string) error {
	agg, err := tx.FeedbackAggregate.Query().
		Where(feedbackaggregate.PatternIDEQ(patternID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to load aggregate for %s: %w", patternID, err)
	}

	tier := c.TierFor(agg.SampleCount)
	if err := tx.Pattern.UpdateOneID(patternID).
		SetEvidenceTier(tier).
		SetConfidence(ConfidenceFor(agg.Effectiveness, tier)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to refresh evidence for %s: %w", patternID, err)
	}
	return nil
}

// lifecycleEventPayload is the payload of pattern-promoted and
// pattern-deprecated events.
type lifecycleEventPayload struct {
	PatternID string `json:"pattern_id"`
	Status    string `json:"status"`
}

// emit publishes a lifecycle event, partitioned on pattern_id. Failures
// are logged and swallowed: the audit trail already holds the truth.
func (c *Controller) emit(patternID, eventName, correlationID string) {
	if c.emitter == nil {
		return
	}

	status := string(pattern.LifecycleStatusValidated)
	if eventName == "pattern-deprecated" {
		status = string(pattern.LifecycleStatusDeprecated)
	}

	env, err := bus.NewEnvelope(eventName, correlationID, "", lifecycleEventPayload{
		PatternID: patternID,
		Status:    status,
	})
	if err != nil {
		slog.Error("Failed to build lifecycle event", "pattern_id", patternID, "error", err)
		return
	}

	topic := bus.EventTopic(c.envName, eventName)
	if err := c.emitter.Publish(topic, patternID, env); err != nil {
		slog.Error("Failed to publish lifecycle event",
			"pattern_id", patternID, "topic", topic, "error", err)
	}
}

// evidenceSnapshot captures the window state recorded on audit rows.
func evidenceSnapshot(agg *ent.FeedbackAggregate, tier pattern.EvidenceTier) map[string]interface{} {
	return map[string]interface{}{
		"window_successes":        agg.WindowSuccesses,
		"window_failures":         agg.WindowFailures,
		"sample_count":            agg.SampleCount,
		"effectiveness":           agg.Effectiveness,
		"contribution_score":      agg.ContributionScore,
		"consecutive_low_windows": agg.ConsecutiveLowWindows,
		"evidence_tier":           string(tier),
	}
}
