// Package feedback maintains per-pattern rolling feedback aggregates from
// session outcomes: effectiveness, contribution score, and the quality
// decay applied on confirmed violations.
package feedback

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/onex-platform/omniintelligence/ent"
	"github.com/onex-platform/omniintelligence/ent/feedbackaggregate"
	"github.com/onex-platform/omniintelligence/ent/sessionoutcome"
	"github.com/onex-platform/omniintelligence/pkg/config"
	"github.com/onex-platform/omniintelligence/pkg/metrics"
)

// OutcomeInput is one pattern's share of a session outcome event.
type OutcomeInput struct {
	EventID      string
	SessionID    string
	PatternID    string
	Outcome      sessionoutcome.Outcome
	WasAdvised   bool
	WasUsed      bool
	WasCorrected bool
	QualityDelta float64
	OccurredAt   time.Time
}

// IsConfirmedViolation reports whether this outcome counts as a confirmed
// violation: the pattern was advised, the advice was corrected, and the
// session still failed.
func (in OutcomeInput) IsConfirmedViolation() bool {
	return in.WasAdvised && in.WasCorrected && in.Outcome == sessionoutcome.OutcomeFailure
}

// PatternError pairs a failed pattern update with its error for the
// handler's DLQ decision.
type PatternError struct {
	PatternID string
	Err       error
}

// Aggregator applies session outcomes to the per-pattern rolling windows.
// Each pattern is processed in its own transaction: a DB error on one
// pattern never blocks updates to the others in the same session.
type Aggregator struct {
	client       *ent.Client
	config       *config.FeedbackConfig
	lowThreshold float64 // window evaluations below this count as a negative signal
	metrics      *metrics.Metrics
}

// New creates a feedback aggregator. lowThreshold is the lifecycle
// controller's demotion threshold; the aggregator tracks consecutive low
// windows on its behalf so demotion eligibility is a plain column read.
func New(client *ent.Client, cfg *config.FeedbackConfig, lowThreshold float64, m *metrics.Metrics) *Aggregator {
	return &Aggregator{
		client:       client,
		config:       cfg,
		lowThreshold: lowThreshold,
		metrics:      m,
	}
}

// ProcessSession applies every pattern's outcome independently and
// returns the list of per-pattern failures. Successes stay committed.
func (a *Aggregator) ProcessSession(ctx context.Context, inputs []OutcomeInput) []PatternError {
	var failures []PatternError
	for _, in := range inputs {
		if err := a.ApplyOutcome(ctx, in); err != nil {
			slog.Error("Feedback update failed for pattern",
				"pattern_id", in.PatternID, "session_id", in.SessionID, "error", err)
			failures = append(failures, PatternError{PatternID: in.PatternID, Err: err})
		}
	}
	return failures
}

// ApplyOutcome records one outcome and recomputes the pattern's window
// aggregate in a single transaction.
func (a *Aggregator) ApplyOutcome(ctx context.Context, in OutcomeInput) error {
	tx, err := a.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start feedback transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := a.applyOutcomeTx(ctx, tx, in); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit feedback update: %w", err)
	}
	return nil
}

func (a *Aggregator) applyOutcomeTx(ctx context.Context, tx *ent.Tx, in OutcomeInput) error {
	occurredAt := in.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	// These commits are independent of the dispatcher's idempotency
	// claim, so a redelivered event reaches this point again. The
	// (event_id, pattern_id) row is the dedup gate: already applied
	// means the decay and the window recompute already ran too.
	applied, err := tx.SessionOutcome.Query().
		Where(
			sessionoutcome.EventIDEQ(in.EventID),
			sessionoutcome.PatternIDEQ(in.PatternID),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check for prior outcome delivery: %w", err)
	}
	if applied {
		slog.Debug("Session outcome already applied, skipping",
			"event_id", in.EventID, "pattern_id", in.PatternID)
		return nil
	}

	// 1. Append the outcome row (the window is a query over these).
	_, err = tx.SessionOutcome.Create().
		SetEventID(in.EventID).
		SetSessionID(in.SessionID).
		SetPatternID(in.PatternID).
		SetOutcome(in.Outcome).
		SetWasAdvised(in.WasAdvised).
		SetWasUsed(in.WasUsed).
		SetWasCorrected(in.WasCorrected).
		SetQualityDelta(in.QualityDelta).
		SetOccurredAt(occurredAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to append session outcome: %w", err)
	}

	// 2. Confirmed violations decay the pattern's quality score.
	if in.IsConfirmedViolation() {
		if err := a.decayQuality(ctx, tx, in.PatternID); err != nil {
			return err
		}
	}

	// 3. Recompute the rolling window and upsert the aggregate.
	return a.recomputeWindow(ctx, tx, in.PatternID)
}

// decayQuality applies the per-violation decrement, clamped at 0.
func (a *Aggregator) decayQuality(ctx context.Context, tx *ent.Tx, patternID string) error {
	p, err := tx.Pattern.Get(ctx, patternID)
	if err != nil {
		return fmt.Errorf("failed to load pattern for quality decay: %w", err)
	}

	newScore := clamp01(p.QualityScore - a.config.ViolationDecrement)
	if err := tx.Pattern.UpdateOneID(patternID).SetQualityScore(newScore).Exec(ctx); err != nil {
		return fmt.Errorf("failed to decay quality score: %w", err)
	}
	a.metrics.QualityDecayTotal.Inc()
	return nil
}

// recomputeWindow derives the aggregate from the current window: the most
// recent WindowSize outcomes no older than WindowMaxAge.
func (a *Aggregator) recomputeWindow(ctx context.Context, tx *ent.Tx, patternID string) error {
	cutoff := time.Now().Add(-a.config.WindowMaxAge)

	window, err := tx.SessionOutcome.Query().
		Where(
			sessionoutcome.PatternIDEQ(patternID),
			sessionoutcome.OccurredAtGTE(cutoff),
		).
		Order(ent.Desc(sessionoutcome.FieldOccurredAt), ent.Desc(sessionoutcome.FieldID)).
		Limit(a.config.WindowSize).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load feedback window: %w", err)
	}

	agg := computeAggregate(window)

	existing, err := tx.FeedbackAggregate.Query().
		Where(feedbackaggregate.PatternIDEQ(patternID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to load feedback aggregate: %w", err)
	}

	consecutiveLow := 0
	if existing != nil {
		consecutiveLow = existing.ConsecutiveLowWindows
	}
	if agg.Effectiveness <= a.lowThreshold {
		consecutiveLow++
	} else {
		consecutiveLow = 0
	}

	if existing == nil {
		_, err = tx.FeedbackAggregate.Create().
			SetPatternID(patternID).
			SetWindowSuccesses(agg.Successes).
			SetWindowFailures(agg.Failures).
			SetSampleCount(agg.SampleCount).
			SetEffectiveness(agg.Effectiveness).
			SetContributionScore(agg.ContributionScore).
			SetConsecutiveLowWindows(consecutiveLow).
			Save(ctx)
	} else {
		_, err = tx.FeedbackAggregate.UpdateOne(existing).
			SetWindowSuccesses(agg.Successes).
			SetWindowFailures(agg.Failures).
			SetSampleCount(agg.SampleCount).
			SetEffectiveness(agg.Effectiveness).
			SetContributionScore(agg.ContributionScore).
			SetConsecutiveLowWindows(consecutiveLow).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to upsert feedback aggregate: %w", err)
	}
	return nil
}

// WindowAggregate is the derived state of one pattern's rolling window.
type WindowAggregate struct {
	Successes         int
	Failures          int
	SampleCount       int
	Effectiveness     float64
	ContributionScore float64
}

// computeAggregate folds the window into counts and scores.
//
// Effectiveness is the Laplace-smoothed success ratio: (s+1)/(s+f+2).
// Smoothing keeps a one-sample window from reading as 0.0 or 1.0.
//
// Contribution weighs outcomes by how directly the pattern participated:
// an advised success counts 1 (2 if the advice was actually used); a
// confirmed violation counts 2 against; an advised failure counts 1
// against. The same smoothing applies.
func computeAggregate(window []*ent.SessionOutcome) WindowAggregate {
	agg := WindowAggregate{SampleCount: len(window)}

	var pos, neg float64
	for _, o := range window {
		switch o.Outcome {
		case sessionoutcome.OutcomeSuccess:
			agg.Successes++
			if o.WasAdvised {
				if o.WasUsed {
					pos += 2
				} else {
					pos++
				}
			}
		case sessionoutcome.OutcomeFailure:
			agg.Failures++
			if o.WasAdvised {
				if o.WasCorrected {
					neg += 2
				} else {
					neg++
				}
			}
		case sessionoutcome.OutcomePartial:
			// Partial outcomes count toward the sample size but move
			// neither success nor failure totals.
		}
	}

	agg.Effectiveness = clamp01(float64(agg.Successes+1) / float64(agg.Successes+agg.Failures+2))
	agg.ContributionScore = clamp01((pos + 1) / (pos + neg + 2))
	return agg
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
