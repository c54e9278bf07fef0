// Code generated by ent, DO NOT EDIT.

package feedbackaggregate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/onex-platform/omniintelligence/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldLTE(FieldID, id))
}

// PatternID applies equality check predicate on the "pattern_id" field. It's identical to PatternIDEQ.
func PatternID(v string) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldEQ(FieldPatternID, v))
}

// WindowSuccesses applies equality check predicate on the "window_successes" field. It's identical to WindowSuccessesEQ.
func WindowSuccesses(v int) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldEQ(FieldWindowSuccesses, v))
}

// WindowFailures applies equality check predicate on the "window_failures" field. It's identical to WindowFailuresEQ.
func WindowFailures(v int) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldEQ(FieldWindowFailures, v))
}

// SampleCount applies equality check predicate on the "sample_count" field. It's identical to SampleCountEQ.
func SampleCount(v int) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldEQ(FieldSampleCount, v))
}

// Effectiveness applies equality check predicate on the "effectiveness" field. It's identical to EffectivenessEQ.
func Effectiveness(v float64) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldEQ(FieldEffectiveness, v))
}

// ContributionScore applies equality check predicate on the "contribution_score" field. It's identical to ContributionScoreEQ.
func ContributionScore(v float64) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldEQ(FieldContributionScore, v))
}

// ConsecutiveLowWindows applies equality check predicate on the "consecutive_low_windows" field. It's identical to ConsecutiveLowWindowsEQ.
func ConsecutiveLowWindows(v int) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldEQ(FieldConsecutiveLowWindows, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldEQ(FieldUpdatedAt, v))
}

// PatternIDEQ applies the EQ predicate on the "pattern_id" field.
func PatternIDEQ(v string) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldEQ(FieldPatternID, v))
}

// PatternIDNEQ applies the NEQ predicate on the "pattern_id" field.
func PatternIDNEQ(v string) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldNEQ(FieldPatternID, v))
}

// PatternIDIn applies the In predicate on the "pattern_id" field.
func PatternIDIn(vs ...string) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldIn(FieldPatternID, vs...))
}

// PatternIDNotIn applies the NotIn predicate on the "pattern_id" field.
func PatternIDNotIn(vs ...string) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldNotIn(FieldPatternID, vs...))
}

// PatternIDGT applies the GT predicate on the "pattern_id" field.
func PatternIDGT(v string) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldGT(FieldPatternID, v))
}

// PatternIDGTE applies the GTE predicate on the "pattern_id" field.
func PatternIDGTE(v string) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldGTE(FieldPatternID, v))
}

// PatternIDLT applies the LT predicate on the "pattern_id" field.
func PatternIDLT(v string) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldLT(FieldPatternID, v))
}

// PatternIDLTE applies the LTE predicate on the "pattern_id" field.
func PatternIDLTE(v string) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldLTE(FieldPatternID, v))
}

// PatternIDContains applies the Contains predicate on the "pattern_id" field.
func PatternIDContains(v string) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldContains(FieldPatternID, v))
}

// PatternIDHasPrefix applies the HasPrefix predicate on the "pattern_id" field.
func PatternIDHasPrefix(v string) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldHasPrefix(FieldPatternID, v))
}

// PatternIDHasSuffix applies the HasSuffix predicate on the "pattern_id" field.
func PatternIDHasSuffix(v string) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldHasSuffix(FieldPatternID, v))
}

// PatternIDEqualFold applies the EqualFold predicate on the "pattern_id" field.
func PatternIDEqualFold(v string) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldEqualFold(FieldPatternID, v))
}

// PatternIDContainsFold applies the ContainsFold predicate on the "pattern_id" field.
func PatternIDContainsFold(v string) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldContainsFold(FieldPatternID, v))
}

// WindowSuccessesEQ applies the EQ predicate on the "window_successes" field.
func WindowSuccessesEQ(v int) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldEQ(FieldWindowSuccesses, v))
}

// WindowSuccessesNEQ applies the NEQ predicate on the "window_successes" field.
func WindowSuccessesNEQ(v int) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldNEQ(FieldWindowSuccesses, v))
}

// WindowSuccessesIn applies the In predicate on the "window_successes" field.
func WindowSuccessesIn(vs ...int) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldIn(FieldWindowSuccesses, vs...))
}

// WindowSuccessesNotIn applies the NotIn predicate on the "window_successes" field.
func WindowSuccessesNotIn(vs ...int) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldNotIn(FieldWindowSuccesses, vs...))
}

// WindowSuccessesGT applies the GT predicate on the "window_successes" field.
func WindowSuccessesGT(v int) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldGT(FieldWindowSuccesses, v))
}

// WindowSuccessesGTE applies the GTE predicate on the "window_successes" field.
func WindowSuccessesGTE(v int) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldGTE(FieldWindowSuccesses, v))
}

// WindowSuccessesLT applies the LT predicate on the "window_successes" field.
func WindowSuccessesLT(v int) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldLT(FieldWindowSuccesses, v))
}

// WindowSuccessesLTE applies the LTE predicate on the "window_successes" field.
func WindowSuccessesLTE(v int) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldLTE(FieldWindowSuccesses, v))
}

// WindowFailuresEQ applies the EQ predicate on the "window_failures" field.
func WindowFailuresEQ(v int) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldEQ(FieldWindowFailures, v))
}

// WindowFailuresNEQ applies the NEQ predicate on the "window_failures" field.
func WindowFailuresNEQ(v int) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldNEQ(FieldWindowFailures, v))
}

// WindowFailuresIn applies the In predicate on the "window_failures" field.
func WindowFailuresIn(vs ...int) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldIn(FieldWindowFailures, vs...))
}

// WindowFailuresNotIn applies the NotIn predicate on the "window_failures" field.
func WindowFailuresNotIn(vs ...int) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldNotIn(FieldWindowFailures, vs...))
}

// WindowFailuresGT applies the GT predicate on the "window_failures" field.
func WindowFailuresGT(v int) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldGT(FieldWindowFailures, v))
}

// WindowFailuresGTE applies the GTE predicate on the "window_failures" field.
func WindowFailuresGTE(v int) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldGTE(FieldWindowFailures, v))
}

// WindowFailuresLT applies the LT predicate on the "window_failures" field.
func WindowFailuresLT(v int) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldLT(FieldWindowFailures, v))
}

// WindowFailuresLTE applies the LTE predicate on the "window_failures" field.
func WindowFailuresLTE(v int) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldLTE(FieldWindowFailures, v))
}

// SampleCountEQ applies the EQ predicate on the "sample_count" field.
func SampleCountEQ(v int) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldEQ(FieldSampleCount, v))
}

// SampleCountNEQ applies the NEQ predicate on the "sample_count" field.
func SampleCountNEQ(v int) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldNEQ(FieldSampleCount, v))
}

// SampleCountIn applies the In predicate on the "sample_count" field.
func SampleCountIn(vs ...int) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldIn(FieldSampleCount, vs...))
}

// SampleCountNotIn applies the NotIn predicate on the "sample_count" field.
func SampleCountNotIn(vs ...int) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldNotIn(FieldSampleCount, vs...))
}

// SampleCountGT applies the GT predicate on the "sample_count" field.
func SampleCountGT(v int) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldGT(FieldSampleCount, v))
}

// SampleCountGTE applies the GTE predicate on the "sample_count" field.
func SampleCountGTE(v int) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldGTE(FieldSampleCount, v))
}

// SampleCountLT applies the LT predicate on the "sample_count" field.
func SampleCountLT(v int) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldLT(FieldSampleCount, v))
}

// SampleCountLTE applies the LTE predicate on the "sample_count" field.
func SampleCountLTE(v int) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldLTE(FieldSampleCount, v))
}

// EffectivenessEQ applies the EQ predicate on the "effectiveness" field.
func EffectivenessEQ(v float64) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldEQ(FieldEffectiveness, v))
}

// EffectivenessNEQ applies the NEQ predicate on the "effectiveness" field.
func EffectivenessNEQ(v float64) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldNEQ(FieldEffectiveness, v))
}

// EffectivenessIn applies the In predicate on the "effectiveness" field.
func EffectivenessIn(vs ...float64) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldIn(FieldEffectiveness, vs...))
}

// EffectivenessNotIn applies the NotIn predicate on the "effectiveness" field.
func EffectivenessNotIn(vs ...float64) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldNotIn(FieldEffectiveness, vs...))
}

// EffectivenessGT applies the GT predicate on the "effectiveness" field.
func EffectivenessGT(v float64) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldGT(FieldEffectiveness, v))
}

// EffectivenessGTE applies the GTE predicate on the "effectiveness" field.
func EffectivenessGTE(v float64) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldGTE(FieldEffectiveness, v))
}

// EffectivenessLT applies the LT predicate on the "effectiveness" field.
func EffectivenessLT(v float64) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldLT(FieldEffectiveness, v))
}

// EffectivenessLTE applies the LTE predicate on the "effectiveness" field.
func EffectivenessLTE(v float64) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldLTE(FieldEffectiveness, v))
}

// ContributionScoreEQ applies the EQ predicate on the "contribution_score" field.
func ContributionScoreEQ(v float64) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldEQ(FieldContributionScore, v))
}

// ContributionScoreNEQ applies the NEQ predicate on the "contribution_score" field.
func ContributionScoreNEQ(v float64) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldNEQ(FieldContributionScore, v))
}

// ContributionScoreIn applies the In predicate on the "contribution_score" field.
func ContributionScoreIn(vs ...float64) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldIn(FieldContributionScore, vs...))
}

// ContributionScoreNotIn applies the NotIn predicate on the "contribution_score" field.
func ContributionScoreNotIn(vs ...float64) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldNotIn(FieldContributionScore, vs...))
}

// ContributionScoreGT applies the GT predicate on the "contribution_score" field.
func ContributionScoreGT(v float64) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldGT(FieldContributionScore, v))
}

// ContributionScoreGTE applies the GTE predicate on the "contribution_score" field.
func ContributionScoreGTE(v float64) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldGTE(FieldContributionScore, v))
}

// ContributionScoreLT applies the LT predicate on the "contribution_score" field.
func ContributionScoreLT(v float64) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldLT(FieldContributionScore, v))
}

// ContributionScoreLTE applies the LTE predicate on the "contribution_score" field.
func ContributionScoreLTE(v float64) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldLTE(FieldContributionScore, v))
}

// ConsecutiveLowWindowsEQ applies the EQ predicate on the "consecutive_low_windows" field.
func ConsecutiveLowWindowsEQ(v int) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldEQ(FieldConsecutiveLowWindows, v))
}

// ConsecutiveLowWindowsNEQ applies the NEQ predicate on the "consecutive_low_windows" field.
func ConsecutiveLowWindowsNEQ(v int) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldNEQ(FieldConsecutiveLowWindows, v))
}

// ConsecutiveLowWindowsIn applies the In predicate on the "consecutive_low_windows" field.
func ConsecutiveLowWindowsIn(vs ...int) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldIn(FieldConsecutiveLowWindows, vs...))
}

// ConsecutiveLowWindowsNotIn applies the NotIn predicate on the "consecutive_low_windows" field.
func ConsecutiveLowWindowsNotIn(vs ...int) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldNotIn(FieldConsecutiveLowWindows, vs...))
}

// ConsecutiveLowWindowsGT applies the GT predicate on the "consecutive_low_windows" field.
func ConsecutiveLowWindowsGT(v int) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldGT(FieldConsecutiveLowWindows, v))
}

// ConsecutiveLowWindowsGTE applies the GTE predicate on the "consecutive_low_windows" field.
func ConsecutiveLowWindowsGTE(v int) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldGTE(FieldConsecutiveLowWindows, v))
}

// ConsecutiveLowWindowsLT applies the LT predicate on the "consecutive_low_windows" field.
func ConsecutiveLowWindowsLT(v int) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldLT(FieldConsecutiveLowWindows, v))
}

// ConsecutiveLowWindowsLTE applies the LTE predicate on the "consecutive_low_windows" field.
func ConsecutiveLowWindowsLTE(v int) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldLTE(FieldConsecutiveLowWindows, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasPattern applies the HasEdge predicate on the "pattern" edge.
func HasPattern() predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, PatternTable, PatternColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPatternWith applies the HasEdge predicate on the "pattern" edge with a given conditions (other predicates).
func HasPatternWith(preds ...predicate.Pattern) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(func(s *sql.Selector) {
		step := newPatternStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FeedbackAggregate) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FeedbackAggregate) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FeedbackAggregate) predicate.FeedbackAggregate {
	return predicate.FeedbackAggregate(sql.NotPredicates(p))
}
