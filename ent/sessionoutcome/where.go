// Code generated by ent, DO NOT EDIT.

package sessionoutcome

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/onex-platform/omniintelligence/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldLTE(FieldID, id))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v string) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldEQ(FieldEventID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldEQ(FieldSessionID, v))
}

// PatternID applies equality check predicate on the "pattern_id" field. It's identical to PatternIDEQ.
func PatternID(v string) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldEQ(FieldPatternID, v))
}

// WasAdvised applies equality check predicate on the "was_advised" field. It's identical to WasAdvisedEQ.
func WasAdvised(v bool) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldEQ(FieldWasAdvised, v))
}

// WasUsed applies equality check predicate on the "was_used" field. It's identical to WasUsedEQ.
func WasUsed(v bool) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldEQ(FieldWasUsed, v))
}

// WasCorrected applies equality check predicate on the "was_corrected" field. It's identical to WasCorrectedEQ.
func WasCorrected(v bool) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldEQ(FieldWasCorrected, v))
}

// QualityDelta applies equality check predicate on the "quality_delta" field. It's identical to QualityDeltaEQ.
func QualityDelta(v float64) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldEQ(FieldQualityDelta, v))
}

// OccurredAt applies equality check predicate on the "occurred_at" field. It's identical to OccurredAtEQ.
func OccurredAt(v time.Time) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldEQ(FieldOccurredAt, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v string) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v string) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...string) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...string) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v string) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v string) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v string) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v string) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldLTE(FieldEventID, v))
}

// EventIDContains applies the Contains predicate on the "event_id" field.
func EventIDContains(v string) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldContains(FieldEventID, v))
}

// EventIDHasPrefix applies the HasPrefix predicate on the "event_id" field.
func EventIDHasPrefix(v string) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldHasPrefix(FieldEventID, v))
}

// EventIDHasSuffix applies the HasSuffix predicate on the "event_id" field.
func EventIDHasSuffix(v string) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldHasSuffix(FieldEventID, v))
}

// EventIDEqualFold applies the EqualFold predicate on the "event_id" field.
func EventIDEqualFold(v string) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldEqualFold(FieldEventID, v))
}

// EventIDContainsFold applies the ContainsFold predicate on the "event_id" field.
func EventIDContainsFold(v string) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldContainsFold(FieldEventID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldContainsFold(FieldSessionID, v))
}

// PatternIDEQ applies the EQ predicate on the "pattern_id" field.
func PatternIDEQ(v string) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldEQ(FieldPatternID, v))
}

// PatternIDNEQ applies the NEQ predicate on the "pattern_id" field.
func PatternIDNEQ(v string) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldNEQ(FieldPatternID, v))
}

// PatternIDIn applies the In predicate on the "pattern_id" field.
func PatternIDIn(vs ...string) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldIn(FieldPatternID, vs...))
}

// PatternIDNotIn applies the NotIn predicate on the "pattern_id" field.
func PatternIDNotIn(vs ...string) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldNotIn(FieldPatternID, vs...))
}

// PatternIDGT applies the GT predicate on the "pattern_id" field.
func PatternIDGT(v string) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldGT(FieldPatternID, v))
}

// PatternIDGTE applies the GTE predicate on the "pattern_id" field.
func PatternIDGTE(v string) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldGTE(FieldPatternID, v))
}

// PatternIDLT applies the LT predicate on the "pattern_id" field.
func PatternIDLT(v string) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldLT(FieldPatternID, v))
}

// PatternIDLTE applies the LTE predicate on the "pattern_id" field.
func PatternIDLTE(v string) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldLTE(FieldPatternID, v))
}

// PatternIDContains applies the Contains predicate on the "pattern_id" field.
func PatternIDContains(v string) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldContains(FieldPatternID, v))
}

// PatternIDHasPrefix applies the HasPrefix predicate on the "pattern_id" field.
func PatternIDHasPrefix(v string) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldHasPrefix(FieldPatternID, v))
}

// PatternIDHasSuffix applies the HasSuffix predicate on the "pattern_id" field.
func PatternIDHasSuffix(v string) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldHasSuffix(FieldPatternID, v))
}

// PatternIDEqualFold applies the EqualFold predicate on the "pattern_id" field.
func PatternIDEqualFold(v string) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldEqualFold(FieldPatternID, v))
}

// PatternIDContainsFold applies the ContainsFold predicate on the "pattern_id" field.
func PatternIDContainsFold(v string) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldContainsFold(FieldPatternID, v))
}

// OutcomeEQ applies the EQ predicate on the "outcome" field.
func OutcomeEQ(v Outcome) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldEQ(FieldOutcome, v))
}

// OutcomeNEQ applies the NEQ predicate on the "outcome" field.
func OutcomeNEQ(v Outcome) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldNEQ(FieldOutcome, v))
}

// OutcomeIn applies the In predicate on the "outcome" field.
func OutcomeIn(vs ...Outcome) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldIn(FieldOutcome, vs...))
}

// OutcomeNotIn applies the NotIn predicate on the "outcome" field.
func OutcomeNotIn(vs ...Outcome) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldNotIn(FieldOutcome, vs...))
}

// WasAdvisedEQ applies the EQ predicate on the "was_advised" field.
func WasAdvisedEQ(v bool) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldEQ(FieldWasAdvised, v))
}

// WasAdvisedNEQ applies the NEQ predicate on the "was_advised" field.
func WasAdvisedNEQ(v bool) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldNEQ(FieldWasAdvised, v))
}

// WasUsedEQ applies the EQ predicate on the "was_used" field.
func WasUsedEQ(v bool) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldEQ(FieldWasUsed, v))
}

// WasUsedNEQ applies the NEQ predicate on the "was_used" field.
func WasUsedNEQ(v bool) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldNEQ(FieldWasUsed, v))
}

// WasCorrectedEQ applies the EQ predicate on the "was_corrected" field.
func WasCorrectedEQ(v bool) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldEQ(FieldWasCorrected, v))
}

// WasCorrectedNEQ applies the NEQ predicate on the "was_corrected" field.
func WasCorrectedNEQ(v bool) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldNEQ(FieldWasCorrected, v))
}

// QualityDeltaEQ applies the EQ predicate on the "quality_delta" field.
func QualityDeltaEQ(v float64) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldEQ(FieldQualityDelta, v))
}

// QualityDeltaNEQ applies the NEQ predicate on the "quality_delta" field.
func QualityDeltaNEQ(v float64) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldNEQ(FieldQualityDelta, v))
}

// QualityDeltaIn applies the In predicate on the "quality_delta" field.
func QualityDeltaIn(vs ...float64) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldIn(FieldQualityDelta, vs...))
}

// QualityDeltaNotIn applies the NotIn predicate on the "quality_delta" field.
func QualityDeltaNotIn(vs ...float64) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldNotIn(FieldQualityDelta, vs...))
}

// QualityDeltaGT applies the GT predicate on the "quality_delta" field.
func QualityDeltaGT(v float64) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldGT(FieldQualityDelta, v))
}

// QualityDeltaGTE applies the GTE predicate on the "quality_delta" field.
func QualityDeltaGTE(v float64) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldGTE(FieldQualityDelta, v))
}

// QualityDeltaLT applies the LT predicate on the "quality_delta" field.
func QualityDeltaLT(v float64) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldLT(FieldQualityDelta, v))
}

// QualityDeltaLTE applies the LTE predicate on the "quality_delta" field.
func QualityDeltaLTE(v float64) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldLTE(FieldQualityDelta, v))
}

// OccurredAtEQ applies the EQ predicate on the "occurred_at" field.
func OccurredAtEQ(v time.Time) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldEQ(FieldOccurredAt, v))
}

// OccurredAtNEQ applies the NEQ predicate on the "occurred_at" field.
func OccurredAtNEQ(v time.Time) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldNEQ(FieldOccurredAt, v))
}

// OccurredAtIn applies the In predicate on the "occurred_at" field.
func OccurredAtIn(vs ...time.Time) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldIn(FieldOccurredAt, vs...))
}

// OccurredAtNotIn applies the NotIn predicate on the "occurred_at" field.
func OccurredAtNotIn(vs ...time.Time) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldNotIn(FieldOccurredAt, vs...))
}

// OccurredAtGT applies the GT predicate on the "occurred_at" field.
func OccurredAtGT(v time.Time) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldGT(FieldOccurredAt, v))
}

// OccurredAtGTE applies the GTE predicate on the "occurred_at" field.
func OccurredAtGTE(v time.Time) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldGTE(FieldOccurredAt, v))
}

// OccurredAtLT applies the LT predicate on the "occurred_at" field.
func OccurredAtLT(v time.Time) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldLT(FieldOccurredAt, v))
}

// OccurredAtLTE applies the LTE predicate on the "occurred_at" field.
func OccurredAtLTE(v time.Time) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.FieldLTE(FieldOccurredAt, v))
}

// HasPattern applies the HasEdge predicate on the "pattern" edge.
func HasPattern() predicate.SessionOutcome {
	return predicate.SessionOutcome(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PatternTable, PatternColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPatternWith applies the HasEdge predicate on the "pattern" edge with a given conditions (other predicates).
func HasPatternWith(preds ...predicate.Pattern) predicate.SessionOutcome {
	return predicate.SessionOutcome(func(s *sql.Selector) {
		step := newPatternStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionOutcome) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionOutcome) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionOutcome) predicate.SessionOutcome {
	return predicate.SessionOutcome(sql.NotPredicates(p))
}
