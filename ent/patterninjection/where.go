// Code generated by ent, DO NOT EDIT.

package patterninjection

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/onex-platform/omniintelligence/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldContainsFold(FieldID, id))
}

// PatternID applies equality check predicate on the "pattern_id" field. It's identical to PatternIDEQ.
func PatternID(v string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldEQ(FieldPatternID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldEQ(FieldSessionID, v))
}

// Cohort applies equality check predicate on the "cohort" field. It's identical to CohortEQ.
func Cohort(v string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldEQ(FieldCohort, v))
}

// AssignedAt applies equality check predicate on the "assigned_at" field. It's identical to AssignedAtEQ.
func AssignedAt(v time.Time) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldEQ(FieldAssignedAt, v))
}

// PatternIDEQ applies the EQ predicate on the "pattern_id" field.
func PatternIDEQ(v string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldEQ(FieldPatternID, v))
}

// PatternIDNEQ applies the NEQ predicate on the "pattern_id" field.
func PatternIDNEQ(v string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldNEQ(FieldPatternID, v))
}

// PatternIDIn applies the In predicate on the "pattern_id" field.
func PatternIDIn(vs ...string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldIn(FieldPatternID, vs...))
}

// PatternIDNotIn applies the NotIn predicate on the "pattern_id" field.
func PatternIDNotIn(vs ...string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldNotIn(FieldPatternID, vs...))
}

// PatternIDGT applies the GT predicate on the "pattern_id" field.
func PatternIDGT(v string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldGT(FieldPatternID, v))
}

// PatternIDGTE applies the GTE predicate on the "pattern_id" field.
func PatternIDGTE(v string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldGTE(FieldPatternID, v))
}

// PatternIDLT applies the LT predicate on the "pattern_id" field.
func PatternIDLT(v string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldLT(FieldPatternID, v))
}

// PatternIDLTE applies the LTE predicate on the "pattern_id" field.
func PatternIDLTE(v string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldLTE(FieldPatternID, v))
}

// PatternIDContains applies the Contains predicate on the "pattern_id" field.
func PatternIDContains(v string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldContains(FieldPatternID, v))
}

// PatternIDHasPrefix applies the HasPrefix predicate on the "pattern_id" field.
func PatternIDHasPrefix(v string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldHasPrefix(FieldPatternID, v))
}

// PatternIDHasSuffix applies the HasSuffix predicate on the "pattern_id" field.
func PatternIDHasSuffix(v string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldHasSuffix(FieldPatternID, v))
}

// PatternIDEqualFold applies the EqualFold predicate on the "pattern_id" field.
func PatternIDEqualFold(v string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldEqualFold(FieldPatternID, v))
}

// PatternIDContainsFold applies the ContainsFold predicate on the "pattern_id" field.
func PatternIDContainsFold(v string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldContainsFold(FieldPatternID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldContainsFold(FieldSessionID, v))
}

// CohortEQ applies the EQ predicate on the "cohort" field.
func CohortEQ(v string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldEQ(FieldCohort, v))
}

// CohortNEQ applies the NEQ predicate on the "cohort" field.
func CohortNEQ(v string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldNEQ(FieldCohort, v))
}

// CohortIn applies the In predicate on the "cohort" field.
func CohortIn(vs ...string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldIn(FieldCohort, vs...))
}

// CohortNotIn applies the NotIn predicate on the "cohort" field.
func CohortNotIn(vs ...string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldNotIn(FieldCohort, vs...))
}

// CohortGT applies the GT predicate on the "cohort" field.
func CohortGT(v string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldGT(FieldCohort, v))
}

// CohortGTE applies the GTE predicate on the "cohort" field.
func CohortGTE(v string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldGTE(FieldCohort, v))
}

// CohortLT applies the LT predicate on the "cohort" field.
func CohortLT(v string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldLT(FieldCohort, v))
}

// CohortLTE applies the LTE predicate on the "cohort" field.
func CohortLTE(v string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldLTE(FieldCohort, v))
}

// CohortContains applies the Contains predicate on the "cohort" field.
func CohortContains(v string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldContains(FieldCohort, v))
}

// CohortHasPrefix applies the HasPrefix predicate on the "cohort" field.
func CohortHasPrefix(v string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldHasPrefix(FieldCohort, v))
}

// CohortHasSuffix applies the HasSuffix predicate on the "cohort" field.
func CohortHasSuffix(v string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldHasSuffix(FieldCohort, v))
}

// CohortEqualFold applies the EqualFold predicate on the "cohort" field.
func CohortEqualFold(v string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldEqualFold(FieldCohort, v))
}

// CohortContainsFold applies the ContainsFold predicate on the "cohort" field.
func CohortContainsFold(v string) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldContainsFold(FieldCohort, v))
}

// AssignedAtEQ applies the EQ predicate on the "assigned_at" field.
func AssignedAtEQ(v time.Time) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldEQ(FieldAssignedAt, v))
}

// AssignedAtNEQ applies the NEQ predicate on the "assigned_at" field.
func AssignedAtNEQ(v time.Time) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldNEQ(FieldAssignedAt, v))
}

// AssignedAtIn applies the In predicate on the "assigned_at" field.
func AssignedAtIn(vs ...time.Time) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldIn(FieldAssignedAt, vs...))
}

// AssignedAtNotIn applies the NotIn predicate on the "assigned_at" field.
func AssignedAtNotIn(vs ...time.Time) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldNotIn(FieldAssignedAt, vs...))
}

// AssignedAtGT applies the GT predicate on the "assigned_at" field.
func AssignedAtGT(v time.Time) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldGT(FieldAssignedAt, v))
}

// AssignedAtGTE applies the GTE predicate on the "assigned_at" field.
func AssignedAtGTE(v time.Time) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldGTE(FieldAssignedAt, v))
}

// AssignedAtLT applies the LT predicate on the "assigned_at" field.
func AssignedAtLT(v time.Time) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldLT(FieldAssignedAt, v))
}

// AssignedAtLTE applies the LTE predicate on the "assigned_at" field.
func AssignedAtLTE(v time.Time) predicate.PatternInjection {
	return predicate.PatternInjection(sql.FieldLTE(FieldAssignedAt, v))
}

// HasPattern applies the HasEdge predicate on the "pattern" edge.
func HasPattern() predicate.PatternInjection {
	return predicate.PatternInjection(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PatternTable, PatternColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPatternWith applies the HasEdge predicate on the "pattern" edge with a given conditions (other predicates).
func HasPatternWith(preds ...predicate.Pattern) predicate.PatternInjection {
	return predicate.PatternInjection(func(s *sql.Selector) {
		step := newPatternStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PatternInjection) predicate.PatternInjection {
	return predicate.PatternInjection(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PatternInjection) predicate.PatternInjection {
	return predicate.PatternInjection(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PatternInjection) predicate.PatternInjection {
	return predicate.PatternInjection(sql.NotPredicates(p))
}
