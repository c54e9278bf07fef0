// Code generated by ent, DO NOT EDIT.

package patternaudit

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/onex-platform/omniintelligence/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldLTE(FieldID, id))
}

// PatternID applies equality check predicate on the "pattern_id" field. It's identical to PatternIDEQ.
func PatternID(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldEQ(FieldPatternID, v))
}

// FromStatus applies equality check predicate on the "from_status" field. It's identical to FromStatusEQ.
func FromStatus(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldEQ(FieldFromStatus, v))
}

// ToStatus applies equality check predicate on the "to_status" field. It's identical to ToStatusEQ.
func ToStatus(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldEQ(FieldToStatus, v))
}

// Trigger applies equality check predicate on the "trigger" field. It's identical to TriggerEQ.
func Trigger(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldEQ(FieldTrigger, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldEQ(FieldReason, v))
}

// CorrelationID applies equality check predicate on the "correlation_id" field. It's identical to CorrelationIDEQ.
func CorrelationID(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldEQ(FieldCorrelationID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldEQ(FieldCreatedAt, v))
}

// PatternIDEQ applies the EQ predicate on the "pattern_id" field.
func PatternIDEQ(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldEQ(FieldPatternID, v))
}

// PatternIDNEQ applies the NEQ predicate on the "pattern_id" field.
func PatternIDNEQ(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldNEQ(FieldPatternID, v))
}

// PatternIDIn applies the In predicate on the "pattern_id" field.
func PatternIDIn(vs ...string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldIn(FieldPatternID, vs...))
}

// PatternIDNotIn applies the NotIn predicate on the "pattern_id" field.
func PatternIDNotIn(vs ...string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldNotIn(FieldPatternID, vs...))
}

// PatternIDGT applies the GT predicate on the "pattern_id" field.
func PatternIDGT(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldGT(FieldPatternID, v))
}

// PatternIDGTE applies the GTE predicate on the "pattern_id" field.
func PatternIDGTE(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldGTE(FieldPatternID, v))
}

// PatternIDLT applies the LT predicate on the "pattern_id" field.
func PatternIDLT(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldLT(FieldPatternID, v))
}

// PatternIDLTE applies the LTE predicate on the "pattern_id" field.
func PatternIDLTE(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldLTE(FieldPatternID, v))
}

// PatternIDContains applies the Contains predicate on the "pattern_id" field.
func PatternIDContains(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldContains(FieldPatternID, v))
}

// PatternIDHasPrefix applies the HasPrefix predicate on the "pattern_id" field.
func PatternIDHasPrefix(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldHasPrefix(FieldPatternID, v))
}

// PatternIDHasSuffix applies the HasSuffix predicate on the "pattern_id" field.
func PatternIDHasSuffix(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldHasSuffix(FieldPatternID, v))
}

// PatternIDEqualFold applies the EqualFold predicate on the "pattern_id" field.
func PatternIDEqualFold(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldEqualFold(FieldPatternID, v))
}

// PatternIDContainsFold applies the ContainsFold predicate on the "pattern_id" field.
func PatternIDContainsFold(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldContainsFold(FieldPatternID, v))
}

// FromStatusEQ applies the EQ predicate on the "from_status" field.
func FromStatusEQ(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldEQ(FieldFromStatus, v))
}

// FromStatusNEQ applies the NEQ predicate on the "from_status" field.
func FromStatusNEQ(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldNEQ(FieldFromStatus, v))
}

// FromStatusIn applies the In predicate on the "from_status" field.
func FromStatusIn(vs ...string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldIn(FieldFromStatus, vs...))
}

// FromStatusNotIn applies the NotIn predicate on the "from_status" field.
func FromStatusNotIn(vs ...string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldNotIn(FieldFromStatus, vs...))
}

// FromStatusGT applies the GT predicate on the "from_status" field.
func FromStatusGT(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldGT(FieldFromStatus, v))
}

// FromStatusGTE applies the GTE predicate on the "from_status" field.
func FromStatusGTE(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldGTE(FieldFromStatus, v))
}

// FromStatusLT applies the LT predicate on the "from_status" field.
func FromStatusLT(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldLT(FieldFromStatus, v))
}

// FromStatusLTE applies the LTE predicate on the "from_status" field.
func FromStatusLTE(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldLTE(FieldFromStatus, v))
}

// FromStatusContains applies the Contains predicate on the "from_status" field.
func FromStatusContains(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldContains(FieldFromStatus, v))
}

// FromStatusHasPrefix applies the HasPrefix predicate on the "from_status" field.
func FromStatusHasPrefix(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldHasPrefix(FieldFromStatus, v))
}

// FromStatusHasSuffix applies the HasSuffix predicate on the "from_status" field.
func FromStatusHasSuffix(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldHasSuffix(FieldFromStatus, v))
}

// FromStatusEqualFold applies the EqualFold predicate on the "from_status" field.
func FromStatusEqualFold(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldEqualFold(FieldFromStatus, v))
}

// FromStatusContainsFold applies the ContainsFold predicate on the "from_status" field.
func FromStatusContainsFold(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldContainsFold(FieldFromStatus, v))
}

// ToStatusEQ applies the EQ predicate on the "to_status" field.
func ToStatusEQ(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldEQ(FieldToStatus, v))
}

// ToStatusNEQ applies the NEQ predicate on the "to_status" field.
func ToStatusNEQ(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldNEQ(FieldToStatus, v))
}

// ToStatusIn applies the In predicate on the "to_status" field.
func ToStatusIn(vs ...string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldIn(FieldToStatus, vs...))
}

// ToStatusNotIn applies the NotIn predicate on the "to_status" field.
func ToStatusNotIn(vs ...string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldNotIn(FieldToStatus, vs...))
}

// ToStatusGT applies the GT predicate on the "to_status" field.
func ToStatusGT(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldGT(FieldToStatus, v))
}

// ToStatusGTE applies the GTE predicate on the "to_status" field.
func ToStatusGTE(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldGTE(FieldToStatus, v))
}

// ToStatusLT applies the LT predicate on the "to_status" field.
func ToStatusLT(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldLT(FieldToStatus, v))
}

// ToStatusLTE applies the LTE predicate on the "to_status" field.
func ToStatusLTE(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldLTE(FieldToStatus, v))
}

// ToStatusContains applies the Contains predicate on the "to_status" field.
func ToStatusContains(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldContains(FieldToStatus, v))
}

// ToStatusHasPrefix applies the HasPrefix predicate on the "to_status" field.
func ToStatusHasPrefix(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldHasPrefix(FieldToStatus, v))
}

// ToStatusHasSuffix applies the HasSuffix predicate on the "to_status" field.
func ToStatusHasSuffix(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldHasSuffix(FieldToStatus, v))
}

// ToStatusEqualFold applies the EqualFold predicate on the "to_status" field.
func ToStatusEqualFold(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldEqualFold(FieldToStatus, v))
}

// ToStatusContainsFold applies the ContainsFold predicate on the "to_status" field.
func ToStatusContainsFold(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldContainsFold(FieldToStatus, v))
}

// TriggerEQ applies the EQ predicate on the "trigger" field.
func TriggerEQ(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldEQ(FieldTrigger, v))
}

// TriggerNEQ applies the NEQ predicate on the "trigger" field.
func TriggerNEQ(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldNEQ(FieldTrigger, v))
}

// TriggerIn applies the In predicate on the "trigger" field.
func TriggerIn(vs ...string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldIn(FieldTrigger, vs...))
}

// TriggerNotIn applies the NotIn predicate on the "trigger" field.
func TriggerNotIn(vs ...string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldNotIn(FieldTrigger, vs...))
}

// TriggerGT applies the GT predicate on the "trigger" field.
func TriggerGT(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldGT(FieldTrigger, v))
}

// TriggerGTE applies the GTE predicate on the "trigger" field.
func TriggerGTE(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldGTE(FieldTrigger, v))
}

// TriggerLT applies the LT predicate on the "trigger" field.
func TriggerLT(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldLT(FieldTrigger, v))
}

// TriggerLTE applies the LTE predicate on the "trigger" field.
func TriggerLTE(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldLTE(FieldTrigger, v))
}

// TriggerContains applies the Contains predicate on the "trigger" field.
func TriggerContains(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldContains(FieldTrigger, v))
}

// TriggerHasPrefix applies the HasPrefix predicate on the "trigger" field.
func TriggerHasPrefix(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldHasPrefix(FieldTrigger, v))
}

// TriggerHasSuffix applies the HasSuffix predicate on the "trigger" field.
func TriggerHasSuffix(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldHasSuffix(FieldTrigger, v))
}

// TriggerEqualFold applies the EqualFold predicate on the "trigger" field.
func TriggerEqualFold(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldEqualFold(FieldTrigger, v))
}

// TriggerContainsFold applies the ContainsFold predicate on the "trigger" field.
func TriggerContainsFold(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldContainsFold(FieldTrigger, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonIsNil applies the IsNil predicate on the "reason" field.
func ReasonIsNil() predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldIsNull(FieldReason))
}

// ReasonNotNil applies the NotNil predicate on the "reason" field.
func ReasonNotNil() predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldNotNull(FieldReason))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldContainsFold(FieldReason, v))
}

// EvidenceSnapshotIsNil applies the IsNil predicate on the "evidence_snapshot" field.
func EvidenceSnapshotIsNil() predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldIsNull(FieldEvidenceSnapshot))
}

// EvidenceSnapshotNotNil applies the NotNil predicate on the "evidence_snapshot" field.
func EvidenceSnapshotNotNil() predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldNotNull(FieldEvidenceSnapshot))
}

// CorrelationIDEQ applies the EQ predicate on the "correlation_id" field.
func CorrelationIDEQ(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldEQ(FieldCorrelationID, v))
}

// CorrelationIDNEQ applies the NEQ predicate on the "correlation_id" field.
func CorrelationIDNEQ(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldNEQ(FieldCorrelationID, v))
}

// CorrelationIDIn applies the In predicate on the "correlation_id" field.
func CorrelationIDIn(vs ...string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldIn(FieldCorrelationID, vs...))
}

// CorrelationIDNotIn applies the NotIn predicate on the "correlation_id" field.
func CorrelationIDNotIn(vs ...string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldNotIn(FieldCorrelationID, vs...))
}

// CorrelationIDGT applies the GT predicate on the "correlation_id" field.
func CorrelationIDGT(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldGT(FieldCorrelationID, v))
}

// CorrelationIDGTE applies the GTE predicate on the "correlation_id" field.
func CorrelationIDGTE(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldGTE(FieldCorrelationID, v))
}

// CorrelationIDLT applies the LT predicate on the "correlation_id" field.
func CorrelationIDLT(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldLT(FieldCorrelationID, v))
}

// CorrelationIDLTE applies the LTE predicate on the "correlation_id" field.
func CorrelationIDLTE(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldLTE(FieldCorrelationID, v))
}

// CorrelationIDContains applies the Contains predicate on the "correlation_id" field.
func CorrelationIDContains(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldContains(FieldCorrelationID, v))
}

// CorrelationIDHasPrefix applies the HasPrefix predicate on the "correlation_id" field.
func CorrelationIDHasPrefix(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldHasPrefix(FieldCorrelationID, v))
}

// CorrelationIDHasSuffix applies the HasSuffix predicate on the "correlation_id" field.
func CorrelationIDHasSuffix(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldHasSuffix(FieldCorrelationID, v))
}

// CorrelationIDIsNil applies the IsNil predicate on the "correlation_id" field.
func CorrelationIDIsNil() predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldIsNull(FieldCorrelationID))
}

// CorrelationIDNotNil applies the NotNil predicate on the "correlation_id" field.
func CorrelationIDNotNil() predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldNotNull(FieldCorrelationID))
}

// CorrelationIDEqualFold applies the EqualFold predicate on the "correlation_id" field.
func CorrelationIDEqualFold(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldEqualFold(FieldCorrelationID, v))
}

// CorrelationIDContainsFold applies the ContainsFold predicate on the "correlation_id" field.
func CorrelationIDContainsFold(v string) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldContainsFold(FieldCorrelationID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PatternAudit {
	return predicate.PatternAudit(sql.FieldLTE(FieldCreatedAt, v))
}

// HasPattern applies the HasEdge predicate on the "pattern" edge.
func HasPattern() predicate.PatternAudit {
	return predicate.PatternAudit(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PatternTable, PatternColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPatternWith applies the HasEdge predicate on the "pattern" edge with a given conditions (other predicates).
func HasPatternWith(preds ...predicate.Pattern) predicate.PatternAudit {
	return predicate.PatternAudit(func(s *sql.Selector) {
		step := newPatternStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PatternAudit) predicate.PatternAudit {
	return predicate.PatternAudit(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PatternAudit) predicate.PatternAudit {
	return predicate.PatternAudit(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PatternAudit) predicate.PatternAudit {
	return predicate.PatternAudit(sql.NotPredicates(p))
}
