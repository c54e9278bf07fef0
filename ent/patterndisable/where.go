// Code generated by ent, DO NOT EDIT.

package patterndisable

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/onex-platform/omniintelligence/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldLTE(FieldID, id))
}

// PatternID applies equality check predicate on the "pattern_id" field. It's identical to PatternIDEQ.
func PatternID(v string) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldEQ(FieldPatternID, v))
}

// Detail applies equality check predicate on the "detail" field. It's identical to DetailEQ.
func Detail(v string) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldEQ(FieldDetail, v))
}

// DisabledBy applies equality check predicate on the "disabled_by" field. It's identical to DisabledByEQ.
func DisabledBy(v string) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldEQ(FieldDisabledBy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldEQ(FieldCreatedAt, v))
}

// PatternIDEQ applies the EQ predicate on the "pattern_id" field.
func PatternIDEQ(v string) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldEQ(FieldPatternID, v))
}

// PatternIDNEQ applies the NEQ predicate on the "pattern_id" field.
func PatternIDNEQ(v string) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldNEQ(FieldPatternID, v))
}

// PatternIDIn applies the In predicate on the "pattern_id" field.
func PatternIDIn(vs ...string) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldIn(FieldPatternID, vs...))
}

// PatternIDNotIn applies the NotIn predicate on the "pattern_id" field.
func PatternIDNotIn(vs ...string) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldNotIn(FieldPatternID, vs...))
}

// PatternIDGT applies the GT predicate on the "pattern_id" field.
func PatternIDGT(v string) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldGT(FieldPatternID, v))
}

// PatternIDGTE applies the GTE predicate on the "pattern_id" field.
func PatternIDGTE(v string) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldGTE(FieldPatternID, v))
}

// PatternIDLT applies the LT predicate on the "pattern_id" field.
func PatternIDLT(v string) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldLT(FieldPatternID, v))
}

// PatternIDLTE applies the LTE predicate on the "pattern_id" field.
func PatternIDLTE(v string) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldLTE(FieldPatternID, v))
}

// PatternIDContains applies the Contains predicate on the "pattern_id" field.
func PatternIDContains(v string) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldContains(FieldPatternID, v))
}

// PatternIDHasPrefix applies the HasPrefix predicate on the "pattern_id" field.
func PatternIDHasPrefix(v string) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldHasPrefix(FieldPatternID, v))
}

// PatternIDHasSuffix applies the HasSuffix predicate on the "pattern_id" field.
func PatternIDHasSuffix(v string) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldHasSuffix(FieldPatternID, v))
}

// PatternIDEqualFold applies the EqualFold predicate on the "pattern_id" field.
func PatternIDEqualFold(v string) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldEqualFold(FieldPatternID, v))
}

// PatternIDContainsFold applies the ContainsFold predicate on the "pattern_id" field.
func PatternIDContainsFold(v string) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldContainsFold(FieldPatternID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v Action) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v Action) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...Action) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...Action) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldNotIn(FieldAction, vs...))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v Reason) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v Reason) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...Reason) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...Reason) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldNotIn(FieldReason, vs...))
}

// DetailEQ applies the EQ predicate on the "detail" field.
func DetailEQ(v string) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldEQ(FieldDetail, v))
}

// DetailNEQ applies the NEQ predicate on the "detail" field.
func DetailNEQ(v string) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldNEQ(FieldDetail, v))
}

// DetailIn applies the In predicate on the "detail" field.
func DetailIn(vs ...string) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldIn(FieldDetail, vs...))
}

// DetailNotIn applies the NotIn predicate on the "detail" field.
func DetailNotIn(vs ...string) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldNotIn(FieldDetail, vs...))
}

// DetailGT applies the GT predicate on the "detail" field.
func DetailGT(v string) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldGT(FieldDetail, v))
}

// DetailGTE applies the GTE predicate on the "detail" field.
func DetailGTE(v string) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldGTE(FieldDetail, v))
}

// DetailLT applies the LT predicate on the "detail" field.
func DetailLT(v string) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldLT(FieldDetail, v))
}

// DetailLTE applies the LTE predicate on the "detail" field.
func DetailLTE(v string) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldLTE(FieldDetail, v))
}

// DetailContains applies the Contains predicate on the "detail" field.
func DetailContains(v string) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldContains(FieldDetail, v))
}

// DetailHasPrefix applies the HasPrefix predicate on the "detail" field.
func DetailHasPrefix(v string) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldHasPrefix(FieldDetail, v))
}

// DetailHasSuffix applies the HasSuffix predicate on the "detail" field.
func DetailHasSuffix(v string) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldHasSuffix(FieldDetail, v))
}

// DetailIsNil applies the IsNil predicate on the "detail" field.
func DetailIsNil() predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldIsNull(FieldDetail))
}

// DetailNotNil applies the NotNil predicate on the "detail" field.
func DetailNotNil() predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldNotNull(FieldDetail))
}

// DetailEqualFold applies the EqualFold predicate on the "detail" field.
func DetailEqualFold(v string) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldEqualFold(FieldDetail, v))
}

// DetailContainsFold applies the ContainsFold predicate on the "detail" field.
func DetailContainsFold(v string) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldContainsFold(FieldDetail, v))
}

// DisabledByEQ applies the EQ predicate on the "disabled_by" field.
func DisabledByEQ(v string) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldEQ(FieldDisabledBy, v))
}

// DisabledByNEQ applies the NEQ predicate on the "disabled_by" field.
func DisabledByNEQ(v string) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldNEQ(FieldDisabledBy, v))
}

// DisabledByIn applies the In predicate on the "disabled_by" field.
func DisabledByIn(vs ...string) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldIn(FieldDisabledBy, vs...))
}

// DisabledByNotIn applies the NotIn predicate on the "disabled_by" field.
func DisabledByNotIn(vs ...string) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldNotIn(FieldDisabledBy, vs...))
}

// DisabledByGT applies the GT predicate on the "disabled_by" field.
func DisabledByGT(v string) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldGT(FieldDisabledBy, v))
}

// DisabledByGTE applies the GTE predicate on the "disabled_by" field.
func DisabledByGTE(v string) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldGTE(FieldDisabledBy, v))
}

// DisabledByLT applies the LT predicate on the "disabled_by" field.
func DisabledByLT(v string) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldLT(FieldDisabledBy, v))
}

// DisabledByLTE applies the LTE predicate on the "disabled_by" field.
func DisabledByLTE(v string) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldLTE(FieldDisabledBy, v))
}

// DisabledByContains applies the Contains predicate on the "disabled_by" field.
func DisabledByContains(v string) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldContains(FieldDisabledBy, v))
}

// DisabledByHasPrefix applies the HasPrefix predicate on the "disabled_by" field.
func DisabledByHasPrefix(v string) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldHasPrefix(FieldDisabledBy, v))
}

// DisabledByHasSuffix applies the HasSuffix predicate on the "disabled_by" field.
func DisabledByHasSuffix(v string) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldHasSuffix(FieldDisabledBy, v))
}

// DisabledByEqualFold applies the EqualFold predicate on the "disabled_by" field.
func DisabledByEqualFold(v string) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldEqualFold(FieldDisabledBy, v))
}

// DisabledByContainsFold applies the ContainsFold predicate on the "disabled_by" field.
func DisabledByContainsFold(v string) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldContainsFold(FieldDisabledBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PatternDisable {
	return predicate.PatternDisable(sql.FieldLTE(FieldCreatedAt, v))
}

// HasPattern applies the HasEdge predicate on the "pattern" edge.
func HasPattern() predicate.PatternDisable {
	return predicate.PatternDisable(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PatternTable, PatternColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPatternWith applies the HasEdge predicate on the "pattern" edge with a given conditions (other predicates).
func HasPatternWith(preds ...predicate.Pattern) predicate.PatternDisable {
	return predicate.PatternDisable(func(s *sql.Selector) {
		step := newPatternStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PatternDisable) predicate.PatternDisable {
	return predicate.PatternDisable(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PatternDisable) predicate.PatternDisable {
	return predicate.PatternDisable(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PatternDisable) predicate.PatternDisable {
	return predicate.PatternDisable(sql.NotPredicates(p))
}
