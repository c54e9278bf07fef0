// Code generated by ent, DO NOT EDIT.

package fsmstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/onex-platform/omniintelligence/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.FSMState {
	return predicate.FSMState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.FSMState {
	return predicate.FSMState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.FSMState {
	return predicate.FSMState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.FSMState {
	return predicate.FSMState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.FSMState {
	return predicate.FSMState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.FSMState {
	return predicate.FSMState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.FSMState {
	return predicate.FSMState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.FSMState {
	return predicate.FSMState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.FSMState {
	return predicate.FSMState(sql.FieldLTE(FieldID, id))
}

// EntityID applies equality check predicate on the "entity_id" field. It's identical to EntityIDEQ.
func EntityID(v string) predicate.FSMState {
	return predicate.FSMState(sql.FieldEQ(FieldEntityID, v))
}

// CurrentState applies equality check predicate on the "current_state" field. It's identical to CurrentStateEQ.
func CurrentState(v string) predicate.FSMState {
	return predicate.FSMState(sql.FieldEQ(FieldCurrentState, v))
}

// EnteredAt applies equality check predicate on the "entered_at" field. It's identical to EnteredAtEQ.
func EnteredAt(v time.Time) predicate.FSMState {
	return predicate.FSMState(sql.FieldEQ(FieldEnteredAt, v))
}

// LastEventID applies equality check predicate on the "last_event_id" field. It's identical to LastEventIDEQ.
func LastEventID(v string) predicate.FSMState {
	return predicate.FSMState(sql.FieldEQ(FieldLastEventID, v))
}

// FsmKindEQ applies the EQ predicate on the "fsm_kind" field.
func FsmKindEQ(v FsmKind) predicate.FSMState {
	return predicate.FSMState(sql.FieldEQ(FieldFsmKind, v))
}

// FsmKindNEQ applies the NEQ predicate on the "fsm_kind" field.
func FsmKindNEQ(v FsmKind) predicate.FSMState {
	return predicate.FSMState(sql.FieldNEQ(FieldFsmKind, v))
}

// FsmKindIn applies the In predicate on the "fsm_kind" field.
func FsmKindIn(vs ...FsmKind) predicate.FSMState {
	return predicate.FSMState(sql.FieldIn(FieldFsmKind, vs...))
}

// FsmKindNotIn applies the NotIn predicate on the "fsm_kind" field.
func FsmKindNotIn(vs ...FsmKind) predicate.FSMState {
	return predicate.FSMState(sql.FieldNotIn(FieldFsmKind, vs...))
}

// EntityIDEQ applies the EQ predicate on the "entity_id" field.
func EntityIDEQ(v string) predicate.FSMState {
	return predicate.FSMState(sql.FieldEQ(FieldEntityID, v))
}

// EntityIDNEQ applies the NEQ predicate on the "entity_id" field.
func EntityIDNEQ(v string) predicate.FSMState {
	return predicate.FSMState(sql.FieldNEQ(FieldEntityID, v))
}

// EntityIDIn applies the In predicate on the "entity_id" field.
func EntityIDIn(vs ...string) predicate.FSMState {
	return predicate.FSMState(sql.FieldIn(FieldEntityID, vs...))
}

// EntityIDNotIn applies the NotIn predicate on the "entity_id" field.
func EntityIDNotIn(vs ...string) predicate.FSMState {
	return predicate.FSMState(sql.FieldNotIn(FieldEntityID, vs...))
}

// EntityIDGT applies the GT predicate on the "entity_id" field.
func EntityIDGT(v string) predicate.FSMState {
	return predicate.FSMState(sql.FieldGT(FieldEntityID, v))
}

// EntityIDGTE applies the GTE predicate on the "entity_id" field.
func EntityIDGTE(v string) predicate.FSMState {
	return predicate.FSMState(sql.FieldGTE(FieldEntityID, v))
}

// EntityIDLT applies the LT predicate on the "entity_id" field.
func EntityIDLT(v string) predicate.FSMState {
	return predicate.FSMState(sql.FieldLT(FieldEntityID, v))
}

// EntityIDLTE applies the LTE predicate on the "entity_id" field.
func EntityIDLTE(v string) predicate.FSMState {
	return predicate.FSMState(sql.FieldLTE(FieldEntityID, v))
}

// EntityIDContains applies the Contains predicate on the "entity_id" field.
func EntityIDContains(v string) predicate.FSMState {
	return predicate.FSMState(sql.FieldContains(FieldEntityID, v))
}

// EntityIDHasPrefix applies the HasPrefix predicate on the "entity_id" field.
func EntityIDHasPrefix(v string) predicate.FSMState {
	return predicate.FSMState(sql.FieldHasPrefix(FieldEntityID, v))
}

// EntityIDHasSuffix applies the HasSuffix predicate on the "entity_id" field.
func EntityIDHasSuffix(v string) predicate.FSMState {
	return predicate.FSMState(sql.FieldHasSuffix(FieldEntityID, v))
}

// EntityIDEqualFold applies the EqualFold predicate on the "entity_id" field.
func EntityIDEqualFold(v string) predicate.FSMState {
	return predicate.FSMState(sql.FieldEqualFold(FieldEntityID, v))
}

// EntityIDContainsFold applies the ContainsFold predicate on the "entity_id" field.
func EntityIDContainsFold(v string) predicate.FSMState {
	return predicate.FSMState(sql.FieldContainsFold(FieldEntityID, v))
}

// CurrentStateEQ applies the EQ predicate on the "current_state" field.
func CurrentStateEQ(v string) predicate.FSMState {
	return predicate.FSMState(sql.FieldEQ(FieldCurrentState, v))
}

// CurrentStateNEQ applies the NEQ predicate on the "current_state" field.
func CurrentStateNEQ(v string) predicate.FSMState {
	return predicate.FSMState(sql.FieldNEQ(FieldCurrentState, v))
}

// CurrentStateIn applies the In predicate on the "current_state" field.
func CurrentStateIn(vs ...string) predicate.FSMState {
	return predicate.FSMState(sql.FieldIn(FieldCurrentState, vs...))
}

// CurrentStateNotIn applies the NotIn predicate on the "current_state" field.
func CurrentStateNotIn(vs ...string) predicate.FSMState {
	return predicate.FSMState(sql.FieldNotIn(FieldCurrentState, vs...))
}

// CurrentStateGT applies the GT predicate on the "current_state" field.
func CurrentStateGT(v string) predicate.FSMState {
	return predicate.FSMState(sql.FieldGT(FieldCurrentState, v))
}

// CurrentStateGTE applies the GTE predicate on the "current_state" field.
func CurrentStateGTE(v string) predicate.FSMState {
	return predicate.FSMState(sql.FieldGTE(FieldCurrentState, v))
}

// CurrentStateLT applies the LT predicate on the "current_state" field.
func CurrentStateLT(v string) predicate.FSMState {
	return predicate.FSMState(sql.FieldLT(FieldCurrentState, v))
}

// CurrentStateLTE applies the LTE predicate on the "current_state" field.
func CurrentStateLTE(v string) predicate.FSMState {
	return predicate.FSMState(sql.FieldLTE(FieldCurrentState, v))
}

// CurrentStateContains applies the Contains predicate on the "current_state" field.
func CurrentStateContains(v string) predicate.FSMState {
	return predicate.FSMState(sql.FieldContains(FieldCurrentState, v))
}

// CurrentStateHasPrefix applies the HasPrefix predicate on the "current_state" field.
func CurrentStateHasPrefix(v string) predicate.FSMState {
	return predicate.FSMState(sql.FieldHasPrefix(FieldCurrentState, v))
}

// CurrentStateHasSuffix applies the HasSuffix predicate on the "current_state" field.
func CurrentStateHasSuffix(v string) predicate.FSMState {
	return predicate.FSMState(sql.FieldHasSuffix(FieldCurrentState, v))
}

// CurrentStateEqualFold applies the EqualFold predicate on the "current_state" field.
func CurrentStateEqualFold(v string) predicate.FSMState {
	return predicate.FSMState(sql.FieldEqualFold(FieldCurrentState, v))
}

// CurrentStateContainsFold applies the ContainsFold predicate on the "current_state" field.
func CurrentStateContainsFold(v string) predicate.FSMState {
	return predicate.FSMState(sql.FieldContainsFold(FieldCurrentState, v))
}

// EnteredAtEQ applies the EQ predicate on the "entered_at" field.
func EnteredAtEQ(v time.Time) predicate.FSMState {
	return predicate.FSMState(sql.FieldEQ(FieldEnteredAt, v))
}

// EnteredAtNEQ applies the NEQ predicate on the "entered_at" field.
func EnteredAtNEQ(v time.Time) predicate.FSMState {
	return predicate.FSMState(sql.FieldNEQ(FieldEnteredAt, v))
}

// EnteredAtIn applies the In predicate on the "entered_at" field.
func EnteredAtIn(vs ...time.Time) predicate.FSMState {
	return predicate.FSMState(sql.FieldIn(FieldEnteredAt, vs...))
}

// EnteredAtNotIn applies the NotIn predicate on the "entered_at" field.
func EnteredAtNotIn(vs ...time.Time) predicate.FSMState {
	return predicate.FSMState(sql.FieldNotIn(FieldEnteredAt, vs...))
}

// EnteredAtGT applies the GT predicate on the "entered_at" field.
func EnteredAtGT(v time.Time) predicate.FSMState {
	return predicate.FSMState(sql.FieldGT(FieldEnteredAt, v))
}

// EnteredAtGTE applies the GTE predicate on the "entered_at" field.
func EnteredAtGTE(v time.Time) predicate.FSMState {
	return predicate.FSMState(sql.FieldGTE(FieldEnteredAt, v))
}

// EnteredAtLT applies the LT predicate on the "entered_at" field.
func EnteredAtLT(v time.Time) predicate.FSMState {
	return predicate.FSMState(sql.FieldLT(FieldEnteredAt, v))
}

// EnteredAtLTE applies the LTE predicate on the "entered_at" field.
func EnteredAtLTE(v time.Time) predicate.FSMState {
	return predicate.FSMState(sql.FieldLTE(FieldEnteredAt, v))
}

// LastEventIDEQ applies the EQ predicate on the "last_event_id" field.
func LastEventIDEQ(v string) predicate.FSMState {
	return predicate.FSMState(sql.FieldEQ(FieldLastEventID, v))
}

// LastEventIDNEQ applies the NEQ predicate on the "last_event_id" field.
func LastEventIDNEQ(v string) predicate.FSMState {
	return predicate.FSMState(sql.FieldNEQ(FieldLastEventID, v))
}

// LastEventIDIn applies the In predicate on the "last_event_id" field.
func LastEventIDIn(vs ...string) predicate.FSMState {
	return predicate.FSMState(sql.FieldIn(FieldLastEventID, vs...))
}

// LastEventIDNotIn applies the NotIn predicate on the "last_event_id" field.
func LastEventIDNotIn(vs ...string) predicate.FSMState {
	return predicate.FSMState(sql.FieldNotIn(FieldLastEventID, vs...))
}

// LastEventIDGT applies the GT predicate on the "last_event_id" field.
func LastEventIDGT(v string) predicate.FSMState {
	return predicate.FSMState(sql.FieldGT(FieldLastEventID, v))
}

// LastEventIDGTE applies the GTE predicate on the "last_event_id" field.
func LastEventIDGTE(v string) predicate.FSMState {
	return predicate.FSMState(sql.FieldGTE(FieldLastEventID, v))
}

// LastEventIDLT applies the LT predicate on the "last_event_id" field.
func LastEventIDLT(v string) predicate.FSMState {
	return predicate.FSMState(sql.FieldLT(FieldLastEventID, v))
}

// LastEventIDLTE applies the LTE predicate on the "last_event_id" field.
func LastEventIDLTE(v string) predicate.FSMState {
	return predicate.FSMState(sql.FieldLTE(FieldLastEventID, v))
}

// LastEventIDContains applies the Contains predicate on the "last_event_id" field.
func LastEventIDContains(v string) predicate.FSMState {
	return predicate.FSMState(sql.FieldContains(FieldLastEventID, v))
}

// LastEventIDHasPrefix applies the HasPrefix predicate on the "last_event_id" field.
func LastEventIDHasPrefix(v string) predicate.FSMState {
	return predicate.FSMState(sql.FieldHasPrefix(FieldLastEventID, v))
}

// LastEventIDHasSuffix applies the HasSuffix predicate on the "last_event_id" field.
func LastEventIDHasSuffix(v string) predicate.FSMState {
	return predicate.FSMState(sql.FieldHasSuffix(FieldLastEventID, v))
}

// LastEventIDIsNil applies the IsNil predicate on the "last_event_id" field.
func LastEventIDIsNil() predicate.FSMState {
	return predicate.FSMState(sql.FieldIsNull(FieldLastEventID))
}

// LastEventIDNotNil applies the NotNil predicate on the "last_event_id" field.
func LastEventIDNotNil() predicate.FSMState {
	return predicate.FSMState(sql.FieldNotNull(FieldLastEventID))
}

// LastEventIDEqualFold applies the EqualFold predicate on the "last_event_id" field.
func LastEventIDEqualFold(v string) predicate.FSMState {
	return predicate.FSMState(sql.FieldEqualFold(FieldLastEventID, v))
}

// LastEventIDContainsFold applies the ContainsFold predicate on the "last_event_id" field.
func LastEventIDContainsFold(v string) predicate.FSMState {
	return predicate.FSMState(sql.FieldContainsFold(FieldLastEventID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FSMState) predicate.FSMState {
	return predicate.FSMState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FSMState) predicate.FSMState {
	return predicate.FSMState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FSMState) predicate.FSMState {
	return predicate.FSMState(sql.NotPredicates(p))
}
