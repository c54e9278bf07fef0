// Code generated by ent, DO NOT EDIT.

package idempotencyrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/onex-platform/omniintelligence/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldLTE(FieldID, id))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v string) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldEQ(FieldEventID, v))
}

// HandlerName applies equality check predicate on the "handler_name" field. It's identical to HandlerNameEQ.
func HandlerName(v string) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldEQ(FieldHandlerName, v))
}

// FirstSeenAt applies equality check predicate on the "first_seen_at" field. It's identical to FirstSeenAtEQ.
func FirstSeenAt(v time.Time) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldEQ(FieldFirstSeenAt, v))
}

// ResultHash applies equality check predicate on the "result_hash" field. It's identical to ResultHashEQ.
func ResultHash(v string) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldEQ(FieldResultHash, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v string) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v string) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...string) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...string) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v string) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v string) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v string) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v string) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldLTE(FieldEventID, v))
}

// EventIDContains applies the Contains predicate on the "event_id" field.
func EventIDContains(v string) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldContains(FieldEventID, v))
}

// EventIDHasPrefix applies the HasPrefix predicate on the "event_id" field.
func EventIDHasPrefix(v string) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldHasPrefix(FieldEventID, v))
}

// EventIDHasSuffix applies the HasSuffix predicate on the "event_id" field.
func EventIDHasSuffix(v string) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldHasSuffix(FieldEventID, v))
}

// EventIDEqualFold applies the EqualFold predicate on the "event_id" field.
func EventIDEqualFold(v string) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldEqualFold(FieldEventID, v))
}

// EventIDContainsFold applies the ContainsFold predicate on the "event_id" field.
func EventIDContainsFold(v string) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldContainsFold(FieldEventID, v))
}

// HandlerNameEQ applies the EQ predicate on the "handler_name" field.
func HandlerNameEQ(v string) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldEQ(FieldHandlerName, v))
}

// HandlerNameNEQ applies the NEQ predicate on the "handler_name" field.
func HandlerNameNEQ(v string) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldNEQ(FieldHandlerName, v))
}

// HandlerNameIn applies the In predicate on the "handler_name" field.
func HandlerNameIn(vs ...string) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldIn(FieldHandlerName, vs...))
}

// HandlerNameNotIn applies the NotIn predicate on the "handler_name" field.
func HandlerNameNotIn(vs ...string) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldNotIn(FieldHandlerName, vs...))
}

// HandlerNameGT applies the GT predicate on the "handler_name" field.
func HandlerNameGT(v string) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldGT(FieldHandlerName, v))
}

// HandlerNameGTE applies the GTE predicate on the "handler_name" field.
func HandlerNameGTE(v string) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldGTE(FieldHandlerName, v))
}

// HandlerNameLT applies the LT predicate on the "handler_name" field.
func HandlerNameLT(v string) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldLT(FieldHandlerName, v))
}

// HandlerNameLTE applies the LTE predicate on the "handler_name" field.
func HandlerNameLTE(v string) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldLTE(FieldHandlerName, v))
}

// HandlerNameContains applies the Contains predicate on the "handler_name" field.
func HandlerNameContains(v string) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldContains(FieldHandlerName, v))
}

// HandlerNameHasPrefix applies the HasPrefix predicate on the "handler_name" field.
func HandlerNameHasPrefix(v string) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldHasPrefix(FieldHandlerName, v))
}

// HandlerNameHasSuffix applies the HasSuffix predicate on the "handler_name" field.
func HandlerNameHasSuffix(v string) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldHasSuffix(FieldHandlerName, v))
}

// HandlerNameEqualFold applies the EqualFold predicate on the "handler_name" field.
func HandlerNameEqualFold(v string) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldEqualFold(FieldHandlerName, v))
}

// HandlerNameContainsFold applies the ContainsFold predicate on the "handler_name" field.
func HandlerNameContainsFold(v string) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldContainsFold(FieldHandlerName, v))
}

// FirstSeenAtEQ applies the EQ predicate on the "first_seen_at" field.
func FirstSeenAtEQ(v time.Time) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldEQ(FieldFirstSeenAt, v))
}

// FirstSeenAtNEQ applies the NEQ predicate on the "first_seen_at" field.
func FirstSeenAtNEQ(v time.Time) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldNEQ(FieldFirstSeenAt, v))
}

// FirstSeenAtIn applies the In predicate on the "first_seen_at" field.
func FirstSeenAtIn(vs ...time.Time) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldIn(FieldFirstSeenAt, vs...))
}

// FirstSeenAtNotIn applies the NotIn predicate on the "first_seen_at" field.
func FirstSeenAtNotIn(vs ...time.Time) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldNotIn(FieldFirstSeenAt, vs...))
}

// FirstSeenAtGT applies the GT predicate on the "first_seen_at" field.
func FirstSeenAtGT(v time.Time) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldGT(FieldFirstSeenAt, v))
}

// FirstSeenAtGTE applies the GTE predicate on the "first_seen_at" field.
func FirstSeenAtGTE(v time.Time) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldGTE(FieldFirstSeenAt, v))
}

// FirstSeenAtLT applies the LT predicate on the "first_seen_at" field.
func FirstSeenAtLT(v time.Time) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldLT(FieldFirstSeenAt, v))
}

// FirstSeenAtLTE applies the LTE predicate on the "first_seen_at" field.
func FirstSeenAtLTE(v time.Time) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldLTE(FieldFirstSeenAt, v))
}

// ResultHashEQ applies the EQ predicate on the "result_hash" field.
func ResultHashEQ(v string) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldEQ(FieldResultHash, v))
}

// ResultHashNEQ applies the NEQ predicate on the "result_hash" field.
func ResultHashNEQ(v string) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldNEQ(FieldResultHash, v))
}

// ResultHashIn applies the In predicate on the "result_hash" field.
func ResultHashIn(vs ...string) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldIn(FieldResultHash, vs...))
}

// ResultHashNotIn applies the NotIn predicate on the "result_hash" field.
func ResultHashNotIn(vs ...string) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldNotIn(FieldResultHash, vs...))
}

// ResultHashGT applies the GT predicate on the "result_hash" field.
func ResultHashGT(v string) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldGT(FieldResultHash, v))
}

// ResultHashGTE applies the GTE predicate on the "result_hash" field.
func ResultHashGTE(v string) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldGTE(FieldResultHash, v))
}

// ResultHashLT applies the LT predicate on the "result_hash" field.
func ResultHashLT(v string) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldLT(FieldResultHash, v))
}

// ResultHashLTE applies the LTE predicate on the "result_hash" field.
func ResultHashLTE(v string) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldLTE(FieldResultHash, v))
}

// ResultHashContains applies the Contains predicate on the "result_hash" field.
func ResultHashContains(v string) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldContains(FieldResultHash, v))
}

// ResultHashHasPrefix applies the HasPrefix predicate on the "result_hash" field.
func ResultHashHasPrefix(v string) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldHasPrefix(FieldResultHash, v))
}

// ResultHashHasSuffix applies the HasSuffix predicate on the "result_hash" field.
func ResultHashHasSuffix(v string) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldHasSuffix(FieldResultHash, v))
}

// ResultHashIsNil applies the IsNil predicate on the "result_hash" field.
func ResultHashIsNil() predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldIsNull(FieldResultHash))
}

// ResultHashNotNil applies the NotNil predicate on the "result_hash" field.
func ResultHashNotNil() predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldNotNull(FieldResultHash))
}

// ResultHashEqualFold applies the EqualFold predicate on the "result_hash" field.
func ResultHashEqualFold(v string) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldEqualFold(FieldResultHash, v))
}

// ResultHashContainsFold applies the ContainsFold predicate on the "result_hash" field.
func ResultHashContainsFold(v string) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.FieldContainsFold(FieldResultHash, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.IdempotencyRecord) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.IdempotencyRecord) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.IdempotencyRecord) predicate.IdempotencyRecord {
	return predicate.IdempotencyRecord(sql.NotPredicates(p))
}
