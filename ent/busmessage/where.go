// Code generated by ent, DO NOT EDIT.

package busmessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/onex-platform/omniintelligence/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldLTE(FieldID, id))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldEQ(FieldTopic, v))
}

// Partition applies equality check predicate on the "partition" field. It's identical to PartitionEQ.
func Partition(v int) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldEQ(FieldPartition, v))
}

// Key applies equality check predicate on the "key" field. It's identical to KeyEQ.
func Key(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldEQ(FieldKey, v))
}

// Envelope applies equality check predicate on the "envelope" field. It's identical to EnvelopeEQ.
func Envelope(v []byte) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldEQ(FieldEnvelope, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldContainsFold(FieldTopic, v))
}

// PartitionEQ applies the EQ predicate on the "partition" field.
func PartitionEQ(v int) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldEQ(FieldPartition, v))
}

// PartitionNEQ applies the NEQ predicate on the "partition" field.
func PartitionNEQ(v int) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldNEQ(FieldPartition, v))
}

// PartitionIn applies the In predicate on the "partition" field.
func PartitionIn(vs ...int) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldIn(FieldPartition, vs...))
}

// PartitionNotIn applies the NotIn predicate on the "partition" field.
func PartitionNotIn(vs ...int) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldNotIn(FieldPartition, vs...))
}

// PartitionGT applies the GT predicate on the "partition" field.
func PartitionGT(v int) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldGT(FieldPartition, v))
}

// PartitionGTE applies the GTE predicate on the "partition" field.
func PartitionGTE(v int) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldGTE(FieldPartition, v))
}

// PartitionLT applies the LT predicate on the "partition" field.
func PartitionLT(v int) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldLT(FieldPartition, v))
}

// PartitionLTE applies the LTE predicate on the "partition" field.
func PartitionLTE(v int) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldLTE(FieldPartition, v))
}

// KeyEQ applies the EQ predicate on the "key" field.
func KeyEQ(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldEQ(FieldKey, v))
}

// KeyNEQ applies the NEQ predicate on the "key" field.
func KeyNEQ(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldNEQ(FieldKey, v))
}

// KeyIn applies the In predicate on the "key" field.
func KeyIn(vs ...string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldIn(FieldKey, vs...))
}

// KeyNotIn applies the NotIn predicate on the "key" field.
func KeyNotIn(vs ...string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldNotIn(FieldKey, vs...))
}

// KeyGT applies the GT predicate on the "key" field.
func KeyGT(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldGT(FieldKey, v))
}

// KeyGTE applies the GTE predicate on the "key" field.
func KeyGTE(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldGTE(FieldKey, v))
}

// KeyLT applies the LT predicate on the "key" field.
func KeyLT(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldLT(FieldKey, v))
}

// KeyLTE applies the LTE predicate on the "key" field.
func KeyLTE(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldLTE(FieldKey, v))
}

// KeyContains applies the Contains predicate on the "key" field.
func KeyContains(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldContains(FieldKey, v))
}

// KeyHasPrefix applies the HasPrefix predicate on the "key" field.
func KeyHasPrefix(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldHasPrefix(FieldKey, v))
}

// KeyHasSuffix applies the HasSuffix predicate on the "key" field.
func KeyHasSuffix(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldHasSuffix(FieldKey, v))
}

// KeyIsNil applies the IsNil predicate on the "key" field.
func KeyIsNil() predicate.BusMessage {
	return predicate.BusMessage(sql.FieldIsNull(FieldKey))
}

// KeyNotNil applies the NotNil predicate on the "key" field.
func KeyNotNil() predicate.BusMessage {
	return predicate.BusMessage(sql.FieldNotNull(FieldKey))
}

// KeyEqualFold applies the EqualFold predicate on the "key" field.
func KeyEqualFold(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldEqualFold(FieldKey, v))
}

// KeyContainsFold applies the ContainsFold predicate on the "key" field.
func KeyContainsFold(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldContainsFold(FieldKey, v))
}

// EnvelopeEQ applies the EQ predicate on the "envelope" field.
func EnvelopeEQ(v []byte) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldEQ(FieldEnvelope, v))
}

// EnvelopeNEQ applies the NEQ predicate on the "envelope" field.
func EnvelopeNEQ(v []byte) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldNEQ(FieldEnvelope, v))
}

// EnvelopeIn applies the In predicate on the "envelope" field.
func EnvelopeIn(vs ...[]byte) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldIn(FieldEnvelope, vs...))
}

// EnvelopeNotIn applies the NotIn predicate on the "envelope" field.
func EnvelopeNotIn(vs ...[]byte) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldNotIn(FieldEnvelope, vs...))
}

// EnvelopeGT applies the GT predicate on the "envelope" field.
func EnvelopeGT(v []byte) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldGT(FieldEnvelope, v))
}

// EnvelopeGTE applies the GTE predicate on the "envelope" field.
func EnvelopeGTE(v []byte) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldGTE(FieldEnvelope, v))
}

// EnvelopeLT applies the LT predicate on the "envelope" field.
func EnvelopeLT(v []byte) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldLT(FieldEnvelope, v))
}

// EnvelopeLTE applies the LTE predicate on the "envelope" field.
func EnvelopeLTE(v []byte) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldLTE(FieldEnvelope, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BusMessage) predicate.BusMessage {
	return predicate.BusMessage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BusMessage) predicate.BusMessage {
	return predicate.BusMessage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BusMessage) predicate.BusMessage {
	return predicate.BusMessage(sql.NotPredicates(p))
}
