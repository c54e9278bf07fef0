// Code generated by ent, DO NOT EDIT.

package busoffset

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/onex-platform/omniintelligence/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldLTE(FieldID, id))
}

// ConsumerGroup applies equality check predicate on the "consumer_group" field. It's identical to ConsumerGroupEQ.
func ConsumerGroup(v string) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldEQ(FieldConsumerGroup, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldEQ(FieldTopic, v))
}

// Partition applies equality check predicate on the "partition" field. It's identical to PartitionEQ.
func Partition(v int) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldEQ(FieldPartition, v))
}

// Committed applies equality check predicate on the "committed" field. It's identical to CommittedEQ.
func Committed(v int) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldEQ(FieldCommitted, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldEQ(FieldUpdatedAt, v))
}

// ConsumerGroupEQ applies the EQ predicate on the "consumer_group" field.
func ConsumerGroupEQ(v string) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldEQ(FieldConsumerGroup, v))
}

// ConsumerGroupNEQ applies the NEQ predicate on the "consumer_group" field.
func ConsumerGroupNEQ(v string) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldNEQ(FieldConsumerGroup, v))
}

// ConsumerGroupIn applies the In predicate on the "consumer_group" field.
func ConsumerGroupIn(vs ...string) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldIn(FieldConsumerGroup, vs...))
}

// ConsumerGroupNotIn applies the NotIn predicate on the "consumer_group" field.
func ConsumerGroupNotIn(vs ...string) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldNotIn(FieldConsumerGroup, vs...))
}

// ConsumerGroupGT applies the GT predicate on the "consumer_group" field.
func ConsumerGroupGT(v string) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldGT(FieldConsumerGroup, v))
}

// ConsumerGroupGTE applies the GTE predicate on the "consumer_group" field.
func ConsumerGroupGTE(v string) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldGTE(FieldConsumerGroup, v))
}

// ConsumerGroupLT applies the LT predicate on the "consumer_group" field.
func ConsumerGroupLT(v string) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldLT(FieldConsumerGroup, v))
}

// ConsumerGroupLTE applies the LTE predicate on the "consumer_group" field.
func ConsumerGroupLTE(v string) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldLTE(FieldConsumerGroup, v))
}

// ConsumerGroupContains applies the Contains predicate on the "consumer_group" field.
func ConsumerGroupContains(v string) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldContains(FieldConsumerGroup, v))
}

// ConsumerGroupHasPrefix applies the HasPrefix predicate on the "consumer_group" field.
func ConsumerGroupHasPrefix(v string) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldHasPrefix(FieldConsumerGroup, v))
}

// ConsumerGroupHasSuffix applies the HasSuffix predicate on the "consumer_group" field.
func ConsumerGroupHasSuffix(v string) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldHasSuffix(FieldConsumerGroup, v))
}

// ConsumerGroupEqualFold applies the EqualFold predicate on the "consumer_group" field.
func ConsumerGroupEqualFold(v string) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldEqualFold(FieldConsumerGroup, v))
}

// ConsumerGroupContainsFold applies the ContainsFold predicate on the "consumer_group" field.
func ConsumerGroupContainsFold(v string) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldContainsFold(FieldConsumerGroup, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldContainsFold(FieldTopic, v))
}

// PartitionEQ applies the EQ predicate on the "partition" field.
func PartitionEQ(v int) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldEQ(FieldPartition, v))
}

// PartitionNEQ applies the NEQ predicate on the "partition" field.
func PartitionNEQ(v int) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldNEQ(FieldPartition, v))
}

// PartitionIn applies the In predicate on the "partition" field.
func PartitionIn(vs ...int) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldIn(FieldPartition, vs...))
}

// PartitionNotIn applies the NotIn predicate on the "partition" field.
func PartitionNotIn(vs ...int) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldNotIn(FieldPartition, vs...))
}

// PartitionGT applies the GT predicate on the "partition" field.
func PartitionGT(v int) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldGT(FieldPartition, v))
}

// PartitionGTE applies the GTE predicate on the "partition" field.
func PartitionGTE(v int) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldGTE(FieldPartition, v))
}

// PartitionLT applies the LT predicate on the "partition" field.
func PartitionLT(v int) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldLT(FieldPartition, v))
}

// PartitionLTE applies the LTE predicate on the "partition" field.
func PartitionLTE(v int) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldLTE(FieldPartition, v))
}

// CommittedEQ applies the EQ predicate on the "committed" field.
func CommittedEQ(v int) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldEQ(FieldCommitted, v))
}

// CommittedNEQ applies the NEQ predicate on the "committed" field.
func CommittedNEQ(v int) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldNEQ(FieldCommitted, v))
}

// CommittedIn applies the In predicate on the "committed" field.
func CommittedIn(vs ...int) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldIn(FieldCommitted, vs...))
}

// CommittedNotIn applies the NotIn predicate on the "committed" field.
func CommittedNotIn(vs ...int) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldNotIn(FieldCommitted, vs...))
}

// CommittedGT applies the GT predicate on the "committed" field.
func CommittedGT(v int) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldGT(FieldCommitted, v))
}

// CommittedGTE applies the GTE predicate on the "committed" field.
func CommittedGTE(v int) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldGTE(FieldCommitted, v))
}

// CommittedLT applies the LT predicate on the "committed" field.
func CommittedLT(v int) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldLT(FieldCommitted, v))
}

// CommittedLTE applies the LTE predicate on the "committed" field.
func CommittedLTE(v int) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldLTE(FieldCommitted, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.BusOffset {
	return predicate.BusOffset(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BusOffset) predicate.BusOffset {
	return predicate.BusOffset(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BusOffset) predicate.BusOffset {
	return predicate.BusOffset(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BusOffset) predicate.BusOffset {
	return predicate.BusOffset(sql.NotPredicates(p))
}
