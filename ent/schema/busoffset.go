package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BusOffset tracks the last committed message ID per
// (consumer_group, topic, partition).
type BusOffset struct {
	ent.Schema
}

// Fields of the BusOffset.
func (BusOffset) Fields() []ent.Field {
	return []ent.Field{
		field.String("consumer_group").
			Immutable(),
		field.String("topic").
			Immutable(),
		field.Int("partition").
			Immutable(),
		field.Int("committed").
			Default(0).
			Comment("ID of the last successfully processed BusMessage"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the BusOffset.
func (BusOffset) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("consumer_group", "topic", "partition").
			Unique(),
	}
}
