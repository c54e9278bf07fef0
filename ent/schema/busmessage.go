package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BusMessage is one message in the Postgres-backed bus. The autoincrement
// row ID doubles as the message offset: it is globally monotonic, so it is
// also monotonic within any (topic, partition) slice, which is all the
// consumer's committed-offset tracking needs.
type BusMessage struct {
	ent.Schema
}

// Fields of the BusMessage.
func (BusMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("topic").
			Immutable(),
		field.Int("partition").
			Immutable(),
		field.String("key").
			Optional().
			Immutable().
			Comment("Partition key (session_id or pattern_id)"),
		field.Bytes("envelope").
			Immutable().
			Comment("Marshaled envelope JSON"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the BusMessage.
func (BusMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic", "partition", "id"),
		index.Fields("created_at"),
	}
}
