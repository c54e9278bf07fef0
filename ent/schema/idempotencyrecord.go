package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// IdempotencyRecord marks an event as processed by a handler. Keyed on
// (event_id, handler_name) so the same event can be consumed by multiple
// handlers independently. Rows live in the same database as the pattern
// tables so the ledger write shares the handler's transaction.
type IdempotencyRecord struct {
	ent.Schema
}

// Fields of the IdempotencyRecord.
func (IdempotencyRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("event_id").
			Immutable(),
		field.String("handler_name").
			Immutable(),
		field.Time("first_seen_at").
			Default(time.Now).
			Immutable(),
		field.String("result_hash").
			Optional().
			Comment("Hash of the handler's observable outcome, returned on duplicate delivery"),
	}
}

// Indexes of the IdempotencyRecord.
func (IdempotencyRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("event_id", "handler_name").
			Unique(),

		// For the retention sweep.
		index.Fields("first_seen_at"),
	}
}
