package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionOutcome records one session's outcome attributed to one pattern.
// A session-outcome event referencing N patterns produces N rows; the
// feedback aggregator's rolling window is a query over the most recent
// rows per pattern.
type SessionOutcome struct {
	ent.Schema
}

// Fields of the SessionOutcome.
func (SessionOutcome) Fields() []ent.Field {
	return []ent.Field{
		field.String("event_id").
			Immutable().
			Comment("source event; with pattern_id it makes redelivered outcomes idempotent"),
		field.String("session_id").
			Immutable(),
		field.String("pattern_id").
			Immutable(),
		field.Enum("outcome").
			Values("success", "failure", "partial").
			Immutable(),
		field.Bool("was_advised").
			Default(false).
			Immutable(),
		field.Bool("was_used").
			Default(false).
			Immutable(),
		field.Bool("was_corrected").
			Default(false).
			Immutable(),
		field.Float("quality_delta").
			Default(0).
			Immutable(),
		field.Time("occurred_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the SessionOutcome.
func (SessionOutcome) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("pattern", Pattern.Type).
			Ref("outcomes").
			Field("pattern_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the SessionOutcome.
func (SessionOutcome) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("event_id", "pattern_id").
			Unique(),
		index.Fields("pattern_id", "occurred_at"),
		index.Fields("session_id"),
	}
}
