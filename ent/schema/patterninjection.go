package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PatternInjection is an A/B experiment record linking a pattern to a
// session. Created when the orchestrator injects a pattern into a
// session's advice set; never mutated. Used to attribute session
// outcomes back to the patterns that were active.
type PatternInjection struct {
	ent.Schema
}

// Fields of the PatternInjection.
func (PatternInjection) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("injection_id").
			Unique().
			Immutable(),
		field.String("pattern_id").
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("cohort").
			Default("treatment").
			Immutable().
			Comment("A/B cohort label"),
		field.Time("assigned_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the PatternInjection.
func (PatternInjection) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("pattern", Pattern.Type).
			Ref("injections").
			Field("pattern_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the PatternInjection.
func (PatternInjection) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("pattern_id", "session_id"),
	}
}
