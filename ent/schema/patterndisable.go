package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PatternDisable is an append-only kill-switch record. The "currently
// disabled" view is a projection of the latest disable/enable action
// per pattern (see store.ListCurrentlyDisabled).
type PatternDisable struct {
	ent.Schema
}

// Fields of the PatternDisable.
func (PatternDisable) Fields() []ent.Field {
	return []ent.Field{
		field.String("pattern_id").
			Immutable(),
		field.Enum("action").
			Values("disable", "enable").
			Default("disable").
			Immutable(),
		field.Enum("reason").
			Values("safety", "compliance", "quality", "manual").
			Immutable().
			Comment("safety/compliance reasons additionally force demotion"),
		field.String("detail").
			Optional().
			Immutable(),
		field.String("disabled_by").
			Immutable(),
		field.Time("created_at").
			StorageKey("disabled_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the PatternDisable.
func (PatternDisable) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("pattern", Pattern.Type).
			Ref("disable_events").
			Field("pattern_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the PatternDisable.
func (PatternDisable) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("pattern_id", "created_at"),
	}
}
