package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FSMTransition is the append-only transition history for all state
// machines.
type FSMTransition struct {
	ent.Schema
}

// Fields of the FSMTransition.
func (FSMTransition) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("fsm_kind").
			Values("ingestion", "pattern_learning", "quality_assessment").
			Immutable(),
		field.String("entity_id").
			Immutable(),
		field.String("from_state").
			Immutable(),
		field.String("to_state").
			Immutable(),
		field.String("trigger").
			Immutable(),
		field.String("event_id").
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the FSMTransition.
func (FSMTransition) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("fsm_kind", "entity_id", "created_at"),
	}
}
