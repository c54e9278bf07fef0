package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FSMState holds the current state of one named state machine instance,
// keyed by (fsm_kind, entity_id). State is owned exclusively by the FSM
// reducer; history lives in FSMTransition.
type FSMState struct {
	ent.Schema
}

// Fields of the FSMState.
func (FSMState) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("fsm_kind").
			Values("ingestion", "pattern_learning", "quality_assessment").
			Immutable(),
		field.String("entity_id").
			Immutable(),
		field.String("current_state"),
		field.Time("entered_at").
			Default(time.Now),
		field.String("last_event_id").
			Optional(),
	}
}

// Indexes of the FSMState.
func (FSMState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("fsm_kind", "entity_id").
			Unique(),
	}
}
