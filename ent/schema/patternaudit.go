package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PatternAudit is the append-only audit trail for lifecycle transitions.
// Rows are written in the same transaction as the pattern row update and
// are never modified afterwards. The audit trail is the source of truth
// for lifecycle history.
type PatternAudit struct {
	ent.Schema
}

// Fields of the PatternAudit.
func (PatternAudit) Fields() []ent.Field {
	return []ent.Field{
		field.String("pattern_id").
			Immutable(),
		field.String("from_status"),
		field.String("to_status"),
		field.String("trigger").
			Comment("What caused the transition (e.g. 'promotion_eligible', 'admin_command')"),
		field.String("reason").
			Optional(),
		field.JSON("evidence_snapshot", map[string]interface{}{}).
			Optional().
			Comment("Feedback window snapshot at transition time"),
		field.String("correlation_id").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the PatternAudit.
func (PatternAudit) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("pattern", Pattern.Type).
			Ref("audit_entries").
			Field("pattern_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the PatternAudit.
func (PatternAudit) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("pattern_id"),
		index.Fields("pattern_id", "created_at"),
	}
}
