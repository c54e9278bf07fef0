package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Pattern holds the schema definition for a learned pattern artifact.
type Pattern struct {
	ent.Schema
}

// Fields of the Pattern.
func (Pattern) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("pattern_id").
			Unique().
			Immutable(),
		field.String("signature_hash").
			Comment("Content-addressed hash of the normalized pattern body + version tag"),
		field.Text("body").
			Comment("Normalized pattern body"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Enum("lifecycle_status").
			Values("candidate", "provisional", "validated", "deprecated").
			Default("candidate"),
		field.Float("quality_score").
			Default(1.0).
			Comment("Bounded to [0.0, 1.0]; decays on confirmed violations"),
		field.Float("confidence").
			Default(0.5).
			Comment("Continuous confidence metric, bounded to [0.0, 1.0]"),
		field.Enum("evidence_tier").
			Values("insufficient", "weak", "moderate", "strong").
			Default("insufficient"),
		field.String("version_tag").
			Default("v1"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_promoted_at").
			Optional().
			Nillable(),
		field.Time("last_demoted_at").
			Optional().
			Nillable(),
		field.Time("deprecated_at").
			Optional().
			Nillable().
			Comment("Set when the pattern reaches its terminal state"),
	}
}

// Edges of the Pattern.
func (Pattern) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("audit_entries", PatternAudit.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("injections", PatternInjection.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("disable_events", PatternDisable.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("outcomes", SessionOutcome.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("feedback_aggregate", FeedbackAggregate.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Pattern.
func (Pattern) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lifecycle_status"),
		index.Fields("lifecycle_status", "created_at"),

		// At most one non-deprecated pattern per signature.
		index.Fields("signature_hash").
			Unique().
			Annotations(entsql.IndexWhere("lifecycle_status <> 'deprecated'")),
	}
}
