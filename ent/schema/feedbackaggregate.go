package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// FeedbackAggregate holds the materialized rolling-window feedback state
// for one pattern. Recomputed incrementally by the feedback aggregator on
// each session outcome; the in-memory ring buffer is a cache over this row
// plus the recent SessionOutcome rows.
type FeedbackAggregate struct {
	ent.Schema
}

// Fields of the FeedbackAggregate.
func (FeedbackAggregate) Fields() []ent.Field {
	return []ent.Field{
		field.String("pattern_id").
			Unique().
			Immutable(),
		field.Int("window_successes").
			Default(0),
		field.Int("window_failures").
			Default(0),
		field.Int("sample_count").
			Default(0).
			Comment("Total outcomes currently in the window (successes + failures + partials)"),
		field.Float("effectiveness").
			Default(0.5).
			Comment("Laplace-smoothed success ratio over the window, bounded to [0.0, 1.0]"),
		field.Float("contribution_score").
			Default(0),
		field.Int("consecutive_low_windows").
			Default(0).
			Comment("Consecutive evaluations with effectiveness below the demotion threshold"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the FeedbackAggregate.
func (FeedbackAggregate) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("pattern", Pattern.Type).
			Ref("feedback_aggregate").
			Field("pattern_id").
			Unique().
			Required().
			Immutable(),
	}
}
