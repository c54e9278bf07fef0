// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BusMessagesColumns holds the columns for the "bus_messages" table.
	BusMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "topic", Type: field.TypeString},
		{Name: "partition", Type: field.TypeInt},
		{Name: "key", Type: field.TypeString, Nullable: true},
		{Name: "envelope", Type: field.TypeBytes},
		{Name: "created_at", Type: field.TypeTime},
	}
	// BusMessagesTable holds the schema information for the "bus_messages" table.
	BusMessagesTable = &schema.Table{
		Name:       "bus_messages",
		Columns:    BusMessagesColumns,
		PrimaryKey: []*schema.Column{BusMessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "busmessage_topic_partition_id",
				Unique:  false,
				Columns: []*schema.Column{BusMessagesColumns[1], BusMessagesColumns[2], BusMessagesColumns[0]},
			},
			{
				Name:    "busmessage_created_at",
				Unique:  false,
				Columns: []*schema.Column{BusMessagesColumns[5]},
			},
		},
	}
	// BusOffsetsColumns holds the columns for the "bus_offsets" table.
	BusOffsetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "consumer_group", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "partition", Type: field.TypeInt},
		{Name: "committed", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// BusOffsetsTable holds the schema information for the "bus_offsets" table.
	BusOffsetsTable = &schema.Table{
		Name:       "bus_offsets",
		Columns:    BusOffsetsColumns,
		PrimaryKey: []*schema.Column{BusOffsetsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "busoffset_consumer_group_topic_partition",
				Unique:  true,
				Columns: []*schema.Column{BusOffsetsColumns[1], BusOffsetsColumns[2], BusOffsetsColumns[3]},
			},
		},
	}
	// FsmStatesColumns holds the columns for the "fsm_states" table.
	FsmStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "fsm_kind", Type: field.TypeEnum, Enums: []string{"ingestion", "pattern_learning", "quality_assessment"}},
		{Name: "entity_id", Type: field.TypeString},
		{Name: "current_state", Type: field.TypeString},
		{Name: "entered_at", Type: field.TypeTime},
		{Name: "last_event_id", Type: field.TypeString, Nullable: true},
	}
	// FsmStatesTable holds the schema information for the "fsm_states" table.
	FsmStatesTable = &schema.Table{
		Name:       "fsm_states",
		Columns:    FsmStatesColumns,
		PrimaryKey: []*schema.Column{FsmStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "fsmstate_fsm_kind_entity_id",
				Unique:  true,
				Columns: []*schema.Column{FsmStatesColumns[1], FsmStatesColumns[2]},
			},
		},
	}
	// FsmTransitionsColumns holds the columns for the "fsm_transitions" table.
	FsmTransitionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "fsm_kind", Type: field.TypeEnum, Enums: []string{"ingestion", "pattern_learning", "quality_assessment"}},
		{Name: "entity_id", Type: field.TypeString},
		{Name: "from_state", Type: field.TypeString},
		{Name: "to_state", Type: field.TypeString},
		{Name: "trigger", Type: field.TypeString},
		{Name: "event_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// FsmTransitionsTable holds the schema information for the "fsm_transitions" table.
	FsmTransitionsTable = &schema.Table{
		Name:       "fsm_transitions",
		Columns:    FsmTransitionsColumns,
		PrimaryKey: []*schema.Column{FsmTransitionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "fsmtransition_fsm_kind_entity_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{FsmTransitionsColumns[1], FsmTransitionsColumns[2], FsmTransitionsColumns[7]},
			},
		},
	}
	// FeedbackAggregatesColumns holds the columns for the "feedback_aggregates" table.
	FeedbackAggregatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "window_successes", Type: field.TypeInt, Default: 0},
		{Name: "window_failures", Type: field.TypeInt, Default: 0},
		{Name: "sample_count", Type: field.TypeInt, Default: 0},
		{Name: "effectiveness", Type: field.TypeFloat64, Default: 0.5},
		{Name: "contribution_score", Type: field.TypeFloat64, Default: 0},
		{Name: "consecutive_low_windows", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "pattern_id", Type: field.TypeString, Unique: true},
	}
	// FeedbackAggregatesTable holds the schema information for the "feedback_aggregates" table.
	FeedbackAggregatesTable = &schema.Table{
		Name:       "feedback_aggregates",
		Columns:    FeedbackAggregatesColumns,
		PrimaryKey: []*schema.Column{FeedbackAggregatesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "feedback_aggregates_patterns_feedback_aggregate",
				Columns:    []*schema.Column{FeedbackAggregatesColumns[8]},
				RefColumns: []*schema.Column{PatternsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// IdempotencyRecordsColumns holds the columns for the "idempotency_records" table.
	IdempotencyRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "event_id", Type: field.TypeString},
		{Name: "handler_name", Type: field.TypeString},
		{Name: "first_seen_at", Type: field.TypeTime},
		{Name: "result_hash", Type: field.TypeString, Nullable: true},
	}
	// IdempotencyRecordsTable holds the schema information for the "idempotency_records" table.
	IdempotencyRecordsTable = &schema.Table{
		Name:       "idempotency_records",
		Columns:    IdempotencyRecordsColumns,
		PrimaryKey: []*schema.Column{IdempotencyRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "idempotencyrecord_event_id_handler_name",
				Unique:  true,
				Columns: []*schema.Column{IdempotencyRecordsColumns[1], IdempotencyRecordsColumns[2]},
			},
			{
				Name:    "idempotencyrecord_first_seen_at",
				Unique:  false,
				Columns: []*schema.Column{IdempotencyRecordsColumns[3]},
			},
		},
	}
	// PatternsColumns holds the columns for the "patterns" table.
	PatternsColumns = []*schema.Column{
		{Name: "pattern_id", Type: field.TypeString, Unique: true},
		{Name: "signature_hash", Type: field.TypeString},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "lifecycle_status", Type: field.TypeEnum, Enums: []string{"candidate", "provisional", "validated", "deprecated"}, Default: "candidate"},
		{Name: "quality_score", Type: field.TypeFloat64, Default: 1},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0.5},
		{Name: "evidence_tier", Type: field.TypeEnum, Enums: []string{"insufficient", "weak", "moderate", "strong"}, Default: "insufficient"},
		{Name: "version_tag", Type: field.TypeString, Default: "v1"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_promoted_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_demoted_at", Type: field.TypeTime, Nullable: true},
		{Name: "deprecated_at", Type: field.TypeTime, Nullable: true},
	}
	// PatternsTable holds the schema information for the "patterns" table.
	PatternsTable = &schema.Table{
		Name:       "patterns",
		Columns:    PatternsColumns,
		PrimaryKey: []*schema.Column{PatternsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pattern_lifecycle_status",
				Unique:  false,
				Columns: []*schema.Column{PatternsColumns[4]},
			},
			{
				Name:    "pattern_lifecycle_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{PatternsColumns[4], PatternsColumns[9]},
			},
			{
				Name:    "pattern_signature_hash",
				Unique:  true,
				Columns: []*schema.Column{PatternsColumns[1]},
				Annotation: &entsql.IndexAnnotation{
					Where: "lifecycle_status <> 'deprecated'",
				},
			},
		},
	}
	// PatternAuditsColumns holds the columns for the "pattern_audits" table.
	PatternAuditsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "from_status", Type: field.TypeString},
		{Name: "to_status", Type: field.TypeString},
		{Name: "trigger", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString, Nullable: true},
		{Name: "evidence_snapshot", Type: field.TypeJSON, Nullable: true},
		{Name: "correlation_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "pattern_id", Type: field.TypeString},
	}
	// PatternAuditsTable holds the schema information for the "pattern_audits" table.
	PatternAuditsTable = &schema.Table{
		Name:       "pattern_audits",
		Columns:    PatternAuditsColumns,
		PrimaryKey: []*schema.Column{PatternAuditsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "pattern_audits_patterns_audit_entries",
				Columns:    []*schema.Column{PatternAuditsColumns[8]},
				RefColumns: []*schema.Column{PatternsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "patternaudit_pattern_id",
				Unique:  false,
				Columns: []*schema.Column{PatternAuditsColumns[8]},
			},
			{
				Name:    "patternaudit_pattern_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{PatternAuditsColumns[8], PatternAuditsColumns[7]},
			},
		},
	}
	// PatternDisablesColumns holds the columns for the "pattern_disables" table.
	PatternDisablesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "action", Type: field.TypeEnum, Enums: []string{"disable", "enable"}, Default: "disable"},
		{Name: "reason", Type: field.TypeEnum, Enums: []string{"safety", "compliance", "quality", "manual"}},
		{Name: "detail", Type: field.TypeString, Nullable: true},
		{Name: "disabled_by", Type: field.TypeString},
		{Name: "disabled_at", Type: field.TypeTime},
		{Name: "pattern_id", Type: field.TypeString},
	}
	// PatternDisablesTable holds the schema information for the "pattern_disables" table.
	PatternDisablesTable = &schema.Table{
		Name:       "pattern_disables",
		Columns:    PatternDisablesColumns,
		PrimaryKey: []*schema.Column{PatternDisablesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "pattern_disables_patterns_disable_events",
				Columns:    []*schema.Column{PatternDisablesColumns[6]},
				RefColumns: []*schema.Column{PatternsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "patterndisable_pattern_id_disabled_at",
				Unique:  false,
				Columns: []*schema.Column{PatternDisablesColumns[6], PatternDisablesColumns[5]},
			},
		},
	}
	// PatternInjectionsColumns holds the columns for the "pattern_injections" table.
	PatternInjectionsColumns = []*schema.Column{
		{Name: "injection_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "cohort", Type: field.TypeString, Default: "treatment"},
		{Name: "assigned_at", Type: field.TypeTime},
		{Name: "pattern_id", Type: field.TypeString},
	}
	// PatternInjectionsTable holds the schema information for the "pattern_injections" table.
	PatternInjectionsTable = &schema.Table{
		Name:       "pattern_injections",
		Columns:    PatternInjectionsColumns,
		PrimaryKey: []*schema.Column{PatternInjectionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "pattern_injections_patterns_injections",
				Columns:    []*schema.Column{PatternInjectionsColumns[4]},
				RefColumns: []*schema.Column{PatternsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "patterninjection_session_id",
				Unique:  false,
				Columns: []*schema.Column{PatternInjectionsColumns[1]},
			},
			{
				Name:    "patterninjection_pattern_id_session_id",
				Unique:  false,
				Columns: []*schema.Column{PatternInjectionsColumns[4], PatternInjectionsColumns[1]},
			},
		},
	}
	// SessionOutcomesColumns holds the columns for the "session_outcomes" table.
	SessionOutcomesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "event_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "outcome", Type: field.TypeEnum, Enums: []string{"success", "failure", "partial"}},
		{Name: "was_advised", Type: field.TypeBool, Default: false},
		{Name: "was_used", Type: field.TypeBool, Default: false},
		{Name: "was_corrected", Type: field.TypeBool, Default: false},
		{Name: "quality_delta", Type: field.TypeFloat64, Default: 0},
		{Name: "occurred_at", Type: field.TypeTime},
		{Name: "pattern_id", Type: field.TypeString},
	}
	// SessionOutcomesTable holds the schema information for the "session_outcomes" table.
	SessionOutcomesTable = &schema.Table{
		Name:       "session_outcomes",
		Columns:    SessionOutcomesColumns,
		PrimaryKey: []*schema.Column{SessionOutcomesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "session_outcomes_patterns_outcomes",
				Columns:    []*schema.Column{SessionOutcomesColumns[9]},
				RefColumns: []*schema.Column{PatternsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "sessionoutcome_event_id_pattern_id",
				Unique:  true,
				Columns: []*schema.Column{SessionOutcomesColumns[1], SessionOutcomesColumns[9]},
			},
			{
				Name:    "sessionoutcome_pattern_id_occurred_at",
				Unique:  false,
				Columns: []*schema.Column{SessionOutcomesColumns[9], SessionOutcomesColumns[8]},
			},
			{
				Name:    "sessionoutcome_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionOutcomesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BusMessagesTable,
		BusOffsetsTable,
		FsmStatesTable,
		FsmTransitionsTable,
		FeedbackAggregatesTable,
		IdempotencyRecordsTable,
		PatternsTable,
		PatternAuditsTable,
		PatternDisablesTable,
		PatternInjectionsTable,
		SessionOutcomesTable,
	}
)

func init() {
	FeedbackAggregatesTable.ForeignKeys[0].RefTable = PatternsTable
	PatternAuditsTable.ForeignKeys[0].RefTable = PatternsTable
	PatternDisablesTable.ForeignKeys[0].RefTable = PatternsTable
	PatternInjectionsTable.ForeignKeys[0].RefTable = PatternsTable
	SessionOutcomesTable.ForeignKeys[0].RefTable = PatternsTable
}
