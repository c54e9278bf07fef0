// Code generated by ent, DO NOT EDIT.

package pattern

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the pattern type in the database.
	Label = "pattern"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "pattern_id"
	// FieldSignatureHash holds the string denoting the signature_hash field in the database.
	FieldSignatureHash = "signature_hash"
	// FieldBody holds the string denoting the body field in the database.
	FieldBody = "body"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldLifecycleStatus holds the string denoting the lifecycle_status field in the database.
	FieldLifecycleStatus = "lifecycle_status"
	// FieldQualityScore holds the string denoting the quality_score field in the database.
	FieldQualityScore = "quality_score"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldEvidenceTier holds the string denoting the evidence_tier field in the database.
	FieldEvidenceTier = "evidence_tier"
	// FieldVersionTag holds the string denoting the version_tag field in the database.
	FieldVersionTag = "version_tag"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldLastPromotedAt holds the string denoting the last_promoted_at field in the database.
	FieldLastPromotedAt = "last_promoted_at"
	// FieldLastDemotedAt holds the string denoting the last_demoted_at field in the database.
	FieldLastDemotedAt = "last_demoted_at"
	// FieldDeprecatedAt holds the string denoting the deprecated_at field in the database.
	FieldDeprecatedAt = "deprecated_at"
	// EdgeAuditEntries holds the string denoting the audit_entries edge name in mutations.
	EdgeAuditEntries = "audit_entries"
	// EdgeInjections holds the string denoting the injections edge name in mutations.
	EdgeInjections = "injections"
	// EdgeDisableEvents holds the string denoting the disable_events edge name in mutations.
	EdgeDisableEvents = "disable_events"
	// EdgeOutcomes holds the string denoting the outcomes edge name in mutations.
	EdgeOutcomes = "outcomes"
	// EdgeFeedbackAggregate holds the string denoting the feedback_aggregate edge name in mutations.
	EdgeFeedbackAggregate = "feedback_aggregate"
	// PatternAuditFieldID holds the string denoting the ID field of the PatternAudit.
	PatternAuditFieldID = "id"
	// PatternInjectionFieldID holds the string denoting the ID field of the PatternInjection.
	PatternInjectionFieldID = "injection_id"
	// PatternDisableFieldID holds the string denoting the ID field of the PatternDisable.
	PatternDisableFieldID = "id"
	// SessionOutcomeFieldID holds the string denoting the ID field of the SessionOutcome.
	SessionOutcomeFieldID = "id"
	// FeedbackAggregateFieldID holds the string denoting the ID field of the FeedbackAggregate.
	FeedbackAggregateFieldID = "id"
	// Table holds the table name of the pattern in the database.
	Table = "patterns"
	// AuditEntriesTable is the table that holds the audit_entries relation/edge.
	AuditEntriesTable = "pattern_audits"
	// AuditEntriesInverseTable is the table name for the PatternAudit entity.
	// It exists in this package in order to avoid circular dependency with the "patternaudit" package.
	AuditEntriesInverseTable = "pattern_audits"
	// AuditEntriesColumn is the table column denoting the audit_entries relation/edge.
	AuditEntriesColumn = "pattern_id"
	// InjectionsTable is the table that holds the injections relation/edge.
	InjectionsTable = "pattern_injections"
	// InjectionsInverseTable is the table name for the PatternInjection entity.
	// It exists in this package in order to avoid circular dependency with the "patterninjection" package.
	InjectionsInverseTable = "pattern_injections"
	// InjectionsColumn is the table column denoting the injections relation/edge.
	InjectionsColumn = "pattern_id"
	// DisableEventsTable is the table that holds the disable_events relation/edge.
	DisableEventsTable = "pattern_disables"
	// DisableEventsInverseTable is the table name for the PatternDisable entity.
	// It exists in this package in order to avoid circular dependency with the "patterndisable" package.
	DisableEventsInverseTable = "pattern_disables"
	// DisableEventsColumn is the table column denoting the disable_events relation/edge.
	DisableEventsColumn = "pattern_id"
	// OutcomesTable is the table that holds the outcomes relation/edge.
	OutcomesTable = "session_outcomes"
	// OutcomesInverseTable is the table name for the SessionOutcome entity.
	// It exists in this package in order to avoid circular dependency with the "sessionoutcome" package.
	OutcomesInverseTable = "session_outcomes"
	// OutcomesColumn is the table column denoting the outcomes relation/edge.
	OutcomesColumn = "pattern_id"
	// FeedbackAggregateTable is the table that holds the feedback_aggregate relation/edge.
	FeedbackAggregateTable = "feedback_aggregates"
	// FeedbackAggregateInverseTable is the table name for the FeedbackAggregate entity.
	// It exists in this package in order to avoid circular dependency with the "feedbackaggregate" package.
	FeedbackAggregateInverseTable = "feedback_aggregates"
	// FeedbackAggregateColumn is the table column denoting the feedback_aggregate relation/edge.
	FeedbackAggregateColumn = "pattern_id"
)

// Columns holds all SQL columns for pattern fields.
var Columns = []string{
	FieldID,
	FieldSignatureHash,
	FieldBody,
	FieldMetadata,
	FieldLifecycleStatus,
	FieldQualityScore,
	FieldConfidence,
	FieldEvidenceTier,
	FieldVersionTag,
	FieldCreatedAt,
	FieldLastPromotedAt,
	FieldLastDemotedAt,
	FieldDeprecatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultQualityScore holds the default value on creation for the "quality_score" field.
	DefaultQualityScore float64
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// DefaultVersionTag holds the default value on creation for the "version_tag" field.
	DefaultVersionTag string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// LifecycleStatus defines the type for the "lifecycle_status" enum field.
type LifecycleStatus string

// LifecycleStatusCandidate is the default value of the LifecycleStatus enum.
const DefaultLifecycleStatus = LifecycleStatusCandidate

// LifecycleStatus values.
const (
	LifecycleStatusCandidate   LifecycleStatus = "candidate"
	LifecycleStatusProvisional LifecycleStatus = "provisional"
	LifecycleStatusValidated   LifecycleStatus = "validated"
	LifecycleStatusDeprecated  LifecycleStatus = "deprecated"
)

func (ls LifecycleStatus) String() string {
	return string(ls)
}

// LifecycleStatusValidator is a validator for the "lifecycle_status" field enum values. It is called by the builders before save.
func LifecycleStatusValidator(ls LifecycleStatus) error {
	switch ls {
	case LifecycleStatusCandidate, LifecycleStatusProvisional, LifecycleStatusValidated, LifecycleStatusDeprecated:
		return nil
	default:
		return fmt.Errorf("pattern: invalid enum value for lifecycle_status field: %q", ls)
	}
}

// EvidenceTier defines the type for the "evidence_tier" enum field.
type EvidenceTier string

// EvidenceTierInsufficient is the default value of the EvidenceTier enum.
const DefaultEvidenceTier = EvidenceTierInsufficient

// EvidenceTier values.
const (
	EvidenceTierInsufficient EvidenceTier = "insufficient"
	EvidenceTierWeak         EvidenceTier = "weak"
	EvidenceTierModerate     EvidenceTier = "moderate"
	EvidenceTierStrong       EvidenceTier = "strong"
)

func (et EvidenceTier) String() string {
	return string(et)
}

// EvidenceTierValidator is a validator for the "evidence_tier" field enum values. It is called by the builders before save.
func EvidenceTierValidator(et EvidenceTier) error {
	switch et {
	case EvidenceTierInsufficient, EvidenceTierWeak, EvidenceTierModerate, EvidenceTierStrong:
		return nil
	default:
		return fmt.Errorf("pattern: invalid enum value for evidence_tier field: %q", et)
	}
}

// OrderOption defines the ordering options for the Pattern queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySignatureHash orders the results by the signature_hash field.
func BySignatureHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSignatureHash, opts...).ToFunc()
}

// ByBody orders the results by the body field.
func ByBody(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBody, opts...).ToFunc()
}

// ByLifecycleStatus orders the results by the lifecycle_status field.
func ByLifecycleStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLifecycleStatus, opts...).ToFunc()
}

// ByQualityScore orders the results by the quality_score field.
func ByQualityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQualityScore, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByEvidenceTier orders the results by the evidence_tier field.
func ByEvidenceTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvidenceTier, opts...).ToFunc()
}

// ByVersionTag orders the results by the version_tag field.
func ByVersionTag(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersionTag, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByLastPromotedAt orders the results by the last_promoted_at field.
func ByLastPromotedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastPromotedAt, opts...).ToFunc()
}

// ByLastDemotedAt orders the results by the last_demoted_at field.
func ByLastDemotedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastDemotedAt, opts...).ToFunc()
}

// ByDeprecatedAt orders the results by the deprecated_at field.
func ByDeprecatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeprecatedAt, opts...).ToFunc()
}

// ByAuditEntriesCount orders the results by audit_entries count.
func ByAuditEntriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAuditEntriesStep(), opts...)
	}
}

// ByAuditEntries orders the results by audit_entries terms.
func ByAuditEntries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAuditEntriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByInjectionsCount orders the results by injections count.
func ByInjectionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newInjectionsStep(), opts...)
	}
}

// ByInjections orders the results by injections terms.
func ByInjections(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInjectionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDisableEventsCount orders the results by disable_events count.
func ByDisableEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDisableEventsStep(), opts...)
	}
}

// ByDisableEvents orders the results by disable_events terms.
func ByDisableEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDisableEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByOutcomesCount orders the results by outcomes count.
func ByOutcomesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newOutcomesStep(), opts...)
	}
}

// ByOutcomes orders the results by outcomes terms.
func ByOutcomes(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOutcomesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByFeedbackAggregateField orders the results by feedback_aggregate field.
func ByFeedbackAggregateField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFeedbackAggregateStep(), sql.OrderByField(field, opts...))
	}
}
func newAuditEntriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AuditEntriesInverseTable, PatternAuditFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AuditEntriesTable, AuditEntriesColumn),
	)
}
func newInjectionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InjectionsInverseTable, PatternInjectionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, InjectionsTable, InjectionsColumn),
	)
}
func newDisableEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DisableEventsInverseTable, PatternDisableFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DisableEventsTable, DisableEventsColumn),
	)
}
func newOutcomesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OutcomesInverseTable, SessionOutcomeFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, OutcomesTable, OutcomesColumn),
	)
}
func newFeedbackAggregateStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FeedbackAggregateInverseTable, FeedbackAggregateFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, FeedbackAggregateTable, FeedbackAggregateColumn),
	)
}
