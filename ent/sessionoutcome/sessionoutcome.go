// Code generated by ent, DO NOT EDIT.

package sessionoutcome

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the sessionoutcome type in the database.
	Label = "session_outcome"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEventID holds the string denoting the event_id field in the database.
	FieldEventID = "event_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldPatternID holds the string denoting the pattern_id field in the database.
	FieldPatternID = "pattern_id"
	// FieldOutcome holds the string denoting the outcome field in the database.
	FieldOutcome = "outcome"
	// FieldWasAdvised holds the string denoting the was_advised field in the database.
	FieldWasAdvised = "was_advised"
	// FieldWasUsed holds the string denoting the was_used field in the database.
	FieldWasUsed = "was_used"
	// FieldWasCorrected holds the string denoting the was_corrected field in the database.
	FieldWasCorrected = "was_corrected"
	// FieldQualityDelta holds the string denoting the quality_delta field in the database.
	FieldQualityDelta = "quality_delta"
	// FieldOccurredAt holds the string denoting the occurred_at field in the database.
	FieldOccurredAt = "occurred_at"
	// EdgePattern holds the string denoting the pattern edge name in mutations.
	EdgePattern = "pattern"
	// PatternFieldID holds the string denoting the ID field of the Pattern.
	PatternFieldID = "pattern_id"
	// Table holds the table name of the sessionoutcome in the database.
	Table = "session_outcomes"
	// PatternTable is the table that holds the pattern relation/edge.
	PatternTable = "session_outcomes"
	// PatternInverseTable is the table name for the Pattern entity.
	// It exists in this package in order to avoid circular dependency with the "pattern" package.
	PatternInverseTable = "patterns"
	// PatternColumn is the table column denoting the pattern relation/edge.
	PatternColumn = "pattern_id"
)

// Columns holds all SQL columns for sessionoutcome fields.
var Columns = []string{
	FieldID,
	FieldEventID,
	FieldSessionID,
	FieldPatternID,
	FieldOutcome,
	FieldWasAdvised,
	FieldWasUsed,
	FieldWasCorrected,
	FieldQualityDelta,
	FieldOccurredAt,
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
	// DefaultWasAdvised holds the default value on creation for the "was_advised" field.
	DefaultWasAdvised bool
	// DefaultWasUsed holds the default value on creation for the "was_used" field.
	DefaultWasUsed bool
	// DefaultWasCorrected holds the default value on creation for the "was_corrected" field.
	DefaultWasCorrected bool
	// DefaultQualityDelta holds the default value on creation for the "quality_delta" field.
	DefaultQualityDelta float64
	// DefaultOccurredAt holds the default value on creation for the "occurred_at" field.
	DefaultOccurredAt func() time.Time
)

// Outcome defines the type for the "outcome" enum field.
type Outcome string

// Outcome values.
const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
	OutcomePartial Outcome = "partial"
)

func (o Outcome) String() string {
	return string(o)
}

// OutcomeValidator is a validator for the "outcome" field enum values. It is called by the builders before save.
func OutcomeValidator(o Outcome) error {
	switch o {
	case OutcomeSuccess, OutcomeFailure, OutcomePartial:
		return nil
	default:
		return fmt.Errorf("sessionoutcome: invalid enum value for outcome field: %q", o)
	}
}

// OrderOption defines the ordering options for the SessionOutcome queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEventID orders the results by the event_id field.
func ByEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByPatternID orders the results by the pattern_id field.
func ByPatternID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatternID, opts...).ToFunc()
}

// ByOutcome orders the results by the outcome field.
func ByOutcome(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutcome, opts...).ToFunc()
}

// ByWasAdvised orders the results by the was_advised field.
func ByWasAdvised(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWasAdvised, opts...).ToFunc()
}

// ByWasUsed orders the results by the was_used field.
func ByWasUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWasUsed, opts...).ToFunc()
}

// ByWasCorrected orders the results by the was_corrected field.
func ByWasCorrected(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWasCorrected, opts...).ToFunc()
}

// ByQualityDelta orders the results by the quality_delta field.
func ByQualityDelta(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQualityDelta, opts...).ToFunc()
}

// ByOccurredAt orders the results by the occurred_at field.
func ByOccurredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOccurredAt, opts...).ToFunc()
}

// ByPatternField orders the results by pattern field.
func ByPatternField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPatternStep(), sql.OrderByField(field, opts...))
	}
}
func newPatternStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PatternInverseTable, PatternFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PatternTable, PatternColumn),
	)
}
