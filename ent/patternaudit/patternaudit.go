// Code generated by ent, DO NOT EDIT.

package patternaudit

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the patternaudit type in the database.
	Label = "pattern_audit"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPatternID holds the string denoting the pattern_id field in the database.
	FieldPatternID = "pattern_id"
	// FieldFromStatus holds the string denoting the from_status field in the database.
	FieldFromStatus = "from_status"
	// FieldToStatus holds the string denoting the to_status field in the database.
	FieldToStatus = "to_status"
	// FieldTrigger holds the string denoting the trigger field in the database.
	FieldTrigger = "trigger"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldEvidenceSnapshot holds the string denoting the evidence_snapshot field in the database.
	FieldEvidenceSnapshot = "evidence_snapshot"
	// FieldCorrelationID holds the string denoting the correlation_id field in the database.
	FieldCorrelationID = "correlation_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgePattern holds the string denoting the pattern edge name in mutations.
	EdgePattern = "pattern"
	// PatternFieldID holds the string denoting the ID field of the Pattern.
	PatternFieldID = "pattern_id"
	// Table holds the table name of the patternaudit in the database.
	Table = "pattern_audits"
	// PatternTable is the table that holds the pattern relation/edge.
	PatternTable = "pattern_audits"
	// PatternInverseTable is the table name for the Pattern entity.
	// It exists in this package in order to avoid circular dependency with the "pattern" package.
	PatternInverseTable = "patterns"
	// PatternColumn is the table column denoting the pattern relation/edge.
	PatternColumn = "pattern_id"
)

// Columns holds all SQL columns for patternaudit fields.
var Columns = []string{
	FieldID,
	FieldPatternID,
	FieldFromStatus,
	FieldToStatus,
	FieldTrigger,
	FieldReason,
	FieldEvidenceSnapshot,
	FieldCorrelationID,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the PatternAudit queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPatternID orders the results by the pattern_id field.
func ByPatternID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatternID, opts...).ToFunc()
}

// ByFromStatus orders the results by the from_status field.
func ByFromStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromStatus, opts...).ToFunc()
}

// ByToStatus orders the results by the to_status field.
func ByToStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToStatus, opts...).ToFunc()
}

// ByTrigger orders the results by the trigger field.
func ByTrigger(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrigger, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByCorrelationID orders the results by the correlation_id field.
func ByCorrelationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrelationID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
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
