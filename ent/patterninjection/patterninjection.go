// Code generated by ent, DO NOT EDIT.

package patterninjection

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the patterninjection type in the database.
	Label = "pattern_injection"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "injection_id"
	// FieldPatternID holds the string denoting the pattern_id field in the database.
	FieldPatternID = "pattern_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldCohort holds the string denoting the cohort field in the database.
	FieldCohort = "cohort"
	// FieldAssignedAt holds the string denoting the assigned_at field in the database.
	FieldAssignedAt = "assigned_at"
	// EdgePattern holds the string denoting the pattern edge name in mutations.
	EdgePattern = "pattern"
	// PatternFieldID holds the string denoting the ID field of the Pattern.
	PatternFieldID = "pattern_id"
	// Table holds the table name of the patterninjection in the database.
	Table = "pattern_injections"
	// PatternTable is the table that holds the pattern relation/edge.
	PatternTable = "pattern_injections"
	// PatternInverseTable is the table name for the Pattern entity.
	// It exists in this package in order to avoid circular dependency with the "pattern" package.
	PatternInverseTable = "patterns"
	// PatternColumn is the table column denoting the pattern relation/edge.
	PatternColumn = "pattern_id"
)

// Columns holds all SQL columns for patterninjection fields.
var Columns = []string{
	FieldID,
	FieldPatternID,
	FieldSessionID,
	FieldCohort,
	FieldAssignedAt,
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
	// DefaultCohort holds the default value on creation for the "cohort" field.
	DefaultCohort string
	// DefaultAssignedAt holds the default value on creation for the "assigned_at" field.
	DefaultAssignedAt func() time.Time
)

// OrderOption defines the ordering options for the PatternInjection queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPatternID orders the results by the pattern_id field.
func ByPatternID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatternID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByCohort orders the results by the cohort field.
func ByCohort(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCohort, opts...).ToFunc()
}

// ByAssignedAt orders the results by the assigned_at field.
func ByAssignedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignedAt, opts...).ToFunc()
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
