// Code generated by ent, DO NOT EDIT.

package feedbackaggregate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the feedbackaggregate type in the database.
	Label = "feedback_aggregate"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPatternID holds the string denoting the pattern_id field in the database.
	FieldPatternID = "pattern_id"
	// FieldWindowSuccesses holds the string denoting the window_successes field in the database.
	FieldWindowSuccesses = "window_successes"
	// FieldWindowFailures holds the string denoting the window_failures field in the database.
	FieldWindowFailures = "window_failures"
	// FieldSampleCount holds the string denoting the sample_count field in the database.
	FieldSampleCount = "sample_count"
	// FieldEffectiveness holds the string denoting the effectiveness field in the database.
	FieldEffectiveness = "effectiveness"
	// FieldContributionScore holds the string denoting the contribution_score field in the database.
	FieldContributionScore = "contribution_score"
	// FieldConsecutiveLowWindows holds the string denoting the consecutive_low_windows field in the database.
	FieldConsecutiveLowWindows = "consecutive_low_windows"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgePattern holds the string denoting the pattern edge name in mutations.
	EdgePattern = "pattern"
	// PatternFieldID holds the string denoting the ID field of the Pattern.
	PatternFieldID = "pattern_id"
	// Table holds the table name of the feedbackaggregate in the database.
	Table = "feedback_aggregates"
	// PatternTable is the table that holds the pattern relation/edge.
	PatternTable = "feedback_aggregates"
	// PatternInverseTable is the table name for the Pattern entity.
	// It exists in this package in order to avoid circular dependency with the "pattern" package.
	PatternInverseTable = "patterns"
	// PatternColumn is the table column denoting the pattern relation/edge.
	PatternColumn = "pattern_id"
)

// Columns holds all SQL columns for feedbackaggregate fields.
var Columns = []string{
	FieldID,
	FieldPatternID,
	FieldWindowSuccesses,
	FieldWindowFailures,
	FieldSampleCount,
	FieldEffectiveness,
	FieldContributionScore,
	FieldConsecutiveLowWindows,
	FieldUpdatedAt,
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
	// DefaultWindowSuccesses holds the default value on creation for the "window_successes" field.
	DefaultWindowSuccesses int
	// DefaultWindowFailures holds the default value on creation for the "window_failures" field.
	DefaultWindowFailures int
	// DefaultSampleCount holds the default value on creation for the "sample_count" field.
	DefaultSampleCount int
	// DefaultEffectiveness holds the default value on creation for the "effectiveness" field.
	DefaultEffectiveness float64
	// DefaultContributionScore holds the default value on creation for the "contribution_score" field.
	DefaultContributionScore float64
	// DefaultConsecutiveLowWindows holds the default value on creation for the "consecutive_low_windows" field.
	DefaultConsecutiveLowWindows int
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the FeedbackAggregate queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPatternID orders the results by the pattern_id field.
func ByPatternID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatternID, opts...).ToFunc()
}

// ByWindowSuccesses orders the results by the window_successes field.
func ByWindowSuccesses(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWindowSuccesses, opts...).ToFunc()
}

// ByWindowFailures orders the results by the window_failures field.
func ByWindowFailures(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWindowFailures, opts...).ToFunc()
}

// BySampleCount orders the results by the sample_count field.
func BySampleCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSampleCount, opts...).ToFunc()
}

// ByEffectiveness orders the results by the effectiveness field.
func ByEffectiveness(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEffectiveness, opts...).ToFunc()
}

// ByContributionScore orders the results by the contribution_score field.
func ByContributionScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContributionScore, opts...).ToFunc()
}

// ByConsecutiveLowWindows orders the results by the consecutive_low_windows field.
func ByConsecutiveLowWindows(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsecutiveLowWindows, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
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
		sqlgraph.Edge(sqlgraph.O2O, true, PatternTable, PatternColumn),
	)
}
