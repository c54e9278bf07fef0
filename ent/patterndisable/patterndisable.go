// Code generated by ent, DO NOT EDIT.

package patterndisable

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the patterndisable type in the database.
	Label = "pattern_disable"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPatternID holds the string denoting the pattern_id field in the database.
	FieldPatternID = "pattern_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldDetail holds the string denoting the detail field in the database.
	FieldDetail = "detail"
	// FieldDisabledBy holds the string denoting the disabled_by field in the database.
	FieldDisabledBy = "disabled_by"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "disabled_at"
	// EdgePattern holds the string denoting the pattern edge name in mutations.
	EdgePattern = "pattern"
	// PatternFieldID holds the string denoting the ID field of the Pattern.
	PatternFieldID = "pattern_id"
	// Table holds the table name of the patterndisable in the database.
	Table = "pattern_disables"
	// PatternTable is the table that holds the pattern relation/edge.
	PatternTable = "pattern_disables"
	// PatternInverseTable is the table name for the Pattern entity.
	// It exists in this package in order to avoid circular dependency with the "pattern" package.
	PatternInverseTable = "patterns"
	// PatternColumn is the table column denoting the pattern relation/edge.
	PatternColumn = "pattern_id"
)

// Columns holds all SQL columns for patterndisable fields.
var Columns = []string{
	FieldID,
	FieldPatternID,
	FieldAction,
	FieldReason,
	FieldDetail,
	FieldDisabledBy,
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

// Action defines the type for the "action" enum field.
type Action string

// ActionDisable is the default value of the Action enum.
const DefaultAction = ActionDisable

// Action values.
const (
	ActionDisable Action = "disable"
	ActionEnable  Action = "enable"
)

func (a Action) String() string {
	return string(a)
}

// ActionValidator is a validator for the "action" field enum values. It is called by the builders before save.
func ActionValidator(a Action) error {
	switch a {
	case ActionDisable, ActionEnable:
		return nil
	default:
		return fmt.Errorf("patterndisable: invalid enum value for action field: %q", a)
	}
}

// Reason defines the type for the "reason" enum field.
type Reason string

// Reason values.
const (
	ReasonSafety     Reason = "safety"
	ReasonCompliance Reason = "compliance"
	ReasonQuality    Reason = "quality"
	ReasonManual     Reason = "manual"
)

func (r Reason) String() string {
	return string(r)
}

// ReasonValidator is a validator for the "reason" field enum values. It is called by the builders before save.
func ReasonValidator(r Reason) error {
	switch r {
	case ReasonSafety, ReasonCompliance, ReasonQuality, ReasonManual:
		return nil
	default:
		return fmt.Errorf("patterndisable: invalid enum value for reason field: %q", r)
	}
}

// OrderOption defines the ordering options for the PatternDisable queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPatternID orders the results by the pattern_id field.
func ByPatternID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatternID, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByDetail orders the results by the detail field.
func ByDetail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetail, opts...).ToFunc()
}

// ByDisabledBy orders the results by the disabled_by field.
func ByDisabledBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisabledBy, opts...).ToFunc()
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
