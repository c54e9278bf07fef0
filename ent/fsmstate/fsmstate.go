// Code generated by ent, DO NOT EDIT.

package fsmstate

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the fsmstate type in the database.
	Label = "fsm_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFsmKind holds the string denoting the fsm_kind field in the database.
	FieldFsmKind = "fsm_kind"
	// FieldEntityID holds the string denoting the entity_id field in the database.
	FieldEntityID = "entity_id"
	// FieldCurrentState holds the string denoting the current_state field in the database.
	FieldCurrentState = "current_state"
	// FieldEnteredAt holds the string denoting the entered_at field in the database.
	FieldEnteredAt = "entered_at"
	// FieldLastEventID holds the string denoting the last_event_id field in the database.
	FieldLastEventID = "last_event_id"
	// Table holds the table name of the fsmstate in the database.
	Table = "fsm_states"
)

// Columns holds all SQL columns for fsmstate fields.
var Columns = []string{
	FieldID,
	FieldFsmKind,
	FieldEntityID,
	FieldCurrentState,
	FieldEnteredAt,
	FieldLastEventID,
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
	// DefaultEnteredAt holds the default value on creation for the "entered_at" field.
	DefaultEnteredAt func() time.Time
)

// FsmKind defines the type for the "fsm_kind" enum field.
type FsmKind string

// FsmKind values.
const (
	FsmKindIngestion         FsmKind = "ingestion"
	FsmKindPatternLearning   FsmKind = "pattern_learning"
	FsmKindQualityAssessment FsmKind = "quality_assessment"
)

func (fk FsmKind) String() string {
	return string(fk)
}

// FsmKindValidator is a validator for the "fsm_kind" field enum values. It is called by the builders before save.
func FsmKindValidator(fk FsmKind) error {
	switch fk {
	case FsmKindIngestion, FsmKindPatternLearning, FsmKindQualityAssessment:
		return nil
	default:
		return fmt.Errorf("fsmstate: invalid enum value for fsm_kind field: %q", fk)
	}
}

// OrderOption defines the ordering options for the FSMState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFsmKind orders the results by the fsm_kind field.
func ByFsmKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFsmKind, opts...).ToFunc()
}

// ByEntityID orders the results by the entity_id field.
func ByEntityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityID, opts...).ToFunc()
}

// ByCurrentState orders the results by the current_state field.
func ByCurrentState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentState, opts...).ToFunc()
}

// ByEnteredAt orders the results by the entered_at field.
func ByEnteredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnteredAt, opts...).ToFunc()
}

// ByLastEventID orders the results by the last_event_id field.
func ByLastEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastEventID, opts...).ToFunc()
}
