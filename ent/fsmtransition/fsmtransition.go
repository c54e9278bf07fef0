// Code generated by ent, DO NOT EDIT.

package fsmtransition

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the fsmtransition type in the database.
	Label = "fsm_transition"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFsmKind holds the string denoting the fsm_kind field in the database.
	FieldFsmKind = "fsm_kind"
	// FieldEntityID holds the string denoting the entity_id field in the database.
	FieldEntityID = "entity_id"
	// FieldFromState holds the string denoting the from_state field in the database.
	FieldFromState = "from_state"
	// FieldToState holds the string denoting the to_state field in the database.
	FieldToState = "to_state"
	// FieldTrigger holds the string denoting the trigger field in the database.
	FieldTrigger = "trigger"
	// FieldEventID holds the string denoting the event_id field in the database.
	FieldEventID = "event_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the fsmtransition in the database.
	Table = "fsm_transitions"
)

// Columns holds all SQL columns for fsmtransition fields.
var Columns = []string{
	FieldID,
	FieldFsmKind,
	FieldEntityID,
	FieldFromState,
	FieldToState,
	FieldTrigger,
	FieldEventID,
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
		return fmt.Errorf("fsmtransition: invalid enum value for fsm_kind field: %q", fk)
	}
}

// OrderOption defines the ordering options for the FSMTransition queries.
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

// ByFromState orders the results by the from_state field.
func ByFromState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromState, opts...).ToFunc()
}

// ByToState orders the results by the to_state field.
func ByToState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToState, opts...).ToFunc()
}

// ByTrigger orders the results by the trigger field.
func ByTrigger(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrigger, opts...).ToFunc()
}

// ByEventID orders the results by the event_id field.
func ByEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
