// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/onex-platform/omniintelligence/ent/fsmstate"
)

// FSMState is the model entity for the FSMState schema.
type FSMState struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// FsmKind holds the value of the "fsm_kind" field.
	FsmKind fsmstate.FsmKind `json:"fsm_kind,omitempty"`
	// EntityID holds the value of the "entity_id" field.
	EntityID string `json:"entity_id,omitempty"`
	// CurrentState holds the value of the "current_state" field.
	CurrentState string `json:"current_state,omitempty"`
	// EnteredAt holds the value of the "entered_at" field.
	EnteredAt time.Time `json:"entered_at,omitempty"`
	// LastEventID holds the value of the "last_event_id" field.
	LastEventID  string `json:"last_event_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FSMState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case fsmstate.FieldID:
			values[i] = new(sql.NullInt64)
		case fsmstate.FieldFsmKind, fsmstate.FieldEntityID, fsmstate.FieldCurrentState, fsmstate.FieldLastEventID:
			values[i] = new(sql.NullString)
		case fsmstate.FieldEnteredAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FSMState fields.
func (_m *FSMState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case fsmstate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case fsmstate.FieldFsmKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fsm_kind", values[i])
			} else if value.Valid {
				_m.FsmKind = fsmstate.FsmKind(value.String)
			}
		case fsmstate.FieldEntityID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_id", values[i])
			} else if value.Valid {
				_m.EntityID = value.String
			}
		case fsmstate.FieldCurrentState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_state", values[i])
			} else if value.Valid {
				_m.CurrentState = value.String
			}
		case fsmstate.FieldEnteredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field entered_at", values[i])
			} else if value.Valid {
				_m.EnteredAt = value.Time
			}
		case fsmstate.FieldLastEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_event_id", values[i])
			} else if value.Valid {
				_m.LastEventID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FSMState.
// This includes values selected through modifiers, order, etc.
func (_m *FSMState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this FSMState.
// Note that you need to call FSMState.Unwrap() before calling this method if this FSMState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FSMState) Update() *FSMStateUpdateOne {
	return NewFSMStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FSMState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FSMState) Unwrap() *FSMState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FSMState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FSMState) String() string {
	var builder strings.Builder
	builder.WriteString("FSMState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("fsm_kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.FsmKind))
	builder.WriteString(", ")
	builder.WriteString("entity_id=")
	builder.WriteString(_m.EntityID)
	builder.WriteString(", ")
	builder.WriteString("current_state=")
	builder.WriteString(_m.CurrentState)
	builder.WriteString(", ")
	builder.WriteString("entered_at=")
	builder.WriteString(_m.EnteredAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_event_id=")
	builder.WriteString(_m.LastEventID)
	builder.WriteByte(')')
	return builder.String()
}

// FSMStates is a parsable slice of FSMState.
type FSMStates []*FSMState
