// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/onex-platform/omniintelligence/ent/pattern"
	"github.com/onex-platform/omniintelligence/ent/patterndisable"
)

// PatternDisable is the model entity for the PatternDisable schema.
type PatternDisable struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// PatternID holds the value of the "pattern_id" field.
	PatternID string `json:"pattern_id,omitempty"`
	// Action holds the value of the "action" field.
	Action patterndisable.Action `json:"action,omitempty"`
	// safety/compliance reasons additionally force demotion
	Reason patterndisable.Reason `json:"reason,omitempty"`
	// Detail holds the value of the "detail" field.
	Detail string `json:"detail,omitempty"`
	// DisabledBy holds the value of the "disabled_by" field.
	DisabledBy string `json:"disabled_by,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PatternDisableQuery when eager-loading is set.
	Edges        PatternDisableEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PatternDisableEdges holds the relations/edges for other nodes in the graph.
type PatternDisableEdges struct {
	// Pattern holds the value of the pattern edge.
	Pattern *Pattern `json:"pattern,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PatternOrErr returns the Pattern value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PatternDisableEdges) PatternOrErr() (*Pattern, error) {
	if e.Pattern != nil {
		return e.Pattern, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: pattern.Label}
	}
	return nil, &NotLoadedError{edge: "pattern"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PatternDisable) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case patterndisable.FieldID:
			values[i] = new(sql.NullInt64)
		case patterndisable.FieldPatternID, patterndisable.FieldAction, patterndisable.FieldReason, patterndisable.FieldDetail, patterndisable.FieldDisabledBy:
			values[i] = new(sql.NullString)
		case patterndisable.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PatternDisable fields.
func (_m *PatternDisable) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case patterndisable.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case patterndisable.FieldPatternID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pattern_id", values[i])
			} else if value.Valid {
				_m.PatternID = value.String
			}
		case patterndisable.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = patterndisable.Action(value.String)
			}
		case patterndisable.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = patterndisable.Reason(value.String)
			}
		case patterndisable.FieldDetail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field detail", values[i])
			} else if value.Valid {
				_m.Detail = value.String
			}
		case patterndisable.FieldDisabledBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field disabled_by", values[i])
			} else if value.Valid {
				_m.DisabledBy = value.String
			}
		case patterndisable.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PatternDisable.
// This includes values selected through modifiers, order, etc.
func (_m *PatternDisable) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPattern queries the "pattern" edge of the PatternDisable entity.
func (_m *PatternDisable) QueryPattern() *PatternQuery {
	return NewPatternDisableClient(_m.config).QueryPattern(_m)
}

// Update returns a builder for updating this PatternDisable.
// Note that you need to call PatternDisable.Unwrap() before calling this method if this PatternDisable
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PatternDisable) Update() *PatternDisableUpdateOne {
	return NewPatternDisableClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PatternDisable entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PatternDisable) Unwrap() *PatternDisable {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PatternDisable is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PatternDisable) String() string {
	var builder strings.Builder
	builder.WriteString("PatternDisable(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("pattern_id=")
	builder.WriteString(_m.PatternID)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(fmt.Sprintf("%v", _m.Action))
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(fmt.Sprintf("%v", _m.Reason))
	builder.WriteString(", ")
	builder.WriteString("detail=")
	builder.WriteString(_m.Detail)
	builder.WriteString(", ")
	builder.WriteString("disabled_by=")
	builder.WriteString(_m.DisabledBy)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PatternDisables is a parsable slice of PatternDisable.
type PatternDisables []*PatternDisable
