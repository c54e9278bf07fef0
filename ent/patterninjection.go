// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/onex-platform/omniintelligence/ent/pattern"
	"github.com/onex-platform/omniintelligence/ent/patterninjection"
)

// PatternInjection is the model entity for the PatternInjection schema.
type PatternInjection struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// PatternID holds the value of the "pattern_id" field.
	PatternID string `json:"pattern_id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// A/B cohort label
	Cohort string `json:"cohort,omitempty"`
	// AssignedAt holds the value of the "assigned_at" field.
	AssignedAt time.Time `json:"assigned_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PatternInjectionQuery when eager-loading is set.
	Edges        PatternInjectionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PatternInjectionEdges holds the relations/edges for other nodes in the graph.
type PatternInjectionEdges struct {
	// Pattern holds the value of the pattern edge.
	Pattern *Pattern `json:"pattern,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PatternOrErr returns the Pattern value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PatternInjectionEdges) PatternOrErr() (*Pattern, error) {
	if e.Pattern != nil {
		return e.Pattern, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: pattern.Label}
	}
	return nil, &NotLoadedError{edge: "pattern"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PatternInjection) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case patterninjection.FieldID, patterninjection.FieldPatternID, patterninjection.FieldSessionID, patterninjection.FieldCohort:
			values[i] = new(sql.NullString)
		case patterninjection.FieldAssignedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PatternInjection fields.
func (_m *PatternInjection) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case patterninjection.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case patterninjection.FieldPatternID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pattern_id", values[i])
			} else if value.Valid {
				_m.PatternID = value.String
			}
		case patterninjection.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case patterninjection.FieldCohort:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cohort", values[i])
			} else if value.Valid {
				_m.Cohort = value.String
			}
		case patterninjection.FieldAssignedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_at", values[i])
			} else if value.Valid {
				_m.AssignedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PatternInjection.
// This includes values selected through modifiers, order, etc.
func (_m *PatternInjection) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPattern queries the "pattern" edge of the PatternInjection entity.
func (_m *PatternInjection) QueryPattern() *PatternQuery {
	return NewPatternInjectionClient(_m.config).QueryPattern(_m)
}

// Update returns a builder for updating this PatternInjection.
// Note that you need to call PatternInjection.Unwrap() before calling this method if this PatternInjection
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PatternInjection) Update() *PatternInjectionUpdateOne {
	return NewPatternInjectionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PatternInjection entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PatternInjection) Unwrap() *PatternInjection {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PatternInjection is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PatternInjection) String() string {
	var builder strings.Builder
	builder.WriteString("PatternInjection(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("pattern_id=")
	builder.WriteString(_m.PatternID)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("cohort=")
	builder.WriteString(_m.Cohort)
	builder.WriteString(", ")
	builder.WriteString("assigned_at=")
	builder.WriteString(_m.AssignedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PatternInjections is a parsable slice of PatternInjection.
type PatternInjections []*PatternInjection
