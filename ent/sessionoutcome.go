// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/onex-platform/omniintelligence/ent/pattern"
	"github.com/onex-platform/omniintelligence/ent/sessionoutcome"
)

// SessionOutcome is the model entity for the SessionOutcome schema.
type SessionOutcome struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// source event; with pattern_id it makes redelivered outcomes idempotent
	EventID string `json:"event_id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// PatternID holds the value of the "pattern_id" field.
	PatternID string `json:"pattern_id,omitempty"`
	// Outcome holds the value of the "outcome" field.
	Outcome sessionoutcome.Outcome `json:"outcome,omitempty"`
	// WasAdvised holds the value of the "was_advised" field.
	WasAdvised bool `json:"was_advised,omitempty"`
	// WasUsed holds the value of the "was_used" field.
	WasUsed bool `json:"was_used,omitempty"`
	// WasCorrected holds the value of the "was_corrected" field.
	WasCorrected bool `json:"was_corrected,omitempty"`
	// QualityDelta holds the value of the "quality_delta" field.
	QualityDelta float64 `json:"quality_delta,omitempty"`
	// OccurredAt holds the value of the "occurred_at" field.
	OccurredAt time.Time `json:"occurred_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SessionOutcomeQuery when eager-loading is set.
	Edges        SessionOutcomeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SessionOutcomeEdges holds the relations/edges for other nodes in the graph.
type SessionOutcomeEdges struct {
	// Pattern holds the value of the pattern edge.
	Pattern *Pattern `json:"pattern,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PatternOrErr returns the Pattern value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SessionOutcomeEdges) PatternOrErr() (*Pattern, error) {
	if e.Pattern != nil {
		return e.Pattern, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: pattern.Label}
	}
	return nil, &NotLoadedError{edge: "pattern"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionOutcome) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionoutcome.FieldWasAdvised, sessionoutcome.FieldWasUsed, sessionoutcome.FieldWasCorrected:
			values[i] = new(sql.NullBool)
		case sessionoutcome.FieldQualityDelta:
			values[i] = new(sql.NullFloat64)
		case sessionoutcome.FieldID:
			values[i] = new(sql.NullInt64)
		case sessionoutcome.FieldEventID, sessionoutcome.FieldSessionID, sessionoutcome.FieldPatternID, sessionoutcome.FieldOutcome:
			values[i] = new(sql.NullString)
		case sessionoutcome.FieldOccurredAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionOutcome fields.
func (_m *SessionOutcome) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionoutcome.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sessionoutcome.FieldEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value.Valid {
				_m.EventID = value.String
			}
		case sessionoutcome.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case sessionoutcome.FieldPatternID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pattern_id", values[i])
			} else if value.Valid {
				_m.PatternID = value.String
			}
		case sessionoutcome.FieldOutcome:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outcome", values[i])
			} else if value.Valid {
				_m.Outcome = sessionoutcome.Outcome(value.String)
			}
		case sessionoutcome.FieldWasAdvised:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field was_advised", values[i])
			} else if value.Valid {
				_m.WasAdvised = value.Bool
			}
		case sessionoutcome.FieldWasUsed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field was_used", values[i])
			} else if value.Valid {
				_m.WasUsed = value.Bool
			}
		case sessionoutcome.FieldWasCorrected:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field was_corrected", values[i])
			} else if value.Valid {
				_m.WasCorrected = value.Bool
			}
		case sessionoutcome.FieldQualityDelta:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field quality_delta", values[i])
			} else if value.Valid {
				_m.QualityDelta = value.Float64
			}
		case sessionoutcome.FieldOccurredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field occurred_at", values[i])
			} else if value.Valid {
				_m.OccurredAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionOutcome.
// This includes values selected through modifiers, order, etc.
func (_m *SessionOutcome) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPattern queries the "pattern" edge of the SessionOutcome entity.
func (_m *SessionOutcome) QueryPattern() *PatternQuery {
	return NewSessionOutcomeClient(_m.config).QueryPattern(_m)
}

// Update returns a builder for updating this SessionOutcome.
// Note that you need to call SessionOutcome.Unwrap() before calling this method if this SessionOutcome
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionOutcome) Update() *SessionOutcomeUpdateOne {
	return NewSessionOutcomeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionOutcome entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionOutcome) Unwrap() *SessionOutcome {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionOutcome is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionOutcome) String() string {
	var builder strings.Builder
	builder.WriteString("SessionOutcome(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("event_id=")
	builder.WriteString(_m.EventID)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("pattern_id=")
	builder.WriteString(_m.PatternID)
	builder.WriteString(", ")
	builder.WriteString("outcome=")
	builder.WriteString(fmt.Sprintf("%v", _m.Outcome))
	builder.WriteString(", ")
	builder.WriteString("was_advised=")
	builder.WriteString(fmt.Sprintf("%v", _m.WasAdvised))
	builder.WriteString(", ")
	builder.WriteString("was_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.WasUsed))
	builder.WriteString(", ")
	builder.WriteString("was_corrected=")
	builder.WriteString(fmt.Sprintf("%v", _m.WasCorrected))
	builder.WriteString(", ")
	builder.WriteString("quality_delta=")
	builder.WriteString(fmt.Sprintf("%v", _m.QualityDelta))
	builder.WriteString(", ")
	builder.WriteString("occurred_at=")
	builder.WriteString(_m.OccurredAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SessionOutcomes is a parsable slice of SessionOutcome.
type SessionOutcomes []*SessionOutcome
