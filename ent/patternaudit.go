// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/onex-platform/omniintelligence/ent/pattern"
	"github.com/onex-platform/omniintelligence/ent/patternaudit"
)

// PatternAudit is the model entity for the PatternAudit schema.
type PatternAudit struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// PatternID holds the value of the "pattern_id" field.
	PatternID string `json:"pattern_id,omitempty"`
	// FromStatus holds the value of the "from_status" field.
	FromStatus string `json:"from_status,omitempty"`
	// ToStatus holds the value of the "to_status" field.
	ToStatus string `json:"to_status,omitempty"`
	// What caused the transition (e.g. 'promotion_eligible', 'admin_command')
	Trigger string `json:"trigger,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason string `json:"reason,omitempty"`
	// Feedback window snapshot at transition time
	EvidenceSnapshot map[string]interface{} `json:"evidence_snapshot,omitempty"`
	// CorrelationID holds the value of the "correlation_id" field.
	CorrelationID string `json:"correlation_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PatternAuditQuery when eager-loading is set.
	Edges        PatternAuditEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PatternAuditEdges holds the relations/edges for other nodes in the graph.
type PatternAuditEdges struct {
	// Pattern holds the value of the pattern edge.
	Pattern *Pattern `json:"pattern,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PatternOrErr returns the Pattern value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PatternAuditEdges) PatternOrErr() (*Pattern, error) {
	if e.Pattern != nil {
		return e.Pattern, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: pattern.Label}
	}
	return nil, &NotLoadedError{edge: "pattern"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PatternAudit) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case patternaudit.FieldEvidenceSnapshot:
			values[i] = new([]byte)
		case patternaudit.FieldID:
			values[i] = new(sql.NullInt64)
		case patternaudit.FieldPatternID, patternaudit.FieldFromStatus, patternaudit.FieldToStatus, patternaudit.FieldTrigger, patternaudit.FieldReason, patternaudit.FieldCorrelationID:
			values[i] = new(sql.NullString)
		case patternaudit.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PatternAudit fields.
func (_m *PatternAudit) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case patternaudit.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case patternaudit.FieldPatternID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pattern_id", values[i])
			} else if value.Valid {
				_m.PatternID = value.String
			}
		case patternaudit.FieldFromStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_status", values[i])
			} else if value.Valid {
				_m.FromStatus = value.String
			}
		case patternaudit.FieldToStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field to_status", values[i])
			} else if value.Valid {
				_m.ToStatus = value.String
			}
		case patternaudit.FieldTrigger:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger", values[i])
			} else if value.Valid {
				_m.Trigger = value.String
			}
		case patternaudit.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case patternaudit.FieldEvidenceSnapshot:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field evidence_snapshot", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EvidenceSnapshot); err != nil {
					return fmt.Errorf("unmarshal field evidence_snapshot: %w", err)
				}
			}
		case patternaudit.FieldCorrelationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correlation_id", values[i])
			} else if value.Valid {
				_m.CorrelationID = value.String
			}
		case patternaudit.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the PatternAudit.
// This includes values selected through modifiers, order, etc.
func (_m *PatternAudit) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPattern queries the "pattern" edge of the PatternAudit entity.
func (_m *PatternAudit) QueryPattern() *PatternQuery {
	return NewPatternAuditClient(_m.config).QueryPattern(_m)
}

// Update returns a builder for updating this PatternAudit.
// Note that you need to call PatternAudit.Unwrap() before calling this method if this PatternAudit
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PatternAudit) Update() *PatternAuditUpdateOne {
	return NewPatternAuditClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PatternAudit entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PatternAudit) Unwrap() *PatternAudit {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PatternAudit is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PatternAudit) String() string {
	var builder strings.Builder
	builder.WriteString("PatternAudit(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("pattern_id=")
	builder.WriteString(_m.PatternID)
	builder.WriteString(", ")
	builder.WriteString("from_status=")
	builder.WriteString(_m.FromStatus)
	builder.WriteString(", ")
	builder.WriteString("to_status=")
	builder.WriteString(_m.ToStatus)
	builder.WriteString(", ")
	builder.WriteString("trigger=")
	builder.WriteString(_m.Trigger)
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("evidence_snapshot=")
	builder.WriteString(fmt.Sprintf("%v", _m.EvidenceSnapshot))
	builder.WriteString(", ")
	builder.WriteString("correlation_id=")
	builder.WriteString(_m.CorrelationID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PatternAudits is a parsable slice of PatternAudit.
type PatternAudits []*PatternAudit
