// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/onex-platform/omniintelligence/ent/feedbackaggregate"
	"github.com/onex-platform/omniintelligence/ent/pattern"
)

// FeedbackAggregate is the model entity for the FeedbackAggregate schema.
type FeedbackAggregate struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// PatternID holds the value of the "pattern_id" field.
	PatternID string `json:"pattern_id,omitempty"`
	// WindowSuccesses holds the value of the "window_successes" field.
	WindowSuccesses int `json:"window_successes,omitempty"`
	// WindowFailures holds the value of the "window_failures" field.
	WindowFailures int `json:"window_failures,omitempty"`
	// Total outcomes currently in the window (successes + failures + partials)
	SampleCount int `json:"sample_count,omitempty"`
	// Laplace-smoothed success ratio over the window, bounded to [0.0, 1.0]
	Effectiveness float64 `json:"effectiveness,omitempty"`
	// ContributionScore holds the value of the "contribution_score" field.
	ContributionScore float64 `json:"contribution_score,omitempty"`
	// Consecutive evaluations with effectiveness below the demotion threshold
	ConsecutiveLowWindows int `json:"consecutive_low_windows,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FeedbackAggregateQuery when eager-loading is set.
	Edges        FeedbackAggregateEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FeedbackAggregateEdges holds the relations/edges for other nodes in the graph.
type FeedbackAggregateEdges struct {
	// Pattern holds the value of the pattern edge.
	Pattern *Pattern `json:"pattern,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PatternOrErr returns the Pattern value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FeedbackAggregateEdges) PatternOrErr() (*Pattern, error) {
	if e.Pattern != nil {
		return e.Pattern, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: pattern.Label}
	}
	return nil, &NotLoadedError{edge: "pattern"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FeedbackAggregate) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case feedbackaggregate.FieldEffectiveness, feedbackaggregate.FieldContributionScore:
			values[i] = new(sql.NullFloat64)
		case feedbackaggregate.FieldID, feedbackaggregate.FieldWindowSuccesses, feedbackaggregate.FieldWindowFailures, feedbackaggregate.FieldSampleCount, feedbackaggregate.FieldConsecutiveLowWindows:
			values[i] = new(sql.NullInt64)
		case feedbackaggregate.FieldPatternID:
			values[i] = new(sql.NullString)
		case feedbackaggregate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FeedbackAggregate fields.
func (_m *FeedbackAggregate) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case feedbackaggregate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case feedbackaggregate.FieldPatternID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pattern_id", values[i])
			} else if value.Valid {
				_m.PatternID = value.String
			}
		case feedbackaggregate.FieldWindowSuccesses:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field window_successes", values[i])
			} else if value.Valid {
				_m.WindowSuccesses = int(value.Int64)
			}
		case feedbackaggregate.FieldWindowFailures:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field window_failures", values[i])
			} else if value.Valid {
				_m.WindowFailures = int(value.Int64)
			}
		case feedbackaggregate.FieldSampleCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sample_count", values[i])
			} else if value.Valid {
				_m.SampleCount = int(value.Int64)
			}
		case feedbackaggregate.FieldEffectiveness:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field effectiveness", values[i])
			} else if value.Valid {
				_m.Effectiveness = value.Float64
			}
		case feedbackaggregate.FieldContributionScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field contribution_score", values[i])
			} else if value.Valid {
				_m.ContributionScore = value.Float64
			}
		case feedbackaggregate.FieldConsecutiveLowWindows:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field consecutive_low_windows", values[i])
			} else if value.Valid {
				_m.ConsecutiveLowWindows = int(value.Int64)
			}
		case feedbackaggregate.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FeedbackAggregate.
// This includes values selected through modifiers, order, etc.
func (_m *FeedbackAggregate) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPattern queries the "pattern" edge of the FeedbackAggregate entity.
func (_m *FeedbackAggregate) QueryPattern() *PatternQuery {
	return NewFeedbackAggregateClient(_m.config).QueryPattern(_m)
}

// Update returns a builder for updating this FeedbackAggregate.
// Note that you need to call FeedbackAggregate.Unwrap() before calling this method if this FeedbackAggregate
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FeedbackAggregate) Update() *FeedbackAggregateUpdateOne {
	return NewFeedbackAggregateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FeedbackAggregate entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FeedbackAggregate) Unwrap() *FeedbackAggregate {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FeedbackAggregate is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FeedbackAggregate) String() string {
	var builder strings.Builder
	builder.WriteString("FeedbackAggregate(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("pattern_id=")
	builder.WriteString(_m.PatternID)
	builder.WriteString(", ")
	builder.WriteString("window_successes=")
	builder.WriteString(fmt.Sprintf("%v", _m.WindowSuccesses))
	builder.WriteString(", ")
	builder.WriteString("window_failures=")
	builder.WriteString(fmt.Sprintf("%v", _m.WindowFailures))
	builder.WriteString(", ")
	builder.WriteString("sample_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SampleCount))
	builder.WriteString(", ")
	builder.WriteString("effectiveness=")
	builder.WriteString(fmt.Sprintf("%v", _m.Effectiveness))
	builder.WriteString(", ")
	builder.WriteString("contribution_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContributionScore))
	builder.WriteString(", ")
	builder.WriteString("consecutive_low_windows=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConsecutiveLowWindows))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FeedbackAggregates is a parsable slice of FeedbackAggregate.
type FeedbackAggregates []*FeedbackAggregate
