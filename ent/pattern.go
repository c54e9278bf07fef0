// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/onex-platform/omniintelligence/ent/feedbackaggregate"
	"github.com/onex-platform/omniintelligence/ent/pattern"
)

// Pattern is the model entity for the Pattern schema.
type Pattern struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Content-addressed hash of the normalized pattern body + version tag
	SignatureHash string `json:"signature_hash,omitempty"`
	// Normalized pattern body
	Body string `json:"body,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// LifecycleStatus holds the value of the "lifecycle_status" field.
	LifecycleStatus pattern.LifecycleStatus `json:"lifecycle_status,omitempty"`
	// Bounded to [0.0, 1.0]; decays on confirmed violations
	QualityScore float64 `json:"quality_score,omitempty"`
	// Continuous confidence metric, bounded to [0.0, 1.0]
	Confidence float64 `json:"confidence,omitempty"`
	// EvidenceTier holds the value of the "evidence_tier" field.
	EvidenceTier pattern.EvidenceTier `json:"evidence_tier,omitempty"`
	// VersionTag holds the value of the "version_tag" field.
	VersionTag string `json:"version_tag,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// LastPromotedAt holds the value of the "last_promoted_at" field.
	LastPromotedAt *time.Time `json:"last_promoted_at,omitempty"`
	// LastDemotedAt holds the value of the "last_demoted_at" field.
	LastDemotedAt *time.Time `json:"last_demoted_at,omitempty"`
	// Set when the pattern reaches its terminal state
	DeprecatedAt *time.Time `json:"deprecated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PatternQuery when eager-loading is set.
	Edges        PatternEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PatternEdges holds the relations/edges for other nodes in the graph.
type PatternEdges struct {
	// AuditEntries holds the value of the audit_entries edge.
	AuditEntries []*PatternAudit `json:"audit_entries,omitempty"`
	// Injections holds the value of the injections edge.
	Injections []*PatternInjection `json:"injections,omitempty"`
	// DisableEvents holds the value of the disable_events edge.
	DisableEvents []*PatternDisable `json:"disable_events,omitempty"`
	// Outcomes holds the value of the outcomes edge.
	Outcomes []*SessionOutcome `json:"outcomes,omitempty"`
	// FeedbackAggregate holds the value of the feedback_aggregate edge.
	FeedbackAggregate *FeedbackAggregate `json:"feedback_aggregate,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// AuditEntriesOrErr returns the AuditEntries value or an error if the edge
// was not loaded in eager-loading.
func (e PatternEdges) AuditEntriesOrErr() ([]*PatternAudit, error) {
	if e.loadedTypes[0] {
		return e.AuditEntries, nil
	}
	return nil, &NotLoadedError{edge: "audit_entries"}
}

// InjectionsOrErr returns the Injections value or an error if the edge
// was not loaded in eager-loading.
func (e PatternEdges) InjectionsOrErr() ([]*PatternInjection, error) {
	if e.loadedTypes[1] {
		return e.Injections, nil
	}
	return nil, &NotLoadedError{edge: "injections"}
}

// DisableEventsOrErr returns the DisableEvents value or an error if the edge
// was not loaded in eager-loading.
func (e PatternEdges) DisableEventsOrErr() ([]*PatternDisable, error) {
	if e.loadedTypes[2] {
		return e.DisableEvents, nil
	}
	return nil, &NotLoadedError{edge: "disable_events"}
}

// OutcomesOrErr returns the Outcomes value or an error if the edge
// was not loaded in eager-loading.
func (e PatternEdges) OutcomesOrErr() ([]*SessionOutcome, error) {
	if e.loadedTypes[3] {
		return e.Outcomes, nil
	}
	return nil, &NotLoadedError{edge: "outcomes"}
}

// FeedbackAggregateOrErr returns the FeedbackAggregate value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PatternEdges) FeedbackAggregateOrErr() (*FeedbackAggregate, error) {
	if e.FeedbackAggregate != nil {
		return e.FeedbackAggregate, nil
	} else if e.loadedTypes[4] {
		return nil, &NotFoundError{label: feedbackaggregate.Label}
	}
	return nil, &NotLoadedError{edge: "feedback_aggregate"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Pattern) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pattern.FieldMetadata:
			values[i] = new([]byte)
		case pattern.FieldQualityScore, pattern.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case pattern.FieldID, pattern.FieldSignatureHash, pattern.FieldBody, pattern.FieldLifecycleStatus, pattern.FieldEvidenceTier, pattern.FieldVersionTag:
			values[i] = new(sql.NullString)
		case pattern.FieldCreatedAt, pattern.FieldLastPromotedAt, pattern.FieldLastDemotedAt, pattern.FieldDeprecatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Pattern fields.
func (_m *Pattern) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pattern.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case pattern.FieldSignatureHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field signature_hash", values[i])
			} else if value.Valid {
				_m.SignatureHash = value.String
			}
		case pattern.FieldBody:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body", values[i])
			} else if value.Valid {
				_m.Body = value.String
			}
		case pattern.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case pattern.FieldLifecycleStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lifecycle_status", values[i])
			} else if value.Valid {
				_m.LifecycleStatus = pattern.LifecycleStatus(value.String)
			}
		case pattern.FieldQualityScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field quality_score", values[i])
			} else if value.Valid {
				_m.QualityScore = value.Float64
			}
		case pattern.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case pattern.FieldEvidenceTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field evidence_tier", values[i])
			} else if value.Valid {
				_m.EvidenceTier = pattern.EvidenceTier(value.String)
			}
		case pattern.FieldVersionTag:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field version_tag", values[i])
			} else if value.Valid {
				_m.VersionTag = value.String
			}
		case pattern.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case pattern.FieldLastPromotedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_promoted_at", values[i])
			} else if value.Valid {
				_m.LastPromotedAt = new(time.Time)
				*_m.LastPromotedAt = value.Time
			}
		case pattern.FieldLastDemotedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_demoted_at", values[i])
			} else if value.Valid {
				_m.LastDemotedAt = new(time.Time)
				*_m.LastDemotedAt = value.Time
			}
		case pattern.FieldDeprecatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deprecated_at", values[i])
			} else if value.Valid {
				_m.DeprecatedAt = new(time.Time)
				*_m.DeprecatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Pattern.
// This includes values selected through modifiers, order, etc.
func (_m *Pattern) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAuditEntries queries the "audit_entries" edge of the Pattern entity.
func (_m *Pattern) QueryAuditEntries() *PatternAuditQuery {
	return NewPatternClient(_m.config).QueryAuditEntries(_m)
}

// QueryInjections queries the "injections" edge of the Pattern entity.
func (_m *Pattern) QueryInjections() *PatternInjectionQuery {
	return NewPatternClient(_m.config).QueryInjections(_m)
}

// QueryDisableEvents queries the "disable_events" edge of the Pattern entity.
func (_m *Pattern) QueryDisableEvents() *PatternDisableQuery {
	return NewPatternClient(_m.config).QueryDisableEvents(_m)
}

// QueryOutcomes queries the "outcomes" edge of the Pattern entity.
func (_m *Pattern) QueryOutcomes() *SessionOutcomeQuery {
	return NewPatternClient(_m.config).QueryOutcomes(_m)
}

// QueryFeedbackAggregate queries the "feedback_aggregate" edge of the Pattern entity.
func (_m *Pattern) QueryFeedbackAggregate() *FeedbackAggregateQuery {
	return NewPatternClient(_m.config).QueryFeedbackAggregate(_m)
}

// Update returns a builder for updating this Pattern.
// Note that you need to call Pattern.Unwrap() before calling this method if this Pattern
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Pattern) Update() *PatternUpdateOne {
	return NewPatternClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Pattern entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Pattern) Unwrap() *Pattern {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Pattern is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Pattern) String() string {
	var builder strings.Builder
	builder.WriteString("Pattern(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("signature_hash=")
	builder.WriteString(_m.SignatureHash)
	builder.WriteString(", ")
	builder.WriteString("body=")
	builder.WriteString(_m.Body)
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("lifecycle_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.LifecycleStatus))
	builder.WriteString(", ")
	builder.WriteString("quality_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.QualityScore))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("evidence_tier=")
	builder.WriteString(fmt.Sprintf("%v", _m.EvidenceTier))
	builder.WriteString(", ")
	builder.WriteString("version_tag=")
	builder.WriteString(_m.VersionTag)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.LastPromotedAt; v != nil {
		builder.WriteString("last_promoted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastDemotedAt; v != nil {
		builder.WriteString("last_demoted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DeprecatedAt; v != nil {
		builder.WriteString("deprecated_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Patterns is a parsable slice of Pattern.
type Patterns []*Pattern
