// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/onex-platform/omniintelligence/ent/busoffset"
)

// BusOffset is the model entity for the BusOffset schema.
type BusOffset struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ConsumerGroup holds the value of the "consumer_group" field.
	ConsumerGroup string `json:"consumer_group,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic string `json:"topic,omitempty"`
	// Partition holds the value of the "partition" field.
	Partition int `json:"partition,omitempty"`
	// ID of the last successfully processed BusMessage
	Committed int `json:"committed,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BusOffset) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case busoffset.FieldID, busoffset.FieldPartition, busoffset.FieldCommitted:
			values[i] = new(sql.NullInt64)
		case busoffset.FieldConsumerGroup, busoffset.FieldTopic:
			values[i] = new(sql.NullString)
		case busoffset.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BusOffset fields.
func (_m *BusOffset) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case busoffset.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case busoffset.FieldConsumerGroup:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field consumer_group", values[i])
			} else if value.Valid {
				_m.ConsumerGroup = value.String
			}
		case busoffset.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case busoffset.FieldPartition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field partition", values[i])
			} else if value.Valid {
				_m.Partition = int(value.Int64)
			}
		case busoffset.FieldCommitted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field committed", values[i])
			} else if value.Valid {
				_m.Committed = int(value.Int64)
			}
		case busoffset.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the BusOffset.
// This includes values selected through modifiers, order, etc.
func (_m *BusOffset) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this BusOffset.
// Note that you need to call BusOffset.Unwrap() before calling this method if this BusOffset
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BusOffset) Update() *BusOffsetUpdateOne {
	return NewBusOffsetClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BusOffset entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BusOffset) Unwrap() *BusOffset {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BusOffset is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BusOffset) String() string {
	var builder strings.Builder
	builder.WriteString("BusOffset(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("consumer_group=")
	builder.WriteString(_m.ConsumerGroup)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("partition=")
	builder.WriteString(fmt.Sprintf("%v", _m.Partition))
	builder.WriteString(", ")
	builder.WriteString("committed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Committed))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BusOffsets is a parsable slice of BusOffset.
type BusOffsets []*BusOffset
