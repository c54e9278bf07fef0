// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/onex-platform/omniintelligence/ent/busmessage"
)

// BusMessage is the model entity for the BusMessage schema.
type BusMessage struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic string `json:"topic,omitempty"`
	// Partition holds the value of the "partition" field.
	Partition int `json:"partition,omitempty"`
	// Partition key (session_id or pattern_id)
	Key string `json:"key,omitempty"`
	// Marshaled envelope JSON
	Envelope []byte `json:"envelope,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BusMessage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case busmessage.FieldEnvelope:
			values[i] = new([]byte)
		case busmessage.FieldID, busmessage.FieldPartition:
			values[i] = new(sql.NullInt64)
		case busmessage.FieldTopic, busmessage.FieldKey:
			values[i] = new(sql.NullString)
		case busmessage.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BusMessage fields.
func (_m *BusMessage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case busmessage.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case busmessage.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case busmessage.FieldPartition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field partition", values[i])
			} else if value.Valid {
				_m.Partition = int(value.Int64)
			}
		case busmessage.FieldKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field key", values[i])
			} else if value.Valid {
				_m.Key = value.String
			}
		case busmessage.FieldEnvelope:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field envelope", values[i])
			} else if value != nil {
				_m.Envelope = *value
			}
		case busmessage.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the BusMessage.
// This includes values selected through modifiers, order, etc.
func (_m *BusMessage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this BusMessage.
// Note that you need to call BusMessage.Unwrap() before calling this method if this BusMessage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BusMessage) Update() *BusMessageUpdateOne {
	return NewBusMessageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BusMessage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BusMessage) Unwrap() *BusMessage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BusMessage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BusMessage) String() string {
	var builder strings.Builder
	builder.WriteString("BusMessage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("partition=")
	builder.WriteString(fmt.Sprintf("%v", _m.Partition))
	builder.WriteString(", ")
	builder.WriteString("key=")
	builder.WriteString(_m.Key)
	builder.WriteString(", ")
	builder.WriteString("envelope=")
	builder.WriteString(fmt.Sprintf("%v", _m.Envelope))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BusMessages is a parsable slice of BusMessage.
type BusMessages []*BusMessage
