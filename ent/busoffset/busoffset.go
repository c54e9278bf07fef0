// Code generated by ent, DO NOT EDIT.

package busoffset

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the busoffset type in the database.
	Label = "bus_offset"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldConsumerGroup holds the string denoting the consumer_group field in the database.
	FieldConsumerGroup = "consumer_group"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldPartition holds the string denoting the partition field in the database.
	FieldPartition = "partition"
	// FieldCommitted holds the string denoting the committed field in the database.
	FieldCommitted = "committed"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the busoffset in the database.
	Table = "bus_offsets"
)

// Columns holds all SQL columns for busoffset fields.
var Columns = []string{
	FieldID,
	FieldConsumerGroup,
	FieldTopic,
	FieldPartition,
	FieldCommitted,
	FieldUpdatedAt,
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
	// DefaultCommitted holds the default value on creation for the "committed" field.
	DefaultCommitted int
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the BusOffset queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByConsumerGroup orders the results by the consumer_group field.
func ByConsumerGroup(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsumerGroup, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByPartition orders the results by the partition field.
func ByPartition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPartition, opts...).ToFunc()
}

// ByCommitted orders the results by the committed field.
func ByCommitted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommitted, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
