// Code generated by ent, DO NOT EDIT.

package busmessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the busmessage type in the database.
	Label = "bus_message"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldPartition holds the string denoting the partition field in the database.
	FieldPartition = "partition"
	// FieldKey holds the string denoting the key field in the database.
	FieldKey = "key"
	// FieldEnvelope holds the string denoting the envelope field in the database.
	FieldEnvelope = "envelope"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the busmessage in the database.
	Table = "bus_messages"
)

// Columns holds all SQL columns for busmessage fields.
var Columns = []string{
	FieldID,
	FieldTopic,
	FieldPartition,
	FieldKey,
	FieldEnvelope,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the BusMessage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByPartition orders the results by the partition field.
func ByPartition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPartition, opts...).ToFunc()
}

// ByKey orders the results by the key field.
func ByKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKey, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
