// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/onex-platform/omniintelligence/ent/busmessage"
	"github.com/onex-platform/omniintelligence/ent/busoffset"
	"github.com/onex-platform/omniintelligence/ent/feedbackaggregate"
	"github.com/onex-platform/omniintelligence/ent/fsmstate"
	"github.com/onex-platform/omniintelligence/ent/fsmtransition"
	"github.com/onex-platform/omniintelligence/ent/idempotencyrecord"
	"github.com/onex-platform/omniintelligence/ent/pattern"
	"github.com/onex-platform/omniintelligence/ent/patternaudit"
	"github.com/onex-platform/omniintelligence/ent/patterndisable"
	"github.com/onex-platform/omniintelligence/ent/patterninjection"
	"github.com/onex-platform/omniintelligence/ent/predicate"
	"github.com/onex-platform/omniintelligence/ent/sessionoutcome"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBusMessage        = "BusMessage"
	TypeBusOffset         = "BusOffset"
	TypeFSMState          = "FSMState"
	TypeFSMTransition     = "FSMTransition"
	TypeFeedbackAggregate = "FeedbackAggregate"
	TypeIdempotencyRecord = "IdempotencyRecord"
	TypePattern           = "Pattern"
	TypePatternAudit      = "PatternAudit"
	TypePatternDisable    = "PatternDisable"
	TypePatternInjection  = "PatternInjection"
	TypeSessionOutcome    = "SessionOutcome"
)

// BusMessageMutation represents an operation that mutates the BusMessage nodes in the graph.
type BusMessageMutation struct {
	config
	op            Op
	typ           string
	id            *int
	topic         *string
	partition     *int
	addpartition  *int
	key           *string
	envelope      *[]byte
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*BusMessage, error)
	predicates    []predicate.BusMessage
}

var _ ent.Mutation = (*BusMessageMutation)(nil)

// busmessageOption allows management of the mutation configuration using functional options.
type busmessageOption func(*BusMessageMutation)

// newBusMessageMutation creates new mutation for the BusMessage entity.
func newBusMessageMutation(c config, op Op, opts ...busmessageOption) *BusMessageMutation {
	m := &BusMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeBusMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBusMessageID sets the ID field of the mutation.
func withBusMessageID(id int) busmessageOption {
	return func(m *BusMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *BusMessage
		)
		m.oldValue = func(ctx context.Context) (*BusMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BusMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBusMessage sets the old BusMessage of the mutation.
func withBusMessage(node *BusMessage) busmessageOption {
	return func(m *BusMessageMutation) {
		m.oldValue = func(context.Context) (*BusMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BusMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BusMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BusMessageMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BusMessageMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BusMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTopic sets the "topic" field.
func (m *BusMessageMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *BusMessageMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the BusMessage entity.
// If the BusMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusMessageMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *BusMessageMutation) ResetTopic() {
	m.topic = nil
}

// SetPartition sets the "partition" field.
func (m *BusMessageMutation) SetPartition(i int) {
	m.partition = &i
	m.addpartition = nil
}

// Partition returns the value of the "partition" field in the mutation.
func (m *BusMessageMutation) Partition() (r int, exists bool) {
	v := m.partition
	if v == nil {
		return
	}
	return *v, true
}

// OldPartition returns the old "partition" field's value of the BusMessage entity.
// If the BusMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusMessageMutation) OldPartition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPartition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPartition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPartition: %w", err)
	}
	return oldValue.Partition, nil
}

// AddPartition adds i to the "partition" field.
func (m *BusMessageMutation) AddPartition(i int) {
	if m.addpartition != nil {
		*m.addpartition += i
	} else {
		m.addpartition = &i
	}
}

// AddedPartition returns the value that was added to the "partition" field in this mutation.
func (m *BusMessageMutation) AddedPartition() (r int, exists bool) {
	v := m.addpartition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPartition resets all changes to the "partition" field.
func (m *BusMessageMutation) ResetPartition() {
	m.partition = nil
	m.addpartition = nil
}

// SetKey sets the "key" field.
func (m *BusMessageMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *BusMessageMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the BusMessage entity.
// If the BusMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusMessageMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ClearKey clears the value of the "key" field.
func (m *BusMessageMutation) ClearKey() {
	m.key = nil
	m.clearedFields[busmessage.FieldKey] = struct{}{}
}

// KeyCleared returns if the "key" field was cleared in this mutation.
func (m *BusMessageMutation) KeyCleared() bool {
	_, ok := m.clearedFields[busmessage.FieldKey]
	return ok
}

// ResetKey resets all changes to the "key" field.
func (m *BusMessageMutation) ResetKey() {
	m.key = nil
	delete(m.clearedFields, busmessage.FieldKey)
}

// SetEnvelope sets the "envelope" field.
func (m *BusMessageMutation) SetEnvelope(b []byte) {
	m.envelope = &b
}

// Envelope returns the value of the "envelope" field in the mutation.
func (m *BusMessageMutation) Envelope() (r []byte, exists bool) {
	v := m.envelope
	if v == nil {
		return
	}
	return *v, true
}

// OldEnvelope returns the old "envelope" field's value of the BusMessage entity.
// If the BusMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusMessageMutation) OldEnvelope(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnvelope is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnvelope requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnvelope: %w", err)
	}
	return oldValue.Envelope, nil
}

// ResetEnvelope resets all changes to the "envelope" field.
func (m *BusMessageMutation) ResetEnvelope() {
	m.envelope = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BusMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BusMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BusMessage entity.
// If the BusMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BusMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the BusMessageMutation builder.
func (m *BusMessageMutation) Where(ps ...predicate.BusMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BusMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BusMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BusMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BusMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BusMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BusMessage).
func (m *BusMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BusMessageMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.topic != nil {
		fields = append(fields, busmessage.FieldTopic)
	}
	if m.partition != nil {
		fields = append(fields, busmessage.FieldPartition)
	}
	if m.key != nil {
		fields = append(fields, busmessage.FieldKey)
	}
	if m.envelope != nil {
		fields = append(fields, busmessage.FieldEnvelope)
	}
	if m.created_at != nil {
		fields = append(fields, busmessage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BusMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case busmessage.FieldTopic:
		return m.Topic()
	case busmessage.FieldPartition:
		return m.Partition()
	case busmessage.FieldKey:
		return m.Key()
	case busmessage.FieldEnvelope:
		return m.Envelope()
	case busmessage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BusMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case busmessage.FieldTopic:
		return m.OldTopic(ctx)
	case busmessage.FieldPartition:
		return m.OldPartition(ctx)
	case busmessage.FieldKey:
		return m.OldKey(ctx)
	case busmessage.FieldEnvelope:
		return m.OldEnvelope(ctx)
	case busmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BusMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BusMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case busmessage.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case busmessage.FieldPartition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPartition(v)
		return nil
	case busmessage.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case busmessage.FieldEnvelope:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnvelope(v)
		return nil
	case busmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BusMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BusMessageMutation) AddedFields() []string {
	var fields []string
	if m.addpartition != nil {
		fields = append(fields, busmessage.FieldPartition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BusMessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case busmessage.FieldPartition:
		return m.AddedPartition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BusMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case busmessage.FieldPartition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPartition(v)
		return nil
	}
	return fmt.Errorf("unknown BusMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BusMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(busmessage.FieldKey) {
		fields = append(fields, busmessage.FieldKey)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BusMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BusMessageMutation) ClearField(name string) error {
	switch name {
	case busmessage.FieldKey:
		m.ClearKey()
		return nil
	}
	return fmt.Errorf("unknown BusMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BusMessageMutation) ResetField(name string) error {
	switch name {
	case busmessage.FieldTopic:
		m.ResetTopic()
		return nil
	case busmessage.FieldPartition:
		m.ResetPartition()
		return nil
	case busmessage.FieldKey:
		m.ResetKey()
		return nil
	case busmessage.FieldEnvelope:
		m.ResetEnvelope()
		return nil
	case busmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown BusMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BusMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BusMessageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BusMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BusMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BusMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BusMessageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BusMessageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BusMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BusMessageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BusMessage edge %s", name)
}

// BusOffsetMutation represents an operation that mutates the BusOffset nodes in the graph.
type BusOffsetMutation struct {
	config
	op             Op
	typ            string
	id             *int
	consumer_group *string
	topic          *string
	partition      *int
	addpartition   *int
	committed      *int
	addcommitted   *int
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*BusOffset, error)
	predicates     []predicate.BusOffset
}

var _ ent.Mutation = (*BusOffsetMutation)(nil)

// busoffsetOption allows management of the mutation configuration using functional options.
type busoffsetOption func(*BusOffsetMutation)

// newBusOffsetMutation creates new mutation for the BusOffset entity.
func newBusOffsetMutation(c config, op Op, opts ...busoffsetOption) *BusOffsetMutation {
	m := &BusOffsetMutation{
		config:        c,
		op:            op,
		typ:           TypeBusOffset,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBusOffsetID sets the ID field of the mutation.
func withBusOffsetID(id int) busoffsetOption {
	return func(m *BusOffsetMutation) {
		var (
			err   error
			once  sync.Once
			value *BusOffset
		)
		m.oldValue = func(ctx context.Context) (*BusOffset, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BusOffset.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBusOffset sets the old BusOffset of the mutation.
func withBusOffset(node *BusOffset) busoffsetOption {
	return func(m *BusOffsetMutation) {
		m.oldValue = func(context.Context) (*BusOffset, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BusOffsetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BusOffsetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BusOffsetMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BusOffsetMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BusOffset.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetConsumerGroup sets the "consumer_group" field.
func (m *BusOffsetMutation) SetConsumerGroup(s string) {
	m.consumer_group = &s
}

// ConsumerGroup returns the value of the "consumer_group" field in the mutation.
func (m *BusOffsetMutation) ConsumerGroup() (r string, exists bool) {
	v := m.consumer_group
	if v == nil {
		return
	}
	return *v, true
}

// OldConsumerGroup returns the old "consumer_group" field's value of the BusOffset entity.
// If the BusOffset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusOffsetMutation) OldConsumerGroup(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsumerGroup is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsumerGroup requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsumerGroup: %w", err)
	}
	return oldValue.ConsumerGroup, nil
}

// ResetConsumerGroup resets all changes to the "consumer_group" field.
func (m *BusOffsetMutation) ResetConsumerGroup() {
	m.consumer_group = nil
}

// SetTopic sets the "topic" field.
func (m *BusOffsetMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *BusOffsetMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the BusOffset entity.
// If the BusOffset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusOffsetMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *BusOffsetMutation) ResetTopic() {
	m.topic = nil
}

// SetPartition sets the "partition" field.
func (m *BusOffsetMutation) SetPartition(i int) {
	m.partition = &i
	m.addpartition = nil
}

// Partition returns the value of the "partition" field in the mutation.
func (m *BusOffsetMutation) Partition() (r int, exists bool) {
	v := m.partition
	if v == nil {
		return
	}
	return *v, true
}

// OldPartition returns the old "partition" field's value of the BusOffset entity.
// If the BusOffset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusOffsetMutation) OldPartition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPartition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPartition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPartition: %w", err)
	}
	return oldValue.Partition, nil
}

// AddPartition adds i to the "partition" field.
func (m *BusOffsetMutation) AddPartition(i int) {
	if m.addpartition != nil {
		*m.addpartition += i
	} else {
		m.addpartition = &i
	}
}

// AddedPartition returns the value that was added to the "partition" field in this mutation.
func (m *BusOffsetMutation) AddedPartition() (r int, exists bool) {
	v := m.addpartition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPartition resets all changes to the "partition" field.
func (m *BusOffsetMutation) ResetPartition() {
	m.partition = nil
	m.addpartition = nil
}

// SetCommitted sets the "committed" field.
func (m *BusOffsetMutation) SetCommitted(i int) {
	m.committed = &i
	m.addcommitted = nil
}

// Committed returns the value of the "committed" field in the mutation.
func (m *BusOffsetMutation) Committed() (r int, exists bool) {
	v := m.committed
	if v == nil {
		return
	}
	return *v, true
}

// OldCommitted returns the old "committed" field's value of the BusOffset entity.
// If the BusOffset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusOffsetMutation) OldCommitted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommitted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommitted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommitted: %w", err)
	}
	return oldValue.Committed, nil
}

// AddCommitted adds i to the "committed" field.
func (m *BusOffsetMutation) AddCommitted(i int) {
	if m.addcommitted != nil {
		*m.addcommitted += i
	} else {
		m.addcommitted = &i
	}
}

// AddedCommitted returns the value that was added to the "committed" field in this mutation.
func (m *BusOffsetMutation) AddedCommitted() (r int, exists bool) {
	v := m.addcommitted
	if v == nil {
		return
	}
	return *v, true
}

// ResetCommitted resets all changes to the "committed" field.
func (m *BusOffsetMutation) ResetCommitted() {
	m.committed = nil
	m.addcommitted = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BusOffsetMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BusOffsetMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the BusOffset entity.
// If the BusOffset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusOffsetMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BusOffsetMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the BusOffsetMutation builder.
func (m *BusOffsetMutation) Where(ps ...predicate.BusOffset) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BusOffsetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BusOffsetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BusOffset, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BusOffsetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BusOffsetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BusOffset).
func (m *BusOffsetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BusOffsetMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.consumer_group != nil {
		fields = append(fields, busoffset.FieldConsumerGroup)
	}
	if m.topic != nil {
		fields = append(fields, busoffset.FieldTopic)
	}
	if m.partition != nil {
		fields = append(fields, busoffset.FieldPartition)
	}
	if m.committed != nil {
		fields = append(fields, busoffset.FieldCommitted)
	}
	if m.updated_at != nil {
		fields = append(fields, busoffset.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BusOffsetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case busoffset.FieldConsumerGroup:
		return m.ConsumerGroup()
	case busoffset.FieldTopic:
		return m.Topic()
	case busoffset.FieldPartition:
		return m.Partition()
	case busoffset.FieldCommitted:
		return m.Committed()
	case busoffset.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BusOffsetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case busoffset.FieldConsumerGroup:
		return m.OldConsumerGroup(ctx)
	case busoffset.FieldTopic:
		return m.OldTopic(ctx)
	case busoffset.FieldPartition:
		return m.OldPartition(ctx)
	case busoffset.FieldCommitted:
		return m.OldCommitted(ctx)
	case busoffset.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BusOffset field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BusOffsetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case busoffset.FieldConsumerGroup:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsumerGroup(v)
		return nil
	case busoffset.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case busoffset.FieldPartition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPartition(v)
		return nil
	case busoffset.FieldCommitted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommitted(v)
		return nil
	case busoffset.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BusOffset field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BusOffsetMutation) AddedFields() []string {
	var fields []string
	if m.addpartition != nil {
		fields = append(fields, busoffset.FieldPartition)
	}
	if m.addcommitted != nil {
		fields = append(fields, busoffset.FieldCommitted)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BusOffsetMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case busoffset.FieldPartition:
		return m.AddedPartition()
	case busoffset.FieldCommitted:
		return m.AddedCommitted()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BusOffsetMutation) AddField(name string, value ent.Value) error {
	switch name {
	case busoffset.FieldPartition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPartition(v)
		return nil
	case busoffset.FieldCommitted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCommitted(v)
		return nil
	}
	return fmt.Errorf("unknown BusOffset numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BusOffsetMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BusOffsetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BusOffsetMutation) ClearField(name string) error {
	return fmt.Errorf("unknown BusOffset nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BusOffsetMutation) ResetField(name string) error {
	switch name {
	case busoffset.FieldConsumerGroup:
		m.ResetConsumerGroup()
		return nil
	case busoffset.FieldTopic:
		m.ResetTopic()
		return nil
	case busoffset.FieldPartition:
		m.ResetPartition()
		return nil
	case busoffset.FieldCommitted:
		m.ResetCommitted()
		return nil
	case busoffset.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown BusOffset field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BusOffsetMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BusOffsetMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BusOffsetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BusOffsetMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BusOffsetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BusOffsetMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BusOffsetMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BusOffset unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BusOffsetMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BusOffset edge %s", name)
}

// FSMStateMutation represents an operation that mutates the FSMState nodes in the graph.
type FSMStateMutation struct {
	config
	op            Op
	typ           string
	id            *int
	fsm_kind      *fsmstate.FsmKind
	entity_id     *string
	current_state *string
	entered_at    *time.Time
	last_event_id *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*FSMState, error)
	predicates    []predicate.FSMState
}

var _ ent.Mutation = (*FSMStateMutation)(nil)

// fsmstateOption allows management of the mutation configuration using functional options.
type fsmstateOption func(*FSMStateMutation)

// newFSMStateMutation creates new mutation for the FSMState entity.
func newFSMStateMutation(c config, op Op, opts ...fsmstateOption) *FSMStateMutation {
	m := &FSMStateMutation{
		config:        c,
		op:            op,
		typ:           TypeFSMState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFSMStateID sets the ID field of the mutation.
func withFSMStateID(id int) fsmstateOption {
	return func(m *FSMStateMutation) {
		var (
			err   error
			once  sync.Once
			value *FSMState
		)
		m.oldValue = func(ctx context.Context) (*FSMState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FSMState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFSMState sets the old FSMState of the mutation.
func withFSMState(node *FSMState) fsmstateOption {
	return func(m *FSMStateMutation) {
		m.oldValue = func(context.Context) (*FSMState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FSMStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FSMStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FSMStateMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FSMStateMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FSMState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFsmKind sets the "fsm_kind" field.
func (m *FSMStateMutation) SetFsmKind(fk fsmstate.FsmKind) {
	m.fsm_kind = &fk
}

// FsmKind returns the value of the "fsm_kind" field in the mutation.
func (m *FSMStateMutation) FsmKind() (r fsmstate.FsmKind, exists bool) {
	v := m.fsm_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldFsmKind returns the old "fsm_kind" field's value of the FSMState entity.
// If the FSMState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FSMStateMutation) OldFsmKind(ctx context.Context) (v fsmstate.FsmKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFsmKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFsmKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFsmKind: %w", err)
	}
	return oldValue.FsmKind, nil
}

// ResetFsmKind resets all changes to the "fsm_kind" field.
func (m *FSMStateMutation) ResetFsmKind() {
	m.fsm_kind = nil
}

// SetEntityID sets the "entity_id" field.
func (m *FSMStateMutation) SetEntityID(s string) {
	m.entity_id = &s
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *FSMStateMutation) EntityID() (r string, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the FSMState entity.
// If the FSMState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FSMStateMutation) OldEntityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *FSMStateMutation) ResetEntityID() {
	m.entity_id = nil
}

// SetCurrentState sets the "current_state" field.
func (m *FSMStateMutation) SetCurrentState(s string) {
	m.current_state = &s
}

// CurrentState returns the value of the "current_state" field in the mutation.
func (m *FSMStateMutation) CurrentState() (r string, exists bool) {
	v := m.current_state
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentState returns the old "current_state" field's value of the FSMState entity.
// If the FSMState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FSMStateMutation) OldCurrentState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentState: %w", err)
	}
	return oldValue.CurrentState, nil
}

// ResetCurrentState resets all changes to the "current_state" field.
func (m *FSMStateMutation) ResetCurrentState() {
	m.current_state = nil
}

// SetEnteredAt sets the "entered_at" field.
func (m *FSMStateMutation) SetEnteredAt(t time.Time) {
	m.entered_at = &t
}

// EnteredAt returns the value of the "entered_at" field in the mutation.
func (m *FSMStateMutation) EnteredAt() (r time.Time, exists bool) {
	v := m.entered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEnteredAt returns the old "entered_at" field's value of the FSMState entity.
// If the FSMState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FSMStateMutation) OldEnteredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnteredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnteredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnteredAt: %w", err)
	}
	return oldValue.EnteredAt, nil
}

// ResetEnteredAt resets all changes to the "entered_at" field.
func (m *FSMStateMutation) ResetEnteredAt() {
	m.entered_at = nil
}

// SetLastEventID sets the "last_event_id" field.
func (m *FSMStateMutation) SetLastEventID(s string) {
	m.last_event_id = &s
}

// LastEventID returns the value of the "last_event_id" field in the mutation.
func (m *FSMStateMutation) LastEventID() (r string, exists bool) {
	v := m.last_event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastEventID returns the old "last_event_id" field's value of the FSMState entity.
// If the FSMState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FSMStateMutation) OldLastEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastEventID: %w", err)
	}
	return oldValue.LastEventID, nil
}

// ClearLastEventID clears the value of the "last_event_id" field.
func (m *FSMStateMutation) ClearLastEventID() {
	m.last_event_id = nil
	m.clearedFields[fsmstate.FieldLastEventID] = struct{}{}
}

// LastEventIDCleared returns if the "last_event_id" field was cleared in this mutation.
func (m *FSMStateMutation) LastEventIDCleared() bool {
	_, ok := m.clearedFields[fsmstate.FieldLastEventID]
	return ok
}

// ResetLastEventID resets all changes to the "last_event_id" field.
func (m *FSMStateMutation) ResetLastEventID() {
	m.last_event_id = nil
	delete(m.clearedFields, fsmstate.FieldLastEventID)
}

// Where appends a list predicates to the FSMStateMutation builder.
func (m *FSMStateMutation) Where(ps ...predicate.FSMState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FSMStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FSMStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FSMState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FSMStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FSMStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FSMState).
func (m *FSMStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FSMStateMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.fsm_kind != nil {
		fields = append(fields, fsmstate.FieldFsmKind)
	}
	if m.entity_id != nil {
		fields = append(fields, fsmstate.FieldEntityID)
	}
	if m.current_state != nil {
		fields = append(fields, fsmstate.FieldCurrentState)
	}
	if m.entered_at != nil {
		fields = append(fields, fsmstate.FieldEnteredAt)
	}
	if m.last_event_id != nil {
		fields = append(fields, fsmstate.FieldLastEventID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FSMStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case fsmstate.FieldFsmKind:
		return m.FsmKind()
	case fsmstate.FieldEntityID:
		return m.EntityID()
	case fsmstate.FieldCurrentState:
		return m.CurrentState()
	case fsmstate.FieldEnteredAt:
		return m.EnteredAt()
	case fsmstate.FieldLastEventID:
		return m.LastEventID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FSMStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case fsmstate.FieldFsmKind:
		return m.OldFsmKind(ctx)
	case fsmstate.FieldEntityID:
		return m.OldEntityID(ctx)
	case fsmstate.FieldCurrentState:
		return m.OldCurrentState(ctx)
	case fsmstate.FieldEnteredAt:
		return m.OldEnteredAt(ctx)
	case fsmstate.FieldLastEventID:
		return m.OldLastEventID(ctx)
	}
	return nil, fmt.Errorf("unknown FSMState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FSMStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case fsmstate.FieldFsmKind:
		v, ok := value.(fsmstate.FsmKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFsmKind(v)
		return nil
	case fsmstate.FieldEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case fsmstate.FieldCurrentState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentState(v)
		return nil
	case fsmstate.FieldEnteredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnteredAt(v)
		return nil
	case fsmstate.FieldLastEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastEventID(v)
		return nil
	}
	return fmt.Errorf("unknown FSMState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FSMStateMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FSMStateMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FSMStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown FSMState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FSMStateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(fsmstate.FieldLastEventID) {
		fields = append(fields, fsmstate.FieldLastEventID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FSMStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FSMStateMutation) ClearField(name string) error {
	switch name {
	case fsmstate.FieldLastEventID:
		m.ClearLastEventID()
		return nil
	}
	return fmt.Errorf("unknown FSMState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FSMStateMutation) ResetField(name string) error {
	switch name {
	case fsmstate.FieldFsmKind:
		m.ResetFsmKind()
		return nil
	case fsmstate.FieldEntityID:
		m.ResetEntityID()
		return nil
	case fsmstate.FieldCurrentState:
		m.ResetCurrentState()
		return nil
	case fsmstate.FieldEnteredAt:
		m.ResetEnteredAt()
		return nil
	case fsmstate.FieldLastEventID:
		m.ResetLastEventID()
		return nil
	}
	return fmt.Errorf("unknown FSMState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FSMStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FSMStateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FSMStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FSMStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FSMStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FSMStateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FSMStateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown FSMState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FSMStateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown FSMState edge %s", name)
}

// FSMTransitionMutation represents an operation that mutates the FSMTransition nodes in the graph.
type FSMTransitionMutation struct {
	config
	op            Op
	typ           string
	id            *int
	fsm_kind      *fsmtransition.FsmKind
	entity_id     *string
	from_state    *string
	to_state      *string
	trigger       *string
	event_id      *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*FSMTransition, error)
	predicates    []predicate.FSMTransition
}

var _ ent.Mutation = (*FSMTransitionMutation)(nil)

// fsmtransitionOption allows management of the mutation configuration using functional options.
type fsmtransitionOption func(*FSMTransitionMutation)

// newFSMTransitionMutation creates new mutation for the FSMTransition entity.
func newFSMTransitionMutation(c config, op Op, opts ...fsmtransitionOption) *FSMTransitionMutation {
	m := &FSMTransitionMutation{
		config:        c,
		op:            op,
		typ:           TypeFSMTransition,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFSMTransitionID sets the ID field of the mutation.
func withFSMTransitionID(id int) fsmtransitionOption {
	return func(m *FSMTransitionMutation) {
		var (
			err   error
			once  sync.Once
			value *FSMTransition
		)
		m.oldValue = func(ctx context.Context) (*FSMTransition, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FSMTransition.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFSMTransition sets the old FSMTransition of the mutation.
func withFSMTransition(node *FSMTransition) fsmtransitionOption {
	return func(m *FSMTransitionMutation) {
		m.oldValue = func(context.Context) (*FSMTransition, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FSMTransitionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FSMTransitionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FSMTransitionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FSMTransitionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FSMTransition.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFsmKind sets the "fsm_kind" field.
func (m *FSMTransitionMutation) SetFsmKind(fk fsmtransition.FsmKind) {
	m.fsm_kind = &fk
}

// FsmKind returns the value of the "fsm_kind" field in the mutation.
func (m *FSMTransitionMutation) FsmKind() (r fsmtransition.FsmKind, exists bool) {
	v := m.fsm_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldFsmKind returns the old "fsm_kind" field's value of the FSMTransition entity.
// If the FSMTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FSMTransitionMutation) OldFsmKind(ctx context.Context) (v fsmtransition.FsmKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFsmKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFsmKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFsmKind: %w", err)
	}
	return oldValue.FsmKind, nil
}

// ResetFsmKind resets all changes to the "fsm_kind" field.
func (m *FSMTransitionMutation) ResetFsmKind() {
	m.fsm_kind = nil
}

// SetEntityID sets the "entity_id" field.
func (m *FSMTransitionMutation) SetEntityID(s string) {
	m.entity_id = &s
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *FSMTransitionMutation) EntityID() (r string, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the FSMTransition entity.
// If the FSMTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FSMTransitionMutation) OldEntityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *FSMTransitionMutation) ResetEntityID() {
	m.entity_id = nil
}

// SetFromState sets the "from_state" field.
func (m *FSMTransitionMutation) SetFromState(s string) {
	m.from_state = &s
}

// FromState returns the value of the "from_state" field in the mutation.
func (m *FSMTransitionMutation) FromState() (r string, exists bool) {
	v := m.from_state
	if v == nil {
		return
	}
	return *v, true
}

// OldFromState returns the old "from_state" field's value of the FSMTransition entity.
// If the FSMTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FSMTransitionMutation) OldFromState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromState: %w", err)
	}
	return oldValue.FromState, nil
}

// ResetFromState resets all changes to the "from_state" field.
func (m *FSMTransitionMutation) ResetFromState() {
	m.from_state = nil
}

// SetToState sets the "to_state" field.
func (m *FSMTransitionMutation) SetToState(s string) {
	m.to_state = &s
}

// ToState returns the value of the "to_state" field in the mutation.
func (m *FSMTransitionMutation) ToState() (r string, exists bool) {
	v := m.to_state
	if v == nil {
		return
	}
	return *v, true
}

// OldToState returns the old "to_state" field's value of the FSMTransition entity.
// If the FSMTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FSMTransitionMutation) OldToState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToState: %w", err)
	}
	return oldValue.ToState, nil
}

// ResetToState resets all changes to the "to_state" field.
func (m *FSMTransitionMutation) ResetToState() {
	m.to_state = nil
}

// SetTrigger sets the "trigger" field.
func (m *FSMTransitionMutation) SetTrigger(s string) {
	m.trigger = &s
}

// Trigger returns the value of the "trigger" field in the mutation.
func (m *FSMTransitionMutation) Trigger() (r string, exists bool) {
	v := m.trigger
	if v == nil {
		return
	}
	return *v, true
}

// OldTrigger returns the old "trigger" field's value of the FSMTransition entity.
// If the FSMTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FSMTransitionMutation) OldTrigger(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrigger is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrigger requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrigger: %w", err)
	}
	return oldValue.Trigger, nil
}

// ResetTrigger resets all changes to the "trigger" field.
func (m *FSMTransitionMutation) ResetTrigger() {
	m.trigger = nil
}

// SetEventID sets the "event_id" field.
func (m *FSMTransitionMutation) SetEventID(s string) {
	m.event_id = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *FSMTransitionMutation) EventID() (r string, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the FSMTransition entity.
// If the FSMTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FSMTransitionMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ClearEventID clears the value of the "event_id" field.
func (m *FSMTransitionMutation) ClearEventID() {
	m.event_id = nil
	m.clearedFields[fsmtransition.FieldEventID] = struct{}{}
}

// EventIDCleared returns if the "event_id" field was cleared in this mutation.
func (m *FSMTransitionMutation) EventIDCleared() bool {
	_, ok := m.clearedFields[fsmtransition.FieldEventID]
	return ok
}

// ResetEventID resets all changes to the "event_id" field.
func (m *FSMTransitionMutation) ResetEventID() {
	m.event_id = nil
	delete(m.clearedFields, fsmtransition.FieldEventID)
}

// SetCreatedAt sets the "created_at" field.
func (m *FSMTransitionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FSMTransitionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FSMTransition entity.
// If the FSMTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FSMTransitionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FSMTransitionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the FSMTransitionMutation builder.
func (m *FSMTransitionMutation) Where(ps ...predicate.FSMTransition) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FSMTransitionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FSMTransitionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FSMTransition, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FSMTransitionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FSMTransitionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FSMTransition).
func (m *FSMTransitionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FSMTransitionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.fsm_kind != nil {
		fields = append(fields, fsmtransition.FieldFsmKind)
	}
	if m.entity_id != nil {
		fields = append(fields, fsmtransition.FieldEntityID)
	}
	if m.from_state != nil {
		fields = append(fields, fsmtransition.FieldFromState)
	}
	if m.to_state != nil {
		fields = append(fields, fsmtransition.FieldToState)
	}
	if m.trigger != nil {
		fields = append(fields, fsmtransition.FieldTrigger)
	}
	if m.event_id != nil {
		fields = append(fields, fsmtransition.FieldEventID)
	}
	if m.created_at != nil {
		fields = append(fields, fsmtransition.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FSMTransitionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case fsmtransition.FieldFsmKind:
		return m.FsmKind()
	case fsmtransition.FieldEntityID:
		return m.EntityID()
	case fsmtransition.FieldFromState:
		return m.FromState()
	case fsmtransition.FieldToState:
		return m.ToState()
	case fsmtransition.FieldTrigger:
		return m.Trigger()
	case fsmtransition.FieldEventID:
		return m.EventID()
	case fsmtransition.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FSMTransitionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case fsmtransition.FieldFsmKind:
		return m.OldFsmKind(ctx)
	case fsmtransition.FieldEntityID:
		return m.OldEntityID(ctx)
	case fsmtransition.FieldFromState:
		return m.OldFromState(ctx)
	case fsmtransition.FieldToState:
		return m.OldToState(ctx)
	case fsmtransition.FieldTrigger:
		return m.OldTrigger(ctx)
	case fsmtransition.FieldEventID:
		return m.OldEventID(ctx)
	case fsmtransition.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FSMTransition field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FSMTransitionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case fsmtransition.FieldFsmKind:
		v, ok := value.(fsmtransition.FsmKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFsmKind(v)
		return nil
	case fsmtransition.FieldEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case fsmtransition.FieldFromState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromState(v)
		return nil
	case fsmtransition.FieldToState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToState(v)
		return nil
	case fsmtransition.FieldTrigger:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrigger(v)
		return nil
	case fsmtransition.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case fsmtransition.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FSMTransition field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FSMTransitionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FSMTransitionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FSMTransitionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown FSMTransition numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FSMTransitionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(fsmtransition.FieldEventID) {
		fields = append(fields, fsmtransition.FieldEventID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FSMTransitionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FSMTransitionMutation) ClearField(name string) error {
	switch name {
	case fsmtransition.FieldEventID:
		m.ClearEventID()
		return nil
	}
	return fmt.Errorf("unknown FSMTransition nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FSMTransitionMutation) ResetField(name string) error {
	switch name {
	case fsmtransition.FieldFsmKind:
		m.ResetFsmKind()
		return nil
	case fsmtransition.FieldEntityID:
		m.ResetEntityID()
		return nil
	case fsmtransition.FieldFromState:
		m.ResetFromState()
		return nil
	case fsmtransition.FieldToState:
		m.ResetToState()
		return nil
	case fsmtransition.FieldTrigger:
		m.ResetTrigger()
		return nil
	case fsmtransition.FieldEventID:
		m.ResetEventID()
		return nil
	case fsmtransition.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown FSMTransition field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FSMTransitionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FSMTransitionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FSMTransitionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FSMTransitionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FSMTransitionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FSMTransitionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FSMTransitionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown FSMTransition unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FSMTransitionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown FSMTransition edge %s", name)
}

// FeedbackAggregateMutation represents an operation that mutates the FeedbackAggregate nodes in the graph.
type FeedbackAggregateMutation struct {
	config
	op                         Op
	typ                        string
	id                         *int
	window_successes           *int
	addwindow_successes        *int
	window_failures            *int
	addwindow_failures         *int
	sample_count               *int
	addsample_count            *int
	effectiveness              *float64
	addeffectiveness           *float64
	contribution_score         *float64
	addcontribution_score      *float64
	consecutive_low_windows    *int
	addconsecutive_low_windows *int
	updated_at                 *time.Time
	clearedFields              map[string]struct{}
	pattern                    *string
	clearedpattern             bool
	done                       bool
	oldValue                   func(context.Context) (*FeedbackAggregate, error)
	predicates                 []predicate.FeedbackAggregate
}

var _ ent.Mutation = (*FeedbackAggregateMutation)(nil)

// feedbackaggregateOption allows management of the mutation configuration using functional options.
type feedbackaggregateOption func(*FeedbackAggregateMutation)

// newFeedbackAggregateMutation creates new mutation for the FeedbackAggregate entity.
func newFeedbackAggregateMutation(c config, op Op, opts ...feedbackaggregateOption) *FeedbackAggregateMutation {
	m := &FeedbackAggregateMutation{
		config:        c,
		op:            op,
		typ:           TypeFeedbackAggregate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFeedbackAggregateID sets the ID field of the mutation.
func withFeedbackAggregateID(id int) feedbackaggregateOption {
	return func(m *FeedbackAggregateMutation) {
		var (
			err   error
			once  sync.Once
			value *FeedbackAggregate
		)
		m.oldValue = func(ctx context.Context) (*FeedbackAggregate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FeedbackAggregate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFeedbackAggregate sets the old FeedbackAggregate of the mutation.
func withFeedbackAggregate(node *FeedbackAggregate) feedbackaggregateOption {
	return func(m *FeedbackAggregateMutation) {
		m.oldValue = func(context.Context) (*FeedbackAggregate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FeedbackAggregateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FeedbackAggregateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FeedbackAggregateMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FeedbackAggregateMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FeedbackAggregate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPatternID sets the "pattern_id" field.
func (m *FeedbackAggregateMutation) SetPatternID(s string) {
	m.pattern = &s
}

// PatternID returns the value of the "pattern_id" field in the mutation.
func (m *FeedbackAggregateMutation) PatternID() (r string, exists bool) {
	v := m.pattern
	if v == nil {
		return
	}
	return *v, true
}

// OldPatternID returns the old "pattern_id" field's value of the FeedbackAggregate entity.
// If the FeedbackAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackAggregateMutation) OldPatternID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatternID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatternID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatternID: %w", err)
	}
	return oldValue.PatternID, nil
}

// ResetPatternID resets all changes to the "pattern_id" field.
func (m *FeedbackAggregateMutation) ResetPatternID() {
	m.pattern = nil
}

// SetWindowSuccesses sets the "window_successes" field.
func (m *FeedbackAggregateMutation) SetWindowSuccesses(i int) {
	m.window_successes = &i
	m.addwindow_successes = nil
}

// WindowSuccesses returns the value of the "window_successes" field in the mutation.
func (m *FeedbackAggregateMutation) WindowSuccesses() (r int, exists bool) {
	v := m.window_successes
	if v == nil {
		return
	}
	return *v, true
}

// OldWindowSuccesses returns the old "window_successes" field's value of the FeedbackAggregate entity.
// If the FeedbackAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackAggregateMutation) OldWindowSuccesses(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindowSuccesses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindowSuccesses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindowSuccesses: %w", err)
	}
	return oldValue.WindowSuccesses, nil
}

// AddWindowSuccesses adds i to the "window_successes" field.
func (m *FeedbackAggregateMutation) AddWindowSuccesses(i int) {
	if m.addwindow_successes != nil {
		*m.addwindow_successes += i
	} else {
		m.addwindow_successes = &i
	}
}

// AddedWindowSuccesses returns the value that was added to the "window_successes" field in this mutation.
func (m *FeedbackAggregateMutation) AddedWindowSuccesses() (r int, exists bool) {
	v := m.addwindow_successes
	if v == nil {
		return
	}
	return *v, true
}

// ResetWindowSuccesses resets all changes to the "window_successes" field.
func (m *FeedbackAggregateMutation) ResetWindowSuccesses() {
	m.window_successes = nil
	m.addwindow_successes = nil
}

// SetWindowFailures sets the "window_failures" field.
func (m *FeedbackAggregateMutation) SetWindowFailures(i int) {
	m.window_failures = &i
	m.addwindow_failures = nil
}

// WindowFailures returns the value of the "window_failures" field in the mutation.
func (m *FeedbackAggregateMutation) WindowFailures() (r int, exists bool) {
	v := m.window_failures
	if v == nil {
		return
	}
	return *v, true
}

// OldWindowFailures returns the old "window_failures" field's value of the FeedbackAggregate entity.
// If the FeedbackAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackAggregateMutation) OldWindowFailures(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindowFailures is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindowFailures requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindowFailures: %w", err)
	}
	return oldValue.WindowFailures, nil
}

// AddWindowFailures adds i to the "window_failures" field.
func (m *FeedbackAggregateMutation) AddWindowFailures(i int) {
	if m.addwindow_failures != nil {
		*m.addwindow_failures += i
	} else {
		m.addwindow_failures = &i
	}
}

// AddedWindowFailures returns the value that was added to the "window_failures" field in this mutation.
func (m *FeedbackAggregateMutation) AddedWindowFailures() (r int, exists bool) {
	v := m.addwindow_failures
	if v == nil {
		return
	}
	return *v, true
}

// ResetWindowFailures resets all changes to the "window_failures" field.
func (m *FeedbackAggregateMutation) ResetWindowFailures() {
	m.window_failures = nil
	m.addwindow_failures = nil
}

// SetSampleCount sets the "sample_count" field.
func (m *FeedbackAggregateMutation) SetSampleCount(i int) {
	m.sample_count = &i
	m.addsample_count = nil
}

// SampleCount returns the value of the "sample_count" field in the mutation.
func (m *FeedbackAggregateMutation) SampleCount() (r int, exists bool) {
	v := m.sample_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSampleCount returns the old "sample_count" field's value of the FeedbackAggregate entity.
// If the FeedbackAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackAggregateMutation) OldSampleCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSampleCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSampleCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSampleCount: %w", err)
	}
	return oldValue.SampleCount, nil
}

// AddSampleCount adds i to the "sample_count" field.
func (m *FeedbackAggregateMutation) AddSampleCount(i int) {
	if m.addsample_count != nil {
		*m.addsample_count += i
	} else {
		m.addsample_count = &i
	}
}

// AddedSampleCount returns the value that was added to the "sample_count" field in this mutation.
func (m *FeedbackAggregateMutation) AddedSampleCount() (r int, exists bool) {
	v := m.addsample_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSampleCount resets all changes to the "sample_count" field.
func (m *FeedbackAggregateMutation) ResetSampleCount() {
	m.sample_count = nil
	m.addsample_count = nil
}

// SetEffectiveness sets the "effectiveness" field.
func (m *FeedbackAggregateMutation) SetEffectiveness(f float64) {
	m.effectiveness = &f
	m.addeffectiveness = nil
}

// Effectiveness returns the value of the "effectiveness" field in the mutation.
func (m *FeedbackAggregateMutation) Effectiveness() (r float64, exists bool) {
	v := m.effectiveness
	if v == nil {
		return
	}
	return *v, true
}

// OldEffectiveness returns the old "effectiveness" field's value of the FeedbackAggregate entity.
// If the FeedbackAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackAggregateMutation) OldEffectiveness(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEffectiveness is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEffectiveness requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEffectiveness: %w", err)
	}
	return oldValue.Effectiveness, nil
}

// AddEffectiveness adds f to the "effectiveness" field.
func (m *FeedbackAggregateMutation) AddEffectiveness(f float64) {
	if m.addeffectiveness != nil {
		*m.addeffectiveness += f
	} else {
		m.addeffectiveness = &f
	}
}

// AddedEffectiveness returns the value that was added to the "effectiveness" field in this mutation.
func (m *FeedbackAggregateMutation) AddedEffectiveness() (r float64, exists bool) {
	v := m.addeffectiveness
	if v == nil {
		return
	}
	return *v, true
}

// ResetEffectiveness resets all changes to the "effectiveness" field.
func (m *FeedbackAggregateMutation) ResetEffectiveness() {
	m.effectiveness = nil
	m.addeffectiveness = nil
}

// SetContributionScore sets the "contribution_score" field.
func (m *FeedbackAggregateMutation) SetContributionScore(f float64) {
	m.contribution_score = &f
	m.addcontribution_score = nil
}

// ContributionScore returns the value of the "contribution_score" field in the mutation.
func (m *FeedbackAggregateMutation) ContributionScore() (r float64, exists bool) {
	v := m.contribution_score
	if v == nil {
		return
	}
	return *v, true
}

// OldContributionScore returns the old "contribution_score" field's value of the FeedbackAggregate entity.
// If the FeedbackAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackAggregateMutation) OldContributionScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContributionScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContributionScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContributionScore: %w", err)
	}
	return oldValue.ContributionScore, nil
}

// AddContributionScore adds f to the "contribution_score" field.
func (m *FeedbackAggregateMutation) AddContributionScore(f float64) {
	if m.addcontribution_score != nil {
		*m.addcontribution_score += f
	} else {
		m.addcontribution_score = &f
	}
}

// AddedContributionScore returns the value that was added to the "contribution_score" field in this mutation.
func (m *FeedbackAggregateMutation) AddedContributionScore() (r float64, exists bool) {
	v := m.addcontribution_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetContributionScore resets all changes to the "contribution_score" field.
func (m *FeedbackAggregateMutation) ResetContributionScore() {
	m.contribution_score = nil
	m.addcontribution_score = nil
}

// SetConsecutiveLowWindows sets the "consecutive_low_windows" field.
func (m *FeedbackAggregateMutation) SetConsecutiveLowWindows(i int) {
	m.consecutive_low_windows = &i
	m.addconsecutive_low_windows = nil
}

// ConsecutiveLowWindows returns the value of the "consecutive_low_windows" field in the mutation.
func (m *FeedbackAggregateMutation) ConsecutiveLowWindows() (r int, exists bool) {
	v := m.consecutive_low_windows
	if v == nil {
		return
	}
	return *v, true
}

// OldConsecutiveLowWindows returns the old "consecutive_low_windows" field's value of the FeedbackAggregate entity.
// If the FeedbackAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackAggregateMutation) OldConsecutiveLowWindows(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsecutiveLowWindows is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsecutiveLowWindows requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsecutiveLowWindows: %w", err)
	}
	return oldValue.ConsecutiveLowWindows, nil
}

// AddConsecutiveLowWindows adds i to the "consecutive_low_windows" field.
func (m *FeedbackAggregateMutation) AddConsecutiveLowWindows(i int) {
	if m.addconsecutive_low_windows != nil {
		*m.addconsecutive_low_windows += i
	} else {
		m.addconsecutive_low_windows = &i
	}
}

// AddedConsecutiveLowWindows returns the value that was added to the "consecutive_low_windows" field in this mutation.
func (m *FeedbackAggregateMutation) AddedConsecutiveLowWindows() (r int, exists bool) {
	v := m.addconsecutive_low_windows
	if v == nil {
		return
	}
	return *v, true
}

// ResetConsecutiveLowWindows resets all changes to the "consecutive_low_windows" field.
func (m *FeedbackAggregateMutation) ResetConsecutiveLowWindows() {
	m.consecutive_low_windows = nil
	m.addconsecutive_low_windows = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FeedbackAggregateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FeedbackAggregateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the FeedbackAggregate entity.
// If the FeedbackAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackAggregateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FeedbackAggregateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearPattern clears the "pattern" edge to the Pattern entity.
func (m *FeedbackAggregateMutation) ClearPattern() {
	m.clearedpattern = true
	m.clearedFields[feedbackaggregate.FieldPatternID] = struct{}{}
}

// PatternCleared reports if the "pattern" edge to the Pattern entity was cleared.
func (m *FeedbackAggregateMutation) PatternCleared() bool {
	return m.clearedpattern
}

// PatternIDs returns the "pattern" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PatternID instead. It exists only for internal usage by the builders.
func (m *FeedbackAggregateMutation) PatternIDs() (ids []string) {
	if id := m.pattern; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPattern resets all changes to the "pattern" edge.
func (m *FeedbackAggregateMutation) ResetPattern() {
	m.pattern = nil
	m.clearedpattern = false
}

// Where appends a list predicates to the FeedbackAggregateMutation builder.
func (m *FeedbackAggregateMutation) Where(ps ...predicate.FeedbackAggregate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FeedbackAggregateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FeedbackAggregateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FeedbackAggregate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FeedbackAggregateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FeedbackAggregateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FeedbackAggregate).
func (m *FeedbackAggregateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FeedbackAggregateMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.pattern != nil {
		fields = append(fields, feedbackaggregate.FieldPatternID)
	}
	if m.window_successes != nil {
		fields = append(fields, feedbackaggregate.FieldWindowSuccesses)
	}
	if m.window_failures != nil {
		fields = append(fields, feedbackaggregate.FieldWindowFailures)
	}
	if m.sample_count != nil {
		fields = append(fields, feedbackaggregate.FieldSampleCount)
	}
	if m.effectiveness != nil {
		fields = append(fields, feedbackaggregate.FieldEffectiveness)
	}
	if m.contribution_score != nil {
		fields = append(fields, feedbackaggregate.FieldContributionScore)
	}
	if m.consecutive_low_windows != nil {
		fields = append(fields, feedbackaggregate.FieldConsecutiveLowWindows)
	}
	if m.updated_at != nil {
		fields = append(fields, feedbackaggregate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FeedbackAggregateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case feedbackaggregate.FieldPatternID:
		return m.PatternID()
	case feedbackaggregate.FieldWindowSuccesses:
		return m.WindowSuccesses()
	case feedbackaggregate.FieldWindowFailures:
		return m.WindowFailures()
	case feedbackaggregate.FieldSampleCount:
		return m.SampleCount()
	case feedbackaggregate.FieldEffectiveness:
		return m.Effectiveness()
	case feedbackaggregate.FieldContributionScore:
		return m.ContributionScore()
	case feedbackaggregate.FieldConsecutiveLowWindows:
		return m.ConsecutiveLowWindows()
	case feedbackaggregate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FeedbackAggregateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case feedbackaggregate.FieldPatternID:
		return m.OldPatternID(ctx)
	case feedbackaggregate.FieldWindowSuccesses:
		return m.OldWindowSuccesses(ctx)
	case feedbackaggregate.FieldWindowFailures:
		return m.OldWindowFailures(ctx)
	case feedbackaggregate.FieldSampleCount:
		return m.OldSampleCount(ctx)
	case feedbackaggregate.FieldEffectiveness:
		return m.OldEffectiveness(ctx)
	case feedbackaggregate.FieldContributionScore:
		return m.OldContributionScore(ctx)
	case feedbackaggregate.FieldConsecutiveLowWindows:
		return m.OldConsecutiveLowWindows(ctx)
	case feedbackaggregate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FeedbackAggregate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeedbackAggregateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case feedbackaggregate.FieldPatternID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatternID(v)
		return nil
	case feedbackaggregate.FieldWindowSuccesses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindowSuccesses(v)
		return nil
	case feedbackaggregate.FieldWindowFailures:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindowFailures(v)
		return nil
	case feedbackaggregate.FieldSampleCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSampleCount(v)
		return nil
	case feedbackaggregate.FieldEffectiveness:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEffectiveness(v)
		return nil
	case feedbackaggregate.FieldContributionScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContributionScore(v)
		return nil
	case feedbackaggregate.FieldConsecutiveLowWindows:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsecutiveLowWindows(v)
		return nil
	case feedbackaggregate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FeedbackAggregate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FeedbackAggregateMutation) AddedFields() []string {
	var fields []string
	if m.addwindow_successes != nil {
		fields = append(fields, feedbackaggregate.FieldWindowSuccesses)
	}
	if m.addwindow_failures != nil {
		fields = append(fields, feedbackaggregate.FieldWindowFailures)
	}
	if m.addsample_count != nil {
		fields = append(fields, feedbackaggregate.FieldSampleCount)
	}
	if m.addeffectiveness != nil {
		fields = append(fields, feedbackaggregate.FieldEffectiveness)
	}
	if m.addcontribution_score != nil {
		fields = append(fields, feedbackaggregate.FieldContributionScore)
	}
	if m.addconsecutive_low_windows != nil {
		fields = append(fields, feedbackaggregate.FieldConsecutiveLowWindows)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FeedbackAggregateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case feedbackaggregate.FieldWindowSuccesses:
		return m.AddedWindowSuccesses()
	case feedbackaggregate.FieldWindowFailures:
		return m.AddedWindowFailures()
	case feedbackaggregate.FieldSampleCount:
		return m.AddedSampleCount()
	case feedbackaggregate.FieldEffectiveness:
		return m.AddedEffectiveness()
	case feedbackaggregate.FieldContributionScore:
		return m.AddedContributionScore()
	case feedbackaggregate.FieldConsecutiveLowWindows:
		return m.AddedConsecutiveLowWindows()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeedbackAggregateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case feedbackaggregate.FieldWindowSuccesses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWindowSuccesses(v)
		return nil
	case feedbackaggregate.FieldWindowFailures:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWindowFailures(v)
		return nil
	case feedbackaggregate.FieldSampleCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSampleCount(v)
		return nil
	case feedbackaggregate.FieldEffectiveness:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEffectiveness(v)
		return nil
	case feedbackaggregate.FieldContributionScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddContributionScore(v)
		return nil
	case feedbackaggregate.FieldConsecutiveLowWindows:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConsecutiveLowWindows(v)
		return nil
	}
	return fmt.Errorf("unknown FeedbackAggregate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FeedbackAggregateMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FeedbackAggregateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FeedbackAggregateMutation) ClearField(name string) error {
	return fmt.Errorf("unknown FeedbackAggregate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FeedbackAggregateMutation) ResetField(name string) error {
	switch name {
	case feedbackaggregate.FieldPatternID:
		m.ResetPatternID()
		return nil
	case feedbackaggregate.FieldWindowSuccesses:
		m.ResetWindowSuccesses()
		return nil
	case feedbackaggregate.FieldWindowFailures:
		m.ResetWindowFailures()
		return nil
	case feedbackaggregate.FieldSampleCount:
		m.ResetSampleCount()
		return nil
	case feedbackaggregate.FieldEffectiveness:
		m.ResetEffectiveness()
		return nil
	case feedbackaggregate.FieldContributionScore:
		m.ResetContributionScore()
		return nil
	case feedbackaggregate.FieldConsecutiveLowWindows:
		m.ResetConsecutiveLowWindows()
		return nil
	case feedbackaggregate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown FeedbackAggregate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FeedbackAggregateMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.pattern != nil {
		edges = append(edges, feedbackaggregate.EdgePattern)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FeedbackAggregateMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case feedbackaggregate.EdgePattern:
		if id := m.pattern; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FeedbackAggregateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FeedbackAggregateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FeedbackAggregateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpattern {
		edges = append(edges, feedbackaggregate.EdgePattern)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FeedbackAggregateMutation) EdgeCleared(name string) bool {
	switch name {
	case feedbackaggregate.EdgePattern:
		return m.clearedpattern
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FeedbackAggregateMutation) ClearEdge(name string) error {
	switch name {
	case feedbackaggregate.EdgePattern:
		m.ClearPattern()
		return nil
	}
	return fmt.Errorf("unknown FeedbackAggregate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FeedbackAggregateMutation) ResetEdge(name string) error {
	switch name {
	case feedbackaggregate.EdgePattern:
		m.ResetPattern()
		return nil
	}
	return fmt.Errorf("unknown FeedbackAggregate edge %s", name)
}

// IdempotencyRecordMutation represents an operation that mutates the IdempotencyRecord nodes in the graph.
type IdempotencyRecordMutation struct {
	config
	op            Op
	typ           string
	id            *int
	event_id      *string
	handler_name  *string
	first_seen_at *time.Time
	result_hash   *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*IdempotencyRecord, error)
	predicates    []predicate.IdempotencyRecord
}

var _ ent.Mutation = (*IdempotencyRecordMutation)(nil)

// idempotencyrecordOption allows management of the mutation configuration using functional options.
type idempotencyrecordOption func(*IdempotencyRecordMutation)

// newIdempotencyRecordMutation creates new mutation for the IdempotencyRecord entity.
func newIdempotencyRecordMutation(c config, op Op, opts ...idempotencyrecordOption) *IdempotencyRecordMutation {
	m := &IdempotencyRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeIdempotencyRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIdempotencyRecordID sets the ID field of the mutation.
func withIdempotencyRecordID(id int) idempotencyrecordOption {
	return func(m *IdempotencyRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *IdempotencyRecord
		)
		m.oldValue = func(ctx context.Context) (*IdempotencyRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().IdempotencyRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIdempotencyRecord sets the old IdempotencyRecord of the mutation.
func withIdempotencyRecord(node *IdempotencyRecord) idempotencyrecordOption {
	return func(m *IdempotencyRecordMutation) {
		m.oldValue = func(context.Context) (*IdempotencyRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IdempotencyRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IdempotencyRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IdempotencyRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IdempotencyRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().IdempotencyRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventID sets the "event_id" field.
func (m *IdempotencyRecordMutation) SetEventID(s string) {
	m.event_id = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *IdempotencyRecordMutation) EventID() (r string, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the IdempotencyRecord entity.
// If the IdempotencyRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdempotencyRecordMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *IdempotencyRecordMutation) ResetEventID() {
	m.event_id = nil
}

// SetHandlerName sets the "handler_name" field.
func (m *IdempotencyRecordMutation) SetHandlerName(s string) {
	m.handler_name = &s
}

// HandlerName returns the value of the "handler_name" field in the mutation.
func (m *IdempotencyRecordMutation) HandlerName() (r string, exists bool) {
	v := m.handler_name
	if v == nil {
		return
	}
	return *v, true
}

// OldHandlerName returns the old "handler_name" field's value of the IdempotencyRecord entity.
// If the IdempotencyRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdempotencyRecordMutation) OldHandlerName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHandlerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHandlerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHandlerName: %w", err)
	}
	return oldValue.HandlerName, nil
}

// ResetHandlerName resets all changes to the "handler_name" field.
func (m *IdempotencyRecordMutation) ResetHandlerName() {
	m.handler_name = nil
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (m *IdempotencyRecordMutation) SetFirstSeenAt(t time.Time) {
	m.first_seen_at = &t
}

// FirstSeenAt returns the value of the "first_seen_at" field in the mutation.
func (m *IdempotencyRecordMutation) FirstSeenAt() (r time.Time, exists bool) {
	v := m.first_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeenAt returns the old "first_seen_at" field's value of the IdempotencyRecord entity.
// If the IdempotencyRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdempotencyRecordMutation) OldFirstSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeenAt: %w", err)
	}
	return oldValue.FirstSeenAt, nil
}

// ResetFirstSeenAt resets all changes to the "first_seen_at" field.
func (m *IdempotencyRecordMutation) ResetFirstSeenAt() {
	m.first_seen_at = nil
}

// SetResultHash sets the "result_hash" field.
func (m *IdempotencyRecordMutation) SetResultHash(s string) {
	m.result_hash = &s
}

// ResultHash returns the value of the "result_hash" field in the mutation.
func (m *IdempotencyRecordMutation) ResultHash() (r string, exists bool) {
	v := m.result_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldResultHash returns the old "result_hash" field's value of the IdempotencyRecord entity.
// If the IdempotencyRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdempotencyRecordMutation) OldResultHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultHash: %w", err)
	}
	return oldValue.ResultHash, nil
}

// ClearResultHash clears the value of the "result_hash" field.
func (m *IdempotencyRecordMutation) ClearResultHash() {
	m.result_hash = nil
	m.clearedFields[idempotencyrecord.FieldResultHash] = struct{}{}
}

// ResultHashCleared returns if the "result_hash" field was cleared in this mutation.
func (m *IdempotencyRecordMutation) ResultHashCleared() bool {
	_, ok := m.clearedFields[idempotencyrecord.FieldResultHash]
	return ok
}

// ResetResultHash resets all changes to the "result_hash" field.
func (m *IdempotencyRecordMutation) ResetResultHash() {
	m.result_hash = nil
	delete(m.clearedFields, idempotencyrecord.FieldResultHash)
}

// Where appends a list predicates to the IdempotencyRecordMutation builder.
func (m *IdempotencyRecordMutation) Where(ps ...predicate.IdempotencyRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IdempotencyRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IdempotencyRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.IdempotencyRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IdempotencyRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IdempotencyRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (IdempotencyRecord).
func (m *IdempotencyRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IdempotencyRecordMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.event_id != nil {
		fields = append(fields, idempotencyrecord.FieldEventID)
	}
	if m.handler_name != nil {
		fields = append(fields, idempotencyrecord.FieldHandlerName)
	}
	if m.first_seen_at != nil {
		fields = append(fields, idempotencyrecord.FieldFirstSeenAt)
	}
	if m.result_hash != nil {
		fields = append(fields, idempotencyrecord.FieldResultHash)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IdempotencyRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case idempotencyrecord.FieldEventID:
		return m.EventID()
	case idempotencyrecord.FieldHandlerName:
		return m.HandlerName()
	case idempotencyrecord.FieldFirstSeenAt:
		return m.FirstSeenAt()
	case idempotencyrecord.FieldResultHash:
		return m.ResultHash()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IdempotencyRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case idempotencyrecord.FieldEventID:
		return m.OldEventID(ctx)
	case idempotencyrecord.FieldHandlerName:
		return m.OldHandlerName(ctx)
	case idempotencyrecord.FieldFirstSeenAt:
		return m.OldFirstSeenAt(ctx)
	case idempotencyrecord.FieldResultHash:
		return m.OldResultHash(ctx)
	}
	return nil, fmt.Errorf("unknown IdempotencyRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IdempotencyRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case idempotencyrecord.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case idempotencyrecord.FieldHandlerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHandlerName(v)
		return nil
	case idempotencyrecord.FieldFirstSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeenAt(v)
		return nil
	case idempotencyrecord.FieldResultHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultHash(v)
		return nil
	}
	return fmt.Errorf("unknown IdempotencyRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IdempotencyRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IdempotencyRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IdempotencyRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown IdempotencyRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IdempotencyRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(idempotencyrecord.FieldResultHash) {
		fields = append(fields, idempotencyrecord.FieldResultHash)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IdempotencyRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IdempotencyRecordMutation) ClearField(name string) error {
	switch name {
	case idempotencyrecord.FieldResultHash:
		m.ClearResultHash()
		return nil
	}
	return fmt.Errorf("unknown IdempotencyRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IdempotencyRecordMutation) ResetField(name string) error {
	switch name {
	case idempotencyrecord.FieldEventID:
		m.ResetEventID()
		return nil
	case idempotencyrecord.FieldHandlerName:
		m.ResetHandlerName()
		return nil
	case idempotencyrecord.FieldFirstSeenAt:
		m.ResetFirstSeenAt()
		return nil
	case idempotencyrecord.FieldResultHash:
		m.ResetResultHash()
		return nil
	}
	return fmt.Errorf("unknown IdempotencyRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IdempotencyRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IdempotencyRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IdempotencyRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IdempotencyRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IdempotencyRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IdempotencyRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IdempotencyRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown IdempotencyRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IdempotencyRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown IdempotencyRecord edge %s", name)
}

// PatternMutation represents an operation that mutates the Pattern nodes in the graph.
type PatternMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	signature_hash            *string
	body                      *string
	metadata                  *map[string]interface{}
	lifecycle_status          *pattern.LifecycleStatus
	quality_score             *float64
	addquality_score          *float64
	confidence                *float64
	addconfidence             *float64
	evidence_tier             *pattern.EvidenceTier
	version_tag               *string
	created_at                *time.Time
	last_promoted_at          *time.Time
	last_demoted_at           *time.Time
	deprecated_at             *time.Time
	clearedFields             map[string]struct{}
	audit_entries             map[int]struct{}
	removedaudit_entries      map[int]struct{}
	clearedaudit_entries      bool
	injections                map[string]struct{}
	removedinjections         map[string]struct{}
	clearedinjections         bool
	disable_events            map[int]struct{}
	removeddisable_events     map[int]struct{}
	cleareddisable_events     bool
	outcomes                  map[int]struct{}
	removedoutcomes           map[int]struct{}
	clearedoutcomes           bool
	feedback_aggregate        *int
	clearedfeedback_aggregate bool
	done                      bool
	oldValue                  func(context.Context) (*Pattern, error)
	predicates                []predicate.Pattern
}

var _ ent.Mutation = (*PatternMutation)(nil)

// patternOption allows management of the mutation configuration using functional options.
type patternOption func(*PatternMutation)

// newPatternMutation creates new mutation for the Pattern entity.
func newPatternMutation(c config, op Op, opts ...patternOption) *PatternMutation {
	m := &PatternMutation{
		config:        c,
		op:            op,
		typ:           TypePattern,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPatternID sets the ID field of the mutation.
func withPatternID(id string) patternOption {
	return func(m *PatternMutation) {
		var (
			err   error
			once  sync.Once
			value *Pattern
		)
		m.oldValue = func(ctx context.Context) (*Pattern, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Pattern.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPattern sets the old Pattern of the mutation.
func withPattern(node *Pattern) patternOption {
	return func(m *PatternMutation) {
		m.oldValue = func(context.Context) (*Pattern, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PatternMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PatternMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Pattern entities.
func (m *PatternMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PatternMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PatternMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Pattern.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSignatureHash sets the "signature_hash" field.
func (m *PatternMutation) SetSignatureHash(s string) {
	m.signature_hash = &s
}

// SignatureHash returns the value of the "signature_hash" field in the mutation.
func (m *PatternMutation) SignatureHash() (r string, exists bool) {
	v := m.signature_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldSignatureHash returns the old "signature_hash" field's value of the Pattern entity.
// If the Pattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternMutation) OldSignatureHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignatureHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignatureHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignatureHash: %w", err)
	}
	return oldValue.SignatureHash, nil
}

// ResetSignatureHash resets all changes to the "signature_hash" field.
func (m *PatternMutation) ResetSignatureHash() {
	m.signature_hash = nil
}

// SetBody sets the "body" field.
func (m *PatternMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *PatternMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the Pattern entity.
// If the Pattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *PatternMutation) ResetBody() {
	m.body = nil
}

// SetMetadata sets the "metadata" field.
func (m *PatternMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *PatternMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Pattern entity.
// If the Pattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *PatternMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[pattern.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *PatternMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[pattern.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *PatternMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, pattern.FieldMetadata)
}

// SetLifecycleStatus sets the "lifecycle_status" field.
func (m *PatternMutation) SetLifecycleStatus(ps pattern.LifecycleStatus) {
	m.lifecycle_status = &ps
}

// LifecycleStatus returns the value of the "lifecycle_status" field in the mutation.
func (m *PatternMutation) LifecycleStatus() (r pattern.LifecycleStatus, exists bool) {
	v := m.lifecycle_status
	if v == nil {
		return
	}
	return *v, true
}

// OldLifecycleStatus returns the old "lifecycle_status" field's value of the Pattern entity.
// If the Pattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternMutation) OldLifecycleStatus(ctx context.Context) (v pattern.LifecycleStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLifecycleStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLifecycleStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLifecycleStatus: %w", err)
	}
	return oldValue.LifecycleStatus, nil
}

// ResetLifecycleStatus resets all changes to the "lifecycle_status" field.
func (m *PatternMutation) ResetLifecycleStatus() {
	m.lifecycle_status = nil
}

// SetQualityScore sets the "quality_score" field.
func (m *PatternMutation) SetQualityScore(f float64) {
	m.quality_score = &f
	m.addquality_score = nil
}

// QualityScore returns the value of the "quality_score" field in the mutation.
func (m *PatternMutation) QualityScore() (r float64, exists bool) {
	v := m.quality_score
	if v == nil {
		return
	}
	return *v, true
}

// OldQualityScore returns the old "quality_score" field's value of the Pattern entity.
// If the Pattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternMutation) OldQualityScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQualityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQualityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQualityScore: %w", err)
	}
	return oldValue.QualityScore, nil
}

// AddQualityScore adds f to the "quality_score" field.
func (m *PatternMutation) AddQualityScore(f float64) {
	if m.addquality_score != nil {
		*m.addquality_score += f
	} else {
		m.addquality_score = &f
	}
}

// AddedQualityScore returns the value that was added to the "quality_score" field in this mutation.
func (m *PatternMutation) AddedQualityScore() (r float64, exists bool) {
	v := m.addquality_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetQualityScore resets all changes to the "quality_score" field.
func (m *PatternMutation) ResetQualityScore() {
	m.quality_score = nil
	m.addquality_score = nil
}

// SetConfidence sets the "confidence" field.
func (m *PatternMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *PatternMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Pattern entity.
// If the Pattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *PatternMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *PatternMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *PatternMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetEvidenceTier sets the "evidence_tier" field.
func (m *PatternMutation) SetEvidenceTier(pt pattern.EvidenceTier) {
	m.evidence_tier = &pt
}

// EvidenceTier returns the value of the "evidence_tier" field in the mutation.
func (m *PatternMutation) EvidenceTier() (r pattern.EvidenceTier, exists bool) {
	v := m.evidence_tier
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidenceTier returns the old "evidence_tier" field's value of the Pattern entity.
// If the Pattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternMutation) OldEvidenceTier(ctx context.Context) (v pattern.EvidenceTier, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidenceTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidenceTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidenceTier: %w", err)
	}
	return oldValue.EvidenceTier, nil
}

// ResetEvidenceTier resets all changes to the "evidence_tier" field.
func (m *PatternMutation) ResetEvidenceTier() {
	m.evidence_tier = nil
}

// SetVersionTag sets the "version_tag" field.
func (m *PatternMutation) SetVersionTag(s string) {
	m.version_tag = &s
}

// VersionTag returns the value of the "version_tag" field in the mutation.
func (m *PatternMutation) VersionTag() (r string, exists bool) {
	v := m.version_tag
	if v == nil {
		return
	}
	return *v, true
}

// OldVersionTag returns the old "version_tag" field's value of the Pattern entity.
// If the Pattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternMutation) OldVersionTag(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersionTag is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersionTag requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersionTag: %w", err)
	}
	return oldValue.VersionTag, nil
}

// ResetVersionTag resets all changes to the "version_tag" field.
func (m *PatternMutation) ResetVersionTag() {
	m.version_tag = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PatternMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PatternMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Pattern entity.
// If the Pattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PatternMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLastPromotedAt sets the "last_promoted_at" field.
func (m *PatternMutation) SetLastPromotedAt(t time.Time) {
	m.last_promoted_at = &t
}

// LastPromotedAt returns the value of the "last_promoted_at" field in the mutation.
func (m *PatternMutation) LastPromotedAt() (r time.Time, exists bool) {
	v := m.last_promoted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastPromotedAt returns the old "last_promoted_at" field's value of the Pattern entity.
// If the Pattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternMutation) OldLastPromotedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastPromotedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastPromotedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastPromotedAt: %w", err)
	}
	return oldValue.LastPromotedAt, nil
}

// ClearLastPromotedAt clears the value of the "last_promoted_at" field.
func (m *PatternMutation) ClearLastPromotedAt() {
	m.last_promoted_at = nil
	m.clearedFields[pattern.FieldLastPromotedAt] = struct{}{}
}

// LastPromotedAtCleared returns if the "last_promoted_at" field was cleared in this mutation.
func (m *PatternMutation) LastPromotedAtCleared() bool {
	_, ok := m.clearedFields[pattern.FieldLastPromotedAt]
	return ok
}

// ResetLastPromotedAt resets all changes to the "last_promoted_at" field.
func (m *PatternMutation) ResetLastPromotedAt() {
	m.last_promoted_at = nil
	delete(m.clearedFields, pattern.FieldLastPromotedAt)
}

// SetLastDemotedAt sets the "last_demoted_at" field.
func (m *PatternMutation) SetLastDemotedAt(t time.Time) {
	m.last_demoted_at = &t
}

// LastDemotedAt returns the value of the "last_demoted_at" field in the mutation.
func (m *PatternMutation) LastDemotedAt() (r time.Time, exists bool) {
	v := m.last_demoted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastDemotedAt returns the old "last_demoted_at" field's value of the Pattern entity.
// If the Pattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternMutation) OldLastDemotedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastDemotedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastDemotedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastDemotedAt: %w", err)
	}
	return oldValue.LastDemotedAt, nil
}

// ClearLastDemotedAt clears the value of the "last_demoted_at" field.
func (m *PatternMutation) ClearLastDemotedAt() {
	m.last_demoted_at = nil
	m.clearedFields[pattern.FieldLastDemotedAt] = struct{}{}
}

// LastDemotedAtCleared returns if the "last_demoted_at" field was cleared in this mutation.
func (m *PatternMutation) LastDemotedAtCleared() bool {
	_, ok := m.clearedFields[pattern.FieldLastDemotedAt]
	return ok
}

// ResetLastDemotedAt resets all changes to the "last_demoted_at" field.
func (m *PatternMutation) ResetLastDemotedAt() {
	m.last_demoted_at = nil
	delete(m.clearedFields, pattern.FieldLastDemotedAt)
}

// SetDeprecatedAt sets the "deprecated_at" field.
func (m *PatternMutation) SetDeprecatedAt(t time.Time) {
	m.deprecated_at = &t
}

// DeprecatedAt returns the value of the "deprecated_at" field in the mutation.
func (m *PatternMutation) DeprecatedAt() (r time.Time, exists bool) {
	v := m.deprecated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeprecatedAt returns the old "deprecated_at" field's value of the Pattern entity.
// If the Pattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternMutation) OldDeprecatedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeprecatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeprecatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeprecatedAt: %w", err)
	}
	return oldValue.DeprecatedAt, nil
}

// ClearDeprecatedAt clears the value of the "deprecated_at" field.
func (m *PatternMutation) ClearDeprecatedAt() {
	m.deprecated_at = nil
	m.clearedFields[pattern.FieldDeprecatedAt] = struct{}{}
}

// DeprecatedAtCleared returns if the "deprecated_at" field was cleared in this mutation.
func (m *PatternMutation) DeprecatedAtCleared() bool {
	_, ok := m.clearedFields[pattern.FieldDeprecatedAt]
	return ok
}

// ResetDeprecatedAt resets all changes to the "deprecated_at" field.
func (m *PatternMutation) ResetDeprecatedAt() {
	m.deprecated_at = nil
	delete(m.clearedFields, pattern.FieldDeprecatedAt)
}

// AddAuditEntryIDs adds the "audit_entries" edge to the PatternAudit entity by ids.
func (m *PatternMutation) AddAuditEntryIDs(ids ...int) {
	if m.audit_entries == nil {
		m.audit_entries = make(map[int]struct{})
	}
	for i := range ids {
		m.audit_entries[ids[i]] = struct{}{}
	}
}

// ClearAuditEntries clears the "audit_entries" edge to the PatternAudit entity.
func (m *PatternMutation) ClearAuditEntries() {
	m.clearedaudit_entries = true
}

// AuditEntriesCleared reports if the "audit_entries" edge to the PatternAudit entity was cleared.
func (m *PatternMutation) AuditEntriesCleared() bool {
	return m.clearedaudit_entries
}

// RemoveAuditEntryIDs removes the "audit_entries" edge to the PatternAudit entity by IDs.
func (m *PatternMutation) RemoveAuditEntryIDs(ids ...int) {
	if m.removedaudit_entries == nil {
		m.removedaudit_entries = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.audit_entries, ids[i])
		m.removedaudit_entries[ids[i]] = struct{}{}
	}
}

// RemovedAuditEntries returns the removed IDs of the "audit_entries" edge to the PatternAudit entity.
func (m *PatternMutation) RemovedAuditEntriesIDs() (ids []int) {
	for id := range m.removedaudit_entries {
		ids = append(ids, id)
	}
	return
}

// AuditEntriesIDs returns the "audit_entries" edge IDs in the mutation.
func (m *PatternMutation) AuditEntriesIDs() (ids []int) {
	for id := range m.audit_entries {
		ids = append(ids, id)
	}
	return
}

// ResetAuditEntries resets all changes to the "audit_entries" edge.
func (m *PatternMutation) ResetAuditEntries() {
	m.audit_entries = nil
	m.clearedaudit_entries = false
	m.removedaudit_entries = nil
}

// AddInjectionIDs adds the "injections" edge to the PatternInjection entity by ids.
func (m *PatternMutation) AddInjectionIDs(ids ...string) {
	if m.injections == nil {
		m.injections = make(map[string]struct{})
	}
	for i := range ids {
		m.injections[ids[i]] = struct{}{}
	}
}

// ClearInjections clears the "injections" edge to the PatternInjection entity.
func (m *PatternMutation) ClearInjections() {
	m.clearedinjections = true
}

// InjectionsCleared reports if the "injections" edge to the PatternInjection entity was cleared.
func (m *PatternMutation) InjectionsCleared() bool {
	return m.clearedinjections
}

// RemoveInjectionIDs removes the "injections" edge to the PatternInjection entity by IDs.
func (m *PatternMutation) RemoveInjectionIDs(ids ...string) {
	if m.removedinjections == nil {
		m.removedinjections = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.injections, ids[i])
		m.removedinjections[ids[i]] = struct{}{}
	}
}

// RemovedInjections returns the removed IDs of the "injections" edge to the PatternInjection entity.
func (m *PatternMutation) RemovedInjectionsIDs() (ids []string) {
	for id := range m.removedinjections {
		ids = append(ids, id)
	}
	return
}

// InjectionsIDs returns the "injections" edge IDs in the mutation.
func (m *PatternMutation) InjectionsIDs() (ids []string) {
	for id := range m.injections {
		ids = append(ids, id)
	}
	return
}

// ResetInjections resets all changes to the "injections" edge.
func (m *PatternMutation) ResetInjections() {
	m.injections = nil
	m.clearedinjections = false
	m.removedinjections = nil
}

// AddDisableEventIDs adds the "disable_events" edge to the PatternDisable entity by ids.
func (m *PatternMutation) AddDisableEventIDs(ids ...int) {
	if m.disable_events == nil {
		m.disable_events = make(map[int]struct{})
	}
	for i := range ids {
		m.disable_events[ids[i]] = struct{}{}
	}
}

// ClearDisableEvents clears the "disable_events" edge to the PatternDisable entity.
func (m *PatternMutation) ClearDisableEvents() {
	m.cleareddisable_events = true
}

// DisableEventsCleared reports if the "disable_events" edge to the PatternDisable entity was cleared.
func (m *PatternMutation) DisableEventsCleared() bool {
	return m.cleareddisable_events
}

// RemoveDisableEventIDs removes the "disable_events" edge to the PatternDisable entity by IDs.
func (m *PatternMutation) RemoveDisableEventIDs(ids ...int) {
	if m.removeddisable_events == nil {
		m.removeddisable_events = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.disable_events, ids[i])
		m.removeddisable_events[ids[i]] = struct{}{}
	}
}

// RemovedDisableEvents returns the removed IDs of the "disable_events" edge to the PatternDisable entity.
func (m *PatternMutation) RemovedDisableEventsIDs() (ids []int) {
	for id := range m.removeddisable_events {
		ids = append(ids, id)
	}
	return
}

// DisableEventsIDs returns the "disable_events" edge IDs in the mutation.
func (m *PatternMutation) DisableEventsIDs() (ids []int) {
	for id := range m.disable_events {
		ids = append(ids, id)
	}
	return
}

// ResetDisableEvents resets all changes to the "disable_events" edge.
func (m *PatternMutation) ResetDisableEvents() {
	m.disable_events = nil
	m.cleareddisable_events = false
	m.removeddisable_events = nil
}

// AddOutcomeIDs adds the "outcomes" edge to the SessionOutcome entity by ids.
func (m *PatternMutation) AddOutcomeIDs(ids ...int) {
	if m.outcomes == nil {
		m.outcomes = make(map[int]struct{})
	}
	for i := range ids {
		m.outcomes[ids[i]] = struct{}{}
	}
}

// ClearOutcomes clears the "outcomes" edge to the SessionOutcome entity.
func (m *PatternMutation) ClearOutcomes() {
	m.clearedoutcomes = true
}

// OutcomesCleared reports if the "outcomes" edge to the SessionOutcome entity was cleared.
func (m *PatternMutation) OutcomesCleared() bool {
	return m.clearedoutcomes
}

// RemoveOutcomeIDs removes the "outcomes" edge to the SessionOutcome entity by IDs.
func (m *PatternMutation) RemoveOutcomeIDs(ids ...int) {
	if m.removedoutcomes == nil {
		m.removedoutcomes = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.outcomes, ids[i])
		m.removedoutcomes[ids[i]] = struct{}{}
	}
}

// RemovedOutcomes returns the removed IDs of the "outcomes" edge to the SessionOutcome entity.
func (m *PatternMutation) RemovedOutcomesIDs() (ids []int) {
	for id := range m.removedoutcomes {
		ids = append(ids, id)
	}
	return
}

// OutcomesIDs returns the "outcomes" edge IDs in the mutation.
func (m *PatternMutation) OutcomesIDs() (ids []int) {
	for id := range m.outcomes {
		ids = append(ids, id)
	}
	return
}

// ResetOutcomes resets all changes to the "outcomes" edge.
func (m *PatternMutation) ResetOutcomes() {
	m.outcomes = nil
	m.clearedoutcomes = false
	m.removedoutcomes = nil
}

// SetFeedbackAggregateID sets the "feedback_aggregate" edge to the FeedbackAggregate entity by id.
func (m *PatternMutation) SetFeedbackAggregateID(id int) {
	m.feedback_aggregate = &id
}

// ClearFeedbackAggregate clears the "feedback_aggregate" edge to the FeedbackAggregate entity.
func (m *PatternMutation) ClearFeedbackAggregate() {
	m.clearedfeedback_aggregate = true
}

// FeedbackAggregateCleared reports if the "feedback_aggregate" edge to the FeedbackAggregate entity was cleared.
func (m *PatternMutation) FeedbackAggregateCleared() bool {
	return m.clearedfeedback_aggregate
}

// FeedbackAggregateID returns the "feedback_aggregate" edge ID in the mutation.
func (m *PatternMutation) FeedbackAggregateID() (id int, exists bool) {
	if m.feedback_aggregate != nil {
		return *m.feedback_aggregate, true
	}
	return
}

// FeedbackAggregateIDs returns the "feedback_aggregate" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FeedbackAggregateID instead. It exists only for internal usage by the builders.
func (m *PatternMutation) FeedbackAggregateIDs() (ids []int) {
	if id := m.feedback_aggregate; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFeedbackAggregate resets all changes to the "feedback_aggregate" edge.
func (m *PatternMutation) ResetFeedbackAggregate() {
	m.feedback_aggregate = nil
	m.clearedfeedback_aggregate = false
}

// Where appends a list predicates to the PatternMutation builder.
func (m *PatternMutation) Where(ps ...predicate.Pattern) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PatternMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PatternMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Pattern, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PatternMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PatternMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Pattern).
func (m *PatternMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PatternMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.signature_hash != nil {
		fields = append(fields, pattern.FieldSignatureHash)
	}
	if m.body != nil {
		fields = append(fields, pattern.FieldBody)
	}
	if m.metadata != nil {
		fields = append(fields, pattern.FieldMetadata)
	}
	if m.lifecycle_status != nil {
		fields = append(fields, pattern.FieldLifecycleStatus)
	}
	if m.quality_score != nil {
		fields = append(fields, pattern.FieldQualityScore)
	}
	if m.confidence != nil {
		fields = append(fields, pattern.FieldConfidence)
	}
	if m.evidence_tier != nil {
		fields = append(fields, pattern.FieldEvidenceTier)
	}
	if m.version_tag != nil {
		fields = append(fields, pattern.FieldVersionTag)
	}
	if m.created_at != nil {
		fields = append(fields, pattern.FieldCreatedAt)
	}
	if m.last_promoted_at != nil {
		fields = append(fields, pattern.FieldLastPromotedAt)
	}
	if m.last_demoted_at != nil {
		fields = append(fields, pattern.FieldLastDemotedAt)
	}
	if m.deprecated_at != nil {
		fields = append(fields, pattern.FieldDeprecatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PatternMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pattern.FieldSignatureHash:
		return m.SignatureHash()
	case pattern.FieldBody:
		return m.Body()
	case pattern.FieldMetadata:
		return m.Metadata()
	case pattern.FieldLifecycleStatus:
		return m.LifecycleStatus()
	case pattern.FieldQualityScore:
		return m.QualityScore()
	case pattern.FieldConfidence:
		return m.Confidence()
	case pattern.FieldEvidenceTier:
		return m.EvidenceTier()
	case pattern.FieldVersionTag:
		return m.VersionTag()
	case pattern.FieldCreatedAt:
		return m.CreatedAt()
	case pattern.FieldLastPromotedAt:
		return m.LastPromotedAt()
	case pattern.FieldLastDemotedAt:
		return m.LastDemotedAt()
	case pattern.FieldDeprecatedAt:
		return m.DeprecatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PatternMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pattern.FieldSignatureHash:
		return m.OldSignatureHash(ctx)
	case pattern.FieldBody:
		return m.OldBody(ctx)
	case pattern.FieldMetadata:
		return m.OldMetadata(ctx)
	case pattern.FieldLifecycleStatus:
		return m.OldLifecycleStatus(ctx)
	case pattern.FieldQualityScore:
		return m.OldQualityScore(ctx)
	case pattern.FieldConfidence:
		return m.OldConfidence(ctx)
	case pattern.FieldEvidenceTier:
		return m.OldEvidenceTier(ctx)
	case pattern.FieldVersionTag:
		return m.OldVersionTag(ctx)
	case pattern.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case pattern.FieldLastPromotedAt:
		return m.OldLastPromotedAt(ctx)
	case pattern.FieldLastDemotedAt:
		return m.OldLastDemotedAt(ctx)
	case pattern.FieldDeprecatedAt:
		return m.OldDeprecatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Pattern field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatternMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pattern.FieldSignatureHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignatureHash(v)
		return nil
	case pattern.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case pattern.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case pattern.FieldLifecycleStatus:
		v, ok := value.(pattern.LifecycleStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLifecycleStatus(v)
		return nil
	case pattern.FieldQualityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQualityScore(v)
		return nil
	case pattern.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case pattern.FieldEvidenceTier:
		v, ok := value.(pattern.EvidenceTier)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidenceTier(v)
		return nil
	case pattern.FieldVersionTag:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersionTag(v)
		return nil
	case pattern.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case pattern.FieldLastPromotedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastPromotedAt(v)
		return nil
	case pattern.FieldLastDemotedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastDemotedAt(v)
		return nil
	case pattern.FieldDeprecatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeprecatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Pattern field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PatternMutation) AddedFields() []string {
	var fields []string
	if m.addquality_score != nil {
		fields = append(fields, pattern.FieldQualityScore)
	}
	if m.addconfidence != nil {
		fields = append(fields, pattern.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PatternMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pattern.FieldQualityScore:
		return m.AddedQualityScore()
	case pattern.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatternMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pattern.FieldQualityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQualityScore(v)
		return nil
	case pattern.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Pattern numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PatternMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pattern.FieldMetadata) {
		fields = append(fields, pattern.FieldMetadata)
	}
	if m.FieldCleared(pattern.FieldLastPromotedAt) {
		fields = append(fields, pattern.FieldLastPromotedAt)
	}
	if m.FieldCleared(pattern.FieldLastDemotedAt) {
		fields = append(fields, pattern.FieldLastDemotedAt)
	}
	if m.FieldCleared(pattern.FieldDeprecatedAt) {
		fields = append(fields, pattern.FieldDeprecatedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PatternMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PatternMutation) ClearField(name string) error {
	switch name {
	case pattern.FieldMetadata:
		m.ClearMetadata()
		return nil
	case pattern.FieldLastPromotedAt:
		m.ClearLastPromotedAt()
		return nil
	case pattern.FieldLastDemotedAt:
		m.ClearLastDemotedAt()
		return nil
	case pattern.FieldDeprecatedAt:
		m.ClearDeprecatedAt()
		return nil
	}
	return fmt.Errorf("unknown Pattern nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PatternMutation) ResetField(name string) error {
	switch name {
	case pattern.FieldSignatureHash:
		m.ResetSignatureHash()
		return nil
	case pattern.FieldBody:
		m.ResetBody()
		return nil
	case pattern.FieldMetadata:
		m.ResetMetadata()
		return nil
	case pattern.FieldLifecycleStatus:
		m.ResetLifecycleStatus()
		return nil
	case pattern.FieldQualityScore:
		m.ResetQualityScore()
		return nil
	case pattern.FieldConfidence:
		m.ResetConfidence()
		return nil
	case pattern.FieldEvidenceTier:
		m.ResetEvidenceTier()
		return nil
	case pattern.FieldVersionTag:
		m.ResetVersionTag()
		return nil
	case pattern.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case pattern.FieldLastPromotedAt:
		m.ResetLastPromotedAt()
		return nil
	case pattern.FieldLastDemotedAt:
		m.ResetLastDemotedAt()
		return nil
	case pattern.FieldDeprecatedAt:
		m.ResetDeprecatedAt()
		return nil
	}
	return fmt.Errorf("unknown Pattern field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PatternMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.audit_entries != nil {
		edges = append(edges, pattern.EdgeAuditEntries)
	}
	if m.injections != nil {
		edges = append(edges, pattern.EdgeInjections)
	}
	if m.disable_events != nil {
		edges = append(edges, pattern.EdgeDisableEvents)
	}
	if m.outcomes != nil {
		edges = append(edges, pattern.EdgeOutcomes)
	}
	if m.feedback_aggregate != nil {
		edges = append(edges, pattern.EdgeFeedbackAggregate)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PatternMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case pattern.EdgeAuditEntries:
		ids := make([]ent.Value, 0, len(m.audit_entries))
		for id := range m.audit_entries {
			ids = append(ids, id)
		}
		return ids
	case pattern.EdgeInjections:
		ids := make([]ent.Value, 0, len(m.injections))
		for id := range m.injections {
			ids = append(ids, id)
		}
		return ids
	case pattern.EdgeDisableEvents:
		ids := make([]ent.Value, 0, len(m.disable_events))
		for id := range m.disable_events {
			ids = append(ids, id)
		}
		return ids
	case pattern.EdgeOutcomes:
		ids := make([]ent.Value, 0, len(m.outcomes))
		for id := range m.outcomes {
			ids = append(ids, id)
		}
		return ids
	case pattern.EdgeFeedbackAggregate:
		if id := m.feedback_aggregate; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PatternMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedaudit_entries != nil {
		edges = append(edges, pattern.EdgeAuditEntries)
	}
	if m.removedinjections != nil {
		edges = append(edges, pattern.EdgeInjections)
	}
	if m.removeddisable_events != nil {
		edges = append(edges, pattern.EdgeDisableEvents)
	}
	if m.removedoutcomes != nil {
		edges = append(edges, pattern.EdgeOutcomes)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PatternMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case pattern.EdgeAuditEntries:
		ids := make([]ent.Value, 0, len(m.removedaudit_entries))
		for id := range m.removedaudit_entries {
			ids = append(ids, id)
		}
		return ids
	case pattern.EdgeInjections:
		ids := make([]ent.Value, 0, len(m.removedinjections))
		for id := range m.removedinjections {
			ids = append(ids, id)
		}
		return ids
	case pattern.EdgeDisableEvents:
		ids := make([]ent.Value, 0, len(m.removeddisable_events))
		for id := range m.removeddisable_events {
			ids = append(ids, id)
		}
		return ids
	case pattern.EdgeOutcomes:
		ids := make([]ent.Value, 0, len(m.removedoutcomes))
		for id := range m.removedoutcomes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PatternMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedaudit_entries {
		edges = append(edges, pattern.EdgeAuditEntries)
	}
	if m.clearedinjections {
		edges = append(edges, pattern.EdgeInjections)
	}
	if m.cleareddisable_events {
		edges = append(edges, pattern.EdgeDisableEvents)
	}
	if m.clearedoutcomes {
		edges = append(edges, pattern.EdgeOutcomes)
	}
	if m.clearedfeedback_aggregate {
		edges = append(edges, pattern.EdgeFeedbackAggregate)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PatternMutation) EdgeCleared(name string) bool {
	switch name {
	case pattern.EdgeAuditEntries:
		return m.clearedaudit_entries
	case pattern.EdgeInjections:
		return m.clearedinjections
	case pattern.EdgeDisableEvents:
		return m.cleareddisable_events
	case pattern.EdgeOutcomes:
		return m.clearedoutcomes
	case pattern.EdgeFeedbackAggregate:
		return m.clearedfeedback_aggregate
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PatternMutation) ClearEdge(name string) error {
	switch name {
	case pattern.EdgeFeedbackAggregate:
		m.ClearFeedbackAggregate()
		return nil
	}
	return fmt.Errorf("unknown Pattern unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PatternMutation) ResetEdge(name string) error {
	switch name {
	case pattern.EdgeAuditEntries:
		m.ResetAuditEntries()
		return nil
	case pattern.EdgeInjections:
		m.ResetInjections()
		return nil
	case pattern.EdgeDisableEvents:
		m.ResetDisableEvents()
		return nil
	case pattern.EdgeOutcomes:
		m.ResetOutcomes()
		return nil
	case pattern.EdgeFeedbackAggregate:
		m.ResetFeedbackAggregate()
		return nil
	}
	return fmt.Errorf("unknown Pattern edge %s", name)
}

// PatternAuditMutation represents an operation that mutates the PatternAudit nodes in the graph.
type PatternAuditMutation struct {
	config
	op                Op
	typ               string
	id                *int
	from_status       *string
	to_status         *string
	trigger           *string
	reason            *string
	evidence_snapshot *map[string]interface{}
	correlation_id    *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	pattern           *string
	clearedpattern    bool
	done              bool
	oldValue          func(context.Context) (*PatternAudit, error)
	predicates        []predicate.PatternAudit
}

var _ ent.Mutation = (*PatternAuditMutation)(nil)

// patternauditOption allows management of the mutation configuration using functional options.
type patternauditOption func(*PatternAuditMutation)

// newPatternAuditMutation creates new mutation for the PatternAudit entity.
func newPatternAuditMutation(c config, op Op, opts ...patternauditOption) *PatternAuditMutation {
	m := &PatternAuditMutation{
		config:        c,
		op:            op,
		typ:           TypePatternAudit,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPatternAuditID sets the ID field of the mutation.
func withPatternAuditID(id int) patternauditOption {
	return func(m *PatternAuditMutation) {
		var (
			err   error
			once  sync.Once
			value *PatternAudit
		)
		m.oldValue = func(ctx context.Context) (*PatternAudit, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PatternAudit.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPatternAudit sets the old PatternAudit of the mutation.
func withPatternAudit(node *PatternAudit) patternauditOption {
	return func(m *PatternAuditMutation) {
		m.oldValue = func(context.Context) (*PatternAudit, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PatternAuditMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PatternAuditMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PatternAuditMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PatternAuditMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PatternAudit.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPatternID sets the "pattern_id" field.
func (m *PatternAuditMutation) SetPatternID(s string) {
	m.pattern = &s
}

// PatternID returns the value of the "pattern_id" field in the mutation.
func (m *PatternAuditMutation) PatternID() (r string, exists bool) {
	v := m.pattern
	if v == nil {
		return
	}
	return *v, true
}

// OldPatternID returns the old "pattern_id" field's value of the PatternAudit entity.
// If the PatternAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternAuditMutation) OldPatternID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatternID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatternID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatternID: %w", err)
	}
	return oldValue.PatternID, nil
}

// ResetPatternID resets all changes to the "pattern_id" field.
func (m *PatternAuditMutation) ResetPatternID() {
	m.pattern = nil
}

// SetFromStatus sets the "from_status" field.
func (m *PatternAuditMutation) SetFromStatus(s string) {
	m.from_status = &s
}

// FromStatus returns the value of the "from_status" field in the mutation.
func (m *PatternAuditMutation) FromStatus() (r string, exists bool) {
	v := m.from_status
	if v == nil {
		return
	}
	return *v, true
}

// OldFromStatus returns the old "from_status" field's value of the PatternAudit entity.
// If the PatternAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternAuditMutation) OldFromStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromStatus: %w", err)
	}
	return oldValue.FromStatus, nil
}

// ResetFromStatus resets all changes to the "from_status" field.
func (m *PatternAuditMutation) ResetFromStatus() {
	m.from_status = nil
}

// SetToStatus sets the "to_status" field.
func (m *PatternAuditMutation) SetToStatus(s string) {
	m.to_status = &s
}

// ToStatus returns the value of the "to_status" field in the mutation.
func (m *PatternAuditMutation) ToStatus() (r string, exists bool) {
	v := m.to_status
	if v == nil {
		return
	}
	return *v, true
}

// OldToStatus returns the old "to_status" field's value of the PatternAudit entity.
// If the PatternAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternAuditMutation) OldToStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToStatus: %w", err)
	}
	return oldValue.ToStatus, nil
}

// ResetToStatus resets all changes to the "to_status" field.
func (m *PatternAuditMutation) ResetToStatus() {
	m.to_status = nil
}

// SetTrigger sets the "trigger" field.
func (m *PatternAuditMutation) SetTrigger(s string) {
	m.trigger = &s
}

// Trigger returns the value of the "trigger" field in the mutation.
func (m *PatternAuditMutation) Trigger() (r string, exists bool) {
	v := m.trigger
	if v == nil {
		return
	}
	return *v, true
}

// OldTrigger returns the old "trigger" field's value of the PatternAudit entity.
// If the PatternAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternAuditMutation) OldTrigger(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrigger is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrigger requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrigger: %w", err)
	}
	return oldValue.Trigger, nil
}

// ResetTrigger resets all changes to the "trigger" field.
func (m *PatternAuditMutation) ResetTrigger() {
	m.trigger = nil
}

// SetReason sets the "reason" field.
func (m *PatternAuditMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *PatternAuditMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the PatternAudit entity.
// If the PatternAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternAuditMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *PatternAuditMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[patternaudit.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *PatternAuditMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[patternaudit.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *PatternAuditMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, patternaudit.FieldReason)
}

// SetEvidenceSnapshot sets the "evidence_snapshot" field.
func (m *PatternAuditMutation) SetEvidenceSnapshot(value map[string]interface{}) {
	m.evidence_snapshot = &value
}

// EvidenceSnapshot returns the value of the "evidence_snapshot" field in the mutation.
func (m *PatternAuditMutation) EvidenceSnapshot() (r map[string]interface{}, exists bool) {
	v := m.evidence_snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidenceSnapshot returns the old "evidence_snapshot" field's value of the PatternAudit entity.
// If the PatternAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternAuditMutation) OldEvidenceSnapshot(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidenceSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidenceSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidenceSnapshot: %w", err)
	}
	return oldValue.EvidenceSnapshot, nil
}

// ClearEvidenceSnapshot clears the value of the "evidence_snapshot" field.
func (m *PatternAuditMutation) ClearEvidenceSnapshot() {
	m.evidence_snapshot = nil
	m.clearedFields[patternaudit.FieldEvidenceSnapshot] = struct{}{}
}

// EvidenceSnapshotCleared returns if the "evidence_snapshot" field was cleared in this mutation.
func (m *PatternAuditMutation) EvidenceSnapshotCleared() bool {
	_, ok := m.clearedFields[patternaudit.FieldEvidenceSnapshot]
	return ok
}

// ResetEvidenceSnapshot resets all changes to the "evidence_snapshot" field.
func (m *PatternAuditMutation) ResetEvidenceSnapshot() {
	m.evidence_snapshot = nil
	delete(m.clearedFields, patternaudit.FieldEvidenceSnapshot)
}

// SetCorrelationID sets the "correlation_id" field.
func (m *PatternAuditMutation) SetCorrelationID(s string) {
	m.correlation_id = &s
}

// CorrelationID returns the value of the "correlation_id" field in the mutation.
func (m *PatternAuditMutation) CorrelationID() (r string, exists bool) {
	v := m.correlation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationID returns the old "correlation_id" field's value of the PatternAudit entity.
// If the PatternAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternAuditMutation) OldCorrelationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationID: %w", err)
	}
	return oldValue.CorrelationID, nil
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (m *PatternAuditMutation) ClearCorrelationID() {
	m.correlation_id = nil
	m.clearedFields[patternaudit.FieldCorrelationID] = struct{}{}
}

// CorrelationIDCleared returns if the "correlation_id" field was cleared in this mutation.
func (m *PatternAuditMutation) CorrelationIDCleared() bool {
	_, ok := m.clearedFields[patternaudit.FieldCorrelationID]
	return ok
}

// ResetCorrelationID resets all changes to the "correlation_id" field.
func (m *PatternAuditMutation) ResetCorrelationID() {
	m.correlation_id = nil
	delete(m.clearedFields, patternaudit.FieldCorrelationID)
}

// SetCreatedAt sets the "created_at" field.
func (m *PatternAuditMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PatternAuditMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PatternAudit entity.
// If the PatternAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternAuditMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PatternAuditMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearPattern clears the "pattern" edge to the Pattern entity.
func (m *PatternAuditMutation) ClearPattern() {
	m.clearedpattern = true
	m.clearedFields[patternaudit.FieldPatternID] = struct{}{}
}

// PatternCleared reports if the "pattern" edge to the Pattern entity was cleared.
func (m *PatternAuditMutation) PatternCleared() bool {
	return m.clearedpattern
}

// PatternIDs returns the "pattern" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PatternID instead. It exists only for internal usage by the builders.
func (m *PatternAuditMutation) PatternIDs() (ids []string) {
	if id := m.pattern; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPattern resets all changes to the "pattern" edge.
func (m *PatternAuditMutation) ResetPattern() {
	m.pattern = nil
	m.clearedpattern = false
}

// Where appends a list predicates to the PatternAuditMutation builder.
func (m *PatternAuditMutation) Where(ps ...predicate.PatternAudit) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PatternAuditMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PatternAuditMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PatternAudit, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PatternAuditMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PatternAuditMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PatternAudit).
func (m *PatternAuditMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PatternAuditMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.pattern != nil {
		fields = append(fields, patternaudit.FieldPatternID)
	}
	if m.from_status != nil {
		fields = append(fields, patternaudit.FieldFromStatus)
	}
	if m.to_status != nil {
		fields = append(fields, patternaudit.FieldToStatus)
	}
	if m.trigger != nil {
		fields = append(fields, patternaudit.FieldTrigger)
	}
	if m.reason != nil {
		fields = append(fields, patternaudit.FieldReason)
	}
	if m.evidence_snapshot != nil {
		fields = append(fields, patternaudit.FieldEvidenceSnapshot)
	}
	if m.correlation_id != nil {
		fields = append(fields, patternaudit.FieldCorrelationID)
	}
	if m.created_at != nil {
		fields = append(fields, patternaudit.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PatternAuditMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case patternaudit.FieldPatternID:
		return m.PatternID()
	case patternaudit.FieldFromStatus:
		return m.FromStatus()
	case patternaudit.FieldToStatus:
		return m.ToStatus()
	case patternaudit.FieldTrigger:
		return m.Trigger()
	case patternaudit.FieldReason:
		return m.Reason()
	case patternaudit.FieldEvidenceSnapshot:
		return m.EvidenceSnapshot()
	case patternaudit.FieldCorrelationID:
		return m.CorrelationID()
	case patternaudit.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PatternAuditMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case patternaudit.FieldPatternID:
		return m.OldPatternID(ctx)
	case patternaudit.FieldFromStatus:
		return m.OldFromStatus(ctx)
	case patternaudit.FieldToStatus:
		return m.OldToStatus(ctx)
	case patternaudit.FieldTrigger:
		return m.OldTrigger(ctx)
	case patternaudit.FieldReason:
		return m.OldReason(ctx)
	case patternaudit.FieldEvidenceSnapshot:
		return m.OldEvidenceSnapshot(ctx)
	case patternaudit.FieldCorrelationID:
		return m.OldCorrelationID(ctx)
	case patternaudit.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PatternAudit field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatternAuditMutation) SetField(name string, value ent.Value) error {
	switch name {
	case patternaudit.FieldPatternID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatternID(v)
		return nil
	case patternaudit.FieldFromStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromStatus(v)
		return nil
	case patternaudit.FieldToStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToStatus(v)
		return nil
	case patternaudit.FieldTrigger:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrigger(v)
		return nil
	case patternaudit.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case patternaudit.FieldEvidenceSnapshot:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidenceSnapshot(v)
		return nil
	case patternaudit.FieldCorrelationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationID(v)
		return nil
	case patternaudit.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PatternAudit field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PatternAuditMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PatternAuditMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatternAuditMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PatternAudit numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PatternAuditMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(patternaudit.FieldReason) {
		fields = append(fields, patternaudit.FieldReason)
	}
	if m.FieldCleared(patternaudit.FieldEvidenceSnapshot) {
		fields = append(fields, patternaudit.FieldEvidenceSnapshot)
	}
	if m.FieldCleared(patternaudit.FieldCorrelationID) {
		fields = append(fields, patternaudit.FieldCorrelationID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PatternAuditMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PatternAuditMutation) ClearField(name string) error {
	switch name {
	case patternaudit.FieldReason:
		m.ClearReason()
		return nil
	case patternaudit.FieldEvidenceSnapshot:
		m.ClearEvidenceSnapshot()
		return nil
	case patternaudit.FieldCorrelationID:
		m.ClearCorrelationID()
		return nil
	}
	return fmt.Errorf("unknown PatternAudit nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PatternAuditMutation) ResetField(name string) error {
	switch name {
	case patternaudit.FieldPatternID:
		m.ResetPatternID()
		return nil
	case patternaudit.FieldFromStatus:
		m.ResetFromStatus()
		return nil
	case patternaudit.FieldToStatus:
		m.ResetToStatus()
		return nil
	case patternaudit.FieldTrigger:
		m.ResetTrigger()
		return nil
	case patternaudit.FieldReason:
		m.ResetReason()
		return nil
	case patternaudit.FieldEvidenceSnapshot:
		m.ResetEvidenceSnapshot()
		return nil
	case patternaudit.FieldCorrelationID:
		m.ResetCorrelationID()
		return nil
	case patternaudit.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PatternAudit field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PatternAuditMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.pattern != nil {
		edges = append(edges, patternaudit.EdgePattern)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PatternAuditMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case patternaudit.EdgePattern:
		if id := m.pattern; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PatternAuditMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PatternAuditMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PatternAuditMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpattern {
		edges = append(edges, patternaudit.EdgePattern)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PatternAuditMutation) EdgeCleared(name string) bool {
	switch name {
	case patternaudit.EdgePattern:
		return m.clearedpattern
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PatternAuditMutation) ClearEdge(name string) error {
	switch name {
	case patternaudit.EdgePattern:
		m.ClearPattern()
		return nil
	}
	return fmt.Errorf("unknown PatternAudit unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PatternAuditMutation) ResetEdge(name string) error {
	switch name {
	case patternaudit.EdgePattern:
		m.ResetPattern()
		return nil
	}
	return fmt.Errorf("unknown PatternAudit edge %s", name)
}

// PatternDisableMutation represents an operation that mutates the PatternDisable nodes in the graph.
type PatternDisableMutation struct {
	config
	op             Op
	typ            string
	id             *int
	action         *patterndisable.Action
	reason         *patterndisable.Reason
	detail         *string
	disabled_by    *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	pattern        *string
	clearedpattern bool
	done           bool
	oldValue       func(context.Context) (*PatternDisable, error)
	predicates     []predicate.PatternDisable
}

var _ ent.Mutation = (*PatternDisableMutation)(nil)

// patterndisableOption allows management of the mutation configuration using functional options.
type patterndisableOption func(*PatternDisableMutation)

// newPatternDisableMutation creates new mutation for the PatternDisable entity.
func newPatternDisableMutation(c config, op Op, opts ...patterndisableOption) *PatternDisableMutation {
	m := &PatternDisableMutation{
		config:        c,
		op:            op,
		typ:           TypePatternDisable,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPatternDisableID sets the ID field of the mutation.
func withPatternDisableID(id int) patterndisableOption {
	return func(m *PatternDisableMutation) {
		var (
			err   error
			once  sync.Once
			value *PatternDisable
		)
		m.oldValue = func(ctx context.Context) (*PatternDisable, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PatternDisable.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPatternDisable sets the old PatternDisable of the mutation.
func withPatternDisable(node *PatternDisable) patterndisableOption {
	return func(m *PatternDisableMutation) {
		m.oldValue = func(context.Context) (*PatternDisable, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PatternDisableMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PatternDisableMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PatternDisableMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PatternDisableMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PatternDisable.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPatternID sets the "pattern_id" field.
func (m *PatternDisableMutation) SetPatternID(s string) {
	m.pattern = &s
}

// PatternID returns the value of the "pattern_id" field in the mutation.
func (m *PatternDisableMutation) PatternID() (r string, exists bool) {
	v := m.pattern
	if v == nil {
		return
	}
	return *v, true
}

// OldPatternID returns the old "pattern_id" field's value of the PatternDisable entity.
// If the PatternDisable object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternDisableMutation) OldPatternID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatternID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatternID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatternID: %w", err)
	}
	return oldValue.PatternID, nil
}

// ResetPatternID resets all changes to the "pattern_id" field.
func (m *PatternDisableMutation) ResetPatternID() {
	m.pattern = nil
}

// SetAction sets the "action" field.
func (m *PatternDisableMutation) SetAction(pa patterndisable.Action) {
	m.action = &pa
}

// Action returns the value of the "action" field in the mutation.
func (m *PatternDisableMutation) Action() (r patterndisable.Action, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the PatternDisable entity.
// If the PatternDisable object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternDisableMutation) OldAction(ctx context.Context) (v patterndisable.Action, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *PatternDisableMutation) ResetAction() {
	m.action = nil
}

// SetReason sets the "reason" field.
func (m *PatternDisableMutation) SetReason(pa patterndisable.Reason) {
	m.reason = &pa
}

// Reason returns the value of the "reason" field in the mutation.
func (m *PatternDisableMutation) Reason() (r patterndisable.Reason, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the PatternDisable entity.
// If the PatternDisable object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternDisableMutation) OldReason(ctx context.Context) (v patterndisable.Reason, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *PatternDisableMutation) ResetReason() {
	m.reason = nil
}

// SetDetail sets the "detail" field.
func (m *PatternDisableMutation) SetDetail(s string) {
	m.detail = &s
}

// Detail returns the value of the "detail" field in the mutation.
func (m *PatternDisableMutation) Detail() (r string, exists bool) {
	v := m.detail
	if v == nil {
		return
	}
	return *v, true
}

// OldDetail returns the old "detail" field's value of the PatternDisable entity.
// If the PatternDisable object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternDisableMutation) OldDetail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetail: %w", err)
	}
	return oldValue.Detail, nil
}

// ClearDetail clears the value of the "detail" field.
func (m *PatternDisableMutation) ClearDetail() {
	m.detail = nil
	m.clearedFields[patterndisable.FieldDetail] = struct{}{}
}

// DetailCleared returns if the "detail" field was cleared in this mutation.
func (m *PatternDisableMutation) DetailCleared() bool {
	_, ok := m.clearedFields[patterndisable.FieldDetail]
	return ok
}

// ResetDetail resets all changes to the "detail" field.
func (m *PatternDisableMutation) ResetDetail() {
	m.detail = nil
	delete(m.clearedFields, patterndisable.FieldDetail)
}

// SetDisabledBy sets the "disabled_by" field.
func (m *PatternDisableMutation) SetDisabledBy(s string) {
	m.disabled_by = &s
}

// DisabledBy returns the value of the "disabled_by" field in the mutation.
func (m *PatternDisableMutation) DisabledBy() (r string, exists bool) {
	v := m.disabled_by
	if v == nil {
		return
	}
	return *v, true
}

// OldDisabledBy returns the old "disabled_by" field's value of the PatternDisable entity.
// If the PatternDisable object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternDisableMutation) OldDisabledBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisabledBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisabledBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisabledBy: %w", err)
	}
	return oldValue.DisabledBy, nil
}

// ResetDisabledBy resets all changes to the "disabled_by" field.
func (m *PatternDisableMutation) ResetDisabledBy() {
	m.disabled_by = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PatternDisableMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PatternDisableMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PatternDisable entity.
// If the PatternDisable object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternDisableMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PatternDisableMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearPattern clears the "pattern" edge to the Pattern entity.
func (m *PatternDisableMutation) ClearPattern() {
	m.clearedpattern = true
	m.clearedFields[patterndisable.FieldPatternID] = struct{}{}
}

// PatternCleared reports if the "pattern" edge to the Pattern entity was cleared.
func (m *PatternDisableMutation) PatternCleared() bool {
	return m.clearedpattern
}

// PatternIDs returns the "pattern" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PatternID instead. It exists only for internal usage by the builders.
func (m *PatternDisableMutation) PatternIDs() (ids []string) {
	if id := m.pattern; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPattern resets all changes to the "pattern" edge.
func (m *PatternDisableMutation) ResetPattern() {
	m.pattern = nil
	m.clearedpattern = false
}

// Where appends a list predicates to the PatternDisableMutation builder.
func (m *PatternDisableMutation) Where(ps ...predicate.PatternDisable) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PatternDisableMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PatternDisableMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PatternDisable, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PatternDisableMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PatternDisableMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PatternDisable).
func (m *PatternDisableMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PatternDisableMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.pattern != nil {
		fields = append(fields, patterndisable.FieldPatternID)
	}
	if m.action != nil {
		fields = append(fields, patterndisable.FieldAction)
	}
	if m.reason != nil {
		fields = append(fields, patterndisable.FieldReason)
	}
	if m.detail != nil {
		fields = append(fields, patterndisable.FieldDetail)
	}
	if m.disabled_by != nil {
		fields = append(fields, patterndisable.FieldDisabledBy)
	}
	if m.created_at != nil {
		fields = append(fields, patterndisable.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PatternDisableMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case patterndisable.FieldPatternID:
		return m.PatternID()
	case patterndisable.FieldAction:
		return m.Action()
	case patterndisable.FieldReason:
		return m.Reason()
	case patterndisable.FieldDetail:
		return m.Detail()
	case patterndisable.FieldDisabledBy:
		return m.DisabledBy()
	case patterndisable.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PatternDisableMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case patterndisable.FieldPatternID:
		return m.OldPatternID(ctx)
	case patterndisable.FieldAction:
		return m.OldAction(ctx)
	case patterndisable.FieldReason:
		return m.OldReason(ctx)
	case patterndisable.FieldDetail:
		return m.OldDetail(ctx)
	case patterndisable.FieldDisabledBy:
		return m.OldDisabledBy(ctx)
	case patterndisable.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PatternDisable field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatternDisableMutation) SetField(name string, value ent.Value) error {
	switch name {
	case patterndisable.FieldPatternID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatternID(v)
		return nil
	case patterndisable.FieldAction:
		v, ok := value.(patterndisable.Action)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case patterndisable.FieldReason:
		v, ok := value.(patterndisable.Reason)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case patterndisable.FieldDetail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetail(v)
		return nil
	case patterndisable.FieldDisabledBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisabledBy(v)
		return nil
	case patterndisable.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PatternDisable field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PatternDisableMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PatternDisableMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatternDisableMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PatternDisable numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PatternDisableMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(patterndisable.FieldDetail) {
		fields = append(fields, patterndisable.FieldDetail)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PatternDisableMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PatternDisableMutation) ClearField(name string) error {
	switch name {
	case patterndisable.FieldDetail:
		m.ClearDetail()
		return nil
	}
	return fmt.Errorf("unknown PatternDisable nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PatternDisableMutation) ResetField(name string) error {
	switch name {
	case patterndisable.FieldPatternID:
		m.ResetPatternID()
		return nil
	case patterndisable.FieldAction:
		m.ResetAction()
		return nil
	case patterndisable.FieldReason:
		m.ResetReason()
		return nil
	case patterndisable.FieldDetail:
		m.ResetDetail()
		return nil
	case patterndisable.FieldDisabledBy:
		m.ResetDisabledBy()
		return nil
	case patterndisable.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PatternDisable field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PatternDisableMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.pattern != nil {
		edges = append(edges, patterndisable.EdgePattern)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PatternDisableMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case patterndisable.EdgePattern:
		if id := m.pattern; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PatternDisableMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PatternDisableMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PatternDisableMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpattern {
		edges = append(edges, patterndisable.EdgePattern)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PatternDisableMutation) EdgeCleared(name string) bool {
	switch name {
	case patterndisable.EdgePattern:
		return m.clearedpattern
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PatternDisableMutation) ClearEdge(name string) error {
	switch name {
	case patterndisable.EdgePattern:
		m.ClearPattern()
		return nil
	}
	return fmt.Errorf("unknown PatternDisable unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PatternDisableMutation) ResetEdge(name string) error {
	switch name {
	case patterndisable.EdgePattern:
		m.ResetPattern()
		return nil
	}
	return fmt.Errorf("unknown PatternDisable edge %s", name)
}

// PatternInjectionMutation represents an operation that mutates the PatternInjection nodes in the graph.
type PatternInjectionMutation struct {
	config
	op             Op
	typ            string
	id             *string
	session_id     *string
	cohort         *string
	assigned_at    *time.Time
	clearedFields  map[string]struct{}
	pattern        *string
	clearedpattern bool
	done           bool
	oldValue       func(context.Context) (*PatternInjection, error)
	predicates     []predicate.PatternInjection
}

var _ ent.Mutation = (*PatternInjectionMutation)(nil)

// patterninjectionOption allows management of the mutation configuration using functional options.
type patterninjectionOption func(*PatternInjectionMutation)

// newPatternInjectionMutation creates new mutation for the PatternInjection entity.
func newPatternInjectionMutation(c config, op Op, opts ...patterninjectionOption) *PatternInjectionMutation {
	m := &PatternInjectionMutation{
		config:        c,
		op:            op,
		typ:           TypePatternInjection,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPatternInjectionID sets the ID field of the mutation.
func withPatternInjectionID(id string) patterninjectionOption {
	return func(m *PatternInjectionMutation) {
		var (
			err   error
			once  sync.Once
			value *PatternInjection
		)
		m.oldValue = func(ctx context.Context) (*PatternInjection, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PatternInjection.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPatternInjection sets the old PatternInjection of the mutation.
func withPatternInjection(node *PatternInjection) patterninjectionOption {
	return func(m *PatternInjectionMutation) {
		m.oldValue = func(context.Context) (*PatternInjection, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PatternInjectionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PatternInjectionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PatternInjection entities.
func (m *PatternInjectionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PatternInjectionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PatternInjectionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PatternInjection.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPatternID sets the "pattern_id" field.
func (m *PatternInjectionMutation) SetPatternID(s string) {
	m.pattern = &s
}

// PatternID returns the value of the "pattern_id" field in the mutation.
func (m *PatternInjectionMutation) PatternID() (r string, exists bool) {
	v := m.pattern
	if v == nil {
		return
	}
	return *v, true
}

// OldPatternID returns the old "pattern_id" field's value of the PatternInjection entity.
// If the PatternInjection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternInjectionMutation) OldPatternID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatternID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatternID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatternID: %w", err)
	}
	return oldValue.PatternID, nil
}

// ResetPatternID resets all changes to the "pattern_id" field.
func (m *PatternInjectionMutation) ResetPatternID() {
	m.pattern = nil
}

// SetSessionID sets the "session_id" field.
func (m *PatternInjectionMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *PatternInjectionMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the PatternInjection entity.
// If the PatternInjection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternInjectionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *PatternInjectionMutation) ResetSessionID() {
	m.session_id = nil
}

// SetCohort sets the "cohort" field.
func (m *PatternInjectionMutation) SetCohort(s string) {
	m.cohort = &s
}

// Cohort returns the value of the "cohort" field in the mutation.
func (m *PatternInjectionMutation) Cohort() (r string, exists bool) {
	v := m.cohort
	if v == nil {
		return
	}
	return *v, true
}

// OldCohort returns the old "cohort" field's value of the PatternInjection entity.
// If the PatternInjection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternInjectionMutation) OldCohort(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCohort is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCohort requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCohort: %w", err)
	}
	return oldValue.Cohort, nil
}

// ResetCohort resets all changes to the "cohort" field.
func (m *PatternInjectionMutation) ResetCohort() {
	m.cohort = nil
}

// SetAssignedAt sets the "assigned_at" field.
func (m *PatternInjectionMutation) SetAssignedAt(t time.Time) {
	m.assigned_at = &t
}

// AssignedAt returns the value of the "assigned_at" field in the mutation.
func (m *PatternInjectionMutation) AssignedAt() (r time.Time, exists bool) {
	v := m.assigned_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedAt returns the old "assigned_at" field's value of the PatternInjection entity.
// If the PatternInjection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatternInjectionMutation) OldAssignedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedAt: %w", err)
	}
	return oldValue.AssignedAt, nil
}

// ResetAssignedAt resets all changes to the "assigned_at" field.
func (m *PatternInjectionMutation) ResetAssignedAt() {
	m.assigned_at = nil
}

// ClearPattern clears the "pattern" edge to the Pattern entity.
func (m *PatternInjectionMutation) ClearPattern() {
	m.clearedpattern = true
	m.clearedFields[patterninjection.FieldPatternID] = struct{}{}
}

// PatternCleared reports if the "pattern" edge to the Pattern entity was cleared.
func (m *PatternInjectionMutation) PatternCleared() bool {
	return m.clearedpattern
}

// PatternIDs returns the "pattern" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PatternID instead. It exists only for internal usage by the builders.
func (m *PatternInjectionMutation) PatternIDs() (ids []string) {
	if id := m.pattern; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPattern resets all changes to the "pattern" edge.
func (m *PatternInjectionMutation) ResetPattern() {
	m.pattern = nil
	m.clearedpattern = false
}

// Where appends a list predicates to the PatternInjectionMutation builder.
func (m *PatternInjectionMutation) Where(ps ...predicate.PatternInjection) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PatternInjectionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PatternInjectionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PatternInjection, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PatternInjectionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PatternInjectionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PatternInjection).
func (m *PatternInjectionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PatternInjectionMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.pattern != nil {
		fields = append(fields, patterninjection.FieldPatternID)
	}
	if m.session_id != nil {
		fields = append(fields, patterninjection.FieldSessionID)
	}
	if m.cohort != nil {
		fields = append(fields, patterninjection.FieldCohort)
	}
	if m.assigned_at != nil {
		fields = append(fields, patterninjection.FieldAssignedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PatternInjectionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case patterninjection.FieldPatternID:
		return m.PatternID()
	case patterninjection.FieldSessionID:
		return m.SessionID()
	case patterninjection.FieldCohort:
		return m.Cohort()
	case patterninjection.FieldAssignedAt:
		return m.AssignedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PatternInjectionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case patterninjection.FieldPatternID:
		return m.OldPatternID(ctx)
	case patterninjection.FieldSessionID:
		return m.OldSessionID(ctx)
	case patterninjection.FieldCohort:
		return m.OldCohort(ctx)
	case patterninjection.FieldAssignedAt:
		return m.OldAssignedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PatternInjection field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatternInjectionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case patterninjection.FieldPatternID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatternID(v)
		return nil
	case patterninjection.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case patterninjection.FieldCohort:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCohort(v)
		return nil
	case patterninjection.FieldAssignedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PatternInjection field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PatternInjectionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PatternInjectionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatternInjectionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PatternInjection numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PatternInjectionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PatternInjectionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PatternInjectionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PatternInjection nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PatternInjectionMutation) ResetField(name string) error {
	switch name {
	case patterninjection.FieldPatternID:
		m.ResetPatternID()
		return nil
	case patterninjection.FieldSessionID:
		m.ResetSessionID()
		return nil
	case patterninjection.FieldCohort:
		m.ResetCohort()
		return nil
	case patterninjection.FieldAssignedAt:
		m.ResetAssignedAt()
		return nil
	}
	return fmt.Errorf("unknown PatternInjection field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PatternInjectionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.pattern != nil {
		edges = append(edges, patterninjection.EdgePattern)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PatternInjectionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case patterninjection.EdgePattern:
		if id := m.pattern; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PatternInjectionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PatternInjectionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PatternInjectionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpattern {
		edges = append(edges, patterninjection.EdgePattern)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PatternInjectionMutation) EdgeCleared(name string) bool {
	switch name {
	case patterninjection.EdgePattern:
		return m.clearedpattern
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PatternInjectionMutation) ClearEdge(name string) error {
	switch name {
	case patterninjection.EdgePattern:
		m.ClearPattern()
		return nil
	}
	return fmt.Errorf("unknown PatternInjection unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PatternInjectionMutation) ResetEdge(name string) error {
	switch name {
	case patterninjection.EdgePattern:
		m.ResetPattern()
		return nil
	}
	return fmt.Errorf("unknown PatternInjection edge %s", name)
}

// SessionOutcomeMutation represents an operation that mutates the SessionOutcome nodes in the graph.
type SessionOutcomeMutation struct {
	config
	op               Op
	typ              string
	id               *int
	event_id         *string
	session_id       *string
	outcome          *sessionoutcome.Outcome
	was_advised      *bool
	was_used         *bool
	was_corrected    *bool
	quality_delta    *float64
	addquality_delta *float64
	occurred_at      *time.Time
	clearedFields    map[string]struct{}
	pattern          *string
	clearedpattern   bool
	done             bool
	oldValue         func(context.Context) (*SessionOutcome, error)
	predicates       []predicate.SessionOutcome
}

var _ ent.Mutation = (*SessionOutcomeMutation)(nil)

// sessionoutcomeOption allows management of the mutation configuration using functional options.
type sessionoutcomeOption func(*SessionOutcomeMutation)

// newSessionOutcomeMutation creates new mutation for the SessionOutcome entity.
func newSessionOutcomeMutation(c config, op Op, opts ...sessionoutcomeOption) *SessionOutcomeMutation {
	m := &SessionOutcomeMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionOutcome,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionOutcomeID sets the ID field of the mutation.
func withSessionOutcomeID(id int) sessionoutcomeOption {
	return func(m *SessionOutcomeMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionOutcome
		)
		m.oldValue = func(ctx context.Context) (*SessionOutcome, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionOutcome.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionOutcome sets the old SessionOutcome of the mutation.
func withSessionOutcome(node *SessionOutcome) sessionoutcomeOption {
	return func(m *SessionOutcomeMutation) {
		m.oldValue = func(context.Context) (*SessionOutcome, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionOutcomeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionOutcomeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionOutcomeMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionOutcomeMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionOutcome.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventID sets the "event_id" field.
func (m *SessionOutcomeMutation) SetEventID(s string) {
	m.event_id = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *SessionOutcomeMutation) EventID() (r string, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the SessionOutcome entity.
// If the SessionOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionOutcomeMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *SessionOutcomeMutation) ResetEventID() {
	m.event_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *SessionOutcomeMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SessionOutcomeMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SessionOutcome entity.
// If the SessionOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionOutcomeMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SessionOutcomeMutation) ResetSessionID() {
	m.session_id = nil
}

// SetPatternID sets the "pattern_id" field.
func (m *SessionOutcomeMutation) SetPatternID(s string) {
	m.pattern = &s
}

// PatternID returns the value of the "pattern_id" field in the mutation.
func (m *SessionOutcomeMutation) PatternID() (r string, exists bool) {
	v := m.pattern
	if v == nil {
		return
	}
	return *v, true
}

// OldPatternID returns the old "pattern_id" field's value of the SessionOutcome entity.
// If the SessionOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionOutcomeMutation) OldPatternID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatternID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatternID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatternID: %w", err)
	}
	return oldValue.PatternID, nil
}

// ResetPatternID resets all changes to the "pattern_id" field.
func (m *SessionOutcomeMutation) ResetPatternID() {
	m.pattern = nil
}

// SetOutcome sets the "outcome" field.
func (m *SessionOutcomeMutation) SetOutcome(s sessionoutcome.Outcome) {
	m.outcome = &s
}

// Outcome returns the value of the "outcome" field in the mutation.
func (m *SessionOutcomeMutation) Outcome() (r sessionoutcome.Outcome, exists bool) {
	v := m.outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcome returns the old "outcome" field's value of the SessionOutcome entity.
// If the SessionOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionOutcomeMutation) OldOutcome(ctx context.Context) (v sessionoutcome.Outcome, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcome: %w", err)
	}
	return oldValue.Outcome, nil
}

// ResetOutcome resets all changes to the "outcome" field.
func (m *SessionOutcomeMutation) ResetOutcome() {
	m.outcome = nil
}

// SetWasAdvised sets the "was_advised" field.
func (m *SessionOutcomeMutation) SetWasAdvised(b bool) {
	m.was_advised = &b
}

// WasAdvised returns the value of the "was_advised" field in the mutation.
func (m *SessionOutcomeMutation) WasAdvised() (r bool, exists bool) {
	v := m.was_advised
	if v == nil {
		return
	}
	return *v, true
}

// OldWasAdvised returns the old "was_advised" field's value of the SessionOutcome entity.
// If the SessionOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionOutcomeMutation) OldWasAdvised(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWasAdvised is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWasAdvised requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWasAdvised: %w", err)
	}
	return oldValue.WasAdvised, nil
}

// ResetWasAdvised resets all changes to the "was_advised" field.
func (m *SessionOutcomeMutation) ResetWasAdvised() {
	m.was_advised = nil
}

// SetWasUsed sets the "was_used" field.
func (m *SessionOutcomeMutation) SetWasUsed(b bool) {
	m.was_used = &b
}

// WasUsed returns the value of the "was_used" field in the mutation.
func (m *SessionOutcomeMutation) WasUsed() (r bool, exists bool) {
	v := m.was_used
	if v == nil {
		return
	}
	return *v, true
}

// OldWasUsed returns the old "was_used" field's value of the SessionOutcome entity.
// If the SessionOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionOutcomeMutation) OldWasUsed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWasUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWasUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWasUsed: %w", err)
	}
	return oldValue.WasUsed, nil
}

// ResetWasUsed resets all changes to the "was_used" field.
func (m *SessionOutcomeMutation) ResetWasUsed() {
	m.was_used = nil
}

// SetWasCorrected sets the "was_corrected" field.
func (m *SessionOutcomeMutation) SetWasCorrected(b bool) {
	m.was_corrected = &b
}

// WasCorrected returns the value of the "was_corrected" field in the mutation.
func (m *SessionOutcomeMutation) WasCorrected() (r bool, exists bool) {
	v := m.was_corrected
	if v == nil {
		return
	}
	return *v, true
}

// OldWasCorrected returns the old "was_corrected" field's value of the SessionOutcome entity.
// If the SessionOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionOutcomeMutation) OldWasCorrected(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWasCorrected is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWasCorrected requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWasCorrected: %w", err)
	}
	return oldValue.WasCorrected, nil
}

// ResetWasCorrected resets all changes to the "was_corrected" field.
func (m *SessionOutcomeMutation) ResetWasCorrected() {
	m.was_corrected = nil
}

// SetQualityDelta sets the "quality_delta" field.
func (m *SessionOutcomeMutation) SetQualityDelta(f float64) {
	m.quality_delta = &f
	m.addquality_delta = nil
}

// QualityDelta returns the value of the "quality_delta" field in the mutation.
func (m *SessionOutcomeMutation) QualityDelta() (r float64, exists bool) {
	v := m.quality_delta
	if v == nil {
		return
	}
	return *v, true
}

// OldQualityDelta returns the old "quality_delta" field's value of the SessionOutcome entity.
// If the SessionOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionOutcomeMutation) OldQualityDelta(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQualityDelta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQualityDelta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQualityDelta: %w", err)
	}
	return oldValue.QualityDelta, nil
}

// AddQualityDelta adds f to the "quality_delta" field.
func (m *SessionOutcomeMutation) AddQualityDelta(f float64) {
	if m.addquality_delta != nil {
		*m.addquality_delta += f
	} else {
		m.addquality_delta = &f
	}
}

// AddedQualityDelta returns the value that was added to the "quality_delta" field in this mutation.
func (m *SessionOutcomeMutation) AddedQualityDelta() (r float64, exists bool) {
	v := m.addquality_delta
	if v == nil {
		return
	}
	return *v, true
}

// ResetQualityDelta resets all changes to the "quality_delta" field.
func (m *SessionOutcomeMutation) ResetQualityDelta() {
	m.quality_delta = nil
	m.addquality_delta = nil
}

// SetOccurredAt sets the "occurred_at" field.
func (m *SessionOutcomeMutation) SetOccurredAt(t time.Time) {
	m.occurred_at = &t
}

// OccurredAt returns the value of the "occurred_at" field in the mutation.
func (m *SessionOutcomeMutation) OccurredAt() (r time.Time, exists bool) {
	v := m.occurred_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOccurredAt returns the old "occurred_at" field's value of the SessionOutcome entity.
// If the SessionOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionOutcomeMutation) OldOccurredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccurredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccurredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccurredAt: %w", err)
	}
	return oldValue.OccurredAt, nil
}

// ResetOccurredAt resets all changes to the "occurred_at" field.
func (m *SessionOutcomeMutation) ResetOccurredAt() {
	m.occurred_at = nil
}

// ClearPattern clears the "pattern" edge to the Pattern entity.
func (m *SessionOutcomeMutation) ClearPattern() {
	m.clearedpattern = true
	m.clearedFields[sessionoutcome.FieldPatternID] = struct{}{}
}

// PatternCleared reports if the "pattern" edge to the Pattern entity was cleared.
func (m *SessionOutcomeMutation) PatternCleared() bool {
	return m.clearedpattern
}

// PatternIDs returns the "pattern" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PatternID instead. It exists only for internal usage by the builders.
func (m *SessionOutcomeMutation) PatternIDs() (ids []string) {
	if id := m.pattern; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPattern resets all changes to the "pattern" edge.
func (m *SessionOutcomeMutation) ResetPattern() {
	m.pattern = nil
	m.clearedpattern = false
}

// Where appends a list predicates to the SessionOutcomeMutation builder.
func (m *SessionOutcomeMutation) Where(ps ...predicate.SessionOutcome) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionOutcomeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionOutcomeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionOutcome, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionOutcomeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionOutcomeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionOutcome).
func (m *SessionOutcomeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionOutcomeMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.event_id != nil {
		fields = append(fields, sessionoutcome.FieldEventID)
	}
	if m.session_id != nil {
		fields = append(fields, sessionoutcome.FieldSessionID)
	}
	if m.pattern != nil {
		fields = append(fields, sessionoutcome.FieldPatternID)
	}
	if m.outcome != nil {
		fields = append(fields, sessionoutcome.FieldOutcome)
	}
	if m.was_advised != nil {
		fields = append(fields, sessionoutcome.FieldWasAdvised)
	}
	if m.was_used != nil {
		fields = append(fields, sessionoutcome.FieldWasUsed)
	}
	if m.was_corrected != nil {
		fields = append(fields, sessionoutcome.FieldWasCorrected)
	}
	if m.quality_delta != nil {
		fields = append(fields, sessionoutcome.FieldQualityDelta)
	}
	if m.occurred_at != nil {
		fields = append(fields, sessionoutcome.FieldOccurredAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionOutcomeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionoutcome.FieldEventID:
		return m.EventID()
	case sessionoutcome.FieldSessionID:
		return m.SessionID()
	case sessionoutcome.FieldPatternID:
		return m.PatternID()
	case sessionoutcome.FieldOutcome:
		return m.Outcome()
	case sessionoutcome.FieldWasAdvised:
		return m.WasAdvised()
	case sessionoutcome.FieldWasUsed:
		return m.WasUsed()
	case sessionoutcome.FieldWasCorrected:
		return m.WasCorrected()
	case sessionoutcome.FieldQualityDelta:
		return m.QualityDelta()
	case sessionoutcome.FieldOccurredAt:
		return m.OccurredAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionOutcomeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionoutcome.FieldEventID:
		return m.OldEventID(ctx)
	case sessionoutcome.FieldSessionID:
		return m.OldSessionID(ctx)
	case sessionoutcome.FieldPatternID:
		return m.OldPatternID(ctx)
	case sessionoutcome.FieldOutcome:
		return m.OldOutcome(ctx)
	case sessionoutcome.FieldWasAdvised:
		return m.OldWasAdvised(ctx)
	case sessionoutcome.FieldWasUsed:
		return m.OldWasUsed(ctx)
	case sessionoutcome.FieldWasCorrected:
		return m.OldWasCorrected(ctx)
	case sessionoutcome.FieldQualityDelta:
		return m.OldQualityDelta(ctx)
	case sessionoutcome.FieldOccurredAt:
		return m.OldOccurredAt(ctx)
	}
	return nil, fmt.Errorf("unknown SessionOutcome field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionOutcomeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionoutcome.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case sessionoutcome.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case sessionoutcome.FieldPatternID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatternID(v)
		return nil
	case sessionoutcome.FieldOutcome:
		v, ok := value.(sessionoutcome.Outcome)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcome(v)
		return nil
	case sessionoutcome.FieldWasAdvised:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWasAdvised(v)
		return nil
	case sessionoutcome.FieldWasUsed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWasUsed(v)
		return nil
	case sessionoutcome.FieldWasCorrected:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWasCorrected(v)
		return nil
	case sessionoutcome.FieldQualityDelta:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQualityDelta(v)
		return nil
	case sessionoutcome.FieldOccurredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccurredAt(v)
		return nil
	}
	return fmt.Errorf("unknown SessionOutcome field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionOutcomeMutation) AddedFields() []string {
	var fields []string
	if m.addquality_delta != nil {
		fields = append(fields, sessionoutcome.FieldQualityDelta)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionOutcomeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sessionoutcome.FieldQualityDelta:
		return m.AddedQualityDelta()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionOutcomeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sessionoutcome.FieldQualityDelta:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQualityDelta(v)
		return nil
	}
	return fmt.Errorf("unknown SessionOutcome numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionOutcomeMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionOutcomeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionOutcomeMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SessionOutcome nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionOutcomeMutation) ResetField(name string) error {
	switch name {
	case sessionoutcome.FieldEventID:
		m.ResetEventID()
		return nil
	case sessionoutcome.FieldSessionID:
		m.ResetSessionID()
		return nil
	case sessionoutcome.FieldPatternID:
		m.ResetPatternID()
		return nil
	case sessionoutcome.FieldOutcome:
		m.ResetOutcome()
		return nil
	case sessionoutcome.FieldWasAdvised:
		m.ResetWasAdvised()
		return nil
	case sessionoutcome.FieldWasUsed:
		m.ResetWasUsed()
		return nil
	case sessionoutcome.FieldWasCorrected:
		m.ResetWasCorrected()
		return nil
	case sessionoutcome.FieldQualityDelta:
		m.ResetQualityDelta()
		return nil
	case sessionoutcome.FieldOccurredAt:
		m.ResetOccurredAt()
		return nil
	}
	return fmt.Errorf("unknown SessionOutcome field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionOutcomeMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.pattern != nil {
		edges = append(edges, sessionoutcome.EdgePattern)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionOutcomeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sessionoutcome.EdgePattern:
		if id := m.pattern; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionOutcomeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionOutcomeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionOutcomeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpattern {
		edges = append(edges, sessionoutcome.EdgePattern)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionOutcomeMutation) EdgeCleared(name string) bool {
	switch name {
	case sessionoutcome.EdgePattern:
		return m.clearedpattern
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionOutcomeMutation) ClearEdge(name string) error {
	switch name {
	case sessionoutcome.EdgePattern:
		m.ClearPattern()
		return nil
	}
	return fmt.Errorf("unknown SessionOutcome unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionOutcomeMutation) ResetEdge(name string) error {
	switch name {
	case sessionoutcome.EdgePattern:
		m.ResetPattern()
		return nil
	}
	return fmt.Errorf("unknown SessionOutcome edge %s", name)
}
