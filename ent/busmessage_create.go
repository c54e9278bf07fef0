// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/onex-platform/omniintelligence/ent/busmessage"
)

// BusMessageCreate is the builder for creating a BusMessage entity.
type BusMessageCreate struct {
	config
	mutation *BusMessageMutation
	hooks    []Hook
}

// SetTopic sets the "topic" field.
func (_c *BusMessageCreate) SetTopic(v string) *BusMessageCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetPartition sets the "partition" field.
func (_c *BusMessageCreate) SetPartition(v int) *BusMessageCreate {
	_c.mutation.SetPartition(v)
	return _c
}

// SetKey sets the "key" field.
func (_c *BusMessageCreate) SetKey(v string) *BusMessageCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_c *BusMessageCreate) SetNillableKey(v *string) *BusMessageCreate {
	if v != nil {
		_c.SetKey(*v)
	}
	return _c
}

// SetEnvelope sets the "envelope" field.
func (_c *BusMessageCreate) SetEnvelope(v []byte) *BusMessageCreate {
	_c.mutation.SetEnvelope(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BusMessageCreate) SetCreatedAt(v time.Time) *BusMessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BusMessageCreate) SetNillableCreatedAt(v *time.Time) *BusMessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the BusMessageMutation object of the builder.
func (_c *BusMessageCreate) Mutation() *BusMessageMutation {
	return _c.mutation
}

// Save creates the BusMessage in the database.
func (_c *BusMessageCreate) Save(ctx context.Context) (*BusMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BusMessageCreate) SaveX(ctx context.Context) *BusMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BusMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BusMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BusMessageCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := busmessage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BusMessageCreate) check() error {
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "BusMessage.topic"`)}
	}
	if _, ok := _c.mutation.Partition(); !ok {
		return &ValidationError{Name: "partition", err: errors.New(`ent: missing required field "BusMessage.partition"`)}
	}
	if _, ok := _c.mutation.Envelope(); !ok {
		return &ValidationError{Name: "envelope", err: errors.New(`ent: missing required field "BusMessage.envelope"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BusMessage.created_at"`)}
	}
	return nil
}

func (_c *BusMessageCreate) sqlSave(ctx context.Context) (*BusMessage, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BusMessageCreate) createSpec() (*BusMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &BusMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(busmessage.Table, sqlgraph.NewFieldSpec(busmessage.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(busmessage.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Partition(); ok {
		_spec.SetField(busmessage.FieldPartition, field.TypeInt, value)
		_node.Partition = value
	}
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(busmessage.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.Envelope(); ok {
		_spec.SetField(busmessage.FieldEnvelope, field.TypeBytes, value)
		_node.Envelope = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(busmessage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// BusMessageCreateBulk is the builder for creating many BusMessage entities in bulk.
type BusMessageCreateBulk struct {
	config
	err      error
	builders []*BusMessageCreate
}

// Save creates the BusMessage entities in the database.
func (_c *BusMessageCreateBulk) Save(ctx context.Context) ([]*BusMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BusMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BusMessageMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BusMessageCreateBulk) SaveX(ctx context.Context) []*BusMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BusMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BusMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
