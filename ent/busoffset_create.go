// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/onex-platform/omniintelligence/ent/busoffset"
)

// BusOffsetCreate is the builder for creating a BusOffset entity.
type BusOffsetCreate struct {
	config
	mutation *BusOffsetMutation
	hooks    []Hook
}

// SetConsumerGroup sets the "consumer_group" field.
func (_c *BusOffsetCreate) SetConsumerGroup(v string) *BusOffsetCreate {
	_c.mutation.SetConsumerGroup(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *BusOffsetCreate) SetTopic(v string) *BusOffsetCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetPartition sets the "partition" field.
func (_c *BusOffsetCreate) SetPartition(v int) *BusOffsetCreate {
	_c.mutation.SetPartition(v)
	return _c
}

// SetCommitted sets the "committed" field.
func (_c *BusOffsetCreate) SetCommitted(v int) *BusOffsetCreate {
	_c.mutation.SetCommitted(v)
	return _c
}

// SetNillableCommitted sets the "committed" field if the given value is not nil.
func (_c *BusOffsetCreate) SetNillableCommitted(v *int) *BusOffsetCreate {
	if v != nil {
		_c.SetCommitted(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BusOffsetCreate) SetUpdatedAt(v time.Time) *BusOffsetCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BusOffsetCreate) SetNillableUpdatedAt(v *time.Time) *BusOffsetCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the BusOffsetMutation object of the builder.
func (_c *BusOffsetCreate) Mutation() *BusOffsetMutation {
	return _c.mutation
}

// Save creates the BusOffset in the database.
func (_c *BusOffsetCreate) Save(ctx context.Context) (*BusOffset, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BusOffsetCreate) SaveX(ctx context.Context) *BusOffset {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BusOffsetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BusOffsetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BusOffsetCreate) defaults() {
	if _, ok := _c.mutation.Committed(); !ok {
		v := busoffset.DefaultCommitted
		_c.mutation.SetCommitted(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := busoffset.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BusOffsetCreate) check() error {
	if _, ok := _c.mutation.ConsumerGroup(); !ok {
		return &ValidationError{Name: "consumer_group", err: errors.New(`ent: missing required field "BusOffset.consumer_group"`)}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "BusOffset.topic"`)}
	}
	if _, ok := _c.mutation.Partition(); !ok {
		return &ValidationError{Name: "partition", err: errors.New(`ent: missing required field "BusOffset.partition"`)}
	}
	if _, ok := _c.mutation.Committed(); !ok {
		return &ValidationError{Name: "committed", err: errors.New(`ent: missing required field "BusOffset.committed"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "BusOffset.updated_at"`)}
	}
	return nil
}

func (_c *BusOffsetCreate) sqlSave(ctx context.Context) (*BusOffset, error) {
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

func (_c *BusOffsetCreate) createSpec() (*BusOffset, *sqlgraph.CreateSpec) {
	var (
		_node = &BusOffset{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(busoffset.Table, sqlgraph.NewFieldSpec(busoffset.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ConsumerGroup(); ok {
		_spec.SetField(busoffset.FieldConsumerGroup, field.TypeString, value)
		_node.ConsumerGroup = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(busoffset.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Partition(); ok {
		_spec.SetField(busoffset.FieldPartition, field.TypeInt, value)
		_node.Partition = value
	}
	if value, ok := _c.mutation.Committed(); ok {
		_spec.SetField(busoffset.FieldCommitted, field.TypeInt, value)
		_node.Committed = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(busoffset.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// BusOffsetCreateBulk is the builder for creating many BusOffset entities in bulk.
type BusOffsetCreateBulk struct {
	config
	err      error
	builders []*BusOffsetCreate
}

// Save creates the BusOffset entities in the database.
func (_c *BusOffsetCreateBulk) Save(ctx context.Context) ([]*BusOffset, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BusOffset, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BusOffsetMutation)
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
func (_c *BusOffsetCreateBulk) SaveX(ctx context.Context) []*BusOffset {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BusOffsetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BusOffsetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
