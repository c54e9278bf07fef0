// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/onex-platform/omniintelligence/ent/idempotencyrecord"
)

// IdempotencyRecordCreate is the builder for creating a IdempotencyRecord entity.
type IdempotencyRecordCreate struct {
	config
	mutation *IdempotencyRecordMutation
	hooks    []Hook
}

// SetEventID sets the "event_id" field.
func (_c *IdempotencyRecordCreate) SetEventID(v string) *IdempotencyRecordCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetHandlerName sets the "handler_name" field.
func (_c *IdempotencyRecordCreate) SetHandlerName(v string) *IdempotencyRecordCreate {
	_c.mutation.SetHandlerName(v)
	return _c
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (_c *IdempotencyRecordCreate) SetFirstSeenAt(v time.Time) *IdempotencyRecordCreate {
	_c.mutation.SetFirstSeenAt(v)
	return _c
}

// SetNillableFirstSeenAt sets the "first_seen_at" field if the given value is not nil.
func (_c *IdempotencyRecordCreate) SetNillableFirstSeenAt(v *time.Time) *IdempotencyRecordCreate {
	if v != nil {
		_c.SetFirstSeenAt(*v)
	}
	return _c
}

// SetResultHash sets the "result_hash" field.
func (_c *IdempotencyRecordCreate) SetResultHash(v string) *IdempotencyRecordCreate {
	_c.mutation.SetResultHash(v)
	return _c
}

// SetNillableResultHash sets the "result_hash" field if the given value is not nil.
func (_c *IdempotencyRecordCreate) SetNillableResultHash(v *string) *IdempotencyRecordCreate {
	if v != nil {
		_c.SetResultHash(*v)
	}
	return _c
}

// Mutation returns the IdempotencyRecordMutation object of the builder.
func (_c *IdempotencyRecordCreate) Mutation() *IdempotencyRecordMutation {
	return _c.mutation
}

// Save creates the IdempotencyRecord in the database.
func (_c *IdempotencyRecordCreate) Save(ctx context.Context) (*IdempotencyRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IdempotencyRecordCreate) SaveX(ctx context.Context) *IdempotencyRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IdempotencyRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IdempotencyRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IdempotencyRecordCreate) defaults() {
	if _, ok := _c.mutation.FirstSeenAt(); !ok {
		v := idempotencyrecord.DefaultFirstSeenAt()
		_c.mutation.SetFirstSeenAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IdempotencyRecordCreate) check() error {
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "IdempotencyRecord.event_id"`)}
	}
	if _, ok := _c.mutation.HandlerName(); !ok {
		return &ValidationError{Name: "handler_name", err: errors.New(`ent: missing required field "IdempotencyRecord.handler_name"`)}
	}
	if _, ok := _c.mutation.FirstSeenAt(); !ok {
		return &ValidationError{Name: "first_seen_at", err: errors.New(`ent: missing required field "IdempotencyRecord.first_seen_at"`)}
	}
	return nil
}

func (_c *IdempotencyRecordCreate) sqlSave(ctx context.Context) (*IdempotencyRecord, error) {
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

func (_c *IdempotencyRecordCreate) createSpec() (*IdempotencyRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &IdempotencyRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(idempotencyrecord.Table, sqlgraph.NewFieldSpec(idempotencyrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(idempotencyrecord.FieldEventID, field.TypeString, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.HandlerName(); ok {
		_spec.SetField(idempotencyrecord.FieldHandlerName, field.TypeString, value)
		_node.HandlerName = value
	}
	if value, ok := _c.mutation.FirstSeenAt(); ok {
		_spec.SetField(idempotencyrecord.FieldFirstSeenAt, field.TypeTime, value)
		_node.FirstSeenAt = value
	}
	if value, ok := _c.mutation.ResultHash(); ok {
		_spec.SetField(idempotencyrecord.FieldResultHash, field.TypeString, value)
		_node.ResultHash = value
	}
	return _node, _spec
}

// IdempotencyRecordCreateBulk is the builder for creating many IdempotencyRecord entities in bulk.
type IdempotencyRecordCreateBulk struct {
	config
	err      error
	builders []*IdempotencyRecordCreate
}

// Save creates the IdempotencyRecord entities in the database.
func (_c *IdempotencyRecordCreateBulk) Save(ctx context.Context) ([]*IdempotencyRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*IdempotencyRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IdempotencyRecordMutation)
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
func (_c *IdempotencyRecordCreateBulk) SaveX(ctx context.Context) []*IdempotencyRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IdempotencyRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IdempotencyRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
