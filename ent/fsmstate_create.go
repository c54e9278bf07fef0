// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/onex-platform/omniintelligence/ent/fsmstate"
)

// FSMStateCreate is the builder for creating a FSMState entity.
type FSMStateCreate struct {
	config
	mutation *FSMStateMutation
	hooks    []Hook
}

// SetFsmKind sets the "fsm_kind" field.
func (_c *FSMStateCreate) SetFsmKind(v fsmstate.FsmKind) *FSMStateCreate {
	_c.mutation.SetFsmKind(v)
	return _c
}

// SetEntityID sets the "entity_id" field.
func (_c *FSMStateCreate) SetEntityID(v string) *FSMStateCreate {
	_c.mutation.SetEntityID(v)
	return _c
}

// SetCurrentState sets the "current_state" field.
func (_c *FSMStateCreate) SetCurrentState(v string) *FSMStateCreate {
	_c.mutation.SetCurrentState(v)
	return _c
}

// SetEnteredAt sets the "entered_at" field.
func (_c *FSMStateCreate) SetEnteredAt(v time.Time) *FSMStateCreate {
	_c.mutation.SetEnteredAt(v)
	return _c
}

// SetNillableEnteredAt sets the "entered_at" field if the given value is not nil.
func (_c *FSMStateCreate) SetNillableEnteredAt(v *time.Time) *FSMStateCreate {
	if v != nil {
		_c.SetEnteredAt(*v)
	}
	return _c
}

// SetLastEventID sets the "last_event_id" field.
func (_c *FSMStateCreate) SetLastEventID(v string) *FSMStateCreate {
	_c.mutation.SetLastEventID(v)
	return _c
}

// SetNillableLastEventID sets the "last_event_id" field if the given value is not nil.
func (_c *FSMStateCreate) SetNillableLastEventID(v *string) *FSMStateCreate {
	if v != nil {
		_c.SetLastEventID(*v)
	}
	return _c
}

// Mutation returns the FSMStateMutation object of the builder.
func (_c *FSMStateCreate) Mutation() *FSMStateMutation {
	return _c.mutation
}

// Save creates the FSMState in the database.
func (_c *FSMStateCreate) Save(ctx context.Context) (*FSMState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FSMStateCreate) SaveX(ctx context.Context) *FSMState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FSMStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FSMStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FSMStateCreate) defaults() {
	if _, ok := _c.mutation.EnteredAt(); !ok {
		v := fsmstate.DefaultEnteredAt()
		_c.mutation.SetEnteredAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FSMStateCreate) check() error {
	if _, ok := _c.mutation.FsmKind(); !ok {
		return &ValidationError{Name: "fsm_kind", err: errors.New(`ent: missing required field "FSMState.fsm_kind"`)}
	}
	if v, ok := _c.mutation.FsmKind(); ok {
		if err := fsmstate.FsmKindValidator(v); err != nil {
			return &ValidationError{Name: "fsm_kind", err: fmt.Errorf(`ent: validator failed for field "FSMState.fsm_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EntityID(); !ok {
		return &ValidationError{Name: "entity_id", err: errors.New(`ent: missing required field "FSMState.entity_id"`)}
	}
	if _, ok := _c.mutation.CurrentState(); !ok {
		return &ValidationError{Name: "current_state", err: errors.New(`ent: missing required field "FSMState.current_state"`)}
	}
	if _, ok := _c.mutation.EnteredAt(); !ok {
		return &ValidationError{Name: "entered_at", err: errors.New(`ent: missing required field "FSMState.entered_at"`)}
	}
	return nil
}

func (_c *FSMStateCreate) sqlSave(ctx context.Context) (*FSMState, error) {
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

func (_c *FSMStateCreate) createSpec() (*FSMState, *sqlgraph.CreateSpec) {
	var (
		_node = &FSMState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(fsmstate.Table, sqlgraph.NewFieldSpec(fsmstate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.FsmKind(); ok {
		_spec.SetField(fsmstate.FieldFsmKind, field.TypeEnum, value)
		_node.FsmKind = value
	}
	if value, ok := _c.mutation.EntityID(); ok {
		_spec.SetField(fsmstate.FieldEntityID, field.TypeString, value)
		_node.EntityID = value
	}
	if value, ok := _c.mutation.CurrentState(); ok {
		_spec.SetField(fsmstate.FieldCurrentState, field.TypeString, value)
		_node.CurrentState = value
	}
	if value, ok := _c.mutation.EnteredAt(); ok {
		_spec.SetField(fsmstate.FieldEnteredAt, field.TypeTime, value)
		_node.EnteredAt = value
	}
	if value, ok := _c.mutation.LastEventID(); ok {
		_spec.SetField(fsmstate.FieldLastEventID, field.TypeString, value)
		_node.LastEventID = value
	}
	return _node, _spec
}

// FSMStateCreateBulk is the builder for creating many FSMState entities in bulk.
type FSMStateCreateBulk struct {
	config
	err      error
	builders []*FSMStateCreate
}

// Save creates the FSMState entities in the database.
func (_c *FSMStateCreateBulk) Save(ctx context.Context) ([]*FSMState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FSMState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FSMStateMutation)
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
func (_c *FSMStateCreateBulk) SaveX(ctx context.Context) []*FSMState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FSMStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FSMStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
