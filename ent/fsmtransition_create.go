// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/onex-platform/omniintelligence/ent/fsmtransition"
)

// FSMTransitionCreate is the builder for creating a FSMTransition entity.
type FSMTransitionCreate struct {
	config
	mutation *FSMTransitionMutation
	hooks    []Hook
}

// SetFsmKind sets the "fsm_kind" field.
func (_c *FSMTransitionCreate) SetFsmKind(v fsmtransition.FsmKind) *FSMTransitionCreate {
	_c.mutation.SetFsmKind(v)
	return _c
}

// SetEntityID sets the "entity_id" field.
func (_c *FSMTransitionCreate) SetEntityID(v string) *FSMTransitionCreate {
	_c.mutation.SetEntityID(v)
	return _c
}

// SetFromState sets the "from_state" field.
func (_c *FSMTransitionCreate) SetFromState(v string) *FSMTransitionCreate {
	_c.mutation.SetFromState(v)
	return _c
}

// SetToState sets the "to_state" field.
func (_c *FSMTransitionCreate) SetToState(v string) *FSMTransitionCreate {
	_c.mutation.SetToState(v)
	return _c
}

// SetTrigger sets the "trigger" field.
func (_c *FSMTransitionCreate) SetTrigger(v string) *FSMTransitionCreate {
	_c.mutation.SetTrigger(v)
	return _c
}

// SetEventID sets the "event_id" field.
func (_c *FSMTransitionCreate) SetEventID(v string) *FSMTransitionCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_c *FSMTransitionCreate) SetNillableEventID(v *string) *FSMTransitionCreate {
	if v != nil {
		_c.SetEventID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FSMTransitionCreate) SetCreatedAt(v time.Time) *FSMTransitionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FSMTransitionCreate) SetNillableCreatedAt(v *time.Time) *FSMTransitionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the FSMTransitionMutation object of the builder.
func (_c *FSMTransitionCreate) Mutation() *FSMTransitionMutation {
	return _c.mutation
}

// Save creates the FSMTransition in the database.
func (_c *FSMTransitionCreate) Save(ctx context.Context) (*FSMTransition, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FSMTransitionCreate) SaveX(ctx context.Context) *FSMTransition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FSMTransitionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FSMTransitionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FSMTransitionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := fsmtransition.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FSMTransitionCreate) check() error {
	if _, ok := _c.mutation.FsmKind(); !ok {
		return &ValidationError{Name: "fsm_kind", err: errors.New(`ent: missing required field "FSMTransition.fsm_kind"`)}
	}
	if v, ok := _c.mutation.FsmKind(); ok {
		if err := fsmtransition.FsmKindValidator(v); err != nil {
			return &ValidationError{Name: "fsm_kind", err: fmt.Errorf(`ent: validator failed for field "FSMTransition.fsm_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EntityID(); !ok {
		return &ValidationError{Name: "entity_id", err: errors.New(`ent: missing required field "FSMTransition.entity_id"`)}
	}
	if _, ok := _c.mutation.FromState(); !ok {
		return &ValidationError{Name: "from_state", err: errors.New(`ent: missing required field "FSMTransition.from_state"`)}
	}
	if _, ok := _c.mutation.ToState(); !ok {
		return &ValidationError{Name: "to_state", err: errors.New(`ent: missing required field "FSMTransition.to_state"`)}
	}
	if _, ok := _c.mutation.Trigger(); !ok {
		return &ValidationError{Name: "trigger", err: errors.New(`ent: missing required field "FSMTransition.trigger"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FSMTransition.created_at"`)}
	}
	return nil
}

func (_c *FSMTransitionCreate) sqlSave(ctx context.Context) (*FSMTransition, error) {
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

func (_c *FSMTransitionCreate) createSpec() (*FSMTransition, *sqlgraph.CreateSpec) {
	var (
		_node = &FSMTransition{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(fsmtransition.Table, sqlgraph.NewFieldSpec(fsmtransition.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.FsmKind(); ok {
		_spec.SetField(fsmtransition.FieldFsmKind, field.TypeEnum, value)
		_node.FsmKind = value
	}
	if value, ok := _c.mutation.EntityID(); ok {
		_spec.SetField(fsmtransition.FieldEntityID, field.TypeString, value)
		_node.EntityID = value
	}
	if value, ok := _c.mutation.FromState(); ok {
		_spec.SetField(fsmtransition.FieldFromState, field.TypeString, value)
		_node.FromState = value
	}
	if value, ok := _c.mutation.ToState(); ok {
		_spec.SetField(fsmtransition.FieldToState, field.TypeString, value)
		_node.ToState = value
	}
	if value, ok := _c.mutation.Trigger(); ok {
		_spec.SetField(fsmtransition.FieldTrigger, field.TypeString, value)
		_node.Trigger = value
	}
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(fsmtransition.FieldEventID, field.TypeString, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(fsmtransition.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// FSMTransitionCreateBulk is the builder for creating many FSMTransition entities in bulk.
type FSMTransitionCreateBulk struct {
	config
	err      error
	builders []*FSMTransitionCreate
}

// Save creates the FSMTransition entities in the database.
func (_c *FSMTransitionCreateBulk) Save(ctx context.Context) ([]*FSMTransition, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FSMTransition, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FSMTransitionMutation)
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
func (_c *FSMTransitionCreateBulk) SaveX(ctx context.Context) []*FSMTransition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FSMTransitionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FSMTransitionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
