// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/onex-platform/omniintelligence/ent/pattern"
	"github.com/onex-platform/omniintelligence/ent/patterndisable"
)

// PatternDisableCreate is the builder for creating a PatternDisable entity.
type PatternDisableCreate struct {
	config
	mutation *PatternDisableMutation
	hooks    []Hook
}

// SetPatternID sets the "pattern_id" field.
func (_c *PatternDisableCreate) SetPatternID(v string) *PatternDisableCreate {
	_c.mutation.SetPatternID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *PatternDisableCreate) SetAction(v patterndisable.Action) *PatternDisableCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_c *PatternDisableCreate) SetNillableAction(v *patterndisable.Action) *PatternDisableCreate {
	if v != nil {
		_c.SetAction(*v)
	}
	return _c
}

// SetReason sets the "reason" field.
func (_c *PatternDisableCreate) SetReason(v patterndisable.Reason) *PatternDisableCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetDetail sets the "detail" field.
func (_c *PatternDisableCreate) SetDetail(v string) *PatternDisableCreate {
	_c.mutation.SetDetail(v)
	return _c
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_c *PatternDisableCreate) SetNillableDetail(v *string) *PatternDisableCreate {
	if v != nil {
		_c.SetDetail(*v)
	}
	return _c
}

// SetDisabledBy sets the "disabled_by" field.
func (_c *PatternDisableCreate) SetDisabledBy(v string) *PatternDisableCreate {
	_c.mutation.SetDisabledBy(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PatternDisableCreate) SetCreatedAt(v time.Time) *PatternDisableCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PatternDisableCreate) SetNillableCreatedAt(v *time.Time) *PatternDisableCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetPattern sets the "pattern" edge to the Pattern entity.
func (_c *PatternDisableCreate) SetPattern(v *Pattern) *PatternDisableCreate {
	return _c.SetPatternID(v.ID)
}

// Mutation returns the PatternDisableMutation object of the builder.
func (_c *PatternDisableCreate) Mutation() *PatternDisableMutation {
	return _c.mutation
}

// Save creates the PatternDisable in the database.
func (_c *PatternDisableCreate) Save(ctx context.Context) (*PatternDisable, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PatternDisableCreate) SaveX(ctx context.Context) *PatternDisable {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatternDisableCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatternDisableCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PatternDisableCreate) defaults() {
	if _, ok := _c.mutation.Action(); !ok {
		v := patterndisable.DefaultAction
		_c.mutation.SetAction(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := patterndisable.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PatternDisableCreate) check() error {
	if _, ok := _c.mutation.PatternID(); !ok {
		return &ValidationError{Name: "pattern_id", err: errors.New(`ent: missing required field "PatternDisable.pattern_id"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "PatternDisable.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := patterndisable.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "PatternDisable.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "PatternDisable.reason"`)}
	}
	if v, ok := _c.mutation.Reason(); ok {
		if err := patterndisable.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "PatternDisable.reason": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DisabledBy(); !ok {
		return &ValidationError{Name: "disabled_by", err: errors.New(`ent: missing required field "PatternDisable.disabled_by"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PatternDisable.created_at"`)}
	}
	if len(_c.mutation.PatternIDs()) == 0 {
		return &ValidationError{Name: "pattern", err: errors.New(`ent: missing required edge "PatternDisable.pattern"`)}
	}
	return nil
}

func (_c *PatternDisableCreate) sqlSave(ctx context.Context) (*PatternDisable, error) {
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

func (_c *PatternDisableCreate) createSpec() (*PatternDisable, *sqlgraph.CreateSpec) {
	var (
		_node = &PatternDisable{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(patterndisable.Table, sqlgraph.NewFieldSpec(patterndisable.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(patterndisable.FieldAction, field.TypeEnum, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(patterndisable.FieldReason, field.TypeEnum, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.Detail(); ok {
		_spec.SetField(patterndisable.FieldDetail, field.TypeString, value)
		_node.Detail = value
	}
	if value, ok := _c.mutation.DisabledBy(); ok {
		_spec.SetField(patterndisable.FieldDisabledBy, field.TypeString, value)
		_node.DisabledBy = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(patterndisable.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.PatternIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patterndisable.PatternTable,
			Columns: []string{patterndisable.PatternColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pattern.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PatternID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PatternDisableCreateBulk is the builder for creating many PatternDisable entities in bulk.
type PatternDisableCreateBulk struct {
	config
	err      error
	builders []*PatternDisableCreate
}

// Save creates the PatternDisable entities in the database.
func (_c *PatternDisableCreateBulk) Save(ctx context.Context) ([]*PatternDisable, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PatternDisable, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PatternDisableMutation)
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
func (_c *PatternDisableCreateBulk) SaveX(ctx context.Context) []*PatternDisable {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatternDisableCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatternDisableCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
