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
	"github.com/onex-platform/omniintelligence/ent/patterninjection"
)

// PatternInjectionCreate is the builder for creating a PatternInjection entity.
type PatternInjectionCreate struct {
	config
	mutation *PatternInjectionMutation
	hooks    []Hook
}

// SetPatternID sets the "pattern_id" field.
func (_c *PatternInjectionCreate) SetPatternID(v string) *PatternInjectionCreate {
	_c.mutation.SetPatternID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *PatternInjectionCreate) SetSessionID(v string) *PatternInjectionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetCohort sets the "cohort" field.
func (_c *PatternInjectionCreate) SetCohort(v string) *PatternInjectionCreate {
	_c.mutation.SetCohort(v)
	return _c
}

// SetNillableCohort sets the "cohort" field if the given value is not nil.
func (_c *PatternInjectionCreate) SetNillableCohort(v *string) *PatternInjectionCreate {
	if v != nil {
		_c.SetCohort(*v)
	}
	return _c
}

// SetAssignedAt sets the "assigned_at" field.
func (_c *PatternInjectionCreate) SetAssignedAt(v time.Time) *PatternInjectionCreate {
	_c.mutation.SetAssignedAt(v)
	return _c
}

// SetNillableAssignedAt sets the "assigned_at" field if the given value is not nil.
func (_c *PatternInjectionCreate) SetNillableAssignedAt(v *time.Time) *PatternInjectionCreate {
	if v != nil {
		_c.SetAssignedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PatternInjectionCreate) SetID(v string) *PatternInjectionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetPattern sets the "pattern" edge to the Pattern entity.
func (_c *PatternInjectionCreate) SetPattern(v *Pattern) *PatternInjectionCreate {
	return _c.SetPatternID(v.ID)
}

// Mutation returns the PatternInjectionMutation object of the builder.
func (_c *PatternInjectionCreate) Mutation() *PatternInjectionMutation {
	return _c.mutation
}

// Save creates the PatternInjection in the database.
func (_c *PatternInjectionCreate) Save(ctx context.Context) (*PatternInjection, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PatternInjectionCreate) SaveX(ctx context.Context) *PatternInjection {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatternInjectionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatternInjectionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PatternInjectionCreate) defaults() {
	if _, ok := _c.mutation.Cohort(); !ok {
		v := patterninjection.DefaultCohort
		_c.mutation.SetCohort(v)
	}
	if _, ok := _c.mutation.AssignedAt(); !ok {
		v := patterninjection.DefaultAssignedAt()
		_c.mutation.SetAssignedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PatternInjectionCreate) check() error {
	if _, ok := _c.mutation.PatternID(); !ok {
		return &ValidationError{Name: "pattern_id", err: errors.New(`ent: missing required field "PatternInjection.pattern_id"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "PatternInjection.session_id"`)}
	}
	if _, ok := _c.mutation.Cohort(); !ok {
		return &ValidationError{Name: "cohort", err: errors.New(`ent: missing required field "PatternInjection.cohort"`)}
	}
	if _, ok := _c.mutation.AssignedAt(); !ok {
		return &ValidationError{Name: "assigned_at", err: errors.New(`ent: missing required field "PatternInjection.assigned_at"`)}
	}
	if len(_c.mutation.PatternIDs()) == 0 {
		return &ValidationError{Name: "pattern", err: errors.New(`ent: missing required edge "PatternInjection.pattern"`)}
	}
	return nil
}

func (_c *PatternInjectionCreate) sqlSave(ctx context.Context) (*PatternInjection, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected PatternInjection.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PatternInjectionCreate) createSpec() (*PatternInjection, *sqlgraph.CreateSpec) {
	var (
		_node = &PatternInjection{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(patterninjection.Table, sqlgraph.NewFieldSpec(patterninjection.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(patterninjection.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Cohort(); ok {
		_spec.SetField(patterninjection.FieldCohort, field.TypeString, value)
		_node.Cohort = value
	}
	if value, ok := _c.mutation.AssignedAt(); ok {
		_spec.SetField(patterninjection.FieldAssignedAt, field.TypeTime, value)
		_node.AssignedAt = value
	}
	if nodes := _c.mutation.PatternIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patterninjection.PatternTable,
			Columns: []string{patterninjection.PatternColumn},
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

// PatternInjectionCreateBulk is the builder for creating many PatternInjection entities in bulk.
type PatternInjectionCreateBulk struct {
	config
	err      error
	builders []*PatternInjectionCreate
}

// Save creates the PatternInjection entities in the database.
func (_c *PatternInjectionCreateBulk) Save(ctx context.Context) ([]*PatternInjection, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PatternInjection, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PatternInjectionMutation)
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
func (_c *PatternInjectionCreateBulk) SaveX(ctx context.Context) []*PatternInjection {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatternInjectionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatternInjectionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
