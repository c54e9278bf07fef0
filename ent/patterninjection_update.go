// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/onex-platform/omniintelligence/ent/patterninjection"
	"github.com/onex-platform/omniintelligence/ent/predicate"
)

// PatternInjectionUpdate is the builder for updating PatternInjection entities.
type PatternInjectionUpdate struct {
	config
	hooks    []Hook
	mutation *PatternInjectionMutation
}

// Where appends a list predicates to the PatternInjectionUpdate builder.
func (_u *PatternInjectionUpdate) Where(ps ...predicate.PatternInjection) *PatternInjectionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the PatternInjectionMutation object of the builder.
func (_u *PatternInjectionUpdate) Mutation() *PatternInjectionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PatternInjectionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatternInjectionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PatternInjectionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatternInjectionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatternInjectionUpdate) check() error {
	if _u.mutation.PatternCleared() && len(_u.mutation.PatternIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PatternInjection.pattern"`)
	}
	return nil
}

func (_u *PatternInjectionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patterninjection.Table, patterninjection.Columns, sqlgraph.NewFieldSpec(patterninjection.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patterninjection.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PatternInjectionUpdateOne is the builder for updating a single PatternInjection entity.
type PatternInjectionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PatternInjectionMutation
}

// Mutation returns the PatternInjectionMutation object of the builder.
func (_u *PatternInjectionUpdateOne) Mutation() *PatternInjectionMutation {
	return _u.mutation
}

// Where appends a list predicates to the PatternInjectionUpdate builder.
func (_u *PatternInjectionUpdateOne) Where(ps ...predicate.PatternInjection) *PatternInjectionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PatternInjectionUpdateOne) Select(field string, fields ...string) *PatternInjectionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PatternInjection entity.
func (_u *PatternInjectionUpdateOne) Save(ctx context.Context) (*PatternInjection, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatternInjectionUpdateOne) SaveX(ctx context.Context) *PatternInjection {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PatternInjectionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatternInjectionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatternInjectionUpdateOne) check() error {
	if _u.mutation.PatternCleared() && len(_u.mutation.PatternIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PatternInjection.pattern"`)
	}
	return nil
}

func (_u *PatternInjectionUpdateOne) sqlSave(ctx context.Context) (_node *PatternInjection, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patterninjection.Table, patterninjection.Columns, sqlgraph.NewFieldSpec(patterninjection.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PatternInjection.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, patterninjection.FieldID)
		for _, f := range fields {
			if !patterninjection.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != patterninjection.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	_node = &PatternInjection{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patterninjection.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
