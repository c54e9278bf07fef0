// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/onex-platform/omniintelligence/ent/patterndisable"
	"github.com/onex-platform/omniintelligence/ent/predicate"
)

// PatternDisableUpdate is the builder for updating PatternDisable entities.
type PatternDisableUpdate struct {
	config
	hooks    []Hook
	mutation *PatternDisableMutation
}

// Where appends a list predicates to the PatternDisableUpdate builder.
func (_u *PatternDisableUpdate) Where(ps ...predicate.PatternDisable) *PatternDisableUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the PatternDisableMutation object of the builder.
func (_u *PatternDisableUpdate) Mutation() *PatternDisableMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PatternDisableUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatternDisableUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PatternDisableUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatternDisableUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatternDisableUpdate) check() error {
	if _u.mutation.PatternCleared() && len(_u.mutation.PatternIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PatternDisable.pattern"`)
	}
	return nil
}

func (_u *PatternDisableUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patterndisable.Table, patterndisable.Columns, sqlgraph.NewFieldSpec(patterndisable.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(patterndisable.FieldDetail, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patterndisable.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PatternDisableUpdateOne is the builder for updating a single PatternDisable entity.
type PatternDisableUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PatternDisableMutation
}

// Mutation returns the PatternDisableMutation object of the builder.
func (_u *PatternDisableUpdateOne) Mutation() *PatternDisableMutation {
	return _u.mutation
}

// Where appends a list predicates to the PatternDisableUpdate builder.
func (_u *PatternDisableUpdateOne) Where(ps ...predicate.PatternDisable) *PatternDisableUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PatternDisableUpdateOne) Select(field string, fields ...string) *PatternDisableUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PatternDisable entity.
func (_u *PatternDisableUpdateOne) Save(ctx context.Context) (*PatternDisable, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatternDisableUpdateOne) SaveX(ctx context.Context) *PatternDisable {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PatternDisableUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatternDisableUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatternDisableUpdateOne) check() error {
	if _u.mutation.PatternCleared() && len(_u.mutation.PatternIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PatternDisable.pattern"`)
	}
	return nil
}

func (_u *PatternDisableUpdateOne) sqlSave(ctx context.Context) (_node *PatternDisable, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patterndisable.Table, patterndisable.Columns, sqlgraph.NewFieldSpec(patterndisable.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PatternDisable.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, patterndisable.FieldID)
		for _, f := range fields {
			if !patterndisable.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != patterndisable.FieldID {
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
	if _u.mutation.DetailCleared() {
		_spec.ClearField(patterndisable.FieldDetail, field.TypeString)
	}
	_node = &PatternDisable{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patterndisable.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
