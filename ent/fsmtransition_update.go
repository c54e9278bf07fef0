// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/onex-platform/omniintelligence/ent/fsmtransition"
	"github.com/onex-platform/omniintelligence/ent/predicate"
)

// FSMTransitionUpdate is the builder for updating FSMTransition entities.
type FSMTransitionUpdate struct {
	config
	hooks    []Hook
	mutation *FSMTransitionMutation
}

// Where appends a list predicates to the FSMTransitionUpdate builder.
func (_u *FSMTransitionUpdate) Where(ps ...predicate.FSMTransition) *FSMTransitionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the FSMTransitionMutation object of the builder.
func (_u *FSMTransitionUpdate) Mutation() *FSMTransitionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FSMTransitionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FSMTransitionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FSMTransitionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FSMTransitionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *FSMTransitionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(fsmtransition.Table, fsmtransition.Columns, sqlgraph.NewFieldSpec(fsmtransition.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.EventIDCleared() {
		_spec.ClearField(fsmtransition.FieldEventID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fsmtransition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FSMTransitionUpdateOne is the builder for updating a single FSMTransition entity.
type FSMTransitionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FSMTransitionMutation
}

// Mutation returns the FSMTransitionMutation object of the builder.
func (_u *FSMTransitionUpdateOne) Mutation() *FSMTransitionMutation {
	return _u.mutation
}

// Where appends a list predicates to the FSMTransitionUpdate builder.
func (_u *FSMTransitionUpdateOne) Where(ps ...predicate.FSMTransition) *FSMTransitionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FSMTransitionUpdateOne) Select(field string, fields ...string) *FSMTransitionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FSMTransition entity.
func (_u *FSMTransitionUpdateOne) Save(ctx context.Context) (*FSMTransition, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FSMTransitionUpdateOne) SaveX(ctx context.Context) *FSMTransition {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FSMTransitionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FSMTransitionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *FSMTransitionUpdateOne) sqlSave(ctx context.Context) (_node *FSMTransition, err error) {
	_spec := sqlgraph.NewUpdateSpec(fsmtransition.Table, fsmtransition.Columns, sqlgraph.NewFieldSpec(fsmtransition.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FSMTransition.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, fsmtransition.FieldID)
		for _, f := range fields {
			if !fsmtransition.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != fsmtransition.FieldID {
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
	if _u.mutation.EventIDCleared() {
		_spec.ClearField(fsmtransition.FieldEventID, field.TypeString)
	}
	_node = &FSMTransition{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fsmtransition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
