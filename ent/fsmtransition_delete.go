// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/onex-platform/omniintelligence/ent/fsmtransition"
	"github.com/onex-platform/omniintelligence/ent/predicate"
)

// FSMTransitionDelete is the builder for deleting a FSMTransition entity.
type FSMTransitionDelete struct {
	config
	hooks    []Hook
	mutation *FSMTransitionMutation
}

// Where appends a list predicates to the FSMTransitionDelete builder.
func (_d *FSMTransitionDelete) Where(ps ...predicate.FSMTransition) *FSMTransitionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *FSMTransitionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FSMTransitionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *FSMTransitionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(fsmtransition.Table, sqlgraph.NewFieldSpec(fsmtransition.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// FSMTransitionDeleteOne is the builder for deleting a single FSMTransition entity.
type FSMTransitionDeleteOne struct {
	_d *FSMTransitionDelete
}

// Where appends a list predicates to the FSMTransitionDelete builder.
func (_d *FSMTransitionDeleteOne) Where(ps ...predicate.FSMTransition) *FSMTransitionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *FSMTransitionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{fsmtransition.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FSMTransitionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
