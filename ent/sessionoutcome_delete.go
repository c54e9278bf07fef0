// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/onex-platform/omniintelligence/ent/predicate"
	"github.com/onex-platform/omniintelligence/ent/sessionoutcome"
)

// SessionOutcomeDelete is the builder for deleting a SessionOutcome entity.
type SessionOutcomeDelete struct {
	config
	hooks    []Hook
	mutation *SessionOutcomeMutation
}

// Where appends a list predicates to the SessionOutcomeDelete builder.
func (_d *SessionOutcomeDelete) Where(ps ...predicate.SessionOutcome) *SessionOutcomeDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *SessionOutcomeDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SessionOutcomeDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *SessionOutcomeDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(sessionoutcome.Table, sqlgraph.NewFieldSpec(sessionoutcome.FieldID, field.TypeInt))
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

// SessionOutcomeDeleteOne is the builder for deleting a single SessionOutcome entity.
type SessionOutcomeDeleteOne struct {
	_d *SessionOutcomeDelete
}

// Where appends a list predicates to the SessionOutcomeDelete builder.
func (_d *SessionOutcomeDeleteOne) Where(ps ...predicate.SessionOutcome) *SessionOutcomeDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *SessionOutcomeDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{sessionoutcome.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SessionOutcomeDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
