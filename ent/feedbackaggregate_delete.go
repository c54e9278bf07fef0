// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/onex-platform/omniintelligence/ent/feedbackaggregate"
	"github.com/onex-platform/omniintelligence/ent/predicate"
)

// FeedbackAggregateDelete is the builder for deleting a FeedbackAggregate entity.
type FeedbackAggregateDelete struct {
	config
	hooks    []Hook
	mutation *FeedbackAggregateMutation
}

// Where appends a list predicates to the FeedbackAggregateDelete builder.
func (_d *FeedbackAggregateDelete) Where(ps ...predicate.FeedbackAggregate) *FeedbackAggregateDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *FeedbackAggregateDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FeedbackAggregateDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *FeedbackAggregateDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(feedbackaggregate.Table, sqlgraph.NewFieldSpec(feedbackaggregate.FieldID, field.TypeInt))
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

// FeedbackAggregateDeleteOne is the builder for deleting a single FeedbackAggregate entity.
type FeedbackAggregateDeleteOne struct {
	_d *FeedbackAggregateDelete
}

// Where appends a list predicates to the FeedbackAggregateDelete builder.
func (_d *FeedbackAggregateDeleteOne) Where(ps ...predicate.FeedbackAggregate) *FeedbackAggregateDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *FeedbackAggregateDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{feedbackaggregate.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FeedbackAggregateDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
