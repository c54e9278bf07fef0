// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/onex-platform/omniintelligence/ent/feedbackaggregate"
	"github.com/onex-platform/omniintelligence/ent/predicate"
)

// FeedbackAggregateUpdate is the builder for updating FeedbackAggregate entities.
type FeedbackAggregateUpdate struct {
	config
	hooks    []Hook
	mutation *FeedbackAggregateMutation
}

// Where appends a list predicates to the FeedbackAggregateUpdate builder.
func (_u *FeedbackAggregateUpdate) Where(ps ...predicate.FeedbackAggregate) *FeedbackAggregateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWindowSuccesses sets the "window_successes" field.
func (_u *FeedbackAggregateUpdate) SetWindowSuccesses(v int) *FeedbackAggregateUpdate {
	_u.mutation.ResetWindowSuccesses()
	_u.mutation.SetWindowSuccesses(v)
	return _u
}

// SetNillableWindowSuccesses sets the "window_successes" field if the given value is not nil.
func (_u *FeedbackAggregateUpdate) SetNillableWindowSuccesses(v *int) *FeedbackAggregateUpdate {
	if v != nil {
		_u.SetWindowSuccesses(*v)
	}
	return _u
}

// AddWindowSuccesses adds value to the "window_successes" field.
func (_u *FeedbackAggregateUpdate) AddWindowSuccesses(v int) *FeedbackAggregateUpdate {
	_u.mutation.AddWindowSuccesses(v)
	return _u
}

// SetWindowFailures sets the "window_failures" field.
func (_u *FeedbackAggregateUpdate) SetWindowFailures(v int) *FeedbackAggregateUpdate {
	_u.mutation.ResetWindowFailures()
	_u.mutation.SetWindowFailures(v)
	return _u
}

// SetNillableWindowFailures sets the "window_failures" field if the given value is not nil.
func (_u *FeedbackAggregateUpdate) SetNillableWindowFailures(v *int) *FeedbackAggregateUpdate {
	if v != nil {
		_u.SetWindowFailures(*v)
	}
	return _u
}

// AddWindowFailures adds value to the "window_failures" field.
func (_u *FeedbackAggregateUpdate) AddWindowFailures(v int) *FeedbackAggregateUpdate {
	_u.mutation.AddWindowFailures(v)
	return _u
}

// SetSampleCount sets the "sample_count" field.
func (_u *FeedbackAggregateUpdate) SetSampleCount(v int) *FeedbackAggregateUpdate {
	_u.mutation.ResetSampleCount()
	_u.mutation.SetSampleCount(v)
	return _u
}

// SetNillableSampleCount sets the "sample_count" field if the given value is not nil.
func (_u *FeedbackAggregateUpdate) SetNillableSampleCount(v *int) *FeedbackAggregateUpdate {
	if v != nil {
		_u.SetSampleCount(*v)
	}
	return _u
}

// AddSampleCount adds value to the "sample_count" field.
func (_u *FeedbackAggregateUpdate) AddSampleCount(v int) *FeedbackAggregateUpdate {
	_u.mutation.AddSampleCount(v)
	return _u
}

// SetEffectiveness sets the "effectiveness" field.
func (_u *FeedbackAggregateUpdate) SetEffectiveness(v float64) *FeedbackAggregateUpdate {
	_u.mutation.ResetEffectiveness()
	_u.mutation.SetEffectiveness(v)
	return _u
}

// SetNillableEffectiveness sets the "effectiveness" field if the given value is not nil.
func (_u *FeedbackAggregateUpdate) SetNillableEffectiveness(v *float64) *FeedbackAggregateUpdate {
	if v != nil {
		_u.SetEffectiveness(*v)
	}
	return _u
}

// AddEffectiveness adds value to the "effectiveness" field.
func (_u *FeedbackAggregateUpdate) AddEffectiveness(v float64) *FeedbackAggregateUpdate {
	_u.mutation.AddEffectiveness(v)
	return _u
}

// SetContributionScore sets the "contribution_score" field.
func (_u *FeedbackAggregateUpdate) SetContributionScore(v float64) *FeedbackAggregateUpdate {
	_u.mutation.ResetContributionScore()
	_u.mutation.SetContributionScore(v)
	return _u
}

// SetNillableContributionScore sets the "contribution_score" field if the given value is not nil.
func (_u *FeedbackAggregateUpdate) SetNillableContributionScore(v *float64) *FeedbackAggregateUpdate {
	if v != nil {
		_u.SetContributionScore(*v)
	}
	return _u
}

// AddContributionScore adds value to the "contribution_score" field.
func (_u *FeedbackAggregateUpdate) AddContributionScore(v float64) *FeedbackAggregateUpdate {
	_u.mutation.AddContributionScore(v)
	return _u
}

// SetConsecutiveLowWindows sets the "consecutive_low_windows" field.
func (_u *FeedbackAggregateUpdate) SetConsecutiveLowWindows(v int) *FeedbackAggregateUpdate {
	_u.mutation.ResetConsecutiveLowWindows()
	_u.mutation.SetConsecutiveLowWindows(v)
	return _u
}

// SetNillableConsecutiveLowWindows sets the "consecutive_low_windows" field if the given value is not nil.
func (_u *FeedbackAggregateUpdate) SetNillableConsecutiveLowWindows(v *int) *FeedbackAggregateUpdate {
	if v != nil {
		_u.SetConsecutiveLowWindows(*v)
	}
	return _u
}

// AddConsecutiveLowWindows adds value to the "consecutive_low_windows" field.
func (_u *FeedbackAggregateUpdate) AddConsecutiveLowWindows(v int) *FeedbackAggregateUpdate {
	_u.mutation.AddConsecutiveLowWindows(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FeedbackAggregateUpdate) SetUpdatedAt(v time.Time) *FeedbackAggregateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the FeedbackAggregateMutation object of the builder.
func (_u *FeedbackAggregateUpdate) Mutation() *FeedbackAggregateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FeedbackAggregateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeedbackAggregateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FeedbackAggregateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeedbackAggregateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FeedbackAggregateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := feedbackaggregate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeedbackAggregateUpdate) check() error {
	if _u.mutation.PatternCleared() && len(_u.mutation.PatternIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FeedbackAggregate.pattern"`)
	}
	return nil
}

func (_u *FeedbackAggregateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(feedbackaggregate.Table, feedbackaggregate.Columns, sqlgraph.NewFieldSpec(feedbackaggregate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WindowSuccesses(); ok {
		_spec.SetField(feedbackaggregate.FieldWindowSuccesses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWindowSuccesses(); ok {
		_spec.AddField(feedbackaggregate.FieldWindowSuccesses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WindowFailures(); ok {
		_spec.SetField(feedbackaggregate.FieldWindowFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWindowFailures(); ok {
		_spec.AddField(feedbackaggregate.FieldWindowFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SampleCount(); ok {
		_spec.SetField(feedbackaggregate.FieldSampleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSampleCount(); ok {
		_spec.AddField(feedbackaggregate.FieldSampleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Effectiveness(); ok {
		_spec.SetField(feedbackaggregate.FieldEffectiveness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEffectiveness(); ok {
		_spec.AddField(feedbackaggregate.FieldEffectiveness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ContributionScore(); ok {
		_spec.SetField(feedbackaggregate.FieldContributionScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedContributionScore(); ok {
		_spec.AddField(feedbackaggregate.FieldContributionScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConsecutiveLowWindows(); ok {
		_spec.SetField(feedbackaggregate.FieldConsecutiveLowWindows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveLowWindows(); ok {
		_spec.AddField(feedbackaggregate.FieldConsecutiveLowWindows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(feedbackaggregate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feedbackaggregate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FeedbackAggregateUpdateOne is the builder for updating a single FeedbackAggregate entity.
type FeedbackAggregateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FeedbackAggregateMutation
}

// SetWindowSuccesses sets the "window_successes" field.
func (_u *FeedbackAggregateUpdateOne) SetWindowSuccesses(v int) *FeedbackAggregateUpdateOne {
	_u.mutation.ResetWindowSuccesses()
	_u.mutation.SetWindowSuccesses(v)
	return _u
}

// SetNillableWindowSuccesses sets the "window_successes" field if the given value is not nil.
func (_u *FeedbackAggregateUpdateOne) SetNillableWindowSuccesses(v *int) *FeedbackAggregateUpdateOne {
	if v != nil {
		_u.SetWindowSuccesses(*v)
	}
	return _u
}

// AddWindowSuccesses adds value to the "window_successes" field.
func (_u *FeedbackAggregateUpdateOne) AddWindowSuccesses(v int) *FeedbackAggregateUpdateOne {
	_u.mutation.AddWindowSuccesses(v)
	return _u
}

// SetWindowFailures sets the "window_failures" field.
func (_u *FeedbackAggregateUpdateOne) SetWindowFailures(v int) *FeedbackAggregateUpdateOne {
	_u.mutation.ResetWindowFailures()
	_u.mutation.SetWindowFailures(v)
	return _u
}

// SetNillableWindowFailures sets the "window_failures" field if the given value is not nil.
func (_u *FeedbackAggregateUpdateOne) SetNillableWindowFailures(v *int) *FeedbackAggregateUpdateOne {
	if v != nil {
		_u.SetWindowFailures(*v)
	}
	return _u
}

// AddWindowFailures adds value to the "window_failures" field.
func (_u *FeedbackAggregateUpdateOne) AddWindowFailures(v int) *FeedbackAggregateUpdateOne {
	_u.mutation.AddWindowFailures(v)
	return _u
}

// SetSampleCount sets the "sample_count" field.
func (_u *FeedbackAggregateUpdateOne) SetSampleCount(v int) *FeedbackAggregateUpdateOne {
	_u.mutation.ResetSampleCount()
	_u.mutation.SetSampleCount(v)
	return _u
}

// SetNillableSampleCount sets the "sample_count" field if the given value is not nil.
func (_u *FeedbackAggregateUpdateOne) SetNillableSampleCount(v *int) *FeedbackAggregateUpdateOne {
	if v != nil {
		_u.SetSampleCount(*v)
	}
	return _u
}

// AddSampleCount adds value to the "sample_count" field.
func (_u *FeedbackAggregateUpdateOne) AddSampleCount(v int) *FeedbackAggregateUpdateOne {
	_u.mutation.AddSampleCount(v)
	return _u
}

// SetEffectiveness sets the "effectiveness" field.
func (_u *FeedbackAggregateUpdateOne) SetEffectiveness(v float64) *FeedbackAggregateUpdateOne {
	_u.mutation.ResetEffectiveness()
	_u.mutation.SetEffectiveness(v)
	return _u
}

// SetNillableEffectiveness sets the "effectiveness" field if the given value is not nil.
func (_u *FeedbackAggregateUpdateOne) SetNillableEffectiveness(v *float64) *FeedbackAggregateUpdateOne {
	if v != nil {
		_u.SetEffectiveness(*v)
	}
	return _u
}

// AddEffectiveness adds value to the "effectiveness" field.
func (_u *FeedbackAggregateUpdateOne) AddEffectiveness(v float64) *FeedbackAggregateUpdateOne {
	_u.mutation.AddEffectiveness(v)
	return _u
}

// SetContributionScore sets the "contribution_score" field.
func (_u *FeedbackAggregateUpdateOne) SetContributionScore(v float64) *FeedbackAggregateUpdateOne {
	_u.mutation.ResetContributionScore()
	_u.mutation.SetContributionScore(v)
	return _u
}

// SetNillableContributionScore sets the "contribution_score" field if the given value is not nil.
func (_u *FeedbackAggregateUpdateOne) SetNillableContributionScore(v *float64) *FeedbackAggregateUpdateOne {
	if v != nil {
		_u.SetContributionScore(*v)
	}
	return _u
}

// AddContributionScore adds value to the "contribution_score" field.
func (_u *FeedbackAggregateUpdateOne) AddContributionScore(v float64) *FeedbackAggregateUpdateOne {
	_u.mutation.AddContributionScore(v)
	return _u
}

// SetConsecutiveLowWindows sets the "consecutive_low_windows" field.
func (_u *FeedbackAggregateUpdateOne) SetConsecutiveLowWindows(v int) *FeedbackAggregateUpdateOne {
	_u.mutation.ResetConsecutiveLowWindows()
	_u.mutation.SetConsecutiveLowWindows(v)
	return _u
}

// SetNillableConsecutiveLowWindows sets the "consecutive_low_windows" field if the given value is not nil.
func (_u *FeedbackAggregateUpdateOne) SetNillableConsecutiveLowWindows(v *int) *FeedbackAggregateUpdateOne {
	if v != nil {
		_u.SetConsecutiveLowWindows(*v)
	}
	return _u
}

// AddConsecutiveLowWindows adds value to the "consecutive_low_windows" field.
func (_u *FeedbackAggregateUpdateOne) AddConsecutiveLowWindows(v int) *FeedbackAggregateUpdateOne {
	_u.mutation.AddConsecutiveLowWindows(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FeedbackAggregateUpdateOne) SetUpdatedAt(v time.Time) *FeedbackAggregateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the FeedbackAggregateMutation object of the builder.
func (_u *FeedbackAggregateUpdateOne) Mutation() *FeedbackAggregateMutation {
	return _u.mutation
}

// Where appends a list predicates to the FeedbackAggregateUpdate builder.
func (_u *FeedbackAggregateUpdateOne) Where(ps ...predicate.FeedbackAggregate) *FeedbackAggregateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FeedbackAggregateUpdateOne) Select(field string, fields ...string) *FeedbackAggregateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FeedbackAggregate entity.
func (_u *FeedbackAggregateUpdateOne) Save(ctx context.Context) (*FeedbackAggregate, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeedbackAggregateUpdateOne) SaveX(ctx context.Context) *FeedbackAggregate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FeedbackAggregateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeedbackAggregateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FeedbackAggregateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := feedbackaggregate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeedbackAggregateUpdateOne) check() error {
	if _u.mutation.PatternCleared() && len(_u.mutation.PatternIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FeedbackAggregate.pattern"`)
	}
	return nil
}

func (_u *FeedbackAggregateUpdateOne) sqlSave(ctx context.Context) (_node *FeedbackAggregate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(feedbackaggregate.Table, feedbackaggregate.Columns, sqlgraph.NewFieldSpec(feedbackaggregate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FeedbackAggregate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, feedbackaggregate.FieldID)
		for _, f := range fields {
			if !feedbackaggregate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != feedbackaggregate.FieldID {
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
	if value, ok := _u.mutation.WindowSuccesses(); ok {
		_spec.SetField(feedbackaggregate.FieldWindowSuccesses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWindowSuccesses(); ok {
		_spec.AddField(feedbackaggregate.FieldWindowSuccesses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WindowFailures(); ok {
		_spec.SetField(feedbackaggregate.FieldWindowFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWindowFailures(); ok {
		_spec.AddField(feedbackaggregate.FieldWindowFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SampleCount(); ok {
		_spec.SetField(feedbackaggregate.FieldSampleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSampleCount(); ok {
		_spec.AddField(feedbackaggregate.FieldSampleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Effectiveness(); ok {
		_spec.SetField(feedbackaggregate.FieldEffectiveness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEffectiveness(); ok {
		_spec.AddField(feedbackaggregate.FieldEffectiveness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ContributionScore(); ok {
		_spec.SetField(feedbackaggregate.FieldContributionScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedContributionScore(); ok {
		_spec.AddField(feedbackaggregate.FieldContributionScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConsecutiveLowWindows(); ok {
		_spec.SetField(feedbackaggregate.FieldConsecutiveLowWindows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveLowWindows(); ok {
		_spec.AddField(feedbackaggregate.FieldConsecutiveLowWindows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(feedbackaggregate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &FeedbackAggregate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feedbackaggregate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
