// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/onex-platform/omniintelligence/ent/feedbackaggregate"
	"github.com/onex-platform/omniintelligence/ent/pattern"
)

// FeedbackAggregateCreate is the builder for creating a FeedbackAggregate entity.
type FeedbackAggregateCreate struct {
	config
	mutation *FeedbackAggregateMutation
	hooks    []Hook
}

// SetPatternID sets the "pattern_id" field.
func (_c *FeedbackAggregateCreate) SetPatternID(v string) *FeedbackAggregateCreate {
	_c.mutation.SetPatternID(v)
	return _c
}

// SetWindowSuccesses sets the "window_successes" field.
func (_c *FeedbackAggregateCreate) SetWindowSuccesses(v int) *FeedbackAggregateCreate {
	_c.mutation.SetWindowSuccesses(v)
	return _c
}

// SetNillableWindowSuccesses sets the "window_successes" field if the given value is not nil.
func (_c *FeedbackAggregateCreate) SetNillableWindowSuccesses(v *int) *FeedbackAggregateCreate {
	if v != nil {
		_c.SetWindowSuccesses(*v)
	}
	return _c
}

// SetWindowFailures sets the "window_failures" field.
func (_c *FeedbackAggregateCreate) SetWindowFailures(v int) *FeedbackAggregateCreate {
	_c.mutation.SetWindowFailures(v)
	return _c
}

// SetNillableWindowFailures sets the "window_failures" field if the given value is not nil.
func (_c *FeedbackAggregateCreate) SetNillableWindowFailures(v *int) *FeedbackAggregateCreate {
	if v != nil {
		_c.SetWindowFailures(*v)
	}
	return _c
}

// SetSampleCount sets the "sample_count" field.
func (_c *FeedbackAggregateCreate) SetSampleCount(v int) *FeedbackAggregateCreate {
	_c.mutation.SetSampleCount(v)
	return _c
}

// SetNillableSampleCount sets the "sample_count" field if the given value is not nil.
func (_c *FeedbackAggregateCreate) SetNillableSampleCount(v *int) *FeedbackAggregateCreate {
	if v != nil {
		_c.SetSampleCount(*v)
	}
	return _c
}

// SetEffectiveness sets the "effectiveness" field.
func (_c *FeedbackAggregateCreate) SetEffectiveness(v float64) *FeedbackAggregateCreate {
	_c.mutation.SetEffectiveness(v)
	return _c
}

// SetNillableEffectiveness sets the "effectiveness" field if the given value is not nil.
func (_c *FeedbackAggregateCreate) SetNillableEffectiveness(v *float64) *FeedbackAggregateCreate {
	if v != nil {
		_c.SetEffectiveness(*v)
	}
	return _c
}

// SetContributionScore sets the "contribution_score" field.
func (_c *FeedbackAggregateCreate) SetContributionScore(v float64) *FeedbackAggregateCreate {
	_c.mutation.SetContributionScore(v)
	return _c
}

// SetNillableContributionScore sets the "contribution_score" field if the given value is not nil.
func (_c *FeedbackAggregateCreate) SetNillableContributionScore(v *float64) *FeedbackAggregateCreate {
	if v != nil {
		_c.SetContributionScore(*v)
	}
	return _c
}

// SetConsecutiveLowWindows sets the "consecutive_low_windows" field.
func (_c *FeedbackAggregateCreate) SetConsecutiveLowWindows(v int) *FeedbackAggregateCreate {
	_c.mutation.SetConsecutiveLowWindows(v)
	return _c
}

// SetNillableConsecutiveLowWindows sets the "consecutive_low_windows" field if the given value is not nil.
func (_c *FeedbackAggregateCreate) SetNillableConsecutiveLowWindows(v *int) *FeedbackAggregateCreate {
	if v != nil {
		_c.SetConsecutiveLowWindows(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FeedbackAggregateCreate) SetUpdatedAt(v time.Time) *FeedbackAggregateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FeedbackAggregateCreate) SetNillableUpdatedAt(v *time.Time) *FeedbackAggregateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPattern sets the "pattern" edge to the Pattern entity.
func (_c *FeedbackAggregateCreate) SetPattern(v *Pattern) *FeedbackAggregateCreate {
	return _c.SetPatternID(v.ID)
}

// Mutation returns the FeedbackAggregateMutation object of the builder.
func (_c *FeedbackAggregateCreate) Mutation() *FeedbackAggregateMutation {
	return _c.mutation
}

// Save creates the FeedbackAggregate in the database.
func (_c *FeedbackAggregateCreate) Save(ctx context.Context) (*FeedbackAggregate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FeedbackAggregateCreate) SaveX(ctx context.Context) *FeedbackAggregate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FeedbackAggregateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FeedbackAggregateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FeedbackAggregateCreate) defaults() {
	if _, ok := _c.mutation.WindowSuccesses(); !ok {
		v := feedbackaggregate.DefaultWindowSuccesses
		_c.mutation.SetWindowSuccesses(v)
	}
	if _, ok := _c.mutation.WindowFailures(); !ok {
		v := feedbackaggregate.DefaultWindowFailures
		_c.mutation.SetWindowFailures(v)
	}
	if _, ok := _c.mutation.SampleCount(); !ok {
		v := feedbackaggregate.DefaultSampleCount
		_c.mutation.SetSampleCount(v)
	}
	if _, ok := _c.mutation.Effectiveness(); !ok {
		v := feedbackaggregate.DefaultEffectiveness
		_c.mutation.SetEffectiveness(v)
	}
	if _, ok := _c.mutation.ContributionScore(); !ok {
		v := feedbackaggregate.DefaultContributionScore
		_c.mutation.SetContributionScore(v)
	}
	if _, ok := _c.mutation.ConsecutiveLowWindows(); !ok {
		v := feedbackaggregate.DefaultConsecutiveLowWindows
		_c.mutation.SetConsecutiveLowWindows(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := feedbackaggregate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FeedbackAggregateCreate) check() error {
	if _, ok := _c.mutation.PatternID(); !ok {
		return &ValidationError{Name: "pattern_id", err: errors.New(`ent: missing required field "FeedbackAggregate.pattern_id"`)}
	}
	if _, ok := _c.mutation.WindowSuccesses(); !ok {
		return &ValidationError{Name: "window_successes", err: errors.New(`ent: missing required field "FeedbackAggregate.window_successes"`)}
	}
	if _, ok := _c.mutation.WindowFailures(); !ok {
		return &ValidationError{Name: "window_failures", err: errors.New(`ent: missing required field "FeedbackAggregate.window_failures"`)}
	}
	if _, ok := _c.mutation.SampleCount(); !ok {
		return &ValidationError{Name: "sample_count", err: errors.New(`ent: missing required field "FeedbackAggregate.sample_count"`)}
	}
	if _, ok := _c.mutation.Effectiveness(); !ok {
		return &ValidationError{Name: "effectiveness", err: errors.New(`ent: missing required field "FeedbackAggregate.effectiveness"`)}
	}
	if _, ok := _c.mutation.ContributionScore(); !ok {
		return &ValidationError{Name: "contribution_score", err: errors.New(`ent: missing required field "FeedbackAggregate.contribution_score"`)}
	}
	if _, ok := _c.mutation.ConsecutiveLowWindows(); !ok {
		return &ValidationError{Name: "consecutive_low_windows", err: errors.New(`ent: missing required field "FeedbackAggregate.consecutive_low_windows"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "FeedbackAggregate.updated_at"`)}
	}
	if len(_c.mutation.PatternIDs()) == 0 {
		return &ValidationError{Name: "pattern", err: errors.New(`ent: missing required edge "FeedbackAggregate.pattern"`)}
	}
	return nil
}

func (_c *FeedbackAggregateCreate) sqlSave(ctx context.Context) (*FeedbackAggregate, error) {
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

func (_c *FeedbackAggregateCreate) createSpec() (*FeedbackAggregate, *sqlgraph.CreateSpec) {
	var (
		_node = &FeedbackAggregate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(feedbackaggregate.Table, sqlgraph.NewFieldSpec(feedbackaggregate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.WindowSuccesses(); ok {
		_spec.SetField(feedbackaggregate.FieldWindowSuccesses, field.TypeInt, value)
		_node.WindowSuccesses = value
	}
	if value, ok := _c.mutation.WindowFailures(); ok {
		_spec.SetField(feedbackaggregate.FieldWindowFailures, field.TypeInt, value)
		_node.WindowFailures = value
	}
	if value, ok := _c.mutation.SampleCount(); ok {
		_spec.SetField(feedbackaggregate.FieldSampleCount, field.TypeInt, value)
		_node.SampleCount = value
	}
	if value, ok := _c.mutation.Effectiveness(); ok {
		_spec.SetField(feedbackaggregate.FieldEffectiveness, field.TypeFloat64, value)
		_node.Effectiveness = value
	}
	if value, ok := _c.mutation.ContributionScore(); ok {
		_spec.SetField(feedbackaggregate.FieldContributionScore, field.TypeFloat64, value)
		_node.ContributionScore = value
	}
	if value, ok := _c.mutation.ConsecutiveLowWindows(); ok {
		_spec.SetField(feedbackaggregate.FieldConsecutiveLowWindows, field.TypeInt, value)
		_node.ConsecutiveLowWindows = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(feedbackaggregate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.PatternIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   feedbackaggregate.PatternTable,
			Columns: []string{feedbackaggregate.PatternColumn},
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

// FeedbackAggregateCreateBulk is the builder for creating many FeedbackAggregate entities in bulk.
type FeedbackAggregateCreateBulk struct {
	config
	err      error
	builders []*FeedbackAggregateCreate
}

// Save creates the FeedbackAggregate entities in the database.
func (_c *FeedbackAggregateCreateBulk) Save(ctx context.Context) ([]*FeedbackAggregate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FeedbackAggregate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FeedbackAggregateMutation)
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
func (_c *FeedbackAggregateCreateBulk) SaveX(ctx context.Context) []*FeedbackAggregate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FeedbackAggregateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FeedbackAggregateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
