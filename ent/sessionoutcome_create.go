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
	"github.com/onex-platform/omniintelligence/ent/sessionoutcome"
)

// SessionOutcomeCreate is the builder for creating a SessionOutcome entity.
type SessionOutcomeCreate struct {
	config
	mutation *SessionOutcomeMutation
	hooks    []Hook
}

// SetEventID sets the "event_id" field.
func (_c *SessionOutcomeCreate) SetEventID(v string) *SessionOutcomeCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *SessionOutcomeCreate) SetSessionID(v string) *SessionOutcomeCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetPatternID sets the "pattern_id" field.
func (_c *SessionOutcomeCreate) SetPatternID(v string) *SessionOutcomeCreate {
	_c.mutation.SetPatternID(v)
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *SessionOutcomeCreate) SetOutcome(v sessionoutcome.Outcome) *SessionOutcomeCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetWasAdvised sets the "was_advised" field.
func (_c *SessionOutcomeCreate) SetWasAdvised(v bool) *SessionOutcomeCreate {
	_c.mutation.SetWasAdvised(v)
	return _c
}

// SetNillableWasAdvised sets the "was_advised" field if the given value is not nil.
func (_c *SessionOutcomeCreate) SetNillableWasAdvised(v *bool) *SessionOutcomeCreate {
	if v != nil {
		_c.SetWasAdvised(*v)
	}
	return _c
}

// SetWasUsed sets the "was_used" field.
func (_c *SessionOutcomeCreate) SetWasUsed(v bool) *SessionOutcomeCreate {
	_c.mutation.SetWasUsed(v)
	return _c
}

// SetNillableWasUsed sets the "was_used" field if the given value is not nil.
func (_c *SessionOutcomeCreate) SetNillableWasUsed(v *bool) *SessionOutcomeCreate {
	if v != nil {
		_c.SetWasUsed(*v)
	}
	return _c
}

// SetWasCorrected sets the "was_corrected" field.
func (_c *SessionOutcomeCreate) SetWasCorrected(v bool) *SessionOutcomeCreate {
	_c.mutation.SetWasCorrected(v)
	return _c
}

// SetNillableWasCorrected sets the "was_corrected" field if the given value is not nil.
func (_c *SessionOutcomeCreate) SetNillableWasCorrected(v *bool) *SessionOutcomeCreate {
	if v != nil {
		_c.SetWasCorrected(*v)
	}
	return _c
}

// SetQualityDelta sets the "quality_delta" field.
func (_c *SessionOutcomeCreate) SetQualityDelta(v float64) *SessionOutcomeCreate {
	_c.mutation.SetQualityDelta(v)
	return _c
}

// SetNillableQualityDelta sets the "quality_delta" field if the given value is not nil.
func (_c *SessionOutcomeCreate) SetNillableQualityDelta(v *float64) *SessionOutcomeCreate {
	if v != nil {
		_c.SetQualityDelta(*v)
	}
	return _c
}

// SetOccurredAt sets the "occurred_at" field.
func (_c *SessionOutcomeCreate) SetOccurredAt(v time.Time) *SessionOutcomeCreate {
	_c.mutation.SetOccurredAt(v)
	return _c
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (_c *SessionOutcomeCreate) SetNillableOccurredAt(v *time.Time) *SessionOutcomeCreate {
	if v != nil {
		_c.SetOccurredAt(*v)
	}
	return _c
}

// SetPattern sets the "pattern" edge to the Pattern entity.
func (_c *SessionOutcomeCreate) SetPattern(v *Pattern) *SessionOutcomeCreate {
	return _c.SetPatternID(v.ID)
}

// Mutation returns the SessionOutcomeMutation object of the builder.
func (_c *SessionOutcomeCreate) Mutation() *SessionOutcomeMutation {
	return _c.mutation
}

// Save creates the SessionOutcome in the database.
func (_c *SessionOutcomeCreate) Save(ctx context.Context) (*SessionOutcome, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionOutcomeCreate) SaveX(ctx context.Context) *SessionOutcome {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionOutcomeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionOutcomeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionOutcomeCreate) defaults() {
	if _, ok := _c.mutation.WasAdvised(); !ok {
		v := sessionoutcome.DefaultWasAdvised
		_c.mutation.SetWasAdvised(v)
	}
	if _, ok := _c.mutation.WasUsed(); !ok {
		v := sessionoutcome.DefaultWasUsed
		_c.mutation.SetWasUsed(v)
	}
	if _, ok := _c.mutation.WasCorrected(); !ok {
		v := sessionoutcome.DefaultWasCorrected
		_c.mutation.SetWasCorrected(v)
	}
	if _, ok := _c.mutation.QualityDelta(); !ok {
		v := sessionoutcome.DefaultQualityDelta
		_c.mutation.SetQualityDelta(v)
	}
	if _, ok := _c.mutation.OccurredAt(); !ok {
		v := sessionoutcome.DefaultOccurredAt()
		_c.mutation.SetOccurredAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionOutcomeCreate) check() error {
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "SessionOutcome.event_id"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionOutcome.session_id"`)}
	}
	if _, ok := _c.mutation.PatternID(); !ok {
		return &ValidationError{Name: "pattern_id", err: errors.New(`ent: missing required field "SessionOutcome.pattern_id"`)}
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		return &ValidationError{Name: "outcome", err: errors.New(`ent: missing required field "SessionOutcome.outcome"`)}
	}
	if v, ok := _c.mutation.Outcome(); ok {
		if err := sessionoutcome.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "SessionOutcome.outcome": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WasAdvised(); !ok {
		return &ValidationError{Name: "was_advised", err: errors.New(`ent: missing required field "SessionOutcome.was_advised"`)}
	}
	if _, ok := _c.mutation.WasUsed(); !ok {
		return &ValidationError{Name: "was_used", err: errors.New(`ent: missing required field "SessionOutcome.was_used"`)}
	}
	if _, ok := _c.mutation.WasCorrected(); !ok {
		return &ValidationError{Name: "was_corrected", err: errors.New(`ent: missing required field "SessionOutcome.was_corrected"`)}
	}
	if _, ok := _c.mutation.QualityDelta(); !ok {
		return &ValidationError{Name: "quality_delta", err: errors.New(`ent: missing required field "SessionOutcome.quality_delta"`)}
	}
	if _, ok := _c.mutation.OccurredAt(); !ok {
		return &ValidationError{Name: "occurred_at", err: errors.New(`ent: missing required field "SessionOutcome.occurred_at"`)}
	}
	if len(_c.mutation.PatternIDs()) == 0 {
		return &ValidationError{Name: "pattern", err: errors.New(`ent: missing required edge "SessionOutcome.pattern"`)}
	}
	return nil
}

func (_c *SessionOutcomeCreate) sqlSave(ctx context.Context) (*SessionOutcome, error) {
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

func (_c *SessionOutcomeCreate) createSpec() (*SessionOutcome, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionOutcome{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionoutcome.Table, sqlgraph.NewFieldSpec(sessionoutcome.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(sessionoutcome.FieldEventID, field.TypeString, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(sessionoutcome.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(sessionoutcome.FieldOutcome, field.TypeEnum, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.WasAdvised(); ok {
		_spec.SetField(sessionoutcome.FieldWasAdvised, field.TypeBool, value)
		_node.WasAdvised = value
	}
	if value, ok := _c.mutation.WasUsed(); ok {
		_spec.SetField(sessionoutcome.FieldWasUsed, field.TypeBool, value)
		_node.WasUsed = value
	}
	if value, ok := _c.mutation.WasCorrected(); ok {
		_spec.SetField(sessionoutcome.FieldWasCorrected, field.TypeBool, value)
		_node.WasCorrected = value
	}
	if value, ok := _c.mutation.QualityDelta(); ok {
		_spec.SetField(sessionoutcome.FieldQualityDelta, field.TypeFloat64, value)
		_node.QualityDelta = value
	}
	if value, ok := _c.mutation.OccurredAt(); ok {
		_spec.SetField(sessionoutcome.FieldOccurredAt, field.TypeTime, value)
		_node.OccurredAt = value
	}
	if nodes := _c.mutation.PatternIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sessionoutcome.PatternTable,
			Columns: []string{sessionoutcome.PatternColumn},
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

// SessionOutcomeCreateBulk is the builder for creating many SessionOutcome entities in bulk.
type SessionOutcomeCreateBulk struct {
	config
	err      error
	builders []*SessionOutcomeCreate
}

// Save creates the SessionOutcome entities in the database.
func (_c *SessionOutcomeCreateBulk) Save(ctx context.Context) ([]*SessionOutcome, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionOutcome, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionOutcomeMutation)
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
func (_c *SessionOutcomeCreateBulk) SaveX(ctx context.Context) []*SessionOutcome {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionOutcomeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionOutcomeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
