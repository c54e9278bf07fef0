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
	"github.com/onex-platform/omniintelligence/ent/patternaudit"
)

// PatternAuditCreate is the builder for creating a PatternAudit entity.
type PatternAuditCreate struct {
	config
	mutation *PatternAuditMutation
	hooks    []Hook
}

// SetPatternID sets the "pattern_id" field.
func (_c *PatternAuditCreate) SetPatternID(v string) *PatternAuditCreate {
	_c.mutation.SetPatternID(v)
	return _c
}

// SetFromStatus sets the "from_status" field.
func (_c *PatternAuditCreate) SetFromStatus(v string) *PatternAuditCreate {
	_c.mutation.SetFromStatus(v)
	return _c
}

// SetToStatus sets the "to_status" field.
func (_c *PatternAuditCreate) SetToStatus(v string) *PatternAuditCreate {
	_c.mutation.SetToStatus(v)
	return _c
}

// SetTrigger sets the "trigger" field.
func (_c *PatternAuditCreate) SetTrigger(v string) *PatternAuditCreate {
	_c.mutation.SetTrigger(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *PatternAuditCreate) SetReason(v string) *PatternAuditCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *PatternAuditCreate) SetNillableReason(v *string) *PatternAuditCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetEvidenceSnapshot sets the "evidence_snapshot" field.
func (_c *PatternAuditCreate) SetEvidenceSnapshot(v map[string]interface{}) *PatternAuditCreate {
	_c.mutation.SetEvidenceSnapshot(v)
	return _c
}

// SetCorrelationID sets the "correlation_id" field.
func (_c *PatternAuditCreate) SetCorrelationID(v string) *PatternAuditCreate {
	_c.mutation.SetCorrelationID(v)
	return _c
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_c *PatternAuditCreate) SetNillableCorrelationID(v *string) *PatternAuditCreate {
	if v != nil {
		_c.SetCorrelationID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PatternAuditCreate) SetCreatedAt(v time.Time) *PatternAuditCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PatternAuditCreate) SetNillableCreatedAt(v *time.Time) *PatternAuditCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetPattern sets the "pattern" edge to the Pattern entity.
func (_c *PatternAuditCreate) SetPattern(v *Pattern) *PatternAuditCreate {
	return _c.SetPatternID(v.ID)
}

// Mutation returns the PatternAuditMutation object of the builder.
func (_c *PatternAuditCreate) Mutation() *PatternAuditMutation {
	return _c.mutation
}

// Save creates the PatternAudit in the database.
func (_c *PatternAuditCreate) Save(ctx context.Context) (*PatternAudit, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PatternAuditCreate) SaveX(ctx context.Context) *PatternAudit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatternAuditCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatternAuditCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PatternAuditCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := patternaudit.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PatternAuditCreate) check() error {
	if _, ok := _c.mutation.PatternID(); !ok {
		return &ValidationError{Name: "pattern_id", err: errors.New(`ent: missing required field "PatternAudit.pattern_id"`)}
	}
	if _, ok := _c.mutation.FromStatus(); !ok {
		return &ValidationError{Name: "from_status", err: errors.New(`ent: missing required field "PatternAudit.from_status"`)}
	}
	if _, ok := _c.mutation.ToStatus(); !ok {
		return &ValidationError{Name: "to_status", err: errors.New(`ent: missing required field "PatternAudit.to_status"`)}
	}
	if _, ok := _c.mutation.Trigger(); !ok {
		return &ValidationError{Name: "trigger", err: errors.New(`ent: missing required field "PatternAudit.trigger"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PatternAudit.created_at"`)}
	}
	if len(_c.mutation.PatternIDs()) == 0 {
		return &ValidationError{Name: "pattern", err: errors.New(`ent: missing required edge "PatternAudit.pattern"`)}
	}
	return nil
}

func (_c *PatternAuditCreate) sqlSave(ctx context.Context) (*PatternAudit, error) {
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

func (_c *PatternAuditCreate) createSpec() (*PatternAudit, *sqlgraph.CreateSpec) {
	var (
		_node = &PatternAudit{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(patternaudit.Table, sqlgraph.NewFieldSpec(patternaudit.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.FromStatus(); ok {
		_spec.SetField(patternaudit.FieldFromStatus, field.TypeString, value)
		_node.FromStatus = value
	}
	if value, ok := _c.mutation.ToStatus(); ok {
		_spec.SetField(patternaudit.FieldToStatus, field.TypeString, value)
		_node.ToStatus = value
	}
	if value, ok := _c.mutation.Trigger(); ok {
		_spec.SetField(patternaudit.FieldTrigger, field.TypeString, value)
		_node.Trigger = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(patternaudit.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.EvidenceSnapshot(); ok {
		_spec.SetField(patternaudit.FieldEvidenceSnapshot, field.TypeJSON, value)
		_node.EvidenceSnapshot = value
	}
	if value, ok := _c.mutation.CorrelationID(); ok {
		_spec.SetField(patternaudit.FieldCorrelationID, field.TypeString, value)
		_node.CorrelationID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(patternaudit.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.PatternIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patternaudit.PatternTable,
			Columns: []string{patternaudit.PatternColumn},
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

// PatternAuditCreateBulk is the builder for creating many PatternAudit entities in bulk.
type PatternAuditCreateBulk struct {
	config
	err      error
	builders []*PatternAuditCreate
}

// Save creates the PatternAudit entities in the database.
func (_c *PatternAuditCreateBulk) Save(ctx context.Context) ([]*PatternAudit, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PatternAudit, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PatternAuditMutation)
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
func (_c *PatternAuditCreateBulk) SaveX(ctx context.Context) []*PatternAudit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatternAuditCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatternAuditCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
