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
	"github.com/onex-platform/omniintelligence/ent/busoffset"
	"github.com/onex-platform/omniintelligence/ent/predicate"
)

// BusOffsetUpdate is the builder for updating BusOffset entities.
type BusOffsetUpdate struct {
	config
	hooks    []Hook
	mutation *BusOffsetMutation
}

// Where appends a list predicates to the BusOffsetUpdate builder.
func (_u *BusOffsetUpdate) Where(ps ...predicate.BusOffset) *BusOffsetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCommitted sets the "committed" field.
func (_u *BusOffsetUpdate) SetCommitted(v int) *BusOffsetUpdate {
	_u.mutation.ResetCommitted()
	_u.mutation.SetCommitted(v)
	return _u
}

// SetNillableCommitted sets the "committed" field if the given value is not nil.
func (_u *BusOffsetUpdate) SetNillableCommitted(v *int) *BusOffsetUpdate {
	if v != nil {
		_u.SetCommitted(*v)
	}
	return _u
}

// AddCommitted adds value to the "committed" field.
func (_u *BusOffsetUpdate) AddCommitted(v int) *BusOffsetUpdate {
	_u.mutation.AddCommitted(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BusOffsetUpdate) SetUpdatedAt(v time.Time) *BusOffsetUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BusOffsetMutation object of the builder.
func (_u *BusOffsetUpdate) Mutation() *BusOffsetMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BusOffsetUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BusOffsetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BusOffsetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BusOffsetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BusOffsetUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := busoffset.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *BusOffsetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(busoffset.Table, busoffset.Columns, sqlgraph.NewFieldSpec(busoffset.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Committed(); ok {
		_spec.SetField(busoffset.FieldCommitted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCommitted(); ok {
		_spec.AddField(busoffset.FieldCommitted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(busoffset.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{busoffset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BusOffsetUpdateOne is the builder for updating a single BusOffset entity.
type BusOffsetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BusOffsetMutation
}

// SetCommitted sets the "committed" field.
func (_u *BusOffsetUpdateOne) SetCommitted(v int) *BusOffsetUpdateOne {
	_u.mutation.ResetCommitted()
	_u.mutation.SetCommitted(v)
	return _u
}

// SetNillableCommitted sets the "committed" field if the given value is not nil.
func (_u *BusOffsetUpdateOne) SetNillableCommitted(v *int) *BusOffsetUpdateOne {
	if v != nil {
		_u.SetCommitted(*v)
	}
	return _u
}

// AddCommitted adds value to the "committed" field.
func (_u *BusOffsetUpdateOne) AddCommitted(v int) *BusOffsetUpdateOne {
	_u.mutation.AddCommitted(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BusOffsetUpdateOne) SetUpdatedAt(v time.Time) *BusOffsetUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BusOffsetMutation object of the builder.
func (_u *BusOffsetUpdateOne) Mutation() *BusOffsetMutation {
	return _u.mutation
}

// Where appends a list predicates to the BusOffsetUpdate builder.
func (_u *BusOffsetUpdateOne) Where(ps ...predicate.BusOffset) *BusOffsetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BusOffsetUpdateOne) Select(field string, fields ...string) *BusOffsetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BusOffset entity.
func (_u *BusOffsetUpdateOne) Save(ctx context.Context) (*BusOffset, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BusOffsetUpdateOne) SaveX(ctx context.Context) *BusOffset {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BusOffsetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BusOffsetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BusOffsetUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := busoffset.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *BusOffsetUpdateOne) sqlSave(ctx context.Context) (_node *BusOffset, err error) {
	_spec := sqlgraph.NewUpdateSpec(busoffset.Table, busoffset.Columns, sqlgraph.NewFieldSpec(busoffset.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BusOffset.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, busoffset.FieldID)
		for _, f := range fields {
			if !busoffset.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != busoffset.FieldID {
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
	if value, ok := _u.mutation.Committed(); ok {
		_spec.SetField(busoffset.FieldCommitted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCommitted(); ok {
		_spec.AddField(busoffset.FieldCommitted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(busoffset.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &BusOffset{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{busoffset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
