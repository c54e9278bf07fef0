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
	"github.com/onex-platform/omniintelligence/ent/fsmstate"
	"github.com/onex-platform/omniintelligence/ent/predicate"
)

// FSMStateUpdate is the builder for updating FSMState entities.
type FSMStateUpdate struct {
	config
	hooks    []Hook
	mutation *FSMStateMutation
}

// Where appends a list predicates to the FSMStateUpdate builder.
func (_u *FSMStateUpdate) Where(ps ...predicate.FSMState) *FSMStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCurrentState sets the "current_state" field.
func (_u *FSMStateUpdate) SetCurrentState(v string) *FSMStateUpdate {
	_u.mutation.SetCurrentState(v)
	return _u
}

// SetNillableCurrentState sets the "current_state" field if the given value is not nil.
func (_u *FSMStateUpdate) SetNillableCurrentState(v *string) *FSMStateUpdate {
	if v != nil {
		_u.SetCurrentState(*v)
	}
	return _u
}

// SetEnteredAt sets the "entered_at" field.
func (_u *FSMStateUpdate) SetEnteredAt(v time.Time) *FSMStateUpdate {
	_u.mutation.SetEnteredAt(v)
	return _u
}

// SetNillableEnteredAt sets the "entered_at" field if the given value is not nil.
func (_u *FSMStateUpdate) SetNillableEnteredAt(v *time.Time) *FSMStateUpdate {
	if v != nil {
		_u.SetEnteredAt(*v)
	}
	return _u
}

// SetLastEventID sets the "last_event_id" field.
func (_u *FSMStateUpdate) SetLastEventID(v string) *FSMStateUpdate {
	_u.mutation.SetLastEventID(v)
	return _u
}

// SetNillableLastEventID sets the "last_event_id" field if the given value is not nil.
func (_u *FSMStateUpdate) SetNillableLastEventID(v *string) *FSMStateUpdate {
	if v != nil {
		_u.SetLastEventID(*v)
	}
	return _u
}

// ClearLastEventID clears the value of the "last_event_id" field.
func (_u *FSMStateUpdate) ClearLastEventID() *FSMStateUpdate {
	_u.mutation.ClearLastEventID()
	return _u
}

// Mutation returns the FSMStateMutation object of the builder.
func (_u *FSMStateUpdate) Mutation() *FSMStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FSMStateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FSMStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FSMStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FSMStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *FSMStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(fsmstate.Table, fsmstate.Columns, sqlgraph.NewFieldSpec(fsmstate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CurrentState(); ok {
		_spec.SetField(fsmstate.FieldCurrentState, field.TypeString, value)
	}
	if value, ok := _u.mutation.EnteredAt(); ok {
		_spec.SetField(fsmstate.FieldEnteredAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastEventID(); ok {
		_spec.SetField(fsmstate.FieldLastEventID, field.TypeString, value)
	}
	if _u.mutation.LastEventIDCleared() {
		_spec.ClearField(fsmstate.FieldLastEventID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fsmstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FSMStateUpdateOne is the builder for updating a single FSMState entity.
type FSMStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FSMStateMutation
}

// SetCurrentState sets the "current_state" field.
func (_u *FSMStateUpdateOne) SetCurrentState(v string) *FSMStateUpdateOne {
	_u.mutation.SetCurrentState(v)
	return _u
}

// SetNillableCurrentState sets the "current_state" field if the given value is not nil.
func (_u *FSMStateUpdateOne) SetNillableCurrentState(v *string) *FSMStateUpdateOne {
	if v != nil {
		_u.SetCurrentState(*v)
	}
	return _u
}

// SetEnteredAt sets the "entered_at" field.
func (_u *FSMStateUpdateOne) SetEnteredAt(v time.Time) *FSMStateUpdateOne {
	_u.mutation.SetEnteredAt(v)
	return _u
}

// SetNillableEnteredAt sets the "entered_at" field if the given value is not nil.
func (_u *FSMStateUpdateOne) SetNillableEnteredAt(v *time.Time) *FSMStateUpdateOne {
	if v != nil {
		_u.SetEnteredAt(*v)
	}
	return _u
}

// SetLastEventID sets the "last_event_id" field.
func (_u *FSMStateUpdateOne) SetLastEventID(v string) *FSMStateUpdateOne {
	_u.mutation.SetLastEventID(v)
	return _u
}

// SetNillableLastEventID sets the "last_event_id" field if the given value is not nil.
func (_u *FSMStateUpdateOne) SetNillableLastEventID(v *string) *FSMStateUpdateOne {
	if v != nil {
		_u.SetLastEventID(*v)
	}
	return _u
}

// ClearLastEventID clears the value of the "last_event_id" field.
func (_u *FSMStateUpdateOne) ClearLastEventID() *FSMStateUpdateOne {
	_u.mutation.ClearLastEventID()
	return _u
}

// Mutation returns the FSMStateMutation object of the builder.
func (_u *FSMStateUpdateOne) Mutation() *FSMStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the FSMStateUpdate builder.
func (_u *FSMStateUpdateOne) Where(ps ...predicate.FSMState) *FSMStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FSMStateUpdateOne) Select(field string, fields ...string) *FSMStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FSMState entity.
func (_u *FSMStateUpdateOne) Save(ctx context.Context) (*FSMState, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FSMStateUpdateOne) SaveX(ctx context.Context) *FSMState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FSMStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FSMStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *FSMStateUpdateOne) sqlSave(ctx context.Context) (_node *FSMState, err error) {
	_spec := sqlgraph.NewUpdateSpec(fsmstate.Table, fsmstate.Columns, sqlgraph.NewFieldSpec(fsmstate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FSMState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, fsmstate.FieldID)
		for _, f := range fields {
			if !fsmstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != fsmstate.FieldID {
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
	if value, ok := _u.mutation.CurrentState(); ok {
		_spec.SetField(fsmstate.FieldCurrentState, field.TypeString, value)
	}
	if value, ok := _u.mutation.EnteredAt(); ok {
		_spec.SetField(fsmstate.FieldEnteredAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastEventID(); ok {
		_spec.SetField(fsmstate.FieldLastEventID, field.TypeString, value)
	}
	if _u.mutation.LastEventIDCleared() {
		_spec.ClearField(fsmstate.FieldLastEventID, field.TypeString)
	}
	_node = &FSMState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fsmstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
