// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/onex-platform/omniintelligence/ent/predicate"
	"github.com/onex-platform/omniintelligence/ent/sessionoutcome"
)

// SessionOutcomeUpdate is the builder for updating SessionOutcome entities.
type SessionOutcomeUpdate struct {
	config
	hooks    []Hook
	mutation *SessionOutcomeMutation
}

// Where appends a list predicates to the SessionOutcomeUpdate builder.
func (_u *SessionOutcomeUpdate) Where(ps ...predicate.SessionOutcome) *SessionOutcomeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the SessionOutcomeMutation object of the builder.
func (_u *SessionOutcomeUpdate) Mutation() *SessionOutcomeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionOutcomeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionOutcomeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionOutcomeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionOutcomeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionOutcomeUpdate) check() error {
	if _u.mutation.PatternCleared() && len(_u.mutation.PatternIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SessionOutcome.pattern"`)
	}
	return nil
}

func (_u *SessionOutcomeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionoutcome.Table, sessionoutcome.Columns, sqlgraph.NewFieldSpec(sessionoutcome.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionoutcome.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionOutcomeUpdateOne is the builder for updating a single SessionOutcome entity.
type SessionOutcomeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionOutcomeMutation
}

// Mutation returns the SessionOutcomeMutation object of the builder.
func (_u *SessionOutcomeUpdateOne) Mutation() *SessionOutcomeMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionOutcomeUpdate builder.
func (_u *SessionOutcomeUpdateOne) Where(ps ...predicate.SessionOutcome) *SessionOutcomeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionOutcomeUpdateOne) Select(field string, fields ...string) *SessionOutcomeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionOutcome entity.
func (_u *SessionOutcomeUpdateOne) Save(ctx context.Context) (*SessionOutcome, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionOutcomeUpdateOne) SaveX(ctx context.Context) *SessionOutcome {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionOutcomeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionOutcomeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionOutcomeUpdateOne) check() error {
	if _u.mutation.PatternCleared() && len(_u.mutation.PatternIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SessionOutcome.pattern"`)
	}
	return nil
}

func (_u *SessionOutcomeUpdateOne) sqlSave(ctx context.Context) (_node *SessionOutcome, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionoutcome.Table, sessionoutcome.Columns, sqlgraph.NewFieldSpec(sessionoutcome.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionOutcome.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionoutcome.FieldID)
		for _, f := range fields {
			if !sessionoutcome.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionoutcome.FieldID {
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
	_node = &SessionOutcome{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionoutcome.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
