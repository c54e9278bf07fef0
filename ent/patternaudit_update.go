// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/onex-platform/omniintelligence/ent/patternaudit"
	"github.com/onex-platform/omniintelligence/ent/predicate"
)

// PatternAuditUpdate is the builder for updating PatternAudit entities.
type PatternAuditUpdate struct {
	config
	hooks    []Hook
	mutation *PatternAuditMutation
}

// Where appends a list predicates to the PatternAuditUpdate builder.
func (_u *PatternAuditUpdate) Where(ps ...predicate.PatternAudit) *PatternAuditUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFromStatus sets the "from_status" field.
func (_u *PatternAuditUpdate) SetFromStatus(v string) *PatternAuditUpdate {
	_u.mutation.SetFromStatus(v)
	return _u
}

// SetNillableFromStatus sets the "from_status" field if the given value is not nil.
func (_u *PatternAuditUpdate) SetNillableFromStatus(v *string) *PatternAuditUpdate {
	if v != nil {
		_u.SetFromStatus(*v)
	}
	return _u
}

// SetToStatus sets the "to_status" field.
func (_u *PatternAuditUpdate) SetToStatus(v string) *PatternAuditUpdate {
	_u.mutation.SetToStatus(v)
	return _u
}

// SetNillableToStatus sets the "to_status" field if the given value is not nil.
func (_u *PatternAuditUpdate) SetNillableToStatus(v *string) *PatternAuditUpdate {
	if v != nil {
		_u.SetToStatus(*v)
	}
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *PatternAuditUpdate) SetTrigger(v string) *PatternAuditUpdate {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *PatternAuditUpdate) SetNillableTrigger(v *string) *PatternAuditUpdate {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *PatternAuditUpdate) SetReason(v string) *PatternAuditUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *PatternAuditUpdate) SetNillableReason(v *string) *PatternAuditUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *PatternAuditUpdate) ClearReason() *PatternAuditUpdate {
	_u.mutation.ClearReason()
	return _u
}

// SetEvidenceSnapshot sets the "evidence_snapshot" field.
func (_u *PatternAuditUpdate) SetEvidenceSnapshot(v map[string]interface{}) *PatternAuditUpdate {
	_u.mutation.SetEvidenceSnapshot(v)
	return _u
}

// ClearEvidenceSnapshot clears the value of the "evidence_snapshot" field.
func (_u *PatternAuditUpdate) ClearEvidenceSnapshot() *PatternAuditUpdate {
	_u.mutation.ClearEvidenceSnapshot()
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *PatternAuditUpdate) SetCorrelationID(v string) *PatternAuditUpdate {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *PatternAuditUpdate) SetNillableCorrelationID(v *string) *PatternAuditUpdate {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (_u *PatternAuditUpdate) ClearCorrelationID() *PatternAuditUpdate {
	_u.mutation.ClearCorrelationID()
	return _u
}

// Mutation returns the PatternAuditMutation object of the builder.
func (_u *PatternAuditUpdate) Mutation() *PatternAuditMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PatternAuditUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatternAuditUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PatternAuditUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatternAuditUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatternAuditUpdate) check() error {
	if _u.mutation.PatternCleared() && len(_u.mutation.PatternIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PatternAudit.pattern"`)
	}
	return nil
}

func (_u *PatternAuditUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patternaudit.Table, patternaudit.Columns, sqlgraph.NewFieldSpec(patternaudit.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FromStatus(); ok {
		_spec.SetField(patternaudit.FieldFromStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToStatus(); ok {
		_spec.SetField(patternaudit.FieldToStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(patternaudit.FieldTrigger, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(patternaudit.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(patternaudit.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.EvidenceSnapshot(); ok {
		_spec.SetField(patternaudit.FieldEvidenceSnapshot, field.TypeJSON, value)
	}
	if _u.mutation.EvidenceSnapshotCleared() {
		_spec.ClearField(patternaudit.FieldEvidenceSnapshot, field.TypeJSON)
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(patternaudit.FieldCorrelationID, field.TypeString, value)
	}
	if _u.mutation.CorrelationIDCleared() {
		_spec.ClearField(patternaudit.FieldCorrelationID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patternaudit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PatternAuditUpdateOne is the builder for updating a single PatternAudit entity.
type PatternAuditUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PatternAuditMutation
}

// SetFromStatus sets the "from_status" field.
func (_u *PatternAuditUpdateOne) SetFromStatus(v string) *PatternAuditUpdateOne {
	_u.mutation.SetFromStatus(v)
	return _u
}

// SetNillableFromStatus sets the "from_status" field if the given value is not nil.
func (_u *PatternAuditUpdateOne) SetNillableFromStatus(v *string) *PatternAuditUpdateOne {
	if v != nil {
		_u.SetFromStatus(*v)
	}
	return _u
}

// SetToStatus sets the "to_status" field.
func (_u *PatternAuditUpdateOne) SetToStatus(v string) *PatternAuditUpdateOne {
	_u.mutation.SetToStatus(v)
	return _u
}

// SetNillableToStatus sets the "to_status" field if the given value is not nil.
func (_u *PatternAuditUpdateOne) SetNillableToStatus(v *string) *PatternAuditUpdateOne {
	if v != nil {
		_u.SetToStatus(*v)
	}
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *PatternAuditUpdateOne) SetTrigger(v string) *PatternAuditUpdateOne {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *PatternAuditUpdateOne) SetNillableTrigger(v *string) *PatternAuditUpdateOne {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *PatternAuditUpdateOne) SetReason(v string) *PatternAuditUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *PatternAuditUpdateOne) SetNillableReason(v *string) *PatternAuditUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *PatternAuditUpdateOne) ClearReason() *PatternAuditUpdateOne {
	_u.mutation.ClearReason()
	return _u
}

// SetEvidenceSnapshot sets the "evidence_snapshot" field.
func (_u *PatternAuditUpdateOne) SetEvidenceSnapshot(v map[string]interface{}) *PatternAuditUpdateOne {
	_u.mutation.SetEvidenceSnapshot(v)
	return _u
}

// ClearEvidenceSnapshot clears the value of the "evidence_snapshot" field.
func (_u *PatternAuditUpdateOne) ClearEvidenceSnapshot() *PatternAuditUpdateOne {
	_u.mutation.ClearEvidenceSnapshot()
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *PatternAuditUpdateOne) SetCorrelationID(v string) *PatternAuditUpdateOne {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *PatternAuditUpdateOne) SetNillableCorrelationID(v *string) *PatternAuditUpdateOne {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (_u *PatternAuditUpdateOne) ClearCorrelationID() *PatternAuditUpdateOne {
	_u.mutation.ClearCorrelationID()
	return _u
}

// Mutation returns the PatternAuditMutation object of the builder.
func (_u *PatternAuditUpdateOne) Mutation() *PatternAuditMutation {
	return _u.mutation
}

// Where appends a list predicates to the PatternAuditUpdate builder.
func (_u *PatternAuditUpdateOne) Where(ps ...predicate.PatternAudit) *PatternAuditUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PatternAuditUpdateOne) Select(field string, fields ...string) *PatternAuditUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PatternAudit entity.
func (_u *PatternAuditUpdateOne) Save(ctx context.Context) (*PatternAudit, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatternAuditUpdateOne) SaveX(ctx context.Context) *PatternAudit {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PatternAuditUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatternAuditUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatternAuditUpdateOne) check() error {
	if _u.mutation.PatternCleared() && len(_u.mutation.PatternIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PatternAudit.pattern"`)
	}
	return nil
}

func (_u *PatternAuditUpdateOne) sqlSave(ctx context.Context) (_node *PatternAudit, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patternaudit.Table, patternaudit.Columns, sqlgraph.NewFieldSpec(patternaudit.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PatternAudit.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, patternaudit.FieldID)
		for _, f := range fields {
			if !patternaudit.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != patternaudit.FieldID {
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
	if value, ok := _u.mutation.FromStatus(); ok {
		_spec.SetField(patternaudit.FieldFromStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToStatus(); ok {
		_spec.SetField(patternaudit.FieldToStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(patternaudit.FieldTrigger, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(patternaudit.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(patternaudit.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.EvidenceSnapshot(); ok {
		_spec.SetField(patternaudit.FieldEvidenceSnapshot, field.TypeJSON, value)
	}
	if _u.mutation.EvidenceSnapshotCleared() {
		_spec.ClearField(patternaudit.FieldEvidenceSnapshot, field.TypeJSON)
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(patternaudit.FieldCorrelationID, field.TypeString, value)
	}
	if _u.mutation.CorrelationIDCleared() {
		_spec.ClearField(patternaudit.FieldCorrelationID, field.TypeString)
	}
	_node = &PatternAudit{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patternaudit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
