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
	"github.com/onex-platform/omniintelligence/ent/pattern"
	"github.com/onex-platform/omniintelligence/ent/patternaudit"
	"github.com/onex-platform/omniintelligence/ent/patterndisable"
	"github.com/onex-platform/omniintelligence/ent/patterninjection"
	"github.com/onex-platform/omniintelligence/ent/predicate"
	"github.com/onex-platform/omniintelligence/ent/sessionoutcome"
)

// PatternUpdate is the builder for updating Pattern entities.
type PatternUpdate struct {
	config
	hooks    []Hook
	mutation *PatternMutation
}

// Where appends a list predicates to the PatternUpdate builder.
func (_u *PatternUpdate) Where(ps ...predicate.Pattern) *PatternUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSignatureHash sets the "signature_hash" field.
func (_u *PatternUpdate) SetSignatureHash(v string) *PatternUpdate {
	_u.mutation.SetSignatureHash(v)
	return _u
}

// SetNillableSignatureHash sets the "signature_hash" field if the given value is not nil.
func (_u *PatternUpdate) SetNillableSignatureHash(v *string) *PatternUpdate {
	if v != nil {
		_u.SetSignatureHash(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *PatternUpdate) SetBody(v string) *PatternUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *PatternUpdate) SetNillableBody(v *string) *PatternUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *PatternUpdate) SetMetadata(v map[string]interface{}) *PatternUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *PatternUpdate) ClearMetadata() *PatternUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetLifecycleStatus sets the "lifecycle_status" field.
func (_u *PatternUpdate) SetLifecycleStatus(v pattern.LifecycleStatus) *PatternUpdate {
	_u.mutation.SetLifecycleStatus(v)
	return _u
}

// SetNillableLifecycleStatus sets the "lifecycle_status" field if the given value is not nil.
func (_u *PatternUpdate) SetNillableLifecycleStatus(v *pattern.LifecycleStatus) *PatternUpdate {
	if v != nil {
		_u.SetLifecycleStatus(*v)
	}
	return _u
}

// SetQualityScore sets the "quality_score" field.
func (_u *PatternUpdate) SetQualityScore(v float64) *PatternUpdate {
	_u.mutation.ResetQualityScore()
	_u.mutation.SetQualityScore(v)
	return _u
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_u *PatternUpdate) SetNillableQualityScore(v *float64) *PatternUpdate {
	if v != nil {
		_u.SetQualityScore(*v)
	}
	return _u
}

// AddQualityScore adds value to the "quality_score" field.
func (_u *PatternUpdate) AddQualityScore(v float64) *PatternUpdate {
	_u.mutation.AddQualityScore(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *PatternUpdate) SetConfidence(v float64) *PatternUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *PatternUpdate) SetNillableConfidence(v *float64) *PatternUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *PatternUpdate) AddConfidence(v float64) *PatternUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetEvidenceTier sets the "evidence_tier" field.
func (_u *PatternUpdate) SetEvidenceTier(v pattern.EvidenceTier) *PatternUpdate {
	_u.mutation.SetEvidenceTier(v)
	return _u
}

// SetNillableEvidenceTier sets the "evidence_tier" field if the given value is not nil.
func (_u *PatternUpdate) SetNillableEvidenceTier(v *pattern.EvidenceTier) *PatternUpdate {
	if v != nil {
		_u.SetEvidenceTier(*v)
	}
	return _u
}

// SetVersionTag sets the "version_tag" field.
func (_u *PatternUpdate) SetVersionTag(v string) *PatternUpdate {
	_u.mutation.SetVersionTag(v)
	return _u
}

// SetNillableVersionTag sets the "version_tag" field if the given value is not nil.
func (_u *PatternUpdate) SetNillableVersionTag(v *string) *PatternUpdate {
	if v != nil {
		_u.SetVersionTag(*v)
	}
	return _u
}

// SetLastPromotedAt sets the "last_promoted_at" field.
func (_u *PatternUpdate) SetLastPromotedAt(v time.Time) *PatternUpdate {
	_u.mutation.SetLastPromotedAt(v)
	return _u
}

// SetNillableLastPromotedAt sets the "last_promoted_at" field if the given value is not nil.
func (_u *PatternUpdate) SetNillableLastPromotedAt(v *time.Time) *PatternUpdate {
	if v != nil {
		_u.SetLastPromotedAt(*v)
	}
	return _u
}

// ClearLastPromotedAt clears the value of the "last_promoted_at" field.
func (_u *PatternUpdate) ClearLastPromotedAt() *PatternUpdate {
	_u.mutation.ClearLastPromotedAt()
	return _u
}

// SetLastDemotedAt sets the "last_demoted_at" field.
func (_u *PatternUpdate) SetLastDemotedAt(v time.Time) *PatternUpdate {
	_u.mutation.SetLastDemotedAt(v)
	return _u
}

// SetNillableLastDemotedAt sets the "last_demoted_at" field if the given value is not nil.
func (_u *PatternUpdate) SetNillableLastDemotedAt(v *time.Time) *PatternUpdate {
	if v != nil {
		_u.SetLastDemotedAt(*v)
	}
	return _u
}

// ClearLastDemotedAt clears the value of the "last_demoted_at" field.
func (_u *PatternUpdate) ClearLastDemotedAt() *PatternUpdate {
	_u.mutation.ClearLastDemotedAt()
	return _u
}

// SetDeprecatedAt sets the "deprecated_at" field.
func (_u *PatternUpdate) SetDeprecatedAt(v time.Time) *PatternUpdate {
	_u.mutation.SetDeprecatedAt(v)
	return _u
}

// SetNillableDeprecatedAt sets the "deprecated_at" field if the given value is not nil.
func (_u *PatternUpdate) SetNillableDeprecatedAt(v *time.Time) *PatternUpdate {
	if v != nil {
		_u.SetDeprecatedAt(*v)
	}
	return _u
}

// ClearDeprecatedAt clears the value of the "deprecated_at" field.
func (_u *PatternUpdate) ClearDeprecatedAt() *PatternUpdate {
	_u.mutation.ClearDeprecatedAt()
	return _u
}

// AddAuditEntryIDs adds the "audit_entries" edge to the PatternAudit entity by IDs.
func (_u *PatternUpdate) AddAuditEntryIDs(ids ...int) *PatternUpdate {
	_u.mutation.AddAuditEntryIDs(ids...)
	return _u
}

// AddAuditEntries adds the "audit_entries" edges to the PatternAudit entity.
func (_u *PatternUpdate) AddAuditEntries(v ...*PatternAudit) *PatternUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuditEntryIDs(ids...)
}

// AddInjectionIDs adds the "injections" edge to the PatternInjection entity by IDs.
func (_u *PatternUpdate) AddInjectionIDs(ids ...string) *PatternUpdate {
	_u.mutation.AddInjectionIDs(ids...)
	return _u
}

// AddInjections adds the "injections" edges to the PatternInjection entity.
func (_u *PatternUpdate) AddInjections(v ...*PatternInjection) *PatternUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInjectionIDs(ids...)
}

// AddDisableEventIDs adds the "disable_events" edge to the PatternDisable entity by IDs.
func (_u *PatternUpdate) AddDisableEventIDs(ids ...int) *PatternUpdate {
	_u.mutation.AddDisableEventIDs(ids...)
	return _u
}

// AddDisableEvents adds the "disable_events" edges to the PatternDisable entity.
func (_u *PatternUpdate) AddDisableEvents(v ...*PatternDisable) *PatternUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDisableEventIDs(ids...)
}

// AddOutcomeIDs adds the "outcomes" edge to the SessionOutcome entity by IDs.
func (_u *PatternUpdate) AddOutcomeIDs(ids ...int) *PatternUpdate {
	_u.mutation.AddOutcomeIDs(ids...)
	return _u
}

// AddOutcomes adds the "outcomes" edges to the SessionOutcome entity.
func (_u *PatternUpdate) AddOutcomes(v ...*SessionOutcome) *PatternUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOutcomeIDs(ids...)
}

// SetFeedbackAggregateID sets the "feedback_aggregate" edge to the FeedbackAggregate entity by ID.
func (_u *PatternUpdate) SetFeedbackAggregateID(id int) *PatternUpdate {
	_u.mutation.SetFeedbackAggregateID(id)
	return _u
}

// SetNillableFeedbackAggregateID sets the "feedback_aggregate" edge to the FeedbackAggregate entity by ID if the given value is not nil.
func (_u *PatternUpdate) SetNillableFeedbackAggregateID(id *int) *PatternUpdate {
	if id != nil {
		_u = _u.SetFeedbackAggregateID(*id)
	}
	return _u
}

// SetFeedbackAggregate sets the "feedback_aggregate" edge to the FeedbackAggregate entity.
func (_u *PatternUpdate) SetFeedbackAggregate(v *FeedbackAggregate) *PatternUpdate {
	return _u.SetFeedbackAggregateID(v.ID)
}

// Mutation returns the PatternMutation object of the builder.
func (_u *PatternUpdate) Mutation() *PatternMutation {
	return _u.mutation
}

// ClearAuditEntries clears all "audit_entries" edges to the PatternAudit entity.
func (_u *PatternUpdate) ClearAuditEntries() *PatternUpdate {
	_u.mutation.ClearAuditEntries()
	return _u
}

// RemoveAuditEntryIDs removes the "audit_entries" edge to PatternAudit entities by IDs.
func (_u *PatternUpdate) RemoveAuditEntryIDs(ids ...int) *PatternUpdate {
	_u.mutation.RemoveAuditEntryIDs(ids...)
	return _u
}

// RemoveAuditEntries removes "audit_entries" edges to PatternAudit entities.
func (_u *PatternUpdate) RemoveAuditEntries(v ...*PatternAudit) *PatternUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuditEntryIDs(ids...)
}

// ClearInjections clears all "injections" edges to the PatternInjection entity.
func (_u *PatternUpdate) ClearInjections() *PatternUpdate {
	_u.mutation.ClearInjections()
	return _u
}

// RemoveInjectionIDs removes the "injections" edge to PatternInjection entities by IDs.
func (_u *PatternUpdate) RemoveInjectionIDs(ids ...string) *PatternUpdate {
	_u.mutation.RemoveInjectionIDs(ids...)
	return _u
}

// RemoveInjections removes "injections" edges to PatternInjection entities.
func (_u *PatternUpdate) RemoveInjections(v ...*PatternInjection) *PatternUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInjectionIDs(ids...)
}

// ClearDisableEvents clears all "disable_events" edges to the PatternDisable entity.
func (_u *PatternUpdate) ClearDisableEvents() *PatternUpdate {
	_u.mutation.ClearDisableEvents()
	return _u
}

// RemoveDisableEventIDs removes the "disable_events" edge to PatternDisable entities by IDs.
func (_u *PatternUpdate) RemoveDisableEventIDs(ids ...int) *PatternUpdate {
	_u.mutation.RemoveDisableEventIDs(ids...)
	return _u
}

// RemoveDisableEvents removes "disable_events" edges to PatternDisable entities.
func (_u *PatternUpdate) RemoveDisableEvents(v ...*PatternDisable) *PatternUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDisableEventIDs(ids...)
}

// ClearOutcomes clears all "outcomes" edges to the SessionOutcome entity.
func (_u *PatternUpdate) ClearOutcomes() *PatternUpdate {
	_u.mutation.ClearOutcomes()
	return _u
}

// RemoveOutcomeIDs removes the "outcomes" edge to SessionOutcome entities by IDs.
func (_u *PatternUpdate) RemoveOutcomeIDs(ids ...int) *PatternUpdate {
	_u.mutation.RemoveOutcomeIDs(ids...)
	return _u
}

// RemoveOutcomes removes "outcomes" edges to SessionOutcome entities.
func (_u *PatternUpdate) RemoveOutcomes(v ...*SessionOutcome) *PatternUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOutcomeIDs(ids...)
}

// ClearFeedbackAggregate clears the "feedback_aggregate" edge to the FeedbackAggregate entity.
func (_u *PatternUpdate) ClearFeedbackAggregate() *PatternUpdate {
	_u.mutation.ClearFeedbackAggregate()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PatternUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatternUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PatternUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatternUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatternUpdate) check() error {
	if v, ok := _u.mutation.LifecycleStatus(); ok {
		if err := pattern.LifecycleStatusValidator(v); err != nil {
			return &ValidationError{Name: "lifecycle_status", err: fmt.Errorf(`ent: validator failed for field "Pattern.lifecycle_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EvidenceTier(); ok {
		if err := pattern.EvidenceTierValidator(v); err != nil {
			return &ValidationError{Name: "evidence_tier", err: fmt.Errorf(`ent: validator failed for field "Pattern.evidence_tier": %w`, err)}
		}
	}
	return nil
}

func (_u *PatternUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pattern.Table, pattern.Columns, sqlgraph.NewFieldSpec(pattern.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SignatureHash(); ok {
		_spec.SetField(pattern.FieldSignatureHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(pattern.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(pattern.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(pattern.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.LifecycleStatus(); ok {
		_spec.SetField(pattern.FieldLifecycleStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.QualityScore(); ok {
		_spec.SetField(pattern.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQualityScore(); ok {
		_spec.AddField(pattern.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(pattern.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(pattern.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EvidenceTier(); ok {
		_spec.SetField(pattern.FieldEvidenceTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.VersionTag(); ok {
		_spec.SetField(pattern.FieldVersionTag, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastPromotedAt(); ok {
		_spec.SetField(pattern.FieldLastPromotedAt, field.TypeTime, value)
	}
	if _u.mutation.LastPromotedAtCleared() {
		_spec.ClearField(pattern.FieldLastPromotedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastDemotedAt(); ok {
		_spec.SetField(pattern.FieldLastDemotedAt, field.TypeTime, value)
	}
	if _u.mutation.LastDemotedAtCleared() {
		_spec.ClearField(pattern.FieldLastDemotedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeprecatedAt(); ok {
		_spec.SetField(pattern.FieldDeprecatedAt, field.TypeTime, value)
	}
	if _u.mutation.DeprecatedAtCleared() {
		_spec.ClearField(pattern.FieldDeprecatedAt, field.TypeTime)
	}
	if _u.mutation.AuditEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pattern.AuditEntriesTable,
			Columns: []string{pattern.AuditEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patternaudit.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuditEntriesIDs(); len(nodes) > 0 && !_u.mutation.AuditEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pattern.AuditEntriesTable,
			Columns: []string{pattern.AuditEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patternaudit.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pattern.AuditEntriesTable,
			Columns: []string{pattern.AuditEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patternaudit.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InjectionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pattern.InjectionsTable,
			Columns: []string{pattern.InjectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patterninjection.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInjectionsIDs(); len(nodes) > 0 && !_u.mutation.InjectionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pattern.InjectionsTable,
			Columns: []string{pattern.InjectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patterninjection.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InjectionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pattern.InjectionsTable,
			Columns: []string{pattern.InjectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patterninjection.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DisableEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pattern.DisableEventsTable,
			Columns: []string{pattern.DisableEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patterndisable.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDisableEventsIDs(); len(nodes) > 0 && !_u.mutation.DisableEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pattern.DisableEventsTable,
			Columns: []string{pattern.DisableEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patterndisable.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DisableEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pattern.DisableEventsTable,
			Columns: []string{pattern.DisableEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patterndisable.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OutcomesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pattern.OutcomesTable,
			Columns: []string{pattern.OutcomesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionoutcome.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOutcomesIDs(); len(nodes) > 0 && !_u.mutation.OutcomesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pattern.OutcomesTable,
			Columns: []string{pattern.OutcomesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionoutcome.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OutcomesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pattern.OutcomesTable,
			Columns: []string{pattern.OutcomesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionoutcome.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FeedbackAggregateCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   pattern.FeedbackAggregateTable,
			Columns: []string{pattern.FeedbackAggregateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(feedbackaggregate.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FeedbackAggregateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   pattern.FeedbackAggregateTable,
			Columns: []string{pattern.FeedbackAggregateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(feedbackaggregate.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pattern.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PatternUpdateOne is the builder for updating a single Pattern entity.
type PatternUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PatternMutation
}

// SetSignatureHash sets the "signature_hash" field.
func (_u *PatternUpdateOne) SetSignatureHash(v string) *PatternUpdateOne {
	_u.mutation.SetSignatureHash(v)
	return _u
}

// SetNillableSignatureHash sets the "signature_hash" field if the given value is not nil.
func (_u *PatternUpdateOne) SetNillableSignatureHash(v *string) *PatternUpdateOne {
	if v != nil {
		_u.SetSignatureHash(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *PatternUpdateOne) SetBody(v string) *PatternUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *PatternUpdateOne) SetNillableBody(v *string) *PatternUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *PatternUpdateOne) SetMetadata(v map[string]interface{}) *PatternUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *PatternUpdateOne) ClearMetadata() *PatternUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetLifecycleStatus sets the "lifecycle_status" field.
func (_u *PatternUpdateOne) SetLifecycleStatus(v pattern.LifecycleStatus) *PatternUpdateOne {
	_u.mutation.SetLifecycleStatus(v)
	return _u
}

// SetNillableLifecycleStatus sets the "lifecycle_status" field if the given value is not nil.
func (_u *PatternUpdateOne) SetNillableLifecycleStatus(v *pattern.LifecycleStatus) *PatternUpdateOne {
	if v != nil {
		_u.SetLifecycleStatus(*v)
	}
	return _u
}

// SetQualityScore sets the "quality_score" field.
func (_u *PatternUpdateOne) SetQualityScore(v float64) *PatternUpdateOne {
	_u.mutation.ResetQualityScore()
	_u.mutation.SetQualityScore(v)
	return _u
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_u *PatternUpdateOne) SetNillableQualityScore(v *float64) *PatternUpdateOne {
	if v != nil {
		_u.SetQualityScore(*v)
	}
	return _u
}

// AddQualityScore adds value to the "quality_score" field.
func (_u *PatternUpdateOne) AddQualityScore(v float64) *PatternUpdateOne {
	_u.mutation.AddQualityScore(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *PatternUpdateOne) SetConfidence(v float64) *PatternUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *PatternUpdateOne) SetNillableConfidence(v *float64) *PatternUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *PatternUpdateOne) AddConfidence(v float64) *PatternUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetEvidenceTier sets the "evidence_tier" field.
func (_u *PatternUpdateOne) SetEvidenceTier(v pattern.EvidenceTier) *PatternUpdateOne {
	_u.mutation.SetEvidenceTier(v)
	return _u
}

// SetNillableEvidenceTier sets the "evidence_tier" field if the given value is not nil.
func (_u *PatternUpdateOne) SetNillableEvidenceTier(v *pattern.EvidenceTier) *PatternUpdateOne {
	if v != nil {
		_u.SetEvidenceTier(*v)
	}
	return _u
}

// SetVersionTag sets the "version_tag" field.
func (_u *PatternUpdateOne) SetVersionTag(v string) *PatternUpdateOne {
	_u.mutation.SetVersionTag(v)
	return _u
}

// SetNillableVersionTag sets the "version_tag" field if the given value is not nil.
func (_u *PatternUpdateOne) SetNillableVersionTag(v *string) *PatternUpdateOne {
	if v != nil {
		_u.SetVersionTag(*v)
	}
	return _u
}

// SetLastPromotedAt sets the "last_promoted_at" field.
func (_u *PatternUpdateOne) SetLastPromotedAt(v time.Time) *PatternUpdateOne {
	_u.mutation.SetLastPromotedAt(v)
	return _u
}

// SetNillableLastPromotedAt sets the "last_promoted_at" field if the given value is not nil.
func (_u *PatternUpdateOne) SetNillableLastPromotedAt(v *time.Time) *PatternUpdateOne {
	if v != nil {
		_u.SetLastPromotedAt(*v)
	}
	return _u
}

// ClearLastPromotedAt clears the value of the "last_promoted_at" field.
func (_u *PatternUpdateOne) ClearLastPromotedAt() *PatternUpdateOne {
	_u.mutation.ClearLastPromotedAt()
	return _u
}

// SetLastDemotedAt sets the "last_demoted_at" field.
func (_u *PatternUpdateOne) SetLastDemotedAt(v time.Time) *PatternUpdateOne {
	_u.mutation.SetLastDemotedAt(v)
	return _u
}

// SetNillableLastDemotedAt sets the "last_demoted_at" field if the given value is not nil.
func (_u *PatternUpdateOne) SetNillableLastDemotedAt(v *time.Time) *PatternUpdateOne {
	if v != nil {
		_u.SetLastDemotedAt(*v)
	}
	return _u
}

// ClearLastDemotedAt clears the value of the "last_demoted_at" field.
func (_u *PatternUpdateOne) ClearLastDemotedAt() *PatternUpdateOne {
	_u.mutation.ClearLastDemotedAt()
	return _u
}

// SetDeprecatedAt sets the "deprecated_at" field.
func (_u *PatternUpdateOne) SetDeprecatedAt(v time.Time) *PatternUpdateOne {
	_u.mutation.SetDeprecatedAt(v)
	return _u
}

// SetNillableDeprecatedAt sets the "deprecated_at" field if the given value is not nil.
func (_u *PatternUpdateOne) SetNillableDeprecatedAt(v *time.Time) *PatternUpdateOne {
	if v != nil {
		_u.SetDeprecatedAt(*v)
	}
	return _u
}

// ClearDeprecatedAt clears the value of the "deprecated_at" field.
func (_u *PatternUpdateOne) ClearDeprecatedAt() *PatternUpdateOne {
	_u.mutation.ClearDeprecatedAt()
	return _u
}

// AddAuditEntryIDs adds the "audit_entries" edge to the PatternAudit entity by IDs.
func (_u *PatternUpdateOne) AddAuditEntryIDs(ids ...int) *PatternUpdateOne {
	_u.mutation.AddAuditEntryIDs(ids...)
	return _u
}

// AddAuditEntries adds the "audit_entries" edges to the PatternAudit entity.
func (_u *PatternUpdateOne) AddAuditEntries(v ...*PatternAudit) *PatternUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuditEntryIDs(ids...)
}

// AddInjectionIDs adds the "injections" edge to the PatternInjection entity by IDs.
func (_u *PatternUpdateOne) AddInjectionIDs(ids ...string) *PatternUpdateOne {
	_u.mutation.AddInjectionIDs(ids...)
	return _u
}

// AddInjections adds the "injections" edges to the PatternInjection entity.
func (_u *PatternUpdateOne) AddInjections(v ...*PatternInjection) *PatternUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInjectionIDs(ids...)
}

// AddDisableEventIDs adds the "disable_events" edge to the PatternDisable entity by IDs.
func (_u *PatternUpdateOne) AddDisableEventIDs(ids ...int) *PatternUpdateOne {
	_u.mutation.AddDisableEventIDs(ids...)
	return _u
}

// AddDisableEvents adds the "disable_events" edges to the PatternDisable entity.
func (_u *PatternUpdateOne) AddDisableEvents(v ...*PatternDisable) *PatternUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDisableEventIDs(ids...)
}

// AddOutcomeIDs adds the "outcomes" edge to the SessionOutcome entity by IDs.
func (_u *PatternUpdateOne) AddOutcomeIDs(ids ...int) *PatternUpdateOne {
	_u.mutation.AddOutcomeIDs(ids...)
	return _u
}

// AddOutcomes adds the "outcomes" edges to the SessionOutcome entity.
func (_u *PatternUpdateOne) AddOutcomes(v ...*SessionOutcome) *PatternUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOutcomeIDs(ids...)
}

// SetFeedbackAggregateID sets the "feedback_aggregate" edge to the FeedbackAggregate entity by ID.
func (_u *PatternUpdateOne) SetFeedbackAggregateID(id int) *PatternUpdateOne {
	_u.mutation.SetFeedbackAggregateID(id)
	return _u
}

// SetNillableFeedbackAggregateID sets the "feedback_aggregate" edge to the FeedbackAggregate entity by ID if the given value is not nil.
func (_u *PatternUpdateOne) SetNillableFeedbackAggregateID(id *int) *PatternUpdateOne {
	if id != nil {
		_u = _u.SetFeedbackAggregateID(*id)
	}
	return _u
}

// SetFeedbackAggregate sets the "feedback_aggregate" edge to the FeedbackAggregate entity.
func (_u *PatternUpdateOne) SetFeedbackAggregate(v *FeedbackAggregate) *PatternUpdateOne {
	return _u.SetFeedbackAggregateID(v.ID)
}

// Mutation returns the PatternMutation object of the builder.
func (_u *PatternUpdateOne) Mutation() *PatternMutation {
	return _u.mutation
}

// ClearAuditEntries clears all "audit_entries" edges to the PatternAudit entity.
func (_u *PatternUpdateOne) ClearAuditEntries() *PatternUpdateOne {
	_u.mutation.ClearAuditEntries()
	return _u
}

// RemoveAuditEntryIDs removes the "audit_entries" edge to PatternAudit entities by IDs.
func (_u *PatternUpdateOne) RemoveAuditEntryIDs(ids ...int) *PatternUpdateOne {
	_u.mutation.RemoveAuditEntryIDs(ids...)
	return _u
}

// RemoveAuditEntries removes "audit_entries" edges to PatternAudit entities.
func (_u *PatternUpdateOne) RemoveAuditEntries(v ...*PatternAudit) *PatternUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuditEntryIDs(ids...)
}

// ClearInjections clears all "injections" edges to the PatternInjection entity.
func (_u *PatternUpdateOne) ClearInjections() *PatternUpdateOne {
	_u.mutation.ClearInjections()
	return _u
}

// RemoveInjectionIDs removes the "injections" edge to PatternInjection entities by IDs.
func (_u *PatternUpdateOne) RemoveInjectionIDs(ids ...string) *PatternUpdateOne {
	_u.mutation.RemoveInjectionIDs(ids...)
	return _u
}

// RemoveInjections removes "injections" edges to PatternInjection entities.
func (_u *PatternUpdateOne) RemoveInjections(v ...*PatternInjection) *PatternUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInjectionIDs(ids...)
}

// ClearDisableEvents clears all "disable_events" edges to the PatternDisable entity.
func (_u *PatternUpdateOne) ClearDisableEvents() *PatternUpdateOne {
	_u.mutation.ClearDisableEvents()
	return _u
}

// RemoveDisableEventIDs removes the "disable_events" edge to PatternDisable entities by IDs.
func (_u *PatternUpdateOne) RemoveDisableEventIDs(ids ...int) *PatternUpdateOne {
	_u.mutation.RemoveDisableEventIDs(ids...)
	return _u
}

// RemoveDisableEvents removes "disable_events" edges to PatternDisable entities.
func (_u *PatternUpdateOne) RemoveDisableEvents(v ...*PatternDisable) *PatternUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDisableEventIDs(ids...)
}

// ClearOutcomes clears all "outcomes" edges to the SessionOutcome entity.
func (_u *PatternUpdateOne) ClearOutcomes() *PatternUpdateOne {
	_u.mutation.ClearOutcomes()
	return _u
}

// RemoveOutcomeIDs removes the "outcomes" edge to SessionOutcome entities by IDs.
func (_u *PatternUpdateOne) RemoveOutcomeIDs(ids ...int) *PatternUpdateOne {
	_u.mutation.RemoveOutcomeIDs(ids...)
	return _u
}

// RemoveOutcomes removes "outcomes" edges to SessionOutcome entities.
func (_u *PatternUpdateOne) RemoveOutcomes(v ...*SessionOutcome) *PatternUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOutcomeIDs(ids...)
}

// ClearFeedbackAggregate clears the "feedback_aggregate" edge to the FeedbackAggregate entity.
func (_u *PatternUpdateOne) ClearFeedbackAggregate() *PatternUpdateOne {
	_u.mutation.ClearFeedbackAggregate()
	return _u
}

// Where appends a list predicates to the PatternUpdate builder.
func (_u *PatternUpdateOne) Where(ps ...predicate.Pattern) *PatternUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PatternUpdateOne) Select(field string, fields ...string) *PatternUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Pattern entity.
func (_u *PatternUpdateOne) Save(ctx context.Context) (*Pattern, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatternUpdateOne) SaveX(ctx context.Context) *Pattern {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PatternUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatternUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatternUpdateOne) check() error {
	if v, ok := _u.mutation.LifecycleStatus(); ok {
		if err := pattern.LifecycleStatusValidator(v); err != nil {
			return &ValidationError{Name: "lifecycle_status", err: fmt.Errorf(`ent: validator failed for field "Pattern.lifecycle_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EvidenceTier(); ok {
		if err := pattern.EvidenceTierValidator(v); err != nil {
			return &ValidationError{Name: "evidence_tier", err: fmt.Errorf(`ent: validator failed for field "Pattern.evidence_tier": %w`, err)}
		}
	}
	return nil
}

func (_u *PatternUpdateOne) sqlSave(ctx context.Context) (_node *Pattern, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pattern.Table, pattern.Columns, sqlgraph.NewFieldSpec(pattern.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Pattern.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pattern.FieldID)
		for _, f := range fields {
			if !pattern.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pattern.FieldID {
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
	if value, ok := _u.mutation.SignatureHash(); ok {
		_spec.SetField(pattern.FieldSignatureHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(pattern.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(pattern.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(pattern.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.LifecycleStatus(); ok {
		_spec.SetField(pattern.FieldLifecycleStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.QualityScore(); ok {
		_spec.SetField(pattern.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQualityScore(); ok {
		_spec.AddField(pattern.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(pattern.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(pattern.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EvidenceTier(); ok {
		_spec.SetField(pattern.FieldEvidenceTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.VersionTag(); ok {
		_spec.SetField(pattern.FieldVersionTag, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastPromotedAt(); ok {
		_spec.SetField(pattern.FieldLastPromotedAt, field.TypeTime, value)
	}
	if _u.mutation.LastPromotedAtCleared() {
		_spec.ClearField(pattern.FieldLastPromotedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastDemotedAt(); ok {
		_spec.SetField(pattern.FieldLastDemotedAt, field.TypeTime, value)
	}
	if _u.mutation.LastDemotedAtCleared() {
		_spec.ClearField(pattern.FieldLastDemotedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeprecatedAt(); ok {
		_spec.SetField(pattern.FieldDeprecatedAt, field.TypeTime, value)
	}
	if _u.mutation.DeprecatedAtCleared() {
		_spec.ClearField(pattern.FieldDeprecatedAt, field.TypeTime)
	}
	if _u.mutation.AuditEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pattern.AuditEntriesTable,
			Columns: []string{pattern.AuditEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patternaudit.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuditEntriesIDs(); len(nodes) > 0 && !_u.mutation.AuditEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pattern.AuditEntriesTable,
			Columns: []string{pattern.AuditEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patternaudit.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pattern.AuditEntriesTable,
			Columns: []string{pattern.AuditEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patternaudit.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InjectionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pattern.InjectionsTable,
			Columns: []string{pattern.InjectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patterninjection.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInjectionsIDs(); len(nodes) > 0 && !_u.mutation.InjectionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pattern.InjectionsTable,
			Columns: []string{pattern.InjectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patterninjection.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InjectionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pattern.InjectionsTable,
			Columns: []string{pattern.InjectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patterninjection.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DisableEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pattern.DisableEventsTable,
			Columns: []string{pattern.DisableEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patterndisable.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDisableEventsIDs(); len(nodes) > 0 && !_u.mutation.DisableEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pattern.DisableEventsTable,
			Columns: []string{pattern.DisableEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patterndisable.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DisableEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pattern.DisableEventsTable,
			Columns: []string{pattern.DisableEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patterndisable.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OutcomesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pattern.OutcomesTable,
			Columns: []string{pattern.OutcomesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionoutcome.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOutcomesIDs(); len(nodes) > 0 && !_u.mutation.OutcomesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pattern.OutcomesTable,
			Columns: []string{pattern.OutcomesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionoutcome.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OutcomesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pattern.OutcomesTable,
			Columns: []string{pattern.OutcomesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionoutcome.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FeedbackAggregateCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   pattern.FeedbackAggregateTable,
			Columns: []string{pattern.FeedbackAggregateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(feedbackaggregate.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FeedbackAggregateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   pattern.FeedbackAggregateTable,
			Columns: []string{pattern.FeedbackAggregateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(feedbackaggregate.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Pattern{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pattern.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
