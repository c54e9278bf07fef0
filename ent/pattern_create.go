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
	"github.com/onex-platform/omniintelligence/ent/patternaudit"
	"github.com/onex-platform/omniintelligence/ent/patterndisable"
	"github.com/onex-platform/omniintelligence/ent/patterninjection"
	"github.com/onex-platform/omniintelligence/ent/sessionoutcome"
)

// PatternCreate is the builder for creating a Pattern entity.
type PatternCreate struct {
	config
	mutation *PatternMutation
	hooks    []Hook
}

// SetSignatureHash sets the "signature_hash" field.
func (_c *PatternCreate) SetSignatureHash(v string) *PatternCreate {
	_c.mutation.SetSignatureHash(v)
	return _c
}

// SetBody sets the "body" field.
func (_c *PatternCreate) SetBody(v string) *PatternCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *PatternCreate) SetMetadata(v map[string]interface{}) *PatternCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetLifecycleStatus sets the "lifecycle_status" field.
func (_c *PatternCreate) SetLifecycleStatus(v pattern.LifecycleStatus) *PatternCreate {
	_c.mutation.SetLifecycleStatus(v)
	return _c
}

// SetNillableLifecycleStatus sets the "lifecycle_status" field if the given value is not nil.
func (_c *PatternCreate) SetNillableLifecycleStatus(v *pattern.LifecycleStatus) *PatternCreate {
	if v != nil {
		_c.SetLifecycleStatus(*v)
	}
	return _c
}

// SetQualityScore sets the "quality_score" field.
func (_c *PatternCreate) SetQualityScore(v float64) *PatternCreate {
	_c.mutation.SetQualityScore(v)
	return _c
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_c *PatternCreate) SetNillableQualityScore(v *float64) *PatternCreate {
	if v != nil {
		_c.SetQualityScore(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *PatternCreate) SetConfidence(v float64) *PatternCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *PatternCreate) SetNillableConfidence(v *float64) *PatternCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetEvidenceTier sets the "evidence_tier" field.
func (_c *PatternCreate) SetEvidenceTier(v pattern.EvidenceTier) *PatternCreate {
	_c.mutation.SetEvidenceTier(v)
	return _c
}

// SetNillableEvidenceTier sets the "evidence_tier" field if the given value is not nil.
func (_c *PatternCreate) SetNillableEvidenceTier(v *pattern.EvidenceTier) *PatternCreate {
	if v != nil {
		_c.SetEvidenceTier(*v)
	}
	return _c
}

// SetVersionTag sets the "version_tag" field.
func (_c *PatternCreate) SetVersionTag(v string) *PatternCreate {
	_c.mutation.SetVersionTag(v)
	return _c
}

// SetNillableVersionTag sets the "version_tag" field if the given value is not nil.
func (_c *PatternCreate) SetNillableVersionTag(v *string) *PatternCreate {
	if v != nil {
		_c.SetVersionTag(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PatternCreate) SetCreatedAt(v time.Time) *PatternCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PatternCreate) SetNillableCreatedAt(v *time.Time) *PatternCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLastPromotedAt sets the "last_promoted_at" field.
func (_c *PatternCreate) SetLastPromotedAt(v time.Time) *PatternCreate {
	_c.mutation.SetLastPromotedAt(v)
	return _c
}

// SetNillableLastPromotedAt sets the "last_promoted_at" field if the given value is not nil.
func (_c *PatternCreate) SetNillableLastPromotedAt(v *time.Time) *PatternCreate {
	if v != nil {
		_c.SetLastPromotedAt(*v)
	}
	return _c
}

// SetLastDemotedAt sets the "last_demoted_at" field.
func (_c *PatternCreate) SetLastDemotedAt(v time.Time) *PatternCreate {
	_c.mutation.SetLastDemotedAt(v)
	return _c
}

// SetNillableLastDemotedAt sets the "last_demoted_at" field if the given value is not nil.
func (_c *PatternCreate) SetNillableLastDemotedAt(v *time.Time) *PatternCreate {
	if v != nil {
		_c.SetLastDemotedAt(*v)
	}
	return _c
}

// SetDeprecatedAt sets the "deprecated_at" field.
func (_c *PatternCreate) SetDeprecatedAt(v time.Time) *PatternCreate {
	_c.mutation.SetDeprecatedAt(v)
	return _c
}

// SetNillableDeprecatedAt sets the "deprecated_at" field if the given value is not nil.
func (_c *PatternCreate) SetNillableDeprecatedAt(v *time.Time) *PatternCreate {
	if v != nil {
		_c.SetDeprecatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PatternCreate) SetID(v string) *PatternCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddAuditEntryIDs adds the "audit_entries" edge to the PatternAudit entity by IDs.
func (_c *PatternCreate) AddAuditEntryIDs(ids ...int) *PatternCreate {
	_c.mutation.AddAuditEntryIDs(ids...)
	return _c
}

// AddAuditEntries adds the "audit_entries" edges to the PatternAudit entity.
func (_c *PatternCreate) AddAuditEntries(v ...*PatternAudit) *PatternCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAuditEntryIDs(ids...)
}

// AddInjectionIDs adds the "injections" edge to the PatternInjection entity by IDs.
func (_c *PatternCreate) AddInjectionIDs(ids ...string) *PatternCreate {
	_c.mutation.AddInjectionIDs(ids...)
	return _c
}

// AddInjections adds the "injections" edges to the PatternInjection entity.
func (_c *PatternCreate) AddInjections(v ...*PatternInjection) *PatternCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddInjectionIDs(ids...)
}

// AddDisableEventIDs adds the "disable_events" edge to the PatternDisable entity by IDs.
func (_c *PatternCreate) AddDisableEventIDs(ids ...int) *PatternCreate {
	_c.mutation.AddDisableEventIDs(ids...)
	return _c
}

// AddDisableEvents adds the "disable_events" edges to the PatternDisable entity.
func (_c *PatternCreate) AddDisableEvents(v ...*PatternDisable) *PatternCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDisableEventIDs(ids...)
}

// AddOutcomeIDs adds the "outcomes" edge to the SessionOutcome entity by IDs.
func (_c *PatternCreate) AddOutcomeIDs(ids ...int) *PatternCreate {
	_c.mutation.AddOutcomeIDs(ids...)
	return _c
}

// AddOutcomes adds the "outcomes" edges to the SessionOutcome entity.
func (_c *PatternCreate) AddOutcomes(v ...*SessionOutcome) *PatternCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOutcomeIDs(ids...)
}

// SetFeedbackAggregateID sets the "feedback_aggregate" edge to the FeedbackAggregate entity by ID.
func (_c *PatternCreate) SetFeedbackAggregateID(id int) *PatternCreate {
	_c.mutation.SetFeedbackAggregateID(id)
	return _c
}

// SetNillableFeedbackAggregateID sets the "feedback_aggregate" edge to the FeedbackAggregate entity by ID if the given value is not nil.
func (_c *PatternCreate) SetNillableFeedbackAggregateID(id *int) *PatternCreate {
	if id != nil {
		_c = _c.SetFeedbackAggregateID(*id)
	}
	return _c
}

// SetFeedbackAggregate sets the "feedback_aggregate" edge to the FeedbackAggregate entity.
func (_c *PatternCreate) SetFeedbackAggregate(v *FeedbackAggregate) *PatternCreate {
	return _c.SetFeedbackAggregateID(v.ID)
}

// Mutation returns the PatternMutation object of the builder.
func (_c *PatternCreate) Mutation() *PatternMutation {
	return _c.mutation
}

// Save creates the Pattern in the database.
func (_c *PatternCreate) Save(ctx context.Context) (*Pattern, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PatternCreate) SaveX(ctx context.Context) *Pattern {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatternCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatternCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PatternCreate) defaults() {
	if _, ok := _c.mutation.LifecycleStatus(); !ok {
		v := pattern.DefaultLifecycleStatus
		_c.mutation.SetLifecycleStatus(v)
	}
	if _, ok := _c.mutation.QualityScore(); !ok {
		v := pattern.DefaultQualityScore
		_c.mutation.SetQualityScore(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := pattern.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.EvidenceTier(); !ok {
		v := pattern.DefaultEvidenceTier
		_c.mutation.SetEvidenceTier(v)
	}
	if _, ok := _c.mutation.VersionTag(); !ok {
		v := pattern.DefaultVersionTag
		_c.mutation.SetVersionTag(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pattern.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PatternCreate) check() error {
	if _, ok := _c.mutation.SignatureHash(); !ok {
		return &ValidationError{Name: "signature_hash", err: errors.New(`ent: missing required field "Pattern.signature_hash"`)}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "Pattern.body"`)}
	}
	if _, ok := _c.mutation.LifecycleStatus(); !ok {
		return &ValidationError{Name: "lifecycle_status", err: errors.New(`ent: missing required field "Pattern.lifecycle_status"`)}
	}
	if v, ok := _c.mutation.LifecycleStatus(); ok {
		if err := pattern.LifecycleStatusValidator(v); err != nil {
			return &ValidationError{Name: "lifecycle_status", err: fmt.Errorf(`ent: validator failed for field "Pattern.lifecycle_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QualityScore(); !ok {
		return &ValidationError{Name: "quality_score", err: errors.New(`ent: missing required field "Pattern.quality_score"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "Pattern.confidence"`)}
	}
	if _, ok := _c.mutation.EvidenceTier(); !ok {
		return &ValidationError{Name: "evidence_tier", err: errors.New(`ent: missing required field "Pattern.evidence_tier"`)}
	}
	if v, ok := _c.mutation.EvidenceTier(); ok {
		if err := pattern.EvidenceTierValidator(v); err != nil {
			return &ValidationError{Name: "evidence_tier", err: fmt.Errorf(`ent: validator failed for field "Pattern.evidence_tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.VersionTag(); !ok {
		return &ValidationError{Name: "version_tag", err: errors.New(`ent: missing required field "Pattern.version_tag"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Pattern.created_at"`)}
	}
	return nil
}

func (_c *PatternCreate) sqlSave(ctx context.Context) (*Pattern, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Pattern.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PatternCreate) createSpec() (*Pattern, *sqlgraph.CreateSpec) {
	var (
		_node = &Pattern{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pattern.Table, sqlgraph.NewFieldSpec(pattern.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SignatureHash(); ok {
		_spec.SetField(pattern.FieldSignatureHash, field.TypeString, value)
		_node.SignatureHash = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(pattern.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(pattern.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.LifecycleStatus(); ok {
		_spec.SetField(pattern.FieldLifecycleStatus, field.TypeEnum, value)
		_node.LifecycleStatus = value
	}
	if value, ok := _c.mutation.QualityScore(); ok {
		_spec.SetField(pattern.FieldQualityScore, field.TypeFloat64, value)
		_node.QualityScore = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(pattern.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.EvidenceTier(); ok {
		_spec.SetField(pattern.FieldEvidenceTier, field.TypeEnum, value)
		_node.EvidenceTier = value
	}
	if value, ok := _c.mutation.VersionTag(); ok {
		_spec.SetField(pattern.FieldVersionTag, field.TypeString, value)
		_node.VersionTag = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pattern.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.LastPromotedAt(); ok {
		_spec.SetField(pattern.FieldLastPromotedAt, field.TypeTime, value)
		_node.LastPromotedAt = &value
	}
	if value, ok := _c.mutation.LastDemotedAt(); ok {
		_spec.SetField(pattern.FieldLastDemotedAt, field.TypeTime, value)
		_node.LastDemotedAt = &value
	}
	if value, ok := _c.mutation.DeprecatedAt(); ok {
		_spec.SetField(pattern.FieldDeprecatedAt, field.TypeTime, value)
		_node.DeprecatedAt = &value
	}
	if nodes := _c.mutation.AuditEntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.InjectionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DisableEventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.OutcomesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FeedbackAggregateIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PatternCreateBulk is the builder for creating many Pattern entities in bulk.
type PatternCreateBulk struct {
	config
	err      error
	builders []*PatternCreate
}

// Save creates the Pattern entities in the database.
func (_c *PatternCreateBulk) Save(ctx context.Context) ([]*Pattern, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Pattern, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PatternMutation)
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
func (_c *PatternCreateBulk) SaveX(ctx context.Context) []*Pattern {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatternCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatternCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
