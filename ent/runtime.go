// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/onex-platform/omniintelligence/ent/busmessage"
	"github.com/onex-platform/omniintelligence/ent/busoffset"
	"github.com/onex-platform/omniintelligence/ent/feedbackaggregate"
	"github.com/onex-platform/omniintelligence/ent/fsmstate"
	"github.com/onex-platform/omniintelligence/ent/fsmtransition"
	"github.com/onex-platform/omniintelligence/ent/idempotencyrecord"
	"github.com/onex-platform/omniintelligence/ent/pattern"
	"github.com/onex-platform/omniintelligence/ent/patternaudit"
	"github.com/onex-platform/omniintelligence/ent/patterndisable"
	"github.com/onex-platform/omniintelligence/ent/patterninjection"
	"github.com/onex-platform/omniintelligence/ent/schema"
	"github.com/onex-platform/omniintelligence/ent/sessionoutcome"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	busmessageFields := schema.BusMessage{}.Fields()
	_ = busmessageFields
	// busmessageDescCreatedAt is the schema descriptor for created_at field.
	busmessageDescCreatedAt := busmessageFields[4].Descriptor()
	// busmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	busmessage.DefaultCreatedAt = busmessageDescCreatedAt.Default.(func() time.Time)
	busoffsetFields := schema.BusOffset{}.Fields()
	_ = busoffsetFields
	// busoffsetDescCommitted is the schema descriptor for committed field.
	busoffsetDescCommitted := busoffsetFields[3].Descriptor()
	// busoffset.DefaultCommitted holds the default value on creation for the committed field.
	busoffset.DefaultCommitted = busoffsetDescCommitted.Default.(int)
	// busoffsetDescUpdatedAt is the schema descriptor for updated_at field.
	busoffsetDescUpdatedAt := busoffsetFields[4].Descriptor()
	// busoffset.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	busoffset.DefaultUpdatedAt = busoffsetDescUpdatedAt.Default.(func() time.Time)
	// busoffset.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	busoffset.UpdateDefaultUpdatedAt = busoffsetDescUpdatedAt.UpdateDefault.(func() time.Time)
	fsmstateFields := schema.FSMState{}.Fields()
	_ = fsmstateFields
	// fsmstateDescEnteredAt is the schema descriptor for entered_at field.
	fsmstateDescEnteredAt := fsmstateFields[3].Descriptor()
	// fsmstate.DefaultEnteredAt holds the default value on creation for the entered_at field.
	fsmstate.DefaultEnteredAt = fsmstateDescEnteredAt.Default.(func() time.Time)
	fsmtransitionFields := schema.FSMTransition{}.Fields()
	_ = fsmtransitionFields
	// fsmtransitionDescCreatedAt is the schema descriptor for created_at field.
	fsmtransitionDescCreatedAt := fsmtransitionFields[6].Descriptor()
	// fsmtransition.DefaultCreatedAt holds the default value on creation for the created_at field.
	fsmtransition.DefaultCreatedAt = fsmtransitionDescCreatedAt.Default.(func() time.Time)
	feedbackaggregateFields := schema.FeedbackAggregate{}.Fields()
	_ = feedbackaggregateFields
	// feedbackaggregateDescWindowSuccesses is the schema descriptor for window_successes field.
	feedbackaggregateDescWindowSuccesses := feedbackaggregateFields[1].Descriptor()
	// feedbackaggregate.DefaultWindowSuccesses holds the default value on creation for the window_successes field.
	feedbackaggregate.DefaultWindowSuccesses = feedbackaggregateDescWindowSuccesses.Default.(int)
	// feedbackaggregateDescWindowFailures is the schema descriptor for window_failures field.
	feedbackaggregateDescWindowFailures := feedbackaggregateFields[2].Descriptor()
	// feedbackaggregate.DefaultWindowFailures holds the default value on creation for the window_failures field.
	feedbackaggregate.DefaultWindowFailures = feedbackaggregateDescWindowFailures.Default.(int)
	// feedbackaggregateDescSampleCount is the schema descriptor for sample_count field.
	feedbackaggregateDescSampleCount := feedbackaggregateFields[3].Descriptor()
	// feedbackaggregate.DefaultSampleCount holds the default value on creation for the sample_count field.
	feedbackaggregate.DefaultSampleCount = feedbackaggregateDescSampleCount.Default.(int)
	// feedbackaggregateDescEffectiveness is the schema descriptor for effectiveness field.
	feedbackaggregateDescEffectiveness := feedbackaggregateFields[4].Descriptor()
	// feedbackaggregate.DefaultEffectiveness holds the default value on creation for the effectiveness field.
	feedbackaggregate.DefaultEffectiveness = feedbackaggregateDescEffectiveness.Default.(float64)
	// feedbackaggregateDescContributionScore is the schema descriptor for contribution_score field.
	feedbackaggregateDescContributionScore := feedbackaggregateFields[5].Descriptor()
	// feedbackaggregate.DefaultContributionScore holds the default value on creation for the contribution_score field.
	feedbackaggregate.DefaultContributionScore = feedbackaggregateDescContributionScore.Default.(float64)
	// feedbackaggregateDescConsecutiveLowWindows is the schema descriptor for consecutive_low_windows field.
	feedbackaggregateDescConsecutiveLowWindows := feedbackaggregateFields[6].Descriptor()
	// feedbackaggregate.DefaultConsecutiveLowWindows holds the default value on creation for the consecutive_low_windows field.
	feedbackaggregate.DefaultConsecutiveLowWindows = feedbackaggregateDescConsecutiveLowWindows.Default.(int)
	// feedbackaggregateDescUpdatedAt is the schema descriptor for updated_at field.
	feedbackaggregateDescUpdatedAt := feedbackaggregateFields[7].Descriptor()
	// feedbackaggregate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	feedbackaggregate.DefaultUpdatedAt = feedbackaggregateDescUpdatedAt.Default.(func() time.Time)
	// feedbackaggregate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	feedbackaggregate.UpdateDefaultUpdatedAt = feedbackaggregateDescUpdatedAt.UpdateDefault.(func() time.Time)
	idempotencyrecordFields := schema.IdempotencyRecord{}.Fields()
	_ = idempotencyrecordFields
	// idempotencyrecordDescFirstSeenAt is the schema descriptor for first_seen_at field.
	idempotencyrecordDescFirstSeenAt := idempotencyrecordFields[2].Descriptor()
	// idempotencyrecord.DefaultFirstSeenAt holds the default value on creation for the first_seen_at field.
	idempotencyrecord.DefaultFirstSeenAt = idempotencyrecordDescFirstSeenAt.Default.(func() time.Time)
	patternFields := schema.Pattern{}.Fields()
	_ = patternFields
	// patternDescQualityScore is the schema descriptor for quality_score field.
	patternDescQualityScore := patternFields[5].Descriptor()
	// pattern.DefaultQualityScore holds the default value on creation for the quality_score field.
	pattern.DefaultQualityScore = patternDescQualityScore.Default.(float64)
	// patternDescConfidence is the schema descriptor for confidence field.
	patternDescConfidence := patternFields[6].Descriptor()
	// pattern.DefaultConfidence holds the default value on creation for the confidence field.
	pattern.DefaultConfidence = patternDescConfidence.Default.(float64)
	// patternDescVersionTag is the schema descriptor for version_tag field.
	patternDescVersionTag := patternFields[8].Descriptor()
	// pattern.DefaultVersionTag holds the default value on creation for the version_tag field.
	pattern.DefaultVersionTag = patternDescVersionTag.Default.(string)
	// patternDescCreatedAt is the schema descriptor for created_at field.
	patternDescCreatedAt := patternFields[9].Descriptor()
	// pattern.DefaultCreatedAt holds the default value on creation for the created_at field.
	pattern.DefaultCreatedAt = patternDescCreatedAt.Default.(func() time.Time)
	patternauditFields := schema.PatternAudit{}.Fields()
	_ = patternauditFields
	// patternauditDescCreatedAt is the schema descriptor for created_at field.
	patternauditDescCreatedAt := patternauditFields[7].Descriptor()
	// patternaudit.DefaultCreatedAt holds the default value on creation for the created_at field.
	patternaudit.DefaultCreatedAt = patternauditDescCreatedAt.Default.(func() time.Time)
	patterndisableFields := schema.PatternDisable{}.Fields()
	_ = patterndisableFields
	// patterndisableDescCreatedAt is the schema descriptor for created_at field.
	patterndisableDescCreatedAt := patterndisableFields[5].Descriptor()
	// patterndisable.DefaultCreatedAt holds the default value on creation for the created_at field.
	patterndisable.DefaultCreatedAt = patterndisableDescCreatedAt.Default.(func() time.Time)
	patterninjectionFields := schema.PatternInjection{}.Fields()
	_ = patterninjectionFields
	// patterninjectionDescCohort is the schema descriptor for cohort field.
	patterninjectionDescCohort := patterninjectionFields[3].Descriptor()
	// patterninjection.DefaultCohort holds the default value on creation for the cohort field.
	patterninjection.DefaultCohort = patterninjectionDescCohort.Default.(string)
	// patterninjectionDescAssignedAt is the schema descriptor for assigned_at field.
	patterninjectionDescAssignedAt := patterninjectionFields[4].Descriptor()
	// patterninjection.DefaultAssignedAt holds the default value on creation for the assigned_at field.
	patterninjection.DefaultAssignedAt = patterninjectionDescAssignedAt.Default.(func() time.Time)
	sessionoutcomeFields := schema.SessionOutcome{}.Fields()
	_ = sessionoutcomeFields
	// sessionoutcomeDescWasAdvised is the schema descriptor for was_advised field.
	sessionoutcomeDescWasAdvised := sessionoutcomeFields[4].Descriptor()
	// sessionoutcome.DefaultWasAdvised holds the default value on creation for the was_advised field.
	sessionoutcome.DefaultWasAdvised = sessionoutcomeDescWasAdvised.Default.(bool)
	// sessionoutcomeDescWasUsed is the schema descriptor for was_used field.
	sessionoutcomeDescWasUsed := sessionoutcomeFields[5].Descriptor()
	// sessionoutcome.DefaultWasUsed holds the default value on creation for the was_used field.
	sessionoutcome.DefaultWasUsed = sessionoutcomeDescWasUsed.Default.(bool)
	// sessionoutcomeDescWasCorrected is the schema descriptor for was_corrected field.
	sessionoutcomeDescWasCorrected := sessionoutcomeFields[6].Descriptor()
	// sessionoutcome.DefaultWasCorrected holds the default value on creation for the was_corrected field.
	sessionoutcome.DefaultWasCorrected = sessionoutcomeDescWasCorrected.Default.(bool)
	// sessionoutcomeDescQualityDelta is the schema descriptor for quality_delta field.
	sessionoutcomeDescQualityDelta := sessionoutcomeFields[7].Descriptor()
	// sessionoutcome.DefaultQualityDelta holds the default value on creation for the quality_delta field.
	sessionoutcome.DefaultQualityDelta = sessionoutcomeDescQualityDelta.Default.(float64)
	// sessionoutcomeDescOccurredAt is the schema descriptor for occurred_at field.
	sessionoutcomeDescOccurredAt := sessionoutcomeFields[8].Descriptor()
	// sessionoutcome.DefaultOccurredAt holds the default value on creation for the occurred_at field.
	sessionoutcome.DefaultOccurredAt = sessionoutcomeDescOccurredAt.Default.(func() time.Time)
}
