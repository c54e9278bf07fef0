// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// BusMessage is the predicate function for busmessage builders.
type BusMessage func(*sql.Selector)

// BusOffset is the predicate function for busoffset builders.
type BusOffset func(*sql.Selector)

// FSMState is the predicate function for fsmstate builders.
type FSMState func(*sql.Selector)

// FSMTransition is the predicate function for fsmtransition builders.
type FSMTransition func(*sql.Selector)

// FeedbackAggregate is the predicate function for feedbackaggregate builders.
type FeedbackAggregate func(*sql.Selector)

// IdempotencyRecord is the predicate function for idempotencyrecord builders.
type IdempotencyRecord func(*sql.Selector)

// Pattern is the predicate function for pattern builders.
type Pattern func(*sql.Selector)

// PatternAudit is the predicate function for patternaudit builders.
type PatternAudit func(*sql.Selector)

// PatternDisable is the predicate function for patterndisable builders.
type PatternDisable func(*sql.Selector)

// PatternInjection is the predicate function for patterninjection builders.
type PatternInjection func(*sql.Selector)

// SessionOutcome is the predicate function for sessionoutcome builders.
type SessionOutcome func(*sql.Selector)
