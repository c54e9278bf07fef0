// Package fsm drives the three named state machines over static
// transition tables. The reduction step is a pure function; persistence
// and history append live in the Reducer.
package fsm

import "github.com/onex-platform/omniintelligence/ent/fsmstate"

// Kind aliases the generated enum so callers don't import the ent
// package for a constant.
type Kind = fsmstate.FsmKind

// Machine kinds.
const (
	KindIngestion         = fsmstate.FsmKindIngestion
	KindPatternLearning   = fsmstate.FsmKindPatternLearning
	KindQualityAssessment = fsmstate.FsmKindQualityAssessment
)

// Ingestion states: idle → received → processing → indexed.
const (
	StateIdle       = "idle"
	StateReceived   = "received"
	StateProcessing = "processing"
	StateIndexed    = "indexed"
)

// Pattern-learning states: idle → foundation → matching → validation →
// traceability → completed.
const (
	StateFoundation   = "foundation"
	StateMatching     = "matching"
	StateValidation   = "validation"
	StateTraceability = "traceability"
	StateCompleted    = "completed"
)

// Quality-assessment states: idle → raw → assessing → scored → stored.
const (
	StateRaw       = "raw"
	StateAssessing = "assessing"
	StateScored    = "scored"
	StateStored    = "stored"
)

// Triggers accepted by the machines.
const (
	TriggerReceive  = "receive"
	TriggerProcess  = "process"
	TriggerIndex    = "index"
	TriggerStart    = "start"
	TriggerMatch    = "match"
	TriggerValidate = "validate"
	TriggerTrace    = "trace"
	TriggerComplete = "complete"
	TriggerIngest   = "ingest"
	TriggerAssess   = "assess"
	TriggerScore    = "score"
	TriggerStore    = "store"
)

// key indexes the transition tables by (current state, trigger).
type key struct {
	state   string
	trigger string
}

// tables holds the full static transition set. No machine ever leaves its
// terminal state.
var tables = map[Kind]map[key]string{
	KindIngestion: {
		{StateIdle, TriggerReceive}:     StateReceived,
		{StateReceived, TriggerProcess}: StateProcessing,
		{StateProcessing, TriggerIndex}: StateIndexed,
	},
	KindPatternLearning: {
		{StateIdle, TriggerStart}:            StateFoundation,
		{StateFoundation, TriggerMatch}:      StateMatching,
		{StateMatching, TriggerValidate}:     StateValidation,
		{StateValidation, TriggerTrace}:      StateTraceability,
		{StateTraceability, TriggerComplete}: StateCompleted,
	},
	KindQualityAssessment: {
		{StateIdle, TriggerIngest}:     StateRaw,
		{StateRaw, TriggerAssess}:      StateAssessing,
		{StateAssessing, TriggerScore}: StateScored,
		{StateScored, TriggerStore}:    StateStored,
	},
}

// InitialState is every machine's starting state.
const InitialState = StateIdle

// Reduce is the pure reduction step: given the machine kind, current
// state, and trigger, it returns the next state. ok is false when no
// transition is defined for the (state, trigger) pair; the caller logs
// and proceeds without error.
func Reduce(kind Kind, current, trigger string) (next string, ok bool) {
	table, known := tables[kind]
	if !known {
		return "", false
	}
	next, ok = table[key{current, trigger}]
	return next, ok
}

// TerminalState returns the terminal state for a machine kind.
func TerminalState(kind Kind) string {
	switch kind {
	case KindIngestion:
		return StateIndexed
	case KindPatternLearning:
		return StateCompleted
	case KindQualityAssessment:
		return StateStored
	default:
		return ""
	}
}
