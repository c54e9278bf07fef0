package fsm

import (
	"context"
	"fmt"
	"time"

	"github.com/onex-platform/omniintelligence/ent"
	"github.com/onex-platform/omniintelligence/ent/fsmstate"
	"github.com/onex-platform/omniintelligence/ent/fsmtransition"
	"github.com/onex-platform/omniintelligence/pkg/metrics"
)

// Result reports the outcome of applying a trigger.
type Result struct {
	// Applied is false when the machine defined no transition for the
	// (current state, trigger) pair. Not an error: the caller logs and
	// proceeds.
	Applied bool

	FromState string
	ToState   string
}

// Reducer persists state machine transitions. State rows are keyed by
// (fsm_kind, entity_id); history rows are append-only.
type Reducer struct {
	metrics *metrics.Metrics
}

// NewReducer creates a reducer.
func NewReducer(m *metrics.Metrics) *Reducer {
	return &Reducer{metrics: m}
}

// Apply looks up the machine's current state (creating it at the initial
// state on first contact), reduces over the static table, and when the
// transition is defined, atomically updates the state row and appends a
// history row inside the caller's transaction.
func (r *Reducer) Apply(ctx context.Context, tx *ent.Tx, kind Kind, entityID, trigger, eventID string) (*Result, error) {
	state, err := tx.FSMState.Query().
		Where(
			fsmstate.FsmKindEQ(kind),
			fsmstate.EntityIDEQ(entityID),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		state, err = tx.FSMState.Create().
			SetFsmKind(kind).
			SetEntityID(entityID).
			SetCurrentState(InitialState).
			Save(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load FSM state for %s/%s: %w", kind, entityID, err)
	}

	next, ok := Reduce(kind, state.CurrentState, trigger)
	if !ok {
		r.metrics.FSMRejectedTotal.WithLabelValues(string(kind)).Inc()
		return &Result{Applied: false, FromState: state.CurrentState}, nil
	}

	update := tx.FSMState.UpdateOne(state).
		SetCurrentState(next).
		SetEnteredAt(time.Now())
	if eventID != "" {
		update = update.SetLastEventID(eventID)
	}
	if err := update.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to update FSM state for %s/%s: %w", kind, entityID, err)
	}

	history := tx.FSMTransition.Create().
		SetFsmKind(fsmtransition.FsmKind(kind)).
		SetEntityID(entityID).
		SetFromState(state.CurrentState).
		SetToState(next).
		SetTrigger(trigger)
	if eventID != "" {
		history = history.SetEventID(eventID)
	}
	if _, err := history.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to append FSM history for %s/%s: %w", kind, entityID, err)
	}

	r.metrics.FSMTransitionsTotal.WithLabelValues(string(kind)).Inc()
	return &Result{Applied: true, FromState: state.CurrentState, ToState: next}, nil
}

// Current returns the machine's current state, or the initial state if
// the machine has never been touched.
func (r *Reducer) Current(ctx context.Context, client *ent.Client, kind Kind, entityID string) (string, error) {
	state, err := client.FSMState.Query().
		Where(
			fsmstate.FsmKindEQ(kind),
			fsmstate.EntityIDEQ(entityID),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return InitialState, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to query FSM state for %s/%s: %w", kind, entityID, err)
	}
	return state.CurrentState, nil
}

// History returns the machine's transition history in order.
func (r *Reducer) History(ctx context.Context, client *ent.Client, kind Kind, entityID string) ([]*ent.FSMTransition, error) {
	transitions, err := client.FSMTransition.Query().
		Where(
			fsmtransition.FsmKindEQ(fsmtransition.FsmKind(kind)),
			fsmtransition.EntityIDEQ(entityID),
		).
		Order(ent.Asc(fsmtransition.FieldCreatedAt), ent.Asc(fsmtransition.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query FSM history for %s/%s: %w", kind, entityID, err)
	}
	return transitions, nil
}
