// Package handlers declares the plugin's message handlers and their
// contracts: hook-event ingestion, session-outcome feedback, and the
// administrative pattern-lifecycle commands.
package handlers

import (
	"log/slog"

	"github.com/onex-platform/omniintelligence/pkg/bus"
	"github.com/onex-platform/omniintelligence/pkg/feedback"
	"github.com/onex-platform/omniintelligence/pkg/fsm"
	"github.com/onex-platform/omniintelligence/pkg/lifecycle"
	"github.com/onex-platform/omniintelligence/pkg/mining"
	"github.com/onex-platform/omniintelligence/pkg/registry"
	"github.com/onex-platform/omniintelligence/pkg/store"
)

// Collaborator names resolved at wire time. The plugin injects these into
// registry.Wire; contracts below declare which ones they require.
const (
	DepPatternStore        = "pattern_store"
	DepLifecycleController = "lifecycle_controller"
	DepFeedbackAggregator  = "feedback_aggregator"
	DepFSMReducer          = "fsm_reducer"
	DepPatternMiner        = "pattern_miner"
	DepEventPublisher      = "event_publisher"
)

// Event types consumed and emitted.
const (
	EventHookEvent        = "claude-hook-event"
	EventSessionOutcome   = "session-outcome"
	EventIntentClassified = "intent-classified"
	EventPatternStored    = "pattern-stored"
)

// Administrative operations on the pattern-lifecycle command topic.
const (
	OpDisable  = "disable"
	OpEnable   = "enable"
	OpEvaluate = "evaluate"
)

// Handlers bundles the collaborators every handler closes over.
type Handlers struct {
	store     *store.Store
	lifecycle *lifecycle.Controller
	feedback  *feedback.Aggregator
	reducer   *fsm.Reducer
	miner     mining.Miner
	publisher lifecycle.Emitter
	envName   string // topic {env} segment
}

// New creates the handler set. miner and publisher may be nil: mining
// falls back to the in-process extractor and emission becomes a no-op.
func New(st *store.Store, lc *lifecycle.Controller, fb *feedback.Aggregator, reducer *fsm.Reducer, miner mining.Miner, publisher lifecycle.Emitter, envName string) *Handlers {
	if miner == nil {
		miner = mining.NewLocalMiner()
	}
	return &Handlers{
		store:     st,
		lifecycle: lc,
		feedback:  fb,
		reducer:   reducer,
		miner:     miner,
		publisher: publisher,
		envName:   envName,
	}
}

// Collaborators returns the wire-time dependency map matching the
// contract declarations.
func (h *Handlers) Collaborators() map[string]any {
	m := map[string]any{
		DepPatternStore:        h.store,
		DepLifecycleController: h.lifecycle,
		DepFeedbackAggregator:  h.feedback,
		DepFSMReducer:          h.reducer,
		DepPatternMiner:        h.miner,
	}
	// A nil interface must stay absent so optional-dep resolution sees it.
	if h.publisher != nil {
		m[DepEventPublisher] = h.publisher
	}
	return m
}

// Register installs every contract and reshape step on the registry.
func (h *Handlers) Register(r *registry.Registry) error {
	hookTopic := bus.CommandTopic(h.envName, EventHookEvent)
	outcomeTopic := bus.CommandTopic(h.envName, EventSessionOutcome)
	lifecycleTopic := bus.CommandTopic(h.envName, "pattern-lifecycle")

	if err := r.Register(&registry.Contract{
		Name:    "hook-event-ingestion",
		Routing: registry.RouteByEventType,
		Bindings: []registry.Binding{
			{Trigger: EventHookEvent, Handler: h.HandleHookEvent},
		},
		SubscribeTopics: []string{hookTopic},
		PublishTopics: []string{
			bus.EventTopic(h.envName, EventIntentClassified),
			bus.EventTopic(h.envName, EventPatternStored),
		},
		Idempotent:   true,
		OrphanPolicy: registry.OrphanToDLQ,
		Dependencies: []registry.Dependency{
			{Name: DepPatternStore, Required: true},
			{Name: DepLifecycleController, Required: true},
			{Name: DepFSMReducer, Required: true},
			{Name: DepPatternMiner, Required: false},
			{Name: DepEventPublisher, Required: false},
		},
	}); err != nil {
		return err
	}

	if err := r.Register(&registry.Contract{
		Name:    "session-outcome-feedback",
		Routing: registry.RouteByEventType,
		Bindings: []registry.Binding{
			{Trigger: EventSessionOutcome, Handler: h.HandleSessionOutcome},
		},
		SubscribeTopics: []string{outcomeTopic},
		PublishTopics: []string{
			bus.EventTopic(h.envName, "pattern-promoted"),
			bus.EventTopic(h.envName, "pattern-deprecated"),
		},
		Idempotent:   true,
		OrphanPolicy: registry.OrphanToDLQ,
		Dependencies: []registry.Dependency{
			{Name: DepFeedbackAggregator, Required: true},
			{Name: DepLifecycleController, Required: true},
			{Name: DepFSMReducer, Required: true},
			{Name: DepEventPublisher, Required: false},
		},
	}); err != nil {
		return err
	}

	if err := r.Register(&registry.Contract{
		Name:    "pattern-lifecycle-admin",
		Routing: registry.RouteByOperation,
		Bindings: []registry.Binding{
			{Trigger: OpDisable, Handler: h.HandleDisable},
			{Trigger: OpEnable, Handler: h.HandleEnable},
			{Trigger: OpEvaluate, Handler: h.HandleEvaluate},
		},
		SubscribeTopics: []string{lifecycleTopic},
		PublishTopics: []string{
			bus.EventTopic(h.envName, "pattern-deprecated"),
		},
		Idempotent:   true,
		OrphanPolicy: registry.OrphanToDLQ,
		Dependencies: []registry.Dependency{
			{Name: DepPatternStore, Required: true},
			{Name: DepLifecycleController, Required: true},
			{Name: DepEventPublisher, Required: false},
		},
	}); err != nil {
		return err
	}

	// Some hook sources still emit flat JSON without a payload object.
	r.RegisterReshape(hookTopic, ReshapeFlatHookEvent)
	return nil
}

// emit publishes an event envelope, best-effort. The publisher queue is
// asynchronous; a later rollback of the handler transaction can leave a
// spurious event behind, which at-least-once consumers already absorb.
func (h *Handlers) emit(eventName, key, correlationID, sessionID string, payload any) {
	if h.publisher == nil {
		return
	}
	env, err := bus.NewEnvelope(eventName, correlationID, sessionID, payload)
	if err != nil {
		slog.Error("Failed to build event envelope", "event", eventName, "error", err)
		return
	}
	topic := bus.EventTopic(h.envName, eventName)
	if err := h.publisher.Publish(topic, key, env); err != nil {
		slog.Error("Failed to enqueue event", "event", eventName, "topic", topic, "error", err)
	}
}
