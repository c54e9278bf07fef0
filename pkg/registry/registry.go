// Package registry binds subscribed-topic messages to handlers declared
// in contracts. Contracts name their routing strategy, dependencies, and
// trigger bindings; the registry resolves dependencies at wire time and
// builds the dispatch table the engine routes with.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/onex-platform/omniintelligence/ent"
	"github.com/onex-platform/omniintelligence/pkg/bus"
)

// RoutingStrategy selects how a message picks its binding within a topic.
type RoutingStrategy string

const (
	// RouteByEventType matches bindings against the envelope's event_type.
	RouteByEventType RoutingStrategy = "event_type_match"

	// RouteByOperation matches bindings against the payload's top-level
	// "operation" field. Used by administrative command topics carrying
	// several operations under one event type.
	RouteByOperation RoutingStrategy = "operation_match"
)

// OrphanPolicy decides what happens to messages no binding matches.
type OrphanPolicy string

const (
	// OrphanToDLQ routes unmatched messages to the topic's DLQ.
	OrphanToDLQ OrphanPolicy = "dlq"

	// OrphanDrop logs and drops unmatched messages.
	OrphanDrop OrphanPolicy = "drop"
)

// MessageContext carries per-message identifiers into the handler. The
// correlation ID threads through every log line and emitted event.
type MessageContext struct {
	CorrelationID string
	SessionID     string
	EventID       string
	Topic         string
	Partition     int
	MessageID     int64
}

// Logger returns a slog logger pre-bound with the message identifiers.
func (mc *MessageContext) Logger() *slog.Logger {
	return slog.With(
		"correlation_id", mc.CorrelationID,
		"event_id", mc.EventID,
		"topic", mc.Topic,
		"partition", mc.Partition,
	)
}

// HandlerFunc processes one envelope inside the dispatcher's transaction.
// The transaction already holds the idempotency claim for contracts with
// tracking enabled; handler writes through tx commit atomically with it.
type HandlerFunc func(ctx context.Context, mc *MessageContext, tx *ent.Tx, env *bus.Envelope) error

// ReshapeFunc rewrites raw message bytes before envelope validation.
// Registered per topic for sources emitting legacy or flat formats.
type ReshapeFunc func(data []byte) ([]byte, error)

// Binding pairs a trigger value with a handler function.
type Binding struct {
	Trigger string
	Handler HandlerFunc
}

// Dependency declares an external collaborator a contract needs.
type Dependency struct {
	Name     string
	Required bool
}

// Contract declares one handler group: its topics, routing, bindings,
// idempotency, and dependencies.
type Contract struct {
	Name            string
	Routing         RoutingStrategy
	Bindings        []Binding
	SubscribeTopics []string
	PublishTopics   []string
	Idempotent      bool
	OrphanPolicy    OrphanPolicy
	Dependencies    []Dependency
}

// Route is one resolved dispatch-table entry.
type Route struct {
	Contract *Contract
	Handler  HandlerFunc
}

// Registry holds registered contracts and the wired dispatch table.
type Registry struct {
	contracts map[string]*Contract
	table     map[string][]tableEntry // topic → bindings
	reshapes  map[string]ReshapeFunc  // topic → reshape
	policies  map[string]OrphanPolicy // topic → orphan policy
	wired     bool
}

type tableEntry struct {
	contract *Contract
	trigger  string
	handler  HandlerFunc
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		contracts: make(map[string]*Contract),
		table:     make(map[string][]tableEntry),
		reshapes:  make(map[string]ReshapeFunc),
		policies:  make(map[string]OrphanPolicy),
	}
}

// Register adds a contract. Must happen before Wire.
func (r *Registry) Register(c *Contract) error {
	if _, exists := r.contracts[c.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateContract, c.Name)
	}
	if c.Routing == "" {
		c.Routing = RouteByEventType
	}
	if c.OrphanPolicy == "" {
		c.OrphanPolicy = OrphanToDLQ
	}
	r.contracts[c.Name] = c
	return nil
}

// RegisterReshape installs a payload-reshape step for a topic. It runs
// before envelope validation.
func (r *Registry) RegisterReshape(topic string, fn ReshapeFunc) {
	r.reshapes[topic] = fn
}

// Wire resolves every contract's dependencies against the injected
// collaborators and builds the dispatch table. Fails fast on a missing
// required dependency.
func (r *Registry) Wire(collaborators map[string]any) error {
	for name, c := range r.contracts {
		for _, dep := range c.Dependencies {
			v, ok := collaborators[dep.Name]
			if (!ok || v == nil) && dep.Required {
				return fmt.Errorf("%w: contract %s requires %s", ErrMissingDependency, name, dep.Name)
			}
			if !ok || v == nil {
				slog.Debug("Optional dependency absent", "contract", name, "dependency", dep.Name)
			}
		}

		for _, topic := range c.SubscribeTopics {
			for _, b := range c.Bindings {
				r.table[topic] = append(r.table[topic], tableEntry{
					contract: c,
					trigger:  b.Trigger,
					handler:  b.Handler,
				})
			}
			r.policies[topic] = c.OrphanPolicy
		}
	}
	r.wired = true
	return nil
}

// SubscribedTopics returns every topic with at least one binding.
func (r *Registry) SubscribedTopics() []string {
	topics := make([]string, 0, len(r.table))
	for t := range r.table {
		topics = append(topics, t)
	}
	return topics
}

// ReshapeFor returns the topic's reshape step, or nil.
func (r *Registry) ReshapeFor(topic string) ReshapeFunc {
	return r.reshapes[topic]
}

// PolicyFor returns the topic's orphan policy.
func (r *Registry) PolicyFor(topic string) OrphanPolicy {
	if p, ok := r.policies[topic]; ok {
		return p
	}
	return OrphanToDLQ
}

// RouteFor selects the handler for an envelope on a topic via the
// contract's routing strategy. Returns ErrNoHandler when nothing matches.
func (r *Registry) RouteFor(topic string, env *bus.Envelope) (*Route, error) {
	entries, ok := r.table[topic]
	if !ok || len(entries) == 0 {
		return nil, fmt.Errorf("%w: topic %s has no bindings", ErrNoHandler, topic)
	}

	for i := range entries {
		e := &entries[i]
		matched, err := matches(e.contract.Routing, e.trigger, env)
		if err != nil {
			return nil, err
		}
		if matched {
			return &Route{Contract: e.contract, Handler: e.handler}, nil
		}
	}
	return nil, fmt.Errorf("%w: event_type %s on topic %s", ErrNoHandler, env.EventType, topic)
}

// matches evaluates one binding's predicate.
func matches(strategy RoutingStrategy, trigger string, env *bus.Envelope) (bool, error) {
	switch strategy {
	case RouteByEventType:
		return env.EventType == trigger, nil
	case RouteByOperation:
		var probe struct {
			Operation string `json:"operation"`
		}
		if err := json.Unmarshal(env.Payload, &probe); err != nil {
			return false, Validation(fmt.Errorf("payload has no parseable operation field: %w", err))
		}
		return probe.Operation == trigger, nil
	default:
		return false, Invariant(fmt.Errorf("unknown routing strategy %q", strategy))
	}
}
