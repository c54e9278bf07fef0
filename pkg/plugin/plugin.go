// Package plugin implements the host-facing lifecycle: activation check,
// initialization, handler and dispatcher wiring, consumer startup, and
// shutdown. Every stage is single-call-guarded and logs under a fresh
// correlation ID.
package plugin

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/onex-platform/omniintelligence/pkg/bus"
	"github.com/onex-platform/omniintelligence/pkg/config"
	"github.com/onex-platform/omniintelligence/pkg/database"
	"github.com/onex-platform/omniintelligence/pkg/dispatch"
	"github.com/onex-platform/omniintelligence/pkg/feedback"
	"github.com/onex-platform/omniintelligence/pkg/fsm"
	"github.com/onex-platform/omniintelligence/pkg/handlers"
	"github.com/onex-platform/omniintelligence/pkg/ledger"
	"github.com/onex-platform/omniintelligence/pkg/lifecycle"
	"github.com/onex-platform/omniintelligence/pkg/metrics"
	"github.com/onex-platform/omniintelligence/pkg/mining"
	"github.com/onex-platform/omniintelligence/pkg/registry"
	"github.com/onex-platform/omniintelligence/pkg/scrub"
	"github.com/onex-platform/omniintelligence/pkg/store"
)

// Stage names, used for guard tracking and log context.
const (
	stageShouldActivate  = "should_activate"
	stageInitialize      = "initialize"
	stageWireHandlers    = "wire_handlers"
	stageWireDispatchers = "wire_dispatchers"
	stageStartConsumers  = "start_consumers"
	stageShutdown        = "shutdown"
)

// ErrStageOrder indicates a lifecycle stage was invoked before its
// predecessor completed.
var ErrStageOrder = fmt.Errorf("plugin lifecycle stage invoked out of order")

// Plugin owns every component and walks them through the host's
// lifecycle protocol.
type Plugin struct {
	podID string

	mu     sync.Mutex
	done   map[string]bool
	closed bool

	// Initialize
	cfg      *config.Config
	db       *database.Client
	metrics  *metrics.Metrics
	scrubber *scrub.Scrubber

	// WireHandlers
	patternStore *store.Store
	idempotency  *ledger.Ledger
	reducer      *fsm.Reducer
	aggregator   *feedback.Aggregator
	controller   *lifecycle.Controller
	miner        mining.Miner
	handlerSet   *handlers.Handlers
	registry     *registry.Registry

	// WireDispatchers
	busStore  *bus.Store
	dlq       *bus.DLQWriter
	publisher *bus.Publisher
	listener  *bus.Listener
	engine    *dispatch.Engine
	sweeper   *ledger.Sweeper
	heartbeat *heartbeat

	// Introspection events publish once per successful wiring; the guard
	// resets on the wireDispatchers error path so a retry can republish.
	introspectionPublished bool
}

// New creates an unwired plugin.
func New(podID string) *Plugin {
	return &Plugin{
		podID: podID,
		done:  make(map[string]bool),
	}
}

// enterOnce marks a stage done, returning false when it already ran.
func (p *Plugin) enterOnce(stage string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.done[stage] {
		return false
	}
	p.done[stage] = true
	return true
}

// resetGuard clears a stage's done flag during teardown so the host can
// retry wiring after a failure.
func (p *Plugin) resetGuard(stage string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.done, stage)
}

func (p *Plugin) ran(stage string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.done[stage]
}

// stageLogger returns a logger bound to the stage and a fresh
// correlation ID, which also threads into events emitted by the stage.
func stageLogger(stage string) (*slog.Logger, string) {
	correlationID := uuid.NewString()
	return slog.With("stage", stage, "correlation_id", correlationID), correlationID
}

// ShouldActivate reports whether the plugin should run in this process.
// Deactivation is an operational switch, not an error.
func (p *Plugin) ShouldActivate(_ context.Context) (bool, error) {
	log, _ := stageLogger(stageShouldActivate)
	if !p.enterOnce(stageShouldActivate) {
		log.Warn("Stage already ran, ignoring")
		return true, nil
	}

	if v := os.Getenv("OMNIINTELLIGENCE_ENABLED"); v == "false" || v == "0" {
		log.Info("Plugin deactivated by environment switch")
		return false, nil
	}
	log.Info("Plugin activating")
	return true, nil
}

// Initialize loads configuration and opens the database.
func (p *Plugin) Initialize(ctx context.Context, configDir string) error {
	log, _ := stageLogger(stageInitialize)
	if !p.enterOnce(stageInitialize) {
		log.Warn("Stage already ran, ignoring")
		return nil
	}

	cfg, err := config.Initialize(ctx, configDir)
	if err != nil {
		p.resetGuard(stageInitialize)
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}
	p.cfg = cfg

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		p.resetGuard(stageInitialize)
		return fmt.Errorf("failed to load database config: %w", err)
	}
	db, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		p.resetGuard(stageInitialize)
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	p.db = db

	p.metrics = metrics.New(prometheus.DefaultRegisterer)
	p.scrubber = scrub.New()

	log.Info("Plugin initialized", "pod_id", p.podID)
	return nil
}

// WireHandlers constructs the domain components and registers every
// handler contract, failing fast on missing required dependencies.
func (p *Plugin) WireHandlers(_ context.Context) error {
	log, _ := stageLogger(stageWireHandlers)
	if !p.ran(stageInitialize) {
		return fmt.Errorf("%w: wire_handlers before initialize", ErrStageOrder)
	}
	if !p.enterOnce(stageWireHandlers) {
		log.Warn("Stage already ran, ignoring")
		return nil
	}

	p.patternStore = store.New()
	p.idempotency = ledger.New()
	p.reducer = fsm.NewReducer(p.metrics)
	p.aggregator = feedback.New(p.db.Client, p.cfg.Feedback, p.cfg.Lifecycle.DemotionThreshold, p.metrics)

	// The controller emits through the plugin so the publisher can be
	// wired later without reordering the stages.
	p.controller = lifecycle.New(p.db.Client, p.patternStore, p.cfg.Lifecycle,
		deferredEmitter{p}, p.metrics, p.cfg.Bus.TopicEnvPrefix)

	if addr := p.cfg.Miner.Addr; addr != "" {
		miner, err := mining.NewGRPCMiner(addr)
		if err != nil {
			p.resetGuard(stageWireHandlers)
			return fmt.Errorf("failed to initialize mining client: %w", err)
		}
		p.miner = miner
		log.Info("External mining service wired", "addr", addr)
	} else {
		p.miner = mining.NewLocalMiner()
		log.Info("Using in-process pattern extraction")
	}

	p.handlerSet = handlers.New(p.patternStore, p.controller, p.aggregator,
		p.reducer, p.miner, deferredEmitter{p}, p.cfg.Bus.TopicEnvPrefix)

	p.registry = registry.New()
	if err := p.handlerSet.Register(p.registry); err != nil {
		p.resetGuard(stageWireHandlers)
		return fmt.Errorf("failed to register handler contracts: %w", err)
	}
	if err := p.registry.Wire(p.handlerSet.Collaborators()); err != nil {
		p.resetGuard(stageWireHandlers)
		return fmt.Errorf("failed to wire handler dependencies: %w", err)
	}

	log.Info("Handlers wired", "topics", len(p.registry.SubscribedTopics()))
	return nil
}

// WireDispatchers constructs the bus plumbing and the dispatch engine,
// and publishes the introspection announcement. A failure after partial
// wiring runs the shared cleanup routine so a retry starts clean.
func (p *Plugin) WireDispatchers(ctx context.Context) error {
	log, correlationID := stageLogger(stageWireDispatchers)
	if !p.ran(stageWireHandlers) {
		return fmt.Errorf("%w: wire_dispatchers before wire_handlers", ErrStageOrder)
	}
	if !p.enterOnce(stageWireDispatchers) {
		log.Warn("Stage already ran, ignoring")
		return nil
	}

	fail := func(err error) error {
		// Mirror of Shutdown's teardown. Divergence between the two paths
		// is a correctness bug.
		p.cleanup(ctx, log)
		p.resetGuard(stageWireDispatchers)
		return err
	}

	p.busStore = bus.NewStore(p.db.DB(), p.cfg.Bus.Partitions)
	p.dlq = bus.NewDLQWriter(p.busStore, p.scrubber, map[string]string{
		"service": bus.Producer,
		"pod_id":  p.podID,
	})
	p.publisher = bus.NewPublisher(p.busStore, p.dlq, p.cfg.Publisher, p.metrics)
	p.listener = bus.NewListener(p.db.DSN())
	p.engine = dispatch.NewEngine(p.db.Client, p.busStore, p.listener, p.registry,
		p.idempotency, p.dlq, p.cfg.Dispatch, p.cfg.Bus, p.metrics)
	p.sweeper = ledger.NewSweeper(p.db.Client, p.busStore, p.cfg.Idempotency)

	// Introspection: announce the plugin and start the heartbeat.
	p.heartbeat = newHeartbeat(p.publisher, p.busStore, p.cfg.Bus.TopicEnvPrefix, p.podID)
	if !p.introspectionPublished {
		if err := p.heartbeat.announce(ctx, correlationID); err != nil {
			return fail(fmt.Errorf("failed to publish introspection announcement: %w", err))
		}
		p.introspectionPublished = true
	}

	log.Info("Dispatchers wired")
	return nil
}

// StartConsumers starts the background machinery: listener, publisher
// drain worker, dispatch workers, retention sweeper, and heartbeat.
func (p *Plugin) StartConsumers(ctx context.Context) error {
	log, _ := stageLogger(stageStartConsumers)
	if !p.ran(stageWireDispatchers) {
		return fmt.Errorf("%w: start_consumers before wire_dispatchers", ErrStageOrder)
	}
	if !p.enterOnce(stageStartConsumers) {
		log.Warn("Stage already ran, ignoring")
		return nil
	}

	if err := p.listener.Start(ctx); err != nil {
		p.resetGuard(stageStartConsumers)
		return fmt.Errorf("failed to start bus listener: %w", err)
	}
	p.publisher.Start(ctx)
	if err := p.engine.Start(ctx); err != nil {
		p.resetGuard(stageStartConsumers)
		return fmt.Errorf("failed to start dispatch engine: %w", err)
	}
	p.sweeper.Start(ctx)
	p.heartbeat.Start(ctx)

	log.Info("Consumers started")
	return nil
}

// Shutdown stops everything in reverse order and releases every handle.
// Safe to call once; the plugin cannot be restarted afterwards.
func (p *Plugin) Shutdown(ctx context.Context) error {
	log, _ := stageLogger(stageShutdown)
	if !p.enterOnce(stageShutdown) {
		log.Warn("Stage already ran, ignoring")
		return nil
	}

	// Stop intake first so in-flight handlers drain.
	if p.engine != nil {
		p.engine.Stop()
	}
	if p.sweeper != nil {
		p.sweeper.Stop()
	}
	// Publisher last among emitters so drained handlers can still emit.
	if p.publisher != nil {
		p.publisher.Stop()
	}

	p.cleanup(ctx, log)

	if p.miner != nil {
		if err := p.miner.Close(); err != nil {
			log.Debug("Error closing mining client", "error", err)
		}
		p.miner = nil
	}
	if p.db != nil {
		if err := p.db.Close(); err != nil {
			log.Error("Error closing database client", "error", err)
		}
		p.db = nil
	}

	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()

	log.Info("Plugin shut down")
	return nil
}

// cleanup is shared between the wireDispatchers error path and Shutdown:
// stop the heartbeat, stop the listener, reset the introspection guard,
// and clear the handles captured so far.
func (p *Plugin) cleanup(ctx context.Context, log *slog.Logger) {
	if p.heartbeat != nil {
		p.heartbeat.Stop()
		log.Debug("Heartbeat stopped")
		p.heartbeat = nil
	}
	if p.listener != nil {
		p.listener.Stop(ctx)
		log.Debug("Bus listener stopped")
		p.listener = nil
	}
	p.introspectionPublished = false
	p.engine = nil
	p.sweeper = nil
	p.publisher = nil
	p.dlq = nil
	p.busStore = nil
}

// Engine exposes the dispatch engine for the health endpoint. Nil until
// WireDispatchers succeeds.
func (p *Plugin) Engine() *dispatch.Engine {
	return p.engine
}

// DB exposes the database client for the health endpoint.
func (p *Plugin) DB() *database.Client {
	return p.db
}

// Config returns the loaded configuration. Nil until Initialize.
func (p *Plugin) Config() *config.Config {
	return p.cfg
}

// PatternStore exposes the pattern store for the read-only API.
func (p *Plugin) PatternStore() *store.Store {
	return p.patternStore
}

// deferredEmitter routes Publish calls to the plugin's publisher, which
// does not exist yet when the lifecycle controller is constructed during
// WireHandlers.
type deferredEmitter struct {
	p *Plugin
}

func (d deferredEmitter) Publish(topic, key string, env *bus.Envelope) error {
	if d.p.publisher == nil {
		return fmt.Errorf("%w: publisher not wired", bus.ErrPublisherStopped)
	}
	return d.p.publisher.Publish(topic, key, env)
}
