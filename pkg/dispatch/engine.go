// Package dispatch owns the consumer loop: one worker per subscribed
// (topic, partition) preserving per-partition FIFO, with the
// reshape → validate → route → invoke → commit pipeline per message.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/onex-platform/omniintelligence/ent"
	"github.com/onex-platform/omniintelligence/pkg/bus"
	"github.com/onex-platform/omniintelligence/pkg/config"
	"github.com/onex-platform/omniintelligence/pkg/ledger"
	"github.com/onex-platform/omniintelligence/pkg/metrics"
	"github.com/onex-platform/omniintelligence/pkg/registry"
)

// Engine runs the consumer workers for every subscribed topic.
type Engine struct {
	client   *ent.Client
	store    *bus.Store
	listener *bus.Listener
	registry *registry.Registry
	ledger   *ledger.Ledger
	dlq      *bus.DLQWriter
	config   *config.DispatchConfig
	busCfg   *config.BusConfig
	metrics  *metrics.Metrics

	workers []*worker
	started bool
}

// NewEngine creates a dispatch engine over a wired registry.
func NewEngine(client *ent.Client, store *bus.Store, listener *bus.Listener, reg *registry.Registry, led *ledger.Ledger, dlq *bus.DLQWriter, cfg *config.DispatchConfig, busCfg *config.BusConfig, m *metrics.Metrics) *Engine {
	return &Engine{
		client:   client,
		store:    store,
		listener: listener,
		registry: reg,
		ledger:   led,
		dlq:      dlq,
		config:   cfg,
		busCfg:   busCfg,
		metrics:  m,
	}
}

// Start spawns one worker per (topic, partition) and subscribes each
// topic's NOTIFY channel for wakeups. Safe to call once; subsequent
// calls are no-ops.
func (e *Engine) Start(ctx context.Context) error {
	if e.started {
		slog.Warn("Dispatch engine already started, ignoring duplicate Start call")
		return nil
	}
	e.started = true

	topics := e.registry.SubscribedTopics()
	slog.Info("Starting dispatch engine",
		"topics", len(topics), "partitions", e.busCfg.Partitions)

	for _, topic := range topics {
		topicWorkers := make([]*worker, e.busCfg.Partitions)
		for partition := 0; partition < e.busCfg.Partitions; partition++ {
			w := newWorker(e, topic, partition)
			topicWorkers[partition] = w
			e.workers = append(e.workers, w)
			w.Start(ctx)
		}

		// One LISTEN per topic; the NOTIFY payload names the partition
		// so only that partition's worker wakes.
		workers := topicWorkers
		err := e.listener.Subscribe(ctx, bus.NotifyChannel(topic), func(payload []byte) {
			var p int
			if _, err := fmt.Sscanf(string(payload), "%d", &p); err != nil || p < 0 || p >= len(workers) {
				for _, w := range workers {
					w.wake()
				}
				return
			}
			workers[p].wake()
		})
		if err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", topic, err)
		}
	}

	slog.Info("Dispatch engine started", "workers", len(e.workers))
	return nil
}

// Stop signals all workers and waits up to the drain timeout for
// in-flight handlers to finish, then abandons them.
func (e *Engine) Stop() {
	slog.Info("Stopping dispatch engine")

	for _, w := range e.workers {
		w.signalStop()
	}

	done := make(chan struct{})
	go func() {
		var wg sync.WaitGroup
		for _, w := range e.workers {
			wg.Add(1)
			go func(w *worker) {
				defer wg.Done()
				w.wait()
			}(w)
		}
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Dispatch engine stopped gracefully")
	case <-time.After(e.config.DrainTimeout):
		slog.Warn("Drain timeout exceeded, abandoning in-flight handlers",
			"timeout", e.config.DrainTimeout)
	}
}

// Health summarizes worker state for the health endpoint.
type Health struct {
	TotalWorkers  int `json:"total_workers"`
	HaltedWorkers int `json:"halted_workers"`
}

// Health reports how many partition workers are halted. A halted worker
// means an invariant violation stopped a partition.
func (e *Engine) Health() Health {
	h := Health{TotalWorkers: len(e.workers)}
	for _, w := range e.workers {
		if w.isHalted() {
			h.HaltedWorkers++
		}
	}
	return h
}
