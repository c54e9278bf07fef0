package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/onex-platform/omniintelligence/ent"
	"github.com/onex-platform/omniintelligence/pkg/bus"
	"github.com/onex-platform/omniintelligence/pkg/registry"
)

// outcome classifies one message's processing result.
type outcome int

const (
	outcomeOK outcome = iota
	outcomeSkipped
	outcomePermanent // already dead-lettered; commit and move on
	outcomeTransient // do not commit; redeliver
	outcomeHalt      // invariant violation; stop the partition
)

// worker consumes one (topic, partition) slice in FIFO order. At most one
// message is in flight per worker, so per-partition order is preserved.
type worker struct {
	id        string
	topic     string
	partition int
	engine    *Engine

	wakeCh   chan struct{}
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// retryCounts tracks transient redeliveries per message ID. Reset on
	// success; past MaxRetries the message is dead-lettered.
	retryCounts map[int64]int

	mu     sync.Mutex
	halted bool
}

func newWorker(engine *Engine, topic string, partition int) *worker {
	return &worker{
		id:          fmt.Sprintf("%s[%d]", topic, partition),
		topic:       topic,
		partition:   partition,
		engine:      engine,
		wakeCh:      make(chan struct{}, 1),
		stopCh:      make(chan struct{}),
		retryCounts: make(map[int64]int),
	}
}

// Start begins the worker loop in a goroutine.
func (w *worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

func (w *worker) signalStop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
}

func (w *worker) wait() {
	w.wg.Wait()
}

// wake nudges the worker to poll immediately. Non-blocking: a pending
// wakeup is enough.
func (w *worker) wake() {
	select {
	case w.wakeCh <- struct{}{}:
	default:
	}
}

func (w *worker) isHalted() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.halted
}

func (w *worker) halt() {
	w.mu.Lock()
	w.halted = true
	w.mu.Unlock()
}

// run is the main worker loop: process everything available, then sleep
// until the poll interval elapses or a NOTIFY wakeup arrives.
func (w *worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker", w.id)
	log.Info("Dispatch worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Dispatch worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, dispatch worker shutting down")
			return
		default:
			processed, err := w.processBatch(ctx)
			if err != nil {
				// Invariant violation: halt this partition, preserving
				// order, and leave the rest of the engine running.
				log.Error("Partition halted on invariant violation", "error", err)
				w.halt()
				return
			}
			if processed == 0 {
				w.sleep(w.pollInterval())
			}
		}
	}
}

// sleep waits for the given duration, a wakeup, or stop.
func (w *worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-w.wakeCh:
	case <-time.After(d):
	}
}

// pollInterval returns the poll duration with jitter.
func (w *worker) pollInterval() time.Duration {
	base := w.engine.busCfg.PollInterval
	jitter := w.engine.busCfg.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// processBatch fetches messages past the committed offset and processes
// them in order. Returns the number of messages handled; a non-nil error
// halts the partition.
func (w *worker) processBatch(ctx context.Context) (int, error) {
	e := w.engine

	committed, err := e.store.CommittedOffset(ctx, e.busCfg.ConsumerGroup, w.topic, w.partition)
	if err != nil {
		slog.Warn("Failed to read committed offset", "worker", w.id, "error", err)
		return 0, nil
	}

	msgs, err := e.store.Fetch(ctx, w.topic, w.partition, committed, e.config.FetchBatchSize)
	if err != nil {
		slog.Warn("Failed to fetch messages", "worker", w.id, "error", err)
		return 0, nil
	}
	if len(msgs) == 0 {
		return 0, nil
	}

	processed := 0
	for i := range msgs {
		msg := &msgs[i]

		select {
		case <-w.stopCh:
			return processed, nil
		default:
		}

		switch w.processMessage(ctx, msg) {
		case outcomeOK, outcomeSkipped, outcomePermanent:
			if err := e.store.CommitOffset(ctx, e.busCfg.ConsumerGroup, w.topic, w.partition, msg.ID); err != nil {
				slog.Warn("Failed to commit offset", "worker", w.id, "message_id", msg.ID, "error", err)
				return processed, nil
			}
			delete(w.retryCounts, msg.ID)
			processed++

		case outcomeTransient:
			w.retryCounts[msg.ID]++
			if w.retryCounts[msg.ID] > e.config.MaxRetries {
				slog.Error("Retry cap exceeded, dead-lettering message",
					"worker", w.id, "message_id", msg.ID, "retries", w.retryCounts[msg.ID])
				w.toDeadLetter(ctx, msg, bus.ErrorKindTransient,
					fmt.Sprintf("exceeded %d redeliveries", e.config.MaxRetries), w.retryCounts[msg.ID])
				if err := e.store.CommitOffset(ctx, e.busCfg.ConsumerGroup, w.topic, w.partition, msg.ID); err != nil {
					slog.Warn("Failed to commit offset after DLQ", "worker", w.id, "error", err)
				}
				delete(w.retryCounts, msg.ID)
				processed++
				continue
			}
			// Leave the offset where it is; the message redelivers after
			// the backoff. Stop the batch to preserve order.
			w.sleep(e.config.RetryBackoff)
			return processed, nil

		case outcomeHalt:
			return processed, fmt.Errorf("invariant violation on message %d", msg.ID)
		}
	}
	return processed, nil
}

// processMessage runs the reshape → validate → route → invoke → commit
// pipeline for one message.
func (w *worker) processMessage(ctx context.Context, msg *bus.Message) outcome {
	e := w.engine
	raw := msg.Envelope

	// 1. Reshape legacy formats before validation.
	if reshape := e.registry.ReshapeFor(w.topic); reshape != nil {
		reshaped, err := reshape(raw)
		if err != nil {
			w.toDeadLetter(ctx, msg, bus.ErrorKindValidation,
				fmt.Sprintf("reshape failed: %v", err), 0)
			return outcomePermanent
		}
		raw = reshaped
	}

	// 2. Validate the envelope.
	env, err := bus.DecodeEnvelope(raw)
	if err != nil {
		w.toDeadLetter(ctx, msg, bus.ErrorKindValidation, err.Error(), 0)
		return outcomePermanent
	}

	// 3. Route by the contract's strategy.
	route, err := e.registry.RouteFor(w.topic, env)
	if err != nil {
		if errors.Is(err, registry.ErrNoHandler) {
			return w.handleOrphan(ctx, msg, env)
		}
		w.toDeadLetter(ctx, msg, bus.ErrorKindValidation, err.Error(), 0)
		return outcomePermanent
	}

	mc := &registry.MessageContext{
		CorrelationID: env.CorrelationID,
		EventID:       env.EventID,
		Topic:         w.topic,
		Partition:     w.partition,
		MessageID:     msg.ID,
	}
	if env.SessionID != nil {
		mc.SessionID = *env.SessionID
	}

	// 4. Invoke inside a transaction carrying the idempotency claim.
	return w.invoke(ctx, mc, route, msg, env)
}

// invoke opens the handler transaction, gates on the idempotency ledger
// when the contract asks for it, and classifies the handler's error.
func (w *worker) invoke(ctx context.Context, mc *registry.MessageContext, route *registry.Route, msg *bus.Message, env *bus.Envelope) outcome {
	e := w.engine
	handlerName := route.Contract.Name
	start := time.Now()

	tx, err := e.client.Tx(ctx)
	if err != nil {
		slog.Warn("Failed to open handler transaction", "worker", w.id, "error", err)
		return outcomeTransient
	}
	defer func() { _ = tx.Rollback() }()

	if route.Contract.Idempotent {
		seen, err := e.ledger.Seen(ctx, tx, env.EventID, handlerName)
		if err != nil {
			slog.Warn("Idempotency ledger unreachable", "worker", w.id, "error", err)
			return outcomeTransient
		}
		if seen.Duplicate {
			e.metrics.DuplicateHitsTotal.WithLabelValues(handlerName).Inc()
			mc.Logger().Debug("Duplicate delivery skipped", "handler", handlerName)
			e.metrics.DispatchTotal.WithLabelValues(handlerName, "skipped").Inc()
			return outcomeSkipped
		}
	}

	handlerErr := w.invokeGuarded(ctx, mc, route.Handler, tx, env)
	e.metrics.DispatchDuration.WithLabelValues(handlerName).Observe(time.Since(start).Seconds())

	switch {
	case handlerErr == nil:
		if err := tx.Commit(); err != nil {
			slog.Warn("Handler commit failed", "worker", w.id, "handler", handlerName, "error", err)
			e.metrics.DispatchTotal.WithLabelValues(handlerName, "retried").Inc()
			return outcomeTransient
		}
		e.metrics.DispatchTotal.WithLabelValues(handlerName, "ok").Inc()
		return outcomeOK

	case registry.IsInvariant(handlerErr):
		mc.Logger().Error("Invariant violation in handler",
			"handler", handlerName, "error", handlerErr)
		e.metrics.DispatchTotal.WithLabelValues(handlerName, "failed").Inc()
		return outcomeHalt

	case registry.IsTransient(handlerErr):
		mc.Logger().Warn("Transient handler failure, will redeliver",
			"handler", handlerName, "error", handlerErr)
		e.metrics.DispatchTotal.WithLabelValues(handlerName, "retried").Inc()
		return outcomeTransient

	default:
		// Domain and validation failures are data, not exceptions: the
		// message is dead-lettered and the offset commits.
		kind := bus.ErrorKindDomain
		if pe, ok := registry.AsPermanent(handlerErr); ok && pe.Kind == "validation" {
			kind = bus.ErrorKindValidation
		}
		mc.Logger().Warn("Permanent handler failure, dead-lettering",
			"handler", handlerName, "error_kind", kind, "error", handlerErr)
		w.toDeadLetter(ctx, msg, kind, handlerErr.Error(), w.retryCounts[msg.ID])
		e.metrics.DispatchTotal.WithLabelValues(handlerName, "failed").Inc()
		return outcomePermanent
	}
}

// invokeGuarded calls the handler, converting panics into invariant
// errors so a broken handler halts its partition instead of the process.
func (w *worker) invokeGuarded(ctx context.Context, mc *registry.MessageContext, handler registry.HandlerFunc, tx *ent.Tx, env *bus.Envelope) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = registry.Invariant(fmt.Errorf("handler panic: %v", r))
		}
	}()
	return handler(ctx, mc, tx, env)
}

// handleOrphan applies the topic's orphan policy to unmatched messages.
func (w *worker) handleOrphan(ctx context.Context, msg *bus.Message, env *bus.Envelope) outcome {
	switch w.engine.registry.PolicyFor(w.topic) {
	case registry.OrphanDrop:
		slog.Info("No handler matched, dropping per topic policy",
			"worker", w.id, "event_type", env.EventType, "event_id", env.EventID)
		return outcomeSkipped
	default:
		w.toDeadLetter(ctx, msg, bus.ErrorKindValidation,
			fmt.Sprintf("no handler matched event_type %s", env.EventType), 0)
		return outcomePermanent
	}
}

// toDeadLetter routes the raw message to the topic's DLQ. A failed DLQ
// write is logged and dropped; the offset still commits so the partition
// keeps moving.
func (w *worker) toDeadLetter(ctx context.Context, msg *bus.Message, kind, message string, retryCount int) {
	err := w.engine.dlq.Write(ctx, w.topic, msg.Key, msg.Envelope, kind, message, retryCount)
	if err == nil {
		w.engine.metrics.DeadLetterTotal.WithLabelValues(w.topic, kind).Inc()
		return
	}
	w.engine.metrics.DroppedTotal.WithLabelValues(w.topic).Inc()
	slog.Error("DLQ write failed, dropping message",
		"worker", w.id, "message_id", msg.ID, "error_kind", kind, "error", err)
}
