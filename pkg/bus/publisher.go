package bus

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/onex-platform/omniintelligence/pkg/config"
	"github.com/onex-platform/omniintelligence/pkg/metrics"
)

// pubItem is one queued outbound message.
type pubItem struct {
	topic    string
	key      string
	envelope []byte
}

// Publisher is the non-blocking fire-and-forget emitter. Publish validates
// and enqueues; a background drain worker writes to the bus with retries.
// Delivery is at-least-once; consumers are idempotent.
type Publisher struct {
	store    *Store
	dlq      *DLQWriter
	cfg      *config.PublisherConfig
	metrics  *metrics.Metrics
	queue    chan pubItem
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewPublisher creates a publisher with a queue sized to the configured
// high-water mark.
func NewPublisher(store *Store, dlq *DLQWriter, cfg *config.PublisherConfig, m *metrics.Metrics) *Publisher {
	return &Publisher{
		store:   store,
		dlq:     dlq,
		cfg:     cfg,
		metrics: m,
		queue:   make(chan pubItem, cfg.BufferHighWaterMark),
		stopCh:  make(chan struct{}),
	}
}

// Start launches the drain worker.
func (p *Publisher) Start(ctx context.Context) {
	p.wg.Add(1)
	go p.drain(ctx)
	slog.Info("Publisher started", "high_water_mark", p.cfg.BufferHighWaterMark)
}

// Stop signals the drain worker and waits for it to flush the queue.
// Safe to call multiple times.
func (p *Publisher) Stop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()
}

// Publish validates the envelope and enqueues it. It never waits on the
// bus: a full queue routes the message straight to the DLQ instead of
// blocking the caller. An invalid envelope fails synchronously since that
// is a programmer bug that should surface immediately.
func (p *Publisher) Publish(topic, key string, env *Envelope) error {
	envJSON, err := env.Marshal()
	if err != nil {
		return err
	}

	select {
	case <-p.stopCh:
		return ErrPublisherStopped
	default:
	}

	item := pubItem{topic: topic, key: key, envelope: envJSON}
	select {
	case p.queue <- item:
		p.metrics.PublishQueueDepth.Set(float64(len(p.queue)))
		return nil
	default:
		// Queue at high-water mark. Overflow goes to the DLQ so the
		// write path never blocks.
		slog.Warn("Publish queue full, routing to DLQ",
			"topic", topic, "event_id", env.EventID)
		p.toDeadLetter(context.Background(), item, ErrorKindOverflow,
			fmt.Sprintf("publish queue at high-water mark (%d)", p.cfg.BufferHighWaterMark), 0)
		return nil
	}
}

// drain is the background worker that moves queued messages to the bus.
func (p *Publisher) drain(ctx context.Context) {
	defer p.wg.Done()

	for {
		select {
		case item := <-p.queue:
			p.metrics.PublishQueueDepth.Set(float64(len(p.queue)))
			p.deliver(ctx, item)
		case <-p.stopCh:
			p.flush(ctx)
			slog.Info("Publisher drain worker stopped")
			return
		case <-ctx.Done():
			p.flush(context.Background())
			return
		}
	}
}

// flush performs a final best-effort delivery pass over whatever is still
// queued at shutdown. Each message gets one attempt; failures go to the DLQ.
func (p *Publisher) flush(ctx context.Context) {
	for {
		select {
		case item := <-p.queue:
			if _, err := p.store.Append(ctx, item.topic, item.key, item.envelope); err != nil {
				p.toDeadLetter(ctx, item, ErrorKindPublish,
					fmt.Sprintf("shutdown flush failed: %v", err), 1)
				continue
			}
			p.metrics.PublishedTotal.WithLabelValues(item.topic).Inc()
		default:
			return
		}
	}
}

// deliver writes one message with exponential backoff. After MaxAttempts
// the message is routed to the DLQ so a poison message cannot stall the
// queue behind it.
func (p *Publisher) deliver(ctx context.Context, item pubItem) {
	var lastErr error
	for attempt := 1; attempt <= p.cfg.MaxAttempts; attempt++ {
		_, err := p.store.Append(ctx, item.topic, item.key, item.envelope)
		if err == nil {
			p.metrics.PublishedTotal.WithLabelValues(item.topic).Inc()
			return
		}
		lastErr = err
		p.metrics.PublishRetryTotal.WithLabelValues(item.topic).Inc()
		slog.Warn("Bus write failed, backing off",
			"topic", item.topic, "attempt", attempt, "error", err)

		if !p.sleep(backoffFor(attempt, p.cfg.RetryBase, p.cfg.RetryCap)) {
			// Shutting down; one last attempt happens in flush if the
			// item is requeued, but here we dead-letter directly.
			p.toDeadLetter(context.Background(), item, ErrorKindPublish,
				fmt.Sprintf("shutdown during retry: %v", lastErr), attempt)
			return
		}
	}

	p.toDeadLetter(ctx, item, ErrorKindPublish,
		fmt.Sprintf("exhausted %d attempts: %v", p.cfg.MaxAttempts, lastErr), p.cfg.MaxAttempts)
}

// toDeadLetter appends the message to its DLQ topic. If the DLQ append
// itself fails the message is dropped and the drop metric incremented;
// primary DB state is never sacrificed for emission.
func (p *Publisher) toDeadLetter(ctx context.Context, item pubItem, kind, message string, retryCount int) {
	err := p.dlq.Write(ctx, item.topic, item.key, item.envelope, kind, message, retryCount)
	if err == nil {
		p.metrics.DeadLetterTotal.WithLabelValues(item.topic, kind).Inc()
		return
	}
	p.metrics.DroppedTotal.WithLabelValues(item.topic).Inc()
	slog.Error("DLQ append failed, dropping message",
		"topic", item.topic, "error_kind", kind, "error", err)
}

// sleep waits for the given duration or until stop is signalled.
// Returns false when stopping.
func (p *Publisher) sleep(d time.Duration) bool {
	select {
	case <-p.stopCh:
		return false
	case <-time.After(d):
		return true
	}
}

// backoffFor computes the jittered exponential backoff for an attempt.
// Full jitter over [0, min(limit, base*2^(attempt-1))].
func backoffFor(attempt int, base, limit time.Duration) time.Duration {
	d := base
	for i := 1; i < attempt; i++ {
		d *= 2
		if d >= limit {
			d = limit
			break
		}
	}
	return time.Duration(rand.Int64N(int64(d)) + 1)
}
