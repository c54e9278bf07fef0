package ledger

import (
	"context"
	"log/slog"
	"time"

	"github.com/onex-platform/omniintelligence/ent"
	"github.com/onex-platform/omniintelligence/ent/idempotencyrecord"
	"github.com/onex-platform/omniintelligence/pkg/config"
)

// BusRetention deletes bus messages older than a cutoff. Satisfied by
// bus.Store. The sweep keeps ledger and message retention aligned: ledger
// entries must outlive the messages that could be re-delivered.
type BusRetention interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// Sweeper periodically evicts expired ledger entries and old bus
// messages. Operations are idempotent and safe to run from multiple pods.
type Sweeper struct {
	client *ent.Client
	bus    BusRetention
	config *config.IdempotencyConfig

	cancel context.CancelFunc
	done   chan struct{}
}

// NewSweeper creates a retention sweeper.
func NewSweeper(client *ent.Client, bus BusRetention, cfg *config.IdempotencyConfig) *Sweeper {
	return &Sweeper{
		client: client,
		bus:    bus,
		config: cfg,
	}
}

// Start launches the background sweep loop.
func (s *Sweeper) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Ledger sweeper started",
		"retention_days", s.config.RetentionDays,
		"interval", s.config.SweepInterval)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Sweeper) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Ledger sweeper stopped")
}

func (s *Sweeper) run(ctx context.Context) {
	defer close(s.done)

	s.sweep(ctx)

	ticker := time.NewTicker(s.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	cutoff := time.Now().AddDate(0, 0, -s.config.RetentionDays)

	count, err := s.client.IdempotencyRecord.Delete().
		Where(idempotencyrecord.FirstSeenAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: ledger sweep failed", "error", err)
	} else if count > 0 {
		slog.Info("Retention: evicted expired ledger entries", "count", count)
	}

	// Bus messages are kept strictly longer than ledger entries so a
	// re-delivered message always finds its ledger row first.
	busCutoff := cutoff.AddDate(0, 0, -s.config.RetentionDays)
	deleted, err := s.bus.DeleteOlderThan(ctx, busCutoff)
	if err != nil {
		slog.Error("Retention: bus message sweep failed", "error", err)
	} else if deleted > 0 {
		slog.Info("Retention: deleted old bus messages", "count", deleted)
	}
}
