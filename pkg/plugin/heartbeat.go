package plugin

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/onex-platform/omniintelligence/pkg/bus"
	"github.com/onex-platform/omniintelligence/pkg/lifecycle"
	"github.com/onex-platform/omniintelligence/pkg/version"
)

// heartbeatInterval is fixed; liveness cadence is not an operator knob.
const heartbeatInterval = 30 * time.Second

// heartbeatPayload is the plugin-heartbeat event payload.
type heartbeatPayload struct {
	PodID    string `json:"pod_id"`
	Service  string `json:"service"`
	Version  string `json:"version"`
	Phase    string `json:"phase"` // announced | alive
	SentAt   string `json:"sent_at"`
	Sequence int64  `json:"sequence"`
}

// heartbeat publishes periodic liveness events so the host's
// introspection layer can track the plugin without polling it.
type heartbeat struct {
	emitter lifecycle.Emitter
	store   *bus.Store
	topic   string
	podID   string

	cancel context.CancelFunc
	done   chan struct{}
	seq    int64
}

func newHeartbeat(emitter lifecycle.Emitter, store *bus.Store, envName, podID string) *heartbeat {
	return &heartbeat{
		emitter: emitter,
		store:   store,
		topic:   bus.EventTopic(envName, "plugin-heartbeat"),
		podID:   podID,
	}
}

// announce publishes the one-time wiring announcement. Unlike the
// periodic beats, which go through the best-effort async publisher, the
// announcement appends to the bus synchronously: wiring must not report
// success when introspection cannot see the plugin.
func (h *heartbeat) announce(ctx context.Context, correlationID string) error {
	env, err := h.envelope("announced", correlationID)
	if err != nil {
		return err
	}
	data, err := env.Marshal()
	if err != nil {
		return err
	}
	if _, err := h.store.Append(ctx, h.topic, h.podID, data); err != nil {
		return err
	}
	return nil
}

// Start begins the periodic beat. No-op if already started.
func (h *heartbeat) Start(ctx context.Context) {
	if h.done != nil {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	h.cancel = cancel
	h.done = make(chan struct{})
	go h.run(ctx)
}

// Stop halts the beat and waits for the loop to exit.
func (h *heartbeat) Stop() {
	if h.done == nil {
		return
	}
	h.cancel()
	<-h.done
	h.done = nil
}

func (h *heartbeat) run(ctx context.Context) {
	defer close(h.done)

	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := h.publish("alive", uuid.NewString()); err != nil {
				slog.Debug("Heartbeat publish failed", "error", err)
			}
		}
	}
}

func (h *heartbeat) publish(phase, correlationID string) error {
	env, err := h.envelope(phase, correlationID)
	if err != nil {
		return err
	}
	return h.emitter.Publish(h.topic, h.podID, env)
}

func (h *heartbeat) envelope(phase, correlationID string) (*bus.Envelope, error) {
	h.seq++
	return bus.NewEnvelope("plugin-heartbeat", correlationID, "", heartbeatPayload{
		PodID:    h.podID,
		Service:  bus.Producer,
		Version:  version.Full(),
		Phase:    phase,
		SentAt:   time.Now().UTC().Format(time.RFC3339),
		Sequence: h.seq,
	})
}
