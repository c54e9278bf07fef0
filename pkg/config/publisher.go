package config

import "time"

// PublisherConfig controls the non-blocking event publisher.
type PublisherConfig struct {
	// BufferHighWaterMark is the outbound queue capacity. Publishes
	// arriving while the queue is full are routed to the DLQ topic
	// instead of blocking the caller.
	BufferHighWaterMark int `yaml:"buffer_high_water_mark"`

	// RetryBase is the initial backoff after a failed bus write.
	RetryBase time.Duration `yaml:"retry_base"`

	// RetryCap bounds the exponential backoff.
	RetryCap time.Duration `yaml:"retry_cap"`

	// MaxAttempts bounds retries per message before it is routed to the
	// DLQ. Keeps a poison message from stalling the drain worker forever.
	MaxAttempts int `yaml:"max_attempts"`
}

// DefaultPublisherConfig returns the built-in publisher defaults.
func DefaultPublisherConfig() *PublisherConfig {
	return &PublisherConfig{
		BufferHighWaterMark: 10000,
		RetryBase:           100 * time.Millisecond,
		RetryCap:            30 * time.Second,
		MaxAttempts:         10,
	}
}
