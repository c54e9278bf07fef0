package config

import "time"

// IdempotencyConfig controls ledger retention. The consumer group's
// offset retention must exceed RetentionDays, otherwise evicted ledger
// entries could see re-delivered messages as new.
type IdempotencyConfig struct {
	// RetentionDays is how long processed-event records are kept.
	RetentionDays int `yaml:"retention_days"`

	// SweepInterval is how often the eviction sweep runs.
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// DefaultIdempotencyConfig returns the built-in idempotency defaults.
func DefaultIdempotencyConfig() *IdempotencyConfig {
	return &IdempotencyConfig{
		RetentionDays: 30,
		SweepInterval: 12 * time.Hour,
	}
}
