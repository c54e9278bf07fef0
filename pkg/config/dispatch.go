package config

import "time"

// DispatchConfig controls the dispatch engine's consumer workers.
type DispatchConfig struct {
	// MaxRetries is how many redeliveries a transiently-failing message
	// gets before it is routed to the DLQ.
	MaxRetries int `yaml:"max_retries"`

	// RetryBackoff is the pause before re-reading an uncommitted message
	// after a transient handler failure.
	RetryBackoff time.Duration `yaml:"retry_backoff"`

	// DrainTimeout is the maximum time to wait for in-flight handlers
	// during shutdown before they are abandoned.
	DrainTimeout time.Duration `yaml:"drain_timeout"`

	// FetchBatchSize is the maximum number of messages read per poll.
	FetchBatchSize int `yaml:"fetch_batch_size"`
}

// DefaultDispatchConfig returns the built-in dispatch defaults.
func DefaultDispatchConfig() *DispatchConfig {
	return &DispatchConfig{
		MaxRetries:     5,
		RetryBackoff:   2 * time.Second,
		DrainTimeout:   30 * time.Second,
		FetchBatchSize: 32,
	}
}

// MinerConfig points at the external pattern-mining gRPC service.
// An empty address selects the in-process compute fallback.
type MinerConfig struct {
	Addr string `yaml:"addr"`
}

// DefaultMinerConfig returns the built-in miner defaults.
func DefaultMinerConfig() *MinerConfig {
	return &MinerConfig{}
}

// HTTPConfig controls the read-only admin/health HTTP surface.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// DefaultHTTPConfig returns the built-in HTTP defaults.
func DefaultHTTPConfig() *HTTPConfig {
	return &HTTPConfig{Port: 8080}
}
