// Package config loads and validates OmniIntelligence configuration.
package config

// Config is the umbrella configuration object returned by Initialize()
// and threaded through the application. Process-wide, loaded once at
// init; hot-reload is not supported.
type Config struct {
	configDir string

	Bus         *BusConfig
	Publisher   *PublisherConfig
	Feedback    *FeedbackConfig
	Lifecycle   *LifecycleConfig
	Idempotency *IdempotencyConfig
	Dispatch    *DispatchConfig
	Miner       *MinerConfig
	HTTP        *HTTPConfig
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}
