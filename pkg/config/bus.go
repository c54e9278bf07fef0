package config

import "time"

// BusConfig contains message bus configuration: topic addressing,
// consumer identity, and partitioning.
type BusConfig struct {
	// TopicEnvPrefix is the {env} segment of the topic grammar
	// {env}.onex.{kind}.{producer}.{event-name}.v{version}.
	TopicEnvPrefix string `yaml:"topic_env_prefix"`

	// ConsumerGroup identifies this plugin's offset-tracking group.
	ConsumerGroup string `yaml:"consumer_group"`

	// Partitions is the number of partitions per topic. Partition
	// assignment is hash(key) % Partitions; changing this reshuffles
	// keys and must only be done with drained topics.
	Partitions int `yaml:"partitions"`

	// PollInterval is the base interval for checking new messages when
	// no NOTIFY wakeup arrives.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`
}

// DefaultBusConfig returns the built-in bus defaults.
func DefaultBusConfig() *BusConfig {
	return &BusConfig{
		TopicEnvPrefix:     "dev",
		ConsumerGroup:      "omniintelligence",
		Partitions:         4,
		PollInterval:       1 * time.Second,
		PollIntervalJitter: 250 * time.Millisecond,
	}
}
