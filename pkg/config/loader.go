package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// yamlConfig represents the complete omniintelligence.yaml file structure.
// Every section is optional; unset sections fall back to built-in defaults.
type yamlConfig struct {
	Bus         *BusConfig         `yaml:"bus"`
	Publisher   *PublisherConfig   `yaml:"publisher"`
	Feedback    *FeedbackConfig    `yaml:"feedback"`
	Lifecycle   *LifecycleConfig   `yaml:"lifecycle"`
	Idempotency *IdempotencyConfig `yaml:"idempotency"`
	Dispatch    *DispatchConfig    `yaml:"dispatch"`
	Miner       *MinerConfig       `yaml:"miner"`
	HTTP        *HTTPConfig        `yaml:"http"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load omniintelligence.yaml from configDir (missing file ⇒ defaults)
//  2. Expand environment variables
//  3. Merge user YAML over built-in defaults
//  4. Validate the merged configuration
func Initialize(_ context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized",
		"consumer_group", cfg.Bus.ConsumerGroup,
		"partitions", cfg.Bus.Partitions,
		"topic_env_prefix", cfg.Bus.TopicEnvPrefix)

	return cfg, nil
}

func load(configDir string) (*Config, error) {
	var fileCfg yamlConfig
	if err := loadYAML(configDir, "omniintelligence.yaml", &fileCfg); err != nil {
		return nil, NewLoadError("omniintelligence.yaml", err)
	}

	cfg := &Config{
		configDir:   configDir,
		Bus:         DefaultBusConfig(),
		Publisher:   DefaultPublisherConfig(),
		Feedback:    DefaultFeedbackConfig(),
		Lifecycle:   DefaultLifecycleConfig(),
		Idempotency: DefaultIdempotencyConfig(),
		Dispatch:    DefaultDispatchConfig(),
		Miner:       DefaultMinerConfig(),
		HTTP:        DefaultHTTPConfig(),
	}

	// Merge user-provided sections into the defaults; non-zero user
	// values override, unset values keep their defaults.
	sections := []struct {
		dst any
		src any
	}{
		{cfg.Bus, fileCfg.Bus},
		{cfg.Publisher, fileCfg.Publisher},
		{cfg.Feedback, fileCfg.Feedback},
		{cfg.Lifecycle, fileCfg.Lifecycle},
		{cfg.Idempotency, fileCfg.Idempotency},
		{cfg.Dispatch, fileCfg.Dispatch},
		{cfg.Miner, fileCfg.Miner},
		{cfg.HTTP, fileCfg.HTTP},
	}
	for _, s := range sections {
		if s.src == nil || isNilPointer(s.src) {
			continue
		}
		if err := mergo.Merge(s.dst, s.src, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge config section: %w", err)
		}
	}

	return cfg, nil
}

// isNilPointer reports whether the any-wrapped section pointer is nil.
// The sections table stores typed nil pointers, which compare unequal
// to untyped nil.
func isNilPointer(v any) bool {
	switch p := v.(type) {
	case *BusConfig:
		return p == nil
	case *PublisherConfig:
		return p == nil
	case *FeedbackConfig:
		return p == nil
	case *LifecycleConfig:
		return p == nil
	case *IdempotencyConfig:
		return p == nil
	case *DispatchConfig:
		return p == nil
	case *MinerConfig:
		return p == nil
	case *HTTPConfig:
		return p == nil
	default:
		return v == nil
	}
}

func loadYAML(configDir, filename string, target any) error {
	path := filepath.Join(configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Missing config file is fine — built-in defaults apply.
			slog.Warn("Configuration file not found, using built-in defaults", "path", path)
			return nil
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax.
	// ExpandEnv passes through original data on template errors, letting
	// the YAML parser produce a clearer failure.
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

// validate performs range checks on the merged configuration.
func validate(cfg *Config) error {
	if cfg.Bus.Partitions < 1 {
		return NewValidationError("bus", "partitions", fmt.Errorf("%w: must be >= 1", ErrInvalidValue))
	}
	if cfg.Bus.ConsumerGroup == "" {
		return NewValidationError("bus", "consumer_group", ErrMissingRequiredField)
	}
	if cfg.Publisher.BufferHighWaterMark < 1 {
		return NewValidationError("publisher", "buffer_high_water_mark", fmt.Errorf("%w: must be >= 1", ErrInvalidValue))
	}
	if cfg.Feedback.WindowSize < 1 {
		return NewValidationError("feedback", "window_size", fmt.Errorf("%w: must be >= 1", ErrInvalidValue))
	}
	if cfg.Feedback.ViolationDecrement < 0 || cfg.Feedback.ViolationDecrement > 1 {
		return NewValidationError("feedback", "violation_decrement", fmt.Errorf("%w: must be in [0,1]", ErrInvalidValue))
	}
	if cfg.Lifecycle.PromotionThreshold < 0 || cfg.Lifecycle.PromotionThreshold > 1 {
		return NewValidationError("lifecycle", "promotion_threshold", fmt.Errorf("%w: must be in [0,1]", ErrInvalidValue))
	}
	if cfg.Lifecycle.DemotionThreshold < 0 || cfg.Lifecycle.DemotionThreshold > cfg.Lifecycle.PromotionThreshold {
		return NewValidationError("lifecycle", "demotion_threshold",
			fmt.Errorf("%w: must be in [0, promotion_threshold]", ErrInvalidValue))
	}
	if cfg.Lifecycle.WeakSamples > cfg.Lifecycle.ModerateSamples || cfg.Lifecycle.ModerateSamples > cfg.Lifecycle.StrongSamples {
		return NewValidationError("lifecycle", "evidence_tiers",
			fmt.Errorf("%w: tier thresholds must be non-decreasing", ErrInvalidValue))
	}
	if cfg.Idempotency.RetentionDays < 1 {
		return NewValidationError("idempotency", "retention_days", fmt.Errorf("%w: must be >= 1", ErrInvalidValue))
	}
	return nil
}
