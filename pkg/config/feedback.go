package config

import "time"

// FeedbackConfig controls the rolling-window feedback aggregator.
type FeedbackConfig struct {
	// WindowSize is the maximum number of session outcomes kept in a
	// pattern's rolling window.
	WindowSize int `yaml:"window_size"`

	// WindowMaxAge time-bounds the window: outcomes older than this are
	// evicted even if the window is not full.
	WindowMaxAge time.Duration `yaml:"window_max_age"`

	// ViolationDecrement is the quality_score penalty per confirmed
	// violation (advised + corrected + failure).
	ViolationDecrement float64 `yaml:"violation_decrement"`
}

// DefaultFeedbackConfig returns the built-in feedback defaults.
// With the default decrement, a pattern takes 50 confirmed violations
// to fall from 1.0 to 0.5.
func DefaultFeedbackConfig() *FeedbackConfig {
	return &FeedbackConfig{
		WindowSize:         100,
		WindowMaxAge:       30 * 24 * time.Hour,
		ViolationDecrement: 0.01,
	}
}
