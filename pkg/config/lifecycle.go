package config

// LifecycleConfig controls promotion/demotion gating.
type LifecycleConfig struct {
	// PromotionThreshold is the minimum effectiveness for
	// PROVISIONAL → VALIDATED promotion.
	PromotionThreshold float64 `yaml:"promotion_threshold"`

	// DemotionThreshold is the effectiveness below which a window
	// evaluation counts as a negative signal.
	DemotionThreshold float64 `yaml:"demotion_threshold"`

	// MinDemotionSamples is the number of consecutive low window
	// evaluations required before VALIDATED → DEPRECATED demotion.
	MinDemotionSamples int `yaml:"min_demotion_samples"`

	// Evidence tier thresholds over window sample count.
	// sample < WeakSamples       ⇒ insufficient
	// sample < ModerateSamples   ⇒ weak
	// sample < StrongSamples     ⇒ moderate
	// otherwise                  ⇒ strong
	WeakSamples     int `yaml:"weak_samples"`
	ModerateSamples int `yaml:"moderate_samples"`
	StrongSamples   int `yaml:"strong_samples"`
}

// DefaultLifecycleConfig returns the built-in lifecycle defaults.
func DefaultLifecycleConfig() *LifecycleConfig {
	return &LifecycleConfig{
		PromotionThreshold: 0.75,
		DemotionThreshold:  0.40,
		MinDemotionSamples: 5,
		WeakSamples:        10,
		ModerateSamples:    30,
		StrongSamples:      100,
	}
}
