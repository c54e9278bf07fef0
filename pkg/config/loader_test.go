package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "omniintelligence.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return dir
}

func TestInitializeDefaults(t *testing.T) {
	// No config file at all: every section falls back to built-ins.
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Bus.TopicEnvPrefix)
	assert.Equal(t, "omniintelligence", cfg.Bus.ConsumerGroup)
	assert.Equal(t, 4, cfg.Bus.Partitions)
	assert.Equal(t, 10000, cfg.Publisher.BufferHighWaterMark)
	assert.Equal(t, 100, cfg.Feedback.WindowSize)
	assert.Equal(t, 0.75, cfg.Lifecycle.PromotionThreshold)
	assert.Equal(t, 30, cfg.Idempotency.RetentionDays)
	assert.Equal(t, 5, cfg.Dispatch.MaxRetries)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Empty(t, cfg.Miner.Addr)
}

func TestInitializeMergesUserYAML(t *testing.T) {
	dir := writeConfig(t, `
bus:
  topic_env_prefix: prod
  partitions: 8
lifecycle:
  promotion_threshold: 0.8
http:
  port: 9090
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	t.Run("user values override defaults", func(t *testing.T) {
		assert.Equal(t, "prod", cfg.Bus.TopicEnvPrefix)
		assert.Equal(t, 8, cfg.Bus.Partitions)
		assert.Equal(t, 0.8, cfg.Lifecycle.PromotionThreshold)
		assert.Equal(t, 9090, cfg.HTTP.Port)
	})

	t.Run("unset fields keep defaults", func(t *testing.T) {
		assert.Equal(t, "omniintelligence", cfg.Bus.ConsumerGroup)
		assert.Equal(t, 1*time.Second, cfg.Bus.PollInterval)
		assert.Equal(t, 0.40, cfg.Lifecycle.DemotionThreshold)
	})

	t.Run("untouched sections keep defaults", func(t *testing.T) {
		assert.Equal(t, 10000, cfg.Publisher.BufferHighWaterMark)
		assert.Equal(t, 2*time.Second, cfg.Dispatch.RetryBackoff)
	})
}

func TestInitializeEnvExpansion(t *testing.T) {
	t.Setenv("BUS_ENV", "staging")
	dir := writeConfig(t, `
bus:
  topic_env_prefix: "{{.BUS_ENV}}"
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "staging", cfg.Bus.TopicEnvPrefix)
}

func TestInitializeValidation(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		section string
		field   string
	}{
		{
			name:    "partitions below one",
			yaml:    "bus:\n  partitions: -1\n",
			section: "bus",
			field:   "partitions",
		},
		{
			name:    "demotion above promotion",
			yaml:    "lifecycle:\n  demotion_threshold: 0.9\n",
			section: "lifecycle",
			field:   "demotion_threshold",
		},
		{
			name:    "promotion out of range",
			yaml:    "lifecycle:\n  promotion_threshold: 1.5\n",
			section: "lifecycle",
			field:   "promotion_threshold",
		},
		{
			name:    "tier thresholds out of order",
			yaml:    "lifecycle:\n  weak_samples: 50\n  moderate_samples: 20\n",
			section: "lifecycle",
			field:   "evidence_tiers",
		},
		{
			name:    "violation decrement out of range",
			yaml:    "feedback:\n  violation_decrement: 2\n",
			section: "feedback",
			field:   "violation_decrement",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := writeConfig(t, tc.yaml)
			_, err := Initialize(context.Background(), dir)
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.section, verr.Section)
			assert.Equal(t, tc.field, verr.Field)
			assert.ErrorIs(t, err, ErrInvalidValue)
		})
	}
}

func TestInitializeInvalidYAML(t *testing.T) {
	dir := writeConfig(t, "bus: [not: a: mapping\n")
	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)

	var lerr *LoadError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, "omniintelligence.yaml", lerr.File)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestExpandEnv(t *testing.T) {
	t.Run("substitutes known variables", func(t *testing.T) {
		t.Setenv("OMNI_TEST_VALUE", "secret")
		out := ExpandEnv([]byte("password: {{.OMNI_TEST_VALUE}}"))
		assert.Equal(t, "password: secret", string(out))
	})

	t.Run("missing variables become empty", func(t *testing.T) {
		out := ExpandEnv([]byte("password: {{.OMNI_DOES_NOT_EXIST}}"))
		assert.Equal(t, "password: ", string(out))
	})

	t.Run("malformed templates pass through untouched", func(t *testing.T) {
		in := []byte("pattern: {{.unclosed")
		assert.Equal(t, in, ExpandEnv(in))
	})

	t.Run("literal dollar signs are untouched", func(t *testing.T) {
		in := []byte(`pattern: "^\\$[0-9]+$"`)
		assert.Equal(t, in, ExpandEnv(in))
	})
}
