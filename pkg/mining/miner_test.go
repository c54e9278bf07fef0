package mining

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onex-platform/omniintelligence/pkg/compute"
)

func TestLocalMiner(t *testing.T) {
	m := NewLocalMiner()
	t.Cleanup(func() { require.NoError(t, m.Close()) })

	t.Run("repeated bigrams become patterns", func(t *testing.T) {
		trace := []compute.TraceEntry{
			{Tool: "bash", Action: "run"},
			{Tool: "editor", Action: "write"},
			{Tool: "bash", Action: "run"},
			{Tool: "editor", Action: "write"},
			{Tool: "bash", Action: "run"},
			{Tool: "editor", Action: "write"},
		}

		patterns, err := m.ExtractPatterns(context.Background(), &Input{
			SessionID:   "sess-1",
			Description: "fix the failing import cycle",
			Trace:       trace,
		})
		require.NoError(t, err)
		require.NotEmpty(t, patterns)
		assert.Contains(t, patterns[0].Body, "bash:run")
		assert.Greater(t, patterns[0].Confidence, 0.0)
	})

	t.Run("empty trace yields no patterns", func(t *testing.T) {
		patterns, err := m.ExtractPatterns(context.Background(), &Input{
			SessionID:   "sess-2",
			Description: "nothing happened",
		})
		require.NoError(t, err)
		assert.Empty(t, patterns)
	})
}
