package bus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBackoffFor(t *testing.T) {
	base := 100 * time.Millisecond
	limit := 30 * time.Second

	t.Run("bounded by the exponential ceiling", func(t *testing.T) {
		for attempt := 1; attempt <= 5; attempt++ {
			ceiling := base << (attempt - 1)
			for i := 0; i < 50; i++ {
				d := backoffFor(attempt, base, limit)
				assert.Greater(t, d, time.Duration(0))
				assert.LessOrEqual(t, d, ceiling)
			}
		}
	})

	t.Run("never exceeds the cap", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			d := backoffFor(20, base, limit)
			assert.LessOrEqual(t, d, limit)
		}
	})
}
