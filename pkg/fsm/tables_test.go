package fsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReduce(t *testing.T) {
	t.Run("ingestion walks its full path", func(t *testing.T) {
		state := InitialState
		for _, trigger := range []string{TriggerReceive, TriggerProcess, TriggerIndex} {
			next, ok := Reduce(KindIngestion, state, trigger)
			assert.True(t, ok, "trigger %s from %s", trigger, state)
			state = next
		}
		assert.Equal(t, StateIndexed, state)
	})

	t.Run("pattern learning walks its full path", func(t *testing.T) {
		state := InitialState
		for _, trigger := range []string{TriggerStart, TriggerMatch, TriggerValidate, TriggerTrace, TriggerComplete} {
			next, ok := Reduce(KindPatternLearning, state, trigger)
			assert.True(t, ok, "trigger %s from %s", trigger, state)
			state = next
		}
		assert.Equal(t, StateCompleted, state)
	})

	t.Run("quality assessment walks its full path", func(t *testing.T) {
		state := InitialState
		for _, trigger := range []string{TriggerIngest, TriggerAssess, TriggerScore, TriggerStore} {
			next, ok := Reduce(KindQualityAssessment, state, trigger)
			assert.True(t, ok, "trigger %s from %s", trigger, state)
			state = next
		}
		assert.Equal(t, StateStored, state)
	})

	t.Run("undefined pairs are rejected", func(t *testing.T) {
		_, ok := Reduce(KindIngestion, StateIdle, TriggerIndex)
		assert.False(t, ok)
		_, ok = Reduce(KindIngestion, StateReceived, TriggerReceive)
		assert.False(t, ok)
		_, ok = Reduce(KindPatternLearning, StateIdle, TriggerComplete)
		assert.False(t, ok)
	})

	t.Run("terminal states accept nothing", func(t *testing.T) {
		for _, kind := range []Kind{KindIngestion, KindPatternLearning, KindQualityAssessment} {
			terminal := TerminalState(kind)
			for _, trigger := range []string{
				TriggerReceive, TriggerProcess, TriggerIndex,
				TriggerStart, TriggerMatch, TriggerValidate, TriggerTrace, TriggerComplete,
				TriggerIngest, TriggerAssess, TriggerScore, TriggerStore,
			} {
				_, ok := Reduce(kind, terminal, trigger)
				assert.False(t, ok, "kind %s trigger %s", kind, trigger)
			}
		}
	})

	t.Run("triggers do not cross machines", func(t *testing.T) {
		_, ok := Reduce(KindIngestion, StateIdle, TriggerStart)
		assert.False(t, ok)
		_, ok = Reduce(KindQualityAssessment, StateIdle, TriggerReceive)
		assert.False(t, ok)
	})
}
