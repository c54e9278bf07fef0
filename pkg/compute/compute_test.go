package compute

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBody(t *testing.T) {
	t.Run("collapses internal whitespace", func(t *testing.T) {
		assert.Equal(t, "read file\nwrite file", NormalizeBody("read   file\nwrite\tfile"))
	})

	t.Run("drops blank lines and trims", func(t *testing.T) {
		assert.Equal(t, "a\nb", NormalizeBody("  a  \n\n\n   b\n"))
	})

	t.Run("formatting variants normalize the same", func(t *testing.T) {
		assert.Equal(t, NormalizeBody("x -> y"), NormalizeBody("  x   ->  y  \n"))
	})
}

func TestSignatureHash(t *testing.T) {
	t.Run("stable for equivalent bodies", func(t *testing.T) {
		a := SignatureHash("read file\nwrite file", "v1")
		b := SignatureHash("  read   file  \n\n write file ", "v1")
		assert.Equal(t, a, b)
	})

	t.Run("version tag changes the hash", func(t *testing.T) {
		assert.NotEqual(t, SignatureHash("body", "v1"), SignatureHash("body", "v2"))
	})

	t.Run("is hex encoded blake2b-256", func(t *testing.T) {
		h := SignatureHash("body", "v1")
		assert.Len(t, h, 64)
	})
}

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Intent
	}{
		{"bugfix", "fix the crash in the parser", IntentBugfix},
		{"bugfix wins over test", "fix the failing test", IntentBugfix},
		{"test", "add coverage for the parser", IntentTest},
		{"refactor", "rename the session manager", IntentRefactor},
		{"docs", "update the readme", IntentDocs},
		{"feature", "implement retry support", IntentFeature},
		{"unknown", "lorem ipsum", IntentUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent, confidence := ClassifyIntent(tt.text)
			assert.Equal(t, tt.want, intent)
			if tt.want == IntentUnknown {
				assert.Zero(t, confidence)
			} else {
				assert.Greater(t, confidence, 0.5)
				assert.LessOrEqual(t, confidence, 0.95)
			}
		})
	}

	t.Run("confidence grows with marker hits", func(t *testing.T) {
		_, one := ClassifyIntent("fix it")
		_, three := ClassifyIntent("fix the bug causing the crash")
		assert.Greater(t, three, one)
	})
}

func TestQualityScore(t *testing.T) {
	t.Run("no signals scores perfect", func(t *testing.T) {
		assert.Equal(t, 1.0, QualityScore(QualitySignals{}))
	})

	t.Run("test ratio drives the base", func(t *testing.T) {
		assert.InDelta(t, 0.75, QualityScore(QualitySignals{TestsPassed: 3, TestsFailed: 1}), 1e-9)
	})

	t.Run("lint errors penalize", func(t *testing.T) {
		assert.InDelta(t, 0.8, QualityScore(QualitySignals{LintErrors: 2}), 1e-9)
	})

	t.Run("wide changes discounted", func(t *testing.T) {
		assert.InDelta(t, 0.9, QualityScore(QualitySignals{FilesTouched: 21}), 1e-9)
	})

	t.Run("clamped at zero", func(t *testing.T) {
		assert.Equal(t, 0.0, QualityScore(QualitySignals{LintErrors: 50}))
	})
}

func TestParseToolTrace(t *testing.T) {
	t.Run("parses full entries", func(t *testing.T) {
		entries, err := ParseToolTrace("bash.run ./build.sh ok 2026-08-01T10:00:00Z\neditor.write main.go err")
		require.NoError(t, err)
		require.Len(t, entries, 2)

		assert.Equal(t, "bash", entries[0].Tool)
		assert.Equal(t, "run", entries[0].Action)
		assert.Equal(t, "./build.sh", entries[0].Target)
		assert.True(t, entries[0].Succeeded)
		assert.Equal(t, time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC), entries[0].At.UTC())

		assert.False(t, entries[1].Succeeded)
	})

	t.Run("skips comments blanks and malformed lines", func(t *testing.T) {
		entries, err := ParseToolTrace("# header\n\nnot-a-tool-line\nbash.run x ok")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "bash", entries[0].Tool)
	})

	t.Run("fully unparseable trace errors", func(t *testing.T) {
		_, err := ParseToolTrace("garbage\nmore garbage")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "garbage")
	})

	t.Run("normalizes namespaced tool names", func(t *testing.T) {
		entries, err := ParseToolTrace("Tools/Bash.Run x")
		require.NoError(t, err)
		assert.Equal(t, "bash", entries[0].Tool)
		assert.Equal(t, "run", entries[0].Action)
	})
}

func TestExtractPatterns(t *testing.T) {
	trace := func(lines string) []TraceEntry {
		entries, err := ParseToolTrace(lines)
		require.NoError(t, err)
		return entries
	}

	t.Run("repeated bigrams become patterns", func(t *testing.T) {
		entries := trace(strings.TrimSpace(`
bash.run a
editor.write b
bash.run c
editor.write d
bash.run e
editor.write f
`))
		patterns := ExtractPatterns("fix the build", entries)
		require.NotEmpty(t, patterns)

		var found bool
		for _, p := range patterns {
			if p.Body == "bash:run -> editor:write" {
				found = true
				assert.Equal(t, IntentBugfix, p.Intent)
				assert.GreaterOrEqual(t, p.Confidence, 0.6)
			}
		}
		assert.True(t, found, "expected the repeated bash->editor bigram")
	})

	t.Run("single occurrences are ignored", func(t *testing.T) {
		entries := trace("bash.run a\neditor.write b")
		assert.Empty(t, ExtractPatterns("", entries))
	})

	t.Run("empty trace yields nothing", func(t *testing.T) {
		assert.Empty(t, ExtractPatterns("fix", nil))
	})
}
