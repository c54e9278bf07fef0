package compute

import (
	"fmt"
	"sort"
	"strings"
)

// ExtractedPattern is one candidate pattern mined from a hook event.
type ExtractedPattern struct {
	Body       string
	VersionTag string
	Confidence float64
	Intent     Intent
}

// ExtractPatterns is the in-process fallback miner used when no external
// mining service is configured. It derives shallow candidate patterns
// from the event's tool trace: repeated (tool, action) sequences of
// length two or more become pattern bodies, with confidence scaled by
// repetition count.
func ExtractPatterns(description string, trace []TraceEntry) []ExtractedPattern {
	intent, _ := ClassifyIntent(description)

	// Count adjacent (tool, action) bigrams.
	counts := make(map[string]int)
	for i := 0; i+1 < len(trace); i++ {
		bigram := fmt.Sprintf("%s:%s -> %s:%s",
			trace[i].Tool, trace[i].Action, trace[i+1].Tool, trace[i+1].Action)
		counts[bigram]++
	}

	var bodies []string
	for bigram, n := range counts {
		if n >= 2 {
			bodies = append(bodies, bigram)
		}
	}
	sort.Strings(bodies)

	var patterns []ExtractedPattern
	for _, body := range bodies {
		n := counts[body]
		confidence := 0.4 + 0.1*float64(n)
		if confidence > 0.9 {
			confidence = 0.9
		}
		patterns = append(patterns, ExtractedPattern{
			Body:       body,
			VersionTag: "v1",
			Confidence: confidence,
			Intent:     intent,
		})
	}
	return patterns
}

// normalizeToolName lowercases and strips namespacing from a tool name
// so traces from different hook sources compare equal.
func normalizeToolName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if idx := strings.LastIndexByte(name, '/'); idx >= 0 {
		name = name[idx+1:]
	}
	return name
}
