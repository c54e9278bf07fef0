package compute

import "strings"

// Intent is a coarse classification of what a hook event's change set is
// trying to do.
type Intent string

// Intent classes.
const (
	IntentBugfix   Intent = "bugfix"
	IntentFeature  Intent = "feature"
	IntentRefactor Intent = "refactor"
	IntentTest     Intent = "test"
	IntentDocs     Intent = "docs"
	IntentUnknown  Intent = "unknown"
)

// intentMarkers maps keyword markers to intents, checked in order.
// Earlier entries win so "fix the failing test" classifies as bugfix.
var intentMarkers = []struct {
	intent  Intent
	markers []string
}{
	{IntentBugfix, []string{"fix", "bug", "crash", "regression", "broken", "error"}},
	{IntentTest, []string{"test", "spec", "coverage", "assert"}},
	{IntentRefactor, []string{"refactor", "rename", "cleanup", "clean up", "simplify", "extract"}},
	{IntentDocs, []string{"doc", "readme", "comment", "typo"}},
	{IntentFeature, []string{"add", "implement", "support", "introduce", "feature"}},
}

// ClassifyIntent classifies free text and returns the intent with a
// confidence in [0, 1]. Confidence grows with the number of distinct
// marker hits for the winning class.
func ClassifyIntent(text string) (Intent, float64) {
	lower := strings.ToLower(text)

	for _, class := range intentMarkers {
		hits := 0
		for _, marker := range class.markers {
			if strings.Contains(lower, marker) {
				hits++
			}
		}
		if hits > 0 {
			confidence := 0.5 + 0.15*float64(hits)
			if confidence > 0.95 {
				confidence = 0.95
			}
			return class.intent, confidence
		}
	}
	return IntentUnknown, 0.0
}
