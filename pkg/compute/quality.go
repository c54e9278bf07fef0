package compute

// QualitySignals are the raw measurements a hook event carries about a
// change set.
type QualitySignals struct {
	LintErrors     int
	LintWarnings   int
	TestsPassed    int
	TestsFailed    int
	FilesTouched   int
	LinesChanged   int
	ReviewConcerns int
}

// QualityScore folds raw signals into a bounded [0, 1] score. It starts
// from the test pass ratio and subtracts lint and review penalties; very
// large change sets are discounted since their signal is diluted.
func QualityScore(s QualitySignals) float64 {
	score := 1.0

	if total := s.TestsPassed + s.TestsFailed; total > 0 {
		score = float64(s.TestsPassed) / float64(total)
	}

	score -= 0.10 * float64(s.LintErrors)
	score -= 0.02 * float64(s.LintWarnings)
	score -= 0.05 * float64(s.ReviewConcerns)

	// Changes touching many files dilute attribution.
	if s.FilesTouched > 20 {
		score -= 0.1
	}

	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
