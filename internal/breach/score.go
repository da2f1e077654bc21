package breach

import "exposure/pkg/domain"

const (
	perMatchPenalty = 15
	maxScore        = 100
)

// severityPenalty is deducted once per match on top of perMatchPenalty.
var severityPenalty = map[domain.Severity]int{ //nolint: gochecknoglobals
	domain.SeverityHigh:   20,
	domain.SeverityMedium: 10,
	domain.SeverityLow:    5,
}

// SecurityScore folds matches into a 0..100 score. A user without services
// scores 100 regardless of matches.
func SecurityScore(matches []domain.BreachMatch, totalServices int) int {
	if totalServices == 0 {
		return maxScore
	}

	base := max(0, maxScore-perMatchPenalty*len(matches))
	deduction := 0
	for _, m := range matches {
		p, ok := severityPenalty[m.Severity]
		if !ok {
			p = severityPenalty[domain.SeverityLow]
		}
		deduction += p
	}

	return min(maxScore, max(0, base-deduction))
}
