package breach

import (
	"exposure/pkg/domain"
	"fmt"

	"github.com/samber/lo"
)

// Recommendations suggests follow-up actions for a set of matches. No matches
// yield a single success entry. Otherwise there is a critical entry when any
// match is high and a warning entry when any match is medium.
func Recommendations(matches []domain.BreachMatch) []domain.Recommendation {
	if len(matches) == 0 {
		return []domain.Recommendation{{
			Type:    domain.RecommendationSuccess,
			Title:   "Great Security Posture!",
			Message: "No breaches found for your email address. Keep up the good security practices!",
			Actions: []string{"Enable 2FA where possible", "Use unique passwords", "Regular security checkups"},
		}}
	}

	counts := lo.CountValuesBy(matches, func(m domain.BreachMatch) domain.Severity { return m.Severity })
	out := make([]domain.Recommendation, 0, 2)
	if n := counts[domain.SeverityHigh]; n > 0 {
		out = append(out, domain.Recommendation{
			Type:    domain.RecommendationCritical,
			Title:   "Immediate Action Required",
			Message: fmt.Sprintf("%d high-risk breaches found. Change passwords immediately.", n),
			Actions: []string{"Change passwords now", "Enable 2FA", "Monitor accounts closely"},
		})
	}
	if n := counts[domain.SeverityMedium]; n > 0 {
		out = append(out, domain.Recommendation{
			Type:    domain.RecommendationWarning,
			Title:   "Security Review Needed",
			Message: fmt.Sprintf("%d medium-risk breaches found. Review your account security.", n),
			Actions: []string{"Update passwords", "Review account permissions", "Enable notifications"},
		})
	}

	return out
}
