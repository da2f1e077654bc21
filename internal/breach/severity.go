package breach

import (
	"exposure/pkg/domain"
	"strings"
	"time"
)

var (
	highRiskData = []string{ //nolint: gochecknoglobals
		"passwords", "email addresses", "credit cards", "social security numbers", "phone numbers",
	}
	mediumRiskData = []string{"usernames", "names", "dates of birth", "postal codes"} //nolint: gochecknoglobals
)

// recentBreachWindow is twelve 30-day months.
const recentBreachWindow = 12 * 30 * 24 * time.Hour

// breachDateLayouts are the BreachDate formats accepted, most common first.
var breachDateLayouts = []string{time.DateOnly, time.RFC3339} //nolint: gochecknoglobals

// AssessSeverity grades a breach by the data it exposed and how recent it is,
// relative to now. Any high-risk data class makes it high. Otherwise any
// medium-risk class makes it medium, and a medium breach younger than twelve
// months is raised to high. An unparseable BreachDate is never recent.
func AssessSeverity(b domain.BreachRecord, now time.Time) domain.Severity {
	switch {
	case exposes(b.DataClasses, highRiskData):
		return domain.SeverityHigh
	case exposes(b.DataClasses, mediumRiskData):
		if isRecent(b.BreachDate, now) {
			return domain.SeverityHigh
		}

		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}

func exposes(dataClasses, risky []string) bool {
	for _, dc := range dataClasses {
		dc = strings.ToLower(dc)
		for _, r := range risky {
			if strings.Contains(dc, r) {
				return true
			}
		}
	}

	return false
}

func isRecent(breachDate string, now time.Time) bool {
	for _, layout := range breachDateLayouts {
		if t, err := time.Parse(layout, breachDate); err == nil {
			return now.Sub(t) < recentBreachWindow
		}
	}

	return false
}
