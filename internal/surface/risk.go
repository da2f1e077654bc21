package surface

import (
	"exposure/pkg/domain"
	"math"

	"github.com/samber/lo"
)

// severityWeights feed RiskScore.
var severityWeights = map[domain.Severity]int{ //nolint: gochecknoglobals
	domain.SeverityHigh:   3,
	domain.SeverityMedium: 2,
	domain.SeverityLow:    1,
}

// topIssueCount is how many findings a SurfaceReport carries verbatim.
const topIssueCount = 3

// RiskScore averages the severity weights of vulns and rescales the result to
// the 0..10 band. No findings score 0.
func RiskScore(vulns []domain.Vulnerability) int {
	total := lo.SumBy(vulns, func(v domain.Vulnerability) int { return severityWeights[v.Severity] })
	avg := float64(total) / float64(max(1, len(vulns)))

	return min(10, int(math.Round(avg*3.33)))
}

// Breakdown counts vulns per severity.
func Breakdown(vulns []domain.Vulnerability) domain.SeverityBreakdown {
	counts := lo.CountValuesBy(vulns, func(v domain.Vulnerability) domain.Severity { return v.Severity })

	return domain.SeverityBreakdown{
		High:   counts[domain.SeverityHigh],
		Medium: counts[domain.SeverityMedium],
		Low:    counts[domain.SeverityLow],
	}
}

// Summarize is the Discover flavour of Breakdown.
func Summarize(vulns []domain.Vulnerability) domain.SecuritySummary {
	return domain.SecuritySummary{Total: len(vulns), SeverityBreakdown: Breakdown(vulns)}
}

// TopIssues returns the first three findings by position, not by severity.
func TopIssues(vulns []domain.Vulnerability) []domain.Vulnerability {
	return append([]domain.Vulnerability{}, vulns[:min(topIssueCount, len(vulns))]...)
}

// Report folds a detailed discovery into the quick scan summary.
func Report(dr *domain.DiscoveryReport) *domain.SurfaceReport {
	vulns := dr.Security.Vulnerabilities

	return &domain.SurfaceReport{
		Domain:            dr.Domain,
		Subdomains:        len(dr.Discovery.Subdomains),
		Endpoints:         len(dr.Discovery.Endpoints),
		Vulnerabilities:   len(vulns),
		RiskScore:         RiskScore(vulns),
		SeverityBreakdown: Breakdown(vulns),
		TopIssues:         TopIssues(vulns),
		Timestamp:         dr.Timestamp,
	}
}
