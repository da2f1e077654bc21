package surface_test

import (
	"exposure/internal/surface"
	"exposure/pkg/domain"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var severities = []domain.Severity{domain.SeverityLow, domain.SeverityMedium, domain.SeverityHigh}

func vulnsOf(sevs ...domain.Severity) []domain.Vulnerability {
	out := make([]domain.Vulnerability, 0, len(sevs))
	for i, s := range sevs {
		out = append(out, domain.Vulnerability{Severity: s, Title: string(rune('a' + i))})
	}

	return out
}

func TestRiskScore(t *testing.T) {
	h, m, l := domain.SeverityHigh, domain.SeverityMedium, domain.SeverityLow

	require.Equal(t, 0, surface.RiskScore(nil))
	require.Equal(t, 10, surface.RiskScore(vulnsOf(h)))
	require.Equal(t, 7, surface.RiskScore(vulnsOf(m)))
	require.Equal(t, 3, surface.RiskScore(vulnsOf(l)))
	require.Equal(t, 8, surface.RiskScore(vulnsOf(h, m)))
	require.Equal(t, 6, surface.RiskScore(vulnsOf(h, l, l)))
}

func TestRiskScore_Properties(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 500 {
		sevs := make([]domain.Severity, rng.IntN(20))
		for i := range sevs {
			sevs[i] = severities[rng.IntN(len(severities))]
		}
		score := surface.RiskScore(vulnsOf(sevs...))
		require.GreaterOrEqual(t, score, 0)
		require.LessOrEqual(t, score, 10)

		if len(sevs) == 0 {
			continue
		}

		// raising one finding's severity never lowers the score
		i := rng.IntN(len(sevs))
		raised := append([]domain.Severity{}, sevs...)
		if raised[i] == domain.SeverityLow {
			raised[i] = domain.SeverityMedium
		} else {
			raised[i] = domain.SeverityHigh
		}
		require.GreaterOrEqual(t, surface.RiskScore(vulnsOf(raised...)), score)

		// more findings of the same severity never lower the score
		same := make([]domain.Severity, len(sevs)+3)
		for j := range same {
			same[j] = sevs[0]
		}
		require.GreaterOrEqual(t, surface.RiskScore(vulnsOf(same...)), surface.RiskScore(vulnsOf(sevs[0])))
	}
}

func TestSummarizeAndBreakdown(t *testing.T) {
	h, m, l := domain.SeverityHigh, domain.SeverityMedium, domain.SeverityLow
	vulns := vulnsOf(h, l, m, l, h, l)

	require.Equal(t, domain.SeverityBreakdown{High: 2, Medium: 1, Low: 3}, surface.Breakdown(vulns))
	require.Equal(t, domain.SecuritySummary{
		Total:             6,
		SeverityBreakdown: domain.SeverityBreakdown{High: 2, Medium: 1, Low: 3},
	}, surface.Summarize(vulns))
	require.Equal(t, domain.SecuritySummary{}, surface.Summarize(nil))
}

func TestTopIssues_Positional(t *testing.T) {
	h, l := domain.SeverityHigh, domain.SeverityLow
	vulns := vulnsOf(l, l, l, h)

	top := surface.TopIssues(vulns)
	require.Equal(t, vulns[:3], top)
	require.Empty(t, surface.TopIssues(nil))
	require.NotNil(t, surface.TopIssues(nil))
}

func TestReport(t *testing.T) {
	ts := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	vulns := vulnsOf(domain.SeverityLow, domain.SeverityHigh, domain.SeverityMedium, domain.SeverityLow)
	dr := &domain.DiscoveryReport{
		Domain: "example.com",
		Discovery: domain.DiscoveryResult{
			Subdomains: make([]domain.DiscoveredSubdomain, 2),
			Endpoints:  make([]domain.DiscoveredEndpoint, 5),
		},
		Security:  domain.SecurityFindings{Vulnerabilities: vulns, Summary: surface.Summarize(vulns)},
		Timestamp: ts,
	}

	r := surface.Report(dr)
	require.Equal(t, "example.com", r.Domain)
	require.Equal(t, 2, r.Subdomains)
	require.Equal(t, 5, r.Endpoints)
	require.Equal(t, 4, r.Vulnerabilities)
	require.Equal(t, surface.RiskScore(vulns), r.RiskScore)
	require.Equal(t, domain.SeverityBreakdown{High: 1, Medium: 1, Low: 2}, r.SeverityBreakdown)
	require.Equal(t, vulns[:3], r.TopIssues)
	require.Equal(t, ts, r.Timestamp)
}
