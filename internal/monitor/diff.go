// Package monitor detects drift between two discovery snapshots of the same
// domain and renders it as an alert.
package monitor

import (
	"exposure/pkg/domain"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// StatusChange is an endpoint whose status code changed between snapshots.
type StatusChange struct {
	URL      string `json:"url"`
	Previous int    `json:"previous"`
	Current  int    `json:"current"`
}

// Drift lists how the endpoints of a domain changed.
type Drift struct {
	Added         []domain.DiscoveredEndpoint `json:"added"`
	Removed       []domain.DiscoveredEndpoint `json:"removed"`
	StatusChanged []StatusChange              `json:"statusChanged"`
}

// Empty reports whether nothing changed.
func (d Drift) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.StatusChanged) == 0
}

// Diff compares endpoints by URL. Added and StatusChanged follow the order of
// current; Removed follows the order of previous.
func Diff(previous, current []domain.DiscoveredEndpoint) Drift {
	byURL := func(e domain.DiscoveredEndpoint) string { return e.URL }
	prev := lo.KeyBy(previous, byURL)
	cur := lo.KeyBy(current, byURL)

	d := Drift{
		Added:         []domain.DiscoveredEndpoint{},
		Removed:       []domain.DiscoveredEndpoint{},
		StatusChanged: []StatusChange{},
	}
	for _, e := range current {
		old, ok := prev[e.URL]
		if !ok {
			d.Added = append(d.Added, e)

			continue
		}
		if old.StatusCode != e.StatusCode {
			d.StatusChanged = append(d.StatusChanged, StatusChange{URL: e.URL, Previous: old.StatusCode, Current: e.StatusCode})
		}
	}
	for _, e := range previous {
		if _, ok := cur[e.URL]; !ok {
			d.Removed = append(d.Removed, e)
		}
	}

	return d
}

// maxListed bounds how many URLs per section an alert spells out.
const maxListed = 10

// Summary renders the drift and the high-severity findings of a re-scan as
// Markdown suitable for a chat alert.
func Summary(domainName string, d Drift, report *domain.SurfaceReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*Attack surface change on %s*\n", domainName)
	if report != nil {
		fmt.Fprintf(&b, "Risk score %d/10, %d endpoints, %d high-severity findings\n",
			report.RiskScore, report.Endpoints, report.SeverityBreakdown.High)
	}

	section := func(title string, lines []string) {
		if len(lines) == 0 {
			return
		}
		fmt.Fprintf(&b, "\n*%s (%d)*\n", title, len(lines))
		for _, l := range lines[:min(maxListed, len(lines))] {
			fmt.Fprintf(&b, "• %s\n", l)
		}
		if len(lines) > maxListed {
			fmt.Fprintf(&b, "• … and %d more\n", len(lines)-maxListed)
		}
	}
	urlOf := func(e domain.DiscoveredEndpoint, _ int) string { return fmt.Sprintf("%s (%d)", e.URL, e.StatusCode) }

	section("New endpoints", lo.Map(d.Added, urlOf))
	section("Removed endpoints", lo.Map(d.Removed, urlOf))
	section("Status changes", lo.Map(d.StatusChanged, func(c StatusChange, _ int) string {
		return fmt.Sprintf("%s %d → %d", c.URL, c.Previous, c.Current)
	}))

	return b.String()
}
