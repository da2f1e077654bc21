package surface

import (
	"exposure/pkg/domain"
	"fmt"
	"net/http"
	"strings"
)

// PerformSecurityChecks classifies every endpoint independently and returns
// the findings grouped by endpoint in input order. Within one endpoint the
// rules fire in a fixed order: insecure protocol, missing authentication,
// CORS wildcard, server header, x-powered-by header, administrative path.
func PerformSecurityChecks(endpoints []domain.DiscoveredEndpoint) []domain.Vulnerability {
	vulns := make([]domain.Vulnerability, 0)
	for _, ep := range endpoints {
		vulns = append(vulns, checkEndpoint(ep)...)
	}

	return vulns
}

func checkEndpoint(ep domain.DiscoveredEndpoint) []domain.Vulnerability {
	var out []domain.Vulnerability

	if strings.HasPrefix(ep.URL, "http://") {
		out = append(out, domain.Vulnerability{
			Type:           domain.VulnInsecureProtocol,
			Severity:       domain.SeverityHigh,
			Title:          "Insecure Protocol (HTTP)",
			Description:    fmt.Sprintf("The endpoint %s is using HTTP instead of HTTPS.", ep.URL),
			Recommendation: "Implement HTTPS/TLS encryption for all API endpoints.",
			Evidence:       domain.Evidence{Location: ep.URL},
		})
	}

	if ep.IsPublic && ep.StatusCode == http.StatusOK {
		out = append(out, domain.Vulnerability{
			Type:           domain.VulnNoAuthentication,
			Severity:       domain.SeverityMedium,
			Title:          "No Authentication Required",
			Description:    fmt.Sprintf("The endpoint %s is publicly accessible without authentication.", ep.URL),
			Recommendation: "Implement proper authentication mechanisms.",
			Evidence:       domain.Evidence{Location: ep.URL, Response: fmt.Sprintf("HTTP %d", ep.StatusCode)},
		})
	}

	if ep.Headers["access-control-allow-origin"] == "*" {
		out = append(out, domain.Vulnerability{
			Type:           domain.VulnCORSMisconfiguration,
			Severity:       domain.SeverityMedium,
			Title:          "CORS Wildcard Configuration",
			Description:    fmt.Sprintf("The endpoint %s allows CORS requests from any origin.", ep.URL),
			Recommendation: "Configure CORS to allow only specific trusted origins.",
			Evidence:       domain.Evidence{Location: ep.URL, Response: "Access-Control-Allow-Origin: *"},
		})
	}

	for _, h := range []string{"server", "x-powered-by"} {
		v := ep.Headers[h]
		if v == "" {
			continue
		}
		out = append(out, domain.Vulnerability{
			Type:           domain.VulnInformationDisclosure,
			Severity:       domain.SeverityLow,
			Title:          "Information Disclosure in Headers",
			Description:    fmt.Sprintf("The endpoint %s reveals server information in HTTP headers.", ep.URL),
			Recommendation: "Remove or obfuscate server information from HTTP response headers.",
			Evidence:       domain.Evidence{Location: ep.URL, Response: h + ": " + v},
		})
	}

	if (strings.Contains(ep.Path, "admin") || strings.Contains(ep.Path, "dashboard")) &&
		ep.StatusCode < http.StatusBadRequest {
		out = append(out, domain.Vulnerability{
			Type:           domain.VulnExposedSensitiveData,
			Severity:       domain.SeverityHigh,
			Title:          "Exposed Administrative Interface",
			Description:    fmt.Sprintf("The endpoint %s appears to be an administrative interface.", ep.URL),
			Recommendation: "Restrict access to administrative interfaces.",
			Evidence:       domain.Evidence{Location: ep.URL},
		})
	}

	return out
}
