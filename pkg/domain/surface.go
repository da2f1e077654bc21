package domain

import (
	"time"

	"github.com/google/uuid"
)

// Severity grades a finding or a breach match.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Protocol is the URL scheme a host answered on.
type Protocol string

const (
	ProtocolHTTP  Protocol = "http"
	ProtocolHTTPS Protocol = "https"
)

// VulnerabilityType classifies a heuristic finding.
type VulnerabilityType string

const (
	VulnInsecureProtocol      VulnerabilityType = "insecure_protocol"
	VulnNoAuthentication      VulnerabilityType = "no_authentication"
	VulnCORSMisconfiguration  VulnerabilityType = "cors_misconfiguration"
	VulnInformationDisclosure VulnerabilityType = "information_disclosure"
	VulnExposedSensitiveData  VulnerabilityType = "exposed_sensitive_data"
)

// HostInfo is the host-search metadata copied onto a subdomain by enrichment.
type HostInfo struct {
	Country    string `json:"country,omitempty"`
	City       string `json:"city,omitempty"`
	ISP        string `json:"isp,omitempty"`
	Org        string `json:"org,omitempty"`
	LastUpdate string `json:"lastUpdate,omitempty"`
}

// DiscoveredSubdomain is a reachable host found by subdomain discovery.
// Enrichment may fill IPAddress, Ports, Tags and Host in place.
type DiscoveredSubdomain struct {
	Subdomain  string    `json:"subdomain"`
	Protocol   Protocol  `json:"protocol"`
	StatusCode int       `json:"statusCode"`
	FirstSeen  time.Time `json:"firstSeen"`

	IPAddress string    `json:"ipAddress,omitempty"`
	Ports     []int     `json:"ports,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	Host      *HostInfo `json:"host,omitempty"`
}

// DiscoveredEndpoint is a path that answered with a status below 500 other
// than 404.
type DiscoveredEndpoint struct {
	URL         string `json:"url"`
	Method      string `json:"method"`
	Subdomain   string `json:"subdomain"`
	Path        string `json:"path"`
	StatusCode  int    `json:"statusCode"`
	ContentType string `json:"contentType"`
	// IsPublic is true when StatusCode < 400.
	IsPublic bool `json:"isPublic"`
	// RequiresAuth is true when StatusCode is 401 or 403.
	RequiresAuth bool `json:"requiresAuth"`
	// Headers holds the lower-cased response headers the heuristics inspect.
	Headers     map[string]string `json:"headers"`
	LastChecked time.Time         `json:"lastChecked"`
}

// Evidence points at where a finding was observed.
type Evidence struct {
	Location string `json:"location"`
	Response string `json:"response,omitempty"`
}

// Vulnerability is a heuristic finding on one endpoint.
type Vulnerability struct {
	Type           VulnerabilityType `json:"type"`
	Severity       Severity          `json:"severity"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Recommendation string            `json:"recommendation"`
	Evidence       Evidence          `json:"evidence"`
}

// ScanError is a non-fatal, per-item failure collected during a scan or a
// breach check.
type ScanError struct {
	Message string `json:"message"`
	Tool    string `json:"tool"`
}

// BasicToolStats describes the wordlist discovery stage.
type BasicToolStats struct {
	Used       bool  `json:"used"`
	DurationMs int64 `json:"durationMs"`
	Results    int   `json:"results"`
}

// HostSearchToolStats describes the enrichment stage.
type HostSearchToolStats struct {
	Used        bool `json:"used"`
	QueriesUsed int  `json:"queriesUsed"`
	Results     int  `json:"results"`
}

// ToolStats summarizes which discovery stages ran.
type ToolStats struct {
	Basic  BasicToolStats      `json:"basic"`
	Shodan HostSearchToolStats `json:"shodan"`
}

// DiscoveryResult is the output of the discovery stage for one domain.
// Subdomains and Endpoints are in wordlist order.
type DiscoveryResult struct {
	Subdomains []DiscoveredSubdomain `json:"subdomains"`
	Endpoints  []DiscoveredEndpoint  `json:"endpoints"`
	Tools      ToolStats             `json:"tools"`
	Errors     []ScanError           `json:"errors"`
}

// SeverityBreakdown counts findings per severity.
type SeverityBreakdown struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// SecuritySummary is the finding summary returned by Discover.
type SecuritySummary struct {
	Total int `json:"total"`
	SeverityBreakdown
}

// SurfaceReport is the result of a quick scan.
type SurfaceReport struct {
	Domain            string            `json:"domain"`
	Subdomains        int               `json:"subdomains"`
	Endpoints         int               `json:"endpoints"`
	Vulnerabilities   int               `json:"vulnerabilities"`
	RiskScore         int               `json:"riskScore"`
	SeverityBreakdown SeverityBreakdown `json:"severityBreakdown"`
	// TopIssues holds the first three findings in discovery order.
	TopIssues []Vulnerability `json:"topIssues"`
	Timestamp time.Time       `json:"timestamp"`
}

// SecurityFindings groups the findings of a detailed discovery.
type SecurityFindings struct {
	Vulnerabilities []Vulnerability `json:"vulnerabilities"`
	Summary         SecuritySummary `json:"summary"`
}

// DiscoveryReport is the result of a detailed discovery.
type DiscoveryReport struct {
	Domain    string           `json:"domain"`
	Discovery DiscoveryResult  `json:"discovery"`
	Security  SecurityFindings `json:"security"`
	Timestamp time.Time        `json:"timestamp"`
}

// ScanID identifies a stored surface scan snapshot.
type ScanID uuid.UUID

// String returns the canonical UUID representation.
func (id ScanID) String() string { return uuid.UUID(id).String() }

// SurfaceScan is a stored discovery snapshot used to detect endpoint drift
// between scheduled re-scans.
type SurfaceScan struct {
	ID        ScanID               `json:"id"`
	Domain    string               `json:"domain"`
	Endpoints []DiscoveredEndpoint `json:"endpoints"`
	Report    SurfaceReport        `json:"report"`
	CreatedAt time.Time            `json:"createdAt"`
}

// MonitoredDomain is a domain registered for scheduled re-scans.
type MonitoredDomain struct {
	Domain        string    `json:"domain"`
	LastScannedAt time.Time `json:"lastScannedAt,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
