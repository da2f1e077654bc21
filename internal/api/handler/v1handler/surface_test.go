package v1handler_test

import (
	"exposure/pkg/domain"
	"exposure/pkg/serrors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestQuickScan(t *testing.T) {
	f := newFixture(t, nil)
	f.scanner.EXPECT().QuickScan(gomock.Any(), "https://example.com").Return(&domain.SurfaceReport{
		Domain:            "example.com",
		Endpoints:         2,
		Vulnerabilities:   3,
		RiskScore:         8,
		SeverityBreakdown: domain.SeverityBreakdown{High: 1, Medium: 2},
		TopIssues:         []domain.Vulnerability{},
		Timestamp:         time.Now(),
	}, nil)

	res, body := f.do(t, http.MethodPost, "/v1/surface/scan", `{"domain":"https://example.com"}`)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "application/json", res.Header.Get("Content-Type"))
	require.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	require.Equal(t, "example.com", data["domain"])
	require.InDelta(t, 8, data["riskScore"], 0)
}

func TestQuickScan_InvalidDomain(t *testing.T) {
	f := newFixture(t, nil)
	f.scanner.EXPECT().QuickScan(gomock.Any(), "localhost").
		Return(nil, serrors.With(serrors.ErrBadRequest, "invalid domain"))

	res, body := f.do(t, http.MethodPost, "/v1/surface/scan", `{"domain":"localhost"}`)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Equal(t, false, body["success"])
	require.Equal(t, "invalid domain", body["message"])
	require.Equal(t, serrors.ErrBadRequest.Error(), body["error"])
}

func TestQuickScan_BadBodies(t *testing.T) {
	for name, body := range map[string]string{
		"missing domain": `{}`,
		"blank domain":   `{"domain":"  "}`,
		"unknown field":  `{"domain":"example.com","x":1}`,
		"not json":       `domain=example.com`,
		"two objects":    `{"domain":"a.com"}{"domain":"b.com"}`,
	} {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t, nil)
			res, payload := f.do(t, http.MethodPost, "/v1/surface/scan", body)
			require.Equal(t, http.StatusBadRequest, res.StatusCode)
			require.Equal(t, false, payload["success"])
		})
	}
}

func TestDiscover(t *testing.T) {
	f := newFixture(t, nil)
	f.scanner.EXPECT().Discover(gomock.Any(), "example.com").Return(&domain.DiscoveryReport{
		Domain: "example.com",
		Security: domain.SecurityFindings{
			Vulnerabilities: []domain.Vulnerability{},
			Summary:         domain.SecuritySummary{Total: 0},
		},
	}, nil)

	res, body := f.do(t, http.MethodPost, "/v1/surface/discover", `{"domain":"example.com"}`)
	require.Equal(t, http.StatusOK, res.StatusCode)
	data := body["data"].(map[string]any)
	require.Contains(t, data, "discovery")
	require.Contains(t, data, "security")
}

func TestAddMonitoredDomain(t *testing.T) {
	f := newFixture(t, nil)
	f.monitor.EXPECT().AddDomain(gomock.Any(), "example.com").
		Return(&domain.MonitoredDomain{Domain: "example.com", CreatedAt: time.Now()}, nil)

	res, body := f.do(t, http.MethodPost, "/v1/monitored-domains", `{"domain":"example.com"}`)
	require.Equal(t, http.StatusCreated, res.StatusCode)
	require.Equal(t, "example.com", body["data"].(map[string]any)["domain"])
}
