package surface_test

import (
	"context"
	"errors"
	"exposure/internal/surface"
	"exposure/pkg/domain"
	"exposure/pkg/hostsearch"
	mockhostsearch "exposure/pkg/hostsearch/mock"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEnricher_DisabledIsNoop(t *testing.T) {
	subs := []domain.DiscoveredSubdomain{{Subdomain: "api.example.com"}}

	var nilEnricher *surface.Enricher
	stats, errs := nilEnricher.Enrich(context.Background(), subs)
	require.False(t, stats.Used)
	require.Empty(t, errs)

	stats, errs = surface.NewEnricher(nil, time.Second).Enrich(context.Background(), subs)
	require.False(t, stats.Used)
	require.Empty(t, errs)
	require.Empty(t, subs[0].IPAddress)
}

func TestEnricher_Enrich(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mockhostsearch.NewMockClient(ctrl)
	gomock.InOrder(
		client.EXPECT().SearchHostname(gomock.Any(), "api.example.com").Return([]hostsearch.Host{
			{IP: "93.184.216.34", Ports: []int{80, 443}, Tags: []string{"cdn"}, Country: "US", City: "Norwell", Org: "Edgecast"},
			{IP: "10.0.0.1"},
		}, nil),
		client.EXPECT().SearchHostname(gomock.Any(), "www.example.com").Return(nil, errors.New("boom")),
		client.EXPECT().SearchHostname(gomock.Any(), "mail.example.com").Return([]hostsearch.Host{}, nil),
	)

	subs := []domain.DiscoveredSubdomain{
		{Subdomain: "api.example.com"},
		{Subdomain: "www.example.com"},
		{Subdomain: "mail.example.com"},
	}
	stats, errs := surface.NewEnricher(client, time.Millisecond).Enrich(context.Background(), subs)

	require.Equal(t, domain.HostSearchToolStats{Used: true, QueriesUsed: 3, Results: 1}, stats)
	require.Len(t, errs, 1)
	require.Equal(t, "shodan", errs[0].Tool)
	require.Contains(t, errs[0].Message, "www.example.com")

	require.Equal(t, "93.184.216.34", subs[0].IPAddress)
	require.Equal(t, []int{80, 443}, subs[0].Ports)
	require.Equal(t, []string{"cdn"}, subs[0].Tags)
	require.Equal(t, &domain.HostInfo{Country: "US", City: "Norwell", Org: "Edgecast"}, subs[0].Host)
	require.Empty(t, subs[1].IPAddress)
	require.Nil(t, subs[2].Host)
}

func TestEnricher_PacesQueries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mockhostsearch.NewMockClient(ctrl)
	client.EXPECT().SearchHostname(gomock.Any(), gomock.Any()).Return(nil, nil).Times(3)

	subs := make([]domain.DiscoveredSubdomain, 3)
	start := time.Now()
	_, _ = surface.NewEnricher(client, 50*time.Millisecond).Enrich(context.Background(), subs)
	require.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)
}
