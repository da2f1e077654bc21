package metrics_test

import (
	"context"
	"exposure/pkg/metrics"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestNewMeterProvider_ExportsToRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	mp, err := metrics.NewMeterProvider(reg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	counter, err := metrics.Meter(mp).Int64Counter("probe_requests")
	require.NoError(t, err)
	counter.Add(context.Background(), 3)

	families, err := reg.Gather()
	require.NoError(t, err)

	var found bool
	for _, f := range families {
		if f.GetName() == "probe_requests_total" {
			found = true
		}
	}
	require.True(t, found, "expected probe_requests_total to be exported")
}

func TestMeter_NilProviderIsNoop(t *testing.T) {
	m := metrics.Meter(nil)
	h, err := m.Float64Histogram("anything")
	require.NoError(t, err)
	require.NotPanics(t, func() { h.Record(context.Background(), 1) })
}
