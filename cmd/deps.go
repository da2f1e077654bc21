package main

import (
	"context"
	"exposure/internal/breach"
	"exposure/internal/config"
	"exposure/internal/monitor"
	"exposure/internal/surface"
	"exposure/pkg/breachdb/hibp"
	"exposure/pkg/hostsearch"
	"exposure/pkg/hostsearch/shodan"
	"exposure/pkg/logger"
	"exposure/pkg/notify/slack"
	"exposure/pkg/probe"
	"exposure/pkg/storage"
	"net/http"

	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// newScanner builds the discovery pipeline. Shodan enrichment is enabled
// only when an API key is configured.
func newScanner(ctx context.Context, cfg *config.Config, mp metric.MeterProvider) *surface.Service {
	prober := probe.New(&http.Client{}, cfg.Probe.UserAgent, probe.WithMeterProvider(mp))
	discoverer := surface.NewDiscoverer(prober, surface.Options{
		SubdomainTimeout:      cfg.Probe.SubdomainTimeout,
		EndpointTimeout:       cfg.Probe.EndpointTimeout,
		SubdomainMaxRedirects: cfg.Probe.SubdomainMaxRedirects,
		EndpointMaxRedirects:  cfg.Probe.EndpointMaxRedirects,
		Concurrency:           cfg.Probe.Concurrency,
	})

	var hosts hostsearch.Client
	if cfg.Shodan.APIKey != "" {
		hosts = shodan.New(&http.Client{Timeout: cfg.Shodan.Timeout}, cfg.Shodan.BaseURL, cfg.Shodan.APIKey)
	} else {
		logger.Info(ctx, "shodan api key is not configured, enrichment is disabled")
	}

	return surface.NewService(discoverer, surface.NewEnricher(hosts, cfg.Shodan.Delay))
}

func newBreachService(cfg *config.Config, strg storage.Storage) *breach.Service {
	client := hibp.New(&http.Client{Timeout: cfg.HIBP.Timeout}, cfg.HIBP.BaseURL, cfg.HIBP.APIKey, cfg.HIBP.UserAgent)

	return breach.NewService(strg, breach.NewChecker(client, cfg.HIBP.RequestDelay), breach.Options{
		MaxAttempts:     cfg.Breach.MaxAttempts,
		UniqueJobPeriod: cfg.Breach.UniqueJobPeriod,
	})
}

// newNotifier returns nil when no webhook is configured.
func newNotifier(ctx context.Context, cfg *config.Config) monitor.Notifier {
	if cfg.Slack.WebhookURL == "" {
		logger.Info(ctx, "slack webhook is not configured, drift alerts are disabled")

		return nil
	}
	client, err := slack.New(cfg.Slack.WebhookURL)
	if err != nil {
		logger.Fatal(ctx, "could not create slack client", zap.Error(err))
	}

	return client
}

func newMonitor(ctx context.Context, cfg *config.Config, strg storage.Storage, scanner surface.Scanner) *monitor.Service {
	return monitor.NewService(strg, scanner, newNotifier(ctx, cfg), monitor.Options{
		RescanInterval: cfg.Monitor.RescanInterval,
		SweepBatchSize: cfg.Monitor.SweepBatchSize,
		MaxAttempts:    cfg.Monitor.RescanMaxAttempts,
	})
}
