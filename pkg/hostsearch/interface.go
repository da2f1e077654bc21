// Package hostsearch defines the client used to look up internet-scan data
// about a hostname.
package hostsearch

import (
	"context"
)

// Host is one host record returned by a host search.
type Host struct {
	IP         string
	Ports      []int
	Tags       []string
	Country    string
	City       string
	ISP        string
	Org        string
	LastUpdate string
}

// Client is the abstraction for internet host-search services.
//
//go:generate mockgen -package mockhostsearch -source=interface.go -destination=mock/mockhostsearch.go *
type Client interface {
	// SearchHostname returns the hosts matching hostname, most relevant first.
	// No match yields an empty slice and a nil error.
	SearchHostname(ctx context.Context, hostname string) ([]Host, error)
}
