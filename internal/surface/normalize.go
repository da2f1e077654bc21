package surface

import (
	"exposure/pkg/serrors"
	"net"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// NormalizeDomain turns user input into a bare scan target.
//
// The rules are:
//   - Trim whitespace and lower-case
//   - Strip the scheme and anything after the host (a trailing slash, a path)
//   - Drop an explicit port
//   - Require a registrable domain under a known public suffix
//
// IP addresses are rejected since subdomain prefixes cannot be applied to them.
func NormalizeDomain(raw string) (string, error) {
	host := strings.ToLower(strings.TrimSpace(raw))
	if strings.Contains(host, "://") {
		u, err := url.Parse(host)
		if err != nil {
			return "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid domain %q", raw)
		}
		host = u.Host
	}
	// trailing slash or path without a scheme
	if i := strings.IndexByte(host, '/'); i >= 0 {
		host = host[:i]
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.TrimSuffix(host, ".")

	if host == "" || !strings.Contains(host, ".") {
		return "", serrors.With(serrors.ErrBadRequest, "invalid domain %q", raw)
	}
	if net.ParseIP(host) != nil {
		return "", serrors.With(serrors.ErrBadRequest, "IP addresses are not scannable domains: %q", raw)
	}
	for _, r := range host {
		if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-' || r == '.') {
			return "", serrors.With(serrors.ErrBadRequest, "invalid character %q in domain %q", r, raw)
		}
	}
	if _, err := publicsuffix.EffectiveTLDPlusOne(host); err != nil {
		return "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid domain %q", raw)
	}

	return host, nil
}
