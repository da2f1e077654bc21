package breach

import (
	"exposure/pkg/domain"
	"strings"
)

// BreachDomain is the domain a breach is matched on: its Domain, or its Name
// when the breach database recorded no domain. Both are lower-cased.
func BreachDomain(b domain.BreachRecord) string {
	if b.Domain != "" {
		return strings.ToLower(b.Domain)
	}

	return strings.ToLower(b.Name)
}

// Matches reports whether service is affected by breach. The rules are tried
// in order and the first hit wins:
//  1. service domain equals the breach domain
//  2. either domain contains the other
//  3. either of service name and breach name contains the other
//
// Comparisons are case-insensitive. An empty service domain or name is
// contained in everything and therefore matches every breach.
func Matches(service domain.UserService, breach domain.BreachRecord) bool {
	serviceDomain := strings.ToLower(service.Domain)
	breachDomain := BreachDomain(breach)

	if serviceDomain == breachDomain {
		return true
	}
	if strings.Contains(serviceDomain, breachDomain) || strings.Contains(breachDomain, serviceDomain) {
		return true
	}

	serviceName := strings.ToLower(service.ServiceName)
	breachName := strings.ToLower(breach.Name)

	return strings.Contains(serviceName, breachName) || strings.Contains(breachName, serviceName)
}

// MatchServices returns the services affected by breach in input order.
func MatchServices(breach domain.BreachRecord, services []domain.UserService) []domain.UserService {
	var out []domain.UserService
	for _, s := range services {
		if Matches(s, breach) {
			out = append(out, s)
		}
	}

	return out
}
