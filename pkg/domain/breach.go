package domain

import (
	"time"

	"github.com/google/uuid"
)

// BreachRecord is a breach as reported by the breach database. Field names
// follow the upstream wire format.
type BreachRecord struct {
	Name        string   `json:"Name"`
	Title       string   `json:"Title,omitempty"`
	Domain      string   `json:"Domain,omitempty"`
	BreachDate  string   `json:"BreachDate"`
	DataClasses []string `json:"DataClasses"`
	Description string   `json:"Description"`
}

// ServiceID identifies one of a user's known online services.
type ServiceID uuid.UUID

// String returns the canonical UUID representation.
func (id ServiceID) String() string { return uuid.UUID(id).String() }

// UserService is an online service the user is known to have an account with.
type UserService struct {
	ID          ServiceID `json:"id"`
	UserID      UserID    `json:"userId"`
	ServiceName string    `json:"serviceName"`
	Domain      string    `json:"domain"`
}

// BreachStatus is the breach state persisted on a matched service.
type BreachStatus struct {
	IsBreached  bool      `json:"isBreached"`
	BreachName  string    `json:"breachName"`
	BreachDate  string    `json:"breachDate"`
	Severity    Severity  `json:"severity"`
	DataClasses []string  `json:"dataClasses"`
	Description string    `json:"description"`
	LastChecked time.Time `json:"lastChecked"`
}

// BreachMatch pairs a breach with one of the user's services it affects.
type BreachMatch struct {
	Service        UserService  `json:"service"`
	Breach         BreachRecord `json:"breach"`
	Severity       Severity     `json:"severity"`
	ActionRequired bool         `json:"actionRequired"`
}

// RecommendationType grades a recommendation.
type RecommendationType string

const (
	RecommendationSuccess  RecommendationType = "success"
	RecommendationCritical RecommendationType = "critical"
	RecommendationWarning  RecommendationType = "warning"
)

// Recommendation is a follow-up action suggested by a breach check.
type Recommendation struct {
	Type    RecommendationType `json:"type"`
	Title   string             `json:"title"`
	Message string             `json:"message"`
	Actions []string           `json:"actions"`
}

// BreachReport is the result of a breach check for one user.
type BreachReport struct {
	BreachesFound    int              `json:"breachesFound"`
	TotalServices    int              `json:"totalServices"`
	SecurityScore    int              `json:"securityScore"`
	BreachedServices int              `json:"breachedServices"`
	SafeServices     int              `json:"safeServices"`
	MatchedBreaches  []BreachMatch    `json:"matchedBreaches"`
	BreachDetails    []BreachRecord   `json:"breachDetails"`
	Recommendations  []Recommendation `json:"recommendations"`
	Errors           []ScanError      `json:"errors"`
	LastChecked      time.Time        `json:"lastChecked"`
}
