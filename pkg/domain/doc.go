// Package domain contains the entities shared by the attack-surface scanner
// and the breach-correlation engine: discovered hosts and endpoints, findings,
// breach records, the user's known services and the reports built from them.
// The types carry no infrastructure concerns so every layer can share them.
package domain
