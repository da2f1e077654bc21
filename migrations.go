// Package exposure holds the assets embedded into the exposure binaries.
package exposure

import "embed"

// Migrations contains the goose migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
