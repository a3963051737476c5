// Package wcagrep holds assets shared by the binaries of the service.
package wcagrep

import "embed"

// Migrations contains the goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
