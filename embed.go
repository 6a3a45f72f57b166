// Package phishguard exposes assets embedded at the repository root.
package phishguard

import "embed"

// Migrations holds the goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
