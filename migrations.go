// Package vdpscanner holds assets shared by the binaries of this module.
package vdpscanner

import "embed"

// Migrations contains the goose SQL migrations for the domains store.
//
//go:embed migrations/*.sql
var Migrations embed.FS
