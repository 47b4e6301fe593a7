// Package migrations contiene el esquema SQL embebido del servicio.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
