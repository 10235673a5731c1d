// Package assets embeds the SQL migrations so the binary can create the
// best-score database without a checkout next to it.
package assets

import "embed"

//go:embed sql/*.sql
var Migrations embed.FS
