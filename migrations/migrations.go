// Package migrations embeds the sqlite schema applied by the store on open.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
