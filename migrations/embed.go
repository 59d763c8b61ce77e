// Package migrations embeds the versioned schema so binaries can migrate
// without shipping the SQL files alongside them.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
