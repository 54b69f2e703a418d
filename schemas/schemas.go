package schemas

import "embed"

// SchemasFS - JSON-схемы тел запросов админки и исходящих событий.
//
//go:embed requests events
var SchemasFS embed.FS
