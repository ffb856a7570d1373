package web

import "embed"

// templateFS holds the embedded HTML template files.
//
//go:embed templates/*.html
var templateFS embed.FS
