// Package inkbook stores hand-drawn notebooks as a directory of PNG pages
// plus a small JSON metadata record.
//
// A notebook lives in its own directory:
//
//	<root>/<name>/metadata.json   {"name": "...", "pages": N}
//	<root>/<name>/page1.png
//	...
//	<root>/<name>/pageN.png
//
// Page files may be missing or empty for pages that were never drawn.
package inkbook

import (
	"github.com/akeil/inkbook/internal/logging"
)

// Default page dimensions in pixels.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// SetLogLevel sets the log level by name (debug, info, warning, error).
// Unknown names disable logging.
func SetLogLevel(level string) {
	logging.SetLevel(logging.ParseLevel(level))
}
