// Package web holds the browser page, compiled into the binary.
package web

import _ "embed"

//go:embed index.html
var IndexHTML []byte
