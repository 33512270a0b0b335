package web

import "embed"

// templatesFS holds the page templates; the layout is parsed with every page.
//
//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static/*.css static/*.js
var staticFS embed.FS
