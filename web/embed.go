package web

import "embed"

// PublicFS embeds the browser client (index.html, app.js, style.css).
//
//go:embed public
var PublicFS embed.FS
