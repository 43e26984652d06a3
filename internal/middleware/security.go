// internal/middleware/security.go
//
// Security-header middleware for the local stub endpoint.
//
// Injects headers suited to a JSON API on every response:
//
//   • Content-Security-Policy   –  nothing may be loaded or framed
//   • X-Frame-Options           –  click-jacking defence
//   • X-Content-Type-Options    –  MIME-sniffing defence
//   • Referrer-Policy           –  no Referer leaves the API
//   • Cache-Control             –  submissions are never cached
//
// Notes
// -----
// • Headers are set *before* next.ServeHTTP; once a handler writes the
//   status line the header map is frozen.  Handlers may still replace any
//   value before writing.
// • HSTS is omitted: the stub listens on plain HTTP on loopback.

package middleware

import "net/http"

// Security sets security headers for every response.
func Security(next http.Handler) http.Handler {
	const (
		csp   = "default-src 'none'; frame-ancestors 'none'"
		xfo   = "DENY"
		nosn  = "nosniff"
		refer = "no-referrer"
		cache = "no-store"
	)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Content-Security-Policy", csp)
		h.Set("X-Frame-Options", xfo)
		h.Set("X-Content-Type-Options", nosn)
		h.Set("Referrer-Policy", refer)
		h.Set("Cache-Control", cache)
		next.ServeHTTP(w, r)
	})
}
