package middleware

import (
	"github.com/gin-gonic/gin"
)

type header struct{ name, value string }

// apiHeaders are sent on every response. The API never serves HTML, so the
// content policy forbids everything.
var apiHeaders = []header{
	{"X-Content-Type-Options", "nosniff"},
	{"X-Frame-Options", "DENY"},
	{"Referrer-Policy", "no-referrer"},
	{"Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'"},
	{"Permissions-Policy", "geolocation=(), microphone=(), camera=()"},
	{"Cross-Origin-Resource-Policy", "same-origin"},
	// dashboards are per user and recomputed on each request
	{"Cache-Control", "no-store"},
}

const hstsValue = "max-age=31536000; includeSubDomains"

// SecurityHeaders sets the fixed response headers. Strict-Transport-Security
// is added only when isProduction, since local runs are plain HTTP.
func SecurityHeaders(isProduction bool) gin.HandlerFunc {
	headers := apiHeaders
	if isProduction {
		headers = append(headers[:len(headers):len(headers)], header{"Strict-Transport-Security", hstsValue})
	}
	return func(c *gin.Context) {
		h := c.Writer.Header()
		for _, kv := range headers {
			h.Set(kv.name, kv.value)
		}
		c.Next()
	}
}
