package middleware

import (
	"github.com/labstack/echo/v4"
)

// apiSecurityHeaders go on every response. The API only serves JSON and the metrics text
// format, so the CSP denies everything and nothing may be cached: responses carry
// account balances and transaction history.
var apiSecurityHeaders = [][2]string{
	{"X-Content-Type-Options", "nosniff"},
	{"X-Frame-Options", "DENY"},
	{"X-XSS-Protection", "1; mode=block"},
	{"Strict-Transport-Security", "max-age=31536000; includeSubDomains"},
	{"Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'"},
	{"Referrer-Policy", "strict-origin-when-cross-origin"},
	{"Permissions-Policy", "geolocation=(), microphone=(), camera=()"},
	{"Cache-Control", "no-store, no-cache, must-revalidate, private"},
	{"Pragma", "no-cache"},
	{"Expires", "0"},
}

// SecurityHeaders sets apiSecurityHeaders before the handler runs so error and panic
// responses carry them too. Responses vary by bearer token.
func SecurityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Response().Header()
			for _, kv := range apiSecurityHeaders {
				header.Set(kv[0], kv[1])
			}
			header.Add(echo.HeaderVary, echo.HeaderAuthorization)

			return next(c)
		}
	}
}
