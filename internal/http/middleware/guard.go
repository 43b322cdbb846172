package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// Origin rejects browser requests from pages outside the allowlist with 403.
// Requests without an Origin header (qrctl, curl, the webview's own GETs) pass
// unless the browser marks them cross-site through Sec-Fetch-Site.
func Origin(allowed []string) fiber.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		if o = normalizeOrigin(o); o != "" {
			set[o] = struct{}{}
		}
	}

	return func(c *fiber.Ctx) error {
		origin := c.Get(fiber.HeaderOrigin)
		if origin == "" {
			if c.Get("Sec-Fetch-Site") == "cross-site" {
				return fiber.NewError(fiber.StatusForbidden, "cross-site request")
			}
			return c.Next()
		}
		if _, ok := set[normalizeOrigin(origin)]; !ok {
			return fiber.NewError(fiber.StatusForbidden, "origin not allowed")
		}
		return c.Next()
	}
}

// CORS answers preflights for the allowlisted origins only.
func CORS(allowed []string) fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:  strings.Join(allowed, ","),
		AllowMethods:  strings.Join([]string{fiber.MethodGet, fiber.MethodPost}, ","),
		AllowHeaders:  strings.Join([]string{fiber.HeaderContentType, fiber.HeaderAcceptLanguage, RequestIDHeader}, ","),
		ExposeHeaders: RequestIDHeader,
	})
}

// RequireJSON answers 415 to any POST whose Content-Type is not application/json.
// HTML forms cannot send that type, so a cross-site page has to pass a CORS
// preflight first.
func RequireJSON() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodPost && !c.Is("json") {
			return fiber.NewError(fiber.StatusUnsupportedMediaType, "content type must be application/json")
		}
		return c.Next()
	}
}

func normalizeOrigin(o string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(o)), "/")
}
