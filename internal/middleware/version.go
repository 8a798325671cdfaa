// version.go
//
// Multi-step job application form state service.
// API version negotiation header.

package middleware

import (
	"github.com/gofiber/fiber/v2"
)

const currentAPIVersion = "1.0.0"

// VersionMiddleware resolves the X-Api-Version request header, stores it in
// the request context and echoes the served version on the response.
func VersionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		version := c.Get("X-Api-Version", currentAPIVersion)

		// Alias short form of the current line
		if version == "1.0" {
			version = currentAPIVersion
		}

		c.Locals("apiVersion", version)
		c.Set("X-Api-Version", currentAPIVersion)

		return c.Next()
	}
}
