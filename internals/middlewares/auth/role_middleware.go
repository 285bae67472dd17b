package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "frontdesk_backend/internals/helpers"
)

// OnlyRoles lets the request through when the caller has one of roles.
func OnlyRoles(message string, roles ...string) fiber.Handler {
	if message == "" {
		message = "you are not allowed to access this resource"
	}
	return func(c *fiber.Ctx) error {
		role := helper.CurrentRole(c)
		if role == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "missing role information")
		}
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return helper.JsonError(c, fiber.StatusForbidden, message)
	}
}
