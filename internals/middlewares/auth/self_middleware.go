package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	helper "frontdesk_backend/internals/helpers"
)

// RequireSelfOrRoles allows a recruiter to act only as themselves: the path
// parameter must equal the caller's id unless the caller has one of roles.
func RequireSelfOrRoles(param string, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := helper.CurrentRole(c)
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		id, ok := helper.CurrentUserID(c)
		if !ok {
			return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized")
		}
		if !strings.EqualFold(strings.TrimSpace(c.Params(param)), id.String()) {
			return helper.JsonError(c, fiber.StatusForbidden, "you can only act on your own records")
		}
		return c.Next()
	}
}
