package auth

import (
	"context"

	"github.com/gofiber/fiber/v2"

	authService "frontdesk_backend/internals/features/users/auth/service"
	helper "frontdesk_backend/internals/helpers"
)

type TokenParser interface {
	Parse(ctx context.Context, raw string) (*authService.Claims, error)
}

// AuthJWT requires a valid, non-revoked access token and stores the caller
// in locals (user_id, userRole, user_name).
func AuthJWT(parser TokenParser) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := helper.BearerToken(c)
		if raw == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "missing access token")
		}
		claims, err := parser.Parse(c.UserContext(), raw)
		if err != nil {
			return helper.FromError(c, err)
		}

		c.Locals(helper.LocUserID, claims.UserID)
		c.Locals(helper.LocUserRole, claims.Role)
		c.Locals(helper.LocUserName, claims.UserName)
		c.Locals(helper.LocRawToken, raw)
		return c.Next()
	}
}
