package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals written by the auth middleware.
const (
	LocUserID   = "user_id"
	LocUserRole = "userRole"
	LocUserName = "user_name"
	LocRawToken = "raw_token"
)

const AccessTokenCookie = "access_token"

// BearerToken returns the access token from "Authorization: Bearer <token>"
// or, failing that, the access_token cookie. Empty when neither is present.
func BearerToken(c *fiber.Ctx) string {
	if auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); auth != "" {
		fields := strings.Fields(auth)
		if len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
			return strings.Trim(fields[1], "\"'")
		}
		return ""
	}
	return strings.TrimSpace(c.Cookies(AccessTokenCookie))
}

func CurrentUserID(c *fiber.Ctx) (uuid.UUID, bool) {
	s, ok := c.Locals(LocUserID).(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	return id, err == nil
}

func CurrentRole(c *fiber.Ctx) string {
	role, _ := c.Locals(LocUserRole).(string)
	return role
}

func CurrentUserName(c *fiber.Ctx) string {
	name, _ := c.Locals(LocUserName).(string)
	return name
}
