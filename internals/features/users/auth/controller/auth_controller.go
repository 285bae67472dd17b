package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"frontdesk_backend/internals/features/users/auth/dto"
	"frontdesk_backend/internals/features/users/auth/service"
	helper "frontdesk_backend/internals/helpers"
)

type AuthController struct {
	Service *service.AuthService
	// SecureCookie marks the access_token cookie Secure; off for local http.
	SecureCookie bool
}

func NewAuthController(svc *service.AuthService, secureCookie bool) *AuthController {
	return &AuthController{Service: svc, SecureCookie: secureCookie}
}

// POST /api/auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	res, err := ctl.Service.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return helper.FromError(c, err)
	}

	ctl.setCookie(c, res.AccessToken, res.ExpiresAt)
	return helper.JsonOK(c, "login successful", dto.LoginResponse{
		AccessToken: res.AccessToken,
		TokenType:   "Bearer",
		ExpiresAt:   res.ExpiresAt,
		User: dto.LoginUserDTO{
			ID:       res.User.StaffUserID,
			FullName: res.User.StaffUserFullName,
			Email:    res.User.StaffUserEmail,
			Role:     res.User.StaffUserRole,
		},
	})
}

// POST /api/auth/logout
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	if raw := helper.BearerToken(c); raw != "" {
		if err := ctl.Service.Logout(c.UserContext(), raw); err != nil {
			return helper.FromError(c, err)
		}
	}
	ctl.setCookie(c, "", time.Now().Add(-time.Hour))
	return helper.JsonOK(c, "logout successful", nil)
}

// GET /api/auth/me
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	id, ok := helper.CurrentUserID(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return helper.JsonOK(c, "ok", dto.MeResponse{
		ID:       id.String(),
		Role:     helper.CurrentRole(c),
		UserName: helper.CurrentUserName(c),
	})
}

func (ctl *AuthController) setCookie(c *fiber.Ctx, value string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     helper.AccessTokenCookie,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HTTPOnly: true,
		Secure:   ctl.SecureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
