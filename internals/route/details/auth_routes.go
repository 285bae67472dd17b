package details

import (
	"github.com/gofiber/fiber/v2"

	authCtl "frontdesk_backend/internals/features/users/auth/controller"
	authRepo "frontdesk_backend/internals/features/users/auth/repository"
	authRoute "frontdesk_backend/internals/features/users/auth/route"
	authService "frontdesk_backend/internals/features/users/auth/service"
	staffRepo "frontdesk_backend/internals/features/users/staff/repository"
	"frontdesk_backend/internals/middlewares"
)

func NewAuthService(d Deps) *authService.AuthService {
	return authService.NewAuthService(
		staffRepo.NewStaffRepository(d.DB),
		authRepo.NewBlacklistRepository(d.DB),
		d.Config.Auth.JWTSecret,
		d.Config.Auth.TokenTTL,
		d.Log,
	)
}

func AuthRoutes(api fiber.Router, d Deps, svc *authService.AuthService, authenticated fiber.Handler) {
	ctl := authCtl.NewAuthController(svc, d.Config.App.Environment == "production")
	authRoute.AuthRoutes(api, ctl, authenticated, middlewares.LoginRateLimiter())
}
