package route

import (
	"github.com/gofiber/fiber/v2"

	authCtl "frontdesk_backend/internals/features/users/auth/controller"
)

// AuthRoutes mounts /api/auth. loginGuards run before login (rate limiting);
// authenticated protects /me.
func AuthRoutes(r fiber.Router, ctl *authCtl.AuthController, authenticated fiber.Handler, loginGuards ...fiber.Handler) {
	g := r.Group("/auth")

	login := append(append([]fiber.Handler{}, loginGuards...), ctl.Login)
	g.Post("/login", login...)
	g.Post("/logout", ctl.Logout)
	g.Get("/me", authenticated, ctl.Me)
}
