package route

import (
	"github.com/gofiber/fiber/v2"

	intakeCtl "frontdesk_backend/internals/features/intake/controller"
)

// PublicRoutes is the kiosk surface, mounted at /api/public without auth.
// registerGuards run in front of registration only (rate limiting).
func PublicRoutes(r fiber.Router, ctl *intakeCtl.IntakeController, registerGuards ...fiber.Handler) {
	g := r.Group("/:flow")

	register := append(append([]fiber.Handler{}, registerGuards...), ctl.Register)
	g.Post("/register", register...)
	g.Get("/:id", ctl.GetPublic)
	g.Patch("/:id/steps/:step_name/complete", ctl.CompleteStep)
	g.Post("/:id/complete", ctl.CompletePublic)
}

// RecruiterRoutes expects auth and the :rid ownership check above it.
func RecruiterRoutes(r fiber.Router, ctl *intakeCtl.IntakeController) {
	r.Get("/records", ctl.RecruiterRecords)

	rec := r.Group("/:flow/:sid")
	rec.Post("/start", ctl.Start)
	rec.Post("/complete", ctl.CompleteByRecruiter)
	rec.Post("/reopen", ctl.Reopen)
	rec.Patch("/update", ctl.Update)
	rec.Patch("/reassign", ctl.Reassign)
}

// AdminRoutes is mounted at /api/admin behind management/admin roles.
func AdminRoutes(r fiber.Router, ctl *intakeCtl.IntakeController) {
	r.Get("/live", ctl.Live)

	rec := r.Group("/records/:flow")
	rec.Get("/", ctl.List)
	rec.Get("/:id", ctl.Get)
	rec.Delete("/:id", ctl.Delete)
}
