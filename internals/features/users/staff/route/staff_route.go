package route

import (
	"github.com/gofiber/fiber/v2"

	staffCtl "frontdesk_backend/internals/features/users/staff/controller"
)

// AdminRoutes mounts /api/admin/staff. Create and deactivate are admin only.
func AdminRoutes(r fiber.Router, ctl *staffCtl.StaffController, adminOnly fiber.Handler) {
	g := r.Group("/staff")
	g.Get("/", ctl.List)
	g.Post("/", adminOnly, ctl.Create)
	g.Patch("/:id/deactivate", adminOnly, ctl.Deactivate)
}

// RecruiterRoutes mounts the self-service endpoints under /api/recruiter/:rid.
func RecruiterRoutes(r fiber.Router, ctl *staffCtl.StaffController) {
	r.Patch("/availability", ctl.SetAvailability)
}
