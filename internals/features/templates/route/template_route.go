package route

import (
	"github.com/gofiber/fiber/v2"

	templateCtl "frontdesk_backend/internals/features/templates/controller"
)

// AdminRoutes mounts template CRUD under /api/admin/templates.
func AdminRoutes(r fiber.Router, ctl *templateCtl.TemplateController) {
	g := r.Group("/templates")
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
