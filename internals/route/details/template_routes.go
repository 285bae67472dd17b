package details

import (
	"github.com/gofiber/fiber/v2"

	templateCtl "frontdesk_backend/internals/features/templates/controller"
	templateRepo "frontdesk_backend/internals/features/templates/repository"
	templateRoute "frontdesk_backend/internals/features/templates/route"
	templateService "frontdesk_backend/internals/features/templates/service"
)

func TemplateRoutes(admin fiber.Router, d Deps) {
	svc := templateService.NewTemplateService(templateRepo.NewTemplateRepository(d.DB), d.Log)
	templateRoute.AdminRoutes(admin, templateCtl.NewTemplateController(svc))
}
