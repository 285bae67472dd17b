package details

import (
	"github.com/gofiber/fiber/v2"

	intakeCtl "frontdesk_backend/internals/features/intake/controller"
	intakeRepo "frontdesk_backend/internals/features/intake/repository"
	intakeRoute "frontdesk_backend/internals/features/intake/route"
	intakeService "frontdesk_backend/internals/features/intake/service"
	templateRepo "frontdesk_backend/internals/features/templates/repository"
	staffRepo "frontdesk_backend/internals/features/users/staff/repository"
	"frontdesk_backend/internals/middlewares"
)

func IntakeRoutes(public, recruiter, admin fiber.Router, d Deps) {
	svc := intakeService.NewIntakeService(
		intakeRepo.NewRecordRepository(d.DB),
		templateRepo.NewTemplateRepository(d.DB),
		staffRepo.NewStaffRepository(d.DB),
		d.Events,
		d.Log,
	)
	ctl := intakeCtl.NewIntakeController(svc)

	intakeRoute.PublicRoutes(public, ctl, middlewares.RegisterRateLimiter())
	intakeRoute.RecruiterRoutes(recruiter, ctl)
	intakeRoute.AdminRoutes(admin, ctl)
}
