package details

import (
	"github.com/gofiber/fiber/v2"

	"frontdesk_backend/internals/constants"
	staffCtl "frontdesk_backend/internals/features/users/staff/controller"
	staffRepo "frontdesk_backend/internals/features/users/staff/repository"
	staffRoute "frontdesk_backend/internals/features/users/staff/route"
	staffService "frontdesk_backend/internals/features/users/staff/service"
	authMw "frontdesk_backend/internals/middlewares/auth"
)

func StaffRoutes(recruiter, admin fiber.Router, d Deps) {
	svc := staffService.NewStaffService(staffRepo.NewStaffRepository(d.DB), d.Log)
	ctl := staffCtl.NewStaffController(svc)

	staffRoute.RecruiterRoutes(recruiter, ctl)
	staffRoute.AdminRoutes(admin, ctl, authMw.OnlyRoles("only admins can manage staff accounts", constants.AdminOnly...))
}
