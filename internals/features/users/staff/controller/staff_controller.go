package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"frontdesk_backend/internals/features/users/staff/dto"
	"frontdesk_backend/internals/features/users/staff/service"
	helper "frontdesk_backend/internals/helpers"
)

type StaffController struct {
	Service *service.StaffService
}

func NewStaffController(svc *service.StaffService) *StaffController {
	return &StaffController{Service: svc}
}

// GET /api/admin/staff?all=true
func (ctl *StaffController) List(c *fiber.Ctx) error {
	rows, err := ctl.Service.List(c.UserContext(), c.QueryBool("all", false))
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.ToStaffDTOs(rows))
}

// POST /api/admin/staff
func (ctl *StaffController) Create(c *fiber.Ctx) error {
	var req dto.CreateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	u, err := ctl.Service.Create(c.UserContext(), req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "staff created", dto.ToStaffDTO(*u))
}

// PATCH /api/admin/staff/:id/deactivate
func (ctl *StaffController) Deactivate(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "staff user not found")
	}
	actor, _ := helper.CurrentUserID(c)
	if err := ctl.Service.Deactivate(c.UserContext(), actor, id); err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "staff deactivated", fiber.Map{"id": id})
}

// PATCH /api/recruiter/:rid/availability
func (ctl *StaffController) SetAvailability(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("rid")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "recruiter not found")
	}
	var req dto.AvailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	u, err := ctl.Service.SetAvailability(c.UserContext(), id, req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "availability updated", dto.ToStaffDTO(*u))
}
