package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"frontdesk_backend/internals/features/templates/dto"
	"frontdesk_backend/internals/features/templates/service"
	helper "frontdesk_backend/internals/helpers"
)

type TemplateController struct {
	Service *service.TemplateService
}

func NewTemplateController(svc *service.TemplateService) *TemplateController {
	return &TemplateController{Service: svc}
}

// GET /api/admin/templates?flow=sessions&all=true
func (ctl *TemplateController) List(c *fiber.Ctx) error {
	rows, err := ctl.Service.List(c.UserContext(), c.Query("flow"), c.QueryBool("all", false))
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.ToTemplateDTOs(rows))
}

// POST /api/admin/templates
func (ctl *TemplateController) Create(c *fiber.Ctx) error {
	var req dto.CreateTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	row, err := ctl.Service.Create(c.UserContext(), req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "step template created", dto.ToTemplateDTO(*row))
}

// PATCH /api/admin/templates/:id
func (ctl *TemplateController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "step template not found")
	}
	var req dto.UpdateTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	row, err := ctl.Service.Update(c.UserContext(), id, req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "step template updated", dto.ToTemplateDTO(*row))
}

// DELETE /api/admin/templates/:id
func (ctl *TemplateController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "step template not found")
	}
	if err := ctl.Service.Delete(c.UserContext(), id); err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonDeleted(c, "step template deleted", fiber.Map{"id": id})
}
