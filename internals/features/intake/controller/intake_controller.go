package controller

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"frontdesk_backend/internals/apperr"
	"frontdesk_backend/internals/constants"
	"frontdesk_backend/internals/features/intake/dto"
	"frontdesk_backend/internals/features/intake/model"
	"frontdesk_backend/internals/features/intake/repository"
	"frontdesk_backend/internals/features/intake/service"
	helper "frontdesk_backend/internals/helpers"
)

type IntakeController struct {
	Service *service.IntakeService
}

func NewIntakeController(svc *service.IntakeService) *IntakeController {
	return &IntakeController{Service: svc}
}

// ===================== PUBLIC (kiosk) =====================

// POST /api/public/:flow/register
func (ctl *IntakeController) Register(c *fiber.Ctx) error {
	flow, err := flowParam(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	rec, err := ctl.Service.Register(c.UserContext(), flow, req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "registered", dto.ToRecordDTO(*rec, false))
}

// GET /api/public/:flow/:id
func (ctl *IntakeController) GetPublic(c *fiber.Ctx) error {
	return ctl.get(c, false)
}

// PATCH /api/public/:flow/:id/steps/:step_name/complete
func (ctl *IntakeController) CompleteStep(c *fiber.Ctx) error {
	flow, id, err := recordParams(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	step, err := stepParam(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	if step == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "step name is required")
	}

	rec, err := ctl.Service.CompleteStep(c.UserContext(), flow, id, step)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "step completed", dto.ToRecordDTO(*rec, false))
}

// POST /api/public/:flow/:id/complete
func (ctl *IntakeController) CompletePublic(c *fiber.Ctx) error {
	flow, id, err := recordParams(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	rec, err := ctl.Service.Complete(c.UserContext(), flow, id)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, completedMessage(flow), dto.CompleteResponse{
		Message: completedMessage(flow),
		ID:      rec.IntakeRecordID,
	})
}

// ===================== RECRUITER =====================

// POST /api/recruiter/:rid/:flow/:sid/start
func (ctl *IntakeController) Start(c *fiber.Ctx) error {
	return ctl.recruiterAction(c, "started", ctl.Service.Start)
}

// POST /api/recruiter/:rid/:flow/:sid/complete
func (ctl *IntakeController) CompleteByRecruiter(c *fiber.Ctx) error {
	return ctl.recruiterAction(c, "completed", ctl.Service.CompleteAsRecruiter)
}

// POST /api/recruiter/:rid/:flow/:sid/reopen
func (ctl *IntakeController) Reopen(c *fiber.Ctx) error {
	return ctl.recruiterAction(c, "reopened", ctl.Service.Reopen)
}

// PATCH /api/recruiter/:rid/:flow/:sid/update
func (ctl *IntakeController) Update(c *fiber.Ctx) error {
	rid, err := uuidParam(c, "rid")
	if err != nil {
		return helper.FromError(c, err)
	}
	flow, id, err := recordParams(c, "sid")
	if err != nil {
		return helper.FromError(c, err)
	}
	var req dto.UpdateRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromError(c, err)
	}

	rec, err := ctl.Service.Update(c.UserContext(), flow, id, rid, req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "updated", dto.ToRecordDTO(*rec, true))
}

// PATCH /api/recruiter/:rid/:flow/:sid/reassign
func (ctl *IntakeController) Reassign(c *fiber.Ctx) error {
	rid, err := uuidParam(c, "rid")
	if err != nil {
		return helper.FromError(c, err)
	}
	flow, id, err := recordParams(c, "sid")
	if err != nil {
		return helper.FromError(c, err)
	}
	var req dto.ReassignRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	target, err := uuid.Parse(strings.TrimSpace(req.RecruiterID))
	if err != nil {
		return helper.FromError(c, apperr.Validation(map[string][]string{"recruiter_id": {"must be a valid UUID"}}))
	}

	rec, err := ctl.Service.Reassign(c.UserContext(), flow, id, rid, target)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "reassigned", dto.ToRecordDTO(*rec, true))
}

// GET /api/recruiter/:rid/records?all=true
func (ctl *IntakeController) RecruiterRecords(c *fiber.Ctx) error {
	rid, err := uuidParam(c, "rid")
	if err != nil {
		return helper.FromError(c, err)
	}
	rows, err := ctl.Service.RecruiterRecords(c.UserContext(), rid, !c.QueryBool("all", false))
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.ToRecordDTOs(rows, true))
}

type recruiterFn func(ctx context.Context, flow string, id, recruiterID uuid.UUID) (*model.IntakeRecordModel, error)

func (ctl *IntakeController) recruiterAction(c *fiber.Ctx, message string, fn recruiterFn) error {
	rid, err := uuidParam(c, "rid")
	if err != nil {
		return helper.FromError(c, err)
	}
	flow, id, err := recordParams(c, "sid")
	if err != nil {
		return helper.FromError(c, err)
	}
	rec, err := fn(c.UserContext(), flow, id, rid)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, message, dto.ToRecordDTO(*rec, true))
}

// ===================== MANAGEMENT / ADMIN =====================

// GET /api/admin/records/:flow?status=&active=&recruiter_id=&date=YYYY-MM-DD&q=&page=&per_page=
func (ctl *IntakeController) List(c *fiber.Ctx) error {
	flow, err := flowParam(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	p := helper.ResolvePaging(c, 20, 200)
	f := repository.ListFilter{
		Flow:       flow,
		Status:     strings.TrimSpace(c.Query("status")),
		ActiveOnly: c.QueryBool("active", false),
		Search:     strings.TrimSpace(c.Query("q")),
		Offset:     p.Offset,
		Limit:      p.Limit,
	}
	if raw := strings.TrimSpace(c.Query("recruiter_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonValidationError(c, map[string][]string{"recruiter_id": {"must be a valid UUID"}})
		}
		f.RecruiterID = &id
	}
	if raw := strings.TrimSpace(c.Query("date")); raw != "" {
		day, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return helper.JsonValidationError(c, map[string][]string{"date": {"must be YYYY-MM-DD"}})
		}
		f.CreatedOn = &day
	}

	rows, total, err := ctl.Service.List(c.UserContext(), f)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "ok", dto.ToRecordDTOs(rows, flow == constants.FlowInfoSession), helper.BuildPagination(total, p, len(rows)))
}

// GET /api/admin/records/:flow/:id
func (ctl *IntakeController) Get(c *fiber.Ctx) error {
	return ctl.get(c, true)
}

// DELETE /api/admin/records/:flow/:id
func (ctl *IntakeController) Delete(c *fiber.Ctx) error {
	flow, id, err := recordParams(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	if err := ctl.Service.Delete(c.UserContext(), flow, id); err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonDeleted(c, "deleted", fiber.Map{"id": id})
}

// GET /api/admin/live
func (ctl *IntakeController) Live(c *fiber.Ctx) error {
	board, err := ctl.Service.Live(c.UserContext())
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.ToLiveBoardDTO(board.InfoSessions, board.Orientations, board.Recruiters))
}

func (ctl *IntakeController) get(c *fiber.Ctx, staff bool) error {
	flow, id, err := recordParams(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	rec, err := ctl.Service.Get(c.UserContext(), flow, id)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.ToRecordDTO(*rec, staff && flow == constants.FlowInfoSession))
}

// ===================== params =====================

func flowParam(c *fiber.Ctx) (string, error) {
	flow, ok := constants.FlowFromPath(c.Params("flow"))
	if !ok {
		return "", apperr.NotFound("unknown flow %q", c.Params("flow"))
	}
	return flow, nil
}

func uuidParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil {
		return uuid.Nil, apperr.Validation(map[string][]string{name: {"must be a valid UUID"}})
	}
	return id, nil
}

// stepParam decodes the step name once; Fiber hands path params over still
// percent-encoded, and template names may contain spaces.
func stepParam(c *fiber.Ctx) (string, error) {
	step, err := url.PathUnescape(c.Params("step_name"))
	if err != nil {
		return "", apperr.Validation(map[string][]string{"step_name": {"is not a valid path segment"}})
	}
	return strings.TrimSpace(step), nil
}

func recordParams(c *fiber.Ctx, idParam string) (string, uuid.UUID, error) {
	flow, err := flowParam(c)
	if err != nil {
		return "", uuid.Nil, err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params(idParam)))
	if err != nil {
		// a malformed id can never exist
		return "", uuid.Nil, apperr.NotFound("record %s not found", c.Params(idParam))
	}
	return flow, id, nil
}

func completedMessage(flow string) string {
	if flow == constants.FlowOrientation {
		return "Orientation completed"
	}
	return "Session completed"
}
