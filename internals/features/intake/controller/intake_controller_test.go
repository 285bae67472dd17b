package controller_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"frontdesk_backend/internals/constants"
	"frontdesk_backend/internals/events"
	intakeCtl "frontdesk_backend/internals/features/intake/controller"
	"frontdesk_backend/internals/features/intake/repository/repotest"
	intakeRoute "frontdesk_backend/internals/features/intake/route"
	"frontdesk_backend/internals/features/intake/service"
	templateModel "frontdesk_backend/internals/features/templates/model"
	staffModel "frontdesk_backend/internals/features/users/staff/model"
	helper "frontdesk_backend/internals/helpers"
)

type envelope struct {
	Message    string              `json:"message"`
	Code       string              `json:"error_code"`
	Data       json.RawMessage     `json:"data"`
	Errors     map[string][]string `json:"errors"`
	Pagination *helper.Pagination  `json:"pagination"`
}

type recordBody struct {
	ID                  string  `json:"id"`
	Status              string  `json:"status"`
	AllStepsCompleted   bool    `json:"all_steps_completed"`
	AssignedRecruiterID *string `json:"assigned_recruiter_id"`
	DocumentFlags       *struct {
		I9Sent bool `json:"i9_sent"`
	} `json:"document_flags"`
	Steps []struct {
		StepName    string `json:"step_name"`
		IsCompleted bool   `json:"is_completed"`
	} `json:"steps"`
	DurationMinutes *int `json:"duration_minutes"`
}

type harness struct {
	app   *fiber.App
	alice staffModel.StaffUserModel
	bob   staffModel.StaffUserModel
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	return newHarnessWithTemplates(t, repotest.DefaultTemplates())
}

func newHarnessWithTemplates(t *testing.T, templates *repotest.Templates) *harness {
	t.Helper()
	h := &harness{alice: repotest.Recruiter("Alice Reyes"), bob: repotest.Recruiter("Bob Chan")}
	svc := service.NewIntakeService(
		repotest.NewRecords(),
		templates,
		repotest.NewStaff(h.alice, h.bob),
		events.NopPublisher{},
		zap.NewNop(),
	)
	ctl := intakeCtl.NewIntakeController(svc)

	h.app = fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	intakeRoute.PublicRoutes(h.app.Group("/api/public"), ctl)
	intakeRoute.RecruiterRoutes(h.app.Group("/api/recruiter/:rid"), ctl)
	intakeRoute.AdminRoutes(h.app.Group("/api/admin"), ctl)
	return h
}

func (h *harness) do(t *testing.T, method, path string, body any) (int, envelope) {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := h.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp.StatusCode, env
}

func decodeRecord(t *testing.T, env envelope) recordBody {
	t.Helper()
	var rec recordBody
	require.NoError(t, json.Unmarshal(env.Data, &rec))
	return rec
}

func (h *harness) registerSession(t *testing.T) recordBody {
	t.Helper()
	status, env := h.do(t, http.MethodPost, "/api/public/sessions/register", map[string]any{
		"first_name":   "Maria",
		"last_name":    "Lopez",
		"email":        "maria@example.com",
		"phone":        "555-0100",
		"zip_code":     "60601",
		"session_type": "new-hire",
		"time_slot":    "09:00",
	})
	require.Equal(t, http.StatusCreated, status)
	return decodeRecord(t, env)
}

func TestKioskSessionFlow(t *testing.T) {
	h := newHarness(t)
	rec := h.registerSession(t)
	assert.Equal(t, "registered", rec.Status)
	require.Len(t, rec.Steps, 3)
	assert.Nil(t, rec.DocumentFlags, "kiosk responses omit document flags")

	status, env := h.do(t, http.MethodPost, "/api/public/sessions/"+rec.ID+"/complete", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "PRECONDITION_FAILED", env.Code)

	for _, st := range rec.Steps {
		status, _ = h.do(t, http.MethodPatch, "/api/public/sessions/"+rec.ID+"/steps/"+st.StepName+"/complete", nil)
		require.Equal(t, http.StatusOK, status)
	}

	status, env = h.do(t, http.MethodGet, "/api/public/sessions/"+rec.ID, nil)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, decodeRecord(t, env).AllStepsCompleted)

	status, env = h.do(t, http.MethodPost, "/api/public/sessions/"+rec.ID+"/complete", nil)
	require.Equal(t, http.StatusOK, status)
	var done struct {
		Message string `json:"message"`
		ID      string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &done))
	assert.Equal(t, "Session completed", done.Message)
	assert.Equal(t, rec.ID, done.ID)

	status, _ = h.do(t, http.MethodPost, "/api/public/sessions/"+rec.ID+"/complete", nil)
	assert.Equal(t, http.StatusConflict, status)
}

func TestKioskErrors(t *testing.T) {
	h := newHarness(t)
	rec := h.registerSession(t)

	status, _ := h.do(t, http.MethodGet, "/api/public/badges/"+rec.ID, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = h.do(t, http.MethodGet, "/api/public/orientations/"+rec.ID, nil)
	assert.Equal(t, http.StatusNotFound, status, "a session is not an orientation")

	status, _ = h.do(t, http.MethodGet, "/api/public/sessions/not-a-uuid", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = h.do(t, http.MethodPatch, "/api/public/sessions/"+rec.ID+"/steps/unknown/complete", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, env := h.do(t, http.MethodPost, "/api/public/orientations/register", map[string]any{
		"first_name": "Sam",
		"email":      "bad",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Contains(t, env.Errors, "email")
	assert.Contains(t, env.Errors, "last_name")
}

func TestCompleteStepWithEscapedName(t *testing.T) {
	h := newHarnessWithTemplates(t, &repotest.Templates{Rows: []templateModel.StepTemplateModel{{
		StepTemplateID:       uuid.New(),
		StepTemplateFlow:     constants.FlowOrientation,
		StepTemplateName:     "Watch Video",
		StepTemplateOrder:    1,
		StepTemplateIsActive: true,
	}}})

	status, env := h.do(t, http.MethodPost, "/api/public/orientations/register", map[string]any{
		"first_name": "Sam",
		"last_name":  "Ortiz",
		"email":      "sam@example.com",
		"phone":      "555-0101",
		"time_slot":  "13:00",
	})
	require.Equal(t, http.StatusCreated, status)
	rec := decodeRecord(t, env)
	base := "/api/public/orientations/" + rec.ID

	status, env = h.do(t, http.MethodPatch, base+"/steps/Watch%20Video/complete", nil)
	require.Equal(t, http.StatusOK, status, env.Message)
	done := decodeRecord(t, env)
	require.Len(t, done.Steps, 1)
	assert.Equal(t, "Watch Video", done.Steps[0].StepName)
	assert.True(t, done.Steps[0].IsCompleted)
	assert.True(t, done.AllStepsCompleted)

	status, _ = h.do(t, http.MethodPost, base+"/complete", nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestRecruiterEndpoints(t *testing.T) {
	h := newHarness(t)
	rec := h.registerSession(t)
	alice := h.alice.StaffUserID.String()
	bob := h.bob.StaffUserID.String()
	base := "/api/recruiter/" + alice + "/sessions/" + rec.ID

	status, env := h.do(t, http.MethodPost, base+"/start", nil)
	require.Equal(t, http.StatusOK, status)
	started := decodeRecord(t, env)
	assert.Equal(t, "in-progress", started.Status)
	require.NotNil(t, started.AssignedRecruiterID)
	assert.Equal(t, alice, *started.AssignedRecruiterID)

	status, _ = h.do(t, http.MethodPost, "/api/recruiter/"+bob+"/sessions/"+rec.ID+"/start", nil)
	assert.Equal(t, http.StatusConflict, status)

	status, env = h.do(t, http.MethodPatch, base+"/update", map[string]any{"i9_sent": true})
	require.Equal(t, http.StatusOK, status)
	updated := decodeRecord(t, env)
	require.NotNil(t, updated.DocumentFlags)
	assert.True(t, updated.DocumentFlags.I9Sent)

	status, _ = h.do(t, http.MethodPatch, base+"/update", map[string]any{"status": "archived"})
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, env = h.do(t, http.MethodPatch, base+"/reassign", map[string]any{"recruiter_id": bob})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, bob, *decodeRecord(t, env).AssignedRecruiterID)

	status, _ = h.do(t, http.MethodPatch, base+"/reassign", map[string]any{"recruiter_id": "nope"})
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, env = h.do(t, http.MethodGet, "/api/recruiter/"+bob+"/records", nil)
	require.Equal(t, http.StatusOK, status)
	var mine []recordBody
	require.NoError(t, json.Unmarshal(env.Data, &mine))
	require.Len(t, mine, 1)
	assert.Equal(t, rec.ID, mine[0].ID)

	status, _ = h.do(t, http.MethodPost, base+"/reopen", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestAdminListAndDelete(t *testing.T) {
	h := newHarness(t)
	first := h.registerSession(t)
	h.registerSession(t)

	status, env := h.do(t, http.MethodGet, "/api/admin/records/sessions?per_page=1", nil)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, env.Pagination)
	assert.EqualValues(t, 2, env.Pagination.Total)
	assert.Equal(t, 2, env.Pagination.TotalPages)

	status, _ = h.do(t, http.MethodGet, "/api/admin/records/sessions?date=yesterday", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, env = h.do(t, http.MethodGet, "/api/admin/live", nil)
	require.Equal(t, http.StatusOK, status)
	var board struct {
		InfoSessions []recordBody `json:"info_sessions"`
		Recruiters   []struct {
			FullName string `json:"full_name"`
		} `json:"recruiters"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &board))
	assert.Len(t, board.InfoSessions, 2)
	assert.Len(t, board.Recruiters, 2)

	status, _ = h.do(t, http.MethodDelete, "/api/admin/records/sessions/"+first.ID, nil)
	require.Equal(t, http.StatusOK, status)
	status, _ = h.do(t, http.MethodGet, "/api/admin/records/sessions/"+first.ID, nil)
	assert.Equal(t, http.StatusNotFound, status)
}
