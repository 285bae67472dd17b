package helper

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk_backend/internals/apperr"
)

func call(t *testing.T, app *fiber.App, target string) (int, ErrorResponse) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	var out ErrorResponse
	_ = json.Unmarshal(body, &out)
	return resp.StatusCode, out
}

func TestFromErrorMapping(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	cases := map[string]error{
		"notfound":     apperr.NotFound("record missing"),
		"precondition": apperr.PreconditionFailed("2 step(s) not completed"),
		"conflict":     apperr.Conflict("already completed"),
		"validation":   apperr.Validation(map[string][]string{"email": {"is required"}}),
		"unauth":       apperr.Unauthorized("no token"),
		"forbidden":    apperr.Forbidden("nope"),
		"internal":     apperr.Internal(errors.New("db down"), "load"),
		"plain":        errors.New("boom"),
		"fiber":        fiber.NewError(fiber.StatusTeapot, "short and stout"),
	}
	for name, err := range cases {
		err := err
		app.Get("/"+name, func(c *fiber.Ctx) error { return err })
	}

	status, body := call(t, app, "/notfound")
	assert.Equal(t, 404, status)
	assert.Equal(t, "NOT_FOUND", body.ErrorCode)
	assert.Equal(t, "record missing", body.Message)

	status, body = call(t, app, "/precondition")
	assert.Equal(t, 400, status)
	assert.Equal(t, "PRECONDITION_FAILED", body.ErrorCode)

	status, body = call(t, app, "/conflict")
	assert.Equal(t, 409, status)
	assert.Equal(t, "CONFLICT", body.ErrorCode)

	status, body = call(t, app, "/validation")
	assert.Equal(t, 422, status)
	assert.Equal(t, []string{"is required"}, body.Errors["email"])

	status, _ = call(t, app, "/unauth")
	assert.Equal(t, 401, status)
	status, _ = call(t, app, "/forbidden")
	assert.Equal(t, 403, status)

	status, body = call(t, app, "/internal")
	assert.Equal(t, 500, status)
	assert.NotContains(t, body.Message, "db down")

	status, _ = call(t, app, "/plain")
	assert.Equal(t, 500, status)

	status, body = call(t, app, "/fiber")
	assert.Equal(t, 418, status)
	assert.Equal(t, "short and stout", body.Message)
}

type sample struct {
	Email string `json:"email" validate:"required,email"`
	Kind  string `json:"kind" validate:"omitempty,oneof=a b"`
}

func TestValidateStructUsesJSONNames(t *testing.T) {
	err := ValidateStruct(sample{Email: "nope", Kind: "c"})
	require.Error(t, err)

	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, apperr.KindValidation, ae.Kind)
	assert.Equal(t, []string{"must be a valid email"}, ae.Fields["email"])
	assert.Equal(t, []string{"must be one of: a b"}, ae.Fields["kind"])

	assert.NoError(t, ValidateStruct(sample{Email: "a@b.co"}))
}

func TestResolvePaging(t *testing.T) {
	app := fiber.New()
	var got Paging
	app.Get("/", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 25, 100)
		return nil
	})

	_, err := app.Test(httptest.NewRequest("GET", "/?page=3&per_page=10", nil))
	require.NoError(t, err)
	assert.Equal(t, Paging{Page: 3, PerPage: 10, Offset: 20, Limit: 10}, got)

	_, err = app.Test(httptest.NewRequest("GET", "/?page=0&limit=500", nil))
	require.NoError(t, err)
	assert.Equal(t, Paging{Page: 1, PerPage: 100, Offset: 0, Limit: 100}, got)

	_, err = app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 25, got.PerPage)
}

func TestBuildPagination(t *testing.T) {
	p := BuildPagination(45, Paging{Page: 2, PerPage: 20}, 20)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	empty := BuildPagination(0, Paging{Page: 1, PerPage: 20}, 0)
	assert.Equal(t, 1, empty.TotalPages)
	assert.False(t, empty.HasNext)
}
