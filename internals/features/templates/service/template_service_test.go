package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"frontdesk_backend/internals/apperr"
	"frontdesk_backend/internals/constants"
	"frontdesk_backend/internals/features/templates/dto"
	"frontdesk_backend/internals/features/templates/model"
)

type memStore struct {
	rows map[uuid.UUID]model.StepTemplateModel
}

func newMemStore() *memStore { return &memStore{rows: map[uuid.UUID]model.StepTemplateModel{}} }

func (m *memStore) List(_ context.Context, flow string, includeInactive bool) ([]model.StepTemplateModel, error) {
	var out []model.StepTemplateModel
	for _, r := range m.rows {
		if (flow == "" || r.StepTemplateFlow == flow) && (includeInactive || r.StepTemplateIsActive) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memStore) FindByID(_ context.Context, id uuid.UUID) (*model.StepTemplateModel, error) {
	r, ok := m.rows[id]
	if !ok {
		return nil, apperr.NotFound("step template %s not found", id)
	}
	return &r, nil
}

func (m *memStore) Exists(_ context.Context, flow string, sessionType *string, name string, excludeID *uuid.UUID) (bool, error) {
	for _, r := range m.rows {
		if excludeID != nil && r.StepTemplateID == *excludeID {
			continue
		}
		sameType := (sessionType == nil && r.StepTemplateSessionType == nil) ||
			(sessionType != nil && r.StepTemplateSessionType != nil && *sessionType == *r.StepTemplateSessionType)
		if r.StepTemplateFlow == flow && sameType && strings.EqualFold(r.StepTemplateName, name) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) Create(_ context.Context, row *model.StepTemplateModel) error {
	m.rows[row.StepTemplateID] = *row
	return nil
}

func (m *memStore) Save(_ context.Context, row *model.StepTemplateModel) error {
	m.rows[row.StepTemplateID] = *row
	return nil
}

func (m *memStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.rows[id]; !ok {
		return apperr.NotFound("step template %s not found", id)
	}
	delete(m.rows, id)
	return nil
}

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestCreateTemplate(t *testing.T) {
	svc := NewTemplateService(newMemStore(), zap.NewNop())
	ctx := context.Background()

	row, err := svc.Create(ctx, dto.CreateTemplateRequest{
		Flow:        "sessions",
		SessionType: strPtr(constants.SessionTypeReactivation),
		Name:        " i9-review ",
		Order:       intPtr(4),
	})
	require.NoError(t, err)
	assert.Equal(t, constants.FlowInfoSession, row.StepTemplateFlow)
	assert.Equal(t, "i9-review", row.StepTemplateName)
	assert.Equal(t, 4, row.StepTemplateOrder)
	assert.True(t, row.StepTemplateIsActive)

	_, err = svc.Create(ctx, dto.CreateTemplateRequest{
		Flow:        constants.FlowInfoSession,
		SessionType: strPtr(constants.SessionTypeReactivation),
		Name:        "I9-Review",
	})
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))

	// same name for another session type is fine
	_, err = svc.Create(ctx, dto.CreateTemplateRequest{Flow: constants.FlowInfoSession, Name: "i9-review"})
	require.NoError(t, err)
}

func TestCreateTemplateValidation(t *testing.T) {
	svc := NewTemplateService(newMemStore(), zap.NewNop())
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.CreateTemplateRequest{Flow: "badges", Name: "x"})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, err = svc.Create(ctx, dto.CreateTemplateRequest{
		Flow:        constants.FlowOrientation,
		SessionType: strPtr(constants.SessionTypeNewHire),
		Name:        "policies",
	})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, err = svc.Create(ctx, dto.CreateTemplateRequest{Flow: constants.FlowOrientation, Name: "   "})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	// a slash would split the step_name path segment
	_, err = svc.Create(ctx, dto.CreateTemplateRequest{Flow: constants.FlowOrientation, Name: "policies/safety"})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, err = svc.Create(ctx, dto.CreateTemplateRequest{Flow: constants.FlowOrientation, Name: "Watch Video"})
	assert.NoError(t, err)
}

func TestUpdateAndDeleteTemplate(t *testing.T) {
	store := newMemStore()
	svc := NewTemplateService(store, zap.NewNop())
	ctx := context.Background()

	a, err := svc.Create(ctx, dto.CreateTemplateRequest{Flow: constants.FlowOrientation, Name: "policies"})
	require.NoError(t, err)
	b, err := svc.Create(ctx, dto.CreateTemplateRequest{Flow: constants.FlowOrientation, Name: "safety-video"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, b.StepTemplateID, dto.UpdateTemplateRequest{Name: strPtr("Policies")})
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))

	updated, err := svc.Update(ctx, a.StepTemplateID, dto.UpdateTemplateRequest{IsActive: boolPtr(false), Order: intPtr(9)})
	require.NoError(t, err)
	assert.False(t, updated.StepTemplateIsActive)
	assert.Equal(t, 9, updated.StepTemplateOrder)

	active, err := svc.List(ctx, "orientations", false)
	require.NoError(t, err)
	assert.Len(t, active, 1)
	all, err := svc.List(ctx, "", true)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = svc.List(ctx, "badges", false)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	require.NoError(t, svc.Delete(ctx, a.StepTemplateID))
	assert.True(t, apperr.IsKind(svc.Delete(ctx, a.StepTemplateID), apperr.KindNotFound))

	_, err = svc.Update(ctx, a.StepTemplateID, dto.UpdateTemplateRequest{Order: intPtr(1)})
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}
