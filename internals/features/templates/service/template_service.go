package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"frontdesk_backend/internals/apperr"
	"frontdesk_backend/internals/constants"
	"frontdesk_backend/internals/features/templates/dto"
	"frontdesk_backend/internals/features/templates/model"
	helper "frontdesk_backend/internals/helpers"
)

type Store interface {
	List(ctx context.Context, flow string, includeInactive bool) ([]model.StepTemplateModel, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.StepTemplateModel, error)
	Exists(ctx context.Context, flow string, sessionType *string, name string, excludeID *uuid.UUID) (bool, error)
	Create(ctx context.Context, row *model.StepTemplateModel) error
	Save(ctx context.Context, row *model.StepTemplateModel) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type TemplateService struct {
	store Store
	log   *zap.Logger
}

func NewTemplateService(store Store, log *zap.Logger) *TemplateService {
	if log == nil {
		log = zap.NewNop()
	}
	return &TemplateService{store: store, log: log.Named("templates")}
}

func (s *TemplateService) List(ctx context.Context, flowSegment string, includeInactive bool) ([]model.StepTemplateModel, error) {
	flow := ""
	if strings.TrimSpace(flowSegment) != "" {
		f, ok := constants.FlowFromPath(flowSegment)
		if !ok {
			return nil, apperr.Validation(map[string][]string{"flow": {"unknown flow"}})
		}
		flow = f
	}
	return s.store.List(ctx, flow, includeInactive)
}

func (s *TemplateService) Create(ctx context.Context, req dto.CreateTemplateRequest) (*model.StepTemplateModel, error) {
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	flow, _ := constants.FlowFromPath(req.Flow)
	if flow == constants.FlowOrientation && req.SessionType != nil {
		return nil, apperr.Validation(map[string][]string{"session_type": {"not used for orientation"}})
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperr.Validation(map[string][]string{"step_name": {"is required"}})
	}

	if err := s.ensureUnique(ctx, flow, req.SessionType, name, nil); err != nil {
		return nil, err
	}

	row := &model.StepTemplateModel{
		StepTemplateID:          uuid.New(),
		StepTemplateFlow:        flow,
		StepTemplateSessionType: req.SessionType,
		StepTemplateName:        name,
		StepTemplateDescription: strings.TrimSpace(req.Description),
		StepTemplateIsActive:    true,
	}
	if req.Order != nil {
		row.StepTemplateOrder = *req.Order
	}
	if req.IsActive != nil {
		row.StepTemplateIsActive = *req.IsActive
	}
	if err := s.store.Create(ctx, row); err != nil {
		return nil, err
	}
	s.log.Info("step template created",
		zap.String("flow", flow),
		zap.String("step", name),
		zap.String("template_id", row.StepTemplateID.String()))
	return row, nil
}

// Update patches a template. Existing records are not touched; their steps
// were copied at registration.
func (s *TemplateService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateTemplateRequest) (*model.StepTemplateModel, error) {
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	row, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperr.Validation(map[string][]string{"step_name": {"is required"}})
		}
		if !strings.EqualFold(name, row.StepTemplateName) {
			if err := s.ensureUnique(ctx, row.StepTemplateFlow, row.StepTemplateSessionType, name, &row.StepTemplateID); err != nil {
				return nil, err
			}
		}
		row.StepTemplateName = name
	}
	if req.Description != nil {
		row.StepTemplateDescription = strings.TrimSpace(*req.Description)
	}
	if req.Order != nil {
		row.StepTemplateOrder = *req.Order
	}
	if req.IsActive != nil {
		row.StepTemplateIsActive = *req.IsActive
	}

	if err := s.store.Save(ctx, row); err != nil {
		return nil, err
	}
	s.log.Info("step template updated", zap.String("template_id", id.String()))
	return row, nil
}

func (s *TemplateService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("step template deleted", zap.String("template_id", id.String()))
	return nil
}

func (s *TemplateService) ensureUnique(ctx context.Context, flow string, sessionType *string, name string, exclude *uuid.UUID) error {
	exists, err := s.store.Exists(ctx, flow, sessionType, name, exclude)
	if err != nil {
		return err
	}
	if exists {
		return apperr.Conflict("step %q already exists for %s", name, flow)
	}
	return nil
}
