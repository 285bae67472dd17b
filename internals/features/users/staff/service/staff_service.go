package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"frontdesk_backend/internals/apperr"
	"frontdesk_backend/internals/constants"
	authService "frontdesk_backend/internals/features/users/auth/service"
	"frontdesk_backend/internals/features/users/staff/dto"
	"frontdesk_backend/internals/features/users/staff/model"
	helper "frontdesk_backend/internals/helpers"
)

type Store interface {
	List(ctx context.Context, includeInactive bool) ([]model.StaffUserModel, error)
	FindByEmail(ctx context.Context, email string) (*model.StaffUserModel, error)
	Create(ctx context.Context, u *model.StaffUserModel) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	SetAvailability(ctx context.Context, id uuid.UUID, availability string) (*model.StaffUserModel, error)
}

type StaffService struct {
	store Store
	log   *zap.Logger
}

func NewStaffService(store Store, log *zap.Logger) *StaffService {
	if log == nil {
		log = zap.NewNop()
	}
	return &StaffService{store: store, log: log.Named("staff")}
}

func (s *StaffService) List(ctx context.Context, includeInactive bool) ([]model.StaffUserModel, error) {
	return s.store.List(ctx, includeInactive)
}

// Create adds a staff account. Flows default to both when omitted.
func (s *StaffService) Create(ctx context.Context, req dto.CreateStaffRequest) (*model.StaffUserModel, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.FullName = strings.TrimSpace(req.FullName)
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}

	if _, err := s.store.FindByEmail(ctx, req.Email); err == nil {
		return nil, apperr.Conflict("email %s is already registered", req.Email)
	} else if !apperr.IsKind(err, apperr.KindNotFound) {
		return nil, err
	}

	hash, err := authService.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	flows := req.Flows
	if len(flows) == 0 {
		flows = append([]string(nil), constants.Flows...)
	}

	u := &model.StaffUserModel{
		StaffUserID:           uuid.New(),
		StaffUserFullName:     req.FullName,
		StaffUserEmail:        req.Email,
		StaffUserPasswordHash: hash,
		StaffUserRole:         req.Role,
		StaffUserAvailability: constants.AvailabilityAvailable,
		StaffUserFlows:        pq.StringArray(flows),
		StaffUserIsActive:     true,
	}
	if err := s.store.Create(ctx, u); err != nil {
		return nil, err
	}
	s.log.Info("staff created",
		zap.String("staff_id", u.StaffUserID.String()),
		zap.String("role", u.StaffUserRole))
	return u, nil
}

func (s *StaffService) Deactivate(ctx context.Context, actorID, id uuid.UUID) error {
	if actorID == id {
		return apperr.PreconditionFailed("you cannot deactivate your own account")
	}
	if err := s.store.Deactivate(ctx, id); err != nil {
		return err
	}
	s.log.Info("staff deactivated", zap.String("staff_id", id.String()))
	return nil
}

// SetAvailability records the recruiter's self-reported state. It is shown
// on dashboards only; start and reassign never consult it.
func (s *StaffService) SetAvailability(ctx context.Context, id uuid.UUID, req dto.AvailabilityRequest) (*model.StaffUserModel, error) {
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	u, err := s.store.SetAvailability(ctx, id, req.Availability)
	if err != nil {
		return nil, err
	}
	s.log.Info("availability changed",
		zap.String("staff_id", id.String()),
		zap.String("availability", req.Availability))
	return u, nil
}
