package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"frontdesk_backend/internals/apperr"
	"frontdesk_backend/internals/constants"
	"frontdesk_backend/internals/events"
	"frontdesk_backend/internals/features/intake/dto"
	"frontdesk_backend/internals/features/intake/lifecycle"
	"frontdesk_backend/internals/features/intake/model"
	"frontdesk_backend/internals/features/intake/repository"
	templateModel "frontdesk_backend/internals/features/templates/model"
	staffModel "frontdesk_backend/internals/features/users/staff/model"
	"frontdesk_backend/internals/metrics"
)

type RecordStore interface {
	Create(ctx context.Context, rec *model.IntakeRecordModel) error
	FindByID(ctx context.Context, flow string, id uuid.UUID) (*model.IntakeRecordModel, error)
	List(ctx context.Context, f repository.ListFilter) ([]model.IntakeRecordModel, int64, error)
	Mutate(ctx context.Context, flow string, id uuid.UUID, fn func(rec *model.IntakeRecordModel) error) (*model.IntakeRecordModel, error)
	Delete(ctx context.Context, flow string, id uuid.UUID) error
}

type TemplateSource interface {
	ActiveTemplates(ctx context.Context, flow string, sessionType *string) ([]templateModel.StepTemplateModel, error)
}

type RecruiterDirectory interface {
	FindRecruiter(ctx context.Context, id uuid.UUID) (*staffModel.StaffUserModel, error)
	ListRecruiters(ctx context.Context) ([]staffModel.StaffUserModel, error)
}

type IntakeService struct {
	records   RecordStore
	templates TemplateSource
	staff     RecruiterDirectory
	events    events.Publisher
	log       *zap.Logger
	now       func() time.Time
}

type Option func(*IntakeService)

func WithClock(now func() time.Time) Option {
	return func(s *IntakeService) { s.now = now }
}

func NewIntakeService(records RecordStore, templates TemplateSource, staff RecruiterDirectory, pub events.Publisher, log *zap.Logger, opts ...Option) *IntakeService {
	if pub == nil {
		pub = events.NopPublisher{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	s := &IntakeService{
		records:   records,
		templates: templates,
		staff:     staff,
		events:    pub,
		log:       log.Named("intake"),
		now:       time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Register creates a record in status registered with its checklist copied
// from the active step templates of the flow.
func (s *IntakeService) Register(ctx context.Context, flow string, req dto.RegisterRequest) (*model.IntakeRecordModel, error) {
	req = normalizeRegistration(req)
	if err := validateRegistration(flow, req); err != nil {
		return nil, err
	}

	templates, err := s.templates.ActiveTemplates(ctx, flow, req.SessionType)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	steps := seedSteps(id, templates)
	if len(steps) == 0 {
		return nil, apperr.PreconditionFailed("no active checklist configured for %s", flow)
	}

	rec := &model.IntakeRecordModel{
		IntakeRecordID:        id,
		IntakeRecordFlow:      flow,
		IntakeRecordFirstName: req.FirstName,
		IntakeRecordLastName:  req.LastName,
		IntakeRecordEmail:     req.Email,
		IntakeRecordPhone:     req.Phone,
		IntakeRecordTimeSlot:  req.TimeSlot,
		IntakeRecordStatus:    model.StatusRegistered,
		IntakeRecordCreatedAt: s.now().UTC(),
		Steps:                 steps,
	}
	if flow == constants.FlowInfoSession {
		rec.IntakeRecordZipCode = req.ZipCode
		rec.IntakeRecordSessionType = req.SessionType
		if len(req.InterviewResponses) > 0 {
			rec.IntakeRecordInterviewResponses = toJSONMap(req.InterviewResponses)
		}
	}

	if err := s.records.Create(ctx, rec); err != nil {
		return nil, err
	}

	metrics.IntakeRegistrations.WithLabelValues(flow).Inc()
	s.log.Info("intake registered",
		zap.String("flow", flow),
		zap.String("record_id", id.String()),
		zap.Int("steps", len(steps)))
	s.publish(ctx, events.TypeRegistered, rec, nil)
	return rec, nil
}

func (s *IntakeService) Get(ctx context.Context, flow string, id uuid.UUID) (*model.IntakeRecordModel, error) {
	return s.records.FindByID(ctx, flow, id)
}

func (s *IntakeService) List(ctx context.Context, f repository.ListFilter) ([]model.IntakeRecordModel, int64, error) {
	if f.Status != "" && !model.IsValidStatus(f.Status) {
		return nil, 0, apperr.Validation(map[string][]string{"status": {"must be one of registered, in-progress, completed"}})
	}
	return s.records.List(ctx, f)
}

// RecruiterRecords lists the records currently assigned to a recruiter.
func (s *IntakeService) RecruiterRecords(ctx context.Context, recruiterID uuid.UUID, activeOnly bool) ([]model.IntakeRecordModel, error) {
	if _, err := s.staff.FindRecruiter(ctx, recruiterID); err != nil {
		return nil, err
	}
	rows, _, err := s.records.List(ctx, repository.ListFilter{RecruiterID: &recruiterID, ActiveOnly: activeOnly})
	return rows, err
}

type LiveBoard struct {
	InfoSessions []model.IntakeRecordModel
	Orientations []model.IntakeRecordModel
	Recruiters   []staffModel.StaffUserModel
}

// Live collects everything the staff dashboards poll for: active records of
// both flows and recruiter availability.
func (s *IntakeService) Live(ctx context.Context) (*LiveBoard, error) {
	board := &LiveBoard{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, _, err := s.records.List(gctx, repository.ListFilter{Flow: constants.FlowInfoSession, ActiveOnly: true})
		board.InfoSessions = rows
		return err
	})
	g.Go(func() error {
		rows, _, err := s.records.List(gctx, repository.ListFilter{Flow: constants.FlowOrientation, ActiveOnly: true})
		board.Orientations = rows
		return err
	})
	g.Go(func() error {
		rows, err := s.staff.ListRecruiters(gctx)
		board.Recruiters = rows
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return board, nil
}

// CompleteStep marks one checklist step done. Completing a step twice is
// not an error.
func (s *IntakeService) CompleteStep(ctx context.Context, flow string, id uuid.UUID, stepName string) (*model.IntakeRecordModel, error) {
	var changed bool
	rec, err := s.records.Mutate(ctx, flow, id, func(rec *model.IntakeRecordModel) error {
		var err error
		changed, err = lifecycle.CompleteStep(rec, stepName)
		return err
	})
	s.observe(flow, "complete_step", err)
	if err != nil {
		return nil, err
	}
	if changed {
		s.log.Info("step completed",
			zap.String("flow", flow),
			zap.String("record_id", id.String()),
			zap.String("step", stepName),
			zap.Bool("all_completed", lifecycle.AllCompleted(rec)))
		s.publishStep(ctx, rec, stepName)
	}
	return rec, nil
}

// Complete is the visitor-facing completion.
func (s *IntakeService) Complete(ctx context.Context, flow string, id uuid.UUID) (*model.IntakeRecordModel, error) {
	rec, err := s.records.Mutate(ctx, flow, id, func(rec *model.IntakeRecordModel) error {
		return lifecycle.Complete(rec, s.now())
	})
	return s.afterTransition(ctx, flow, "complete", events.TypeCompleted, rec, err, nil)
}

// CompleteAsRecruiter is completion from a recruiter dashboard; a record held
// by another recruiter is a conflict.
func (s *IntakeService) CompleteAsRecruiter(ctx context.Context, flow string, id, recruiterID uuid.UUID) (*model.IntakeRecordModel, error) {
	if _, err := s.staff.FindRecruiter(ctx, recruiterID); err != nil {
		return nil, err
	}
	rec, err := s.records.Mutate(ctx, flow, id, func(rec *model.IntakeRecordModel) error {
		if err := ensureNotHeldByOther(rec, recruiterID); err != nil {
			return err
		}
		return lifecycle.Complete(rec, s.now())
	})
	return s.afterTransition(ctx, flow, "complete", events.TypeCompleted, rec, err, &recruiterID)
}

// Start begins processing on behalf of recruiterID.
func (s *IntakeService) Start(ctx context.Context, flow string, id, recruiterID uuid.UUID) (*model.IntakeRecordModel, error) {
	recruiter, err := s.staff.FindRecruiter(ctx, recruiterID)
	if err != nil {
		return nil, err
	}
	var changed bool
	rec, err := s.records.Mutate(ctx, flow, id, func(rec *model.IntakeRecordModel) error {
		var err error
		changed, err = lifecycle.Start(rec, recruiter.StaffUserID, recruiter.StaffUserFullName, s.now())
		return err
	})
	if err == nil && !changed {
		// already started by this recruiter
		return rec, nil
	}
	return s.afterTransition(ctx, flow, "start", events.TypeStarted, rec, err, &recruiterID)
}

func (s *IntakeService) Reopen(ctx context.Context, flow string, id, recruiterID uuid.UUID) (*model.IntakeRecordModel, error) {
	if _, err := s.staff.FindRecruiter(ctx, recruiterID); err != nil {
		return nil, err
	}
	rec, err := s.records.Mutate(ctx, flow, id, func(rec *model.IntakeRecordModel) error {
		return lifecycle.Reopen(rec)
	})
	return s.afterTransition(ctx, flow, "reopen", events.TypeReopened, rec, err, &recruiterID)
}

// Reassign hands the record to targetID. The previous recruiter is not
// consulted; the last writer wins.
func (s *IntakeService) Reassign(ctx context.Context, flow string, id, actorID, targetID uuid.UUID) (*model.IntakeRecordModel, error) {
	if _, err := s.staff.FindRecruiter(ctx, actorID); err != nil {
		return nil, err
	}
	target, err := s.staff.FindRecruiter(ctx, targetID)
	if err != nil {
		return nil, err
	}
	rec, err := s.records.Mutate(ctx, flow, id, func(rec *model.IntakeRecordModel) error {
		lifecycle.AssignRecruiter(rec, target.StaffUserID, target.StaffUserFullName)
		return nil
	})
	return s.afterTransition(ctx, flow, "reassign", events.TypeReassigned, rec, err, &targetID)
}

// Update patches document flags, interview responses, time slot and status.
// A status change goes through the lifecycle transitions.
func (s *IntakeService) Update(ctx context.Context, flow string, id, recruiterID uuid.UUID, req dto.UpdateRequest) (*model.IntakeRecordModel, error) {
	if req.IsEmpty() {
		return nil, apperr.Validation(map[string][]string{"body": {"nothing to update"}})
	}
	if flow != constants.FlowInfoSession && (req.HasDocumentFlags() || req.InterviewResponses != nil) {
		return nil, apperr.Validation(map[string][]string{"document_flags": {"only info sessions carry document flags and interview responses"}})
	}
	recruiter, err := s.staff.FindRecruiter(ctx, recruiterID)
	if err != nil {
		return nil, err
	}

	rec, err := s.records.Mutate(ctx, flow, id, func(rec *model.IntakeRecordModel) error {
		applyFlags(rec, req)
		if req.TimeSlot != nil {
			rec.IntakeRecordTimeSlot = strings.TrimSpace(*req.TimeSlot)
		}
		if req.InterviewResponses != nil {
			rec.IntakeRecordInterviewResponses = toJSONMap(req.InterviewResponses)
		}
		if req.Status != nil {
			_, err := lifecycle.ApplyStatusOverride(rec, *req.Status, recruiter.StaffUserID, recruiter.StaffUserFullName, s.now())
			return err
		}
		return nil
	})
	return s.afterTransition(ctx, flow, "update", events.TypeUpdated, rec, err, &recruiterID)
}

func (s *IntakeService) Delete(ctx context.Context, flow string, id uuid.UUID) error {
	err := s.records.Delete(ctx, flow, id)
	s.observe(flow, "delete", err)
	if err != nil {
		return err
	}
	s.log.Info("intake deleted", zap.String("flow", flow), zap.String("record_id", id.String()))
	events.Publish(ctx, s.events, s.log, events.Event{
		Type:       events.TypeDeleted,
		Flow:       flow,
		RecordID:   id,
		OccurredAt: s.now().UTC(),
	})
	return nil
}

func (s *IntakeService) afterTransition(ctx context.Context, flow, transition, eventType string, rec *model.IntakeRecordModel, err error, recruiterID *uuid.UUID) (*model.IntakeRecordModel, error) {
	s.observe(flow, transition, err)
	if err != nil {
		return nil, err
	}
	fields := []zap.Field{
		zap.String("flow", flow),
		zap.String("transition", transition),
		zap.String("record_id", rec.IntakeRecordID.String()),
		zap.String("status", rec.IntakeRecordStatus),
	}
	if rec.IntakeRecordDurationMinutes != nil {
		fields = append(fields, zap.Int("duration_minutes", *rec.IntakeRecordDurationMinutes))
	}
	s.log.Info("intake transition", fields...)
	s.publish(ctx, eventType, rec, recruiterID)
	return rec, nil
}

func (s *IntakeService) observe(flow, transition string, err error) {
	if err == nil {
		metrics.IntakeTransitions.WithLabelValues(flow, transition).Inc()
		return
	}
	kind := apperr.KindOf(err)
	metrics.IntakeRejections.WithLabelValues(flow, transition, kind.String()).Inc()
	if kind == apperr.KindInternal {
		s.log.Error("intake transition failed",
			zap.String("flow", flow),
			zap.String("transition", transition),
			zap.Error(err))
	}
}

func (s *IntakeService) publish(ctx context.Context, eventType string, rec *model.IntakeRecordModel, recruiterID *uuid.UUID) {
	events.Publish(ctx, s.events, s.log, events.Event{
		Type:        eventType,
		Flow:        rec.IntakeRecordFlow,
		RecordID:    rec.IntakeRecordID,
		Status:      rec.IntakeRecordStatus,
		RecruiterID: recruiterID,
		OccurredAt:  s.now().UTC(),
	})
}

func (s *IntakeService) publishStep(ctx context.Context, rec *model.IntakeRecordModel, stepName string) {
	events.Publish(ctx, s.events, s.log, events.Event{
		Type:       events.TypeStepCompleted,
		Flow:       rec.IntakeRecordFlow,
		RecordID:   rec.IntakeRecordID,
		Status:     rec.IntakeRecordStatus,
		StepName:   stepName,
		OccurredAt: s.now().UTC(),
	})
}

func ensureNotHeldByOther(rec *model.IntakeRecordModel, recruiterID uuid.UUID) error {
	if rec.IntakeRecordAssignedRecruiterID != nil && *rec.IntakeRecordAssignedRecruiterID != recruiterID {
		name := "another recruiter"
		if rec.IntakeRecordAssignedRecruiterName != nil {
			name = *rec.IntakeRecordAssignedRecruiterName
		}
		return apperr.Conflict("record is assigned to %s", name)
	}
	return nil
}
