// Package repotest provides in-memory stores with the same semantics as the
// GORM repositories, for service and handler tests.
package repotest

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"frontdesk_backend/internals/apperr"
	"frontdesk_backend/internals/constants"
	"frontdesk_backend/internals/features/intake/model"
	"frontdesk_backend/internals/features/intake/repository"
	templateModel "frontdesk_backend/internals/features/templates/model"
	staffModel "frontdesk_backend/internals/features/users/staff/model"
)

// Records is a mutex-guarded record store. Mutate holds the lock for the
// whole callback, like the row lock in RecordRepository.
type Records struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*model.IntakeRecordModel
	// FailNext, when set, is returned by the next call and then cleared.
	FailNext error
}

func NewRecords() *Records {
	return &Records{rows: map[uuid.UUID]*model.IntakeRecordModel{}}
}

func (s *Records) takeFailure() error {
	err := s.FailNext
	s.FailNext = nil
	return err
}

func (s *Records) Create(_ context.Context, rec *model.IntakeRecordModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return err
	}
	if _, ok := s.rows[rec.IntakeRecordID]; ok {
		return apperr.Conflict("record %s already exists", rec.IntakeRecordID)
	}
	s.rows[rec.IntakeRecordID] = clone(rec)
	return nil
}

func (s *Records) FindByID(_ context.Context, flow string, id uuid.UUID) (*model.IntakeRecordModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return nil, err
	}
	rec, ok := s.rows[id]
	if !ok || rec.IntakeRecordFlow != flow {
		return nil, apperr.NotFound("record %s not found", id)
	}
	return clone(rec), nil
}

func (s *Records) List(_ context.Context, f repository.ListFilter) ([]model.IntakeRecordModel, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return nil, 0, err
	}

	var out []model.IntakeRecordModel
	for _, rec := range s.rows {
		if matches(rec, f) {
			out = append(out, *clone(rec))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].IntakeRecordCreatedAt.Before(out[j].IntakeRecordCreatedAt)
	})
	total := int64(len(out))
	if f.Limit > 0 {
		if f.Offset >= len(out) {
			return []model.IntakeRecordModel{}, total, nil
		}
		end := f.Offset + f.Limit
		if end > len(out) {
			end = len(out)
		}
		out = out[f.Offset:end]
	}
	return out, total, nil
}

func (s *Records) Mutate(_ context.Context, flow string, id uuid.UUID, fn func(rec *model.IntakeRecordModel) error) (*model.IntakeRecordModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return nil, err
	}
	stored, ok := s.rows[id]
	if !ok || stored.IntakeRecordFlow != flow {
		return nil, apperr.NotFound("record %s not found", id)
	}
	work := clone(stored)
	if err := fn(work); err != nil {
		return nil, err
	}
	work.IntakeRecordUpdatedAt = time.Now().UTC()
	s.rows[id] = clone(work)
	return work, nil
}

func (s *Records) Delete(_ context.Context, flow string, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return err
	}
	rec, ok := s.rows[id]
	if !ok || rec.IntakeRecordFlow != flow {
		return apperr.NotFound("record %s not found", id)
	}
	delete(s.rows, id)
	return nil
}

func matches(rec *model.IntakeRecordModel, f repository.ListFilter) bool {
	if f.Flow != "" && rec.IntakeRecordFlow != f.Flow {
		return false
	}
	if f.Status != "" && rec.IntakeRecordStatus != f.Status {
		return false
	}
	if f.ActiveOnly && rec.IntakeRecordStatus == model.StatusCompleted {
		return false
	}
	if f.RecruiterID != nil && (rec.IntakeRecordAssignedRecruiterID == nil || *rec.IntakeRecordAssignedRecruiterID != *f.RecruiterID) {
		return false
	}
	if f.CreatedOn != nil {
		day := f.CreatedOn.UTC().Truncate(24 * time.Hour)
		c := rec.IntakeRecordCreatedAt.UTC()
		if c.Before(day) || !c.Before(day.Add(24*time.Hour)) {
			return false
		}
	}
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		hay := strings.ToLower(rec.IntakeRecordFirstName + " " + rec.IntakeRecordLastName + " " + rec.IntakeRecordEmail)
		if !strings.Contains(hay, q) {
			return false
		}
	}
	return true
}

func clone(rec *model.IntakeRecordModel) *model.IntakeRecordModel {
	cp := *rec
	cp.Steps = append([]model.IntakeStepModel(nil), rec.Steps...)
	if rec.IntakeRecordInterviewResponses != nil {
		cp.IntakeRecordInterviewResponses = make(map[string]interface{}, len(rec.IntakeRecordInterviewResponses))
		for k, v := range rec.IntakeRecordInterviewResponses {
			cp.IntakeRecordInterviewResponses[k] = v
		}
	}
	return &cp
}

// Templates serves step templates from a slice.
type Templates struct {
	Rows []templateModel.StepTemplateModel
}

func (t *Templates) ActiveTemplates(_ context.Context, flow string, sessionType *string) ([]templateModel.StepTemplateModel, error) {
	var out []templateModel.StepTemplateModel
	for _, row := range t.Rows {
		if row.AppliesTo(flow, sessionType) {
			out = append(out, row)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StepTemplateOrder < out[j].StepTemplateOrder
	})
	return out, nil
}

// DefaultTemplates returns three info-session steps and two orientation steps.
func DefaultTemplates() *Templates {
	mk := func(flow, name string, order int) templateModel.StepTemplateModel {
		return templateModel.StepTemplateModel{
			StepTemplateID:       uuid.New(),
			StepTemplateFlow:     flow,
			StepTemplateName:     name,
			StepTemplateOrder:    order,
			StepTemplateIsActive: true,
		}
	}
	return &Templates{Rows: []templateModel.StepTemplateModel{
		mk(constants.FlowInfoSession, "watch-video", 1),
		mk(constants.FlowInfoSession, "application", 2),
		mk(constants.FlowInfoSession, "interview-questions", 3),
		mk(constants.FlowOrientation, "policies", 1),
		mk(constants.FlowOrientation, "safety-video", 2),
	}}
}

// Staff is an in-memory recruiter directory.
type Staff struct {
	mu   sync.Mutex
	Rows map[uuid.UUID]*staffModel.StaffUserModel
}

func NewStaff(users ...staffModel.StaffUserModel) *Staff {
	s := &Staff{Rows: map[uuid.UUID]*staffModel.StaffUserModel{}}
	for i := range users {
		u := users[i]
		s.Rows[u.StaffUserID] = &u
	}
	return s
}

// Recruiter builds an active recruiter account with a fresh id.
func Recruiter(name string) staffModel.StaffUserModel {
	return staffModel.StaffUserModel{
		StaffUserID:           uuid.New(),
		StaffUserFullName:     name,
		StaffUserEmail:        strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@example.com",
		StaffUserRole:         constants.RoleRecruiter,
		StaffUserAvailability: constants.AvailabilityAvailable,
		StaffUserIsActive:     true,
	}
}

func (s *Staff) FindRecruiter(_ context.Context, id uuid.UUID) (*staffModel.StaffUserModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.Rows[id]
	if !ok || !u.StaffUserIsActive {
		return nil, apperr.NotFound("recruiter %s not found", id)
	}
	cp := *u
	return &cp, nil
}

func (s *Staff) ListRecruiters(_ context.Context) ([]staffModel.StaffUserModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []staffModel.StaffUserModel
	for _, u := range s.Rows {
		if u.StaffUserIsActive && u.StaffUserRole == constants.RoleRecruiter {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StaffUserFullName < out[j].StaffUserFullName })
	return out, nil
}
