package dto

import (
	"time"

	"github.com/google/uuid"

	"frontdesk_backend/internals/features/intake/lifecycle"
	"frontdesk_backend/internals/features/intake/model"
)

// ====================
// Request DTO
// ====================

type RegisterRequest struct {
	FirstName          string            `json:"first_name" validate:"required,max=100"`
	LastName           string            `json:"last_name" validate:"required,max=100"`
	Email              string            `json:"email" validate:"required,email,max=255"`
	Phone              string            `json:"phone" validate:"required,min=7,max=40"`
	ZipCode            *string           `json:"zip_code,omitempty" validate:"omitempty,max=10"`
	SessionType        *string           `json:"session_type,omitempty" validate:"omitempty,oneof=new-hire reactivation"`
	TimeSlot           string            `json:"time_slot" validate:"required,max=40"`
	InterviewResponses map[string]string `json:"interview_responses,omitempty"`
}

// UpdateRequest patches document flags, responses, time slot and status.
// Nil fields are left alone.
type UpdateRequest struct {
	Ob365Sent          *bool             `json:"ob365_sent,omitempty"`
	I9Sent             *bool             `json:"i9_sent,omitempty"`
	ExistingI9         *bool             `json:"existing_i9,omitempty"`
	Ineligible         *bool             `json:"ineligible,omitempty"`
	Rejected           *bool             `json:"rejected,omitempty"`
	DrugScreen         *bool             `json:"drug_screen,omitempty"`
	Questions          *bool             `json:"questions,omitempty"`
	TimeSlot           *string           `json:"time_slot,omitempty" validate:"omitempty,min=1,max=40"`
	Status             *string           `json:"status,omitempty" validate:"omitempty,oneof=registered in-progress completed"`
	InterviewResponses map[string]string `json:"interview_responses,omitempty"`
}

func (r UpdateRequest) HasDocumentFlags() bool {
	return r.Ob365Sent != nil || r.I9Sent != nil || r.ExistingI9 != nil || r.Ineligible != nil ||
		r.Rejected != nil || r.DrugScreen != nil || r.Questions != nil
}

func (r UpdateRequest) IsEmpty() bool {
	return !r.HasDocumentFlags() && r.TimeSlot == nil && r.Status == nil && r.InterviewResponses == nil
}

type ReassignRequest struct {
	RecruiterID string `json:"recruiter_id" validate:"required,uuid"`
}

// ====================
// Response DTO
// ====================

type StepDTO struct {
	StepName        string `json:"step_name"`
	StepDescription string `json:"step_description,omitempty"`
	StepOrder       int    `json:"step_order"`
	IsCompleted     bool   `json:"is_completed"`
}

type RecordDTO struct {
	ID                    uuid.UUID         `json:"id"`
	Flow                  string            `json:"flow"`
	FirstName             string            `json:"first_name"`
	LastName              string            `json:"last_name"`
	Email                 string            `json:"email"`
	Phone                 string            `json:"phone"`
	ZipCode               *string           `json:"zip_code,omitempty"`
	SessionType           *string           `json:"session_type,omitempty"`
	TimeSlot              string            `json:"time_slot"`
	Status                string            `json:"status"`
	AssignedRecruiterID   *uuid.UUID        `json:"assigned_recruiter_id"`
	AssignedRecruiterName *string           `json:"assigned_recruiter_name"`
	DocumentFlags         *DocumentFlagsDTO `json:"document_flags,omitempty"`
	InterviewResponses    map[string]any    `json:"interview_responses,omitempty"`
	Steps                 []StepDTO         `json:"steps"`
	AllStepsCompleted     bool              `json:"all_steps_completed"`
	CreatedAt             time.Time         `json:"created_at"`
	StartedAt             *time.Time        `json:"started_at"`
	CompletedAt           *time.Time        `json:"completed_at"`
	DurationMinutes       *int              `json:"duration_minutes"`
}

type DocumentFlagsDTO struct {
	Ob365Sent  bool `json:"ob365_sent"`
	I9Sent     bool `json:"i9_sent"`
	ExistingI9 bool `json:"existing_i9"`
	Ineligible bool `json:"ineligible"`
	Rejected   bool `json:"rejected"`
	DrugScreen bool `json:"drug_screen"`
	Questions  bool `json:"questions"`
}

type CompleteResponse struct {
	Message string    `json:"message"`
	ID      uuid.UUID `json:"id"`
}

// ====================
// Converter
// ====================

func ToRecordDTO(r model.IntakeRecordModel, withFlags bool) RecordDTO {
	steps := make([]StepDTO, 0, len(r.Steps))
	for _, s := range r.Steps {
		steps = append(steps, StepDTO{
			StepName:        s.IntakeStepName,
			StepDescription: s.IntakeStepDescription,
			StepOrder:       s.IntakeStepOrder,
			IsCompleted:     s.IntakeStepIsCompleted,
		})
	}

	out := RecordDTO{
		ID:                    r.IntakeRecordID,
		Flow:                  r.IntakeRecordFlow,
		FirstName:             r.IntakeRecordFirstName,
		LastName:              r.IntakeRecordLastName,
		Email:                 r.IntakeRecordEmail,
		Phone:                 r.IntakeRecordPhone,
		ZipCode:               r.IntakeRecordZipCode,
		SessionType:           r.IntakeRecordSessionType,
		TimeSlot:              r.IntakeRecordTimeSlot,
		Status:                r.IntakeRecordStatus,
		AssignedRecruiterID:   r.IntakeRecordAssignedRecruiterID,
		AssignedRecruiterName: r.IntakeRecordAssignedRecruiterName,
		Steps:                 steps,
		AllStepsCompleted:     lifecycle.AllCompleted(&r),
		CreatedAt:             r.IntakeRecordCreatedAt,
		StartedAt:             r.IntakeRecordStartedAt,
		CompletedAt:           r.IntakeRecordCompletedAt,
		DurationMinutes:       r.IntakeRecordDurationMinutes,
	}
	if withFlags {
		out.DocumentFlags = &DocumentFlagsDTO{
			Ob365Sent:  r.IntakeRecordOb365Sent,
			I9Sent:     r.IntakeRecordI9Sent,
			ExistingI9: r.IntakeRecordExistingI9,
			Ineligible: r.IntakeRecordIneligible,
			Rejected:   r.IntakeRecordRejected,
			DrugScreen: r.IntakeRecordDrugScreen,
			Questions:  r.IntakeRecordQuestions,
		}
		if len(r.IntakeRecordInterviewResponses) > 0 {
			out.InterviewResponses = map[string]any(r.IntakeRecordInterviewResponses)
		}
	}
	return out
}

func ToRecordDTOs(rows []model.IntakeRecordModel, withFlags bool) []RecordDTO {
	out := make([]RecordDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToRecordDTO(r, withFlags))
	}
	return out
}
