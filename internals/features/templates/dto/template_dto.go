package dto

import (
	"time"

	"github.com/google/uuid"

	"frontdesk_backend/internals/features/templates/model"
)

type CreateTemplateRequest struct {
	Flow        string  `json:"flow" validate:"required,oneof=info_session orientation sessions orientations"`
	SessionType *string `json:"session_type,omitempty" validate:"omitempty,oneof=new-hire reactivation"`
	Name        string  `json:"step_name" validate:"required,max=100,excludesall=/"`
	Description string  `json:"step_description" validate:"max=2000"`
	Order       *int    `json:"step_order,omitempty" validate:"omitempty,min=0"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// UpdateTemplateRequest is a partial update; flow and session type are fixed
// once created.
type UpdateTemplateRequest struct {
	Name        *string `json:"step_name,omitempty" validate:"omitempty,min=1,max=100,excludesall=/"`
	Description *string `json:"step_description,omitempty" validate:"omitempty,max=2000"`
	Order       *int    `json:"step_order,omitempty" validate:"omitempty,min=0"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

type TemplateDTO struct {
	ID          uuid.UUID `json:"id"`
	Flow        string    `json:"flow"`
	SessionType *string   `json:"session_type"`
	Name        string    `json:"step_name"`
	Description string    `json:"step_description"`
	Order       int       `json:"step_order"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToTemplateDTO(m model.StepTemplateModel) TemplateDTO {
	return TemplateDTO{
		ID:          m.StepTemplateID,
		Flow:        m.StepTemplateFlow,
		SessionType: m.StepTemplateSessionType,
		Name:        m.StepTemplateName,
		Description: m.StepTemplateDescription,
		Order:       m.StepTemplateOrder,
		IsActive:    m.StepTemplateIsActive,
		CreatedAt:   m.StepTemplateCreatedAt,
		UpdatedAt:   m.StepTemplateUpdatedAt,
	}
}

func ToTemplateDTOs(rows []model.StepTemplateModel) []TemplateDTO {
	out := make([]TemplateDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToTemplateDTO(r))
	}
	return out
}
