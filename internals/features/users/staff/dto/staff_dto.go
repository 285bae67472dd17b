package dto

import (
	"time"

	"github.com/google/uuid"

	"frontdesk_backend/internals/features/users/staff/model"
)

type CreateStaffRequest struct {
	FullName string   `json:"full_name" validate:"required,max=200"`
	Email    string   `json:"email" validate:"required,email,max=255"`
	Password string   `json:"password" validate:"required,min=8,max=72"`
	Role     string   `json:"role" validate:"required,oneof=recruiter management admin"`
	Flows    []string `json:"flows,omitempty" validate:"omitempty,dive,oneof=info_session orientation"`
}

type AvailabilityRequest struct {
	Availability string `json:"availability" validate:"required,oneof=available busy"`
}

type StaffDTO struct {
	ID           uuid.UUID `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	Availability string    `json:"availability"`
	Flows        []string  `json:"flows"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

func ToStaffDTO(m model.StaffUserModel) StaffDTO {
	flows := []string(m.StaffUserFlows)
	if flows == nil {
		flows = []string{}
	}
	return StaffDTO{
		ID:           m.StaffUserID,
		FullName:     m.StaffUserFullName,
		Email:        m.StaffUserEmail,
		Role:         m.StaffUserRole,
		Availability: m.StaffUserAvailability,
		Flows:        flows,
		IsActive:     m.StaffUserIsActive,
		CreatedAt:    m.StaffUserCreatedAt,
	}
}

func ToStaffDTOs(rows []model.StaffUserModel) []StaffDTO {
	out := make([]StaffDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToStaffDTO(r))
	}
	return out
}
