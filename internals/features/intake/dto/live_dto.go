package dto

import (
	"github.com/google/uuid"

	"frontdesk_backend/internals/features/intake/model"
	staffModel "frontdesk_backend/internals/features/users/staff/model"
)

type RecruiterSummaryDTO struct {
	ID           uuid.UUID `json:"id"`
	FullName     string    `json:"full_name"`
	Availability string    `json:"availability"`
	Flows        []string  `json:"flows"`
}

type LiveBoardDTO struct {
	InfoSessions []RecordDTO           `json:"info_sessions"`
	Orientations []RecordDTO           `json:"orientations"`
	Recruiters   []RecruiterSummaryDTO `json:"recruiters"`
}

func ToLiveBoardDTO(sessions, orientations []model.IntakeRecordModel, recruiters []staffModel.StaffUserModel) LiveBoardDTO {
	out := LiveBoardDTO{
		InfoSessions: ToRecordDTOs(sessions, true),
		Orientations: ToRecordDTOs(orientations, false),
		Recruiters:   make([]RecruiterSummaryDTO, 0, len(recruiters)),
	}
	for _, r := range recruiters {
		flows := []string(r.StaffUserFlows)
		if flows == nil {
			flows = []string{}
		}
		out.Recruiters = append(out.Recruiters, RecruiterSummaryDTO{
			ID:           r.StaffUserID,
			FullName:     r.StaffUserFullName,
			Availability: r.StaffUserAvailability,
			Flows:        flows,
		})
	}
	return out
}
