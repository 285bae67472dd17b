package service

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"frontdesk_backend/internals/apperr"
	"frontdesk_backend/internals/constants"
	"frontdesk_backend/internals/features/intake/dto"
	"frontdesk_backend/internals/features/intake/model"
	templateModel "frontdesk_backend/internals/features/templates/model"
	helper "frontdesk_backend/internals/helpers"
)

func normalizeRegistration(req dto.RegisterRequest) dto.RegisterRequest {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Phone = strings.TrimSpace(req.Phone)
	req.TimeSlot = strings.TrimSpace(req.TimeSlot)
	req.ZipCode = trimPtr(req.ZipCode)
	return req
}

func validateRegistration(flow string, req dto.RegisterRequest) error {
	if !constants.IsValidFlow(flow) {
		return apperr.NotFound("unknown flow %q", flow)
	}
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}

	fields := map[string][]string{}
	switch flow {
	case constants.FlowInfoSession:
		if req.SessionType == nil {
			fields["session_type"] = append(fields["session_type"], "is required")
		}
		if req.ZipCode == nil || strings.TrimSpace(*req.ZipCode) == "" {
			fields["zip_code"] = append(fields["zip_code"], "is required")
		}
	case constants.FlowOrientation:
		if req.SessionType != nil {
			fields["session_type"] = append(fields["session_type"], "not used for orientation")
		}
		if len(req.InterviewResponses) > 0 {
			fields["interview_responses"] = append(fields["interview_responses"], "not used for orientation")
		}
	}
	if len(fields) > 0 {
		return apperr.Validation(fields)
	}
	return nil
}

// seedSteps copies templates into fresh steps. The first template of a name
// wins, so step names stay unique within the record.
func seedSteps(recordID uuid.UUID, templates []templateModel.StepTemplateModel) []model.IntakeStepModel {
	seen := make(map[string]bool, len(templates))
	steps := make([]model.IntakeStepModel, 0, len(templates))
	for _, t := range templates {
		if seen[t.StepTemplateName] {
			continue
		}
		seen[t.StepTemplateName] = true
		steps = append(steps, model.IntakeStepModel{
			IntakeStepID:          uuid.New(),
			IntakeStepRecordID:    recordID,
			IntakeStepName:        t.StepTemplateName,
			IntakeStepDescription: t.StepTemplateDescription,
			IntakeStepOrder:       len(steps) + 1,
		})
	}
	return steps
}

func applyFlags(rec *model.IntakeRecordModel, req dto.UpdateRequest) {
	set := func(dst *bool, v *bool) {
		if v != nil {
			*dst = *v
		}
	}
	set(&rec.IntakeRecordOb365Sent, req.Ob365Sent)
	set(&rec.IntakeRecordI9Sent, req.I9Sent)
	set(&rec.IntakeRecordExistingI9, req.ExistingI9)
	set(&rec.IntakeRecordIneligible, req.Ineligible)
	set(&rec.IntakeRecordRejected, req.Rejected)
	set(&rec.IntakeRecordDrugScreen, req.DrugScreen)
	set(&rec.IntakeRecordQuestions, req.Questions)
}

func toJSONMap(in map[string]string) datatypes.JSONMap {
	out := make(datatypes.JSONMap, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
