package model

import (
	"time"

	"github.com/google/uuid"
)

// StepTemplateModel is an admin-configured checklist entry copied into every
// new record of its flow (and session type, when set).
type StepTemplateModel struct {
	StepTemplateID          uuid.UUID `gorm:"column:step_template_id;type:uuid;primaryKey"`
	StepTemplateFlow        string    `gorm:"column:step_template_flow;type:varchar(20);not null;uniqueIndex:uq_step_templates_flow_type_name"`
	StepTemplateSessionType *string   `gorm:"column:step_template_session_type;type:varchar(20);uniqueIndex:uq_step_templates_flow_type_name"`
	StepTemplateName        string    `gorm:"column:step_template_name;type:varchar(100);not null;uniqueIndex:uq_step_templates_flow_type_name"`
	StepTemplateDescription string    `gorm:"column:step_template_description;type:text"`
	StepTemplateOrder       int       `gorm:"column:step_template_order;not null;default:0"`
	StepTemplateIsActive    bool      `gorm:"column:step_template_is_active;not null;default:true"`
	StepTemplateCreatedAt   time.Time `gorm:"column:step_template_created_at;autoCreateTime"`
	StepTemplateUpdatedAt   time.Time `gorm:"column:step_template_updated_at;autoUpdateTime"`
}

func (StepTemplateModel) TableName() string {
	return "step_templates"
}

// AppliesTo reports whether the template seeds records of flow/sessionType.
func (t StepTemplateModel) AppliesTo(flow string, sessionType *string) bool {
	if !t.StepTemplateIsActive || t.StepTemplateFlow != flow {
		return false
	}
	if t.StepTemplateSessionType == nil {
		return true
	}
	return sessionType != nil && *sessionType == *t.StepTemplateSessionType
}
