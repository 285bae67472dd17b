package model

import "github.com/google/uuid"

// IntakeStepModel is one checklist item. Only IntakeStepIsCompleted changes
// after the record is created.
type IntakeStepModel struct {
	IntakeStepID          uuid.UUID `gorm:"column:intake_step_id;type:uuid;primaryKey"`
	IntakeStepRecordID    uuid.UUID `gorm:"column:intake_step_record_id;type:uuid;not null;uniqueIndex:uq_intake_steps_record_name"`
	IntakeStepName        string    `gorm:"column:intake_step_name;type:varchar(100);not null;uniqueIndex:uq_intake_steps_record_name"`
	IntakeStepDescription string    `gorm:"column:intake_step_description;type:text"`
	IntakeStepOrder       int       `gorm:"column:intake_step_order;not null"`
	IntakeStepIsCompleted bool      `gorm:"column:intake_step_is_completed;not null;default:false"`
}

func (IntakeStepModel) TableName() string {
	return "intake_steps"
}
