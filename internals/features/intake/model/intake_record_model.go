package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	StatusRegistered = "registered"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

func IsValidStatus(s string) bool {
	return s == StatusRegistered || s == StatusInProgress || s == StatusCompleted
}

// IntakeRecordModel is one registrant's Info Session or New Hire Orientation.
// Info-session-only columns stay at their zero value for orientations.
type IntakeRecordModel struct {
	IntakeRecordID          uuid.UUID `gorm:"column:intake_record_id;type:uuid;primaryKey"`
	IntakeRecordFlow        string    `gorm:"column:intake_record_flow;type:varchar(20);not null;index:idx_intake_records_flow_status"`
	IntakeRecordFirstName   string    `gorm:"column:intake_record_first_name;type:varchar(100);not null"`
	IntakeRecordLastName    string    `gorm:"column:intake_record_last_name;type:varchar(100);not null"`
	IntakeRecordEmail       string    `gorm:"column:intake_record_email;type:varchar(255);not null;index"`
	IntakeRecordPhone       string    `gorm:"column:intake_record_phone;type:varchar(40);not null"`
	IntakeRecordZipCode     *string   `gorm:"column:intake_record_zip_code;type:varchar(10)"`
	IntakeRecordSessionType *string   `gorm:"column:intake_record_session_type;type:varchar(20)"`
	IntakeRecordTimeSlot    string    `gorm:"column:intake_record_time_slot;type:varchar(40);not null"`
	IntakeRecordStatus      string    `gorm:"column:intake_record_status;type:varchar(20);not null;default:registered;index:idx_intake_records_flow_status"`

	IntakeRecordAssignedRecruiterID   *uuid.UUID `gorm:"column:intake_record_assigned_recruiter_id;type:uuid;index"`
	IntakeRecordAssignedRecruiterName *string    `gorm:"column:intake_record_assigned_recruiter_name;type:varchar(200)"`

	// document / process flags (info session)
	IntakeRecordOb365Sent  bool `gorm:"column:intake_record_ob365_sent;not null;default:false"`
	IntakeRecordI9Sent     bool `gorm:"column:intake_record_i9_sent;not null;default:false"`
	IntakeRecordExistingI9 bool `gorm:"column:intake_record_existing_i9;not null;default:false"`
	IntakeRecordIneligible bool `gorm:"column:intake_record_ineligible;not null;default:false"`
	IntakeRecordRejected   bool `gorm:"column:intake_record_rejected;not null;default:false"`
	IntakeRecordDrugScreen bool `gorm:"column:intake_record_drug_screen;not null;default:false"`
	IntakeRecordQuestions  bool `gorm:"column:intake_record_questions;not null;default:false"`

	IntakeRecordInterviewResponses datatypes.JSONMap `gorm:"column:intake_record_interview_responses;type:jsonb"`

	IntakeRecordCreatedAt       time.Time  `gorm:"column:intake_record_created_at;not null;index"`
	IntakeRecordUpdatedAt       time.Time  `gorm:"column:intake_record_updated_at;autoUpdateTime"`
	IntakeRecordStartedAt       *time.Time `gorm:"column:intake_record_started_at"`
	IntakeRecordCompletedAt     *time.Time `gorm:"column:intake_record_completed_at"`
	IntakeRecordDurationMinutes *int       `gorm:"column:intake_record_duration_minutes"`

	Steps []IntakeStepModel `gorm:"foreignKey:IntakeStepRecordID;references:IntakeRecordID;constraint:OnDelete:CASCADE"`
}

func (IntakeRecordModel) TableName() string {
	return "intake_records"
}

// Step returns the step with the given name, or nil.
func (r *IntakeRecordModel) Step(name string) *IntakeStepModel {
	for i := range r.Steps {
		if r.Steps[i].IntakeStepName == name {
			return &r.Steps[i]
		}
	}
	return nil
}

func (r *IntakeRecordModel) FullName() string {
	return r.IntakeRecordFirstName + " " + r.IntakeRecordLastName
}
