package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// StaffUserModel is a recruiter, manager or admin account.
type StaffUserModel struct {
	StaffUserID           uuid.UUID      `gorm:"column:staff_user_id;type:uuid;primaryKey"`
	StaffUserFullName     string         `gorm:"column:staff_user_full_name;type:varchar(200);not null"`
	StaffUserEmail        string         `gorm:"column:staff_user_email;type:varchar(255);not null;uniqueIndex"`
	StaffUserPasswordHash string         `gorm:"column:staff_user_password_hash;type:text;not null"`
	StaffUserRole         string         `gorm:"column:staff_user_role;type:varchar(20);not null;default:recruiter"`
	StaffUserAvailability string         `gorm:"column:staff_user_availability;type:varchar(20);not null;default:available"`
	StaffUserFlows        pq.StringArray `gorm:"column:staff_user_flows;type:text[]"`
	StaffUserIsActive     bool           `gorm:"column:staff_user_is_active;not null;default:true"`
	StaffUserCreatedAt    time.Time      `gorm:"column:staff_user_created_at;autoCreateTime"`
	StaffUserUpdatedAt    time.Time      `gorm:"column:staff_user_updated_at;autoUpdateTime"`
}

func (StaffUserModel) TableName() string {
	return "staff_users"
}

func (s StaffUserModel) HandlesFlow(flow string) bool {
	if len(s.StaffUserFlows) == 0 {
		return true
	}
	for _, f := range s.StaffUserFlows {
		if f == flow {
			return true
		}
	}
	return false
}
