package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"frontdesk_backend/internals/apperr"
	"frontdesk_backend/internals/constants"
	"frontdesk_backend/internals/features/users/staff/model"
)

type StaffRepository struct {
	DB *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{DB: db}
}

// FindRecruiter loads an active staff account by id.
func (r *StaffRepository) FindRecruiter(ctx context.Context, id uuid.UUID) (*model.StaffUserModel, error) {
	var u model.StaffUserModel
	err := r.DB.WithContext(ctx).
		Where("staff_user_id = ? AND staff_user_is_active = ?", id, true).
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("recruiter %s not found", id)
	}
	if err != nil {
		return nil, apperr.Internal(err, "failed to load recruiter")
	}
	return &u, nil
}

func (r *StaffRepository) FindByEmail(ctx context.Context, email string) (*model.StaffUserModel, error) {
	var u model.StaffUserModel
	err := r.DB.WithContext(ctx).
		Where("LOWER(staff_user_email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("staff user not found")
	}
	if err != nil {
		return nil, apperr.Internal(err, "failed to load staff user")
	}
	return &u, nil
}

// ListRecruiters returns active recruiters with their advisory availability.
func (r *StaffRepository) ListRecruiters(ctx context.Context) ([]model.StaffUserModel, error) {
	var rows []model.StaffUserModel
	if err := r.DB.WithContext(ctx).
		Where("staff_user_is_active = ? AND staff_user_role = ?", true, constants.RoleRecruiter).
		Order("staff_user_full_name ASC").
		Find(&rows).Error; err != nil {
		return nil, apperr.Internal(err, "failed to list recruiters")
	}
	return rows, nil
}

func (r *StaffRepository) SetAvailability(ctx context.Context, id uuid.UUID, availability string) (*model.StaffUserModel, error) {
	res := r.DB.WithContext(ctx).
		Model(&model.StaffUserModel{}).
		Where("staff_user_id = ? AND staff_user_is_active = ?", id, true).
		Update("staff_user_availability", availability)
	if res.Error != nil {
		return nil, apperr.Internal(res.Error, "failed to update availability")
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound("recruiter %s not found", id)
	}
	return r.FindRecruiter(ctx, id)
}

// List returns every staff account, inactive ones included when asked.
func (r *StaffRepository) List(ctx context.Context, includeInactive bool) ([]model.StaffUserModel, error) {
	q := r.DB.WithContext(ctx).Model(&model.StaffUserModel{})
	if !includeInactive {
		q = q.Where("staff_user_is_active = ?", true)
	}
	var rows []model.StaffUserModel
	if err := q.Order("staff_user_full_name ASC").Find(&rows).Error; err != nil {
		return nil, apperr.Internal(err, "failed to list staff")
	}
	return rows, nil
}

func (r *StaffRepository) Create(ctx context.Context, u *model.StaffUserModel) error {
	if err := r.DB.WithContext(ctx).Create(u).Error; err != nil {
		return apperr.FromDB(err, "failed to create staff user")
	}
	return nil
}

func (r *StaffRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.DB.WithContext(ctx).Model(&model.StaffUserModel{}).Count(&n).Error; err != nil {
		return 0, apperr.Internal(err, "failed to count staff")
	}
	return n, nil
}

// Deactivate disables the account. Records keep their assignment.
func (r *StaffRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).
		Model(&model.StaffUserModel{}).
		Where("staff_user_id = ? AND staff_user_is_active = ?", id, true).
		Update("staff_user_is_active", false)
	if res.Error != nil {
		return apperr.Internal(res.Error, "failed to deactivate staff user")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("staff user %s not found", id)
	}
	return nil
}
