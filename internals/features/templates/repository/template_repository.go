package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"frontdesk_backend/internals/apperr"
	"frontdesk_backend/internals/features/templates/model"
)

type TemplateRepository struct {
	DB *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) *TemplateRepository {
	return &TemplateRepository{DB: db}
}

// ActiveTemplates returns the checklist seeds for a new record, in step order.
// Templates without a session type apply to every type of the flow.
func (r *TemplateRepository) ActiveTemplates(ctx context.Context, flow string, sessionType *string) ([]model.StepTemplateModel, error) {
	q := r.DB.WithContext(ctx).
		Where("step_template_flow = ?", flow).
		Where("step_template_is_active = ?", true)
	if sessionType != nil {
		q = q.Where("step_template_session_type IS NULL OR step_template_session_type = ?", *sessionType)
	} else {
		q = q.Where("step_template_session_type IS NULL")
	}

	var rows []model.StepTemplateModel
	if err := q.Order("step_template_order ASC, step_template_name ASC").Find(&rows).Error; err != nil {
		return nil, apperr.Internal(err, "failed to load step templates")
	}
	return rows, nil
}

// List returns the templates of flow (all flows when empty) in step order.
func (r *TemplateRepository) List(ctx context.Context, flow string, includeInactive bool) ([]model.StepTemplateModel, error) {
	q := r.DB.WithContext(ctx).Model(&model.StepTemplateModel{})
	if flow != "" {
		q = q.Where("step_template_flow = ?", flow)
	}
	if !includeInactive {
		q = q.Where("step_template_is_active = ?", true)
	}
	var rows []model.StepTemplateModel
	if err := q.Order("step_template_flow ASC, step_template_order ASC, step_template_name ASC").Find(&rows).Error; err != nil {
		return nil, apperr.Internal(err, "failed to list step templates")
	}
	return rows, nil
}

func (r *TemplateRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.StepTemplateModel, error) {
	var row model.StepTemplateModel
	err := r.DB.WithContext(ctx).Where("step_template_id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("step template %s not found", id)
	}
	if err != nil {
		return nil, apperr.Internal(err, "failed to load step template")
	}
	return &row, nil
}

// Exists reports whether another template already uses name for the same
// flow and session type. NULL session types compare equal here, unlike in
// the unique index.
func (r *TemplateRepository) Exists(ctx context.Context, flow string, sessionType *string, name string, excludeID *uuid.UUID) (bool, error) {
	q := r.DB.WithContext(ctx).Model(&model.StepTemplateModel{}).
		Where("step_template_flow = ? AND LOWER(step_template_name) = LOWER(?)", flow, name)
	if sessionType == nil {
		q = q.Where("step_template_session_type IS NULL")
	} else {
		q = q.Where("step_template_session_type = ?", *sessionType)
	}
	if excludeID != nil {
		q = q.Where("step_template_id <> ?", *excludeID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, apperr.Internal(err, "failed to check step template")
	}
	return n > 0, nil
}

func (r *TemplateRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.DB.WithContext(ctx).Model(&model.StepTemplateModel{}).Count(&n).Error; err != nil {
		return 0, apperr.Internal(err, "failed to count step templates")
	}
	return n, nil
}

func (r *TemplateRepository) Create(ctx context.Context, row *model.StepTemplateModel) error {
	if err := r.DB.WithContext(ctx).Create(row).Error; err != nil {
		return apperr.FromDB(err, "failed to create step template")
	}
	return nil
}

func (r *TemplateRepository) Save(ctx context.Context, row *model.StepTemplateModel) error {
	if err := r.DB.WithContext(ctx).Save(row).Error; err != nil {
		return apperr.FromDB(err, "failed to update step template")
	}
	return nil
}

// Delete removes the template. Records already seeded from it keep their
// copied steps.
func (r *TemplateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).Where("step_template_id = ?", id).Delete(&model.StepTemplateModel{})
	if res.Error != nil {
		return apperr.Internal(res.Error, "failed to delete step template")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("step template %s not found", id)
	}
	return nil
}
