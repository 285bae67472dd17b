package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"frontdesk_backend/internals/apperr"
	"frontdesk_backend/internals/features/intake/model"
)

// ListFilter narrows List. Zero values mean "no filter".
type ListFilter struct {
	Flow        string
	Status      string
	ActiveOnly  bool
	RecruiterID *uuid.UUID
	CreatedOn   *time.Time
	Search      string
	Offset      int
	Limit       int
}

type RecordRepository struct {
	DB *gorm.DB
}

func NewRecordRepository(db *gorm.DB) *RecordRepository {
	return &RecordRepository{DB: db}
}

// Create inserts the record and its checklist in one transaction.
func (r *RecordRepository) Create(ctx context.Context, rec *model.IntakeRecordModel) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(rec).Error; err != nil {
			return apperr.FromDB(err, "failed to create record")
		}
		if len(rec.Steps) > 0 {
			if err := tx.Create(&rec.Steps).Error; err != nil {
				return apperr.FromDB(err, "failed to create steps")
			}
		}
		return nil
	})
}

func (r *RecordRepository) FindByID(ctx context.Context, flow string, id uuid.UUID) (*model.IntakeRecordModel, error) {
	var rec model.IntakeRecordModel
	err := r.DB.WithContext(ctx).
		Preload("Steps", orderSteps).
		Where("intake_record_id = ? AND intake_record_flow = ?", id, flow).
		First(&rec).Error
	if err != nil {
		return nil, notFoundOr(err, id)
	}
	return &rec, nil
}

func (r *RecordRepository) List(ctx context.Context, f ListFilter) ([]model.IntakeRecordModel, int64, error) {
	q := r.DB.WithContext(ctx).Model(&model.IntakeRecordModel{})
	if f.Flow != "" {
		q = q.Where("intake_record_flow = ?", f.Flow)
	}
	if f.Status != "" {
		q = q.Where("intake_record_status = ?", f.Status)
	}
	if f.ActiveOnly {
		q = q.Where("intake_record_status <> ?", model.StatusCompleted)
	}
	if f.RecruiterID != nil {
		q = q.Where("intake_record_assigned_recruiter_id = ?", *f.RecruiterID)
	}
	if f.CreatedOn != nil {
		day := f.CreatedOn.UTC().Truncate(24 * time.Hour)
		q = q.Where("intake_record_created_at >= ? AND intake_record_created_at < ?", day, day.Add(24*time.Hour))
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where(
			"LOWER(intake_record_first_name) LIKE ? OR LOWER(intake_record_last_name) LIKE ? OR LOWER(intake_record_email) LIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, apperr.Internal(err, "failed to count records")
	}

	var rows []model.IntakeRecordModel
	q = q.Preload("Steps", orderSteps).Order("intake_record_created_at ASC")
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, apperr.Internal(err, "failed to list records")
	}
	return rows, total, nil
}

// Mutate loads the record FOR UPDATE, lets fn change it and persists the
// record and its steps before the lock is released. All writers of a record
// go through here, so step completions never overwrite each other and
// Complete always sees the latest checklist. Returning an error from fn
// rolls back without writing.
func (r *RecordRepository) Mutate(ctx context.Context, flow string, id uuid.UUID, fn func(rec *model.IntakeRecordModel) error) (*model.IntakeRecordModel, error) {
	var out model.IntakeRecordModel
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec model.IntakeRecordModel
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("intake_record_id = ? AND intake_record_flow = ?", id, flow).
			First(&rec).Error; err != nil {
			return notFoundOr(err, id)
		}
		if err := tx.Scopes(orderSteps).
			Where("intake_step_record_id = ?", rec.IntakeRecordID).
			Find(&rec.Steps).Error; err != nil {
			return apperr.Internal(err, "failed to load steps")
		}

		if err := fn(&rec); err != nil {
			return err
		}

		if err := tx.Omit(clause.Associations).Save(&rec).Error; err != nil {
			return apperr.FromDB(err, "failed to save record")
		}
		for i := range rec.Steps {
			s := rec.Steps[i]
			if err := tx.Model(&model.IntakeStepModel{}).
				Where("intake_step_id = ?", s.IntakeStepID).
				Update("intake_step_is_completed", s.IntakeStepIsCompleted).Error; err != nil {
				return apperr.Internal(err, "failed to save step")
			}
		}
		out = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *RecordRepository) Delete(ctx context.Context, flow string, id uuid.UUID) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("intake_step_record_id = ?", id).Delete(&model.IntakeStepModel{}).Error; err != nil {
			return apperr.Internal(err, "failed to delete steps")
		}
		res := tx.Where("intake_record_id = ? AND intake_record_flow = ?", id, flow).
			Delete(&model.IntakeRecordModel{})
		if res.Error != nil {
			return apperr.Internal(res.Error, "failed to delete record")
		}
		if res.RowsAffected == 0 {
			return apperr.NotFound("record %s not found", id)
		}
		return nil
	})
}

func orderSteps(db *gorm.DB) *gorm.DB {
	return db.Order("intake_step_order ASC")
}

func notFoundOr(err error, id uuid.UUID) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("record %s not found", id)
	}
	return apperr.Internal(err, "failed to load record")
}
