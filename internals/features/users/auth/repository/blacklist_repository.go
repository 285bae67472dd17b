package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"frontdesk_backend/internals/apperr"
	"frontdesk_backend/internals/features/users/auth/model"
)

type BlacklistRepository struct {
	DB *gorm.DB
}

func NewBlacklistRepository(db *gorm.DB) *BlacklistRepository {
	return &BlacklistRepository{DB: db}
}

// Add stores hash; blacklisting the same token twice is a no-op.
func (r *BlacklistRepository) Add(ctx context.Context, hash string, expiresAt time.Time) error {
	row := model.TokenBlacklist{TokenBlacklistHash: hash, TokenBlacklistExpiredAt: expiresAt.UTC()}
	err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "token_blacklist_hash"}}, DoNothing: true}).
		Create(&row).Error
	if err != nil {
		return apperr.Internal(err, "failed to blacklist token")
	}
	return nil
}

func (r *BlacklistRepository) Contains(ctx context.Context, hash string) (bool, error) {
	var n int64
	if err := r.DB.WithContext(ctx).
		Model(&model.TokenBlacklist{}).
		Where("token_blacklist_hash = ?", hash).
		Count(&n).Error; err != nil {
		return false, apperr.Internal(err, "failed to check token blacklist")
	}
	return n > 0, nil
}

// PurgeExpired deletes entries that expired before the cutoff, in batches.
func (r *BlacklistRepository) PurgeExpired(ctx context.Context, before time.Time, batch int) (int64, error) {
	sub := r.DB.Model(&model.TokenBlacklist{}).
		Select("token_blacklist_id").
		Where("token_blacklist_expired_at < ?", before.UTC()).
		Limit(batch)
	res := r.DB.WithContext(ctx).
		Where("token_blacklist_id IN (?)", sub).
		Delete(&model.TokenBlacklist{})
	if res.Error != nil {
		return 0, apperr.Internal(res.Error, "failed to purge token blacklist")
	}
	return res.RowsAffected, nil
}
