package staff

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"frontdesk_backend/internals/configs"
	"frontdesk_backend/internals/constants"
	authService "frontdesk_backend/internals/features/users/auth/service"
	"frontdesk_backend/internals/features/users/staff/model"
)

type Store interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, u *model.StaffUserModel) error
}

// SeedAdmin creates the first admin account when staff_users is empty and
// SEED_ADMIN_EMAIL is set.
func SeedAdmin(ctx context.Context, store Store, cfg configs.SeedConfig, log *zap.Logger) (bool, error) {
	email := strings.ToLower(strings.TrimSpace(cfg.AdminEmail))
	if email == "" {
		return false, nil
	}
	n, err := store.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	hash, err := authService.HashPassword(cfg.AdminPassword)
	if err != nil {
		return false, fmt.Errorf("seed admin: %w", err)
	}
	name := strings.TrimSpace(cfg.AdminName)
	if name == "" {
		name = "Admin"
	}
	u := &model.StaffUserModel{
		StaffUserID:           uuid.New(),
		StaffUserFullName:     name,
		StaffUserEmail:        email,
		StaffUserPasswordHash: hash,
		StaffUserRole:         constants.RoleAdmin,
		StaffUserAvailability: constants.AvailabilityAvailable,
		StaffUserFlows:        pq.StringArray(constants.Flows),
		StaffUserIsActive:     true,
	}
	if err := store.Create(ctx, u); err != nil {
		return false, fmt.Errorf("seed admin: %w", err)
	}
	log.Info("admin account seeded", zap.String("email", email))
	return true, nil
}
