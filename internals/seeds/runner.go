package seeds

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"frontdesk_backend/internals/configs"
	templateRepo "frontdesk_backend/internals/features/templates/repository"
	staffRepo "frontdesk_backend/internals/features/users/staff/repository"
	staffSeed "frontdesk_backend/internals/seeds/staff"
	templateSeed "frontdesk_backend/internals/seeds/templates"
)

func RunAllSeeds(ctx context.Context, db *gorm.DB, cfg configs.SeedConfig, log *zap.Logger) error {
	if !cfg.Enabled {
		log.Info("seeding disabled")
		return nil
	}

	//* Step templates
	if _, err := templateSeed.SeedStepTemplates(ctx, templateRepo.NewTemplateRepository(db), log); err != nil {
		return err
	}

	//* Staff
	if _, err := staffSeed.SeedAdmin(ctx, staffRepo.NewStaffRepository(db), cfg, log); err != nil {
		return err
	}
	return nil
}
