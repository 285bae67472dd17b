package database

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"frontdesk_backend/internals/configs"
	intakeModel "frontdesk_backend/internals/features/intake/model"
	templateModel "frontdesk_backend/internals/features/templates/model"
	authModel "frontdesk_backend/internals/features/users/auth/model"
	staffModel "frontdesk_backend/internals/features/users/staff/model"
)

func ConnectDB(cfg configs.DatabaseConfig, appName string, log *zap.Logger) (*gorm.DB, error) {
	log.Info("connecting to postgres", zap.String("host", cfg.Host), zap.String("db", cfg.Name))

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(appName),
		PreferSimpleProtocol: true, // PgBouncer transaction pooling
	}), &gorm.Config{
		Logger: configs.NewGormLogger(log, gormLogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	if err := TunePool(db, cfg); err != nil {
		return nil, err
	}
	log.Info("db connected")
	return db, nil
}

func TunePool(db *gorm.DB, cfg configs.DatabaseConfig) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("pool tune: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
	return nil
}

// Migrate creates or updates the tables owned by this service.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&staffModel.StaffUserModel{},
		&authModel.TokenBlacklist{},
		&templateModel.StepTemplateModel{},
		&intakeModel.IntakeRecordModel{},
		&intakeModel.IntakeStepModel{},
	)
}

func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
