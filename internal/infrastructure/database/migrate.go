package database

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/A-Basit02/Disaster-Management-App/internal/domain/models"
	"github.com/A-Basit02/Disaster-Management-App/internal/infrastructure/config"
	"github.com/A-Basit02/Disaster-Management-App/pkg/logger"
)

// Migrate brings the schema up to date. MigrationDrop drops every table first.
func Migrate(db *gorm.DB, mode string) error {
	switch mode {
	case config.MigrationDrop:
		logger.L().Warn("dropping all tables before migration")
		if err := DropAll(db); err != nil {
			return err
		}
	case config.MigrationAuto, "":
	default:
		return fmt.Errorf("unknown migration mode %q", mode)
	}

	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	logger.L().Info("database migration complete", zap.String("mode", mode))
	return nil
}

// DropAll drops every model table and the role join table
func DropAll(db *gorm.DB) error {
	tables := models.All()
	// reverse dependency order
	for i := len(tables) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(tables[i]); err != nil {
			return fmt.Errorf("drop table: %w", err)
		}
	}
	if err := db.Migrator().DropTable("user_roles"); err != nil {
		return fmt.Errorf("drop table user_roles: %w", err)
	}
	return nil
}

// SeedRoles inserts the default roles that are missing. Safe to run repeatedly.
func SeedRoles(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, def := range models.DefaultRoles {
			var count int64
			if err := tx.Model(&models.Role{}).Where("role_name = ?", def.Name).Count(&count).Error; err != nil {
				return fmt.Errorf("look up role %s: %w", def.Name, err)
			}
			if count > 0 {
				continue
			}

			role := def
			if err := tx.Create(&role).Error; err != nil {
				return fmt.Errorf("seed role %s: %w", def.Name, err)
			}
			logger.L().Info("seeded role", zap.String("role", string(role.Name)))
		}
		return nil
	})
}
