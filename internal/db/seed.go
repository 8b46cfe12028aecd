package db

import (
	"log"

	"gorm.io/gorm"

	"teamdash-backend/internal/config"
	"teamdash-backend/internal/models"
	"teamdash-backend/internal/utils"
)

// EnsureDefaultAdmin creates a break-glass admin account if and only if
// no admin exists yet. Gated behind cfg.BootstrapAdmin so production
// deployments can switch it off.
func EnsureDefaultAdmin(database *gorm.DB, cfg config.Config) error {
	if !cfg.BootstrapAdmin {
		return nil
	}

	var count int64
	if err := database.Model(&models.User{}).Where("role = ?", "admin").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	admin := models.User{
		Email:        cfg.AdminEmail,
		Username:     cfg.AdminUsername,
		FullName:     "System Administrator",
		Role:         "admin",
		IsActive:     true,
		PasswordHash: hash,
	}
	if err := database.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("default admin user %q created with bootstrap credentials, change the password immediately", cfg.AdminUsername)
	return nil
}
