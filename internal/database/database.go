package database

import (
	"fmt"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Prathamahuja/employee-leave-management/internal/config"
	"github.com/Prathamahuja/employee-leave-management/internal/models"
)

// Connect opens the database selected by the DSN, runs migrations and seeds
// the initial admin account. A DSN containing "@tcp(" is treated as MySQL;
// anything else is a SQLite path, the default for local runs and tests.
func Connect(cfg config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if strings.Contains(cfg.DatabaseDSN, "@tcp(") {
		dialector = mysql.Open(cfg.DatabaseDSN)
	} else {
		dialector = sqlite.Open(cfg.DatabaseDSN)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Leave{}); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	if err := seedAdmin(db, cfg); err != nil {
		return nil, err
	}
	return db, nil
}

// seedAdmin inserts the configured admin account unless it already exists.
func seedAdmin(db *gorm.DB, cfg config.Config) error {
	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", cfg.AdminEmail).Count(&count).Error; err != nil {
		return fmt.Errorf("check admin user: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	admin := models.User{
		Name:     cfg.AdminName,
		Email:    cfg.AdminEmail,
		Password: string(hash),
		Role:     models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}
	log.Printf("Admin user %s seeded successfully", cfg.AdminEmail)
	return nil
}
