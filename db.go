package main

import (
	"log"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Ophelia-lia/customer-system/config"
	"github.com/Ophelia-lia/customer-system/entity"
)

func setupDatabase(cfg *config.Config) *gorm.DB {
	var dialector gorm.Dialector
	if cfg.DatabaseURL != "" {
		// Some hosts hand out postgres:// URLs; the driver wants postgresql://.
		dsn := cfg.DatabaseURL
		if strings.HasPrefix(dsn, "postgres://") {
			dsn = "postgresql://" + strings.TrimPrefix(dsn, "postgres://")
		}
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(cfg.SQLitePath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database:", err)
	}

	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Customer{},
		&entity.AppSetting{},
	); err != nil {
		log.Fatal("failed to run migrations:", err)
	}
	return db
}
