// Package db opens the application's relational database connection.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "sweetshop_backend/internal/feature/auth/domain/entity"
	inventoryentity "sweetshop_backend/internal/feature/inventory/domain/entity"
	ordersentity "sweetshop_backend/internal/feature/orders/domain/entity"
	sweetsentity "sweetshop_backend/internal/feature/sweets/domain/entity"
	"sweetshop_backend/internal/platform/config"
)

// OpenDB connects to PostgreSQL, retrying for up to a minute so the server
// survives a database that is still coming up. TranslateError lets adapters
// match gorm.ErrDuplicatedKey across dialects.
func OpenDB(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)

	var (
		gdb *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		gdb, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := gdb.AutoMigrate(
			&authentity.User{},
			&sweetsentity.Sweet{},
			&inventoryentity.Item{},
			&ordersentity.Order{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return gdb
}
