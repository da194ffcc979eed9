package infra

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"spontrip/internal/models/db_models"
)

func InitPostgresql(dsn string) *gorm.DB {
	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	err = connectionPool.AutoMigrate(
		&db_models.User{},
		&db_models.Trip{},
		&db_models.Memory{},
		&db_models.Friend{},
	)
	if err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	return connectionPool
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
