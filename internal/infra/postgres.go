package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pressmatch/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := connectionPool.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		log.Printf("Error enabling pgvector extension: %v", err)
	}

	if err := connectionPool.AutoMigrate(
		&db_models.User{},
		&db_models.Topic{},
		&db_models.JournalistProfile{},
		&db_models.CompanyProfile{},
		&db_models.ProfileEmbedding{},
		&db_models.MatchFeedback{},
	); err != nil {
		log.Printf("Error migrating schema: %v", err)
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
	}
}
