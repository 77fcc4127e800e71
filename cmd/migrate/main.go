package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"prism-brain-be/internal/model"
	"prism-brain-be/pkg/database"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	// 3. Pre-Migration: Extensions (AutoMigrate does not create these)
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Printf("Warn: Failed to create pgcrypto extension: %v. Continuing...", err)
	}

	// 4. AutoMigrate the snapshot archive
	if err := db.AutoMigrate(&model.ReportSnapshot{}); err != nil {
		log.Fatalf("Error: Migration failed: %v", err)
	}

	log.Println("✅ Migration complete")
}
