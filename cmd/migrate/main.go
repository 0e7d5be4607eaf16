package main

import (
	"log"
	"os"

	"feedback-forms-be/internal/model"
	"feedback-forms-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")

	db, err := database.Open(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Running schema migration...")

	if err := db.AutoMigrate(model.AllModels()...); err != nil {
		log.Fatal("Error: Migration failed:", err)
	}

	log.Println("Migration complete.")
}
