package main

import (
	"log"

	"feedback-forms-be/internal/bootstrap"
	"feedback-forms-be/internal/config"
	"feedback-forms-be/internal/model"
	"feedback-forms-be/internal/server"
	"feedback-forms-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	db, err := database.Open(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to database: %v", err)
	}

	// 3. Schema creation is idempotent and runs on every start.
	if err := db.AutoMigrate(model.AllModels()...); err != nil {
		log.Panicf("Migration failed: %v", err)
	}

	// 4. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(db, cfg)

	// 5. Run Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
