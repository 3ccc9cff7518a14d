package main

import (
	"log"

	"musichub-be/internal/config"
	"musichub-be/internal/model"
	"musichub-be/pkg/database"
)

func main() {
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, database.PoolConfig{
		MaxIdleConns: 1,
		MaxOpenConns: 1,
		Verbose:      true,
	})
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(model.All()...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// lower(name) lookups back the tag and time signature name filters
	indexSQL := []string{
		`CREATE INDEX IF NOT EXISTS idx_tags_name_lower ON tags (LOWER(name));`,
		`CREATE INDEX IF NOT EXISTS idx_notes_title_lower ON notes (LOWER(title));`,
	}
	for _, sql := range indexSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to create index: %v", err)
		}
	}

	log.Println("Success: Database migration completed.")
}
