package main

import (
	"log"

	"musichub-be/internal/config"
	"musichub-be/internal/model"
	"musichub-be/pkg/database"
)

var timeSignatures = []string{"2/4", "3/4", "4/4", "5/4", "6/8", "7/8", "9/8", "12/8"}

var tags = []string{
	"Classical", "Jazz", "Pop", "Rock", "Blues", "Folk", "Film", "Worship",
	"Piano", "Guitar", "Violin", "Cello", "Flute", "Choir", "Duet", "Etude",
}

func main() {
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, database.PoolConfig{
		MaxIdleConns: 1,
		MaxOpenConns: 1,
	})
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Seeding time signatures...")
	for _, name := range timeSignatures {
		ts := model.TimeSignature{Name: name}
		if err := db.Where(model.TimeSignature{Name: name}).FirstOrCreate(&ts).Error; err != nil {
			log.Printf("Error seeding time signature '%s': %v", name, err)
		}
	}

	log.Println("Seeding tags...")
	for _, name := range tags {
		tag := model.Tag{Name: name}
		if err := db.Where(model.Tag{Name: name}).FirstOrCreate(&tag).Error; err != nil {
			log.Printf("Error seeding tag '%s': %v", name, err)
		}
	}

	log.Println("Seeding completed!")
}
