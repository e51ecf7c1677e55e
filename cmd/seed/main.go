package main

import (
	"flag"
	"log"

	"agencybot/internal/config"
	"agencybot/internal/database"
	"agencybot/internal/seed"

	"github.com/joho/godotenv"
)

func main() {
	users := flag.Int("users", 10, "number of demo users to create")
	turns := flag.Int("turns", 5, "chat turns per user")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Connect(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db, *users, *turns); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
