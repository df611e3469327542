// Seeds the room catalog and the per-day availability counters.
//
// Two phases, both idempotent upserts: room types by id, then one
// (roomTypeId, date) row per type per day of the fixed window with
// remaining reset to capacity. Any error aborts the run with a non-zero
// exit; re-running wholesale is the recovery story.
package main

import (
	"log"

	"github.com/joho/godotenv"

	"elysianshores/config"
	"elysianshores/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("database connect failed: %v", err)
	}

	seeder := services.NewSeedService(config.DB)

	log.Println("Seeding rooms…")
	if err := seeder.SeedRoomTypes(); err != nil {
		log.Fatalf("room type seed failed: %v", err)
	}

	log.Println("Seeding availability…")
	if err := seeder.SeedAvailability(); err != nil {
		log.Fatalf("availability seed failed: %v", err)
	}

	log.Println("Done.")
}
