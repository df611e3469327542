// Clears the bookings table. Availability is not restored; reseed afterwards
// if the counters should go back to capacity.
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

	count, err := services.NewBookingService(config.DB).WipeAll()
	if err != nil {
		log.Fatalf("failed to clear bookings: %v", err)
	}
	log.Printf("Deleted %d row(s) from bookings table.", count)
}
