package main

import (
	"log"

	"gameshelf/internal/config"
	"gameshelf/internal/database"
	"gameshelf/internal/seed"
)

func init() {
	config.LoadConfig()
}

// Destructively repopulates genres, developers and games with the sample
// fixtures. Meant for demo and test environments only.
func main() {
	database.Connect(config.AppConfig.DatabaseURL)

	sqlDB, err := database.DB.DB()
	if err != nil {
		log.Fatalf("Failed to access connection pool: %v", err)
	}
	defer sqlDB.Close()

	if err := seed.Run(database.DB); err != nil {
		log.Printf("Error during seeding: %v", err)
	}
}
