package main

import (
	"fmt"
	"log"

	"gameshelf/internal/config"
	"gameshelf/internal/database"
	"gameshelf/internal/handler"
)

func init() {
	config.LoadConfig()
}

func main() {
	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	router := handler.SetupRouter("templates/*.html", "./public")

	addr := ":" + config.AppConfig.Port
	fmt.Printf("Server is running on %s\n", addr)
	log.Fatal(router.Run(addr))
}
