package main

import (
	"log"
	"os"

	"github.com/waweru234/houselook-rr/config"
	"github.com/waweru234/houselook-rr/routes"
	"github.com/waweru234/houselook-rr/utils"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	config.ConnectDB()

	utils.InitRedis()

	if err := utils.InitQueue(); err != nil {
		log.Fatalf("Failed to initialize lead queue: %v", err)
	}
	defer utils.CloseQueue()

	if err := utils.InitNotifier(); err != nil {
		log.Fatalf("Failed to initialize lead notifier: %v", err)
	}

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	routes.RegisterRoutes(e)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
