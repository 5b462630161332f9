package main

import (
	"coursecraft/config"
	courseControllers "coursecraft/controllers/course"
	"coursecraft/curation"
	"coursecraft/database"
	"coursecraft/llm"
	authRoutes "coursecraft/routers/authRoutes"
	courseRoutes "coursecraft/routers/courseRoutes"
	"coursecraft/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	// External collaborators are constructed once here and handed to the
	// handlers that need them.
	planner := llm.NewClient(config.AppConfig.GeminiApiKey, config.AppConfig.GeminiModel)

	var searcher curation.Searcher
	if yt := curation.NewYouTubeClient(config.AppConfig.YoutubeApiKey); yt.Available() {
		searcher = yt
	}
	curator := curation.NewEngine(searcher)

	courseController := &courseControllers.Controller{
		Planner: planner,
		Curator: curator,
	}

	utils.StartPurgeScheduler()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE",      // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app, courseController)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
