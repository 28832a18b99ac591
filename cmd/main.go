package main

import (
	"log"

	"github.com/SamuelLeutner/student-risk-dashboard/api"
	"github.com/SamuelLeutner/student-risk-dashboard/config"
	"github.com/SamuelLeutner/student-risk-dashboard/dashboard"
	"github.com/SamuelLeutner/student-risk-dashboard/services"
	"github.com/SamuelLeutner/student-risk-dashboard/storage"
	"github.com/SamuelLeutner/student-risk-dashboard/views"
)

func main() {
	config.Init()
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	engine, err := views.New()
	if err != nil {
		log.Fatalf("Fatal error loading views: %v", err)
	}

	client := services.NewStudentsClient(&config.AppConfig)
	pipeline := dashboard.NewPipeline(client, engine, dashboard.DefaultShell, config.AppConfig.HighRiskLimit)
	store := storage.NewMemoryStore(config.AppConfig.PageTTL)

	app := api.SetupRouter(pipeline, store, &config.AppConfig)

	log.Printf("Starting Fiber server on %s (records from %s)...", config.AppConfig.ListenAddr, config.AppConfig.StudentsURL())

	if err := app.Listen(config.AppConfig.ListenAddr); err != nil {
		log.Fatalf("Fatal error starting Fiber server: %v", err)
	}

	log.Println("\nMain process completed (Fiber server stopped).")
}
