package main

import (
	"context"
	"log"

	analytics "cloud.google.com/go/analytics/apiv1beta"
	_ "github.com/joho/godotenv/autoload"
	searchconsole "google.golang.org/api/searchconsole/v1"

	"site-analytics-service/internal/config"
	"site-analytics-service/internal/controller"
	"site-analytics-service/internal/googleauth"
	"site-analytics-service/internal/gsc"
	httpserver "site-analytics-service/internal/http"
	"site-analytics-service/internal/report"
	"site-analytics-service/internal/service"
)

func main() {
	cfg := config.Load()

	ctx := context.Background()

	// Clients are constructed once here and shared for the process lifetime.
	// Missing credentials are not fatal: the server starts and the affected
	// endpoints report a configuration error instead.
	var dataClient report.DataClient
	var searchClient gsc.SearchClient

	opts, err := googleauth.Options()
	if err != nil {
		log.Printf("google credentials unavailable: %v", err)
	} else {
		gaClient, initErr := analytics.NewBetaAnalyticsDataClient(ctx, opts...)
		if initErr != nil {
			log.Printf("init analytics data client: %v", initErr)
		} else {
			defer gaClient.Close()
			dataClient = gaClient
		}

		gscService, initErr := searchconsole.NewService(ctx, opts...)
		if initErr != nil {
			log.Printf("init search console service: %v", initErr)
		} else {
			searchClient = gsc.NewClient(gscService)
		}
	}

	engine := report.NewEngine(dataClient, cfg.GAPropertyID)
	analyticsService := service.NewAnalyticsService(engine)
	seoService := service.NewSeoService(searchClient, cfg.GSCPropertyURL)

	analyticsController := controller.NewAnalyticsController(analyticsService)
	seoController := controller.NewSeoController(seoService)

	server := httpserver.NewServer(cfg, analyticsController, seoController)

	log.Printf("starting server on %s", cfg.HTTPPort)
	if err := server.Listen(cfg.HTTPPort); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
