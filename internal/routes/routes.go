package routes

import (
	"github.com/gofiber/fiber/v2"

	"site-analytics-service/internal/controller"
)

// Register attaches all HTTP routes to the Fiber app.
func Register(app *fiber.App, analytics controller.AnalyticsController, seo controller.SeoController) {
	app.Get("/", analytics.Health)
	app.Get("/health", analytics.Health)

	api := app.Group("/api")
	api.Get("/stats", analytics.Stats)
	api.Get("/leads", analytics.Leads)
	api.Get("/pageviews-series", analytics.PageviewsSeries)
	api.Get("/top-pages", analytics.TopPages)
	api.Get("/devices", analytics.Devices)
	api.Get("/channels", analytics.Channels)
	api.Get("/referrers", analytics.Referrers)
	api.Get("/countries", analytics.Countries)
	api.Get("/cities", analytics.Cities)
	api.Get("/browsers", analytics.Browsers)
	api.Get("/operating-systems", analytics.OperatingSystems)
	api.Get("/realtime", analytics.Realtime)
	api.Get("/events", analytics.Events)
	api.Get("/landing-pages", analytics.LandingPages)
	api.Get("/exit-pages", analytics.ExitPages)

	seoGroup := api.Group("/seo")
	seoGroup.Get("/overview", seo.Overview)
	seoGroup.Get("/queries", seo.Queries)
	seoGroup.Get("/pages", seo.Pages)
	seoGroup.Get("/sitemaps", seo.Sitemaps)
}
