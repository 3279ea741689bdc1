package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"site-analytics-service/internal/config"
	"site-analytics-service/internal/controller"
	"site-analytics-service/internal/routes"
)

// Server wraps the Fiber application setup.
type Server struct {
	app *fiber.App
}

// NewServer configures routes and middleware. CORS stays permissive by
// default; the dashboard frontend is served from another origin.
func NewServer(appCfg *config.Config, analytics controller.AnalyticsController, seo controller.SeoController) *Server {
	fiberCfg := fiber.Config{
		DisableStartupMessage: true,
		Prefork:               appCfg.FiberPrefork,
	}
	app := fiber.New(fiberCfg)
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: appCfg.CORSAllowOrigins,
	}))

	routes.Register(app, analytics, seo)

	return &Server{app: app}
}

// Listen runs the server on the provided addr.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}
