package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"gemtrade/internal/service"
)

// maxRequestBody caps incoming request bodies. Verification documents may be
// up to 5 MiB, so the cap leaves headroom for multipart framing and the other
// form fields; the 5 MiB document policy itself is enforced by the intake.
const maxRequestBody = 10 << 20

// NewApp constructs the Fiber application with the shared server settings.
// Tests exercising transport behavior must build the app through here so they
// run against the same limits as the real server.
func NewApp() *fiber.App {
	return fiber.New(fiber.Config{
		BodyLimit:    maxRequestBody,
		ErrorHandler: ErrorHandler(),
	})
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay free of business logic; workflows live in the service layer.
func RegisterRoutes(app *fiber.App, db *sql.DB, authSvc service.AuthService, intake service.DocumentIntake, catalogSvc service.CatalogService) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	// Health endpoints
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	// Prometheus metrics
	metrics := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	app.Get("/metrics", func(c *fiber.Ctx) error {
		metrics(c.Context())
		return nil
	})

	// Registration and authentication
	app.Post("/api/auth/register", Register(authSvc))
	app.Post("/api/auth/login", Login(authSvc))

	// Stored verification documents
	app.Get("/uploads/:file", ServeUpload(intake))

	// Gemstone catalog
	app.Get("/api/gemstones", ListGemstones(catalogSvc))
	app.Get("/api/gemstones/:id", GetGemstone(catalogSvc))
}
