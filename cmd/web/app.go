package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/inventario-web/internal/infrastructure/backend"
	"github.com/jhoicas/inventario-web/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/inventario-web/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/inventario-web/internal/interfaces/http"
	"github.com/jhoicas/inventario-web/pkg/config"
	"github.com/jhoicas/inventario-web/pkg/logger"
)

// server aplicación armada: fiber, tabla de rutas y métricas.
type server struct {
	app     *fiber.App
	routes  *httpRouter.RouteTable
	metrics *metrics.Metrics
}

// newServer arma cliente del backend, vistas y rutas técnicas a partir de cfg.
func newServer(cfg *config.Config, log *logger.Logger) (*server, error) {
	variant, err := backend.ParseDashboardVariant(cfg.API.DashboardVariant)
	if err != nil {
		return nil, fmt.Errorf("DASHBOARD_VARIANT: %w", err)
	}

	client, err := backend.NewClient(cfg.API.BaseURL,
		backend.WithTimeout(cfg.API.Timeout()),
		backend.WithDashboardVariant(variant),
	)
	if err != nil {
		return nil, fmt.Errorf("API_BASE_URL: %w", err)
	}

	m := metrics.New("inventario_web")

	// Reporte PDF de valorización del inventario
	reports := infrapdf.NewMarotoReportGenerator()

	routes, err := httpRouter.NewRouteTable(
		httpRouter.DefaultRoutes(httpRouter.ViewDeps{API: client, Reports: reports, Metrics: m}),
		httpRouter.OnLazyLoad(func(r httpRouter.Route) {
			m.ObserveViewLoad(r.Name)
			log.ForView(r.Name).Info().Str("path", r.Path).Msg("vista diferida cargada")
		}),
	)
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.API.Timeout() + time.Second*10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI: http://localhost:<port>/docs (solo si existe el archivo)
	if cfg.Docs.File != "" {
		if _, err := os.Stat(cfg.Docs.File); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.Docs.File,
				Path:     "docs",
				Title:    "Inventario Web",
			}))
		} else {
			log.Warn().Str("file", cfg.Docs.File).Msg("documentación OpenAPI no encontrada, /docs deshabilitado")
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "backend": client.BaseURL()})
	})
	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{Routes: routes, Metrics: m})

	return &server{app: app, routes: routes, metrics: m}, nil
}
