package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-web/internal/application/dto"
	"github.com/jhoicas/inventario-web/internal/domain"
	"github.com/jhoicas/inventario-web/internal/infrastructure/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Routes  *RouteTable
	Metrics *metrics.Metrics
}

// Router registra las vistas de la tabla de rutas. Cada vista atiende su ruta
// y todo lo que cuelga de ella (acciones y sub-recursos). Debe registrarse
// después de las rutas técnicas (/health, /metrics, /docs).
func Router(app *fiber.App, deps RouterDeps) {
	for _, r := range deps.Routes.Routes() {
		h := viewHandler(deps, r)
		app.All(r.Path, h)
		if r.Path != "/" {
			app.All(r.Path+"/*", h)
		}
	}
	// Cualquier otra ruta: 404 con el formato de error de la aplicación.
	app.Use(notFound)
}

func viewHandler(deps RouterDeps, r Route) fiber.Handler {
	return func(c *fiber.Ctx) error {
		view, err := deps.Routes.View(r.Path)
		if errors.Is(err, domain.ErrNilView) {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Code: "VIEW_UNAVAILABLE", Message: err.Error(),
			})
		}
		if err != nil {
			return notFound(c)
		}
		herr := view.Handle(c)
		deps.Metrics.ObserveViewRequest(r.Name, c.Method(), c.Response().StatusCode())
		return herr
	}
}
