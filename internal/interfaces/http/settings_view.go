package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-web/internal/application/dto"
	"github.com/jhoicas/inventario-web/internal/infrastructure/backend"
	"github.com/jhoicas/inventario-web/internal/infrastructure/metrics"
)

// SettingsView configuración visible y acciones de mantenimiento.
type SettingsView struct {
	api     BackendAPI
	metrics *metrics.Metrics
}

// NewSettingsView construye la vista.
func NewSettingsView(deps ViewDeps) *SettingsView {
	return &SettingsView{api: deps.API, metrics: deps.Metrics}
}

var settingsActions = []dto.SettingAction{
	{Method: fiber.MethodDelete, Path: "/settings/sales", Description: "Eliminar todos los pedidos de venta"},
	{Method: fiber.MethodDelete, Path: "/settings/inventory", Description: "Reiniciar el inventario"},
}

// Handle
//
//	GET    /settings            → origen del backend, variante del dashboard, acciones
//	DELETE /settings/sales      → DELETE /sales/all
//	DELETE /settings/inventory  → DELETE /inventory/clear
func (v *SettingsView) Handle(c *fiber.Ctx) error {
	parts := subPath(c)
	if len(parts) == 0 {
		if c.Method() != fiber.MethodGet {
			return methodNotAllowed(c)
		}
		variant := v.api.DashboardVariant()
		calls, _ := backend.DashboardCalls(variant)
		return page(c, ViewSettings, dto.SettingsDTO{
			BackendURL:       v.api.BaseURL(),
			DashboardVariant: string(variant),
			DashboardCalls:   calls,
			Actions:          settingsActions,
		})
	}
	if len(parts) != 1 {
		return notFound(c)
	}

	var call func() (*backend.Response, error)
	switch parts[0] {
	case "sales":
		call = func() (*backend.Response, error) { return v.api.DeleteAllSalesOrders(c.UserContext()) }
	case "inventory":
		call = func() (*backend.Response, error) { return v.api.ClearInventory(c.UserContext()) }
	default:
		return notFound(c)
	}
	if c.Method() != fiber.MethodDelete {
		return methodNotAllowed(c)
	}

	resp, err := call()
	if err != nil {
		return backendError(c, ViewSettings, v.metrics, err)
	}
	return relay(c, resp)
}
