package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-web/internal/application/dto"
	"github.com/jhoicas/inventario-web/internal/domain/entity"
	"github.com/jhoicas/inventario-web/internal/infrastructure/backend"
	"github.com/jhoicas/inventario-web/internal/infrastructure/metrics"
)

// DashboardView vista principal: estadísticas combinadas.
type DashboardView struct {
	api     BackendAPI
	metrics *metrics.Metrics
}

// NewDashboardView construye la vista.
func NewDashboardView(deps ViewDeps) *DashboardView {
	return &DashboardView{api: deps.API, metrics: deps.Metrics}
}

// Handle GET /
//
// Respuesta: PageDTO con DashboardDTO (variante, llamadas, cuerpos crudos en
// orden de llamada y resumen). Si una llamada falla, falla toda la vista.
func (v *DashboardView) Handle(c *fiber.Ctx) error {
	if len(subPath(c)) > 0 {
		return notFound(c)
	}
	if c.Method() != fiber.MethodGet {
		return methodNotAllowed(c)
	}

	variant := v.api.DashboardVariant()
	calls, err := backend.DashboardCalls(variant)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	results, err := v.api.GetDashboardStats(c.UserContext())
	if err != nil {
		return backendError(c, ViewDashboard, v.metrics, err)
	}
	if len(results) != len(calls) {
		return invalidPayload(c, fmt.Errorf("dashboard: %d resultados para %d llamadas", len(results), len(calls)))
	}

	summary, err := summarizeDashboard(calls, results)
	if err != nil {
		return invalidPayload(c, err)
	}

	out := dto.DashboardDTO{
		Variant: string(variant),
		Calls:   calls,
		Results: make([]dto.DashboardResultDTO, len(calls)),
		Summary: summary,
	}
	for i, name := range calls {
		out.Results[i] = dto.DashboardResultDTO{Call: name, Body: dto.RawJSON(results[i].Body)}
	}
	return page(c, ViewDashboard, out)
}

// summarizeDashboard deriva los KPIs de cada resultado según su llamada.
func summarizeDashboard(calls []string, results []*backend.Response) (dto.DashboardSummaryDTO, error) {
	summary := dto.DashboardSummaryDTO{Revenue: decimal.Zero, LowStock: []string{}}

	for i, name := range calls {
		resp := results[i]
		switch name {
		case backend.CallSalesOrders:
			var orders []entity.SalesOrder
			if err := resp.Decode(&orders); err != nil {
				return summary, fmt.Errorf("dashboard: %s: %w", name, err)
			}
			summary.OrderCount = len(orders)
			for _, o := range orders {
				summary.Revenue = summary.Revenue.Add(o.Total())
			}

		case backend.CallProducts:
			var products []entity.Product
			if err := resp.Decode(&products); err != nil {
				return summary, fmt.Errorf("dashboard: %s: %w", name, err)
			}
			summary.ProductCount = len(products)
			for _, p := range products {
				if p.StockQuantity <= dto.LowStockThreshold {
					summary.LowStock = append(summary.LowStock, p.Name)
				}
			}

		case backend.CallInventoryStats:
			var stats entity.InventoryStats
			if err := resp.Decode(&stats); err != nil {
				return summary, fmt.Errorf("dashboard: %s: %w", name, err)
			}
			summary.InventoryStats = &stats

		case backend.CallPurchases:
			var batches []entity.PurchaseBatch
			if err := resp.Decode(&batches); err != nil {
				return summary, fmt.Errorf("dashboard: %s: %w", name, err)
			}
			count := len(batches)
			cost := decimal.Zero
			for _, b := range batches {
				cost = cost.Add(b.LandedCostTWD())
			}
			summary.PurchaseCount = &count
			summary.PurchaseCost = &cost
		}
	}
	return summary, nil
}
