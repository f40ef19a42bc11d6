package http

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-web/internal/application/dto"
	"github.com/jhoicas/inventario-web/internal/domain/entity"
	"github.com/jhoicas/inventario-web/internal/infrastructure/metrics"
)

// SalesOrdersView pedidos de venta. Se construye de forma diferida.
type SalesOrdersView struct {
	api     BackendAPI
	metrics *metrics.Metrics
}

// NewSalesOrdersView construye la vista.
func NewSalesOrdersView(deps ViewDeps) *SalesOrdersView {
	return &SalesOrdersView{api: deps.API, metrics: deps.Metrics}
}

// Handle
//
//	GET  /orders            → listado de pedidos
//	POST /orders            → POST /sales/
//	PUT  /orders/:id/items  → PUT /sales/{id}/items con {"items": [...]}
func (v *SalesOrdersView) Handle(c *fiber.Ctx) error {
	parts := subPath(c)
	switch {
	case len(parts) == 0:
		switch c.Method() {
		case fiber.MethodGet:
			return v.list(c)
		case fiber.MethodPost:
			return v.create(c)
		}
		return methodNotAllowed(c)

	case len(parts) == 2 && parts[1] == "items":
		if c.Method() != fiber.MethodPut {
			return methodNotAllowed(c)
		}
		return v.updateItems(c, parts[0])
	}
	return notFound(c)
}

func (v *SalesOrdersView) list(c *fiber.Ctx) error {
	resp, err := v.api.GetSalesOrders(c.UserContext())
	if err != nil {
		return backendError(c, ViewSalesOrders, v.metrics, err)
	}
	var orders []entity.SalesOrder
	if err := resp.Decode(&orders); err != nil {
		return invalidPayload(c, err)
	}
	revenue := decimal.Zero
	for _, o := range orders {
		revenue = revenue.Add(o.Total())
	}
	return page(c, ViewSalesOrders, dto.SalesOrdersDTO{
		Orders:     dto.RawJSON(resp.Body),
		OrderCount: len(orders),
		Revenue:    revenue,
	})
}

func (v *SalesOrdersView) create(c *fiber.Ctx) error {
	data, ok := jsonBody(c)
	if !ok {
		return invalidBody(c, "cuerpo JSON inválido")
	}
	resp, err := v.api.CreateSalesOrder(c.UserContext(), data)
	if err != nil {
		return backendError(c, ViewSalesOrders, v.metrics, err)
	}
	return relay(c, resp)
}

func (v *SalesOrdersView) updateItems(c *fiber.Ctx, orderID string) error {
	var in dto.UpdateItemsRequest
	if err := json.Unmarshal(c.Body(), &in); err != nil {
		return invalidBody(c, "se espera {\"items\": [...]}")
	}
	var items any
	if len(in.Items) > 0 {
		items = json.RawMessage(append([]byte(nil), in.Items...))
	}
	resp, err := v.api.UpdateSalesOrderItems(c.UserContext(), orderID, items)
	if err != nil {
		return backendError(c, ViewSalesOrders, v.metrics, err)
	}
	return relay(c, resp)
}
