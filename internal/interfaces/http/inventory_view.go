package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-web/internal/application/dto"
	"github.com/jhoicas/inventario-web/internal/application/ports"
	"github.com/jhoicas/inventario-web/internal/domain/entity"
	"github.com/jhoicas/inventario-web/internal/infrastructure/metrics"
)

const inventoryReportPath = "/inventory/report.pdf"

// InventoryView estado del inventario, alta/consulta de productos y reporte PDF.
type InventoryView struct {
	api     BackendAPI
	reports ports.InventoryReportGenerator
	metrics *metrics.Metrics
}

// NewInventoryView construye la vista.
func NewInventoryView(deps ViewDeps) *InventoryView {
	return &InventoryView{api: deps.API, reports: deps.Reports, metrics: deps.Metrics}
}

// Handle
//
//	GET  /inventory               → estadísticas + productos
//	GET  /inventory/report.pdf    → reporte PDF de valorización
//	POST /inventory/products      → POST /products/
//	GET  /inventory/products/:id  → GET /products/{id}
func (v *InventoryView) Handle(c *fiber.Ctx) error {
	parts := subPath(c)
	switch {
	case len(parts) == 0:
		if c.Method() != fiber.MethodGet {
			return methodNotAllowed(c)
		}
		return v.overview(c)

	case len(parts) == 1 && parts[0] == "report.pdf":
		if c.Method() != fiber.MethodGet {
			return methodNotAllowed(c)
		}
		return v.report(c)

	case len(parts) == 1 && parts[0] == "products":
		if c.Method() != fiber.MethodPost {
			return methodNotAllowed(c)
		}
		return v.createProduct(c)

	case len(parts) == 2 && parts[0] == "products":
		if c.Method() != fiber.MethodGet {
			return methodNotAllowed(c)
		}
		resp, err := v.api.GetProduct(c.UserContext(), parts[1])
		if err != nil {
			return backendError(c, ViewInventory, v.metrics, err)
		}
		return relay(c, resp)
	}
	return notFound(c)
}

func (v *InventoryView) overview(c *fiber.Ctx) error {
	ctx := c.UserContext()
	statsResp, err := v.api.GetInventoryStats(ctx)
	if err != nil {
		return backendError(c, ViewInventory, v.metrics, err)
	}
	productsResp, err := v.api.GetProducts(ctx)
	if err != nil {
		return backendError(c, ViewInventory, v.metrics, err)
	}

	var products []entity.Product
	if err := productsResp.Decode(&products); err != nil {
		return invalidPayload(c, err)
	}
	value := decimal.Zero
	for _, p := range products {
		value = value.Add(p.StockValue())
	}

	return page(c, ViewInventory, dto.InventoryDTO{
		Stats:      dto.RawJSON(statsResp.Body),
		Products:   dto.RawJSON(productsResp.Body),
		StockValue: value,
		ReportURL:  inventoryReportPath,
	})
}

func (v *InventoryView) report(c *fiber.Ctx) error {
	if v.reports == nil {
		return notFound(c)
	}
	ctx := c.UserContext()
	statsResp, err := v.api.GetInventoryStats(ctx)
	if err != nil {
		return backendError(c, ViewInventory, v.metrics, err)
	}
	productsResp, err := v.api.GetProducts(ctx)
	if err != nil {
		return backendError(c, ViewInventory, v.metrics, err)
	}

	var stats entity.InventoryStats
	if err := statsResp.Decode(&stats); err != nil {
		return invalidPayload(c, err)
	}
	var products []entity.Product
	if err := productsResp.Decode(&products); err != nil {
		return invalidPayload(c, err)
	}

	doc, err := v.reports.GenerateInventoryReport(ctx, stats, products)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario.pdf"`)
	return c.Send(doc)
}

func (v *InventoryView) createProduct(c *fiber.Ctx) error {
	data, ok := jsonBody(c)
	if !ok {
		return invalidBody(c, "cuerpo JSON inválido")
	}
	resp, err := v.api.CreateProduct(c.UserContext(), data)
	if err != nil {
		return backendError(c, ViewInventory, v.metrics, err)
	}
	return relay(c, resp)
}
