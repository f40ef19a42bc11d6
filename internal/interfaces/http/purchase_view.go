package http

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-web/internal/application/dto"
	"github.com/jhoicas/inventario-web/internal/domain/entity"
	"github.com/jhoicas/inventario-web/internal/domain/inventory"
	"github.com/jhoicas/inventario-web/internal/infrastructure/metrics"
)

// PurchaseView lotes de compra.
type PurchaseView struct {
	api     BackendAPI
	metrics *metrics.Metrics
}

// NewPurchaseView construye la vista.
func NewPurchaseView(deps ViewDeps) *PurchaseView {
	return &PurchaseView{api: deps.API, metrics: deps.Metrics}
}

// Handle
//
//	GET  /purchase         → compras + productos (para el selector de productos)
//	POST /purchase         → POST /purchases/
//	POST /purchase/preview → estimación de costos del lote, sin registrarlo
func (v *PurchaseView) Handle(c *fiber.Ctx) error {
	parts := subPath(c)
	if len(parts) == 1 && parts[0] == "preview" {
		if c.Method() != fiber.MethodPost {
			return methodNotAllowed(c)
		}
		return v.preview(c)
	}
	if len(parts) > 0 {
		return notFound(c)
	}
	switch c.Method() {
	case fiber.MethodGet:
		return v.overview(c)
	case fiber.MethodPost:
		data, ok := jsonBody(c)
		if !ok {
			return invalidBody(c, "cuerpo JSON inválido")
		}
		resp, err := v.api.CreatePurchase(c.UserContext(), data)
		if err != nil {
			return backendError(c, ViewPurchase, v.metrics, err)
		}
		return relay(c, resp)
	default:
		return methodNotAllowed(c)
	}
}

func (v *PurchaseView) overview(c *fiber.Ctx) error {
	ctx := c.UserContext()
	purchasesResp, err := v.api.GetPurchases(ctx)
	if err != nil {
		return backendError(c, ViewPurchase, v.metrics, err)
	}
	productsResp, err := v.api.GetProducts(ctx)
	if err != nil {
		return backendError(c, ViewPurchase, v.metrics, err)
	}

	var batches []entity.PurchaseBatch
	if err := purchasesResp.Decode(&batches); err != nil {
		return invalidPayload(c, err)
	}
	landed := decimal.Zero
	for _, b := range batches {
		landed = landed.Add(b.LandedCostTWD())
	}

	return page(c, ViewPurchase, dto.PurchaseDTO{
		Purchases:     dto.RawJSON(purchasesResp.Body),
		Products:      dto.RawJSON(productsResp.Body),
		BatchCount:    len(batches),
		LandedCostTWD: landed,
	})
}

// preview calcula tipo de cambio, envío por gramo y costo promedio proyectado
// con el catálogo actual. Solo consulta GET /products/.
func (v *PurchaseView) preview(c *fiber.Ctx) error {
	var batch entity.PurchaseBatch
	if err := json.Unmarshal(c.Body(), &batch); err != nil {
		return invalidBody(c, "lote de compra inválido: "+err.Error())
	}
	resp, err := v.api.GetProducts(c.UserContext())
	if err != nil {
		return backendError(c, ViewPurchase, v.metrics, err)
	}
	var products []entity.Product
	if err := resp.Decode(&products); err != nil {
		return invalidPayload(c, err)
	}
	return page(c, ViewPurchase, inventory.PreviewBatch(batch, products))
}
