package http

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-web/internal/application/dto"
	"github.com/jhoicas/inventario-web/internal/application/ports"
	"github.com/jhoicas/inventario-web/internal/infrastructure/backend"
	"github.com/jhoicas/inventario-web/internal/infrastructure/metrics"
)

// Verificar en tiempo de compilación que el cliente del backend satisface BackendAPI.
var _ BackendAPI = (*backend.Client)(nil)

// BackendAPI operaciones del backend que consumen las vistas.
type BackendAPI interface {
	GetProducts(ctx context.Context) (*backend.Response, error)
	GetProduct(ctx context.Context, id string) (*backend.Response, error)
	CreateProduct(ctx context.Context, data any) (*backend.Response, error)
	GetPurchases(ctx context.Context) (*backend.Response, error)
	CreatePurchase(ctx context.Context, data any) (*backend.Response, error)
	GetSalesOrders(ctx context.Context) (*backend.Response, error)
	CreateSalesOrder(ctx context.Context, data any) (*backend.Response, error)
	UploadSalesOrder(ctx context.Context, form *backend.FormData) (*backend.Response, error)
	DeleteAllSalesOrders(ctx context.Context) (*backend.Response, error)
	UpdateSalesOrderItems(ctx context.Context, orderID string, items any) (*backend.Response, error)
	GetInventoryStats(ctx context.Context) (*backend.Response, error)
	ClearInventory(ctx context.Context) (*backend.Response, error)
	GetDashboardStats(ctx context.Context) ([]*backend.Response, error)
	BaseURL() string
	DashboardVariant() backend.DashboardVariant
}

// ViewDeps dependencias compartidas por las vistas.
type ViewDeps struct {
	API     BackendAPI
	Reports ports.InventoryReportGenerator
	Metrics *metrics.Metrics
}

// Nombres de las vistas.
const (
	ViewDashboard   = "Dashboard"
	ViewUpload      = "Upload"
	ViewInventory   = "Inventory"
	ViewPurchase    = "Purchase"
	ViewSalesOrders = "SalesOrders"
	ViewSettings    = "Settings"
)

// ── Respuestas comunes ────────────────────────────────────────────────────────

// page responde el modelo de una vista.
func page(c *fiber.Ctx, view string, data any) error {
	return c.JSON(dto.PageDTO{View: view, Data: data})
}

// relay reenvía la respuesta del backend sin modificarla.
func relay(c *fiber.Ctx, resp *backend.Response) error {
	if ct := resp.ContentType(); ct != "" {
		c.Set(fiber.HeaderContentType, ct)
	}
	return c.Status(resp.StatusCode).Send(resp.Body)
}

// backendError interpreta el rechazo de una llamada al backend.
//   - *backend.StatusError → mismo estado, cuerpo del backend en Detail
//   - cualquier otro error → 502
func backendError(c *fiber.Ctx, view string, m *metrics.Metrics, err error) error {
	var se *backend.StatusError
	if errors.As(err, &se) {
		m.ObserveBackendFailure(view, metrics.FailureStatus)
		return c.Status(se.StatusCode()).JSON(dto.ErrorResponse{
			Code:    "BACKEND_ERROR",
			Message: se.Error(),
			Detail:  dto.RawJSON(se.Response.Body),
		})
	}
	m.ObserveBackendFailure(view, metrics.FailureTransport)
	return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
		Code:    "BACKEND_UNAVAILABLE",
		Message: err.Error(),
	})
}

// invalidPayload el backend respondió 2xx con un cuerpo que la vista no entiende.
func invalidPayload(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
		Code:    "INVALID_PAYLOAD",
		Message: err.Error(),
	})
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Code: "NOT_FOUND", Message: "recurso no encontrado: " + c.Path(),
	})
}

func methodNotAllowed(c *fiber.Ctx) error {
	return c.Status(fiber.StatusMethodNotAllowed).JSON(dto.ErrorResponse{
		Code: "METHOD_NOT_ALLOWED", Message: c.Method() + " no permitido en " + c.Path(),
	})
}

func invalidBody(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code: "INVALID_BODY", Message: msg,
	})
}

// ── Helpers de request ────────────────────────────────────────────────────────

// subPath segmentos bajo la ruta de la vista ("/orders/o-1/items" → ["o-1", "items"]).
func subPath(c *fiber.Ctx) []string {
	rest := strings.Trim(c.Params("*"), "/")
	if rest == "" {
		return nil
	}
	return strings.Split(rest, "/")
}

// jsonBody cuerpo JSON del request para reenviarlo tal cual.
// Cuerpo vacío → nil (la llamada se envía sin cuerpo).
func jsonBody(c *fiber.Ctx) (any, bool) {
	body := c.Body()
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, true
	}
	if !json.Valid(body) {
		return nil, false
	}
	// c.Body() se reutiliza tras el handler; se copia antes de reenviarlo.
	return json.RawMessage(append([]byte(nil), body...)), true
}
