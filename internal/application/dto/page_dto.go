package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// InventoryDTO modelo de la vista Inventory (GET /inventory).
type InventoryDTO struct {
	Stats      json.RawMessage `json:"stats"`
	Products   json.RawMessage `json:"products"`
	StockValue decimal.Decimal `json:"stock_value_twd"` // Σ stock × costo según la lista de productos
	ReportURL  string          `json:"report_url"`
}

// PurchaseDTO modelo de la vista Purchase (GET /purchase).
type PurchaseDTO struct {
	Purchases     json.RawMessage `json:"purchases"`
	Products      json.RawMessage `json:"products"`
	BatchCount    int             `json:"batch_count"`
	LandedCostTWD decimal.Decimal `json:"landed_cost_twd"`
}

// SalesOrdersDTO modelo de la vista SalesOrders (GET /orders).
type SalesOrdersDTO struct {
	Orders     json.RawMessage `json:"orders"`
	OrderCount int             `json:"order_count"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// UploadDTO modelo de la vista Upload (GET /upload).
type UploadDTO struct {
	Field  string `json:"field"`  // nombre del campo multipart esperado
	Action string `json:"action"` // POST destino
}

// SettingsDTO modelo de la vista Settings (GET /settings).
type SettingsDTO struct {
	BackendURL       string          `json:"backend_url"`
	DashboardVariant string          `json:"dashboard_variant"`
	DashboardCalls   []string        `json:"dashboard_calls"`
	Actions          []SettingAction `json:"actions"`
}

// SettingAction acción de mantenimiento disponible en Settings.
type SettingAction struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

// UpdateItemsRequest cuerpo de PUT /orders/:id/items.
type UpdateItemsRequest struct {
	Items json.RawMessage `json:"items"`
}
