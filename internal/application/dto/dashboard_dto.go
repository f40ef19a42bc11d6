package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-web/internal/domain/entity"
)

// DashboardDTO modelo de la vista Dashboard (GET /).
type DashboardDTO struct {
	Variant string               `json:"variant"` // inventory_stats | purchases
	Calls   []string             `json:"calls"`   // orden de emisión
	Results []DashboardResultDTO `json:"results"` // mismo orden que Calls
	Summary DashboardSummaryDTO  `json:"summary"`
}

// DashboardResultDTO cuerpo crudo de una de las llamadas del dashboard.
type DashboardResultDTO struct {
	Call string          `json:"call"`
	Body json.RawMessage `json:"body"`
}

// DashboardSummaryDTO KPIs derivados de los resultados.
// InventoryStats y PurchaseCount solo se llenan si la variante los incluye.
type DashboardSummaryDTO struct {
	OrderCount     int                    `json:"order_count"`
	ProductCount   int                    `json:"product_count"`
	Revenue        decimal.Decimal        `json:"revenue"`
	LowStock       []string               `json:"low_stock"` // productos con stock <= LowStockThreshold
	InventoryStats *entity.InventoryStats `json:"inventory_stats,omitempty"`
	PurchaseCount  *int                   `json:"purchase_count,omitempty"`
	PurchaseCost   *decimal.Decimal       `json:"purchase_cost_twd,omitempty"`
}

// LowStockThreshold umbral de stock bajo del widget del dashboard.
const LowStockThreshold = 5
