package entity

import "github.com/shopspring/decimal"

// InventoryStats respuesta de GET /inventory/stats.
type InventoryStats struct {
	TotalActiveProducts    int             `json:"total_active_products"`
	TotalInventoryValueTWD decimal.Decimal `json:"total_inventory_value_twd"`
}
