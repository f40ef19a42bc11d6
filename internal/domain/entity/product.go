package entity

import "github.com/shopspring/decimal"

// Product modelo de lectura de un producto tal como lo devuelve GET /products/.
// Solo se usa para resumir datos en las vistas; nunca para validar lo que se envía.
type Product struct {
	ID            ID              `json:"id"`
	SKU           string          `json:"sku,omitempty"`
	Name          string          `json:"name"`
	WeightG       int             `json:"weight_g,omitempty"`
	CostPrice     decimal.Decimal `json:"cost_price"`     // costo promedio (TWD)
	StockQuantity int             `json:"stock_quantity"` // unidades disponibles
}

// StockValue costo del stock disponible: cantidad × costo promedio.
func (p Product) StockValue() decimal.Decimal {
	return p.CostPrice.Mul(decimal.NewFromInt(int64(p.StockQuantity)))
}
