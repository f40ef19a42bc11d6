package entity

import "github.com/shopspring/decimal"

// SalesOrder pedido de venta importado desde la plataforma de e-commerce.
type SalesOrder struct {
	ID              ID          `json:"id"`
	PlatformOrderID string      `json:"platform_order_id"`
	OrderDate       string      `json:"order_date"` // el backend emite fechas sin zona horaria
	CustomerName    string      `json:"customer_name,omitempty"`
	Items           []OrderItem `json:"items"`
}

// OrderItem línea de un pedido de venta.
type OrderItem struct {
	ID          ID              `json:"id,omitempty"`
	OrderID     ID              `json:"order_id,omitempty"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	// TotalPrice es inválido cuando el backend omite el campo o lo envía null.
	// Un 0 explícito (línea bonificada) es un total válido.
	TotalPrice decimal.NullDecimal `json:"total_price"`
}

// LineTotal total_price si viene informado, si no quantity × unit_price.
func (it OrderItem) LineTotal() decimal.Decimal {
	if it.TotalPrice.Valid {
		return it.TotalPrice.Decimal
	}
	return it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// Total suma de las líneas.
func (o SalesOrder) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.LineTotal())
	}
	return total
}
