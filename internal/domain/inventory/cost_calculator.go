package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-web/internal/domain/entity"
)

// WeightedAverageCost costo promedio ponderado tras una entrada (servicio de dominio).
// NuevoCosto = ((StockActual * CostoActual) + (CantEntrada * CostoEntrada)) / (StockActual + CantEntrada)
// Sin unidades resultantes el costo actual se conserva.
func WeightedAverageCost(stockQty int, avgCost decimal.Decimal, inQty int, inCost decimal.Decimal) decimal.Decimal {
	sum := decimal.NewFromInt(int64(stockQty + inQty))
	if sum.LessThanOrEqual(decimal.Zero) {
		return avgCost
	}
	num := decimal.NewFromInt(int64(stockQty)).Mul(avgCost).
		Add(decimal.NewFromInt(int64(inQty)).Mul(inCost))
	return num.Div(sum)
}

// BatchRates tasas de prorrateo de un lote de compra.
type BatchRates struct {
	ExchangeRate     decimal.Decimal `json:"exchange_rate"`       // TWD por JPY
	ShippingRatePerG decimal.Decimal `json:"shipping_rate_per_g"` // TWD por gramo
}

// ComputeBatchRates
//   - tipo de cambio = (factura tarjeta + comisión exterior) / total JPY
//   - envío por gramo = envío TWD / Σ(peso × cantidad)
//
// Denominadores en cero dejan la tasa en cero.
func ComputeBatchRates(b entity.PurchaseBatch) BatchRates {
	r := BatchRates{ExchangeRate: decimal.Zero, ShippingRatePerG: decimal.Zero}
	if b.TotalJPY.GreaterThan(decimal.Zero) {
		r.ExchangeRate = b.TotalTWDCardBill.Add(b.TotalTWDForeignFee).Div(b.TotalJPY)
	}
	weight := 0
	for _, it := range b.Items {
		weight += it.ItemWeightG * it.Qty
	}
	if weight > 0 {
		r.ShippingRatePerG = b.TotalShippingTWD.Div(decimal.NewFromInt(int64(weight)))
	}
	return r
}

// ItemCost costo unitario final en TWD: precio JPY × tipo de cambio + peso × envío por gramo.
func ItemCost(it entity.PurchaseItem, r BatchRates) decimal.Decimal {
	base := it.UnitPriceJPY.Mul(r.ExchangeRate)
	shipping := decimal.NewFromInt(int64(it.ItemWeightG)).Mul(r.ShippingRatePerG)
	return base.Add(shipping)
}

// ItemPreview efecto estimado de una línea del lote sobre su producto.
type ItemPreview struct {
	ProductID     entity.ID       `json:"product_id"`
	Qty           int             `json:"qty"`
	FinalCostTWD  decimal.Decimal `json:"final_cost_twd"`
	Known         bool            `json:"known"` // el producto existe en el catálogo actual
	CurrentQty    int             `json:"current_qty"`
	CurrentCost   decimal.Decimal `json:"current_cost_twd"`
	ProjectedQty  int             `json:"projected_qty"`
	ProjectedCost decimal.Decimal `json:"projected_cost_twd"`
}

// BatchPreview estimación de un lote antes de registrarlo en el backend.
type BatchPreview struct {
	Rates         BatchRates      `json:"rates"`
	Items         []ItemPreview   `json:"items"`
	LandedCostTWD decimal.Decimal `json:"landed_cost_twd"`
}

// PreviewBatch calcula tasas, costo final por línea y el costo promedio
// proyectado de cada producto. Varias líneas del mismo producto se aplican en
// orden, cada una sobre el resultado de la anterior. El backend sigue siendo
// quien registra el lote; esto es solo una estimación.
func PreviewBatch(b entity.PurchaseBatch, products []entity.Product) BatchPreview {
	type stock struct {
		qty  int
		cost decimal.Decimal
	}
	current := make(map[entity.ID]stock, len(products))
	for _, p := range products {
		current[p.ID] = stock{qty: p.StockQuantity, cost: p.CostPrice}
	}

	rates := ComputeBatchRates(b)
	out := BatchPreview{Rates: rates, Items: make([]ItemPreview, 0, len(b.Items)), LandedCostTWD: decimal.Zero}
	for _, it := range b.Items {
		cost := ItemCost(it, rates)
		s, known := current[it.ProductID]
		if !known {
			s = stock{cost: decimal.Zero}
		}
		next := stock{
			qty:  s.qty + it.Qty,
			cost: WeightedAverageCost(s.qty, s.cost, it.Qty, cost),
		}
		if known {
			current[it.ProductID] = next
		}

		out.Items = append(out.Items, ItemPreview{
			ProductID:     it.ProductID,
			Qty:           it.Qty,
			FinalCostTWD:  cost,
			Known:         known,
			CurrentQty:    s.qty,
			CurrentCost:   s.cost,
			ProjectedQty:  next.qty,
			ProjectedCost: next.cost,
		})
		out.LandedCostTWD = out.LandedCostTWD.Add(cost.Mul(decimal.NewFromInt(int64(it.Qty))))
	}
	return out
}
