package entity

import "github.com/shopspring/decimal"

// PurchaseBatch lote de compra (importación en JPY con costos de envío en TWD).
type PurchaseBatch struct {
	ID                 ID              `json:"id"`
	PurchaseDate       string          `json:"purchase_date"`
	Source             string          `json:"source"`
	Currency           string          `json:"currency"`
	TotalJPY           decimal.Decimal `json:"total_jpy"`
	TotalTWDCardBill   decimal.Decimal `json:"total_twd_card_bill"`
	TotalTWDForeignFee decimal.Decimal `json:"total_twd_foreign_fee"`
	TotalShippingTWD   decimal.Decimal `json:"total_shipping_twd"`
	ExchangeRate       decimal.Decimal `json:"exchange_rate"`
	ShippingRatePerG   decimal.Decimal `json:"shipping_rate_per_g"`
	Items              []PurchaseItem  `json:"items"`
}

// PurchaseItem línea de un lote de compra.
type PurchaseItem struct {
	ID           ID              `json:"id"`
	BatchID      ID              `json:"batch_id"`
	ProductID    ID              `json:"product_id"`
	Qty          int             `json:"qty"`
	UnitPriceJPY decimal.Decimal `json:"unit_price_jpy"`
	ItemWeightG  int             `json:"item_weight_g"`
	FinalCostTWD decimal.Decimal `json:"final_cost_twd"` // costo unitario final (precio × tasa + envío)
}

// LandedCostTWD costo total en TWD del lote: Σ qty × final_cost_twd.
func (b PurchaseBatch) LandedCostTWD() decimal.Decimal {
	total := decimal.Zero
	for _, it := range b.Items {
		total = total.Add(it.FinalCostTWD.Mul(decimal.NewFromInt(int64(it.Qty))))
	}
	return total
}
