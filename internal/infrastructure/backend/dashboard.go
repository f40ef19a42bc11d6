package backend

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-web/internal/domain"
)

// DashboardVariant conjunto de llamadas que compone el dashboard.
//
// Existen dos versiones del front-end con conjuntos distintos y sin contrato
// documentado; ambas se exponen y se elige una por configuración.
type DashboardVariant string

const (
	// DashboardInventoryStats ventas + productos + estadísticas de inventario.
	DashboardInventoryStats DashboardVariant = "inventory_stats"
	// DashboardPurchases ventas + productos + compras.
	DashboardPurchases DashboardVariant = "purchases"
)

// Nombres de las llamadas del dashboard.
const (
	CallSalesOrders    = "sales_orders"
	CallProducts       = "products"
	CallInventoryStats = "inventory_stats"
	CallPurchases      = "purchases"
)

// ParseDashboardVariant valida el nombre de una variante ("" = por defecto).
func ParseDashboardVariant(s string) (DashboardVariant, error) {
	if s == "" {
		return DashboardInventoryStats, nil
	}
	v := DashboardVariant(s)
	if _, err := DashboardCalls(v); err != nil {
		return "", err
	}
	return v, nil
}

// DashboardCalls nombres de las llamadas de la variante, en orden de emisión.
func DashboardCalls(v DashboardVariant) ([]string, error) {
	switch v {
	case DashboardInventoryStats:
		return []string{CallSalesOrders, CallProducts, CallInventoryStats}, nil
	case DashboardPurchases:
		return []string{CallSalesOrders, CallProducts, CallPurchases}, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownDashboardVariant, string(v))
	}
}

func (c *Client) callByName(name string) func(context.Context) (*Response, error) {
	switch name {
	case CallSalesOrders:
		return c.GetSalesOrders
	case CallProducts:
		return c.GetProducts
	case CallInventoryStats:
		return c.GetInventoryStats
	case CallPurchases:
		return c.GetPurchases
	}
	return nil
}

// GetDashboardStats emite en paralelo las llamadas de la variante configurada y
// espera a que terminen todas. Los resultados respetan el orden de DashboardCalls.
// Si alguna falla se devuelve el error de la primera fallida (en orden de
// llamada) y ningún resultado parcial.
func (c *Client) GetDashboardStats(ctx context.Context) ([]*Response, error) {
	names, err := DashboardCalls(c.variant)
	if err != nil {
		return nil, err
	}

	type callResult struct {
		resp *Response
		err  error
	}

	chans := make([]chan callResult, len(names))
	for i, name := range names {
		call := c.callByName(name)
		ch := make(chan callResult, 1)
		chans[i] = ch
		go func() {
			resp, err := call(ctx)
			ch <- callResult{resp, err}
		}()
	}

	results := make([]*Response, len(names))
	var firstErr error
	for i, ch := range chans {
		r := <-ch
		if r.err != nil && firstErr == nil {
			firstErr = r.err
		}
		results[i] = r.resp
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}
