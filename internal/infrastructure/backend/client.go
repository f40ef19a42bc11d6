// Package backend implementa el cliente HTTP del backend REST de inventario y ventas.
//
// Cada método corresponde a una única operación del backend y devuelve la
// respuesta sin modificar: no valida entradas, no transforma salidas, no
// reintenta, no cachea y no registra logs. Los errores de red se devuelven tal
// cual y cualquier estado fuera de 2xx se devuelve como *StatusError.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jhoicas/inventario-web/internal/domain"
)

// DefaultBaseURL origen del backend cuando no se configura otro.
const DefaultBaseURL = "http://localhost:8000"

const (
	contentTypeJSON = "application/json"

	pathProducts       = "/products/"
	pathPurchases      = "/purchases/"
	pathSales          = "/sales/"
	pathSalesUpload    = "/sales/upload"
	pathSalesAll       = "/sales/all"
	pathInventoryStats = "/inventory/stats"
	pathInventoryClear = "/inventory/clear"
)

// Client envoltorio del backend. Inmutable tras NewClient; seguro para uso concurrente.
type Client struct {
	httpClient *http.Client
	baseURL    string
	headers    http.Header
	variant    DashboardVariant

	timeout *time.Duration // se aplica después de todas las opciones
}

// Option personaliza el cliente en NewClient.
type Option func(*Client)

// WithHTTPClient reemplaza el *http.Client subyacente (transporte, proxy, tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout fija el timeout de red del cliente HTTP. 0 = sin timeout.
// Vale sea cual sea el orden respecto de WithHTTPClient; el *http.Client
// recibido no se modifica, se usa una copia.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = &d }
}

// WithHeader agrega o reemplaza un header por defecto.
func WithHeader(key, value string) Option {
	return func(c *Client) { c.headers.Set(key, value) }
}

// WithDashboardVariant elige qué llamadas componen GetDashboardStats.
func WithDashboardVariant(v DashboardVariant) Option {
	return func(c *Client) { c.variant = v }
}

// NewClient construye el cliente. baseURL vacío usa DefaultBaseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("backend: %w: %v", domain.ErrInvalidBaseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("backend: %w: %q", domain.ErrInvalidBaseURL, baseURL)
	}

	c := &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
		headers:    make(http.Header),
		variant:    DashboardInventoryStats,
	}
	c.headers.Set("Content-Type", contentTypeJSON)

	for _, opt := range opts {
		opt(c)
	}
	if c.timeout != nil {
		hc := *c.httpClient
		hc.Timeout = *c.timeout
		c.httpClient = &hc
	}
	if _, err := DashboardCalls(c.variant); err != nil {
		return nil, fmt.Errorf("backend: %w", err)
	}
	return c, nil
}

// BaseURL origen configurado (sin "/" final).
func (c *Client) BaseURL() string { return c.baseURL }

// DashboardVariant variante usada por GetDashboardStats.
func (c *Client) DashboardVariant() DashboardVariant { return c.variant }

// ── Products ──────────────────────────────────────────────────────────────────

// GetProducts GET /products/
func (c *Client) GetProducts(ctx context.Context) (*Response, error) {
	return c.do(ctx, http.MethodGet, pathProducts, nil, "")
}

// GetProduct GET /products/{id}
func (c *Client) GetProduct(ctx context.Context, id string) (*Response, error) {
	return c.do(ctx, http.MethodGet, pathProducts+url.PathEscape(id), nil, "")
}

// CreateProduct POST /products/
func (c *Client) CreateProduct(ctx context.Context, data any) (*Response, error) {
	return c.doJSON(ctx, http.MethodPost, pathProducts, data)
}

// ── Purchases ─────────────────────────────────────────────────────────────────

// GetPurchases GET /purchases/
func (c *Client) GetPurchases(ctx context.Context) (*Response, error) {
	return c.do(ctx, http.MethodGet, pathPurchases, nil, "")
}

// CreatePurchase POST /purchases/
func (c *Client) CreatePurchase(ctx context.Context, data any) (*Response, error) {
	return c.doJSON(ctx, http.MethodPost, pathPurchases, data)
}

// ── Sales ─────────────────────────────────────────────────────────────────────

// GetSalesOrders GET /sales/
func (c *Client) GetSalesOrders(ctx context.Context) (*Response, error) {
	return c.do(ctx, http.MethodGet, pathSales, nil, "")
}

// CreateSalesOrder POST /sales/
func (c *Client) CreateSalesOrder(ctx context.Context, data any) (*Response, error) {
	return c.doJSON(ctx, http.MethodPost, pathSales, data)
}

// UploadSalesOrder POST /sales/upload con cuerpo multipart/form-data.
// El Content-Type multipart reemplaza al application/json por defecto.
func (c *Client) UploadSalesOrder(ctx context.Context, form *FormData) (*Response, error) {
	body, contentType, err := form.encode()
	if err != nil {
		return nil, fmt.Errorf("backend: codificar multipart: %w", err)
	}
	return c.do(ctx, http.MethodPost, pathSalesUpload, body, contentType)
}

// DeleteAllSalesOrders DELETE /sales/all. Sin confirmación.
func (c *Client) DeleteAllSalesOrders(ctx context.Context) (*Response, error) {
	return c.do(ctx, http.MethodDelete, pathSalesAll, nil, "")
}

// UpdateSalesOrderItems PUT /sales/{orderID}/items con cuerpo {"items": items}.
func (c *Client) UpdateSalesOrderItems(ctx context.Context, orderID string, items any) (*Response, error) {
	path := pathSales + url.PathEscape(orderID) + "/items"
	return c.doJSON(ctx, http.MethodPut, path, itemsPayload{Items: items})
}

type itemsPayload struct {
	Items any `json:"items"`
}

// ── Inventory ─────────────────────────────────────────────────────────────────

// GetInventoryStats GET /inventory/stats
func (c *Client) GetInventoryStats(ctx context.Context) (*Response, error) {
	return c.do(ctx, http.MethodGet, pathInventoryStats, nil, "")
}

// ClearInventory DELETE /inventory/clear. Sin confirmación.
func (c *Client) ClearInventory(ctx context.Context) (*Response, error) {
	return c.do(ctx, http.MethodDelete, pathInventoryClear, nil, "")
}

// ── Transporte ────────────────────────────────────────────────────────────────

// doJSON serializa data como JSON. data nil envía la petición sin cuerpo.
func (c *Client) doJSON(ctx context.Context, method, path string, data any) (*Response, error) {
	if data == nil {
		return c.do(ctx, method, path, nil, "")
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("backend: serializar cuerpo: %w", err)
	}
	return c.do(ctx, method, path, bytes.NewReader(raw), "")
}

// do ejecuta una única petición. contentType vacío conserva el header por defecto.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), body)
	if err != nil {
		return nil, fmt.Errorf("backend: crear request: %w", err)
	}
	for k, vs := range c.headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	out := &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       raw,
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Method: method, Path: path, Response: out}
	}
	return out, nil
}

// endpoint concatena origen y ruta conservando cualquier prefijo del origen
// (http://host/api + /products/ → http://host/api/products/).
func (c *Client) endpoint(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}
