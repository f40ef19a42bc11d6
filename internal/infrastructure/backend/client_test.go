package backend_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-web/internal/domain"
	"github.com/jhoicas/inventario-web/internal/infrastructure/backend"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// recordedRequest petición vista por el backend falso.
type recordedRequest struct {
	Method      string
	Path        string
	ContentType string
	Body        string
}

// fakeBackend servidor httptest que registra cada petición y responde con
// un cuerpo fijo por ruta.
type fakeBackend struct {
	mu       sync.Mutex
	requests []recordedRequest
	server   *httptest.Server
	status   map[string]int
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	fb := &fakeBackend{status: map[string]int{}}
	fb.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		fb.mu.Lock()
		fb.requests = append(fb.requests, recordedRequest{
			Method:      r.Method,
			Path:        r.URL.Path,
			ContentType: r.Header.Get("Content-Type"),
			Body:        string(body),
		})
		status, ok := fb.status[r.Method+" "+r.URL.Path]
		fb.mu.Unlock()
		if !ok {
			status = http.StatusOK
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"path":"` + r.URL.Path + `","method":"` + r.Method + `"}`))
	}))
	t.Cleanup(fb.server.Close)
	return fb
}

func (fb *fakeBackend) recorded() []recordedRequest {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	out := make([]recordedRequest, len(fb.requests))
	copy(out, fb.requests)
	return out
}

func newTestClient(t *testing.T, baseURL string, opts ...backend.Option) *backend.Client {
	t.Helper()
	c, err := backend.NewClient(baseURL, opts...)
	require.NoError(t, err)
	return c
}

// ──────────────────────────────────────────────────────────────────────────────
// Construcción
// ──────────────────────────────────────────────────────────────────────────────

func TestNewClient_OrigenPorDefecto(t *testing.T) {
	c := newTestClient(t, "")
	assert.Equal(t, backend.DefaultBaseURL, c.BaseURL())
	assert.Equal(t, backend.DashboardInventoryStats, c.DashboardVariant())
}

func TestNewClient_OrigenInvalido(t *testing.T) {
	for _, raw := range []string{"localhost:8000", "/relativo", "http://[::1"} {
		_, err := backend.NewClient(raw)
		assert.ErrorIs(t, err, domain.ErrInvalidBaseURL, "origen %q debe rechazarse", raw)
	}
}

func TestNewClient_VarianteDesconocida(t *testing.T) {
	_, err := backend.NewClient("", backend.WithDashboardVariant("ventas"))
	assert.ErrorIs(t, err, domain.ErrUnknownDashboardVariant)
}

// ──────────────────────────────────────────────────────────────────────────────
// Una petición por operación, método y ruta documentados
// ──────────────────────────────────────────────────────────────────────────────

func TestWrappers_MetodoYRuta(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name   string
		call   func(c *backend.Client) (*backend.Response, error)
		method string
		path   string
		body   string
	}{
		{"GetProducts", func(c *backend.Client) (*backend.Response, error) { return c.GetProducts(ctx) }, http.MethodGet, "/products/", ""},
		{"GetProduct", func(c *backend.Client) (*backend.Response, error) { return c.GetProduct(ctx, "p-1") }, http.MethodGet, "/products/p-1", ""},
		{"CreateProduct", func(c *backend.Client) (*backend.Response, error) {
			return c.CreateProduct(ctx, map[string]any{"name": "Té verde"})
		}, http.MethodPost, "/products/", `{"name":"Té verde"}`},
		{"GetPurchases", func(c *backend.Client) (*backend.Response, error) { return c.GetPurchases(ctx) }, http.MethodGet, "/purchases/", ""},
		{"CreatePurchase", func(c *backend.Client) (*backend.Response, error) {
			return c.CreatePurchase(ctx, map[string]any{"source": "Rakuten"})
		}, http.MethodPost, "/purchases/", `{"source":"Rakuten"}`},
		{"GetSalesOrders", func(c *backend.Client) (*backend.Response, error) { return c.GetSalesOrders(ctx) }, http.MethodGet, "/sales/", ""},
		{"CreateSalesOrder", func(c *backend.Client) (*backend.Response, error) {
			return c.CreateSalesOrder(ctx, map[string]any{"platform_order_id": "A1"})
		}, http.MethodPost, "/sales/", `{"platform_order_id":"A1"}`},
		{"DeleteAllSalesOrders", func(c *backend.Client) (*backend.Response, error) { return c.DeleteAllSalesOrders(ctx) }, http.MethodDelete, "/sales/all", ""},
		{"UpdateSalesOrderItems", func(c *backend.Client) (*backend.Response, error) {
			return c.UpdateSalesOrderItems(ctx, "o-9", []map[string]any{{"product_name": "Matcha", "quantity": 2}})
		}, http.MethodPut, "/sales/o-9/items", `{"items":[{"product_name":"Matcha","quantity":2}]}`},
		{"GetInventoryStats", func(c *backend.Client) (*backend.Response, error) { return c.GetInventoryStats(ctx) }, http.MethodGet, "/inventory/stats", ""},
		{"ClearInventory", func(c *backend.Client) (*backend.Response, error) { return c.ClearInventory(ctx) }, http.MethodDelete, "/inventory/clear", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fb := newFakeBackend(t)
			c := newTestClient(t, fb.server.URL)

			resp, err := tc.call(c)
			require.NoError(t, err)

			reqs := fb.recorded()
			require.Len(t, reqs, 1, "debe emitirse exactamente una petición")
			assert.Equal(t, tc.method, reqs[0].Method)
			assert.Equal(t, tc.path, reqs[0].Path)
			assert.Equal(t, "application/json", reqs[0].ContentType)
			if tc.body != "" {
				assert.JSONEq(t, tc.body, reqs[0].Body)
			} else {
				assert.Empty(t, reqs[0].Body)
			}

			// La respuesta llega sin modificar.
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, `{"path":"`+tc.path+`","method":"`+tc.method+`"}`, string(resp.Body))
			assert.Equal(t, "application/json", resp.ContentType())
		})
	}
}

func TestClient_OrigenConPrefijo(t *testing.T) {
	fb := newFakeBackend(t)
	c := newTestClient(t, fb.server.URL+"/api/")

	_, err := c.GetInventoryStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/api/inventory/stats", fb.recorded()[0].Path)
}

func TestClient_HeadersPorDefectoSobrescribibles(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, backend.WithHeader("X-Tenant", "tienda-1"))
	_, err := c.GetProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tienda-1", got.Get("X-Tenant"))
	assert.Equal(t, "application/json", got.Get("Content-Type"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Upload multipart
// ──────────────────────────────────────────────────────────────────────────────

func TestUploadSalesOrder_Multipart(t *testing.T) {
	var (
		gotContentType string
		gotFile        string
		gotFilename    string
		gotField       string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/sales/upload", r.URL.Path)
		gotContentType = r.Header.Get("Content-Type")
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		f, fh, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			return
		}
		defer f.Close()
		raw, _ := io.ReadAll(f)
		gotFile = string(raw)
		gotFilename = fh.Filename
		gotField = r.FormValue("source")
		_, _ = w.Write([]byte(`{"status":"success","result":3}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, backend.WithHeader("Content-Type", "application/json"))
	form := backend.NewFormData().
		AddField("source", "Myship").
		AddFile("file", "pedidos.csv", strings.NewReader("订单编号,数量\nA1,2\n"))

	resp, err := c.UploadSalesOrder(context.Background(), form)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(gotContentType, "multipart/form-data; boundary="),
		"el upload debe enviarse como multipart aunque el header por defecto sea JSON (got %q)", gotContentType)
	assert.Equal(t, "订单编号,数量\nA1,2\n", gotFile)
	assert.Equal(t, "pedidos.csv", gotFilename)
	assert.Equal(t, "Myship", gotField)
	assert.Equal(t, `{"status":"success","result":3}`, string(resp.Body))
}

// ──────────────────────────────────────────────────────────────────────────────
// Errores: se propagan sin normalizar
// ──────────────────────────────────────────────────────────────────────────────

func TestClient_EstadoNo2xx_DevuelveStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Product not found"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	resp, err := c.GetProduct(context.Background(), "nope")
	assert.Nil(t, resp)

	var se *backend.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusNotFound, se.StatusCode())
	assert.Equal(t, http.MethodGet, se.Method)
	assert.Equal(t, "/products/nope", se.Path)
	assert.Equal(t, `{"detail":"Product not found"}`, string(se.Response.Body),
		"el cuerpo de error del backend no se normaliza")
}

func TestClient_SinReintentos(t *testing.T) {
	var mu sync.Mutex
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		hits++
		mu.Unlock()
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.GetSalesOrders(context.Background())
	require.Error(t, err)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, hits, "un 503 no debe reintentarse")
}

func TestClient_ErrorDeRed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := newTestClient(t, url)
	_, err := c.GetProducts(context.Background())
	require.Error(t, err)

	var se *backend.StatusError
	assert.False(t, errors.As(err, &se), "un error de red no es un StatusError")
}

func TestClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	c := newTestClient(t, srv.URL, backend.WithTimeout(50*time.Millisecond))
	_, err := c.GetProducts(context.Background())
	require.Error(t, err)
}

func TestClient_TimeoutAntesDeWithHTTPClient(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	// Sin timeout efectivo la respuesta llega a los 2s y la llamada no falla.
	stop := time.AfterFunc(2*time.Second, func() { close(release) })
	defer func() {
		if stop.Stop() {
			close(release)
		}
	}()

	hc := &http.Client{}
	c := newTestClient(t, srv.URL,
		backend.WithTimeout(50*time.Millisecond),
		backend.WithHTTPClient(hc),
	)

	start := time.Now()
	_, err := c.GetProducts(context.Background())
	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second, "el timeout debe sobrevivir a WithHTTPClient")
	assert.Zero(t, hc.Timeout, "el *http.Client del llamador no se modifica")
}

func TestResponse_Decode(t *testing.T) {
	resp := &backend.Response{Body: []byte(`{"total_active_products":4}`)}
	var out struct {
		Total int `json:"total_active_products"`
	}
	require.NoError(t, resp.Decode(&out))
	assert.Equal(t, 4, out.Total)

	bad := &backend.Response{Body: []byte(`<html>`)}
	assert.Error(t, bad.Decode(&out))
}
