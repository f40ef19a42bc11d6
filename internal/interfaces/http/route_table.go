package http

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-web/internal/domain"
)

// View vista de página. Atiende GET sobre su ruta y las acciones
// (POST/PUT/DELETE) bajo ella.
type View interface {
	Handle(c *fiber.Ctx) error
}

// ViewFactory construye una vista bajo demanda.
type ViewFactory func() View

// Route entrada de la tabla de rutas.
type Route struct {
	Path      string
	Name      string
	Component ViewFactory
	Lazy      bool // true: la vista se construye en la primera navegación
}

// RouteTableOption personaliza NewRouteTable.
type RouteTableOption func(*RouteTable)

// OnLazyLoad registra fn; se invoca una vez por ruta diferida, al construirla.
func OnLazyLoad(fn func(Route)) RouteTableOption {
	return func(t *RouteTable) { t.onLazyLoad = fn }
}

type routeEntry struct {
	route Route
	once  sync.Once
	mu    sync.RWMutex
	view  View
}

// RouteTable tabla estática ruta → vista. Inmutable tras NewRouteTable.
type RouteTable struct {
	entries    []*routeEntry
	byPath     map[string]*routeEntry
	onLazyLoad func(Route)
}

// NewRouteTable valida la tabla y construye las vistas no diferidas.
func NewRouteTable(routes []Route, opts ...RouteTableOption) (*RouteTable, error) {
	t := &RouteTable{byPath: make(map[string]*routeEntry, len(routes))}
	for _, opt := range opts {
		opt(t)
	}

	names := make(map[string]struct{}, len(routes))
	for _, r := range routes {
		if r.Path == "" || !strings.HasPrefix(r.Path, "/") {
			return nil, fmt.Errorf("rutas: %w: path %q", domain.ErrInvalidRoute, r.Path)
		}
		if r.Name == "" || r.Component == nil {
			return nil, fmt.Errorf("rutas: %w: %q sin nombre o componente", domain.ErrInvalidRoute, r.Path)
		}
		r.Path = canonicalPath(r.Path)
		if _, dup := t.byPath[r.Path]; dup {
			return nil, fmt.Errorf("rutas: %w: path %q", domain.ErrDuplicateRoute, r.Path)
		}
		if _, dup := names[r.Name]; dup {
			return nil, fmt.Errorf("rutas: %w: nombre %q", domain.ErrDuplicateRoute, r.Name)
		}
		names[r.Name] = struct{}{}

		e := &routeEntry{route: r}
		t.entries = append(t.entries, e)
		t.byPath[r.Path] = e
	}

	// Carga ansiosa al arrancar.
	for _, e := range t.entries {
		if e.route.Lazy {
			continue
		}
		if e.load(nil) == nil {
			return nil, fmt.Errorf("rutas: %w: %q", domain.ErrNilView, e.route.Path)
		}
	}
	return t, nil
}

// Routes rutas en orden de declaración.
func (t *RouteTable) Routes() []Route {
	out := make([]Route, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.route
	}
	return out
}

// Resolve busca la ruta exacta de path ("/orders/" equivale a "/orders").
func (t *RouteTable) Resolve(path string) (Route, bool) {
	e, ok := t.byPath[canonicalPath(path)]
	if !ok {
		return Route{}, false
	}
	return e.route, true
}

// View devuelve la vista de path, construyéndola en la primera llamada si la
// ruta es diferida. Navegaciones concurrentes comparten una sola construcción.
// Si el componente devolvió nil la construcción no se reintenta y cada llamada
// devuelve domain.ErrNilView.
func (t *RouteTable) View(path string) (View, error) {
	e, ok := t.byPath[canonicalPath(path)]
	if !ok {
		return nil, fmt.Errorf("rutas: %w: %q", domain.ErrRouteNotFound, path)
	}
	v := e.load(t.onLazyLoad)
	if v == nil {
		return nil, fmt.Errorf("rutas: %w: %q", domain.ErrNilView, e.route.Path)
	}
	return v, nil
}

// Loaded indica si la vista de path ya fue construida.
func (t *RouteTable) Loaded(path string) bool {
	e, ok := t.byPath[canonicalPath(path)]
	if !ok {
		return false
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.view != nil
}

func (e *routeEntry) load(hook func(Route)) View {
	e.once.Do(func() {
		v := e.route.Component()
		e.mu.Lock()
		e.view = v
		e.mu.Unlock()
		if v != nil && e.route.Lazy && hook != nil {
			hook(e.route)
		}
	})
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.view
}

// canonicalPath quita las "/" finales; "" o "///" → "/".
func canonicalPath(p string) string {
	c := strings.TrimRight(p, "/")
	if c == "" {
		return "/"
	}
	return c
}
