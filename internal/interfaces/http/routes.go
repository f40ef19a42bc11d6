package http

// DefaultRoutes tabla de rutas de la aplicación. /orders se construye en la
// primera navegación; el resto al arrancar.
func DefaultRoutes(deps ViewDeps) []Route {
	return []Route{
		{Path: "/", Name: ViewDashboard, Component: func() View { return NewDashboardView(deps) }},
		{Path: "/upload", Name: ViewUpload, Component: func() View { return NewUploadView(deps) }},
		{Path: "/inventory", Name: ViewInventory, Component: func() View { return NewInventoryView(deps) }},
		{Path: "/purchase", Name: ViewPurchase, Component: func() View { return NewPurchaseView(deps) }},
		{Path: "/orders", Name: ViewSalesOrders, Component: func() View { return NewSalesOrdersView(deps) }, Lazy: true},
		{Path: "/settings", Name: ViewSettings, Component: func() View { return NewSettingsView(deps) }},
	}
}
