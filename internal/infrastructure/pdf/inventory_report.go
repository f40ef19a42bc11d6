// Package pdf genera el reporte de inventario (valorización del stock) en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: productos activos │ valor total del inventario (TWD) │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Producto | Stock | Costo prom. | Valor         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL: Σ valor de las filas                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/johnfercher/maroto/v2/pkg/repository"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-web/internal/application/ports"
	"github.com/jhoicas/inventario-web/internal/domain/entity"
)

// Verificar en tiempo de compilación que MarotoReportGenerator implementa el puerto.
var _ ports.InventoryReportGenerator = (*MarotoReportGenerator)(nil)

// ── Fuente ────────────────────────────────────────────────────────────────────

// Los nombres de producto llegan en chino o japonés; helvetica no trae esos
// glifos, así que todo el documento usa Unifont embebida.
const reportFontFamily = "unifont"

//go:embed fonts/unifont_jp-13.0.03.ttf
var unifontTTF []byte

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa ports.InventoryReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	now func() time.Time
}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator {
	return &MarotoReportGenerator{now: time.Now}
}

// GenerateInventoryReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryReport(
	_ context.Context,
	stats entity.InventoryStats,
	products []entity.Product,
) ([]byte, error) {
	fonts, err := repository.New().
		AddUTF8FontFromBytes(reportFontFamily, fontstyle.Normal, unifontTTF).
		AddUTF8FontFromBytes(reportFontFamily, fontstyle.Bold, unifontTTF).
		Load()
	if err != nil {
		return nil, fmt.Errorf("pdf: cargar fuentes: %w", err)
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithCustomFonts(fonts).
		WithDefaultFont(&props.Font{Family: reportFontFamily, Size: 9}).
		WithTitle("Reporte de inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpiRow(stats))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	total := decimal.Zero
	for _, p := range products {
		m.AddRows(productRow(p))
		total = total.Add(p.StockValue())
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(total))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(now time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("REPORTE DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+now.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

// kpiRow: productos activos y valor total según /inventory/stats.
func kpiRow(stats entity.InventoryStats) core.Row {
	kpi := func(label, value string) core.Col {
		return col.New(6).Add(
			text.New(label, props.Text{Size: 8, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 12, Top: 6}),
		)
	}
	return row.New(16).Add(
		kpi("Productos activos", fmt.Sprintf("%d", stats.TotalActiveProducts)),
		kpi("Valor del inventario (TWD)", "NT$"+formatMoney(stats.TotalInventoryValueTWD.StringFixed(0))),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Producto", 4, align.Left),
		h("Stock", 2, align.Center),
		h("Costo prom.", 2, align.Right),
		h("Valor", 2, align.Right),
	)
}

func productRow(p entity.Product) core.Row {
	return row.New(7).Add(
		col.New(2).Add(text.New(nonEmpty(p.SKU, "-"), props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(4).Add(text.New(p.Name, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(2).Add(text.New(fmt.Sprintf("%d", p.StockQuantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(2).Add(text.New(p.CostPrice.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		col.New(2).Add(text.New(formatMoney(p.StockValue().StringFixed(0)), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
	)
}

func totalRow(total decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(8).Add(text.New("TOTAL", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(4).Add(text.New("NT$"+formatMoney(total.StringFixed(0)), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney inserta separadores de miles en un string numérico sin decimales.
// Ej: "25000" → "25,000", "-1000000" → "-1,000,000"
func formatMoney(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	n := len(s)
	if n <= 3 {
		return sign + s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return sign + string(buf)
}
