// Package pdf genera la lista de reposición de una ubicación en PDF (Maroto v2).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Ubicación + tipo     │  Título + Fecha de emisión   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | SKU | Producto | Stock | ROP | Cant. | Fecha | $ │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Productos / Costo estimado                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
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
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/invorya-planning/internal/application/dto"
	"github.com/jhoicas/invorya-planning/internal/application/planning"
	"github.com/jhoicas/invorya-planning/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorUrgent  = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// urgentRows primeras filas resaltadas en rojo.
const urgentRows = 5

var _ planning.ReorderReportRenderer = (*MarotoReorderReport)(nil)

// MarotoReorderReport implementa planning.ReorderReportRenderer usando Maroto v2.
type MarotoReorderReport struct {
	printer *message.Printer
}

// NewMarotoReorderReport construye el generador con formato numérico en español.
func NewMarotoReorderReport() *MarotoReorderReport {
	return &MarotoReorderReport{printer: message.NewPrinter(language.Spanish)}
}

// RenderReorderReport genera el PDF y devuelve sus bytes.
func (g *MarotoReorderReport) RenderReorderReport(
	_ context.Context,
	location *entity.Location,
	report *dto.ReorderListResponse,
	generatedAt time.Time,
) ([]byte, error) {
	if location == nil || report == nil {
		return nil, fmt.Errorf("pdf: ubicación y reporte son obligatorios")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Lista de reposición - "+location.Name, true).
		WithAuthor("Invorya", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(location, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if len(report.Suggestions) == 0 {
		m.AddRows(row.New(12).Add(col.New(12).Add(
			text.New("No hay productos por debajo del punto de reorden.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 4,
			}),
		)))
	} else {
		m.AddRows(tableHeaderRow())
		m.AddRows(g.tableRows(report.Suggestions)...)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(location *entity.Location, generatedAt time.Time) core.Row {
	kind := "Tienda"
	if location.IsWarehouse() {
		kind = "Bodega"
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(location.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(kind+" · "+nonEmpty(location.Address, "sin dirección"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("LISTA DE REPOSICIÓN", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Emitida: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("SKU", 1, align.Left),
		h("Producto", 3, align.Left),
		h("Stock", 1, align.Right),
		h("ROP", 1, align.Right),
		h("Cant.", 1, align.Right),
		h("Fecha", 2, align.Center),
		h("Costo", 2, align.Right),
	)
}

func (g *MarotoReorderReport) tableRows(items []dto.ReorderSuggestionDTO) []core.Row {
	out := make([]core.Row, 0, len(items))
	for i, s := range items {
		cell := props.Text{Size: 8, Top: 1, Left: 1, Right: 1}
		if i < urgentRows {
			cell.Color = colorUrgent
		}
		at := func(a align.Type) props.Text {
			c := cell
			c.Align = a
			return c
		}
		out = append(out, row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprint(s.Priority), at(align.Center))),
			col.New(1).Add(text.New(s.SKU, at(align.Left))),
			col.New(3).Add(text.New(s.ProductName, at(align.Left))),
			col.New(1).Add(text.New(g.printer.Sprintf("%d", s.CurrentStock), at(align.Right))),
			col.New(1).Add(text.New(g.printer.Sprintf("%d", s.ReorderPoint), at(align.Right))),
			col.New(1).Add(text.New(g.printer.Sprintf("%d", s.SuggestedQuantity), at(align.Right))),
			col.New(2).Add(text.New(s.SuggestedDate, at(align.Center))),
			col.New(2).Add(text.New(g.money(s.EstimatedCost), at(align.Right))),
		))
	}
	return out
}

func (g *MarotoReorderReport) totalsRow(report *dto.ReorderListResponse) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	return row.New(14).Add(
		col.New(6),
		col.New(3).Add(
			label("Productos:"),
			text.New("Costo estimado:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 6,
			}),
		),
		col.New(3).Add(
			text.New(g.printer.Sprintf("%d", report.Total), props.Text{Size: 9, Align: align.Right, Right: 1}),
			text.New(g.money(report.TotalCost), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 6,
			}),
		),
	)
}

// money formatea con separador de miles y dos decimales: 12.345,50.
func (g *MarotoReorderReport) money(d decimal.Decimal) string {
	return "$" + g.printer.Sprintf("%.2f", d.Round(2).InexactFloat64())
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
