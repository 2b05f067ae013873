// Package pdf implementa la generación del reporte de compras en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Reporte de Compras │ Período + Fecha de emisión    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Descripción | Proveedor | Monto             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL DEL PERÍODO                                          │
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

	"github.com/municipio-digital/reclamos-admin/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReporteCompras implementa usecase.GeneradorReporteCompras usando Maroto v2.
type MarotoReporteCompras struct{}

// NewMarotoReporteCompras construye el generador.
func NewMarotoReporteCompras() *MarotoReporteCompras { return &MarotoReporteCompras{} }

// GenerarReporteCompras genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReporteCompras) GenerarReporteCompras(
	_ context.Context,
	compras []entity.Compra,
	total decimal.Decimal,
	desde, hasta *time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Compras", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(desde, hasta))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, c := range compras {
		m.AddRows(compraRow(c))
	}
	if len(compras) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin compras registradas en el período.", props.Text{
				Size: 9, Color: colorGray, Align: align.Center, Top: 2,
			}),
		)))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(total, len(compras)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y período + fecha de emisión (der).
func headerRow(desde, hasta *time.Time) core.Row {
	emision := time.Now().Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New("Reporte de Compras", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Administración de Reclamos Municipales", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Período: "+periodo(desde, hasta), props.Text{
				Size: 9, Align: align.Right, Top: 2,
			}),
			text.New("Emitido: "+emision, props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de compras con fondo azul.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8.5, Align: a,
			Color: colorWhite, Top: 1.5, Left: 1, Right: 1,
		}))
	}
	return row.New(7).Add(
		h("Fecha", 2, align.Left),
		h("Descripción", 5, align.Left),
		h("Proveedor", 3, align.Left),
		h("Monto", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func compraRow(c entity.Compra) core.Row {
	return row.New(6).Add(
		col.New(2).Add(text.New(c.Fecha.Format("02/01/2006"), props.Text{Size: 8.5, Top: 1})),
		col.New(5).Add(text.New(c.Descripcion, props.Text{Size: 8.5, Top: 1})),
		col.New(3).Add(text.New(c.Proveedor, props.Text{Size: 8.5, Top: 1, Color: colorGray})),
		col.New(2).Add(text.New("$ "+formatMoney(c.Monto.StringFixed(0)), props.Text{
			Size: 8.5, Top: 1, Align: align.Right,
		})),
	)
}

func totalRow(total decimal.Decimal, cantidad int) core.Row {
	return row.New(10).Add(
		col.New(7).Add(text.New(fmt.Sprintf("Compras incluidas: %d", cantidad), props.Text{
			Size: 9, Top: 3, Color: colorGray,
		})),
		col.New(5).Add(text.New("TOTAL: $ "+formatMoney(total.StringFixed(0)), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Top: 2,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func periodo(desde, hasta *time.Time) string {
	formato := func(t *time.Time) string {
		if t == nil {
			return "—"
		}
		return t.Format("02/01/2006")
	}
	return formato(desde) + " a " + formato(hasta)
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	negativo := false
	if len(s) > 0 && s[0] == '-' {
		negativo = true
		s = s[1:]
	}
	n := len(s)
	if n <= 3 {
		if negativo {
			return "-" + s
		}
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	if negativo {
		return "-" + string(buf)
	}
	return string(buf)
}
