package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/municipio-digital/reclamos-admin/internal/application/listado"
	"github.com/municipio-digital/reclamos-admin/internal/domain"
	"github.com/municipio-digital/reclamos-admin/internal/domain/entity"
)

// lectorCompras es el puerto de lectura hacia el backend de compras.
type lectorCompras interface {
	GetAll(ctx context.Context, filtros map[string]string) ([]entity.Compra, error)
}

// GeneradorReporteCompras produce el PDF del reporte; la implementación
// concreta usa Maroto.
type GeneradorReporteCompras interface {
	GenerarReporteCompras(ctx context.Context, compras []entity.Compra, total decimal.Decimal, desde, hasta *time.Time) ([]byte, error)
}

// ReporteComprasUseCase arma el reporte PDF de compras activas del período.
type ReporteComprasUseCase struct {
	compras   lectorCompras
	generador GeneradorReporteCompras
	log       zerolog.Logger
}

// NewReporteComprasUseCase construye el caso de uso.
func NewReporteComprasUseCase(compras lectorCompras, generador GeneradorReporteCompras, log zerolog.Logger) *ReporteComprasUseCase {
	return &ReporteComprasUseCase{compras: compras, generador: generador, log: log}
}

// Descargar trae las compras, retiene las activas dentro del rango pedido
// (cualquier extremo en nil queda sin restricción) y genera el PDF.
// Devuelve los bytes y el nombre de archivo sugerido.
func (uc *ReporteComprasUseCase) Descargar(ctx context.Context, desde, hasta *time.Time) ([]byte, string, error) {
	regs, err := uc.compras.GetAll(ctx, nil)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrCargaFallida, err)
	}

	consulta := listado.Consulta[entity.Compra]{
		Exactos: []func(entity.Compra) bool{
			listado.PorActivo(func(c entity.Compra) bool { return c.Activo }, true),
		},
		Orden: func(c entity.Compra) string { return c.Fecha.Format(time.RFC3339) },
	}
	if desde != nil || hasta != nil {
		consulta.Exactos = append(consulta.Exactos,
			listado.PorRangoFechas(func(c entity.Compra) *time.Time { f := c.Fecha; return &f }, desde, hasta))
	}
	visibles := listado.Visibles(regs, consulta)

	total := decimal.Zero
	for _, c := range visibles {
		total = total.Add(c.Monto)
	}

	pdf, err := uc.generador.GenerarReporteCompras(ctx, visibles, total, desde, hasta)
	if err != nil {
		return nil, "", fmt.Errorf("reporte de compras: %w", err)
	}

	nombre := fmt.Sprintf("compras_%s.pdf", time.Now().Format("20060102"))
	uc.log.Info().Int("compras", len(visibles)).Str("archivo", nombre).Msg("reporte de compras generado")
	return pdf, nombre, nil
}
