package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/municipio-digital/reclamos-admin/internal/application/dto"
	"github.com/municipio-digital/reclamos-admin/internal/application/listado"
	"github.com/municipio-digital/reclamos-admin/internal/application/reveal"
	"github.com/municipio-digital/reclamos-admin/internal/domain"
	"github.com/municipio-digital/reclamos-admin/internal/domain/entity"
	"github.com/municipio-digital/reclamos-admin/internal/domain/iconos"
	"github.com/municipio-digital/reclamos-admin/internal/domain/vista"
)

// lectorReclamos es el puerto de lectura hacia el backend de reclamos.
type lectorReclamos interface {
	GetAll(ctx context.Context, filtros map[string]string) ([]entity.Reclamo, error)
}

// ReclamoUseCase arma el tablero de tarjetas de reclamos: trae el listado,
// lo filtra y ordena, y anota cada reclamo con los hechos derivados que la
// tarjeta muestra. La aparición escalonada corre solo en la primera carga
// no vacía de la instancia.
type ReclamoUseCase struct {
	cliente   lectorReclamos
	secuencia *reveal.Secuenciador
	log       zerolog.Logger
}

// NewReclamoUseCase construye el caso de uso.
func NewReclamoUseCase(cliente lectorReclamos, cfgReveal reveal.Config, log zerolog.Logger) *ReclamoUseCase {
	return &ReclamoUseCase{
		cliente:   cliente,
		secuencia: reveal.Nuevo(cfgReveal),
		log:       log.With().Str("entidad", "reclamo").Logger(),
	}
}

// Tarjetas devuelve las tarjetas visibles según la consulta. ahora es el
// instante de referencia para los hechos derivados (inyectado para que el
// cálculo sea puro y testeable).
func (uc *ReclamoUseCase) Tarjetas(ctx context.Context, c dto.ConsultaReclamos, ahora time.Time) ([]dto.TarjetaReclamo, error) {
	regs, err := uc.cliente.GetAll(ctx, nil)
	if err != nil {
		uc.log.Error().Err(err).Msg("carga de reclamos fallida")
		return nil, fmt.Errorf("%w: %v", domain.ErrCargaFallida, err)
	}

	ids := make([]int, 0, len(regs))
	for _, r := range regs {
		ids = append(ids, r.ID)
	}
	uc.secuencia.Iniciar(ids)

	consulta := listado.Consulta[entity.Reclamo]{
		Texto: c.Texto,
		CamposTexto: []func(entity.Reclamo) string{
			func(r entity.Reclamo) string { return r.Titulo },
			func(r entity.Reclamo) string { return r.Descripcion },
			func(r entity.Reclamo) string { return r.Direccion },
		},
		Descendente: c.Descendente,
	}
	if c.Estado != "" {
		consulta.Exactos = append(consulta.Exactos,
			listado.PorIgual(func(r entity.Reclamo) string { return r.Estado }, c.Estado))
	}
	if c.Desde != nil || c.Hasta != nil {
		consulta.Exactos = append(consulta.Exactos,
			listado.PorRangoFechas(func(r entity.Reclamo) *time.Time { return r.FechaProgramada }, c.Desde, c.Hasta))
	}
	consulta.Orden = columnaReclamos(c.Orden)

	visibles := listado.Visibles(regs, consulta)

	tarjetas := make([]dto.TarjetaReclamo, 0, len(visibles))
	for _, r := range visibles {
		tarjetas = append(tarjetas, uc.armarTarjeta(r, ahora))
	}
	return tarjetas, nil
}

// Detener cancela los timers pendientes de la secuencia (apagado).
func (uc *ReclamoUseCase) Detener() { uc.secuencia.Detener() }

func (uc *ReclamoUseCase) armarTarjeta(r entity.Reclamo, ahora time.Time) dto.TarjetaReclamo {
	venc := vista.VencimientoDe(r, ahora)
	nombreIcono := ""
	if r.Categoria != nil {
		nombreIcono = r.Categoria.Icono
	}
	return dto.TarjetaReclamo{
		Reclamo:           r,
		ActividadReciente: vista.ActividadReciente(r.CreatedAt, r.UpdatedAt),
		Vencimiento:       venc.Clase.String(),
		VenceEnDias:       venc.Dias,
		IconoGlifo:        iconos.Resolver(nombreIcono).Glifo,
		Revelado:          uc.secuencia.Revelado(r.ID),
	}
}

func columnaReclamos(nombre string) func(entity.Reclamo) string {
	switch nombre {
	case "titulo":
		return func(r entity.Reclamo) string { return r.Titulo }
	case "estado":
		return func(r entity.Reclamo) string { return r.Estado }
	case "fecha":
		return func(r entity.Reclamo) string {
			if r.FechaProgramada == nil {
				return ""
			}
			return r.FechaProgramada.Format(time.RFC3339)
		}
	}
	return nil
}
