package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/municipio-digital/reclamos-admin/internal/application/dto"
	"github.com/municipio-digital/reclamos-admin/internal/domain"
)

// clienteImagenes es el puerto hacia los endpoints de imágenes del backend.
type clienteImagenes interface {
	FetchAll(ctx context.Context, nombres []string) (descargadas, fallidas int, err error)
	URLCategoria(ctx context.Context, nombre string) (string, error)
}

// banderasLocales persiste las banderas de "ya descargado" entre reinicios.
type banderasLocales interface {
	Obtener(clave string) (string, bool, error)
	Guardar(clave, valor string) error
}

// cacheImagenes memoriza nombre → URL; se vacía tras una descarga masiva.
type cacheImagenes interface {
	Obtener(nombre string) (string, bool)
	Guardar(nombre, url string)
	Limpiar()
}

// ImagenUseCase coordina la descarga masiva de imágenes de categorías y la
// consulta memorizada de URLs individuales.
type ImagenUseCase struct {
	cliente  clienteImagenes
	banderas banderasLocales
	cache    cacheImagenes
	log      zerolog.Logger
}

// NewImagenUseCase construye el caso de uso.
func NewImagenUseCase(cliente clienteImagenes, banderas banderasLocales, cache cacheImagenes, log zerolog.Logger) *ImagenUseCase {
	return &ImagenUseCase{
		cliente:  cliente,
		banderas: banderas,
		cache:    cache,
		log:      log.With().Str("componente", "imagenes").Logger(),
	}
}

func claveDescarga(municipioID string) string {
	return "imagenes_descargadas:" + municipioID
}

// DescargarTodas dispara la descarga masiva, salvo que la bandera local
// indique que ya se hizo para este municipio. Con éxito fija la bandera y
// vacía la cache de URLs (única invalidación prevista).
func (uc *ImagenUseCase) DescargarTodas(ctx context.Context, municipioID string, nombres []string) (*dto.DescargaImagenesResponse, error) {
	if municipioID == "" {
		return nil, fmt.Errorf("%w: municipio requerido", domain.ErrEntradaInvalida)
	}

	clave := claveDescarga(municipioID)
	if _, hecha, err := uc.banderas.Obtener(clave); err != nil {
		// Una bandera ilegible no bloquea la operación: se re-descarga.
		uc.log.Warn().Err(err).Str("clave", clave).Msg("no se pudo leer la bandera local")
	} else if hecha {
		uc.log.Debug().Str("municipio", municipioID).Msg("descarga masiva omitida: bandera presente")
		return &dto.DescargaImagenesResponse{Omitida: true}, nil
	}

	descargadas, fallidas, err := uc.cliente.FetchAll(ctx, nombres)
	if err != nil {
		uc.log.Error().Err(err).Msg("descarga masiva de imágenes fallida")
		return nil, err
	}

	if err := uc.banderas.Guardar(clave, "1"); err != nil {
		uc.log.Warn().Err(err).Str("clave", clave).Msg("no se pudo persistir la bandera local")
	}
	uc.cache.Limpiar()

	uc.log.Info().Int("descargadas", descargadas).Int("fallidas", fallidas).
		Str("municipio", municipioID).Msg("descarga masiva de imágenes completada")
	return &dto.DescargaImagenesResponse{Descargadas: descargadas, Fallidas: fallidas}, nil
}

// URLCategoria devuelve la URL de la imagen de una categoría, memorizada
// por nombre.
func (uc *ImagenUseCase) URLCategoria(ctx context.Context, nombre string) (string, error) {
	if url, ok := uc.cache.Obtener(nombre); ok {
		return url, nil
	}
	url, err := uc.cliente.URLCategoria(ctx, nombre)
	if err != nil {
		return "", err
	}
	uc.cache.Guardar(nombre, url)
	return url, nil
}
