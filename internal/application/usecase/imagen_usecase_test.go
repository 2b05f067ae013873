package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/municipio-digital/reclamos-admin/internal/application/usecase"
	"github.com/municipio-digital/reclamos-admin/internal/domain"
	"github.com/municipio-digital/reclamos-admin/internal/infrastructure/imagecache"
)

type clienteImagenesFalso struct {
	llamadasFetchAll int
	llamadasURL      int
	errFetchAll      error
	url              string
}

func (f *clienteImagenesFalso) FetchAll(_ context.Context, nombres []string) (int, int, error) {
	f.llamadasFetchAll++
	if f.errFetchAll != nil {
		return 0, 0, f.errFetchAll
	}
	return len(nombres), 0, nil
}

func (f *clienteImagenesFalso) URLCategoria(context.Context, string) (string, error) {
	f.llamadasURL++
	return f.url, nil
}

type banderasFalsas struct {
	valores map[string]string
}

func (b *banderasFalsas) Obtener(clave string) (string, bool, error) {
	v, ok := b.valores[clave]
	return v, ok, nil
}

func (b *banderasFalsas) Guardar(clave, valor string) error {
	b.valores[clave] = valor
	return nil
}

func imagenesDePrueba(cliente *clienteImagenesFalso) (*usecase.ImagenUseCase, *banderasFalsas, *imagecache.Cache) {
	banderas := &banderasFalsas{valores: map[string]string{}}
	cache := imagecache.Nuevo()
	uc := usecase.NewImagenUseCase(cliente, banderas, cache, zerolog.Nop())
	return uc, banderas, cache
}

func TestDescargarTodas_PrimeraVezLlamaYFijaBandera(t *testing.T) {
	cliente := &clienteImagenesFalso{}
	uc, banderas, cache := imagenesDePrueba(cliente)
	cache.Guardar("vieja", "http://stale")

	res, err := uc.DescargarTodas(context.Background(), "lanus", []string{"bacheo", "alumbrado"})
	require.NoError(t, err)
	assert.False(t, res.Omitida)
	assert.Equal(t, 2, res.Descargadas)
	assert.Equal(t, 1, cliente.llamadasFetchAll)
	assert.Equal(t, "1", banderas.valores["imagenes_descargadas:lanus"])
	assert.Zero(t, cache.Tamano(), "la descarga masiva exitosa vacía la cache de URLs")
}

func TestDescargarTodas_BanderaPresenteOmite(t *testing.T) {
	cliente := &clienteImagenesFalso{}
	uc, banderas, _ := imagenesDePrueba(cliente)
	banderas.valores["imagenes_descargadas:lanus"] = "1"

	res, err := uc.DescargarTodas(context.Background(), "lanus", []string{"bacheo"})
	require.NoError(t, err)
	assert.True(t, res.Omitida)
	assert.Zero(t, cliente.llamadasFetchAll, "con la bandera puesta no se llama al backend")
}

func TestDescargarTodas_FalloNoFijaBanderaNiLimpiaCache(t *testing.T) {
	cliente := &clienteImagenesFalso{errFetchAll: errors.New("503")}
	uc, banderas, cache := imagenesDePrueba(cliente)
	cache.Guardar("bacheo", "http://ok")

	_, err := uc.DescargarTodas(context.Background(), "lanus", []string{"bacheo"})
	require.Error(t, err)
	_, hecha := banderas.valores["imagenes_descargadas:lanus"]
	assert.False(t, hecha)
	assert.Equal(t, 1, cache.Tamano(), "tras un fallo la cache queda como estaba")
}

func TestDescargarTodas_SinMunicipio(t *testing.T) {
	uc, _, _ := imagenesDePrueba(&clienteImagenesFalso{})
	_, err := uc.DescargarTodas(context.Background(), "", nil)
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestURLCategoria_Memoriza(t *testing.T) {
	cliente := &clienteImagenesFalso{url: "http://cdn/bacheo.png"}
	uc, _, _ := imagenesDePrueba(cliente)

	primera, err := uc.URLCategoria(context.Background(), "bacheo")
	require.NoError(t, err)
	segunda, err := uc.URLCategoria(context.Background(), "bacheo")
	require.NoError(t, err)

	assert.Equal(t, primera, segunda)
	assert.Equal(t, 1, cliente.llamadasURL, "la segunda consulta sale de la cache")
}
