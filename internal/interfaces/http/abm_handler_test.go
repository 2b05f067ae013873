package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/municipio-digital/reclamos-admin/internal/application/abm"
	"github.com/municipio-digital/reclamos-admin/internal/application/dto"
	"github.com/municipio-digital/reclamos-admin/internal/application/paneles"
	"github.com/municipio-digital/reclamos-admin/internal/application/reveal"
	"github.com/municipio-digital/reclamos-admin/internal/domain"
	"github.com/municipio-digital/reclamos-admin/internal/domain/entity"
	apphttp "github.com/municipio-digital/reclamos-admin/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del puerto de backend para categorías
// ──────────────────────────────────────────────────────────────────────────────

type categoriasFalsas struct {
	registros []entity.Categoria
	proximoID int
	fallaTodo bool
}

func (f *categoriasFalsas) GetAll(ctx context.Context, filtros map[string]string) ([]entity.Categoria, error) {
	if f.fallaTodo {
		return nil, domain.ErrBackendNoDisponible
	}
	out := make([]entity.Categoria, len(f.registros))
	copy(out, f.registros)
	return out, nil
}

func (f *categoriasFalsas) Create(ctx context.Context, form dto.CategoriaForm) (*entity.Categoria, error) {
	if f.fallaTodo {
		return nil, domain.ErrBackendNoDisponible
	}
	f.proximoID++
	c := entity.Categoria{
		ID: f.proximoID, Nombre: form.Nombre, Descripcion: form.Descripcion,
		Color: form.Color, Icono: form.Icono, Activo: true, CreatedAt: time.Now(),
	}
	f.registros = append(f.registros, c)
	return &c, nil
}

func (f *categoriasFalsas) Update(ctx context.Context, id int, form dto.CategoriaForm) (*entity.Categoria, error) {
	for i := range f.registros {
		if f.registros[i].ID == id {
			f.registros[i].Nombre = form.Nombre
			f.registros[i].Descripcion = form.Descripcion
			f.registros[i].Color = form.Color
			f.registros[i].Icono = form.Icono
			return &f.registros[i], nil
		}
	}
	return nil, domain.ErrNoEncontrado
}

func (f *categoriasFalsas) Delete(ctx context.Context, id int) error {
	for i := range f.registros {
		if f.registros[i].ID == id {
			f.registros[i].Activo = false
			return nil
		}
	}
	return domain.ErrNoEncontrado
}

// buildABMApp monta las rutas de categorías (sin auth: eso se prueba aparte).
func buildABMApp(falso *categoriasFalsas) *fiber.App {
	cfg := paneles.Categorias(reveal.Config{
		Base: time.Millisecond, Paso: time.Millisecond, Asentamiento: time.Millisecond,
	})
	ctrl := abm.Nuevo(cfg, falso, abm.NuevoNotificadorMemoria(10), zerolog.Nop())

	app := fiber.New()
	apphttp.RegistrarABM(app.Group("/categorias"), ctrl)
	return app
}

func seedCategorias() *categoriasFalsas {
	return &categoriasFalsas{
		proximoID: 3,
		registros: []entity.Categoria{
			{ID: 1, Nombre: "Bacheo", Descripcion: "Calles y baches", Activo: true, CreatedAt: time.Now()},
			{ID: 2, Nombre: "Alumbrado", Descripcion: "Luminarias públicas", Activo: true, CreatedAt: time.Now()},
			{ID: 3, Nombre: "Arbolado", Descripcion: "Poda y extracción", Activo: false, CreatedAt: time.Now()},
		},
	}
}

func listar(t *testing.T, app *fiber.App, url string) dto.ListadoResponse[entity.Categoria] {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.ListadoResponse[entity.Categoria]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del handler ABM genérico
// ──────────────────────────────────────────────────────────────────────────────

// El listado por defecto oculta las categorías inactivas (política de la página).
func TestABM_Listado_PoliticaActivosPorDefecto(t *testing.T) {
	app := buildABMApp(seedCategorias())

	out := listar(t, app, "/categorias/")
	assert.Equal(t, 2, out.Total, "por defecto solo se listan las activas")

	out = listar(t, app, "/categorias/?activo=false")
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "Arbolado", out.Items[0].Nombre)
}

// La búsqueda por texto ignora mayúsculas y acentos.
func TestABM_Listado_BusquedaInsensibleAAcentos(t *testing.T) {
	app := buildABMApp(seedCategorias())

	out := listar(t, app, "/categorias/?q=pUblicas")
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "Alumbrado", out.Items[0].Nombre)
}

// Orden por columna con dirección.
func TestABM_Listado_OrdenDescendente(t *testing.T) {
	app := buildABMApp(seedCategorias())

	out := listar(t, app, "/categorias/?orden=nombre&dir=desc")
	require.Equal(t, 2, out.Total)
	assert.Equal(t, "Bacheo", out.Items[0].Nombre)
	assert.Equal(t, "Alumbrado", out.Items[1].Nombre)
}

// Alta válida: 201 y el registro aparece en el siguiente listado.
func TestABM_Create_Valido(t *testing.T) {
	app := buildABMApp(seedCategorias())

	body, _ := json.Marshal(dto.CategoriaForm{Nombre: "Residuos", Color: "#2E7D32"})
	req := httptest.NewRequest(http.MethodPost, "/categorias/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var creada entity.Categoria
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&creada))
	assert.Equal(t, "Residuos", creada.Nombre)
	assert.True(t, creada.Activo)

	out := listar(t, app, "/categorias/")
	assert.Equal(t, 3, out.Total, "el alta recarga el listado canónico")
}

// Alta inválida: 400 VALIDATION sin tocar el backend.
func TestABM_Create_ValidacionLocal(t *testing.T) {
	falso := seedCategorias()
	app := buildABMApp(falso)

	body, _ := json.Marshal(dto.CategoriaForm{Nombre: "  ", Color: "#FFFFFF"})
	req := httptest.NewRequest(http.MethodPost, "/categorias/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Len(t, falso.registros, 3, "el backend no debe recibir el alta inválida")
}

// Edición: PUT sobre un id existente modifica y devuelve el registro.
func TestABM_Update_Valido(t *testing.T) {
	app := buildABMApp(seedCategorias())

	body, _ := json.Marshal(dto.CategoriaForm{Nombre: "Bacheo urbano", Color: "#455A64"})
	req := httptest.NewRequest(http.MethodPut, "/categorias/1", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var editada entity.Categoria
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&editada))
	assert.Equal(t, "Bacheo urbano", editada.Nombre)
}

// Edición de un id inexistente: 404 NOT_FOUND.
func TestABM_Update_NoEncontrado(t *testing.T) {
	app := buildABMApp(seedCategorias())

	body, _ := json.Marshal(dto.CategoriaForm{Nombre: "Fantasma"})
	req := httptest.NewRequest(http.MethodPut, "/categorias/999", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// Baja lógica: DELETE desactiva y el listado por defecto deja de mostrarla.
func TestABM_Delete_BajaLogica(t *testing.T) {
	falso := seedCategorias()
	app := buildABMApp(falso)

	req := httptest.NewRequest(http.MethodDelete, "/categorias/2", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, falso.registros[1].Activo)

	out := listar(t, app, "/categorias/")
	assert.Equal(t, 1, out.Total)
}

// Backend caído en la primera carga: 502 BACKEND_ERROR.
func TestABM_Listado_BackendCaido(t *testing.T) {
	app := buildABMApp(&categoriasFalsas{fallaTodo: true})

	req := httptest.NewRequest(http.MethodGet, "/categorias/", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

// Id no numérico: 400 VALIDATION.
func TestABM_GetByID_IDInvalido(t *testing.T) {
	app := buildABMApp(seedCategorias())

	req := httptest.NewRequest(http.MethodGet, "/categorias/abc", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func ejemploURL(id int) string { return fmt.Sprintf("/categorias/%d", id) }

// GET por id devuelve el registro de la lista canónica.
func TestABM_GetByID_Existente(t *testing.T) {
	app := buildABMApp(seedCategorias())

	// La primera petición de listado carga la canónica.
	listar(t, app, "/categorias/")

	req := httptest.NewRequest(http.MethodGet, ejemploURL(1), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var c entity.Categoria
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&c))
	assert.Equal(t, "Bacheo", c.Nombre)
}
