package abm_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/municipio-digital/reclamos-admin/internal/application/abm"
	"github.com/municipio-digital/reclamos-admin/internal/application/dto"
	"github.com/municipio-digital/reclamos-admin/internal/application/reveal"
	"github.com/municipio-digital/reclamos-admin/internal/domain"
	"github.com/municipio-digital/reclamos-admin/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Cliente falso
// ──────────────────────────────────────────────────────────────────────────────

type clienteFalso struct {
	mu sync.Mutex

	listado   []entity.Categoria
	errGetAll error
	errEnvio  error
	errDelete error

	llamadasGetAll int
	creadas        []dto.CategoriaForm
	actualizadas   []int
	desactivadas   []int

	// enGetAll permite bloquear una respuesta para simular un fetch lento.
	enGetAll func()
}

func (f *clienteFalso) GetAll(_ context.Context, _ map[string]string) ([]entity.Categoria, error) {
	f.mu.Lock()
	f.llamadasGetAll++
	hook := f.enGetAll
	f.enGetAll = nil
	listado := f.listado
	err := f.errGetAll
	f.mu.Unlock()
	if hook != nil {
		hook()
	}
	if err != nil {
		return nil, err
	}
	out := make([]entity.Categoria, len(listado))
	copy(out, listado)
	return out, nil
}

func (f *clienteFalso) Create(_ context.Context, form dto.CategoriaForm) (*entity.Categoria, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.errEnvio != nil {
		return nil, f.errEnvio
	}
	f.creadas = append(f.creadas, form)
	return &entity.Categoria{ID: 100, Nombre: form.Nombre, Activo: true}, nil
}

func (f *clienteFalso) Update(_ context.Context, id int, form dto.CategoriaForm) (*entity.Categoria, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.errEnvio != nil {
		return nil, f.errEnvio
	}
	f.actualizadas = append(f.actualizadas, id)
	return &entity.Categoria{ID: id, Nombre: form.Nombre, Activo: true}, nil
}

func (f *clienteFalso) Delete(_ context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.errDelete != nil {
		return f.errDelete
	}
	f.desactivadas = append(f.desactivadas, id)
	return nil
}

func (f *clienteFalso) getAlls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.llamadasGetAll
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

func configCategorias() abm.Config[entity.Categoria, dto.CategoriaForm] {
	return abm.Config[entity.Categoria, dto.CategoriaForm]{
		Entidad: "la categoría",
		ID:      func(c entity.Categoria) int { return c.ID },
		Activo:  func(c entity.Categoria) bool { return c.Activo },
		CamposBusqueda: []func(entity.Categoria) string{
			func(c entity.Categoria) string { return c.Nombre },
		},
		Columnas: map[string]func(entity.Categoria) string{
			"nombre": func(c entity.Categoria) string { return c.Nombre },
		},
		SoloActivosPorDefecto: false,
		Validar:               func(f dto.CategoriaForm) error { return f.Validar() },
		FormularioNuevo:       func() dto.CategoriaForm { return dto.CategoriaForm{Color: "#888888"} },
		FormularioDe: func(c entity.Categoria) dto.CategoriaForm {
			return dto.CategoriaForm{Nombre: c.Nombre, Descripcion: c.Descripcion, Color: c.Color, Icono: c.Icono}
		},
		Reveal: reveal.Config{Base: time.Millisecond, Paso: time.Millisecond, Asentamiento: time.Millisecond},
	}
}

func nuevoControlador(f *clienteFalso) (*abm.Controlador[entity.Categoria, dto.CategoriaForm], *abm.NotificadorMemoria) {
	notif := abm.NuevoNotificadorMemoria(10)
	ctrl := abm.Nuevo(configCategorias(), f, notif, zerolog.Nop())
	return ctrl, notif
}

func ultimaNotificacion(t *testing.T, notif *abm.NotificadorMemoria) abm.Notificacion {
	t.Helper()
	recientes := notif.Recientes()
	require.NotEmpty(t, recientes, "debe haber al menos una notificación registrada")
	return recientes[len(recientes)-1]
}

// ──────────────────────────────────────────────────────────────────────────────
// Cargar
// ──────────────────────────────────────────────────────────────────────────────

func TestCargar_PoblaListaCanonica(t *testing.T) {
	f := &clienteFalso{listado: []entity.Categoria{{ID: 1, Nombre: "Bacheo", Activo: true}}}
	ctrl, _ := nuevoControlador(f)
	defer ctrl.Detener()

	require.NoError(t, ctrl.Cargar(context.Background()))
	assert.Equal(t, abm.Cargado, ctrl.Estado())
	assert.Len(t, ctrl.Canonica(), 1)
}

func TestCargar_FalloConservaListaAnterior(t *testing.T) {
	f := &clienteFalso{listado: []entity.Categoria{{ID: 1, Nombre: "Bacheo", Activo: true}}}
	ctrl, notif := nuevoControlador(f)
	defer ctrl.Detener()
	require.NoError(t, ctrl.Cargar(context.Background()))

	f.mu.Lock()
	f.errGetAll = errors.New("backend caído")
	f.mu.Unlock()

	err := ctrl.Cargar(context.Background())
	assert.ErrorIs(t, err, domain.ErrCargaFallida)
	assert.Equal(t, abm.Cargado, ctrl.Estado(), "con datos previos el estado vuelve a Cargado")
	assert.Len(t, ctrl.Canonica(), 1, "la lista anterior queda intacta, sin sobreescritura parcial")
	assert.Equal(t, abm.NivelError, ultimaNotificacion(t, notif).Nivel)
}

func TestCargar_FalloInicialQuedaEnErrorCarga(t *testing.T) {
	f := &clienteFalso{errGetAll: errors.New("backend caído")}
	ctrl, _ := nuevoControlador(f)
	defer ctrl.Detener()

	err := ctrl.Cargar(context.Background())
	assert.ErrorIs(t, err, domain.ErrCargaFallida)
	assert.Equal(t, abm.ErrorCarga, ctrl.Estado())
}

func TestCargar_RespuestaObsoletaSeDescarta(t *testing.T) {
	// La primera carga (listado viejo) queda bloqueada hasta que la segunda
	// (listado nuevo) termina; al destrabarse, su generación ya no es la
	// vigente y no debe pisar la lista canónica.
	f := &clienteFalso{listado: []entity.Categoria{{ID: 1, Nombre: "Vieja", Activo: true}}}
	ctrl, _ := nuevoControlador(f)
	defer ctrl.Detener()

	bloqueo := make(chan struct{})
	lentaTermino := make(chan struct{})
	f.enGetAll = func() { <-bloqueo }

	go func() {
		_ = ctrl.Cargar(context.Background())
		close(lentaTermino)
	}()

	// Esperar a que la carga lenta esté dentro del GetAll.
	require.Eventually(t, func() bool { return f.getAlls() == 1 }, time.Second, time.Millisecond)

	f.mu.Lock()
	f.listado = []entity.Categoria{{ID: 2, Nombre: "Nueva", Activo: true}}
	f.mu.Unlock()
	require.NoError(t, ctrl.Cargar(context.Background()))

	close(bloqueo)
	<-lentaTermino

	canonica := ctrl.Canonica()
	require.Len(t, canonica, 1)
	assert.Equal(t, "Nueva", canonica[0].Nombre,
		"la respuesta lenta y vieja no debe sobreescribir el listado más nuevo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Hoja: crear / editar / enviar
// ──────────────────────────────────────────────────────────────────────────────

func TestAbrirCrear_FormularioConDefaults(t *testing.T) {
	ctrl, _ := nuevoControlador(&clienteFalso{})
	defer ctrl.Detener()

	form := ctrl.AbrirCrear()
	assert.Equal(t, abm.HojaCrear, ctrl.Hoja())
	assert.Equal(t, "#888888", form.Color)
	assert.Empty(t, form.Nombre)
}

func TestAbrirEditar_CopiaElRegistro(t *testing.T) {
	f := &clienteFalso{listado: []entity.Categoria{{ID: 3, Nombre: "Poda", Color: "#00ff00", Activo: true}}}
	ctrl, _ := nuevoControlador(f)
	defer ctrl.Detener()
	require.NoError(t, ctrl.Cargar(context.Background()))

	form, err := ctrl.AbrirEditar(3)
	require.NoError(t, err)
	assert.Equal(t, abm.HojaEditar, ctrl.Hoja())
	assert.Equal(t, "Poda", form.Nombre)
	assert.Equal(t, "#00ff00", form.Color)
}

func TestAbrirEditar_IDInexistente(t *testing.T) {
	ctrl, _ := nuevoControlador(&clienteFalso{})
	defer ctrl.Detener()

	_, err := ctrl.AbrirEditar(99)
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)
	assert.Equal(t, abm.HojaCerrada, ctrl.Hoja(), "un id inexistente no abre la hoja")
}

func TestEnviar_EdicionInvocaUpdateYRecargaUnaVez(t *testing.T) {
	f := &clienteFalso{listado: []entity.Categoria{{ID: 5, Nombre: "Alumbrado", Activo: true}}}
	ctrl, _ := nuevoControlador(f)
	defer ctrl.Detener()
	require.NoError(t, ctrl.Cargar(context.Background()))
	llamadasPrevias := f.getAlls()

	_, err := ctrl.AbrirEditar(5)
	require.NoError(t, err)

	_, err = ctrl.Enviar(context.Background(), dto.CategoriaForm{Nombre: "Alumbrado LED"})
	require.NoError(t, err)

	f.mu.Lock()
	actualizadas := append([]int(nil), f.actualizadas...)
	creadas := len(f.creadas)
	f.mu.Unlock()

	assert.Equal(t, []int{5}, actualizadas, "el update debe apuntar al id seleccionado")
	assert.Zero(t, creadas, "una edición nunca invoca create")
	assert.Equal(t, abm.HojaCerrada, ctrl.Hoja(), "con éxito la hoja se cierra")
	assert.Equal(t, llamadasPrevias+1, f.getAlls(), "el éxito dispara exactamente una recarga")
}

func TestEnviar_AltaInvocaCreate(t *testing.T) {
	f := &clienteFalso{}
	ctrl, _ := nuevoControlador(f)
	defer ctrl.Detener()

	ctrl.AbrirCrear()
	reg, err := ctrl.Enviar(context.Background(), dto.CategoriaForm{Nombre: "Arbolado"})
	require.NoError(t, err)
	require.NotNil(t, reg)
	assert.Equal(t, 100, reg.ID, "el alta devuelve el registro confirmado por el backend")

	f.mu.Lock()
	defer f.mu.Unlock()
	assert.Len(t, f.creadas, 1)
	assert.Empty(t, f.actualizadas)
}

func TestEnviar_ValidacionFallida_NoTocaLaRed(t *testing.T) {
	f := &clienteFalso{}
	ctrl, notif := nuevoControlador(f)
	defer ctrl.Detener()

	ctrl.AbrirCrear()
	_, err := ctrl.Enviar(context.Background(), dto.CategoriaForm{Nombre: "   "})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
	assert.Equal(t, abm.HojaCrear, ctrl.Hoja(), "la hoja sigue abierta")
	assert.Zero(t, f.getAlls(), "sin validación no se emite ninguna llamada")
	assert.Equal(t, abm.NivelError, ultimaNotificacion(t, notif).Nivel)
}

func TestEnviar_RechazoDelBackend_PreservaFormulario(t *testing.T) {
	f := &clienteFalso{errEnvio: errors.New("409 duplicado")}
	ctrl, notif := nuevoControlador(f)
	defer ctrl.Detener()

	ctrl.AbrirCrear()
	tipeado := dto.CategoriaForm{Nombre: "Bacheo", Color: "#112233"}
	_, err := ctrl.Enviar(context.Background(), tipeado)
	assert.ErrorIs(t, err, domain.ErrEnvioFallido)
	assert.Equal(t, abm.HojaCrear, ctrl.Hoja(), "la hoja queda abierta tras el rechazo")
	assert.Equal(t, tipeado, ctrl.Formulario(), "lo tipeado por el operador se preserva")
	assert.Equal(t, abm.NivelError, ultimaNotificacion(t, notif).Nivel)
}

func TestEnviar_SinHojaAbierta(t *testing.T) {
	ctrl, _ := nuevoControlador(&clienteFalso{})
	defer ctrl.Detener()

	_, err := ctrl.Enviar(context.Background(), dto.CategoriaForm{Nombre: "X"})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

// ──────────────────────────────────────────────────────────────────────────────
// Desactivar
// ──────────────────────────────────────────────────────────────────────────────

func TestDesactivar_ExitoRecarga(t *testing.T) {
	f := &clienteFalso{listado: []entity.Categoria{{ID: 7, Nombre: "Poda", Activo: true}}}
	ctrl, _ := nuevoControlador(f)
	defer ctrl.Detener()
	require.NoError(t, ctrl.Cargar(context.Background()))
	llamadasPrevias := f.getAlls()

	require.NoError(t, ctrl.Desactivar(context.Background(), 7))

	f.mu.Lock()
	desactivadas := append([]int(nil), f.desactivadas...)
	f.mu.Unlock()
	assert.Equal(t, []int{7}, desactivadas)
	assert.Equal(t, llamadasPrevias+1, f.getAlls())
}

func TestDesactivar_FalloDejaElRegistroIntacto(t *testing.T) {
	f := &clienteFalso{listado: []entity.Categoria{{ID: 7, Nombre: "Poda", Activo: true}}}
	ctrl, notif := nuevoControlador(f)
	defer ctrl.Detener()
	require.NoError(t, ctrl.Cargar(context.Background()))

	f.mu.Lock()
	f.errDelete = errors.New("500")
	f.mu.Unlock()

	err := ctrl.Desactivar(context.Background(), 7)
	assert.ErrorIs(t, err, domain.ErrDesactivacionFallida)

	reg, errObtener := ctrl.Obtener(7)
	require.NoError(t, errObtener)
	assert.True(t, reg.Activo, "el registro conserva su activo previo: no hay remoción optimista")
	assert.Equal(t, abm.NivelError, ultimaNotificacion(t, notif).Nivel)
}

// ──────────────────────────────────────────────────────────────────────────────
// Visibles
// ──────────────────────────────────────────────────────────────────────────────

func TestVisibles_EscenarioBacheoAlumbrado(t *testing.T) {
	f := &clienteFalso{listado: []entity.Categoria{
		{ID: 1, Nombre: "Bacheo", Activo: true},
		{ID: 2, Nombre: "Alumbrado", Activo: false},
	}}
	ctrl, _ := nuevoControlador(f)
	defer ctrl.Detener()
	require.NoError(t, ctrl.Cargar(context.Background()))

	soloTexto := ctrl.Visibles(abm.Criterios{Texto: "bache"})
	require.Len(t, soloTexto, 1)
	assert.Equal(t, 1, soloTexto[0].ID)

	inactivos := false
	soloFiltro := ctrl.Visibles(abm.Criterios{Activo: &inactivos})
	require.Len(t, soloFiltro, 1)
	assert.Equal(t, 2, soloFiltro[0].ID)

	ambos := ctrl.Visibles(abm.Criterios{Texto: "bache", Activo: &inactivos})
	assert.Empty(t, ambos, "texto y filtro se intersectan: sin coincidencias")
}

func TestVisibles_PoliticaPorDefectoDeActivos(t *testing.T) {
	f := &clienteFalso{listado: []entity.Categoria{
		{ID: 1, Nombre: "Bacheo", Activo: true},
		{ID: 2, Nombre: "Alumbrado", Activo: false},
	}}
	cfg := configCategorias()
	cfg.SoloActivosPorDefecto = true
	ctrl := abm.Nuevo(cfg, f, abm.NuevoNotificadorMemoria(5), zerolog.Nop())
	defer ctrl.Detener()
	require.NoError(t, ctrl.Cargar(context.Background()))

	porDefecto := ctrl.Visibles(abm.Criterios{})
	require.Len(t, porDefecto, 1, "sin filtro elegido rige la política de la entidad")
	assert.Equal(t, 1, porDefecto[0].ID)

	inactivos := false
	explicito := ctrl.Visibles(abm.Criterios{Activo: &inactivos})
	require.Len(t, explicito, 1, "el filtro explícito del operador pisa la política")
	assert.Equal(t, 2, explicito[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reveal integrado
// ──────────────────────────────────────────────────────────────────────────────

func TestRevelado_PrimeraCargaAnimaYLasSiguientesNo(t *testing.T) {
	f := &clienteFalso{listado: []entity.Categoria{{ID: 1, Nombre: "Bacheo", Activo: true}}}
	ctrl, _ := nuevoControlador(f)
	defer ctrl.Detener()

	require.NoError(t, ctrl.Cargar(context.Background()))
	require.Eventually(t, func() bool { return ctrl.Revelado(1) }, time.Second, time.Millisecond)

	// Una recarga con más registros no re-anima: cuando la secuencia de la
	// primera carga se completa, todo id nuevo ya es visible.
	f.mu.Lock()
	f.listado = append(f.listado, entity.Categoria{ID: 2, Nombre: "Alumbrado", Activo: true})
	f.mu.Unlock()
	require.NoError(t, ctrl.Cargar(context.Background()))
	require.Eventually(t, func() bool { return ctrl.Revelado(2) }, time.Second, time.Millisecond)
}
