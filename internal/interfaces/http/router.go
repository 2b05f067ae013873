package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/municipio-digital/reclamos-admin/internal/application/abm"
	"github.com/municipio-digital/reclamos-admin/internal/application/dto"
	"github.com/municipio-digital/reclamos-admin/internal/application/usecase"
	"github.com/municipio-digital/reclamos-admin/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Categorias   *abm.Controlador[entity.Categoria, dto.CategoriaForm]
	Empleados    *abm.Controlador[entity.Empleado, dto.EmpleadoForm]
	Compras      *abm.Controlador[entity.Compra, dto.CompraForm]
	Pedidos      *abm.Controlador[entity.Pedido, dto.PedidoForm]
	Servicios    *abm.Controlador[entity.Servicio, dto.ServicioForm]
	TiposTramite *abm.Controlador[entity.TipoTramite, dto.TipoTramiteForm]
	Usuarios     *abm.Controlador[entity.Usuario, dto.UsuarioForm]

	ReclamoUC *usecase.ReclamoUseCase
	ImagenUC  *usecase.ImagenUseCase
	ReporteUC *usecase.ReporteComprasUseCase

	Notificador *abm.NotificadorMemoria
	JWTSecret   string
}

// Router registra las rutas del panel. Todas las rutas exigen sesión; las de
// usuarios además exigen rol admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Páginas ABM: un controlador por entidad, un solo handler genérico.
	RegistrarABM(api.Group("/categorias"), deps.Categorias)
	RegistrarABM(api.Group("/empleados"), deps.Empleados)
	RegistrarABM(api.Group("/compras"), deps.Compras)
	RegistrarABM(api.Group("/pedidos"), deps.Pedidos)
	RegistrarABM(api.Group("/servicios"), deps.Servicios)
	RegistrarABM(api.Group("/tipos-tramite"), deps.TiposTramite)

	// Gestión de usuarios restringida a administradores.
	RegistrarABM(api.Group("/usuarios", RequireRol(entity.RolAdmin)), deps.Usuarios)

	// Tablero de reclamos (solo lectura).
	reclamos := NewReclamoHandler(deps.ReclamoUC)
	api.Get("/reclamos", reclamos.List)

	// Imágenes de categorías.
	imagenes := NewImagenHandler(deps.ImagenUC)
	api.Post("/imagenes/descargar-todas", imagenes.DescargarTodas)
	api.Get("/imagenes/categoria", imagenes.URLCategoria)

	// Reportes.
	reportes := NewReporteHandler(deps.ReporteUC)
	api.Get("/reportes/compras", reportes.Compras)

	// Notificaciones del panel.
	notificaciones := NewNotificacionHandler(deps.Notificador)
	api.Get("/notificaciones", notificaciones.Recientes)
}
