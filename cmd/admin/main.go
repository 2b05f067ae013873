package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/municipio-digital/reclamos-admin/internal/application/abm"
	"github.com/municipio-digital/reclamos-admin/internal/application/paneles"
	"github.com/municipio-digital/reclamos-admin/internal/application/reveal"
	"github.com/municipio-digital/reclamos-admin/internal/application/usecase"
	"github.com/municipio-digital/reclamos-admin/internal/infrastructure/backendapi"
	"github.com/municipio-digital/reclamos-admin/internal/infrastructure/imagecache"
	"github.com/municipio-digital/reclamos-admin/internal/infrastructure/localstore"
	infrapdf "github.com/municipio-digital/reclamos-admin/internal/infrastructure/pdf"
	httpRouter "github.com/municipio-digital/reclamos-admin/internal/interfaces/http"
	"github.com/municipio-digital/reclamos-admin/pkg/config"
	"github.com/municipio-digital/reclamos-admin/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando panel administrativo")

	// Transporte compartido hacia el backend REST municipal.
	cliente := backendapi.New(backendapi.Config{
		BaseURL: cfg.Backend.BaseURL,
		Token:   cfg.Backend.Token,
		Timeout: cfg.Backend.Timeout,
	}, log.Zerolog())

	// Almacén local de banderas (descarga única de imágenes).
	banderas, err := localstore.Abrir(cfg.Store.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén local")
	}
	defer banderas.Cerrar()

	rev := reveal.Config{
		Base:         cfg.Reveal.Base,
		Paso:         cfg.Reveal.Paso,
		Asentamiento: cfg.Reveal.Asentamiento,
	}

	// Un único notificador: todas las páginas comparten la bandeja de toasts.
	notificador := abm.NuevoNotificadorMemoria(50)

	// Controladores ABM: uno por entidad, mismo motor.
	categorias := abm.Nuevo(paneles.Categorias(rev), cliente.Categorias(), notificador, log.Zerolog())
	empleados := abm.Nuevo(paneles.Empleados(rev), cliente.Empleados(), notificador, log.Zerolog())
	compras := abm.Nuevo(paneles.Compras(rev), cliente.Compras(), notificador, log.Zerolog())
	pedidos := abm.Nuevo(paneles.Pedidos(rev), cliente.Pedidos(), notificador, log.Zerolog())
	servicios := abm.Nuevo(paneles.Servicios(rev), cliente.Servicios(), notificador, log.Zerolog())
	tiposTramite := abm.Nuevo(paneles.TiposTramite(rev), cliente.TiposTramite(), notificador, log.Zerolog())
	usuarios := abm.Nuevo(paneles.Usuarios(rev), cliente.Usuarios(), notificador, log.Zerolog())

	// Casos de uso fuera del CRUD genérico.
	reclamoUC := usecase.NewReclamoUseCase(cliente.Reclamos(), rev, log.Zerolog())
	imagenUC := usecase.NewImagenUseCase(cliente.Imagenes(), banderas, imagecache.Nuevo(), log.Zerolog())
	reporteUC := usecase.NewReporteComprasUseCase(cliente.Compras(), infrapdf.NewMarotoReporteCompras(), log.Zerolog())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Zerolog()))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Reclamos Admin API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Categorias:   categorias,
		Empleados:    empleados,
		Compras:      compras,
		Pedidos:      pedidos,
		Servicios:    servicios,
		TiposTramite: tiposTramite,
		Usuarios:     usuarios,
		ReclamoUC:    reclamoUC,
		ImagenUC:     imagenUC,
		ReporteUC:    reporteUC,
		Notificador:  notificador,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	// Cancela los timers de aparición pendientes antes de bajar el proceso.
	for _, detener := range []func(){
		categorias.Detener, empleados.Detener, compras.Detener, pedidos.Detener,
		servicios.Detener, tiposTramite.Detener, usuarios.Detener, reclamoUC.Detener,
	} {
		detener()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("panel detenido")
}
