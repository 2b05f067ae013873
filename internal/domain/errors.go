package domain

import "errors"

// Errores de dominio (sin dependencias externas). La taxonomía sigue los
// modos de fallo del panel: carga, validación local, envío y desactivación.
var (
	ErrNoEncontrado         = errors.New("registro no encontrado")
	ErrEntradaInvalida      = errors.New("entrada inválida")
	ErrCargaFallida         = errors.New("no se pudo cargar el listado")
	ErrEnvioFallido         = errors.New("el backend rechazó el envío")
	ErrDesactivacionFallida = errors.New("el backend rechazó la desactivación")
	ErrBackendNoDisponible  = errors.New("backend de reclamos no disponible")
	ErrNoAutorizado         = errors.New("no autorizado")
	ErrAccesoDenegado       = errors.New("acceso denegado")
)
