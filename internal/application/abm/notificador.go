package abm

import (
	"sync"
	"time"
)

// Notificador recibe las notificaciones transitorias visibles al operador.
// Todo fallo de backend termina acá: nunca se propaga como fatal.
type Notificador interface {
	Exito(mensaje string)
	Error(mensaje string)
}

// Niveles de notificación.
const (
	NivelExito = "exito"
	NivelError = "error"
)

// Notificacion es un aviso transitorio registrado por el panel.
type Notificacion struct {
	Nivel   string    `json:"nivel"`
	Mensaje string    `json:"mensaje"`
	Hora    time.Time `json:"hora"`
}

// NotificadorMemoria conserva las últimas notificaciones en un anillo en
// memoria para que la UI las consulte. Seguro para uso concurrente.
type NotificadorMemoria struct {
	mu        sync.Mutex
	limite    int
	recientes []Notificacion
}

// NuevoNotificadorMemoria construye el notificador; limite <= 0 usa 50.
func NuevoNotificadorMemoria(limite int) *NotificadorMemoria {
	if limite <= 0 {
		limite = 50
	}
	return &NotificadorMemoria{limite: limite}
}

// Exito registra una notificación de éxito.
func (n *NotificadorMemoria) Exito(mensaje string) { n.agregar(NivelExito, mensaje) }

// Error registra una notificación de fallo.
func (n *NotificadorMemoria) Error(mensaje string) { n.agregar(NivelError, mensaje) }

// Recientes devuelve las notificaciones acumuladas, de la más vieja a la más
// nueva.
func (n *NotificadorMemoria) Recientes() []Notificacion {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Notificacion, len(n.recientes))
	copy(out, n.recientes)
	return out
}

func (n *NotificadorMemoria) agregar(nivel, mensaje string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.recientes = append(n.recientes, Notificacion{Nivel: nivel, Mensaje: mensaje, Hora: time.Now()})
	if len(n.recientes) > n.limite {
		n.recientes = n.recientes[len(n.recientes)-n.limite:]
	}
}
