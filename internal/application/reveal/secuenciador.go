// Package reveal programa la aparición escalonada de las tarjetas de un
// listado recién cargado. La secuencia corre una sola vez por instancia:
// recargas posteriores por cambios de filtro no vuelven a animar.
package reveal

import (
	"sync"
	"time"
)

// Config son las demoras de la secuencia. El registro i se revela en
// Base + i*Paso; la bandera de secuencia completa se fija en
// Base + n*Paso + Asentamiento.
type Config struct {
	Base         time.Duration
	Paso         time.Duration
	Asentamiento time.Duration
}

// ConfigPorDefecto replica las demoras del panel original.
var ConfigPorDefecto = Config{
	Base:         50 * time.Millisecond,
	Paso:         80 * time.Millisecond,
	Asentamiento: 150 * time.Millisecond,
}

// Secuenciador mantiene el conjunto de ids ya revelados y la bandera de
// secuencia completa. Agregar a un conjunto es conmutativo e idempotente,
// así que los timers no compiten entre sí; el mutex solo protege el mapa
// porque cada time.AfterFunc dispara en su propia goroutine.
type Secuenciador struct {
	cfg Config

	mu        sync.Mutex
	iniciado  bool
	completo  bool
	revelados map[int]struct{}
	timers    []*time.Timer
}

// Nuevo construye el secuenciador; demoras en cero toman el valor por defecto.
func Nuevo(cfg Config) *Secuenciador {
	if cfg.Base == 0 && cfg.Paso == 0 && cfg.Asentamiento == 0 {
		cfg = ConfigPorDefecto
	}
	return &Secuenciador{cfg: cfg, revelados: make(map[int]struct{})}
}

// Iniciar arma los timers para la primera carga no vacía, en orden canónico.
// Llamadas posteriores (o con lista vacía) no hacen nada.
func (s *Secuenciador) Iniciar(ids []int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.iniciado || len(ids) == 0 {
		return
	}
	s.iniciado = true

	for i, id := range ids {
		id := id
		demora := s.cfg.Base + time.Duration(i)*s.cfg.Paso
		s.timers = append(s.timers, time.AfterFunc(demora, func() {
			s.mu.Lock()
			s.revelados[id] = struct{}{}
			s.mu.Unlock()
		}))
	}

	total := s.cfg.Base + time.Duration(len(ids))*s.cfg.Paso + s.cfg.Asentamiento
	s.timers = append(s.timers, time.AfterFunc(total, func() {
		s.mu.Lock()
		s.completo = true
		s.mu.Unlock()
	}))
}

// Revelado informa si el id debe mostrarse. Con la secuencia completa todo
// registro es visible, incluso los que entraron al listado después.
func (s *Secuenciador) Revelado(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.completo {
		return true
	}
	_, ok := s.revelados[id]
	return ok
}

// Completo informa si la secuencia terminó.
func (s *Secuenciador) Completo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completo
}

// Iniciado informa si la primera carga ya armó la secuencia.
func (s *Secuenciador) Iniciado() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.iniciado
}

// Detener cancela los timers pendientes (desmontaje de la página). Los ids
// ya revelados conservan su estado.
func (s *Secuenciador) Detener() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.timers {
		t.Stop()
	}
	s.timers = nil
}
