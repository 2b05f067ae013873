// Package localstore persiste banderas locales del panel en un archivo
// SQLite (el equivalente del localStorage del cliente web): por ejemplo
// "imágenes ya descargadas para el municipio X", para no repetir descargas
// masivas entre reinicios.
package localstore

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Store es un almacén clave/valor persistente.
type Store struct {
	db *sql.DB
}

const esquema = `
CREATE TABLE IF NOT EXISTS banderas (
	clave       TEXT PRIMARY KEY,
	valor       TEXT NOT NULL,
	actualizado TIMESTAMP NOT NULL
);`

// Abrir abre (o crea) el archivo en ruta. ":memory:" sirve para tests.
func Abrir(ruta string) (*Store, error) {
	db, err := sql.Open("sqlite", ruta)
	if err != nil {
		return nil, fmt.Errorf("localstore: abrir %s: %w", ruta, err)
	}
	if _, err := db.Exec(esquema); err != nil {
		db.Close()
		return nil, fmt.Errorf("localstore: crear esquema: %w", err)
	}
	return &Store{db: db}, nil
}

// Obtener devuelve el valor de la clave y si existe.
func (s *Store) Obtener(clave string) (string, bool, error) {
	var valor string
	err := s.db.QueryRow("SELECT valor FROM banderas WHERE clave = ?", clave).Scan(&valor)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("localstore: leer %q: %w", clave, err)
	}
	return valor, true, nil
}

// Guardar inserta o reemplaza el valor de la clave.
func (s *Store) Guardar(clave, valor string) error {
	_, err := s.db.Exec(
		"INSERT INTO banderas (clave, valor, actualizado) VALUES (?, ?, ?) "+
			"ON CONFLICT(clave) DO UPDATE SET valor = excluded.valor, actualizado = excluded.actualizado",
		clave, valor, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("localstore: guardar %q: %w", clave, err)
	}
	return nil
}

// Borrar elimina la clave; borrar una clave inexistente no es error.
func (s *Store) Borrar(clave string) error {
	if _, err := s.db.Exec("DELETE FROM banderas WHERE clave = ?", clave); err != nil {
		return fmt.Errorf("localstore: borrar %q: %w", clave, err)
	}
	return nil
}

// Cerrar libera el archivo.
func (s *Store) Cerrar() error {
	return s.db.Close()
}
