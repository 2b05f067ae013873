// Package imagecache memoriza nombre de categoría → URL de imagen. Es un
// store inyectable y explícito: la única invalidación es Limpiar, que se
// dispara tras una descarga masiva exitosa.
package imagecache

import "sync"

// Cache tabla de memoización con Get/Set/Clear. Segura para uso concurrente.
type Cache struct {
	mu   sync.RWMutex
	urls map[string]string
}

// Nuevo construye una cache vacía.
func Nuevo() *Cache {
	return &Cache{urls: make(map[string]string)}
}

// Obtener devuelve la URL memorizada para el nombre, si existe.
func (c *Cache) Obtener(nombre string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	url, ok := c.urls[nombre]
	return url, ok
}

// Guardar memoriza la URL para el nombre.
func (c *Cache) Guardar(nombre, url string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.urls[nombre] = url
}

// Limpiar vacía la tabla completa.
func (c *Cache) Limpiar() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.urls = make(map[string]string)
}

// Tamano devuelve la cantidad de entradas memorizadas.
func (c *Cache) Tamano() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.urls)
}
