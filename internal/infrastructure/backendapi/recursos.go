package backendapi

import (
	"context"
	"fmt"
	"net/url"

	"github.com/municipio-digital/reclamos-admin/internal/application/dto"
	"github.com/municipio-digital/reclamos-admin/internal/domain/entity"
)

// Recurso es el módulo cliente de una colección REST con el contrato ABM:
// getAll / create / update / delete (baja lógica). Satisface abm.Cliente.
type Recurso[T any, P any] struct {
	c    *Client
	ruta string
}

// NuevoRecurso construye el módulo para la colección montada en ruta.
func NuevoRecurso[T any, P any](c *Client, ruta string) *Recurso[T, P] {
	return &Recurso[T, P]{c: c, ruta: ruta}
}

// GetAll trae la colección completa, con filtros opcionales de servidor.
func (r *Recurso[T, P]) GetAll(ctx context.Context, filtros map[string]string) ([]T, error) {
	query := url.Values{}
	for k, v := range filtros {
		query.Set(k, v)
	}
	var out []T
	if err := r.c.get(ctx, r.ruta, query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create da de alta un registro y devuelve la versión confirmada.
func (r *Recurso[T, P]) Create(ctx context.Context, form P) (*T, error) {
	var out T
	if err := r.c.enviar(ctx, "POST", r.ruta, form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update modifica un registro existente y devuelve la versión confirmada.
func (r *Recurso[T, P]) Update(ctx context.Context, id int, form P) (*T, error) {
	var out T
	if err := r.c.enviar(ctx, "PUT", fmt.Sprintf("%s/%d", r.ruta, id), form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete desactiva el registro (baja lógica, nunca borrado de fila).
func (r *Recurso[T, P]) Delete(ctx context.Context, id int) error {
	return r.c.enviar(ctx, "DELETE", fmt.Sprintf("%s/%d", r.ruta, id), nil, nil)
}

// ── Módulos por entidad ───────────────────────────────────────────────────────

// Categorias devuelve el módulo cliente de categorías.
func (c *Client) Categorias() *Recurso[entity.Categoria, dto.CategoriaForm] {
	return NuevoRecurso[entity.Categoria, dto.CategoriaForm](c, "/categorias")
}

// Empleados devuelve el módulo cliente de empleados.
func (c *Client) Empleados() *Recurso[entity.Empleado, dto.EmpleadoForm] {
	return NuevoRecurso[entity.Empleado, dto.EmpleadoForm](c, "/empleados")
}

// Compras devuelve el módulo cliente de compras.
func (c *Client) Compras() *Recurso[entity.Compra, dto.CompraForm] {
	return NuevoRecurso[entity.Compra, dto.CompraForm](c, "/compras")
}

// Pedidos devuelve el módulo cliente de pedidos.
func (c *Client) Pedidos() *Recurso[entity.Pedido, dto.PedidoForm] {
	return NuevoRecurso[entity.Pedido, dto.PedidoForm](c, "/pedidos")
}

// Servicios devuelve el módulo cliente del catálogo de servicios.
func (c *Client) Servicios() *Recurso[entity.Servicio, dto.ServicioForm] {
	return NuevoRecurso[entity.Servicio, dto.ServicioForm](c, "/servicios")
}

// TiposTramite devuelve el módulo cliente de tipos de trámite.
func (c *Client) TiposTramite() *Recurso[entity.TipoTramite, dto.TipoTramiteForm] {
	return NuevoRecurso[entity.TipoTramite, dto.TipoTramiteForm](c, "/tipos-tramite")
}

// Usuarios devuelve el módulo cliente de usuarios del panel.
func (c *Client) Usuarios() *Recurso[entity.Usuario, dto.UsuarioForm] {
	return NuevoRecurso[entity.Usuario, dto.UsuarioForm](c, "/usuarios")
}

// ── Reclamos (solo lectura) ───────────────────────────────────────────────────

// ReclamosClient trae reclamos para el tablero de tarjetas.
type ReclamosClient struct {
	c *Client
}

// Reclamos devuelve el módulo cliente de reclamos.
func (c *Client) Reclamos() *ReclamosClient { return &ReclamosClient{c: c} }

// GetAll trae los reclamos, con filtros opcionales de servidor.
func (rc *ReclamosClient) GetAll(ctx context.Context, filtros map[string]string) ([]entity.Reclamo, error) {
	query := url.Values{}
	for k, v := range filtros {
		query.Set(k, v)
	}
	var out []entity.Reclamo
	if err := rc.c.get(ctx, "/reclamos", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}
