// Package paneles declara cómo cada entidad del panel se enchufa al motor
// ABM genérico: extractores de campos, política de activos y formularios.
// Acá vive la única parte por-entidad del CRUD; el flujo es compartido.
package paneles

import (
	"time"

	"github.com/municipio-digital/reclamos-admin/internal/application/abm"
	"github.com/municipio-digital/reclamos-admin/internal/application/dto"
	"github.com/municipio-digital/reclamos-admin/internal/application/reveal"
	"github.com/municipio-digital/reclamos-admin/internal/domain/entity"
)

// Categorias arma la página de categorías de reclamos. La pantalla oculta
// las inactivas salvo que el operador pida lo contrario.
func Categorias(rev reveal.Config) abm.Config[entity.Categoria, dto.CategoriaForm] {
	return abm.Config[entity.Categoria, dto.CategoriaForm]{
		Entidad: "la categoría",
		ID:      func(c entity.Categoria) int { return c.ID },
		Activo:  func(c entity.Categoria) bool { return c.Activo },
		CamposBusqueda: []func(entity.Categoria) string{
			func(c entity.Categoria) string { return c.Nombre },
			func(c entity.Categoria) string { return c.Descripcion },
		},
		Columnas: map[string]func(entity.Categoria) string{
			"nombre": func(c entity.Categoria) string { return c.Nombre },
			"fecha":  func(c entity.Categoria) string { return c.CreatedAt.Format(time.RFC3339) },
		},
		SoloActivosPorDefecto: true,
		Validar:               func(f dto.CategoriaForm) error { return f.Validar() },
		FormularioNuevo:       func() dto.CategoriaForm { return dto.CategoriaForm{Color: "#607D8B"} },
		FormularioDe: func(c entity.Categoria) dto.CategoriaForm {
			return dto.CategoriaForm{Nombre: c.Nombre, Descripcion: c.Descripcion, Color: c.Color, Icono: c.Icono}
		},
		Reveal: rev,
	}
}

// Empleados arma la página de agentes municipales. Muestra también los
// inactivos: un empleado de baja sigue apareciendo en reclamos históricos.
func Empleados(rev reveal.Config) abm.Config[entity.Empleado, dto.EmpleadoForm] {
	return abm.Config[entity.Empleado, dto.EmpleadoForm]{
		Entidad: "el empleado",
		ID:      func(e entity.Empleado) int { return e.ID },
		Activo:  func(e entity.Empleado) bool { return e.Activo },
		CamposBusqueda: []func(entity.Empleado) string{
			func(e entity.Empleado) string { return e.NombreCompleto() },
			func(e entity.Empleado) string { return e.Email },
		},
		Columnas: map[string]func(entity.Empleado) string{
			"nombre": func(e entity.Empleado) string { return e.NombreCompleto() },
			"email":  func(e entity.Empleado) string { return e.Email },
		},
		CamposFiltro: map[string]func(entity.Empleado) string{
			"categoria": func(e entity.Empleado) string {
				if e.CategoriaPrincipal == nil {
					return ""
				}
				return e.CategoriaPrincipal.Nombre
			},
		},
		SoloActivosPorDefecto: false,
		Validar:               func(f dto.EmpleadoForm) error { return f.Validar() },
		FormularioNuevo:       func() dto.EmpleadoForm { return dto.EmpleadoForm{} },
		FormularioDe: func(e entity.Empleado) dto.EmpleadoForm {
			return dto.EmpleadoForm{
				Nombre: e.Nombre, Apellido: e.Apellido, Email: e.Email,
				Telefono: e.Telefono, CategoriaPrincipalID: e.CategoriaPrincipalID,
			}
		},
		Reveal: rev,
	}
}

// Compras arma la página de compras, con filtro por rango de fechas.
func Compras(rev reveal.Config) abm.Config[entity.Compra, dto.CompraForm] {
	return abm.Config[entity.Compra, dto.CompraForm]{
		Entidad: "la compra",
		ID:      func(c entity.Compra) int { return c.ID },
		Activo:  func(c entity.Compra) bool { return c.Activo },
		CamposBusqueda: []func(entity.Compra) string{
			func(c entity.Compra) string { return c.Descripcion },
			func(c entity.Compra) string { return c.Proveedor },
		},
		Columnas: map[string]func(entity.Compra) string{
			"descripcion": func(c entity.Compra) string { return c.Descripcion },
			"proveedor":   func(c entity.Compra) string { return c.Proveedor },
			"fecha":       func(c entity.Compra) string { return c.Fecha.Format(time.RFC3339) },
		},
		CampoFecha:            func(c entity.Compra) *time.Time { f := c.Fecha; return &f },
		SoloActivosPorDefecto: false,
		Validar:               func(f dto.CompraForm) error { return f.Validar() },
		FormularioNuevo: func() dto.CompraForm {
			return dto.CompraForm{Fecha: time.Now().Format("2006-01-02")}
		},
		FormularioDe: func(c entity.Compra) dto.CompraForm {
			return dto.CompraForm{
				Descripcion: c.Descripcion, Proveedor: c.Proveedor,
				Monto: c.Monto, Fecha: c.Fecha.Format("2006-01-02"),
			}
		},
		Reveal: rev,
	}
}

// Pedidos arma la página de pedidos de materiales, con filtro por estado.
func Pedidos(rev reveal.Config) abm.Config[entity.Pedido, dto.PedidoForm] {
	return abm.Config[entity.Pedido, dto.PedidoForm]{
		Entidad: "el pedido",
		ID:      func(p entity.Pedido) int { return p.ID },
		Activo:  func(p entity.Pedido) bool { return p.Activo },
		CamposBusqueda: []func(entity.Pedido) string{
			func(p entity.Pedido) string { return p.Descripcion },
		},
		Columnas: map[string]func(entity.Pedido) string{
			"descripcion": func(p entity.Pedido) string { return p.Descripcion },
			"estado":      func(p entity.Pedido) string { return p.Estado },
			"fecha": func(p entity.Pedido) string {
				if p.FechaEntrega == nil {
					return ""
				}
				return p.FechaEntrega.Format(time.RFC3339)
			},
		},
		CamposFiltro: map[string]func(entity.Pedido) string{
			"estado": func(p entity.Pedido) string { return p.Estado },
		},
		CampoFecha:            func(p entity.Pedido) *time.Time { return p.FechaEntrega },
		SoloActivosPorDefecto: false,
		Validar:               func(f dto.PedidoForm) error { return f.Validar() },
		FormularioNuevo: func() dto.PedidoForm {
			return dto.PedidoForm{Estado: entity.PedidoPendiente}
		},
		FormularioDe: func(p entity.Pedido) dto.PedidoForm {
			f := dto.PedidoForm{Descripcion: p.Descripcion, Estado: p.Estado, Monto: p.Monto}
			if p.FechaEntrega != nil {
				f.FechaEntrega = p.FechaEntrega.Format("2006-01-02")
			}
			return f
		},
		Reveal: rev,
	}
}

// Servicios arma la página del catálogo de servicios municipales.
func Servicios(rev reveal.Config) abm.Config[entity.Servicio, dto.ServicioForm] {
	return abm.Config[entity.Servicio, dto.ServicioForm]{
		Entidad: "el servicio",
		ID:      func(s entity.Servicio) int { return s.ID },
		Activo:  func(s entity.Servicio) bool { return s.Activo },
		CamposBusqueda: []func(entity.Servicio) string{
			func(s entity.Servicio) string { return s.Nombre },
			func(s entity.Servicio) string { return s.Descripcion },
		},
		Columnas: map[string]func(entity.Servicio) string{
			"nombre": func(s entity.Servicio) string { return s.Nombre },
		},
		SoloActivosPorDefecto: true,
		Validar:               func(f dto.ServicioForm) error { return f.Validar() },
		FormularioNuevo:       func() dto.ServicioForm { return dto.ServicioForm{} },
		FormularioDe: func(s entity.Servicio) dto.ServicioForm {
			return dto.ServicioForm{Nombre: s.Nombre, Descripcion: s.Descripcion, Icono: s.Icono}
		},
		Reveal: rev,
	}
}

// TiposTramite arma la página de tipos de trámite administrativo.
func TiposTramite(rev reveal.Config) abm.Config[entity.TipoTramite, dto.TipoTramiteForm] {
	return abm.Config[entity.TipoTramite, dto.TipoTramiteForm]{
		Entidad: "el tipo de trámite",
		ID:      func(t entity.TipoTramite) int { return t.ID },
		Activo:  func(t entity.TipoTramite) bool { return t.Activo },
		CamposBusqueda: []func(entity.TipoTramite) string{
			func(t entity.TipoTramite) string { return t.Nombre },
			func(t entity.TipoTramite) string { return t.Descripcion },
		},
		Columnas: map[string]func(entity.TipoTramite) string{
			"nombre": func(t entity.TipoTramite) string { return t.Nombre },
		},
		SoloActivosPorDefecto: true,
		Validar:               func(f dto.TipoTramiteForm) error { return f.Validar() },
		FormularioNuevo:       func() dto.TipoTramiteForm { return dto.TipoTramiteForm{} },
		FormularioDe: func(t entity.TipoTramite) dto.TipoTramiteForm {
			return dto.TipoTramiteForm{Nombre: t.Nombre, Descripcion: t.Descripcion}
		},
		Reveal: rev,
	}
}

// Usuarios arma la página de usuarios del panel. La contraseña nunca se
// copia del registro al abrir la edición.
func Usuarios(rev reveal.Config) abm.Config[entity.Usuario, dto.UsuarioForm] {
	return abm.Config[entity.Usuario, dto.UsuarioForm]{
		Entidad: "el usuario",
		ID:      func(u entity.Usuario) int { return u.ID },
		Activo:  func(u entity.Usuario) bool { return u.Activo },
		CamposBusqueda: []func(entity.Usuario) string{
			func(u entity.Usuario) string { return u.Username },
			func(u entity.Usuario) string { return u.Nombre },
			func(u entity.Usuario) string { return u.Email },
		},
		Columnas: map[string]func(entity.Usuario) string{
			"username": func(u entity.Usuario) string { return u.Username },
			"nombre":   func(u entity.Usuario) string { return u.Nombre },
		},
		CamposFiltro: map[string]func(entity.Usuario) string{
			"rol": func(u entity.Usuario) string { return u.Rol },
		},
		SoloActivosPorDefecto: false,
		Validar:               func(f dto.UsuarioForm) error { return f.Validar() },
		FormularioNuevo: func() dto.UsuarioForm {
			return dto.UsuarioForm{Rol: entity.RolOperador, EsAlta: true}
		},
		FormularioDe: func(u entity.Usuario) dto.UsuarioForm {
			return dto.UsuarioForm{Username: u.Username, Nombre: u.Nombre, Email: u.Email, Rol: u.Rol}
		},
		Reveal: rev,
	}
}
