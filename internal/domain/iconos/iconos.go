// Package iconos mantiene el registro fijo de iconos renderizables del panel.
// La resolución por nombre siempre devuelve un icono: identificadores
// desconocidos caen en PorDefecto en lugar de fallar.
package iconos

import "strings"

// Icono es un símbolo renderizable: Glifo es el carácter a mostrar y
// Etiqueta el texto accesible.
type Icono struct {
	Nombre   string `json:"nombre"`
	Glifo    string `json:"glifo"`
	Etiqueta string `json:"etiqueta"`
}

// PorDefecto es el icono de reserva para identificadores desconocidos.
var PorDefecto = Icono{Nombre: "pregunta", Glifo: "❓", Etiqueta: "Sin icono"}

var registro = map[string]Icono{
	"bache":      {Nombre: "bache", Glifo: "🕳", Etiqueta: "Bacheo"},
	"alumbrado":  {Nombre: "alumbrado", Glifo: "💡", Etiqueta: "Alumbrado público"},
	"arbolado":   {Nombre: "arbolado", Glifo: "🌳", Etiqueta: "Arbolado y poda"},
	"basura":     {Nombre: "basura", Glifo: "🗑", Etiqueta: "Recolección de residuos"},
	"agua":       {Nombre: "agua", Glifo: "💧", Etiqueta: "Agua y cloacas"},
	"transito":   {Nombre: "transito", Glifo: "🚦", Etiqueta: "Tránsito y señalización"},
	"limpieza":   {Nombre: "limpieza", Glifo: "🧹", Etiqueta: "Limpieza urbana"},
	"seguridad":  {Nombre: "seguridad", Glifo: "🛡", Etiqueta: "Seguridad"},
	"animales":   {Nombre: "animales", Glifo: "🐕", Etiqueta: "Animales y zoonosis"},
	"ruido":      {Nombre: "ruido", Glifo: "🔊", Etiqueta: "Ruidos molestos"},
	"tramite":    {Nombre: "tramite", Glifo: "📋", Etiqueta: "Trámites"},
	"servicio":   {Nombre: "servicio", Glifo: "🛠", Etiqueta: "Servicios"},
	"edificio":   {Nombre: "edificio", Glifo: "🏛", Etiqueta: "Edificios municipales"},
	"parque":     {Nombre: "parque", Glifo: "🏞", Etiqueta: "Plazas y parques"},
	"obra":       {Nombre: "obra", Glifo: "🚧", Etiqueta: "Obra pública"},
	"emergencia": {Nombre: "emergencia", Glifo: "🚨", Etiqueta: "Emergencias"},
}

// Resolver devuelve el icono registrado bajo nombre (insensible a mayúsculas)
// o PorDefecto si no existe.
func Resolver(nombre string) Icono {
	if ic, ok := registro[strings.ToLower(strings.TrimSpace(nombre))]; ok {
		return ic
	}
	return PorDefecto
}

// Existe informa si el identificador está en el registro.
func Existe(nombre string) bool {
	_, ok := registro[strings.ToLower(strings.TrimSpace(nombre))]
	return ok
}

// Nombres devuelve los identificadores registrados; la UI arma con ellos el
// selector de iconos del formulario de categorías.
func Nombres() []string {
	out := make([]string, 0, len(registro))
	for n := range registro {
		out = append(out, n)
	}
	return out
}
