package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MensajeResponse respuesta simple de confirmación.
type MensajeResponse struct {
	Mensaje string `json:"mensaje"`
}

// ListadoResponse envoltorio de listados ya filtrados y ordenados.
type ListadoResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}
