package backendapi

import (
	"context"
	"net/url"
)

// ImagenesClient accede a los endpoints auxiliares de imágenes de categoría.
type ImagenesClient struct {
	c *Client
}

// Imagenes devuelve el módulo cliente de imágenes.
func (c *Client) Imagenes() *ImagenesClient { return &ImagenesClient{c: c} }

type descargaMasivaRequest struct {
	Nombres []string `json:"nombres"`
}

type descargaMasivaResponse struct {
	Descargadas int `json:"descargadas"`
	Fallidas    int `json:"fallidas"`
}

// FetchAll dispara la descarga masiva de imágenes por nombre en el backend
// y devuelve los conteos de éxito y fallo.
func (ic *ImagenesClient) FetchAll(ctx context.Context, nombres []string) (descargadas, fallidas int, err error) {
	var out descargaMasivaResponse
	if err := ic.c.enviar(ctx, "POST", "/images/fetch-all", descargaMasivaRequest{Nombres: nombres}, &out); err != nil {
		return 0, 0, err
	}
	return out.Descargadas, out.Fallidas, nil
}

type imagenResponse struct {
	URL string `json:"url"`
}

// URLCategoria consulta la URL de la imagen de una categoría por nombre.
// Devuelve domain.ErrNoEncontrado si el backend no la tiene.
func (ic *ImagenesClient) URLCategoria(ctx context.Context, nombre string) (string, error) {
	query := url.Values{}
	query.Set("nombre", nombre)
	var out imagenResponse
	if err := ic.c.get(ctx, "/images/categoria", query, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}
