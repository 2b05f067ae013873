// Package backendapi implementa los módulos cliente por entidad contra el
// backend REST municipal. El backend es una frontera opaca: los payloads son
// JSON cuya forma define él; acá solo se transportan.
package backendapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/municipio-digital/reclamos-admin/internal/domain"
)

// Config del cliente REST.
type Config struct {
	BaseURL string
	Token   string // token de servicio emitido por el colaborador de auth
	Timeout time.Duration
}

// Client es el transporte compartido por todos los módulos de entidad.
type Client struct {
	base  string
	token string
	http  *http.Client
	log   zerolog.Logger
}

// New construye el cliente; timeout en cero usa 15 s.
func New(cfg Config, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		base:  strings.TrimRight(cfg.BaseURL, "/"),
		token: cfg.Token,
		http:  &http.Client{Timeout: timeout},
		log:   log.With().Str("componente", "backendapi").Logger(),
	}
}

type errorBackend struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (c *Client) get(ctx context.Context, ruta string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, ruta, query, nil, out)
}

func (c *Client) enviar(ctx context.Context, metodo, ruta string, in, out any) error {
	return c.do(ctx, metodo, ruta, nil, in, out)
}

func (c *Client) do(ctx context.Context, metodo, ruta string, query url.Values, in, out any) error {
	destino := c.base + ruta
	if len(query) > 0 {
		destino += "?" + query.Encode()
	}

	var cuerpo io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("backendapi: serializar cuerpo: %w", err)
		}
		cuerpo = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, metodo, destino, cuerpo)
	if err != nil {
		return fmt.Errorf("backendapi: armar petición: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	// Correlación punta a punta con el backend.
	idPeticion := uuid.New().String()
	req.Header.Set("X-Request-ID", idPeticion)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("metodo", metodo).Str("ruta", ruta).
			Str("request_id", idPeticion).Msg("petición al backend fallida")
		return fmt.Errorf("%w: %v", domain.ErrBackendNoDisponible, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrNoEncontrado
	}
	if resp.StatusCode >= 400 {
		var eb errorBackend
		_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&eb)
		c.log.Warn().Int("estado", resp.StatusCode).Str("metodo", metodo).
			Str("ruta", ruta).Str("codigo", eb.Code).Str("request_id", idPeticion).
			Msg("backend rechazó la petición")
		if eb.Message != "" {
			return fmt.Errorf("backendapi: %s %s: estado %d: %s", metodo, ruta, resp.StatusCode, eb.Message)
		}
		return fmt.Errorf("backendapi: %s %s: estado %d", metodo, ruta, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("backendapi: decodificar respuesta de %s: %w", ruta, err)
	}
	return nil
}
