package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Backend BackendConfig
	JWT     JWTConfig
	Reveal  RevealConfig
	Store   StoreConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env       string // development, staging, production
	Name      string
	Municipio string // slug del municipio que administra esta instancia
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BackendConfig configuración del backend REST de reclamos.
type BackendConfig struct {
	BaseURL string
	Token   string // token Bearer de servicio; vacío = sin autenticación saliente
	Timeout time.Duration
}

// JWTConfig configuración de JWT para las sesiones del panel.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// RevealConfig retardos de la secuencia de aparición escalonada de tarjetas.
type RevealConfig struct {
	Base         time.Duration
	Paso         time.Duration
	Asentamiento time.Duration
}

// StoreConfig configuración del almacén local (SQLite).
type StoreConfig struct {
	Path string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, BACKEND_BASE_URL, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:       getString(v, "APP_ENV", "development"),
			Name:      getString(v, "APP_NAME", "reclamos-admin"),
			Municipio: getString(v, "APP_MUNICIPIO", "municipio"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Backend: BackendConfig{
			BaseURL: getString(v, "BACKEND_BASE_URL", "http://localhost:3000/api"),
			Token:   getString(v, "BACKEND_TOKEN", ""),
			Timeout: time.Duration(getInt(v, "BACKEND_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "reclamos-admin"),
		},
		Reveal: RevealConfig{
			Base:         time.Duration(getInt(v, "REVEAL_BASE_MS", 50)) * time.Millisecond,
			Paso:         time.Duration(getInt(v, "REVEAL_PASO_MS", 80)) * time.Millisecond,
			Asentamiento: time.Duration(getInt(v, "REVEAL_ASENTAMIENTO_MS", 150)) * time.Millisecond,
		},
		Store: StoreConfig{
			Path: getString(v, "STORE_PATH", "reclamos-admin.db"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
