package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de cmd/api y cmd/petui.
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Log     LogConfig
	Storage StorageConfig
	Photos  PhotosConfig
	UI      UIConfig
}

type AppConfig struct {
	Name string
}

type HTTPConfig struct {
	Port string
}

type LogConfig struct {
	Level  string
	Format string // text | json
	File   string // solo TUI; vacío = descartar
}

type StorageConfig struct {
	Driver     string // memory | postgres | sqlite
	DSN        string // postgres
	SQLitePath string `mapstructure:"sqlite_path"`
}

type PhotosConfig struct {
	Dir       string
	PickerCmd string `mapstructure:"picker_cmd"` // comando del host que imprime la ruta elegida
}

type UIConfig struct {
	APIURL string `mapstructure:"api_url"` // vacío = store en proceso
}

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Load lee defaults, archivo TOML opcional y env.
// Env con prefijo PETREGISTRY_ (p.ej. PETREGISTRY_STORAGE_DRIVER);
// además se aceptan PORT, DB_DSN, LOG_LEVEL, LOG_FORMAT y APP_NAME.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("app.name", "pet-registry")
	v.SetDefault("http.port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
	v.SetDefault("storage.dsn", "")
	v.SetDefault("storage.sqlite_path", filepath.Join(".", "data", "pets.db"))
	v.SetDefault("photos.dir", filepath.Join(".", "data", "photos"))
	v.SetDefault("photos.picker_cmd", "")
	v.SetDefault("ui.api_url", "")

	v.SetConfigType("toml")
	if cfgPath := os.Getenv("PETREGISTRY_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", cfgPath, err)
		}
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("petregistry")
		// archivo opcional: si no está se sigue; si está roto, error
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config petregistry.toml: %w", err)
			}
		}
	}

	v.SetEnvPrefix("PETREGISTRY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// nombres sueltos heredados
	_ = v.BindEnv("storage.driver")
	_ = v.BindEnv("http.port", "PETREGISTRY_HTTP_PORT", "PORT")
	_ = v.BindEnv("storage.dsn", "PETREGISTRY_STORAGE_DSN", "DB_DSN")
	_ = v.BindEnv("log.level", "PETREGISTRY_LOG_LEVEL", "LOG_LEVEL")
	_ = v.BindEnv("log.format", "PETREGISTRY_LOG_FORMAT", "LOG_FORMAT")
	_ = v.BindEnv("app.name", "PETREGISTRY_APP_NAME", "APP_NAME")

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	if c.Storage.Driver == "" {
		// DB_DSN sin driver explícito => postgres
		c.Storage.Driver = DriverMemory
		if strings.TrimSpace(c.Storage.DSN) != "" {
			c.Storage.Driver = DriverPostgres
		}
	}

	switch c.Storage.Driver {
	case DriverMemory, DriverPostgres, DriverSQLite:
	default:
		return Config{}, fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.Storage.Driver == DriverPostgres && strings.TrimSpace(c.Storage.DSN) == "" {
		return Config{}, fmt.Errorf("storage driver postgres requires storage.dsn")
	}

	return c, nil
}

// Addr devuelve la dirección de escucha (":8080").
func (c HTTPConfig) Addr() string {
	p := strings.TrimSpace(c.Port)
	if p == "" {
		p = "8080"
	}
	if strings.Contains(p, ":") {
		return p
	}
	return ":" + p
}
