package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
// Ningún valor es obligatorio: sin variables definidas el reporte sale en texto plano por stdout.
type Config struct {
	App    AppConfig
	Log    LogConfig
	Report ReportConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig configuración del logger (siempre escribe en stderr).
type LogConfig struct {
	Level string // trace, debug, info, warn, error
}

// ReportConfig configuración de la salida del reporte.
type ReportConfig struct {
	Format string // text, markdown, json
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, APP_NAME, LOG_LEVEL, REPORT_FORMAT.
func Load() (*Config, error) {
	return load(viper.New(), ".", "./config")
}

func load(v *viper.Viper, paths ...string) (*Config, error) {
	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigType("env")
	v.SetConfigName(".env")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	_ = v.MergeInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	return &Config{
		App: AppConfig{
			Env:  v.GetString("APP_ENV"),
			Name: v.GetString("APP_NAME"),
		},
		Log: LogConfig{
			Level: strings.ToLower(v.GetString("LOG_LEVEL")),
		},
		Report: ReportConfig{
			Format: strings.ToLower(v.GetString("REPORT_FORMAT")),
		},
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "product-stats")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("REPORT_FORMAT", "text")
}
