package config

import (
	"os"
)

// Config содержит настройки приложения
type Config struct {
	Server ServerConfig
	Export ExportConfig
}

// ServerConfig - настройки HTTP сервера
type ServerConfig struct {
	Port string
}

// ExportConfig - настройки экспорта
type ExportConfig struct {
	// DefaultDir используется, когда запрос не содержит destination_folder
	DefaultDir string
}

// Load загружает конфигурацию из переменных окружения
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Export: ExportConfig{
			DefaultDir: getEnv("EXPORT_DIR", "exports"),
		},
	}
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
