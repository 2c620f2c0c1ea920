// Пакет config — загрузка и валидация конфигурации Roadstat
// из переменных окружения.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Версия приложения, задаётся при сборке через -ldflags.
var Version = "dev"

// Config содержит все параметры конфигурации Roadstat.
type Config struct {
	// --- Сервер ---

	// Порт HTTP-сервера (диапазон 8000-8009)
	Port int
	// Уровень логирования (debug, info, warn, error)
	LogLevel slog.Level
	// Формат логов (json, text)
	LogFormat string

	// --- PostgreSQL ---

	// Хост PostgreSQL
	DBHost string
	// Порт PostgreSQL
	DBPort int
	// Имя базы данных
	DBName string
	// Имя пользователя PostgreSQL
	DBUser string
	// Пароль пользователя PostgreSQL
	DBPassword string
	// Режим SSL: disable, require, verify-ca, verify-full
	DBSSLMode string

	// --- Обработка документов ---

	// Минимальное количество строк в загружаемом документе.
	// Файлы с меньшим числом строк отклоняются как обрезанные.
	MinRows int
	// Максимальный размер загружаемого файла в байтах
	MaxUploadSize int64

	// --- JWT (опционально; пустой JWKSURL отключает аутентификацию) ---

	// URL JWKS endpoint Identity Provider
	JWTJWKSURL string
	// Ожидаемый issuer JWT (опционально)
	JWTIssuer string
	// Интервал обновления JWKS-ключей
	JWKSRefreshInterval time.Duration
	// Таймаут HTTP-клиента JWKS
	JWKSClientTimeout time.Duration
	// Допустимое отклонение времени при проверке JWT
	JWTLeeway time.Duration

	// --- Мониторинг зависимостей ---

	// Имя группы topologymetrics
	DephealthGroup string
	// Интервал проверки зависимостей topologymetrics
	DephealthCheckInterval time.Duration

	// --- Graceful shutdown ---

	// Таймаут graceful shutdown HTTP-сервера
	ShutdownTimeout time.Duration
}

// Load загружает конфигурацию из переменных окружения, валидирует
// обязательные поля и возвращает Config или ошибку.
func Load() (*Config, error) {
	cfg := &Config{}
	var err error

	// --- Сервер ---

	// RS_PORT — порт HTTP-сервера (по умолчанию 8000)
	cfg.Port, err = getEnvInt("RS_PORT", 8000)
	if err != nil {
		return nil, fmt.Errorf("RS_PORT: %w", err)
	}
	if cfg.Port < 8000 || cfg.Port > 8009 {
		return nil, fmt.Errorf("RS_PORT: значение %d вне допустимого диапазона 8000-8009", cfg.Port)
	}

	// RS_LOG_LEVEL — уровень логирования (по умолчанию info)
	cfg.LogLevel, err = parseLogLevel(getEnvDefault("RS_LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("RS_LOG_LEVEL: %w", err)
	}

	// RS_LOG_FORMAT — формат логов (по умолчанию json)
	cfg.LogFormat = getEnvDefault("RS_LOG_FORMAT", "json")
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return nil, fmt.Errorf("RS_LOG_FORMAT: недопустимое значение %q, допустимые: json, text", cfg.LogFormat)
	}

	// --- PostgreSQL ---

	// RS_DB_HOST — обязательный
	cfg.DBHost, err = getEnvRequired("RS_DB_HOST")
	if err != nil {
		return nil, err
	}

	// RS_DB_PORT — порт PostgreSQL (по умолчанию 5432)
	cfg.DBPort, err = getEnvInt("RS_DB_PORT", 5432)
	if err != nil {
		return nil, fmt.Errorf("RS_DB_PORT: %w", err)
	}

	// RS_DB_NAME — обязательный
	cfg.DBName, err = getEnvRequired("RS_DB_NAME")
	if err != nil {
		return nil, err
	}

	// RS_DB_USER — обязательный
	cfg.DBUser, err = getEnvRequired("RS_DB_USER")
	if err != nil {
		return nil, err
	}

	// RS_DB_PASSWORD — обязательный
	cfg.DBPassword, err = getEnvRequired("RS_DB_PASSWORD")
	if err != nil {
		return nil, err
	}

	// RS_DB_SSL_MODE — режим SSL (по умолчанию disable)
	cfg.DBSSLMode = getEnvDefault("RS_DB_SSL_MODE", "disable")
	validSSLModes := map[string]bool{
		"disable": true, "require": true, "verify-ca": true, "verify-full": true,
	}
	if !validSSLModes[cfg.DBSSLMode] {
		return nil, fmt.Errorf("RS_DB_SSL_MODE: недопустимое значение %q, допустимые: disable, require, verify-ca, verify-full", cfg.DBSSLMode)
	}

	// --- Обработка документов ---

	// RS_MIN_ROWS — минимальное количество строк (по умолчанию 100)
	cfg.MinRows, err = getEnvInt("RS_MIN_ROWS", 100)
	if err != nil {
		return nil, fmt.Errorf("RS_MIN_ROWS: %w", err)
	}
	if cfg.MinRows < 1 {
		return nil, fmt.Errorf("RS_MIN_ROWS: значение %d должно быть положительным", cfg.MinRows)
	}

	// RS_MAX_UPLOAD_SIZE — максимальный размер файла (по умолчанию 64 MiB)
	maxUpload, err := getEnvInt("RS_MAX_UPLOAD_SIZE", 64<<20)
	if err != nil {
		return nil, fmt.Errorf("RS_MAX_UPLOAD_SIZE: %w", err)
	}
	if maxUpload < 1 {
		return nil, fmt.Errorf("RS_MAX_UPLOAD_SIZE: значение %d должно быть положительным", maxUpload)
	}
	cfg.MaxUploadSize = int64(maxUpload)

	// --- JWT ---

	// RS_JWT_JWKS_URL — URL JWKS endpoint (пустой — аутентификация отключена)
	cfg.JWTJWKSURL = getEnvDefault("RS_JWT_JWKS_URL", "")

	// RS_JWT_ISSUER — ожидаемый issuer (опционально)
	cfg.JWTIssuer = getEnvDefault("RS_JWT_ISSUER", "")

	// RS_JWKS_REFRESH_INTERVAL — интервал обновления JWKS-ключей (по умолчанию 1h)
	cfg.JWKSRefreshInterval, err = getEnvDuration("RS_JWKS_REFRESH_INTERVAL", time.Hour)
	if err != nil {
		return nil, fmt.Errorf("RS_JWKS_REFRESH_INTERVAL: %w", err)
	}

	// RS_JWKS_CLIENT_TIMEOUT — таймаут HTTP-клиента JWKS (по умолчанию 10s)
	cfg.JWKSClientTimeout, err = getEnvDuration("RS_JWKS_CLIENT_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("RS_JWKS_CLIENT_TIMEOUT: %w", err)
	}

	// RS_JWT_LEEWAY — допустимое отклонение времени (по умолчанию 30s)
	cfg.JWTLeeway, err = getEnvDuration("RS_JWT_LEEWAY", 30*time.Second)
	if err != nil {
		return nil, fmt.Errorf("RS_JWT_LEEWAY: %w", err)
	}

	// --- Мониторинг зависимостей ---

	// RS_DEPHEALTH_GROUP — имя группы topologymetrics (по умолчанию roadstat)
	cfg.DephealthGroup = getEnvDefault("RS_DEPHEALTH_GROUP", "roadstat")

	// RS_DEPHEALTH_CHECK_INTERVAL — интервал проверки зависимостей (по умолчанию 15s)
	cfg.DephealthCheckInterval, err = getEnvDuration("RS_DEPHEALTH_CHECK_INTERVAL", 15*time.Second)
	if err != nil {
		return nil, fmt.Errorf("RS_DEPHEALTH_CHECK_INTERVAL: %w", err)
	}

	// --- Graceful shutdown ---

	// RS_SHUTDOWN_TIMEOUT — таймаут graceful shutdown (по умолчанию 5s)
	cfg.ShutdownTimeout, err = getEnvDuration("RS_SHUTDOWN_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, fmt.Errorf("RS_SHUTDOWN_TIMEOUT: %w", err)
	}

	return cfg, nil
}

// DatabaseDSN возвращает строку подключения к PostgreSQL.
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBName, c.DBUser, c.DBPassword, c.DBSSLMode,
	)
}

// DatabaseURL возвращает URL подключения к PostgreSQL
// (для topologymetrics-лейблов, не для подключения).
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}

// AuthEnabled сообщает, включена ли JWT-аутентификация.
func (c *Config) AuthEnabled() bool {
	return c.JWTJWKSURL != ""
}

// SetupLogger настраивает глобальный slog-логгер на основе конфигурации.
func SetupLogger(cfg *Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// --- Вспомогательные функции ---

// getEnvRequired возвращает значение переменной окружения или ошибку, если она не задана.
func getEnvRequired(key string) (string, error) {
	val := os.Getenv(key)
	if val == "" {
		return "", fmt.Errorf("%s: обязательная переменная окружения не задана", key)
	}
	return val, nil
}

// getEnvDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

// getEnvInt возвращает целочисленное значение переменной окружения или значение по умолчанию.
func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("некорректное целое число: %q", val)
	}
	return n, nil
}

// getEnvDuration возвращает time.Duration из переменной окружения или значение по умолчанию.
func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("некорректная длительность: %q (используйте формат Go: 30s, 1h, 15m)", val)
	}
	return d, nil
}

// parseLogLevel преобразует строку уровня логирования в slog.Level.
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("недопустимый уровень %q, допустимые: debug, info, warn, error", level)
	}
}
