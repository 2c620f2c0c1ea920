// Roadstat — сервис загрузки и нормализации CSV-документов
// дорожной статистики: отчёты о ДТП, наблюдения интенсивности движения,
// подсчёты пешеходов и велосипедистов.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/stdlib"

	"github.com/bigkaa/goroadstat/internal/api/handlers"
	"github.com/bigkaa/goroadstat/internal/api/middleware"
	"github.com/bigkaa/goroadstat/internal/config"
	"github.com/bigkaa/goroadstat/internal/database"
	"github.com/bigkaa/goroadstat/internal/repository"
	"github.com/bigkaa/goroadstat/internal/server"
	"github.com/bigkaa/goroadstat/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Ошибка загрузки конфигурации", "error", err)
		os.Exit(1)
	}

	logger := config.SetupLogger(cfg)
	logger.Info("Запуск Roadstat", "version", config.Version, "port", cfg.Port)

	ctx := context.Background()

	pool, err := database.Connect(ctx, cfg)
	if err != nil {
		logger.Error("Ошибка подключения к базе данных", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := database.Migrate(cfg); err != nil {
		logger.Error("Ошибка применения миграций", "error", err)
		os.Exit(1)
	}

	// Репозитории и сервисы
	documents := repository.NewDocumentRepository(pool)
	crash := repository.NewCrashDataRepository(pool)
	traffic := repository.NewTrafficRepository(pool)
	pedestrian := repository.NewPedestrianRepository(pool)

	uploads := service.NewUploadService(documents, crash, traffic, pedestrian, cfg.MinRows, logger)
	data := service.NewDataService(documents, crash, traffic, pedestrian, logger)

	// Мониторинг зависимостей через topologymetrics.
	// *sql.DB поверх существующего pgxpool — connection pool mode.
	sqlDB := stdlib.OpenDBFromPool(pool)
	dephealth, err := service.NewDephealthService(
		"roadstat",
		cfg.DephealthGroup,
		sqlDB,
		cfg.DatabaseURL(),
		cfg.JWTJWKSURL,
		cfg.DephealthCheckInterval,
		logger,
	)
	if err != nil {
		logger.Error("Ошибка инициализации мониторинга зависимостей", "error", err)
		os.Exit(1)
	}
	if err := dephealth.Start(ctx); err != nil {
		logger.Error("Ошибка запуска мониторинга зависимостей", "error", err)
		os.Exit(1)
	}
	defer dephealth.Stop()

	// JWT-аутентификация опциональна: без RS_JWT_JWKS_URL загрузки
	// записываются за anonymous.
	var jwtAuth *middleware.JWTAuth
	if cfg.AuthEnabled() {
		jwtAuth, err = middleware.NewJWTAuth(
			cfg.JWTJWKSURL,
			cfg.JWTIssuer,
			cfg.JWKSClientTimeout,
			cfg.JWKSRefreshInterval,
			cfg.JWTLeeway,
			logger,
		)
		if err != nil {
			logger.Error("Ошибка инициализации JWT middleware", "error", err)
			os.Exit(1)
		}
		logger.Info("JWT-аутентификация включена", "jwks_url", cfg.JWTJWKSURL)
	} else {
		logger.Warn("JWT-аутентификация отключена: RS_JWT_JWKS_URL не задан")
	}

	handler := handlers.NewHandler(uploads, data, cfg.MaxUploadSize, logger)
	health := handlers.NewHealthHandler(database.NewReadinessChecker(pool))

	srv := server.New(cfg, logger, handler, health, jwtAuth)
	if err := srv.Run(); err != nil {
		logger.Error("Ошибка HTTP-сервера", "error", err)
		os.Exit(1)
	}
}
