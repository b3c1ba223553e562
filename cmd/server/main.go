package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/portfolio-backend/internal/config"
	"github.com/ignatzorin/portfolio-backend/internal/db"
	httpHandlers "github.com/ignatzorin/portfolio-backend/internal/http/handlers"
	httpRouter "github.com/ignatzorin/portfolio-backend/internal/http/router"
	"github.com/ignatzorin/portfolio-backend/internal/logger"
	"github.com/ignatzorin/portfolio-backend/internal/repository"
	"github.com/ignatzorin/portfolio-backend/internal/service"
	"github.com/ignatzorin/portfolio-backend/internal/storage"
	"github.com/ignatzorin/portfolio-backend/internal/ws"
)

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	logger.Init(cfg.LogLevel, cfg.IsDevelopment())
	appLog := logger.Entry()

	// Подключение к базе и миграции.
	dbConn, err := db.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		appLog.WithError(err).Fatal("main: ошибка подключения к базе")
	}
	defer safeClose(dbConn)

	applied, err := db.RunMigrations(ctx, dbConn, cfg.MigrationsPath)
	if err != nil {
		appLog.WithError(err).Fatal("main: ошибка миграций")
	}
	if len(applied) > 0 {
		appLog.WithField("migrations", applied).Info("main: применены миграции")
	}

	mediaStorage, err := storage.NewMediaStorage(cfg.MediaStoragePath, cfg.MaxUploadSizeMB)
	if err != nil {
		appLog.WithError(err).Fatal("main: не удалось подготовить файловое хранилище")
	}

	// Репозитории.
	userRepo := repository.NewUserRepository(dbConn)
	artifactRepo := repository.NewArtifactRepository(dbConn)
	curatorRepo := repository.NewCuratorRepository(dbConn)
	spaceRepo := repository.NewSpaceRepository(dbConn)
	progressRepo := repository.NewProgressRepository(dbConn)
	changeLogRepo := repository.NewChangeLogRepository(dbConn)
	themeRepo := repository.NewThemeRepository(dbConn)

	// Вебсокеты.
	hub := ws.NewHub(ctx)
	go hub.Run()

	// Сервисы.
	artifactService := service.NewArtifactService(artifactRepo)
	curatorService := service.NewCuratorService(curatorRepo, hub)
	progressService := service.NewProgressService(progressRepo)
	changeLogService := service.NewChangeLogService(changeLogRepo)
	readCache := service.NewCacheService(ctx)
	profileService := service.NewProfileService(userRepo, spaceRepo).WithCache(readCache, cfg.ReadCacheTTL)
	themeService := service.NewThemeService(themeRepo).WithCache(readCache, cfg.ReadCacheTTL)
	mediaService := service.NewMediaService(artifactService, mediaStorage, "/media")

	// HTTP хэндлеры.
	h := &httpRouter.Handlers{
		Health:    httpHandlers.NewHealthHandler(dbConn),
		Profile:   httpHandlers.NewProfileHandler(profileService),
		Artifact:  httpHandlers.NewArtifactHandler(artifactService),
		Curator:   httpHandlers.NewCuratorHandler(curatorService),
		Progress:  httpHandlers.NewProgressHandler(progressService),
		ChangeLog: httpHandlers.NewChangeLogHandler(changeLogService),
		Theme:     httpHandlers.NewThemeHandler(themeService),
		Media:     httpHandlers.NewMediaHandler(mediaService, mediaStorage.MaxUploadBytes()),
		WS:        httpHandlers.NewWSHandler(hub, cfg.AllowedOrigins),
	}
	if cfg.IsDevelopment() {
		seedService := service.NewSeedService(userRepo, spaceRepo, themeRepo, artifactService, progressService, changeLogService).
			WithCache(readCache)
		h.Seed = httpHandlers.NewSeedHandler(seedService, cfg.SeedFile)
	}

	// Роутер.
	engine := httpRouter.SetupRouter(cfg, h)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Завершаем сервер при получении сигнала.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			appLog.WithError(err).Error("main: ошибка остановки http сервера")
		}
	}()

	appLog.WithField("port", cfg.HTTPPort).Info("main: HTTP сервер запущен")

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		appLog.WithError(err).Fatal("main: сервер завершился с ошибкой")
	}
}

// safeClose закрывает соединение с базой.
func safeClose(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		logger.Entry().WithError(err).Error("main: ошибка закрытия базы")
	}
}
