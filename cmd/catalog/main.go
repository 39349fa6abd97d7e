package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	gormlogger "gorm.io/gorm/logger"

	appcastmember "github.com/kinotek/catalog/internal/application/castmember"
	appcategory "github.com/kinotek/catalog/internal/application/category"
	appgenre "github.com/kinotek/catalog/internal/application/genre"
	appvideo "github.com/kinotek/catalog/internal/application/video"
	"github.com/kinotek/catalog/internal/config"
	"github.com/kinotek/catalog/internal/domain/video"
	handler "github.com/kinotek/catalog/internal/handler/http"
	"github.com/kinotek/catalog/internal/infrastructure/repository"
	"github.com/kinotek/catalog/internal/infrastructure/storage"
	"github.com/kinotek/catalog/pkg/database"
	"github.com/kinotek/catalog/pkg/events"
	"github.com/kinotek/catalog/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewZapLogger(cfg.Env != "prod")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("Catalog service starting", logger.String("env", cfg.Env))

	db, err := database.NewGormDB(&database.PostgresConfig{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Name,
		SSLMode:         cfg.Database.SSLMode,
		MaxConnections:  cfg.Database.MaxConnections,
		MaxConnLifetime: cfg.Database.ConnMaxLifetime,
		MaxConnIdleTime: cfg.Database.ConnMaxIdleTime,
		LogLevel:        gormlogger.Warn,
	})
	if err != nil {
		log.Fatal("Failed to connect to database", logger.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	media, err := newMediaStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to create media storage", logger.Error(err))
	}

	bus := events.NewInMemoryEventBus(log)
	defer bus.Close()

	for _, aggregate := range []string{"category", "genre", "castmember", "video"} {
		for _, action := range []string{"created", "updated", "deleted"} {
			eventType := aggregate + "." + action
			if err := bus.Subscribe(eventType, events.NewAuditLogHandler(eventType, log)); err != nil {
				log.Fatal("Failed to subscribe audit handler", logger.Error(err))
			}
		}
	}

	categoryRepo := repository.NewCategoryRepository(db)
	genreRepo := repository.NewGenreRepository(db)
	castMemberRepo := repository.NewCastMemberRepository(db)
	videoRepo := repository.NewVideoRepository(db)

	categoryService := appcategory.NewService(categoryRepo, bus, log)
	genreService := appgenre.NewService(genreRepo, categoryRepo, bus, log)
	castMemberService := appcastmember.NewService(castMemberRepo, bus, log)
	videoService := appvideo.NewService(videoRepo, categoryRepo, genreRepo, castMemberRepo, media, bus, log)

	router := handler.NewRouter(
		handler.NewCategoryHandler(categoryService, log),
		handler.NewGenreHandler(genreService, log),
		handler.NewCastMemberHandler(castMemberService, log),
		handler.NewVideoHandler(videoService, log),
	)

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Info("HTTP server listening", logger.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", logger.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed", logger.Error(err))
	}
	log.Info("Catalog service stopped")
}

func newMediaStorage(ctx context.Context, cfg *config.Config, log logger.Logger) (video.MediaResourceGateway, error) {
	switch cfg.Storage.Driver {
	case "local":
		return storage.NewLocalStorage(cfg.Storage.Local.BasePath, log)
	case "s3":
		return storage.NewS3Storage(ctx, cfg.Storage.S3.Bucket, cfg.Storage.S3.Region, log)
	case "minio":
		return storage.NewMinioStorage(ctx,
			cfg.Storage.Minio.Endpoint,
			cfg.Storage.Minio.AccessKey,
			cfg.Storage.Minio.SecretKey,
			cfg.Storage.Minio.Bucket,
			cfg.Storage.Minio.UseSSL,
			log)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
