package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-registry/internal/adapters/photos/localdir"
	"pet-registry/internal/adapters/storage"
	"pet-registry/internal/domain/pets"
	"pet-registry/internal/platform/config"
	"pet-registry/internal/platform/logger"
	"pet-registry/internal/platform/metrics"
	"pet-registry/internal/router"
)

const shutdownTimeout = 5 * time.Second

// @title Pet Registry API
// @version 1.0
// @description Listado personal de mascotas: alta, edición, baja, búsqueda, filtros y fotos.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewFromEnv().Error("invalid config", map[string]any{"error": err})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.App.Name,
	})

	// os.Exit solo acá: dentro de run los defers cierran el storage
	if err := run(cfg, log); err != nil {
		log.Error("api stopped with error", map[string]any{"error": err})
		os.Exit(1)
	}
}

func run(cfg config.Config, log logger.Logger) error {
	repo, closeRepo, err := storage.Open(cfg.Storage)
	if err != nil {
		return fmt.Errorf("storage init (%s): %w", cfg.Storage.Driver, err)
	}
	defer func() {
		if err := closeRepo(); err != nil {
			log.Error("storage close failed", map[string]any{"error": err})
		}
	}()
	log.Info("storage ready", map[string]any{"driver": cfg.Storage.Driver})

	library, err := localdir.NewLibrary(cfg.Photos.Dir)
	if err != nil {
		return fmt.Errorf("photos init: %w", err)
	}

	m := metrics.New()
	h, petsSvc := router.NewRouter(router.Options{
		Logger:     log,
		Repository: repo,
		Photos:     library,
		Metrics:    m,
	})

	initial, err := petsSvc.List(context.Background())
	if err != nil {
		return fmt.Errorf("initial list: %w", err)
	}
	untrack := m.TrackStore(len(initial), petsSvc)
	defer untrack()

	unsubscribe := petsSvc.Subscribe(func(c pets.Change) {
		log.Info("pet list changed", map[string]any{
			"op":     string(c.Op),
			"pet_id": c.Pet.ID,
			"name":   c.Pet.Name,
			"count":  c.Count,
		})
	})
	defer unsubscribe()

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr(),
		Handler:      h,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return serve(ctx, srv, log)
}

// serve atiende hasta que ctx se cancela (shutdown ordenado) o el server
// falla al arrancar/servir; en ese caso devuelve el error.
func serve(ctx context.Context, srv *http.Server, log logger.Logger) error {
	serveErr := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down server", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("server stopped", nil)
	return nil
}
