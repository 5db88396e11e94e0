package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pet-registry/internal/adapters/photos/hostcmd"
	"pet-registry/internal/adapters/remote"
	"pet-registry/internal/adapters/storage"
	"pet-registry/internal/domain/pets"
	"pet-registry/internal/platform/config"
	"pet-registry/internal/platform/httpclient"
	"pet-registry/internal/platform/logger"
	"pet-registry/internal/ui/petform"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "petui:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// la pantalla ocupa la terminal: logs a archivo o a ningún lado
	var out io.Writer = io.Discard
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.App.Name,
		Output: out,
	})

	var store petform.Store
	if cfg.UI.APIURL != "" {
		c, err := httpclient.New(cfg.UI.APIURL, 10*time.Second)
		if err != nil {
			return err
		}
		store = remote.NewPetsClient(c)
		log.Info("using remote store", map[string]any{"api_url": cfg.UI.APIURL})
	} else {
		repo, closeRepo, err := storage.Open(cfg.Storage)
		if err != nil {
			return err
		}
		defer func() {
			if err := closeRepo(); err != nil {
				log.Error("storage close failed", map[string]any{"error": err})
			}
		}()
		store = pets.NewService(repo)
		log.Info("using local store", map[string]any{"driver": cfg.Storage.Driver})
	}

	opts := petform.Options{Store: store, Logger: log}
	if picker := hostcmd.NewPicker(cfg.Photos.PickerCmd, log); picker.IsConfigured() {
		opts.Picker = picker
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err = tea.NewProgram(petform.New(ctx, opts), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
