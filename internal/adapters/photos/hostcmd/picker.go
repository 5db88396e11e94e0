package hostcmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"path/filepath"
	"strings"

	"pet-registry/internal/platform/logger"
	"pet-registry/internal/ports/photos"
)

var (
	ErrPickerNotConfigured = errors.New("photo picker command not configured")
)

// Picker implementa photos.Picker corriendo un comando del host
// (p.ej. "zenity --file-selection") que imprime la ruta elegida.
// Exit status 1 o salida vacía = el usuario canceló.
type Picker struct {
	argv []string
	log  logger.Logger
}

func NewPicker(command string, log logger.Logger) *Picker {
	if log == nil {
		log = logger.Nop()
	}
	return &Picker{
		argv: strings.Fields(command),
		log:  log.With(map[string]any{"component": "photo_picker"}),
	}
}

func (p *Picker) IsConfigured() bool {
	return p != nil && len(p.argv) > 0
}

func (p *Picker) PickPhoto(ctx context.Context) (photos.Selection, error) {
	if !p.IsConfigured() {
		return photos.Selection{}, ErrPickerNotConfigured
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, p.argv[0], p.argv[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			p.log.Debug("user cancelled photo picker", nil)
			return photos.Selection{Cancelled: true}, nil
		}
		return photos.Selection{}, fmt.Errorf("photo picker: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	path := firstLine(stdout.String())
	if path == "" {
		p.log.Debug("user cancelled photo picker", nil)
		return photos.Selection{Cancelled: true}, nil
	}

	uri := toURI(path)
	p.log.Debug("photo selected", map[string]any{"uri": uri})
	return photos.Selection{URI: uri}, nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// toURI deja pasar URIs ya formadas y convierte rutas locales a file://.
func toURI(path string) string {
	if strings.Contains(path, "://") {
		return path
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	return u.String()
}
