package localdir

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"pet-registry/internal/domain/photos"
)

// extensiones aceptadas; el nombre final siempre lo genera la librería
var allowedExt = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
	".heic": {},
}

// Library guarda fotos subidas en un directorio local (implementa photos.Store).
type Library struct {
	dir string
}

func NewLibrary(dir string) (*Library, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("photos dir required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("photos dir: %w", err)
	}
	return &Library{dir: dir}, nil
}

// Save copia r a un archivo nuevo y devuelve su nombre.
// originalName solo se usa para la extensión.
func (l *Library) Save(originalName string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if _, ok := allowedExt[ext]; !ok {
		return "", photos.ErrUnsupportedType
	}

	name := uuid.NewString() + ext
	f, err := os.OpenFile(filepath.Join(l.dir, name), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("create photo: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("write photo: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close photo: %w", err)
	}
	return name, nil
}

// Open abre una foto por nombre. Rechaza rutas fuera del directorio.
func (l *Library) Open(name string) (*os.File, error) {
	if !validName(name) {
		return nil, photos.ErrNotFound
	}
	f, err := os.Open(filepath.Join(l.dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, photos.ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

// List devuelve los nombres de las fotos, ordenados.
func (l *Library) List() ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, ok := allowedExt[strings.ToLower(filepath.Ext(e.Name()))]; ok {
			out = append(out, e.Name())
		}
	}
	sort.Strings(out)
	return out, nil
}

func validName(name string) bool {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return false
	}
	_, ok := allowedExt[strings.ToLower(filepath.Ext(name))]
	return ok
}
