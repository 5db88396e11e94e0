package photos

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"path"

	"github.com/go-chi/chi/v5"
)

var (
	ErrNotFound        = errors.New("photo not found")
	ErrUnsupportedType = errors.New("unsupported photo type")
)

// MaxUploadBytes limita el tamaño de una foto subida.
const MaxUploadBytes = 10 << 20

// Store guarda, lista y abre fotos por nombre.
type Store interface {
	Save(originalName string, r io.Reader) (string, error)
	Open(name string) (*os.File, error)
	List() ([]string, error)
}

func RegisterRoutes(r chi.Router, store Store) {
	r.Route("/photos", func(pr chi.Router) {
		pr.Get("/", listPhotosHandler(store))
		pr.Post("/", uploadPhotoHandler(store))
		pr.Get("/{name}", getPhotoHandler(store))
	})
}

// uploadResponse devuelve la URI a guardar en el campo image de la mascota.
type uploadResponse struct {
	URI string `json:"uri"`
}

// listPhotosHandler godoc
// @Summary Listar fotos
// @Description URIs de las fotos subidas, para elegir una ya existente.
// @Tags photos
// @Produce json
// @Success 200 {array} uploadResponse
// @Failure 500 {string} string "internal error"
// @Router /photos [get]
func listPhotosHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names, err := store.List()
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]uploadResponse, 0, len(names))
		for _, n := range names {
			out = append(out, uploadResponse{URI: path.Join("/photos", n)})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// uploadPhotoHandler godoc
// @Summary Subir foto
// @Description Guarda una foto (multipart, campo `photo`) y devuelve la URI para usar en `image`. Reemplaza al picker del dispositivo.
// @Tags photos
// @Accept multipart/form-data
// @Produce json
// @Param photo formData file true "Imagen (jpg, png, gif, webp, heic)"
// @Success 201 {object} uploadResponse
// @Failure 400 {string} string "missing photo / unsupported photo type"
// @Failure 413 {string} string "photo too large"
// @Router /photos [post]
func uploadPhotoHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, MaxUploadBytes)

		file, header, err := r.FormFile("photo")
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				http.Error(w, "photo too large", http.StatusRequestEntityTooLarge)
				return
			}
			http.Error(w, "missing photo", http.StatusBadRequest)
			return
		}
		defer file.Close()

		name, err := store.Save(header.Filename, file)
		if err != nil {
			if errors.Is(err, ErrUnsupportedType) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, uploadResponse{URI: path.Join("/photos", name)})
	}
}

// getPhotoHandler godoc
// @Summary Obtener foto
// @Tags photos
// @Produce octet-stream
// @Param name path string true "Nombre devuelto por POST /photos"
// @Success 200 {file} file
// @Failure 404 {string} string "photo not found"
// @Router /photos/{name} [get]
func getPhotoHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		f, err := store.Open(name)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		defer f.Close()

		st, err := f.Stat()
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		http.ServeContent(w, r, name, st.ModTime(), f)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
