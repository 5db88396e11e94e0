package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// MutationObserver recibe el resultado de cada mutación (para métricas).
// Puede ser nil.
type MutationObserver func(op Op, err error)

func RegisterRoutes(r chi.Router, svc *Service, observe MutationObserver) {
	if observe == nil {
		observe = func(Op, error) {}
	}

	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc))
		pr.Post("/", createPetHandler(svc, observe))

		// antes de /{petID} para que "search" no se tome como id
		pr.Get("/search", searchPetsHandler(svc))

		pr.Get("/{petID}", getPetHandler(svc))
		pr.Put("/{petID}", updatePetHandler(svc, observe))
		pr.Delete("/{petID}", deletePetHandler(svc, observe))
	})
}

// petRequest es el cuerpo para crear o reemplazar una mascota.
type petRequest struct {
	Name        string `json:"name"`
	Age         string `json:"age"` // entero positivo como string, p.ej. "3"
	Description string `json:"description"`
	Image       string `json:"image"` // URI devuelta por POST /photos o del picker
}

// petResponse representa una mascota devuelta por la API.
type petResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Age         string    `json:"age"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Description Devuelve el listado en orden de alta, filtrado por nombre (contiene), edad (exacta) y descripción (contiene). Filtros vacíos no filtran.
// @Tags pets
// @Produce json
// @Param search query string false "Nombre contiene (case-insensitive)"
// @Param age query string false "Edad exacta"
// @Param description query string false "Descripción contiene (case-insensitive)"
// @Success 200 {array} petResponse
// @Failure 500 {string} string "internal error"
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		items, err := svc.Filter(r.Context(), Criteria{
			Search:      q.Get("search"),
			Age:         q.Get("age"),
			Description: q.Get("description"),
		})
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponses(items))
	}
}

// searchPetsHandler godoc
// @Summary Buscar mascotas por nombre
// @Description Con q vacío responde 204: no se pidió búsqueda (distinto de 200 con lista vacía).
// @Tags pets
// @Produce json
// @Param q query string false "Texto a buscar en el nombre"
// @Success 200 {array} petResponse
// @Success 204 {string} string "sin búsqueda"
// @Failure 500 {string} string "internal error"
// @Router /pets/search [get]
func searchPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, ok, err := svc.Search(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if !ok {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponses(items))
	}
}

// createPetHandler godoc
// @Summary Crear mascota
// @Description Agrega la mascota al final del listado. El nombre no puede repetirse (case-insensitive).
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body petRequest true "Datos de la mascota"
// @Success 201 {object} petResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 409 {string} string "duplicate pet name"
// @Router /pets [post]
func createPetHandler(svc *Service, observe MutationObserver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req petRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := ValidateFields(req.Name, req.Age); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		p, err := svc.Add(r.Context(), req.toPet(""))
		observe(OpAdded, err)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// getPetHandler godoc
// @Summary Obtener mascota
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Get(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// updatePetHandler godoc
// @Summary Reemplazar mascota
// @Description Reemplazo completo por id, manteniendo la posición. No revalida unicidad del nombre.
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body petRequest true "Datos completos de la mascota"
// @Success 200 {object} petResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [put]
func updatePetHandler(svc *Service, observe MutationObserver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req petRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := ValidateFields(req.Name, req.Age); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		p, err := svc.Update(r.Context(), req.toPet(chi.URLParam(r, "petID")))
		observe(OpUpdated, err)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// deletePetHandler godoc
// @Summary Eliminar mascota
// @Tags pets
// @Param petID path string true "ID de la mascota"
// @Success 204 {string} string ""
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Service, observe MutationObserver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := svc.Delete(r.Context(), chi.URLParam(r, "petID"))
		observe(OpDeleted, err)
		if err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (req petRequest) toPet(id string) Pet {
	return Pet{
		ID:          id,
		Name:        req.Name,
		Age:         req.Age,
		Description: req.Description,
		Image:       req.Image,
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:          p.ID,
		Name:        p.Name,
		Age:         p.Age,
		Description: p.Description,
		Image:       p.Image,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toPetResponses(items []Pet) []petResponse {
	out := make([]petResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toPetResponse(p))
	}
	return out
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrDuplicateName):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// writeJSON se repite por módulo (pets/photos) a propósito, hasta que haya
// un tercer consumidor.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
