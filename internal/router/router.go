package router

import (
	"net/http"

	mem "pet-registry/internal/adapters/storage/memory"
	"pet-registry/internal/domain/pets"
	"pet-registry/internal/domain/photos"
	"pet-registry/internal/middleware"
	"pet-registry/internal/platform/logger"
	"pet-registry/internal/platform/metrics"

	_ "pet-registry/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // nil => descarta

	// Opcional: si no viene, listado in-memory.
	Repository pets.Repository

	// Opcional: sin store no se montan /photos.
	Photos photos.Store

	// Opcional: sin métricas no se monta /metrics. El gauge de mascotas lo
	// engancha quien arma el router (Metrics.TrackStore).
	Metrics *metrics.Metrics
}

// NewRouter arma el handler HTTP. El *pets.Service queda expuesto para
// quien quiera suscribirse (cmd/api lo usa para logs y para el gauge).
func NewRouter(opts Options) (http.Handler, *pets.Service) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	repo := opts.Repository
	if repo == nil {
		repo = mem.NewPetRepo()
	}
	petsSvc := pets.NewService(repo)

	var (
		reqObs   middleware.RequestObserver
		observer pets.MutationObserver
	)
	if opts.Metrics != nil {
		reqObs = opts.Metrics
		observer = opts.Metrics.ObserveMutation
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log, reqObs))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc, observer)
	if opts.Photos != nil {
		photos.RegisterRoutes(r, opts.Photos)
	}

	return r, petsSvc
}
