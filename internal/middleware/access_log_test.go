package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"pet-registry/internal/platform/logger"
)

type recordedRequest struct {
	method, route string
	status        int
}

type fakeObserver struct {
	got []recordedRequest
}

func (f *fakeObserver) ObserveRequest(method, route string, status int, seconds float64) {
	f.got = append(f.got, recordedRequest{method: method, route: route, status: status})
}

func TestAccessLog_UsesRoutePatternAndStatus(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Debug, Format: logger.FormatJSON, Output: &buf})
	obs := &fakeObserver{}

	r := chi.NewRouter()
	r.Use(AccessLog(log, obs))
	r.Get("/pets/{petID}", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "pet not found", http.StatusNotFound)
	})
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	for _, path := range []string{"/pets/abc", "/health"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	if len(obs.got) != 2 {
		t.Fatalf("expected 2 observations, got %d", len(obs.got))
	}
	if obs.got[0].route != "/pets/{petID}" || obs.got[0].status != http.StatusNotFound {
		t.Fatalf("unexpected first observation: %#v", obs.got[0])
	}
	if obs.got[1].route != "/health" || obs.got[1].status != http.StatusOK {
		t.Fatalf("unexpected second observation: %#v", obs.got[1])
	}

	out := buf.String()
	if !strings.Contains(out, `"message":"request rejected"`) || !strings.Contains(out, `"message":"request completed"`) {
		t.Fatalf("unexpected log output: %s", out)
	}
}
