package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestDoJSON_RoundTripAndErrors(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/pets":
			if r.URL.Query().Get("age") != "3" || r.Header.Get("Content-Type") != "application/json" {
				http.Error(w, "bad request shape", http.StatusBadRequest)
				return
			}
			var in map[string]string
			_ = json.NewDecoder(r.Body).Decode(&in)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]string{"echo": in["name"]})
		case "/empty":
			w.WriteHeader(http.StatusNoContent)
		default:
			http.Error(w, "pet not found", http.StatusNotFound)
		}
	}))
	defer ts.Close()

	c, err := New(ts.URL+"/", 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()

	var out map[string]string
	st, err := c.DoJSON(ctx, http.MethodPost, "pets", url.Values{"age": {"3"}}, map[string]string{"name": "Milo"}, &out)
	if err != nil || st != http.StatusCreated || out["echo"] != "Milo" {
		t.Fatalf("unexpected result st=%d out=%v err=%v", st, out, err)
	}

	st, err = c.DoJSON(ctx, http.MethodGet, "/empty", nil, nil, &out)
	if err != nil || st != http.StatusNoContent {
		t.Fatalf("expected 204 without error, got st=%d err=%v", st, err)
	}

	_, err = c.DoJSON(ctx, http.MethodGet, "/nope", nil, nil, nil)
	if StatusOf(err) != http.StatusNotFound {
		t.Fatalf("expected HTTPError 404, got %v", err)
	}
}

func TestNew_RejectsRelativeURL(t *testing.T) {
	if _, err := New("localhost:8080", 0); err == nil {
		t.Fatalf("expected error for relative base url")
	}
}
