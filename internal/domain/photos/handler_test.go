package photos

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

// fakeStore guarda en un tempdir con nombre fijo.
type fakeStore struct {
	dir string
}

func (s *fakeStore) Save(originalName string, r io.Reader) (string, error) {
	if !strings.HasSuffix(strings.ToLower(originalName), ".png") {
		return "", ErrUnsupportedType
	}
	b, _ := io.ReadAll(r)
	return "p1.png", os.WriteFile(filepath.Join(s.dir, "p1.png"), b, 0o644)
}

func (s *fakeStore) Open(name string) (*os.File, error) {
	f, err := os.Open(filepath.Join(s.dir, filepath.Base(name)))
	if err != nil {
		return nil, ErrNotFound
	}
	return f, nil
}

func (s *fakeStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name())
	}
	return out, nil
}

func newPhotosServer(t *testing.T) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	RegisterRoutes(r, &fakeStore{dir: t.TempDir()})
	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts
}

func upload(t *testing.T, baseURL, filename, content string) *http.Response {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("photo", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	_, _ = fw.Write([]byte(content))
	_ = mw.Close()

	res, err := http.Post(baseURL+"/photos", mw.FormDataContentType(), &body)
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	return res
}

func TestUploadThenGet(t *testing.T) {
	ts := newPhotosServer(t)

	res := upload(t, ts.URL, "milo.png", "png-bytes")
	defer res.Body.Close()
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}

	var out uploadResponse
	_ = json.NewDecoder(res.Body).Decode(&out)
	if out.URI != "/photos/p1.png" {
		t.Fatalf("unexpected uri %q", out.URI)
	}

	get, err := http.Get(ts.URL + out.URI)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer get.Body.Close()
	b, _ := io.ReadAll(get.Body)
	if get.StatusCode != http.StatusOK || string(b) != "png-bytes" {
		t.Fatalf("unexpected get: %d %q", get.StatusCode, b)
	}
}

func TestListPhotos(t *testing.T) {
	ts := newPhotosServer(t)

	list := func() []uploadResponse {
		t.Helper()
		res, err := http.Get(ts.URL + "/photos")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		defer res.Body.Close()
		if res.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", res.StatusCode)
		}
		var out []uploadResponse
		_ = json.NewDecoder(res.Body).Decode(&out)
		return out
	}

	if got := list(); len(got) != 0 {
		t.Fatalf("expected empty list, got %+v", got)
	}

	res := upload(t, ts.URL, "milo.png", "png-bytes")
	res.Body.Close()

	got := list()
	if len(got) != 1 || got[0].URI != "/photos/p1.png" {
		t.Fatalf("unexpected list %+v", got)
	}
}

func TestUpload_Rejections(t *testing.T) {
	ts := newPhotosServer(t)

	res := upload(t, ts.URL, "notes.txt", "x")
	res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for unsupported type, got %d", res.StatusCode)
	}

	res, err := http.Post(ts.URL+"/photos", "application/json", strings.NewReader("{}"))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing photo, got %d", res.StatusCode)
	}

	get, _ := http.Get(ts.URL + "/photos/missing.png")
	get.Body.Close()
	if get.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", get.StatusCode)
	}
}
