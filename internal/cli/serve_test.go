package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/doodle/pkg/cache"
	"github.com/matzehuels/doodle/pkg/pipeline"
	"github.com/matzehuels/doodle/pkg/pool"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	runner := pipeline.NewRunner(cache.NewMemoryCache(), nil, nil)
	t.Cleanup(func() { runner.Close() })
	return newTileRouter(runner, "", newLogger(io.Discard, log.ErrorLevel))
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ok") {
		t.Errorf("body = %q, want ok status", rec.Body.String())
	}
}

func TestVariantsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/variants", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got []variantInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(got) != len(pool.All()) {
		t.Errorf("variant count = %d, want %d", len(got), len(pool.All()))
	}
	for _, v := range got {
		if v.Name == "" || v.PoolSize == 0 {
			t.Errorf("incomplete variant entry: %+v", v)
		}
	}
}

func TestTileEndpointSVG(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/tiles/tech?mode=dark", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "image/svg+xml") {
		t.Errorf("content type = %q, want image/svg+xml", ct)
	}
	if rec.Header().Get("ETag") == "" {
		t.Error("missing ETag header")
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}
	if !strings.HasPrefix(rec.Body.String(), "<svg") {
		t.Error("body is not an SVG document")
	}
}

func TestTileEndpointDataURI(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/tiles/creative?format=datauri", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if !strings.HasPrefix(rec.Body.String(), "data:image/svg+xml") {
		t.Error("body is not a data URI")
	}
}

func TestTileEndpointDeterministic(t *testing.T) {
	router := newTestRouter(t)

	fetch := func() string {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/tiles/video", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		return rec.Body.String()
	}

	if fetch() != fetch() {
		t.Error("identical requests returned different tiles")
	}
}

func TestTileEndpointBadRequests(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name string
		url  string
	}{
		{"unknown variant", "/v1/tiles/cinematic"},
		{"unknown mode", "/v1/tiles/tech?mode=sepia"},
		{"unknown format", "/v1/tiles/tech?format=bmp"},
		{"bad size", "/v1/tiles/tech?size=abc"},
		{"bad scale", "/v1/tiles/tech?scale=huge"},
		{"size out of range", "/v1/tiles/tech?size=999999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestRequestIDPassthrough(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "fixed-id")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "fixed-id" {
		t.Errorf("X-Request-ID = %q, want fixed-id", got)
	}
}

func TestTileRequestLogCarriesRequestID(t *testing.T) {
	var buf bytes.Buffer
	runner := pipeline.NewRunner(cache.NewMemoryCache(), nil, nil)
	t.Cleanup(func() { runner.Close() })
	router := newTileRouter(runner, "", newLogger(&buf, log.InfoLevel))

	req := httptest.NewRequest(http.MethodGet, "/v1/tiles/tech", nil)
	req.Header.Set("X-Request-ID", "req-42")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	out := buf.String()
	if !strings.Contains(out, "req-42") {
		t.Errorf("render log should carry the request ID, got %q", out)
	}
	if !strings.Contains(out, "Rendered") {
		t.Errorf("render log should report completion, got %q", out)
	}
}

func TestNewServeCacheBackends(t *testing.T) {
	tests := []struct {
		backend string
		wantErr bool
	}{
		{"none", false},
		{"memory", false},
		{"file", false},
		{"bogus", true},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			t.Setenv("XDG_CACHE_HOME", t.TempDir())

			c, err := newServeCache(t.Context(), serveOpts{backend: tt.backend})
			if (err != nil) != tt.wantErr {
				t.Fatalf("newServeCache(%q) error = %v, wantErr %v", tt.backend, err, tt.wantErr)
			}
			if c != nil {
				c.Close()
			}
		})
	}
}
