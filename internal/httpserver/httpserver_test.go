package httpserver

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"syllabus-tracker/internal/dashboard/repository/memory"
	"syllabus-tracker/pkg/datemath"
	"syllabus-tracker/pkg/log"
	"syllabus-tracker/pkg/parser"
)

type nopParser struct{}

func (nopParser) Upload(ctx context.Context, fileName string, content io.Reader) (parser.UploadResult, error) {
	return parser.UploadResult{}, nil
}

func (nopParser) GenerateReport(ctx context.Context, parsedPath string) (parser.Report, error) {
	return parser.Report{}, nil
}

func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()
	l := log.NewNop()
	dm, _ := datemath.NewParser("UTC")

	srv, err := New(l, Config{
		Logger:      l,
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: "test",
		Boards:      memory.New(l, 10, time.Hour),
		Parser:      nopParser{},
		DateMath:    dm,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func TestNewValidates(t *testing.T) {
	l := log.NewNop()
	if _, err := New(l, Config{Logger: l, Port: 8080, Mode: gin.TestMode}); err == nil {
		t.Errorf("expected error without dashboard dependencies")
	}
	if _, err := New(nil, Config{Port: 8080, Mode: gin.TestMode}); err == nil {
		t.Errorf("expected error without logger")
	}
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := httptest.NewRecorder()
		srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
		}
	}
}

func TestReadyCountsSessions(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/sessions", nil))
	if w.Code != http.StatusCreated {
		t.Fatalf("create session: expected 201, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

	var body struct {
		Data healthResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data.Sessions != 1 || body.Data.Calendar {
		t.Errorf("unexpected readiness: %+v", body.Data)
	}
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/sessions", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", w.Code)
	}
	if !strings.Contains(w.Header().Get("Access-Control-Allow-Methods"), "POST") {
		t.Errorf("missing allow-methods header")
	}
}
