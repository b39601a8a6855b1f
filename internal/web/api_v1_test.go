package web

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rook-computer/pascalviz/internal/app/screens"
	"github.com/rook-computer/pascalviz/internal/config"
	"github.com/rook-computer/pascalviz/internal/render"
	"github.com/rook-computer/pascalviz/internal/state"
)

func testDeps() APIV1Deps {
	base := config.Default(config.ModeModulo)
	base.Rows = 32
	base.CanvasSize = 64
	return APIV1Deps{Base: base, Store: state.NewStore(), Render: screens.RenderImage}
}

func TestTrianglePNG(t *testing.T) {
	deps := testDeps()
	srv := httptest.NewServer(NewDefaultMux(deps))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/triangle.png?rows=16")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("expected image/png, got %s", ct)
	}
	if !render.IsPNG(body) {
		t.Error("body is not a PNG")
	}

	snap := deps.Store.Snapshot()
	if snap.Phase != state.DONE || snap.Render.Rows != 16 || snap.Render.RowsRendered != 16 {
		t.Errorf("unexpected state %+v", snap)
	}
}

func TestTriangleSVGNumeric(t *testing.T) {
	srv := httptest.NewServer(NewDefaultMux(testDeps()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/triangle.svg?mode=numeric&rows=4&size=200&grid=false")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("expected image/svg+xml, got %s", ct)
	}
	if n := strings.Count(string(body), "</text>"); n != 10 {
		t.Errorf("expected 10 labels, got %d", n)
	}
	if strings.Contains(string(body), "<line") {
		t.Error("grid drawn although disabled")
	}
}

func TestTriangleBadParameters(t *testing.T) {
	srv := httptest.NewServer(NewDefaultMux(testDeps()))
	defer srv.Close()

	for _, query := range []string{
		"rows=abc",
		"rows=0",
		"rows=100&size=50",
		"rows=1&size=100000",
		"rows=1&size=5000000000",
		"mode=spiral",
		"grid=maybe",
		"foreground=ultraviolet",
	} {
		resp, err := http.Get(srv.URL + "/api/v1/triangle.png?" + query)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		var apiErr apiError
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		resp.Body.Close()

		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", query, resp.StatusCode)
		}
		if apiErr.Error != "invalid_parameters" {
			t.Errorf("%s: unexpected error body %+v", query, apiErr)
		}
	}
}

func TestTriangleMethodNotAllowed(t *testing.T) {
	srv := httptest.NewServer(NewDefaultMux(testDeps()))
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/v1/triangle.png", "text/plain", nil)
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", resp.StatusCode)
	}
}

func TestTriangleRenderFailure(t *testing.T) {
	deps := testDeps()
	deps.Render = func(w io.Writer, cfg *config.Config, format render.Format) (int, error) {
		return 3, errors.New("out of ink")
	}
	srv := httptest.NewServer(NewDefaultMux(deps))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/triangle.png")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", resp.StatusCode)
	}
	if snap := deps.Store.Snapshot(); snap.Phase != state.ERROR || snap.Render.Err != "out of ink" {
		t.Errorf("unexpected state %+v", snap)
	}
}

func TestTriangleWithoutRenderer(t *testing.T) {
	deps := testDeps()
	deps.Render = nil
	rec := httptest.NewRecorder()
	apiV1Router(deps).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/triangle.png", nil))
	if rec.Code != http.StatusNotImplemented {
		t.Errorf("expected 501, got %d", rec.Code)
	}
}

func TestStatus(t *testing.T) {
	deps := testDeps()
	deps.Store.BeginRender("numeric", 4, 100, "png")
	deps.Store.FinishRender(4, nil)

	rec := httptest.NewRecorder()
	apiV1Router(deps).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var status statusResponse
	if err := json.NewDecoder(rec.Body).Decode(&status); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if status.Phase != "done" || status.Mode != "numeric" || status.RowsRendered != 4 {
		t.Errorf("unexpected status %+v", status)
	}
}

func TestQRCode(t *testing.T) {
	srv := httptest.NewServer(NewDefaultMux(testDeps()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/qr.png?rows=8")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || !render.IsPNG(body) {
		t.Errorf("expected PNG QR code, got %d", resp.StatusCode)
	}

	bad, err := http.Get(srv.URL + "/api/v1/qr.png?rows=-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	bad.Body.Close()
	if bad.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", bad.StatusCode)
	}
}

func TestConfigFromQueryModeSwitch(t *testing.T) {
	base := config.Default(config.ModeModulo)
	cfg, err := configFromQuery(base, map[string][]string{"mode": {"numeric"}})
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if cfg.Mode != config.ModeNumeric || cfg.Background != "#ffffff" || cfg.Rows != config.DefaultNumericRows {
		t.Errorf("expected numeric defaults, got %+v", cfg)
	}
	if base.Mode != config.ModeModulo {
		t.Error("base config modified")
	}
}

func TestIndex(t *testing.T) {
	srv := httptest.NewServer(NewDefaultMux(testDeps()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/?rows=8")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), "/api/v1/triangle.svg?rows=8") {
		t.Errorf("unexpected index (%d): %s", resp.StatusCode, body)
	}

	missing, err := http.Get(srv.URL + "/nope")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	missing.Body.Close()
	if missing.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", missing.StatusCode)
	}
}

func TestHTTPServerLifecycle(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := NewHTTPServer("127.0.0.1:0", testDeps())
	s.DevMode = true
	if err := s.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}

	req, _ := http.NewRequest(http.MethodOptions, "http://"+s.Addr+"/api/v1/triangle.png", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("expected 204, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("unexpected CORS origin %q", got)
	}

	if err := s.Stop(); err != nil {
		t.Errorf("stop: %v", err)
	}
	if err := s.Start(ctx); err == nil {
		t.Error("expected error restarting a stopped server")
	}
}
