package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rook-computer/pascalviz/internal/config"
	"github.com/rook-computer/pascalviz/internal/render"
	"github.com/rook-computer/pascalviz/internal/state"
)

// RenderFunc draws the triangle described by cfg into w and reports the
// number of rows rendered.
type RenderFunc func(w io.Writer, cfg *config.Config, format render.Format) (int, error)

type APIV1Deps struct {
	// Base supplies every setting the query does not override.
	Base   *config.Config
	Store  *state.Store
	Render RenderFunc
}

func (d APIV1Deps) withDefaults() APIV1Deps {
	if d.Base == nil {
		d.Base = config.Default(config.ModeModulo)
	}
	if d.Store == nil {
		d.Store = state.NewStore()
	}
	return d
}

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type statusResponse struct {
	Phase        string `json:"phase"`
	Mode         string `json:"mode,omitempty"`
	Rows         int    `json:"rows"`
	CanvasSize   int    `json:"canvasSize"`
	RowsRendered int    `json:"rowsRendered"`
	DurationMs   int64  `json:"durationMs"`
	Error        string `json:"error,omitempty"`
}

const qrSizePx = 256

func apiV1Router(deps APIV1Deps) http.Handler {
	deps = deps.withDefaults()
	mux := http.NewServeMux()
	mux.HandleFunc("/triangle.png", func(w http.ResponseWriter, r *http.Request) { handleTriangle(w, r, deps, render.FormatPNG) })
	mux.HandleFunc("/triangle.svg", func(w http.ResponseWriter, r *http.Request) { handleTriangle(w, r, deps, render.FormatSVG) })
	mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) { handleStatus(w, r, deps) })
	mux.HandleFunc("/qr.png", func(w http.ResponseWriter, r *http.Request) { handleQRCode(w, r, deps) })
	return mux
}

func handleTriangle(w http.ResponseWriter, r *http.Request, deps APIV1Deps, format render.Format) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	if deps.Render == nil {
		writeAPIError(w, http.StatusNotImplemented, "not_implemented", "rendering not configured")
		return
	}

	cfg, err := configFromQuery(deps.Base, r.URL.Query())
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "invalid_parameters", err.Error())
		return
	}

	deps.Store.BeginRender(string(cfg.Mode), cfg.Rows, cfg.CanvasSize, string(format))
	var buf bytes.Buffer
	rows, err := deps.Render(&buf, cfg, format)
	deps.Store.FinishRender(rows, err)
	if err != nil {
		if errors.Is(err, config.ErrInvalid) {
			writeAPIError(w, http.StatusBadRequest, "invalid_parameters", err.Error())
			return
		}
		writeAPIError(w, http.StatusInternalServerError, "render_failed", err.Error())
		return
	}

	contentType := "image/png"
	if format == render.FormatSVG {
		contentType = "image/svg+xml"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func handleStatus(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	snap := deps.Store.Snapshot()
	writeJSON(w, http.StatusOK, statusResponse{
		Phase:        snap.Phase.String(),
		Mode:         snap.Render.Mode,
		Rows:         snap.Render.Rows,
		CanvasSize:   snap.Render.CanvasSize,
		RowsRendered: snap.Render.RowsRendered,
		DurationMs:   snap.Render.Duration().Milliseconds(),
		Error:        snap.Render.Err,
	})
}

// handleQRCode answers with a QR code linking to the PNG for the same
// query, after checking that the query is renderable.
func handleQRCode(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	query := r.URL.Query()
	if _, err := configFromQuery(deps.Base, query); err != nil {
		writeAPIError(w, http.StatusBadRequest, "invalid_parameters", err.Error())
		return
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	target := url.URL{Scheme: scheme, Host: r.Host, Path: "/api/v1/triangle.png", RawQuery: query.Encode()}
	data, err := render.QRCodePNG(target.String(), qrSizePx)
	if err != nil {
		writeAPIError(w, http.StatusInternalServerError, "qr_failed", err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// configFromQuery overlays rows, size, mode, background, foreground and
// grid onto a copy of base. A mode that differs from base starts from that
// mode's defaults.
func configFromQuery(base *config.Config, q url.Values) (*config.Config, error) {
	cfg := *base
	if raw := q.Get("mode"); raw != "" {
		mode, err := config.ParseMode(raw)
		if err != nil {
			return nil, err
		}
		cfg.SwitchMode(mode)
	}
	if err := queryInt(q, "rows", &cfg.Rows); err != nil {
		return nil, err
	}
	if err := queryInt(q, "size", &cfg.CanvasSize); err != nil {
		return nil, err
	}
	if raw := q.Get("grid"); raw != "" {
		grid, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, errors.New("grid must be a boolean")
		}
		cfg.Grid = grid
	}
	if raw := q.Get("background"); raw != "" {
		cfg.Background = raw
	}
	if raw := q.Get("foreground"); raw != "" {
		cfg.Foreground = raw
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func queryInt(q url.Values, name string, dst *int) error {
	raw := q.Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return errors.New(name + " must be an integer")
	}
	*dst = v
	return nil
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiError{Error: code, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
