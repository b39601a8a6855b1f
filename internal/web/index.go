package web

import (
	"html/template"
	"net/http"

	"github.com/rook-computer/pascalviz/internal/config"
)

var indexTemplate = template.Must(template.New("index").Parse(`<!doctype html>
<html>
<head><title>Pascal's triangle</title></head>
<body style="background:#222;color:#ddd;font-family:sans-serif">
<form method="get" action="/">
  <label>rows <input name="rows" type="number" min="1" value="{{.Rows}}"></label>
  <label>size <input name="size" type="number" min="1" value="{{.CanvasSize}}"></label>
  <label>mode <select name="mode">
    <option value="modulo"{{if eq .Mode "modulo"}} selected{{end}}>modulo</option>
    <option value="numeric"{{if eq .Mode "numeric"}} selected{{end}}>numeric</option>
  </select></label>
  <button>draw</button>
</form>
<p><img src="/api/v1/triangle.svg?{{.Query}}" width="{{.CanvasSize}}" alt="triangle"></p>
<p><img src="/api/v1/qr.png?{{.Query}}" alt="share"></p>
</body>
</html>
`))

type indexData struct {
	Rows       int
	CanvasSize int
	Mode       string
	Query      template.URL
}

func indexHandler(base *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		if r.Method != http.MethodGet {
			writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
			return
		}
		q := r.URL.Query()
		cfg, err := configFromQuery(base, q)
		if err != nil {
			writeAPIError(w, http.StatusBadRequest, "invalid_parameters", err.Error())
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = indexTemplate.Execute(w, indexData{
			Rows:       cfg.Rows,
			CanvasSize: cfg.CanvasSize,
			Mode:       string(cfg.Mode),
			Query:      template.URL(q.Encode()),
		})
	})
}
