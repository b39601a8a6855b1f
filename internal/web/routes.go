package web

import "net/http"

// RegisterAPIV1 registers the public API routes under /api/v1/.
func RegisterAPIV1(mux *http.ServeMux, deps APIV1Deps) {
	mux.Handle("/api/v1/", http.StripPrefix("/api/v1", apiV1Router(deps)))
}

// RegisterUI serves the index page at /.
func RegisterUI(mux *http.ServeMux, deps APIV1Deps) {
	mux.Handle("/", indexHandler(deps.withDefaults().Base))
}

// NewDefaultMux builds the standard mux:
// - /api/v1/* for the API
// - / for the index page
func NewDefaultMux(deps APIV1Deps) *http.ServeMux {
	mux := http.NewServeMux()
	RegisterAPIV1(mux, deps)
	RegisterUI(mux, deps)
	return mux
}
