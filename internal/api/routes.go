package api

import "net/http"

// RegisterRoutes mounts every endpoint on mux.
func RegisterRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /health", handler.HandleHealth)
	mux.HandleFunc("GET /words/{word}", handler.HandleWord)
	mux.HandleFunc("POST /analyze", handler.HandleAnalyze)
	mux.HandleFunc("POST /analyze/batch", handler.HandleAnalyzeBatch)
	mux.HandleFunc("POST /avg", handler.HandleAvg)
	mux.HandleFunc("POST /ratio", handler.HandleRatio)
}

// NewServer returns the routed API wrapped in the request-ID middleware.
func NewServer(handler *Handler) http.Handler {
	mux := http.NewServeMux()
	RegisterRoutes(mux, handler)
	return WithRequestID(handler.logger, mux)
}
