package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("GET /v1/matches/{matchID}/view", handler.GetMatchView)
	mux.HandleFunc("POST /v1/matches", handler.IngestMatch)
	mux.HandleFunc("POST /v1/matchviews/derive", handler.DeriveMatchView)
}

func registerInternalRoutes(mux *http.ServeMux, handler *Handler, internalToken string) {
	mux.Handle("POST /v1/internal/warm", RequireInternalToken(internalToken, http.HandlerFunc(handler.WarmMatchViews)))
}
