package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/clubs", handler.CreateClub)
	mux.HandleFunc("GET /v1/clubs", handler.ListClubs)
	mux.HandleFunc("GET /v1/clubs/{clubID}", handler.GetClub)
	mux.HandleFunc("PUT /v1/clubs/{clubID}", handler.UpdateClub)
	mux.HandleFunc("DELETE /v1/clubs/{clubID}", handler.DeactivateClub)

	mux.HandleFunc("POST /v1/stadiums", handler.CreateStadium)
	mux.HandleFunc("GET /v1/stadiums", handler.ListStadiums)
	mux.HandleFunc("GET /v1/stadiums/{stadiumID}", handler.GetStadium)
	mux.HandleFunc("PUT /v1/stadiums/{stadiumID}", handler.UpdateStadium)

	mux.HandleFunc("POST /v1/matches", handler.CreateMatch)
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("PUT /v1/matches/{matchID}", handler.UpdateMatch)
	mux.HandleFunc("DELETE /v1/matches/{matchID}", handler.DeleteMatch)
}
