package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerLineupRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams/{teamID}/lineup", handler.GetLineup)
	mux.HandleFunc("PUT /v1/teams/{teamID}/lineup", handler.SaveLineup)
	mux.HandleFunc("POST /v1/teams/{teamID}/lineup/actions", handler.ApplyLineupActions)
	mux.HandleFunc("POST /v1/teams/{teamID}/lineup/candidates", handler.ListLineupCandidates)
}

func registerStatsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams/{teamID}/leaderboards", handler.GetAllTimeLeaderboards)
	mux.HandleFunc("GET /v1/teams/{teamID}/seasons/{seasonID}/leaderboards", handler.GetSeasonLeaderboards)
	mux.HandleFunc("GET /v1/teams/{teamID}/players/{playerID}/all-time", handler.GetPlayerAllTime)
	mux.HandleFunc("GET /v1/teams/{teamID}/records", handler.GetTeamRecords)
}

func registerTeamRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams/overview", handler.GetTeamsOverview)
	mux.HandleFunc("GET /v1/teams/{teamID}/polls/{pollID}/tally", handler.GetPollTally)
}
