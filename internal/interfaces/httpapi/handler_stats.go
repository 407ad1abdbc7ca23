package httpapi

import "net/http"

func (h *Handler) GetAllTimeLeaderboards(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAllTimeLeaderboards")
	defer span.End()

	teamID := pathValue(r, "teamID")
	n, err := queryTopN(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	boards, err := h.statsService.AllTimeLeaderboards(ctx, teamID, n)
	if err != nil {
		h.logger.WarnContext(ctx, "all-time leaderboards failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leaderboardsToDTO(boards))
}

func (h *Handler) GetSeasonLeaderboards(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeasonLeaderboards")
	defer span.End()

	teamID := pathValue(r, "teamID")
	seasonID := pathValue(r, "seasonID")
	n, err := queryTopN(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	boards, err := h.statsService.SeasonLeaderboards(ctx, teamID, seasonID, n)
	if err != nil {
		h.logger.WarnContext(ctx, "season leaderboards failed", "team_id", teamID, "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leaderboardsToDTO(boards))
}

func (h *Handler) GetPlayerAllTime(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerAllTime")
	defer span.End()

	teamID := pathValue(r, "teamID")
	playerID := pathValue(r, "playerID")
	career, err := h.statsService.PlayerAllTime(ctx, teamID, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "player all-time stats failed", "team_id", teamID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerCareerToDTO(career))
}

func (h *Handler) GetTeamRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamRecords")
	defer span.End()

	teamID := pathValue(r, "teamID")
	records, err := h.statsService.TeamRecords(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "team records failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamRecordsToDTO(records))
}
