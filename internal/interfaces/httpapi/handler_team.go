package httpapi

import (
	"net/http"
	"strings"
)

// GetTeamsOverview takes ?ids=a,b,c. Rows for teams that failed to load carry an error
// message instead of failing the whole response.
func (h *Handler) GetTeamsOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamsOverview")
	defer span.End()

	ids := strings.Split(r.URL.Query().Get("ids"), ",")
	rows, err := h.overviewService.Summaries(ctx, ids)
	if err != nil {
		h.logger.WarnContext(ctx, "teams overview failed", "teams", len(ids), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamOverviewsToDTO(rows))
}

func (h *Handler) GetPollTally(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPollTally")
	defer span.End()

	teamID := pathValue(r, "teamID")
	pollID := pathValue(r, "pollID")
	p, result, err := h.pollService.Tally(ctx, teamID, pollID)
	if err != nil {
		h.logger.WarnContext(ctx, "poll tally failed", "team_id", teamID, "poll_id", pollID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, pollTallyToDTO(p, result))
}
