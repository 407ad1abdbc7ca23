package httpapi

import (
	"net/http"

	"github.com/riskibarqy/team-manager/internal/usecase"
)

func (h *Handler) GetLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLineup")
	defer span.End()

	teamID := pathValue(r, "teamID")
	item, err := h.lineupService.Get(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get lineup failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, lineupToDTO(item))
}

func (h *Handler) SaveLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveLineup")
	defer span.End()

	teamID := pathValue(r, "teamID")
	var req lineupRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.lineupService.Save(ctx, teamID, req.toDomain())
	if err != nil {
		h.logger.WarnContext(ctx, "save lineup failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, lineupToDTO(item))
}

// ApplyLineupActions previews a batch of edits; nothing is stored.
func (h *Handler) ApplyLineupActions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ApplyLineupActions")
	defer span.End()

	teamID := pathValue(r, "teamID")
	var req lineupActionsRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	actions := make([]usecase.LineupAction, 0, len(req.Actions))
	for _, a := range req.Actions {
		actions = append(actions, a.toDomain())
	}

	item, err := h.lineupService.Apply(ctx, teamID, req.Lineup.toDomain(), actions)
	if err != nil {
		h.logger.WarnContext(ctx, "apply lineup actions failed", "team_id", teamID, "actions", len(actions), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, lineupToDTO(item))
}

func (h *Handler) ListLineupCandidates(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLineupCandidates")
	defer span.End()

	teamID := pathValue(r, "teamID")
	var req lineupCandidatesRequest
	if err := h.decodeBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.lineupService.Candidates(ctx, teamID, req.Slot.toDomain(), req.Lineup.toDomain())
	if err != nil {
		h.logger.WarnContext(ctx, "list lineup candidates failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, candidatesToDTO(items))
}
