package season

import "context"

// Repository exposes archived season snapshots. Archives are written by the season-end
// flow and are read-only here.
type Repository interface {
	ListByTeam(ctx context.Context, teamID string) ([]ArchivedSeason, error)
	GetByID(ctx context.Context, teamID, seasonID string) (ArchivedSeason, bool, error)
}
