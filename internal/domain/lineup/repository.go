package lineup

import "context"

// Repository exposes lineup persistence operations. Lineups are stored wholesale.
type Repository interface {
	GetByTeam(ctx context.Context, teamID string) (Lineup, bool, error)
	Upsert(ctx context.Context, item Lineup) error
}
