package player

import "context"

// Repository exposes roster read operations.
type Repository interface {
	ListByTeam(ctx context.Context, teamID string) ([]Player, error)
	GetByIDs(ctx context.Context, teamID string, playerIDs []string) ([]Player, error)
}
