package poll

import "context"

// Repository reads polls owned by the team store.
type Repository interface {
	GetByID(ctx context.Context, teamID, pollID string) (Poll, bool, error)
}
