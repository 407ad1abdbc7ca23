package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/team-manager/internal/domain/poll"
	qb "github.com/riskibarqy/team-manager/internal/platform/querybuilder"
)

type PollRepository struct {
	db *sqlx.DB
}

func NewPollRepository(db *sqlx.DB) *PollRepository {
	return &PollRepository{db: db}
}

func (r *PollRepository) GetByID(ctx context.Context, teamID, pollID string) (poll.Poll, bool, error) {
	query, args, err := qb.Select("id", "team_id", "question", "options::text AS options", "votes::text AS votes", "multi_select").
		From("polls").
		Where(qb.Eq("team_id", teamID), qb.Eq("id", pollID), qb.IsNull("deleted_at")).
		Limit(1).
		ToSQL()
	if err != nil {
		return poll.Poll{}, false, fmt.Errorf("build get poll query: %w", err)
	}

	var row pollTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return poll.Poll{}, false, nil
		}
		return poll.Poll{}, false, fmt.Errorf("get poll: %w", err)
	}

	item, err := pollFromRow(row)
	if err != nil {
		return poll.Poll{}, false, err
	}
	return item, true, nil
}
