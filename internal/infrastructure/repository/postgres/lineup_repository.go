package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/team-manager/internal/domain/lineup"
	qb "github.com/riskibarqy/team-manager/internal/platform/querybuilder"
)

type LineupRepository struct {
	db *sqlx.DB
}

func NewLineupRepository(db *sqlx.DB) *LineupRepository {
	return &LineupRepository{db: db}
}

func (r *LineupRepository) GetByTeam(ctx context.Context, teamID string) (lineup.Lineup, bool, error) {
	query, args, err := qb.Select("id", "team_id", "sport", "payload::text AS payload", "updated_at").
		From("lineups").
		Where(qb.Eq("team_id", teamID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return lineup.Lineup{}, false, fmt.Errorf("build get lineup query: %w", err)
	}

	var row lineupTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return lineup.Lineup{}, false, nil
		}
		return lineup.Lineup{}, false, fmt.Errorf("get lineup: %w", err)
	}

	item, err := lineupFromRow(row)
	if err != nil {
		return lineup.Lineup{}, false, err
	}
	return item, true, nil
}

// Upsert stores the whole lineup; one row per team.
func (r *LineupRepository) Upsert(ctx context.Context, item lineup.Lineup) error {
	payload, err := encodeJSON(lineupPayload(item), "{}")
	if err != nil {
		return fmt.Errorf("encode lineup payload: %w", err)
	}

	query, args, err := qb.UpsertModel("lineups", lineupTableModel{
		ID:        item.ID,
		TeamID:    item.TeamID,
		Sport:     string(item.Sport),
		Payload:   payload,
		UpdatedAt: item.UpdatedAt,
	}, "team_id")
	if err != nil {
		return fmt.Errorf("build upsert lineup query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert lineup: %w", err)
	}
	return nil
}
