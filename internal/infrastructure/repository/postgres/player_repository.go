package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/team-manager/internal/domain/player"
	qb "github.com/riskibarqy/team-manager/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	query, args, err := playerSelectBuilder().
		Where(qb.Eq("team_id", teamID), qb.IsNull("deleted_at")).
		OrderBy("sort_order", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players query: %w", err)
	}
	return r.selectPlayers(ctx, query, args)
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, teamID string, playerIDs []string) ([]player.Player, error) {
	if len(playerIDs) == 0 {
		return []player.Player{}, nil
	}
	query, args, err := playerSelectBuilder().
		Where(qb.Eq("team_id", teamID), qb.In("id", playerIDs), qb.IsNull("deleted_at")).
		OrderBy("sort_order", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get players query: %w", err)
	}
	return r.selectPlayers(ctx, query, args)
}

func (r *PlayerRepository) selectPlayers(ctx context.Context, query string, args []any) ([]player.Player, error) {
	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		item, err := playerFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func playerSelectBuilder() *qb.SelectBuilder {
	return qb.Select(
		"id",
		"team_id",
		"first_name",
		"last_name",
		"jersey_number",
		"positions",
		"roles",
		"status",
		"stats::text AS stats",
		"goalie_stats::text AS goalie_stats",
		"image_url",
	).From("players")
}
