package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/team-manager/internal/domain/season"
	qb "github.com/riskibarqy/team-manager/internal/platform/querybuilder"
)

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func (r *SeasonRepository) ListByTeam(ctx context.Context, teamID string) ([]season.ArchivedSeason, error) {
	query, args, err := seasonSelectBuilder().
		Where(qb.Eq("team_id", teamID)).
		OrderBy("archived_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list seasons query: %w", err)
	}

	var rows []seasonTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list archived seasons: %w", err)
	}

	out := make([]season.ArchivedSeason, 0, len(rows))
	for _, row := range rows {
		item, err := seasonFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *SeasonRepository) GetByID(ctx context.Context, teamID, seasonID string) (season.ArchivedSeason, bool, error) {
	query, args, err := seasonSelectBuilder().
		Where(qb.Eq("team_id", teamID), qb.Eq("id", seasonID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return season.ArchivedSeason{}, false, fmt.Errorf("build get season query: %w", err)
	}

	var row seasonTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return season.ArchivedSeason{}, false, nil
		}
		return season.ArchivedSeason{}, false, fmt.Errorf("get archived season: %w", err)
	}

	item, err := seasonFromRow(row)
	if err != nil {
		return season.ArchivedSeason{}, false, err
	}
	return item, true, nil
}

func seasonSelectBuilder() *qb.SelectBuilder {
	return qb.Select(
		"id",
		"team_id",
		"name",
		"sport",
		"record::text AS record",
		"player_stats::text AS player_stats",
		"archived_at",
	).From("archived_seasons")
}
