package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/team-manager/internal/domain/team"
)

func loadTeam(ctx context.Context, repo team.Repository, teamID string) (team.Team, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team_id is required", ErrInvalidInput)
	}

	item, exists, err := repo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}
	return item, nil
}
