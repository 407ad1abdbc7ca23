package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/team-manager/internal/domain/season"
)

type SeasonRepository struct {
	mu     sync.RWMutex
	byTeam map[string][]season.ArchivedSeason
}

func NewSeasonRepository(seasons []season.ArchivedSeason) *SeasonRepository {
	byTeam := make(map[string][]season.ArchivedSeason)
	for _, s := range seasons {
		byTeam[s.TeamID] = append(byTeam[s.TeamID], cloneSeason(s))
	}
	return &SeasonRepository{byTeam: byTeam}
}

func (r *SeasonRepository) ListByTeam(_ context.Context, teamID string) ([]season.ArchivedSeason, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.byTeam[teamID]
	out := make([]season.ArchivedSeason, 0, len(items))
	for _, s := range items {
		out = append(out, cloneSeason(s))
	}
	return out, nil
}

func (r *SeasonRepository) GetByID(_ context.Context, teamID, seasonID string) (season.ArchivedSeason, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.byTeam[teamID] {
		if s.ID == seasonID {
			return cloneSeason(s), true, nil
		}
	}
	return season.ArchivedSeason{}, false, nil
}

func cloneSeason(s season.ArchivedSeason) season.ArchivedSeason {
	stats := make([]season.ArchivedPlayerStats, 0, len(s.PlayerStats))
	for _, ps := range s.PlayerStats {
		ps.Positions = append([]string(nil), ps.Positions...)
		ps.Stats = cloneRecord(ps.Stats)
		ps.GoalieStats = cloneRecord(ps.GoalieStats)
		stats = append(stats, ps)
	}
	s.PlayerStats = stats
	return s
}
