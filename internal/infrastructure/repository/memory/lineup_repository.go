package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/team-manager/internal/domain/lineup"
)

type LineupRepository struct {
	mu    sync.RWMutex
	items map[string]lineup.Lineup
}

func NewLineupRepository() *LineupRepository {
	return &LineupRepository{items: make(map[string]lineup.Lineup)}
}

func (r *LineupRepository) GetByTeam(_ context.Context, teamID string) (lineup.Lineup, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[teamID]
	if !ok {
		return lineup.Lineup{}, false, nil
	}

	return item.Clone(), true, nil
}

func (r *LineupRepository) Upsert(_ context.Context, item lineup.Lineup) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.TeamID] = item.Clone()
	return nil
}
