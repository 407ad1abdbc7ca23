package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/team-manager/internal/domain/player"
)

type PlayerRepository struct {
	mu          sync.RWMutex
	byTeam      map[string][]player.Player
	indexByTeam map[string]map[string]player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	byTeam := make(map[string][]player.Player)
	indexByTeam := make(map[string]map[string]player.Player)

	for _, p := range players {
		p = clonePlayer(p)
		byTeam[p.TeamID] = append(byTeam[p.TeamID], p)
		if _, ok := indexByTeam[p.TeamID]; !ok {
			indexByTeam[p.TeamID] = make(map[string]player.Player)
		}
		indexByTeam[p.TeamID][p.ID] = p
	}

	return &PlayerRepository{
		byTeam:      byTeam,
		indexByTeam: indexByTeam,
	}
}

func (r *PlayerRepository) ListByTeam(_ context.Context, teamID string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	players := r.byTeam[teamID]
	out := make([]player.Player, 0, len(players))
	for _, p := range players {
		out = append(out, clonePlayer(p))
	}

	return out, nil
}

func (r *PlayerRepository) GetByIDs(_ context.Context, teamID string, playerIDs []string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	index := r.indexByTeam[teamID]
	out := make([]player.Player, 0, len(playerIDs))
	for _, id := range playerIDs {
		p, ok := index[id]
		if !ok {
			continue
		}
		out = append(out, clonePlayer(p))
	}

	return out, nil
}

func clonePlayer(p player.Player) player.Player {
	p.Positions = append([]string(nil), p.Positions...)
	p.Roles = append([]player.Role(nil), p.Roles...)
	p.Stats = cloneRecord(p.Stats)
	p.GoalieStats = cloneRecord(p.GoalieStats)
	return p
}

func cloneRecord(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
