package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/team-manager/internal/domain/poll"
)

type PollRepository struct {
	mu    sync.RWMutex
	items map[string]poll.Poll
}

func NewPollRepository(polls []poll.Poll) *PollRepository {
	items := make(map[string]poll.Poll, len(polls))
	for _, p := range polls {
		items[pollKey(p.TeamID, p.ID)] = clonePoll(p)
	}
	return &PollRepository{items: items}
}

func (r *PollRepository) GetByID(_ context.Context, teamID, pollID string) (poll.Poll, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[pollKey(teamID, pollID)]
	if !ok {
		return poll.Poll{}, false, nil
	}
	return clonePoll(item), true, nil
}

func pollKey(teamID, pollID string) string {
	return teamID + "::" + pollID
}

func clonePoll(p poll.Poll) poll.Poll {
	p.Options = append([]poll.Option(nil), p.Options...)
	votes := make(map[string][]string, len(p.Votes))
	for voter, picks := range p.Votes {
		votes[voter] = append([]string(nil), picks...)
	}
	p.Votes = votes
	return p
}
