package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/team-manager/internal/domain/poll"
	"github.com/riskibarqy/team-manager/internal/domain/team"
)

type PollService struct {
	teamRepo team.Repository
	pollRepo poll.Repository
}

func NewPollService(teamRepo team.Repository, pollRepo poll.Repository) *PollService {
	return &PollService{teamRepo: teamRepo, pollRepo: pollRepo}
}

func (s *PollService) Tally(ctx context.Context, teamID, pollID string) (poll.Poll, poll.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PollService.Tally")
	defer span.End()

	t, err := loadTeam(ctx, s.teamRepo, teamID)
	if err != nil {
		return poll.Poll{}, poll.Result{}, err
	}
	pollID = strings.TrimSpace(pollID)
	if pollID == "" {
		return poll.Poll{}, poll.Result{}, fmt.Errorf("%w: poll_id is required", ErrInvalidInput)
	}

	item, exists, err := s.pollRepo.GetByID(ctx, t.ID, pollID)
	if err != nil {
		return poll.Poll{}, poll.Result{}, fmt.Errorf("get poll: %w", err)
	}
	if !exists {
		return poll.Poll{}, poll.Result{}, fmt.Errorf("%w: poll=%s", ErrNotFound, pollID)
	}

	return item, poll.Tally(item), nil
}
