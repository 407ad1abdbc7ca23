package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/team-manager/internal/domain/poll"
	"github.com/riskibarqy/team-manager/internal/domain/sport"
	"github.com/riskibarqy/team-manager/internal/domain/team"
	"github.com/riskibarqy/team-manager/internal/infrastructure/repository/memory"
	pollmock "github.com/riskibarqy/team-manager/internal/mocks/domain/poll"
	teammock "github.com/riskibarqy/team-manager/internal/mocks/domain/team"
)

func TestPollService_Tally(t *testing.T) {
	svc := NewPollService(memory.NewTeamRepository(memory.SeedTeams()), memory.NewPollRepository(memory.SeedPolls()))

	item, result, err := svc.Tally(t.Context(), memory.TeamIDIceHawks, memory.PollIDPracticeNight)
	if err != nil {
		t.Fatalf("tally: %v", err)
	}
	if item.Question == "" || result.Voters != 3 {
		t.Fatalf("unexpected tally: %+v %+v", item, result)
	}
	if len(result.Leading) != 1 || result.Leading[0] != "thu" {
		t.Fatalf("unexpected leading option: %v", result.Leading)
	}

	if _, _, err := svc.Tally(t.Context(), memory.TeamIDCourtKings, memory.PollIDPracticeNight); !errors.Is(err, ErrNotFound) {
		t.Fatalf("poll of another team must not resolve, got %v", err)
	}
}

func TestPollService_Tally_RepositoryErrorUsingMockery(t *testing.T) {
	t.Parallel()

	teamRepo := teammock.NewRepository(t)
	pollRepo := pollmock.NewRepository(t)
	svc := NewPollService(teamRepo, pollRepo)

	teamRepo.
		On("GetByID", mock.Anything, "t1").
		Return(team.Team{ID: "t1", Name: "Ice", Sport: sport.Hockey}, true, nil).
		Once()
	pollRepo.
		On("GetByID", mock.Anything, "t1", "p1").
		Return(poll.Poll{}, false, errors.New("db closed")).
		Once()

	if _, _, err := svc.Tally(t.Context(), "t1", "p1"); err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("expected repository error, got %v", err)
	}
}
