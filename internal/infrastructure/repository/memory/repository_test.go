package memory

import (
	"testing"

	"github.com/riskibarqy/team-manager/internal/domain/lineup"
	"github.com/riskibarqy/team-manager/internal/domain/sport"
)

func TestPlayerRepository_ReturnsCopies(t *testing.T) {
	repo := NewPlayerRepository(SeedPlayers())
	ctx := t.Context()

	roster, err := repo.ListByTeam(ctx, TeamIDIceHawks)
	if err != nil {
		t.Fatalf("list roster: %v", err)
	}
	if len(roster) != 5 || roster[0].ID != "hawk-01" {
		t.Fatalf("unexpected roster: %d players", len(roster))
	}
	roster[0].Stats["goals"] = 99
	roster[0].Positions[0] = "G"

	again, err := repo.GetByIDs(ctx, TeamIDIceHawks, []string{"hawk-01", "king-01"})
	if err != nil {
		t.Fatalf("get by ids: %v", err)
	}
	if len(again) != 1 {
		t.Fatalf("expected players of other teams to be skipped, got %d", len(again))
	}
	if again[0].Stats["goals"] != 10 || again[0].Positions[0] != "C" {
		t.Fatalf("stored player was mutated through a returned copy: %+v", again[0])
	}
}

func TestSeasonRepository_GetByIDScopedToTeam(t *testing.T) {
	repo := NewSeasonRepository(SeedSeasons())
	ctx := t.Context()

	if _, ok, _ := repo.GetByID(ctx, TeamIDIceHawks, "kings-2025"); ok {
		t.Fatalf("season of another team must not be found")
	}
	got, ok, err := repo.GetByID(ctx, TeamIDIceHawks, "hawks-2025")
	if err != nil || !ok {
		t.Fatalf("expected hawks-2025, ok=%v err=%v", ok, err)
	}
	if len(got.PlayerStats) != 2 {
		t.Fatalf("unexpected player stats: %+v", got.PlayerStats)
	}

	list, err := repo.ListByTeam(ctx, TeamIDRiverside)
	if err != nil || len(list) != 0 {
		t.Fatalf("expected no archives for riverside, got %d err=%v", len(list), err)
	}
}

func TestLineupRepository_UpsertReplaces(t *testing.T) {
	repo := NewLineupRepository()
	ctx := t.Context()

	item := lineup.NewEmpty(sport.Hockey).Assign(lineup.SlotRef{Group: lineup.GroupGoalies}, "hawk-04")
	item.TeamID = TeamIDIceHawks
	item.ID = "lineup-1"
	if err := repo.Upsert(ctx, item); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	item.Hockey.Goalies[0] = "changed"

	got, ok, err := repo.GetByTeam(ctx, TeamIDIceHawks)
	if err != nil || !ok {
		t.Fatalf("expected stored lineup, ok=%v err=%v", ok, err)
	}
	if got.Hockey.Goalies[0] != "hawk-04" {
		t.Fatalf("stored lineup aliased caller slice: %v", got.Hockey.Goalies)
	}

	if _, ok, _ := repo.GetByTeam(ctx, TeamIDCourtKings); ok {
		t.Fatalf("unexpected lineup for court kings")
	}
}

func TestTeamAndPollRepositories(t *testing.T) {
	ctx := t.Context()

	teams := NewTeamRepository(SeedTeams())
	got, ok, err := teams.GetByID(ctx, TeamIDCourtKings)
	if err != nil || !ok || got.Sport != sport.Basketball {
		t.Fatalf("unexpected team lookup: %+v ok=%v err=%v", got, ok, err)
	}

	polls := NewPollRepository(SeedPolls())
	p, ok, err := polls.GetByID(ctx, TeamIDIceHawks, PollIDPracticeNight)
	if err != nil || !ok || len(p.Options) != 2 {
		t.Fatalf("unexpected poll lookup: %+v ok=%v err=%v", p, ok, err)
	}
	if _, ok, _ := polls.GetByID(ctx, TeamIDCourtKings, PollIDPracticeNight); ok {
		t.Fatalf("poll must be scoped to its team")
	}
}
