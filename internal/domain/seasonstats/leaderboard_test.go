package seasonstats

import (
	"testing"

	"github.com/riskibarqy/team-manager/internal/domain/player"
	"github.com/riskibarqy/team-manager/internal/domain/season"
	"github.com/riskibarqy/team-manager/internal/domain/sport"
)

func entryIDs(entries []LeaderboardEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.PlayerID)
	}
	return out
}

func TestTopN_TiesKeepInputOrder(t *testing.T) {
	agg := AggregateCurrent([]player.Player{
		{ID: "p1", Stats: map[string]any{"goals": 5}},
		{ID: "p2", Stats: map[string]any{"goals": 3}},
		{ID: "p3", Stats: map[string]any{"goals": 5}},
	})

	got := entryIDs(TopN(agg, StatGoals, 3))
	want := []string{"p1", "p3", "p2"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected order:\n got=%v\nwant=%v", got, want)
		}
	}
}

func TestTopN_FiltersAndLimits(t *testing.T) {
	agg := AggregateCurrent([]player.Player{
		{ID: "zero", Stats: map[string]any{"goals": 0}},
		{ID: "none"},
		{ID: "neg", Stats: map[string]any{"goals": -2}},
		{ID: "a", Stats: map[string]any{"goals": 1}},
		{ID: "b", Stats: map[string]any{"goals": 4}},
		{ID: "c", Stats: map[string]any{"goals": 2}},
		{ID: "d", Stats: map[string]any{"goals": 3}},
	})

	got := entryIDs(TopN(agg, StatGoals, 0))
	want := []string{"b", "d", "c"}
	if len(got) != DefaultTopN {
		t.Fatalf("expected default length %d, got %v", DefaultTopN, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected order:\n got=%v\nwant=%v", got, want)
		}
	}

	if got := TopN(nil, StatGoals, 3); len(got) != 0 {
		t.Fatalf("expected empty leaderboard, got %v", got)
	}
}

func TestTopN_GoalieFilterAndLowerIsBetter(t *testing.T) {
	agg := AggregateCurrent([]player.Player{
		{ID: "g1", Positions: []string{"G"}, GoalieStats: map[string]any{"goalsAgainst": 12, "minutesPlayed": 180}},
		{ID: "g2", Positions: []string{"G"}, GoalieStats: map[string]any{"goalsAgainst": 3, "minutesPlayed": 120}},
		{ID: "g3", Positions: []string{"G"}, GoalieStats: map[string]any{"goalsAgainst": 3, "minutesPlayed": 0}},
		{ID: "s1", Positions: []string{"C"}, GoalieStats: map[string]any{"goalsAgainst": 1, "minutesPlayed": 60}},
	})

	got := TopN(agg, MetricGAA, 3,
		WithFilter(GoaliesOnly(sport.Hockey)),
		WithValue(func(r AggregatedRecord) (float64, bool) { return GAAValue(sport.Hockey, r.GoalieStats) }),
	)
	ids := entryIDs(got)
	if len(ids) != 2 || ids[0] != "g2" || ids[1] != "g1" {
		t.Fatalf("unexpected GAA leaderboard: %v", ids)
	}

	saves := TopN(AggregateCurrent([]player.Player{
		{ID: "g1", Positions: []string{"G"}, GoalieStats: map[string]any{"saves": 10}},
		{ID: "g2", Positions: []string{"G"}, GoalieStats: map[string]any{"saves": 30}},
	}), StatSaves, 3, FromGoalieStats())
	if ids := entryIDs(saves); len(ids) != 2 || ids[0] != "g2" {
		t.Fatalf("unexpected saves leaderboard: %v", ids)
	}

	if empty := TopN(agg, StatGoals, 3); len(empty) != 0 {
		t.Fatalf("no skater stats should produce empty board, got %v", empty)
	}
}

func TestLeaderboards_HockeyCategories(t *testing.T) {
	agg := AggregateCurrent([]player.Player{
		{ID: "c1", Positions: []string{"C"}, Stats: map[string]any{"goals": 4, "assists": 6}},
		{ID: "w1", Positions: []string{"LW"}, Stats: map[string]any{"goals": 7, "assists": 1}},
		{ID: "g1", Positions: []string{"G"}, Stats: map[string]any{"goals": 1}, GoalieStats: map[string]any{"saves": 90, "shotsAgainst": 100, "goalsAgainst": 10, "minutesPlayed": 300}},
	})

	boards := Leaderboards(sport.Hockey, agg, 3)
	byKey := make(map[string]Board, len(boards))
	for _, b := range boards {
		byKey[b.Category.Key] = b
	}

	goals := entryIDs(byKey[StatGoals].Entries)
	if len(goals) != 2 || goals[0] != "w1" || goals[1] != "c1" {
		t.Fatalf("goalies must not rank in skater goals: %v", goals)
	}
	points := byKey[StatPoints].Entries
	if len(points) != 2 || points[0].PlayerID != "c1" || points[0].Value != 10 {
		t.Fatalf("unexpected points board: %+v", points)
	}
	sv := byKey[MetricSavePercentage].Entries
	if len(sv) != 1 || sv[0].PlayerID != "g1" || sv[0].Value != 0.9 {
		t.Fatalf("unexpected save pct board: %+v", sv)
	}
	ga := byKey[MetricGAA].Entries
	if len(ga) != 1 || ga[0].Value != 2 {
		t.Fatalf("unexpected gaa board: %+v", ga)
	}
}

func TestCategories_SportDependent(t *testing.T) {
	for _, s := range []sport.Sport{sport.Hockey, sport.Basketball, sport.Soccer, sport.Lacrosse, sport.Baseball, sport.Softball} {
		if len(Categories(s)) == 0 {
			t.Fatalf("expected categories for %s", s)
		}
	}
	for _, c := range Categories(sport.Basketball) {
		if c.Goalie || c.Audience != AudienceAll {
			t.Fatalf("basketball has no goalie categories: %+v", c)
		}
	}
}

func TestGoaliesOnly_RosterAndArchiveOnlyPlayers(t *testing.T) {
	agg := AggregateAllTime(
		[]player.Player{{ID: "converted", FirstName: "Now", LastName: "Skater", Positions: []string{"LW"}}},
		[]season.ArchivedSeason{{
			ID: "s1",
			PlayerStats: []season.ArchivedPlayerStats{
				{PlayerID: "converted", Positions: []string{"G"}, GoalieStats: map[string]any{"saves": 50}},
				{PlayerID: "retired", Name: "Old Keeper", Positions: []string{"G"}, GoalieStats: map[string]any{"saves": 20}},
			},
		}},
	)

	isGoalie := GoaliesOnly(sport.Hockey)
	converted, _ := agg.Get("converted")
	if isGoalie(converted) {
		t.Fatalf("roster player must be judged by current positions")
	}
	retired, _ := agg.Get("retired")
	if !isGoalie(retired) {
		t.Fatalf("archive-only goalie must count as goalie")
	}

	saves := TopN(agg, StatSaves, 3, WithFilter(isGoalie), FromGoalieStats())
	if ids := entryIDs(saves); len(ids) != 1 || ids[0] != "retired" {
		t.Fatalf("unexpected goalie saves board: %v", ids)
	}
}
