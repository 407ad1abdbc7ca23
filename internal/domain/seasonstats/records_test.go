package seasonstats

import (
	"testing"

	"github.com/riskibarqy/team-manager/internal/domain/season"
	"github.com/riskibarqy/team-manager/internal/domain/sport"
)

func TestBestSeason(t *testing.T) {
	seasons := []season.Summary{
		{Name: "2022", Sport: sport.Hockey, Record: season.TeamRecord{Wins: 6, Losses: 4}},
		{Name: "2023", Sport: sport.Hockey, Record: season.TeamRecord{Wins: 12, Losses: 8}},
		{Name: "2024", Sport: sport.Hockey, Record: season.TeamRecord{Wins: 7, Losses: 2, OTLosses: 1}},
		{Name: "current", Sport: sport.Hockey, Current: true},
	}

	got, ok := BestSeason(seasons)
	if !ok {
		t.Fatalf("expected a best season")
	}
	if got.Name != "2024" {
		t.Fatalf("unexpected best season: %s", got.Name)
	}

	// 2022 and 2023 share .600; 2023 has more wins
	got, _ = BestSeason(seasons[:2])
	if got.Name != "2023" {
		t.Fatalf("expected tie broken by wins, got %s", got.Name)
	}

	same := []season.Summary{
		{Name: "first", Sport: sport.Basketball, Record: season.TeamRecord{Wins: 5, Losses: 5}},
		{Name: "second", Sport: sport.Basketball, Record: season.TeamRecord{Wins: 5, Losses: 5}},
	}
	got, _ = BestSeason(same)
	if got.Name != "first" {
		t.Fatalf("expected first on full tie, got %s", got.Name)
	}

	if _, ok := BestSeason([]season.Summary{{Name: "current", Current: true}}); ok {
		t.Fatalf("current season without games must not qualify")
	}
}

func TestBestSeason_OTLossesOnlyCountForHockey(t *testing.T) {
	hockey := season.Summary{Sport: sport.Hockey, Record: season.TeamRecord{Wins: 2, Losses: 1, OTLosses: 1}}
	soccer := season.Summary{Sport: sport.Soccer, Record: season.TeamRecord{Wins: 2, Losses: 1, OTLosses: 1}}
	if got := WinPercentage(hockey); got != ".500" {
		t.Fatalf("unexpected hockey win pct: %s", got)
	}
	if got := WinPercentage(soccer); got != ".667" {
		t.Fatalf("unexpected soccer win pct: %s", got)
	}
	if got := WinPercentage(season.Summary{}); got != ZeroRate {
		t.Fatalf("unexpected empty win pct: %s", got)
	}
}

func TestTeamRecordRollup(t *testing.T) {
	seasons := []season.Summary{
		{Name: "2022", Record: season.TeamRecord{Wins: 10, LongestWinStreak: 4}},
		{Name: "2023", Record: season.TeamRecord{Wins: 14, LongestWinStreak: 4}},
		{Name: "current", Current: true, Record: season.TeamRecord{Wins: 3, LongestWinStreak: 2}},
	}

	got := TeamRecordRollup(seasons)
	if got.MostWins == nil || got.MostWins.Season.Name != "2023" || got.MostWins.Value != 14 {
		t.Fatalf("unexpected most wins: %+v", got.MostWins)
	}
	if got.LongestWinStreak == nil || got.LongestWinStreak.Season.Name != "2022" {
		t.Fatalf("win streak tie must keep first season: %+v", got.LongestWinStreak)
	}
	if got.LongestLosingStreak != nil {
		t.Fatalf("all-zero losing streaks must be omitted: %+v", got.LongestLosingStreak)
	}

	if empty := TeamRecordRollup(nil); empty.MostWins != nil || empty.LongestWinStreak != nil {
		t.Fatalf("expected empty rollup, got %+v", empty)
	}
}
