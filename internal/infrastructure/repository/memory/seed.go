package memory

import (
	"time"

	"github.com/riskibarqy/team-manager/internal/domain/player"
	"github.com/riskibarqy/team-manager/internal/domain/poll"
	"github.com/riskibarqy/team-manager/internal/domain/season"
	"github.com/riskibarqy/team-manager/internal/domain/sport"
	"github.com/riskibarqy/team-manager/internal/domain/team"
)

const (
	TeamIDIceHawks   = "team-ice-hawks"
	TeamIDCourtKings = "team-court-kings"
	TeamIDRiverside  = "team-riverside-fc"

	PollIDPracticeNight = "poll-practice-night"
)

func SeedTeams() []team.Team {
	return []team.Team{
		{
			ID:            TeamIDIceHawks,
			Name:          "Ice Hawks",
			Sport:         sport.Hockey,
			CurrentSeason: "Winter 2026",
			CurrentRecord: season.TeamRecord{Wins: 4, Losses: 2, OTLosses: 1, LongestWinStreak: 3, LongestLosingStreak: 1, GoalsFor: 25, GoalsAgainst: 18},
		},
		{
			ID:            TeamIDCourtKings,
			Name:          "Court Kings",
			Sport:         sport.Basketball,
			CurrentSeason: "Spring 2026",
			CurrentRecord: season.TeamRecord{Wins: 6, Losses: 3, LongestWinStreak: 4, LongestLosingStreak: 2},
		},
		{
			ID:            TeamIDRiverside,
			Name:          "Riverside FC",
			Sport:         sport.Soccer,
			CurrentSeason: "Fall 2026",
		},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "hawk-01", TeamID: TeamIDIceHawks, FirstName: "Alice", LastName: "Moreau", JerseyNumber: "19", Positions: []string{"C"}, Roles: []player.Role{player.RoleCaptain}, Status: player.StatusActive, Stats: map[string]any{"goals": 10, "assists": 5, "pim": 4}},
		{ID: "hawk-02", TeamID: TeamIDIceHawks, FirstName: "Ben", LastName: "Ortiz", JerseyNumber: "11", Positions: []string{"LW", "RW"}, Status: player.StatusActive, Stats: map[string]any{"goals": 6, "assists": 9}},
		{ID: "hawk-03", TeamID: TeamIDIceHawks, FirstName: "Chloe", LastName: "Park", JerseyNumber: "4", Positions: []string{"LD"}, Status: player.StatusActive, Stats: map[string]any{"goals": 1, "assists": 7, "pim": 10}},
		{ID: "hawk-04", TeamID: TeamIDIceHawks, FirstName: "Dmitri", LastName: "Volkov", JerseyNumber: "31", Positions: []string{"G"}, Status: player.StatusActive, GoalieStats: map[string]any{"wins": 4, "saves": 183, "shotsAgainst": 200, "goalsAgainst": 9, "minutesPlayed": 180, "shutouts": 1}},
		{ID: "hawk-05", TeamID: TeamIDIceHawks, FirstName: "Erin", LastName: "Shaw", JerseyNumber: "7", Positions: []string{"RD", "LD"}, Roles: []player.Role{player.RoleAdmin}, Status: player.StatusReserve, Stats: map[string]any{"assists": 2}},

		{ID: "king-01", TeamID: TeamIDCourtKings, FirstName: "Jordan", LastName: "Reyes", JerseyNumber: "3", Positions: []string{"PG"}, Status: player.StatusActive, Stats: map[string]any{"points": 142, "assists": 51, "steals": 18}},
		{ID: "king-02", TeamID: TeamIDCourtKings, FirstName: "Marcus", LastName: "Hill", JerseyNumber: "23", Positions: []string{"F", "C"}, Status: player.StatusActive, Stats: map[string]any{"points": 120, "rebounds": 77, "blocks": 12}},
		{ID: "king-03", TeamID: TeamIDCourtKings, FirstName: "Sam", LastName: "Nguyen", JerseyNumber: "8", Positions: []string{"G"}, Status: player.StatusActive, Stats: map[string]any{"points": 98, "threePointers": 22}},
		{ID: "king-04", TeamID: TeamIDCourtKings, FirstName: "Tariq", LastName: "Bell", JerseyNumber: "50", Positions: []string{"C"}, Status: player.StatusActive, Stats: map[string]any{"points": 64, "rebounds": 90}},

		{ID: "river-01", TeamID: TeamIDRiverside, FirstName: "Lena", LastName: "Kovac", JerseyNumber: "9", Positions: []string{"FW"}, Status: player.StatusActive, Stats: map[string]any{"goals": 3, "assists": 1}},
		{ID: "river-02", TeamID: TeamIDRiverside, FirstName: "Owen", LastName: "Grant", JerseyNumber: "1", Positions: []string{"GK"}, Status: player.StatusActive, GoalieStats: map[string]any{"saves": 21, "shotsAgainst": 25, "goalsAgainst": 4, "minutesPlayed": 360}},
	}
}

func SeedSeasons() []season.ArchivedSeason {
	return []season.ArchivedSeason{
		{
			ID:         "hawks-2024",
			TeamID:     TeamIDIceHawks,
			Name:       "Winter 2024",
			Sport:      sport.Hockey,
			Record:     season.TeamRecord{Wins: 12, Losses: 8, LongestWinStreak: 4, LongestLosingStreak: 3, GoalsFor: 70, GoalsAgainst: 61},
			ArchivedAt: time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
			PlayerStats: []season.ArchivedPlayerStats{
				{PlayerID: "hawk-01", Name: "Alice Moreau", Positions: []string{"C"}, Stats: map[string]any{"goals": 4, "assists": 1}, GamesInvited: 20, GamesAttended: 18},
				{PlayerID: "hawk-90", Name: "Gus Lindqvist", Positions: []string{"RW"}, Stats: map[string]any{"goals": 14, "assists": 6}, GamesInvited: 20, GamesAttended: 20},
			},
		},
		{
			ID:         "hawks-2025",
			TeamID:     TeamIDIceHawks,
			Name:       "Winter 2025",
			Sport:      sport.Hockey,
			Record:     season.TeamRecord{Wins: 14, Losses: 4, OTLosses: 2, LongestWinStreak: 7, LongestLosingStreak: 2, GoalsFor: 88, GoalsAgainst: 50},
			ArchivedAt: time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
			PlayerStats: []season.ArchivedPlayerStats{
				{PlayerID: "hawk-01", Name: "Alice Moreau", Positions: []string{"C"}, Stats: map[string]any{"goals": 3, "assists": 1}, GamesInvited: 20, GamesAttended: 17},
				{PlayerID: "hawk-04", Name: "Dmitri Volkov", Positions: []string{"G"}, GoalieStats: map[string]any{"wins": 14, "saves": 540, "shotsAgainst": 590, "goalsAgainst": 50, "minutesPlayed": 1200}, GamesInvited: 20, GamesAttended: 20},
			},
		},
		{
			ID:         "kings-2025",
			TeamID:     TeamIDCourtKings,
			Name:       "Spring 2025",
			Sport:      sport.Basketball,
			Record:     season.TeamRecord{Wins: 9, Losses: 6, LongestWinStreak: 5, LongestLosingStreak: 2},
			ArchivedAt: time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC),
			PlayerStats: []season.ArchivedPlayerStats{
				{PlayerID: "king-01", Name: "Jordan Reyes", Positions: []string{"PG"}, Stats: map[string]any{"points": 201, "assists": 70}},
				{PlayerID: "king-02", Name: "Marcus Hill", Positions: []string{"F"}, Stats: map[string]any{"points": 150, "rebounds": 101}},
			},
		},
	}
}

func SeedPolls() []poll.Poll {
	return []poll.Poll{
		{
			ID:       PollIDPracticeNight,
			TeamID:   TeamIDIceHawks,
			Question: "Which night works for extra practice?",
			Options: []poll.Option{
				{ID: "tue", Label: "Tuesday"},
				{ID: "thu", Label: "Thursday"},
			},
			Votes: map[string][]string{
				"hawk-01": {"thu"},
				"hawk-02": {"tue"},
				"hawk-03": {"thu"},
			},
		},
	}
}
