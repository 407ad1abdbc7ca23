package season

import (
	"time"

	"github.com/riskibarqy/team-manager/internal/domain/sport"
)

// TeamRecord is a team's results over one season.
type TeamRecord struct {
	Wins                int
	Losses              int
	Ties                int
	OTLosses            int
	LongestWinStreak    int
	LongestLosingStreak int
	GoalsFor            int
	GoalsAgainst        int
}

// GamesPlayed counts decided games; overtime losses only count for sports that track them.
func (r TeamRecord) GamesPlayed(s sport.Sport) int {
	games := r.Wins + r.Losses + r.Ties
	if s.CountsOTLosses() {
		games += r.OTLosses
	}
	return games
}

// ArchivedPlayerStats is one player's frozen stat line inside an archived season.
type ArchivedPlayerStats struct {
	PlayerID      string
	Name          string
	Positions     []string
	Stats         map[string]any
	GoalieStats   map[string]any
	GamesInvited  int
	GamesAttended int
}

// ArchivedSeason is an immutable snapshot written when an admin ends a season.
type ArchivedSeason struct {
	ID          string
	TeamID      string
	Name        string
	Sport       sport.Sport
	Record      TeamRecord
	PlayerStats []ArchivedPlayerStats
	ArchivedAt  time.Time
}

// Summary returns the team-level view of the archive.
func (s ArchivedSeason) Summary() Summary {
	return Summary{
		ID:     s.ID,
		Name:   s.Name,
		Sport:  s.Sport,
		Record: s.Record,
	}
}

// Summary is the team-level view of either an archived or the current season.
type Summary struct {
	ID      string
	Name    string
	Sport   sport.Sport
	Record  TeamRecord
	Current bool
}
