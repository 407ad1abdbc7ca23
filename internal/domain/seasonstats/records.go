package seasonstats

import "github.com/riskibarqy/team-manager/internal/domain/season"

// BestSeason picks the season with the highest win percentage. Seasons without a recorded
// game are skipped. Ties go to more wins, then to the earlier season in the input.
func BestSeason(seasons []season.Summary) (season.Summary, bool) {
	var (
		best      season.Summary
		bestGames int
		found     bool
	)
	for _, s := range seasons {
		games := s.Record.GamesPlayed(s.Sport)
		if games == 0 {
			continue
		}
		if !found {
			best, bestGames, found = s, games, true
			continue
		}
		// compare wins/games fractions without floating point
		lhs := s.Record.Wins * bestGames
		rhs := best.Record.Wins * games
		if lhs > rhs || (lhs == rhs && s.Record.Wins > best.Record.Wins) {
			best, bestGames = s, games
		}
	}
	return best, found
}

// WinPercentage formats wins over games played, ".000" without games.
func WinPercentage(s season.Summary) string {
	games := s.Record.GamesPlayed(s.Sport)
	v, ok := ratio(float64(s.Record.Wins), float64(games))
	if !ok {
		return ZeroRate
	}
	return formatRate(v)
}

// RecordHolder is the season owning a team record and the record's value.
type RecordHolder struct {
	Season season.Summary
	Value  int
}

// Rollup lists team records across seasons. A category whose best value is zero is nil.
type Rollup struct {
	MostWins            *RecordHolder
	LongestWinStreak    *RecordHolder
	LongestLosingStreak *RecordHolder
}

func TeamRecordRollup(seasons []season.Summary) Rollup {
	return Rollup{
		MostWins:            maxHolder(seasons, func(r season.TeamRecord) int { return r.Wins }),
		LongestWinStreak:    maxHolder(seasons, func(r season.TeamRecord) int { return r.LongestWinStreak }),
		LongestLosingStreak: maxHolder(seasons, func(r season.TeamRecord) int { return r.LongestLosingStreak }),
	}
}

func maxHolder(seasons []season.Summary, field func(season.TeamRecord) int) *RecordHolder {
	var best *RecordHolder
	for _, s := range seasons {
		v := field(s.Record)
		if best == nil || v > best.Value {
			best = &RecordHolder{Season: s, Value: v}
		}
	}
	if best == nil || best.Value == 0 {
		return nil
	}
	return best
}
