package seasonstats

import "github.com/riskibarqy/team-manager/internal/domain/sport"

// Audience limits which players a leaderboard category ranks.
type Audience string

const (
	AudienceAll     Audience = "all"
	AudienceSkaters Audience = "skaters"
	AudienceGoalies Audience = "goalies"
)

// Category is one leaderboard shown for a sport.
type Category struct {
	Key      string
	Label    string
	Audience Audience
	Goalie   bool
	value    func(AggregatedRecord) (float64, bool)
}

func stat(key, label string) Category {
	return Category{Key: key, Label: label, Audience: AudienceAll}
}

func skaterStat(key, label string) Category {
	return Category{Key: key, Label: label, Audience: AudienceSkaters}
}

func goalieStat(key, label string) Category {
	return Category{Key: key, Label: label, Audience: AudienceGoalies, Goalie: true}
}

func skaterPoints() Category {
	c := skaterStat(StatPoints, "Points")
	c.value = func(r AggregatedRecord) (float64, bool) {
		if v, ok := r.Stats[StatPoints]; ok && v > 0 {
			return v, true
		}
		if !r.Stats.Has(StatGoals) && !r.Stats.Has(StatAssists) {
			return 0, false
		}
		return r.Stats.Get(StatGoals) + r.Stats.Get(StatAssists), true
	}
	return c
}

func gaa(s sport.Sport) Category {
	c := goalieStat(MetricGAA, "Goals Against Average")
	c.value = func(r AggregatedRecord) (float64, bool) {
		return GAAValue(s, r.GoalieStats)
	}
	return c
}

func savePct() Category {
	c := goalieStat(MetricSavePercentage, "Save Percentage")
	c.value = func(r AggregatedRecord) (float64, bool) {
		return SavePercentageValue(r.GoalieStats)
	}
	return c
}

func battingAverage() Category {
	c := stat(MetricBattingAverage, "Batting Average")
	c.value = func(r AggregatedRecord) (float64, bool) {
		return BattingAverageValue(r.Stats)
	}
	return c
}

func era() Category {
	c := goalieStat(MetricERA, "ERA")
	c.value = func(r AggregatedRecord) (float64, bool) {
		return ERAValue(r.GoalieStats)
	}
	return c
}

// Categories returns the leaderboards shown for s, in display order.
func Categories(s sport.Sport) []Category {
	switch s {
	case sport.Hockey:
		return []Category{
			skaterStat(StatGoals, "Goals"),
			skaterStat(StatAssists, "Assists"),
			skaterPoints(),
			skaterStat(StatPenaltyMinutes, "Penalty Minutes"),
			goalieStat(StatWins, "Wins"),
			goalieStat(StatSaves, "Saves"),
			goalieStat(StatShutouts, "Shutouts"),
			gaa(s),
			savePct(),
		}
	case sport.Basketball:
		return []Category{
			stat(StatPoints, "Points"),
			stat(StatRebounds, "Rebounds"),
			stat(StatAssists, "Assists"),
			stat(StatSteals, "Steals"),
			stat(StatBlocks, "Blocks"),
			stat(StatThreePointers, "3-Pointers"),
		}
	case sport.Soccer:
		return []Category{
			skaterStat(StatGoals, "Goals"),
			skaterStat(StatAssists, "Assists"),
			goalieStat(StatSaves, "Saves"),
			goalieStat(StatShutouts, "Clean Sheets"),
			gaa(s),
		}
	case sport.Lacrosse:
		return []Category{
			skaterStat(StatGoals, "Goals"),
			skaterStat(StatAssists, "Assists"),
			skaterPoints(),
			skaterStat(StatGroundBalls, "Ground Balls"),
			goalieStat(StatSaves, "Saves"),
			gaa(s),
			savePct(),
		}
	case sport.Baseball, sport.Softball:
		return []Category{
			battingAverage(),
			stat(StatHits, "Hits"),
			stat(StatHomeRuns, "Home Runs"),
			stat(StatRBI, "RBI"),
			stat(StatRuns, "Runs"),
			stat(StatStolenBases, "Stolen Bases"),
			goalieStat(StatWins, "Wins"),
			goalieStat(StatStrikeouts, "Strikeouts"),
			era(),
		}
	default:
		return nil
	}
}

// Board is one category's ranked entries.
type Board struct {
	Category Category
	Entries  []LeaderboardEntry
}

// Leaderboards ranks every category of s over records.
func Leaderboards(s sport.Sport, records Aggregation, n int) []Board {
	categories := Categories(s)
	out := make([]Board, 0, len(categories))
	for _, c := range categories {
		out = append(out, Board{Category: c, Entries: TopN(records, c.Key, n, c.options(s)...)})
	}
	return out
}

func (c Category) options(s sport.Sport) []TopNOption {
	var opts []TopNOption
	switch c.Audience {
	case AudienceGoalies:
		opts = append(opts, WithFilter(GoaliesOnly(s)))
	case AudienceSkaters:
		opts = append(opts, WithFilter(SkatersOnly(s)))
	}
	if c.Goalie {
		opts = append(opts, FromGoalieStats())
	}
	if c.value != nil {
		opts = append(opts, WithValue(c.value))
	}
	return opts
}
