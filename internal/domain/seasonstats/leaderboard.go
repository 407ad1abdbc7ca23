package seasonstats

import (
	"sort"

	"github.com/riskibarqy/team-manager/internal/domain/sport"
)

// DefaultTopN is the leaderboard length used when callers pass n <= 0.
const DefaultTopN = 3

// Derived metric keys usable as leaderboard categories.
const (
	MetricGAA            = "gaa"
	MetricSavePercentage = "savePct"
	MetricERA            = "era"
	MetricBattingAverage = "avg"
)

var lowerIsBetter = map[string]struct{}{
	MetricGAA: {},
	MetricERA: {},
}

// LowerIsBetter reports whether smaller values of key rank higher.
func LowerIsBetter(key string) bool {
	_, ok := lowerIsBetter[key]
	return ok
}

type LeaderboardEntry struct {
	PlayerID string
	Name     string
	Value    float64
	OnRoster bool
}

type topNConfig struct {
	key    string
	filter func(AggregatedRecord) bool
	value  func(AggregatedRecord) (float64, bool)
}

type TopNOption func(*topNConfig)

// WithFilter restricts the candidates, e.g. to goalies only.
func WithFilter(fn func(AggregatedRecord) bool) TopNOption {
	return func(c *topNConfig) {
		c.filter = fn
	}
}

// FromGoalieStats reads the stat key from the goalie/pitcher totals.
func FromGoalieStats() TopNOption {
	return func(c *topNConfig) {
		c.value = func(r AggregatedRecord) (float64, bool) {
			v, ok := r.GoalieStats[c.key]
			return v, ok
		}
	}
}

// WithValue ranks by a computed value instead of a stored stat field.
func WithValue(fn func(AggregatedRecord) (float64, bool)) TopNOption {
	return func(c *topNConfig) {
		c.value = fn
	}
}

// TopN ranks records with a present, positive value for statKey and returns at most n
// entries. Ties keep aggregation order.
func TopN(records Aggregation, statKey string, n int, opts ...TopNOption) []LeaderboardEntry {
	if n <= 0 {
		n = DefaultTopN
	}

	cfg := topNConfig{key: statKey}
	cfg.value = func(r AggregatedRecord) (float64, bool) {
		v, ok := r.Stats[statKey]
		return v, ok
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	ascending := LowerIsBetter(statKey)

	out := make([]LeaderboardEntry, 0, len(records))
	for _, r := range records {
		if cfg.filter != nil && !cfg.filter(r) {
			continue
		}
		v, ok := cfg.value(r)
		if !ok || !(v > 0) {
			continue
		}
		out = append(out, LeaderboardEntry{
			PlayerID: r.PlayerID,
			Name:     r.Name,
			Value:    v,
			OnRoster: r.OnRoster(),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if ascending {
			return out[i].Value < out[j].Value
		}
		return out[i].Value > out[j].Value
	})

	if len(out) > n {
		out = out[:n]
	}
	return out
}

// GoaliesOnly keeps records holding the sport's goalie (or pitcher) position. Roster
// players are judged by their current positions, archive-only players by their last
// archived ones.
func GoaliesOnly(s sport.Sport) func(AggregatedRecord) bool {
	code, ok := s.GoaliePosition()
	return func(r AggregatedRecord) bool {
		if r.Player != nil {
			return r.Player.IsGoalie(s)
		}
		return ok && r.HasPosition(code)
	}
}

// SkatersOnly keeps everyone who is not a goalie.
func SkatersOnly(s sport.Sport) func(AggregatedRecord) bool {
	goalie := GoaliesOnly(s)
	return func(r AggregatedRecord) bool {
		return !goalie(r)
	}
}
