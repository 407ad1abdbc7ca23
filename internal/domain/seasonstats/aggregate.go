package seasonstats

import (
	"sort"

	"github.com/riskibarqy/team-manager/internal/domain/player"
	"github.com/riskibarqy/team-manager/internal/domain/season"
)

// AggregatedRecord is a player's stat totals across the sources that mention the player.
// It is derived on every read and never stored.
type AggregatedRecord struct {
	PlayerID      string
	Name          string
	Positions     []string
	Player        *player.Player
	Stats         Totals
	GoalieStats   Totals
	GamesInvited  int
	GamesAttended int
	Seasons       int
}

// OnRoster reports whether the player is on the current roster.
func (r AggregatedRecord) OnRoster() bool {
	return r.Player != nil
}

func (r AggregatedRecord) HasPosition(code string) bool {
	for _, p := range r.Positions {
		if p == code {
			return true
		}
	}
	return false
}

// Aggregation is an ordered list of records: roster players in roster order, followed by
// archive-only players in chronological first-seen order.
type Aggregation []AggregatedRecord

func (a Aggregation) Get(playerID string) (AggregatedRecord, bool) {
	for _, r := range a {
		if r.PlayerID == playerID {
			return r, true
		}
	}
	return AggregatedRecord{}, false
}

type aggregator struct {
	order   []string
	records map[string]*AggregatedRecord
}

func newAggregator() *aggregator {
	return &aggregator{records: make(map[string]*AggregatedRecord)}
}

func (g *aggregator) record(id string) *AggregatedRecord {
	if rec, ok := g.records[id]; ok {
		return rec
	}
	rec := &AggregatedRecord{PlayerID: id, Stats: Totals{}, GoalieStats: Totals{}}
	g.records[id] = rec
	g.order = append(g.order, id)
	return rec
}

func (g *aggregator) addPlayers(players []player.Player) {
	for i := range players {
		p := players[i]
		if p.ID == "" {
			continue
		}
		rec := g.record(p.ID)
		rec.Player = &p
		rec.Name = p.DisplayName()
		rec.Positions = append([]string(nil), p.Positions...)
		rec.Stats.Add(p.Stats)
		rec.GoalieStats.Add(p.GoalieStats)
	}
}

// addSeason folds one archive. Seasons must arrive oldest first so the latest archive
// provides the name and positions of players no longer on the roster.
func (g *aggregator) addSeason(s season.ArchivedSeason) {
	for _, ps := range s.PlayerStats {
		if ps.PlayerID == "" {
			continue
		}
		rec := g.record(ps.PlayerID)
		if rec.Player == nil {
			if ps.Name != "" {
				rec.Name = ps.Name
			}
			if len(ps.Positions) > 0 {
				rec.Positions = append([]string(nil), ps.Positions...)
			}
		}
		rec.Stats.Add(ps.Stats)
		rec.GoalieStats.Add(ps.GoalieStats)
		rec.GamesInvited += ps.GamesInvited
		rec.GamesAttended += ps.GamesAttended
		rec.Seasons++
	}
}

func (g *aggregator) result() Aggregation {
	out := make(Aggregation, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, *g.records[id])
	}
	return out
}

// AggregateCurrent returns the live season's records for the roster.
func AggregateCurrent(players []player.Player) Aggregation {
	g := newAggregator()
	g.addPlayers(players)
	return g.result()
}

// AggregateSeason returns the records frozen in one archived season.
func AggregateSeason(s season.ArchivedSeason) Aggregation {
	g := newAggregator()
	g.addSeason(s)
	return g.result()
}

// AggregateAllTime sums live stats and every archived season per player id. The result
// does not depend on the order of seasons.
func AggregateAllTime(players []player.Player, seasons []season.ArchivedSeason) Aggregation {
	g := newAggregator()
	g.addPlayers(players)
	for _, s := range Chronological(seasons) {
		g.addSeason(s)
	}
	return g.result()
}

// Chronological returns a copy of seasons ordered by archive time, oldest first. Seasons
// archived at the same instant are ordered by id.
func Chronological(seasons []season.ArchivedSeason) []season.ArchivedSeason {
	out := append([]season.ArchivedSeason(nil), seasons...)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].ArchivedAt.Equal(out[j].ArchivedAt) {
			return out[i].ArchivedAt.Before(out[j].ArchivedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}
