package lineup

import (
	"time"

	"github.com/riskibarqy/team-manager/internal/domain/sport"
)

// Group is a repeatable set of slots whose size can be changed.
type Group string

const (
	GroupForwardLines Group = "forward_lines"
	GroupDefensePairs Group = "defense_pairs"
	GroupGoalies      Group = "goalies"

	GroupPointGuard Group = "point_guard"
	GroupGuards     Group = "guards"
	GroupForwards   Group = "forwards"
	GroupCenters    Group = "centers"
	GroupBench      Group = "bench"
)

// Position is the key of a single slot inside a group entry.
type Position string

const (
	SlotLW     Position = "lw"
	SlotC      Position = "c"
	SlotRW     Position = "rw"
	SlotLD     Position = "ld"
	SlotRD     Position = "rd"
	SlotGoalie Position = "g"

	SlotPointGuard Position = "pg"
	SlotGuard      Position = "guard"
	SlotForward    Position = "forward"
	SlotCenter     Position = "center"
	SlotBench      Position = "bench"
)

// MaxBasketballStarters caps point guard + guards + forwards + centers.
const MaxBasketballStarters = 5

// Lineup is a team's saved formation. Only the section matching Sport is populated.
type Lineup struct {
	ID         string
	TeamID     string
	Sport      sport.Sport
	Hockey     HockeyLineup
	Basketball BasketballLineup
	UpdatedAt  time.Time
}

type HockeyLineup struct {
	ForwardLines []ForwardLine
	DefensePairs []DefensePair
	Goalies      []string
}

type ForwardLine struct {
	LW string
	C  string
	RW string
}

type DefensePair struct {
	LD string
	RD string
}

type BasketballLineup struct {
	PointGuardEnabled bool
	PointGuard        string
	Guards            []string
	Forwards          []string
	Centers           []string
	Bench             []string
}

// Starters counts starting slots, assigned or not.
func (b BasketballLineup) Starters() int {
	n := len(b.Guards) + len(b.Forwards) + len(b.Centers)
	if b.PointGuardEnabled {
		n++
	}
	return n
}

// SlotRef addresses one slot: group, entry index within the group and slot key within the entry.
type SlotRef struct {
	Group    Group
	Index    int
	Position Position
}

// Slot is one flattened lineup slot.
type Slot struct {
	Ref      SlotRef
	PlayerID string
}

// Bounds is the inclusive size range of a group.
type Bounds struct {
	Min int
	Max int
}

// step returns current+delta clamped to the bounds. The sum is only formed once it
// is known to land inside them, so extreme deltas cannot wrap around.
func (b Bounds) step(current, delta int) int {
	switch {
	case delta > 0 && delta >= b.Max-current:
		return b.Max
	case delta < 0 && delta <= b.Min-current:
		return b.Min
	}
	n := current + delta
	if n < b.Min {
		return b.Min
	}
	if n > b.Max {
		return b.Max
	}
	return n
}

var groupBounds = map[sport.Sport]map[Group]Bounds{
	sport.Hockey: {
		GroupForwardLines: {Min: 1, Max: 4},
		GroupDefensePairs: {Min: 1, Max: 4},
		GroupGoalies:      {Min: 1, Max: 2},
	},
	sport.Basketball: {
		GroupPointGuard: {Min: 0, Max: 1},
		GroupGuards:     {Min: 0, Max: 3},
		GroupForwards:   {Min: 0, Max: 2},
		GroupCenters:    {Min: 0, Max: 2},
		GroupBench:      {Min: 0, Max: 15},
	},
}

// GroupBounds returns the size range of group for s.
func GroupBounds(s sport.Sport, group Group) (Bounds, bool) {
	b, ok := groupBounds[s][group]
	return b, ok
}

// Groups lists the resizable groups of s in display order.
func Groups(s sport.Sport) []Group {
	switch s {
	case sport.Hockey:
		return []Group{GroupForwardLines, GroupDefensePairs, GroupGoalies}
	case sport.Basketball:
		return []Group{GroupPointGuard, GroupGuards, GroupForwards, GroupCenters, GroupBench}
	default:
		return nil
	}
}

func isStarterGroup(group Group) bool {
	switch group {
	case GroupPointGuard, GroupGuards, GroupForwards, GroupCenters:
		return true
	default:
		return false
	}
}
