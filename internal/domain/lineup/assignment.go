package lineup

import (
	"strings"

	"github.com/riskibarqy/team-manager/internal/domain/sport"
)

// NewEmpty returns a lineup with the default slot counts of s. Sports without a
// lineup editor get a lineup whose Supported reports false.
func NewEmpty(s sport.Sport) Lineup {
	item := Lineup{Sport: s}
	switch s {
	case sport.Hockey:
		item.Hockey = HockeyLineup{
			ForwardLines: make([]ForwardLine, 1),
			DefensePairs: make([]DefensePair, 1),
			Goalies:      make([]string, 1),
		}
	case sport.Basketball:
		item.Basketball = BasketballLineup{
			PointGuardEnabled: true,
			Guards:            make([]string, 2),
			Forwards:          make([]string, 1),
			Centers:           make([]string, 1),
			Bench:             make([]string, 10),
		}
	}
	return item
}

// Supported reports whether the lineup's sport has a formation model.
func (l Lineup) Supported() bool {
	_, ok := groupBounds[l.Sport]
	return ok
}

// GroupSize returns the current number of entries in group.
func (l Lineup) GroupSize(group Group) int {
	switch group {
	case GroupForwardLines:
		return len(l.Hockey.ForwardLines)
	case GroupDefensePairs:
		return len(l.Hockey.DefensePairs)
	case GroupGoalies:
		return len(l.Hockey.Goalies)
	case GroupPointGuard:
		if l.Basketball.PointGuardEnabled {
			return 1
		}
		return 0
	case GroupGuards:
		return len(l.Basketball.Guards)
	case GroupForwards:
		return len(l.Basketball.Forwards)
	case GroupCenters:
		return len(l.Basketball.Centers)
	case GroupBench:
		return len(l.Basketball.Bench)
	default:
		return 0
	}
}

// Resize changes the entry count of group by delta, clamped to the sport's bounds.
// Growing appends empty entries, shrinking drops entries (and their assignments) from
// the end. Basketball starter groups never grow past MaxBasketballStarters.
func (l Lineup) Resize(group Group, delta int) Lineup {
	out := l.Clone()
	bounds, ok := GroupBounds(l.Sport, group)
	if !ok || delta == 0 {
		return out
	}

	current := out.GroupSize(group)
	target := bounds.step(current, delta)
	if target > current && l.Sport == sport.Basketball && isStarterGroup(group) {
		room := MaxBasketballStarters - out.Basketball.Starters()
		if room <= 0 {
			return out
		}
		if target-current > room {
			target = current + room
		}
	}
	if target == current {
		return out
	}

	out.setGroupSize(group, target)
	return out
}

func (l *Lineup) setGroupSize(group Group, n int) {
	switch group {
	case GroupForwardLines:
		l.Hockey.ForwardLines = resizeSlice(l.Hockey.ForwardLines, n)
	case GroupDefensePairs:
		l.Hockey.DefensePairs = resizeSlice(l.Hockey.DefensePairs, n)
	case GroupGoalies:
		l.Hockey.Goalies = resizeSlice(l.Hockey.Goalies, n)
	case GroupPointGuard:
		l.Basketball.PointGuardEnabled = n > 0
		if n == 0 {
			l.Basketball.PointGuard = ""
		}
	case GroupGuards:
		l.Basketball.Guards = resizeSlice(l.Basketball.Guards, n)
	case GroupForwards:
		l.Basketball.Forwards = resizeSlice(l.Basketball.Forwards, n)
	case GroupCenters:
		l.Basketball.Centers = resizeSlice(l.Basketball.Centers, n)
	case GroupBench:
		l.Basketball.Bench = resizeSlice(l.Basketball.Bench, n)
	}
}

func resizeSlice[T any](items []T, n int) []T {
	if n <= len(items) {
		return items[:n:n]
	}
	out := make([]T, n)
	copy(out, items)
	return out
}

// Normalize fills the implied slot key of single-slot groups.
func (r SlotRef) Normalize() SlotRef {
	r.Position = Position(strings.ToLower(strings.TrimSpace(string(r.Position))))
	if r.Position != "" {
		return r
	}
	switch r.Group {
	case GroupGoalies:
		r.Position = SlotGoalie
	case GroupPointGuard:
		r.Position = SlotPointGuard
	case GroupGuards:
		r.Position = SlotGuard
	case GroupForwards:
		r.Position = SlotForward
	case GroupCenters:
		r.Position = SlotCenter
	case GroupBench:
		r.Position = SlotBench
	}
	return r
}

// ValidSlot reports whether ref addresses an existing slot of the lineup.
func (l Lineup) ValidSlot(ref SlotRef) bool {
	ref = ref.Normalize()
	if _, ok := GroupBounds(l.Sport, ref.Group); !ok {
		return false
	}
	if ref.Index < 0 || ref.Index >= l.GroupSize(ref.Group) {
		return false
	}

	switch ref.Group {
	case GroupForwardLines:
		return ref.Position == SlotLW || ref.Position == SlotC || ref.Position == SlotRW
	case GroupDefensePairs:
		return ref.Position == SlotLD || ref.Position == SlotRD
	case GroupGoalies:
		return ref.Position == SlotGoalie
	case GroupPointGuard:
		return ref.Position == SlotPointGuard
	case GroupGuards:
		return ref.Position == SlotGuard
	case GroupForwards:
		return ref.Position == SlotForward
	case GroupCenters:
		return ref.Position == SlotCenter
	case GroupBench:
		return ref.Position == SlotBench
	default:
		return false
	}
}

// Assign sets (or, with an empty playerID, clears) one slot. A player already sitting in
// another slot is moved: the previous slot is cleared so a player never holds two slots.
// Clearing ref afterwards therefore restores the original lineup only when the player
// was unseated before the assign. Invalid refs leave the lineup unchanged.
func (l Lineup) Assign(ref SlotRef, playerID string) Lineup {
	out := l.Clone()
	ref = ref.Normalize()
	if !out.ValidSlot(ref) {
		return out
	}

	playerID = strings.TrimSpace(playerID)
	if playerID != "" {
		if prev, ok := out.SlotOf(playerID); ok && prev != ref {
			out.set(prev, "")
		}
	}
	out.set(ref, playerID)
	return out
}

// ClearAll empties every slot and keeps group sizes.
func (l Lineup) ClearAll() Lineup {
	out := l.Clone()
	for _, slot := range out.Slots() {
		out.set(slot.Ref, "")
	}
	return out
}

// HasAnyAssignment reports whether any slot holds a player.
func (l Lineup) HasAnyAssignment() bool {
	for _, slot := range l.Slots() {
		if slot.PlayerID != "" {
			return true
		}
	}
	return false
}

// AssignedIDs returns the set of player ids placed anywhere in the lineup.
func (l Lineup) AssignedIDs() map[string]struct{} {
	out := make(map[string]struct{})
	for _, slot := range l.Slots() {
		if slot.PlayerID != "" {
			out[slot.PlayerID] = struct{}{}
		}
	}
	return out
}

// SlotOf returns the first slot holding playerID.
func (l Lineup) SlotOf(playerID string) (SlotRef, bool) {
	if playerID == "" {
		return SlotRef{}, false
	}
	for _, slot := range l.Slots() {
		if slot.PlayerID == playerID {
			return slot.Ref, true
		}
	}
	return SlotRef{}, false
}

// Slots flattens the lineup in display order.
func (l Lineup) Slots() []Slot {
	var out []Slot
	switch l.Sport {
	case sport.Hockey:
		for i, line := range l.Hockey.ForwardLines {
			out = append(out,
				Slot{Ref: SlotRef{Group: GroupForwardLines, Index: i, Position: SlotLW}, PlayerID: line.LW},
				Slot{Ref: SlotRef{Group: GroupForwardLines, Index: i, Position: SlotC}, PlayerID: line.C},
				Slot{Ref: SlotRef{Group: GroupForwardLines, Index: i, Position: SlotRW}, PlayerID: line.RW},
			)
		}
		for i, pair := range l.Hockey.DefensePairs {
			out = append(out,
				Slot{Ref: SlotRef{Group: GroupDefensePairs, Index: i, Position: SlotLD}, PlayerID: pair.LD},
				Slot{Ref: SlotRef{Group: GroupDefensePairs, Index: i, Position: SlotRD}, PlayerID: pair.RD},
			)
		}
		out = appendListSlots(out, GroupGoalies, SlotGoalie, l.Hockey.Goalies)
	case sport.Basketball:
		if l.Basketball.PointGuardEnabled {
			out = append(out, Slot{Ref: SlotRef{Group: GroupPointGuard, Position: SlotPointGuard}, PlayerID: l.Basketball.PointGuard})
		}
		out = appendListSlots(out, GroupGuards, SlotGuard, l.Basketball.Guards)
		out = appendListSlots(out, GroupForwards, SlotForward, l.Basketball.Forwards)
		out = appendListSlots(out, GroupCenters, SlotCenter, l.Basketball.Centers)
		out = appendListSlots(out, GroupBench, SlotBench, l.Basketball.Bench)
	}
	return out
}

func appendListSlots(out []Slot, group Group, pos Position, ids []string) []Slot {
	for i, id := range ids {
		out = append(out, Slot{Ref: SlotRef{Group: group, Index: i, Position: pos}, PlayerID: id})
	}
	return out
}

// set writes a slot of a lineup that already owns its slices.
func (l *Lineup) set(ref SlotRef, playerID string) {
	switch ref.Group {
	case GroupForwardLines:
		line := &l.Hockey.ForwardLines[ref.Index]
		switch ref.Position {
		case SlotLW:
			line.LW = playerID
		case SlotC:
			line.C = playerID
		case SlotRW:
			line.RW = playerID
		}
	case GroupDefensePairs:
		pair := &l.Hockey.DefensePairs[ref.Index]
		switch ref.Position {
		case SlotLD:
			pair.LD = playerID
		case SlotRD:
			pair.RD = playerID
		}
	case GroupGoalies:
		l.Hockey.Goalies[ref.Index] = playerID
	case GroupPointGuard:
		l.Basketball.PointGuard = playerID
	case GroupGuards:
		l.Basketball.Guards[ref.Index] = playerID
	case GroupForwards:
		l.Basketball.Forwards[ref.Index] = playerID
	case GroupCenters:
		l.Basketball.Centers[ref.Index] = playerID
	case GroupBench:
		l.Basketball.Bench[ref.Index] = playerID
	}
}

// Clone deep-copies the lineup so edits never reach the caller's value.
func (l Lineup) Clone() Lineup {
	out := l
	out.Hockey.ForwardLines = cloneSlice(l.Hockey.ForwardLines)
	out.Hockey.DefensePairs = cloneSlice(l.Hockey.DefensePairs)
	out.Hockey.Goalies = cloneSlice(l.Hockey.Goalies)
	out.Basketball.Guards = cloneSlice(l.Basketball.Guards)
	out.Basketball.Forwards = cloneSlice(l.Basketball.Forwards)
	out.Basketball.Centers = cloneSlice(l.Basketball.Centers)
	out.Basketball.Bench = cloneSlice(l.Basketball.Bench)
	return out
}

func cloneSlice[T any](items []T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	copy(out, items)
	return out
}
