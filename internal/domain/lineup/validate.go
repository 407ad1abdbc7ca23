package lineup

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/team-manager/internal/domain/sport"
)

var (
	ErrUnsupportedSport    = errors.New("sport has no lineup model")
	ErrGroupSizeOutOfRange = errors.New("lineup group size out of range")
	ErrTooManyStarters     = errors.New("too many starters")
	ErrDuplicateAssignment = errors.New("player assigned to more than one slot")
	ErrUnknownPlayer       = errors.New("player is not on the roster")
	ErrSportMismatch       = errors.New("lineup sport does not match team sport")
)

// Validate checks a lineup received from outside the editing operations before it is
// saved: group bounds, starter cap, one slot per player and roster membership.
func (l Lineup) Validate(teamSport sport.Sport, rosterIDs map[string]struct{}) error {
	if l.Sport != teamSport {
		return fmt.Errorf("%w: lineup=%s team=%s", ErrSportMismatch, l.Sport, teamSport)
	}
	if !l.Supported() {
		return fmt.Errorf("%w: %s", ErrUnsupportedSport, l.Sport)
	}

	for _, group := range Groups(l.Sport) {
		bounds, _ := GroupBounds(l.Sport, group)
		if size := l.GroupSize(group); size < bounds.Min || size > bounds.Max {
			return fmt.Errorf("%w: group=%s size=%d min=%d max=%d", ErrGroupSizeOutOfRange, group, size, bounds.Min, bounds.Max)
		}
	}
	if l.Sport == sport.Basketball && l.Basketball.Starters() > MaxBasketballStarters {
		return fmt.Errorf("%w: max=%d got=%d", ErrTooManyStarters, MaxBasketballStarters, l.Basketball.Starters())
	}
	if !l.Basketball.PointGuardEnabled && l.Basketball.PointGuard != "" {
		return fmt.Errorf("%w: point guard slot is disabled", ErrGroupSizeOutOfRange)
	}

	seen := make(map[string]SlotRef)
	for _, slot := range l.Slots() {
		if slot.PlayerID == "" {
			continue
		}
		if prev, exists := seen[slot.PlayerID]; exists {
			return fmt.Errorf("%w: player=%s slots=%s[%d].%s,%s[%d].%s", ErrDuplicateAssignment,
				slot.PlayerID, prev.Group, prev.Index, prev.Position, slot.Ref.Group, slot.Ref.Index, slot.Ref.Position)
		}
		seen[slot.PlayerID] = slot.Ref
		if _, ok := rosterIDs[slot.PlayerID]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownPlayer, slot.PlayerID)
		}
	}

	return nil
}
