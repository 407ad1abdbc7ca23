package lineup

import "github.com/riskibarqy/team-manager/internal/domain/player"

// preferredPositions lists the player positions that suit each slot. Bench has no
// preference, so every player counts as preferred there.
var preferredPositions = map[Position][]string{
	SlotLW:     {"LW", "C", "RW"},
	SlotC:      {"C", "LW", "RW"},
	SlotRW:     {"RW", "C", "LW"},
	SlotLD:     {"LD", "RD"},
	SlotRD:     {"RD", "LD"},
	SlotGoalie: {"G"},

	SlotPointGuard: {"PG", "G"},
	SlotGuard:      {"G", "PG"},
	SlotForward:    {"F", "C"},
	SlotCenter:     {"C", "F"},
}

// Prefers reports whether p plays one of the positions suited to pos.
func Prefers(pos Position, p player.Player) bool {
	allowed, ok := preferredPositions[pos]
	if !ok {
		return true
	}
	for _, code := range allowed {
		if p.HasPosition(code) {
			return true
		}
	}
	return false
}

// RecommendedOrder sorts candidates for a slot: unassigned players with a preferred
// position first, then other unassigned players, then assigned preferred players, then the
// rest. Order inside each bucket follows the input.
func RecommendedOrder(players []player.Player, pos Position, assignedIDs map[string]struct{}) []player.Player {
	var buckets [4][]player.Player
	for _, p := range players {
		idx := 0
		if !Prefers(pos, p) {
			idx = 1
		}
		if _, assigned := assignedIDs[p.ID]; assigned {
			idx += 2
		}
		buckets[idx] = append(buckets[idx], p)
	}

	out := make([]player.Player, 0, len(players))
	for _, bucket := range buckets {
		out = append(out, bucket...)
	}
	return out
}
