package lineup

import (
	"testing"

	"github.com/riskibarqy/team-manager/internal/domain/player"
)

func ids(players []player.Player) []string {
	out := make([]string, 0, len(players))
	for _, p := range players {
		out = append(out, p.ID)
	}
	return out
}

func TestRecommendedOrder_Buckets(t *testing.T) {
	players := []player.Player{
		{ID: "d1", Positions: []string{"LD"}},
		{ID: "w1", Positions: []string{"LW"}},
		{ID: "c1", Positions: []string{"C"}},
		{ID: "g1", Positions: []string{"G"}},
		{ID: "w2", Positions: []string{"RW"}},
		{ID: "d2", Positions: []string{"RD"}},
	}
	assigned := map[string]struct{}{"c1": {}, "d2": {}}

	got := ids(RecommendedOrder(players, SlotLW, assigned))
	want := []string{"w1", "w2", "d1", "g1", "c1", "d2"}
	if len(got) != len(want) {
		t.Fatalf("unexpected length: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected order:\n got=%v\nwant=%v", got, want)
		}
	}
}

func TestRecommendedOrder_StableWithinBucket(t *testing.T) {
	players := []player.Player{
		{ID: "a", Positions: []string{"G"}},
		{ID: "b", Positions: []string{"C"}},
		{ID: "c", Positions: []string{"G"}},
		{ID: "d", Positions: []string{"LD"}},
		{ID: "e", Positions: []string{"G"}},
	}

	got := ids(RecommendedOrder(players, SlotGoalie, nil))
	want := []string{"a", "c", "e", "b", "d"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected order:\n got=%v\nwant=%v", got, want)
		}
	}
}

func TestRecommendedOrder_BenchPrefersEveryone(t *testing.T) {
	players := []player.Player{
		{ID: "x", Positions: []string{"C"}},
		{ID: "y", Positions: []string{"PG"}},
		{ID: "z", Positions: []string{"F"}},
	}
	got := ids(RecommendedOrder(players, SlotBench, map[string]struct{}{"x": {}}))
	want := []string{"y", "z", "x"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected order:\n got=%v\nwant=%v", got, want)
		}
	}
}
