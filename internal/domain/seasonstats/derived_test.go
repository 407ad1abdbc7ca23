package seasonstats

import (
	"testing"

	"github.com/riskibarqy/team-manager/internal/domain/sport"
)

func TestComputeDerived_HockeyGAA(t *testing.T) {
	got := ComputeDerived(sport.Hockey, nil, Totals{StatGoalsAgainst: 9, StatMinutesPlayed: 180})
	if got.GoalsAgainstAverage != "3.00" {
		t.Fatalf("unexpected GAA: %s", got.GoalsAgainstAverage)
	}
	if got.SavePercentage != ZeroRate {
		t.Fatalf("unexpected save pct: %s", got.SavePercentage)
	}
	if got.EarnedRunAverage != "" || got.BattingAverage != "" {
		t.Fatalf("hockey has no ERA or batting average: %+v", got)
	}
}

func TestComputeDerived_Baseball(t *testing.T) {
	batting := Totals{StatHits: 30, StatAtBats: 100}
	pitching := Totals{StatEarnedRuns: 4, StatInningsPitched: 12}
	for _, s := range []sport.Sport{sport.Baseball, sport.Softball} {
		got := ComputeDerived(s, batting, pitching)
		if got.BattingAverage != ".300" || got.EarnedRunAverage != "3.00" {
			t.Fatalf("%s: unexpected derived metrics %+v", s, got)
		}
		if got.GoalsAgainstAverage != "" || got.SavePercentage != "" {
			t.Fatalf("%s: goalie metrics must stay empty: %+v", s, got)
		}
	}
}

func TestComputeDerived_Formulas(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "soccer gaa", got: GoalsAgainstAverage(sport.Soccer, Totals{StatGoalsAgainst: 4, StatMinutesPlayed: 360}), want: "1.00"},
		{name: "lacrosse gaa", got: GoalsAgainstAverage(sport.Lacrosse, Totals{StatGoalsAgainst: 25, StatMinutesPlayed: 200}), want: "7.50"},
		{name: "hockey gaa rounding", got: GoalsAgainstAverage(sport.Hockey, Totals{StatGoalsAgainst: 7, StatMinutesPlayed: 185}), want: "2.27"},
		{name: "save pct", got: SavePercentage(Totals{StatSaves: 183, StatShotsAgainst: 200}), want: ".915"},
		{name: "perfect save pct", got: SavePercentage(Totals{StatSaves: 20, StatShotsAgainst: 20}), want: "1.000"},
		{name: "batting average", got: BattingAverage(Totals{StatHits: 1, StatAtBats: 3}), want: ".333"},
		{name: "era", got: EarnedRunAverage(Totals{StatEarnedRuns: 4, StatInningsPitched: 12}), want: "3.00"},
		{name: "attendance", got: AttendanceRate(12, 9), want: "75%"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Fatalf("got %q want %q", tc.got, tc.want)
			}
		})
	}
}

func TestComputeDerived_ZeroDenominators(t *testing.T) {
	empty := Totals{StatGoalsAgainst: 5, StatSaves: 3, StatHits: 2, StatEarnedRuns: 1}
	for _, s := range []sport.Sport{sport.Hockey, sport.Soccer, sport.Lacrosse} {
		d := ComputeDerived(s, empty, empty)
		if d.GoalsAgainstAverage != ZeroAverage || d.SavePercentage != ZeroRate {
			t.Fatalf("%s: unexpected zero-denominator output %+v", s, d)
		}
	}
	for _, s := range []sport.Sport{sport.Baseball, sport.Softball} {
		if d := ComputeDerived(s, empty, empty); d.EarnedRunAverage != ZeroAverage {
			t.Fatalf("%s: unexpected ERA %q", s, d.EarnedRunAverage)
		}
	}
	if got := BattingAverage(empty); got != ZeroRate {
		t.Fatalf("unexpected batting average %q", got)
	}
	if got := ComputeDerived(sport.Hockey, nil, nil); got.GoalsAgainstAverage != ZeroAverage {
		t.Fatalf("nil totals must read as zero, got %+v", got)
	}
	if got := AttendanceRate(0, 0); got != "0%" {
		t.Fatalf("unexpected attendance %q", got)
	}
	if got := ComputeDerived(sport.Basketball, empty, empty); got != (Derived{}) {
		t.Fatalf("basketball has no derived goalie metrics: %+v", got)
	}
}
