package seasonstats

import (
	"math"
	"strconv"
	"strings"

	"github.com/riskibarqy/team-manager/internal/domain/sport"
)

// Canonical strings shown when a metric's denominator is zero.
const (
	ZeroAverage = "0.00"
	ZeroRate    = ".000"
)

// Derived holds the display metrics of a stat line. Fields that do not apply to the sport
// are left empty.
type Derived struct {
	GoalsAgainstAverage string
	SavePercentage      string
	EarnedRunAverage    string
	BattingAverage      string
}

// ComputeDerived formats the sport's rate metrics from the batting/skater totals and the
// goalie/pitcher totals. It never produces NaN or Inf.
func ComputeDerived(s sport.Sport, stats, goalie Totals) Derived {
	switch s {
	case sport.Hockey, sport.Soccer, sport.Lacrosse:
		return Derived{
			GoalsAgainstAverage: GoalsAgainstAverage(s, goalie),
			SavePercentage:      SavePercentage(goalie),
		}
	case sport.Baseball, sport.Softball:
		return Derived{
			EarnedRunAverage: EarnedRunAverage(goalie),
			BattingAverage:   BattingAverage(stats),
		}
	default:
		return Derived{}
	}
}

// GAAValue is the numeric goals-against average; ok is false when it is undefined.
func GAAValue(s sport.Sport, goalie Totals) (float64, bool) {
	minutes := goalie.Get(StatMinutesPlayed)
	if minutes <= 0 {
		return 0, false
	}
	against := goalie.Get(StatGoalsAgainst)
	switch s {
	case sport.Hockey:
		return against * 60 / minutes, true
	case sport.Soccer:
		return against / minutes * 90, true
	case sport.Lacrosse:
		return against / minutes * 60, true
	default:
		return 0, false
	}
}

func GoalsAgainstAverage(s sport.Sport, goalie Totals) string {
	v, ok := GAAValue(s, goalie)
	if !ok {
		return ZeroAverage
	}
	return formatFixed(v, 2)
}

func SavePercentageValue(goalie Totals) (float64, bool) {
	return ratio(goalie.Get(StatSaves), goalie.Get(StatShotsAgainst))
}

func SavePercentage(goalie Totals) string {
	v, ok := SavePercentageValue(goalie)
	if !ok {
		return ZeroRate
	}
	return formatRate(v)
}

func BattingAverageValue(stats Totals) (float64, bool) {
	return ratio(stats.Get(StatHits), stats.Get(StatAtBats))
}

func BattingAverage(stats Totals) string {
	v, ok := BattingAverageValue(stats)
	if !ok {
		return ZeroRate
	}
	return formatRate(v)
}

func ERAValue(pitcher Totals) (float64, bool) {
	v, ok := ratio(pitcher.Get(StatEarnedRuns), pitcher.Get(StatInningsPitched))
	return v * 9, ok
}

func EarnedRunAverage(pitcher Totals) string {
	v, ok := ERAValue(pitcher)
	if !ok {
		return ZeroAverage
	}
	return formatFixed(v, 2)
}

// AttendanceRate is attended/invited as a whole percentage, "0%" when nobody was invited.
func AttendanceRate(invited, attended int) string {
	v, ok := ratio(float64(attended), float64(invited))
	if !ok {
		return "0%"
	}
	return strconv.Itoa(int(math.Round(v*100))) + "%"
}

func ratio(num, den float64) (float64, bool) {
	if den <= 0 {
		return 0, false
	}
	v := num / den
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func formatFixed(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// formatRate renders a ratio with three decimals and no leading zero (".915", "1.000").
func formatRate(v float64) string {
	out := formatFixed(v, 3)
	if strings.HasPrefix(out, "0.") {
		return out[1:]
	}
	return out
}
