package seasonstats

import (
	"encoding/json"
	"math"
)

// Stat keys shared by the sports the engine knows about.
const (
	StatGoals          = "goals"
	StatAssists        = "assists"
	StatPoints         = "points"
	StatPenaltyMinutes = "pim"
	StatRebounds       = "rebounds"
	StatSteals         = "steals"
	StatBlocks         = "blocks"
	StatThreePointers  = "threePointers"
	StatGroundBalls    = "groundBalls"
	StatHits           = "hits"
	StatAtBats         = "atBats"
	StatHomeRuns       = "homeRuns"
	StatRBI            = "rbi"
	StatRuns           = "runs"
	StatStolenBases    = "stolenBases"

	StatGoalsAgainst   = "goalsAgainst"
	StatMinutesPlayed  = "minutesPlayed"
	StatSaves          = "saves"
	StatShotsAgainst   = "shotsAgainst"
	StatShutouts       = "shutouts"
	StatWins           = "wins"
	StatEarnedRuns     = "earnedRuns"
	StatInningsPitched = "inningsPitched"
	StatStrikeouts     = "strikeouts"
)

// Totals holds summed numeric stat fields. Missing keys read as zero.
type Totals map[string]float64

func (t Totals) Get(key string) float64 {
	return t[key]
}

// Has reports whether key was present in at least one source record.
func (t Totals) Has(key string) bool {
	_, ok := t[key]
	return ok
}

// Add folds the numeric fields of a raw stat record into t. Non-numeric values are skipped.
func (t Totals) Add(record map[string]any) {
	for key, raw := range record {
		v, ok := numericValue(raw)
		if !ok {
			continue
		}
		t[key] += v
	}
}

func (t Totals) clone() Totals {
	out := make(Totals, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

func numericValue(raw any) (float64, bool) {
	var v float64
	switch n := raw.(type) {
	case int:
		v = float64(n)
	case int8:
		v = float64(n)
	case int16:
		v = float64(n)
	case int32:
		v = float64(n)
	case int64:
		v = float64(n)
	case uint:
		v = float64(n)
	case uint8:
		v = float64(n)
	case uint16:
		v = float64(n)
	case uint32:
		v = float64(n)
	case uint64:
		v = float64(n)
	case float32:
		v = float64(n)
	case float64:
		v = n
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		v = f
	default:
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
