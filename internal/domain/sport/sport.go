package sport

import (
	"fmt"
	"strings"
)

// Sport identifies the ruleset a team plays under.
type Sport string

const (
	Hockey     Sport = "hockey"
	Basketball Sport = "basketball"
	Soccer     Sport = "soccer"
	Lacrosse   Sport = "lacrosse"
	Baseball   Sport = "baseball"
	Softball   Sport = "softball"
)

var positionsBySport = map[Sport][]string{
	Hockey:     {"C", "LW", "RW", "LD", "RD", "G"},
	Basketball: {"PG", "G", "F", "C"},
	Soccer:     {"GK", "DEF", "MID", "FWD"},
	Lacrosse:   {"A", "M", "D", "G"},
	Baseball:   {"P", "C", "1B", "2B", "3B", "SS", "LF", "CF", "RF"},
	Softball:   {"P", "C", "1B", "2B", "3B", "SS", "LF", "CF", "RF"},
}

// goalie (or pitcher) positions whose stats live in the goalie stats record.
var goaliePositions = map[Sport]string{
	Hockey:   "G",
	Soccer:   "GK",
	Lacrosse: "G",
	Baseball: "P",
	Softball: "P",
}

func Parse(raw string) (Sport, error) {
	s := Sport(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := positionsBySport[s]; !ok {
		return "", fmt.Errorf("unknown sport: %q", raw)
	}
	return s, nil
}

func (s Sport) Valid() bool {
	_, ok := positionsBySport[s]
	return ok
}

// Positions returns the position codes a player of this sport may hold.
func (s Sport) Positions() []string {
	return append([]string(nil), positionsBySport[s]...)
}

func (s Sport) ValidPosition(code string) bool {
	for _, p := range positionsBySport[s] {
		if p == code {
			return true
		}
	}
	return false
}

// GoaliePosition returns the position whose holders keep a goalie/pitcher stat line.
func (s Sport) GoaliePosition() (string, bool) {
	p, ok := goaliePositions[s]
	return p, ok
}

// CountsOTLosses reports whether overtime losses enter the win percentage denominator.
func (s Sport) CountsOTLosses() bool {
	return s == Hockey
}
