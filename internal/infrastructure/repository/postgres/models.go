package postgres

import (
	"time"

	"github.com/lib/pq"
)

type teamTableModel struct {
	ID            string `db:"id"`
	Name          string `db:"name"`
	Sport         string `db:"sport"`
	CurrentSeason string `db:"current_season"`
	CurrentRecord string `db:"current_record"`
}

type playerTableModel struct {
	ID           string         `db:"id"`
	TeamID       string         `db:"team_id"`
	FirstName    string         `db:"first_name"`
	LastName     string         `db:"last_name"`
	JerseyNumber string         `db:"jersey_number"`
	Positions    pq.StringArray `db:"positions"`
	Roles        pq.StringArray `db:"roles"`
	Status       string         `db:"status"`
	Stats        string         `db:"stats"`
	GoalieStats  string         `db:"goalie_stats"`
	ImageURL     string         `db:"image_url"`
}

type seasonTableModel struct {
	ID          string    `db:"id"`
	TeamID      string    `db:"team_id"`
	Name        string    `db:"name"`
	Sport       string    `db:"sport"`
	Record      string    `db:"record"`
	PlayerStats string    `db:"player_stats"`
	ArchivedAt  time.Time `db:"archived_at"`
}

type lineupTableModel struct {
	ID        string    `db:"id"`
	TeamID    string    `db:"team_id"`
	Sport     string    `db:"sport"`
	Payload   string    `db:"payload"`
	UpdatedAt time.Time `db:"updated_at"`
}

type pollTableModel struct {
	ID          string `db:"id"`
	TeamID      string `db:"team_id"`
	Question    string `db:"question"`
	Options     string `db:"options"`
	Votes       string `db:"votes"`
	MultiSelect bool   `db:"multi_select"`
}

// JSONB shapes. Field names are part of the stored format.

type teamRecordJSON struct {
	Wins                int `json:"wins"`
	Losses              int `json:"losses"`
	Ties                int `json:"ties"`
	OTLosses            int `json:"otLosses"`
	LongestWinStreak    int `json:"longestWinStreak"`
	LongestLosingStreak int `json:"longestLosingStreak"`
	GoalsFor            int `json:"goalsFor"`
	GoalsAgainst        int `json:"goalsAgainst"`
}

type archivedPlayerJSON struct {
	PlayerID      string         `json:"playerId"`
	Name          string         `json:"name"`
	Positions     []string       `json:"positions,omitempty"`
	Stats         map[string]any `json:"stats,omitempty"`
	GoalieStats   map[string]any `json:"goalieStats,omitempty"`
	GamesInvited  int            `json:"gamesInvited"`
	GamesAttended int            `json:"gamesAttended"`
}

type forwardLineJSON struct {
	LW string `json:"lw"`
	C  string `json:"c"`
	RW string `json:"rw"`
}

type defensePairJSON struct {
	LD string `json:"ld"`
	RD string `json:"rd"`
}

type lineupPayloadJSON struct {
	ForwardLines      []forwardLineJSON `json:"forwardLines,omitempty"`
	DefensePairs      []defensePairJSON `json:"defensePairs,omitempty"`
	Goalies           []string          `json:"goalies,omitempty"`
	PointGuardEnabled bool              `json:"pointGuardEnabled,omitempty"`
	PointGuard        string            `json:"pointGuard,omitempty"`
	Guards            []string          `json:"guards,omitempty"`
	Forwards          []string          `json:"forwards,omitempty"`
	Centers           []string          `json:"centers,omitempty"`
	Bench             []string          `json:"bench,omitempty"`
}

type pollOptionJSON struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}
