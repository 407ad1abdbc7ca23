package player

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/team-manager/internal/domain/sport"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleCaptain Role = "captain"
	RoleCoach   Role = "coach"
	RoleParent  Role = "parent"
)

type Status string

const (
	StatusActive  Status = "active"
	StatusReserve Status = "reserve"
)

// Player is a roster member. Stats and GoalieStats are the free-form records kept by the
// team store; only their numeric fields are meaningful to aggregation.
type Player struct {
	ID           string
	TeamID       string
	FirstName    string
	LastName     string
	JerseyNumber string
	Positions    []string
	Roles        []Role
	Status       Status
	Stats        map[string]any
	GoalieStats  map[string]any
	ImageURL     string
}

func (p Player) DisplayName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

func (p Player) HasPosition(code string) bool {
	for _, pos := range p.Positions {
		if pos == code {
			return true
		}
	}
	return false
}

// IsGoalie reports whether the player holds the goalie (or pitcher) position of s.
func (p Player) IsGoalie(s sport.Sport) bool {
	code, ok := s.GoaliePosition()
	return ok && p.HasPosition(code)
}

func (p Player) Validate(s sport.Sport) error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("player id is required")
	}
	if strings.TrimSpace(p.TeamID) == "" {
		return fmt.Errorf("player team id is required")
	}
	if p.DisplayName() == "" {
		return fmt.Errorf("player name is required")
	}
	if len(p.Positions) == 0 {
		return fmt.Errorf("player %s must have at least one position", p.ID)
	}
	for _, pos := range p.Positions {
		if !s.ValidPosition(pos) {
			return fmt.Errorf("invalid %s position for player %s: %s", s, p.ID, pos)
		}
	}
	switch p.Status {
	case StatusActive, StatusReserve:
	default:
		return fmt.Errorf("invalid player status: %q", p.Status)
	}

	return nil
}
