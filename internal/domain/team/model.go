package team

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/team-manager/internal/domain/season"
	"github.com/riskibarqy/team-manager/internal/domain/sport"
)

// Team is a managed club with its in-progress season.
type Team struct {
	ID            string
	Name          string
	Sport         sport.Sport
	CurrentSeason string
	CurrentRecord season.TeamRecord
}

func (t Team) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("team id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}
	if !t.Sport.Valid() {
		return fmt.Errorf("invalid team sport: %q", t.Sport)
	}

	return nil
}

// CurrentSummary describes the in-progress season in the same shape as archived ones.
func (t Team) CurrentSummary() season.Summary {
	return season.Summary{
		Name:    t.CurrentSeason,
		Sport:   t.Sport,
		Record:  t.CurrentRecord,
		Current: true,
	}
}
