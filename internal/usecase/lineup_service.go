package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/team-manager/internal/domain/lineup"
	"github.com/riskibarqy/team-manager/internal/domain/player"
	"github.com/riskibarqy/team-manager/internal/domain/team"
	"github.com/riskibarqy/team-manager/internal/platform/id"
	"github.com/riskibarqy/team-manager/internal/platform/logging"
)

type LineupActionType string

const (
	LineupActionResize   LineupActionType = "resize"
	LineupActionAssign   LineupActionType = "assign"
	LineupActionClear    LineupActionType = "clear"
	LineupActionClearAll LineupActionType = "clear_all"
)

// LineupAction is one editing step. Resize uses Group and Delta; assign uses Slot and
// PlayerID; clear uses Slot.
type LineupAction struct {
	Type     LineupActionType
	Group    lineup.Group
	Delta    int
	Slot     lineup.SlotRef
	PlayerID string
}

// LineupCandidate is a roster player offered for a slot.
type LineupCandidate struct {
	Player       player.Player
	Preferred    bool
	AssignedSlot *lineup.SlotRef
}

type LineupService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
	lineupRepo lineup.Repository
	ids        id.Generator
	logger     *logging.Logger
	now        func() time.Time
}

func NewLineupService(
	teamRepo team.Repository,
	playerRepo player.Repository,
	lineupRepo lineup.Repository,
	ids id.Generator,
	logger *logging.Logger,
) *LineupService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LineupService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		lineupRepo: lineupRepo,
		ids:        ids,
		logger:     logger,
		now:        time.Now,
	}
}

// Get returns the team's saved lineup, or a fresh one when nothing usable is stored.
func (s *LineupService) Get(ctx context.Context, teamID string) (lineup.Lineup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.Get")
	defer span.End()

	t, err := s.lineupTeam(ctx, teamID)
	if err != nil {
		return lineup.Lineup{}, err
	}

	item, exists, err := s.lineupRepo.GetByTeam(ctx, t.ID)
	if err != nil {
		return lineup.Lineup{}, fmt.Errorf("get lineup by team: %w", err)
	}
	if !exists {
		return newTeamLineup(t), nil
	}
	if item.Sport != t.Sport {
		s.logger.WarnContext(ctx, "stored lineup sport differs from team sport, starting fresh",
			"team_id", t.ID,
			"lineup_sport", item.Sport,
			"team_sport", t.Sport,
		)
		return newTeamLineup(t), nil
	}

	return item, nil
}

// Apply runs actions against base in order and returns the edited lineup without saving
// it. A zero base starts from the team's default lineup.
func (s *LineupService) Apply(ctx context.Context, teamID string, base lineup.Lineup, actions []LineupAction) (lineup.Lineup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.Apply")
	defer span.End()

	t, err := s.lineupTeam(ctx, teamID)
	if err != nil {
		return lineup.Lineup{}, err
	}

	current := base
	if current.Sport == "" {
		current = newTeamLineup(t)
	}
	if current.Sport != t.Sport {
		return lineup.Lineup{}, fmt.Errorf("%w: %w", ErrInvalidInput, lineup.ErrSportMismatch)
	}
	current.TeamID = t.ID

	roster, err := s.rosterIDs(ctx, t.ID)
	if err != nil {
		return lineup.Lineup{}, err
	}

	for i, action := range actions {
		switch action.Type {
		case LineupActionResize:
			if _, ok := lineup.GroupBounds(t.Sport, action.Group); !ok {
				return lineup.Lineup{}, fmt.Errorf("%w: action %d: unknown group %q", ErrInvalidInput, i, action.Group)
			}
			current = current.Resize(action.Group, action.Delta)
		case LineupActionAssign, LineupActionClear:
			if !current.ValidSlot(action.Slot) {
				return lineup.Lineup{}, fmt.Errorf("%w: action %d: invalid slot %+v", ErrInvalidInput, i, action.Slot)
			}
			playerID := strings.TrimSpace(action.PlayerID)
			if action.Type == LineupActionClear {
				playerID = ""
			}
			if playerID != "" {
				if _, ok := roster[playerID]; !ok {
					return lineup.Lineup{}, fmt.Errorf("%w: action %d: %v: %s", ErrInvalidInput, i, lineup.ErrUnknownPlayer, playerID)
				}
			}
			current = current.Assign(action.Slot, playerID)
		case LineupActionClearAll:
			current = current.ClearAll()
		default:
			return lineup.Lineup{}, fmt.Errorf("%w: action %d: unknown type %q", ErrInvalidInput, i, action.Type)
		}
	}

	return current, nil
}

// Candidates lists the roster for one slot in recommended order.
func (s *LineupService) Candidates(ctx context.Context, teamID string, ref lineup.SlotRef, current lineup.Lineup) ([]LineupCandidate, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.Candidates")
	defer span.End()

	t, err := s.lineupTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if current.Sport == "" {
		current = newTeamLineup(t)
	}
	if current.Sport != t.Sport {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, lineup.ErrSportMismatch)
	}
	if !current.ValidSlot(ref) {
		return nil, fmt.Errorf("%w: invalid slot %+v", ErrInvalidInput, ref)
	}
	ref = ref.Normalize()

	players, err := s.playerRepo.ListByTeam(ctx, t.ID)
	if err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}

	ordered := lineup.RecommendedOrder(players, ref.Position, current.AssignedIDs())
	out := make([]LineupCandidate, 0, len(ordered))
	for _, p := range ordered {
		c := LineupCandidate{Player: p, Preferred: lineup.Prefers(ref.Position, p)}
		if slot, ok := current.SlotOf(p.ID); ok {
			c.AssignedSlot = &slot
		}
		out = append(out, c)
	}
	return out, nil
}

// Save validates item against the roster and stores it as the team's lineup.
func (s *LineupService) Save(ctx context.Context, teamID string, item lineup.Lineup) (lineup.Lineup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.Save")
	defer span.End()

	t, err := s.lineupTeam(ctx, teamID)
	if err != nil {
		return lineup.Lineup{}, err
	}

	roster, err := s.seatedRosterIDs(ctx, t.ID, item)
	if err != nil {
		return lineup.Lineup{}, err
	}
	if err := item.Validate(t.Sport, roster); err != nil {
		return lineup.Lineup{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	existing, exists, err := s.lineupRepo.GetByTeam(ctx, t.ID)
	if err != nil {
		return lineup.Lineup{}, fmt.Errorf("get lineup by team: %w", err)
	}

	item = item.Clone()
	item.TeamID = t.ID
	item.ID = existing.ID
	if !exists || item.ID == "" {
		newID, err := s.ids.NewID()
		if err != nil {
			return lineup.Lineup{}, fmt.Errorf("generate lineup id: %w", err)
		}
		item.ID = newID
	}
	item.UpdatedAt = s.now().UTC()

	if err := s.lineupRepo.Upsert(ctx, item); err != nil {
		return lineup.Lineup{}, fmt.Errorf("upsert lineup: %w", err)
	}

	s.logger.InfoContext(ctx, "lineup saved",
		"team_id", t.ID,
		"lineup_id", item.ID,
		"sport", t.Sport,
	)
	return item, nil
}

func (s *LineupService) lineupTeam(ctx context.Context, teamID string) (team.Team, error) {
	t, err := loadTeam(ctx, s.teamRepo, teamID)
	if err != nil {
		return team.Team{}, err
	}
	if !newTeamLineup(t).Supported() {
		return team.Team{}, fmt.Errorf("%w: %w: %s", ErrInvalidInput, lineup.ErrUnsupportedSport, t.Sport)
	}
	return t, nil
}

func (s *LineupService) rosterIDs(ctx context.Context, teamID string) (map[string]struct{}, error) {
	players, err := s.playerRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}
	out := make(map[string]struct{}, len(players))
	for _, p := range players {
		out[p.ID] = struct{}{}
	}
	return out, nil
}

// seatedRosterIDs resolves only the players seated in item; ids of other teams or
// unknown ids are left out so Validate reports them.
func (s *LineupService) seatedRosterIDs(ctx context.Context, teamID string, item lineup.Lineup) (map[string]struct{}, error) {
	seated := item.AssignedIDs()
	if len(seated) == 0 {
		return map[string]struct{}{}, nil
	}
	ids := make([]string, 0, len(seated))
	for _, slot := range item.Slots() {
		if _, ok := seated[slot.PlayerID]; ok {
			ids = append(ids, slot.PlayerID)
			delete(seated, slot.PlayerID)
		}
	}

	players, err := s.playerRepo.GetByIDs(ctx, teamID, ids)
	if err != nil {
		return nil, fmt.Errorf("get seated players: %w", err)
	}
	out := make(map[string]struct{}, len(players))
	for _, p := range players {
		out[p.ID] = struct{}{}
	}
	return out, nil
}

func newTeamLineup(t team.Team) lineup.Lineup {
	item := lineup.NewEmpty(t.Sport)
	item.TeamID = t.ID
	return item
}
