package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/team-manager/internal/domain/player"
	"github.com/riskibarqy/team-manager/internal/domain/season"
	"github.com/riskibarqy/team-manager/internal/domain/seasonstats"
	"github.com/riskibarqy/team-manager/internal/domain/sport"
	"github.com/riskibarqy/team-manager/internal/domain/team"
	"github.com/riskibarqy/team-manager/internal/platform/cache"
	"github.com/riskibarqy/team-manager/internal/platform/logging"
)

const allTimeScope = "all_time"

// LeaderboardCache is an optional shared cache for rendered leaderboards.
type LeaderboardCache interface {
	Load(ctx context.Context, key string, dst any) (bool, error)
	Store(ctx context.Context, key string, value any) error
}

type LeaderboardBoard struct {
	Key           string                         `json:"key"`
	Label         string                         `json:"label"`
	Audience      string                         `json:"audience"`
	LowerIsBetter bool                           `json:"lowerIsBetter"`
	Entries       []seasonstats.LeaderboardEntry `json:"entries"`
}

type Leaderboards struct {
	TeamID     string             `json:"teamId"`
	Sport      sport.Sport        `json:"sport"`
	Scope      string             `json:"scope"`
	SeasonName string             `json:"seasonName,omitempty"`
	Boards     []LeaderboardBoard `json:"boards"`
}

type PlayerCareer struct {
	Record         seasonstats.AggregatedRecord
	Derived        seasonstats.Derived
	AttendanceRate string
}

type TeamRecords struct {
	TeamID     string
	Sport      sport.Sport
	Seasons    []season.Summary
	Best       *season.Summary
	BestWinPct string
	Rollup     seasonstats.Rollup
}

// teamSnapshot is everything the stat views are derived from.
type teamSnapshot struct {
	Team    team.Team
	Players []player.Player
	Seasons []season.ArchivedSeason
	AllTime seasonstats.Aggregation
}

type StatsService struct {
	teamRepo    team.Repository
	playerRepo  player.Repository
	seasonRepo  season.Repository
	store       *cache.Store
	boardsCache LeaderboardCache
	logger      *logging.Logger
}

// NewStatsService wires the stat views. store and boardsCache may be nil to disable caching.
func NewStatsService(
	teamRepo team.Repository,
	playerRepo player.Repository,
	seasonRepo season.Repository,
	store *cache.Store,
	boardsCache LeaderboardCache,
	logger *logging.Logger,
) *StatsService {
	if logger == nil {
		logger = logging.Default()
	}
	return &StatsService{
		teamRepo:    teamRepo,
		playerRepo:  playerRepo,
		seasonRepo:  seasonRepo,
		store:       store,
		boardsCache: boardsCache,
		logger:      logger,
	}
}

func (s *StatsService) AllTimeLeaderboards(ctx context.Context, teamID string, n int) (Leaderboards, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.AllTimeLeaderboards")
	defer span.End()

	n = normalizeTopN(n)
	teamID = strings.TrimSpace(teamID)
	key := leaderboardKey(teamID, allTimeScope, n)
	if out, ok := s.cachedBoards(ctx, key); ok {
		return out, nil
	}

	snap, err := s.snapshot(ctx, teamID)
	if err != nil {
		return Leaderboards{}, err
	}

	out := buildLeaderboards(snap.Team, allTimeScope, "", snap.AllTime, n)
	s.storeBoards(ctx, key, out)
	return out, nil
}

func (s *StatsService) SeasonLeaderboards(ctx context.Context, teamID, seasonID string, n int) (Leaderboards, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.SeasonLeaderboards")
	defer span.End()

	n = normalizeTopN(n)
	teamID = strings.TrimSpace(teamID)
	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return Leaderboards{}, fmt.Errorf("%w: season_id is required", ErrInvalidInput)
	}
	key := leaderboardKey(teamID, "season:"+seasonID, n)
	if out, ok := s.cachedBoards(ctx, key); ok {
		return out, nil
	}

	snap, err := s.snapshot(ctx, teamID)
	if err != nil {
		return Leaderboards{}, err
	}

	var out Leaderboards
	switch {
	case seasonID == "current":
		out = buildLeaderboards(snap.Team, seasonID, snap.Team.CurrentSeason, seasonstats.AggregateCurrent(snap.Players), n)
	default:
		archived, found := findSeason(snap.Seasons, seasonID)
		if !found {
			return Leaderboards{}, fmt.Errorf("%w: season=%s", ErrNotFound, seasonID)
		}
		out = buildLeaderboards(snap.Team, seasonID, archived.Name, seasonstats.AggregateSeason(archived), n)
	}

	s.storeBoards(ctx, key, out)
	return out, nil
}

// PlayerAllTime returns one player's career totals, including players who left the roster.
func (s *StatsService) PlayerAllTime(ctx context.Context, teamID, playerID string) (PlayerCareer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.PlayerAllTime")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return PlayerCareer{}, fmt.Errorf("%w: player_id is required", ErrInvalidInput)
	}

	snap, err := s.snapshot(ctx, teamID)
	if err != nil {
		return PlayerCareer{}, err
	}

	record, ok := snap.AllTime.Get(playerID)
	if !ok {
		return PlayerCareer{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	out := PlayerCareer{
		Record:         record,
		Derived:        seasonstats.ComputeDerived(snap.Team.Sport, record.Stats, record.GoalieStats),
		AttendanceRate: seasonstats.AttendanceRate(record.GamesInvited, record.GamesAttended),
	}
	return out, nil
}

// TeamRecords lists archived seasons oldest first followed by the current season, with
// the best season and the record rollup.
func (s *StatsService) TeamRecords(ctx context.Context, teamID string) (TeamRecords, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.TeamRecords")
	defer span.End()

	snap, err := s.snapshot(ctx, teamID)
	if err != nil {
		return TeamRecords{}, err
	}
	return teamRecordsFrom(snap), nil
}

func teamRecordsFrom(snap teamSnapshot) TeamRecords {
	summaries := make([]season.Summary, 0, len(snap.Seasons)+1)
	for _, archived := range snap.Seasons {
		summaries = append(summaries, archived.Summary())
	}
	summaries = append(summaries, snap.Team.CurrentSummary())

	out := TeamRecords{
		TeamID:  snap.Team.ID,
		Sport:   snap.Team.Sport,
		Seasons: summaries,
		Rollup:  seasonstats.TeamRecordRollup(summaries),
	}
	if best, ok := seasonstats.BestSeason(summaries); ok {
		out.Best = &best
		out.BestWinPct = seasonstats.WinPercentage(best)
	}
	return out
}

// snapshot loads team, roster and archives concurrently and caches the all-time fold.
func (s *StatsService) snapshot(ctx context.Context, teamID string) (teamSnapshot, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return teamSnapshot{}, fmt.Errorf("%w: team_id is required", ErrInvalidInput)
	}

	return cache.Load(ctx, s.store, "stats:"+teamID+":snapshot", func(ctx context.Context) (teamSnapshot, error) {
		var snap teamSnapshot

		p := pool.New().WithErrors().WithContext(ctx).WithCancelOnError()
		p.Go(func(ctx context.Context) error {
			t, err := loadTeam(ctx, s.teamRepo, teamID)
			if err != nil {
				return err
			}
			snap.Team = t
			return nil
		})
		p.Go(func(ctx context.Context) error {
			players, err := s.playerRepo.ListByTeam(ctx, teamID)
			if err != nil {
				return fmt.Errorf("list roster: %w", err)
			}
			snap.Players = players
			return nil
		})
		p.Go(func(ctx context.Context) error {
			seasons, err := s.seasonRepo.ListByTeam(ctx, teamID)
			if err != nil {
				return fmt.Errorf("list archived seasons: %w", err)
			}
			snap.Seasons = seasons
			return nil
		})
		if err := p.Wait(); err != nil {
			return teamSnapshot{}, err
		}

		for _, p := range snap.Players {
			if err := p.Validate(snap.Team.Sport); err != nil {
				s.logger.WarnContext(ctx, "roster player failed validation",
					"team_id", teamID,
					"player_id", p.ID,
					"error", err,
				)
			}
		}

		snap.Seasons = seasonstats.Chronological(snap.Seasons)
		snap.AllTime = seasonstats.AggregateAllTime(snap.Players, snap.Seasons)
		return snap, nil
	})
}

func (s *StatsService) cachedBoards(ctx context.Context, key string) (Leaderboards, bool) {
	if s.boardsCache == nil {
		return Leaderboards{}, false
	}

	var out Leaderboards
	found, err := s.boardsCache.Load(ctx, key, &out)
	if err != nil {
		s.logger.WarnContext(ctx, "leaderboard cache read failed", "key", key, "error", err)
		return Leaderboards{}, false
	}
	return out, found
}

func (s *StatsService) storeBoards(ctx context.Context, key string, value Leaderboards) {
	if s.boardsCache == nil {
		return
	}
	if err := s.boardsCache.Store(ctx, key, value); err != nil {
		s.logger.WarnContext(ctx, "leaderboard cache write failed", "key", key, "error", err)
	}
}

func buildLeaderboards(t team.Team, scope, seasonName string, records seasonstats.Aggregation, n int) Leaderboards {
	boards := seasonstats.Leaderboards(t.Sport, records, n)
	out := Leaderboards{
		TeamID:     t.ID,
		Sport:      t.Sport,
		Scope:      scope,
		SeasonName: seasonName,
		Boards:     make([]LeaderboardBoard, 0, len(boards)),
	}
	for _, b := range boards {
		out.Boards = append(out.Boards, LeaderboardBoard{
			Key:           b.Category.Key,
			Label:         b.Category.Label,
			Audience:      string(b.Category.Audience),
			LowerIsBetter: seasonstats.LowerIsBetter(b.Category.Key),
			Entries:       b.Entries,
		})
	}
	return out
}

func findSeason(seasons []season.ArchivedSeason, seasonID string) (season.ArchivedSeason, bool) {
	for _, archived := range seasons {
		if archived.ID == seasonID {
			return archived, true
		}
	}
	return season.ArchivedSeason{}, false
}

func normalizeTopN(n int) int {
	if n <= 0 {
		return seasonstats.DefaultTopN
	}
	return n
}

func leaderboardKey(teamID, scope string, n int) string {
	return "leaderboards:" + teamID + ":" + scope + ":" + strconv.Itoa(n)
}
