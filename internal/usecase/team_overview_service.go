package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/team-manager/internal/domain/season"
	"github.com/riskibarqy/team-manager/internal/domain/seasonstats"
	"github.com/riskibarqy/team-manager/internal/domain/sport"
	"github.com/riskibarqy/team-manager/internal/platform/logging"
)

const (
	defaultOverviewWorkers = 4
	maxOverviewTeams       = 50
)

// TeamOverview is one row of the multi-team overview. Error is set when the team could
// not be loaded; the other rows are still returned.
type TeamOverview struct {
	TeamID        string
	Name          string
	Sport         sport.Sport
	RosterSize    int
	CurrentRecord season.TeamRecord
	BestSeason    *season.Summary
	BestWinPct    string
	TopCategory   string
	TopPerformer  *seasonstats.LeaderboardEntry
	Error         string
}

type TeamOverviewService struct {
	stats      *StatsService
	maxWorkers int
	logger     *logging.Logger
}

func NewTeamOverviewService(stats *StatsService, maxWorkers int, logger *logging.Logger) *TeamOverviewService {
	if maxWorkers <= 0 {
		maxWorkers = defaultOverviewWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &TeamOverviewService{
		stats:      stats,
		maxWorkers: maxWorkers,
		logger:     logger,
	}
}

// Summaries builds overview rows for teamIDs in request order. Duplicate ids are collapsed.
func (s *TeamOverviewService) Summaries(ctx context.Context, teamIDs []string) ([]TeamOverview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamOverviewService.Summaries")
	defer span.End()

	ids := uniqueIDs(teamIDs)
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: at least one team id is required", ErrInvalidInput)
	}
	if len(ids) > maxOverviewTeams {
		return nil, fmt.Errorf("%w: at most %d team ids are allowed", ErrInvalidInput, maxOverviewTeams)
	}

	workerCount := s.maxWorkers
	if workerCount > len(ids) {
		workerCount = len(ids)
	}
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	rows := make([]TeamOverview, len(ids))
	var (
		workers  sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for i, teamID := range ids {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			row, err := s.summary(ctx, teamID)
			if err != nil {
				row = TeamOverview{TeamID: teamID, Error: err.Error()}
				if !errors.Is(err, ErrNotFound) {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
				}
				s.logger.WarnContext(ctx, "team overview failed", "team_id", teamID, "error", err)
			}
			rows[i] = row
		}); err != nil {
			workers.Done()
			return nil, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}
	workers.Wait()

	if firstErr != nil && allFailed(rows) {
		return nil, firstErr
	}
	return rows, nil
}

func (s *TeamOverviewService) summary(ctx context.Context, teamID string) (TeamOverview, error) {
	snap, err := s.stats.snapshot(ctx, teamID)
	if err != nil {
		return TeamOverview{}, err
	}

	records := teamRecordsFrom(snap)
	row := TeamOverview{
		TeamID:        snap.Team.ID,
		Name:          snap.Team.Name,
		Sport:         snap.Team.Sport,
		RosterSize:    len(snap.Players),
		CurrentRecord: snap.Team.CurrentRecord,
		BestSeason:    records.Best,
		BestWinPct:    records.BestWinPct,
	}

	boards := seasonstats.Leaderboards(snap.Team.Sport, seasonstats.AggregateCurrent(snap.Players), 1)
	if len(boards) > 0 {
		row.TopCategory = boards[0].Category.Label
		if len(boards[0].Entries) > 0 {
			top := boards[0].Entries[0]
			row.TopPerformer = &top
		}
	}
	return row, nil
}

func uniqueIDs(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

func allFailed(rows []TeamOverview) bool {
	for _, row := range rows {
		if row.Error == "" {
			return false
		}
	}
	return true
}
