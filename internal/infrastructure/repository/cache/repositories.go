package cache

import (
	"context"
	"sort"
	"strings"

	"github.com/riskibarqy/team-manager/internal/domain/lineup"
	"github.com/riskibarqy/team-manager/internal/domain/player"
	"github.com/riskibarqy/team-manager/internal/domain/poll"
	"github.com/riskibarqy/team-manager/internal/domain/season"
	"github.com/riskibarqy/team-manager/internal/domain/team"
	basecache "github.com/riskibarqy/team-manager/internal/platform/cache"
)

// lookup keeps the found flag of a GetByID call so misses are cached too.
type lookup[T any] struct {
	value  T
	exists bool
}

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	v, err := basecache.Load(ctx, r.cache, "team:id:"+teamID, func(ctx context.Context) (lookup[team.Team], error) {
		item, exists, err := r.next.GetByID(ctx, teamID)
		return lookup[team.Team]{value: item, exists: exists}, err
	})
	if err != nil {
		return team.Team{}, false, err
	}
	return v.value, v.exists, nil
}

type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	items, err := basecache.Load(ctx, r.cache, "player:team:"+teamID, func(ctx context.Context) ([]player.Player, error) {
		return r.next.ListByTeam(ctx, teamID)
	})
	if err != nil {
		return nil, err
	}
	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, teamID string, playerIDs []string) ([]player.Player, error) {
	ids := append([]string(nil), playerIDs...)
	sort.Strings(ids)
	key := "player:ids:" + teamID + ":" + strings.Join(ids, ",")

	items, err := basecache.Load(ctx, r.cache, key, func(ctx context.Context) ([]player.Player, error) {
		return r.next.GetByIDs(ctx, teamID, playerIDs)
	})
	if err != nil {
		return nil, err
	}
	return append([]player.Player(nil), items...), nil
}

// SeasonRepository caches archives; they never change once written.
type SeasonRepository struct {
	next  season.Repository
	cache *basecache.Store
}

func NewSeasonRepository(next season.Repository, cache *basecache.Store) *SeasonRepository {
	return &SeasonRepository{next: next, cache: cache}
}

func (r *SeasonRepository) ListByTeam(ctx context.Context, teamID string) ([]season.ArchivedSeason, error) {
	items, err := basecache.Load(ctx, r.cache, "season:team:"+teamID, func(ctx context.Context) ([]season.ArchivedSeason, error) {
		return r.next.ListByTeam(ctx, teamID)
	})
	if err != nil {
		return nil, err
	}
	return append([]season.ArchivedSeason(nil), items...), nil
}

func (r *SeasonRepository) GetByID(ctx context.Context, teamID, seasonID string) (season.ArchivedSeason, bool, error) {
	v, err := basecache.Load(ctx, r.cache, "season:id:"+teamID+":"+seasonID, func(ctx context.Context) (lookup[season.ArchivedSeason], error) {
		item, exists, err := r.next.GetByID(ctx, teamID, seasonID)
		return lookup[season.ArchivedSeason]{value: item, exists: exists}, err
	})
	if err != nil {
		return season.ArchivedSeason{}, false, err
	}
	return v.value, v.exists, nil
}

// LineupRepository caches reads and drops the team's entry on every write.
type LineupRepository struct {
	next  lineup.Repository
	cache *basecache.Store
}

func NewLineupRepository(next lineup.Repository, cache *basecache.Store) *LineupRepository {
	return &LineupRepository{next: next, cache: cache}
}

func (r *LineupRepository) GetByTeam(ctx context.Context, teamID string) (lineup.Lineup, bool, error) {
	v, err := basecache.Load(ctx, r.cache, lineupKey(teamID), func(ctx context.Context) (lookup[lineup.Lineup], error) {
		item, exists, err := r.next.GetByTeam(ctx, teamID)
		return lookup[lineup.Lineup]{value: item, exists: exists}, err
	})
	if err != nil {
		return lineup.Lineup{}, false, err
	}
	return v.value.Clone(), v.exists, nil
}

func (r *LineupRepository) Upsert(ctx context.Context, item lineup.Lineup) error {
	if err := r.next.Upsert(ctx, item); err != nil {
		return err
	}
	r.cache.Delete(ctx, lineupKey(item.TeamID))
	return nil
}

func lineupKey(teamID string) string {
	return "lineup:team:" + teamID
}

type PollRepository struct {
	next  poll.Repository
	cache *basecache.Store
}

func NewPollRepository(next poll.Repository, cache *basecache.Store) *PollRepository {
	return &PollRepository{next: next, cache: cache}
}

func (r *PollRepository) GetByID(ctx context.Context, teamID, pollID string) (poll.Poll, bool, error) {
	v, err := basecache.Load(ctx, r.cache, "poll:id:"+teamID+":"+pollID, func(ctx context.Context) (lookup[poll.Poll], error) {
		item, exists, err := r.next.GetByID(ctx, teamID, pollID)
		return lookup[poll.Poll]{value: item, exists: exists}, err
	})
	if err != nil {
		return poll.Poll{}, false, err
	}
	return v.value, v.exists, nil
}
