package httpapi

import (
	"time"

	"github.com/riskibarqy/team-manager/internal/domain/lineup"
	"github.com/riskibarqy/team-manager/internal/domain/poll"
	"github.com/riskibarqy/team-manager/internal/domain/season"
	"github.com/riskibarqy/team-manager/internal/domain/seasonstats"
	"github.com/riskibarqy/team-manager/internal/domain/sport"
	"github.com/riskibarqy/team-manager/internal/usecase"
)

type healthDTO struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Lineup requests.

type lineupRequest struct {
	Sport      string                   `json:"sport" validate:"required,oneof=hockey basketball"`
	Hockey     *hockeyLineupPayload     `json:"hockey,omitempty"`
	Basketball *basketballLineupPayload `json:"basketball,omitempty"`
}

type hockeyLineupPayload struct {
	ForwardLines []forwardLinePayload `json:"forwardLines" validate:"max=4"`
	DefensePairs []defensePairPayload `json:"defensePairs" validate:"max=4"`
	Goalies      []string             `json:"goalies" validate:"max=2"`
}

type forwardLinePayload struct {
	LW string `json:"lw"`
	C  string `json:"c"`
	RW string `json:"rw"`
}

type defensePairPayload struct {
	LD string `json:"ld"`
	RD string `json:"rd"`
}

type basketballLineupPayload struct {
	PointGuardEnabled bool     `json:"pointGuardEnabled"`
	PointGuard        string   `json:"pointGuard"`
	Guards            []string `json:"guards" validate:"max=3"`
	Forwards          []string `json:"forwards" validate:"max=2"`
	Centers           []string `json:"centers" validate:"max=2"`
	Bench             []string `json:"bench" validate:"max=15"`
}

type slotRefPayload struct {
	Group    string `json:"group" validate:"required"`
	Index    int    `json:"index" validate:"gte=0"`
	Position string `json:"position"`
}

type lineupActionPayload struct {
	Type     string          `json:"type" validate:"required,oneof=resize assign clear clear_all"`
	Group    string          `json:"group" validate:"required_if=Type resize"`
	Delta    int             `json:"delta" validate:"gte=-20,lte=20"`
	Slot     *slotRefPayload `json:"slot" validate:"required_if=Type assign,required_if=Type clear"`
	PlayerID string          `json:"playerId" validate:"required_if=Type assign"`
}

type lineupActionsRequest struct {
	Lineup  *lineupRequest        `json:"lineup" validate:"omitempty"`
	Actions []lineupActionPayload `json:"actions" validate:"required,min=1,max=100,dive"`
}

type lineupCandidatesRequest struct {
	Slot   slotRefPayload `json:"slot" validate:"required"`
	Lineup *lineupRequest `json:"lineup" validate:"omitempty"`
}

// Responses.

type lineupDTO struct {
	ID         string                   `json:"id,omitempty"`
	TeamID     string                   `json:"teamId"`
	Sport      sport.Sport              `json:"sport"`
	Hockey     *hockeyLineupPayload     `json:"hockey,omitempty"`
	Basketball *basketballLineupPayload `json:"basketball,omitempty"`
	Slots      []slotDTO                `json:"slots"`
	Groups     []groupSizeDTO           `json:"groups"`
	UpdatedAt  string                   `json:"updatedAt,omitempty"`
}

type slotDTO struct {
	Group    lineup.Group    `json:"group"`
	Index    int             `json:"index"`
	Position lineup.Position `json:"position"`
	PlayerID string          `json:"playerId,omitempty"`
}

type groupSizeDTO struct {
	Group lineup.Group `json:"group"`
	Size  int          `json:"size"`
	Min   int          `json:"min"`
	Max   int          `json:"max"`
}

type lineupCandidateDTO struct {
	PlayerID     string   `json:"playerId"`
	Name         string   `json:"name"`
	JerseyNumber string   `json:"jerseyNumber,omitempty"`
	Positions    []string `json:"positions"`
	Preferred    bool     `json:"preferred"`
	AssignedSlot *slotDTO `json:"assignedSlot,omitempty"`
}

type leaderboardsDTO struct {
	TeamID     string           `json:"teamId"`
	Sport      sport.Sport      `json:"sport"`
	Scope      string           `json:"scope"`
	SeasonName string           `json:"seasonName,omitempty"`
	Boards     []leaderboardDTO `json:"boards"`
}

type leaderboardDTO struct {
	Key           string                `json:"key"`
	Label         string                `json:"label"`
	Audience      string                `json:"audience"`
	LowerIsBetter bool                  `json:"lowerIsBetter"`
	Entries       []leaderboardEntryDTO `json:"entries"`
}

type leaderboardEntryDTO struct {
	PlayerID string  `json:"playerId"`
	Name     string  `json:"name"`
	Value    float64 `json:"value"`
	OnRoster bool    `json:"onRoster"`
}

type playerCareerDTO struct {
	PlayerID            string             `json:"playerId"`
	Name                string             `json:"name"`
	Positions           []string           `json:"positions"`
	OnRoster            bool               `json:"onRoster"`
	Seasons             int                `json:"seasons"`
	Stats               map[string]float64 `json:"stats"`
	GoalieStats         map[string]float64 `json:"goalieStats,omitempty"`
	GamesInvited        int                `json:"gamesInvited"`
	GamesAttended       int                `json:"gamesAttended"`
	AttendanceRate      string             `json:"attendanceRate"`
	GoalsAgainstAverage string             `json:"goalsAgainstAverage,omitempty"`
	SavePercentage      string             `json:"savePercentage,omitempty"`
	EarnedRunAverage    string             `json:"earnedRunAverage,omitempty"`
	BattingAverage      string             `json:"battingAverage,omitempty"`
}

type teamRecordDTO struct {
	Wins                int `json:"wins"`
	Losses              int `json:"losses"`
	Ties                int `json:"ties"`
	OTLosses            int `json:"otLosses"`
	LongestWinStreak    int `json:"longestWinStreak"`
	LongestLosingStreak int `json:"longestLosingStreak"`
	GoalsFor            int `json:"goalsFor"`
	GoalsAgainst        int `json:"goalsAgainst"`
}

type seasonSummaryDTO struct {
	ID      string        `json:"id,omitempty"`
	Name    string        `json:"name"`
	Current bool          `json:"current"`
	Record  teamRecordDTO `json:"record"`
}

type recordHolderDTO struct {
	Season seasonSummaryDTO `json:"season"`
	Value  int              `json:"value"`
}

type teamRecordsDTO struct {
	TeamID              string             `json:"teamId"`
	Sport               sport.Sport        `json:"sport"`
	Seasons             []seasonSummaryDTO `json:"seasons"`
	BestSeason          *seasonSummaryDTO  `json:"bestSeason,omitempty"`
	BestWinPercentage   string             `json:"bestWinPercentage,omitempty"`
	MostWins            *recordHolderDTO   `json:"mostWins,omitempty"`
	LongestWinStreak    *recordHolderDTO   `json:"longestWinStreak,omitempty"`
	LongestLosingStreak *recordHolderDTO   `json:"longestLosingStreak,omitempty"`
}

type teamOverviewDTO struct {
	TeamID        string               `json:"teamId"`
	Name          string               `json:"name,omitempty"`
	Sport         sport.Sport          `json:"sport,omitempty"`
	RosterSize    int                  `json:"rosterSize"`
	CurrentRecord teamRecordDTO        `json:"currentRecord"`
	BestSeason    *seasonSummaryDTO    `json:"bestSeason,omitempty"`
	BestWinPct    string               `json:"bestWinPercentage,omitempty"`
	TopCategory   string               `json:"topCategory,omitempty"`
	TopPerformer  *leaderboardEntryDTO `json:"topPerformer,omitempty"`
	Error         string               `json:"error,omitempty"`
}

type pollOptionResultDTO struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Votes   int    `json:"votes"`
	Percent int    `json:"percent"`
}

type pollTallyDTO struct {
	PollID      string                `json:"pollId"`
	Question    string                `json:"question"`
	MultiSelect bool                  `json:"multiSelect"`
	Voters      int                   `json:"voters"`
	Options     []pollOptionResultDTO `json:"options"`
	Leading     []string              `json:"leading"`
}

// Mapping.

func (req *lineupRequest) toDomain() lineup.Lineup {
	if req == nil {
		return lineup.Lineup{}
	}

	out := lineup.Lineup{Sport: sport.Sport(req.Sport)}
	if h := req.Hockey; h != nil {
		for _, line := range h.ForwardLines {
			out.Hockey.ForwardLines = append(out.Hockey.ForwardLines, lineup.ForwardLine(line))
		}
		for _, pair := range h.DefensePairs {
			out.Hockey.DefensePairs = append(out.Hockey.DefensePairs, lineup.DefensePair(pair))
		}
		out.Hockey.Goalies = append([]string(nil), h.Goalies...)
	}
	if b := req.Basketball; b != nil {
		out.Basketball = lineup.BasketballLineup{
			PointGuardEnabled: b.PointGuardEnabled,
			PointGuard:        b.PointGuard,
			Guards:            append([]string(nil), b.Guards...),
			Forwards:          append([]string(nil), b.Forwards...),
			Centers:           append([]string(nil), b.Centers...),
			Bench:             append([]string(nil), b.Bench...),
		}
	}
	return out
}

func (p slotRefPayload) toDomain() lineup.SlotRef {
	return lineup.SlotRef{
		Group:    lineup.Group(p.Group),
		Index:    p.Index,
		Position: lineup.Position(p.Position),
	}
}

func (p lineupActionPayload) toDomain() usecase.LineupAction {
	action := usecase.LineupAction{
		Type:     usecase.LineupActionType(p.Type),
		Group:    lineup.Group(p.Group),
		Delta:    p.Delta,
		PlayerID: p.PlayerID,
	}
	if p.Slot != nil {
		action.Slot = p.Slot.toDomain()
	}
	return action
}

func lineupToDTO(item lineup.Lineup) lineupDTO {
	out := lineupDTO{
		ID:     item.ID,
		TeamID: item.TeamID,
		Sport:  item.Sport,
		Slots:  make([]slotDTO, 0),
		Groups: make([]groupSizeDTO, 0),
	}
	if !item.UpdatedAt.IsZero() {
		out.UpdatedAt = item.UpdatedAt.UTC().Format(time.RFC3339)
	}

	switch item.Sport {
	case sport.Hockey:
		h := &hockeyLineupPayload{
			ForwardLines: make([]forwardLinePayload, 0, len(item.Hockey.ForwardLines)),
			DefensePairs: make([]defensePairPayload, 0, len(item.Hockey.DefensePairs)),
			Goalies:      append([]string{}, item.Hockey.Goalies...),
		}
		for _, line := range item.Hockey.ForwardLines {
			h.ForwardLines = append(h.ForwardLines, forwardLinePayload(line))
		}
		for _, pair := range item.Hockey.DefensePairs {
			h.DefensePairs = append(h.DefensePairs, defensePairPayload(pair))
		}
		out.Hockey = h
	case sport.Basketball:
		b := item.Basketball
		out.Basketball = &basketballLineupPayload{
			PointGuardEnabled: b.PointGuardEnabled,
			PointGuard:        b.PointGuard,
			Guards:            append([]string{}, b.Guards...),
			Forwards:          append([]string{}, b.Forwards...),
			Centers:           append([]string{}, b.Centers...),
			Bench:             append([]string{}, b.Bench...),
		}
	}

	for _, slot := range item.Slots() {
		out.Slots = append(out.Slots, slotToDTO(slot.Ref, slot.PlayerID))
	}
	for _, group := range lineup.Groups(item.Sport) {
		bounds, _ := lineup.GroupBounds(item.Sport, group)
		out.Groups = append(out.Groups, groupSizeDTO{
			Group: group,
			Size:  item.GroupSize(group),
			Min:   bounds.Min,
			Max:   bounds.Max,
		})
	}
	return out
}

func slotToDTO(ref lineup.SlotRef, playerID string) slotDTO {
	return slotDTO{Group: ref.Group, Index: ref.Index, Position: ref.Position, PlayerID: playerID}
}

func candidatesToDTO(items []usecase.LineupCandidate) []lineupCandidateDTO {
	out := make([]lineupCandidateDTO, 0, len(items))
	for _, c := range items {
		dto := lineupCandidateDTO{
			PlayerID:     c.Player.ID,
			Name:         c.Player.DisplayName(),
			JerseyNumber: c.Player.JerseyNumber,
			Positions:    append([]string{}, c.Player.Positions...),
			Preferred:    c.Preferred,
		}
		if c.AssignedSlot != nil {
			slot := slotToDTO(*c.AssignedSlot, c.Player.ID)
			dto.AssignedSlot = &slot
		}
		out = append(out, dto)
	}
	return out
}

func leaderboardsToDTO(v usecase.Leaderboards) leaderboardsDTO {
	out := leaderboardsDTO{
		TeamID:     v.TeamID,
		Sport:      v.Sport,
		Scope:      v.Scope,
		SeasonName: v.SeasonName,
		Boards:     make([]leaderboardDTO, 0, len(v.Boards)),
	}
	for _, b := range v.Boards {
		board := leaderboardDTO{
			Key:           b.Key,
			Label:         b.Label,
			Audience:      b.Audience,
			LowerIsBetter: b.LowerIsBetter,
			Entries:       make([]leaderboardEntryDTO, 0, len(b.Entries)),
		}
		for _, e := range b.Entries {
			board.Entries = append(board.Entries, leaderboardEntryToDTO(e))
		}
		out.Boards = append(out.Boards, board)
	}
	return out
}

func leaderboardEntryToDTO(e seasonstats.LeaderboardEntry) leaderboardEntryDTO {
	return leaderboardEntryDTO(e)
}

func playerCareerToDTO(v usecase.PlayerCareer) playerCareerDTO {
	rec := v.Record
	out := playerCareerDTO{
		PlayerID:            rec.PlayerID,
		Name:                rec.Name,
		Positions:           append([]string{}, rec.Positions...),
		OnRoster:            rec.OnRoster(),
		Seasons:             rec.Seasons,
		Stats:               map[string]float64(rec.Stats),
		GamesInvited:        rec.GamesInvited,
		GamesAttended:       rec.GamesAttended,
		AttendanceRate:      v.AttendanceRate,
		GoalsAgainstAverage: v.Derived.GoalsAgainstAverage,
		SavePercentage:      v.Derived.SavePercentage,
		EarnedRunAverage:    v.Derived.EarnedRunAverage,
		BattingAverage:      v.Derived.BattingAverage,
	}
	if out.Stats == nil {
		out.Stats = map[string]float64{}
	}
	if len(rec.GoalieStats) > 0 {
		out.GoalieStats = map[string]float64(rec.GoalieStats)
	}
	return out
}

func seasonSummaryToDTO(s season.Summary) seasonSummaryDTO {
	return seasonSummaryDTO{
		ID:      s.ID,
		Name:    s.Name,
		Current: s.Current,
		Record:  teamRecordDTO(s.Record),
	}
}

func optionalSeasonDTO(s *season.Summary) *seasonSummaryDTO {
	if s == nil {
		return nil
	}
	dto := seasonSummaryToDTO(*s)
	return &dto
}

func recordHolderToDTO(h *seasonstats.RecordHolder) *recordHolderDTO {
	if h == nil {
		return nil
	}
	return &recordHolderDTO{Season: seasonSummaryToDTO(h.Season), Value: h.Value}
}

func teamRecordsToDTO(v usecase.TeamRecords) teamRecordsDTO {
	out := teamRecordsDTO{
		TeamID:              v.TeamID,
		Sport:               v.Sport,
		Seasons:             make([]seasonSummaryDTO, 0, len(v.Seasons)),
		BestSeason:          optionalSeasonDTO(v.Best),
		BestWinPercentage:   v.BestWinPct,
		MostWins:            recordHolderToDTO(v.Rollup.MostWins),
		LongestWinStreak:    recordHolderToDTO(v.Rollup.LongestWinStreak),
		LongestLosingStreak: recordHolderToDTO(v.Rollup.LongestLosingStreak),
	}
	for _, s := range v.Seasons {
		out.Seasons = append(out.Seasons, seasonSummaryToDTO(s))
	}
	return out
}

func teamOverviewsToDTO(rows []usecase.TeamOverview) []teamOverviewDTO {
	out := make([]teamOverviewDTO, 0, len(rows))
	for _, row := range rows {
		dto := teamOverviewDTO{
			TeamID:        row.TeamID,
			Name:          row.Name,
			Sport:         row.Sport,
			RosterSize:    row.RosterSize,
			CurrentRecord: teamRecordDTO(row.CurrentRecord),
			BestSeason:    optionalSeasonDTO(row.BestSeason),
			BestWinPct:    row.BestWinPct,
			TopCategory:   row.TopCategory,
			Error:         row.Error,
		}
		if row.TopPerformer != nil {
			entry := leaderboardEntryToDTO(*row.TopPerformer)
			dto.TopPerformer = &entry
		}
		out = append(out, dto)
	}
	return out
}

func pollTallyToDTO(p poll.Poll, result poll.Result) pollTallyDTO {
	out := pollTallyDTO{
		PollID:      p.ID,
		Question:    p.Question,
		MultiSelect: p.MultiSelect,
		Voters:      result.Voters,
		Options:     make([]pollOptionResultDTO, 0, len(result.Options)),
		Leading:     append([]string{}, result.Leading...),
	}
	for _, opt := range result.Options {
		out.Options = append(out.Options, pollOptionResultDTO{
			ID:      opt.Option.ID,
			Label:   opt.Option.Label,
			Votes:   opt.Votes,
			Percent: opt.Percent,
		})
	}
	return out
}
