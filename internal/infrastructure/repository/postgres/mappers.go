package postgres

import (
	"fmt"

	"github.com/riskibarqy/team-manager/internal/domain/lineup"
	"github.com/riskibarqy/team-manager/internal/domain/player"
	"github.com/riskibarqy/team-manager/internal/domain/poll"
	"github.com/riskibarqy/team-manager/internal/domain/season"
	"github.com/riskibarqy/team-manager/internal/domain/sport"
	"github.com/riskibarqy/team-manager/internal/domain/team"
)

func recordFromJSON(raw string) (season.TeamRecord, error) {
	var rec teamRecordJSON
	if err := decodeJSON(raw, &rec); err != nil {
		return season.TeamRecord{}, fmt.Errorf("decode team record: %w", err)
	}
	return season.TeamRecord(rec), nil
}

func teamFromRow(row teamTableModel) (team.Team, error) {
	rec, err := recordFromJSON(row.CurrentRecord)
	if err != nil {
		return team.Team{}, err
	}
	return team.Team{
		ID:            row.ID,
		Name:          row.Name,
		Sport:         sport.Sport(row.Sport),
		CurrentSeason: row.CurrentSeason,
		CurrentRecord: rec,
	}, nil
}

func playerFromRow(row playerTableModel) (player.Player, error) {
	stats, err := decodeJSONMap(row.Stats)
	if err != nil {
		return player.Player{}, fmt.Errorf("decode stats of player %s: %w", row.ID, err)
	}
	goalie, err := decodeJSONMap(row.GoalieStats)
	if err != nil {
		return player.Player{}, fmt.Errorf("decode goalie stats of player %s: %w", row.ID, err)
	}

	roles := make([]player.Role, 0, len(row.Roles))
	for _, r := range row.Roles {
		roles = append(roles, player.Role(r))
	}
	return player.Player{
		ID:           row.ID,
		TeamID:       row.TeamID,
		FirstName:    row.FirstName,
		LastName:     row.LastName,
		JerseyNumber: row.JerseyNumber,
		Positions:    append([]string(nil), row.Positions...),
		Roles:        roles,
		Status:       player.Status(row.Status),
		Stats:        stats,
		GoalieStats:  goalie,
		ImageURL:     row.ImageURL,
	}, nil
}

func seasonFromRow(row seasonTableModel) (season.ArchivedSeason, error) {
	rec, err := recordFromJSON(row.Record)
	if err != nil {
		return season.ArchivedSeason{}, err
	}
	var lines []archivedPlayerJSON
	if err := decodeJSON(row.PlayerStats, &lines); err != nil {
		return season.ArchivedSeason{}, fmt.Errorf("decode player stats of season %s: %w", row.ID, err)
	}

	stats := make([]season.ArchivedPlayerStats, 0, len(lines))
	for _, line := range lines {
		stats = append(stats, season.ArchivedPlayerStats(line))
	}
	return season.ArchivedSeason{
		ID:          row.ID,
		TeamID:      row.TeamID,
		Name:        row.Name,
		Sport:       sport.Sport(row.Sport),
		Record:      rec,
		PlayerStats: stats,
		ArchivedAt:  row.ArchivedAt.UTC(),
	}, nil
}

func lineupFromRow(row lineupTableModel) (lineup.Lineup, error) {
	var payload lineupPayloadJSON
	if err := decodeJSON(row.Payload, &payload); err != nil {
		return lineup.Lineup{}, fmt.Errorf("decode lineup payload: %w", err)
	}

	item := lineup.Lineup{
		ID:        row.ID,
		TeamID:    row.TeamID,
		Sport:     sport.Sport(row.Sport),
		UpdatedAt: row.UpdatedAt.UTC(),
	}
	for _, line := range payload.ForwardLines {
		item.Hockey.ForwardLines = append(item.Hockey.ForwardLines, lineup.ForwardLine(line))
	}
	for _, pair := range payload.DefensePairs {
		item.Hockey.DefensePairs = append(item.Hockey.DefensePairs, lineup.DefensePair(pair))
	}
	item.Hockey.Goalies = payload.Goalies
	item.Basketball = lineup.BasketballLineup{
		PointGuardEnabled: payload.PointGuardEnabled,
		PointGuard:        payload.PointGuard,
		Guards:            payload.Guards,
		Forwards:          payload.Forwards,
		Centers:           payload.Centers,
		Bench:             payload.Bench,
	}
	return item, nil
}

func lineupPayload(item lineup.Lineup) lineupPayloadJSON {
	out := lineupPayloadJSON{
		Goalies:           item.Hockey.Goalies,
		PointGuardEnabled: item.Basketball.PointGuardEnabled,
		PointGuard:        item.Basketball.PointGuard,
		Guards:            item.Basketball.Guards,
		Forwards:          item.Basketball.Forwards,
		Centers:           item.Basketball.Centers,
		Bench:             item.Basketball.Bench,
	}
	for _, line := range item.Hockey.ForwardLines {
		out.ForwardLines = append(out.ForwardLines, forwardLineJSON(line))
	}
	for _, pair := range item.Hockey.DefensePairs {
		out.DefensePairs = append(out.DefensePairs, defensePairJSON(pair))
	}
	return out
}

func pollFromRow(row pollTableModel) (poll.Poll, error) {
	var options []pollOptionJSON
	if err := decodeJSON(row.Options, &options); err != nil {
		return poll.Poll{}, fmt.Errorf("decode poll options: %w", err)
	}
	votes := make(map[string][]string)
	if err := decodeJSON(row.Votes, &votes); err != nil {
		return poll.Poll{}, fmt.Errorf("decode poll votes: %w", err)
	}

	out := poll.Poll{
		ID:          row.ID,
		TeamID:      row.TeamID,
		Question:    row.Question,
		Options:     make([]poll.Option, 0, len(options)),
		Votes:       votes,
		MultiSelect: row.MultiSelect,
	}
	for _, opt := range options {
		out.Options = append(out.Options, poll.Option(opt))
	}
	return out, nil
}
