package httpapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"

	"github.com/riskibarqy/team-manager/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/team-manager/internal/platform/cache"
	"github.com/riskibarqy/team-manager/internal/platform/id"
	"github.com/riskibarqy/team-manager/internal/platform/logging"
	"github.com/riskibarqy/team-manager/internal/usecase"
)

type envelope[T any] struct {
	APIVersion string           `json:"apiVersion"`
	Data       T                `json:"data"`
	Error      *googleErrorBody `json:"error"`
}

func newTestRouter(checks ...HealthCheck) http.Handler {
	logger := logging.NewNop()
	teams := memory.NewTeamRepository(memory.SeedTeams())
	players := memory.NewPlayerRepository(memory.SeedPlayers())
	seasons := memory.NewSeasonRepository(memory.SeedSeasons())
	lineups := memory.NewLineupRepository()
	polls := memory.NewPollRepository(memory.SeedPolls())

	stats := usecase.NewStatsService(teams, players, seasons, cache.NewStore(time.Minute), nil, logger)
	handler := NewHandler(
		usecase.NewLineupService(teams, players, lineups, id.NewUUIDGenerator(), logger),
		stats,
		usecase.NewTeamOverviewService(stats, 2, logger),
		usecase.NewPollService(teams, polls),
		checks,
		logger,
	)
	return NewRouter(handler, logger, []string{"*"})
}

func doRequest(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var out envelope[T]
	if err := sonic.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v body=%s", err, rec.Body.String())
	}
	return out
}

func TestHealthz(t *testing.T) {
	rec := doRequest(t, newTestRouter(HealthCheck{Name: "db", Check: func(context.Context) error { return nil }}), http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	got := decodeEnvelope[healthDTO](t, rec)
	if got.Data.Status != "ok" || got.Data.Checks["db"] != "ok" {
		t.Fatalf("unexpected health payload: %+v", got.Data)
	}
}

func TestHealthz_Degraded(t *testing.T) {
	failing := HealthCheck{Name: "redis", Check: func(context.Context) error { return errors.New("dial tcp: refused") }}
	rec := doRequest(t, newTestRouter(failing), http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	got := decodeEnvelope[healthDTO](t, rec)
	if got.Data.Status != "degraded" || got.Data.Checks["redis"] != "down" {
		t.Fatalf("unexpected health payload: %+v", got.Data)
	}
}

func TestGetLineup_DefaultsForTeamSport(t *testing.T) {
	rec := doRequest(t, newTestRouter(), http.MethodGet, "/v1/teams/team-ice-hawks/lineup", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	got := decodeEnvelope[lineupDTO](t, rec)
	if got.Data.Sport != "hockey" || got.Data.Hockey == nil || got.Data.Basketball != nil {
		t.Fatalf("unexpected lineup: %+v", got.Data)
	}
	if len(got.Data.Groups) == 0 || len(got.Data.Slots) == 0 {
		t.Fatalf("expected slots and group bounds, got %+v", got.Data)
	}
}

func TestGetLineup_UnknownTeam(t *testing.T) {
	rec := doRequest(t, newTestRouter(), http.MethodGet, "/v1/teams/nope/lineup", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	got := decodeEnvelope[any](t, rec)
	if got.Error == nil || got.Error.Status != "NOT_FOUND" {
		t.Fatalf("unexpected error body: %+v", got.Error)
	}
}

func TestApplyLineupActions_AssignsWithoutSaving(t *testing.T) {
	router := newTestRouter()
	body := `{"actions":[{"type":"assign","slot":{"group":"forward_lines","index":0,"position":"c"},"playerId":"hawk-01"}]}`

	rec := doRequest(t, router, http.MethodPost, "/v1/teams/team-ice-hawks/lineup/actions", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	got := decodeEnvelope[lineupDTO](t, rec)
	if got.Data.Hockey == nil || len(got.Data.Hockey.ForwardLines) == 0 || got.Data.Hockey.ForwardLines[0].C != "hawk-01" {
		t.Fatalf("expected hawk-01 at first center, got %+v", got.Data.Hockey)
	}

	rec = doRequest(t, router, http.MethodGet, "/v1/teams/team-ice-hawks/lineup", "")
	stored := decodeEnvelope[lineupDTO](t, rec)
	if stored.Data.ID != "" {
		t.Fatalf("preview must not persist, got id %q", stored.Data.ID)
	}
}

func TestApplyLineupActions_Validation(t *testing.T) {
	router := newTestRouter()
	cases := []struct {
		name string
		body string
	}{
		{name: "no actions", body: `{"actions":[]}`},
		{name: "unknown type", body: `{"actions":[{"type":"swap"}]}`},
		{name: "assign without player", body: `{"actions":[{"type":"assign","slot":{"group":"goalies"}}]}`},
		{name: "unknown field", body: `{"actions":[{"type":"clear_all"}],"extra":true}`},
		{name: "resize delta out of range", body: `{"actions":[{"type":"resize","group":"forward_lines","delta":9223372036854775807}]}`},
		{name: "player off roster", body: `{"actions":[{"type":"assign","slot":{"group":"goalies"},"playerId":"king-01"}]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodPost, "/v1/teams/team-ice-hawks/lineup/actions", tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestSaveLineup_RoundTrip(t *testing.T) {
	router := newTestRouter()
	body := `{"sport":"hockey","hockey":{"forwardLines":[{"c":"hawk-01"}],"defensePairs":[{"ld":"hawk-03"}],"goalies":["hawk-04"]}}`

	rec := doRequest(t, router, http.MethodPut, "/v1/teams/team-ice-hawks/lineup", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	saved := decodeEnvelope[lineupDTO](t, rec)
	if saved.Data.ID == "" || saved.Data.UpdatedAt == "" {
		t.Fatalf("expected stored metadata, got %+v", saved.Data)
	}

	rec = doRequest(t, router, http.MethodGet, "/v1/teams/team-ice-hawks/lineup", "")
	got := decodeEnvelope[lineupDTO](t, rec)
	if got.Data.ID != saved.Data.ID || got.Data.Hockey.Goalies[0] != "hawk-04" {
		t.Fatalf("unexpected stored lineup: %+v", got.Data)
	}
}

func TestListLineupCandidates(t *testing.T) {
	body := `{"slot":{"group":"forward_lines","index":0,"position":"c"}}`
	rec := doRequest(t, newTestRouter(), http.MethodPost, "/v1/teams/team-ice-hawks/lineup/candidates", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	got := decodeEnvelope[[]lineupCandidateDTO](t, rec)
	if len(got.Data) != 5 {
		t.Fatalf("expected the whole hawks roster, got %d", len(got.Data))
	}
	if got.Data[0].PlayerID != "hawk-01" || !got.Data[0].Preferred {
		t.Fatalf("expected the natural center first, got %+v", got.Data[0])
	}
}

func TestGetAllTimeLeaderboards(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(t, router, http.MethodGet, "/v1/teams/team-ice-hawks/leaderboards?n=3", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	got := decodeEnvelope[leaderboardsDTO](t, rec)
	if got.Data.Sport != "hockey" || len(got.Data.Boards) == 0 {
		t.Fatalf("unexpected leaderboards: %+v", got.Data)
	}
	for _, board := range got.Data.Boards {
		if len(board.Entries) > 3 {
			t.Fatalf("board %s exceeds n: %d", board.Key, len(board.Entries))
		}
	}

	for _, n := range []string{"0", "51", "abc"} {
		rec = doRequest(t, router, http.MethodGet, "/v1/teams/team-ice-hawks/leaderboards?n="+n, "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("n=%s: expected 400, got %d", n, rec.Code)
		}
	}
}

func TestGetSeasonLeaderboards_UnknownSeason(t *testing.T) {
	rec := doRequest(t, newTestRouter(), http.MethodGet, "/v1/teams/team-ice-hawks/seasons/kings-2025/leaderboards", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGetPlayerAllTime(t *testing.T) {
	rec := doRequest(t, newTestRouter(), http.MethodGet, "/v1/teams/team-ice-hawks/players/hawk-01/all-time", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	got := decodeEnvelope[playerCareerDTO](t, rec)
	if got.Data.Stats["goals"] != 17 || !got.Data.OnRoster {
		t.Fatalf("unexpected career: %+v", got.Data)
	}
}

func TestGetTeamRecords(t *testing.T) {
	rec := doRequest(t, newTestRouter(), http.MethodGet, "/v1/teams/team-ice-hawks/records", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	got := decodeEnvelope[teamRecordsDTO](t, rec)
	if got.Data.BestSeason == nil || got.Data.BestSeason.ID != "hawks-2025" || got.Data.BestWinPercentage != ".700" {
		t.Fatalf("unexpected best season: %+v %s", got.Data.BestSeason, got.Data.BestWinPercentage)
	}
}

func TestGetTeamsOverview_KeepsFailedRows(t *testing.T) {
	rec := doRequest(t, newTestRouter(), http.MethodGet, "/v1/teams/overview?ids=team-ice-hawks,missing,team-court-kings", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	got := decodeEnvelope[[]teamOverviewDTO](t, rec)
	if len(got.Data) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(got.Data))
	}
	if got.Data[0].TeamID != "team-ice-hawks" || got.Data[0].Error != "" {
		t.Fatalf("unexpected first row: %+v", got.Data[0])
	}
	if got.Data[1].TeamID != "missing" || got.Data[1].Error == "" {
		t.Fatalf("expected error row for missing team: %+v", got.Data[1])
	}
}

func TestGetPollTally(t *testing.T) {
	rec := doRequest(t, newTestRouter(), http.MethodGet, "/v1/teams/team-ice-hawks/polls/poll-practice-night/tally", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	got := decodeEnvelope[pollTallyDTO](t, rec)
	if got.Data.Voters != 3 || len(got.Data.Leading) != 1 || got.Data.Leading[0] != "thu" {
		t.Fatalf("unexpected tally: %+v", got.Data)
	}

	rec = doRequest(t, newTestRouter(), http.MethodGet, "/v1/teams/team-court-kings/polls/poll-practice-night/tally", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("poll of another team: expected 404, got %d", rec.Code)
	}
}
