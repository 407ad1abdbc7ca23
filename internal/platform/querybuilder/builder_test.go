package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "payload").
		From("archived_seasons").
		Where(Eq("team_id", "t1"), In("id", []string{"s1", "s2"}), IsNull("deleted_at")).
		OrderBy("archived_at", "id").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, payload FROM archived_seasons WHERE team_id = $1 AND id IN ($2, $3) AND deleted_at IS NULL ORDER BY archived_at, id LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != "t1" || args[2] != "s2" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_EmptyIn(t *testing.T) {
	query, args, err := Select("id").From("players").Where(In[string]("id", nil)).ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}
	if query != "SELECT id FROM players WHERE 1=0" || len(args) != 0 {
		t.Fatalf("unexpected query %q args %+v", query, args)
	}
}

func TestUpsertModel(t *testing.T) {
	type row struct {
		TeamID  string `db:"team_id"`
		Payload []byte `db:"payload"`
		Ignored string `db:"-"`
		Sport   string `db:"sport"`
	}

	query, args, err := UpsertModel("lineups", row{TeamID: "t1", Payload: []byte("{}"), Sport: "hockey"}, "team_id")
	if err != nil {
		t.Fatalf("build upsert query: %v", err)
	}

	wantQuery := "INSERT INTO lineups (team_id, payload, sport) VALUES ($1, $2, $3) ON CONFLICT (team_id) DO UPDATE SET payload = EXCLUDED.payload, sport = EXCLUDED.sport"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != "t1" {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := UpsertModel("lineups", (*row)(nil), "team_id"); err == nil {
		t.Fatalf("expected error for nil model")
	}
	if _, _, err := UpsertModel("lineups", struct{ X int }{}, "team_id"); err == nil {
		t.Fatalf("expected error for model without db tags")
	}
}
