package poll

import (
	"reflect"
	"testing"
)

func samplePoll(multi bool) Poll {
	return Poll{
		ID:     "poll-1",
		TeamID: "team-1",
		Options: []Option{
			{ID: "fri", Label: "Friday"},
			{ID: "sat", Label: "Saturday"},
			{ID: "sun", Label: "Sunday"},
		},
		MultiSelect: multi,
	}
}

func TestTally_SingleSelect(t *testing.T) {
	p := samplePoll(false)
	p.Votes = map[string][]string{
		"p1": {"sat", "fri"},
		"p2": {"sat"},
		"p3": {"ghost", "fri"},
		"p4": {"ghost"},
	}

	got := Tally(p)
	if got.Voters != 3 {
		t.Fatalf("unexpected voters: %d", got.Voters)
	}
	votes := []int{got.Options[0].Votes, got.Options[1].Votes, got.Options[2].Votes}
	if !reflect.DeepEqual(votes, []int{1, 2, 0}) {
		t.Fatalf("unexpected counts: %v", votes)
	}
	if got.Options[1].Percent != 67 || got.Options[0].Percent != 33 {
		t.Fatalf("unexpected percentages: %+v", got.Options)
	}
	if !reflect.DeepEqual(got.Leading, []string{"sat"}) {
		t.Fatalf("unexpected leading: %v", got.Leading)
	}
}

func TestTally_MultiSelectKeepsTies(t *testing.T) {
	p := samplePoll(true)
	p.Votes = map[string][]string{
		"p1": {"fri", "sun", "fri"},
		"p2": {"sun", "fri"},
	}

	got := Tally(p)
	if got.Voters != 2 {
		t.Fatalf("unexpected voters: %d", got.Voters)
	}
	if got.Options[0].Votes != 2 || got.Options[2].Votes != 2 || got.Options[0].Percent != 100 {
		t.Fatalf("unexpected counts: %+v", got.Options)
	}
	if !reflect.DeepEqual(got.Leading, []string{"fri", "sun"}) {
		t.Fatalf("unexpected leading: %v", got.Leading)
	}
}

func TestTally_NoVotes(t *testing.T) {
	got := Tally(samplePoll(false))
	if got.Voters != 0 || len(got.Leading) != 0 {
		t.Fatalf("unexpected result: %+v", got)
	}
	for _, o := range got.Options {
		if o.Percent != 0 {
			t.Fatalf("percent must be zero without voters: %+v", o)
		}
	}
}
